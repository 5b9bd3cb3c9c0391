package fdbtest

import "github.com/andreyvit/fdb"

const (
	integer = fdb.TypeInteger
	float   = fdb.TypeFloat
	text    = fdb.TypeText
	boolean = fdb.TypeBoolean
	bigint  = fdb.TypeBigInt
)

// Client returns a builder holding empty copies of the game client tables
// the typed layer binds, with their real column names and types. Bucket
// counts are kept small so that chains have collisions.
func Client() *Builder {
	b := New()
	b.Table("BehaviorParameter", 8,
		C("behaviorID", integer), C("parameterID", text), C("value", float))
	b.Table("BehaviorTemplate", 8,
		C("behaviorID", integer), C("templateID", integer), C("effectID", integer), C("effectHandle", text))
	b.Table("ComponentsRegistry", 8,
		C("id", integer), C("component_type", integer), C("component_id", integer))
	b.Table("DestructibleComponent", 4,
		C("id", integer), C("faction", integer), C("factionList", text), C("life", integer),
		C("imagination", integer), C("LootMatrixIndex", integer), C("CurrencyIndex", integer),
		C("level", integer), C("armor", float), C("death_behavior", integer), C("isnpc", boolean),
		C("attack_priority", integer), C("isSmashable", boolean), C("difficultyLevel", integer))
	b.Table("Icons", 4,
		C("IconID", integer), C("IconPath", text), C("IconName", text))
	b.Table("ItemSets", 4,
		C("setID", integer), C("locStatus", integer), C("itemIDs", text), C("kitType", integer),
		C("kitRank", integer), C("kitImage", integer), C("skillSetWith2", integer),
		C("skillSetWith3", integer), C("skillSetWith4", integer), C("skillSetWith5", integer),
		C("skillSetWith6", integer), C("localize", boolean), C("gate_version", text),
		C("kitID", integer), C("priority", float))
	b.Table("ItemSetSkills", 4,
		C("SkillSetID", integer), C("SkillID", integer), C("SkillCastType", integer))
	b.Table("LootTable", 8,
		C("itemid", integer), C("LootTableIndex", integer), C("id", integer),
		C("MissionDrop", boolean), C("sortPriority", integer))
	b.Table("Missions", 8,
		C("id", integer), C("defined_type", text), C("defined_subtype", text),
		C("UISortOrder", integer), C("reward_currency", bigint), C("isMission", boolean),
		C("missionIconID", integer), C("gate_version", text))
	b.Table("MissionTasks", 8,
		C("id", integer), C("locStatus", integer), C("taskType", integer), C("target", integer),
		C("targetGroup", text), C("targetValue", integer), C("taskParam1", text),
		C("largeTaskIcon", text), C("IconID", integer), C("uid", integer),
		C("largeTaskIconID", integer), C("localize", boolean), C("gate_version", text))
	b.Table("Objects", 16,
		C("id", integer), C("name", text), C("placeable", boolean), C("type", text),
		C("description", text), C("localize", boolean), C("npcTemplateID", integer),
		C("displayName", text), C("interactionDistance", float), C("nametag", boolean),
		C("_internalNotes", text), C("locStatus", integer), C("gate_version", text),
		C("HQ_valid", boolean))
	b.Table("ObjectSkills", 8,
		C("objectTemplate", integer), C("skillID", integer), C("castOnType", integer),
		C("AICombatWeight", integer))
	b.Table("RebuildComponent", 4,
		C("id", integer), C("reset_time", float), C("complete_time", float),
		C("take_imagination", integer), C("interruptible", boolean), C("self_activator", boolean),
		C("custom_modules", text), C("activityID", integer), C("post_imagination_cost", integer),
		C("time_before_smash", float))
	b.Table("SkillBehavior", 8,
		C("skillID", integer), C("locStatus", integer), C("behaviorID", integer),
		C("imaginationcost", integer), C("cooldowngroup", integer), C("cooldown", float),
		C("inNpcEditor", boolean), C("skillIcon", integer), C("oomSkillID", text),
		C("oomBehaviorEffectID", integer), C("castTypeDesc", integer), C("imBonusUI", integer),
		C("lifeBonusUI", integer), C("armorBonusUI", integer), C("damageUI", integer),
		C("hideIcon", boolean), C("localize", boolean), C("gate_version", text),
		C("cancelType", integer))
	return b
}

// Insert adds a row to the named table; see TableBuilder.Insert.
func (b *Builder) Insert(table string, fields map[string]any) *Builder {
	b.Lookup(table).Insert(fields)
	return b
}
