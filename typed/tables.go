package typed

import (
	"github.com/andreyvit/fdb"
)

// BehaviorParameter: behaviorID → (parameterID, value) pairs.
type BehaviorParameterTable struct {
	table[BehaviorParameterRow]
	colBehaviorID, colParameterID, colValue int
}

type BehaviorParameterRow struct {
	fdb.Row
	t *BehaviorParameterTable
}

func bindBehaviorParameter(b *binder) *BehaviorParameterTable {
	t := &BehaviorParameterTable{}
	t.Table = b.bind("BehaviorParameter",
		col("behaviorID", &t.colBehaviorID),
		col("parameterID", &t.colParameterID),
		col("value", &t.colValue))
	t.wrap = func(r fdb.Row) BehaviorParameterRow { return BehaviorParameterRow{r, t} }
	return t
}

func (r BehaviorParameterRow) BehaviorID() int32 { return r.Integer(r.t.colBehaviorID) }
func (r BehaviorParameterRow) ParameterID() fdb.Latin1 { return r.Text(r.t.colParameterID) }
func (r BehaviorParameterRow) Value() float32 { return r.Float(r.t.colValue) }

// BehaviorTemplate: behaviorID → template.
type BehaviorTemplateTable struct {
	table[BehaviorTemplateRow]
	colBehaviorID, colTemplateID, colEffectID, colEffectHandle int
}

type BehaviorTemplateRow struct {
	fdb.Row
	t *BehaviorTemplateTable
}

func bindBehaviorTemplate(b *binder) *BehaviorTemplateTable {
	t := &BehaviorTemplateTable{}
	t.Table = b.bind("BehaviorTemplate",
		col("behaviorID", &t.colBehaviorID),
		col("templateID", &t.colTemplateID),
		col("effectID", &t.colEffectID),
		col("effectHandle", &t.colEffectHandle))
	t.wrap = func(r fdb.Row) BehaviorTemplateRow { return BehaviorTemplateRow{r, t} }
	return t
}

func (r BehaviorTemplateRow) BehaviorID() int32 { return r.Integer(r.t.colBehaviorID) }
func (r BehaviorTemplateRow) TemplateID() int32 { return r.Integer(r.t.colTemplateID) }
func (r BehaviorTemplateRow) EffectID() (int32, bool) {
	return r.OptInteger(r.t.colEffectID)
}
func (r BehaviorTemplateRow) EffectHandle() (fdb.Latin1, bool) {
	return r.OptText(r.t.colEffectHandle)
}

// ComponentsRegistry: object (LOT) → (component type, component id).
type ComponentsRegistryTable struct {
	table[ComponentsRegistryRow]
	colID, colComponentType, colComponentID int
}

type ComponentsRegistryRow struct {
	fdb.Row
	t *ComponentsRegistryTable
}

func bindComponentsRegistry(b *binder) *ComponentsRegistryTable {
	t := &ComponentsRegistryTable{}
	t.Table = b.bind("ComponentsRegistry",
		col("id", &t.colID),
		col("component_type", &t.colComponentType),
		col("component_id", &t.colComponentID))
	t.wrap = func(r fdb.Row) ComponentsRegistryRow { return ComponentsRegistryRow{r, t} }
	return t
}

func (r ComponentsRegistryRow) ID() int32 { return r.Integer(r.t.colID) }
func (r ComponentsRegistryRow) ComponentType() int32 { return r.Integer(r.t.colComponentType) }
func (r ComponentsRegistryRow) ComponentID() int32 { return r.Integer(r.t.colComponentID) }

type DestructibleComponentTable struct {
	table[DestructibleComponentRow]
	colID, colFaction, colFactionList, colLife, colImagination int
	colLootMatrixIndex, colCurrencyIndex, colLevel, colArmor   int
	colIsNPC, colIsSmashable                                   int
}

type DestructibleComponentRow struct {
	fdb.Row
	t *DestructibleComponentTable
}

func bindDestructibleComponent(b *binder) *DestructibleComponentTable {
	t := &DestructibleComponentTable{}
	t.Table = b.bind("DestructibleComponent",
		col("id", &t.colID),
		col("faction", &t.colFaction),
		col("factionList", &t.colFactionList),
		col("life", &t.colLife),
		col("imagination", &t.colImagination),
		col("LootMatrixIndex", &t.colLootMatrixIndex),
		col("CurrencyIndex", &t.colCurrencyIndex),
		col("level", &t.colLevel),
		col("armor", &t.colArmor),
		col("isnpc", &t.colIsNPC),
		col("isSmashable", &t.colIsSmashable))
	t.wrap = func(r fdb.Row) DestructibleComponentRow { return DestructibleComponentRow{r, t} }
	return t
}

func (r DestructibleComponentRow) ID() int32 { return r.Integer(r.t.colID) }
func (r DestructibleComponentRow) Faction() (int32, bool) {
	return r.OptInteger(r.t.colFaction)
}

// FactionList holds a single faction id stored as text.
func (r DestructibleComponentRow) FactionList() fdb.Latin1 { return r.Text(r.t.colFactionList) }
func (r DestructibleComponentRow) Life() (int32, bool) { return r.OptInteger(r.t.colLife) }
func (r DestructibleComponentRow) Imagination() (int32, bool) {
	return r.OptInteger(r.t.colImagination)
}
func (r DestructibleComponentRow) LootMatrixIndex() (int32, bool) {
	return r.OptInteger(r.t.colLootMatrixIndex)
}
func (r DestructibleComponentRow) CurrencyIndex() (int32, bool) {
	return r.OptInteger(r.t.colCurrencyIndex)
}
func (r DestructibleComponentRow) Level() (int32, bool) { return r.OptInteger(r.t.colLevel) }
func (r DestructibleComponentRow) Armor() (float32, bool) { return r.OptFloat(r.t.colArmor) }
func (r DestructibleComponentRow) IsNPC() (bool, bool) { return r.OptBoolean(r.t.colIsNPC) }
func (r DestructibleComponentRow) IsSmashable() (bool, bool) {
	return r.OptBoolean(r.t.colIsSmashable)
}

type IconsTable struct {
	table[IconsRow]
	colIconID, colIconPath, colIconName int
}

type IconsRow struct {
	fdb.Row
	t *IconsTable
}

func bindIcons(b *binder) *IconsTable {
	t := &IconsTable{}
	t.Table = b.bind("Icons",
		col("IconID", &t.colIconID),
		col("IconPath", &t.colIconPath),
		col("IconName", &t.colIconName))
	t.wrap = func(r fdb.Row) IconsRow { return IconsRow{r, t} }
	return t
}

func (r IconsRow) IconID() int32 { return r.Integer(r.t.colIconID) }
func (r IconsRow) IconPath() (fdb.Latin1, bool) { return r.OptText(r.t.colIconPath) }
func (r IconsRow) IconName() (fdb.Latin1, bool) { return r.OptText(r.t.colIconName) }

type ItemSetsTable struct {
	table[ItemSetsRow]
	colSetID, colItemIDs, colKitType, colKitRank, colKitImage, colGateVersion int
}

type ItemSetsRow struct {
	fdb.Row
	t *ItemSetsTable
}

func bindItemSets(b *binder) *ItemSetsTable {
	t := &ItemSetsTable{}
	t.Table = b.bind("ItemSets",
		col("setID", &t.colSetID),
		col("itemIDs", &t.colItemIDs),
		col("kitType", &t.colKitType),
		col("kitRank", &t.colKitRank),
		col("kitImage", &t.colKitImage),
		col("gate_version", &t.colGateVersion))
	t.wrap = func(r fdb.Row) ItemSetsRow { return ItemSetsRow{r, t} }
	return t
}

func (r ItemSetsRow) SetID() int32 { return r.Integer(r.t.colSetID) }

// RawItemIDs is the comma separated list of item LOTs.
func (r ItemSetsRow) RawItemIDs() fdb.Latin1 { return r.Text(r.t.colItemIDs) }

// KitType is the faction of the kit.
func (r ItemSetsRow) KitType() int32 { return r.Integer(r.t.colKitType) }
func (r ItemSetsRow) KitRank() (int32, bool) { return r.OptInteger(r.t.colKitRank) }
func (r ItemSetsRow) KitImage() (int32, bool) { return r.OptInteger(r.t.colKitImage) }
func (r ItemSetsRow) GateVersion() (fdb.Latin1, bool) {
	return r.OptText(r.t.colGateVersion)
}

type ItemSetSkillsTable struct {
	table[ItemSetSkillsRow]
	colSkillSetID, colSkillID, colSkillCastType int
}

type ItemSetSkillsRow struct {
	fdb.Row
	t *ItemSetSkillsTable
}

func bindItemSetSkills(b *binder) *ItemSetSkillsTable {
	t := &ItemSetSkillsTable{}
	t.Table = b.bind("ItemSetSkills",
		col("SkillSetID", &t.colSkillSetID),
		col("SkillID", &t.colSkillID),
		col("SkillCastType", &t.colSkillCastType))
	t.wrap = func(r fdb.Row) ItemSetSkillsRow { return ItemSetSkillsRow{r, t} }
	return t
}

func (r ItemSetSkillsRow) SkillSetID() int32 { return r.Integer(r.t.colSkillSetID) }
func (r ItemSetSkillsRow) SkillID() int32 { return r.Integer(r.t.colSkillID) }
func (r ItemSetSkillsRow) SkillCastType() (int32, bool) {
	return r.OptInteger(r.t.colSkillCastType)
}

// LootTable is keyed by itemid; id identifies the entry.
type LootTableTable struct {
	table[LootTableRow]
	colItemID, colLootTableIndex, colID, colMissionDrop, colSortPriority int
}

type LootTableRow struct {
	fdb.Row
	t *LootTableTable
}

func bindLootTable(b *binder) *LootTableTable {
	t := &LootTableTable{}
	t.Table = b.bind("LootTable",
		col("itemid", &t.colItemID),
		col("LootTableIndex", &t.colLootTableIndex),
		col("id", &t.colID),
		col("MissionDrop", &t.colMissionDrop),
		col("sortPriority", &t.colSortPriority))
	t.wrap = func(r fdb.Row) LootTableRow { return LootTableRow{r, t} }
	return t
}

// IDColumn is the column holding the entry id, for probes by id within an
// item's bucket.
func (t *LootTableTable) IDColumn() int { return t.colID }

func (r LootTableRow) ItemID() int32 { return r.Integer(r.t.colItemID) }
func (r LootTableRow) LootTableIndex() int32 { return r.Integer(r.t.colLootTableIndex) }
func (r LootTableRow) ID() int32 { return r.Integer(r.t.colID) }
func (r LootTableRow) MissionDrop() bool { return r.Boolean(r.t.colMissionDrop) }
func (r LootTableRow) SortPriority() (int32, bool) {
	return r.OptInteger(r.t.colSortPriority)
}

type MissionsTable struct {
	table[MissionsRow]
	colID, colDefinedType, colDefinedSubtype, colUISortOrder int
	colIsMission, colMissionIconID, colGateVersion           int
}

type MissionsRow struct {
	fdb.Row
	t *MissionsTable
}

func bindMissions(b *binder) *MissionsTable {
	t := &MissionsTable{}
	t.Table = b.bind("Missions",
		col("id", &t.colID),
		col("defined_type", &t.colDefinedType),
		col("defined_subtype", &t.colDefinedSubtype),
		col("UISortOrder", &t.colUISortOrder),
		col("isMission", &t.colIsMission),
		col("missionIconID", &t.colMissionIconID),
		col("gate_version", &t.colGateVersion))
	t.wrap = func(r fdb.Row) MissionsRow { return MissionsRow{r, t} }
	return t
}

func (r MissionsRow) ID() int32 { return r.Integer(r.t.colID) }
func (r MissionsRow) DefinedType() (fdb.Latin1, bool) {
	return r.OptText(r.t.colDefinedType)
}
func (r MissionsRow) DefinedSubtype() (fdb.Latin1, bool) {
	return r.OptText(r.t.colDefinedSubtype)
}
func (r MissionsRow) UISortOrder() (int32, bool) { return r.OptInteger(r.t.colUISortOrder) }

// IsMission defaults to true when unset.
func (r MissionsRow) IsMission() bool {
	v, ok := r.OptBoolean(r.t.colIsMission)
	return v || !ok
}
func (r MissionsRow) MissionIconID() (int32, bool) { return r.OptInteger(r.t.colMissionIconID) }
func (r MissionsRow) GateVersion() (fdb.Latin1, bool) {
	return r.OptText(r.t.colGateVersion)
}

// MissionTasks is keyed by the mission id; uid identifies the task.
type MissionTasksTable struct {
	table[MissionTasksRow]
	colID, colLocStatus, colTaskType, colTarget, colTargetGroup, colTargetValue int
	colTaskParam1, colLargeTaskIcon, colIconID, colUID, colLargeTaskIconID      int
	colLocalize, colGateVersion                                                 int
}

type MissionTasksRow struct {
	fdb.Row
	t *MissionTasksTable
}

func bindMissionTasks(b *binder) *MissionTasksTable {
	t := &MissionTasksTable{}
	t.Table = b.bind("MissionTasks",
		col("id", &t.colID),
		col("locStatus", &t.colLocStatus),
		col("taskType", &t.colTaskType),
		col("target", &t.colTarget),
		col("targetGroup", &t.colTargetGroup),
		col("targetValue", &t.colTargetValue),
		col("taskParam1", &t.colTaskParam1),
		col("largeTaskIcon", &t.colLargeTaskIcon),
		col("IconID", &t.colIconID),
		col("uid", &t.colUID),
		col("largeTaskIconID", &t.colLargeTaskIconID),
		col("localize", &t.colLocalize),
		col("gate_version", &t.colGateVersion))
	t.wrap = func(r fdb.Row) MissionTasksRow { return MissionTasksRow{r, t} }
	return t
}

// UIDColumn is the column holding the task uid.
func (t *MissionTasksTable) UIDColumn() int { return t.colUID }

func (r MissionTasksRow) ID() int32 { return r.Integer(r.t.colID) }
func (r MissionTasksRow) LocStatus() int32 { return r.Integer(r.t.colLocStatus) }
func (r MissionTasksRow) TaskType() int32 { return r.Integer(r.t.colTaskType) }
func (r MissionTasksRow) Target() (int32, bool) {
	return r.OptInteger(r.t.colTarget)
}
func (r MissionTasksRow) TargetGroup() (fdb.Latin1, bool) {
	return r.OptText(r.t.colTargetGroup)
}
func (r MissionTasksRow) TargetValue() (int32, bool) {
	return r.OptInteger(r.t.colTargetValue)
}
func (r MissionTasksRow) TaskParam1() (fdb.Latin1, bool) {
	return r.OptText(r.t.colTaskParam1)
}
func (r MissionTasksRow) LargeTaskIcon() (fdb.Latin1, bool) {
	return r.OptText(r.t.colLargeTaskIcon)
}
func (r MissionTasksRow) IconID() (int32, bool) { return r.OptInteger(r.t.colIconID) }
func (r MissionTasksRow) UID() int32 { return r.Integer(r.t.colUID) }
func (r MissionTasksRow) LargeTaskIconID() (int32, bool) {
	return r.OptInteger(r.t.colLargeTaskIconID)
}
func (r MissionTasksRow) Localize() bool { return r.Boolean(r.t.colLocalize) }
func (r MissionTasksRow) GateVersion() (fdb.Latin1, bool) {
	return r.OptText(r.t.colGateVersion)
}

type ObjectsTable struct {
	table[ObjectsRow]
	colID, colName, colPlaceable, colType, colDescription, colNPCTemplateID  int
	colDisplayName, colInteractionDistance, colInternalNotes, colGateVersion int
}

type ObjectsRow struct {
	fdb.Row
	t *ObjectsTable
}

func bindObjects(b *binder) *ObjectsTable {
	t := &ObjectsTable{}
	t.Table = b.bind("Objects",
		col("id", &t.colID),
		col("name", &t.colName),
		col("placeable", &t.colPlaceable),
		col("type", &t.colType),
		col("description", &t.colDescription),
		col("npcTemplateID", &t.colNPCTemplateID),
		col("displayName", &t.colDisplayName),
		col("interactionDistance", &t.colInteractionDistance),
		col("_internalNotes", &t.colInternalNotes),
		col("gate_version", &t.colGateVersion))
	t.wrap = func(r fdb.Row) ObjectsRow { return ObjectsRow{r, t} }
	return t
}

func (r ObjectsRow) ID() int32 { return r.Integer(r.t.colID) }
func (r ObjectsRow) Name() (fdb.Latin1, bool) { return r.OptText(r.t.colName) }
func (r ObjectsRow) Placeable() (bool, bool) { return r.OptBoolean(r.t.colPlaceable) }
func (r ObjectsRow) Type() fdb.Latin1 { return r.Text(r.t.colType) }
func (r ObjectsRow) Description() (fdb.Latin1, bool) {
	return r.OptText(r.t.colDescription)
}
func (r ObjectsRow) NPCTemplateID() (int32, bool) { return r.OptInteger(r.t.colNPCTemplateID) }
func (r ObjectsRow) DisplayName() (fdb.Latin1, bool) {
	return r.OptText(r.t.colDisplayName)
}
func (r ObjectsRow) InteractionDistance() (float32, bool) {
	return r.OptFloat(r.t.colInteractionDistance)
}
func (r ObjectsRow) InternalNotes() (fdb.Latin1, bool) {
	return r.OptText(r.t.colInternalNotes)
}
func (r ObjectsRow) GateVersion() (fdb.Latin1, bool) {
	return r.OptText(r.t.colGateVersion)
}

type ObjectSkillsTable struct {
	table[ObjectSkillsRow]
	colObjectTemplate, colSkillID, colCastOnType, colAICombatWeight int
}

type ObjectSkillsRow struct {
	fdb.Row
	t *ObjectSkillsTable
}

func bindObjectSkills(b *binder) *ObjectSkillsTable {
	t := &ObjectSkillsTable{}
	t.Table = b.bind("ObjectSkills",
		col("objectTemplate", &t.colObjectTemplate),
		col("skillID", &t.colSkillID),
		col("castOnType", &t.colCastOnType),
		col("AICombatWeight", &t.colAICombatWeight))
	t.wrap = func(r fdb.Row) ObjectSkillsRow { return ObjectSkillsRow{r, t} }
	return t
}

func (r ObjectSkillsRow) ObjectTemplate() int32 { return r.Integer(r.t.colObjectTemplate) }
func (r ObjectSkillsRow) SkillID() int32 { return r.Integer(r.t.colSkillID) }
func (r ObjectSkillsRow) CastOnType() (int32, bool) {
	return r.OptInteger(r.t.colCastOnType)
}
func (r ObjectSkillsRow) AICombatWeight() (int32, bool) {
	return r.OptInteger(r.t.colAICombatWeight)
}

type RebuildComponentTable struct {
	table[RebuildComponentRow]
	colID, colResetTime, colCompleteTime, colTakeImagination, colInterruptible int
	colSelfActivator, colCustomModules, colActivityID, colPostImaginationCost  int
	colTimeBeforeSmash                                                         int
}

type RebuildComponentRow struct {
	fdb.Row
	t *RebuildComponentTable
}

func bindRebuildComponent(b *binder) *RebuildComponentTable {
	t := &RebuildComponentTable{}
	t.Table = b.bind("RebuildComponent",
		col("id", &t.colID),
		col("reset_time", &t.colResetTime),
		col("complete_time", &t.colCompleteTime),
		col("take_imagination", &t.colTakeImagination),
		col("interruptible", &t.colInterruptible),
		col("self_activator", &t.colSelfActivator),
		col("custom_modules", &t.colCustomModules),
		col("activityID", &t.colActivityID),
		col("post_imagination_cost", &t.colPostImaginationCost),
		col("time_before_smash", &t.colTimeBeforeSmash))
	t.wrap = func(r fdb.Row) RebuildComponentRow { return RebuildComponentRow{r, t} }
	return t
}

func (r RebuildComponentRow) ID() int32 { return r.Integer(r.t.colID) }
func (r RebuildComponentRow) ResetTime() (float32, bool) {
	return r.OptFloat(r.t.colResetTime)
}
func (r RebuildComponentRow) CompleteTime() (float32, bool) {
	return r.OptFloat(r.t.colCompleteTime)
}
func (r RebuildComponentRow) TakeImagination() (int32, bool) {
	return r.OptInteger(r.t.colTakeImagination)
}
func (r RebuildComponentRow) Interruptible() (bool, bool) {
	return r.OptBoolean(r.t.colInterruptible)
}
func (r RebuildComponentRow) SelfActivator() (bool, bool) {
	return r.OptBoolean(r.t.colSelfActivator)
}
func (r RebuildComponentRow) CustomModules() (fdb.Latin1, bool) {
	return r.OptText(r.t.colCustomModules)
}
func (r RebuildComponentRow) ActivityID() (int32, bool) {
	return r.OptInteger(r.t.colActivityID)
}
func (r RebuildComponentRow) PostImaginationCost() (int32, bool) {
	return r.OptInteger(r.t.colPostImaginationCost)
}
func (r RebuildComponentRow) TimeBeforeSmash() (float32, bool) {
	return r.OptFloat(r.t.colTimeBeforeSmash)
}

// SkillBehavior: skillID → root behavior and costs.
type SkillBehaviorTable struct {
	table[SkillBehaviorRow]
	colSkillID, colLocStatus, colBehaviorID, colImaginationCost, colCooldownGroup int
	colCooldown, colInNPCEditor, colSkillIcon, colOOMSkillID, colCastTypeDesc     int
	colGateVersion, colCancelType                                                 int
}

type SkillBehaviorRow struct {
	fdb.Row
	t *SkillBehaviorTable
}

func bindSkillBehavior(b *binder) *SkillBehaviorTable {
	t := &SkillBehaviorTable{}
	t.Table = b.bind("SkillBehavior",
		col("skillID", &t.colSkillID),
		col("locStatus", &t.colLocStatus),
		col("behaviorID", &t.colBehaviorID),
		col("imaginationcost", &t.colImaginationCost),
		col("cooldowngroup", &t.colCooldownGroup),
		col("cooldown", &t.colCooldown),
		col("inNpcEditor", &t.colInNPCEditor),
		col("skillIcon", &t.colSkillIcon),
		col("oomSkillID", &t.colOOMSkillID),
		col("castTypeDesc", &t.colCastTypeDesc),
		col("gate_version", &t.colGateVersion),
		col("cancelType", &t.colCancelType))
	t.wrap = func(r fdb.Row) SkillBehaviorRow { return SkillBehaviorRow{r, t} }
	return t
}

func (r SkillBehaviorRow) SkillID() int32 { return r.Integer(r.t.colSkillID) }
func (r SkillBehaviorRow) LocStatus() int32 { return r.Integer(r.t.colLocStatus) }
func (r SkillBehaviorRow) BehaviorID() int32 { return r.Integer(r.t.colBehaviorID) }
func (r SkillBehaviorRow) ImaginationCost() (int32, bool) {
	return r.OptInteger(r.t.colImaginationCost)
}
func (r SkillBehaviorRow) CooldownGroup() (int32, bool) {
	return r.OptInteger(r.t.colCooldownGroup)
}
func (r SkillBehaviorRow) Cooldown() (float32, bool) { return r.OptFloat(r.t.colCooldown) }
func (r SkillBehaviorRow) InNPCEditor() (bool, bool) {
	return r.OptBoolean(r.t.colInNPCEditor)
}
func (r SkillBehaviorRow) SkillIcon() (int32, bool) { return r.OptInteger(r.t.colSkillIcon) }
func (r SkillBehaviorRow) OOMSkillID() (fdb.Latin1, bool) {
	return r.OptText(r.t.colOOMSkillID)
}
func (r SkillBehaviorRow) CastTypeDesc() (int32, bool) {
	return r.OptInteger(r.t.colCastTypeDesc)
}
func (r SkillBehaviorRow) GateVersion() (fdb.Latin1, bool) {
	return r.OptText(r.t.colGateVersion)
}
func (r SkillBehaviorRow) CancelType() (int32, bool) {
	return r.OptInteger(r.t.colCancelType)
}
