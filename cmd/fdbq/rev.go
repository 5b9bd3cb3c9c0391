package main

import (
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/andreyvit/fdb/adapter"
	"github.com/andreyvit/fdb/revindex"
)

func addRevCommands(rev *kingpin.CmdClause, handlers map[string]handler) {
	c := rev.Command("skill", "Missions, objects and item sets using a skill.")
	skillID := c.Arg("id", "Skill id.").Required().Int32()
	handlers[c.FullCommand()] = revHandler(func(a *app) any {
		s := a.rev.Skill(*skillID)
		return map[string]any{
			"mission_tasks": adapter.MissionTasks(a.tdb, a.rev, s.MissionTasks),
			"objects":       adapter.ObjectRefs(a.rev, s.Objects),
			"item_sets":     nonNil(s.ItemSets),
		}
	})

	c = rev.Command("behavior", "Links of a behavior and everything it can trigger.")
	behaviorID := c.Arg("id", "Behavior id.").Required().Int32()
	handlers[c.FullCommand()] = revHandler(func(a *app) any {
		b := a.rev.Behavior(*behaviorID)
		cache := revindex.NewBehaviorCache(a.rev, a.cfg.BehaviorCacheSize)
		return map[string]any{
			"skill":   b.Skill,
			"uses":    b.Uses,
			"used_by": b.UsedBy,
			"closure": cache.BehaviorSet(*behaviorID),
		}
	})

	c = rev.Command("mission-types", "Mission types, subtypes of a type, or missions of a subtype.")
	missionType := c.Arg("type", "Mission type.").String()
	missionSubtype := c.Arg("subtype", "Mission subtype.").String()
	handlers[c.FullCommand()] = revHandler(func(a *app) any {
		switch {
		case *missionType == "":
			return a.rev.MissionTypes
		case *missionSubtype == "":
			return nonNilMap(a.rev.MissionTypes[*missionType])
		default:
			return nonNil(a.rev.MissionsOf(*missionType, *missionSubtype))
		}
	})

	c = rev.Command("component-type", "Components of a type, or the objects using one of them.")
	componentType := c.Arg("type", "Component type.").Required().Int32()
	componentID := c.Arg("id", "Component id.").Int32()
	handlers[c.FullCommand()] = revHandler(func(a *app) any {
		use := a.rev.ComponentUse[*componentType]
		if use == nil {
			return []int32{}
		}
		if *componentID == 0 {
			return adapter.SortedKeys(use.Components)
		}
		return adapter.ObjectRefs(a.rev, a.rev.ComponentLOTs(*componentType, *componentID))
	})

	c = rev.Command("faction", "Destructible components of a faction.")
	factionID := c.Arg("id", "Faction id.").Required().Int32()
	handlers[c.FullCommand()] = revHandler(func(a *app) any {
		return a.rev.Faction(*factionID)
	})

	c = rev.Command("loot-table-index", "LootTable rows of a loot table index.")
	lti := c.Arg("id", "Loot table index.").Required().Int32()
	handlers[c.FullCommand()] = revHandler(func(a *app) any {
		return adapter.LootTableEntries(a.tdb, a.rev, *lti)
	})

	c = rev.Command("gate-version", "Gate versions, or everything gated by one.")
	gateName := c.Arg("name", "Gate version.").String()
	handlers[c.FullCommand()] = revHandler(func(a *app) any {
		if *gateName == "" {
			return nonNil(a.rev.GateVersionNames())
		}
		return a.rev.GateVersion(*gateName)
	})

	c = rev.Command("object", "Search record and reverse links of an object.")
	objectID := c.Arg("id", "Object id (LOT).").Required().Int32()
	handlers[c.FullCommand()] = revHandler(func(a *app) any {
		ref, ok := a.rev.Object(*objectID)
		if !ok {
			return nil
		}
		return map[string]any{
			"ref": ref,
			"rev": a.rev.ObjectRev(*objectID),
		}
	})

	c = rev.Command("object-type", "Object types, or the objects of a type.")
	objectType := c.Arg("type", "Object type.").String()
	handlers[c.FullCommand()] = revHandler(func(a *app) any {
		if *objectType == "" {
			return nonNil(a.rev.ObjectTypeNames())
		}
		return adapter.ObjectRefs(a.rev, a.rev.ObjectsOfType(*objectType))
	})

	c = rev.Command("activity", "Rebuild components of an activity.")
	activityID := c.Arg("id", "Activity id.").Required().Int32()
	handlers[c.FullCommand()] = revHandler(func(a *app) any {
		return nonNil(a.rev.Rebuilds(*activityID))
	})

	c = rev.Command("cooldown-group", "Skills sharing a cooldown group.")
	groupID := c.Arg("id", "Cooldown group.").Required().Int32()
	handlers[c.FullCommand()] = revHandler(func(a *app) any {
		return nonNil(a.rev.CooldownGroup(*groupID))
	})

	c = rev.Command("tasks", "MissionTasks rows by task uid.")
	uids := c.Arg("uid", "Task uids.").Required().Int32List()
	handlers[c.FullCommand()] = revHandler(func(a *app) any {
		return adapter.MissionTasks(a.tdb, a.rev, *uids)
	})
}

func revHandler(f func(a *app) any) handler {
	return func(a *app) error {
		if err := a.openRev(); err != nil {
			return err
		}
		return a.printJSON(f(a))
	}
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func nonNilMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return map[K]V{}
	}
	return m
}
