// Package revindex builds the reverse relations of the client database:
// which missions, objects and item sets use a skill, which behaviors call
// each other, which loot tables drop an item, and so on.
//
// A ReverseLookup is built once from a typed.Database and never modified
// afterwards, so it may be shared freely between goroutines.
package revindex

import (
	"context"
	"fmt"
	"maps"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/andreyvit/fdb"
	"github.com/andreyvit/fdb/typed"
)

// ReverseLookup holds every reverse relation. Use the accessor methods
// rather than the maps for lookups: they tolerate a nil receiver and
// missing keys.
type ReverseLookup struct {
	MissionTaskUIDs     map[int32]MissionTaskUID      `json:"mission_task_uids" msgpack:"mission_task_uids"`
	SkillIDs            map[int32]*SkillIDLookup      `json:"skill_ids" msgpack:"skill_ids"`
	Behaviors           map[int32]*BehaviorKeyIndex   `json:"behaviors" msgpack:"behaviors"`
	MissionTypes        map[string]map[string][]int32 `json:"mission_types" msgpack:"mission_types"`
	ObjectTypes         map[string][]int32            `json:"object_types" msgpack:"object_types"`
	ComponentUse        map[int32]*ComponentsUse      `json:"component_use" msgpack:"component_use"`
	Objects             ObjectsRev                    `json:"objects" msgpack:"objects"`
	Activities          map[int32]*ActivityRev        `json:"activities" msgpack:"activities"`
	LootTableIndex      map[int32]*LootTableIndexRev  `json:"loot_table_index" msgpack:"loot_table_index"`
	Factions            map[int32]*FactionRev         `json:"factions" msgpack:"factions"`
	SkillCooldownGroups map[int32][]int32             `json:"skill_cooldown_groups" msgpack:"skill_cooldown_groups"`
	GateVersions        map[string]*GateVersionUse    `json:"gate_versions" msgpack:"gate_versions"`
}

type MissionTaskUID struct {
	Mission int32 `json:"mission" msgpack:"mission"`
}

// SkillIDLookup lists the users of a skill in scan order. Duplicates are
// kept.
type SkillIDLookup struct {
	MissionTasks []int32 `json:"mission_tasks" msgpack:"mission_tasks"`
	Objects      []int32 `json:"objects" msgpack:"objects"`
	ItemSets     []int32 `json:"item_sets" msgpack:"item_sets"`
}

type BehaviorKeyIndex struct {
	Skill  IDSet `json:"skill" msgpack:"skill"`
	Uses   IDSet `json:"uses" msgpack:"uses"`
	UsedBy IDSet `json:"used_by" msgpack:"used_by"`
}

type ComponentsUse struct {
	Components map[int32]*ComponentUse `json:"components" msgpack:"components"`
}

type ComponentUse struct {
	LOTs []int32 `json:"lots" msgpack:"lots"`
}

type ObjectsRev struct {
	SearchIndex map[int32]ObjectRef  `json:"search_index" msgpack:"search_index"`
	Rev         map[int32]*ObjectRev `json:"rev" msgpack:"rev"`
}

// ObjectRef is the searchable summary of an object. Empty strings are
// treated as absent.
type ObjectRef struct {
	Name          string `json:"name" msgpack:"name"`
	Description   string `json:"description,omitempty" msgpack:"description,omitempty"`
	DisplayName   string `json:"displayName,omitempty" msgpack:"display_name,omitempty"`
	InternalNotes string `json:"internalNotes,omitempty" msgpack:"internal_notes,omitempty"`
}

type ObjectRev struct {
	Skills     []int32              `json:"skills,omitempty" msgpack:"skills"`
	ItemSets   []int32              `json:"item_sets,omitempty" msgpack:"item_sets"`
	Components []typed.ComponentRef `json:"components,omitempty" msgpack:"components"`
}

type ActivityRev struct {
	Rebuild []int32 `json:"rebuild" msgpack:"rebuild"`
}

type LootTableIndexRev struct {
	Items map[int32]int32 `json:"items" msgpack:"items"`
}

type FactionRev struct {
	Destructible     IDSet `json:"destructible" msgpack:"destructible"`
	DestructibleList IDSet `json:"destructible_list" msgpack:"destructible_list"`
}

type GateVersionUse struct {
	Skills       []int32 `json:"skills,omitempty" msgpack:"skills"`
	ItemSets     []int32 `json:"item_sets,omitempty" msgpack:"item_sets"`
	Missions     []int32 `json:"missions,omitempty" msgpack:"missions"`
	MissionTasks []int32 `json:"mission_tasks,omitempty" msgpack:"mission_tasks"`
	Objects      []int32 `json:"objects,omitempty" msgpack:"objects"`
}

func newReverseLookup() *ReverseLookup {
	return &ReverseLookup{
		MissionTaskUIDs: make(map[int32]MissionTaskUID),
		SkillIDs:        make(map[int32]*SkillIDLookup),
		Behaviors:       make(map[int32]*BehaviorKeyIndex),
		MissionTypes:    make(map[string]map[string][]int32),
		ObjectTypes:     make(map[string][]int32),
		ComponentUse:    make(map[int32]*ComponentsUse),
		Objects: ObjectsRev{
			SearchIndex: make(map[int32]ObjectRef),
			Rev:         make(map[int32]*ObjectRev),
		},
		Activities:          make(map[int32]*ActivityRev),
		LootTableIndex:      make(map[int32]*LootTableIndexRev),
		Factions:            make(map[int32]*FactionRev),
		SkillCooldownGroups: make(map[int32][]int32),
		GateVersions:        make(map[string]*GateVersionUse),
	}
}

// Build scans every source table once. Mandatory fields that fail to decode
// and unparsable faction lists abort the build; absent optional fields are
// skipped.
func Build(db *typed.Database) (rev *ReverseLookup, err error) {
	defer func() {
		if e := recover(); e != nil {
			de, ok := e.(*fdb.DecodeError)
			if !ok {
				panic(e)
			}
			rev, err = nil, fmt.Errorf("revindex: %w", de)
		}
	}()

	rev = newReverseLookup()
	rev.scanMissions(db.Missions)
	rev.scanMissionTasks(db.MissionTasks)
	rev.scanObjectSkills(db.ObjectSkills)
	rev.scanItemSets(db.ItemSets)
	rev.scanItemSetSkills(db.ItemSetSkills)
	rev.scanObjects(db.Objects)
	rev.scanComponentsRegistry(db.ComponentsRegistry)
	rev.scanBehaviorParameters(db.BehaviorParameters)
	rev.scanSkills(db.Skills)
	rev.scanRebuildComponents(db.RebuildComponents)
	rev.scanLootTable(db.LootTable)
	if err := rev.scanDestructibleComponents(db.DestructibleComponents); err != nil {
		return nil, err
	}

	db.Raw.Logger().LogAttrs(context.Background(), slog.LevelDebug, "revindex: built",
		slog.Int("skills", len(rev.SkillIDs)),
		slog.Int("behaviors", len(rev.Behaviors)),
		slog.Int("objects", len(rev.Objects.SearchIndex)),
		slog.Int("gate_versions", len(rev.GateVersions)))
	return rev, nil
}

func (rev *ReverseLookup) skill(id int32) *SkillIDLookup {
	s := rev.SkillIDs[id]
	if s == nil {
		s = &SkillIDLookup{}
		rev.SkillIDs[id] = s
	}
	return s
}

func (rev *ReverseLookup) behavior(id int32) *BehaviorKeyIndex {
	b := rev.Behaviors[id]
	if b == nil {
		b = &BehaviorKeyIndex{}
		rev.Behaviors[id] = b
	}
	return b
}

func (rev *ReverseLookup) object(id int32) *ObjectRev {
	o := rev.Objects.Rev[id]
	if o == nil {
		o = &ObjectRev{}
		rev.Objects.Rev[id] = o
	}
	return o
}

func (rev *ReverseLookup) gate(v fdb.Latin1, ok bool) *GateVersionUse {
	if !ok {
		return nil
	}
	name := v.Decode()
	g := rev.GateVersions[name]
	if g == nil {
		g = &GateVersionUse{}
		rev.GateVersions[name] = g
	}
	return g
}

func optString(v fdb.Latin1, ok bool) string {
	if !ok {
		return ""
	}
	return v.Decode()
}

func (rev *ReverseLookup) scanMissions(t *typed.MissionsTable) {
	for c := t.All(); c.Next(); {
		row := c.Row()
		id := row.ID()
		typ := optString(row.DefinedType())
		subtype := optString(row.DefinedSubtype())
		subtypes := rev.MissionTypes[typ]
		if subtypes == nil {
			subtypes = make(map[string][]int32)
			rev.MissionTypes[typ] = subtypes
		}
		subtypes[subtype] = append(subtypes[subtype], id)
		if g := rev.gate(row.GateVersion()); g != nil {
			g.Missions = append(g.Missions, id)
		}
	}
}

// skillTaskType marks mission tasks whose taskParam1 lists skill ids.
const skillTaskType = 10

func (rev *ReverseLookup) scanMissionTasks(t *typed.MissionTasksTable) {
	for c := t.All(); c.Next(); {
		row := c.Row()
		uid := row.UID()
		rev.MissionTaskUIDs[uid] = MissionTaskUID{Mission: row.ID()}
		if row.TaskType() == skillTaskType {
			if param, ok := row.TaskParam1(); ok {
				for _, skillID := range typed.ParseIDList(param.Decode()) {
					s := rev.skill(skillID)
					s.MissionTasks = append(s.MissionTasks, uid)
				}
			}
		}
		if g := rev.gate(row.GateVersion()); g != nil {
			g.MissionTasks = append(g.MissionTasks, uid)
		}
	}
}

func (rev *ReverseLookup) scanObjectSkills(t *typed.ObjectSkillsTable) {
	for c := t.All(); c.Next(); {
		row := c.Row()
		lot, skillID := row.ObjectTemplate(), row.SkillID()
		s := rev.skill(skillID)
		s.Objects = append(s.Objects, lot)
		o := rev.object(lot)
		o.Skills = append(o.Skills, skillID)
	}
}

func (rev *ReverseLookup) scanItemSets(t *typed.ItemSetsTable) {
	for c := t.All(); c.Next(); {
		row := c.Row()
		setID := row.SetID()
		for _, lot := range row.ItemIDs() {
			o := rev.object(lot)
			if !slices.Contains(o.ItemSets, setID) {
				o.ItemSets = append(o.ItemSets, setID)
			}
		}
		if g := rev.gate(row.GateVersion()); g != nil {
			g.ItemSets = append(g.ItemSets, setID)
		}
	}
}

func (rev *ReverseLookup) scanItemSetSkills(t *typed.ItemSetSkillsTable) {
	for c := t.All(); c.Next(); {
		row := c.Row()
		s := rev.skill(row.SkillID())
		s.ItemSets = append(s.ItemSets, row.SkillSetID())
	}
}

func (rev *ReverseLookup) scanObjects(t *typed.ObjectsTable) {
	for c := t.All(); c.Next(); {
		row := c.Row()
		id := row.ID()
		typ := row.Type().Decode()
		rev.ObjectTypes[typ] = append(rev.ObjectTypes[typ], id)
		rev.Objects.SearchIndex[id] = ObjectRef{
			Name:          optString(row.Name()),
			Description:   optString(row.Description()),
			DisplayName:   optString(row.DisplayName()),
			InternalNotes: optString(row.InternalNotes()),
		}
		if g := rev.gate(row.GateVersion()); g != nil {
			g.Objects = append(g.Objects, id)
		}
	}
}

func (rev *ReverseLookup) scanComponentsRegistry(t *typed.ComponentsRegistryTable) {
	for c := t.All(); c.Next(); {
		row := c.Row()
		lot, typ, cid := row.ID(), row.ComponentType(), row.ComponentID()
		use := rev.ComponentUse[typ]
		if use == nil {
			use = &ComponentsUse{Components: make(map[int32]*ComponentUse)}
			rev.ComponentUse[typ] = use
		}
		cu := use.Components[cid]
		if cu == nil {
			cu = &ComponentUse{}
			use.Components[cid] = cu
		}
		cu.LOTs = append(cu.LOTs, lot)
		o := rev.object(lot)
		o.Components = append(o.Components, typed.ComponentRef{Type: typ, ID: cid})
	}
}

func (rev *ReverseLookup) scanBehaviorParameters(t *typed.BehaviorParameterTable) {
	for c := t.All(); c.Next(); {
		row := c.Row()
		if !IsActionKey(row.ParameterID().Decode()) {
			continue
		}
		bid := row.BehaviorID()
		target := int32(row.Value())
		b := rev.behavior(bid)
		b.Uses.Insert(target)
		rev.behavior(target).UsedBy.Insert(bid)
	}
}

func (rev *ReverseLookup) scanSkills(t *typed.SkillBehaviorTable) {
	for c := t.All(); c.Next(); {
		row := c.Row()
		skillID := row.SkillID()
		rev.behavior(row.BehaviorID()).Skill.Insert(skillID)
		if group, ok := row.CooldownGroup(); ok {
			rev.SkillCooldownGroups[group] = append(rev.SkillCooldownGroups[group], skillID)
		}
		if g := rev.gate(row.GateVersion()); g != nil {
			g.Skills = append(g.Skills, skillID)
		}
	}
}

func (rev *ReverseLookup) scanRebuildComponents(t *typed.RebuildComponentTable) {
	for c := t.All(); c.Next(); {
		row := c.Row()
		aid, ok := row.ActivityID()
		if !ok {
			continue
		}
		a := rev.Activities[aid]
		if a == nil {
			a = &ActivityRev{}
			rev.Activities[aid] = a
		}
		a.Rebuild = append(a.Rebuild, row.ID())
	}
}

func (rev *ReverseLookup) scanLootTable(t *typed.LootTableTable) {
	for c := t.All(); c.Next(); {
		row := c.Row()
		lti := row.LootTableIndex()
		l := rev.LootTableIndex[lti]
		if l == nil {
			l = &LootTableIndexRev{Items: make(map[int32]int32)}
			rev.LootTableIndex[lti] = l
		}
		l.Items[row.ID()] = row.ItemID()
	}
}

func (rev *ReverseLookup) faction(id int32) *FactionRev {
	f := rev.Factions[id]
	if f == nil {
		f = &FactionRev{}
		rev.Factions[id] = f
	}
	return f
}

func (rev *ReverseLookup) scanDestructibleComponents(t *typed.DestructibleComponentTable) error {
	for c := t.All(); c.Next(); {
		row := c.Row()
		id := row.ID()
		if faction, ok := row.Faction(); ok {
			rev.faction(faction).Destructible.Insert(id)
		}
		raw := row.FactionList().Decode()
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
		if err != nil {
			return fmt.Errorf("revindex: DestructibleComponent %d: factionList %q: %w", id, raw, err)
		}
		if n >= 0 {
			rev.faction(int32(n)).DestructibleList.Insert(id)
		}
	}
	return nil
}

// MissionTask returns the mission a task uid belongs to.
func (rev *ReverseLookup) MissionTask(uid int32) (MissionTaskUID, bool) {
	if rev == nil {
		return MissionTaskUID{}, false
	}
	v, ok := rev.MissionTaskUIDs[uid]
	return v, ok
}

// Skill returns the users of a skill; the result is empty for unknown ids.
func (rev *ReverseLookup) Skill(id int32) SkillIDLookup {
	if rev == nil || rev.SkillIDs[id] == nil {
		return SkillIDLookup{}
	}
	return *rev.SkillIDs[id]
}

func (rev *ReverseLookup) Behavior(id int32) *BehaviorKeyIndex {
	if rev == nil || rev.Behaviors[id] == nil {
		return &BehaviorKeyIndex{}
	}
	return rev.Behaviors[id]
}

// MissionTypeNames returns the mission types in sorted order.
func (rev *ReverseLookup) MissionTypeNames() []string {
	if rev == nil {
		return nil
	}
	return sortedStrings(rev.MissionTypes)
}

// MissionSubtypes returns the subtypes of a mission type in sorted order.
func (rev *ReverseLookup) MissionSubtypes(typ string) []string {
	if rev == nil {
		return nil
	}
	return sortedStrings(rev.MissionTypes[typ])
}

// MissionsOf returns the missions of the given type and subtype in scan
// order.
func (rev *ReverseLookup) MissionsOf(typ, subtype string) []int32 {
	if rev == nil {
		return nil
	}
	return rev.MissionTypes[typ][subtype]
}

func (rev *ReverseLookup) ObjectsOfType(typ string) []int32 {
	if rev == nil {
		return nil
	}
	return rev.ObjectTypes[typ]
}

// ObjectTypeNames returns the object types in sorted order.
func (rev *ReverseLookup) ObjectTypeNames() []string {
	if rev == nil {
		return nil
	}
	return sortedStrings(rev.ObjectTypes)
}

// ComponentLOTs returns the objects using the given component.
func (rev *ReverseLookup) ComponentLOTs(typ, id int32) []int32 {
	if rev == nil || rev.ComponentUse[typ] == nil || rev.ComponentUse[typ].Components[id] == nil {
		return nil
	}
	return rev.ComponentUse[typ].Components[id].LOTs
}

func (rev *ReverseLookup) Object(id int32) (ObjectRef, bool) {
	if rev == nil {
		return ObjectRef{}, false
	}
	v, ok := rev.Objects.SearchIndex[id]
	return v, ok
}

func (rev *ReverseLookup) ObjectRev(id int32) ObjectRev {
	if rev == nil || rev.Objects.Rev[id] == nil {
		return ObjectRev{}
	}
	return *rev.Objects.Rev[id]
}

func (rev *ReverseLookup) Rebuilds(activityID int32) []int32 {
	if rev == nil || rev.Activities[activityID] == nil {
		return nil
	}
	return rev.Activities[activityID].Rebuild
}

// LootItems returns the loot table entries of an index, keyed by row id.
func (rev *ReverseLookup) LootItems(lti int32) map[int32]int32 {
	if rev == nil || rev.LootTableIndex[lti] == nil {
		return nil
	}
	return rev.LootTableIndex[lti].Items
}

func (rev *ReverseLookup) Faction(id int32) FactionRev {
	if rev == nil || rev.Factions[id] == nil {
		return FactionRev{}
	}
	return *rev.Factions[id]
}

func (rev *ReverseLookup) CooldownGroup(id int32) []int32 {
	if rev == nil {
		return nil
	}
	return rev.SkillCooldownGroups[id]
}

func (rev *ReverseLookup) GateVersion(name string) GateVersionUse {
	if rev == nil || rev.GateVersions[name] == nil {
		return GateVersionUse{}
	}
	return *rev.GateVersions[name]
}

// GateVersionNames returns the gate versions in sorted order.
func (rev *ReverseLookup) GateVersionNames() []string {
	if rev == nil {
		return nil
	}
	return sortedStrings(rev.GateVersions)
}

func sortedStrings[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
