package typed_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/andreyvit/fdb"
	"github.com/andreyvit/fdb/fdbtest"
	"github.com/andreyvit/fdb/typed"
)

func setup(t *testing.T, b *fdbtest.Builder) *typed.Database {
	t.Helper()
	tdb, err := typed.Open(b.Open(t))
	if err != nil {
		t.Fatalf("typed.Open: %v", err)
	}
	return tdb
}

func TestOpen_missingTable(t *testing.T) {
	b := fdbtest.New()
	b.Table("Icons", 1, fdbtest.C("IconID", fdb.TypeInteger))
	_, err := typed.Open(b.Open(t))
	if err == nil {
		t.Fatal("Open succeeded on an incomplete schema")
	}
	var se *typed.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("err = %T %v, wanted *SchemaError", err, err)
	}
	if se.Table != "BehaviorParameter" || se.Column != "" {
		t.Errorf("first SchemaError = %+v", se)
	}
	if a, e := (&typed.SchemaError{Table: "Icons", Column: "IconPath"}).Error(), "typed: table Icons: missing column IconPath"; a != e {
		t.Errorf("Error() = %q, wanted %q", a, e)
	}
}

func TestOpen_missingColumn(t *testing.T) {
	b := fdbtest.Client()
	icons := b.Lookup("Icons")
	icons.Columns[1].Name = "iconpath"
	_, err := typed.Open(b.Open(t))
	var se *typed.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, wanted *SchemaError", err)
	}
	deepEqual(t, *se, typed.SchemaError{Table: "Icons", Column: "IconPath"})
}

func TestOpen_columnOrderDoesNotMatter(t *testing.T) {
	b := fdbtest.Client()
	skills := b.Lookup("ObjectSkills")
	// swap skillID and AICombatWeight
	skills.Columns[1], skills.Columns[3] = skills.Columns[3], skills.Columns[1]
	skills.Insert(map[string]any{"objectTemplate": 10, "skillID": 99, "AICombatWeight": 2})
	tdb := setup(t, b)

	row, ok := tdb.ObjectSkills.Get(10)
	if !ok {
		t.Fatal("Get(10) not found")
	}
	deepEqual(t, row.SkillID(), int32(99))
	w, ok := row.AICombatWeight()
	deepEqual(t, w, int32(2))
	deepEqual(t, ok, true)
}

func TestTypedRows(t *testing.T) {
	b := fdbtest.Client()
	b.Insert("Missions", map[string]any{"id": 1, "defined_type": "Story", "defined_subtype": "Main", "isMission": true, "missionIconID": 7})
	b.Insert("Missions", map[string]any{"id": 2, "defined_type": "Achievement", "isMission": false})
	b.Insert("Missions", map[string]any{"id": 3})
	b.Insert("MissionTasks", map[string]any{"id": 1, "locStatus": 2, "taskType": 10, "uid": 100, "IconID": 5, "taskParam1": "1,2", "localize": true})
	b.Insert("MissionTasks", map[string]any{"id": 1, "locStatus": 2, "taskType": 0, "uid": 101, "localize": false})
	b.Insert("MissionTasks", map[string]any{"id": 2, "locStatus": 2, "taskType": 0, "uid": 102})
	tdb := setup(t, b)

	m, ok := tdb.Missions.Get(1)
	if !ok {
		t.Fatal("mission 1 not found")
	}
	deepEqual(t, m.ID(), int32(1))
	dt, _ := m.DefinedType()
	deepEqual(t, dt.Decode(), "Story")
	icon, ok := m.MissionIconID()
	deepEqual(t, icon, int32(7))
	deepEqual(t, ok, true)
	deepEqual(t, m.Kind(), typed.KindMission)

	m2, _ := tdb.Missions.Get(2)
	deepEqual(t, m2.Kind(), typed.KindAchievement)
	if _, ok := m2.DefinedSubtype(); ok {
		t.Errorf("DefinedSubtype of mission 2 should be absent")
	}
	m3, _ := tdb.Missions.Get(3)
	deepEqual(t, m3.IsMission(), true)

	if _, ok := tdb.Missions.Get(4); ok {
		t.Errorf("Get(4) found a mission")
	}

	tasks := fdb.All(tdb.MissionTasks.ByKey(1))
	deepEqual(t, len(tasks), 2)
	deepEqual(t, tasks[0].UID(), int32(100))
	deepEqual(t, tasks[1].UID(), int32(101))
	deepEqual(t, tasks[0].TaskType(), int32(10))
	p, _ := tasks[0].TaskParam1()
	deepEqual(t, p.Decode(), "1,2")

	task, ok := tdb.MissionTasks.FindBy(1, tdb.MissionTasks.UIDColumn(), 101)
	if !ok || task.Localize() {
		t.Errorf("FindBy(1, uid=101) = %v, %v", task, ok)
	}
	if _, ok := tdb.MissionTasks.FindBy(1, tdb.MissionTasks.UIDColumn(), 102); ok {
		t.Errorf("FindBy(1, uid=102) should miss: the task lives under mission 2")
	}

	icon5 := int32(5)
	deepEqual(t, tdb.MissionTasks.TaskIcons(1), []typed.TaskIcon{{UID: 100, IconID: &icon5}, {UID: 101}})
	deepEqual(t, fdb.Count(tdb.MissionTasks.All()), 3)
}

func TestObjects(t *testing.T) {
	b := fdbtest.Client()
	b.Insert("Objects", map[string]any{"id": 1, "name": "Brick", "type": "Loot", "displayName": "Red Brick", "description": "A brick", "_internalNotes": "common"})
	b.Insert("Objects", map[string]any{"id": 2, "name": "Same", "type": "NPC", "displayName": "Same", "description": "note", "_internalNotes": "note"})
	b.Insert("Objects", map[string]any{"id": 3, "name": "", "type": "Enemy", "displayName": "Shown"})
	b.Insert("Objects", map[string]any{"id": 4, "type": "Enemy", "_internalNotes": "only notes"})
	tdb := setup(t, b)

	tests := []struct {
		id             int32
		title, summary string
	}{
		{1, "Red Brick (Brick) | Object #1", "A brick (common)"},
		{2, "Same | Object #2", "note"},
		{3, "Shown | Object #3", ""},
		{4, "Object #4", "only notes"},
	}
	for _, tt := range tests {
		o, ok := tdb.Objects.Get(tt.id)
		if !ok {
			t.Fatalf("object %d not found", tt.id)
		}
		deepEqual(t, o.Title(), tt.title)
		deepEqual(t, o.Summary(), tt.summary)
	}
	o, _ := tdb.Objects.Get(3)
	deepEqual(t, o.Type().Decode(), "Enemy")
}

func TestItemSetsAndIcons(t *testing.T) {
	b := fdbtest.Client()
	b.Insert("ItemSets", map[string]any{"setID": 3, "itemIDs": "7415, 7416,x, 7417", "kitType": 1})
	b.Insert("Icons", map[string]any{"IconID": 20, "IconPath": `..\..\textures\ui\Inventory\Models\Brick.DDS`})
	b.Insert("Icons", map[string]any{"IconID": 21})
	b.Insert("ComponentsRegistry", map[string]any{"id": 6010, "component_type": 2, "component_id": 100})
	b.Insert("ComponentsRegistry", map[string]any{"id": 6010, "component_type": 7, "component_id": 200})
	tdb := setup(t, b)

	set, ok := tdb.ItemSets.Get(3)
	if !ok {
		t.Fatal("set 3 not found")
	}
	deepEqual(t, set.ItemIDs(), []int32{7415, 7416, 7417})
	if _, ok := set.KitRank(); ok {
		t.Errorf("KitRank should be absent")
	}

	p, ok := tdb.Icons.IconPath(20)
	deepEqual(t, p, "/textures/ui/inventory/models/brick.png")
	deepEqual(t, ok, true)
	if _, ok := tdb.Icons.IconPath(21); ok {
		t.Errorf("icon without path resolved")
	}
	if _, ok := tdb.Icons.IconPath(22); ok {
		t.Errorf("missing icon resolved")
	}

	deepEqual(t, tdb.ComponentsRegistry.ComponentsOf(6010), []typed.ComponentRef{{Type: 2, ID: 100}, {Type: 7, ID: 200}})
}

func TestCleanupIconPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{`..\..\textures\ui\a\B.dds`, "/textures/ui/a/b.png", true},
		{`icons\foo.tga`, "/textures/ui/icons/foo.png", true},
		{`./x/./y`, "/textures/ui/x/y.png", true},
		{`a.b.c`, "/textures/ui/a.b.png", true},
		{`..\..\..\..\top.dds`, "/top.png", true},
		{`\abs\path.dds`, "", false},
		{`/abs/path.dds`, "", false},
	}
	for _, tt := range tests {
		got, ok := typed.CleanupIconPath(fdb.Latin1(tt.input))
		if got != tt.want || ok != tt.ok {
			t.Errorf("CleanupIconPath(%q) = %q, %v, wanted %q, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseIDList(t *testing.T) {
	deepEqual(t, typed.ParseIDList("1,2, 3"), []int32{1, 2, 3})
	deepEqual(t, typed.ParseIDList("1,,abc,-4"), []int32{1, -4})
	deepEqual(t, typed.ParseIDList(""), []int32(nil))
}

func TestDecodeMismatchPanics(t *testing.T) {
	b := fdbtest.Client()
	b.Insert("SkillBehavior", map[string]any{"skillID": 1, "locStatus": 0, "behaviorID": fdb.Text(fdb.Latin1("oops"))})
	tdb := setup(t, b)
	s, _ := tdb.Skills.Get(1)

	defer func() {
		e := recover()
		de, ok := e.(*fdb.DecodeError)
		if !ok {
			t.Fatalf("panic = %v, wanted *DecodeError", e)
		}
		deepEqual(t, de.Column, "behaviorID")
	}()
	s.BehaviorID()
}

func deepEqual[T any](t testing.TB, a, e T) {
	if !reflect.DeepEqual(a, e) {
		t.Helper()
		t.Errorf("** got %v, wanted %v", a, e)
	}
}
