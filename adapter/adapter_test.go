package adapter_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/andreyvit/fdb"
	"github.com/andreyvit/fdb/adapter"
	"github.com/andreyvit/fdb/fdbtest"
	"github.com/andreyvit/fdb/revindex"
	"github.com/andreyvit/fdb/typed"
)

type rawFinder struct{ *fdb.Table }

func (f rawFinder) FindBy(pk int32, col int, id int32) (fdb.Row, bool) {
	return f.Table.FindBy(fdb.Integer(pk), col, fdb.Integer(id))
}

func tasks(t *testing.T) rawFinder {
	b := fdbtest.New()
	b.Table("Tasks", 4,
		fdbtest.C("mission", fdb.TypeInteger), fdbtest.C("uid", fdb.TypeInteger), fdbtest.C("name", fdb.TypeText)).
		Add(1, 100, "a").
		Add(1, 101, "b").
		Add(5, 102, "c").
		Add(2, 103, "d")
	return rawFinder{b.Open(t).Table("Tasks")}
}

var taskIndex = adapter.MapIndex{100: 1, 101: 1, 102: 5, 103: 2, 104: 1}

func names(rows []fdb.Row) []string {
	var result []string
	for _, r := range rows {
		result = append(result, r.Text(2).String())
	}
	return result
}

func TestMapAdapter(t *testing.T) {
	a := adapter.MapAdapter[fdb.Row]{
		Table: tasks(t),
		Index: taskIndex,
		Keys:  []int32{101, 999, 100, 101, 104, 102},
		IDCol: 1,
	}
	var keys []int32
	var rows []fdb.Row
	for k, r := range a.All() {
		keys = append(keys, k)
		rows = append(rows, r)
	}
	deepEqual(t, keys, []int32{101, 100, 102})
	deepEqual(t, names(rows), []string{"b", "a", "c"})

	j, err := json.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	deepEqual(t, string(j), `{"101":{"mission":1,"uid":101,"name":"b"},"100":{"mission":1,"uid":100,"name":"a"},"102":{"mission":5,"uid":102,"name":"c"}}`)
}

func TestMapAdapter_stops(t *testing.T) {
	a := adapter.MapAdapter[fdb.Row]{Table: tasks(t), Index: taskIndex, Keys: []int32{100, 101, 102}, IDCol: 1}
	n := 0
	for range a.All() {
		n++
		break
	}
	deepEqual(t, n, 1)
}

func TestMapAdapter_empty(t *testing.T) {
	a := adapter.MapAdapter[fdb.Row]{Table: tasks(t), Index: taskIndex, IDCol: 1}
	j, err := json.Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	deepEqual(t, string(j), `{}`)
}

func TestSeqAdapter(t *testing.T) {
	a := adapter.SeqAdapter[fdb.Row]{
		Table: tasks(t),
		Index: adapter.IndexFunc(func(uid int32) (int32, bool) { return taskIndex.Resolve(uid) }),
		Keys:  []int32{103, 104, 100, 103},
		IDCol: 1,
	}
	var rows []fdb.Row
	for r := range a.All() {
		rows = append(rows, r)
	}
	deepEqual(t, names(rows), []string{"d", "a", "d"})

	j, err := json.Marshal(adapter.SeqAdapter[fdb.Row]{Table: tasks(t), Index: taskIndex, Keys: []int32{100}, IDCol: 1})
	if err != nil {
		t.Fatal(err)
	}
	deepEqual(t, string(j), `[{"mission":1,"uid":100,"name":"a"}]`)
}

func TestIdentity(t *testing.T) {
	b := fdbtest.New()
	b.Table("Things", 2, fdbtest.C("id", fdb.TypeInteger), fdbtest.C("name", fdb.TypeText)).
		Add(1, "one").
		Add(3, "three")
	tbl := rawFinder{b.Open(t).Table("Things")}
	j, err := json.Marshal(adapter.SeqAdapter[fdb.Row]{Table: tbl, Keys: []int32{3, 2, 1}})
	if err != nil {
		t.Fatal(err)
	}
	deepEqual(t, string(j), `[{"id":3,"name":"three"},{"id":1,"name":"one"}]`)
}

func TestFiltered(t *testing.T) {
	f := adapter.Filtered[string]{
		Base: map[int32]string{1: "one", 2: "two", 3: "three"},
		Keys: []int32{3, 4, 1},
	}
	j, err := json.Marshal(f)
	if err != nil {
		t.Fatal(err)
	}
	deepEqual(t, string(j), `{"3":"three","1":"one"}`)

	j, err = json.Marshal(adapter.Filtered[string]{Keys: []int32{1}})
	if err != nil {
		t.Fatal(err)
	}
	deepEqual(t, string(j), `{}`)
}

func TestSortedKeys(t *testing.T) {
	deepEqual(t, adapter.SortedKeys(map[int32]bool{5: true, -1: false, 3: true}), []int32{-1, 3, 5})
	deepEqual(t, adapter.SortedKeys(map[int32]bool(nil)), []int32(nil))
}

func TestReverseLookupJoins(t *testing.T) {
	b := fdbtest.Client()
	b.Insert("MissionTasks", map[string]any{"id": 7, "uid": 70, "taskType": 1, "locStatus": 0, "localize": true})
	b.Insert("MissionTasks", map[string]any{"id": 7, "uid": 71, "taskType": 2, "locStatus": 0, "localize": true})
	b.Insert("MissionTasks", map[string]any{"id": 8, "uid": 80, "taskType": 3, "locStatus": 0, "localize": true})
	b.Insert("LootTable", map[string]any{"itemid": 10, "LootTableIndex": 5, "id": 2, "MissionDrop": false})
	b.Insert("LootTable", map[string]any{"itemid": 11, "LootTableIndex": 5, "id": 1, "MissionDrop": true})
	b.Insert("LootTable", map[string]any{"itemid": 12, "LootTableIndex": 6, "id": 3, "MissionDrop": true})
	b.Insert("Objects", map[string]any{"id": 10, "name": "Sword", "type": "Loot"})
	tdb, err := typed.Open(b.Open(t))
	if err != nil {
		t.Fatal(err)
	}
	rev, err := revindex.Build(tdb)
	if err != nil {
		t.Fatal(err)
	}

	var types []int32
	for uid, row := range adapter.MissionTasks(tdb, rev, []int32{80, 71, 99}).All() {
		deepEqual(t, row.UID(), uid)
		types = append(types, row.TaskType())
	}
	deepEqual(t, types, []int32{3, 2})

	var items []int32
	for id, row := range adapter.LootTableEntries(tdb, rev, 5).All() {
		deepEqual(t, row.ID(), id)
		items = append(items, row.ItemID())
	}
	deepEqual(t, items, []int32{11, 10})

	j, err := json.Marshal(adapter.ObjectRefs(rev, []int32{11, 10}))
	if err != nil {
		t.Fatal(err)
	}
	deepEqual(t, string(j), `{"10":{"name":"Sword"}}`)
}

func deepEqual[T any](t testing.TB, a, e T) {
	if !reflect.DeepEqual(a, e) {
		t.Helper()
		t.Errorf("** got %v, wanted %v", a, e)
	}
}
