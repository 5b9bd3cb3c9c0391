package adapter

import (
	"github.com/andreyvit/fdb/revindex"
	"github.com/andreyvit/fdb/typed"
)

// MissionTasks joins task uids to their MissionTasks rows, which are keyed
// by mission id.
func MissionTasks(db *typed.Database, rev *revindex.ReverseLookup, uids []int32) MapAdapter[typed.MissionTasksRow] {
	return MapAdapter[typed.MissionTasksRow]{
		Table: db.MissionTasks,
		Index: IndexFunc(func(uid int32) (int32, bool) {
			mt, ok := rev.MissionTask(uid)
			return mt.Mission, ok
		}),
		Keys:  uids,
		IDCol: db.MissionTasks.UIDColumn(),
	}
}

// LootTableEntries lists the LootTable rows of a loot table index, keyed by
// row id. LootTable is keyed by item.
func LootTableEntries(db *typed.Database, rev *revindex.ReverseLookup, lti int32) MapAdapter[typed.LootTableRow] {
	items := rev.LootItems(lti)
	return MapAdapter[typed.LootTableRow]{
		Table: db.LootTable,
		Index: MapIndex(items),
		Keys:  SortedKeys(items),
		IDCol: db.LootTable.IDColumn(),
	}
}

// ObjectRefs is the search summary of each listed object.
func ObjectRefs(rev *revindex.ReverseLookup, ids []int32) Filtered[revindex.ObjectRef] {
	if rev == nil {
		return Filtered[revindex.ObjectRef]{Keys: ids}
	}
	return Filtered[revindex.ObjectRef]{Base: rev.Objects.SearchIndex, Keys: ids}
}
