// Package typed binds the game client tables by name and exposes their rows
// through typed accessors.
package typed

import (
	"errors"
	"fmt"

	"github.com/andreyvit/fdb"
)

// SchemaError is returned by Open when a required table or column is absent.
type SchemaError struct {
	Table  string
	Column string
}

func (e *SchemaError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("typed: missing table %s", e.Table)
	}
	return fmt.Sprintf("typed: table %s: missing column %s", e.Table, e.Column)
}

// Database holds every bound table. It is immutable and safe for concurrent
// use for as long as the underlying fdb.Database stays open.
type Database struct {
	Raw *fdb.Database

	BehaviorParameters     *BehaviorParameterTable
	BehaviorTemplates      *BehaviorTemplateTable
	ComponentsRegistry     *ComponentsRegistryTable
	DestructibleComponents *DestructibleComponentTable
	Icons                  *IconsTable
	ItemSets               *ItemSetsTable
	ItemSetSkills          *ItemSetSkillsTable
	LootTable              *LootTableTable
	Missions               *MissionsTable
	MissionTasks           *MissionTasksTable
	Objects                *ObjectsTable
	ObjectSkills           *ObjectSkillsTable
	RebuildComponents      *RebuildComponentTable
	Skills                 *SkillBehaviorTable
}

// Open resolves every table and column the typed layer uses. All problems
// are reported together, each as a *SchemaError.
func Open(db *fdb.Database) (*Database, error) {
	b := &binder{db: db}
	tdb := &Database{
		Raw:                    db,
		BehaviorParameters:     bindBehaviorParameter(b),
		BehaviorTemplates:      bindBehaviorTemplate(b),
		ComponentsRegistry:     bindComponentsRegistry(b),
		DestructibleComponents: bindDestructibleComponent(b),
		Icons:                  bindIcons(b),
		ItemSets:               bindItemSets(b),
		ItemSetSkills:          bindItemSetSkills(b),
		LootTable:              bindLootTable(b),
		Missions:               bindMissions(b),
		MissionTasks:           bindMissionTasks(b),
		Objects:                bindObjects(b),
		ObjectSkills:           bindObjectSkills(b),
		RebuildComponents:      bindRebuildComponent(b),
		Skills:                 bindSkillBehavior(b),
	}
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}
	return tdb, nil
}

type binder struct {
	db   *fdb.Database
	errs []error
}

type column struct {
	name string
	dst  *int
}

func col(name string, dst *int) column {
	return column{name, dst}
}

// bind finds the table and stores the index of each named column into its
// destination. Unresolved columns are left at -1.
func (b *binder) bind(name string, cols ...column) *fdb.Table {
	tbl := b.db.Table(name)
	if tbl == nil {
		b.errs = append(b.errs, &SchemaError{Table: name})
		for _, c := range cols {
			*c.dst = -1
		}
		return nil
	}
	for _, c := range cols {
		*c.dst = tbl.ColumnIndex(c.name)
		if *c.dst < 0 {
			b.errs = append(b.errs, &SchemaError{Table: name, Column: c.name})
		}
	}
	return tbl
}

// table supplies primary-key access for a typed table whose first column is
// an INTEGER key.
type table[R any] struct {
	*fdb.Table
	wrap func(fdb.Row) R
}

// All iterates every row in storage order.
func (t table[R]) All() fdb.Cursor[R] {
	return fdb.Wrap(t.Table.Rows(), t.wrap)
}

// ByKey iterates the rows with the given primary key.
func (t table[R]) ByKey(pk int32) fdb.Cursor[R] {
	return fdb.Wrap(t.Table.Lookup(fdb.Integer(pk)), t.wrap)
}

// Get returns the first row with the given primary key.
func (t table[R]) Get(pk int32) (R, bool) {
	return fdb.First(t.ByKey(pk))
}

// FindBy returns the first row in pk's bucket whose column col holds id.
func (t table[R]) FindBy(pk int32, col int, id int32) (R, bool) {
	row, ok := t.Table.FindBy(fdb.Integer(pk), col, fdb.Integer(id))
	if !ok {
		var zero R
		return zero, false
	}
	return t.wrap(row), true
}

func (t table[R]) Wrap(row fdb.Row) R {
	return t.wrap(row)
}
