package fdb

import (
	"slices"
)

// Lookup yields every row whose primary key equals key, in chain order.
// Duplicate keys are all returned.
func (t *Table) Lookup(key Value) *RowCursor {
	if t.bucketCount == 0 {
		return emptyCursor()
	}
	return &RowCursor{
		tbl:     t,
		buckets: []uint32{t.bucketIndex(key)},
		entry:   nullAddr,
		match:   key.Equal,
	}
}

// LookupByKey parses text according to the primary key column type and looks
// it up. Input that does not parse returns a *ParseError.
func (t *Table) LookupByKey(text string) (*RowCursor, error) {
	key, err := ParseValue(text, t.PrimaryKey().Type)
	if err != nil {
		return nil, err
	}
	return t.Lookup(key), nil
}

// LookupKeys yields the rows matching any of keys. Buckets are visited once
// each in ascending order, so rows come out grouped by bucket rather than in
// key order.
func (t *Table) LookupKeys(keys []Value) *RowCursor {
	if t.bucketCount == 0 || len(keys) == 0 {
		return emptyCursor()
	}
	keys = slices.Clone(keys)
	set := make(map[string]struct{}, len(keys))
	buckets := make([]uint32, 0, len(keys))
	for _, k := range keys {
		set[k.setKey()] = struct{}{}
		buckets = append(buckets, t.bucketIndex(k))
	}
	slices.Sort(buckets)
	buckets = slices.Compact(buckets)

	return &RowCursor{
		tbl:     t,
		buckets: buckets,
		entry:   nullAddr,
		match: func(pk Value) bool {
			if pk.typ == TypeFloat {
				return slices.ContainsFunc(keys, pk.Equal)
			}
			_, ok := set[pk.setKey()]
			return ok
		},
	}
}

// FindBy returns the first row in pk's bucket whose column col equals id.
// It serves secondary identities stored alongside the bucket key, such as a
// task uid within its mission's bucket.
func (t *Table) FindBy(pk Value, col int, id Value) (Row, bool) {
	if t.bucketCount == 0 {
		return Row{}, false
	}
	c := t.BucketFor(pk).Rows()
	for c.Next() {
		row := c.Row()
		if v, ok := row.FieldAt(col); ok && v.Equal(id) {
			return row, true
		}
	}
	return Row{}, false
}
