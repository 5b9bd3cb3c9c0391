package fdb

// RowCursor walks bucket chains. Use it as
//
//	for c := tbl.Rows(); c.Next(); {
//		row := c.Row()
//	}
//
// A cursor makes a single pass; ask the table for a new one to start over.
type RowCursor struct {
	tbl     *Table
	all     bool
	buckets []uint32
	next    int
	entry   uint32
	match   func(pk Value) bool
	row     Row
}

func emptyCursor() *RowCursor {
	return &RowCursor{entry: nullAddr}
}

func (c *RowCursor) Table() *Table {
	return c.tbl
}

func (c *RowCursor) Next() bool {
	if c.tbl == nil {
		return false
	}
	d := c.tbl.db.dec
	for {
		for c.entry == nullAddr {
			b, ok := c.nextBucket()
			if !ok {
				c.row = Row{}
				return false
			}
			c.entry = c.tbl.bucketHead(b)
		}
		rowAddr := d.mustU32(c.entry)
		c.entry = d.mustU32(c.entry + 4)
		row := c.tbl.rowAt(rowAddr)
		if c.match == nil || c.match(row.PrimaryKey()) {
			c.row = row
			return true
		}
	}
}

func (c *RowCursor) nextBucket() (uint32, bool) {
	if c.all {
		if c.next >= int(c.tbl.bucketCount) {
			return 0, false
		}
		c.next++
		return uint32(c.next - 1), true
	}
	if c.next >= len(c.buckets) {
		return 0, false
	}
	c.next++
	return c.buckets[c.next-1], true
}

// Row returns the current row; valid only after Next returned true.
func (c *RowCursor) Row() Row {
	return c.row
}

func AllRows(c *RowCursor) []Row {
	var result []Row
	for c.Next() {
		result = append(result, c.Row())
	}
	return result
}

// Cursor adapts a RowCursor to a typed row representation.
type Cursor[R any] struct {
	raw  *RowCursor
	wrap func(Row) R
}

func Wrap[R any](c *RowCursor, wrap func(Row) R) Cursor[R] {
	return Cursor[R]{c, wrap}
}

func (c Cursor[R]) Next() bool {
	return c.raw.Next()
}

func (c Cursor[R]) Row() R {
	return c.wrap(c.raw.Row())
}

func (c Cursor[R]) Raw() Row {
	return c.raw.Row()
}

func All[R any](c Cursor[R]) []R {
	var result []R
	for c.Next() {
		result = append(result, c.Row())
	}
	return result
}

// First returns the first row of the cursor, if any.
func First[R any](c Cursor[R]) (R, bool) {
	if c.Next() {
		return c.Row(), true
	}
	var zero R
	return zero, false
}

func Count[R any](c Cursor[R]) int {
	var n int
	for c.Next() {
		n++
	}
	return n
}
