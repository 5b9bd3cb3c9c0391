package fdb

// Column describes one column of a table.
type Column struct {
	Name  string    `json:"name"`
	Type  ValueType `json:"type"`
	Index int       `json:"-"`
}

// Table is one table of the directory. Rows are spread over a fixed number
// of buckets by the hash of their first field, the primary key.
type Table struct {
	db          *Database
	pos         int
	rawName     Latin1
	name        string
	columns     []Column
	bucketCount uint32
	bucketsAddr uint32
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) RawName() Latin1 {
	return t.rawName
}

func (t *Table) Database() *Database {
	return t.db
}

func (t *Table) Columns() []Column {
	return t.columns
}

func (t *Table) ColumnCount() int {
	return len(t.columns)
}

func (t *Table) ColumnAt(i int) (Column, bool) {
	if i < 0 || i >= len(t.columns) {
		return Column{}, false
	}
	return t.columns[i], true
}

// Column finds a column by exact name.
func (t *Table) Column(name string) (Column, bool) {
	i := t.ColumnIndex(name)
	if i < 0 {
		return Column{}, false
	}
	return t.columns[i], true
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// PrimaryKey is the first column. Tables without columns return a zero Column.
func (t *Table) PrimaryKey() Column {
	if len(t.columns) == 0 {
		return Column{}
	}
	return t.columns[0]
}

func (t *Table) BucketCount() int {
	return int(t.bucketCount)
}

// BucketAt returns the i-th bucket; ok is false when i is out of range.
func (t *Table) BucketAt(i int) (Bucket, bool) {
	if i < 0 || i >= int(t.bucketCount) {
		return Bucket{}, false
	}
	return Bucket{t, uint32(i)}, true
}

// BucketFor returns the bucket that holds rows keyed by v. Tables without
// buckets return an empty Bucket.
func (t *Table) BucketFor(v Value) Bucket {
	if t.bucketCount == 0 {
		return Bucket{}
	}
	return Bucket{t, t.bucketIndex(v)}
}

func (t *Table) bucketIndex(v Value) uint32 {
	return v.Hash() % t.bucketCount
}

// Rows iterates every row, bucket by bucket, in chain order. Each call
// starts a fresh pass.
func (t *Table) Rows() *RowCursor {
	return &RowCursor{tbl: t, all: true, entry: nullAddr}
}

func (t *Table) bucketHead(i uint32) uint32 {
	return t.db.dec.mustU32(t.bucketsAddr + i*bucketHeaderSize)
}

func (t *Table) String() string {
	return t.name
}

// Bucket is one hash bucket of a table. The zero Bucket has no rows.
type Bucket struct {
	tbl *Table
	idx uint32
}

func (b Bucket) Index() int {
	return int(b.idx)
}

func (b Bucket) Rows() *RowCursor {
	if b.tbl == nil {
		return emptyCursor()
	}
	return &RowCursor{tbl: b.tbl, buckets: []uint32{b.idx}, entry: nullAddr}
}

func (b Bucket) IsEmpty() bool {
	return b.tbl == nil || b.tbl.bucketHead(b.idx) == nullAddr
}
