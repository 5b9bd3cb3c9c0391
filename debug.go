package fdb

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

type DumpFlags uint64

const (
	DumpTableHeaders = DumpFlags(1 << iota)
	DumpColumns
	DumpRows
	DumpStats
	DumpBuckets

	DumpAll = DumpFlags(0xFFFFFFFFFFFFFFFF)
)

var (
	dumpSep1 = strings.Repeat("=", 80)
	dumpSep2 = strings.Repeat("-", 60)
)

func (f DumpFlags) Contains(v DumpFlags) bool {
	return (f & v) == v
}

// Dump writes a human-readable listing of every table.
func (db *Database) Dump(w io.Writer, f DumpFlags) {
	for _, tbl := range db.tables {
		tbl.Dump(w, f, -1)
	}
}

// Dump writes a listing of the table. A non-negative limit caps the number of
// rows written.
func (t *Table) Dump(w io.Writer, f DumpFlags, limit int) {
	prefix := t.name
	var s TableStats
	if f.Contains(DumpTableHeaders) || f.Contains(DumpStats) {
		s = t.Stats()
	}

	if f.Contains(DumpTableHeaders) {
		fmt.Fprintln(w, dumpSep1)
		fmt.Fprintf(w, "%s (%d rows, %d buckets)\n", prefix, s.Rows, s.Buckets)
	}
	if f.Contains(DumpColumns) {
		for i, c := range t.columns {
			fmt.Fprintf(w, "%s.c%d: %s %v\n", prefix, i, c.Name, c.Type)
		}
	}
	if f.Contains(DumpStats) {
		fmt.Fprintf(w, "%s.stats: rows = %d, buckets = %d, empty_buckets = %d, max_chain = %d, load = %.2f\n", prefix, s.Rows, s.Buckets, s.EmptyBuckets, s.MaxChain, s.LoadFactor())
	}

	if f.Contains(DumpRows) {
		fmt.Fprintln(w, dumpSep2)
		var rowPos int
		for c := t.Rows(); c.Next(); {
			if limit >= 0 && rowPos >= limit {
				fmt.Fprintf(w, "%s: ...\n", prefix)
				break
			}
			rowPos++
			row := c.Row()
			if f.Contains(DumpBuckets) {
				fmt.Fprintf(w, "%s.%d = (b%d @0x%x) %s\n", prefix, rowPos, t.bucketIndex(row.PrimaryKey()), row.RowID(), must(json.Marshal(row)))
			} else {
				fmt.Fprintf(w, "%s.%d = %s\n", prefix, rowPos, must(json.Marshal(row)))
			}
		}
	}
}
