package fdb

// TableStats summarizes the bucket layout of a table.
type TableStats struct {
	Rows         int `json:"rows"`
	Buckets      int `json:"buckets"`
	EmptyBuckets int `json:"empty_buckets"`
	MaxChain     int `json:"max_chain"`
}

// LoadFactor is the average number of rows per bucket.
func (ts *TableStats) LoadFactor() float64 {
	if ts.Buckets == 0 {
		return 0
	}
	return float64(ts.Rows) / float64(ts.Buckets)
}

// Stats walks every bucket chain of the table.
func (t *Table) Stats() TableStats {
	result := TableStats{Buckets: int(t.bucketCount)}
	d := t.db.dec
	for i := range t.bucketCount {
		var n int
		for e := t.bucketHead(i); e != nullAddr; e = d.mustU32(e + 4) {
			n++
		}
		if n == 0 {
			result.EmptyBuckets++
		}
		result.Rows += n
		result.MaxChain = max(result.MaxChain, n)
	}
	return result
}

// Stats sums the stats of all tables.
func (db *Database) Stats() TableStats {
	var result TableStats
	for _, t := range db.tables {
		s := t.Stats()
		result.Rows += s.Rows
		result.Buckets += s.Buckets
		result.EmptyBuckets += s.EmptyBuckets
		result.MaxChain = max(result.MaxChain, s.MaxChain)
	}
	return result
}
