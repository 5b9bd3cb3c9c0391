package fdb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/andreyvit/fdb/mmap"
)

// Database is a read-only view of an FDB file. It is immutable after Open
// and safe for concurrent use.
type Database struct {
	dec     byteDecoder
	tables  []*Table
	byName  map[string]*Table
	mapping *mmap.Mapping
	logger  *slog.Logger
}

type Options struct {
	Logger *slog.Logger

	// Prefault loads the whole file into memory when mapping it.
	Prefault bool
}

func (opt Options) logger() *slog.Logger {
	if opt.Logger != nil {
		return opt.Logger
	}
	return slog.Default()
}

// OpenFile maps the file at path read-only and opens it. Close releases the
// mapping.
func OpenFile(path string, opt Options) (*Database, error) {
	mopt := mmap.RandomAccess
	if opt.Prefault {
		mopt |= mmap.Prefault
	}
	m, err := mmap.Open(path, mopt)
	if err != nil {
		return nil, fmt.Errorf("fdb: %w", err)
	}
	db, err := Open(m.Bytes(), opt)
	if err != nil {
		_ = m.Close()
		return nil, err
	}
	db.mapping = m
	return db, nil
}

// Open validates the table directory of buf: the header, every table's
// definition, column headers, names and bucket array bounds. Rows are not
// visited; they are decoded lazily on access. buf must outlive the Database.
func Open(buf []byte, opt Options) (*Database, error) {
	start := time.Now()
	db := &Database{
		dec:    makeByteDecoder(buf),
		byName: make(map[string]*Table),
		logger: opt.logger(),
	}

	d := db.dec
	if len(buf) < headerSize {
		return nil, loadErrf("", nil, "file too short: %d bytes", len(buf))
	}
	tableCount := d.mustU32(0)
	listAddr := d.mustU32(4)
	if err := d.Array(listAddr, tableCount, tableHeaderSize); err != nil {
		return nil, loadErrf("", err, "table header list")
	}

	db.tables = make([]*Table, 0, tableCount)
	for i := range tableCount {
		tbl, err := loadTable(db, int(i), listAddr+i*tableHeaderSize)
		if err != nil {
			return nil, err
		}
		db.tables = append(db.tables, tbl)
		if _, dup := db.byName[tbl.name]; !dup {
			db.byName[tbl.name] = tbl
		}
	}

	db.logger.LogAttrs(context.Background(), slog.LevelDebug, "fdb: opened",
		slog.Int("size", len(buf)),
		slog.Int("tables", len(db.tables)),
		slog.Duration("elapsed", time.Since(start)))
	return db, nil
}

func loadTable(db *Database, pos int, headerAddr uint32) (*Table, error) {
	d := db.dec
	defAddr := d.mustU32(headerAddr)
	dataAddr := d.mustU32(headerAddr + 4)

	if _, err := d.Raw(defAddr, tableDefHeaderSize); err != nil {
		return nil, loadErrf(fmt.Sprintf("#%d", pos), err, "definition header")
	}
	columnCount := d.mustU32(defAddr)
	rawName, err := d.CString(d.mustU32(defAddr + 4))
	if err != nil {
		return nil, loadErrf(fmt.Sprintf("#%d", pos), err, "table name")
	}
	tbl := &Table{
		db:      db,
		pos:     pos,
		rawName: rawName,
		name:    rawName.Decode(),
	}

	colsAddr := d.mustU32(defAddr + 8)
	if err := d.Array(colsAddr, columnCount, columnHeaderSize); err != nil {
		return nil, loadErrf(tbl.name, err, "column header list")
	}
	tbl.columns = make([]Column, columnCount)
	for i := range columnCount {
		addr := colsAddr + i*columnHeaderSize
		typ := ValueType(d.mustU32(addr))
		if !typ.Valid() {
			return nil, loadErrf(tbl.name, nil, "column %d has unknown type %d", i, uint32(typ))
		}
		name, err := d.CString(d.mustU32(addr + 4))
		if err != nil {
			return nil, loadErrf(tbl.name, err, "column %d name", i)
		}
		tbl.columns[i] = Column{Name: name.Decode(), Type: typ, Index: int(i)}
	}

	if _, err := d.Raw(dataAddr, tableDataHeaderSize); err != nil {
		return nil, loadErrf(tbl.name, err, "data header")
	}
	tbl.bucketCount = d.mustU32(dataAddr)
	tbl.bucketsAddr = d.mustU32(dataAddr + 4)
	if err := d.Array(tbl.bucketsAddr, tbl.bucketCount, bucketHeaderSize); err != nil {
		return nil, loadErrf(tbl.name, err, "bucket array")
	}
	return tbl, nil
}

// Close releases the file mapping, if any. Values, rows and strings obtained
// from the database must not be used afterwards.
func (db *Database) Close() error {
	if db.mapping == nil {
		return nil
	}
	m := db.mapping
	db.mapping = nil
	return m.Close()
}

// Table returns the table with the exact given name, or nil.
func (db *Database) Table(name string) *Table {
	return db.byName[name]
}

// Tables returns all tables in directory order.
func (db *Database) Tables() []*Table {
	return db.tables
}

func (db *Database) Size() int {
	return len(db.dec.Orig)
}

func (db *Database) Bytes() []byte {
	return db.dec.Orig
}

func (db *Database) Logger() *slog.Logger {
	return db.logger
}
