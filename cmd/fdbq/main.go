// Command fdbq inspects FDB client database files and their reverse index.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/andreyvit/fdb"
	"github.com/andreyvit/fdb/revindex"
	"github.com/andreyvit/fdb/typed"
)

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fdbq: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	cfg    *Config
	logger *slog.Logger
	out    io.Writer

	raw *fdb.Database
	tdb *typed.Database
	rev *revindex.ReverseLookup
}

type handler func(a *app) error

func run(args []string, out io.Writer) error {
	k := kingpin.New("fdbq", "Query FDB client database files.")
	configFile := k.Flag("config", "TOML configuration file.").Short('c').Envar("FDBQ_CONFIG").String()
	dbFile := k.Flag("db", "FDB file to open.").Envar("FDBQ_DB").String()
	cacheFile := k.Flag("cache", "bbolt file for reverse index snapshots.").String()
	logLevel := k.Flag("log-level", "debug, info, warn or error.").String()
	prefault := k.Flag("prefault", "Load the whole file into memory up front.").Bool()

	handlers := make(map[string]handler)
	addCommands(k, handlers)
	addRevCommands(k.Command("rev", "Query the reverse index."), handlers)

	cmd, err := k.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		return err
	}
	if *dbFile != "" {
		cfg.Database = *dbFile
	}
	if *cacheFile != "" {
		cfg.SnapshotCache = *cacheFile
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *prefault {
		cfg.Prefault = true
	}
	logger, err := cfg.logger()
	if err != nil {
		return err
	}

	a := &app{cfg: cfg, logger: logger, out: out}
	defer a.close()
	return handlers[cmd](a)
}

func (a *app) open() error {
	if a.raw != nil {
		return nil
	}
	if a.cfg.Database == "" {
		return fmt.Errorf("no database file, use --db or the database config key")
	}
	db, err := fdb.OpenFile(a.cfg.Database, fdb.Options{Logger: a.logger, Prefault: a.cfg.Prefault})
	if err != nil {
		return err
	}
	a.raw = db
	return nil
}

func (a *app) openTyped() error {
	if a.tdb != nil {
		return nil
	}
	if err := a.open(); err != nil {
		return err
	}
	tdb, err := typed.Open(a.raw)
	if err != nil {
		return err
	}
	a.tdb = tdb
	return nil
}

func (a *app) openRev() error {
	if a.rev != nil {
		return nil
	}
	if err := a.openTyped(); err != nil {
		return err
	}
	opt := revindex.Options{Logger: a.logger}
	if a.cfg.SnapshotCache != "" {
		cache, err := revindex.OpenSnapshotCache(a.cfg.SnapshotCache, revindex.CacheOptions{Timeout: 5 * time.Second})
		if err != nil {
			return err
		}
		defer cache.Close()
		opt.Cache = cache
	}
	rev, err := revindex.Load(a.tdb, opt)
	if err != nil {
		return err
	}
	a.rev = rev
	return nil
}

func (a *app) close() {
	if a.raw != nil {
		if err := a.raw.Close(); err != nil {
			a.logger.LogAttrs(context.Background(), slog.LevelWarn, "close failed", slog.Any("err", err))
		}
	}
}

func (a *app) table(name string) (*fdb.Table, error) {
	if err := a.open(); err != nil {
		return nil, err
	}
	tbl := a.raw.Table(name)
	if tbl == nil {
		return nil, fmt.Errorf("no table %q", name)
	}
	return tbl, nil
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func addCommands(k *kingpin.Application, handlers map[string]handler) {
	c := k.Command("tables", "List tables.")
	handlers[c.FullCommand()] = func(a *app) error {
		if err := a.open(); err != nil {
			return err
		}
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		for _, tbl := range a.raw.Tables() {
			fmt.Fprintf(w, "%s\t%d columns\t%d buckets\n", tbl.Name(), tbl.ColumnCount(), tbl.BucketCount())
		}
		return w.Flush()
	}

	c = k.Command("columns", "List the columns of a table.")
	columnsTable := c.Arg("table", "Table name.").Required().String()
	handlers[c.FullCommand()] = func(a *app) error {
		tbl, err := a.table(*columnsTable)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		for _, col := range tbl.Columns() {
			fmt.Fprintf(w, "%d\t%s\t%v\n", col.Index, col.Name, col.Type)
		}
		return w.Flush()
	}

	c = k.Command("get", "Print the rows with the given primary key.")
	getTable := c.Arg("table", "Table name.").Required().String()
	getKey := c.Arg("key", "Primary key value.").Required().String()
	handlers[c.FullCommand()] = func(a *app) error {
		tbl, err := a.table(*getTable)
		if err != nil {
			return err
		}
		rows := []fdb.Row{}
		cur, err := tbl.LookupByKey(*getKey)
		if err != nil {
			a.logger.LogAttrs(context.Background(), slog.LevelDebug, "unparsable key", slog.Any("err", err))
		} else {
			rows = append(rows, fdb.AllRows(cur)...)
		}
		return a.printJSON(rows)
	}

	c = k.Command("dump", "Dump table headers, columns and rows.")
	dumpTable := c.Arg("table", "Table name; all tables when omitted.").String()
	dumpLimit := c.Flag("limit", "Maximum number of rows per table.").Default("-1").Int()
	dumpRows := c.Flag("rows", "Include rows.").Bool()
	dumpBuckets := c.Flag("buckets", "Include bucket chains.").Bool()
	handlers[c.FullCommand()] = func(a *app) error {
		f := fdb.DumpTableHeaders | fdb.DumpColumns | fdb.DumpStats
		if *dumpRows {
			f |= fdb.DumpRows
		}
		if *dumpBuckets {
			f |= fdb.DumpBuckets
		}
		if *dumpTable == "" {
			if err := a.open(); err != nil {
				return err
			}
			if *dumpLimit < 0 {
				a.raw.Dump(a.out, f)
				return nil
			}
			for _, tbl := range a.raw.Tables() {
				tbl.Dump(a.out, f, *dumpLimit)
			}
			return nil
		}
		tbl, err := a.table(*dumpTable)
		if err != nil {
			return err
		}
		tbl.Dump(a.out, f, *dumpLimit)
		return nil
	}

	c = k.Command("stats", "Print bucket statistics.")
	statsTable := c.Arg("table", "Table name; all tables when omitted.").String()
	handlers[c.FullCommand()] = func(a *app) error {
		if err := a.open(); err != nil {
			return err
		}
		tables := a.raw.Tables()
		if *statsTable != "" {
			tbl, err := a.table(*statsTable)
			if err != nil {
				return err
			}
			tables = []*fdb.Table{tbl}
		}
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintf(w, "table\trows\tbuckets\tempty\tmax chain\tload\t\n")
		for _, tbl := range tables {
			printStats(w, tbl.Name(), tbl.Stats())
		}
		if *statsTable == "" {
			printStats(w, "total", a.raw.Stats())
		}
		if err := w.Flush(); err != nil {
			return err
		}
		_, err := fmt.Fprintf(a.out, "file size: %s\n", humanize.IBytes(uint64(a.raw.Size())))
		return err
	}
}

func printStats(w io.Writer, name string, s fdb.TableStats) {
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.2f\t\n", name,
		humanize.Comma(int64(s.Rows)), humanize.Comma(int64(s.Buckets)),
		humanize.Comma(int64(s.EmptyBuckets)), s.MaxChain, s.LoadFactor())
}
