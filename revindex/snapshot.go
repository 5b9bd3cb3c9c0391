package revindex

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"

	"github.com/andreyvit/fdb/typed"
)

// snapshotVersion changes whenever the encoded shape of ReverseLookup does.
const snapshotVersion uint32 = 1

var snapshotBucket = []byte("revindex")

// Fingerprint identifies the contents of a database file.
func Fingerprint(buf []byte) uint64 {
	return xxhash.Sum64(buf)
}

func snapshotKey(fp uint64) []byte {
	var key [12]byte
	binary.BigEndian.PutUint32(key[:4], snapshotVersion)
	binary.BigEndian.PutUint64(key[4:], fp)
	return key[:]
}

// SnapshotCache persists built indexes in a bbolt file so that reopening an
// unchanged database skips the scan.
type SnapshotCache struct {
	bdb *bbolt.DB
}

type CacheOptions struct {
	Timeout time.Duration
}

func OpenSnapshotCache(path string, opt CacheOptions) (*SnapshotCache, error) {
	if opt.Timeout == 0 {
		opt.Timeout = time.Second
	}
	bdb, err := bbolt.Open(path, 0o666, &bbolt.Options{Timeout: opt.Timeout})
	if err != nil {
		return nil, fmt.Errorf("revindex: snapshot cache: %w", err)
	}
	err = bdb.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(snapshotBucket)
		return err
	})
	if err != nil {
		bdb.Close()
		return nil, fmt.Errorf("revindex: snapshot cache: %w", err)
	}
	return &SnapshotCache{bdb: bdb}, nil
}

func (c *SnapshotCache) Close() error {
	return c.bdb.Close()
}

// Get returns the snapshot stored for the given fingerprint, if any.
func (c *SnapshotCache) Get(fp uint64) (*ReverseLookup, bool, error) {
	var rev *ReverseLookup
	err := c.bdb.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(snapshotBucket).Get(snapshotKey(fp))
		if data == nil {
			return nil
		}
		rev = &ReverseLookup{}
		return msgpack.Unmarshal(data, rev)
	})
	if err != nil {
		return nil, false, fmt.Errorf("revindex: snapshot %016x: %w", fp, err)
	}
	return rev, rev != nil, nil
}

func (c *SnapshotCache) Put(fp uint64, rev *ReverseLookup) error {
	data, err := msgpack.Marshal(rev)
	if err != nil {
		return fmt.Errorf("revindex: snapshot %016x: %w", fp, err)
	}
	err = c.bdb.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(snapshotBucket).Put(snapshotKey(fp), data)
	})
	if err != nil {
		return fmt.Errorf("revindex: snapshot %016x: %w", fp, err)
	}
	return nil
}

type Options struct {
	Cache  *SnapshotCache
	Logger *slog.Logger
}

// Load returns the index for db, reading it from the snapshot cache when the
// file is unchanged and building (and storing) it otherwise. Cache failures
// are logged and never fatal.
func Load(db *typed.Database, opt Options) (*ReverseLookup, error) {
	if opt.Cache == nil {
		return Build(db)
	}
	logger := opt.Logger
	if logger == nil {
		logger = db.Raw.Logger()
	}
	ctx := context.Background()

	start := time.Now()
	fp := Fingerprint(db.Raw.Bytes())
	rev, ok, err := opt.Cache.Get(fp)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelWarn, "revindex: ignoring snapshot", slog.Any("err", err))
	} else if ok {
		logger.LogAttrs(ctx, slog.LevelDebug, "revindex: loaded snapshot",
			slog.String("fingerprint", fmt.Sprintf("%016x", fp)),
			slog.Duration("elapsed", time.Since(start)))
		return rev, nil
	}

	rev, err = Build(db)
	if err != nil {
		return nil, err
	}
	if err := opt.Cache.Put(fp, rev); err != nil {
		logger.LogAttrs(ctx, slog.LevelWarn, "revindex: cannot store snapshot", slog.Any("err", err))
	}
	logger.LogAttrs(ctx, slog.LevelDebug, "revindex: built index",
		slog.String("fingerprint", fmt.Sprintf("%016x", fp)),
		slog.Duration("elapsed", time.Since(start)))
	return rev, nil
}
