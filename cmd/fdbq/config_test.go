package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fdbq.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(writeFile(t, `
database = "/data/cdclient.fdb"
snapshot_cache = "/tmp/rev.db"
prefault = true
behavior_cache_size = 64
log_level = "debug"
`))
	if err != nil {
		t.Fatal(err)
	}
	e := Config{
		Database:          "/data/cdclient.fdb",
		SnapshotCache:     "/tmp/rev.db",
		Prefault:          true,
		BehaviorCacheSize: 64,
		LogLevel:          "debug",
	}
	if *cfg != e {
		t.Errorf("** got %+v, wanted %+v", *cfg, e)
	}
	level, err := cfg.logLevel()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("logLevel = %v, %v", level, err)
	}
}

func TestLoadConfig_defaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "warn" || cfg.Database != "" {
		t.Errorf("defaults = %+v", *cfg)
	}
}

func TestLoadConfig_errors(t *testing.T) {
	for _, tt := range []struct {
		content string
		want    string
	}{
		{`databse = "x"`, "unknown key databse"},
		{`database = `, "config"},
	} {
		_, err := loadConfig(writeFile(t, tt.content))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("loadConfig(%q) = %v, wanted error containing %q", tt.content, err, tt.want)
		}
	}

	cfg := &Config{LogLevel: "loud"}
	if _, err := cfg.logLevel(); err == nil {
		t.Error("logLevel accepted an unknown level")
	}
}
