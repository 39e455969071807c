package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load("non-existent-config.yaml")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	assertDefaultConfig(t, cfg)
}

func TestLoadWithPartialConfigAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  address: ":9090"
database:
  driver: ""
  sqlite: {}
feed:
  cache_path: "/tmp/feeds"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Address != ":9090" {
		t.Fatalf("expected server address :9090, got %s", cfg.Server.Address)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("expected database driver sqlite, got %s", cfg.Database.Driver)
	}
	if cfg.Database.SQLite.Path != "data/media.db" {
		t.Fatalf("expected sqlite path data/media.db, got %s", cfg.Database.SQLite.Path)
	}
	if cfg.Feed.CachePath != "/tmp/feeds" {
		t.Fatalf("expected feed cache path /tmp/feeds, got %s", cfg.Feed.CachePath)
	}
	if cfg.Feed.CacheTTLSeconds != 900 {
		t.Fatalf("expected default feed TTL 900, got %d", cfg.Feed.CacheTTLSeconds)
	}
	if cfg.Storage.Type != "local" {
		t.Fatalf("expected default storage type local, got %s", cfg.Storage.Type)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  address: ":9090"
  no_such_field: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown config field")
	}
}

func assertDefaultConfig(t *testing.T, cfg *Config) {
	t.Helper()
	if cfg == nil {
		t.Fatalf("config is nil")
	}
	if cfg.Server.Address != ":8080" {
		t.Fatalf("expected default address :8080, got %s", cfg.Server.Address)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("expected default driver sqlite, got %s", cfg.Database.Driver)
	}
	if cfg.Database.SQLite.Path != "data/media.db" {
		t.Fatalf("expected default sqlite path data/media.db, got %s", cfg.Database.SQLite.Path)
	}
	if cfg.Upload.MaxSize != 25*1024*1024 {
		t.Fatalf("expected default max upload size 25MB, got %d", cfg.Upload.MaxSize)
	}
	if cfg.Feed.CachePath != "data/feed-cache" {
		t.Fatalf("expected default feed cache path, got %s", cfg.Feed.CachePath)
	}
}
