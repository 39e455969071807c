package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mosaic-cms/media-vault/pkg/storage"

	"gopkg.in/yaml.v3"
)

// Config captures service level configuration loaded from config.yaml.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Storage  storage.Config `yaml:"storage"`
	Upload   UploadConfig   `yaml:"upload"`
	Feed     FeedConfig     `yaml:"feed"`
	CORS     CORSConfig     `yaml:"cors"`
	Redis    RedisConfig    `yaml:"redis"`
}

// ServerConfig defines HTTP server options.
type ServerConfig struct {
	Address string `yaml:"address"`
}

// DatabaseConfig defines the database backend configuration.
type DatabaseConfig struct {
	Driver   string         `yaml:"driver"`
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	MySQL    MySQLConfig    `yaml:"mysql"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// SQLiteConfig contains SQLite specific settings.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// MySQLConfig contains MySQL specific connection details.
type MySQLConfig struct {
	DSN string `yaml:"dsn"`
}

// PostgresConfig contains PostgreSQL specific connection details.
type PostgresConfig struct {
	DSN string `yaml:"dsn"`
}

// UploadConfig defines file upload constraints.
type UploadConfig struct {
	MaxSize      int64    `yaml:"max_size"`
	AllowedTypes []string `yaml:"allowed_types"`
}

// FeedConfig defines the RSS section cache behaviour.
type FeedConfig struct {
	CachePath           string `yaml:"cache_path"`
	CacheTTLSeconds     int    `yaml:"cache_ttl_seconds"`
	FetchTimeoutSeconds int    `yaml:"fetch_timeout_seconds"`
}

// CORSConfig defines CORS middleware settings.
type CORSConfig struct {
	AllowOrigin      string `yaml:"allow_origin"`
	AllowMethods     string `yaml:"allow_methods"`
	AllowHeaders     string `yaml:"allow_headers"`
	AllowCredentials bool   `yaml:"allow_credentials"`
}

// RedisConfig defines Redis connection settings for the optional
// distributed write lock.
type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Load reads a YAML configuration file from the provided path.
// It searches in the current working directory first, then next to the
// binary executable.
func Load(name string) (*Config, error) {
	cfg := defaultConfig()

	configPath := findConfigFile(name)
	if configPath == "" {
		log.Printf("Warning: config file %q not found, using defaults", name)
		return cfg, nil
	}

	log.Printf("Loading config from: %s", configPath)
	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }()

	var parsed Config
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	applyDefaults(&parsed)
	return &parsed, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Address: ":8080",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			SQLite: SQLiteConfig{
				Path: "data/media.db",
			},
		},
		Storage: storage.DefaultConfig(),
		Upload: UploadConfig{
			MaxSize: 25 * 1024 * 1024, // 25MB
			AllowedTypes: []string{
				"image/jpeg",
				"image/png",
				"image/gif",
				"image/webp",
				"image/svg+xml",
				"image/bmp",
				"image/tiff",
				"application/pdf",
				"application/zip",
				"application/json",
				"application/xml",
				"text/plain",
				"text/csv",
				"text/html",
				"audio/mpeg",
				"audio/ogg",
				"video/mp4",
				"video/webm",
				"application/octet-stream",
			},
		},
		Feed: FeedConfig{
			CachePath:           "data/feed-cache",
			CacheTTLSeconds:     900,
			FetchTimeoutSeconds: 10,
		},
		CORS: CORSConfig{
			AllowOrigin:      "*",
			AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders:     "*",
			AllowCredentials: false,
		},
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.SQLite.Path == "" {
		cfg.Database.SQLite.Path = "data/media.db"
	}
	if cfg.Storage.Type == "" {
		cfg.Storage = storage.DefaultConfig()
	}
	if cfg.Upload.MaxSize <= 0 {
		cfg.Upload.MaxSize = 25 * 1024 * 1024
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = defaultConfig().Upload.AllowedTypes
	}
	if cfg.Feed.CachePath == "" {
		cfg.Feed.CachePath = "data/feed-cache"
	}
	if cfg.Feed.CacheTTLSeconds <= 0 {
		cfg.Feed.CacheTTLSeconds = 900
	}
	if cfg.Feed.FetchTimeoutSeconds <= 0 {
		cfg.Feed.FetchTimeoutSeconds = 10
	}
}

// findConfigFile searches for a config file in the current directory
// first, then next to the binary executable. Returns the full path or
// empty string.
func findConfigFile(name string) string {
	// 1. Current working directory
	if _, err := os.Stat(name); err == nil {
		abs, _ := filepath.Abs(name)
		return abs
	}

	// 2. Next to the binary executable
	exe, err := os.Executable()
	if err == nil {
		exeDir := filepath.Dir(exe)
		candidate := filepath.Join(exeDir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}
