// Package config loads bindery settings from .bindery/config.json, .env and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Store drivers
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Backup drivers
const (
	BackupDir = "dir"
	BackupS3  = "s3"
)

// Config represents the bindery configuration
type Config struct {
	DataDir       string       `json:"data_dir"`
	StoreDriver   string       `json:"store_driver"`         // "json" or "sqlite"
	LogLevel      string       `json:"log_level"`            // debug|info|warn|error
	LogFormat     string       `json:"log_format,omitempty"` // "console" or "json"
	GuardedStatus bool         `json:"guarded_status"`
	Backup        BackupConfig `json:"backup"`
}

// BackupConfig selects where `bindery backup` writes snapshots.
type BackupConfig struct {
	Driver    string `json:"driver"` // "dir" or "s3"
	Dir       string `json:"dir,omitempty"`
	Bucket    string `json:"bucket,omitempty"`
	Region    string `json:"region,omitempty"`
	Endpoint  string `json:"endpoint,omitempty"`
	Prefix    string `json:"prefix,omitempty"`
	PathStyle bool   `json:"path_style,omitempty"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		DataDir:     "data",
		StoreDriver: StoreJSON,
		LogLevel:    "warn",
		LogFormat:   "console",
		Backup: BackupConfig{
			Driver: BackupDir,
			Dir:    "backups",
		},
	}
}

// Load resolves configuration for the working directory dir.
// Resolution order: defaults, .bindery/config.json, .env, BINDERY_* environment.
// A missing config file or .env is not an error.
func Load(dir string) (*Config, error) {
	cfg := Default()

	fileCfg, err := LoadConfig(dir)
	switch {
	case err == nil:
		cfg = fileCfg
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads .bindery/config.json from the specified directory.
// Fields absent from the file keep their defaults.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".bindery", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	binderyDir := filepath.Join(dir, ".bindery")
	if err := os.MkdirAll(binderyDir, 0755); err != nil {
		return fmt.Errorf("failed to create .bindery dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(binderyDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	setBool := func(key string, dst *bool) error {
		v, ok := os.LookupEnv(key)
		if !ok || v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, v, err)
		}
		*dst = b
		return nil
	}

	setString("BINDERY_DATA_DIR", &c.DataDir)
	setString("BINDERY_STORE", &c.StoreDriver)
	setString("BINDERY_LOG_LEVEL", &c.LogLevel)
	setString("BINDERY_LOG_FORMAT", &c.LogFormat)
	setString("BINDERY_BACKUP_DRIVER", &c.Backup.Driver)
	setString("BINDERY_BACKUP_DIR", &c.Backup.Dir)
	setString("BINDERY_BACKUP_S3_BUCKET", &c.Backup.Bucket)
	setString("BINDERY_BACKUP_S3_REGION", &c.Backup.Region)
	setString("BINDERY_BACKUP_S3_ENDPOINT", &c.Backup.Endpoint)
	setString("BINDERY_BACKUP_S3_PREFIX", &c.Backup.Prefix)

	if err := setBool("BINDERY_GUARDED_STATUS", &c.GuardedStatus); err != nil {
		return err
	}
	return setBool("BINDERY_BACKUP_S3_PATH_STYLE", &c.Backup.PathStyle)
}

// Validate rejects unknown drivers and levels.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case StoreJSON, StoreSQLite:
	default:
		return fmt.Errorf("unknown store driver %q (want %s or %s)", c.StoreDriver, StoreJSON, StoreSQLite)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	switch c.Backup.Driver {
	case BackupDir:
	case BackupS3:
		if c.Backup.Bucket == "" {
			return fmt.Errorf("backup driver s3 requires a bucket")
		}
	default:
		return fmt.Errorf("unknown backup driver %q (want %s or %s)", c.Backup.Driver, BackupDir, BackupS3)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	return nil
}

// ResolvePath makes p absolute relative to base, leaving absolute paths alone.
func ResolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
