package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	binderyDir := filepath.Join(dir, ".bindery")
	if err := os.MkdirAll(binderyDir, 0755); err != nil {
		t.Fatalf("failed to create .bindery dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(binderyDir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.StoreDriver != StoreJSON {
		t.Errorf("StoreDriver = %q, want %q", cfg.StoreDriver, StoreJSON)
	}
	if cfg.DataDir != "data" {
		t.Errorf("DataDir = %q, want data", cfg.DataDir)
	}
	if cfg.GuardedStatus {
		t.Error("expected GuardedStatus to default to false")
	}
	if cfg.Backup.Driver != BackupDir {
		t.Errorf("Backup.Driver = %q, want %q", cfg.Backup.Driver, BackupDir)
	}
}

func TestLoad_FileKeepsDefaultsForMissingFields(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"store_driver":"sqlite","guarded_status":true}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.StoreDriver != StoreSQLite {
		t.Errorf("StoreDriver = %q, want %q", cfg.StoreDriver, StoreSQLite)
	}
	if !cfg.GuardedStatus {
		t.Error("expected GuardedStatus true")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{not json`)

	if _, err := Load(dir); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{"store_driver":"json","data_dir":"from-file"}`)
	t.Setenv("BINDERY_DATA_DIR", "from-env")
	t.Setenv("BINDERY_GUARDED_STATUS", "true")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "from-env" {
		t.Errorf("DataDir = %q, want from-env", cfg.DataDir)
	}
	if !cfg.GuardedStatus {
		t.Error("expected GuardedStatus from environment")
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("BINDERY_BACKUP_DRIVER=s3\nBINDERY_BACKUP_S3_BUCKET=shop-backups\n"), 0644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	// godotenv sets process variables; register them for cleanup.
	t.Setenv("BINDERY_BACKUP_DRIVER", "")
	t.Setenv("BINDERY_BACKUP_S3_BUCKET", "")
	os.Unsetenv("BINDERY_BACKUP_DRIVER")
	os.Unsetenv("BINDERY_BACKUP_S3_BUCKET")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backup.Driver != BackupS3 {
		t.Errorf("Backup.Driver = %q, want s3", cfg.Backup.Driver)
	}
	if cfg.Backup.Bucket != "shop-backups" {
		t.Errorf("Backup.Bucket = %q, want shop-backups", cfg.Backup.Bucket)
	}
}

func TestLoad_InvalidBool(t *testing.T) {
	t.Setenv("BINDERY_GUARDED_STATUS", "sometimes")

	if _, err := Load(t.TempDir()); err == nil {
		t.Error("expected error for invalid boolean")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"sqlite", func(c *Config) { c.StoreDriver = StoreSQLite }, false},
		{"unknown store", func(c *Config) { c.StoreDriver = "postgres" }, true},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"s3 without bucket", func(c *Config) { c.Backup.Driver = BackupS3 }, true},
		{"s3 with bucket", func(c *Config) { c.Backup.Driver = BackupS3; c.Backup.Bucket = "b" }, false},
		{"unknown backup", func(c *Config) { c.Backup.Driver = "ftp" }, true},
		{"empty data dir", func(c *Config) { c.DataDir = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.StoreDriver = StoreSQLite
	cfg.Backup.Prefix = "nightly"

	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.StoreDriver != StoreSQLite || loaded.Backup.Prefix != "nightly" {
		t.Errorf("unexpected config after round trip: %+v", loaded)
	}
}

func TestResolvePath(t *testing.T) {
	if got := ResolvePath("/work", "data"); got != filepath.Join("/work", "data") {
		t.Errorf("ResolvePath relative = %q", got)
	}
	if got := ResolvePath("/work", "/srv/data"); got != "/srv/data" {
		t.Errorf("ResolvePath absolute = %q", got)
	}
}
