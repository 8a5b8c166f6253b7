package wire

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/example/bindery/internal/config"
	"github.com/example/bindery/internal/db"
	"github.com/example/bindery/internal/models"
)

func TestBuild_StoreDrivers(t *testing.T) {
	tests := []struct {
		driver   string
		wantFile string
	}{
		{config.StoreJSON, "customers.json"},
		{config.StoreSQLite, db.FileName},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			workdir := t.TempDir()
			cfg := config.Default()
			cfg.StoreDriver = tt.driver

			c, err := Build(cfg, workdir, zap.NewNop())
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			defer c.Close()

			ctx := context.Background()
			created, err := c.Customer.Create(ctx, models.CreateCustomerInput{Name: "Acme Press"})
			if err != nil {
				t.Fatalf("Create failed: %v", err)
			}

			got, err := c.Repos.Customers.FindByID(ctx, created.ID)
			if err != nil {
				t.Fatalf("FindByID failed: %v", err)
			}
			if got == nil || got.Name != "Acme Press" {
				t.Errorf("expected stored customer, got %+v", got)
			}

			if _, err := os.Stat(filepath.Join(workdir, "data", tt.wantFile)); err != nil {
				t.Errorf("expected %s in data dir: %v", tt.wantFile, err)
			}
		})
	}
}

func TestBuild_UnknownDriver(t *testing.T) {
	cfg := config.Default()
	cfg.StoreDriver = "postgres"

	if _, err := Build(cfg, t.TempDir(), zap.NewNop()); err == nil {
		t.Error("expected error for unknown store driver")
	}
}

func TestContainer_BackupService_Dir(t *testing.T) {
	workdir := t.TempDir()
	cfg := config.Default()

	c, err := Build(cfg, workdir, zap.NewNop())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer c.Close()

	svc, err := c.BackupService(context.Background())
	if err != nil {
		t.Fatalf("BackupService failed: %v", err)
	}

	result, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if result.Sink != "dir" {
		t.Errorf("expected dir sink, got %q", result.Sink)
	}
	if len(result.Locations) != 4 {
		t.Errorf("expected 4 snapshot files, got %d", len(result.Locations))
	}
}
