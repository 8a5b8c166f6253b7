package primary

import "context"

// BackupService defines the primary port for data snapshots.
type BackupService interface {
	// Snapshot writes every collection to the configured sink.
	Snapshot(ctx context.Context) (*BackupResult, error)
}

// BackupResult lists where each collection snapshot was written.
type BackupResult struct {
	Sink      string
	Locations map[string]string // collection -> location
	Records   map[string]int    // collection -> record count
}
