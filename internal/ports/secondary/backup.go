package secondary

import (
	"context"
	"io"
)

// BackupSink defines the secondary port for storing data snapshots.
type BackupSink interface {
	// Put stores one snapshot object under key and returns where it went.
	Put(ctx context.Context, key string, r io.Reader) (string, error)

	// Name identifies the sink in log output ("dir", "s3").
	Name() string
}
