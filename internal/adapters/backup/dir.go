// Package backup provides the places data snapshots can be written to.
package backup

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/example/bindery/internal/ports/secondary"
)

// DirSink writes snapshots beneath a local directory.
type DirSink struct {
	root string
}

// NewDirSink creates a sink rooted at dir. The directory is created on first Put.
func NewDirSink(dir string) *DirSink {
	return &DirSink{root: dir}
}

// Name implements secondary.BackupSink.
func (s *DirSink) Name() string { return "dir" }

// Put writes r to root/key, creating intermediate directories.
func (s *DirSink) Put(ctx context.Context, key string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dest := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dest, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write %s: %w", dest, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", dest, err)
	}
	return dest, nil
}

var _ secondary.BackupSink = (*DirSink)(nil)
