// Package jsonstore implements the record store as one JSON array file per
// entity type. The whole collection is cached in memory after the first read
// and the whole file is rewritten on every mutation.
package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/example/bindery/internal/errs"
	"github.com/example/bindery/internal/models"
	"github.com/example/bindery/internal/ports/secondary"
)

// Store implements secondary.Repository backed by a single JSON file.
// Calls on one Store are serialized; separate processes sharing a file are not.
type Store[T secondary.Record] struct {
	path  string
	mu    sync.Mutex
	cache []T
}

// New creates a store for the file at path. Nothing is read until first use.
func New[T secondary.Record](path string) *Store[T] {
	return &Store[T]{path: path}
}

// Open creates a store for the named collection inside dataDir.
func Open[T secondary.Record](dataDir, collection string) *Store[T] {
	return New[T](filepath.Join(dataDir, collection+".json"))
}

// Path returns the backing file path.
func (s *Store[T]) Path() string {
	return s.path
}

func (s *Store[T]) load() ([]T, error) {
	if s.cache != nil {
		return s.cache, nil
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.cache = []T{}
		return s.cache, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.cache = []T{}
		return s.cache, nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	if records == nil {
		records = []T{}
	}
	s.cache = records
	return s.cache, nil
}

func (s *Store[T]) save(records []T) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", s.path, err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	s.cache = records
	return nil
}

func indexOf[T secondary.Record](records []T, id string) int {
	for i, r := range records {
		if r.GetID() == id {
			return i
		}
	}
	return -1
}

// FindAll returns every record in insertion order.
func (s *Store[T]) FindAll(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	out := make([]T, len(records))
	copy(out, records)
	return out, nil
}

// FindByID returns the record with the given id, or nil when absent.
func (s *Store[T]) FindByID(ctx context.Context, id string) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	i := indexOf(records, id)
	if i < 0 {
		return nil, nil
	}
	found := records[i]
	return &found, nil
}

// FindBy returns every record matching predicate, in insertion order.
func (s *Store[T]) FindBy(ctx context.Context, predicate func(T) bool) ([]T, error) {
	records, err := s.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []T
	for _, r := range records {
		if predicate(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Create appends record and persists the collection.
func (s *Store[T]) Create(ctx context.Context, record T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	records, err := s.load()
	if err != nil {
		return zero, err
	}

	next := make([]T, len(records), len(records)+1)
	copy(next, records)
	next = append(next, record)
	if err := s.save(next); err != nil {
		return zero, err
	}
	return record, nil
}

// Update replaces the record with the given id and persists the collection.
func (s *Store[T]) Update(ctx context.Context, id string, record T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	records, err := s.load()
	if err != nil {
		return zero, err
	}

	i := indexOf(records, id)
	if i < 0 {
		return zero, errs.NotFound("entity with id %s not found", id)
	}

	next := make([]T, len(records))
	copy(next, records)
	next[i] = record
	if err := s.save(next); err != nil {
		return zero, err
	}
	return record, nil
}

// Delete removes the record with the given id. Absent ids return false.
func (s *Store[T]) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return false, err
	}

	i := indexOf(records, id)
	if i < 0 {
		return false, nil
	}

	next := make([]T, 0, len(records)-1)
	next = append(next, records[:i]...)
	next = append(next, records[i+1:]...)
	if err := s.save(next); err != nil {
		return false, err
	}
	return true, nil
}

// ClearCache drops the in-memory copy so the next call rereads the file.
func (s *Store[T]) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = nil
}

// Ensure Store implements the interface.
var _ secondary.CustomerRepository = (*Store[models.Customer])(nil)
