// Package sqlite contains a SQLite implementation of the record store contract.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/example/bindery/internal/errs"
	"github.com/example/bindery/internal/models"
	"github.com/example/bindery/internal/ports/secondary"
)

// Store implements secondary.Repository for one collection in the records table.
type Store[T secondary.Record] struct {
	db         *sql.DB
	collection string
}

// NewStore creates a SQLite-backed store for the named collection.
func NewStore[T secondary.Record](db *sql.DB, collection string) *Store[T] {
	return &Store[T]{db: db, collection: collection}
}

func (s *Store[T]) decode(body string) (T, error) {
	var record T
	if err := json.Unmarshal([]byte(body), &record); err != nil {
		return record, fmt.Errorf("failed to decode %s record: %w", s.collection, err)
	}
	return record, nil
}

// FindAll returns every record in insertion order.
func (s *Store[T]) FindAll(ctx context.Context) ([]T, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT body FROM records WHERE collection = ? ORDER BY seq ASC",
		s.collection,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.collection, err)
	}
	defer rows.Close()

	records := []T{}
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", s.collection, err)
		}
		record, err := s.decode(body)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// FindByID returns the record with the given id, or nil when absent.
func (s *Store[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		"SELECT body FROM records WHERE collection = ? AND id = ?",
		s.collection, id,
	).Scan(&body)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s record: %w", s.collection, err)
	}

	record, err := s.decode(body)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Create appends a record after the current last one.
func (s *Store[T]) Create(ctx context.Context, record T) (T, error) {
	var zero T
	body, err := json.Marshal(record)
	if err != nil {
		return zero, fmt.Errorf("failed to encode %s record: %w", s.collection, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (collection, id, seq, body)
		 VALUES (?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM records WHERE collection = ?), ?)`,
		s.collection, record.GetID(), s.collection, string(body),
	)
	if err != nil {
		return zero, fmt.Errorf("failed to create %s record: %w", s.collection, err)
	}

	return record, nil
}

// Update replaces the record with the given id, keeping its position.
func (s *Store[T]) Update(ctx context.Context, id string, record T) (T, error) {
	var zero T
	body, err := json.Marshal(record)
	if err != nil {
		return zero, fmt.Errorf("failed to encode %s record: %w", s.collection, err)
	}

	result, err := s.db.ExecContext(ctx,
		"UPDATE records SET id = ?, body = ?, updated_at = CURRENT_TIMESTAMP WHERE collection = ? AND id = ?",
		record.GetID(), string(body), s.collection, id,
	)
	if err != nil {
		return zero, fmt.Errorf("failed to update %s record: %w", s.collection, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return zero, errs.NotFound("entity with id %s not found", id)
	}

	return record, nil
}

// Delete removes the record with the given id and reports whether one existed.
func (s *Store[T]) Delete(ctx context.Context, id string) (bool, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM records WHERE collection = ? AND id = ?",
		s.collection, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete %s record: %w", s.collection, err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}

// Ensure Store implements the interface.
var _ secondary.QuoteRepository = (*Store[models.Quote])(nil)
