package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"go.uber.org/zap"

	"github.com/example/bindery/internal/ports/primary"
	"github.com/example/bindery/internal/ports/secondary"
)

// BackupServiceImpl implements the BackupService interface.
// Each collection is written as a JSON array, the same shape as the data files.
type BackupServiceImpl struct {
	customerRepo secondary.CustomerRepository
	quoteRepo    secondary.QuoteRepository
	jobRepo      secondary.JobRepository
	runListRepo  secondary.RunListRepository
	sink         secondary.BackupSink
	logger       *zap.Logger
	now          func() time.Time
}

// NewBackupService creates a new BackupService with injected dependencies.
func NewBackupService(
	customerRepo secondary.CustomerRepository,
	quoteRepo secondary.QuoteRepository,
	jobRepo secondary.JobRepository,
	runListRepo secondary.RunListRepository,
	sink secondary.BackupSink,
	logger *zap.Logger,
) *BackupServiceImpl {
	return &BackupServiceImpl{
		customerRepo: customerRepo,
		quoteRepo:    quoteRepo,
		jobRepo:      jobRepo,
		runListRepo:  runListRepo,
		sink:         sink,
		logger:       logger,
		now:          time.Now,
	}
}

// Snapshot writes every collection under a timestamped prefix.
func (s *BackupServiceImpl) Snapshot(ctx context.Context) (*primary.BackupResult, error) {
	prefix := s.now().UTC().Format("20060102T150405Z")

	collections := []struct {
		name  string
		fetch func(context.Context) (any, int, error)
	}{
		{secondary.CustomersCollection, func(ctx context.Context) (any, int, error) {
			all, err := s.customerRepo.FindAll(ctx)
			return all, len(all), err
		}},
		{secondary.QuotesCollection, func(ctx context.Context) (any, int, error) {
			all, err := s.quoteRepo.FindAll(ctx)
			return all, len(all), err
		}},
		{secondary.JobsCollection, func(ctx context.Context) (any, int, error) {
			all, err := s.jobRepo.FindAll(ctx)
			return all, len(all), err
		}},
		{secondary.RunListCollection, func(ctx context.Context) (any, int, error) {
			all, err := s.runListRepo.FindAll(ctx)
			return all, len(all), err
		}},
	}

	result := &primary.BackupResult{
		Sink:      s.sink.Name(),
		Locations: make(map[string]string),
		Records:   make(map[string]int),
	}

	for _, c := range collections {
		records, count, err := c.fetch(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", c.name, err)
		}
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", c.name, err)
		}
		// A nil slice encodes as null; the data files always hold an array.
		if count == 0 {
			data = []byte("[]")
		}

		key := path.Join(prefix, c.name+".json")
		location, err := s.sink.Put(ctx, key, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to write %s backup: %w", c.name, err)
		}
		result.Locations[c.name] = location
		result.Records[c.name] = count
	}

	logFor(ctx, s.logger).Info("backup written", zap.String("sink", result.Sink), zap.String("prefix", prefix))
	return result, nil
}

// Ensure BackupServiceImpl implements the interface.
var _ primary.BackupService = (*BackupServiceImpl)(nil)
