package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/example/bindery/internal/core/dates"
	"github.com/example/bindery/internal/core/numbering"
	corerunlist "github.com/example/bindery/internal/core/runlist"
	"github.com/example/bindery/internal/errs"
	"github.com/example/bindery/internal/models"
	"github.com/example/bindery/internal/ports/primary"
	"github.com/example/bindery/internal/ports/secondary"
)

// RunListServiceImpl implements the RunListService interface.
type RunListServiceImpl struct {
	runListRepo   secondary.RunListRepository
	jobRepo       secondary.JobRepository
	guardedStatus bool
	logger        *zap.Logger
	now           func() time.Time
	newID         func() string
}

// NewRunListService creates a new RunListService with injected dependencies.
func NewRunListService(
	runListRepo secondary.RunListRepository,
	jobRepo secondary.JobRepository,
	guardedStatus bool,
	logger *zap.Logger,
) *RunListServiceImpl {
	return &RunListServiceImpl{
		runListRepo:   runListRepo,
		jobRepo:       jobRepo,
		guardedStatus: guardedStatus,
		logger:        logger,
		now:           time.Now,
		newID:         numbering.GenerateID,
	}
}

// CreateFromJob snapshots a job into a new planned run list item.
func (s *RunListServiceImpl) CreateFromJob(ctx context.Context, input models.CreateRunListItemInput) (*models.RunListItem, error) {
	j, err := s.jobRepo.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, fmt.Errorf("failed to load job: %w", err)
	}

	guardCtx := corerunlist.EnrollContext{
		JobID:     input.JobID,
		JobExists: j != nil,
	}
	if j != nil {
		guardCtx.JobNumber = j.JobNumber
		listed, err := s.FindByJobID(ctx, j.ID)
		if err != nil {
			return nil, err
		}
		guardCtx.AlreadyListed = listed != nil
	}

	if result := corerunlist.CanEnroll(guardCtx); !result.Allowed {
		return nil, result.Error()
	}

	record := corerunlist.Snapshot(*j, input, s.newID(), dates.Format(s.now()))

	created, err := s.runListRepo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create run list item: %w", err)
	}

	logFor(ctx, s.logger).Info("run list item created",
		zap.String("item_id", created.ID),
		zap.String("job_id", created.JobID),
		zap.String("job_number", created.JobNumber))
	return &created, nil
}

// Update merges run-list-owned fields. The source job is never touched.
func (s *RunListServiceImpl) Update(ctx context.Context, id string, input models.UpdateRunListItemInput) (*models.RunListItem, error) {
	existing, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	applyString(&updated.Category, input.Category)
	applyString(&updated.DueOut, input.DueOut)
	applyString(&updated.DueIn, input.DueIn)
	applyString(&updated.CustomerPO, input.CustomerPO)
	applyString(&updated.CustomerJobNumber, input.CustomerJobNumber)
	applyString(&updated.Description, input.Description)
	if input.Status != nil {
		if result := corerunlist.CanTransition(existing.Status, *input.Status, s.guardedStatus); !result.Allowed {
			return nil, result.Error()
		}
		updated.Status = *input.Status
	}
	if input.Operations != nil {
		updated.Operations = append([]string{}, input.Operations...)
	}
	if input.Quantity != nil {
		updated.Quantity = *input.Quantity
	}
	updated.UpdatedAt = dates.Format(s.now())

	saved, err := s.runListRepo.Update(ctx, id, updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update run list item: %w", err)
	}

	logFor(ctx, s.logger).Info("run list item updated", zap.String("item_id", id))
	return &saved, nil
}

// UpdateStatus sets the item status.
func (s *RunListServiceImpl) UpdateStatus(ctx context.Context, id string, status models.RunListStatus) (*models.RunListItem, error) {
	existing, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if result := corerunlist.CanTransition(existing.Status, status, s.guardedStatus); !result.Allowed {
		return nil, result.Error()
	}

	updated := *existing
	updated.Status = status
	updated.UpdatedAt = dates.Format(s.now())

	saved, err := s.runListRepo.Update(ctx, id, updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update run list status: %w", err)
	}

	logFor(ctx, s.logger).Info("run list status changed",
		zap.String("item_id", id),
		zap.String("from", string(existing.Status)),
		zap.String("to", string(status)))
	return &saved, nil
}

// Delete removes an item. The source job is never touched.
func (s *RunListServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.runListRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete run list item: %w", err)
	}
	if removed {
		logFor(ctx, s.logger).Info("run list item deleted", zap.String("item_id", id))
	}
	return removed, nil
}

// Get retrieves an item by ID.
func (s *RunListServiceImpl) Get(ctx context.Context, id string) (*models.RunListItem, error) {
	return s.fetch(ctx, id)
}

// List retrieves all items in insertion order.
func (s *RunListServiceImpl) List(ctx context.Context) ([]models.RunListItem, error) {
	all, err := s.runListRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list run list: %w", err)
	}
	return all, nil
}

// FindByStatus returns items with the given status.
func (s *RunListServiceImpl) FindByStatus(ctx context.Context, status models.RunListStatus) ([]models.RunListItem, error) {
	return s.filter(ctx, func(r models.RunListItem) bool { return r.Status == status })
}

// FindByJobID returns the item enrolled for a job, or nil.
func (s *RunListServiceImpl) FindByJobID(ctx context.Context, jobID string) (*models.RunListItem, error) {
	matches, err := s.filter(ctx, func(r models.RunListItem) bool { return r.JobID == jobID })
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return &matches[0], nil
}

// FindActive returns items that are not complete.
func (s *RunListServiceImpl) FindActive(ctx context.Context) ([]models.RunListItem, error) {
	return s.filter(ctx, func(r models.RunListItem) bool { return corerunlist.IsActive(r.Status) })
}

// SortByDefault returns a sorted copy of items.
func (s *RunListServiceImpl) SortByDefault(items []models.RunListItem) []models.RunListItem {
	return corerunlist.SortByDefault(items)
}

// Helper methods

func (s *RunListServiceImpl) fetch(ctx context.Context, id string) (*models.RunListItem, error) {
	r, err := s.runListRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load run list item: %w", err)
	}
	if r == nil {
		return nil, errs.NotFound("Run List item %s not found", id)
	}
	return r, nil
}

func (s *RunListServiceImpl) filter(ctx context.Context, keep func(models.RunListItem) bool) ([]models.RunListItem, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.RunListItem
	for _, r := range all {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Ensure RunListServiceImpl implements the interface.
var _ primary.RunListService = (*RunListServiceImpl)(nil)
