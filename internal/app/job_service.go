package app

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/example/bindery/internal/core/dates"
	corejob "github.com/example/bindery/internal/core/job"
	"github.com/example/bindery/internal/core/numbering"
	corequote "github.com/example/bindery/internal/core/quote"
	"github.com/example/bindery/internal/errs"
	"github.com/example/bindery/internal/models"
	"github.com/example/bindery/internal/ports/primary"
	"github.com/example/bindery/internal/ports/secondary"
)

// JobServiceImpl implements the JobService interface.
type JobServiceImpl struct {
	jobRepo       secondary.JobRepository
	quoteRepo     secondary.QuoteRepository
	guardedStatus bool
	logger        *zap.Logger
	now           func() time.Time
	newID         func() string
}

// NewJobService creates a new JobService with injected dependencies.
func NewJobService(
	jobRepo secondary.JobRepository,
	quoteRepo secondary.QuoteRepository,
	guardedStatus bool,
	logger *zap.Logger,
) *JobServiceImpl {
	return &JobServiceImpl{
		jobRepo:       jobRepo,
		quoteRepo:     quoteRepo,
		guardedStatus: guardedStatus,
		logger:        logger,
		now:           time.Now,
		newID:         numbering.GenerateID,
	}
}

// CreateFromQuote promotes an accepted quote into a pending job at the
// selected quantity, then points the quote's jobId at the new job.
func (s *JobServiceImpl) CreateFromQuote(ctx context.Context, quoteID string, selectedQuantity int) (*models.Job, error) {
	// 1. Gather guard context
	q, err := s.quoteRepo.FindByID(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quote: %w", err)
	}

	guardCtx := corejob.PromotionContext{
		QuoteID:          quoteID,
		QuoteExists:      q != nil,
		SelectedQuantity: selectedQuantity,
	}

	var jobs []models.Job
	if q != nil {
		guardCtx.QuoteNumber = q.QuoteNumber
		guardCtx.QuoteStatus = q.Status
		guardCtx.LinkedJobID = q.JobID
		guardCtx.Quantities = corequote.Quantities(q.QuantityOptions)

		if q.JobID != "" {
			linked, err := s.jobRepo.FindByID(ctx, q.JobID)
			if err != nil {
				return nil, fmt.Errorf("failed to load linked job: %w", err)
			}
			guardCtx.LinkedJobExists = linked != nil
		}

		jobs, err = s.jobRepo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list jobs: %w", err)
		}
		for _, j := range jobs {
			if j.JobNumber == q.QuoteNumber {
				guardCtx.NumberTakenBy = j.JobNumber
				break
			}
		}
	}

	// 2. Check guard
	if result := corejob.CanPromote(guardCtx); !result.Allowed {
		return nil, result.Error()
	}

	// 3. Build the job from the quote and the chosen tier
	option := corequote.FindOption(q.QuantityOptions, selectedQuantity)
	stamp := dates.Format(s.now())
	record := models.Job{
		ID:           s.newID(),
		JobNumber:    q.QuoteNumber,
		QuoteID:      q.ID,
		CustomerID:   q.CustomerID,
		CustomerName: q.CustomerName,
		JobTitle:     q.JobTitle,
		Description:  q.Description,
		FinishedSize: q.FinishedSize,
		PaperStock:   q.PaperStock,
		Quantity:     option.Quantity,
		UnitPrice:    option.UnitPrice,
		Status:       corejob.InitialStatus(),
		CreatedAt:    stamp,
		UpdatedAt:    stamp,
	}

	created, err := s.jobRepo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	// 4. Backlink. Not atomic with the create; the reconcile pass repairs a gap here.
	linked := *q
	linked.JobID = created.ID
	linked.UpdatedAt = stamp
	if _, err := s.quoteRepo.Update(ctx, q.ID, linked); err != nil {
		logFor(ctx, s.logger).Warn("job created but quote backlink failed",
			zap.String("job_id", created.ID),
			zap.String("quote_id", q.ID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to link quote %s to job %s: %w", q.ID, created.ID, err)
	}

	logFor(ctx, s.logger).Info("job created from quote",
		zap.String("job_id", created.ID),
		zap.String("job_number", created.JobNumber),
		zap.String("quote_id", q.ID),
		zap.Int("quantity", created.Quantity))
	return &created, nil
}

// Update merges job-only fields. Quote-derived fields are never changed.
func (s *JobServiceImpl) Update(ctx context.Context, id string, input models.UpdateJobInput) (*models.Job, error) {
	existing, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	applyString(&updated.CustomerJobNumber, input.CustomerJobNumber)
	applyString(&updated.PONumber, input.PONumber)
	applyString(&updated.PartNumber, input.PartNumber)
	applyString(&updated.ExpectedInDate, input.ExpectedInDate)
	applyString(&updated.DueDate, input.DueDate)
	applyString(&updated.DeliveryInformation, input.DeliveryInformation)
	applyString(&updated.MiscellaneousNotes, input.MiscellaneousNotes)
	if input.AllowedSamples != nil {
		v := *input.AllowedSamples
		updated.AllowedSamples = &v
	}
	if input.AllowedOvers != nil {
		v := *input.AllowedOvers
		updated.AllowedOvers = &v
	}
	updated.UpdatedAt = dates.Format(s.now())

	saved, err := s.jobRepo.Update(ctx, id, updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	logFor(ctx, s.logger).Info("job updated", zap.String("job_id", id))
	return &saved, nil
}

// UpdateStatus sets the job status. Completing a job stamps completedAt;
// moving away from complete leaves the stamp in place.
func (s *JobServiceImpl) UpdateStatus(ctx context.Context, id string, status models.JobStatus) (*models.Job, error) {
	existing, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if result := corejob.CanTransition(existing.Status, status, s.guardedStatus); !result.Allowed {
		return nil, result.Error()
	}

	now := s.now()
	transition := corejob.ApplyStatusTransition(status, existing.CompletedAt, now)

	updated := *existing
	updated.Status = transition.NewStatus
	updated.CompletedAt = transition.CompletedAt
	updated.UpdatedAt = dates.Format(now)

	saved, err := s.jobRepo.Update(ctx, id, updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update job status: %w", err)
	}

	logFor(ctx, s.logger).Info("job status changed",
		zap.String("job_id", id),
		zap.String("from", string(existing.Status)),
		zap.String("to", string(status)))
	return &saved, nil
}

// StartJob moves a job to in_progress.
func (s *JobServiceImpl) StartJob(ctx context.Context, id string) (*models.Job, error) {
	return s.UpdateStatus(ctx, id, models.JobInProgress)
}

// CompleteJob moves a job to complete.
func (s *JobServiceImpl) CompleteJob(ctx context.Context, id string) (*models.Job, error) {
	return s.UpdateStatus(ctx, id, models.JobComplete)
}

// HoldJob moves a job to on_hold.
func (s *JobServiceImpl) HoldJob(ctx context.Context, id string) (*models.Job, error) {
	return s.UpdateStatus(ctx, id, models.JobOnHold)
}

// CancelJob moves a job to cancelled.
func (s *JobServiceImpl) CancelJob(ctx context.Context, id string) (*models.Job, error) {
	return s.UpdateStatus(ctx, id, models.JobCancelled)
}

// Delete removes a job. If its source quote still points at it, the quote's
// jobId is cleared first so the quote can be promoted again.
func (s *JobServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	existing, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to load job: %w", err)
	}
	if existing == nil {
		return false, nil
	}

	q, err := s.quoteRepo.FindByID(ctx, existing.QuoteID)
	if err != nil {
		return false, fmt.Errorf("failed to load quote: %w", err)
	}
	if q != nil && q.JobID == id {
		unlinked := *q
		unlinked.JobID = ""
		unlinked.UpdatedAt = dates.Format(s.now())
		if _, err := s.quoteRepo.Update(ctx, q.ID, unlinked); err != nil {
			return false, fmt.Errorf("failed to unlink quote %s: %w", q.ID, err)
		}
	}

	removed, err := s.jobRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete job: %w", err)
	}

	logFor(ctx, s.logger).Info("job deleted", zap.String("job_id", id), zap.String("quote_id", existing.QuoteID))
	return removed, nil
}

// Get retrieves a job by ID.
func (s *JobServiceImpl) Get(ctx context.Context, id string) (*models.Job, error) {
	return s.fetch(ctx, id)
}

// List retrieves all jobs.
func (s *JobServiceImpl) List(ctx context.Context) ([]models.Job, error) {
	all, err := s.jobRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return all, nil
}

// FindByCustomer returns the jobs for one customer.
func (s *JobServiceImpl) FindByCustomer(ctx context.Context, customerID string) ([]models.Job, error) {
	return s.filter(ctx, func(j models.Job) bool { return j.CustomerID == customerID })
}

// FindByStatus returns the jobs with the given status.
func (s *JobServiceImpl) FindByStatus(ctx context.Context, status models.JobStatus) ([]models.Job, error) {
	return s.filter(ctx, func(j models.Job) bool { return j.Status == status })
}

// FindByQuoteID returns the job promoted from a quote, or nil.
func (s *JobServiceImpl) FindByQuoteID(ctx context.Context, quoteID string) (*models.Job, error) {
	matches, err := s.filter(ctx, func(j models.Job) bool { return j.QuoteID == quoteID })
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return &matches[0], nil
}

// FindActiveJobs returns jobs that are neither complete nor cancelled.
func (s *JobServiceImpl) FindActiveJobs(ctx context.Context) ([]models.Job, error) {
	return s.filter(ctx, func(j models.Job) bool { return corejob.IsActive(j.Status) })
}

// FindByDueDateRange returns jobs whose due date lies within [from, to].
func (s *JobServiceImpl) FindByDueDateRange(ctx context.Context, from, to time.Time) ([]models.Job, error) {
	return s.filter(ctx, func(j models.Job) bool { return corejob.InDueDateRange(j.DueDate, from, to) })
}

// CalculateTotal returns quantity × unit price for a job.
func (s *JobServiceImpl) CalculateTotal(j models.Job) decimal.Decimal {
	return corejob.CalculateTotal(j)
}

// Helper methods

func (s *JobServiceImpl) fetch(ctx context.Context, id string) (*models.Job, error) {
	j, err := s.jobRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load job: %w", err)
	}
	if j == nil {
		return nil, errs.NotFound("Job %s not found", id)
	}
	return j, nil
}

func (s *JobServiceImpl) filter(ctx context.Context, keep func(models.Job) bool) ([]models.Job, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Job
	for _, j := range all {
		if keep(j) {
			out = append(out, j)
		}
	}
	return out, nil
}

// Ensure JobServiceImpl implements the interface.
var _ primary.JobService = (*JobServiceImpl)(nil)
