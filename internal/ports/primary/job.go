package primary

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/bindery/internal/models"
)

// JobService defines the primary port for job operations.
type JobService interface {
	// CreateFromQuote promotes an accepted quote at one of its quantities.
	CreateFromQuote(ctx context.Context, quoteID string, selectedQuantity int) (*models.Job, error)

	// Update merges job-only fields.
	Update(ctx context.Context, id string, input models.UpdateJobInput) (*models.Job, error)

	// UpdateStatus sets the job status, stamping completedAt on completion.
	UpdateStatus(ctx context.Context, id string, status models.JobStatus) (*models.Job, error)

	StartJob(ctx context.Context, id string) (*models.Job, error)
	CompleteJob(ctx context.Context, id string) (*models.Job, error)
	HoldJob(ctx context.Context, id string) (*models.Job, error)
	CancelJob(ctx context.Context, id string) (*models.Job, error)

	// Delete removes a job and clears its source quote's backlink.
	Delete(ctx context.Context, id string) (bool, error)

	// Get retrieves a job by ID.
	Get(ctx context.Context, id string) (*models.Job, error)

	// List retrieves all jobs in insertion order.
	List(ctx context.Context) ([]models.Job, error)

	FindByCustomer(ctx context.Context, customerID string) ([]models.Job, error)
	FindByStatus(ctx context.Context, status models.JobStatus) ([]models.Job, error)
	FindByQuoteID(ctx context.Context, quoteID string) (*models.Job, error)

	// FindActiveJobs returns jobs that are neither complete nor cancelled.
	FindActiveJobs(ctx context.Context) ([]models.Job, error)

	// FindByDueDateRange returns jobs due within [from, to]. Zero bounds are open.
	FindByDueDateRange(ctx context.Context, from, to time.Time) ([]models.Job, error)

	// CalculateTotal returns quantity × unit price for a job.
	CalculateTotal(j models.Job) decimal.Decimal
}
