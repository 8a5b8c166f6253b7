package primary

import (
	"context"

	"github.com/example/bindery/internal/models"
)

// RunListService defines the primary port for run list operations.
type RunListService interface {
	// CreateFromJob snapshots a job into a new planned run list item.
	CreateFromJob(ctx context.Context, input models.CreateRunListItemInput) (*models.RunListItem, error)

	// Update merges run-list-owned fields. The source job is never touched.
	Update(ctx context.Context, id string, input models.UpdateRunListItemInput) (*models.RunListItem, error)

	UpdateStatus(ctx context.Context, id string, status models.RunListStatus) (*models.RunListItem, error)
	Delete(ctx context.Context, id string) (bool, error)
	Get(ctx context.Context, id string) (*models.RunListItem, error)
	List(ctx context.Context) ([]models.RunListItem, error)
	FindByStatus(ctx context.Context, status models.RunListStatus) ([]models.RunListItem, error)
	FindByJobID(ctx context.Context, jobID string) (*models.RunListItem, error)

	// FindActive returns items that are not complete.
	FindActive(ctx context.Context) ([]models.RunListItem, error)

	// SortByDefault orders items by category descending, then dueOut ascending.
	SortByDefault(items []models.RunListItem) []models.RunListItem
}
