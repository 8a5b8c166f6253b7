// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the CLI drives the bindery services.
package primary

import (
	"context"

	"github.com/example/bindery/internal/core/customer"
	"github.com/example/bindery/internal/models"
)

// CustomerService defines the primary port for customer operations.
type CustomerService interface {
	// Create adds a customer. Fails with a Conflict error when another
	// customer already uses the email, compared case-insensitively.
	Create(ctx context.Context, input models.CreateCustomerInput) (*models.Customer, error)

	// CheckForDuplicates reports email and name collisions without blocking.
	// excludeID skips the record being edited.
	CheckForDuplicates(ctx context.Context, name, email, excludeID string) (*customer.DuplicateCheckResult, error)

	// Update merges the provided fields over the stored customer.
	Update(ctx context.Context, id string, input models.UpdateCustomerInput) (*models.Customer, error)

	// Delete removes a customer. Quotes and jobs referencing it are left alone.
	Delete(ctx context.Context, id string) (bool, error)

	// Get retrieves a customer by ID.
	Get(ctx context.Context, id string) (*models.Customer, error)

	// List retrieves all customers in insertion order.
	List(ctx context.Context) ([]models.Customer, error)

	// FindByName returns customers whose name contains substring, case-insensitively.
	FindByName(ctx context.Context, substring string) ([]models.Customer, error)

	// FindByEmail returns the customer with the email, or nil.
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)

	// FindDuplicates groups customers sharing an email.
	FindDuplicates(ctx context.Context) ([]customer.DuplicateGroup, error)

	// MergeDuplicates keeps the oldest of ids and deletes the rest.
	MergeDuplicates(ctx context.Context, ids []string) (*MergeResult, error)
}

// MergeResult contains the outcome of merging duplicate customers.
type MergeResult struct {
	Merged     models.Customer
	DeletedIDs []string
}
