// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/example/bindery/internal/models"
)

// Record is anything a Repository can store: a value with a string identity.
type Record interface {
	GetID() string
}

// Repository is the keyed record store contract every backend honours.
// Records are kept in insertion order.
type Repository[T Record] interface {
	// FindAll returns every record in insertion order.
	FindAll(ctx context.Context) ([]T, error)

	// FindByID returns the record with the given id, or nil when absent.
	FindByID(ctx context.Context, id string) (*T, error)

	// Create appends a record. The caller guarantees the id is unique.
	Create(ctx context.Context, record T) (T, error)

	// Update replaces the record with the given id.
	// Returns an errs.ErrNotFound error when no record has that id.
	Update(ctx context.Context, id string, record T) (T, error)

	// Delete removes the record with the given id and reports whether one was removed.
	Delete(ctx context.Context, id string) (bool, error)
}

// Entity-specific repository aliases used for wiring.
type (
	CustomerRepository = Repository[models.Customer]
	QuoteRepository    = Repository[models.Quote]
	JobRepository      = Repository[models.Job]
	RunListRepository  = Repository[models.RunListItem]
)

// Collection file names, one per entity type.
const (
	CustomersCollection = "customers"
	QuotesCollection    = "quotes"
	JobsCollection      = "jobs"
	RunListCollection   = "runList"
)

// Collections lists every collection in a stable order.
var Collections = []string{CustomersCollection, QuotesCollection, JobsCollection, RunListCollection}
