package primary

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/example/bindery/internal/models"
)

// QuoteService defines the primary port for quote operations.
type QuoteService interface {
	// Create numbers and stores a draft quote for an existing customer.
	Create(ctx context.Context, input models.CreateQuoteInput) (*models.Quote, error)

	// Update merges fields; supplied quantity options replace the whole set.
	Update(ctx context.Context, id string, input models.UpdateQuoteInput) (*models.Quote, error)

	// UpdateStatus sets the quote status.
	UpdateStatus(ctx context.Context, id string, status models.QuoteStatus) (*models.Quote, error)

	// CreateRevision copies a quote into a new draft with the next version.
	CreateRevision(ctx context.Context, id string) (*models.Quote, error)

	// Delete removes a quote without checking for promoted jobs.
	Delete(ctx context.Context, id string) (bool, error)

	// Get retrieves a quote by ID.
	Get(ctx context.Context, id string) (*models.Quote, error)

	// List retrieves all quotes in insertion order.
	List(ctx context.Context) ([]models.Quote, error)

	// FindByCustomer returns the quotes for one customer.
	FindByCustomer(ctx context.Context, customerID string) ([]models.Quote, error)

	// FindByStatus returns the quotes with the given status.
	FindByStatus(ctx context.Context, status models.QuoteStatus) ([]models.Quote, error)

	// FindByNumber returns every revision of a quote number, by version.
	FindByNumber(ctx context.Context, quoteNumber string) ([]models.Quote, error)

	// CalculateTotal returns quantity × unit price for a tier.
	CalculateTotal(option models.QuantityOption) decimal.Decimal

	// FormatQuoteNumber renders the display number of a quote.
	FormatQuoteNumber(q models.Quote) string
}
