package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/example/bindery/internal/core/dates"
	"github.com/example/bindery/internal/core/numbering"
	corequote "github.com/example/bindery/internal/core/quote"
	"github.com/example/bindery/internal/errs"
	"github.com/example/bindery/internal/models"
	"github.com/example/bindery/internal/ports/primary"
	"github.com/example/bindery/internal/ports/secondary"
)

// QuoteServiceImpl implements the QuoteService interface.
type QuoteServiceImpl struct {
	quoteRepo     secondary.QuoteRepository
	customerRepo  secondary.CustomerRepository
	allocator     *numbering.Allocator
	guardedStatus bool
	logger        *zap.Logger
	now           func() time.Time
	newID         func() string
}

// NewQuoteService creates a new QuoteService with injected dependencies.
// When guardedStatus is set, status changes must move forward.
func NewQuoteService(
	quoteRepo secondary.QuoteRepository,
	customerRepo secondary.CustomerRepository,
	allocator *numbering.Allocator,
	guardedStatus bool,
	logger *zap.Logger,
) *QuoteServiceImpl {
	return &QuoteServiceImpl{
		quoteRepo:     quoteRepo,
		customerRepo:  customerRepo,
		allocator:     allocator,
		guardedStatus: guardedStatus,
		logger:        logger,
		now:           time.Now,
		newID:         numbering.GenerateID,
	}
}

// Create numbers and stores a new draft quote.
func (s *QuoteServiceImpl) Create(ctx context.Context, input models.CreateQuoteInput) (*models.Quote, error) {
	cust, err := s.customerRepo.FindByID(ctx, input.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}

	guardCtx := corequote.CreateQuoteContext{
		CustomerID:     input.CustomerID,
		CustomerExists: cust != nil,
		JobTitle:       input.JobTitle,
		Options:        input.QuantityOptions,
	}
	if result := corequote.CanCreateQuote(guardCtx); !result.Allowed {
		return nil, result.Error()
	}

	now := s.now()
	monthKey := numbering.MonthKey(now)

	// Hold the month lock from reading existing numbers until the new quote is stored.
	unlock := s.allocator.Lock(monthKey)
	defer unlock()

	all, err := s.quoteRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	existing := make([]string, len(all))
	for i, q := range all {
		existing[i] = q.QuoteNumber
	}

	stamp := dates.Format(now)
	record := models.Quote{
		ID:              s.newID(),
		QuoteNumber:     numbering.GenerateNumber(existing, monthKey),
		Version:         1,
		CustomerID:      cust.ID,
		CustomerName:    cust.Name,
		CustomerNumber:  input.CustomerNumber,
		JobTitle:        input.JobTitle,
		Description:     input.Description,
		FinishedSize:    input.FinishedSize,
		PaperStock:      input.PaperStock,
		QuantityOptions: s.buildOptions(input.QuantityOptions),
		Status:          corequote.InitialStatus(),
		Notes:           input.Notes,
		CreatedAt:       stamp,
		UpdatedAt:       stamp,
	}

	created, err := s.quoteRepo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create quote: %w", err)
	}

	logFor(ctx, s.logger).Info("quote created",
		zap.String("quote_id", created.ID),
		zap.String("quote_number", created.QuoteNumber),
		zap.String("customer_id", created.CustomerID))
	return &created, nil
}

// Update merges the provided fields. Supplied quantity options replace the
// whole set and every tier gets a fresh id.
func (s *QuoteServiceImpl) Update(ctx context.Context, id string, input models.UpdateQuoteInput) (*models.Quote, error) {
	existing, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *existing
	applyString(&updated.CustomerNumber, input.CustomerNumber)
	applyString(&updated.JobTitle, input.JobTitle)
	applyString(&updated.Description, input.Description)
	applyString(&updated.FinishedSize, input.FinishedSize)
	applyString(&updated.PaperStock, input.PaperStock)
	applyString(&updated.Notes, input.Notes)

	if input.QuantityOptions != nil {
		if result := corequote.ValidateOptions(input.QuantityOptions); !result.Allowed {
			return nil, result.Error()
		}
		updated.QuantityOptions = s.buildOptions(input.QuantityOptions)
	}
	updated.UpdatedAt = dates.Format(s.now())

	saved, err := s.quoteRepo.Update(ctx, id, updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update quote: %w", err)
	}

	logFor(ctx, s.logger).Info("quote updated", zap.String("quote_id", id))
	return &saved, nil
}

// UpdateStatus sets the quote status.
func (s *QuoteServiceImpl) UpdateStatus(ctx context.Context, id string, status models.QuoteStatus) (*models.Quote, error) {
	existing, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if result := corequote.CanTransition(existing.Status, status, s.guardedStatus); !result.Allowed {
		return nil, result.Error()
	}

	updated := *existing
	updated.Status = status
	updated.UpdatedAt = dates.Format(s.now())

	saved, err := s.quoteRepo.Update(ctx, id, updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update quote status: %w", err)
	}

	logFor(ctx, s.logger).Info("quote status changed",
		zap.String("quote_id", id),
		zap.String("from", string(existing.Status)),
		zap.String("to", string(status)))
	return &saved, nil
}

// CreateRevision stores a new draft copy of a quote under the same number
// with the next free version. The source and earlier revisions are untouched.
func (s *QuoteServiceImpl) CreateRevision(ctx context.Context, id string) (*models.Quote, error) {
	existing, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	// Hold the quote number's lock from reading versions until the revision is stored.
	unlock := s.allocator.Lock(existing.QuoteNumber)
	defer unlock()

	all, err := s.quoteRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}

	stamp := dates.Format(s.now())
	revision := *existing
	revision.ID = s.newID()
	revision.Version = corequote.NextVersion(all, existing.QuoteNumber)
	revision.Status = corequote.InitialStatus()
	revision.QuantityOptions = append([]models.QuantityOption(nil), existing.QuantityOptions...)
	revision.JobID = "" // a revision has not been promoted
	revision.CreatedAt = stamp
	revision.UpdatedAt = stamp

	created, err := s.quoteRepo.Create(ctx, revision)
	if err != nil {
		return nil, fmt.Errorf("failed to create quote revision: %w", err)
	}

	logFor(ctx, s.logger).Info("quote revised",
		zap.String("quote_id", created.ID),
		zap.String("source_id", id),
		zap.String("quote_number", s.FormatQuoteNumber(created)))
	return &created, nil
}

// Delete removes a quote. Jobs promoted from it keep their quoteId.
func (s *QuoteServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := s.quoteRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete quote: %w", err)
	}
	if removed {
		logFor(ctx, s.logger).Info("quote deleted", zap.String("quote_id", id))
	}
	return removed, nil
}

// Get retrieves a quote by ID.
func (s *QuoteServiceImpl) Get(ctx context.Context, id string) (*models.Quote, error) {
	return s.fetch(ctx, id)
}

// List retrieves all quotes.
func (s *QuoteServiceImpl) List(ctx context.Context) ([]models.Quote, error) {
	all, err := s.quoteRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return all, nil
}

// FindByCustomer returns the quotes for one customer.
func (s *QuoteServiceImpl) FindByCustomer(ctx context.Context, customerID string) ([]models.Quote, error) {
	return s.filter(ctx, func(q models.Quote) bool { return q.CustomerID == customerID })
}

// FindByStatus returns the quotes with the given status.
func (s *QuoteServiceImpl) FindByStatus(ctx context.Context, status models.QuoteStatus) ([]models.Quote, error) {
	return s.filter(ctx, func(q models.Quote) bool { return q.Status == status })
}

// FindByNumber returns every revision of a quote number ordered by version.
func (s *QuoteServiceImpl) FindByNumber(ctx context.Context, quoteNumber string) ([]models.Quote, error) {
	revisions, err := s.filter(ctx, func(q models.Quote) bool { return q.QuoteNumber == quoteNumber })
	if err != nil {
		return nil, err
	}
	sort.SliceStable(revisions, func(i, j int) bool { return revisions[i].Version < revisions[j].Version })
	return revisions, nil
}

// CalculateTotal returns quantity × unit price for a tier.
func (s *QuoteServiceImpl) CalculateTotal(option models.QuantityOption) decimal.Decimal {
	return corequote.CalculateTotal(option)
}

// FormatQuoteNumber renders the display number of a quote.
func (s *QuoteServiceImpl) FormatQuoteNumber(q models.Quote) string {
	return corequote.FormatQuoteNumber(q.QuoteNumber, q.Version)
}

// Helper methods

func (s *QuoteServiceImpl) fetch(ctx context.Context, id string) (*models.Quote, error) {
	q, err := s.quoteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load quote: %w", err)
	}
	if q == nil {
		return nil, errs.NotFound("Quote %s not found", id)
	}
	return q, nil
}

func (s *QuoteServiceImpl) filter(ctx context.Context, keep func(models.Quote) bool) ([]models.Quote, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Quote
	for _, q := range all {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *QuoteServiceImpl) buildOptions(inputs []models.QuantityOptionInput) []models.QuantityOption {
	options := make([]models.QuantityOption, len(inputs))
	for i, in := range inputs {
		options[i] = models.QuantityOption{
			ID:        s.newID(),
			Quantity:  in.Quantity,
			UnitPrice: in.UnitPrice,
		}
	}
	return options
}

// Ensure QuoteServiceImpl implements the interface.
var _ primary.QuoteService = (*QuoteServiceImpl)(nil)
