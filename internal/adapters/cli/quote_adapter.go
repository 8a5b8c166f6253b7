package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/bindery/internal/errs"
	"github.com/example/bindery/internal/models"
	"github.com/example/bindery/internal/ports/primary"
)

// QuoteAdapter translates CLI operations to QuoteService calls.
type QuoteAdapter struct {
	service primary.QuoteService
	out     io.Writer
}

// NewQuoteAdapter creates a new QuoteAdapter with the given service.
func NewQuoteAdapter(service primary.QuoteService, out io.Writer) *QuoteAdapter {
	return &QuoteAdapter{
		service: service,
		out:     out,
	}
}

// QuoteFilters narrows the quote list. Empty fields match everything.
type QuoteFilters struct {
	Status     string
	CustomerID string
	Number     string
}

// Create creates a quote.
func (a *QuoteAdapter) Create(ctx context.Context, input models.CreateQuoteInput) error {
	q, err := a.service.Create(ctx, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created quote %s for %s (%s)\n", a.service.FormatQuoteNumber(*q), q.CustomerName, q.ID)
	a.printOptions(q.QuantityOptions)
	return nil
}

// List lists quotes matching the filters.
func (a *QuoteAdapter) List(ctx context.Context, filters QuoteFilters) error {
	var (
		quotes []models.Quote
		err    error
	)
	switch {
	case filters.Number != "":
		quotes, err = a.service.FindByNumber(ctx, filters.Number)
	case filters.CustomerID != "":
		quotes, err = a.service.FindByCustomer(ctx, filters.CustomerID)
	case filters.Status != "":
		quotes, err = a.service.FindByStatus(ctx, models.QuoteStatus(filters.Status))
	default:
		quotes, err = a.service.List(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to list quotes: %w", err)
	}

	// Status and customer may be combined; the service filters on one.
	var shown []models.Quote
	for _, q := range quotes {
		if filters.Status != "" && string(q.Status) != filters.Status {
			continue
		}
		if filters.CustomerID != "" && q.CustomerID != filters.CustomerID {
			continue
		}
		shown = append(shown, q)
	}

	if len(shown) == 0 {
		fmt.Fprintln(a.out, "No quotes found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-14s %-10s %-24s %-30s %s\n", "NUMBER", "STATUS", "CUSTOMER", "TITLE", "JOB")
	fmt.Fprintln(a.out, rule)
	for _, q := range shown {
		fmt.Fprintf(a.out, "%-14s %s %-24s %-30s %s\n",
			a.service.FormatQuoteNumber(q),
			colorStatus(string(q.Status), 10),
			truncate(q.CustomerName, 24),
			truncate(q.JobTitle, 30),
			orDash(q.JobID))
	}
	fmt.Fprintln(a.out)
	return nil
}

// Show displays details for a single quote.
func (a *QuoteAdapter) Show(ctx context.Context, id string) error {
	q, err := a.service.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nQuote:    %s (%s)\n", a.service.FormatQuoteNumber(*q), q.ID)
	fmt.Fprintf(a.out, "Status:   %s\n", colorStatus(string(q.Status), 0))
	fmt.Fprintf(a.out, "Customer: %s (%s)\n", q.CustomerName, q.CustomerID)
	if q.CustomerNumber != "" {
		fmt.Fprintf(a.out, "Cust #:   %s\n", q.CustomerNumber)
	}
	fmt.Fprintf(a.out, "Title:    %s\n", q.JobTitle)
	fmt.Fprintf(a.out, "Size:     %s\n", orDash(q.FinishedSize))
	if q.PaperStock != "" {
		fmt.Fprintf(a.out, "Stock:    %s\n", q.PaperStock)
	}
	if q.Description != "" {
		fmt.Fprintf(a.out, "Description:\n  %s\n", q.Description)
	}
	if q.Notes != "" {
		fmt.Fprintf(a.out, "Notes:    %s\n", q.Notes)
	}
	if q.JobID != "" {
		fmt.Fprintf(a.out, "Job:      %s\n", q.JobID)
	}
	fmt.Fprintf(a.out, "Created:  %s\n", q.CreatedAt)
	fmt.Fprintf(a.out, "Updated:  %s\n", q.UpdatedAt)
	a.printOptions(q.QuantityOptions)
	return nil
}

func (a *QuoteAdapter) printOptions(options []models.QuantityOption) {
	fmt.Fprintf(a.out, "\n  %10s %12s %14s\n", "QUANTITY", "UNIT PRICE", "TOTAL")
	for _, o := range options {
		fmt.Fprintf(a.out, "  %10d %12s %14s\n", o.Quantity, fmt.Sprintf("$%.4g", o.UnitPrice), money(a.service.CalculateTotal(o)))
	}
	fmt.Fprintln(a.out)
}

// Update updates a quote.
func (a *QuoteAdapter) Update(ctx context.Context, id string, input models.UpdateQuoteInput) error {
	q, err := a.service.Update(ctx, id, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Quote %s updated\n", a.service.FormatQuoteNumber(*q))
	return nil
}

// UpdateStatus sets a quote's status.
func (a *QuoteAdapter) UpdateStatus(ctx context.Context, id, status string) error {
	q, err := a.service.UpdateStatus(ctx, id, models.QuoteStatus(status))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Quote %s is now %s\n", a.service.FormatQuoteNumber(*q), colorStatus(string(q.Status), 0))
	return nil
}

// Revise creates a new revision of a quote.
func (a *QuoteAdapter) Revise(ctx context.Context, id string) error {
	rev, err := a.service.CreateRevision(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Created revision %s (%s)\n", a.service.FormatQuoteNumber(*rev), rev.ID)
	return nil
}

// Delete deletes a quote.
func (a *QuoteAdapter) Delete(ctx context.Context, id string) error {
	removed, err := a.service.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return errs.NotFound("Quote %s not found", id)
	}
	fmt.Fprintf(a.out, "✓ Quote %s deleted\n", id)
	return nil
}
