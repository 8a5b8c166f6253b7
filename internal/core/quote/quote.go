// Package quote contains the pure business logic for quote operations.
// This is part of the Functional Core - no I/O, only pure functions.
package quote

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/example/bindery/internal/core/guard"
	"github.com/example/bindery/internal/errs"
	"github.com/example/bindery/internal/models"
)

// InitialStatus returns the status of a newly created quote or revision.
func InitialStatus() models.QuoteStatus {
	return models.QuoteDraft
}

// CalculateTotal returns quantity × unit price for one tier.
func CalculateTotal(option models.QuantityOption) decimal.Decimal {
	return decimal.NewFromInt(int64(option.Quantity)).Mul(decimal.NewFromFloat(option.UnitPrice))
}

// FormatQuoteNumber renders the display number: the bare quote number for
// version 1, "{number}-v{version}" for later revisions.
func FormatQuoteNumber(quoteNumber string, version int) string {
	if version == 1 {
		return quoteNumber
	}
	return fmt.Sprintf("%s-v%d", quoteNumber, version)
}

// NextVersion returns the version a new revision of a quote number gets:
// one past the highest version among all existing revisions.
func NextVersion(revisions []models.Quote, quoteNumber string) int {
	maxVersion := 0
	for _, q := range revisions {
		if q.QuoteNumber == quoteNumber && q.Version > maxVersion {
			maxVersion = q.Version
		}
	}
	return maxVersion + 1
}

// Quantities lists the quantities offered by a set of tiers, in order.
func Quantities(options []models.QuantityOption) []int {
	out := make([]int, len(options))
	for i, o := range options {
		out[i] = o.Quantity
	}
	return out
}

// FindOption returns the tier whose quantity equals quantity, or nil.
func FindOption(options []models.QuantityOption, quantity int) *models.QuantityOption {
	for i := range options {
		if options[i].Quantity == quantity {
			return &options[i]
		}
	}
	return nil
}

// CreateQuoteContext provides context for quote creation guards.
type CreateQuoteContext struct {
	CustomerID     string
	CustomerExists bool
	JobTitle       string
	Options        []models.QuantityOptionInput
}

// CanCreateQuote evaluates whether a quote can be created.
// Rules:
// - Customer must exist
// - At least one quantity option
// - Quantities must be positive and prices non-negative
func CanCreateQuote(ctx CreateQuoteContext) guard.Result {
	if !ctx.CustomerExists {
		return guard.Deny(errs.ErrNotFound, fmt.Sprintf("Customer %s not found", ctx.CustomerID))
	}
	return ValidateOptions(ctx.Options)
}

// ValidateOptions checks a replacement set of tiers.
func ValidateOptions(options []models.QuantityOptionInput) guard.Result {
	if len(options) == 0 {
		return guard.Deny(errs.ErrInvalidArgument, "at least one quantity option is required")
	}
	for _, o := range options {
		if o.Quantity <= 0 {
			return guard.Deny(errs.ErrInvalidArgument, fmt.Sprintf("quantity must be positive (got %d)", o.Quantity))
		}
		if o.UnitPrice < 0 {
			return guard.Deny(errs.ErrInvalidArgument, fmt.Sprintf("unit price must not be negative (got %v)", o.UnitPrice))
		}
	}
	return guard.Allow()
}

var forward = map[models.QuoteStatus][]models.QuoteStatus{
	models.QuoteDraft:    {models.QuoteSent},
	models.QuoteSent:     {models.QuoteAccepted, models.QuoteDeclined},
	models.QuoteAccepted: nil,
	models.QuoteDeclined: nil,
}

// CanTransition evaluates a status change.
// Unknown target statuses are always refused. When guarded is false any known
// status may be set at any time; when true only forward moves
// (draft → sent → accepted|declined) and no-op re-sets are allowed.
func CanTransition(from, to models.QuoteStatus, guarded bool) guard.Result {
	if !to.Valid() {
		return guard.Deny(errs.ErrInvalidArgument, fmt.Sprintf("unknown quote status %q (valid: %s)", to, joinStatuses(models.QuoteStatuses)))
	}
	if !guarded || from == to {
		return guard.Allow()
	}
	for _, next := range forward[from] {
		if next == to {
			return guard.Allow()
		}
	}
	return guard.Deny(errs.ErrInvalidState, fmt.Sprintf("cannot move quote from %s to %s", from, to))
}

func joinStatuses[S ~string](statuses []S) string {
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
