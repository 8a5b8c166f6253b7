// Package job contains the pure business logic for job operations.
// This is part of the Functional Core - no I/O, only pure functions.
package job

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/bindery/internal/core/dates"
	"github.com/example/bindery/internal/core/guard"
	"github.com/example/bindery/internal/errs"
	"github.com/example/bindery/internal/models"
)

// InitialStatus returns the status of a newly promoted job.
func InitialStatus() models.JobStatus {
	return models.JobPending
}

// CalculateTotal returns quantity × unit price for a job.
func CalculateTotal(j models.Job) decimal.Decimal {
	return decimal.NewFromInt(int64(j.Quantity)).Mul(decimal.NewFromFloat(j.UnitPrice))
}

// IsActive reports whether a job still needs production attention.
func IsActive(status models.JobStatus) bool {
	return status != models.JobComplete && status != models.JobCancelled
}

// StatusTransitionResult captures the new status and the completedAt value
// the job should carry afterwards.
type StatusTransitionResult struct {
	NewStatus   models.JobStatus
	CompletedAt string
}

// ApplyStatusTransition applies a status change. CompletedAt is stamped with
// now whenever the new status is complete and otherwise carried over
// unchanged, so a reopened job keeps its earlier completion time.
func ApplyStatusTransition(newStatus models.JobStatus, previousCompletedAt string, now time.Time) StatusTransitionResult {
	result := StatusTransitionResult{
		NewStatus:   newStatus,
		CompletedAt: previousCompletedAt,
	}
	if newStatus == models.JobComplete {
		result.CompletedAt = dates.Format(now)
	}
	return result
}

// PromotionContext provides context for the quote-to-job promotion guard.
type PromotionContext struct {
	QuoteID          string
	QuoteExists      bool
	QuoteNumber      string
	QuoteStatus      models.QuoteStatus
	LinkedJobID      string // quote.jobId
	LinkedJobExists  bool   // whether LinkedJobID still resolves to a job
	SelectedQuantity int
	Quantities       []int // quantities offered by the quote
	NumberTakenBy    string // jobNumber of an existing job already using QuoteNumber
}

// CanPromote evaluates whether a quote can be promoted to a job.
// Rules, checked in order:
// - Quote must exist
// - Quote must be accepted
// - Quote must not already be linked to a live job
// - Selected quantity must be one of the quote's tiers
// - No existing job may already use the quote number
func CanPromote(ctx PromotionContext) guard.Result {
	if !ctx.QuoteExists {
		return guard.Deny(errs.ErrNotFound, fmt.Sprintf("Quote %s not found", ctx.QuoteID))
	}

	if ctx.QuoteStatus != models.QuoteAccepted {
		return guard.Deny(errs.ErrInvalidState,
			fmt.Sprintf("Cannot create job from quote with status %q. Quote must be accepted.", ctx.QuoteStatus))
	}

	if ctx.LinkedJobID != "" && ctx.LinkedJobExists {
		return guard.Deny(errs.ErrConflict,
			fmt.Sprintf("Quote %s has already been converted to job %s", ctx.QuoteNumber, ctx.LinkedJobID))
	}

	found := false
	for _, q := range ctx.Quantities {
		if q == ctx.SelectedQuantity {
			found = true
			break
		}
	}
	if !found {
		available := make([]string, len(ctx.Quantities))
		for i, q := range ctx.Quantities {
			available[i] = fmt.Sprintf("%d", q)
		}
		return guard.Deny(errs.ErrInvalidArgument,
			fmt.Sprintf("Quantity %d not found in quote options. Available: %s", ctx.SelectedQuantity, strings.Join(available, ", ")))
	}

	if ctx.NumberTakenBy != "" {
		return guard.Deny(errs.ErrConflict,
			fmt.Sprintf("Job %s already exists for quote %s", ctx.NumberTakenBy, ctx.QuoteNumber))
	}

	return guard.Allow()
}

var forward = map[models.JobStatus][]models.JobStatus{
	models.JobPending:    {models.JobInProgress, models.JobOnHold, models.JobCancelled},
	models.JobInProgress: {models.JobComplete, models.JobOnHold, models.JobCancelled},
	models.JobOnHold:     {models.JobPending, models.JobInProgress, models.JobCancelled},
	models.JobComplete:   nil,
	models.JobCancelled:  nil,
}

// CanTransition evaluates a job status change. Unknown statuses are refused;
// when guarded, complete and cancelled are terminal and pending jobs must be
// started before they can complete.
func CanTransition(from, to models.JobStatus, guarded bool) guard.Result {
	if !to.Valid() {
		return guard.Deny(errs.ErrInvalidArgument, fmt.Sprintf("unknown job status %q", to))
	}
	if !guarded || from == to {
		return guard.Allow()
	}
	for _, next := range forward[from] {
		if next == to {
			return guard.Allow()
		}
	}
	return guard.Deny(errs.ErrInvalidState, fmt.Sprintf("cannot move job from %s to %s", from, to))
}

// InDueDateRange reports whether dueDate lies within [from, to].
// Empty bounds are open; jobs without a parseable due date never match.
func InDueDateRange(dueDate string, from, to time.Time) bool {
	due, ok := dates.Parse(dueDate)
	if !ok {
		return false
	}
	if !from.IsZero() && due.Before(from) {
		return false
	}
	if !to.IsZero() && due.After(to) {
		return false
	}
	return true
}
