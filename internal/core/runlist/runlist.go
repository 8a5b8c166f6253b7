// Package runlist contains the pure business logic for the production run list.
// This is part of the Functional Core - no I/O, only pure functions.
package runlist

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/example/bindery/internal/core/dates"
	"github.com/example/bindery/internal/core/guard"
	"github.com/example/bindery/internal/errs"
	"github.com/example/bindery/internal/models"
)

// InitialStatus returns the status of a newly enrolled item.
func InitialStatus() models.RunListStatus {
	return models.RunListPlanned
}

// IsActive reports whether an item is still on the floor.
func IsActive(status models.RunListStatus) bool {
	return status != models.RunListComplete
}

// EnrollContext provides context for the enrollment guard.
type EnrollContext struct {
	JobID         string
	JobExists     bool
	JobNumber     string
	AlreadyListed bool
}

// CanEnroll evaluates whether a job can be added to the run list.
// Rules:
// - Job must exist
// - Job must not already have a run list item
func CanEnroll(ctx EnrollContext) guard.Result {
	if !ctx.JobExists {
		return guard.Deny(errs.ErrNotFound, fmt.Sprintf("Job %s not found", ctx.JobID))
	}
	if ctx.AlreadyListed {
		return guard.Deny(errs.ErrConflict, fmt.Sprintf("Job %s is already in the Run List", ctx.JobNumber))
	}
	return guard.Allow()
}

// Snapshot builds a new item from the job as it is now. The copy is one-way
// and one-time: later edits to either side never reach the other.
func Snapshot(j models.Job, input models.CreateRunListItemInput, id, now string) models.RunListItem {
	dueIn := input.DueIn
	if dueIn == "" {
		dueIn = j.ExpectedInDate
	}
	operations := append([]string{}, input.Operations...)

	return models.RunListItem{
		ID:                id,
		JobID:             j.ID,
		JobNumber:         j.JobNumber,
		CustomerName:      j.CustomerName,
		JobTitle:          j.JobTitle,
		CustomerPO:        j.PONumber,
		CustomerJobNumber: j.CustomerJobNumber,
		Quantity:          j.Quantity,
		Description:       j.Description,
		Category:          input.Category,
		DueOut:            input.DueOut,
		DueIn:             dueIn,
		Status:            InitialStatus(),
		Operations:        operations,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

var forward = map[models.RunListStatus][]models.RunListStatus{
	models.RunListPlanned:  {models.RunListIn, models.RunListHold},
	models.RunListIn:       {models.RunListHold, models.RunListComplete},
	models.RunListHold:     {models.RunListPlanned, models.RunListIn},
	models.RunListComplete: nil,
}

// CanTransition evaluates a run list status change. Unknown statuses are
// refused; when guarded, complete is terminal and work must be "in" before
// it can complete.
func CanTransition(from, to models.RunListStatus, guarded bool) guard.Result {
	if !to.Valid() {
		return guard.Deny(errs.ErrInvalidArgument, fmt.Sprintf("unknown run list status %q", to))
	}
	if !guarded || from == to {
		return guard.Allow()
	}
	for _, next := range forward[from] {
		if next == to {
			return guard.Allow()
		}
	}
	return guard.Deny(errs.ErrInvalidState, fmt.Sprintf("cannot move run list item from %s to %s", from, to))
}

func dueOutKey(item models.RunListItem) float64 {
	t, ok := dates.Parse(item.DueOut)
	if !ok {
		return math.Inf(1)
	}
	return float64(t.UnixMilli())
}

// SortByDefault returns a sorted copy: category descending ignoring case
// (raw bytes break ties, empty categories come last), then dueOut ascending
// with missing dates last. The input slice is not modified.
func SortByDefault(items []models.RunListItem) []models.RunListItem {
	sorted := append([]models.RunListItem(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if la, lb := strings.ToLower(a.Category), strings.ToLower(b.Category); la != lb {
			return la > lb
		}
		if a.Category != b.Category {
			return a.Category > b.Category
		}
		return dueOutKey(a) < dueOutKey(b)
	})
	return sorted
}
