package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/example/bindery/internal/errs"
	"github.com/example/bindery/internal/models"
	"github.com/example/bindery/internal/ports/primary"
)

// RunListAdapter translates CLI operations to RunListService calls.
type RunListAdapter struct {
	service primary.RunListService
	out     io.Writer
}

// NewRunListAdapter creates a new RunListAdapter with the given service.
func NewRunListAdapter(service primary.RunListService, out io.Writer) *RunListAdapter {
	return &RunListAdapter{
		service: service,
		out:     out,
	}
}

// Add enrolls a job in the run list.
func (a *RunListAdapter) Add(ctx context.Context, input models.CreateRunListItemInput) error {
	item, err := a.service.CreateFromJob(ctx, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Added job %s to the run list (%s)\n", item.JobNumber, item.ID)
	return nil
}

// Items returns the run list in default order, optionally filtered.
func (a *RunListAdapter) Items(ctx context.Context, status string, activeOnly bool) ([]models.RunListItem, error) {
	var (
		items []models.RunListItem
		err   error
	)
	switch {
	case status != "":
		items, err = a.service.FindByStatus(ctx, models.RunListStatus(status))
	case activeOnly:
		items, err = a.service.FindActive(ctx)
	default:
		items, err = a.service.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list run list: %w", err)
	}
	return a.service.SortByDefault(items), nil
}

// List prints the run list in default order.
func (a *RunListAdapter) List(ctx context.Context, status string, activeOnly bool) error {
	items, err := a.Items(ctx, status, activeOnly)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Run list is empty")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-12s %-10s %-10s %-22s %-26s %8s %-10s %s\n", "CATEGORY", "JOB", "STATUS", "CUSTOMER", "TITLE", "QTY", "DUE OUT", "OPS")
	fmt.Fprintln(a.out, rule)
	for _, r := range items {
		fmt.Fprintf(a.out, "%-12s %-10s %s %-22s %-26s %8d %-10s %s\n",
			truncate(orDash(r.Category), 12),
			r.JobNumber,
			colorStatus(string(r.Status), 10),
			truncate(r.CustomerName, 22),
			truncate(r.JobTitle, 26),
			r.Quantity,
			orDash(r.DueOut),
			strings.Join(r.Operations, ","))
	}
	fmt.Fprintln(a.out)
	return nil
}

// Show displays details for a single item.
func (a *RunListAdapter) Show(ctx context.Context, id string) error {
	r, err := a.service.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nRun list item: %s\n", r.ID)
	fmt.Fprintf(a.out, "Job:        %s (%s)\n", r.JobNumber, r.JobID)
	fmt.Fprintf(a.out, "Status:     %s\n", colorStatus(string(r.Status), 0))
	fmt.Fprintf(a.out, "Customer:   %s\n", r.CustomerName)
	fmt.Fprintf(a.out, "Title:      %s\n", r.JobTitle)
	fmt.Fprintf(a.out, "Category:   %s\n", orDash(r.Category))
	fmt.Fprintf(a.out, "Quantity:   %d\n", r.Quantity)
	fmt.Fprintf(a.out, "Customer PO: %s\n", orDash(r.CustomerPO))
	fmt.Fprintf(a.out, "Cust job #: %s\n", orDash(r.CustomerJobNumber))
	fmt.Fprintf(a.out, "Due in:     %s\n", orDash(r.DueIn))
	fmt.Fprintf(a.out, "Due out:    %s\n", orDash(r.DueOut))
	fmt.Fprintf(a.out, "Operations: %s\n", orDash(strings.Join(r.Operations, ", ")))
	if r.Description != "" {
		fmt.Fprintf(a.out, "Description:\n  %s\n", r.Description)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Update updates run-list-owned fields.
func (a *RunListAdapter) Update(ctx context.Context, id string, input models.UpdateRunListItemInput) error {
	r, err := a.service.Update(ctx, id, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Run list item for job %s updated\n", r.JobNumber)
	return nil
}

// UpdateStatus sets an item's status.
func (a *RunListAdapter) UpdateStatus(ctx context.Context, id, status string) error {
	r, err := a.service.UpdateStatus(ctx, id, models.RunListStatus(status))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Job %s is now %s on the run list\n", r.JobNumber, colorStatus(string(r.Status), 0))
	return nil
}

// Delete removes an item from the run list.
func (a *RunListAdapter) Delete(ctx context.Context, id string) error {
	removed, err := a.service.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return errs.NotFound("Run List item %s not found", id)
	}
	fmt.Fprintf(a.out, "✓ Run list item %s removed\n", id)
	return nil
}
