package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/example/bindery/internal/errs"
	"github.com/example/bindery/internal/models"
	"github.com/example/bindery/internal/ports/primary"
)

// JobAdapter translates CLI operations to JobService calls.
type JobAdapter struct {
	service primary.JobService
	out     io.Writer
}

// NewJobAdapter creates a new JobAdapter with the given service.
func NewJobAdapter(service primary.JobService, out io.Writer) *JobAdapter {
	return &JobAdapter{
		service: service,
		out:     out,
	}
}

// JobFilters narrows the job list. Zero values match everything.
type JobFilters struct {
	Status     string
	CustomerID string
	ActiveOnly bool
	DueFrom    time.Time
	DueTo      time.Time
}

// Create promotes a quote into a job.
func (a *JobAdapter) Create(ctx context.Context, quoteID string, quantity int) error {
	j, err := a.service.CreateFromQuote(ctx, quoteID, quantity)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Created job %s (%s): %d @ $%g = %s\n",
		j.JobNumber, j.ID, j.Quantity, j.UnitPrice, money(a.service.CalculateTotal(*j)))
	return nil
}

// List lists jobs matching the filters.
func (a *JobAdapter) List(ctx context.Context, filters JobFilters) error {
	var (
		jobs []models.Job
		err  error
	)
	switch {
	case !filters.DueFrom.IsZero() || !filters.DueTo.IsZero():
		jobs, err = a.service.FindByDueDateRange(ctx, filters.DueFrom, filters.DueTo)
	case filters.ActiveOnly:
		jobs, err = a.service.FindActiveJobs(ctx)
	case filters.CustomerID != "":
		jobs, err = a.service.FindByCustomer(ctx, filters.CustomerID)
	case filters.Status != "":
		jobs, err = a.service.FindByStatus(ctx, models.JobStatus(filters.Status))
	default:
		jobs, err = a.service.List(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to list jobs: %w", err)
	}

	var shown []models.Job
	for _, j := range jobs {
		if filters.Status != "" && string(j.Status) != filters.Status {
			continue
		}
		if filters.CustomerID != "" && j.CustomerID != filters.CustomerID {
			continue
		}
		shown = append(shown, j)
	}

	if len(shown) == 0 {
		fmt.Fprintln(a.out, "No jobs found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-10s %-12s %-22s %-28s %8s %12s %s\n", "JOB", "STATUS", "CUSTOMER", "TITLE", "QTY", "TOTAL", "DUE")
	fmt.Fprintln(a.out, rule)
	for _, j := range shown {
		fmt.Fprintf(a.out, "%-10s %s %-22s %-28s %8d %12s %s\n",
			j.JobNumber,
			colorStatus(string(j.Status), 12),
			truncate(j.CustomerName, 22),
			truncate(j.JobTitle, 28),
			j.Quantity,
			money(a.service.CalculateTotal(j)),
			orDash(j.DueDate))
	}
	fmt.Fprintln(a.out)
	return nil
}

// Show displays details for a single job.
func (a *JobAdapter) Show(ctx context.Context, id string) error {
	j, err := a.service.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nJob:       %s (%s)\n", j.JobNumber, j.ID)
	fmt.Fprintf(a.out, "Status:    %s\n", colorStatus(string(j.Status), 0))
	fmt.Fprintf(a.out, "Customer:  %s (%s)\n", j.CustomerName, j.CustomerID)
	fmt.Fprintf(a.out, "Quote:     %s\n", j.QuoteID)
	fmt.Fprintf(a.out, "Title:     %s\n", j.JobTitle)
	fmt.Fprintf(a.out, "Size:      %s\n", orDash(j.FinishedSize))
	if j.PaperStock != "" {
		fmt.Fprintf(a.out, "Stock:     %s\n", j.PaperStock)
	}
	fmt.Fprintf(a.out, "Quantity:  %d @ $%g = %s\n", j.Quantity, j.UnitPrice, money(a.service.CalculateTotal(*j)))

	optional := []struct{ label, value string }{
		{"Cust job #", j.CustomerJobNumber},
		{"PO #", j.PONumber},
		{"Part #", j.PartNumber},
		{"Expected", j.ExpectedInDate},
		{"Due", j.DueDate},
		{"Delivery", j.DeliveryInformation},
		{"Notes", j.MiscellaneousNotes},
	}
	for _, f := range optional {
		if f.value != "" {
			fmt.Fprintf(a.out, "%-10s %s\n", f.label+":", f.value)
		}
	}
	if j.AllowedSamples != nil {
		fmt.Fprintf(a.out, "Samples:   %d\n", *j.AllowedSamples)
	}
	if j.AllowedOvers != nil {
		fmt.Fprintf(a.out, "Overs:     %g%%\n", *j.AllowedOvers)
	}
	fmt.Fprintf(a.out, "Created:   %s\n", j.CreatedAt)
	if j.CompletedAt != "" {
		fmt.Fprintf(a.out, "Completed: %s\n", j.CompletedAt)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Update updates job-only fields.
func (a *JobAdapter) Update(ctx context.Context, id string, input models.UpdateJobInput) error {
	j, err := a.service.Update(ctx, id, input)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Job %s updated\n", j.JobNumber)
	return nil
}

// UpdateStatus sets a job's status.
func (a *JobAdapter) UpdateStatus(ctx context.Context, id, status string) error {
	return a.report(a.service.UpdateStatus(ctx, id, models.JobStatus(status)))
}

// Start moves a job to in_progress.
func (a *JobAdapter) Start(ctx context.Context, id string) error {
	return a.report(a.service.StartJob(ctx, id))
}

// Complete moves a job to complete.
func (a *JobAdapter) Complete(ctx context.Context, id string) error {
	return a.report(a.service.CompleteJob(ctx, id))
}

// Hold moves a job to on_hold.
func (a *JobAdapter) Hold(ctx context.Context, id string) error {
	return a.report(a.service.HoldJob(ctx, id))
}

// Cancel moves a job to cancelled.
func (a *JobAdapter) Cancel(ctx context.Context, id string) error {
	return a.report(a.service.CancelJob(ctx, id))
}

func (a *JobAdapter) report(j *models.Job, err error) error {
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Job %s is now %s\n", j.JobNumber, colorStatus(string(j.Status), 0))
	return nil
}

// Delete deletes a job.
func (a *JobAdapter) Delete(ctx context.Context, id string) error {
	removed, err := a.service.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return errs.NotFound("Job %s not found", id)
	}
	fmt.Fprintf(a.out, "✓ Job %s deleted\n", id)
	return nil
}
