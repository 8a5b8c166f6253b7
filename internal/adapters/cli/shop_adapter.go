package cli

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/example/bindery/internal/ports/primary"
	"github.com/example/bindery/internal/ports/secondary"
)

// ShopAdapter renders the whole-shop commands: status, doctor, backup and seed.
type ShopAdapter struct {
	out io.Writer
}

// NewShopAdapter creates a new ShopAdapter.
func NewShopAdapter(out io.Writer) *ShopAdapter {
	return &ShopAdapter{out: out}
}

// Status prints record counts per entity and status.
func (a *ShopAdapter) Status(ctx context.Context, service primary.SummaryService) error {
	s, err := service.GetSummary(ctx)
	if err != nil {
		return fmt.Errorf("failed to get summary: %w", err)
	}

	fmt.Fprintln(a.out)
	fmt.Fprintf(a.out, "Customers: %d\n", s.Customers)
	fmt.Fprintf(a.out, "Quotes:    %d%s\n", s.Quotes, breakdown(s.QuotesByStatus))
	fmt.Fprintf(a.out, "Jobs:      %d (%d active)%s\n", s.Jobs, s.ActiveJobs, breakdown(s.JobsByStatus))
	fmt.Fprintf(a.out, "Run list:  %d (%d active)\n", s.RunList, s.RunListActive)
	fmt.Fprintln(a.out)
	return nil
}

func breakdown(counts map[string]int) string {
	if len(counts) == 0 {
		return ""
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := "  "
	for i, k := range keys {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s %d", colorStatus(k, 0), counts[k])
	}
	return s
}

// Doctor runs a reconciliation check, or a repair when repair is set.
// It returns an error when unrepaired findings remain.
func (a *ShopAdapter) Doctor(ctx context.Context, service primary.ReconcileService, repair bool) error {
	var (
		report *primary.ReconcileReport
		err    error
	)
	if repair {
		report, err = service.Repair(ctx)
	} else {
		report, err = service.Check(ctx)
	}
	if err != nil {
		return err
	}

	if len(report.Findings) == 0 {
		fmt.Fprintln(a.out, "✓ No problems found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-20s %-38s %s\n", "PROBLEM", "RECORD", "DETAIL")
	fmt.Fprintln(a.out, rule)
	outstanding := 0
	for _, f := range report.Findings {
		mark := color.New(color.FgRed).Sprint("✗")
		switch {
		case f.Repaired:
			mark = color.New(color.FgGreen).Sprint("✓")
		case f.Repairable:
			mark = color.New(color.FgYellow).Sprint("⚠")
			outstanding++
		default:
			outstanding++
		}
		fmt.Fprintf(a.out, "%s %-18s %-38s %s\n", mark, f.Kind, f.EntityID, f.Detail)
	}
	fmt.Fprintln(a.out)

	if repair {
		fmt.Fprintf(a.out, "Repaired %d of %d finding(s)\n", report.Repaired, len(report.Findings))
	} else {
		fmt.Fprintln(a.out, "Run with --repair to fix repairable findings")
	}

	if outstanding > 0 {
		return fmt.Errorf("%d problem(s) need attention", outstanding)
	}
	return nil
}

// Backup snapshots every collection.
func (a *ShopAdapter) Backup(ctx context.Context, service primary.BackupService) error {
	result, err := service.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	for _, name := range secondary.Collections {
		fmt.Fprintf(a.out, "✓ %-10s %4d record(s) → %s\n", name, result.Records[name], result.Locations[name])
	}
	return nil
}

// Seed loads demo data.
func (a *ShopAdapter) Seed(ctx context.Context, service primary.SeedService, force bool) error {
	result, err := service.Seed(ctx, force)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}
	if result.Skipped {
		fmt.Fprintln(a.out, "Customers already exist, skipping seed (use --force to seed anyway)")
		return nil
	}

	fmt.Fprintf(a.out, "✓ Seeded %d customers, %d quotes, %d jobs, %d run list items\n",
		result.Customers, result.Quotes, result.Jobs, result.RunList)
	return nil
}
