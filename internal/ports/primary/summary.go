package primary

import "context"

// SummaryService defines the primary port for the shop overview.
type SummaryService interface {
	// GetSummary counts records per entity and status.
	GetSummary(ctx context.Context) (*Summary, error)
}

// Summary holds record counts for the status command.
type Summary struct {
	Customers      int
	Quotes         int
	QuotesByStatus map[string]int
	Jobs           int
	JobsByStatus   map[string]int
	ActiveJobs     int
	RunList        int
	RunListActive  int
}
