package primary

import "context"

// SeedService defines the primary port for loading demo data.
type SeedService interface {
	// Seed creates the demo customers, quotes and jobs.
	// Skipped when customers already exist unless force is set.
	Seed(ctx context.Context, force bool) (*SeedResult, error)
}

// SeedResult counts what Seed created.
type SeedResult struct {
	Skipped   bool
	Customers int
	Quotes    int
	Jobs      int
	RunList   int
}
