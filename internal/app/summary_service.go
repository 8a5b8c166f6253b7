package app

import (
	"context"
	"fmt"

	corejob "github.com/example/bindery/internal/core/job"
	corerunlist "github.com/example/bindery/internal/core/runlist"
	"github.com/example/bindery/internal/ports/primary"
	"github.com/example/bindery/internal/ports/secondary"
)

// SummaryServiceImpl implements the SummaryService interface.
type SummaryServiceImpl struct {
	customerRepo secondary.CustomerRepository
	quoteRepo    secondary.QuoteRepository
	jobRepo      secondary.JobRepository
	runListRepo  secondary.RunListRepository
}

// NewSummaryService creates a new SummaryService with injected dependencies.
func NewSummaryService(
	customerRepo secondary.CustomerRepository,
	quoteRepo secondary.QuoteRepository,
	jobRepo secondary.JobRepository,
	runListRepo secondary.RunListRepository,
) *SummaryServiceImpl {
	return &SummaryServiceImpl{
		customerRepo: customerRepo,
		quoteRepo:    quoteRepo,
		jobRepo:      jobRepo,
		runListRepo:  runListRepo,
	}
}

// GetSummary counts records per entity and status.
func (s *SummaryServiceImpl) GetSummary(ctx context.Context) (*primary.Summary, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	quotes, err := s.quoteRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	jobs, err := s.jobRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	items, err := s.runListRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list run list: %w", err)
	}

	summary := &primary.Summary{
		Customers:      len(customers),
		Quotes:         len(quotes),
		QuotesByStatus: make(map[string]int),
		Jobs:           len(jobs),
		JobsByStatus:   make(map[string]int),
		RunList:        len(items),
	}
	for _, q := range quotes {
		summary.QuotesByStatus[string(q.Status)]++
	}
	for _, j := range jobs {
		summary.JobsByStatus[string(j.Status)]++
		if corejob.IsActive(j.Status) {
			summary.ActiveJobs++
		}
	}
	for _, r := range items {
		if corerunlist.IsActive(r.Status) {
			summary.RunListActive++
		}
	}
	return summary, nil
}

// Ensure SummaryServiceImpl implements the interface.
var _ primary.SummaryService = (*SummaryServiceImpl)(nil)
