package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/example/bindery/internal/core/dates"
	"github.com/example/bindery/internal/ports/primary"
	"github.com/example/bindery/internal/ports/secondary"
)

// ReconcileServiceImpl implements the ReconcileService interface.
// It closes the gap left when a job is stored but its quote backlink is not.
type ReconcileServiceImpl struct {
	customerRepo secondary.CustomerRepository
	quoteRepo    secondary.QuoteRepository
	jobRepo      secondary.JobRepository
	logger       *zap.Logger
	now          func() time.Time
}

// NewReconcileService creates a new ReconcileService with injected dependencies.
func NewReconcileService(
	customerRepo secondary.CustomerRepository,
	quoteRepo secondary.QuoteRepository,
	jobRepo secondary.JobRepository,
	logger *zap.Logger,
) *ReconcileServiceImpl {
	return &ReconcileServiceImpl{
		customerRepo: customerRepo,
		quoteRepo:    quoteRepo,
		jobRepo:      jobRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// Check reports problems without changing anything.
func (s *ReconcileServiceImpl) Check(ctx context.Context) (*primary.ReconcileReport, error) {
	return s.scan(ctx, false)
}

// Repair fixes every repairable finding.
func (s *ReconcileServiceImpl) Repair(ctx context.Context) (*primary.ReconcileReport, error) {
	return s.scan(ctx, true)
}

func (s *ReconcileServiceImpl) scan(ctx context.Context, repair bool) (*primary.ReconcileReport, error) {
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

	customerIDs := make(map[string]bool, len(customers))
	for _, c := range customers {
		customerIDs[c.ID] = true
	}
	jobIDs := make(map[string]bool, len(jobs))
	for _, j := range jobs {
		jobIDs[j.ID] = true
	}
	quoteIndex := make(map[string]int, len(quotes))
	for i, q := range quotes {
		quoteIndex[q.ID] = i
	}

	report := &primary.ReconcileReport{}
	pending := make(map[string]string) // quote id -> jobId to write

	for _, j := range jobs {
		i, ok := quoteIndex[j.QuoteID]
		if !ok {
			report.Findings = append(report.Findings, primary.Finding{
				Kind:      primary.FindingOrphanJob,
				EntityID:  j.ID,
				Reference: j.QuoteID,
				Detail:    fmt.Sprintf("job %s refers to quote %s, which no longer exists", j.JobNumber, j.QuoteID),
			})
			continue
		}
		q := quotes[i]
		if q.JobID == j.ID {
			continue
		}
		if q.JobID != "" && jobIDs[q.JobID] {
			report.Findings = append(report.Findings, primary.Finding{
				Kind:      primary.FindingMissingBacklink,
				EntityID:  j.ID,
				Reference: q.ID,
				Detail:    fmt.Sprintf("quote %s is linked to job %s, not job %s", q.QuoteNumber, q.JobID, j.ID),
			})
			continue
		}
		if _, claimed := pending[q.ID]; claimed {
			continue
		}
		pending[q.ID] = j.ID
		report.Findings = append(report.Findings, primary.Finding{
			Kind:       primary.FindingMissingBacklink,
			EntityID:   j.ID,
			Reference:  q.ID,
			Detail:     fmt.Sprintf("quote %s does not point back at job %s", q.QuoteNumber, j.ID),
			Repairable: true,
		})
	}

	for _, q := range quotes {
		if q.JobID != "" && !jobIDs[q.JobID] {
			if _, claimed := pending[q.ID]; !claimed {
				pending[q.ID] = ""
				report.Findings = append(report.Findings, primary.Finding{
					Kind:       primary.FindingDanglingJobLink,
					EntityID:   q.ID,
					Reference:  q.JobID,
					Detail:     fmt.Sprintf("quote %s points at job %s, which no longer exists", q.QuoteNumber, q.JobID),
					Repairable: true,
				})
			}
		}
		if !customerIDs[q.CustomerID] {
			report.Findings = append(report.Findings, primary.Finding{
				Kind:      primary.FindingOrphanQuote,
				EntityID:  q.ID,
				Reference: q.CustomerID,
				Detail:    fmt.Sprintf("quote %s refers to customer %s (%s), which no longer exists", q.QuoteNumber, q.CustomerID, q.CustomerName),
			})
		}
	}

	if !repair {
		return report, nil
	}

	stamp := dates.Format(s.now())
	for i := range report.Findings {
		f := &report.Findings[i]
		if !f.Repairable {
			continue
		}
		quoteID := f.Reference
		if f.Kind == primary.FindingDanglingJobLink {
			quoteID = f.EntityID
		}
		q := quotes[quoteIndex[quoteID]]
		q.JobID = pending[quoteID]
		q.UpdatedAt = stamp
		if _, err := s.quoteRepo.Update(ctx, q.ID, q); err != nil {
			return report, fmt.Errorf("failed to repair quote %s: %w", q.ID, err)
		}
		f.Repaired = true
		report.Repaired++
		logFor(ctx, s.logger).Info("quote link repaired",
			zap.String("quote_id", q.ID),
			zap.String("kind", string(f.Kind)),
			zap.String("job_id", q.JobID))
	}

	return report, nil
}

// Ensure ReconcileServiceImpl implements the interface.
var _ primary.ReconcileService = (*ReconcileServiceImpl)(nil)

