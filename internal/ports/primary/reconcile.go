package primary

import "context"

// ReconcileService finds and repairs broken links between records.
type ReconcileService interface {
	// Check scans all records and reports problems without changing anything.
	Check(ctx context.Context) (*ReconcileReport, error)

	// Repair fixes every repairable finding and returns what was found.
	Repair(ctx context.Context) (*ReconcileReport, error)
}

// FindingKind names a class of reconciliation problem.
type FindingKind string

const (
	// FindingMissingBacklink is a job whose quote does not point back at it.
	FindingMissingBacklink FindingKind = "missing-backlink"
	// FindingDanglingJobLink is a quote whose jobId names a job that is gone.
	FindingDanglingJobLink FindingKind = "dangling-job-link"
	// FindingOrphanQuote is a quote whose customer no longer exists.
	FindingOrphanQuote FindingKind = "orphan-quote"
	// FindingOrphanJob is a job whose quote no longer exists.
	FindingOrphanJob FindingKind = "orphan-job"
)

// Finding is one reconciliation problem.
type Finding struct {
	Kind       FindingKind
	EntityID   string
	Reference  string
	Detail     string
	Repairable bool
	Repaired   bool
}

// ReconcileReport contains the result of a check or repair pass.
type ReconcileReport struct {
	Findings []Finding
	Repaired int
}
