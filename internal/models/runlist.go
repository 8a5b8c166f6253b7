package models

// RunListStatus is the lifecycle label of a run list item.
type RunListStatus string

const (
	RunListPlanned  RunListStatus = "planned"
	RunListIn       RunListStatus = "in"
	RunListHold     RunListStatus = "hold"
	RunListComplete RunListStatus = "complete"
)

// RunListStatuses lists every known run list status.
var RunListStatuses = []RunListStatus{RunListPlanned, RunListIn, RunListHold, RunListComplete}

// Valid reports whether s is a known run list status.
func (s RunListStatus) Valid() bool {
	for _, known := range RunListStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// RunListItem is a production-tracking record snapshotted from a job.
// JobID is only used to prevent enrolling the same job twice.
type RunListItem struct {
	ID                string        `json:"id"`
	JobID             string        `json:"jobId"`
	JobNumber         string        `json:"jobNumber"`
	CustomerName      string        `json:"customerName"`
	JobTitle          string        `json:"jobTitle"`
	CustomerPO        string        `json:"customerPO,omitempty"`
	CustomerJobNumber string        `json:"customerJobNumber,omitempty"`
	Quantity          int           `json:"quantity"`
	Description       string        `json:"description"`
	Category          string        `json:"category"`
	DueOut            string        `json:"dueOut,omitempty"`
	DueIn             string        `json:"dueIn,omitempty"`
	Status            RunListStatus `json:"status"`
	Operations        []string      `json:"operations"`
	CreatedAt         string        `json:"createdAt"`
	UpdatedAt         string        `json:"updatedAt"`
}

// GetID returns the record identity.
func (r RunListItem) GetID() string { return r.ID }

// CreateRunListItemInput enrolls a job in the run list.
type CreateRunListItemInput struct {
	JobID      string
	Category   string
	DueOut     string
	DueIn      string
	Operations []string
}

// UpdateRunListItemInput updates run-list-owned fields; nil fields are left untouched.
type UpdateRunListItemInput struct {
	Category          *string
	DueOut            *string
	DueIn             *string
	Status            *RunListStatus
	Operations        []string
	CustomerPO        *string
	CustomerJobNumber *string
	Quantity          *int
	Description       *string
}
