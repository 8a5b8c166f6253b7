package models

// JobStatus is the lifecycle label of a job.
type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobInProgress JobStatus = "in_progress"
	JobComplete   JobStatus = "complete"
	JobOnHold     JobStatus = "on_hold"
	JobCancelled  JobStatus = "cancelled"
)

// JobStatuses lists every known job status.
var JobStatuses = []JobStatus{JobPending, JobInProgress, JobComplete, JobOnHold, JobCancelled}

// Valid reports whether s is a known job status.
func (s JobStatus) Valid() bool {
	for _, known := range JobStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Job is an accepted quote promoted into production. The quote-derived
// fields are copied once at promotion and never resynced.
type Job struct {
	ID           string    `json:"id"`
	JobNumber    string    `json:"jobNumber"`
	QuoteID      string    `json:"quoteId"`
	CustomerID   string    `json:"customerId"`
	CustomerName string    `json:"customerName"`
	JobTitle     string    `json:"jobTitle"`
	Description  string    `json:"description"`
	FinishedSize string    `json:"finishedSize"`
	PaperStock   string    `json:"paperStock,omitempty"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unitPrice"`
	Status       JobStatus `json:"status"`
	CreatedAt    string    `json:"createdAt"`
	UpdatedAt    string    `json:"updatedAt"`
	CompletedAt  string    `json:"completedAt,omitempty"`

	// Job-only editable fields.
	CustomerJobNumber   string   `json:"customerJobNumber,omitempty"`
	PONumber            string   `json:"poNumber,omitempty"`
	PartNumber          string   `json:"partNumber,omitempty"`
	ExpectedInDate      string   `json:"expectedInDate,omitempty"`
	DueDate             string   `json:"dueDate,omitempty"`
	AllowedSamples      *int     `json:"allowedSamples,omitempty"`
	AllowedOvers        *float64 `json:"allowedOvers,omitempty"`
	DeliveryInformation string   `json:"deliveryInformation,omitempty"`
	MiscellaneousNotes  string   `json:"miscellaneousNotes,omitempty"`
}

// GetID returns the record identity.
func (j Job) GetID() string { return j.ID }

// UpdateJobInput updates job-only fields; nil fields are left untouched.
type UpdateJobInput struct {
	CustomerJobNumber   *string
	PONumber            *string
	PartNumber          *string
	ExpectedInDate      *string
	DueDate             *string
	AllowedSamples      *int
	AllowedOvers        *float64
	DeliveryInformation *string
	MiscellaneousNotes  *string
}
