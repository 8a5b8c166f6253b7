package models

// QuoteStatus is the lifecycle label of a quote.
type QuoteStatus string

const (
	QuoteDraft    QuoteStatus = "draft"
	QuoteSent     QuoteStatus = "sent"
	QuoteAccepted QuoteStatus = "accepted"
	QuoteDeclined QuoteStatus = "declined"
)

// QuoteStatuses lists every known quote status in lifecycle order.
var QuoteStatuses = []QuoteStatus{QuoteDraft, QuoteSent, QuoteAccepted, QuoteDeclined}

// Valid reports whether s is a known quote status.
func (s QuoteStatus) Valid() bool {
	for _, known := range QuoteStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// QuantityOption is one quantity/price tier offered within a quote.
type QuantityOption struct {
	ID        string  `json:"id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Quote is a priced proposal. All revisions of a quote share QuoteNumber
// and are told apart by Version.
type Quote struct {
	ID              string           `json:"id"`
	QuoteNumber     string           `json:"quoteNumber"`
	Version         int              `json:"version"`
	CustomerID      string           `json:"customerId"`
	CustomerName    string           `json:"customerName"`
	CustomerNumber  string           `json:"customerNumber,omitempty"`
	JobTitle        string           `json:"jobTitle"`
	Description     string           `json:"description"`
	FinishedSize    string           `json:"finishedSize"`
	PaperStock      string           `json:"paperStock,omitempty"`
	QuantityOptions []QuantityOption `json:"quantityOptions"`
	Status          QuoteStatus      `json:"status"`
	Notes           string           `json:"notes,omitempty"`
	CreatedAt       string           `json:"createdAt"`
	UpdatedAt       string           `json:"updatedAt"`
	JobID           string           `json:"jobId,omitempty"` // set once, on promotion
}

// GetID returns the record identity.
func (q Quote) GetID() string { return q.ID }

// QuantityOptionInput is a tier as supplied by a caller, before ids are assigned.
type QuantityOptionInput struct {
	Quantity  int
	UnitPrice float64
}

// CreateQuoteInput carries the fields accepted when creating a quote.
type CreateQuoteInput struct {
	CustomerID      string
	CustomerNumber  string
	JobTitle        string
	Description     string
	FinishedSize    string
	PaperStock      string
	QuantityOptions []QuantityOptionInput
	Notes           string
}

// UpdateQuoteInput is a partial update. CustomerID is deliberately absent:
// it cannot change after creation. A non-nil QuantityOptions replaces every tier.
type UpdateQuoteInput struct {
	CustomerNumber  *string
	JobTitle        *string
	Description     *string
	FinishedSize    *string
	PaperStock      *string
	Notes           *string
	QuantityOptions []QuantityOptionInput
}
