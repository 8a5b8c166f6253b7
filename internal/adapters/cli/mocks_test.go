package cli

import (
	"context"
	"time"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/example/bindery/internal/core/customer"
	corequote "github.com/example/bindery/internal/core/quote"
	"github.com/example/bindery/internal/core/runlist"
	"github.com/example/bindery/internal/models"
	"github.com/example/bindery/internal/ports/primary"
)

func init() {
	color.NoColor = true
}

// ============================================================================
// Customer
// ============================================================================

// mockCustomerService implements primary.CustomerService for testing.
type mockCustomerService struct {
	customers  []models.Customer
	duplicates []customer.DuplicateGroup
	createErr  error
	deleted    bool
	merged     [][]string
}

func (m *mockCustomerService) Create(ctx context.Context, input models.CreateCustomerInput) (*models.Customer, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	c := models.Customer{ID: "CUST-001", Name: input.Name, Email: input.Email}
	m.customers = append(m.customers, c)
	return &c, nil
}

func (m *mockCustomerService) CheckForDuplicates(ctx context.Context, name, email, excludeID string) (*customer.DuplicateCheckResult, error) {
	r := customer.CheckDuplicates(m.customers, name, email, excludeID)
	return &r, nil
}

func (m *mockCustomerService) Update(ctx context.Context, id string, input models.UpdateCustomerInput) (*models.Customer, error) {
	return &models.Customer{ID: id}, nil
}

func (m *mockCustomerService) Delete(ctx context.Context, id string) (bool, error) {
	return m.deleted, nil
}

func (m *mockCustomerService) Get(ctx context.Context, id string) (*models.Customer, error) {
	for i := range m.customers {
		if m.customers[i].ID == id {
			return &m.customers[i], nil
		}
	}
	return nil, nil
}

func (m *mockCustomerService) List(ctx context.Context) ([]models.Customer, error) {
	return m.customers, nil
}

func (m *mockCustomerService) FindByName(ctx context.Context, substring string) ([]models.Customer, error) {
	var out []models.Customer
	for _, c := range m.customers {
		if customer.NameContains(c.Name, substring) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCustomerService) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return nil, nil
}

func (m *mockCustomerService) FindDuplicates(ctx context.Context) ([]customer.DuplicateGroup, error) {
	return m.duplicates, nil
}

func (m *mockCustomerService) MergeDuplicates(ctx context.Context, ids []string) (*primary.MergeResult, error) {
	m.merged = append(m.merged, ids)
	return &primary.MergeResult{Merged: models.Customer{ID: ids[0], Name: "Keeper"}, DeletedIDs: ids[1:]}, nil
}

// ============================================================================
// Quote
// ============================================================================

// mockQuoteService implements primary.QuoteService for testing.
type mockQuoteService struct {
	quotes         []models.Quote
	lastStatus     models.QuoteStatus
	updateStatusFn func(id string, status models.QuoteStatus) (*models.Quote, error)
}

func (m *mockQuoteService) Create(ctx context.Context, input models.CreateQuoteInput) (*models.Quote, error) {
	q := models.Quote{ID: "Q-1", QuoteNumber: "2603-0001", Version: 1, CustomerName: "Acme"}
	for _, o := range input.QuantityOptions {
		q.QuantityOptions = append(q.QuantityOptions, models.QuantityOption{Quantity: o.Quantity, UnitPrice: o.UnitPrice})
	}
	return &q, nil
}

func (m *mockQuoteService) Update(ctx context.Context, id string, input models.UpdateQuoteInput) (*models.Quote, error) {
	return &models.Quote{ID: id, QuoteNumber: "2603-0001", Version: 1}, nil
}

func (m *mockQuoteService) UpdateStatus(ctx context.Context, id string, status models.QuoteStatus) (*models.Quote, error) {
	m.lastStatus = status
	if m.updateStatusFn != nil {
		return m.updateStatusFn(id, status)
	}
	return &models.Quote{ID: id, QuoteNumber: "2603-0001", Version: 1, Status: status}, nil
}

func (m *mockQuoteService) CreateRevision(ctx context.Context, id string) (*models.Quote, error) {
	return &models.Quote{ID: "Q-2", QuoteNumber: "2603-0001", Version: 2}, nil
}

func (m *mockQuoteService) Delete(ctx context.Context, id string) (bool, error) { return false, nil }

func (m *mockQuoteService) Get(ctx context.Context, id string) (*models.Quote, error) {
	return &m.quotes[0], nil
}

func (m *mockQuoteService) List(ctx context.Context) ([]models.Quote, error) { return m.quotes, nil }

func (m *mockQuoteService) FindByCustomer(ctx context.Context, customerID string) ([]models.Quote, error) {
	return m.quotes, nil
}

func (m *mockQuoteService) FindByStatus(ctx context.Context, status models.QuoteStatus) ([]models.Quote, error) {
	return m.quotes, nil
}

func (m *mockQuoteService) FindByNumber(ctx context.Context, quoteNumber string) ([]models.Quote, error) {
	return m.quotes, nil
}

func (m *mockQuoteService) CalculateTotal(option models.QuantityOption) decimal.Decimal {
	return corequote.CalculateTotal(option)
}

func (m *mockQuoteService) FormatQuoteNumber(q models.Quote) string {
	return corequote.FormatQuoteNumber(q.QuoteNumber, q.Version)
}

// ============================================================================
// Job
// ============================================================================

// mockJobService implements primary.JobService for testing.
type mockJobService struct {
	jobs      []models.Job
	lastCall  string
	createErr error
}

func (m *mockJobService) CreateFromQuote(ctx context.Context, quoteID string, selectedQuantity int) (*models.Job, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &models.Job{ID: "J-1", JobNumber: "2603-0001", QuoteID: quoteID, Quantity: selectedQuantity, UnitPrice: 0.35}, nil
}

func (m *mockJobService) Update(ctx context.Context, id string, input models.UpdateJobInput) (*models.Job, error) {
	return &models.Job{ID: id, JobNumber: "2603-0001"}, nil
}

func (m *mockJobService) UpdateStatus(ctx context.Context, id string, status models.JobStatus) (*models.Job, error) {
	m.lastCall = "status:" + string(status)
	return &models.Job{ID: id, JobNumber: "2603-0001", Status: status}, nil
}

func (m *mockJobService) StartJob(ctx context.Context, id string) (*models.Job, error) {
	m.lastCall = "start"
	return &models.Job{ID: id, JobNumber: "2603-0001", Status: models.JobInProgress}, nil
}

func (m *mockJobService) CompleteJob(ctx context.Context, id string) (*models.Job, error) {
	m.lastCall = "complete"
	return &models.Job{ID: id, JobNumber: "2603-0001", Status: models.JobComplete}, nil
}

func (m *mockJobService) HoldJob(ctx context.Context, id string) (*models.Job, error) {
	m.lastCall = "hold"
	return &models.Job{ID: id, JobNumber: "2603-0001", Status: models.JobOnHold}, nil
}

func (m *mockJobService) CancelJob(ctx context.Context, id string) (*models.Job, error) {
	m.lastCall = "cancel"
	return &models.Job{ID: id, JobNumber: "2603-0001", Status: models.JobCancelled}, nil
}

func (m *mockJobService) Delete(ctx context.Context, id string) (bool, error) { return true, nil }

func (m *mockJobService) Get(ctx context.Context, id string) (*models.Job, error) {
	return &m.jobs[0], nil
}

func (m *mockJobService) List(ctx context.Context) ([]models.Job, error) {
	m.lastCall = "list"
	return m.jobs, nil
}

func (m *mockJobService) FindByCustomer(ctx context.Context, customerID string) ([]models.Job, error) {
	m.lastCall = "customer"
	return m.jobs, nil
}

func (m *mockJobService) FindByStatus(ctx context.Context, status models.JobStatus) ([]models.Job, error) {
	m.lastCall = "status"
	return m.jobs, nil
}

func (m *mockJobService) FindByQuoteID(ctx context.Context, quoteID string) (*models.Job, error) {
	return nil, nil
}

func (m *mockJobService) FindActiveJobs(ctx context.Context) ([]models.Job, error) {
	m.lastCall = "active"
	return m.jobs, nil
}

func (m *mockJobService) FindByDueDateRange(ctx context.Context, from, to time.Time) ([]models.Job, error) {
	m.lastCall = "due"
	return m.jobs, nil
}

func (m *mockJobService) CalculateTotal(j models.Job) decimal.Decimal {
	return decimal.NewFromInt(int64(j.Quantity)).Mul(decimal.NewFromFloat(j.UnitPrice))
}

// ============================================================================
// Run List
// ============================================================================

// mockRunListService implements primary.RunListService for testing.
type mockRunListService struct {
	items []models.RunListItem
}

func (m *mockRunListService) CreateFromJob(ctx context.Context, input models.CreateRunListItemInput) (*models.RunListItem, error) {
	return &models.RunListItem{ID: "R-1", JobID: input.JobID, JobNumber: "2603-0001"}, nil
}

func (m *mockRunListService) Update(ctx context.Context, id string, input models.UpdateRunListItemInput) (*models.RunListItem, error) {
	return &models.RunListItem{ID: id, JobNumber: "2603-0001"}, nil
}

func (m *mockRunListService) UpdateStatus(ctx context.Context, id string, status models.RunListStatus) (*models.RunListItem, error) {
	return &models.RunListItem{ID: id, JobNumber: "2603-0001", Status: status}, nil
}

func (m *mockRunListService) Delete(ctx context.Context, id string) (bool, error) { return false, nil }

func (m *mockRunListService) Get(ctx context.Context, id string) (*models.RunListItem, error) {
	return &m.items[0], nil
}

func (m *mockRunListService) List(ctx context.Context) ([]models.RunListItem, error) {
	return m.items, nil
}

func (m *mockRunListService) FindByStatus(ctx context.Context, status models.RunListStatus) ([]models.RunListItem, error) {
	var out []models.RunListItem
	for _, r := range m.items {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockRunListService) FindByJobID(ctx context.Context, jobID string) (*models.RunListItem, error) {
	return nil, nil
}

func (m *mockRunListService) FindActive(ctx context.Context) ([]models.RunListItem, error) {
	return m.items, nil
}

func (m *mockRunListService) SortByDefault(items []models.RunListItem) []models.RunListItem {
	return runlist.SortByDefault(items)
}

var (
	_ primary.CustomerService = (*mockCustomerService)(nil)
	_ primary.QuoteService    = (*mockQuoteService)(nil)
	_ primary.JobService      = (*mockJobService)(nil)
	_ primary.RunListService  = (*mockRunListService)(nil)
)
