package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/example/bindery/internal/core/numbering"
	"github.com/example/bindery/internal/errs"
	"github.com/example/bindery/internal/models"
	"github.com/example/bindery/internal/ports/secondary"
)

// ============================================================================
// Mock Repository
// ============================================================================

// mockRepository implements secondary.Repository for testing.
// Records are kept in insertion order, like the real stores.
type mockRepository[T secondary.Record] struct {
	mu         sync.Mutex
	records    []T
	findAllErr error
	createErr  error
	updateErr  error
	deleteErr  error
}

func newMockRepository[T secondary.Record]() *mockRepository[T] {
	return &mockRepository[T]{}
}

func (m *mockRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findAllErr != nil {
		return nil, m.findAllErr
	}
	return append([]T(nil), m.records...), nil
}

func (m *mockRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findAllErr != nil {
		return nil, m.findAllErr
	}
	for _, r := range m.records {
		if r.GetID() == id {
			found := r
			return &found, nil
		}
	}
	return nil, nil
}

func (m *mockRepository[T]) Create(ctx context.Context, record T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		var zero T
		return zero, m.createErr
	}
	m.records = append(m.records, record)
	return record, nil
}

func (m *mockRepository[T]) Update(ctx context.Context, id string, record T) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		var zero T
		return zero, m.updateErr
	}
	for i, r := range m.records {
		if r.GetID() == id {
			m.records[i] = record
			return record, nil
		}
	}
	var zero T
	return zero, errs.NotFound("entity with id %s not found", id)
}

func (m *mockRepository[T]) Delete(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deleteErr != nil {
		return false, m.deleteErr
	}
	for i, r := range m.records {
		if r.GetID() == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

var _ secondary.QuoteRepository = (*mockRepository[models.Quote])(nil)

// ============================================================================
// Clock and ID helpers
// ============================================================================

var testNow = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

// testClock returns a clock that advances one second per call, so
// timestamps taken in sequence are distinct and ordered.
func testClock() func() time.Time {
	var mu sync.Mutex
	t := testNow
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := t
		t = t.Add(time.Second)
		return now
	}
}

// testIDs returns a generator of readable sequential ids.
func testIDs(prefix string) func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("%s-%03d", prefix, n)
	}
}

// ============================================================================
// Test Environment
// ============================================================================

type testEnv struct {
	customerRepo *mockRepository[models.Customer]
	quoteRepo    *mockRepository[models.Quote]
	jobRepo      *mockRepository[models.Job]
	runListRepo  *mockRepository[models.RunListItem]

	customers *CustomerServiceImpl
	quotes    *QuoteServiceImpl
	jobs      *JobServiceImpl
	runList   *RunListServiceImpl
	reconcile *ReconcileServiceImpl
}

func newTestEnv(guarded bool) *testEnv {
	env := &testEnv{
		customerRepo: newMockRepository[models.Customer](),
		quoteRepo:    newMockRepository[models.Quote](),
		jobRepo:      newMockRepository[models.Job](),
		runListRepo:  newMockRepository[models.RunListItem](),
	}
	logger := zap.NewNop()
	clock := testClock()

	env.customers = NewCustomerService(env.customerRepo, logger)
	env.customers.now, env.customers.newID = clock, testIDs("cust")

	env.quotes = NewQuoteService(env.quoteRepo, env.customerRepo, numbering.NewAllocator(), guarded, logger)
	env.quotes.now, env.quotes.newID = clock, testIDs("quote")

	env.jobs = NewJobService(env.jobRepo, env.quoteRepo, guarded, logger)
	env.jobs.now, env.jobs.newID = clock, testIDs("job")

	env.runList = NewRunListService(env.runListRepo, env.jobRepo, guarded, logger)
	env.runList.now, env.runList.newID = clock, testIDs("item")

	env.reconcile = NewReconcileService(env.customerRepo, env.quoteRepo, env.jobRepo, logger)
	env.reconcile.now = clock

	return env
}

// mustCustomer creates a customer or panics; for test setup only.
func (e *testEnv) mustCustomer(name, email string) *models.Customer {
	c, err := e.customers.Create(context.Background(), models.CreateCustomerInput{Name: name, Email: email})
	if err != nil {
		panic(err)
	}
	return c
}

// mustQuote creates a draft quote with the given tiers.
func (e *testEnv) mustQuote(customerID string, options ...models.QuantityOptionInput) *models.Quote {
	if len(options) == 0 {
		options = []models.QuantityOptionInput{{Quantity: 500, UnitPrice: 0.45}, {Quantity: 1000, UnitPrice: 0.35}}
	}
	q, err := e.quotes.Create(context.Background(), models.CreateQuoteInput{
		CustomerID:      customerID,
		JobTitle:        "Annual Report",
		Description:     "64 page + cover, perfect bound",
		FinishedSize:    "8.5 x 11",
		QuantityOptions: options,
	})
	if err != nil {
		panic(err)
	}
	return q
}

// mustAcceptedQuote creates a quote and moves it to accepted.
func (e *testEnv) mustAcceptedQuote(customerID string) *models.Quote {
	q := e.mustQuote(customerID)
	q, err := e.quotes.UpdateStatus(context.Background(), q.ID, models.QuoteAccepted)
	if err != nil {
		panic(err)
	}
	return q
}

// mustJob creates a customer, an accepted quote and a job at 1000.
func (e *testEnv) mustJob() *models.Job {
	c := e.mustCustomer(fmt.Sprintf("Customer %d", len(e.customerRepo.records)+1), "")
	q := e.mustAcceptedQuote(c.ID)
	j, err := e.jobs.CreateFromQuote(context.Background(), q.ID, 1000)
	if err != nil {
		panic(err)
	}
	return j
}

// mustFixed renders a decimal literal with two places, for money comparisons.
func mustFixed(s string) string {
	return decimal.RequireFromString(s).StringFixed(2)
}
