package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/bindery/internal/models"
	"github.com/example/bindery/internal/ports/primary"
)

// SeedServiceImpl implements the SeedService interface.
// Demo records go through the regular services so numbering and
// promotion rules apply to them exactly as to real data.
type SeedServiceImpl struct {
	customers primary.CustomerService
	quotes    primary.QuoteService
	jobs      primary.JobService
	runList   primary.RunListService
	logger    *zap.Logger
}

// NewSeedService creates a new SeedService with injected dependencies.
func NewSeedService(
	customers primary.CustomerService,
	quotes primary.QuoteService,
	jobs primary.JobService,
	runList primary.RunListService,
	logger *zap.Logger,
) *SeedServiceImpl {
	return &SeedServiceImpl{
		customers: customers,
		quotes:    quotes,
		jobs:      jobs,
		runList:   runList,
		logger:    logger,
	}
}

type seedCustomer struct {
	name, contact, email, phone string
	titles                      []string
}

var seedCustomers = []seedCustomer{
	{"Acme Publishing", "Jane Smith", "jane@acmepub.com", "555-0101", []string{"Annual Report 2026", "Quarterly Magazine", "Product Catalog"}},
	{"Sterling Press", "Mike Sterling", "mike@sterlingpress.com", "555-0102", []string{"Presentation Folder", "Product Box Set", "Gift Package"}},
	{"Artisan Bindery", "Sarah Chen", "sarah@artisanbindery.com", "555-0103", []string{"Wedding Album", "Portfolio Collection", "Custom Journal"}},
	{"Corporate Solutions Inc", "Bob Johnson", "bob@corpsolutions.com", "555-0104", []string{"Employee Handbook", "Training Manual", "Board Report"}},
	{"Educational Press", "Linda Williams", "linda@edpress.com", "555-0105", []string{"Course Textbook", "Student Workbook", "Lab Manual"}},
	{"Digital Services Ltd", "Tom Brown", "tom@digitalservices.com", "555-0106", []string{"Digital Print Catalog", "Variable Data Book", "On-Demand Publication"}},
	{"Luxury Brands Co", "Emma Davis", "emma@luxurybrands.com", "555-0107", []string{"Luxury Catalog", "VIP Invitation Set", "Brand Book"}},
	{"Government Services", "James Wilson", "james@govservices.gov", "555-0108", []string{"Regulatory Manual", "Public Report", "Policy Handbook"}},
	{"Medical Publications", "Dr. Patricia Lee", "patricia@medpub.com", "555-0109", []string{"Medical Journal", "Patient Guide", "Clinical Manual"}},
	{"Tech Documentation", "Alex Martinez", "alex@techdocs.io", "555-0110", []string{"API Documentation", "User Manual", "Developer Guide"}},
}

type seedService struct {
	name, description string
	pricePerThousand  float64
}

var seedServices = []seedService{
	{"Perfect Binding", "Professional adhesive binding with square spine", 275},
	{"Case Binding", "Hardcover binding with cloth or paper case", 600},
	{"Saddle Stitch", "Wire staple binding through the fold", 100},
	{"Spiral Binding", "Continuous wire coil binding", 200},
	{"Foil Stamping", "Hot foil application for premium finish", 400},
}

var (
	seedStocks     = []string{"80# Gloss Text", "100# Matte Text", "60# Uncoated Text", "120# Gloss Cover"}
	seedSizes      = []string{"8.5 x 11", "6 x 9", "5.5 x 8.5", "11 x 17"}
	seedCategories = []string{"Bindery", "Mailing", "Finishing"}
	seedQuantities = []int{250, 500, 1000, 2500}
)

// Seed creates demo customers, three quotes each, promotes the accepted ones
// and puts every other job on the run list.
func (s *SeedServiceImpl) Seed(ctx context.Context, force bool) (*primary.SeedResult, error) {
	existing, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 && !force {
		return &primary.SeedResult{Skipped: true}, nil
	}

	result := &primary.SeedResult{}
	statuses := []models.QuoteStatus{models.QuoteDraft, models.QuoteSent, models.QuoteAccepted}

	for ci, sc := range seedCustomers {
		cust, err := s.customers.Create(ctx, models.CreateCustomerInput{
			Name:        sc.name,
			ContactName: sc.contact,
			Email:       sc.email,
			Phone:       sc.phone,
		})
		if err != nil {
			return result, fmt.Errorf("failed to seed customer %s: %w", sc.name, err)
		}
		result.Customers++

		for qi, title := range sc.titles {
			svc := seedServices[(ci+qi)%len(seedServices)]
			q, err := s.quotes.Create(ctx, models.CreateQuoteInput{
				CustomerID:      cust.ID,
				JobTitle:        fmt.Sprintf("%s - %s", title, svc.name),
				Description:     svc.description,
				FinishedSize:    seedSizes[(ci+qi)%len(seedSizes)],
				PaperStock:      seedStocks[qi%len(seedStocks)],
				QuantityOptions: seedOptions(svc.pricePerThousand, 2+(ci+qi)%3),
			})
			if err != nil {
				return result, fmt.Errorf("failed to seed quote for %s: %w", sc.name, err)
			}
			result.Quotes++

			// Walk the quote forward one status at a time up to its target.
			target := statuses[(ci+qi)%len(statuses)]
			for _, st := range statuses[1:] {
				if q.Status == target {
					break
				}
				if q, err = s.quotes.UpdateStatus(ctx, q.ID, st); err != nil {
					return result, err
				}
			}
			if q.Status != models.QuoteAccepted {
				continue
			}

			j, err := s.jobs.CreateFromQuote(ctx, q.ID, q.QuantityOptions[0].Quantity)
			if err != nil {
				return result, fmt.Errorf("failed to seed job for quote %s: %w", q.QuoteNumber, err)
			}
			result.Jobs++

			if result.Jobs%2 == 0 {
				continue
			}
			if _, err := s.runList.CreateFromJob(ctx, models.CreateRunListItemInput{
				JobID:      j.ID,
				Category:   seedCategories[result.Jobs%len(seedCategories)],
				Operations: []string{"FOLD", "STITCH", "TRIM"}[:1+result.Jobs%3],
			}); err != nil {
				return result, fmt.Errorf("failed to seed run list item for job %s: %w", j.JobNumber, err)
			}
			result.RunList++
		}
	}

	logFor(ctx, s.logger).Info("seed data created",
		zap.Int("customers", result.Customers),
		zap.Int("quotes", result.Quotes),
		zap.Int("jobs", result.Jobs),
		zap.Int("run_list", result.RunList))
	return result, nil
}

// seedOptions builds n tiers with a volume discount on larger runs.
func seedOptions(pricePerThousand float64, n int) []models.QuantityOptionInput {
	options := make([]models.QuantityOptionInput, 0, n)
	for _, qty := range seedQuantities[:n] {
		discount := 1.0
		switch {
		case qty >= 2500:
			discount = 0.85
		case qty >= 1000:
			discount = 0.92
		}
		unit := pricePerThousand / 1000 * discount
		options = append(options, models.QuantityOptionInput{
			Quantity:  qty,
			UnitPrice: float64(int(unit*1000+0.5)) / 1000,
		})
	}
	return options
}

// Ensure SeedServiceImpl implements the interface.
var _ primary.SeedService = (*SeedServiceImpl)(nil)
