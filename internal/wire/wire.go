// Package wire provides dependency injection for the bindery application.
// It creates singleton services with lazy initialization.
package wire

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/example/bindery/internal/adapters/backup"
	cliadapter "github.com/example/bindery/internal/adapters/cli"
	"github.com/example/bindery/internal/adapters/jsonstore"
	"github.com/example/bindery/internal/adapters/sqlite"
	"github.com/example/bindery/internal/app"
	"github.com/example/bindery/internal/config"
	"github.com/example/bindery/internal/core/numbering"
	"github.com/example/bindery/internal/db"
	"github.com/example/bindery/internal/logging"
	"github.com/example/bindery/internal/models"
	"github.com/example/bindery/internal/ports/primary"
	"github.com/example/bindery/internal/ports/secondary"
)

// Repositories groups the four record stores.
type Repositories struct {
	Customers secondary.CustomerRepository
	Quotes    secondary.QuoteRepository
	Jobs      secondary.JobRepository
	RunList   secondary.RunListRepository
}

// Container holds every service built from one configuration.
type Container struct {
	Config    *config.Config
	Workdir   string
	Logger    *zap.Logger
	Repos     Repositories
	Customer  primary.CustomerService
	Quote     primary.QuoteService
	Job       primary.JobService
	RunList   primary.RunListService
	Reconcile primary.ReconcileService
	Summary   primary.SummaryService
	Seed      primary.SeedService

	database *sql.DB
}

// Build opens the configured store under workdir and assembles the services.
func Build(cfg *config.Config, workdir string, logger *zap.Logger) (*Container, error) {
	dataDir := config.ResolvePath(workdir, cfg.DataDir)

	c := &Container{Config: cfg, Workdir: workdir, Logger: logger}

	switch cfg.StoreDriver {
	case config.StoreSQLite:
		database, err := db.Open(dataDir)
		if err != nil {
			return nil, err
		}
		c.database = database
		c.Repos = Repositories{
			Customers: sqlite.NewStore[models.Customer](database, secondary.CustomersCollection),
			Quotes:    sqlite.NewStore[models.Quote](database, secondary.QuotesCollection),
			Jobs:      sqlite.NewStore[models.Job](database, secondary.JobsCollection),
			RunList:   sqlite.NewStore[models.RunListItem](database, secondary.RunListCollection),
		}
	case config.StoreJSON:
		c.Repos = Repositories{
			Customers: jsonstore.Open[models.Customer](dataDir, secondary.CustomersCollection),
			Quotes:    jsonstore.Open[models.Quote](dataDir, secondary.QuotesCollection),
			Jobs:      jsonstore.Open[models.Job](dataDir, secondary.JobsCollection),
			RunList:   jsonstore.Open[models.RunListItem](dataDir, secondary.RunListCollection),
		}
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	r := c.Repos
	c.Customer = app.NewCustomerService(r.Customers, logger)
	c.Quote = app.NewQuoteService(r.Quotes, r.Customers, numbering.NewAllocator(), cfg.GuardedStatus, logger)
	c.Job = app.NewJobService(r.Jobs, r.Quotes, cfg.GuardedStatus, logger)
	c.RunList = app.NewRunListService(r.RunList, r.Jobs, cfg.GuardedStatus, logger)
	c.Reconcile = app.NewReconcileService(r.Customers, r.Quotes, r.Jobs, logger)
	c.Summary = app.NewSummaryService(r.Customers, r.Quotes, r.Jobs, r.RunList)
	c.Seed = app.NewSeedService(c.Customer, c.Quote, c.Job, c.RunList, logger)

	return c, nil
}

// BackupService builds the snapshot service for the configured sink.
func (c *Container) BackupService(ctx context.Context) (primary.BackupService, error) {
	var sink secondary.BackupSink
	switch c.Config.Backup.Driver {
	case config.BackupS3:
		s3Sink, err := backup.NewS3Sink(ctx, backup.S3Config{
			Bucket:    c.Config.Backup.Bucket,
			Region:    c.Config.Backup.Region,
			Endpoint:  c.Config.Backup.Endpoint,
			Prefix:    c.Config.Backup.Prefix,
			PathStyle: c.Config.Backup.PathStyle,
		})
		if err != nil {
			return nil, err
		}
		sink = s3Sink
	default:
		sink = backup.NewDirSink(config.ResolvePath(c.Workdir, c.Config.Backup.Dir))
	}

	r := c.Repos
	return app.NewBackupService(r.Customers, r.Quotes, r.Jobs, r.RunList, sink, c.Logger), nil
}

// Close releases the database (if any) and flushes the logger.
func (c *Container) Close() error {
	c.Logger.Sync()
	if c.database != nil {
		return c.database.Close()
	}
	return nil
}

var (
	container *Container
	initErr   error
	once      sync.Once

	// DataDirOverride, when set before first use, replaces the configured data directory.
	DataDirOverride string
)

// Init loads configuration from the working directory and builds the services.
// Later calls return the first result.
func Init() error {
	once.Do(initServices)
	return initErr
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	workdir, err := os.Getwd()
	if err != nil {
		initErr = fmt.Errorf("failed to get working directory: %w", err)
		return
	}

	cfg, err := config.Load(workdir)
	if err != nil {
		initErr = err
		return
	}
	if DataDirOverride != "" {
		cfg.DataDir = DataDirOverride
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		initErr = err
		return
	}

	container, initErr = Build(cfg, workdir, logger)
}

// Services returns the singleton container.
func Services() *Container {
	if err := Init(); err != nil {
		log.Fatalf("failed to initialize services: %v", err)
	}
	return container
}

// Shutdown closes the singleton container if it was built.
func Shutdown() {
	if container != nil {
		container.Close()
	}
}

// CustomerAdapter returns a new CustomerAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func CustomerAdapter() *cliadapter.CustomerAdapter {
	return CustomerAdapterWithOutput(os.Stdout)
}

// CustomerAdapterWithOutput returns a new CustomerAdapter writing to the given output.
func CustomerAdapterWithOutput(out io.Writer) *cliadapter.CustomerAdapter {
	return cliadapter.NewCustomerAdapter(Services().Customer, out)
}

// QuoteAdapter returns a new QuoteAdapter writing to stdout.
func QuoteAdapter() *cliadapter.QuoteAdapter {
	return QuoteAdapterWithOutput(os.Stdout)
}

// QuoteAdapterWithOutput returns a new QuoteAdapter writing to the given output.
func QuoteAdapterWithOutput(out io.Writer) *cliadapter.QuoteAdapter {
	return cliadapter.NewQuoteAdapter(Services().Quote, out)
}

// JobAdapter returns a new JobAdapter writing to stdout.
func JobAdapter() *cliadapter.JobAdapter {
	return JobAdapterWithOutput(os.Stdout)
}

// JobAdapterWithOutput returns a new JobAdapter writing to the given output.
func JobAdapterWithOutput(out io.Writer) *cliadapter.JobAdapter {
	return cliadapter.NewJobAdapter(Services().Job, out)
}

// RunListAdapter returns a new RunListAdapter writing to stdout.
func RunListAdapter() *cliadapter.RunListAdapter {
	return RunListAdapterWithOutput(os.Stdout)
}

// RunListAdapterWithOutput returns a new RunListAdapter writing to the given output.
func RunListAdapterWithOutput(out io.Writer) *cliadapter.RunListAdapter {
	return cliadapter.NewRunListAdapter(Services().RunList, out)
}

// ShopAdapter returns a new ShopAdapter writing to stdout.
func ShopAdapter() *cliadapter.ShopAdapter {
	return cliadapter.NewShopAdapter(os.Stdout)
}
