package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/joseph-ayodele/order-mapper/gen/ent"
	"github.com/joseph-ayodele/order-mapper/internal/async"
	"github.com/joseph-ayodele/order-mapper/internal/blob"
	"github.com/joseph-ayodele/order-mapper/internal/common"
	"github.com/joseph-ayodele/order-mapper/internal/entity"
	"github.com/joseph-ayodele/order-mapper/internal/extract/docai"
	"github.com/joseph-ayodele/order-mapper/internal/ingest"
	"github.com/joseph-ayodele/order-mapper/internal/mapping"
	"github.com/joseph-ayodele/order-mapper/internal/orders"
	"github.com/joseph-ayodele/order-mapper/internal/refdata"
	repo "github.com/joseph-ayodele/order-mapper/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	// Parse CLI flags
	var (
		inmem      = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir        = flag.String("dir", "", "directory to ingest documents from (required)")
		out        = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
		companyStr = flag.String("company", "", "company UUID (optional, generated when empty)")
		docType    = flag.String("doctype", "ORDER", "document type recorded on the order")
		configPath = flag.String("config", "", "mapping configuration JSON file applied order-wide")
		tplPath    = flag.String("template", "", "column template JSON file for special exports, registered under --doctype")
		watch      = flag.Bool("watch", false, "keep watching the directory and ingest new documents")
	)
	flag.Parse()

	// Validate flags
	v := common.NewValidator().
		Field("--dir", *dir, common.Required).
		Field("--doctype", *docType, common.Required, common.MaxLength(64)).
		Field("--company", *companyStr, common.Optional(common.ValidUUID))
	if !v.Valid() {
		for _, ve := range v.Errors() {
			printError("Error: %s\n", ve.Error())
		}
		os.Exit(1)
	}
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "orders.xlsx")
	}

	companyID := uuid.New()
	if *companyStr != "" {
		companyID = uuid.MustParse(*companyStr)
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := common.LoadConfig()
	if cfg.Extractor.Endpoint == "" {
		printError("Error: EXTRACTOR_ENDPOINT is required\n")
		os.Exit(1)
	}

	// Initialize database
	var entc *entClient
	if *inmem {
		c, err := repo.OpenInMemory(ctx, logger)
		if err != nil {
			logger.Error("failed to initialize in-memory database", "error", err)
			os.Exit(1)
		}
		entc = &entClient{client: c}
	} else {
		if cfg.Database.DSN == "" {
			printError("Error: DB_URL is required unless --inmem is set\n")
			os.Exit(1)
		}
		c, pool, err := repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to initialize database", "error", err)
			os.Exit(1)
		}
		entc = &entClient{client: c, pool: pool}
	}
	defer entc.close(logger)

	// Wire repositories
	ordersRepo := repo.NewOrderRepository(entc.client, logger)
	itemsRepo := repo.NewOrderItemRepository(entc.client, logger)
	templatesRepo := repo.NewTemplateRepository(entc.client, logger)

	// Optional order-wide mapping configuration
	var orderCfg *entity.MappingConfiguration
	if *configPath != "" {
		raw, err := os.ReadFile(*configPath)
		if err != nil {
			logger.Error("failed to read mapping configuration", "path", *configPath, "error", err)
			os.Exit(1)
		}
		orderCfg, err = entity.ParseMappingConfiguration(raw)
		if err != nil {
			logger.Error("mapping configuration rejected", "path", *configPath, "error", err)
			os.Exit(1)
		}
	}

	// Optional column template for the special export
	if *tplPath != "" {
		tpl, err := readColumnTemplate(*tplPath)
		if err != nil {
			logger.Error("column template rejected", "path", *tplPath, "error", err)
			os.Exit(1)
		}
		tpl.TemplateName = *docType
		if tpl.Version == 0 {
			tpl.Version = 1
		}
		if err := templatesRepo.CreateColumnTemplate(ctx, tpl); err != nil {
			logger.Error("failed to store column template", "error", err)
			os.Exit(1)
		}
		logger.Info("column template stored", "name", tpl.TemplateName, "version", tpl.Version)
	}

	// Wire the processing engine
	blobs, err := blob.NewFSStore(cfg.Blob.Root, logger)
	if err != nil {
		logger.Error("failed to open blob store", "error", err)
		os.Exit(1)
	}
	extractor := docai.NewClient(docai.Config{
		Endpoint: cfg.Extractor.Endpoint,
		APIKey:   cfg.Extractor.APIKey,
		Timeout:  cfg.Extractor.Timeout,
	}, logger)
	resolver := mapping.NewResolver(templatesRepo, logger)

	engine, err := orders.NewEngine(orders.Deps{
		Orders:     ordersRepo,
		Items:      itemsRepo,
		Templates:  templatesRepo,
		Resolver:   resolver,
		Extractor:  extractor,
		Blobs:      blobs,
		References: &refdata.FSAccessor{Root: cfg.Mapping.ReferenceRoot},
	}, logger,
		orders.WithWorkers(cfg.Mapping.ExtractWorkers),
		orders.WithMergeSuffix(cfg.Mapping.MergeSuffix),
	)
	if err != nil {
		logger.Error("failed to build engine", "error", err)
		os.Exit(1)
	}

	queue := async.NewOrderQueue(engine, logger)
	ingestor := ingest.NewFSIngestor(ordersRepo, itemsRepo, blobs, logger)

	if *watch {
		runWatch(ctx, logger, queue, ingestor, ordersRepo, orderCfg, companyID, *docType, *dir)
		return
	}

	// Ingest directory
	logger.Info("starting ingestion", "dir", *dir, "company_id", companyID)
	res, err := ingestor.IngestDirectory(ctx, companyID, *docType, *dir)
	if err != nil {
		logger.Error("failed to ingest directory", "error", err)
		os.Exit(1)
	}
	if orderCfg != nil {
		if err := ordersRepo.SetMappingConfig(ctx, res.Order.ID, orderCfg); err != nil {
			logger.Error("failed to attach mapping configuration", "error", err)
			os.Exit(1)
		}
	}

	// Process and drain
	if err := queue.Enqueue(ctx, async.Job{OrderID: res.Order.ID, SubmittedAt: time.Now()}); err != nil {
		logger.Error("failed to enqueue order", "error", err)
		os.Exit(1)
	}
	queue.Shutdown(ctx)

	final, err := ordersRepo.Get(ctx, res.Order.ID)
	if err != nil {
		logger.Error("failed to read back order", "error", err)
		os.Exit(1)
	}

	// Write the consolidated workbook when mapping produced one
	if uri, ok := final.ResultURIs["consolidated"]; ok {
		data, err := blobs.Get(ctx, uri)
		if err != nil {
			logger.Error("failed to fetch consolidated artifact", "uri", uri, "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			logger.Error("failed to write output file", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("batch processing complete",
		"order_id", final.ID,
		"status", final.Status,
		"items", res.Stats.Items,
		"completed_items", final.CompletedItems,
		"failed_items", final.FailedItems,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Order: %s (%s)\n", final.ID, final.Status)
	fmt.Printf("- Items: %d (completed %d, failed %d)\n", res.Stats.Items, final.CompletedItems, final.FailedItems)
	if final.ErrorMessage != nil {
		fmt.Printf("- Error: %s\n", *final.ErrorMessage)
	}
	if _, ok := final.ResultURIs["consolidated"]; ok {
		fmt.Printf("- Output: %s\n", *out)
	}
}

// entClient pairs the ent client with the pgx pool backing it, so both
// close together. The pool is nil in -inmem mode.
type entClient struct {
	client *ent.Client
	pool   *pgxpool.Pool
}

func (c *entClient) close(logger *slog.Logger) {
	if c.pool != nil {
		repo.Close(c.client, c.pool, logger)
		return
	}
	if err := c.client.Close(); err != nil {
		logger.Error("failed to close ent client", "error", err)
	}
}

func readColumnTemplate(path string) (*entity.ColumnTemplate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return entity.ParseColumnTemplate(raw)
}

// runWatch turns the directory into a drop folder: every new document
// becomes its own single-source order.
func runWatch(ctx context.Context, logger *slog.Logger, queue *async.OrderQueue, ingestor *ingest.FSIngestor, ordersRepo repo.OrderRepository, orderCfg *entity.MappingConfiguration, companyID uuid.UUID, docType, dir string) {
	evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:    []string{dir},
		Debounce: 500 * time.Millisecond,
	}, logger)
	if err != nil {
		logger.Error("failed to start watcher", "error", err)
		os.Exit(1)
	}
	logger.Info("watching for documents", "dir", dir)

	for {
		select {
		case <-ctx.Done():
			drain, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			queue.Shutdown(drain)
			cancel()
			return
		case err, ok := <-errCh:
			if ok {
				logger.Error("watch error", "error", err)
			}
		case path, ok := <-evCh:
			if !ok {
				return
			}
			res, err := ingestor.IngestFile(ctx, companyID, docType, path)
			if err != nil {
				logger.Error("failed to ingest document", "path", path, "error", err)
				continue
			}
			if orderCfg != nil {
				if err := ordersRepo.SetMappingConfig(ctx, res.Order.ID, orderCfg); err != nil {
					logger.Error("failed to attach mapping configuration", "order_id", res.Order.ID, "error", err)
					continue
				}
			}
			_ = queue.Enqueue(ctx, async.Job{OrderID: res.Order.ID, SubmittedAt: time.Now()})
		}
	}
}
