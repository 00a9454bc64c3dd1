// Package orders drives the order lifecycle: extraction fan-out, mapping,
// consolidation, and the status bookkeeping around them.
package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/order-mapper/constants"
	"github.com/joseph-ayodele/order-mapper/internal/blob"
	"github.com/joseph-ayodele/order-mapper/internal/common"
	"github.com/joseph-ayodele/order-mapper/internal/consolidate"
	"github.com/joseph-ayodele/order-mapper/internal/entity"
	"github.com/joseph-ayodele/order-mapper/internal/export"
	"github.com/joseph-ayodele/order-mapper/internal/extract"
	"github.com/joseph-ayodele/order-mapper/internal/join"
	"github.com/joseph-ayodele/order-mapper/internal/records"
	"github.com/joseph-ayodele/order-mapper/internal/refdata"
	"github.com/joseph-ayodele/order-mapper/internal/repository"
	"github.com/joseph-ayodele/order-mapper/internal/table"
	"github.com/joseph-ayodele/order-mapper/internal/template"
)

// ConfigResolver picks the mapping configuration for an item.
// *mapping.Resolver is the production implementation.
type ConfigResolver interface {
	Resolve(ctx context.Context, companyID uuid.UUID, docType, itemType string, current *entity.MappingConfiguration) (*entity.MappingConfiguration, string, error)
}

// Deps bundles the collaborators the engine drives.
type Deps struct {
	Orders     repository.OrderRepository
	Items      repository.OrderItemRepository
	Templates  repository.TemplateRepository
	Resolver   ConfigResolver
	Extractor  extract.DocumentExtractor
	Blobs      blob.Store
	References refdata.FileAccessor
}

type Engine struct {
	deps       Deps
	normalizer *records.Normalizer
	joiner     *join.Engine
	evaluator  *template.Evaluator
	logger     *slog.Logger

	workers        int
	extractTimeout time.Duration
	mergeSuffix    string
}

type Option func(*Engine)

func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

func WithExtractTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.extractTimeout = d
		}
	}
}

func WithMergeSuffix(s string) Option {
	return func(e *Engine) {
		if s != "" {
			e.mergeSuffix = s
		}
	}
}

func NewEngine(deps Deps, logger *slog.Logger, opts ...Option) (*Engine, error) {
	if logger == nil {
		logger = slog.Default()
	}
	ev, err := template.NewEvaluator(logger)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		deps:           deps,
		normalizer:     records.NewNormalizer(logger),
		joiner:         join.NewEngine(logger),
		evaluator:      ev,
		logger:         logger,
		workers:        4,
		extractTimeout: 3 * time.Minute,
		mergeSuffix:    join.DefaultMergeSuffix,
	}
	for _, o := range opts {
		o(e)
	}
	return e, nil
}

// ProcessOrder runs the full lifecycle for one order. A LOCKED order rejects
// processing outright. The returned error covers engine-level failures only;
// an order that ends FAILED on item errors returns nil with the outcome
// recorded on the order row.
func (e *Engine) ProcessOrder(ctx context.Context, orderID uuid.UUID) error {
	if err := e.deps.Orders.ClaimForProcessing(ctx, orderID); err != nil {
		return err
	}
	o, err := e.deps.Orders.Get(ctx, orderID)
	if err != nil {
		return err
	}
	items, err := e.deps.Items.ListByOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		msg := "order has no items"
		return e.deps.Orders.FinishProcessing(ctx, orderID, constants.OrderStatusFailed, 0, 0, &msg)
	}

	e.logger.Info("order.process.start", "order_id", orderID, "items", len(items))

	pending := make([]*entity.OrderItem, 0, len(items))
	for _, it := range items {
		if it.Status == string(constants.ItemStatusPending) {
			pending = append(pending, it)
		}
	}
	e.runExtractionPool(ctx, pending)

	// re-read: the pool mutated item rows
	items, err = e.deps.Items.ListByOrder(ctx, orderID)
	if err != nil {
		return err
	}
	var succeeded []*entity.OrderItem
	var failures []string
	for _, it := range items {
		if it.ExtractionURI != nil {
			succeeded = append(succeeded, it)
			continue
		}
		if it.Status == string(constants.ItemStatusFailed) {
			failures = append(failures, itemFailure(it))
		}
	}
	if len(succeeded) == 0 {
		msg := "all items failed extraction: " + strings.Join(failures, "; ")
		e.logger.Error("order.process.failed", "order_id", orderID, "error", msg)
		return e.deps.Orders.FinishProcessing(ctx, orderID, constants.OrderStatusFailed, 0, len(failures), &msg)
	}

	type mappable struct {
		item *entity.OrderItem
		cfg  *entity.MappingConfiguration
	}
	var work []mappable
	for _, it := range succeeded {
		current := it.MappingConfig
		if current == nil {
			current = o.MappingConfig
		}
		cfg, prov, err := e.deps.Resolver.Resolve(ctx, o.CompanyID, o.DocType, it.ItemType, current)
		if err != nil {
			return err
		}
		if cfg == nil {
			continue
		}
		if err := e.deps.Items.SetResolvedConfig(ctx, it.ID, cfg, prov); err != nil {
			return err
		}
		work = append(work, mappable{item: it, cfg: cfg})
	}
	if len(work) == 0 {
		e.logger.Info("order.process.ocr_only", "order_id", orderID, "completed", len(succeeded), "failed", len(failures))
		return e.deps.Orders.FinishProcessing(ctx, orderID, constants.OrderStatusOCRCompleted, len(succeeded), len(failures), nil)
	}

	if err := e.deps.Orders.UpdateStatus(ctx, orderID, constants.OrderStatusMapping); err != nil {
		return err
	}

	// one loader per run: reference datasets are cached for the order and
	// re-read on the next one
	loader := refdata.NewLoader(e.deps.References, e.logger)
	tables := make([]*mappedTable, 0, len(work))
	var mapFailures []string
	for _, w := range work {
		t, err := e.mapItem(ctx, loader, w.item, w.cfg)
		if err != nil {
			_ = e.deps.Items.FinishFailure(ctx, w.item.ID, err.Error())
			mapFailures = append(mapFailures, fmt.Sprintf("%s: %v", w.item.ID, err))
			continue
		}
		tables = append(tables, t)
	}
	if len(mapFailures) > 0 {
		msg := "mapping failed: " + strings.Join(mapFailures, "; ")
		e.logger.Error("order.process.failed", "order_id", orderID, "error", msg)
		return e.deps.Orders.FinishProcessing(ctx, orderID, constants.OrderStatusFailed,
			len(succeeded)-len(mapFailures), len(failures)+len(mapFailures), &msg)
	}

	if err := e.consolidate(ctx, o, tables); err != nil {
		// items keep their mapped outputs; the failure is order-level
		msg := "consolidation failed: " + err.Error()
		e.logger.Error("order.process.failed", "order_id", orderID, "error", msg)
		return e.deps.Orders.FinishProcessing(ctx, orderID, constants.OrderStatusFailed, len(succeeded), len(failures), &msg)
	}

	e.logger.Info("order.process.ok", "order_id", orderID, "completed", len(succeeded), "failed", len(failures))
	return e.deps.Orders.FinishProcessing(ctx, orderID, constants.OrderStatusCompleted, len(succeeded), len(failures), nil)
}

// RemapItem re-runs the mapping leg for one item whose extraction output
// already exists. Extraction is never repeated.
func (e *Engine) RemapItem(ctx context.Context, itemID uuid.UUID) error {
	it, err := e.deps.Items.Get(ctx, itemID)
	if err != nil {
		return err
	}
	if it.ExtractionURI == nil {
		return common.ConfigurationError("item %s has no extraction output to remap", itemID)
	}
	o, err := e.deps.Orders.Get(ctx, it.OrderID)
	if err != nil {
		return err
	}
	if o.Status == string(constants.OrderStatusLocked) {
		return common.OrderLockedError(o.ID.String())
	}

	current := it.MappingConfig
	if current == nil {
		current = o.MappingConfig
	}
	cfg, prov, err := e.deps.Resolver.Resolve(ctx, o.CompanyID, o.DocType, it.ItemType, current)
	if err != nil {
		return err
	}
	if cfg == nil {
		return common.ConfigurationError("no mapping configuration applies to item %s", itemID)
	}
	if err := e.deps.Items.SetResolvedConfig(ctx, itemID, cfg, prov); err != nil {
		return err
	}

	loader := refdata.NewLoader(e.deps.References, e.logger)
	if _, err := e.mapItem(ctx, loader, it, cfg); err != nil {
		_ = e.deps.Items.FinishFailure(ctx, itemID, err.Error())
		return err
	}
	return nil
}

// runExtractionPool fans pending items out over a bounded worker pool and
// waits for all of them. Item outcomes land on the item rows; the order
// decision happens after the gather.
func (e *Engine) runExtractionPool(ctx context.Context, items []*entity.OrderItem) {
	if len(items) == 0 {
		return
	}
	workers := e.workers
	if workers > len(items) {
		workers = len(items)
	}
	jobs := make(chan *entity.OrderItem)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for it := range jobs {
				cctx, cancel := context.WithTimeout(ctx, e.extractTimeout)
				err := e.extractItem(cctx, it)
				cancel()
				if err != nil {
					e.logger.Error("extraction failed", "worker_id", workerID, "item_id", it.ID, "error", err)
				} else {
					e.logger.Info("extraction complete", "worker_id", workerID, "item_id", it.ID)
				}
			}
		}(i + 1)
	}
	for _, it := range items {
		jobs <- it
	}
	close(jobs)
	wg.Wait()
}

func (e *Engine) extractItem(ctx context.Context, it *entity.OrderItem) error {
	if err := e.deps.Items.Start(ctx, it.ID); err != nil {
		return err
	}
	env := Envelope{}
	for _, f := range it.Files {
		doc, err := e.deps.Blobs.Get(ctx, f.URI)
		if err != nil {
			ferr := common.ExtractionError(fmt.Sprintf("read document %s", f.Filename), err)
			_ = e.deps.Items.FinishFailure(ctx, it.ID, ferr.Error())
			return ferr
		}
		res, err := e.deps.Extractor.Extract(ctx, extract.Request{
			Document:     doc,
			Filename:     f.Filename,
			Instructions: extractionInstructions,
		})
		if err != nil {
			_ = e.deps.Items.FinishFailure(ctx, it.ID, err.Error())
			return err
		}
		env.Documents = append(env.Documents, EnvelopeDocument{
			FileID:    f.FileID,
			Filename:  f.Filename,
			IsPrimary: f.IsPrimary,
			Model:     res.Model,
			Output:    res.JSON,
		})
	}

	raw, err := json.Marshal(env)
	if err != nil {
		return err
	}
	uri, err := e.deps.Blobs.Put(ctx, fmt.Sprintf("items/%s/extraction.json", it.ID), raw)
	if err != nil {
		_ = e.deps.Items.FinishFailure(ctx, it.ID, err.Error())
		return err
	}
	return e.deps.Items.MarkExtracted(ctx, it.ID, uri)
}

type mappedTable struct {
	itemID uuid.UUID
	data   *table.Table
}

func (e *Engine) mapItem(ctx context.Context, loader *refdata.Loader, it *entity.OrderItem, cfg *entity.MappingConfiguration) (*mappedTable, error) {
	if err := e.deps.Items.Start(ctx, it.ID); err != nil {
		return nil, err
	}
	raw, err := e.deps.Blobs.Get(ctx, *it.ExtractionURI)
	if err != nil {
		return nil, common.ExtractionError("read extraction envelope", err)
	}
	docs, err := DecodeEnvelope(raw)
	if err != nil {
		return nil, err
	}

	var base *table.Table
	switch cfg.ItemType {
	case string(constants.MultiSource):
		base, err = e.normalizer.BuildMultiSource(docs, cfg)
	default:
		base, err = e.normalizer.BuildSingleSource(docs, cfg.LineItemField)
	}
	if err != nil {
		return nil, err
	}

	ref, err := loader.Load(ctx, cfg.ExternalReferencePath)
	if err != nil {
		return nil, err
	}
	// the loader caches per location; aliasing mutates, so work on a copy
	ref = ref.Clone()
	refdata.ApplyColumnAliases(ref, cfg.ColumnAliases)

	suffix := cfg.MergeSuffix
	if suffix == "" {
		suffix = e.mergeSuffix
	}
	joined, err := e.joiner.LeftJoin(base, ref, cfg.KeyPairs(), cfg.JoinNormalize, suffix)
	if err != nil {
		return nil, err
	}

	data, err := export.CSV(joined)
	if err != nil {
		return nil, err
	}
	uri, err := e.deps.Blobs.Put(ctx, fmt.Sprintf("items/%s/mapped.csv", it.ID), data)
	if err != nil {
		return nil, err
	}
	if err := e.deps.Items.FinishSuccess(ctx, it.ID, uri); err != nil {
		return nil, err
	}
	return &mappedTable{itemID: it.ID, data: joined}, nil
}

// consolidate unions the mapped tables and records the order artifacts:
// always "consolidated", plus "special" when the doc type has a column
// template.
func (e *Engine) consolidate(ctx context.Context, o *entity.Order, tables []*mappedTable) error {
	raw := make([]*table.Table, 0, len(tables))
	for _, t := range tables {
		raw = append(raw, t.data)
	}
	merged := consolidate.Union(raw, e.logger)

	data, err := export.XLSX(merged, e.logger)
	if err != nil {
		return err
	}
	uri, err := e.deps.Blobs.Put(ctx, fmt.Sprintf("orders/%s/consolidated.xlsx", o.ID), data)
	if err != nil {
		return err
	}
	if err := e.deps.Orders.RecordResult(ctx, o.ID, "consolidated", uri); err != nil {
		return err
	}

	tpl, err := e.deps.Templates.GetColumnTemplate(ctx, o.DocType)
	if err != nil {
		if common.HasCode(err, "NOT_FOUND") {
			return nil
		}
		return err
	}
	special, err := e.evaluator.Render(merged, tpl)
	if err != nil {
		return err
	}
	data, err = export.XLSX(special, e.logger)
	if err != nil {
		return err
	}
	uri, err = e.deps.Blobs.Put(ctx, fmt.Sprintf("orders/%s/special.xlsx", o.ID), data)
	if err != nil {
		return err
	}
	return e.deps.Orders.RecordResult(ctx, o.ID, "special", uri)
}

func itemFailure(it *entity.OrderItem) string {
	msg := "unknown error"
	if it.ErrorMessage != nil {
		msg = *it.ErrorMessage
	}
	return fmt.Sprintf("%s: %s", it.ID, msg)
}

const extractionInstructions = "Extract every field and line item from this document. " +
	"Return a single JSON object; nested line items go under \"line_items\"."
