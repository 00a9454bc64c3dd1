package ingest

import (
	"context"
	"crypto/sha256"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/order-mapper/constants"
	"github.com/joseph-ayodele/order-mapper/internal/blob"
	"github.com/joseph-ayodele/order-mapper/internal/common"
	"github.com/joseph-ayodele/order-mapper/internal/repository"
)

// FSIngestor reads documents from the local filesystem and stores their
// bytes in the blob store before registering them on an order.
type FSIngestor struct {
	orders repository.OrderRepository
	items  repository.OrderItemRepository
	blobs  blob.Store
	logger *slog.Logger
}

func NewFSIngestor(orders repository.OrderRepository, items repository.OrderItemRepository, blobs blob.Store, logger *slog.Logger) *FSIngestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &FSIngestor{orders: orders, items: items, blobs: blobs, logger: logger}
}

// fileGroup is one item's worth of documents before persistence.
type fileGroup struct {
	itemType constants.ItemType
	paths    []string
}

func (i *FSIngestor) IngestDirectory(ctx context.Context, companyID uuid.UUID, docType, root string) (*Result, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		i.logger.Error("ingest.scan.failed", "root", abs, "error", err)
		return nil, err
	}

	var stats DirStats
	var groups []fileGroup
	for _, e := range entries {
		if isHidden(e.Name()) {
			continue
		}
		path := filepath.Join(abs, e.Name())
		if e.IsDir() {
			g, seen, skipped, err := i.collectGroup(path)
			if err != nil {
				return nil, err
			}
			stats.FilesSeen += seen
			stats.FilesSkipped += skipped
			if len(g.paths) == 0 {
				i.logger.Warn("ingest.dir.empty", "path", path)
				continue
			}
			groups = append(groups, g)
			continue
		}
		stats.FilesSeen++
		if !AllowedFile(e.Name()) {
			stats.FilesSkipped++
			i.logger.Debug("ingest.file.skipped", "path", path)
			continue
		}
		groups = append(groups, fileGroup{itemType: constants.SingleSource, paths: []string{path}})
	}

	if len(groups) == 0 {
		return nil, common.ConfigurationError("no ingestible documents under %s", abs)
	}
	sort.Slice(groups, func(a, b int) bool { return groups[a].paths[0] < groups[b].paths[0] })

	order, err := i.orders.Create(ctx, companyID, docType)
	if err != nil {
		return nil, err
	}
	res := &Result{Order: order, Stats: stats}
	for _, g := range groups {
		summary, err := i.createItem(ctx, order.ID, g)
		if err != nil {
			return nil, err
		}
		res.Items = append(res.Items, summary)
	}
	res.Stats.Items = len(res.Items)
	i.logger.Info("ingest.dir.ok",
		"order_id", order.ID,
		"root", abs,
		"items", res.Stats.Items,
		"files_seen", res.Stats.FilesSeen,
		"files_skipped", res.Stats.FilesSkipped)
	return res, nil
}

func (i *FSIngestor) IngestFile(ctx context.Context, companyID uuid.UUID, docType, path string) (*Result, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if !AllowedFile(abs) {
		return nil, common.ConfigurationError("unsupported document type: %s", filepath.Base(abs))
	}
	order, err := i.orders.Create(ctx, companyID, docType)
	if err != nil {
		return nil, err
	}
	summary, err := i.createItem(ctx, order.ID, fileGroup{
		itemType: constants.SingleSource,
		paths:    []string{abs},
	})
	if err != nil {
		return nil, err
	}
	return &Result{
		Order: order,
		Items: []ItemSummary{summary},
		Stats: DirStats{FilesSeen: 1, Items: 1},
	}, nil
}

// collectGroup gathers the allowed files directly inside dir as one
// multi-source item. Nested subdirectories are not descended into.
func (i *FSIngestor) collectGroup(dir string) (fileGroup, int, int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fileGroup{}, 0, 0, err
	}
	g := fileGroup{itemType: constants.MultiSource}
	seen, skipped := 0, 0
	for _, e := range entries {
		if e.IsDir() || isHidden(e.Name()) {
			continue
		}
		seen++
		if !AllowedFile(e.Name()) {
			skipped++
			continue
		}
		g.paths = append(g.paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(g.paths)
	if len(g.paths) == 1 {
		g.itemType = constants.SingleSource
	}
	return g, seen, skipped, nil
}

func (i *FSIngestor) createItem(ctx context.Context, orderID uuid.UUID, g fileGroup) (ItemSummary, error) {
	primary := pickPrimary(g.paths)
	files := make([]repository.NewItemFile, 0, len(g.paths))
	for idx, path := range g.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			i.logger.Error("ingest.read.failed", "path", path, "error", err)
			return ItemSummary{}, err
		}
		sum := sha256.Sum256(data)
		uri, err := i.blobs.Put(ctx, "ingest/"+filepath.Base(path), data)
		if err != nil {
			return ItemSummary{}, err
		}
		files = append(files, repository.NewItemFile{
			Filename:    filepath.Base(path),
			URI:         uri,
			ContentHash: sum[:],
			IsPrimary:   idx == primary,
		})
	}
	item, err := i.items.Create(ctx, orderID, g.itemType, files)
	if err != nil {
		return ItemSummary{}, err
	}
	return ItemSummary{ItemID: item.ID, ItemType: g.itemType, Files: len(files)}, nil
}
