// Package ingest turns a directory of source documents into an order.
// Top-level files become SINGLE_SOURCE items; each immediate
// subdirectory becomes one MULTI_SOURCE item whose files are extracted
// together.
package ingest

import (
	"context"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/order-mapper/constants"
	"github.com/joseph-ayodele/order-mapper/internal/entity"
)

// DirStats summarizes one directory scan.
type DirStats struct {
	FilesSeen    int
	FilesSkipped int
	Items        int
}

// ItemSummary reports one created item.
type ItemSummary struct {
	ItemID   uuid.UUID
	ItemType constants.ItemType
	Files    int
}

// Result is the outcome of ingesting a directory.
type Result struct {
	Order *entity.Order
	Items []ItemSummary
	Stats DirStats
}

type Ingestor interface {
	// IngestDirectory scans root one level deep and creates an order with
	// one item per top-level document and one item per subdirectory.
	IngestDirectory(ctx context.Context, companyID uuid.UUID, docType, root string) (*Result, error)
	// IngestFile creates a standalone single-source order for one document.
	IngestFile(ctx context.Context, companyID uuid.UUID, docType, path string) (*Result, error)
}
