package ingest

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/order-mapper/constants"
	"github.com/joseph-ayodele/order-mapper/internal/blob"
	"github.com/joseph-ayodele/order-mapper/internal/entity"
	"github.com/joseph-ayodele/order-mapper/internal/repository"
)

type capturedItem struct {
	itemType constants.ItemType
	files    []repository.NewItemFile
}

type captureRepos struct {
	orders []*entity.Order
	items  []capturedItem
}

func (c *captureRepos) Create(_ context.Context, companyID uuid.UUID, docType string) (*entity.Order, error) {
	o := &entity.Order{
		ID:        uuid.New(),
		CompanyID: companyID,
		DocType:   docType,
		Status:    string(constants.OrderStatusPending),
		CreatedAt: time.Now(),
	}
	c.orders = append(c.orders, o)
	return o, nil
}

func (c *captureRepos) Get(context.Context, uuid.UUID) (*entity.Order, error) { return nil, nil }
func (c *captureRepos) ClaimForProcessing(context.Context, uuid.UUID) error { return nil }
func (c *captureRepos) UpdateStatus(context.Context, uuid.UUID, constants.OrderStatus) error {
	return nil
}
func (c *captureRepos) SetMappingConfig(context.Context, uuid.UUID, *entity.MappingConfiguration) error {
	return nil
}
func (c *captureRepos) RecordResult(context.Context, uuid.UUID, string, string) error { return nil }
func (c *captureRepos) FinishProcessing(context.Context, uuid.UUID, constants.OrderStatus, int, int, *string) error {
	return nil
}

type captureItemRepo struct {
	sink *captureRepos
}

func (c *captureItemRepo) Create(_ context.Context, orderID uuid.UUID, itemType constants.ItemType, files []repository.NewItemFile) (*entity.OrderItem, error) {
	c.sink.items = append(c.sink.items, capturedItem{itemType: itemType, files: files})
	return &entity.OrderItem{ID: uuid.New(), OrderID: orderID, ItemType: string(itemType)}, nil
}

func (c *captureItemRepo) Get(context.Context, uuid.UUID) (*entity.OrderItem, error) {
	return nil, nil
}
func (c *captureItemRepo) ListByOrder(context.Context, uuid.UUID) ([]*entity.OrderItem, error) {
	return nil, nil
}
func (c *captureItemRepo) Start(context.Context, uuid.UUID) error { return nil }
func (c *captureItemRepo) SetResolvedConfig(context.Context, uuid.UUID, *entity.MappingConfiguration, string) error {
	return nil
}
func (c *captureItemRepo) MarkExtracted(context.Context, uuid.UUID, string) error { return nil }
func (c *captureItemRepo) FinishSuccess(context.Context, uuid.UUID, string) error { return nil }
func (c *captureItemRepo) FinishFailure(context.Context, uuid.UUID, string) error { return nil }

func newTestIngestor(t *testing.T) (*FSIngestor, *captureRepos) {
	t.Helper()
	store, err := blob.NewFSStore(t.TempDir(), slog.Default())
	require.NoError(t, err)
	sink := &captureRepos{}
	ing := NewFSIngestor(sink, &captureItemRepo{sink: sink}, store, slog.Default())
	return ing, sink
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestIngestDirectoryGroupsSubdirectories(t *testing.T) {
	ing, sink := newTestIngestor(t)
	root := t.TempDir()
	writeFile(t, root, "a-invoice.pdf", "%PDF-a")
	writeFile(t, root, "notes.docx", "not a document we extract")
	writeFile(t, filepath.Join(root, "batch-1"), "primary-order.pdf", "%PDF-p")
	writeFile(t, filepath.Join(root, "batch-1"), "attachment.png", "png-bytes")
	writeFile(t, filepath.Join(root, ".cache"), "ignored.pdf", "%PDF-x")

	res, err := ing.IngestDirectory(context.Background(), uuid.New(), "INVOICE", root)
	require.NoError(t, err)
	require.Len(t, sink.orders, 1)
	assert.Equal(t, "INVOICE", sink.orders[0].DocType)

	require.Len(t, sink.items, 2)
	assert.Equal(t, 2, res.Stats.Items)
	assert.Equal(t, 1, res.Stats.FilesSkipped)

	var single, multi *capturedItem
	for i := range sink.items {
		switch sink.items[i].itemType {
		case constants.SingleSource:
			single = &sink.items[i]
		case constants.MultiSource:
			multi = &sink.items[i]
		}
	}
	require.NotNil(t, single)
	require.NotNil(t, multi)
	assert.Equal(t, "a-invoice.pdf", single.files[0].Filename)
	assert.True(t, single.files[0].IsPrimary)
	require.Len(t, multi.files, 2)
	for _, f := range multi.files {
		assert.Equal(t, f.Filename == "primary-order.pdf", f.IsPrimary)
		assert.NotEmpty(t, f.URI)
		assert.Len(t, f.ContentHash, 32)
	}
}

func TestIngestDirectoryWithoutDocumentsFails(t *testing.T) {
	ing, _ := newTestIngestor(t)
	root := t.TempDir()
	writeFile(t, root, "readme.md", "nothing to extract")

	_, err := ing.IngestDirectory(context.Background(), uuid.New(), "INVOICE", root)
	require.Error(t, err)
}

func TestIngestSingleFileDirectoryIsSingleSource(t *testing.T) {
	ing, sink := newTestIngestor(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "solo"), "only.pdf", "%PDF-solo")

	_, err := ing.IngestDirectory(context.Background(), uuid.New(), "INVOICE", root)
	require.NoError(t, err)
	require.Len(t, sink.items, 1)
	assert.Equal(t, constants.SingleSource, sink.items[0].itemType)
}

func TestIngestFile(t *testing.T) {
	ing, sink := newTestIngestor(t)
	root := t.TempDir()
	writeFile(t, root, "one.pdf", "%PDF-1")

	res, err := ing.IngestFile(context.Background(), uuid.New(), "INVOICE", filepath.Join(root, "one.pdf"))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Stats.Items)
	require.Len(t, sink.items, 1)
	assert.True(t, sink.items[0].files[0].IsPrimary)

	_, err = ing.IngestFile(context.Background(), uuid.New(), "INVOICE", filepath.Join(root, "missing.docx"))
	require.Error(t, err)
}

func TestPickPrimary(t *testing.T) {
	assert.Equal(t, 1, pickPrimary([]string{"a/att.pdf", "a/PRIMARY-doc.pdf"}))
	assert.Equal(t, 0, pickPrimary([]string{"a/first.pdf", "a/second.pdf"}))
}
