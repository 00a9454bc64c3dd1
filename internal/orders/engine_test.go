package orders

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/order-mapper/constants"
	"github.com/joseph-ayodele/order-mapper/internal/blob"
	"github.com/joseph-ayodele/order-mapper/internal/common"
	"github.com/joseph-ayodele/order-mapper/internal/entity"
	"github.com/joseph-ayodele/order-mapper/internal/normalize"
	"github.com/joseph-ayodele/order-mapper/internal/refdata"
)

type engineFixture struct {
	engine    *Engine
	orders    *fakeOrderRepo
	items     *fakeItemRepo
	templates *fakeTemplateRepo
	extractor *fakeExtractor
	blobs     blob.Store
	refRoot   string
}

func newFixture(t *testing.T, resolver ConfigResolver) *engineFixture {
	t.Helper()
	store, err := blob.NewFSStore(t.TempDir(), nil)
	require.NoError(t, err)
	refRoot := t.TempDir()

	fx := &engineFixture{
		orders:    newFakeOrderRepo(),
		items:     newFakeItemRepo(),
		templates: &fakeTemplateRepo{},
		extractor: &fakeExtractor{outputs: map[string]string{}, failing: map[string]bool{}},
		blobs:     store,
		refRoot:   refRoot,
	}
	eng, err := NewEngine(Deps{
		Orders:     fx.orders,
		Items:      fx.items,
		Templates:  fx.templates,
		Resolver:   resolver,
		Extractor:  fx.extractor,
		Blobs:      store,
		References: &refdata.FSAccessor{Root: refRoot},
	}, nil, WithWorkers(2))
	require.NoError(t, err)
	fx.engine = eng
	return fx
}

// addItem stores the document bytes in the blob store and registers the item.
func (fx *engineFixture) addItem(t *testing.T, orderID uuid.UUID, filename, output string, fail bool) *entity.OrderItem {
	t.Helper()
	uri, err := fx.blobs.Put(context.Background(), filename, []byte("%PDF-"+filename))
	require.NoError(t, err)
	fx.extractor.outputs[filename] = output
	if fail {
		fx.extractor.failing[filename] = true
	}
	return fx.items.add(orderID, constants.SingleSource, []entity.OrderFile{
		{FileID: uuid.New(), Filename: filename, URI: uri, IsPrimary: true},
	})
}

func (fx *engineFixture) writeReference(t *testing.T, rel, content string) {
	t.Helper()
	path := filepath.Join(fx.refRoot, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func singleSourceConfig(refPath string) *entity.MappingConfiguration {
	return &entity.MappingConfiguration{
		ItemType:              string(constants.SingleSource),
		ExternalReferencePath: refPath,
		ExternalJoinKeys:      []string{"invoice_number"},
		JoinNormalize: normalize.Options{
			NormalizeWS: true,
			Lower:       true,
		},
	}
}

func TestProcessOrderLockedRunsNothing(t *testing.T) {
	fx := newFixture(t, &fakeResolver{})
	ctx := context.Background()

	o, err := fx.orders.Create(ctx, uuid.New(), "invoice")
	require.NoError(t, err)
	require.NoError(t, fx.orders.UpdateStatus(ctx, o.ID, constants.OrderStatusLocked))
	fx.addItem(t, o.ID, "doc.pdf", `{"invoice_number":"INV-001"}`, false)

	err = fx.engine.ProcessOrder(ctx, o.ID)
	require.Error(t, err)
	assert.True(t, common.IsOrderLocked(err))
	assert.Zero(t, fx.extractor.callCount(), "locked orders must not reach the extractor")
}

func TestProcessOrderWithoutConfigEndsOCRCompleted(t *testing.T) {
	fx := newFixture(t, &fakeResolver{})
	ctx := context.Background()

	o, err := fx.orders.Create(ctx, uuid.New(), "invoice")
	require.NoError(t, err)
	fx.addItem(t, o.ID, "a.pdf", `{"invoice_number":"INV-001"}`, false)
	fx.addItem(t, o.ID, "b.pdf", `{"invoice_number":"INV-002"}`, false)
	bad := fx.addItem(t, o.ID, "c.pdf", `{}`, true)

	require.NoError(t, fx.engine.ProcessOrder(ctx, o.ID))

	got, err := fx.orders.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.OrderStatusOCRCompleted), got.Status)
	assert.Equal(t, 2, got.CompletedItems)
	assert.Equal(t, 1, got.FailedItems)

	failed, err := fx.items.Get(ctx, bad.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ItemStatusFailed), failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Contains(t, *failed.ErrorMessage, "c.pdf")
}

func TestProcessOrderAllExtractionsFail(t *testing.T) {
	fx := newFixture(t, &fakeResolver{})
	ctx := context.Background()

	o, err := fx.orders.Create(ctx, uuid.New(), "invoice")
	require.NoError(t, err)
	fx.addItem(t, o.ID, "a.pdf", `{}`, true)
	fx.addItem(t, o.ID, "b.pdf", `{}`, true)

	require.NoError(t, fx.engine.ProcessOrder(ctx, o.ID))

	got, err := fx.orders.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.OrderStatusFailed), got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "all items failed extraction")
}

func TestProcessOrderMapsAndConsolidates(t *testing.T) {
	fx := newFixture(t, &fakeResolver{cfg: singleSourceConfig("refs/master.csv")})
	ctx := context.Background()
	fx.writeReference(t, "refs/master.csv",
		"invoice_number,carrier\nINV-001,ACME\nINV-002,GLOBEX\n")

	o, err := fx.orders.Create(ctx, uuid.New(), "invoice")
	require.NoError(t, err)
	a := fx.addItem(t, o.ID, "a.pdf", `{"invoice_number":"INV-001","amount":12.5}`, false)
	b := fx.addItem(t, o.ID, "b.pdf", `{"invoice_number":"INV-002","amount":7}`, false)

	require.NoError(t, fx.engine.ProcessOrder(ctx, o.ID))

	got, err := fx.orders.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.OrderStatusCompleted), got.Status)
	assert.Equal(t, 2, got.CompletedItems)
	require.Contains(t, got.ResultURIs, "consolidated")

	for _, id := range []uuid.UUID{a.ID, b.ID} {
		it, err := fx.items.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, string(constants.ItemStatusCompleted), it.Status)
		require.NotNil(t, it.MappedURI)
		require.NotNil(t, it.ConfigProvenance)
	}

	data, err := fx.blobs.Get(ctx, got.ResultURIs["consolidated"])
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows("Orders")
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per invoice")
	flat := ""
	for _, row := range rows {
		for _, cell := range row {
			flat += cell + "|"
		}
	}
	assert.Contains(t, flat, "ACME")
	assert.Contains(t, flat, "GLOBEX")
	assert.Contains(t, flat, "Matched")
}

func TestProcessOrderTemplatedDocTypeGetsSpecialArtifact(t *testing.T) {
	fx := newFixture(t, &fakeResolver{cfg: singleSourceConfig("refs/master.csv")})
	fx.templates.columnTemplates = map[string]*entity.ColumnTemplate{
		"invoice": {
			TemplateName: "invoice",
			Version:      1,
			ColumnOrder:  []string{"Invoice", "Carrier"},
			ColumnDefinitions: map[string]entity.ColumnDef{
				"Invoice": {Type: entity.ColumnSource, SourceColumn: "invoice_number"},
				"Carrier": {Type: entity.ColumnSource, SourceColumn: "carrier", DefaultValue: "UNKNOWN"},
			},
		},
	}
	ctx := context.Background()
	fx.writeReference(t, "refs/master.csv", "invoice_number,carrier\nINV-001,ACME\n")

	o, err := fx.orders.Create(ctx, uuid.New(), "invoice")
	require.NoError(t, err)
	fx.addItem(t, o.ID, "a.pdf", `{"invoice_number":"INV-001"}`, false)

	require.NoError(t, fx.engine.ProcessOrder(ctx, o.ID))

	got, err := fx.orders.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.OrderStatusCompleted), got.Status)
	assert.Contains(t, got.ResultURIs, "consolidated")
	assert.Contains(t, got.ResultURIs, "special")
}

func TestProcessOrderConsolidationFailureKeepsItemResults(t *testing.T) {
	fx := newFixture(t, &fakeResolver{cfg: singleSourceConfig("refs/master.csv")})
	fx.templates.columnTemplates = map[string]*entity.ColumnTemplate{
		"invoice": {
			TemplateName: "invoice",
			Version:      1,
			ColumnOrder:  []string{"Broken"},
			ColumnDefinitions: map[string]entity.ColumnDef{
				"Broken": {Type: entity.ColumnComputed, Expression: "row[((("},
			},
		},
	}
	ctx := context.Background()
	fx.writeReference(t, "refs/master.csv", "invoice_number,carrier\nINV-001,ACME\n")

	o, err := fx.orders.Create(ctx, uuid.New(), "invoice")
	require.NoError(t, err)
	item := fx.addItem(t, o.ID, "a.pdf", `{"invoice_number":"INV-001"}`, false)

	require.NoError(t, fx.engine.ProcessOrder(ctx, o.ID))

	got, err := fx.orders.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.OrderStatusFailed), got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "consolidation failed")
	assert.Equal(t, 1, got.CompletedItems, "mapped items still count as completed")
	assert.Equal(t, 0, got.FailedItems)
	assert.Contains(t, got.ResultURIs, "consolidated",
		"the plain consolidated artifact is recorded before the templated one")

	it, err := fx.items.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ItemStatusCompleted), it.Status)
	require.NotNil(t, it.MappedURI)
}

func TestProcessOrderMappingFailureKeepsExtraction(t *testing.T) {
	fx := newFixture(t, &fakeResolver{cfg: singleSourceConfig("refs/missing.csv")})
	ctx := context.Background()

	o, err := fx.orders.Create(ctx, uuid.New(), "invoice")
	require.NoError(t, err)
	item := fx.addItem(t, o.ID, "a.pdf", `{"invoice_number":"INV-001"}`, false)

	require.NoError(t, fx.engine.ProcessOrder(ctx, o.ID))

	got, err := fx.orders.Get(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.OrderStatusFailed), got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "mapping failed")

	it, err := fx.items.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ItemStatusFailed), it.Status)
	require.NotNil(t, it.ExtractionURI, "raw extraction output must survive mapping failure")

	raw, err := fx.blobs.Get(ctx, *it.ExtractionURI)
	require.NoError(t, err)
	docs, err := DecodeEnvelope(raw)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "INV-001", docs[0].Fields["invoice_number"])
}

func TestRemapItemRequiresExtractionOutput(t *testing.T) {
	fx := newFixture(t, &fakeResolver{cfg: singleSourceConfig("refs/master.csv")})
	ctx := context.Background()

	o, err := fx.orders.Create(ctx, uuid.New(), "invoice")
	require.NoError(t, err)
	item := fx.addItem(t, o.ID, "a.pdf", `{}`, false)

	err = fx.engine.RemapItem(ctx, item.ID)
	require.Error(t, err)
	assert.True(t, common.IsConfigurationError(err))
}

func TestRemapItemAfterReferenceFixed(t *testing.T) {
	fx := newFixture(t, &fakeResolver{cfg: singleSourceConfig("refs/late.csv")})
	ctx := context.Background()

	o, err := fx.orders.Create(ctx, uuid.New(), "invoice")
	require.NoError(t, err)
	item := fx.addItem(t, o.ID, "a.pdf", `{"invoice_number":"INV-001"}`, false)

	// first run fails on the missing reference dataset
	require.NoError(t, fx.engine.ProcessOrder(ctx, o.ID))
	got, err := fx.orders.Get(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, string(constants.OrderStatusFailed), got.Status)

	fx.writeReference(t, "refs/late.csv", "invoice_number,carrier\nINV-001,ACME\n")
	require.NoError(t, fx.engine.RemapItem(ctx, item.ID))

	it, err := fx.items.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, string(constants.ItemStatusCompleted), it.Status)
	require.NotNil(t, it.MappedURI)
	mapped, err := fx.blobs.Get(ctx, *it.MappedURI)
	require.NoError(t, err)
	assert.Contains(t, string(mapped), "ACME")
}
