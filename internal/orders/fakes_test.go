package orders

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/order-mapper/constants"
	"github.com/joseph-ayodele/order-mapper/internal/common"
	"github.com/joseph-ayodele/order-mapper/internal/entity"
	"github.com/joseph-ayodele/order-mapper/internal/extract"
	"github.com/joseph-ayodele/order-mapper/internal/repository"
)

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uuid.UUID]*entity.Order{}}
}

func (f *fakeOrderRepo) Create(_ context.Context, companyID uuid.UUID, docType string) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o := &entity.Order{
		ID:        uuid.New(),
		CompanyID: companyID,
		DocType:   docType,
		Status:    string(constants.OrderStatusPending),
		CreatedAt: time.Now(),
	}
	f.orders[o.ID] = o
	return cloneOrder(o), nil
}

func (f *fakeOrderRepo) Get(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return nil, common.NewAppError("NOT_FOUND", "order not found", common.ErrNotFound)
	}
	return cloneOrder(o), nil
}

func (f *fakeOrderRepo) ClaimForProcessing(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return common.NewAppError("NOT_FOUND", "order not found", common.ErrNotFound)
	}
	switch o.Status {
	case string(constants.OrderStatusLocked):
		return common.OrderLockedError(id.String())
	case string(constants.OrderStatusProcessing), string(constants.OrderStatusMapping):
		return common.NewAppError("ORDER_BUSY", "order is already being processed", nil)
	}
	o.Status = string(constants.OrderStatusProcessing)
	return nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status constants.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders[id].Status = string(status)
	return nil
}

func (f *fakeOrderRepo) SetMappingConfig(_ context.Context, id uuid.UUID, cfg *entity.MappingConfiguration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders[id].MappingConfig = cfg
	return nil
}

func (f *fakeOrderRepo) RecordResult(_ context.Context, id uuid.UUID, name, uri string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o := f.orders[id]
	if o.ResultURIs == nil {
		o.ResultURIs = map[string]string{}
	}
	o.ResultURIs[name] = uri
	return nil
}

func (f *fakeOrderRepo) FinishProcessing(_ context.Context, id uuid.UUID, status constants.OrderStatus, completed, failed int, errorMessage *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	o := f.orders[id]
	o.Status = string(status)
	o.CompletedItems = completed
	o.FailedItems = failed
	o.ErrorMessage = errorMessage
	return nil
}

func cloneOrder(o *entity.Order) *entity.Order {
	c := *o
	if o.ResultURIs != nil {
		c.ResultURIs = map[string]string{}
		for k, v := range o.ResultURIs {
			c.ResultURIs[k] = v
		}
	}
	return &c
}

type fakeItemRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.OrderItem
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[uuid.UUID]*entity.OrderItem{}}
}

func (f *fakeItemRepo) add(orderID uuid.UUID, itemType constants.ItemType, files []entity.OrderFile) *entity.OrderItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	it := &entity.OrderItem{
		ID:       uuid.New(),
		OrderID:  orderID,
		ItemType: string(itemType),
		Status:   string(constants.ItemStatusPending),
		Files:    files,
	}
	f.items[it.ID] = it
	return it
}

func (f *fakeItemRepo) Create(_ context.Context, orderID uuid.UUID, itemType constants.ItemType, files []repository.NewItemFile) (*entity.OrderItem, error) {
	refs := make([]entity.OrderFile, 0, len(files))
	for _, fl := range files {
		refs = append(refs, entity.OrderFile{
			FileID:    uuid.New(),
			Filename:  fl.Filename,
			URI:       fl.URI,
			IsPrimary: fl.IsPrimary,
		})
	}
	return f.add(orderID, itemType, refs), nil
}

func (f *fakeItemRepo) Get(_ context.Context, id uuid.UUID) (*entity.OrderItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.items[id]
	if !ok {
		return nil, common.NewAppError("NOT_FOUND", "order item not found", common.ErrNotFound)
	}
	return cloneItem(it), nil
}

func (f *fakeItemRepo) ListByOrder(_ context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.OrderItem
	for _, it := range f.items {
		if it.OrderID == orderID {
			out = append(out, cloneItem(it))
		}
	}
	return out, nil
}

func (f *fakeItemRepo) Start(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	it := f.items[id]
	it.Status = string(constants.ItemStatusProcessing)
	it.StartedAt = &now
	it.ErrorMessage = nil
	return nil
}

func (f *fakeItemRepo) SetResolvedConfig(_ context.Context, id uuid.UUID, cfg *entity.MappingConfiguration, provenance string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	it := f.items[id]
	it.MappingConfig = cfg
	it.ConfigProvenance = &provenance
	return nil
}

func (f *fakeItemRepo) MarkExtracted(_ context.Context, id uuid.UUID, uri string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	it := f.items[id]
	it.Status = string(constants.ItemStatusCompleted)
	it.ExtractionURI = &uri
	it.FinishedAt = &now
	it.ErrorMessage = nil
	return nil
}

func (f *fakeItemRepo) FinishSuccess(_ context.Context, id uuid.UUID, mappedURI string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	it := f.items[id]
	it.Status = string(constants.ItemStatusCompleted)
	it.MappedURI = &mappedURI
	it.FinishedAt = &now
	it.ErrorMessage = nil
	return nil
}

func (f *fakeItemRepo) FinishFailure(_ context.Context, id uuid.UUID, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	it := f.items[id]
	it.Status = string(constants.ItemStatusFailed)
	it.ErrorMessage = &message
	it.FinishedAt = &now
	return nil
}

func cloneItem(it *entity.OrderItem) *entity.OrderItem {
	c := *it
	c.Files = append([]entity.OrderFile(nil), it.Files...)
	return &c
}

type fakeTemplateRepo struct {
	columnTemplates map[string]*entity.ColumnTemplate
}

func (f *fakeTemplateRepo) ListCandidates(context.Context, uuid.UUID, string, string) ([]*entity.MappingTemplate, error) {
	return nil, nil
}

func (f *fakeTemplateRepo) CreateMappingTemplate(_ context.Context, t *entity.MappingTemplate) (*entity.MappingTemplate, error) {
	return t, nil
}

func (f *fakeTemplateRepo) GetColumnTemplate(_ context.Context, name string) (*entity.ColumnTemplate, error) {
	if t, ok := f.columnTemplates[name]; ok {
		return t, nil
	}
	return nil, common.NewAppError("NOT_FOUND", "column template not found", common.ErrNotFound)
}

func (f *fakeTemplateRepo) CreateColumnTemplate(context.Context, *entity.ColumnTemplate) error {
	return nil
}

// fakeResolver returns the same configuration for every item.
type fakeResolver struct {
	cfg *entity.MappingConfiguration
	err error
}

func (f *fakeResolver) Resolve(_ context.Context, _ uuid.UUID, _, _ string, current *entity.MappingConfiguration) (*entity.MappingConfiguration, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	if current != nil {
		return current, "item", nil
	}
	if f.cfg == nil {
		return nil, "", nil
	}
	c := *f.cfg
	return &c, "template:test/fixed", nil
}

// fakeExtractor returns canned JSON keyed by filename and fails filenames
// listed in failing.
type fakeExtractor struct {
	mu      sync.Mutex
	outputs map[string]string
	failing map[string]bool
	calls   int
}

func (f *fakeExtractor) Extract(_ context.Context, req extract.Request) (extract.Result, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.failing[req.Filename] {
		return extract.Result{}, common.ExtractionError("service rejected "+req.Filename, nil)
	}
	out, ok := f.outputs[req.Filename]
	if !ok {
		out = `{}`
	}
	return extract.Result{JSON: json.RawMessage(out), Model: "docai-test"}, nil
}

func (f *fakeExtractor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}
