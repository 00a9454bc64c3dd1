package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/order-mapper/constants"
	"github.com/joseph-ayodele/order-mapper/gen/ent"
	"github.com/joseph-ayodele/order-mapper/gen/ent/orderfile"
	"github.com/joseph-ayodele/order-mapper/gen/ent/orderitem"
	"github.com/joseph-ayodele/order-mapper/internal/common"
	"github.com/joseph-ayodele/order-mapper/internal/entity"
)

// NewItemFile describes one document attached to an item at creation time.
type NewItemFile struct {
	Filename    string
	URI         string
	ContentHash []byte
	IsPrimary   bool
}

type OrderItemRepository interface {
	Create(ctx context.Context, orderID uuid.UUID, itemType constants.ItemType, files []NewItemFile) (*entity.OrderItem, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.OrderItem, error)
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)
	Start(ctx context.Context, id uuid.UUID) error
	// SetResolvedConfig snapshots the configuration the resolver chose so
	// remaps and audits see exactly what this run used.
	SetResolvedConfig(ctx context.Context, id uuid.UUID, cfg *entity.MappingConfiguration, provenance string) error
	// MarkExtracted records the raw extraction artifact and completes the
	// extraction leg in one update.
	MarkExtracted(ctx context.Context, id uuid.UUID, uri string) error
	FinishSuccess(ctx context.Context, id uuid.UUID, mappedURI string) error
	FinishFailure(ctx context.Context, id uuid.UUID, message string) error
}

type orderItemRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewOrderItemRepository(client *ent.Client, logger *slog.Logger) OrderItemRepository {
	return &orderItemRepository{client: client, logger: logger}
}

func (r *orderItemRepository) Create(ctx context.Context, orderID uuid.UUID, itemType constants.ItemType, files []NewItemFile) (*entity.OrderItem, error) {
	if len(files) == 0 {
		return nil, common.ConfigurationError("item needs at least one file")
	}
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}
	item, err := tx.OrderItem.Create().
		SetOrderID(orderID).
		SetItemType(string(itemType)).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	for _, f := range files {
		ext := constants.NormalizeExt(filepath.Ext(f.Filename))
		_, err = tx.OrderFile.Create().
			SetItemID(item.ID).
			SetFilename(f.Filename).
			SetFileExt(ext).
			SetURI(f.URI).
			SetContentHash(f.ContentHash).
			SetIsPrimary(f.IsPrimary).
			Save(ctx)
		if err != nil {
			_ = tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	r.logger.Info("order item created", "item_id", item.ID, "order_id", orderID, "item_type", itemType, "files", len(files))
	return r.Get(ctx, item.ID)
}

func (r *orderItemRepository) Get(ctx context.Context, id uuid.UUID) (*entity.OrderItem, error) {
	it, err := r.client.OrderItem.Query().
		Where(orderitem.ID(id)).
		WithFiles(func(q *ent.OrderFileQuery) {
			q.Order(orderfile.ByUploadedAt())
		}).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, common.NewAppError("NOT_FOUND", "order item not found", common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return toOrderItem(it), nil
}

func (r *orderItemRepository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error) {
	items, err := r.client.OrderItem.Query().
		Where(orderitem.OrderID(orderID)).
		WithFiles(func(q *ent.OrderFileQuery) {
			q.Order(orderfile.ByUploadedAt())
		}).
		Order(orderitem.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list order items", "order_id", orderID, "error", err)
		return nil, err
	}
	out := make([]*entity.OrderItem, len(items))
	for i, it := range items {
		out[i] = toOrderItem(it)
	}
	return out, nil
}

func (r *orderItemRepository) Start(ctx context.Context, id uuid.UUID) error {
	return r.client.OrderItem.UpdateOneID(id).
		SetStatus(string(constants.ItemStatusProcessing)).
		SetStartedAt(time.Now()).
		ClearErrorMessage().
		Exec(ctx)
}

func (r *orderItemRepository) SetResolvedConfig(ctx context.Context, id uuid.UUID, cfg *entity.MappingConfiguration, provenance string) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	return r.client.OrderItem.UpdateOneID(id).
		SetMappingConfig(raw).
		SetConfigProvenance(provenance).
		Exec(ctx)
}

func (r *orderItemRepository) MarkExtracted(ctx context.Context, id uuid.UUID, uri string) error {
	return r.client.OrderItem.UpdateOneID(id).
		SetStatus(string(constants.ItemStatusCompleted)).
		SetExtractionURI(uri).
		SetFinishedAt(time.Now()).
		ClearErrorMessage().
		Exec(ctx)
}

func (r *orderItemRepository) FinishSuccess(ctx context.Context, id uuid.UUID, mappedURI string) error {
	err := r.client.OrderItem.UpdateOneID(id).
		SetStatus(string(constants.ItemStatusCompleted)).
		SetMappedURI(mappedURI).
		SetFinishedAt(time.Now()).
		ClearErrorMessage().
		Exec(ctx)
	if err != nil {
		r.logger.Error("item finish(COMPLETED) failed", "item_id", id, "error", err)
		return err
	}
	r.logger.Info("item finished", "item_id", id, "status", constants.ItemStatusCompleted)
	return nil
}

func (r *orderItemRepository) FinishFailure(ctx context.Context, id uuid.UUID, message string) error {
	err := r.client.OrderItem.UpdateOneID(id).
		SetStatus(string(constants.ItemStatusFailed)).
		SetErrorMessage(message).
		SetFinishedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		r.logger.Error("item finish(FAILED) failed", "item_id", id, "error", err)
		return err
	}
	r.logger.Warn("item failed", "item_id", id, "error", message)
	return nil
}
