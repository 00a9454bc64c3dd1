package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/order-mapper/constants"
	"github.com/joseph-ayodele/order-mapper/gen/ent"
	"github.com/joseph-ayodele/order-mapper/gen/ent/order"
	"github.com/joseph-ayodele/order-mapper/internal/common"
	"github.com/joseph-ayodele/order-mapper/internal/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, companyID uuid.UUID, docType string) (*entity.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	// ClaimForProcessing flips the order to PROCESSING as a conditional
	// update. A locked order returns ORDER_LOCKED; an order already in
	// flight returns a conflict error.
	ClaimForProcessing(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status constants.OrderStatus) error
	// SetMappingConfig attaches an order-wide configuration that items
	// without their own configuration fall back to.
	SetMappingConfig(ctx context.Context, id uuid.UUID, cfg *entity.MappingConfiguration) error
	// RecordResult merges one artifact name -> blob uri into result_uris.
	RecordResult(ctx context.Context, id uuid.UUID, name, uri string) error
	// FinishProcessing records the terminal stage outcome in one update.
	FinishProcessing(ctx context.Context, id uuid.UUID, status constants.OrderStatus, completed, failed int, errorMessage *string) error
}

type orderRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewOrderRepository(client *ent.Client, logger *slog.Logger) OrderRepository {
	return &orderRepository{client: client, logger: logger}
}

func (r *orderRepository) Create(ctx context.Context, companyID uuid.UUID, docType string) (*entity.Order, error) {
	o, err := r.client.Order.Create().
		SetCompanyID(companyID).
		SetDocType(docType).
		Save(ctx)
	if err != nil {
		r.logger.Error("order create failed", "company_id", companyID, "error", err)
		return nil, err
	}
	r.logger.Info("order created", "order_id", o.ID, "company_id", companyID, "doc_type", docType)
	return toOrder(o), nil
}

func (r *orderRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	o, err := r.client.Order.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.NewAppError("NOT_FOUND", "order not found", common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return toOrder(o), nil
}

func (r *orderRepository) ClaimForProcessing(ctx context.Context, id uuid.UUID) error {
	// Conditional update doubles as the record-level lock: concurrent
	// claims race on the WHERE clause and only one wins.
	n, err := r.client.Order.Update().
		Where(
			order.ID(id),
			order.StatusNotIn(
				string(constants.OrderStatusLocked),
				string(constants.OrderStatusProcessing),
				string(constants.OrderStatusMapping),
			),
		).
		SetStatus(string(constants.OrderStatusProcessing)).
		Save(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	o, err := r.client.Order.Get(ctx, id)
	if ent.IsNotFound(err) {
		return common.NewAppError("NOT_FOUND", "order not found", common.ErrNotFound)
	}
	if err != nil {
		return err
	}
	if o.Status == string(constants.OrderStatusLocked) {
		return common.OrderLockedError(id.String())
	}
	return common.NewAppError("ORDER_BUSY", "order is already being processed", nil)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status constants.OrderStatus) error {
	err := r.client.Order.UpdateOneID(id).
		SetStatus(string(status)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("order status update failed", "order_id", id, "status", status, "error", err)
		return err
	}
	r.logger.Info("order status updated", "order_id", id, "status", status)
	return nil
}

func (r *orderRepository) SetMappingConfig(ctx context.Context, id uuid.UUID, cfg *entity.MappingConfiguration) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	err = r.client.Order.UpdateOneID(id).
		SetMappingConfig(raw).
		Exec(ctx)
	if err != nil {
		r.logger.Error("order config update failed", "order_id", id, "error", err)
		return err
	}
	r.logger.Info("order config attached", "order_id", id)
	return nil
}

func (r *orderRepository) RecordResult(ctx context.Context, id uuid.UUID, name, uri string) error {
	o, err := r.client.Order.Get(ctx, id)
	if err != nil {
		return err
	}
	uris := o.ResultUris
	if uris == nil {
		uris = map[string]string{}
	}
	uris[name] = uri
	return r.client.Order.UpdateOneID(id).
		SetResultUris(uris).
		Exec(ctx)
}

func (r *orderRepository) FinishProcessing(ctx context.Context, id uuid.UUID, status constants.OrderStatus, completed, failed int, errorMessage *string) error {
	upd := r.client.Order.UpdateOneID(id).
		SetStatus(string(status)).
		SetCompletedItems(completed).
		SetFailedItems(failed).
		SetUpdatedAt(time.Now()).
		SetNillableErrorMessage(errorMessage)
	if err := upd.Exec(ctx); err != nil {
		r.logger.Error("order finish failed", "order_id", id, "error", err)
		return err
	}
	r.logger.Info("order finished", "order_id", id, "status", status, "completed", completed, "failed", failed)
	return nil
}
