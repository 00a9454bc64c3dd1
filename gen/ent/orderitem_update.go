// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/order-mapper/gen/ent/order"
	"github.com/joseph-ayodele/order-mapper/gen/ent/orderfile"
	"github.com/joseph-ayodele/order-mapper/gen/ent/orderitem"
	"github.com/joseph-ayodele/order-mapper/gen/ent/predicate"
)

// OrderItemUpdate is the builder for updating OrderItem entities.
type OrderItemUpdate struct {
	config
	hooks    []Hook
	mutation *OrderItemMutation
}

// Where appends a list predicates to the OrderItemUpdate builder.
func (_u *OrderItemUpdate) Where(ps ...predicate.OrderItem) *OrderItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrderID sets the "order_id" field.
func (_u *OrderItemUpdate) SetOrderID(v uuid.UUID) *OrderItemUpdate {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableOrderID(v *uuid.UUID) *OrderItemUpdate {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *OrderItemUpdate) SetItemType(v string) *OrderItemUpdate {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableItemType(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OrderItemUpdate) SetStatus(v string) *OrderItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableStatus(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMappingConfig sets the "mapping_config" field.
func (_u *OrderItemUpdate) SetMappingConfig(v json.RawMessage) *OrderItemUpdate {
	_u.mutation.SetMappingConfig(v)
	return _u
}

// AppendMappingConfig appends value to the "mapping_config" field.
func (_u *OrderItemUpdate) AppendMappingConfig(v json.RawMessage) *OrderItemUpdate {
	_u.mutation.AppendMappingConfig(v)
	return _u
}

// ClearMappingConfig clears the value of the "mapping_config" field.
func (_u *OrderItemUpdate) ClearMappingConfig() *OrderItemUpdate {
	_u.mutation.ClearMappingConfig()
	return _u
}

// SetConfigProvenance sets the "config_provenance" field.
func (_u *OrderItemUpdate) SetConfigProvenance(v string) *OrderItemUpdate {
	_u.mutation.SetConfigProvenance(v)
	return _u
}

// SetNillableConfigProvenance sets the "config_provenance" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableConfigProvenance(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetConfigProvenance(*v)
	}
	return _u
}

// ClearConfigProvenance clears the value of the "config_provenance" field.
func (_u *OrderItemUpdate) ClearConfigProvenance() *OrderItemUpdate {
	_u.mutation.ClearConfigProvenance()
	return _u
}

// SetExtractionURI sets the "extraction_uri" field.
func (_u *OrderItemUpdate) SetExtractionURI(v string) *OrderItemUpdate {
	_u.mutation.SetExtractionURI(v)
	return _u
}

// SetNillableExtractionURI sets the "extraction_uri" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableExtractionURI(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetExtractionURI(*v)
	}
	return _u
}

// ClearExtractionURI clears the value of the "extraction_uri" field.
func (_u *OrderItemUpdate) ClearExtractionURI() *OrderItemUpdate {
	_u.mutation.ClearExtractionURI()
	return _u
}

// SetMappedURI sets the "mapped_uri" field.
func (_u *OrderItemUpdate) SetMappedURI(v string) *OrderItemUpdate {
	_u.mutation.SetMappedURI(v)
	return _u
}

// SetNillableMappedURI sets the "mapped_uri" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableMappedURI(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetMappedURI(*v)
	}
	return _u
}

// ClearMappedURI clears the value of the "mapped_uri" field.
func (_u *OrderItemUpdate) ClearMappedURI() *OrderItemUpdate {
	_u.mutation.ClearMappedURI()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *OrderItemUpdate) SetErrorMessage(v string) *OrderItemUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableErrorMessage(v *string) *OrderItemUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *OrderItemUpdate) ClearErrorMessage() *OrderItemUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *OrderItemUpdate) SetStartedAt(v time.Time) *OrderItemUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableStartedAt(v *time.Time) *OrderItemUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *OrderItemUpdate) ClearStartedAt() *OrderItemUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *OrderItemUpdate) SetFinishedAt(v time.Time) *OrderItemUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableFinishedAt(v *time.Time) *OrderItemUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *OrderItemUpdate) ClearFinishedAt() *OrderItemUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OrderItemUpdate) SetCreatedAt(v time.Time) *OrderItemUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OrderItemUpdate) SetNillableCreatedAt(v *time.Time) *OrderItemUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetOrder sets the "order" edge to the Order entity.
func (_u *OrderItemUpdate) SetOrder(v *Order) *OrderItemUpdate {
	return _u.SetOrderID(v.ID)
}

// AddFileIDs adds the "files" edge to the OrderFile entity by IDs.
func (_u *OrderItemUpdate) AddFileIDs(ids ...uuid.UUID) *OrderItemUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the OrderFile entity.
func (_u *OrderItemUpdate) AddFiles(v ...*OrderFile) *OrderItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// Mutation returns the OrderItemMutation object of the builder.
func (_u *OrderItemUpdate) Mutation() *OrderItemMutation {
	return _u.mutation
}

// ClearOrder clears the "order" edge to the Order entity.
func (_u *OrderItemUpdate) ClearOrder() *OrderItemUpdate {
	_u.mutation.ClearOrder()
	return _u
}

// ClearFiles clears all "files" edges to the OrderFile entity.
func (_u *OrderItemUpdate) ClearFiles() *OrderItemUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to OrderFile entities by IDs.
func (_u *OrderItemUpdate) RemoveFileIDs(ids ...uuid.UUID) *OrderItemUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to OrderFile entities.
func (_u *OrderItemUpdate) RemoveFiles(v ...*OrderFile) *OrderItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderItemUpdate) check() error {
	if v, ok := _u.mutation.ItemType(); ok {
		if err := orderitem.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "OrderItem.item_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := orderitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OrderItem.status": %w`, err)}
		}
	}
	if _u.mutation.OrderCleared() && len(_u.mutation.OrderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrderItem.order"`)
	}
	return nil
}

func (_u *OrderItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderitem.Table, orderitem.Columns, sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(orderitem.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(orderitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.MappingConfig(); ok {
		_spec.SetField(orderitem.FieldMappingConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMappingConfig(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, orderitem.FieldMappingConfig, value)
		})
	}
	if _u.mutation.MappingConfigCleared() {
		_spec.ClearField(orderitem.FieldMappingConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConfigProvenance(); ok {
		_spec.SetField(orderitem.FieldConfigProvenance, field.TypeString, value)
	}
	if _u.mutation.ConfigProvenanceCleared() {
		_spec.ClearField(orderitem.FieldConfigProvenance, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionURI(); ok {
		_spec.SetField(orderitem.FieldExtractionURI, field.TypeString, value)
	}
	if _u.mutation.ExtractionURICleared() {
		_spec.ClearField(orderitem.FieldExtractionURI, field.TypeString)
	}
	if value, ok := _u.mutation.MappedURI(); ok {
		_spec.SetField(orderitem.FieldMappedURI, field.TypeString, value)
	}
	if _u.mutation.MappedURICleared() {
		_spec.ClearField(orderitem.FieldMappedURI, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(orderitem.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(orderitem.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(orderitem.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(orderitem.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(orderitem.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(orderitem.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(orderitem.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.OrderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderitem.OrderTable,
			Columns: []string{orderitem.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderitem.OrderTable,
			Columns: []string{orderitem.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   orderitem.FilesTable,
			Columns: []string{orderitem.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   orderitem.FilesTable,
			Columns: []string{orderitem.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   orderitem.FilesTable,
			Columns: []string{orderitem.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderItemUpdateOne is the builder for updating a single OrderItem entity.
type OrderItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderItemMutation
}

// SetOrderID sets the "order_id" field.
func (_u *OrderItemUpdateOne) SetOrderID(v uuid.UUID) *OrderItemUpdateOne {
	_u.mutation.SetOrderID(v)
	return _u
}

// SetNillableOrderID sets the "order_id" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableOrderID(v *uuid.UUID) *OrderItemUpdateOne {
	if v != nil {
		_u.SetOrderID(*v)
	}
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *OrderItemUpdateOne) SetItemType(v string) *OrderItemUpdateOne {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableItemType(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OrderItemUpdateOne) SetStatus(v string) *OrderItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableStatus(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMappingConfig sets the "mapping_config" field.
func (_u *OrderItemUpdateOne) SetMappingConfig(v json.RawMessage) *OrderItemUpdateOne {
	_u.mutation.SetMappingConfig(v)
	return _u
}

// AppendMappingConfig appends value to the "mapping_config" field.
func (_u *OrderItemUpdateOne) AppendMappingConfig(v json.RawMessage) *OrderItemUpdateOne {
	_u.mutation.AppendMappingConfig(v)
	return _u
}

// ClearMappingConfig clears the value of the "mapping_config" field.
func (_u *OrderItemUpdateOne) ClearMappingConfig() *OrderItemUpdateOne {
	_u.mutation.ClearMappingConfig()
	return _u
}

// SetConfigProvenance sets the "config_provenance" field.
func (_u *OrderItemUpdateOne) SetConfigProvenance(v string) *OrderItemUpdateOne {
	_u.mutation.SetConfigProvenance(v)
	return _u
}

// SetNillableConfigProvenance sets the "config_provenance" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableConfigProvenance(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetConfigProvenance(*v)
	}
	return _u
}

// ClearConfigProvenance clears the value of the "config_provenance" field.
func (_u *OrderItemUpdateOne) ClearConfigProvenance() *OrderItemUpdateOne {
	_u.mutation.ClearConfigProvenance()
	return _u
}

// SetExtractionURI sets the "extraction_uri" field.
func (_u *OrderItemUpdateOne) SetExtractionURI(v string) *OrderItemUpdateOne {
	_u.mutation.SetExtractionURI(v)
	return _u
}

// SetNillableExtractionURI sets the "extraction_uri" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableExtractionURI(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetExtractionURI(*v)
	}
	return _u
}

// ClearExtractionURI clears the value of the "extraction_uri" field.
func (_u *OrderItemUpdateOne) ClearExtractionURI() *OrderItemUpdateOne {
	_u.mutation.ClearExtractionURI()
	return _u
}

// SetMappedURI sets the "mapped_uri" field.
func (_u *OrderItemUpdateOne) SetMappedURI(v string) *OrderItemUpdateOne {
	_u.mutation.SetMappedURI(v)
	return _u
}

// SetNillableMappedURI sets the "mapped_uri" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableMappedURI(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetMappedURI(*v)
	}
	return _u
}

// ClearMappedURI clears the value of the "mapped_uri" field.
func (_u *OrderItemUpdateOne) ClearMappedURI() *OrderItemUpdateOne {
	_u.mutation.ClearMappedURI()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *OrderItemUpdateOne) SetErrorMessage(v string) *OrderItemUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableErrorMessage(v *string) *OrderItemUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *OrderItemUpdateOne) ClearErrorMessage() *OrderItemUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *OrderItemUpdateOne) SetStartedAt(v time.Time) *OrderItemUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableStartedAt(v *time.Time) *OrderItemUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *OrderItemUpdateOne) ClearStartedAt() *OrderItemUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *OrderItemUpdateOne) SetFinishedAt(v time.Time) *OrderItemUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableFinishedAt(v *time.Time) *OrderItemUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *OrderItemUpdateOne) ClearFinishedAt() *OrderItemUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OrderItemUpdateOne) SetCreatedAt(v time.Time) *OrderItemUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OrderItemUpdateOne) SetNillableCreatedAt(v *time.Time) *OrderItemUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetOrder sets the "order" edge to the Order entity.
func (_u *OrderItemUpdateOne) SetOrder(v *Order) *OrderItemUpdateOne {
	return _u.SetOrderID(v.ID)
}

// AddFileIDs adds the "files" edge to the OrderFile entity by IDs.
func (_u *OrderItemUpdateOne) AddFileIDs(ids ...uuid.UUID) *OrderItemUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the OrderFile entity.
func (_u *OrderItemUpdateOne) AddFiles(v ...*OrderFile) *OrderItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// Mutation returns the OrderItemMutation object of the builder.
func (_u *OrderItemUpdateOne) Mutation() *OrderItemMutation {
	return _u.mutation
}

// ClearOrder clears the "order" edge to the Order entity.
func (_u *OrderItemUpdateOne) ClearOrder() *OrderItemUpdateOne {
	_u.mutation.ClearOrder()
	return _u
}

// ClearFiles clears all "files" edges to the OrderFile entity.
func (_u *OrderItemUpdateOne) ClearFiles() *OrderItemUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to OrderFile entities by IDs.
func (_u *OrderItemUpdateOne) RemoveFileIDs(ids ...uuid.UUID) *OrderItemUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to OrderFile entities.
func (_u *OrderItemUpdateOne) RemoveFiles(v ...*OrderFile) *OrderItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// Where appends a list predicates to the OrderItemUpdate builder.
func (_u *OrderItemUpdateOne) Where(ps ...predicate.OrderItem) *OrderItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderItemUpdateOne) Select(field string, fields ...string) *OrderItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrderItem entity.
func (_u *OrderItemUpdateOne) Save(ctx context.Context) (*OrderItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderItemUpdateOne) SaveX(ctx context.Context) *OrderItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderItemUpdateOne) check() error {
	if v, ok := _u.mutation.ItemType(); ok {
		if err := orderitem.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "OrderItem.item_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := orderitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "OrderItem.status": %w`, err)}
		}
	}
	if _u.mutation.OrderCleared() && len(_u.mutation.OrderIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrderItem.order"`)
	}
	return nil
}

func (_u *OrderItemUpdateOne) sqlSave(ctx context.Context) (_node *OrderItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderitem.Table, orderitem.Columns, sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrderItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orderitem.FieldID)
		for _, f := range fields {
			if !orderitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orderitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(orderitem.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(orderitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.MappingConfig(); ok {
		_spec.SetField(orderitem.FieldMappingConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMappingConfig(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, orderitem.FieldMappingConfig, value)
		})
	}
	if _u.mutation.MappingConfigCleared() {
		_spec.ClearField(orderitem.FieldMappingConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConfigProvenance(); ok {
		_spec.SetField(orderitem.FieldConfigProvenance, field.TypeString, value)
	}
	if _u.mutation.ConfigProvenanceCleared() {
		_spec.ClearField(orderitem.FieldConfigProvenance, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractionURI(); ok {
		_spec.SetField(orderitem.FieldExtractionURI, field.TypeString, value)
	}
	if _u.mutation.ExtractionURICleared() {
		_spec.ClearField(orderitem.FieldExtractionURI, field.TypeString)
	}
	if value, ok := _u.mutation.MappedURI(); ok {
		_spec.SetField(orderitem.FieldMappedURI, field.TypeString, value)
	}
	if _u.mutation.MappedURICleared() {
		_spec.ClearField(orderitem.FieldMappedURI, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(orderitem.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(orderitem.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(orderitem.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(orderitem.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(orderitem.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(orderitem.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(orderitem.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.OrderCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderitem.OrderTable,
			Columns: []string{orderitem.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrderIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderitem.OrderTable,
			Columns: []string{orderitem.OrderColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   orderitem.FilesTable,
			Columns: []string{orderitem.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   orderitem.FilesTable,
			Columns: []string{orderitem.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   orderitem.FilesTable,
			Columns: []string{orderitem.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OrderItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
