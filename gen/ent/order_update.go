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
	"github.com/joseph-ayodele/order-mapper/gen/ent/orderitem"
	"github.com/joseph-ayodele/order-mapper/gen/ent/predicate"
)

// OrderUpdate is the builder for updating Order entities.
type OrderUpdate struct {
	config
	hooks    []Hook
	mutation *OrderMutation
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdate) Where(ps ...predicate.Order) *OrderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *OrderUpdate) SetCompanyID(v uuid.UUID) *OrderUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCompanyID(v *uuid.UUID) *OrderUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *OrderUpdate) SetDocType(v string) *OrderUpdate {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableDocType(v *string) *OrderUpdate {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OrderUpdate) SetStatus(v string) *OrderUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableStatus(v *string) *OrderUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedItems sets the "completed_items" field.
func (_u *OrderUpdate) SetCompletedItems(v int) *OrderUpdate {
	_u.mutation.ResetCompletedItems()
	_u.mutation.SetCompletedItems(v)
	return _u
}

// SetNillableCompletedItems sets the "completed_items" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCompletedItems(v *int) *OrderUpdate {
	if v != nil {
		_u.SetCompletedItems(*v)
	}
	return _u
}

// AddCompletedItems adds value to the "completed_items" field.
func (_u *OrderUpdate) AddCompletedItems(v int) *OrderUpdate {
	_u.mutation.AddCompletedItems(v)
	return _u
}

// SetFailedItems sets the "failed_items" field.
func (_u *OrderUpdate) SetFailedItems(v int) *OrderUpdate {
	_u.mutation.ResetFailedItems()
	_u.mutation.SetFailedItems(v)
	return _u
}

// SetNillableFailedItems sets the "failed_items" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableFailedItems(v *int) *OrderUpdate {
	if v != nil {
		_u.SetFailedItems(*v)
	}
	return _u
}

// AddFailedItems adds value to the "failed_items" field.
func (_u *OrderUpdate) AddFailedItems(v int) *OrderUpdate {
	_u.mutation.AddFailedItems(v)
	return _u
}

// SetResultUris sets the "result_uris" field.
func (_u *OrderUpdate) SetResultUris(v map[string]string) *OrderUpdate {
	_u.mutation.SetResultUris(v)
	return _u
}

// ClearResultUris clears the value of the "result_uris" field.
func (_u *OrderUpdate) ClearResultUris() *OrderUpdate {
	_u.mutation.ClearResultUris()
	return _u
}

// SetMappingConfig sets the "mapping_config" field.
func (_u *OrderUpdate) SetMappingConfig(v json.RawMessage) *OrderUpdate {
	_u.mutation.SetMappingConfig(v)
	return _u
}

// AppendMappingConfig appends value to the "mapping_config" field.
func (_u *OrderUpdate) AppendMappingConfig(v json.RawMessage) *OrderUpdate {
	_u.mutation.AppendMappingConfig(v)
	return _u
}

// ClearMappingConfig clears the value of the "mapping_config" field.
func (_u *OrderUpdate) ClearMappingConfig() *OrderUpdate {
	_u.mutation.ClearMappingConfig()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *OrderUpdate) SetErrorMessage(v string) *OrderUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableErrorMessage(v *string) *OrderUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *OrderUpdate) ClearErrorMessage() *OrderUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OrderUpdate) SetCreatedAt(v time.Time) *OrderUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OrderUpdate) SetNillableCreatedAt(v *time.Time) *OrderUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrderUpdate) SetUpdatedAt(v time.Time) *OrderUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddItemIDs adds the "items" edge to the OrderItem entity by IDs.
func (_u *OrderUpdate) AddItemIDs(ids ...uuid.UUID) *OrderUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the OrderItem entity.
func (_u *OrderUpdate) AddItems(v ...*OrderItem) *OrderUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdate) Mutation() *OrderMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the OrderItem entity.
func (_u *OrderUpdate) ClearItems() *OrderUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to OrderItem entities by IDs.
func (_u *OrderUpdate) RemoveItemIDs(ids ...uuid.UUID) *OrderUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to OrderItem entities.
func (_u *OrderUpdate) RemoveItems(v ...*OrderItem) *OrderUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrderUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := order.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderUpdate) check() error {
	if v, ok := _u.mutation.DocType(); ok {
		if err := order.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "Order.doc_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := order.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Order.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedItems(); ok {
		if err := order.CompletedItemsValidator(v); err != nil {
			return &ValidationError{Name: "completed_items", err: fmt.Errorf(`ent: validator failed for field "Order.completed_items": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedItems(); ok {
		if err := order.FailedItemsValidator(v); err != nil {
			return &ValidationError{Name: "failed_items", err: fmt.Errorf(`ent: validator failed for field "Order.failed_items": %w`, err)}
		}
	}
	return nil
}

func (_u *OrderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(order.FieldCompanyID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(order.FieldDocType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedItems(); ok {
		_spec.SetField(order.FieldCompletedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedItems(); ok {
		_spec.AddField(order.FieldCompletedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedItems(); ok {
		_spec.SetField(order.FieldFailedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedItems(); ok {
		_spec.AddField(order.FieldFailedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResultUris(); ok {
		_spec.SetField(order.FieldResultUris, field.TypeJSON, value)
	}
	if _u.mutation.ResultUrisCleared() {
		_spec.ClearField(order.FieldResultUris, field.TypeJSON)
	}
	if value, ok := _u.mutation.MappingConfig(); ok {
		_spec.SetField(order.FieldMappingConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMappingConfig(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, order.FieldMappingConfig, value)
		})
	}
	if _u.mutation.MappingConfigCleared() {
		_spec.ClearField(order.FieldMappingConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(order.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(order.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(order.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderUpdateOne is the builder for updating a single Order entity.
type OrderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderMutation
}

// SetCompanyID sets the "company_id" field.
func (_u *OrderUpdateOne) SetCompanyID(v uuid.UUID) *OrderUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCompanyID(v *uuid.UUID) *OrderUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *OrderUpdateOne) SetDocType(v string) *OrderUpdateOne {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableDocType(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *OrderUpdateOne) SetStatus(v string) *OrderUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableStatus(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedItems sets the "completed_items" field.
func (_u *OrderUpdateOne) SetCompletedItems(v int) *OrderUpdateOne {
	_u.mutation.ResetCompletedItems()
	_u.mutation.SetCompletedItems(v)
	return _u
}

// SetNillableCompletedItems sets the "completed_items" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCompletedItems(v *int) *OrderUpdateOne {
	if v != nil {
		_u.SetCompletedItems(*v)
	}
	return _u
}

// AddCompletedItems adds value to the "completed_items" field.
func (_u *OrderUpdateOne) AddCompletedItems(v int) *OrderUpdateOne {
	_u.mutation.AddCompletedItems(v)
	return _u
}

// SetFailedItems sets the "failed_items" field.
func (_u *OrderUpdateOne) SetFailedItems(v int) *OrderUpdateOne {
	_u.mutation.ResetFailedItems()
	_u.mutation.SetFailedItems(v)
	return _u
}

// SetNillableFailedItems sets the "failed_items" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableFailedItems(v *int) *OrderUpdateOne {
	if v != nil {
		_u.SetFailedItems(*v)
	}
	return _u
}

// AddFailedItems adds value to the "failed_items" field.
func (_u *OrderUpdateOne) AddFailedItems(v int) *OrderUpdateOne {
	_u.mutation.AddFailedItems(v)
	return _u
}

// SetResultUris sets the "result_uris" field.
func (_u *OrderUpdateOne) SetResultUris(v map[string]string) *OrderUpdateOne {
	_u.mutation.SetResultUris(v)
	return _u
}

// ClearResultUris clears the value of the "result_uris" field.
func (_u *OrderUpdateOne) ClearResultUris() *OrderUpdateOne {
	_u.mutation.ClearResultUris()
	return _u
}

// SetMappingConfig sets the "mapping_config" field.
func (_u *OrderUpdateOne) SetMappingConfig(v json.RawMessage) *OrderUpdateOne {
	_u.mutation.SetMappingConfig(v)
	return _u
}

// AppendMappingConfig appends value to the "mapping_config" field.
func (_u *OrderUpdateOne) AppendMappingConfig(v json.RawMessage) *OrderUpdateOne {
	_u.mutation.AppendMappingConfig(v)
	return _u
}

// ClearMappingConfig clears the value of the "mapping_config" field.
func (_u *OrderUpdateOne) ClearMappingConfig() *OrderUpdateOne {
	_u.mutation.ClearMappingConfig()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *OrderUpdateOne) SetErrorMessage(v string) *OrderUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableErrorMessage(v *string) *OrderUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *OrderUpdateOne) ClearErrorMessage() *OrderUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OrderUpdateOne) SetCreatedAt(v time.Time) *OrderUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OrderUpdateOne) SetNillableCreatedAt(v *time.Time) *OrderUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OrderUpdateOne) SetUpdatedAt(v time.Time) *OrderUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddItemIDs adds the "items" edge to the OrderItem entity by IDs.
func (_u *OrderUpdateOne) AddItemIDs(ids ...uuid.UUID) *OrderUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the OrderItem entity.
func (_u *OrderUpdateOne) AddItems(v ...*OrderItem) *OrderUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the OrderMutation object of the builder.
func (_u *OrderUpdateOne) Mutation() *OrderMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the OrderItem entity.
func (_u *OrderUpdateOne) ClearItems() *OrderUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to OrderItem entities by IDs.
func (_u *OrderUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *OrderUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to OrderItem entities.
func (_u *OrderUpdateOne) RemoveItems(v ...*OrderItem) *OrderUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the OrderUpdate builder.
func (_u *OrderUpdateOne) Where(ps ...predicate.Order) *OrderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderUpdateOne) Select(field string, fields ...string) *OrderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Order entity.
func (_u *OrderUpdateOne) Save(ctx context.Context) (*Order, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderUpdateOne) SaveX(ctx context.Context) *Order {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OrderUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := order.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderUpdateOne) check() error {
	if v, ok := _u.mutation.DocType(); ok {
		if err := order.DocTypeValidator(v); err != nil {
			return &ValidationError{Name: "doc_type", err: fmt.Errorf(`ent: validator failed for field "Order.doc_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := order.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Order.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedItems(); ok {
		if err := order.CompletedItemsValidator(v); err != nil {
			return &ValidationError{Name: "completed_items", err: fmt.Errorf(`ent: validator failed for field "Order.completed_items": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedItems(); ok {
		if err := order.FailedItemsValidator(v); err != nil {
			return &ValidationError{Name: "failed_items", err: fmt.Errorf(`ent: validator failed for field "Order.failed_items": %w`, err)}
		}
	}
	return nil
}

func (_u *OrderUpdateOne) sqlSave(ctx context.Context) (_node *Order, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(order.Table, order.Columns, sqlgraph.NewFieldSpec(order.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Order.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, order.FieldID)
		for _, f := range fields {
			if !order.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != order.FieldID {
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
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(order.FieldCompanyID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(order.FieldDocType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(order.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletedItems(); ok {
		_spec.SetField(order.FieldCompletedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedItems(); ok {
		_spec.AddField(order.FieldCompletedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedItems(); ok {
		_spec.SetField(order.FieldFailedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedItems(); ok {
		_spec.AddField(order.FieldFailedItems, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResultUris(); ok {
		_spec.SetField(order.FieldResultUris, field.TypeJSON, value)
	}
	if _u.mutation.ResultUrisCleared() {
		_spec.ClearField(order.FieldResultUris, field.TypeJSON)
	}
	if value, ok := _u.mutation.MappingConfig(); ok {
		_spec.SetField(order.FieldMappingConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMappingConfig(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, order.FieldMappingConfig, value)
		})
	}
	if _u.mutation.MappingConfigCleared() {
		_spec.ClearField(order.FieldMappingConfig, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(order.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(order.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(order.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(order.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   order.ItemsTable,
			Columns: []string{order.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Order{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{order.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
