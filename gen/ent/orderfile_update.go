// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/order-mapper/gen/ent/orderfile"
	"github.com/joseph-ayodele/order-mapper/gen/ent/orderitem"
	"github.com/joseph-ayodele/order-mapper/gen/ent/predicate"
)

// OrderFileUpdate is the builder for updating OrderFile entities.
type OrderFileUpdate struct {
	config
	hooks    []Hook
	mutation *OrderFileMutation
}

// Where appends a list predicates to the OrderFileUpdate builder.
func (_u *OrderFileUpdate) Where(ps ...predicate.OrderFile) *OrderFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetItemID sets the "item_id" field.
func (_u *OrderFileUpdate) SetItemID(v uuid.UUID) *OrderFileUpdate {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *OrderFileUpdate) SetNillableItemID(v *uuid.UUID) *OrderFileUpdate {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *OrderFileUpdate) SetFilename(v string) *OrderFileUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *OrderFileUpdate) SetNillableFilename(v *string) *OrderFileUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *OrderFileUpdate) SetFileExt(v string) *OrderFileUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *OrderFileUpdate) SetNillableFileExt(v *string) *OrderFileUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetURI sets the "uri" field.
func (_u *OrderFileUpdate) SetURI(v string) *OrderFileUpdate {
	_u.mutation.SetURI(v)
	return _u
}

// SetNillableURI sets the "uri" field if the given value is not nil.
func (_u *OrderFileUpdate) SetNillableURI(v *string) *OrderFileUpdate {
	if v != nil {
		_u.SetURI(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *OrderFileUpdate) SetContentHash(v []byte) *OrderFileUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *OrderFileUpdate) SetIsPrimary(v bool) *OrderFileUpdate {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *OrderFileUpdate) SetNillableIsPrimary(v *bool) *OrderFileUpdate {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *OrderFileUpdate) SetUploadedAt(v time.Time) *OrderFileUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *OrderFileUpdate) SetNillableUploadedAt(v *time.Time) *OrderFileUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetItem sets the "item" edge to the OrderItem entity.
func (_u *OrderFileUpdate) SetItem(v *OrderItem) *OrderFileUpdate {
	return _u.SetItemID(v.ID)
}

// Mutation returns the OrderFileMutation object of the builder.
func (_u *OrderFileUpdate) Mutation() *OrderFileMutation {
	return _u.mutation
}

// ClearItem clears the "item" edge to the OrderItem entity.
func (_u *OrderFileUpdate) ClearItem() *OrderFileUpdate {
	_u.mutation.ClearItem()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OrderFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OrderFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderFileUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := orderfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "OrderFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := orderfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "OrderFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URI(); ok {
		if err := orderfile.URIValidator(v); err != nil {
			return &ValidationError{Name: "uri", err: fmt.Errorf(`ent: validator failed for field "OrderFile.uri": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := orderfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "OrderFile.content_hash": %w`, err)}
		}
	}
	if _u.mutation.ItemCleared() && len(_u.mutation.ItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrderFile.item"`)
	}
	return nil
}

func (_u *OrderFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderfile.Table, orderfile.Columns, sqlgraph.NewFieldSpec(orderfile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(orderfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(orderfile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.URI(); ok {
		_spec.SetField(orderfile.FieldURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(orderfile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(orderfile.FieldIsPrimary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(orderfile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.ItemCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderfile.ItemTable,
			Columns: []string{orderfile.ItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderfile.ItemTable,
			Columns: []string{orderfile.ItemColumn},
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
			err = &NotFoundError{orderfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OrderFileUpdateOne is the builder for updating a single OrderFile entity.
type OrderFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OrderFileMutation
}

// SetItemID sets the "item_id" field.
func (_u *OrderFileUpdateOne) SetItemID(v uuid.UUID) *OrderFileUpdateOne {
	_u.mutation.SetItemID(v)
	return _u
}

// SetNillableItemID sets the "item_id" field if the given value is not nil.
func (_u *OrderFileUpdateOne) SetNillableItemID(v *uuid.UUID) *OrderFileUpdateOne {
	if v != nil {
		_u.SetItemID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *OrderFileUpdateOne) SetFilename(v string) *OrderFileUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *OrderFileUpdateOne) SetNillableFilename(v *string) *OrderFileUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *OrderFileUpdateOne) SetFileExt(v string) *OrderFileUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *OrderFileUpdateOne) SetNillableFileExt(v *string) *OrderFileUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetURI sets the "uri" field.
func (_u *OrderFileUpdateOne) SetURI(v string) *OrderFileUpdateOne {
	_u.mutation.SetURI(v)
	return _u
}

// SetNillableURI sets the "uri" field if the given value is not nil.
func (_u *OrderFileUpdateOne) SetNillableURI(v *string) *OrderFileUpdateOne {
	if v != nil {
		_u.SetURI(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *OrderFileUpdateOne) SetContentHash(v []byte) *OrderFileUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *OrderFileUpdateOne) SetIsPrimary(v bool) *OrderFileUpdateOne {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *OrderFileUpdateOne) SetNillableIsPrimary(v *bool) *OrderFileUpdateOne {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *OrderFileUpdateOne) SetUploadedAt(v time.Time) *OrderFileUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *OrderFileUpdateOne) SetNillableUploadedAt(v *time.Time) *OrderFileUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetItem sets the "item" edge to the OrderItem entity.
func (_u *OrderFileUpdateOne) SetItem(v *OrderItem) *OrderFileUpdateOne {
	return _u.SetItemID(v.ID)
}

// Mutation returns the OrderFileMutation object of the builder.
func (_u *OrderFileUpdateOne) Mutation() *OrderFileMutation {
	return _u.mutation
}

// ClearItem clears the "item" edge to the OrderItem entity.
func (_u *OrderFileUpdateOne) ClearItem() *OrderFileUpdateOne {
	_u.mutation.ClearItem()
	return _u
}

// Where appends a list predicates to the OrderFileUpdate builder.
func (_u *OrderFileUpdateOne) Where(ps ...predicate.OrderFile) *OrderFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OrderFileUpdateOne) Select(field string, fields ...string) *OrderFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OrderFile entity.
func (_u *OrderFileUpdateOne) Save(ctx context.Context) (*OrderFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OrderFileUpdateOne) SaveX(ctx context.Context) *OrderFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OrderFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OrderFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OrderFileUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := orderfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "OrderFile.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := orderfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "OrderFile.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.URI(); ok {
		if err := orderfile.URIValidator(v); err != nil {
			return &ValidationError{Name: "uri", err: fmt.Errorf(`ent: validator failed for field "OrderFile.uri": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := orderfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "OrderFile.content_hash": %w`, err)}
		}
	}
	if _u.mutation.ItemCleared() && len(_u.mutation.ItemIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OrderFile.item"`)
	}
	return nil
}

func (_u *OrderFileUpdateOne) sqlSave(ctx context.Context) (_node *OrderFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(orderfile.Table, orderfile.Columns, sqlgraph.NewFieldSpec(orderfile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OrderFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orderfile.FieldID)
		for _, f := range fields {
			if !orderfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != orderfile.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(orderfile.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(orderfile.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.URI(); ok {
		_spec.SetField(orderfile.FieldURI, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(orderfile.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(orderfile.FieldIsPrimary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(orderfile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.ItemCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderfile.ItemTable,
			Columns: []string{orderfile.ItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(orderitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   orderfile.ItemTable,
			Columns: []string{orderfile.ItemColumn},
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
	_node = &OrderFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{orderfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
