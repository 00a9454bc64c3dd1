// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/order-mapper/gen/ent/orderfile"
	"github.com/joseph-ayodele/order-mapper/gen/ent/orderitem"
)

// OrderFileCreate is the builder for creating a OrderFile entity.
type OrderFileCreate struct {
	config
	mutation *OrderFileMutation
	hooks    []Hook
}

// SetItemID sets the "item_id" field.
func (_c *OrderFileCreate) SetItemID(v uuid.UUID) *OrderFileCreate {
	_c.mutation.SetItemID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *OrderFileCreate) SetFilename(v string) *OrderFileCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *OrderFileCreate) SetFileExt(v string) *OrderFileCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetURI sets the "uri" field.
func (_c *OrderFileCreate) SetURI(v string) *OrderFileCreate {
	_c.mutation.SetURI(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *OrderFileCreate) SetContentHash(v []byte) *OrderFileCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetIsPrimary sets the "is_primary" field.
func (_c *OrderFileCreate) SetIsPrimary(v bool) *OrderFileCreate {
	_c.mutation.SetIsPrimary(v)
	return _c
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_c *OrderFileCreate) SetNillableIsPrimary(v *bool) *OrderFileCreate {
	if v != nil {
		_c.SetIsPrimary(*v)
	}
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *OrderFileCreate) SetUploadedAt(v time.Time) *OrderFileCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *OrderFileCreate) SetNillableUploadedAt(v *time.Time) *OrderFileCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OrderFileCreate) SetID(v uuid.UUID) *OrderFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OrderFileCreate) SetNillableID(v *uuid.UUID) *OrderFileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetItem sets the "item" edge to the OrderItem entity.
func (_c *OrderFileCreate) SetItem(v *OrderItem) *OrderFileCreate {
	return _c.SetItemID(v.ID)
}

// Mutation returns the OrderFileMutation object of the builder.
func (_c *OrderFileCreate) Mutation() *OrderFileMutation {
	return _c.mutation
}

// Save creates the OrderFile in the database.
func (_c *OrderFileCreate) Save(ctx context.Context) (*OrderFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OrderFileCreate) SaveX(ctx context.Context) *OrderFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OrderFileCreate) defaults() {
	if _, ok := _c.mutation.IsPrimary(); !ok {
		v := orderfile.DefaultIsPrimary
		_c.mutation.SetIsPrimary(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := orderfile.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := orderfile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OrderFileCreate) check() error {
	if _, ok := _c.mutation.ItemID(); !ok {
		return &ValidationError{Name: "item_id", err: errors.New(`ent: missing required field "OrderFile.item_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "OrderFile.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := orderfile.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "OrderFile.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "OrderFile.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := orderfile.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "OrderFile.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.URI(); !ok {
		return &ValidationError{Name: "uri", err: errors.New(`ent: missing required field "OrderFile.uri"`)}
	}
	if v, ok := _c.mutation.URI(); ok {
		if err := orderfile.URIValidator(v); err != nil {
			return &ValidationError{Name: "uri", err: fmt.Errorf(`ent: validator failed for field "OrderFile.uri": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "OrderFile.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := orderfile.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "OrderFile.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsPrimary(); !ok {
		return &ValidationError{Name: "is_primary", err: errors.New(`ent: missing required field "OrderFile.is_primary"`)}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "OrderFile.uploaded_at"`)}
	}
	if len(_c.mutation.ItemIDs()) == 0 {
		return &ValidationError{Name: "item", err: errors.New(`ent: missing required edge "OrderFile.item"`)}
	}
	return nil
}

func (_c *OrderFileCreate) sqlSave(ctx context.Context) (*OrderFile, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *OrderFileCreate) createSpec() (*OrderFile, *sqlgraph.CreateSpec) {
	var (
		_node = &OrderFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(orderfile.Table, sqlgraph.NewFieldSpec(orderfile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(orderfile.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(orderfile.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.URI(); ok {
		_spec.SetField(orderfile.FieldURI, field.TypeString, value)
		_node.URI = value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(orderfile.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.IsPrimary(); ok {
		_spec.SetField(orderfile.FieldIsPrimary, field.TypeBool, value)
		_node.IsPrimary = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(orderfile.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.ItemIDs(); len(nodes) > 0 {
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
		_node.ItemID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OrderFileCreateBulk is the builder for creating many OrderFile entities in bulk.
type OrderFileCreateBulk struct {
	config
	err      error
	builders []*OrderFileCreate
}

// Save creates the OrderFile entities in the database.
func (_c *OrderFileCreateBulk) Save(ctx context.Context) ([]*OrderFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OrderFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OrderFileMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *OrderFileCreateBulk) SaveX(ctx context.Context) []*OrderFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OrderFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OrderFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
