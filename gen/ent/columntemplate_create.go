// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/order-mapper/gen/ent/columntemplate"
)

// ColumnTemplateCreate is the builder for creating a ColumnTemplate entity.
type ColumnTemplateCreate struct {
	config
	mutation *ColumnTemplateMutation
	hooks    []Hook
}

// SetTemplateName sets the "template_name" field.
func (_c *ColumnTemplateCreate) SetTemplateName(v string) *ColumnTemplateCreate {
	_c.mutation.SetTemplateName(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *ColumnTemplateCreate) SetVersion(v int) *ColumnTemplateCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetColumnOrder sets the "column_order" field.
func (_c *ColumnTemplateCreate) SetColumnOrder(v []string) *ColumnTemplateCreate {
	_c.mutation.SetColumnOrder(v)
	return _c
}

// SetColumnDefinitions sets the "column_definitions" field.
func (_c *ColumnTemplateCreate) SetColumnDefinitions(v json.RawMessage) *ColumnTemplateCreate {
	_c.mutation.SetColumnDefinitions(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ColumnTemplateCreate) SetCreatedAt(v time.Time) *ColumnTemplateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ColumnTemplateCreate) SetNillableCreatedAt(v *time.Time) *ColumnTemplateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ColumnTemplateCreate) SetID(v uuid.UUID) *ColumnTemplateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ColumnTemplateCreate) SetNillableID(v *uuid.UUID) *ColumnTemplateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ColumnTemplateMutation object of the builder.
func (_c *ColumnTemplateCreate) Mutation() *ColumnTemplateMutation {
	return _c.mutation
}

// Save creates the ColumnTemplate in the database.
func (_c *ColumnTemplateCreate) Save(ctx context.Context) (*ColumnTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ColumnTemplateCreate) SaveX(ctx context.Context) *ColumnTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ColumnTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ColumnTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ColumnTemplateCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := columntemplate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := columntemplate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ColumnTemplateCreate) check() error {
	if _, ok := _c.mutation.TemplateName(); !ok {
		return &ValidationError{Name: "template_name", err: errors.New(`ent: missing required field "ColumnTemplate.template_name"`)}
	}
	if v, ok := _c.mutation.TemplateName(); ok {
		if err := columntemplate.TemplateNameValidator(v); err != nil {
			return &ValidationError{Name: "template_name", err: fmt.Errorf(`ent: validator failed for field "ColumnTemplate.template_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "ColumnTemplate.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := columntemplate.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ColumnTemplate.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ColumnOrder(); !ok {
		return &ValidationError{Name: "column_order", err: errors.New(`ent: missing required field "ColumnTemplate.column_order"`)}
	}
	if _, ok := _c.mutation.ColumnDefinitions(); !ok {
		return &ValidationError{Name: "column_definitions", err: errors.New(`ent: missing required field "ColumnTemplate.column_definitions"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ColumnTemplate.created_at"`)}
	}
	return nil
}

func (_c *ColumnTemplateCreate) sqlSave(ctx context.Context) (*ColumnTemplate, error) {
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

func (_c *ColumnTemplateCreate) createSpec() (*ColumnTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &ColumnTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(columntemplate.Table, sqlgraph.NewFieldSpec(columntemplate.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.TemplateName(); ok {
		_spec.SetField(columntemplate.FieldTemplateName, field.TypeString, value)
		_node.TemplateName = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(columntemplate.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.ColumnOrder(); ok {
		_spec.SetField(columntemplate.FieldColumnOrder, field.TypeJSON, value)
		_node.ColumnOrder = value
	}
	if value, ok := _c.mutation.ColumnDefinitions(); ok {
		_spec.SetField(columntemplate.FieldColumnDefinitions, field.TypeJSON, value)
		_node.ColumnDefinitions = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(columntemplate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ColumnTemplateCreateBulk is the builder for creating many ColumnTemplate entities in bulk.
type ColumnTemplateCreateBulk struct {
	config
	err      error
	builders []*ColumnTemplateCreate
}

// Save creates the ColumnTemplate entities in the database.
func (_c *ColumnTemplateCreateBulk) Save(ctx context.Context) ([]*ColumnTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ColumnTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ColumnTemplateMutation)
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
func (_c *ColumnTemplateCreateBulk) SaveX(ctx context.Context) []*ColumnTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ColumnTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ColumnTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
