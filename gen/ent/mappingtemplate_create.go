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
	"github.com/joseph-ayodele/order-mapper/gen/ent/mappingtemplate"
)

// MappingTemplateCreate is the builder for creating a MappingTemplate entity.
type MappingTemplateCreate struct {
	config
	mutation *MappingTemplateMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *MappingTemplateCreate) SetName(v string) *MappingTemplateCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetCompanyID sets the "company_id" field.
func (_c *MappingTemplateCreate) SetCompanyID(v uuid.UUID) *MappingTemplateCreate {
	_c.mutation.SetCompanyID(v)
	return _c
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_c *MappingTemplateCreate) SetNillableCompanyID(v *uuid.UUID) *MappingTemplateCreate {
	if v != nil {
		_c.SetCompanyID(*v)
	}
	return _c
}

// SetDocType sets the "doc_type" field.
func (_c *MappingTemplateCreate) SetDocType(v string) *MappingTemplateCreate {
	_c.mutation.SetDocType(v)
	return _c
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_c *MappingTemplateCreate) SetNillableDocType(v *string) *MappingTemplateCreate {
	if v != nil {
		_c.SetDocType(*v)
	}
	return _c
}

// SetItemType sets the "item_type" field.
func (_c *MappingTemplateCreate) SetItemType(v string) *MappingTemplateCreate {
	_c.mutation.SetItemType(v)
	return _c
}

// SetIsDefault sets the "is_default" field.
func (_c *MappingTemplateCreate) SetIsDefault(v bool) *MappingTemplateCreate {
	_c.mutation.SetIsDefault(v)
	return _c
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_c *MappingTemplateCreate) SetNillableIsDefault(v *bool) *MappingTemplateCreate {
	if v != nil {
		_c.SetIsDefault(*v)
	}
	return _c
}

// SetConfig sets the "config" field.
func (_c *MappingTemplateCreate) SetConfig(v json.RawMessage) *MappingTemplateCreate {
	_c.mutation.SetConfig(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MappingTemplateCreate) SetCreatedAt(v time.Time) *MappingTemplateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MappingTemplateCreate) SetNillableCreatedAt(v *time.Time) *MappingTemplateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MappingTemplateCreate) SetUpdatedAt(v time.Time) *MappingTemplateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MappingTemplateCreate) SetNillableUpdatedAt(v *time.Time) *MappingTemplateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MappingTemplateCreate) SetID(v uuid.UUID) *MappingTemplateCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MappingTemplateCreate) SetNillableID(v *uuid.UUID) *MappingTemplateCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MappingTemplateMutation object of the builder.
func (_c *MappingTemplateCreate) Mutation() *MappingTemplateMutation {
	return _c.mutation
}

// Save creates the MappingTemplate in the database.
func (_c *MappingTemplateCreate) Save(ctx context.Context) (*MappingTemplate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MappingTemplateCreate) SaveX(ctx context.Context) *MappingTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MappingTemplateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MappingTemplateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MappingTemplateCreate) defaults() {
	if _, ok := _c.mutation.IsDefault(); !ok {
		v := mappingtemplate.DefaultIsDefault
		_c.mutation.SetIsDefault(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mappingtemplate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := mappingtemplate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := mappingtemplate.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MappingTemplateCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "MappingTemplate.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := mappingtemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "MappingTemplate.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemType(); !ok {
		return &ValidationError{Name: "item_type", err: errors.New(`ent: missing required field "MappingTemplate.item_type"`)}
	}
	if v, ok := _c.mutation.ItemType(); ok {
		if err := mappingtemplate.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "MappingTemplate.item_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		return &ValidationError{Name: "is_default", err: errors.New(`ent: missing required field "MappingTemplate.is_default"`)}
	}
	if _, ok := _c.mutation.Config(); !ok {
		return &ValidationError{Name: "config", err: errors.New(`ent: missing required field "MappingTemplate.config"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MappingTemplate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "MappingTemplate.updated_at"`)}
	}
	return nil
}

func (_c *MappingTemplateCreate) sqlSave(ctx context.Context) (*MappingTemplate, error) {
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

func (_c *MappingTemplateCreate) createSpec() (*MappingTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &MappingTemplate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mappingtemplate.Table, sqlgraph.NewFieldSpec(mappingtemplate.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(mappingtemplate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.CompanyID(); ok {
		_spec.SetField(mappingtemplate.FieldCompanyID, field.TypeUUID, value)
		_node.CompanyID = &value
	}
	if value, ok := _c.mutation.DocType(); ok {
		_spec.SetField(mappingtemplate.FieldDocType, field.TypeString, value)
		_node.DocType = &value
	}
	if value, ok := _c.mutation.ItemType(); ok {
		_spec.SetField(mappingtemplate.FieldItemType, field.TypeString, value)
		_node.ItemType = value
	}
	if value, ok := _c.mutation.IsDefault(); ok {
		_spec.SetField(mappingtemplate.FieldIsDefault, field.TypeBool, value)
		_node.IsDefault = value
	}
	if value, ok := _c.mutation.Config(); ok {
		_spec.SetField(mappingtemplate.FieldConfig, field.TypeJSON, value)
		_node.Config = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mappingtemplate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(mappingtemplate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// MappingTemplateCreateBulk is the builder for creating many MappingTemplate entities in bulk.
type MappingTemplateCreateBulk struct {
	config
	err      error
	builders []*MappingTemplateCreate
}

// Save creates the MappingTemplate entities in the database.
func (_c *MappingTemplateCreateBulk) Save(ctx context.Context) ([]*MappingTemplate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MappingTemplate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MappingTemplateMutation)
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
func (_c *MappingTemplateCreateBulk) SaveX(ctx context.Context) []*MappingTemplate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MappingTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MappingTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
