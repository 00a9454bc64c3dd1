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
	"github.com/joseph-ayodele/order-mapper/gen/ent/mappingtemplate"
	"github.com/joseph-ayodele/order-mapper/gen/ent/predicate"
)

// MappingTemplateUpdate is the builder for updating MappingTemplate entities.
type MappingTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *MappingTemplateMutation
}

// Where appends a list predicates to the MappingTemplateUpdate builder.
func (_u *MappingTemplateUpdate) Where(ps ...predicate.MappingTemplate) *MappingTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *MappingTemplateUpdate) SetName(v string) *MappingTemplateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MappingTemplateUpdate) SetNillableName(v *string) *MappingTemplateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *MappingTemplateUpdate) SetCompanyID(v uuid.UUID) *MappingTemplateUpdate {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *MappingTemplateUpdate) SetNillableCompanyID(v *uuid.UUID) *MappingTemplateUpdate {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *MappingTemplateUpdate) ClearCompanyID() *MappingTemplateUpdate {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *MappingTemplateUpdate) SetDocType(v string) *MappingTemplateUpdate {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *MappingTemplateUpdate) SetNillableDocType(v *string) *MappingTemplateUpdate {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// ClearDocType clears the value of the "doc_type" field.
func (_u *MappingTemplateUpdate) ClearDocType() *MappingTemplateUpdate {
	_u.mutation.ClearDocType()
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *MappingTemplateUpdate) SetItemType(v string) *MappingTemplateUpdate {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *MappingTemplateUpdate) SetNillableItemType(v *string) *MappingTemplateUpdate {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *MappingTemplateUpdate) SetIsDefault(v bool) *MappingTemplateUpdate {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *MappingTemplateUpdate) SetNillableIsDefault(v *bool) *MappingTemplateUpdate {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *MappingTemplateUpdate) SetConfig(v json.RawMessage) *MappingTemplateUpdate {
	_u.mutation.SetConfig(v)
	return _u
}

// AppendConfig appends value to the "config" field.
func (_u *MappingTemplateUpdate) AppendConfig(v json.RawMessage) *MappingTemplateUpdate {
	_u.mutation.AppendConfig(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MappingTemplateUpdate) SetCreatedAt(v time.Time) *MappingTemplateUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MappingTemplateUpdate) SetNillableCreatedAt(v *time.Time) *MappingTemplateUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MappingTemplateUpdate) SetUpdatedAt(v time.Time) *MappingTemplateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MappingTemplateMutation object of the builder.
func (_u *MappingTemplateUpdate) Mutation() *MappingTemplateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MappingTemplateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MappingTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MappingTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MappingTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MappingTemplateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mappingtemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MappingTemplateUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := mappingtemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "MappingTemplate.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemType(); ok {
		if err := mappingtemplate.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "MappingTemplate.item_type": %w`, err)}
		}
	}
	return nil
}

func (_u *MappingTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mappingtemplate.Table, mappingtemplate.Columns, sqlgraph.NewFieldSpec(mappingtemplate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(mappingtemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(mappingtemplate.FieldCompanyID, field.TypeUUID, value)
	}
	if _u.mutation.CompanyIDCleared() {
		_spec.ClearField(mappingtemplate.FieldCompanyID, field.TypeUUID)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(mappingtemplate.FieldDocType, field.TypeString, value)
	}
	if _u.mutation.DocTypeCleared() {
		_spec.ClearField(mappingtemplate.FieldDocType, field.TypeString)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(mappingtemplate.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(mappingtemplate.FieldIsDefault, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(mappingtemplate.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConfig(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mappingtemplate.FieldConfig, value)
		})
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(mappingtemplate.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mappingtemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mappingtemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MappingTemplateUpdateOne is the builder for updating a single MappingTemplate entity.
type MappingTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MappingTemplateMutation
}

// SetName sets the "name" field.
func (_u *MappingTemplateUpdateOne) SetName(v string) *MappingTemplateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MappingTemplateUpdateOne) SetNillableName(v *string) *MappingTemplateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetCompanyID sets the "company_id" field.
func (_u *MappingTemplateUpdateOne) SetCompanyID(v uuid.UUID) *MappingTemplateUpdateOne {
	_u.mutation.SetCompanyID(v)
	return _u
}

// SetNillableCompanyID sets the "company_id" field if the given value is not nil.
func (_u *MappingTemplateUpdateOne) SetNillableCompanyID(v *uuid.UUID) *MappingTemplateUpdateOne {
	if v != nil {
		_u.SetCompanyID(*v)
	}
	return _u
}

// ClearCompanyID clears the value of the "company_id" field.
func (_u *MappingTemplateUpdateOne) ClearCompanyID() *MappingTemplateUpdateOne {
	_u.mutation.ClearCompanyID()
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *MappingTemplateUpdateOne) SetDocType(v string) *MappingTemplateUpdateOne {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *MappingTemplateUpdateOne) SetNillableDocType(v *string) *MappingTemplateUpdateOne {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// ClearDocType clears the value of the "doc_type" field.
func (_u *MappingTemplateUpdateOne) ClearDocType() *MappingTemplateUpdateOne {
	_u.mutation.ClearDocType()
	return _u
}

// SetItemType sets the "item_type" field.
func (_u *MappingTemplateUpdateOne) SetItemType(v string) *MappingTemplateUpdateOne {
	_u.mutation.SetItemType(v)
	return _u
}

// SetNillableItemType sets the "item_type" field if the given value is not nil.
func (_u *MappingTemplateUpdateOne) SetNillableItemType(v *string) *MappingTemplateUpdateOne {
	if v != nil {
		_u.SetItemType(*v)
	}
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *MappingTemplateUpdateOne) SetIsDefault(v bool) *MappingTemplateUpdateOne {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *MappingTemplateUpdateOne) SetNillableIsDefault(v *bool) *MappingTemplateUpdateOne {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// SetConfig sets the "config" field.
func (_u *MappingTemplateUpdateOne) SetConfig(v json.RawMessage) *MappingTemplateUpdateOne {
	_u.mutation.SetConfig(v)
	return _u
}

// AppendConfig appends value to the "config" field.
func (_u *MappingTemplateUpdateOne) AppendConfig(v json.RawMessage) *MappingTemplateUpdateOne {
	_u.mutation.AppendConfig(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *MappingTemplateUpdateOne) SetCreatedAt(v time.Time) *MappingTemplateUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *MappingTemplateUpdateOne) SetNillableCreatedAt(v *time.Time) *MappingTemplateUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MappingTemplateUpdateOne) SetUpdatedAt(v time.Time) *MappingTemplateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the MappingTemplateMutation object of the builder.
func (_u *MappingTemplateUpdateOne) Mutation() *MappingTemplateMutation {
	return _u.mutation
}

// Where appends a list predicates to the MappingTemplateUpdate builder.
func (_u *MappingTemplateUpdateOne) Where(ps ...predicate.MappingTemplate) *MappingTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MappingTemplateUpdateOne) Select(field string, fields ...string) *MappingTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MappingTemplate entity.
func (_u *MappingTemplateUpdateOne) Save(ctx context.Context) (*MappingTemplate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MappingTemplateUpdateOne) SaveX(ctx context.Context) *MappingTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MappingTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MappingTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MappingTemplateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := mappingtemplate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MappingTemplateUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := mappingtemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "MappingTemplate.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ItemType(); ok {
		if err := mappingtemplate.ItemTypeValidator(v); err != nil {
			return &ValidationError{Name: "item_type", err: fmt.Errorf(`ent: validator failed for field "MappingTemplate.item_type": %w`, err)}
		}
	}
	return nil
}

func (_u *MappingTemplateUpdateOne) sqlSave(ctx context.Context) (_node *MappingTemplate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mappingtemplate.Table, mappingtemplate.Columns, sqlgraph.NewFieldSpec(mappingtemplate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MappingTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mappingtemplate.FieldID)
		for _, f := range fields {
			if !mappingtemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mappingtemplate.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(mappingtemplate.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyID(); ok {
		_spec.SetField(mappingtemplate.FieldCompanyID, field.TypeUUID, value)
	}
	if _u.mutation.CompanyIDCleared() {
		_spec.ClearField(mappingtemplate.FieldCompanyID, field.TypeUUID)
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(mappingtemplate.FieldDocType, field.TypeString, value)
	}
	if _u.mutation.DocTypeCleared() {
		_spec.ClearField(mappingtemplate.FieldDocType, field.TypeString)
	}
	if value, ok := _u.mutation.ItemType(); ok {
		_spec.SetField(mappingtemplate.FieldItemType, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(mappingtemplate.FieldIsDefault, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Config(); ok {
		_spec.SetField(mappingtemplate.FieldConfig, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConfig(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, mappingtemplate.FieldConfig, value)
		})
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(mappingtemplate.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(mappingtemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &MappingTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mappingtemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
