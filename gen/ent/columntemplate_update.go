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
	"github.com/joseph-ayodele/order-mapper/gen/ent/columntemplate"
	"github.com/joseph-ayodele/order-mapper/gen/ent/predicate"
)

// ColumnTemplateUpdate is the builder for updating ColumnTemplate entities.
type ColumnTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *ColumnTemplateMutation
}

// Where appends a list predicates to the ColumnTemplateUpdate builder.
func (_u *ColumnTemplateUpdate) Where(ps ...predicate.ColumnTemplate) *ColumnTemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTemplateName sets the "template_name" field.
func (_u *ColumnTemplateUpdate) SetTemplateName(v string) *ColumnTemplateUpdate {
	_u.mutation.SetTemplateName(v)
	return _u
}

// SetNillableTemplateName sets the "template_name" field if the given value is not nil.
func (_u *ColumnTemplateUpdate) SetNillableTemplateName(v *string) *ColumnTemplateUpdate {
	if v != nil {
		_u.SetTemplateName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ColumnTemplateUpdate) SetVersion(v int) *ColumnTemplateUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ColumnTemplateUpdate) SetNillableVersion(v *int) *ColumnTemplateUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ColumnTemplateUpdate) AddVersion(v int) *ColumnTemplateUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetColumnOrder sets the "column_order" field.
func (_u *ColumnTemplateUpdate) SetColumnOrder(v []string) *ColumnTemplateUpdate {
	_u.mutation.SetColumnOrder(v)
	return _u
}

// AppendColumnOrder appends value to the "column_order" field.
func (_u *ColumnTemplateUpdate) AppendColumnOrder(v []string) *ColumnTemplateUpdate {
	_u.mutation.AppendColumnOrder(v)
	return _u
}

// SetColumnDefinitions sets the "column_definitions" field.
func (_u *ColumnTemplateUpdate) SetColumnDefinitions(v json.RawMessage) *ColumnTemplateUpdate {
	_u.mutation.SetColumnDefinitions(v)
	return _u
}

// AppendColumnDefinitions appends value to the "column_definitions" field.
func (_u *ColumnTemplateUpdate) AppendColumnDefinitions(v json.RawMessage) *ColumnTemplateUpdate {
	_u.mutation.AppendColumnDefinitions(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ColumnTemplateUpdate) SetCreatedAt(v time.Time) *ColumnTemplateUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ColumnTemplateUpdate) SetNillableCreatedAt(v *time.Time) *ColumnTemplateUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ColumnTemplateMutation object of the builder.
func (_u *ColumnTemplateUpdate) Mutation() *ColumnTemplateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ColumnTemplateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ColumnTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ColumnTemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ColumnTemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ColumnTemplateUpdate) check() error {
	if v, ok := _u.mutation.TemplateName(); ok {
		if err := columntemplate.TemplateNameValidator(v); err != nil {
			return &ValidationError{Name: "template_name", err: fmt.Errorf(`ent: validator failed for field "ColumnTemplate.template_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := columntemplate.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ColumnTemplate.version": %w`, err)}
		}
	}
	return nil
}

func (_u *ColumnTemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(columntemplate.Table, columntemplate.Columns, sqlgraph.NewFieldSpec(columntemplate.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TemplateName(); ok {
		_spec.SetField(columntemplate.FieldTemplateName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(columntemplate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(columntemplate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ColumnOrder(); ok {
		_spec.SetField(columntemplate.FieldColumnOrder, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedColumnOrder(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, columntemplate.FieldColumnOrder, value)
		})
	}
	if value, ok := _u.mutation.ColumnDefinitions(); ok {
		_spec.SetField(columntemplate.FieldColumnDefinitions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedColumnDefinitions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, columntemplate.FieldColumnDefinitions, value)
		})
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(columntemplate.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{columntemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ColumnTemplateUpdateOne is the builder for updating a single ColumnTemplate entity.
type ColumnTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ColumnTemplateMutation
}

// SetTemplateName sets the "template_name" field.
func (_u *ColumnTemplateUpdateOne) SetTemplateName(v string) *ColumnTemplateUpdateOne {
	_u.mutation.SetTemplateName(v)
	return _u
}

// SetNillableTemplateName sets the "template_name" field if the given value is not nil.
func (_u *ColumnTemplateUpdateOne) SetNillableTemplateName(v *string) *ColumnTemplateUpdateOne {
	if v != nil {
		_u.SetTemplateName(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *ColumnTemplateUpdateOne) SetVersion(v int) *ColumnTemplateUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *ColumnTemplateUpdateOne) SetNillableVersion(v *int) *ColumnTemplateUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *ColumnTemplateUpdateOne) AddVersion(v int) *ColumnTemplateUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetColumnOrder sets the "column_order" field.
func (_u *ColumnTemplateUpdateOne) SetColumnOrder(v []string) *ColumnTemplateUpdateOne {
	_u.mutation.SetColumnOrder(v)
	return _u
}

// AppendColumnOrder appends value to the "column_order" field.
func (_u *ColumnTemplateUpdateOne) AppendColumnOrder(v []string) *ColumnTemplateUpdateOne {
	_u.mutation.AppendColumnOrder(v)
	return _u
}

// SetColumnDefinitions sets the "column_definitions" field.
func (_u *ColumnTemplateUpdateOne) SetColumnDefinitions(v json.RawMessage) *ColumnTemplateUpdateOne {
	_u.mutation.SetColumnDefinitions(v)
	return _u
}

// AppendColumnDefinitions appends value to the "column_definitions" field.
func (_u *ColumnTemplateUpdateOne) AppendColumnDefinitions(v json.RawMessage) *ColumnTemplateUpdateOne {
	_u.mutation.AppendColumnDefinitions(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ColumnTemplateUpdateOne) SetCreatedAt(v time.Time) *ColumnTemplateUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ColumnTemplateUpdateOne) SetNillableCreatedAt(v *time.Time) *ColumnTemplateUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ColumnTemplateMutation object of the builder.
func (_u *ColumnTemplateUpdateOne) Mutation() *ColumnTemplateMutation {
	return _u.mutation
}

// Where appends a list predicates to the ColumnTemplateUpdate builder.
func (_u *ColumnTemplateUpdateOne) Where(ps ...predicate.ColumnTemplate) *ColumnTemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ColumnTemplateUpdateOne) Select(field string, fields ...string) *ColumnTemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ColumnTemplate entity.
func (_u *ColumnTemplateUpdateOne) Save(ctx context.Context) (*ColumnTemplate, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ColumnTemplateUpdateOne) SaveX(ctx context.Context) *ColumnTemplate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ColumnTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ColumnTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ColumnTemplateUpdateOne) check() error {
	if v, ok := _u.mutation.TemplateName(); ok {
		if err := columntemplate.TemplateNameValidator(v); err != nil {
			return &ValidationError{Name: "template_name", err: fmt.Errorf(`ent: validator failed for field "ColumnTemplate.template_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := columntemplate.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "ColumnTemplate.version": %w`, err)}
		}
	}
	return nil
}

func (_u *ColumnTemplateUpdateOne) sqlSave(ctx context.Context) (_node *ColumnTemplate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(columntemplate.Table, columntemplate.Columns, sqlgraph.NewFieldSpec(columntemplate.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ColumnTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, columntemplate.FieldID)
		for _, f := range fields {
			if !columntemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != columntemplate.FieldID {
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
	if value, ok := _u.mutation.TemplateName(); ok {
		_spec.SetField(columntemplate.FieldTemplateName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(columntemplate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(columntemplate.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ColumnOrder(); ok {
		_spec.SetField(columntemplate.FieldColumnOrder, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedColumnOrder(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, columntemplate.FieldColumnOrder, value)
		})
	}
	if value, ok := _u.mutation.ColumnDefinitions(); ok {
		_spec.SetField(columntemplate.FieldColumnDefinitions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedColumnDefinitions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, columntemplate.FieldColumnDefinitions, value)
		})
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(columntemplate.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &ColumnTemplate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{columntemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
