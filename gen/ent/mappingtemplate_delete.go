// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/order-mapper/gen/ent/mappingtemplate"
	"github.com/joseph-ayodele/order-mapper/gen/ent/predicate"
)

// MappingTemplateDelete is the builder for deleting a MappingTemplate entity.
type MappingTemplateDelete struct {
	config
	hooks    []Hook
	mutation *MappingTemplateMutation
}

// Where appends a list predicates to the MappingTemplateDelete builder.
func (_d *MappingTemplateDelete) Where(ps ...predicate.MappingTemplate) *MappingTemplateDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MappingTemplateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MappingTemplateDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MappingTemplateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(mappingtemplate.Table, sqlgraph.NewFieldSpec(mappingtemplate.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MappingTemplateDeleteOne is the builder for deleting a single MappingTemplate entity.
type MappingTemplateDeleteOne struct {
	_d *MappingTemplateDelete
}

// Where appends a list predicates to the MappingTemplateDelete builder.
func (_d *MappingTemplateDeleteOne) Where(ps ...predicate.MappingTemplate) *MappingTemplateDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MappingTemplateDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{mappingtemplate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MappingTemplateDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
