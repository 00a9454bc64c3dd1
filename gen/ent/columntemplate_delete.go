// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/order-mapper/gen/ent/columntemplate"
	"github.com/joseph-ayodele/order-mapper/gen/ent/predicate"
)

// ColumnTemplateDelete is the builder for deleting a ColumnTemplate entity.
type ColumnTemplateDelete struct {
	config
	hooks    []Hook
	mutation *ColumnTemplateMutation
}

// Where appends a list predicates to the ColumnTemplateDelete builder.
func (_d *ColumnTemplateDelete) Where(ps ...predicate.ColumnTemplate) *ColumnTemplateDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ColumnTemplateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ColumnTemplateDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ColumnTemplateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(columntemplate.Table, sqlgraph.NewFieldSpec(columntemplate.FieldID, field.TypeUUID))
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

// ColumnTemplateDeleteOne is the builder for deleting a single ColumnTemplate entity.
type ColumnTemplateDeleteOne struct {
	_d *ColumnTemplateDelete
}

// Where appends a list predicates to the ColumnTemplateDelete builder.
func (_d *ColumnTemplateDeleteOne) Where(ps ...predicate.ColumnTemplate) *ColumnTemplateDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ColumnTemplateDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{columntemplate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ColumnTemplateDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
