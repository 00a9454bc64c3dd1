// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/order-mapper/gen/ent/columntemplate"
)

// ColumnTemplate is the model entity for the ColumnTemplate schema.
type ColumnTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TemplateName holds the value of the "template_name" field.
	TemplateName string `json:"template_name,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// ColumnOrder holds the value of the "column_order" field.
	ColumnOrder []string `json:"column_order,omitempty"`
	// ColumnDefinitions holds the value of the "column_definitions" field.
	ColumnDefinitions json.RawMessage `json:"column_definitions,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ColumnTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case columntemplate.FieldColumnOrder, columntemplate.FieldColumnDefinitions:
			values[i] = new([]byte)
		case columntemplate.FieldVersion:
			values[i] = new(sql.NullInt64)
		case columntemplate.FieldTemplateName:
			values[i] = new(sql.NullString)
		case columntemplate.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case columntemplate.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ColumnTemplate fields.
func (_m *ColumnTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case columntemplate.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case columntemplate.FieldTemplateName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_name", values[i])
			} else if value.Valid {
				_m.TemplateName = value.String
			}
		case columntemplate.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case columntemplate.FieldColumnOrder:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field column_order", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ColumnOrder); err != nil {
					return fmt.Errorf("unmarshal field column_order: %w", err)
				}
			}
		case columntemplate.FieldColumnDefinitions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field column_definitions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ColumnDefinitions); err != nil {
					return fmt.Errorf("unmarshal field column_definitions: %w", err)
				}
			}
		case columntemplate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ColumnTemplate.
// This includes values selected through modifiers, order, etc.
func (_m *ColumnTemplate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ColumnTemplate.
// Note that you need to call ColumnTemplate.Unwrap() before calling this method if this ColumnTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ColumnTemplate) Update() *ColumnTemplateUpdateOne {
	return NewColumnTemplateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ColumnTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ColumnTemplate) Unwrap() *ColumnTemplate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ColumnTemplate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ColumnTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("ColumnTemplate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("template_name=")
	builder.WriteString(_m.TemplateName)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("column_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.ColumnOrder))
	builder.WriteString(", ")
	builder.WriteString("column_definitions=")
	builder.WriteString(fmt.Sprintf("%v", _m.ColumnDefinitions))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ColumnTemplates is a parsable slice of ColumnTemplate.
type ColumnTemplates []*ColumnTemplate
