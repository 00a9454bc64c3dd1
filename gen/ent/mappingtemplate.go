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
	"github.com/joseph-ayodele/order-mapper/gen/ent/mappingtemplate"
)

// MappingTemplate is the model entity for the MappingTemplate schema.
type MappingTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// CompanyID holds the value of the "company_id" field.
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
	// DocType holds the value of the "doc_type" field.
	DocType *string `json:"doc_type,omitempty"`
	// ItemType holds the value of the "item_type" field.
	ItemType string `json:"item_type,omitempty"`
	// IsDefault holds the value of the "is_default" field.
	IsDefault bool `json:"is_default,omitempty"`
	// Config holds the value of the "config" field.
	Config json.RawMessage `json:"config,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MappingTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case mappingtemplate.FieldCompanyID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case mappingtemplate.FieldConfig:
			values[i] = new([]byte)
		case mappingtemplate.FieldIsDefault:
			values[i] = new(sql.NullBool)
		case mappingtemplate.FieldName, mappingtemplate.FieldDocType, mappingtemplate.FieldItemType:
			values[i] = new(sql.NullString)
		case mappingtemplate.FieldCreatedAt, mappingtemplate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case mappingtemplate.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MappingTemplate fields.
func (_m *MappingTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case mappingtemplate.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case mappingtemplate.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case mappingtemplate.FieldCompanyID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field company_id", values[i])
			} else if value.Valid {
				_m.CompanyID = new(uuid.UUID)
				*_m.CompanyID = *value.S.(*uuid.UUID)
			}
		case mappingtemplate.FieldDocType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_type", values[i])
			} else if value.Valid {
				_m.DocType = new(string)
				*_m.DocType = value.String
			}
		case mappingtemplate.FieldItemType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_type", values[i])
			} else if value.Valid {
				_m.ItemType = value.String
			}
		case mappingtemplate.FieldIsDefault:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_default", values[i])
			} else if value.Valid {
				_m.IsDefault = value.Bool
			}
		case mappingtemplate.FieldConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Config); err != nil {
					return fmt.Errorf("unmarshal field config: %w", err)
				}
			}
		case mappingtemplate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case mappingtemplate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MappingTemplate.
// This includes values selected through modifiers, order, etc.
func (_m *MappingTemplate) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MappingTemplate.
// Note that you need to call MappingTemplate.Unwrap() before calling this method if this MappingTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MappingTemplate) Update() *MappingTemplateUpdateOne {
	return NewMappingTemplateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MappingTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MappingTemplate) Unwrap() *MappingTemplate {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MappingTemplate is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MappingTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("MappingTemplate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.CompanyID; v != nil {
		builder.WriteString("company_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.DocType; v != nil {
		builder.WriteString("doc_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("item_type=")
	builder.WriteString(_m.ItemType)
	builder.WriteString(", ")
	builder.WriteString("is_default=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDefault))
	builder.WriteString(", ")
	builder.WriteString("config=")
	builder.WriteString(fmt.Sprintf("%v", _m.Config))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MappingTemplates is a parsable slice of MappingTemplate.
type MappingTemplates []*MappingTemplate
