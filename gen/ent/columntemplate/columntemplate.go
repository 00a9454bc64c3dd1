// Code generated by ent, DO NOT EDIT.

package columntemplate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the columntemplate type in the database.
	Label = "column_template"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTemplateName holds the string denoting the template_name field in the database.
	FieldTemplateName = "template_name"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldColumnOrder holds the string denoting the column_order field in the database.
	FieldColumnOrder = "column_order"
	// FieldColumnDefinitions holds the string denoting the column_definitions field in the database.
	FieldColumnDefinitions = "column_definitions"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the columntemplate in the database.
	Table = "column_templates"
)

// Columns holds all SQL columns for columntemplate fields.
var Columns = []string{
	FieldID,
	FieldTemplateName,
	FieldVersion,
	FieldColumnOrder,
	FieldColumnDefinitions,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TemplateNameValidator is a validator for the "template_name" field. It is called by the builders before save.
	TemplateNameValidator func(string) error
	// VersionValidator is a validator for the "version" field. It is called by the builders before save.
	VersionValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ColumnTemplate queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTemplateName orders the results by the template_name field.
func ByTemplateName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplateName, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
