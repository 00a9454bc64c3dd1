// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ColumnTemplate is the predicate function for columntemplate builders.
type ColumnTemplate func(*sql.Selector)

// MappingTemplate is the predicate function for mappingtemplate builders.
type MappingTemplate func(*sql.Selector)

// Order is the predicate function for order builders.
type Order func(*sql.Selector)

// OrderFile is the predicate function for orderfile builders.
type OrderFile func(*sql.Selector)

// OrderItem is the predicate function for orderitem builders.
type OrderItem func(*sql.Selector)
