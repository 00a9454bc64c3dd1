// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/order-mapper/gen/ent/columntemplate"
	"github.com/joseph-ayodele/order-mapper/gen/ent/mappingtemplate"
	"github.com/joseph-ayodele/order-mapper/gen/ent/order"
	"github.com/joseph-ayodele/order-mapper/gen/ent/orderfile"
	"github.com/joseph-ayodele/order-mapper/gen/ent/orderitem"
	"github.com/joseph-ayodele/order-mapper/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeColumnTemplate  = "ColumnTemplate"
	TypeMappingTemplate = "MappingTemplate"
	TypeOrder           = "Order"
	TypeOrderFile       = "OrderFile"
	TypeOrderItem       = "OrderItem"
)

// ColumnTemplateMutation represents an operation that mutates the ColumnTemplate nodes in the graph.
type ColumnTemplateMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	template_name            *string
	version                  *int
	addversion               *int
	column_order             *[]string
	appendcolumn_order       []string
	column_definitions       *json.RawMessage
	appendcolumn_definitions json.RawMessage
	created_at               *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*ColumnTemplate, error)
	predicates               []predicate.ColumnTemplate
}

var _ ent.Mutation = (*ColumnTemplateMutation)(nil)

// columntemplateOption allows management of the mutation configuration using functional options.
type columntemplateOption func(*ColumnTemplateMutation)

// newColumnTemplateMutation creates new mutation for the ColumnTemplate entity.
func newColumnTemplateMutation(c config, op Op, opts ...columntemplateOption) *ColumnTemplateMutation {
	m := &ColumnTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeColumnTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withColumnTemplateID sets the ID field of the mutation.
func withColumnTemplateID(id uuid.UUID) columntemplateOption {
	return func(m *ColumnTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *ColumnTemplate
		)
		m.oldValue = func(ctx context.Context) (*ColumnTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ColumnTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withColumnTemplate sets the old ColumnTemplate of the mutation.
func withColumnTemplate(node *ColumnTemplate) columntemplateOption {
	return func(m *ColumnTemplateMutation) {
		m.oldValue = func(context.Context) (*ColumnTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ColumnTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ColumnTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ColumnTemplate entities.
func (m *ColumnTemplateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ColumnTemplateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ColumnTemplateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ColumnTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTemplateName sets the "template_name" field.
func (m *ColumnTemplateMutation) SetTemplateName(s string) {
	m.template_name = &s
}

// TemplateName returns the value of the "template_name" field in the mutation.
func (m *ColumnTemplateMutation) TemplateName() (r string, exists bool) {
	v := m.template_name
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplateName returns the old "template_name" field's value of the ColumnTemplate entity.
// If the ColumnTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ColumnTemplateMutation) OldTemplateName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplateName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplateName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplateName: %w", err)
	}
	return oldValue.TemplateName, nil
}

// ResetTemplateName resets all changes to the "template_name" field.
func (m *ColumnTemplateMutation) ResetTemplateName() {
	m.template_name = nil
}

// SetVersion sets the "version" field.
func (m *ColumnTemplateMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *ColumnTemplateMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the ColumnTemplate entity.
// If the ColumnTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ColumnTemplateMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *ColumnTemplateMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *ColumnTemplateMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *ColumnTemplateMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetColumnOrder sets the "column_order" field.
func (m *ColumnTemplateMutation) SetColumnOrder(s []string) {
	m.column_order = &s
	m.appendcolumn_order = nil
}

// ColumnOrder returns the value of the "column_order" field in the mutation.
func (m *ColumnTemplateMutation) ColumnOrder() (r []string, exists bool) {
	v := m.column_order
	if v == nil {
		return
	}
	return *v, true
}

// OldColumnOrder returns the old "column_order" field's value of the ColumnTemplate entity.
// If the ColumnTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ColumnTemplateMutation) OldColumnOrder(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColumnOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColumnOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColumnOrder: %w", err)
	}
	return oldValue.ColumnOrder, nil
}

// AppendColumnOrder adds s to the "column_order" field.
func (m *ColumnTemplateMutation) AppendColumnOrder(s []string) {
	m.appendcolumn_order = append(m.appendcolumn_order, s...)
}

// AppendedColumnOrder returns the list of values that were appended to the "column_order" field in this mutation.
func (m *ColumnTemplateMutation) AppendedColumnOrder() ([]string, bool) {
	if len(m.appendcolumn_order) == 0 {
		return nil, false
	}
	return m.appendcolumn_order, true
}

// ResetColumnOrder resets all changes to the "column_order" field.
func (m *ColumnTemplateMutation) ResetColumnOrder() {
	m.column_order = nil
	m.appendcolumn_order = nil
}

// SetColumnDefinitions sets the "column_definitions" field.
func (m *ColumnTemplateMutation) SetColumnDefinitions(jm json.RawMessage) {
	m.column_definitions = &jm
	m.appendcolumn_definitions = nil
}

// ColumnDefinitions returns the value of the "column_definitions" field in the mutation.
func (m *ColumnTemplateMutation) ColumnDefinitions() (r json.RawMessage, exists bool) {
	v := m.column_definitions
	if v == nil {
		return
	}
	return *v, true
}

// OldColumnDefinitions returns the old "column_definitions" field's value of the ColumnTemplate entity.
// If the ColumnTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ColumnTemplateMutation) OldColumnDefinitions(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColumnDefinitions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColumnDefinitions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColumnDefinitions: %w", err)
	}
	return oldValue.ColumnDefinitions, nil
}

// AppendColumnDefinitions adds jm to the "column_definitions" field.
func (m *ColumnTemplateMutation) AppendColumnDefinitions(jm json.RawMessage) {
	m.appendcolumn_definitions = append(m.appendcolumn_definitions, jm...)
}

// AppendedColumnDefinitions returns the list of values that were appended to the "column_definitions" field in this mutation.
func (m *ColumnTemplateMutation) AppendedColumnDefinitions() (json.RawMessage, bool) {
	if len(m.appendcolumn_definitions) == 0 {
		return nil, false
	}
	return m.appendcolumn_definitions, true
}

// ResetColumnDefinitions resets all changes to the "column_definitions" field.
func (m *ColumnTemplateMutation) ResetColumnDefinitions() {
	m.column_definitions = nil
	m.appendcolumn_definitions = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ColumnTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ColumnTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ColumnTemplate entity.
// If the ColumnTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ColumnTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ColumnTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ColumnTemplateMutation builder.
func (m *ColumnTemplateMutation) Where(ps ...predicate.ColumnTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ColumnTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ColumnTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ColumnTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ColumnTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ColumnTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ColumnTemplate).
func (m *ColumnTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ColumnTemplateMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.template_name != nil {
		fields = append(fields, columntemplate.FieldTemplateName)
	}
	if m.version != nil {
		fields = append(fields, columntemplate.FieldVersion)
	}
	if m.column_order != nil {
		fields = append(fields, columntemplate.FieldColumnOrder)
	}
	if m.column_definitions != nil {
		fields = append(fields, columntemplate.FieldColumnDefinitions)
	}
	if m.created_at != nil {
		fields = append(fields, columntemplate.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ColumnTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case columntemplate.FieldTemplateName:
		return m.TemplateName()
	case columntemplate.FieldVersion:
		return m.Version()
	case columntemplate.FieldColumnOrder:
		return m.ColumnOrder()
	case columntemplate.FieldColumnDefinitions:
		return m.ColumnDefinitions()
	case columntemplate.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ColumnTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case columntemplate.FieldTemplateName:
		return m.OldTemplateName(ctx)
	case columntemplate.FieldVersion:
		return m.OldVersion(ctx)
	case columntemplate.FieldColumnOrder:
		return m.OldColumnOrder(ctx)
	case columntemplate.FieldColumnDefinitions:
		return m.OldColumnDefinitions(ctx)
	case columntemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ColumnTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ColumnTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case columntemplate.FieldTemplateName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplateName(v)
		return nil
	case columntemplate.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case columntemplate.FieldColumnOrder:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColumnOrder(v)
		return nil
	case columntemplate.FieldColumnDefinitions:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColumnDefinitions(v)
		return nil
	case columntemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ColumnTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ColumnTemplateMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, columntemplate.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ColumnTemplateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case columntemplate.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ColumnTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case columntemplate.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown ColumnTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ColumnTemplateMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ColumnTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ColumnTemplateMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ColumnTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ColumnTemplateMutation) ResetField(name string) error {
	switch name {
	case columntemplate.FieldTemplateName:
		m.ResetTemplateName()
		return nil
	case columntemplate.FieldVersion:
		m.ResetVersion()
		return nil
	case columntemplate.FieldColumnOrder:
		m.ResetColumnOrder()
		return nil
	case columntemplate.FieldColumnDefinitions:
		m.ResetColumnDefinitions()
		return nil
	case columntemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ColumnTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ColumnTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ColumnTemplateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ColumnTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ColumnTemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ColumnTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ColumnTemplateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ColumnTemplateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ColumnTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ColumnTemplateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ColumnTemplate edge %s", name)
}

// MappingTemplateMutation represents an operation that mutates the MappingTemplate nodes in the graph.
type MappingTemplateMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	name          *string
	company_id    *uuid.UUID
	doc_type      *string
	item_type     *string
	is_default    *bool
	_config       *json.RawMessage
	append_config json.RawMessage
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*MappingTemplate, error)
	predicates    []predicate.MappingTemplate
}

var _ ent.Mutation = (*MappingTemplateMutation)(nil)

// mappingtemplateOption allows management of the mutation configuration using functional options.
type mappingtemplateOption func(*MappingTemplateMutation)

// newMappingTemplateMutation creates new mutation for the MappingTemplate entity.
func newMappingTemplateMutation(c config, op Op, opts ...mappingtemplateOption) *MappingTemplateMutation {
	m := &MappingTemplateMutation{
		config:        c,
		op:            op,
		typ:           TypeMappingTemplate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMappingTemplateID sets the ID field of the mutation.
func withMappingTemplateID(id uuid.UUID) mappingtemplateOption {
	return func(m *MappingTemplateMutation) {
		var (
			err   error
			once  sync.Once
			value *MappingTemplate
		)
		m.oldValue = func(ctx context.Context) (*MappingTemplate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MappingTemplate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMappingTemplate sets the old MappingTemplate of the mutation.
func withMappingTemplate(node *MappingTemplate) mappingtemplateOption {
	return func(m *MappingTemplateMutation) {
		m.oldValue = func(context.Context) (*MappingTemplate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MappingTemplateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MappingTemplateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MappingTemplate entities.
func (m *MappingTemplateMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MappingTemplateMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MappingTemplateMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MappingTemplate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *MappingTemplateMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *MappingTemplateMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the MappingTemplate entity.
// If the MappingTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingTemplateMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *MappingTemplateMutation) ResetName() {
	m.name = nil
}

// SetCompanyID sets the "company_id" field.
func (m *MappingTemplateMutation) SetCompanyID(u uuid.UUID) {
	m.company_id = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *MappingTemplateMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the MappingTemplate entity.
// If the MappingTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingTemplateMutation) OldCompanyID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ClearCompanyID clears the value of the "company_id" field.
func (m *MappingTemplateMutation) ClearCompanyID() {
	m.company_id = nil
	m.clearedFields[mappingtemplate.FieldCompanyID] = struct{}{}
}

// CompanyIDCleared returns if the "company_id" field was cleared in this mutation.
func (m *MappingTemplateMutation) CompanyIDCleared() bool {
	_, ok := m.clearedFields[mappingtemplate.FieldCompanyID]
	return ok
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *MappingTemplateMutation) ResetCompanyID() {
	m.company_id = nil
	delete(m.clearedFields, mappingtemplate.FieldCompanyID)
}

// SetDocType sets the "doc_type" field.
func (m *MappingTemplateMutation) SetDocType(s string) {
	m.doc_type = &s
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *MappingTemplateMutation) DocType() (r string, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the MappingTemplate entity.
// If the MappingTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingTemplateMutation) OldDocType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ClearDocType clears the value of the "doc_type" field.
func (m *MappingTemplateMutation) ClearDocType() {
	m.doc_type = nil
	m.clearedFields[mappingtemplate.FieldDocType] = struct{}{}
}

// DocTypeCleared returns if the "doc_type" field was cleared in this mutation.
func (m *MappingTemplateMutation) DocTypeCleared() bool {
	_, ok := m.clearedFields[mappingtemplate.FieldDocType]
	return ok
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *MappingTemplateMutation) ResetDocType() {
	m.doc_type = nil
	delete(m.clearedFields, mappingtemplate.FieldDocType)
}

// SetItemType sets the "item_type" field.
func (m *MappingTemplateMutation) SetItemType(s string) {
	m.item_type = &s
}

// ItemType returns the value of the "item_type" field in the mutation.
func (m *MappingTemplateMutation) ItemType() (r string, exists bool) {
	v := m.item_type
	if v == nil {
		return
	}
	return *v, true
}

// OldItemType returns the old "item_type" field's value of the MappingTemplate entity.
// If the MappingTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingTemplateMutation) OldItemType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemType: %w", err)
	}
	return oldValue.ItemType, nil
}

// ResetItemType resets all changes to the "item_type" field.
func (m *MappingTemplateMutation) ResetItemType() {
	m.item_type = nil
}

// SetIsDefault sets the "is_default" field.
func (m *MappingTemplateMutation) SetIsDefault(b bool) {
	m.is_default = &b
}

// IsDefault returns the value of the "is_default" field in the mutation.
func (m *MappingTemplateMutation) IsDefault() (r bool, exists bool) {
	v := m.is_default
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDefault returns the old "is_default" field's value of the MappingTemplate entity.
// If the MappingTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingTemplateMutation) OldIsDefault(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDefault is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDefault requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDefault: %w", err)
	}
	return oldValue.IsDefault, nil
}

// ResetIsDefault resets all changes to the "is_default" field.
func (m *MappingTemplateMutation) ResetIsDefault() {
	m.is_default = nil
}

// SetConfig sets the "config" field.
func (m *MappingTemplateMutation) SetConfig(jm json.RawMessage) {
	m._config = &jm
	m.append_config = nil
}

// Config returns the value of the "config" field in the mutation.
func (m *MappingTemplateMutation) Config() (r json.RawMessage, exists bool) {
	v := m._config
	if v == nil {
		return
	}
	return *v, true
}

// OldConfig returns the old "config" field's value of the MappingTemplate entity.
// If the MappingTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingTemplateMutation) OldConfig(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfig: %w", err)
	}
	return oldValue.Config, nil
}

// AppendConfig adds jm to the "config" field.
func (m *MappingTemplateMutation) AppendConfig(jm json.RawMessage) {
	m.append_config = append(m.append_config, jm...)
}

// AppendedConfig returns the list of values that were appended to the "config" field in this mutation.
func (m *MappingTemplateMutation) AppendedConfig() (json.RawMessage, bool) {
	if len(m.append_config) == 0 {
		return nil, false
	}
	return m.append_config, true
}

// ResetConfig resets all changes to the "config" field.
func (m *MappingTemplateMutation) ResetConfig() {
	m._config = nil
	m.append_config = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MappingTemplateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MappingTemplateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MappingTemplate entity.
// If the MappingTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingTemplateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MappingTemplateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MappingTemplateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MappingTemplateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MappingTemplate entity.
// If the MappingTemplate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MappingTemplateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MappingTemplateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the MappingTemplateMutation builder.
func (m *MappingTemplateMutation) Where(ps ...predicate.MappingTemplate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MappingTemplateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MappingTemplateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MappingTemplate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MappingTemplateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MappingTemplateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MappingTemplate).
func (m *MappingTemplateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MappingTemplateMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, mappingtemplate.FieldName)
	}
	if m.company_id != nil {
		fields = append(fields, mappingtemplate.FieldCompanyID)
	}
	if m.doc_type != nil {
		fields = append(fields, mappingtemplate.FieldDocType)
	}
	if m.item_type != nil {
		fields = append(fields, mappingtemplate.FieldItemType)
	}
	if m.is_default != nil {
		fields = append(fields, mappingtemplate.FieldIsDefault)
	}
	if m._config != nil {
		fields = append(fields, mappingtemplate.FieldConfig)
	}
	if m.created_at != nil {
		fields = append(fields, mappingtemplate.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, mappingtemplate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MappingTemplateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mappingtemplate.FieldName:
		return m.Name()
	case mappingtemplate.FieldCompanyID:
		return m.CompanyID()
	case mappingtemplate.FieldDocType:
		return m.DocType()
	case mappingtemplate.FieldItemType:
		return m.ItemType()
	case mappingtemplate.FieldIsDefault:
		return m.IsDefault()
	case mappingtemplate.FieldConfig:
		return m.Config()
	case mappingtemplate.FieldCreatedAt:
		return m.CreatedAt()
	case mappingtemplate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MappingTemplateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mappingtemplate.FieldName:
		return m.OldName(ctx)
	case mappingtemplate.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case mappingtemplate.FieldDocType:
		return m.OldDocType(ctx)
	case mappingtemplate.FieldItemType:
		return m.OldItemType(ctx)
	case mappingtemplate.FieldIsDefault:
		return m.OldIsDefault(ctx)
	case mappingtemplate.FieldConfig:
		return m.OldConfig(ctx)
	case mappingtemplate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case mappingtemplate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MappingTemplate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MappingTemplateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mappingtemplate.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case mappingtemplate.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case mappingtemplate.FieldDocType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case mappingtemplate.FieldItemType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemType(v)
		return nil
	case mappingtemplate.FieldIsDefault:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDefault(v)
		return nil
	case mappingtemplate.FieldConfig:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfig(v)
		return nil
	case mappingtemplate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case mappingtemplate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MappingTemplate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MappingTemplateMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MappingTemplateMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MappingTemplateMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MappingTemplate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MappingTemplateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mappingtemplate.FieldCompanyID) {
		fields = append(fields, mappingtemplate.FieldCompanyID)
	}
	if m.FieldCleared(mappingtemplate.FieldDocType) {
		fields = append(fields, mappingtemplate.FieldDocType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MappingTemplateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MappingTemplateMutation) ClearField(name string) error {
	switch name {
	case mappingtemplate.FieldCompanyID:
		m.ClearCompanyID()
		return nil
	case mappingtemplate.FieldDocType:
		m.ClearDocType()
		return nil
	}
	return fmt.Errorf("unknown MappingTemplate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MappingTemplateMutation) ResetField(name string) error {
	switch name {
	case mappingtemplate.FieldName:
		m.ResetName()
		return nil
	case mappingtemplate.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case mappingtemplate.FieldDocType:
		m.ResetDocType()
		return nil
	case mappingtemplate.FieldItemType:
		m.ResetItemType()
		return nil
	case mappingtemplate.FieldIsDefault:
		m.ResetIsDefault()
		return nil
	case mappingtemplate.FieldConfig:
		m.ResetConfig()
		return nil
	case mappingtemplate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case mappingtemplate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MappingTemplate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MappingTemplateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MappingTemplateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MappingTemplateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MappingTemplateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MappingTemplateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MappingTemplateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MappingTemplateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MappingTemplate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MappingTemplateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MappingTemplate edge %s", name)
}

// OrderMutation represents an operation that mutates the Order nodes in the graph.
type OrderMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	company_id           *uuid.UUID
	doc_type             *string
	status               *string
	completed_items      *int
	addcompleted_items   *int
	failed_items         *int
	addfailed_items      *int
	result_uris          *map[string]string
	mapping_config       *json.RawMessage
	appendmapping_config json.RawMessage
	error_message        *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	items                map[uuid.UUID]struct{}
	removeditems         map[uuid.UUID]struct{}
	cleareditems         bool
	done                 bool
	oldValue             func(context.Context) (*Order, error)
	predicates           []predicate.Order
}

var _ ent.Mutation = (*OrderMutation)(nil)

// orderOption allows management of the mutation configuration using functional options.
type orderOption func(*OrderMutation)

// newOrderMutation creates new mutation for the Order entity.
func newOrderMutation(c config, op Op, opts ...orderOption) *OrderMutation {
	m := &OrderMutation{
		config:        c,
		op:            op,
		typ:           TypeOrder,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderID sets the ID field of the mutation.
func withOrderID(id uuid.UUID) orderOption {
	return func(m *OrderMutation) {
		var (
			err   error
			once  sync.Once
			value *Order
		)
		m.oldValue = func(ctx context.Context) (*Order, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Order.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrder sets the old Order of the mutation.
func withOrder(node *Order) orderOption {
	return func(m *OrderMutation) {
		m.oldValue = func(context.Context) (*Order, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Order entities.
func (m *OrderMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Order.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *OrderMutation) SetCompanyID(u uuid.UUID) {
	m.company_id = &u
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *OrderMutation) CompanyID() (r uuid.UUID, exists bool) {
	v := m.company_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCompanyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *OrderMutation) ResetCompanyID() {
	m.company_id = nil
}

// SetDocType sets the "doc_type" field.
func (m *OrderMutation) SetDocType(s string) {
	m.doc_type = &s
}

// DocType returns the value of the "doc_type" field in the mutation.
func (m *OrderMutation) DocType() (r string, exists bool) {
	v := m.doc_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDocType returns the old "doc_type" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldDocType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocType: %w", err)
	}
	return oldValue.DocType, nil
}

// ResetDocType resets all changes to the "doc_type" field.
func (m *OrderMutation) ResetDocType() {
	m.doc_type = nil
}

// SetStatus sets the "status" field.
func (m *OrderMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *OrderMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *OrderMutation) ResetStatus() {
	m.status = nil
}

// SetCompletedItems sets the "completed_items" field.
func (m *OrderMutation) SetCompletedItems(i int) {
	m.completed_items = &i
	m.addcompleted_items = nil
}

// CompletedItems returns the value of the "completed_items" field in the mutation.
func (m *OrderMutation) CompletedItems() (r int, exists bool) {
	v := m.completed_items
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedItems returns the old "completed_items" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCompletedItems(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedItems: %w", err)
	}
	return oldValue.CompletedItems, nil
}

// AddCompletedItems adds i to the "completed_items" field.
func (m *OrderMutation) AddCompletedItems(i int) {
	if m.addcompleted_items != nil {
		*m.addcompleted_items += i
	} else {
		m.addcompleted_items = &i
	}
}

// AddedCompletedItems returns the value that was added to the "completed_items" field in this mutation.
func (m *OrderMutation) AddedCompletedItems() (r int, exists bool) {
	v := m.addcompleted_items
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedItems resets all changes to the "completed_items" field.
func (m *OrderMutation) ResetCompletedItems() {
	m.completed_items = nil
	m.addcompleted_items = nil
}

// SetFailedItems sets the "failed_items" field.
func (m *OrderMutation) SetFailedItems(i int) {
	m.failed_items = &i
	m.addfailed_items = nil
}

// FailedItems returns the value of the "failed_items" field in the mutation.
func (m *OrderMutation) FailedItems() (r int, exists bool) {
	v := m.failed_items
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedItems returns the old "failed_items" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldFailedItems(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedItems: %w", err)
	}
	return oldValue.FailedItems, nil
}

// AddFailedItems adds i to the "failed_items" field.
func (m *OrderMutation) AddFailedItems(i int) {
	if m.addfailed_items != nil {
		*m.addfailed_items += i
	} else {
		m.addfailed_items = &i
	}
}

// AddedFailedItems returns the value that was added to the "failed_items" field in this mutation.
func (m *OrderMutation) AddedFailedItems() (r int, exists bool) {
	v := m.addfailed_items
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedItems resets all changes to the "failed_items" field.
func (m *OrderMutation) ResetFailedItems() {
	m.failed_items = nil
	m.addfailed_items = nil
}

// SetResultUris sets the "result_uris" field.
func (m *OrderMutation) SetResultUris(value map[string]string) {
	m.result_uris = &value
}

// ResultUris returns the value of the "result_uris" field in the mutation.
func (m *OrderMutation) ResultUris() (r map[string]string, exists bool) {
	v := m.result_uris
	if v == nil {
		return
	}
	return *v, true
}

// OldResultUris returns the old "result_uris" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldResultUris(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultUris is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultUris requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultUris: %w", err)
	}
	return oldValue.ResultUris, nil
}

// ClearResultUris clears the value of the "result_uris" field.
func (m *OrderMutation) ClearResultUris() {
	m.result_uris = nil
	m.clearedFields[order.FieldResultUris] = struct{}{}
}

// ResultUrisCleared returns if the "result_uris" field was cleared in this mutation.
func (m *OrderMutation) ResultUrisCleared() bool {
	_, ok := m.clearedFields[order.FieldResultUris]
	return ok
}

// ResetResultUris resets all changes to the "result_uris" field.
func (m *OrderMutation) ResetResultUris() {
	m.result_uris = nil
	delete(m.clearedFields, order.FieldResultUris)
}

// SetMappingConfig sets the "mapping_config" field.
func (m *OrderMutation) SetMappingConfig(jm json.RawMessage) {
	m.mapping_config = &jm
	m.appendmapping_config = nil
}

// MappingConfig returns the value of the "mapping_config" field in the mutation.
func (m *OrderMutation) MappingConfig() (r json.RawMessage, exists bool) {
	v := m.mapping_config
	if v == nil {
		return
	}
	return *v, true
}

// OldMappingConfig returns the old "mapping_config" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldMappingConfig(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMappingConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMappingConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMappingConfig: %w", err)
	}
	return oldValue.MappingConfig, nil
}

// AppendMappingConfig adds jm to the "mapping_config" field.
func (m *OrderMutation) AppendMappingConfig(jm json.RawMessage) {
	m.appendmapping_config = append(m.appendmapping_config, jm...)
}

// AppendedMappingConfig returns the list of values that were appended to the "mapping_config" field in this mutation.
func (m *OrderMutation) AppendedMappingConfig() (json.RawMessage, bool) {
	if len(m.appendmapping_config) == 0 {
		return nil, false
	}
	return m.appendmapping_config, true
}

// ClearMappingConfig clears the value of the "mapping_config" field.
func (m *OrderMutation) ClearMappingConfig() {
	m.mapping_config = nil
	m.appendmapping_config = nil
	m.clearedFields[order.FieldMappingConfig] = struct{}{}
}

// MappingConfigCleared returns if the "mapping_config" field was cleared in this mutation.
func (m *OrderMutation) MappingConfigCleared() bool {
	_, ok := m.clearedFields[order.FieldMappingConfig]
	return ok
}

// ResetMappingConfig resets all changes to the "mapping_config" field.
func (m *OrderMutation) ResetMappingConfig() {
	m.mapping_config = nil
	m.appendmapping_config = nil
	delete(m.clearedFields, order.FieldMappingConfig)
}

// SetErrorMessage sets the "error_message" field.
func (m *OrderMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *OrderMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *OrderMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[order.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *OrderMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[order.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *OrderMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, order.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *OrderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *OrderMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *OrderMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Order entity.
// If the Order object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *OrderMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddItemIDs adds the "items" edge to the OrderItem entity by ids.
func (m *OrderMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the OrderItem entity.
func (m *OrderMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the OrderItem entity was cleared.
func (m *OrderMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the OrderItem entity by IDs.
func (m *OrderMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the OrderItem entity.
func (m *OrderMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *OrderMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *OrderMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the OrderMutation builder.
func (m *OrderMutation) Where(ps ...predicate.Order) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Order, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Order).
func (m *OrderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.company_id != nil {
		fields = append(fields, order.FieldCompanyID)
	}
	if m.doc_type != nil {
		fields = append(fields, order.FieldDocType)
	}
	if m.status != nil {
		fields = append(fields, order.FieldStatus)
	}
	if m.completed_items != nil {
		fields = append(fields, order.FieldCompletedItems)
	}
	if m.failed_items != nil {
		fields = append(fields, order.FieldFailedItems)
	}
	if m.result_uris != nil {
		fields = append(fields, order.FieldResultUris)
	}
	if m.mapping_config != nil {
		fields = append(fields, order.FieldMappingConfig)
	}
	if m.error_message != nil {
		fields = append(fields, order.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, order.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, order.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case order.FieldCompanyID:
		return m.CompanyID()
	case order.FieldDocType:
		return m.DocType()
	case order.FieldStatus:
		return m.Status()
	case order.FieldCompletedItems:
		return m.CompletedItems()
	case order.FieldFailedItems:
		return m.FailedItems()
	case order.FieldResultUris:
		return m.ResultUris()
	case order.FieldMappingConfig:
		return m.MappingConfig()
	case order.FieldErrorMessage:
		return m.ErrorMessage()
	case order.FieldCreatedAt:
		return m.CreatedAt()
	case order.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case order.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case order.FieldDocType:
		return m.OldDocType(ctx)
	case order.FieldStatus:
		return m.OldStatus(ctx)
	case order.FieldCompletedItems:
		return m.OldCompletedItems(ctx)
	case order.FieldFailedItems:
		return m.OldFailedItems(ctx)
	case order.FieldResultUris:
		return m.OldResultUris(ctx)
	case order.FieldMappingConfig:
		return m.OldMappingConfig(ctx)
	case order.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case order.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case order.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Order field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case order.FieldCompanyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case order.FieldDocType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocType(v)
		return nil
	case order.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case order.FieldCompletedItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedItems(v)
		return nil
	case order.FieldFailedItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedItems(v)
		return nil
	case order.FieldResultUris:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultUris(v)
		return nil
	case order.FieldMappingConfig:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMappingConfig(v)
		return nil
	case order.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case order.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case order.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Order field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderMutation) AddedFields() []string {
	var fields []string
	if m.addcompleted_items != nil {
		fields = append(fields, order.FieldCompletedItems)
	}
	if m.addfailed_items != nil {
		fields = append(fields, order.FieldFailedItems)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case order.FieldCompletedItems:
		return m.AddedCompletedItems()
	case order.FieldFailedItems:
		return m.AddedFailedItems()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderMutation) AddField(name string, value ent.Value) error {
	switch name {
	case order.FieldCompletedItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedItems(v)
		return nil
	case order.FieldFailedItems:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedItems(v)
		return nil
	}
	return fmt.Errorf("unknown Order numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(order.FieldResultUris) {
		fields = append(fields, order.FieldResultUris)
	}
	if m.FieldCleared(order.FieldMappingConfig) {
		fields = append(fields, order.FieldMappingConfig)
	}
	if m.FieldCleared(order.FieldErrorMessage) {
		fields = append(fields, order.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderMutation) ClearField(name string) error {
	switch name {
	case order.FieldResultUris:
		m.ClearResultUris()
		return nil
	case order.FieldMappingConfig:
		m.ClearMappingConfig()
		return nil
	case order.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown Order nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderMutation) ResetField(name string) error {
	switch name {
	case order.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case order.FieldDocType:
		m.ResetDocType()
		return nil
	case order.FieldStatus:
		m.ResetStatus()
		return nil
	case order.FieldCompletedItems:
		m.ResetCompletedItems()
		return nil
	case order.FieldFailedItems:
		m.ResetFailedItems()
		return nil
	case order.FieldResultUris:
		m.ResetResultUris()
		return nil
	case order.FieldMappingConfig:
		m.ResetMappingConfig()
		return nil
	case order.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case order.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case order.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Order field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.items != nil {
		edges = append(edges, order.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case order.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeditems != nil {
		edges = append(edges, order.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case order.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditems {
		edges = append(edges, order.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderMutation) EdgeCleared(name string) bool {
	switch name {
	case order.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Order unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderMutation) ResetEdge(name string) error {
	switch name {
	case order.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown Order edge %s", name)
}

// OrderFileMutation represents an operation that mutates the OrderFile nodes in the graph.
type OrderFileMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	filename      *string
	file_ext      *string
	uri           *string
	content_hash  *[]byte
	is_primary    *bool
	uploaded_at   *time.Time
	clearedFields map[string]struct{}
	item          *uuid.UUID
	cleareditem   bool
	done          bool
	oldValue      func(context.Context) (*OrderFile, error)
	predicates    []predicate.OrderFile
}

var _ ent.Mutation = (*OrderFileMutation)(nil)

// orderfileOption allows management of the mutation configuration using functional options.
type orderfileOption func(*OrderFileMutation)

// newOrderFileMutation creates new mutation for the OrderFile entity.
func newOrderFileMutation(c config, op Op, opts ...orderfileOption) *OrderFileMutation {
	m := &OrderFileMutation{
		config:        c,
		op:            op,
		typ:           TypeOrderFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderFileID sets the ID field of the mutation.
func withOrderFileID(id uuid.UUID) orderfileOption {
	return func(m *OrderFileMutation) {
		var (
			err   error
			once  sync.Once
			value *OrderFile
		)
		m.oldValue = func(ctx context.Context) (*OrderFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrderFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrderFile sets the old OrderFile of the mutation.
func withOrderFile(node *OrderFile) orderfileOption {
	return func(m *OrderFileMutation) {
		m.oldValue = func(context.Context) (*OrderFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrderFile entities.
func (m *OrderFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrderFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetItemID sets the "item_id" field.
func (m *OrderFileMutation) SetItemID(u uuid.UUID) {
	m.item = &u
}

// ItemID returns the value of the "item_id" field in the mutation.
func (m *OrderFileMutation) ItemID() (r uuid.UUID, exists bool) {
	v := m.item
	if v == nil {
		return
	}
	return *v, true
}

// OldItemID returns the old "item_id" field's value of the OrderFile entity.
// If the OrderFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderFileMutation) OldItemID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemID: %w", err)
	}
	return oldValue.ItemID, nil
}

// ResetItemID resets all changes to the "item_id" field.
func (m *OrderFileMutation) ResetItemID() {
	m.item = nil
}

// SetFilename sets the "filename" field.
func (m *OrderFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *OrderFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the OrderFile entity.
// If the OrderFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *OrderFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *OrderFileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *OrderFileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the OrderFile entity.
// If the OrderFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderFileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *OrderFileMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetURI sets the "uri" field.
func (m *OrderFileMutation) SetURI(s string) {
	m.uri = &s
}

// URI returns the value of the "uri" field in the mutation.
func (m *OrderFileMutation) URI() (r string, exists bool) {
	v := m.uri
	if v == nil {
		return
	}
	return *v, true
}

// OldURI returns the old "uri" field's value of the OrderFile entity.
// If the OrderFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderFileMutation) OldURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURI: %w", err)
	}
	return oldValue.URI, nil
}

// ResetURI resets all changes to the "uri" field.
func (m *OrderFileMutation) ResetURI() {
	m.uri = nil
}

// SetContentHash sets the "content_hash" field.
func (m *OrderFileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *OrderFileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the OrderFile entity.
// If the OrderFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderFileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *OrderFileMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetIsPrimary sets the "is_primary" field.
func (m *OrderFileMutation) SetIsPrimary(b bool) {
	m.is_primary = &b
}

// IsPrimary returns the value of the "is_primary" field in the mutation.
func (m *OrderFileMutation) IsPrimary() (r bool, exists bool) {
	v := m.is_primary
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPrimary returns the old "is_primary" field's value of the OrderFile entity.
// If the OrderFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderFileMutation) OldIsPrimary(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPrimary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPrimary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPrimary: %w", err)
	}
	return oldValue.IsPrimary, nil
}

// ResetIsPrimary resets all changes to the "is_primary" field.
func (m *OrderFileMutation) ResetIsPrimary() {
	m.is_primary = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *OrderFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *OrderFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the OrderFile entity.
// If the OrderFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *OrderFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// ClearItem clears the "item" edge to the OrderItem entity.
func (m *OrderFileMutation) ClearItem() {
	m.cleareditem = true
	m.clearedFields[orderfile.FieldItemID] = struct{}{}
}

// ItemCleared reports if the "item" edge to the OrderItem entity was cleared.
func (m *OrderFileMutation) ItemCleared() bool {
	return m.cleareditem
}

// ItemIDs returns the "item" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ItemID instead. It exists only for internal usage by the builders.
func (m *OrderFileMutation) ItemIDs() (ids []uuid.UUID) {
	if id := m.item; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetItem resets all changes to the "item" edge.
func (m *OrderFileMutation) ResetItem() {
	m.item = nil
	m.cleareditem = false
}

// Where appends a list predicates to the OrderFileMutation builder.
func (m *OrderFileMutation) Where(ps ...predicate.OrderFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrderFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrderFile).
func (m *OrderFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderFileMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.item != nil {
		fields = append(fields, orderfile.FieldItemID)
	}
	if m.filename != nil {
		fields = append(fields, orderfile.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, orderfile.FieldFileExt)
	}
	if m.uri != nil {
		fields = append(fields, orderfile.FieldURI)
	}
	if m.content_hash != nil {
		fields = append(fields, orderfile.FieldContentHash)
	}
	if m.is_primary != nil {
		fields = append(fields, orderfile.FieldIsPrimary)
	}
	if m.uploaded_at != nil {
		fields = append(fields, orderfile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orderfile.FieldItemID:
		return m.ItemID()
	case orderfile.FieldFilename:
		return m.Filename()
	case orderfile.FieldFileExt:
		return m.FileExt()
	case orderfile.FieldURI:
		return m.URI()
	case orderfile.FieldContentHash:
		return m.ContentHash()
	case orderfile.FieldIsPrimary:
		return m.IsPrimary()
	case orderfile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orderfile.FieldItemID:
		return m.OldItemID(ctx)
	case orderfile.FieldFilename:
		return m.OldFilename(ctx)
	case orderfile.FieldFileExt:
		return m.OldFileExt(ctx)
	case orderfile.FieldURI:
		return m.OldURI(ctx)
	case orderfile.FieldContentHash:
		return m.OldContentHash(ctx)
	case orderfile.FieldIsPrimary:
		return m.OldIsPrimary(ctx)
	case orderfile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OrderFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orderfile.FieldItemID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemID(v)
		return nil
	case orderfile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case orderfile.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case orderfile.FieldURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURI(v)
		return nil
	case orderfile.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case orderfile.FieldIsPrimary:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPrimary(v)
		return nil
	case orderfile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OrderFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderFileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderFileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OrderFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown OrderFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderFileMutation) ResetField(name string) error {
	switch name {
	case orderfile.FieldItemID:
		m.ResetItemID()
		return nil
	case orderfile.FieldFilename:
		m.ResetFilename()
		return nil
	case orderfile.FieldFileExt:
		m.ResetFileExt()
		return nil
	case orderfile.FieldURI:
		m.ResetURI()
		return nil
	case orderfile.FieldContentHash:
		m.ResetContentHash()
		return nil
	case orderfile.FieldIsPrimary:
		m.ResetIsPrimary()
		return nil
	case orderfile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown OrderFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.item != nil {
		edges = append(edges, orderfile.EdgeItem)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case orderfile.EdgeItem:
		if id := m.item; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderFileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditem {
		edges = append(edges, orderfile.EdgeItem)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderFileMutation) EdgeCleared(name string) bool {
	switch name {
	case orderfile.EdgeItem:
		return m.cleareditem
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderFileMutation) ClearEdge(name string) error {
	switch name {
	case orderfile.EdgeItem:
		m.ClearItem()
		return nil
	}
	return fmt.Errorf("unknown OrderFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderFileMutation) ResetEdge(name string) error {
	switch name {
	case orderfile.EdgeItem:
		m.ResetItem()
		return nil
	}
	return fmt.Errorf("unknown OrderFile edge %s", name)
}

// OrderItemMutation represents an operation that mutates the OrderItem nodes in the graph.
type OrderItemMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	item_type            *string
	status               *string
	mapping_config       *json.RawMessage
	appendmapping_config json.RawMessage
	config_provenance    *string
	extraction_uri       *string
	mapped_uri           *string
	error_message        *string
	started_at           *time.Time
	finished_at          *time.Time
	created_at           *time.Time
	clearedFields        map[string]struct{}
	_order               *uuid.UUID
	cleared_order        bool
	files                map[uuid.UUID]struct{}
	removedfiles         map[uuid.UUID]struct{}
	clearedfiles         bool
	done                 bool
	oldValue             func(context.Context) (*OrderItem, error)
	predicates           []predicate.OrderItem
}

var _ ent.Mutation = (*OrderItemMutation)(nil)

// orderitemOption allows management of the mutation configuration using functional options.
type orderitemOption func(*OrderItemMutation)

// newOrderItemMutation creates new mutation for the OrderItem entity.
func newOrderItemMutation(c config, op Op, opts ...orderitemOption) *OrderItemMutation {
	m := &OrderItemMutation{
		config:        c,
		op:            op,
		typ:           TypeOrderItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOrderItemID sets the ID field of the mutation.
func withOrderItemID(id uuid.UUID) orderitemOption {
	return func(m *OrderItemMutation) {
		var (
			err   error
			once  sync.Once
			value *OrderItem
		)
		m.oldValue = func(ctx context.Context) (*OrderItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OrderItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOrderItem sets the old OrderItem of the mutation.
func withOrderItem(node *OrderItem) orderitemOption {
	return func(m *OrderItemMutation) {
		m.oldValue = func(context.Context) (*OrderItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OrderItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OrderItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of OrderItem entities.
func (m *OrderItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OrderItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OrderItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OrderItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrderID sets the "order_id" field.
func (m *OrderItemMutation) SetOrderID(u uuid.UUID) {
	m._order = &u
}

// OrderID returns the value of the "order_id" field in the mutation.
func (m *OrderItemMutation) OrderID() (r uuid.UUID, exists bool) {
	v := m._order
	if v == nil {
		return
	}
	return *v, true
}

// OldOrderID returns the old "order_id" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldOrderID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrderID: %w", err)
	}
	return oldValue.OrderID, nil
}

// ResetOrderID resets all changes to the "order_id" field.
func (m *OrderItemMutation) ResetOrderID() {
	m._order = nil
}

// SetItemType sets the "item_type" field.
func (m *OrderItemMutation) SetItemType(s string) {
	m.item_type = &s
}

// ItemType returns the value of the "item_type" field in the mutation.
func (m *OrderItemMutation) ItemType() (r string, exists bool) {
	v := m.item_type
	if v == nil {
		return
	}
	return *v, true
}

// OldItemType returns the old "item_type" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldItemType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItemType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItemType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItemType: %w", err)
	}
	return oldValue.ItemType, nil
}

// ResetItemType resets all changes to the "item_type" field.
func (m *OrderItemMutation) ResetItemType() {
	m.item_type = nil
}

// SetStatus sets the "status" field.
func (m *OrderItemMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *OrderItemMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *OrderItemMutation) ResetStatus() {
	m.status = nil
}

// SetMappingConfig sets the "mapping_config" field.
func (m *OrderItemMutation) SetMappingConfig(jm json.RawMessage) {
	m.mapping_config = &jm
	m.appendmapping_config = nil
}

// MappingConfig returns the value of the "mapping_config" field in the mutation.
func (m *OrderItemMutation) MappingConfig() (r json.RawMessage, exists bool) {
	v := m.mapping_config
	if v == nil {
		return
	}
	return *v, true
}

// OldMappingConfig returns the old "mapping_config" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldMappingConfig(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMappingConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMappingConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMappingConfig: %w", err)
	}
	return oldValue.MappingConfig, nil
}

// AppendMappingConfig adds jm to the "mapping_config" field.
func (m *OrderItemMutation) AppendMappingConfig(jm json.RawMessage) {
	m.appendmapping_config = append(m.appendmapping_config, jm...)
}

// AppendedMappingConfig returns the list of values that were appended to the "mapping_config" field in this mutation.
func (m *OrderItemMutation) AppendedMappingConfig() (json.RawMessage, bool) {
	if len(m.appendmapping_config) == 0 {
		return nil, false
	}
	return m.appendmapping_config, true
}

// ClearMappingConfig clears the value of the "mapping_config" field.
func (m *OrderItemMutation) ClearMappingConfig() {
	m.mapping_config = nil
	m.appendmapping_config = nil
	m.clearedFields[orderitem.FieldMappingConfig] = struct{}{}
}

// MappingConfigCleared returns if the "mapping_config" field was cleared in this mutation.
func (m *OrderItemMutation) MappingConfigCleared() bool {
	_, ok := m.clearedFields[orderitem.FieldMappingConfig]
	return ok
}

// ResetMappingConfig resets all changes to the "mapping_config" field.
func (m *OrderItemMutation) ResetMappingConfig() {
	m.mapping_config = nil
	m.appendmapping_config = nil
	delete(m.clearedFields, orderitem.FieldMappingConfig)
}

// SetConfigProvenance sets the "config_provenance" field.
func (m *OrderItemMutation) SetConfigProvenance(s string) {
	m.config_provenance = &s
}

// ConfigProvenance returns the value of the "config_provenance" field in the mutation.
func (m *OrderItemMutation) ConfigProvenance() (r string, exists bool) {
	v := m.config_provenance
	if v == nil {
		return
	}
	return *v, true
}

// OldConfigProvenance returns the old "config_provenance" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldConfigProvenance(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfigProvenance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfigProvenance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfigProvenance: %w", err)
	}
	return oldValue.ConfigProvenance, nil
}

// ClearConfigProvenance clears the value of the "config_provenance" field.
func (m *OrderItemMutation) ClearConfigProvenance() {
	m.config_provenance = nil
	m.clearedFields[orderitem.FieldConfigProvenance] = struct{}{}
}

// ConfigProvenanceCleared returns if the "config_provenance" field was cleared in this mutation.
func (m *OrderItemMutation) ConfigProvenanceCleared() bool {
	_, ok := m.clearedFields[orderitem.FieldConfigProvenance]
	return ok
}

// ResetConfigProvenance resets all changes to the "config_provenance" field.
func (m *OrderItemMutation) ResetConfigProvenance() {
	m.config_provenance = nil
	delete(m.clearedFields, orderitem.FieldConfigProvenance)
}

// SetExtractionURI sets the "extraction_uri" field.
func (m *OrderItemMutation) SetExtractionURI(s string) {
	m.extraction_uri = &s
}

// ExtractionURI returns the value of the "extraction_uri" field in the mutation.
func (m *OrderItemMutation) ExtractionURI() (r string, exists bool) {
	v := m.extraction_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionURI returns the old "extraction_uri" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldExtractionURI(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionURI: %w", err)
	}
	return oldValue.ExtractionURI, nil
}

// ClearExtractionURI clears the value of the "extraction_uri" field.
func (m *OrderItemMutation) ClearExtractionURI() {
	m.extraction_uri = nil
	m.clearedFields[orderitem.FieldExtractionURI] = struct{}{}
}

// ExtractionURICleared returns if the "extraction_uri" field was cleared in this mutation.
func (m *OrderItemMutation) ExtractionURICleared() bool {
	_, ok := m.clearedFields[orderitem.FieldExtractionURI]
	return ok
}

// ResetExtractionURI resets all changes to the "extraction_uri" field.
func (m *OrderItemMutation) ResetExtractionURI() {
	m.extraction_uri = nil
	delete(m.clearedFields, orderitem.FieldExtractionURI)
}

// SetMappedURI sets the "mapped_uri" field.
func (m *OrderItemMutation) SetMappedURI(s string) {
	m.mapped_uri = &s
}

// MappedURI returns the value of the "mapped_uri" field in the mutation.
func (m *OrderItemMutation) MappedURI() (r string, exists bool) {
	v := m.mapped_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldMappedURI returns the old "mapped_uri" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldMappedURI(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMappedURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMappedURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMappedURI: %w", err)
	}
	return oldValue.MappedURI, nil
}

// ClearMappedURI clears the value of the "mapped_uri" field.
func (m *OrderItemMutation) ClearMappedURI() {
	m.mapped_uri = nil
	m.clearedFields[orderitem.FieldMappedURI] = struct{}{}
}

// MappedURICleared returns if the "mapped_uri" field was cleared in this mutation.
func (m *OrderItemMutation) MappedURICleared() bool {
	_, ok := m.clearedFields[orderitem.FieldMappedURI]
	return ok
}

// ResetMappedURI resets all changes to the "mapped_uri" field.
func (m *OrderItemMutation) ResetMappedURI() {
	m.mapped_uri = nil
	delete(m.clearedFields, orderitem.FieldMappedURI)
}

// SetErrorMessage sets the "error_message" field.
func (m *OrderItemMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *OrderItemMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *OrderItemMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[orderitem.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *OrderItemMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[orderitem.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *OrderItemMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, orderitem.FieldErrorMessage)
}

// SetStartedAt sets the "started_at" field.
func (m *OrderItemMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *OrderItemMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *OrderItemMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[orderitem.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *OrderItemMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[orderitem.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *OrderItemMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, orderitem.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *OrderItemMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *OrderItemMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *OrderItemMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[orderitem.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *OrderItemMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[orderitem.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *OrderItemMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, orderitem.FieldFinishedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *OrderItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OrderItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OrderItem entity.
// If the OrderItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OrderItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OrderItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearOrder clears the "order" edge to the Order entity.
func (m *OrderItemMutation) ClearOrder() {
	m.cleared_order = true
	m.clearedFields[orderitem.FieldOrderID] = struct{}{}
}

// OrderCleared reports if the "order" edge to the Order entity was cleared.
func (m *OrderItemMutation) OrderCleared() bool {
	return m.cleared_order
}

// OrderIDs returns the "order" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OrderID instead. It exists only for internal usage by the builders.
func (m *OrderItemMutation) OrderIDs() (ids []uuid.UUID) {
	if id := m._order; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOrder resets all changes to the "order" edge.
func (m *OrderItemMutation) ResetOrder() {
	m._order = nil
	m.cleared_order = false
}

// AddFileIDs adds the "files" edge to the OrderFile entity by ids.
func (m *OrderItemMutation) AddFileIDs(ids ...uuid.UUID) {
	if m.files == nil {
		m.files = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.files[ids[i]] = struct{}{}
	}
}

// ClearFiles clears the "files" edge to the OrderFile entity.
func (m *OrderItemMutation) ClearFiles() {
	m.clearedfiles = true
}

// FilesCleared reports if the "files" edge to the OrderFile entity was cleared.
func (m *OrderItemMutation) FilesCleared() bool {
	return m.clearedfiles
}

// RemoveFileIDs removes the "files" edge to the OrderFile entity by IDs.
func (m *OrderItemMutation) RemoveFileIDs(ids ...uuid.UUID) {
	if m.removedfiles == nil {
		m.removedfiles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.files, ids[i])
		m.removedfiles[ids[i]] = struct{}{}
	}
}

// RemovedFiles returns the removed IDs of the "files" edge to the OrderFile entity.
func (m *OrderItemMutation) RemovedFilesIDs() (ids []uuid.UUID) {
	for id := range m.removedfiles {
		ids = append(ids, id)
	}
	return
}

// FilesIDs returns the "files" edge IDs in the mutation.
func (m *OrderItemMutation) FilesIDs() (ids []uuid.UUID) {
	for id := range m.files {
		ids = append(ids, id)
	}
	return
}

// ResetFiles resets all changes to the "files" edge.
func (m *OrderItemMutation) ResetFiles() {
	m.files = nil
	m.clearedfiles = false
	m.removedfiles = nil
}

// Where appends a list predicates to the OrderItemMutation builder.
func (m *OrderItemMutation) Where(ps ...predicate.OrderItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OrderItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OrderItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OrderItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OrderItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OrderItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OrderItem).
func (m *OrderItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OrderItemMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m._order != nil {
		fields = append(fields, orderitem.FieldOrderID)
	}
	if m.item_type != nil {
		fields = append(fields, orderitem.FieldItemType)
	}
	if m.status != nil {
		fields = append(fields, orderitem.FieldStatus)
	}
	if m.mapping_config != nil {
		fields = append(fields, orderitem.FieldMappingConfig)
	}
	if m.config_provenance != nil {
		fields = append(fields, orderitem.FieldConfigProvenance)
	}
	if m.extraction_uri != nil {
		fields = append(fields, orderitem.FieldExtractionURI)
	}
	if m.mapped_uri != nil {
		fields = append(fields, orderitem.FieldMappedURI)
	}
	if m.error_message != nil {
		fields = append(fields, orderitem.FieldErrorMessage)
	}
	if m.started_at != nil {
		fields = append(fields, orderitem.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, orderitem.FieldFinishedAt)
	}
	if m.created_at != nil {
		fields = append(fields, orderitem.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OrderItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case orderitem.FieldOrderID:
		return m.OrderID()
	case orderitem.FieldItemType:
		return m.ItemType()
	case orderitem.FieldStatus:
		return m.Status()
	case orderitem.FieldMappingConfig:
		return m.MappingConfig()
	case orderitem.FieldConfigProvenance:
		return m.ConfigProvenance()
	case orderitem.FieldExtractionURI:
		return m.ExtractionURI()
	case orderitem.FieldMappedURI:
		return m.MappedURI()
	case orderitem.FieldErrorMessage:
		return m.ErrorMessage()
	case orderitem.FieldStartedAt:
		return m.StartedAt()
	case orderitem.FieldFinishedAt:
		return m.FinishedAt()
	case orderitem.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OrderItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case orderitem.FieldOrderID:
		return m.OldOrderID(ctx)
	case orderitem.FieldItemType:
		return m.OldItemType(ctx)
	case orderitem.FieldStatus:
		return m.OldStatus(ctx)
	case orderitem.FieldMappingConfig:
		return m.OldMappingConfig(ctx)
	case orderitem.FieldConfigProvenance:
		return m.OldConfigProvenance(ctx)
	case orderitem.FieldExtractionURI:
		return m.OldExtractionURI(ctx)
	case orderitem.FieldMappedURI:
		return m.OldMappedURI(ctx)
	case orderitem.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case orderitem.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case orderitem.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case orderitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OrderItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case orderitem.FieldOrderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrderID(v)
		return nil
	case orderitem.FieldItemType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItemType(v)
		return nil
	case orderitem.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case orderitem.FieldMappingConfig:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMappingConfig(v)
		return nil
	case orderitem.FieldConfigProvenance:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfigProvenance(v)
		return nil
	case orderitem.FieldExtractionURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionURI(v)
		return nil
	case orderitem.FieldMappedURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMappedURI(v)
		return nil
	case orderitem.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case orderitem.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case orderitem.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case orderitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OrderItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OrderItemMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OrderItemMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OrderItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OrderItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OrderItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(orderitem.FieldMappingConfig) {
		fields = append(fields, orderitem.FieldMappingConfig)
	}
	if m.FieldCleared(orderitem.FieldConfigProvenance) {
		fields = append(fields, orderitem.FieldConfigProvenance)
	}
	if m.FieldCleared(orderitem.FieldExtractionURI) {
		fields = append(fields, orderitem.FieldExtractionURI)
	}
	if m.FieldCleared(orderitem.FieldMappedURI) {
		fields = append(fields, orderitem.FieldMappedURI)
	}
	if m.FieldCleared(orderitem.FieldErrorMessage) {
		fields = append(fields, orderitem.FieldErrorMessage)
	}
	if m.FieldCleared(orderitem.FieldStartedAt) {
		fields = append(fields, orderitem.FieldStartedAt)
	}
	if m.FieldCleared(orderitem.FieldFinishedAt) {
		fields = append(fields, orderitem.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OrderItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OrderItemMutation) ClearField(name string) error {
	switch name {
	case orderitem.FieldMappingConfig:
		m.ClearMappingConfig()
		return nil
	case orderitem.FieldConfigProvenance:
		m.ClearConfigProvenance()
		return nil
	case orderitem.FieldExtractionURI:
		m.ClearExtractionURI()
		return nil
	case orderitem.FieldMappedURI:
		m.ClearMappedURI()
		return nil
	case orderitem.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case orderitem.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case orderitem.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown OrderItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OrderItemMutation) ResetField(name string) error {
	switch name {
	case orderitem.FieldOrderID:
		m.ResetOrderID()
		return nil
	case orderitem.FieldItemType:
		m.ResetItemType()
		return nil
	case orderitem.FieldStatus:
		m.ResetStatus()
		return nil
	case orderitem.FieldMappingConfig:
		m.ResetMappingConfig()
		return nil
	case orderitem.FieldConfigProvenance:
		m.ResetConfigProvenance()
		return nil
	case orderitem.FieldExtractionURI:
		m.ResetExtractionURI()
		return nil
	case orderitem.FieldMappedURI:
		m.ResetMappedURI()
		return nil
	case orderitem.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case orderitem.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case orderitem.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case orderitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown OrderItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OrderItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m._order != nil {
		edges = append(edges, orderitem.EdgeOrder)
	}
	if m.files != nil {
		edges = append(edges, orderitem.EdgeFiles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OrderItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case orderitem.EdgeOrder:
		if id := m._order; id != nil {
			return []ent.Value{*id}
		}
	case orderitem.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.files))
		for id := range m.files {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OrderItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedfiles != nil {
		edges = append(edges, orderitem.EdgeFiles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OrderItemMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case orderitem.EdgeFiles:
		ids := make([]ent.Value, 0, len(m.removedfiles))
		for id := range m.removedfiles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OrderItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleared_order {
		edges = append(edges, orderitem.EdgeOrder)
	}
	if m.clearedfiles {
		edges = append(edges, orderitem.EdgeFiles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OrderItemMutation) EdgeCleared(name string) bool {
	switch name {
	case orderitem.EdgeOrder:
		return m.cleared_order
	case orderitem.EdgeFiles:
		return m.clearedfiles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OrderItemMutation) ClearEdge(name string) error {
	switch name {
	case orderitem.EdgeOrder:
		m.ClearOrder()
		return nil
	}
	return fmt.Errorf("unknown OrderItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OrderItemMutation) ResetEdge(name string) error {
	switch name {
	case orderitem.EdgeOrder:
		m.ResetOrder()
		return nil
	case orderitem.EdgeFiles:
		m.ResetFiles()
		return nil
	}
	return fmt.Errorf("unknown OrderItem edge %s", name)
}
