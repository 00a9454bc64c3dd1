// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/order-mapper/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/joseph-ayodele/order-mapper/gen/ent/columntemplate"
	"github.com/joseph-ayodele/order-mapper/gen/ent/mappingtemplate"
	"github.com/joseph-ayodele/order-mapper/gen/ent/order"
	"github.com/joseph-ayodele/order-mapper/gen/ent/orderfile"
	"github.com/joseph-ayodele/order-mapper/gen/ent/orderitem"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ColumnTemplate is the client for interacting with the ColumnTemplate builders.
	ColumnTemplate *ColumnTemplateClient
	// MappingTemplate is the client for interacting with the MappingTemplate builders.
	MappingTemplate *MappingTemplateClient
	// Order is the client for interacting with the Order builders.
	Order *OrderClient
	// OrderFile is the client for interacting with the OrderFile builders.
	OrderFile *OrderFileClient
	// OrderItem is the client for interacting with the OrderItem builders.
	OrderItem *OrderItemClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ColumnTemplate = NewColumnTemplateClient(c.config)
	c.MappingTemplate = NewMappingTemplateClient(c.config)
	c.Order = NewOrderClient(c.config)
	c.OrderFile = NewOrderFileClient(c.config)
	c.OrderItem = NewOrderItemClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		ColumnTemplate:  NewColumnTemplateClient(cfg),
		MappingTemplate: NewMappingTemplateClient(cfg),
		Order:           NewOrderClient(cfg),
		OrderFile:       NewOrderFileClient(cfg),
		OrderItem:       NewOrderItemClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		ColumnTemplate:  NewColumnTemplateClient(cfg),
		MappingTemplate: NewMappingTemplateClient(cfg),
		Order:           NewOrderClient(cfg),
		OrderFile:       NewOrderFileClient(cfg),
		OrderItem:       NewOrderItemClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ColumnTemplate.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.ColumnTemplate.Use(hooks...)
	c.MappingTemplate.Use(hooks...)
	c.Order.Use(hooks...)
	c.OrderFile.Use(hooks...)
	c.OrderItem.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ColumnTemplate.Intercept(interceptors...)
	c.MappingTemplate.Intercept(interceptors...)
	c.Order.Intercept(interceptors...)
	c.OrderFile.Intercept(interceptors...)
	c.OrderItem.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ColumnTemplateMutation:
		return c.ColumnTemplate.mutate(ctx, m)
	case *MappingTemplateMutation:
		return c.MappingTemplate.mutate(ctx, m)
	case *OrderMutation:
		return c.Order.mutate(ctx, m)
	case *OrderFileMutation:
		return c.OrderFile.mutate(ctx, m)
	case *OrderItemMutation:
		return c.OrderItem.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ColumnTemplateClient is a client for the ColumnTemplate schema.
type ColumnTemplateClient struct {
	config
}

// NewColumnTemplateClient returns a client for the ColumnTemplate from the given config.
func NewColumnTemplateClient(c config) *ColumnTemplateClient {
	return &ColumnTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `columntemplate.Hooks(f(g(h())))`.
func (c *ColumnTemplateClient) Use(hooks ...Hook) {
	c.hooks.ColumnTemplate = append(c.hooks.ColumnTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `columntemplate.Intercept(f(g(h())))`.
func (c *ColumnTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.ColumnTemplate = append(c.inters.ColumnTemplate, interceptors...)
}

// Create returns a builder for creating a ColumnTemplate entity.
func (c *ColumnTemplateClient) Create() *ColumnTemplateCreate {
	mutation := newColumnTemplateMutation(c.config, OpCreate)
	return &ColumnTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ColumnTemplate entities.
func (c *ColumnTemplateClient) CreateBulk(builders ...*ColumnTemplateCreate) *ColumnTemplateCreateBulk {
	return &ColumnTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ColumnTemplateClient) MapCreateBulk(slice any, setFunc func(*ColumnTemplateCreate, int)) *ColumnTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ColumnTemplateCreateBulk{err: fmt.Errorf("calling to ColumnTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ColumnTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ColumnTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ColumnTemplate.
func (c *ColumnTemplateClient) Update() *ColumnTemplateUpdate {
	mutation := newColumnTemplateMutation(c.config, OpUpdate)
	return &ColumnTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ColumnTemplateClient) UpdateOne(_m *ColumnTemplate) *ColumnTemplateUpdateOne {
	mutation := newColumnTemplateMutation(c.config, OpUpdateOne, withColumnTemplate(_m))
	return &ColumnTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ColumnTemplateClient) UpdateOneID(id uuid.UUID) *ColumnTemplateUpdateOne {
	mutation := newColumnTemplateMutation(c.config, OpUpdateOne, withColumnTemplateID(id))
	return &ColumnTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ColumnTemplate.
func (c *ColumnTemplateClient) Delete() *ColumnTemplateDelete {
	mutation := newColumnTemplateMutation(c.config, OpDelete)
	return &ColumnTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ColumnTemplateClient) DeleteOne(_m *ColumnTemplate) *ColumnTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ColumnTemplateClient) DeleteOneID(id uuid.UUID) *ColumnTemplateDeleteOne {
	builder := c.Delete().Where(columntemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ColumnTemplateDeleteOne{builder}
}

// Query returns a query builder for ColumnTemplate.
func (c *ColumnTemplateClient) Query() *ColumnTemplateQuery {
	return &ColumnTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeColumnTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a ColumnTemplate entity by its id.
func (c *ColumnTemplateClient) Get(ctx context.Context, id uuid.UUID) (*ColumnTemplate, error) {
	return c.Query().Where(columntemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ColumnTemplateClient) GetX(ctx context.Context, id uuid.UUID) *ColumnTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ColumnTemplateClient) Hooks() []Hook {
	return c.hooks.ColumnTemplate
}

// Interceptors returns the client interceptors.
func (c *ColumnTemplateClient) Interceptors() []Interceptor {
	return c.inters.ColumnTemplate
}

func (c *ColumnTemplateClient) mutate(ctx context.Context, m *ColumnTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ColumnTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ColumnTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ColumnTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ColumnTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ColumnTemplate mutation op: %q", m.Op())
	}
}

// MappingTemplateClient is a client for the MappingTemplate schema.
type MappingTemplateClient struct {
	config
}

// NewMappingTemplateClient returns a client for the MappingTemplate from the given config.
func NewMappingTemplateClient(c config) *MappingTemplateClient {
	return &MappingTemplateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mappingtemplate.Hooks(f(g(h())))`.
func (c *MappingTemplateClient) Use(hooks ...Hook) {
	c.hooks.MappingTemplate = append(c.hooks.MappingTemplate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mappingtemplate.Intercept(f(g(h())))`.
func (c *MappingTemplateClient) Intercept(interceptors ...Interceptor) {
	c.inters.MappingTemplate = append(c.inters.MappingTemplate, interceptors...)
}

// Create returns a builder for creating a MappingTemplate entity.
func (c *MappingTemplateClient) Create() *MappingTemplateCreate {
	mutation := newMappingTemplateMutation(c.config, OpCreate)
	return &MappingTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MappingTemplate entities.
func (c *MappingTemplateClient) CreateBulk(builders ...*MappingTemplateCreate) *MappingTemplateCreateBulk {
	return &MappingTemplateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MappingTemplateClient) MapCreateBulk(slice any, setFunc func(*MappingTemplateCreate, int)) *MappingTemplateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MappingTemplateCreateBulk{err: fmt.Errorf("calling to MappingTemplateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MappingTemplateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MappingTemplateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MappingTemplate.
func (c *MappingTemplateClient) Update() *MappingTemplateUpdate {
	mutation := newMappingTemplateMutation(c.config, OpUpdate)
	return &MappingTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MappingTemplateClient) UpdateOne(_m *MappingTemplate) *MappingTemplateUpdateOne {
	mutation := newMappingTemplateMutation(c.config, OpUpdateOne, withMappingTemplate(_m))
	return &MappingTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MappingTemplateClient) UpdateOneID(id uuid.UUID) *MappingTemplateUpdateOne {
	mutation := newMappingTemplateMutation(c.config, OpUpdateOne, withMappingTemplateID(id))
	return &MappingTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MappingTemplate.
func (c *MappingTemplateClient) Delete() *MappingTemplateDelete {
	mutation := newMappingTemplateMutation(c.config, OpDelete)
	return &MappingTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MappingTemplateClient) DeleteOne(_m *MappingTemplate) *MappingTemplateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MappingTemplateClient) DeleteOneID(id uuid.UUID) *MappingTemplateDeleteOne {
	builder := c.Delete().Where(mappingtemplate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MappingTemplateDeleteOne{builder}
}

// Query returns a query builder for MappingTemplate.
func (c *MappingTemplateClient) Query() *MappingTemplateQuery {
	return &MappingTemplateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMappingTemplate},
		inters: c.Interceptors(),
	}
}

// Get returns a MappingTemplate entity by its id.
func (c *MappingTemplateClient) Get(ctx context.Context, id uuid.UUID) (*MappingTemplate, error) {
	return c.Query().Where(mappingtemplate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MappingTemplateClient) GetX(ctx context.Context, id uuid.UUID) *MappingTemplate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MappingTemplateClient) Hooks() []Hook {
	return c.hooks.MappingTemplate
}

// Interceptors returns the client interceptors.
func (c *MappingTemplateClient) Interceptors() []Interceptor {
	return c.inters.MappingTemplate
}

func (c *MappingTemplateClient) mutate(ctx context.Context, m *MappingTemplateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MappingTemplateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MappingTemplateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MappingTemplateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MappingTemplateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MappingTemplate mutation op: %q", m.Op())
	}
}

// OrderClient is a client for the Order schema.
type OrderClient struct {
	config
}

// NewOrderClient returns a client for the Order from the given config.
func NewOrderClient(c config) *OrderClient {
	return &OrderClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `order.Hooks(f(g(h())))`.
func (c *OrderClient) Use(hooks ...Hook) {
	c.hooks.Order = append(c.hooks.Order, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `order.Intercept(f(g(h())))`.
func (c *OrderClient) Intercept(interceptors ...Interceptor) {
	c.inters.Order = append(c.inters.Order, interceptors...)
}

// Create returns a builder for creating a Order entity.
func (c *OrderClient) Create() *OrderCreate {
	mutation := newOrderMutation(c.config, OpCreate)
	return &OrderCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Order entities.
func (c *OrderClient) CreateBulk(builders ...*OrderCreate) *OrderCreateBulk {
	return &OrderCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderClient) MapCreateBulk(slice any, setFunc func(*OrderCreate, int)) *OrderCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderCreateBulk{err: fmt.Errorf("calling to OrderClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Order.
func (c *OrderClient) Update() *OrderUpdate {
	mutation := newOrderMutation(c.config, OpUpdate)
	return &OrderUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderClient) UpdateOne(_m *Order) *OrderUpdateOne {
	mutation := newOrderMutation(c.config, OpUpdateOne, withOrder(_m))
	return &OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderClient) UpdateOneID(id uuid.UUID) *OrderUpdateOne {
	mutation := newOrderMutation(c.config, OpUpdateOne, withOrderID(id))
	return &OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Order.
func (c *OrderClient) Delete() *OrderDelete {
	mutation := newOrderMutation(c.config, OpDelete)
	return &OrderDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderClient) DeleteOne(_m *Order) *OrderDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderClient) DeleteOneID(id uuid.UUID) *OrderDeleteOne {
	builder := c.Delete().Where(order.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderDeleteOne{builder}
}

// Query returns a query builder for Order.
func (c *OrderClient) Query() *OrderQuery {
	return &OrderQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrder},
		inters: c.Interceptors(),
	}
}

// Get returns a Order entity by its id.
func (c *OrderClient) Get(ctx context.Context, id uuid.UUID) (*Order, error) {
	return c.Query().Where(order.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderClient) GetX(ctx context.Context, id uuid.UUID) *Order {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryItems queries the items edge of a Order.
func (c *OrderClient) QueryItems(_m *Order) *OrderItemQuery {
	query := (&OrderItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(order.Table, order.FieldID, id),
			sqlgraph.To(orderitem.Table, orderitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, order.ItemsTable, order.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrderClient) Hooks() []Hook {
	return c.hooks.Order
}

// Interceptors returns the client interceptors.
func (c *OrderClient) Interceptors() []Interceptor {
	return c.inters.Order
}

func (c *OrderClient) mutate(ctx context.Context, m *OrderMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Order mutation op: %q", m.Op())
	}
}

// OrderFileClient is a client for the OrderFile schema.
type OrderFileClient struct {
	config
}

// NewOrderFileClient returns a client for the OrderFile from the given config.
func NewOrderFileClient(c config) *OrderFileClient {
	return &OrderFileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orderfile.Hooks(f(g(h())))`.
func (c *OrderFileClient) Use(hooks ...Hook) {
	c.hooks.OrderFile = append(c.hooks.OrderFile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orderfile.Intercept(f(g(h())))`.
func (c *OrderFileClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrderFile = append(c.inters.OrderFile, interceptors...)
}

// Create returns a builder for creating a OrderFile entity.
func (c *OrderFileClient) Create() *OrderFileCreate {
	mutation := newOrderFileMutation(c.config, OpCreate)
	return &OrderFileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrderFile entities.
func (c *OrderFileClient) CreateBulk(builders ...*OrderFileCreate) *OrderFileCreateBulk {
	return &OrderFileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderFileClient) MapCreateBulk(slice any, setFunc func(*OrderFileCreate, int)) *OrderFileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderFileCreateBulk{err: fmt.Errorf("calling to OrderFileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderFileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderFileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrderFile.
func (c *OrderFileClient) Update() *OrderFileUpdate {
	mutation := newOrderFileMutation(c.config, OpUpdate)
	return &OrderFileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderFileClient) UpdateOne(_m *OrderFile) *OrderFileUpdateOne {
	mutation := newOrderFileMutation(c.config, OpUpdateOne, withOrderFile(_m))
	return &OrderFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderFileClient) UpdateOneID(id uuid.UUID) *OrderFileUpdateOne {
	mutation := newOrderFileMutation(c.config, OpUpdateOne, withOrderFileID(id))
	return &OrderFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrderFile.
func (c *OrderFileClient) Delete() *OrderFileDelete {
	mutation := newOrderFileMutation(c.config, OpDelete)
	return &OrderFileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderFileClient) DeleteOne(_m *OrderFile) *OrderFileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderFileClient) DeleteOneID(id uuid.UUID) *OrderFileDeleteOne {
	builder := c.Delete().Where(orderfile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderFileDeleteOne{builder}
}

// Query returns a query builder for OrderFile.
func (c *OrderFileClient) Query() *OrderFileQuery {
	return &OrderFileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrderFile},
		inters: c.Interceptors(),
	}
}

// Get returns a OrderFile entity by its id.
func (c *OrderFileClient) Get(ctx context.Context, id uuid.UUID) (*OrderFile, error) {
	return c.Query().Where(orderfile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderFileClient) GetX(ctx context.Context, id uuid.UUID) *OrderFile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryItem queries the item edge of a OrderFile.
func (c *OrderFileClient) QueryItem(_m *OrderFile) *OrderItemQuery {
	query := (&OrderItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(orderfile.Table, orderfile.FieldID, id),
			sqlgraph.To(orderitem.Table, orderitem.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, orderfile.ItemTable, orderfile.ItemColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrderFileClient) Hooks() []Hook {
	return c.hooks.OrderFile
}

// Interceptors returns the client interceptors.
func (c *OrderFileClient) Interceptors() []Interceptor {
	return c.inters.OrderFile
}

func (c *OrderFileClient) mutate(ctx context.Context, m *OrderFileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderFileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderFileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderFileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderFileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrderFile mutation op: %q", m.Op())
	}
}

// OrderItemClient is a client for the OrderItem schema.
type OrderItemClient struct {
	config
}

// NewOrderItemClient returns a client for the OrderItem from the given config.
func NewOrderItemClient(c config) *OrderItemClient {
	return &OrderItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `orderitem.Hooks(f(g(h())))`.
func (c *OrderItemClient) Use(hooks ...Hook) {
	c.hooks.OrderItem = append(c.hooks.OrderItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `orderitem.Intercept(f(g(h())))`.
func (c *OrderItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.OrderItem = append(c.inters.OrderItem, interceptors...)
}

// Create returns a builder for creating a OrderItem entity.
func (c *OrderItemClient) Create() *OrderItemCreate {
	mutation := newOrderItemMutation(c.config, OpCreate)
	return &OrderItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OrderItem entities.
func (c *OrderItemClient) CreateBulk(builders ...*OrderItemCreate) *OrderItemCreateBulk {
	return &OrderItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OrderItemClient) MapCreateBulk(slice any, setFunc func(*OrderItemCreate, int)) *OrderItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OrderItemCreateBulk{err: fmt.Errorf("calling to OrderItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OrderItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OrderItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OrderItem.
func (c *OrderItemClient) Update() *OrderItemUpdate {
	mutation := newOrderItemMutation(c.config, OpUpdate)
	return &OrderItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OrderItemClient) UpdateOne(_m *OrderItem) *OrderItemUpdateOne {
	mutation := newOrderItemMutation(c.config, OpUpdateOne, withOrderItem(_m))
	return &OrderItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OrderItemClient) UpdateOneID(id uuid.UUID) *OrderItemUpdateOne {
	mutation := newOrderItemMutation(c.config, OpUpdateOne, withOrderItemID(id))
	return &OrderItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OrderItem.
func (c *OrderItemClient) Delete() *OrderItemDelete {
	mutation := newOrderItemMutation(c.config, OpDelete)
	return &OrderItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OrderItemClient) DeleteOne(_m *OrderItem) *OrderItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OrderItemClient) DeleteOneID(id uuid.UUID) *OrderItemDeleteOne {
	builder := c.Delete().Where(orderitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OrderItemDeleteOne{builder}
}

// Query returns a query builder for OrderItem.
func (c *OrderItemClient) Query() *OrderItemQuery {
	return &OrderItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOrderItem},
		inters: c.Interceptors(),
	}
}

// Get returns a OrderItem entity by its id.
func (c *OrderItemClient) Get(ctx context.Context, id uuid.UUID) (*OrderItem, error) {
	return c.Query().Where(orderitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OrderItemClient) GetX(ctx context.Context, id uuid.UUID) *OrderItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOrder queries the order edge of a OrderItem.
func (c *OrderItemClient) QueryOrder(_m *OrderItem) *OrderQuery {
	query := (&OrderClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(orderitem.Table, orderitem.FieldID, id),
			sqlgraph.To(order.Table, order.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, orderitem.OrderTable, orderitem.OrderColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFiles queries the files edge of a OrderItem.
func (c *OrderItemClient) QueryFiles(_m *OrderItem) *OrderFileQuery {
	query := (&OrderFileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(orderitem.Table, orderitem.FieldID, id),
			sqlgraph.To(orderfile.Table, orderfile.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, orderitem.FilesTable, orderitem.FilesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OrderItemClient) Hooks() []Hook {
	return c.hooks.OrderItem
}

// Interceptors returns the client interceptors.
func (c *OrderItemClient) Interceptors() []Interceptor {
	return c.inters.OrderItem
}

func (c *OrderItemClient) mutate(ctx context.Context, m *OrderItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OrderItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OrderItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OrderItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OrderItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OrderItem mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ColumnTemplate, MappingTemplate, Order, OrderFile, OrderItem []ent.Hook
	}
	inters struct {
		ColumnTemplate, MappingTemplate, Order, OrderFile, OrderItem []ent.Interceptor
	}
)
