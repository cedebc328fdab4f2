// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/finlearn/finlearn/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/finlearn/finlearn/ent/activityevent"
	"github.com/finlearn/finlearn/ent/chatevent"
	"github.com/finlearn/finlearn/ent/groupdismissal"
	"github.com/finlearn/finlearn/ent/lessonprogress"
	"github.com/finlearn/finlearn/ent/llmrequestevent"
	"github.com/finlearn/finlearn/ent/userprofile"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ActivityEvent is the client for interacting with the ActivityEvent builders.
	ActivityEvent *ActivityEventClient
	// ChatEvent is the client for interacting with the ChatEvent builders.
	ChatEvent *ChatEventClient
	// GroupDismissal is the client for interacting with the GroupDismissal builders.
	GroupDismissal *GroupDismissalClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// LessonProgress is the client for interacting with the LessonProgress builders.
	LessonProgress *LessonProgressClient
	// UserProfile is the client for interacting with the UserProfile builders.
	UserProfile *UserProfileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ActivityEvent = NewActivityEventClient(c.config)
	c.ChatEvent = NewChatEventClient(c.config)
	c.GroupDismissal = NewGroupDismissalClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.LessonProgress = NewLessonProgressClient(c.config)
	c.UserProfile = NewUserProfileClient(c.config)
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
		ActivityEvent:   NewActivityEventClient(cfg),
		ChatEvent:       NewChatEventClient(cfg),
		GroupDismissal:  NewGroupDismissalClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		LessonProgress:  NewLessonProgressClient(cfg),
		UserProfile:     NewUserProfileClient(cfg),
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
		ActivityEvent:   NewActivityEventClient(cfg),
		ChatEvent:       NewChatEventClient(cfg),
		GroupDismissal:  NewGroupDismissalClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		LessonProgress:  NewLessonProgressClient(cfg),
		UserProfile:     NewUserProfileClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ActivityEvent.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.ActivityEvent, c.ChatEvent, c.GroupDismissal, c.LLMRequestEvent,
		c.LessonProgress, c.UserProfile,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ActivityEvent, c.ChatEvent, c.GroupDismissal, c.LLMRequestEvent,
		c.LessonProgress, c.UserProfile,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActivityEventMutation:
		return c.ActivityEvent.mutate(ctx, m)
	case *ChatEventMutation:
		return c.ChatEvent.mutate(ctx, m)
	case *GroupDismissalMutation:
		return c.GroupDismissal.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *LessonProgressMutation:
		return c.LessonProgress.mutate(ctx, m)
	case *UserProfileMutation:
		return c.UserProfile.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ActivityEventClient is a client for the ActivityEvent schema.
type ActivityEventClient struct {
	config
}

// NewActivityEventClient returns a client for the ActivityEvent from the given config.
func NewActivityEventClient(c config) *ActivityEventClient {
	return &ActivityEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `activityevent.Hooks(f(g(h())))`.
func (c *ActivityEventClient) Use(hooks ...Hook) {
	c.hooks.ActivityEvent = append(c.hooks.ActivityEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `activityevent.Intercept(f(g(h())))`.
func (c *ActivityEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActivityEvent = append(c.inters.ActivityEvent, interceptors...)
}

// Create returns a builder for creating a ActivityEvent entity.
func (c *ActivityEventClient) Create() *ActivityEventCreate {
	mutation := newActivityEventMutation(c.config, OpCreate)
	return &ActivityEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActivityEvent entities.
func (c *ActivityEventClient) CreateBulk(builders ...*ActivityEventCreate) *ActivityEventCreateBulk {
	return &ActivityEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActivityEventClient) MapCreateBulk(slice any, setFunc func(*ActivityEventCreate, int)) *ActivityEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActivityEventCreateBulk{err: fmt.Errorf("calling to ActivityEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActivityEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActivityEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActivityEvent.
func (c *ActivityEventClient) Update() *ActivityEventUpdate {
	mutation := newActivityEventMutation(c.config, OpUpdate)
	return &ActivityEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActivityEventClient) UpdateOne(_m *ActivityEvent) *ActivityEventUpdateOne {
	mutation := newActivityEventMutation(c.config, OpUpdateOne, withActivityEvent(_m))
	return &ActivityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActivityEventClient) UpdateOneID(id int) *ActivityEventUpdateOne {
	mutation := newActivityEventMutation(c.config, OpUpdateOne, withActivityEventID(id))
	return &ActivityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActivityEvent.
func (c *ActivityEventClient) Delete() *ActivityEventDelete {
	mutation := newActivityEventMutation(c.config, OpDelete)
	return &ActivityEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActivityEventClient) DeleteOne(_m *ActivityEvent) *ActivityEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActivityEventClient) DeleteOneID(id int) *ActivityEventDeleteOne {
	builder := c.Delete().Where(activityevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActivityEventDeleteOne{builder}
}

// Query returns a query builder for ActivityEvent.
func (c *ActivityEventClient) Query() *ActivityEventQuery {
	return &ActivityEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActivityEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ActivityEvent entity by its id.
func (c *ActivityEventClient) Get(ctx context.Context, id int) (*ActivityEvent, error) {
	return c.Query().Where(activityevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActivityEventClient) GetX(ctx context.Context, id int) *ActivityEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActivityEventClient) Hooks() []Hook {
	return c.hooks.ActivityEvent
}

// Interceptors returns the client interceptors.
func (c *ActivityEventClient) Interceptors() []Interceptor {
	return c.inters.ActivityEvent
}

func (c *ActivityEventClient) mutate(ctx context.Context, m *ActivityEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActivityEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActivityEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActivityEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActivityEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActivityEvent mutation op: %q", m.Op())
	}
}

// ChatEventClient is a client for the ChatEvent schema.
type ChatEventClient struct {
	config
}

// NewChatEventClient returns a client for the ChatEvent from the given config.
func NewChatEventClient(c config) *ChatEventClient {
	return &ChatEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chatevent.Hooks(f(g(h())))`.
func (c *ChatEventClient) Use(hooks ...Hook) {
	c.hooks.ChatEvent = append(c.hooks.ChatEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chatevent.Intercept(f(g(h())))`.
func (c *ChatEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChatEvent = append(c.inters.ChatEvent, interceptors...)
}

// Create returns a builder for creating a ChatEvent entity.
func (c *ChatEventClient) Create() *ChatEventCreate {
	mutation := newChatEventMutation(c.config, OpCreate)
	return &ChatEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChatEvent entities.
func (c *ChatEventClient) CreateBulk(builders ...*ChatEventCreate) *ChatEventCreateBulk {
	return &ChatEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChatEventClient) MapCreateBulk(slice any, setFunc func(*ChatEventCreate, int)) *ChatEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChatEventCreateBulk{err: fmt.Errorf("calling to ChatEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChatEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChatEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChatEvent.
func (c *ChatEventClient) Update() *ChatEventUpdate {
	mutation := newChatEventMutation(c.config, OpUpdate)
	return &ChatEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChatEventClient) UpdateOne(_m *ChatEvent) *ChatEventUpdateOne {
	mutation := newChatEventMutation(c.config, OpUpdateOne, withChatEvent(_m))
	return &ChatEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChatEventClient) UpdateOneID(id int) *ChatEventUpdateOne {
	mutation := newChatEventMutation(c.config, OpUpdateOne, withChatEventID(id))
	return &ChatEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChatEvent.
func (c *ChatEventClient) Delete() *ChatEventDelete {
	mutation := newChatEventMutation(c.config, OpDelete)
	return &ChatEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChatEventClient) DeleteOne(_m *ChatEvent) *ChatEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChatEventClient) DeleteOneID(id int) *ChatEventDeleteOne {
	builder := c.Delete().Where(chatevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChatEventDeleteOne{builder}
}

// Query returns a query builder for ChatEvent.
func (c *ChatEventClient) Query() *ChatEventQuery {
	return &ChatEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChatEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ChatEvent entity by its id.
func (c *ChatEventClient) Get(ctx context.Context, id int) (*ChatEvent, error) {
	return c.Query().Where(chatevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChatEventClient) GetX(ctx context.Context, id int) *ChatEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChatEventClient) Hooks() []Hook {
	return c.hooks.ChatEvent
}

// Interceptors returns the client interceptors.
func (c *ChatEventClient) Interceptors() []Interceptor {
	return c.inters.ChatEvent
}

func (c *ChatEventClient) mutate(ctx context.Context, m *ChatEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChatEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChatEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChatEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChatEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChatEvent mutation op: %q", m.Op())
	}
}

// GroupDismissalClient is a client for the GroupDismissal schema.
type GroupDismissalClient struct {
	config
}

// NewGroupDismissalClient returns a client for the GroupDismissal from the given config.
func NewGroupDismissalClient(c config) *GroupDismissalClient {
	return &GroupDismissalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `groupdismissal.Hooks(f(g(h())))`.
func (c *GroupDismissalClient) Use(hooks ...Hook) {
	c.hooks.GroupDismissal = append(c.hooks.GroupDismissal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `groupdismissal.Intercept(f(g(h())))`.
func (c *GroupDismissalClient) Intercept(interceptors ...Interceptor) {
	c.inters.GroupDismissal = append(c.inters.GroupDismissal, interceptors...)
}

// Create returns a builder for creating a GroupDismissal entity.
func (c *GroupDismissalClient) Create() *GroupDismissalCreate {
	mutation := newGroupDismissalMutation(c.config, OpCreate)
	return &GroupDismissalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GroupDismissal entities.
func (c *GroupDismissalClient) CreateBulk(builders ...*GroupDismissalCreate) *GroupDismissalCreateBulk {
	return &GroupDismissalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GroupDismissalClient) MapCreateBulk(slice any, setFunc func(*GroupDismissalCreate, int)) *GroupDismissalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GroupDismissalCreateBulk{err: fmt.Errorf("calling to GroupDismissalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GroupDismissalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GroupDismissalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GroupDismissal.
func (c *GroupDismissalClient) Update() *GroupDismissalUpdate {
	mutation := newGroupDismissalMutation(c.config, OpUpdate)
	return &GroupDismissalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GroupDismissalClient) UpdateOne(_m *GroupDismissal) *GroupDismissalUpdateOne {
	mutation := newGroupDismissalMutation(c.config, OpUpdateOne, withGroupDismissal(_m))
	return &GroupDismissalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GroupDismissalClient) UpdateOneID(id int) *GroupDismissalUpdateOne {
	mutation := newGroupDismissalMutation(c.config, OpUpdateOne, withGroupDismissalID(id))
	return &GroupDismissalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GroupDismissal.
func (c *GroupDismissalClient) Delete() *GroupDismissalDelete {
	mutation := newGroupDismissalMutation(c.config, OpDelete)
	return &GroupDismissalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GroupDismissalClient) DeleteOne(_m *GroupDismissal) *GroupDismissalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GroupDismissalClient) DeleteOneID(id int) *GroupDismissalDeleteOne {
	builder := c.Delete().Where(groupdismissal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GroupDismissalDeleteOne{builder}
}

// Query returns a query builder for GroupDismissal.
func (c *GroupDismissalClient) Query() *GroupDismissalQuery {
	return &GroupDismissalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGroupDismissal},
		inters: c.Interceptors(),
	}
}

// Get returns a GroupDismissal entity by its id.
func (c *GroupDismissalClient) Get(ctx context.Context, id int) (*GroupDismissal, error) {
	return c.Query().Where(groupdismissal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GroupDismissalClient) GetX(ctx context.Context, id int) *GroupDismissal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GroupDismissalClient) Hooks() []Hook {
	return c.hooks.GroupDismissal
}

// Interceptors returns the client interceptors.
func (c *GroupDismissalClient) Interceptors() []Interceptor {
	return c.inters.GroupDismissal
}

func (c *GroupDismissalClient) mutate(ctx context.Context, m *GroupDismissalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GroupDismissalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GroupDismissalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GroupDismissalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GroupDismissalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GroupDismissal mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// LessonProgressClient is a client for the LessonProgress schema.
type LessonProgressClient struct {
	config
}

// NewLessonProgressClient returns a client for the LessonProgress from the given config.
func NewLessonProgressClient(c config) *LessonProgressClient {
	return &LessonProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `lessonprogress.Hooks(f(g(h())))`.
func (c *LessonProgressClient) Use(hooks ...Hook) {
	c.hooks.LessonProgress = append(c.hooks.LessonProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `lessonprogress.Intercept(f(g(h())))`.
func (c *LessonProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.LessonProgress = append(c.inters.LessonProgress, interceptors...)
}

// Create returns a builder for creating a LessonProgress entity.
func (c *LessonProgressClient) Create() *LessonProgressCreate {
	mutation := newLessonProgressMutation(c.config, OpCreate)
	return &LessonProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LessonProgress entities.
func (c *LessonProgressClient) CreateBulk(builders ...*LessonProgressCreate) *LessonProgressCreateBulk {
	return &LessonProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LessonProgressClient) MapCreateBulk(slice any, setFunc func(*LessonProgressCreate, int)) *LessonProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LessonProgressCreateBulk{err: fmt.Errorf("calling to LessonProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LessonProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LessonProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LessonProgress.
func (c *LessonProgressClient) Update() *LessonProgressUpdate {
	mutation := newLessonProgressMutation(c.config, OpUpdate)
	return &LessonProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LessonProgressClient) UpdateOne(_m *LessonProgress) *LessonProgressUpdateOne {
	mutation := newLessonProgressMutation(c.config, OpUpdateOne, withLessonProgress(_m))
	return &LessonProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LessonProgressClient) UpdateOneID(id int) *LessonProgressUpdateOne {
	mutation := newLessonProgressMutation(c.config, OpUpdateOne, withLessonProgressID(id))
	return &LessonProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LessonProgress.
func (c *LessonProgressClient) Delete() *LessonProgressDelete {
	mutation := newLessonProgressMutation(c.config, OpDelete)
	return &LessonProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LessonProgressClient) DeleteOne(_m *LessonProgress) *LessonProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LessonProgressClient) DeleteOneID(id int) *LessonProgressDeleteOne {
	builder := c.Delete().Where(lessonprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LessonProgressDeleteOne{builder}
}

// Query returns a query builder for LessonProgress.
func (c *LessonProgressClient) Query() *LessonProgressQuery {
	return &LessonProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLessonProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a LessonProgress entity by its id.
func (c *LessonProgressClient) Get(ctx context.Context, id int) (*LessonProgress, error) {
	return c.Query().Where(lessonprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LessonProgressClient) GetX(ctx context.Context, id int) *LessonProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LessonProgressClient) Hooks() []Hook {
	return c.hooks.LessonProgress
}

// Interceptors returns the client interceptors.
func (c *LessonProgressClient) Interceptors() []Interceptor {
	return c.inters.LessonProgress
}

func (c *LessonProgressClient) mutate(ctx context.Context, m *LessonProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LessonProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LessonProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LessonProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LessonProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LessonProgress mutation op: %q", m.Op())
	}
}

// UserProfileClient is a client for the UserProfile schema.
type UserProfileClient struct {
	config
}

// NewUserProfileClient returns a client for the UserProfile from the given config.
func NewUserProfileClient(c config) *UserProfileClient {
	return &UserProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userprofile.Hooks(f(g(h())))`.
func (c *UserProfileClient) Use(hooks ...Hook) {
	c.hooks.UserProfile = append(c.hooks.UserProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userprofile.Intercept(f(g(h())))`.
func (c *UserProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserProfile = append(c.inters.UserProfile, interceptors...)
}

// Create returns a builder for creating a UserProfile entity.
func (c *UserProfileClient) Create() *UserProfileCreate {
	mutation := newUserProfileMutation(c.config, OpCreate)
	return &UserProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserProfile entities.
func (c *UserProfileClient) CreateBulk(builders ...*UserProfileCreate) *UserProfileCreateBulk {
	return &UserProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserProfileClient) MapCreateBulk(slice any, setFunc func(*UserProfileCreate, int)) *UserProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserProfileCreateBulk{err: fmt.Errorf("calling to UserProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserProfile.
func (c *UserProfileClient) Update() *UserProfileUpdate {
	mutation := newUserProfileMutation(c.config, OpUpdate)
	return &UserProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserProfileClient) UpdateOne(_m *UserProfile) *UserProfileUpdateOne {
	mutation := newUserProfileMutation(c.config, OpUpdateOne, withUserProfile(_m))
	return &UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserProfileClient) UpdateOneID(id int) *UserProfileUpdateOne {
	mutation := newUserProfileMutation(c.config, OpUpdateOne, withUserProfileID(id))
	return &UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserProfile.
func (c *UserProfileClient) Delete() *UserProfileDelete {
	mutation := newUserProfileMutation(c.config, OpDelete)
	return &UserProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserProfileClient) DeleteOne(_m *UserProfile) *UserProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserProfileClient) DeleteOneID(id int) *UserProfileDeleteOne {
	builder := c.Delete().Where(userprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserProfileDeleteOne{builder}
}

// Query returns a query builder for UserProfile.
func (c *UserProfileClient) Query() *UserProfileQuery {
	return &UserProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a UserProfile entity by its id.
func (c *UserProfileClient) Get(ctx context.Context, id int) (*UserProfile, error) {
	return c.Query().Where(userprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserProfileClient) GetX(ctx context.Context, id int) *UserProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserProfileClient) Hooks() []Hook {
	return c.hooks.UserProfile
}

// Interceptors returns the client interceptors.
func (c *UserProfileClient) Interceptors() []Interceptor {
	return c.inters.UserProfile
}

func (c *UserProfileClient) mutate(ctx context.Context, m *UserProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserProfile mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ActivityEvent, ChatEvent, GroupDismissal, LLMRequestEvent, LessonProgress,
		UserProfile []ent.Hook
	}
	inters struct {
		ActivityEvent, ChatEvent, GroupDismissal, LLMRequestEvent, LessonProgress,
		UserProfile []ent.Interceptor
	}
)
