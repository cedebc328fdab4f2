// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/finlearn/finlearn/ent/activityevent"
	"github.com/finlearn/finlearn/ent/chatevent"
	"github.com/finlearn/finlearn/ent/groupdismissal"
	"github.com/finlearn/finlearn/ent/lessonprogress"
	"github.com/finlearn/finlearn/ent/llmrequestevent"
	"github.com/finlearn/finlearn/ent/predicate"
	"github.com/finlearn/finlearn/ent/userprofile"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActivityEvent   = "ActivityEvent"
	TypeChatEvent       = "ChatEvent"
	TypeGroupDismissal  = "GroupDismissal"
	TypeLLMRequestEvent = "LLMRequestEvent"
	TypeLessonProgress  = "LessonProgress"
	TypeUserProfile     = "UserProfile"
)

// ActivityEventMutation represents an operation that mutates the ActivityEvent nodes in the graph.
type ActivityEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	kind          *string
	lesson_id     *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ActivityEvent, error)
	predicates    []predicate.ActivityEvent
}

var _ ent.Mutation = (*ActivityEventMutation)(nil)

// activityeventOption allows management of the mutation configuration using functional options.
type activityeventOption func(*ActivityEventMutation)

// newActivityEventMutation creates new mutation for the ActivityEvent entity.
func newActivityEventMutation(c config, op Op, opts ...activityeventOption) *ActivityEventMutation {
	m := &ActivityEventMutation{
		config:        c,
		op:            op,
		typ:           TypeActivityEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActivityEventID sets the ID field of the mutation.
func withActivityEventID(id int) activityeventOption {
	return func(m *ActivityEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ActivityEvent
		)
		m.oldValue = func(ctx context.Context) (*ActivityEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActivityEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActivityEvent sets the old ActivityEvent of the mutation.
func withActivityEvent(node *ActivityEvent) activityeventOption {
	return func(m *ActivityEventMutation) {
		m.oldValue = func(context.Context) (*ActivityEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActivityEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActivityEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActivityEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActivityEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActivityEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ActivityEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ActivityEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ActivityEvent entity.
// If the ActivityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ActivityEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ActivityEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ActivityEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ActivityEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ActivityEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ActivityEvent entity.
// If the ActivityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ActivityEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetKind sets the "kind" field.
func (m *ActivityEventMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ActivityEventMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ActivityEvent entity.
// If the ActivityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEventMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ActivityEventMutation) ResetKind() {
	m.kind = nil
}

// SetLessonID sets the "lesson_id" field.
func (m *ActivityEventMutation) SetLessonID(s string) {
	m.lesson_id = &s
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *ActivityEventMutation) LessonID() (r string, exists bool) {
	v := m.lesson_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the ActivityEvent entity.
// If the ActivityEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActivityEventMutation) OldLessonID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *ActivityEventMutation) ResetLessonID() {
	m.lesson_id = nil
}

// Where appends a list predicates to the ActivityEventMutation builder.
func (m *ActivityEventMutation) Where(ps ...predicate.ActivityEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActivityEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActivityEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActivityEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActivityEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActivityEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActivityEvent).
func (m *ActivityEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActivityEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.sequence != nil {
		fields = append(fields, activityevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, activityevent.FieldTimestamp)
	}
	if m.kind != nil {
		fields = append(fields, activityevent.FieldKind)
	}
	if m.lesson_id != nil {
		fields = append(fields, activityevent.FieldLessonID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActivityEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activityevent.FieldSequence:
		return m.Sequence()
	case activityevent.FieldTimestamp:
		return m.Timestamp()
	case activityevent.FieldKind:
		return m.Kind()
	case activityevent.FieldLessonID:
		return m.LessonID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActivityEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activityevent.FieldSequence:
		return m.OldSequence(ctx)
	case activityevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case activityevent.FieldKind:
		return m.OldKind(ctx)
	case activityevent.FieldLessonID:
		return m.OldLessonID(ctx)
	}
	return nil, fmt.Errorf("unknown ActivityEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activityevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case activityevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case activityevent.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case activityevent.FieldLessonID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	}
	return fmt.Errorf("unknown ActivityEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActivityEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, activityevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActivityEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case activityevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActivityEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case activityevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown ActivityEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActivityEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActivityEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActivityEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ActivityEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActivityEventMutation) ResetField(name string) error {
	switch name {
	case activityevent.FieldSequence:
		m.ResetSequence()
		return nil
	case activityevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case activityevent.FieldKind:
		m.ResetKind()
		return nil
	case activityevent.FieldLessonID:
		m.ResetLessonID()
		return nil
	}
	return fmt.Errorf("unknown ActivityEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActivityEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActivityEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActivityEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActivityEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActivityEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActivityEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActivityEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ActivityEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActivityEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ActivityEvent edge %s", name)
}

// ChatEventMutation represents an operation that mutates the ChatEvent nodes in the graph.
type ChatEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	sequence      *int64
	addsequence   *int64
	timestamp     *time.Time
	session_id    *string
	role          *string
	content       *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ChatEvent, error)
	predicates    []predicate.ChatEvent
}

var _ ent.Mutation = (*ChatEventMutation)(nil)

// chateventOption allows management of the mutation configuration using functional options.
type chateventOption func(*ChatEventMutation)

// newChatEventMutation creates new mutation for the ChatEvent entity.
func newChatEventMutation(c config, op Op, opts ...chateventOption) *ChatEventMutation {
	m := &ChatEventMutation{
		config:        c,
		op:            op,
		typ:           TypeChatEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatEventID sets the ID field of the mutation.
func withChatEventID(id int) chateventOption {
	return func(m *ChatEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatEvent
		)
		m.oldValue = func(ctx context.Context) (*ChatEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatEvent sets the old ChatEvent of the mutation.
func withChatEvent(node *ChatEvent) chateventOption {
	return func(m *ChatEventMutation) {
		m.oldValue = func(context.Context) (*ChatEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *ChatEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *ChatEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the ChatEvent entity.
// If the ChatEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *ChatEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *ChatEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *ChatEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *ChatEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *ChatEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the ChatEvent entity.
// If the ChatEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *ChatEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *ChatEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ChatEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ChatEvent entity.
// If the ChatEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ChatEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetRole sets the "role" field.
func (m *ChatEventMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *ChatEventMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ChatEvent entity.
// If the ChatEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatEventMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ChatEventMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *ChatEventMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ChatEventMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ChatEvent entity.
// If the ChatEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatEventMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ChatEventMutation) ResetContent() {
	m.content = nil
}

// Where appends a list predicates to the ChatEventMutation builder.
func (m *ChatEventMutation) Where(ps ...predicate.ChatEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatEvent).
func (m *ChatEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.sequence != nil {
		fields = append(fields, chatevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, chatevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, chatevent.FieldSessionID)
	}
	if m.role != nil {
		fields = append(fields, chatevent.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, chatevent.FieldContent)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatevent.FieldSequence:
		return m.Sequence()
	case chatevent.FieldTimestamp:
		return m.Timestamp()
	case chatevent.FieldSessionID:
		return m.SessionID()
	case chatevent.FieldRole:
		return m.Role()
	case chatevent.FieldContent:
		return m.Content()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatevent.FieldSequence:
		return m.OldSequence(ctx)
	case chatevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case chatevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case chatevent.FieldRole:
		return m.OldRole(ctx)
	case chatevent.FieldContent:
		return m.OldContent(ctx)
	}
	return nil, fmt.Errorf("unknown ChatEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case chatevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case chatevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case chatevent.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case chatevent.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	}
	return fmt.Errorf("unknown ChatEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, chatevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chatevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chatevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown ChatEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ChatEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatEventMutation) ResetField(name string) error {
	switch name {
	case chatevent.FieldSequence:
		m.ResetSequence()
		return nil
	case chatevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case chatevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case chatevent.FieldRole:
		m.ResetRole()
		return nil
	case chatevent.FieldContent:
		m.ResetContent()
		return nil
	}
	return fmt.Errorf("unknown ChatEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ChatEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ChatEvent edge %s", name)
}

// GroupDismissalMutation represents an operation that mutates the GroupDismissal nodes in the graph.
type GroupDismissalMutation struct {
	config
	op            Op
	typ           string
	id            *int
	group_id      *string
	dismissed_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*GroupDismissal, error)
	predicates    []predicate.GroupDismissal
}

var _ ent.Mutation = (*GroupDismissalMutation)(nil)

// groupdismissalOption allows management of the mutation configuration using functional options.
type groupdismissalOption func(*GroupDismissalMutation)

// newGroupDismissalMutation creates new mutation for the GroupDismissal entity.
func newGroupDismissalMutation(c config, op Op, opts ...groupdismissalOption) *GroupDismissalMutation {
	m := &GroupDismissalMutation{
		config:        c,
		op:            op,
		typ:           TypeGroupDismissal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGroupDismissalID sets the ID field of the mutation.
func withGroupDismissalID(id int) groupdismissalOption {
	return func(m *GroupDismissalMutation) {
		var (
			err   error
			once  sync.Once
			value *GroupDismissal
		)
		m.oldValue = func(ctx context.Context) (*GroupDismissal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GroupDismissal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGroupDismissal sets the old GroupDismissal of the mutation.
func withGroupDismissal(node *GroupDismissal) groupdismissalOption {
	return func(m *GroupDismissalMutation) {
		m.oldValue = func(context.Context) (*GroupDismissal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GroupDismissalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GroupDismissalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GroupDismissalMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GroupDismissalMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GroupDismissal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGroupID sets the "group_id" field.
func (m *GroupDismissalMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *GroupDismissalMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the GroupDismissal entity.
// If the GroupDismissal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupDismissalMutation) OldGroupID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *GroupDismissalMutation) ResetGroupID() {
	m.group_id = nil
}

// SetDismissedAt sets the "dismissed_at" field.
func (m *GroupDismissalMutation) SetDismissedAt(t time.Time) {
	m.dismissed_at = &t
}

// DismissedAt returns the value of the "dismissed_at" field in the mutation.
func (m *GroupDismissalMutation) DismissedAt() (r time.Time, exists bool) {
	v := m.dismissed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDismissedAt returns the old "dismissed_at" field's value of the GroupDismissal entity.
// If the GroupDismissal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GroupDismissalMutation) OldDismissedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDismissedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDismissedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDismissedAt: %w", err)
	}
	return oldValue.DismissedAt, nil
}

// ResetDismissedAt resets all changes to the "dismissed_at" field.
func (m *GroupDismissalMutation) ResetDismissedAt() {
	m.dismissed_at = nil
}

// Where appends a list predicates to the GroupDismissalMutation builder.
func (m *GroupDismissalMutation) Where(ps ...predicate.GroupDismissal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GroupDismissalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GroupDismissalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GroupDismissal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GroupDismissalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GroupDismissalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GroupDismissal).
func (m *GroupDismissalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GroupDismissalMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.group_id != nil {
		fields = append(fields, groupdismissal.FieldGroupID)
	}
	if m.dismissed_at != nil {
		fields = append(fields, groupdismissal.FieldDismissedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GroupDismissalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case groupdismissal.FieldGroupID:
		return m.GroupID()
	case groupdismissal.FieldDismissedAt:
		return m.DismissedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GroupDismissalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case groupdismissal.FieldGroupID:
		return m.OldGroupID(ctx)
	case groupdismissal.FieldDismissedAt:
		return m.OldDismissedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GroupDismissal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupDismissalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case groupdismissal.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case groupdismissal.FieldDismissedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDismissedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GroupDismissal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GroupDismissalMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GroupDismissalMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GroupDismissalMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GroupDismissal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GroupDismissalMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GroupDismissalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GroupDismissalMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GroupDismissal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GroupDismissalMutation) ResetField(name string) error {
	switch name {
	case groupdismissal.FieldGroupID:
		m.ResetGroupID()
		return nil
	case groupdismissal.FieldDismissedAt:
		m.ResetDismissedAt()
		return nil
	}
	return fmt.Errorf("unknown GroupDismissal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GroupDismissalMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GroupDismissalMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GroupDismissalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GroupDismissalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GroupDismissalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GroupDismissalMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GroupDismissalMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GroupDismissal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GroupDismissalMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GroupDismissal edge %s", name)
}

// LLMRequestEventMutation represents an operation that mutates the LLMRequestEvent nodes in the graph.
type LLMRequestEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	sequence         *int64
	addsequence      *int64
	timestamp        *time.Time
	provider         *string
	model            *string
	purpose          *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	latency_ms       *int64
	addlatency_ms    *int64
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*LLMRequestEvent, error)
	predicates       []predicate.LLMRequestEvent
}

var _ ent.Mutation = (*LLMRequestEventMutation)(nil)

// llmrequesteventOption allows management of the mutation configuration using functional options.
type llmrequesteventOption func(*LLMRequestEventMutation)

// newLLMRequestEventMutation creates new mutation for the LLMRequestEvent entity.
func newLLMRequestEventMutation(c config, op Op, opts ...llmrequesteventOption) *LLMRequestEventMutation {
	m := &LLMRequestEventMutation{
		config:        c,
		op:            op,
		typ:           TypeLLMRequestEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLLMRequestEventID sets the ID field of the mutation.
func withLLMRequestEventID(id int) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		var (
			err   error
			once  sync.Once
			value *LLMRequestEvent
		)
		m.oldValue = func(ctx context.Context) (*LLMRequestEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LLMRequestEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLLMRequestEvent sets the old LLMRequestEvent of the mutation.
func withLLMRequestEvent(node *LLMRequestEvent) llmrequesteventOption {
	return func(m *LLMRequestEventMutation) {
		m.oldValue = func(context.Context) (*LLMRequestEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LLMRequestEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LLMRequestEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LLMRequestEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LLMRequestEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LLMRequestEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *LLMRequestEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *LLMRequestEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *LLMRequestEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *LLMRequestEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *LLMRequestEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *LLMRequestEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *LLMRequestEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *LLMRequestEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetProvider sets the "provider" field.
func (m *LLMRequestEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *LLMRequestEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *LLMRequestEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *LLMRequestEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *LLMRequestEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *LLMRequestEventMutation) ResetModel() {
	m.model = nil
}

// SetPurpose sets the "purpose" field.
func (m *LLMRequestEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *LLMRequestEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *LLMRequestEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *LLMRequestEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *LLMRequestEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *LLMRequestEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *LLMRequestEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *LLMRequestEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *LLMRequestEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *LLMRequestEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *LLMRequestEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *LLMRequestEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *LLMRequestEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *LLMRequestEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *LLMRequestEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *LLMRequestEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *LLMRequestEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetSuccess sets the "success" field.
func (m *LLMRequestEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *LLMRequestEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *LLMRequestEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *LLMRequestEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *LLMRequestEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
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

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *LLMRequestEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *LLMRequestEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *LLMRequestEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *LLMRequestEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *LLMRequestEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *LLMRequestEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the LLMRequestEvent entity.
// If the LLMRequestEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LLMRequestEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *LLMRequestEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the LLMRequestEventMutation builder.
func (m *LLMRequestEventMutation) Where(ps ...predicate.LLMRequestEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LLMRequestEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LLMRequestEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LLMRequestEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LLMRequestEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LLMRequestEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LLMRequestEvent).
func (m *LLMRequestEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LLMRequestEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, llmrequestevent.FieldTimestamp)
	}
	if m.provider != nil {
		fields = append(fields, llmrequestevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, llmrequestevent.FieldModel)
	}
	if m.purpose != nil {
		fields = append(fields, llmrequestevent.FieldPurpose)
	}
	if m.input_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.latency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	if m.success != nil {
		fields = append(fields, llmrequestevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, llmrequestevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, llmrequestevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, llmrequestevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LLMRequestEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.Sequence()
	case llmrequestevent.FieldTimestamp:
		return m.Timestamp()
	case llmrequestevent.FieldProvider:
		return m.Provider()
	case llmrequestevent.FieldModel:
		return m.Model()
	case llmrequestevent.FieldPurpose:
		return m.Purpose()
	case llmrequestevent.FieldInputTokens:
		return m.InputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.OutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.LatencyMs()
	case llmrequestevent.FieldSuccess:
		return m.Success()
	case llmrequestevent.FieldErrorMessage:
		return m.ErrorMessage()
	case llmrequestevent.FieldRequestBody:
		return m.RequestBody()
	case llmrequestevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LLMRequestEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.OldSequence(ctx)
	case llmrequestevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case llmrequestevent.FieldProvider:
		return m.OldProvider(ctx)
	case llmrequestevent.FieldModel:
		return m.OldModel(ctx)
	case llmrequestevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case llmrequestevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case llmrequestevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case llmrequestevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case llmrequestevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case llmrequestevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case llmrequestevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case llmrequestevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case llmrequestevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case llmrequestevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case llmrequestevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case llmrequestevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case llmrequestevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case llmrequestevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case llmrequestevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case llmrequestevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LLMRequestEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, llmrequestevent.FieldSequence)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, llmrequestevent.FieldOutputTokens)
	}
	if m.addlatency_ms != nil {
		fields = append(fields, llmrequestevent.FieldLatencyMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LLMRequestEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case llmrequestevent.FieldSequence:
		return m.AddedSequence()
	case llmrequestevent.FieldInputTokens:
		return m.AddedInputTokens()
	case llmrequestevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	case llmrequestevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LLMRequestEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case llmrequestevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case llmrequestevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case llmrequestevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case llmrequestevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LLMRequestEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LLMRequestEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LLMRequestEventMutation) ResetField(name string) error {
	switch name {
	case llmrequestevent.FieldSequence:
		m.ResetSequence()
		return nil
	case llmrequestevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case llmrequestevent.FieldProvider:
		m.ResetProvider()
		return nil
	case llmrequestevent.FieldModel:
		m.ResetModel()
		return nil
	case llmrequestevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case llmrequestevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case llmrequestevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case llmrequestevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case llmrequestevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case llmrequestevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case llmrequestevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case llmrequestevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown LLMRequestEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LLMRequestEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LLMRequestEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LLMRequestEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LLMRequestEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LLMRequestEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LLMRequestEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LLMRequestEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LLMRequestEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LLMRequestEvent edge %s", name)
}

// LessonProgressMutation represents an operation that mutates the LessonProgress nodes in the graph.
type LessonProgressMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	lesson_id          *string
	completion_rate    *int
	addcompletion_rate *int
	quiz_score         *int
	addquiz_score      *int
	mastery_level      *int
	addmastery_level   *int
	review_count       *int
	addreview_count    *int
	next_review_date   *time.Time
	started_at         *time.Time
	completed_at       *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*LessonProgress, error)
	predicates         []predicate.LessonProgress
}

var _ ent.Mutation = (*LessonProgressMutation)(nil)

// lessonprogressOption allows management of the mutation configuration using functional options.
type lessonprogressOption func(*LessonProgressMutation)

// newLessonProgressMutation creates new mutation for the LessonProgress entity.
func newLessonProgressMutation(c config, op Op, opts ...lessonprogressOption) *LessonProgressMutation {
	m := &LessonProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeLessonProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLessonProgressID sets the ID field of the mutation.
func withLessonProgressID(id int) lessonprogressOption {
	return func(m *LessonProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *LessonProgress
		)
		m.oldValue = func(ctx context.Context) (*LessonProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LessonProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLessonProgress sets the old LessonProgress of the mutation.
func withLessonProgress(node *LessonProgress) lessonprogressOption {
	return func(m *LessonProgressMutation) {
		m.oldValue = func(context.Context) (*LessonProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LessonProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LessonProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LessonProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LessonProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LessonProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLessonID sets the "lesson_id" field.
func (m *LessonProgressMutation) SetLessonID(s string) {
	m.lesson_id = &s
}

// LessonID returns the value of the "lesson_id" field in the mutation.
func (m *LessonProgressMutation) LessonID() (r string, exists bool) {
	v := m.lesson_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonID returns the old "lesson_id" field's value of the LessonProgress entity.
// If the LessonProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonProgressMutation) OldLessonID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonID: %w", err)
	}
	return oldValue.LessonID, nil
}

// ResetLessonID resets all changes to the "lesson_id" field.
func (m *LessonProgressMutation) ResetLessonID() {
	m.lesson_id = nil
}

// SetCompletionRate sets the "completion_rate" field.
func (m *LessonProgressMutation) SetCompletionRate(i int) {
	m.completion_rate = &i
	m.addcompletion_rate = nil
}

// CompletionRate returns the value of the "completion_rate" field in the mutation.
func (m *LessonProgressMutation) CompletionRate() (r int, exists bool) {
	v := m.completion_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionRate returns the old "completion_rate" field's value of the LessonProgress entity.
// If the LessonProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonProgressMutation) OldCompletionRate(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionRate: %w", err)
	}
	return oldValue.CompletionRate, nil
}

// AddCompletionRate adds i to the "completion_rate" field.
func (m *LessonProgressMutation) AddCompletionRate(i int) {
	if m.addcompletion_rate != nil {
		*m.addcompletion_rate += i
	} else {
		m.addcompletion_rate = &i
	}
}

// AddedCompletionRate returns the value that was added to the "completion_rate" field in this mutation.
func (m *LessonProgressMutation) AddedCompletionRate() (r int, exists bool) {
	v := m.addcompletion_rate
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionRate resets all changes to the "completion_rate" field.
func (m *LessonProgressMutation) ResetCompletionRate() {
	m.completion_rate = nil
	m.addcompletion_rate = nil
}

// SetQuizScore sets the "quiz_score" field.
func (m *LessonProgressMutation) SetQuizScore(i int) {
	m.quiz_score = &i
	m.addquiz_score = nil
}

// QuizScore returns the value of the "quiz_score" field in the mutation.
func (m *LessonProgressMutation) QuizScore() (r int, exists bool) {
	v := m.quiz_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQuizScore returns the old "quiz_score" field's value of the LessonProgress entity.
// If the LessonProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonProgressMutation) OldQuizScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuizScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuizScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuizScore: %w", err)
	}
	return oldValue.QuizScore, nil
}

// AddQuizScore adds i to the "quiz_score" field.
func (m *LessonProgressMutation) AddQuizScore(i int) {
	if m.addquiz_score != nil {
		*m.addquiz_score += i
	} else {
		m.addquiz_score = &i
	}
}

// AddedQuizScore returns the value that was added to the "quiz_score" field in this mutation.
func (m *LessonProgressMutation) AddedQuizScore() (r int, exists bool) {
	v := m.addquiz_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearQuizScore clears the value of the "quiz_score" field.
func (m *LessonProgressMutation) ClearQuizScore() {
	m.quiz_score = nil
	m.addquiz_score = nil
	m.clearedFields[lessonprogress.FieldQuizScore] = struct{}{}
}

// QuizScoreCleared returns if the "quiz_score" field was cleared in this mutation.
func (m *LessonProgressMutation) QuizScoreCleared() bool {
	_, ok := m.clearedFields[lessonprogress.FieldQuizScore]
	return ok
}

// ResetQuizScore resets all changes to the "quiz_score" field.
func (m *LessonProgressMutation) ResetQuizScore() {
	m.quiz_score = nil
	m.addquiz_score = nil
	delete(m.clearedFields, lessonprogress.FieldQuizScore)
}

// SetMasteryLevel sets the "mastery_level" field.
func (m *LessonProgressMutation) SetMasteryLevel(i int) {
	m.mastery_level = &i
	m.addmastery_level = nil
}

// MasteryLevel returns the value of the "mastery_level" field in the mutation.
func (m *LessonProgressMutation) MasteryLevel() (r int, exists bool) {
	v := m.mastery_level
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteryLevel returns the old "mastery_level" field's value of the LessonProgress entity.
// If the LessonProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonProgressMutation) OldMasteryLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteryLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteryLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteryLevel: %w", err)
	}
	return oldValue.MasteryLevel, nil
}

// AddMasteryLevel adds i to the "mastery_level" field.
func (m *LessonProgressMutation) AddMasteryLevel(i int) {
	if m.addmastery_level != nil {
		*m.addmastery_level += i
	} else {
		m.addmastery_level = &i
	}
}

// AddedMasteryLevel returns the value that was added to the "mastery_level" field in this mutation.
func (m *LessonProgressMutation) AddedMasteryLevel() (r int, exists bool) {
	v := m.addmastery_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteryLevel resets all changes to the "mastery_level" field.
func (m *LessonProgressMutation) ResetMasteryLevel() {
	m.mastery_level = nil
	m.addmastery_level = nil
}

// SetReviewCount sets the "review_count" field.
func (m *LessonProgressMutation) SetReviewCount(i int) {
	m.review_count = &i
	m.addreview_count = nil
}

// ReviewCount returns the value of the "review_count" field in the mutation.
func (m *LessonProgressMutation) ReviewCount() (r int, exists bool) {
	v := m.review_count
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewCount returns the old "review_count" field's value of the LessonProgress entity.
// If the LessonProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonProgressMutation) OldReviewCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewCount: %w", err)
	}
	return oldValue.ReviewCount, nil
}

// AddReviewCount adds i to the "review_count" field.
func (m *LessonProgressMutation) AddReviewCount(i int) {
	if m.addreview_count != nil {
		*m.addreview_count += i
	} else {
		m.addreview_count = &i
	}
}

// AddedReviewCount returns the value that was added to the "review_count" field in this mutation.
func (m *LessonProgressMutation) AddedReviewCount() (r int, exists bool) {
	v := m.addreview_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetReviewCount resets all changes to the "review_count" field.
func (m *LessonProgressMutation) ResetReviewCount() {
	m.review_count = nil
	m.addreview_count = nil
}

// SetNextReviewDate sets the "next_review_date" field.
func (m *LessonProgressMutation) SetNextReviewDate(t time.Time) {
	m.next_review_date = &t
}

// NextReviewDate returns the value of the "next_review_date" field in the mutation.
func (m *LessonProgressMutation) NextReviewDate() (r time.Time, exists bool) {
	v := m.next_review_date
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReviewDate returns the old "next_review_date" field's value of the LessonProgress entity.
// If the LessonProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonProgressMutation) OldNextReviewDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReviewDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReviewDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReviewDate: %w", err)
	}
	return oldValue.NextReviewDate, nil
}

// ClearNextReviewDate clears the value of the "next_review_date" field.
func (m *LessonProgressMutation) ClearNextReviewDate() {
	m.next_review_date = nil
	m.clearedFields[lessonprogress.FieldNextReviewDate] = struct{}{}
}

// NextReviewDateCleared returns if the "next_review_date" field was cleared in this mutation.
func (m *LessonProgressMutation) NextReviewDateCleared() bool {
	_, ok := m.clearedFields[lessonprogress.FieldNextReviewDate]
	return ok
}

// ResetNextReviewDate resets all changes to the "next_review_date" field.
func (m *LessonProgressMutation) ResetNextReviewDate() {
	m.next_review_date = nil
	delete(m.clearedFields, lessonprogress.FieldNextReviewDate)
}

// SetStartedAt sets the "started_at" field.
func (m *LessonProgressMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *LessonProgressMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the LessonProgress entity.
// If the LessonProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonProgressMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *LessonProgressMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[lessonprogress.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *LessonProgressMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[lessonprogress.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *LessonProgressMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, lessonprogress.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *LessonProgressMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *LessonProgressMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the LessonProgress entity.
// If the LessonProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LessonProgressMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *LessonProgressMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[lessonprogress.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *LessonProgressMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[lessonprogress.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *LessonProgressMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, lessonprogress.FieldCompletedAt)
}

// Where appends a list predicates to the LessonProgressMutation builder.
func (m *LessonProgressMutation) Where(ps ...predicate.LessonProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LessonProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LessonProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LessonProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LessonProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LessonProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LessonProgress).
func (m *LessonProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LessonProgressMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.lesson_id != nil {
		fields = append(fields, lessonprogress.FieldLessonID)
	}
	if m.completion_rate != nil {
		fields = append(fields, lessonprogress.FieldCompletionRate)
	}
	if m.quiz_score != nil {
		fields = append(fields, lessonprogress.FieldQuizScore)
	}
	if m.mastery_level != nil {
		fields = append(fields, lessonprogress.FieldMasteryLevel)
	}
	if m.review_count != nil {
		fields = append(fields, lessonprogress.FieldReviewCount)
	}
	if m.next_review_date != nil {
		fields = append(fields, lessonprogress.FieldNextReviewDate)
	}
	if m.started_at != nil {
		fields = append(fields, lessonprogress.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, lessonprogress.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LessonProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lessonprogress.FieldLessonID:
		return m.LessonID()
	case lessonprogress.FieldCompletionRate:
		return m.CompletionRate()
	case lessonprogress.FieldQuizScore:
		return m.QuizScore()
	case lessonprogress.FieldMasteryLevel:
		return m.MasteryLevel()
	case lessonprogress.FieldReviewCount:
		return m.ReviewCount()
	case lessonprogress.FieldNextReviewDate:
		return m.NextReviewDate()
	case lessonprogress.FieldStartedAt:
		return m.StartedAt()
	case lessonprogress.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LessonProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lessonprogress.FieldLessonID:
		return m.OldLessonID(ctx)
	case lessonprogress.FieldCompletionRate:
		return m.OldCompletionRate(ctx)
	case lessonprogress.FieldQuizScore:
		return m.OldQuizScore(ctx)
	case lessonprogress.FieldMasteryLevel:
		return m.OldMasteryLevel(ctx)
	case lessonprogress.FieldReviewCount:
		return m.OldReviewCount(ctx)
	case lessonprogress.FieldNextReviewDate:
		return m.OldNextReviewDate(ctx)
	case lessonprogress.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case lessonprogress.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LessonProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lessonprogress.FieldLessonID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonID(v)
		return nil
	case lessonprogress.FieldCompletionRate:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionRate(v)
		return nil
	case lessonprogress.FieldQuizScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuizScore(v)
		return nil
	case lessonprogress.FieldMasteryLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteryLevel(v)
		return nil
	case lessonprogress.FieldReviewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewCount(v)
		return nil
	case lessonprogress.FieldNextReviewDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReviewDate(v)
		return nil
	case lessonprogress.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case lessonprogress.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LessonProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LessonProgressMutation) AddedFields() []string {
	var fields []string
	if m.addcompletion_rate != nil {
		fields = append(fields, lessonprogress.FieldCompletionRate)
	}
	if m.addquiz_score != nil {
		fields = append(fields, lessonprogress.FieldQuizScore)
	}
	if m.addmastery_level != nil {
		fields = append(fields, lessonprogress.FieldMasteryLevel)
	}
	if m.addreview_count != nil {
		fields = append(fields, lessonprogress.FieldReviewCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LessonProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case lessonprogress.FieldCompletionRate:
		return m.AddedCompletionRate()
	case lessonprogress.FieldQuizScore:
		return m.AddedQuizScore()
	case lessonprogress.FieldMasteryLevel:
		return m.AddedMasteryLevel()
	case lessonprogress.FieldReviewCount:
		return m.AddedReviewCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LessonProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case lessonprogress.FieldCompletionRate:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionRate(v)
		return nil
	case lessonprogress.FieldQuizScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuizScore(v)
		return nil
	case lessonprogress.FieldMasteryLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteryLevel(v)
		return nil
	case lessonprogress.FieldReviewCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReviewCount(v)
		return nil
	}
	return fmt.Errorf("unknown LessonProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LessonProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lessonprogress.FieldQuizScore) {
		fields = append(fields, lessonprogress.FieldQuizScore)
	}
	if m.FieldCleared(lessonprogress.FieldNextReviewDate) {
		fields = append(fields, lessonprogress.FieldNextReviewDate)
	}
	if m.FieldCleared(lessonprogress.FieldStartedAt) {
		fields = append(fields, lessonprogress.FieldStartedAt)
	}
	if m.FieldCleared(lessonprogress.FieldCompletedAt) {
		fields = append(fields, lessonprogress.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LessonProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LessonProgressMutation) ClearField(name string) error {
	switch name {
	case lessonprogress.FieldQuizScore:
		m.ClearQuizScore()
		return nil
	case lessonprogress.FieldNextReviewDate:
		m.ClearNextReviewDate()
		return nil
	case lessonprogress.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case lessonprogress.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown LessonProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LessonProgressMutation) ResetField(name string) error {
	switch name {
	case lessonprogress.FieldLessonID:
		m.ResetLessonID()
		return nil
	case lessonprogress.FieldCompletionRate:
		m.ResetCompletionRate()
		return nil
	case lessonprogress.FieldQuizScore:
		m.ResetQuizScore()
		return nil
	case lessonprogress.FieldMasteryLevel:
		m.ResetMasteryLevel()
		return nil
	case lessonprogress.FieldReviewCount:
		m.ResetReviewCount()
		return nil
	case lessonprogress.FieldNextReviewDate:
		m.ResetNextReviewDate()
		return nil
	case lessonprogress.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case lessonprogress.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown LessonProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LessonProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LessonProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LessonProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LessonProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LessonProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LessonProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LessonProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LessonProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LessonProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LessonProgress edge %s", name)
}

// UserProfileMutation represents an operation that mutates the UserProfile nodes in the graph.
type UserProfileMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	business_structure    *string
	industry              *string
	experience_level      *string
	pain_point            *string
	learning_goal         *string
	time_commitment       *string
	annual_turnover       *string
	vat_registered        *bool
	mtd_status            *string
	accounting_year_end   *string
	next_vat_return_due   *time.Time
	turnover_last_updated *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*UserProfile, error)
	predicates            []predicate.UserProfile
}

var _ ent.Mutation = (*UserProfileMutation)(nil)

// userprofileOption allows management of the mutation configuration using functional options.
type userprofileOption func(*UserProfileMutation)

// newUserProfileMutation creates new mutation for the UserProfile entity.
func newUserProfileMutation(c config, op Op, opts ...userprofileOption) *UserProfileMutation {
	m := &UserProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeUserProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserProfileID sets the ID field of the mutation.
func withUserProfileID(id int) userprofileOption {
	return func(m *UserProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *UserProfile
		)
		m.oldValue = func(ctx context.Context) (*UserProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserProfile sets the old UserProfile of the mutation.
func withUserProfile(node *UserProfile) userprofileOption {
	return func(m *UserProfileMutation) {
		m.oldValue = func(context.Context) (*UserProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserProfileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserProfileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBusinessStructure sets the "business_structure" field.
func (m *UserProfileMutation) SetBusinessStructure(s string) {
	m.business_structure = &s
}

// BusinessStructure returns the value of the "business_structure" field in the mutation.
func (m *UserProfileMutation) BusinessStructure() (r string, exists bool) {
	v := m.business_structure
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessStructure returns the old "business_structure" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldBusinessStructure(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessStructure is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessStructure requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessStructure: %w", err)
	}
	return oldValue.BusinessStructure, nil
}

// ResetBusinessStructure resets all changes to the "business_structure" field.
func (m *UserProfileMutation) ResetBusinessStructure() {
	m.business_structure = nil
}

// SetIndustry sets the "industry" field.
func (m *UserProfileMutation) SetIndustry(s string) {
	m.industry = &s
}

// Industry returns the value of the "industry" field in the mutation.
func (m *UserProfileMutation) Industry() (r string, exists bool) {
	v := m.industry
	if v == nil {
		return
	}
	return *v, true
}

// OldIndustry returns the old "industry" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldIndustry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndustry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndustry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndustry: %w", err)
	}
	return oldValue.Industry, nil
}

// ResetIndustry resets all changes to the "industry" field.
func (m *UserProfileMutation) ResetIndustry() {
	m.industry = nil
}

// SetExperienceLevel sets the "experience_level" field.
func (m *UserProfileMutation) SetExperienceLevel(s string) {
	m.experience_level = &s
}

// ExperienceLevel returns the value of the "experience_level" field in the mutation.
func (m *UserProfileMutation) ExperienceLevel() (r string, exists bool) {
	v := m.experience_level
	if v == nil {
		return
	}
	return *v, true
}

// OldExperienceLevel returns the old "experience_level" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldExperienceLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperienceLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperienceLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperienceLevel: %w", err)
	}
	return oldValue.ExperienceLevel, nil
}

// ResetExperienceLevel resets all changes to the "experience_level" field.
func (m *UserProfileMutation) ResetExperienceLevel() {
	m.experience_level = nil
}

// SetPainPoint sets the "pain_point" field.
func (m *UserProfileMutation) SetPainPoint(s string) {
	m.pain_point = &s
}

// PainPoint returns the value of the "pain_point" field in the mutation.
func (m *UserProfileMutation) PainPoint() (r string, exists bool) {
	v := m.pain_point
	if v == nil {
		return
	}
	return *v, true
}

// OldPainPoint returns the old "pain_point" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldPainPoint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPainPoint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPainPoint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPainPoint: %w", err)
	}
	return oldValue.PainPoint, nil
}

// ResetPainPoint resets all changes to the "pain_point" field.
func (m *UserProfileMutation) ResetPainPoint() {
	m.pain_point = nil
}

// SetLearningGoal sets the "learning_goal" field.
func (m *UserProfileMutation) SetLearningGoal(s string) {
	m.learning_goal = &s
}

// LearningGoal returns the value of the "learning_goal" field in the mutation.
func (m *UserProfileMutation) LearningGoal() (r string, exists bool) {
	v := m.learning_goal
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningGoal returns the old "learning_goal" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldLearningGoal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningGoal: %w", err)
	}
	return oldValue.LearningGoal, nil
}

// ResetLearningGoal resets all changes to the "learning_goal" field.
func (m *UserProfileMutation) ResetLearningGoal() {
	m.learning_goal = nil
}

// SetTimeCommitment sets the "time_commitment" field.
func (m *UserProfileMutation) SetTimeCommitment(s string) {
	m.time_commitment = &s
}

// TimeCommitment returns the value of the "time_commitment" field in the mutation.
func (m *UserProfileMutation) TimeCommitment() (r string, exists bool) {
	v := m.time_commitment
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeCommitment returns the old "time_commitment" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldTimeCommitment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeCommitment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeCommitment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeCommitment: %w", err)
	}
	return oldValue.TimeCommitment, nil
}

// ResetTimeCommitment resets all changes to the "time_commitment" field.
func (m *UserProfileMutation) ResetTimeCommitment() {
	m.time_commitment = nil
}

// SetAnnualTurnover sets the "annual_turnover" field.
func (m *UserProfileMutation) SetAnnualTurnover(s string) {
	m.annual_turnover = &s
}

// AnnualTurnover returns the value of the "annual_turnover" field in the mutation.
func (m *UserProfileMutation) AnnualTurnover() (r string, exists bool) {
	v := m.annual_turnover
	if v == nil {
		return
	}
	return *v, true
}

// OldAnnualTurnover returns the old "annual_turnover" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldAnnualTurnover(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnnualTurnover is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnnualTurnover requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnnualTurnover: %w", err)
	}
	return oldValue.AnnualTurnover, nil
}

// ResetAnnualTurnover resets all changes to the "annual_turnover" field.
func (m *UserProfileMutation) ResetAnnualTurnover() {
	m.annual_turnover = nil
}

// SetVatRegistered sets the "vat_registered" field.
func (m *UserProfileMutation) SetVatRegistered(b bool) {
	m.vat_registered = &b
}

// VatRegistered returns the value of the "vat_registered" field in the mutation.
func (m *UserProfileMutation) VatRegistered() (r bool, exists bool) {
	v := m.vat_registered
	if v == nil {
		return
	}
	return *v, true
}

// OldVatRegistered returns the old "vat_registered" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldVatRegistered(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVatRegistered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVatRegistered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVatRegistered: %w", err)
	}
	return oldValue.VatRegistered, nil
}

// ResetVatRegistered resets all changes to the "vat_registered" field.
func (m *UserProfileMutation) ResetVatRegistered() {
	m.vat_registered = nil
}

// SetMtdStatus sets the "mtd_status" field.
func (m *UserProfileMutation) SetMtdStatus(s string) {
	m.mtd_status = &s
}

// MtdStatus returns the value of the "mtd_status" field in the mutation.
func (m *UserProfileMutation) MtdStatus() (r string, exists bool) {
	v := m.mtd_status
	if v == nil {
		return
	}
	return *v, true
}

// OldMtdStatus returns the old "mtd_status" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldMtdStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMtdStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMtdStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMtdStatus: %w", err)
	}
	return oldValue.MtdStatus, nil
}

// ResetMtdStatus resets all changes to the "mtd_status" field.
func (m *UserProfileMutation) ResetMtdStatus() {
	m.mtd_status = nil
}

// SetAccountingYearEnd sets the "accounting_year_end" field.
func (m *UserProfileMutation) SetAccountingYearEnd(s string) {
	m.accounting_year_end = &s
}

// AccountingYearEnd returns the value of the "accounting_year_end" field in the mutation.
func (m *UserProfileMutation) AccountingYearEnd() (r string, exists bool) {
	v := m.accounting_year_end
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountingYearEnd returns the old "accounting_year_end" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldAccountingYearEnd(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountingYearEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountingYearEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountingYearEnd: %w", err)
	}
	return oldValue.AccountingYearEnd, nil
}

// ResetAccountingYearEnd resets all changes to the "accounting_year_end" field.
func (m *UserProfileMutation) ResetAccountingYearEnd() {
	m.accounting_year_end = nil
}

// SetNextVatReturnDue sets the "next_vat_return_due" field.
func (m *UserProfileMutation) SetNextVatReturnDue(t time.Time) {
	m.next_vat_return_due = &t
}

// NextVatReturnDue returns the value of the "next_vat_return_due" field in the mutation.
func (m *UserProfileMutation) NextVatReturnDue() (r time.Time, exists bool) {
	v := m.next_vat_return_due
	if v == nil {
		return
	}
	return *v, true
}

// OldNextVatReturnDue returns the old "next_vat_return_due" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldNextVatReturnDue(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextVatReturnDue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextVatReturnDue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextVatReturnDue: %w", err)
	}
	return oldValue.NextVatReturnDue, nil
}

// ClearNextVatReturnDue clears the value of the "next_vat_return_due" field.
func (m *UserProfileMutation) ClearNextVatReturnDue() {
	m.next_vat_return_due = nil
	m.clearedFields[userprofile.FieldNextVatReturnDue] = struct{}{}
}

// NextVatReturnDueCleared returns if the "next_vat_return_due" field was cleared in this mutation.
func (m *UserProfileMutation) NextVatReturnDueCleared() bool {
	_, ok := m.clearedFields[userprofile.FieldNextVatReturnDue]
	return ok
}

// ResetNextVatReturnDue resets all changes to the "next_vat_return_due" field.
func (m *UserProfileMutation) ResetNextVatReturnDue() {
	m.next_vat_return_due = nil
	delete(m.clearedFields, userprofile.FieldNextVatReturnDue)
}

// SetTurnoverLastUpdated sets the "turnover_last_updated" field.
func (m *UserProfileMutation) SetTurnoverLastUpdated(t time.Time) {
	m.turnover_last_updated = &t
}

// TurnoverLastUpdated returns the value of the "turnover_last_updated" field in the mutation.
func (m *UserProfileMutation) TurnoverLastUpdated() (r time.Time, exists bool) {
	v := m.turnover_last_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldTurnoverLastUpdated returns the old "turnover_last_updated" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldTurnoverLastUpdated(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTurnoverLastUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTurnoverLastUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTurnoverLastUpdated: %w", err)
	}
	return oldValue.TurnoverLastUpdated, nil
}

// ClearTurnoverLastUpdated clears the value of the "turnover_last_updated" field.
func (m *UserProfileMutation) ClearTurnoverLastUpdated() {
	m.turnover_last_updated = nil
	m.clearedFields[userprofile.FieldTurnoverLastUpdated] = struct{}{}
}

// TurnoverLastUpdatedCleared returns if the "turnover_last_updated" field was cleared in this mutation.
func (m *UserProfileMutation) TurnoverLastUpdatedCleared() bool {
	_, ok := m.clearedFields[userprofile.FieldTurnoverLastUpdated]
	return ok
}

// ResetTurnoverLastUpdated resets all changes to the "turnover_last_updated" field.
func (m *UserProfileMutation) ResetTurnoverLastUpdated() {
	m.turnover_last_updated = nil
	delete(m.clearedFields, userprofile.FieldTurnoverLastUpdated)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *UserProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserProfileMutation builder.
func (m *UserProfileMutation) Where(ps ...predicate.UserProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserProfile).
func (m *UserProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserProfileMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.business_structure != nil {
		fields = append(fields, userprofile.FieldBusinessStructure)
	}
	if m.industry != nil {
		fields = append(fields, userprofile.FieldIndustry)
	}
	if m.experience_level != nil {
		fields = append(fields, userprofile.FieldExperienceLevel)
	}
	if m.pain_point != nil {
		fields = append(fields, userprofile.FieldPainPoint)
	}
	if m.learning_goal != nil {
		fields = append(fields, userprofile.FieldLearningGoal)
	}
	if m.time_commitment != nil {
		fields = append(fields, userprofile.FieldTimeCommitment)
	}
	if m.annual_turnover != nil {
		fields = append(fields, userprofile.FieldAnnualTurnover)
	}
	if m.vat_registered != nil {
		fields = append(fields, userprofile.FieldVatRegistered)
	}
	if m.mtd_status != nil {
		fields = append(fields, userprofile.FieldMtdStatus)
	}
	if m.accounting_year_end != nil {
		fields = append(fields, userprofile.FieldAccountingYearEnd)
	}
	if m.next_vat_return_due != nil {
		fields = append(fields, userprofile.FieldNextVatReturnDue)
	}
	if m.turnover_last_updated != nil {
		fields = append(fields, userprofile.FieldTurnoverLastUpdated)
	}
	if m.updated_at != nil {
		fields = append(fields, userprofile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userprofile.FieldBusinessStructure:
		return m.BusinessStructure()
	case userprofile.FieldIndustry:
		return m.Industry()
	case userprofile.FieldExperienceLevel:
		return m.ExperienceLevel()
	case userprofile.FieldPainPoint:
		return m.PainPoint()
	case userprofile.FieldLearningGoal:
		return m.LearningGoal()
	case userprofile.FieldTimeCommitment:
		return m.TimeCommitment()
	case userprofile.FieldAnnualTurnover:
		return m.AnnualTurnover()
	case userprofile.FieldVatRegistered:
		return m.VatRegistered()
	case userprofile.FieldMtdStatus:
		return m.MtdStatus()
	case userprofile.FieldAccountingYearEnd:
		return m.AccountingYearEnd()
	case userprofile.FieldNextVatReturnDue:
		return m.NextVatReturnDue()
	case userprofile.FieldTurnoverLastUpdated:
		return m.TurnoverLastUpdated()
	case userprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userprofile.FieldBusinessStructure:
		return m.OldBusinessStructure(ctx)
	case userprofile.FieldIndustry:
		return m.OldIndustry(ctx)
	case userprofile.FieldExperienceLevel:
		return m.OldExperienceLevel(ctx)
	case userprofile.FieldPainPoint:
		return m.OldPainPoint(ctx)
	case userprofile.FieldLearningGoal:
		return m.OldLearningGoal(ctx)
	case userprofile.FieldTimeCommitment:
		return m.OldTimeCommitment(ctx)
	case userprofile.FieldAnnualTurnover:
		return m.OldAnnualTurnover(ctx)
	case userprofile.FieldVatRegistered:
		return m.OldVatRegistered(ctx)
	case userprofile.FieldMtdStatus:
		return m.OldMtdStatus(ctx)
	case userprofile.FieldAccountingYearEnd:
		return m.OldAccountingYearEnd(ctx)
	case userprofile.FieldNextVatReturnDue:
		return m.OldNextVatReturnDue(ctx)
	case userprofile.FieldTurnoverLastUpdated:
		return m.OldTurnoverLastUpdated(ctx)
	case userprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userprofile.FieldBusinessStructure:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessStructure(v)
		return nil
	case userprofile.FieldIndustry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndustry(v)
		return nil
	case userprofile.FieldExperienceLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperienceLevel(v)
		return nil
	case userprofile.FieldPainPoint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPainPoint(v)
		return nil
	case userprofile.FieldLearningGoal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningGoal(v)
		return nil
	case userprofile.FieldTimeCommitment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeCommitment(v)
		return nil
	case userprofile.FieldAnnualTurnover:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnnualTurnover(v)
		return nil
	case userprofile.FieldVatRegistered:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVatRegistered(v)
		return nil
	case userprofile.FieldMtdStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMtdStatus(v)
		return nil
	case userprofile.FieldAccountingYearEnd:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountingYearEnd(v)
		return nil
	case userprofile.FieldNextVatReturnDue:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextVatReturnDue(v)
		return nil
	case userprofile.FieldTurnoverLastUpdated:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTurnoverLastUpdated(v)
		return nil
	case userprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(userprofile.FieldNextVatReturnDue) {
		fields = append(fields, userprofile.FieldNextVatReturnDue)
	}
	if m.FieldCleared(userprofile.FieldTurnoverLastUpdated) {
		fields = append(fields, userprofile.FieldTurnoverLastUpdated)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserProfileMutation) ClearField(name string) error {
	switch name {
	case userprofile.FieldNextVatReturnDue:
		m.ClearNextVatReturnDue()
		return nil
	case userprofile.FieldTurnoverLastUpdated:
		m.ClearTurnoverLastUpdated()
		return nil
	}
	return fmt.Errorf("unknown UserProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserProfileMutation) ResetField(name string) error {
	switch name {
	case userprofile.FieldBusinessStructure:
		m.ResetBusinessStructure()
		return nil
	case userprofile.FieldIndustry:
		m.ResetIndustry()
		return nil
	case userprofile.FieldExperienceLevel:
		m.ResetExperienceLevel()
		return nil
	case userprofile.FieldPainPoint:
		m.ResetPainPoint()
		return nil
	case userprofile.FieldLearningGoal:
		m.ResetLearningGoal()
		return nil
	case userprofile.FieldTimeCommitment:
		m.ResetTimeCommitment()
		return nil
	case userprofile.FieldAnnualTurnover:
		m.ResetAnnualTurnover()
		return nil
	case userprofile.FieldVatRegistered:
		m.ResetVatRegistered()
		return nil
	case userprofile.FieldMtdStatus:
		m.ResetMtdStatus()
		return nil
	case userprofile.FieldAccountingYearEnd:
		m.ResetAccountingYearEnd()
		return nil
	case userprofile.FieldNextVatReturnDue:
		m.ResetNextVatReturnDue()
		return nil
	case userprofile.FieldTurnoverLastUpdated:
		m.ResetTurnoverLastUpdated()
		return nil
	case userprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserProfile edge %s", name)
}
