// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/finlearn/finlearn/ent/groupdismissal"
)

// GroupDismissal is the model entity for the GroupDismissal schema.
type GroupDismissal struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// GroupID holds the value of the "group_id" field.
	GroupID string `json:"group_id,omitempty"`
	// DismissedAt holds the value of the "dismissed_at" field.
	DismissedAt  time.Time `json:"dismissed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GroupDismissal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case groupdismissal.FieldID:
			values[i] = new(sql.NullInt64)
		case groupdismissal.FieldGroupID:
			values[i] = new(sql.NullString)
		case groupdismissal.FieldDismissedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GroupDismissal fields.
func (_m *GroupDismissal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case groupdismissal.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case groupdismissal.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = value.String
			}
		case groupdismissal.FieldDismissedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field dismissed_at", values[i])
			} else if value.Valid {
				_m.DismissedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GroupDismissal.
// This includes values selected through modifiers, order, etc.
func (_m *GroupDismissal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GroupDismissal.
// Note that you need to call GroupDismissal.Unwrap() before calling this method if this GroupDismissal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GroupDismissal) Update() *GroupDismissalUpdateOne {
	return NewGroupDismissalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GroupDismissal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GroupDismissal) Unwrap() *GroupDismissal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GroupDismissal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GroupDismissal) String() string {
	var builder strings.Builder
	builder.WriteString("GroupDismissal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("group_id=")
	builder.WriteString(_m.GroupID)
	builder.WriteString(", ")
	builder.WriteString("dismissed_at=")
	builder.WriteString(_m.DismissedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GroupDismissals is a parsable slice of GroupDismissal.
type GroupDismissals []*GroupDismissal
