// Code generated by ent, DO NOT EDIT.

package groupdismissal

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the groupdismissal type in the database.
	Label = "group_dismissal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldDismissedAt holds the string denoting the dismissed_at field in the database.
	FieldDismissedAt = "dismissed_at"
	// Table holds the table name of the groupdismissal in the database.
	Table = "group_dismissals"
)

// Columns holds all SQL columns for groupdismissal fields.
var Columns = []string{
	FieldID,
	FieldGroupID,
	FieldDismissedAt,
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
	// GroupIDValidator is a validator for the "group_id" field. It is called by the builders before save.
	GroupIDValidator func(string) error
	// DefaultDismissedAt holds the default value on creation for the "dismissed_at" field.
	DefaultDismissedAt func() time.Time
)

// OrderOption defines the ordering options for the GroupDismissal queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByDismissedAt orders the results by the dismissed_at field.
func ByDismissedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDismissedAt, opts...).ToFunc()
}
