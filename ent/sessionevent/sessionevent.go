// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldSessionType holds the string denoting the session_type field in the database.
	FieldSessionType = "session_type"
	// FieldItemsTotal holds the string denoting the items_total field in the database.
	FieldItemsTotal = "items_total"
	// FieldItemsCompleted holds the string denoting the items_completed field in the database.
	FieldItemsCompleted = "items_completed"
	// FieldItemsAbandoned holds the string denoting the items_abandoned field in the database.
	FieldItemsAbandoned = "items_abandoned"
	// FieldIncorrectTotal holds the string denoting the incorrect_total field in the database.
	FieldIncorrectTotal = "incorrect_total"
	// FieldDurationSecs holds the string denoting the duration_secs field in the database.
	FieldDurationSecs = "duration_secs"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldAction,
	FieldSessionType,
	FieldItemsTotal,
	FieldItemsCompleted,
	FieldItemsAbandoned,
	FieldIncorrectTotal,
	FieldDurationSecs,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// SessionTypeValidator is a validator for the "session_type" field. It is called by the builders before save.
	SessionTypeValidator func(string) error
	// DefaultItemsTotal holds the default value on creation for the "items_total" field.
	DefaultItemsTotal int
	// DefaultItemsCompleted holds the default value on creation for the "items_completed" field.
	DefaultItemsCompleted int
	// DefaultItemsAbandoned holds the default value on creation for the "items_abandoned" field.
	DefaultItemsAbandoned int
	// DefaultIncorrectTotal holds the default value on creation for the "incorrect_total" field.
	DefaultIncorrectTotal int
	// DefaultDurationSecs holds the default value on creation for the "duration_secs" field.
	DefaultDurationSecs int
)

// OrderOption defines the ordering options for the SessionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// BySessionType orders the results by the session_type field.
func BySessionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionType, opts...).ToFunc()
}

// ByItemsTotal orders the results by the items_total field.
func ByItemsTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemsTotal, opts...).ToFunc()
}

// ByItemsCompleted orders the results by the items_completed field.
func ByItemsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemsCompleted, opts...).ToFunc()
}

// ByItemsAbandoned orders the results by the items_abandoned field.
func ByItemsAbandoned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemsAbandoned, opts...).ToFunc()
}

// ByIncorrectTotal orders the results by the incorrect_total field.
func ByIncorrectTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncorrectTotal, opts...).ToFunc()
}

// ByDurationSecs orders the results by the duration_secs field.
func ByDurationSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationSecs, opts...).ToFunc()
}
