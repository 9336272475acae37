// Code generated by ent, DO NOT EDIT.

package reviewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reviewevent type in the database.
	Label = "review_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldIncorrectMeaning holds the string denoting the incorrect_meaning field in the database.
	FieldIncorrectMeaning = "incorrect_meaning"
	// FieldIncorrectReading holds the string denoting the incorrect_reading field in the database.
	FieldIncorrectReading = "incorrect_reading"
	// FieldStageBefore holds the string denoting the stage_before field in the database.
	FieldStageBefore = "stage_before"
	// FieldStageAfter holds the string denoting the stage_after field in the database.
	FieldStageAfter = "stage_after"
	// Table holds the table name of the reviewevent in the database.
	Table = "review_events"
)

// Columns holds all SQL columns for reviewevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldSubjectID,
	FieldIncorrectMeaning,
	FieldIncorrectReading,
	FieldStageBefore,
	FieldStageAfter,
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
	// DefaultIncorrectMeaning holds the default value on creation for the "incorrect_meaning" field.
	DefaultIncorrectMeaning int
	// DefaultIncorrectReading holds the default value on creation for the "incorrect_reading" field.
	DefaultIncorrectReading int
)

// OrderOption defines the ordering options for the ReviewEvent queries.
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

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByIncorrectMeaning orders the results by the incorrect_meaning field.
func ByIncorrectMeaning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncorrectMeaning, opts...).ToFunc()
}

// ByIncorrectReading orders the results by the incorrect_reading field.
func ByIncorrectReading(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncorrectReading, opts...).ToFunc()
}

// ByStageBefore orders the results by the stage_before field.
func ByStageBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageBefore, opts...).ToFunc()
}

// ByStageAfter orders the results by the stage_after field.
func ByStageAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStageAfter, opts...).ToFunc()
}
