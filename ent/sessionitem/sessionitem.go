// Code generated by ent, DO NOT EDIT.

package sessionitem

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionitem type in the database.
	Label = "session_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSubjectID holds the string denoting the subject_id field in the database.
	FieldSubjectID = "subject_id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldRequired holds the string denoting the required field in the database.
	FieldRequired = "required"
	// FieldDone holds the string denoting the done field in the database.
	FieldDone = "done"
	// FieldIncorrect holds the string denoting the incorrect field in the database.
	FieldIncorrect = "incorrect"
	// FieldNumAnswers holds the string denoting the num_answers field in the database.
	FieldNumAnswers = "num_answers"
	// FieldLastAnswer holds the string denoting the last_answer field in the database.
	FieldLastAnswer = "last_answer"
	// Table holds the table name of the sessionitem in the database.
	Table = "session_items"
)

// Columns holds all SQL columns for sessionitem fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldSubjectID,
	FieldState,
	FieldStage,
	FieldRequired,
	FieldDone,
	FieldIncorrect,
	FieldNumAnswers,
	FieldLastAnswer,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultState holds the default value on creation for the "state" field.
	DefaultState string
	// DefaultNumAnswers holds the default value on creation for the "num_answers" field.
	DefaultNumAnswers int
)

// OrderOption defines the ordering options for the SessionItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// BySubjectID orders the results by the subject_id field.
func BySubjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubjectID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByNumAnswers orders the results by the num_answers field.
func ByNumAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumAnswers, opts...).ToFunc()
}

// ByLastAnswer orders the results by the last_answer field.
func ByLastAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastAnswer, opts...).ToFunc()
}
