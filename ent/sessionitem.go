// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mizutani/kotoba/ent/sessionitem"
)

// SessionItem is the model entity for the SessionItem schema.
type SessionItem struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID of the owning session
	SessionID string `json:"session_id,omitempty"`
	// Subject the item tracks
	SubjectID int64 `json:"subject_id,omitempty"`
	// active, pending, reported, or abandoned
	State string `json:"state,omitempty"`
	// Stage going into the session
	Stage int `json:"stage,omitempty"`
	// Which question slots the item asks
	Required []bool `json:"required,omitempty"`
	// Which question slots have been answered correctly
	Done []bool `json:"done,omitempty"`
	// Incorrect answer count per slot
	Incorrect []int `json:"incorrect,omitempty"`
	// Total recorded answers, net of undo
	NumAnswers int `json:"num_answers,omitempty"`
	// When the most recent correct answer was recorded
	LastAnswer   *time.Time `json:"last_answer,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionitem.FieldRequired, sessionitem.FieldDone, sessionitem.FieldIncorrect:
			values[i] = new([]byte)
		case sessionitem.FieldID, sessionitem.FieldSubjectID, sessionitem.FieldStage, sessionitem.FieldNumAnswers:
			values[i] = new(sql.NullInt64)
		case sessionitem.FieldSessionID, sessionitem.FieldState:
			values[i] = new(sql.NullString)
		case sessionitem.FieldLastAnswer:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionItem fields.
func (_m *SessionItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionitem.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionitem.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionitem.FieldSubjectID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subject_id", values[i])
			} else if value.Valid {
				_m.SubjectID = value.Int64
			}
		case sessionitem.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case sessionitem.FieldStage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = int(value.Int64)
			}
		case sessionitem.FieldRequired:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field required", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Required); err != nil {
					return fmt.Errorf("unmarshal field required: %w", err)
				}
			}
		case sessionitem.FieldDone:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field done", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Done); err != nil {
					return fmt.Errorf("unmarshal field done: %w", err)
				}
			}
		case sessionitem.FieldIncorrect:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field incorrect", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Incorrect); err != nil {
					return fmt.Errorf("unmarshal field incorrect: %w", err)
				}
			}
		case sessionitem.FieldNumAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field num_answers", values[i])
			} else if value.Valid {
				_m.NumAnswers = int(value.Int64)
			}
		case sessionitem.FieldLastAnswer:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_answer", values[i])
			} else if value.Valid {
				_m.LastAnswer = new(time.Time)
				*_m.LastAnswer = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionItem.
// This includes values selected through modifiers, order, etc.
func (_m *SessionItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionItem.
// Note that you need to call SessionItem.Unwrap() before calling this method if this SessionItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionItem) Update() *SessionItemUpdateOne {
	return NewSessionItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionItem) Unwrap() *SessionItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionItem) String() string {
	var builder strings.Builder
	builder.WriteString("SessionItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("subject_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubjectID))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("required=")
	builder.WriteString(fmt.Sprintf("%v", _m.Required))
	builder.WriteString(", ")
	builder.WriteString("done=")
	builder.WriteString(fmt.Sprintf("%v", _m.Done))
	builder.WriteString(", ")
	builder.WriteString("incorrect=")
	builder.WriteString(fmt.Sprintf("%v", _m.Incorrect))
	builder.WriteString(", ")
	builder.WriteString("num_answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.NumAnswers))
	builder.WriteString(", ")
	if v := _m.LastAnswer; v != nil {
		builder.WriteString("last_answer=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// SessionItems is a parsable slice of SessionItem.
type SessionItems []*SessionItem
