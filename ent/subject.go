// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mizutani/kotoba/ent/schema"
	"github.com/mizutani/kotoba/ent/subject"
)

// Subject is the model entity for the Subject schema.
type Subject struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// radical, kanji, or vocabulary
	Kind string `json:"kind,omitempty"`
	// The written form
	Characters string `json:"characters,omitempty"`
	// Curriculum level the subject unlocks at
	Level int `json:"level,omitempty"`
	// Accepted and rejected English meanings
	Meanings []schema.SubjectMeaning `json:"meanings,omitempty"`
	// Kana readings; empty for radicals
	Readings []schema.SubjectReading `json:"readings,omitempty"`
	// Part-of-speech labels, vocabulary only
	PartsOfSpeech []string `json:"parts_of_speech,omitempty"`
	// Generated or imported meaning mnemonic
	MeaningMnemonic string `json:"meaning_mnemonic,omitempty"`
	// Generated or imported reading mnemonic
	ReadingMnemonic string `json:"reading_mnemonic,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Subject) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subject.FieldMeanings, subject.FieldReadings, subject.FieldPartsOfSpeech:
			values[i] = new([]byte)
		case subject.FieldID, subject.FieldLevel:
			values[i] = new(sql.NullInt64)
		case subject.FieldKind, subject.FieldCharacters, subject.FieldMeaningMnemonic, subject.FieldReadingMnemonic:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Subject fields.
func (_m *Subject) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subject.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case subject.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case subject.FieldCharacters:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field characters", values[i])
			} else if value.Valid {
				_m.Characters = value.String
			}
		case subject.FieldLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = int(value.Int64)
			}
		case subject.FieldMeanings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field meanings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Meanings); err != nil {
					return fmt.Errorf("unmarshal field meanings: %w", err)
				}
			}
		case subject.FieldReadings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field readings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Readings); err != nil {
					return fmt.Errorf("unmarshal field readings: %w", err)
				}
			}
		case subject.FieldPartsOfSpeech:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field parts_of_speech", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PartsOfSpeech); err != nil {
					return fmt.Errorf("unmarshal field parts_of_speech: %w", err)
				}
			}
		case subject.FieldMeaningMnemonic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field meaning_mnemonic", values[i])
			} else if value.Valid {
				_m.MeaningMnemonic = value.String
			}
		case subject.FieldReadingMnemonic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reading_mnemonic", values[i])
			} else if value.Valid {
				_m.ReadingMnemonic = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Subject.
// This includes values selected through modifiers, order, etc.
func (_m *Subject) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Subject.
// Note that you need to call Subject.Unwrap() before calling this method if this Subject
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Subject) Update() *SubjectUpdateOne {
	return NewSubjectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Subject entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Subject) Unwrap() *Subject {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Subject is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Subject) String() string {
	var builder strings.Builder
	builder.WriteString("Subject(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("characters=")
	builder.WriteString(_m.Characters)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(fmt.Sprintf("%v", _m.Level))
	builder.WriteString(", ")
	builder.WriteString("meanings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Meanings))
	builder.WriteString(", ")
	builder.WriteString("readings=")
	builder.WriteString(fmt.Sprintf("%v", _m.Readings))
	builder.WriteString(", ")
	builder.WriteString("parts_of_speech=")
	builder.WriteString(fmt.Sprintf("%v", _m.PartsOfSpeech))
	builder.WriteString(", ")
	builder.WriteString("meaning_mnemonic=")
	builder.WriteString(_m.MeaningMnemonic)
	builder.WriteString(", ")
	builder.WriteString("reading_mnemonic=")
	builder.WriteString(_m.ReadingMnemonic)
	builder.WriteByte(')')
	return builder.String()
}

// Subjects is a parsable slice of Subject.
type Subjects []*Subject
