// Code generated by ent, DO NOT EDIT.

package subject

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the subject type in the database.
	Label = "subject"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldCharacters holds the string denoting the characters field in the database.
	FieldCharacters = "characters"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldMeanings holds the string denoting the meanings field in the database.
	FieldMeanings = "meanings"
	// FieldReadings holds the string denoting the readings field in the database.
	FieldReadings = "readings"
	// FieldPartsOfSpeech holds the string denoting the parts_of_speech field in the database.
	FieldPartsOfSpeech = "parts_of_speech"
	// FieldMeaningMnemonic holds the string denoting the meaning_mnemonic field in the database.
	FieldMeaningMnemonic = "meaning_mnemonic"
	// FieldReadingMnemonic holds the string denoting the reading_mnemonic field in the database.
	FieldReadingMnemonic = "reading_mnemonic"
	// Table holds the table name of the subject in the database.
	Table = "subjects"
)

// Columns holds all SQL columns for subject fields.
var Columns = []string{
	FieldID,
	FieldKind,
	FieldCharacters,
	FieldLevel,
	FieldMeanings,
	FieldReadings,
	FieldPartsOfSpeech,
	FieldMeaningMnemonic,
	FieldReadingMnemonic,
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
	// KindValidator is a validator for the "kind" field. It is called by the builders before save.
	KindValidator func(string) error
	// CharactersValidator is a validator for the "characters" field. It is called by the builders before save.
	CharactersValidator func(string) error
	// DefaultLevel holds the default value on creation for the "level" field.
	DefaultLevel int
)

// OrderOption defines the ordering options for the Subject queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByCharacters orders the results by the characters field.
func ByCharacters(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCharacters, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByMeaningMnemonic orders the results by the meaning_mnemonic field.
func ByMeaningMnemonic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeaningMnemonic, opts...).ToFunc()
}

// ByReadingMnemonic orders the results by the reading_mnemonic field.
func ByReadingMnemonic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadingMnemonic, opts...).ToFunc()
}
