// Code generated by ent, DO NOT EDIT.

package subject

import (
	"entgo.io/ent/dialect/sql"
	"github.com/mizutani/kotoba/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldID, id))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldKind, v))
}

// Characters applies equality check predicate on the "characters" field. It's identical to CharactersEQ.
func Characters(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldCharacters, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldLevel, v))
}

// MeaningMnemonic applies equality check predicate on the "meaning_mnemonic" field. It's identical to MeaningMnemonicEQ.
func MeaningMnemonic(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldMeaningMnemonic, v))
}

// ReadingMnemonic applies equality check predicate on the "reading_mnemonic" field. It's identical to ReadingMnemonicEQ.
func ReadingMnemonic(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldReadingMnemonic, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContainsFold(FieldKind, v))
}

// CharactersEQ applies the EQ predicate on the "characters" field.
func CharactersEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldCharacters, v))
}

// CharactersNEQ applies the NEQ predicate on the "characters" field.
func CharactersNEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldCharacters, v))
}

// CharactersIn applies the In predicate on the "characters" field.
func CharactersIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldCharacters, vs...))
}

// CharactersNotIn applies the NotIn predicate on the "characters" field.
func CharactersNotIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldCharacters, vs...))
}

// CharactersGT applies the GT predicate on the "characters" field.
func CharactersGT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldCharacters, v))
}

// CharactersGTE applies the GTE predicate on the "characters" field.
func CharactersGTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldCharacters, v))
}

// CharactersLT applies the LT predicate on the "characters" field.
func CharactersLT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldCharacters, v))
}

// CharactersLTE applies the LTE predicate on the "characters" field.
func CharactersLTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldCharacters, v))
}

// CharactersContains applies the Contains predicate on the "characters" field.
func CharactersContains(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContains(FieldCharacters, v))
}

// CharactersHasPrefix applies the HasPrefix predicate on the "characters" field.
func CharactersHasPrefix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasPrefix(FieldCharacters, v))
}

// CharactersHasSuffix applies the HasSuffix predicate on the "characters" field.
func CharactersHasSuffix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasSuffix(FieldCharacters, v))
}

// CharactersEqualFold applies the EqualFold predicate on the "characters" field.
func CharactersEqualFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEqualFold(FieldCharacters, v))
}

// CharactersContainsFold applies the ContainsFold predicate on the "characters" field.
func CharactersContainsFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContainsFold(FieldCharacters, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldLevel, v))
}

// ReadingsIsNil applies the IsNil predicate on the "readings" field.
func ReadingsIsNil() predicate.Subject {
	return predicate.Subject(sql.FieldIsNull(FieldReadings))
}

// ReadingsNotNil applies the NotNil predicate on the "readings" field.
func ReadingsNotNil() predicate.Subject {
	return predicate.Subject(sql.FieldNotNull(FieldReadings))
}

// PartsOfSpeechIsNil applies the IsNil predicate on the "parts_of_speech" field.
func PartsOfSpeechIsNil() predicate.Subject {
	return predicate.Subject(sql.FieldIsNull(FieldPartsOfSpeech))
}

// PartsOfSpeechNotNil applies the NotNil predicate on the "parts_of_speech" field.
func PartsOfSpeechNotNil() predicate.Subject {
	return predicate.Subject(sql.FieldNotNull(FieldPartsOfSpeech))
}

// MeaningMnemonicEQ applies the EQ predicate on the "meaning_mnemonic" field.
func MeaningMnemonicEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldMeaningMnemonic, v))
}

// MeaningMnemonicNEQ applies the NEQ predicate on the "meaning_mnemonic" field.
func MeaningMnemonicNEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldMeaningMnemonic, v))
}

// MeaningMnemonicIn applies the In predicate on the "meaning_mnemonic" field.
func MeaningMnemonicIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldMeaningMnemonic, vs...))
}

// MeaningMnemonicNotIn applies the NotIn predicate on the "meaning_mnemonic" field.
func MeaningMnemonicNotIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldMeaningMnemonic, vs...))
}

// MeaningMnemonicGT applies the GT predicate on the "meaning_mnemonic" field.
func MeaningMnemonicGT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldMeaningMnemonic, v))
}

// MeaningMnemonicGTE applies the GTE predicate on the "meaning_mnemonic" field.
func MeaningMnemonicGTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldMeaningMnemonic, v))
}

// MeaningMnemonicLT applies the LT predicate on the "meaning_mnemonic" field.
func MeaningMnemonicLT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldMeaningMnemonic, v))
}

// MeaningMnemonicLTE applies the LTE predicate on the "meaning_mnemonic" field.
func MeaningMnemonicLTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldMeaningMnemonic, v))
}

// MeaningMnemonicContains applies the Contains predicate on the "meaning_mnemonic" field.
func MeaningMnemonicContains(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContains(FieldMeaningMnemonic, v))
}

// MeaningMnemonicHasPrefix applies the HasPrefix predicate on the "meaning_mnemonic" field.
func MeaningMnemonicHasPrefix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasPrefix(FieldMeaningMnemonic, v))
}

// MeaningMnemonicHasSuffix applies the HasSuffix predicate on the "meaning_mnemonic" field.
func MeaningMnemonicHasSuffix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasSuffix(FieldMeaningMnemonic, v))
}

// MeaningMnemonicIsNil applies the IsNil predicate on the "meaning_mnemonic" field.
func MeaningMnemonicIsNil() predicate.Subject {
	return predicate.Subject(sql.FieldIsNull(FieldMeaningMnemonic))
}

// MeaningMnemonicNotNil applies the NotNil predicate on the "meaning_mnemonic" field.
func MeaningMnemonicNotNil() predicate.Subject {
	return predicate.Subject(sql.FieldNotNull(FieldMeaningMnemonic))
}

// MeaningMnemonicEqualFold applies the EqualFold predicate on the "meaning_mnemonic" field.
func MeaningMnemonicEqualFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEqualFold(FieldMeaningMnemonic, v))
}

// MeaningMnemonicContainsFold applies the ContainsFold predicate on the "meaning_mnemonic" field.
func MeaningMnemonicContainsFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContainsFold(FieldMeaningMnemonic, v))
}

// ReadingMnemonicEQ applies the EQ predicate on the "reading_mnemonic" field.
func ReadingMnemonicEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEQ(FieldReadingMnemonic, v))
}

// ReadingMnemonicNEQ applies the NEQ predicate on the "reading_mnemonic" field.
func ReadingMnemonicNEQ(v string) predicate.Subject {
	return predicate.Subject(sql.FieldNEQ(FieldReadingMnemonic, v))
}

// ReadingMnemonicIn applies the In predicate on the "reading_mnemonic" field.
func ReadingMnemonicIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldIn(FieldReadingMnemonic, vs...))
}

// ReadingMnemonicNotIn applies the NotIn predicate on the "reading_mnemonic" field.
func ReadingMnemonicNotIn(vs ...string) predicate.Subject {
	return predicate.Subject(sql.FieldNotIn(FieldReadingMnemonic, vs...))
}

// ReadingMnemonicGT applies the GT predicate on the "reading_mnemonic" field.
func ReadingMnemonicGT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGT(FieldReadingMnemonic, v))
}

// ReadingMnemonicGTE applies the GTE predicate on the "reading_mnemonic" field.
func ReadingMnemonicGTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldGTE(FieldReadingMnemonic, v))
}

// ReadingMnemonicLT applies the LT predicate on the "reading_mnemonic" field.
func ReadingMnemonicLT(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLT(FieldReadingMnemonic, v))
}

// ReadingMnemonicLTE applies the LTE predicate on the "reading_mnemonic" field.
func ReadingMnemonicLTE(v string) predicate.Subject {
	return predicate.Subject(sql.FieldLTE(FieldReadingMnemonic, v))
}

// ReadingMnemonicContains applies the Contains predicate on the "reading_mnemonic" field.
func ReadingMnemonicContains(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContains(FieldReadingMnemonic, v))
}

// ReadingMnemonicHasPrefix applies the HasPrefix predicate on the "reading_mnemonic" field.
func ReadingMnemonicHasPrefix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasPrefix(FieldReadingMnemonic, v))
}

// ReadingMnemonicHasSuffix applies the HasSuffix predicate on the "reading_mnemonic" field.
func ReadingMnemonicHasSuffix(v string) predicate.Subject {
	return predicate.Subject(sql.FieldHasSuffix(FieldReadingMnemonic, v))
}

// ReadingMnemonicIsNil applies the IsNil predicate on the "reading_mnemonic" field.
func ReadingMnemonicIsNil() predicate.Subject {
	return predicate.Subject(sql.FieldIsNull(FieldReadingMnemonic))
}

// ReadingMnemonicNotNil applies the NotNil predicate on the "reading_mnemonic" field.
func ReadingMnemonicNotNil() predicate.Subject {
	return predicate.Subject(sql.FieldNotNull(FieldReadingMnemonic))
}

// ReadingMnemonicEqualFold applies the EqualFold predicate on the "reading_mnemonic" field.
func ReadingMnemonicEqualFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldEqualFold(FieldReadingMnemonic, v))
}

// ReadingMnemonicContainsFold applies the ContainsFold predicate on the "reading_mnemonic" field.
func ReadingMnemonicContainsFold(v string) predicate.Subject {
	return predicate.Subject(sql.FieldContainsFold(FieldReadingMnemonic, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Subject) predicate.Subject {
	return predicate.Subject(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Subject) predicate.Subject {
	return predicate.Subject(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Subject) predicate.Subject {
	return predicate.Subject(sql.NotPredicates(p))
}
