// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mizutani/kotoba/ent/predicate"
	"github.com/mizutani/kotoba/ent/schema"
	"github.com/mizutani/kotoba/ent/subject"
)

// SubjectUpdate is the builder for updating Subject entities.
type SubjectUpdate struct {
	config
	hooks    []Hook
	mutation *SubjectMutation
}

// Where appends a list predicates to the SubjectUpdate builder.
func (_u *SubjectUpdate) Where(ps ...predicate.Subject) *SubjectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *SubjectUpdate) SetKind(v string) *SubjectUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableKind(v *string) *SubjectUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCharacters sets the "characters" field.
func (_u *SubjectUpdate) SetCharacters(v string) *SubjectUpdate {
	_u.mutation.SetCharacters(v)
	return _u
}

// SetNillableCharacters sets the "characters" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableCharacters(v *string) *SubjectUpdate {
	if v != nil {
		_u.SetCharacters(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *SubjectUpdate) SetLevel(v int) *SubjectUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableLevel(v *int) *SubjectUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *SubjectUpdate) AddLevel(v int) *SubjectUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetMeanings sets the "meanings" field.
func (_u *SubjectUpdate) SetMeanings(v []schema.SubjectMeaning) *SubjectUpdate {
	_u.mutation.SetMeanings(v)
	return _u
}

// AppendMeanings appends value to the "meanings" field.
func (_u *SubjectUpdate) AppendMeanings(v []schema.SubjectMeaning) *SubjectUpdate {
	_u.mutation.AppendMeanings(v)
	return _u
}

// SetReadings sets the "readings" field.
func (_u *SubjectUpdate) SetReadings(v []schema.SubjectReading) *SubjectUpdate {
	_u.mutation.SetReadings(v)
	return _u
}

// AppendReadings appends value to the "readings" field.
func (_u *SubjectUpdate) AppendReadings(v []schema.SubjectReading) *SubjectUpdate {
	_u.mutation.AppendReadings(v)
	return _u
}

// ClearReadings clears the value of the "readings" field.
func (_u *SubjectUpdate) ClearReadings() *SubjectUpdate {
	_u.mutation.ClearReadings()
	return _u
}

// SetPartsOfSpeech sets the "parts_of_speech" field.
func (_u *SubjectUpdate) SetPartsOfSpeech(v []string) *SubjectUpdate {
	_u.mutation.SetPartsOfSpeech(v)
	return _u
}

// AppendPartsOfSpeech appends value to the "parts_of_speech" field.
func (_u *SubjectUpdate) AppendPartsOfSpeech(v []string) *SubjectUpdate {
	_u.mutation.AppendPartsOfSpeech(v)
	return _u
}

// ClearPartsOfSpeech clears the value of the "parts_of_speech" field.
func (_u *SubjectUpdate) ClearPartsOfSpeech() *SubjectUpdate {
	_u.mutation.ClearPartsOfSpeech()
	return _u
}

// SetMeaningMnemonic sets the "meaning_mnemonic" field.
func (_u *SubjectUpdate) SetMeaningMnemonic(v string) *SubjectUpdate {
	_u.mutation.SetMeaningMnemonic(v)
	return _u
}

// SetNillableMeaningMnemonic sets the "meaning_mnemonic" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableMeaningMnemonic(v *string) *SubjectUpdate {
	if v != nil {
		_u.SetMeaningMnemonic(*v)
	}
	return _u
}

// ClearMeaningMnemonic clears the value of the "meaning_mnemonic" field.
func (_u *SubjectUpdate) ClearMeaningMnemonic() *SubjectUpdate {
	_u.mutation.ClearMeaningMnemonic()
	return _u
}

// SetReadingMnemonic sets the "reading_mnemonic" field.
func (_u *SubjectUpdate) SetReadingMnemonic(v string) *SubjectUpdate {
	_u.mutation.SetReadingMnemonic(v)
	return _u
}

// SetNillableReadingMnemonic sets the "reading_mnemonic" field if the given value is not nil.
func (_u *SubjectUpdate) SetNillableReadingMnemonic(v *string) *SubjectUpdate {
	if v != nil {
		_u.SetReadingMnemonic(*v)
	}
	return _u
}

// ClearReadingMnemonic clears the value of the "reading_mnemonic" field.
func (_u *SubjectUpdate) ClearReadingMnemonic() *SubjectUpdate {
	_u.mutation.ClearReadingMnemonic()
	return _u
}

// Mutation returns the SubjectMutation object of the builder.
func (_u *SubjectUpdate) Mutation() *SubjectMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubjectUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubjectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubjectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubjectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubjectUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := subject.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Subject.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Characters(); ok {
		if err := subject.CharactersValidator(v); err != nil {
			return &ValidationError{Name: "characters", err: fmt.Errorf(`ent: validator failed for field "Subject.characters": %w`, err)}
		}
	}
	return nil
}

func (_u *SubjectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subject.Table, subject.Columns, sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(subject.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Characters(); ok {
		_spec.SetField(subject.FieldCharacters, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(subject.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(subject.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Meanings(); ok {
		_spec.SetField(subject.FieldMeanings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMeanings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subject.FieldMeanings, value)
		})
	}
	if value, ok := _u.mutation.Readings(); ok {
		_spec.SetField(subject.FieldReadings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReadings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subject.FieldReadings, value)
		})
	}
	if _u.mutation.ReadingsCleared() {
		_spec.ClearField(subject.FieldReadings, field.TypeJSON)
	}
	if value, ok := _u.mutation.PartsOfSpeech(); ok {
		_spec.SetField(subject.FieldPartsOfSpeech, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPartsOfSpeech(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subject.FieldPartsOfSpeech, value)
		})
	}
	if _u.mutation.PartsOfSpeechCleared() {
		_spec.ClearField(subject.FieldPartsOfSpeech, field.TypeJSON)
	}
	if value, ok := _u.mutation.MeaningMnemonic(); ok {
		_spec.SetField(subject.FieldMeaningMnemonic, field.TypeString, value)
	}
	if _u.mutation.MeaningMnemonicCleared() {
		_spec.ClearField(subject.FieldMeaningMnemonic, field.TypeString)
	}
	if value, ok := _u.mutation.ReadingMnemonic(); ok {
		_spec.SetField(subject.FieldReadingMnemonic, field.TypeString, value)
	}
	if _u.mutation.ReadingMnemonicCleared() {
		_spec.ClearField(subject.FieldReadingMnemonic, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubjectUpdateOne is the builder for updating a single Subject entity.
type SubjectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubjectMutation
}

// SetKind sets the "kind" field.
func (_u *SubjectUpdateOne) SetKind(v string) *SubjectUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableKind(v *string) *SubjectUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetCharacters sets the "characters" field.
func (_u *SubjectUpdateOne) SetCharacters(v string) *SubjectUpdateOne {
	_u.mutation.SetCharacters(v)
	return _u
}

// SetNillableCharacters sets the "characters" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableCharacters(v *string) *SubjectUpdateOne {
	if v != nil {
		_u.SetCharacters(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *SubjectUpdateOne) SetLevel(v int) *SubjectUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableLevel(v *int) *SubjectUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *SubjectUpdateOne) AddLevel(v int) *SubjectUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetMeanings sets the "meanings" field.
func (_u *SubjectUpdateOne) SetMeanings(v []schema.SubjectMeaning) *SubjectUpdateOne {
	_u.mutation.SetMeanings(v)
	return _u
}

// AppendMeanings appends value to the "meanings" field.
func (_u *SubjectUpdateOne) AppendMeanings(v []schema.SubjectMeaning) *SubjectUpdateOne {
	_u.mutation.AppendMeanings(v)
	return _u
}

// SetReadings sets the "readings" field.
func (_u *SubjectUpdateOne) SetReadings(v []schema.SubjectReading) *SubjectUpdateOne {
	_u.mutation.SetReadings(v)
	return _u
}

// AppendReadings appends value to the "readings" field.
func (_u *SubjectUpdateOne) AppendReadings(v []schema.SubjectReading) *SubjectUpdateOne {
	_u.mutation.AppendReadings(v)
	return _u
}

// ClearReadings clears the value of the "readings" field.
func (_u *SubjectUpdateOne) ClearReadings() *SubjectUpdateOne {
	_u.mutation.ClearReadings()
	return _u
}

// SetPartsOfSpeech sets the "parts_of_speech" field.
func (_u *SubjectUpdateOne) SetPartsOfSpeech(v []string) *SubjectUpdateOne {
	_u.mutation.SetPartsOfSpeech(v)
	return _u
}

// AppendPartsOfSpeech appends value to the "parts_of_speech" field.
func (_u *SubjectUpdateOne) AppendPartsOfSpeech(v []string) *SubjectUpdateOne {
	_u.mutation.AppendPartsOfSpeech(v)
	return _u
}

// ClearPartsOfSpeech clears the value of the "parts_of_speech" field.
func (_u *SubjectUpdateOne) ClearPartsOfSpeech() *SubjectUpdateOne {
	_u.mutation.ClearPartsOfSpeech()
	return _u
}

// SetMeaningMnemonic sets the "meaning_mnemonic" field.
func (_u *SubjectUpdateOne) SetMeaningMnemonic(v string) *SubjectUpdateOne {
	_u.mutation.SetMeaningMnemonic(v)
	return _u
}

// SetNillableMeaningMnemonic sets the "meaning_mnemonic" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableMeaningMnemonic(v *string) *SubjectUpdateOne {
	if v != nil {
		_u.SetMeaningMnemonic(*v)
	}
	return _u
}

// ClearMeaningMnemonic clears the value of the "meaning_mnemonic" field.
func (_u *SubjectUpdateOne) ClearMeaningMnemonic() *SubjectUpdateOne {
	_u.mutation.ClearMeaningMnemonic()
	return _u
}

// SetReadingMnemonic sets the "reading_mnemonic" field.
func (_u *SubjectUpdateOne) SetReadingMnemonic(v string) *SubjectUpdateOne {
	_u.mutation.SetReadingMnemonic(v)
	return _u
}

// SetNillableReadingMnemonic sets the "reading_mnemonic" field if the given value is not nil.
func (_u *SubjectUpdateOne) SetNillableReadingMnemonic(v *string) *SubjectUpdateOne {
	if v != nil {
		_u.SetReadingMnemonic(*v)
	}
	return _u
}

// ClearReadingMnemonic clears the value of the "reading_mnemonic" field.
func (_u *SubjectUpdateOne) ClearReadingMnemonic() *SubjectUpdateOne {
	_u.mutation.ClearReadingMnemonic()
	return _u
}

// Mutation returns the SubjectMutation object of the builder.
func (_u *SubjectUpdateOne) Mutation() *SubjectMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubjectUpdate builder.
func (_u *SubjectUpdateOne) Where(ps ...predicate.Subject) *SubjectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubjectUpdateOne) Select(field string, fields ...string) *SubjectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Subject entity.
func (_u *SubjectUpdateOne) Save(ctx context.Context) (*Subject, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubjectUpdateOne) SaveX(ctx context.Context) *Subject {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubjectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubjectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubjectUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := subject.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Subject.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Characters(); ok {
		if err := subject.CharactersValidator(v); err != nil {
			return &ValidationError{Name: "characters", err: fmt.Errorf(`ent: validator failed for field "Subject.characters": %w`, err)}
		}
	}
	return nil
}

func (_u *SubjectUpdateOne) sqlSave(ctx context.Context) (_node *Subject, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subject.Table, subject.Columns, sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Subject.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subject.FieldID)
		for _, f := range fields {
			if !subject.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subject.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(subject.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Characters(); ok {
		_spec.SetField(subject.FieldCharacters, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(subject.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(subject.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Meanings(); ok {
		_spec.SetField(subject.FieldMeanings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMeanings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subject.FieldMeanings, value)
		})
	}
	if value, ok := _u.mutation.Readings(); ok {
		_spec.SetField(subject.FieldReadings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedReadings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subject.FieldReadings, value)
		})
	}
	if _u.mutation.ReadingsCleared() {
		_spec.ClearField(subject.FieldReadings, field.TypeJSON)
	}
	if value, ok := _u.mutation.PartsOfSpeech(); ok {
		_spec.SetField(subject.FieldPartsOfSpeech, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPartsOfSpeech(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subject.FieldPartsOfSpeech, value)
		})
	}
	if _u.mutation.PartsOfSpeechCleared() {
		_spec.ClearField(subject.FieldPartsOfSpeech, field.TypeJSON)
	}
	if value, ok := _u.mutation.MeaningMnemonic(); ok {
		_spec.SetField(subject.FieldMeaningMnemonic, field.TypeString, value)
	}
	if _u.mutation.MeaningMnemonicCleared() {
		_spec.ClearField(subject.FieldMeaningMnemonic, field.TypeString)
	}
	if value, ok := _u.mutation.ReadingMnemonic(); ok {
		_spec.SetField(subject.FieldReadingMnemonic, field.TypeString, value)
	}
	if _u.mutation.ReadingMnemonicCleared() {
		_spec.ClearField(subject.FieldReadingMnemonic, field.TypeString)
	}
	_node = &Subject{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subject.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
