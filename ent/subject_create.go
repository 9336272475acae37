// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mizutani/kotoba/ent/schema"
	"github.com/mizutani/kotoba/ent/subject"
)

// SubjectCreate is the builder for creating a Subject entity.
type SubjectCreate struct {
	config
	mutation *SubjectMutation
	hooks    []Hook
}

// SetKind sets the "kind" field.
func (_c *SubjectCreate) SetKind(v string) *SubjectCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetCharacters sets the "characters" field.
func (_c *SubjectCreate) SetCharacters(v string) *SubjectCreate {
	_c.mutation.SetCharacters(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *SubjectCreate) SetLevel(v int) *SubjectCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableLevel(v *int) *SubjectCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetMeanings sets the "meanings" field.
func (_c *SubjectCreate) SetMeanings(v []schema.SubjectMeaning) *SubjectCreate {
	_c.mutation.SetMeanings(v)
	return _c
}

// SetReadings sets the "readings" field.
func (_c *SubjectCreate) SetReadings(v []schema.SubjectReading) *SubjectCreate {
	_c.mutation.SetReadings(v)
	return _c
}

// SetPartsOfSpeech sets the "parts_of_speech" field.
func (_c *SubjectCreate) SetPartsOfSpeech(v []string) *SubjectCreate {
	_c.mutation.SetPartsOfSpeech(v)
	return _c
}

// SetMeaningMnemonic sets the "meaning_mnemonic" field.
func (_c *SubjectCreate) SetMeaningMnemonic(v string) *SubjectCreate {
	_c.mutation.SetMeaningMnemonic(v)
	return _c
}

// SetNillableMeaningMnemonic sets the "meaning_mnemonic" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableMeaningMnemonic(v *string) *SubjectCreate {
	if v != nil {
		_c.SetMeaningMnemonic(*v)
	}
	return _c
}

// SetReadingMnemonic sets the "reading_mnemonic" field.
func (_c *SubjectCreate) SetReadingMnemonic(v string) *SubjectCreate {
	_c.mutation.SetReadingMnemonic(v)
	return _c
}

// SetNillableReadingMnemonic sets the "reading_mnemonic" field if the given value is not nil.
func (_c *SubjectCreate) SetNillableReadingMnemonic(v *string) *SubjectCreate {
	if v != nil {
		_c.SetReadingMnemonic(*v)
	}
	return _c
}

// Mutation returns the SubjectMutation object of the builder.
func (_c *SubjectCreate) Mutation() *SubjectMutation {
	return _c.mutation
}

// Save creates the Subject in the database.
func (_c *SubjectCreate) Save(ctx context.Context) (*Subject, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubjectCreate) SaveX(ctx context.Context) *Subject {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubjectCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubjectCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SubjectCreate) defaults() {
	if _, ok := _c.mutation.Level(); !ok {
		v := subject.DefaultLevel
		_c.mutation.SetLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubjectCreate) check() error {
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Subject.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := subject.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Subject.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Characters(); !ok {
		return &ValidationError{Name: "characters", err: errors.New(`ent: missing required field "Subject.characters"`)}
	}
	if v, ok := _c.mutation.Characters(); ok {
		if err := subject.CharactersValidator(v); err != nil {
			return &ValidationError{Name: "characters", err: fmt.Errorf(`ent: validator failed for field "Subject.characters": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Subject.level"`)}
	}
	if _, ok := _c.mutation.Meanings(); !ok {
		return &ValidationError{Name: "meanings", err: errors.New(`ent: missing required field "Subject.meanings"`)}
	}
	return nil
}

func (_c *SubjectCreate) sqlSave(ctx context.Context) (*Subject, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SubjectCreate) createSpec() (*Subject, *sqlgraph.CreateSpec) {
	var (
		_node = &Subject{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subject.Table, sqlgraph.NewFieldSpec(subject.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(subject.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Characters(); ok {
		_spec.SetField(subject.FieldCharacters, field.TypeString, value)
		_node.Characters = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(subject.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Meanings(); ok {
		_spec.SetField(subject.FieldMeanings, field.TypeJSON, value)
		_node.Meanings = value
	}
	if value, ok := _c.mutation.Readings(); ok {
		_spec.SetField(subject.FieldReadings, field.TypeJSON, value)
		_node.Readings = value
	}
	if value, ok := _c.mutation.PartsOfSpeech(); ok {
		_spec.SetField(subject.FieldPartsOfSpeech, field.TypeJSON, value)
		_node.PartsOfSpeech = value
	}
	if value, ok := _c.mutation.MeaningMnemonic(); ok {
		_spec.SetField(subject.FieldMeaningMnemonic, field.TypeString, value)
		_node.MeaningMnemonic = value
	}
	if value, ok := _c.mutation.ReadingMnemonic(); ok {
		_spec.SetField(subject.FieldReadingMnemonic, field.TypeString, value)
		_node.ReadingMnemonic = value
	}
	return _node, _spec
}

// SubjectCreateBulk is the builder for creating many Subject entities in bulk.
type SubjectCreateBulk struct {
	config
	err      error
	builders []*SubjectCreate
}

// Save creates the Subject entities in the database.
func (_c *SubjectCreateBulk) Save(ctx context.Context) ([]*Subject, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Subject, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubjectMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SubjectCreateBulk) SaveX(ctx context.Context) []*Subject {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubjectCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubjectCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
