// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mizutani/kotoba/ent/sessionitem"
)

// SessionItemCreate is the builder for creating a SessionItem entity.
type SessionItemCreate struct {
	config
	mutation *SessionItemMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SessionItemCreate) SetSessionID(v string) *SessionItemCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *SessionItemCreate) SetSubjectID(v int64) *SessionItemCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetState sets the "state" field.
func (_c *SessionItemCreate) SetState(v string) *SessionItemCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *SessionItemCreate) SetNillableState(v *string) *SessionItemCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetStage sets the "stage" field.
func (_c *SessionItemCreate) SetStage(v int) *SessionItemCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetRequired sets the "required" field.
func (_c *SessionItemCreate) SetRequired(v []bool) *SessionItemCreate {
	_c.mutation.SetRequired(v)
	return _c
}

// SetDone sets the "done" field.
func (_c *SessionItemCreate) SetDone(v []bool) *SessionItemCreate {
	_c.mutation.SetDone(v)
	return _c
}

// SetIncorrect sets the "incorrect" field.
func (_c *SessionItemCreate) SetIncorrect(v []int) *SessionItemCreate {
	_c.mutation.SetIncorrect(v)
	return _c
}

// SetNumAnswers sets the "num_answers" field.
func (_c *SessionItemCreate) SetNumAnswers(v int) *SessionItemCreate {
	_c.mutation.SetNumAnswers(v)
	return _c
}

// SetNillableNumAnswers sets the "num_answers" field if the given value is not nil.
func (_c *SessionItemCreate) SetNillableNumAnswers(v *int) *SessionItemCreate {
	if v != nil {
		_c.SetNumAnswers(*v)
	}
	return _c
}

// SetLastAnswer sets the "last_answer" field.
func (_c *SessionItemCreate) SetLastAnswer(v time.Time) *SessionItemCreate {
	_c.mutation.SetLastAnswer(v)
	return _c
}

// SetNillableLastAnswer sets the "last_answer" field if the given value is not nil.
func (_c *SessionItemCreate) SetNillableLastAnswer(v *time.Time) *SessionItemCreate {
	if v != nil {
		_c.SetLastAnswer(*v)
	}
	return _c
}

// Mutation returns the SessionItemMutation object of the builder.
func (_c *SessionItemCreate) Mutation() *SessionItemMutation {
	return _c.mutation
}

// Save creates the SessionItem in the database.
func (_c *SessionItemCreate) Save(ctx context.Context) (*SessionItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionItemCreate) SaveX(ctx context.Context) *SessionItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionItemCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := sessionitem.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.NumAnswers(); !ok {
		v := sessionitem.DefaultNumAnswers
		_c.mutation.SetNumAnswers(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionItemCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionItem.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionitem.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionItem.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubjectID(); !ok {
		return &ValidationError{Name: "subject_id", err: errors.New(`ent: missing required field "SessionItem.subject_id"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "SessionItem.state"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "SessionItem.stage"`)}
	}
	if _, ok := _c.mutation.Required(); !ok {
		return &ValidationError{Name: "required", err: errors.New(`ent: missing required field "SessionItem.required"`)}
	}
	if _, ok := _c.mutation.Done(); !ok {
		return &ValidationError{Name: "done", err: errors.New(`ent: missing required field "SessionItem.done"`)}
	}
	if _, ok := _c.mutation.Incorrect(); !ok {
		return &ValidationError{Name: "incorrect", err: errors.New(`ent: missing required field "SessionItem.incorrect"`)}
	}
	if _, ok := _c.mutation.NumAnswers(); !ok {
		return &ValidationError{Name: "num_answers", err: errors.New(`ent: missing required field "SessionItem.num_answers"`)}
	}
	return nil
}

func (_c *SessionItemCreate) sqlSave(ctx context.Context) (*SessionItem, error) {
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

func (_c *SessionItemCreate) createSpec() (*SessionItem, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionitem.Table, sqlgraph.NewFieldSpec(sessionitem.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionitem.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(sessionitem.FieldSubjectID, field.TypeInt64, value)
		_node.SubjectID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(sessionitem.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(sessionitem.FieldStage, field.TypeInt, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Required(); ok {
		_spec.SetField(sessionitem.FieldRequired, field.TypeJSON, value)
		_node.Required = value
	}
	if value, ok := _c.mutation.Done(); ok {
		_spec.SetField(sessionitem.FieldDone, field.TypeJSON, value)
		_node.Done = value
	}
	if value, ok := _c.mutation.Incorrect(); ok {
		_spec.SetField(sessionitem.FieldIncorrect, field.TypeJSON, value)
		_node.Incorrect = value
	}
	if value, ok := _c.mutation.NumAnswers(); ok {
		_spec.SetField(sessionitem.FieldNumAnswers, field.TypeInt, value)
		_node.NumAnswers = value
	}
	if value, ok := _c.mutation.LastAnswer(); ok {
		_spec.SetField(sessionitem.FieldLastAnswer, field.TypeTime, value)
		_node.LastAnswer = &value
	}
	return _node, _spec
}

// SessionItemCreateBulk is the builder for creating many SessionItem entities in bulk.
type SessionItemCreateBulk struct {
	config
	err      error
	builders []*SessionItemCreate
}

// Save creates the SessionItem entities in the database.
func (_c *SessionItemCreateBulk) Save(ctx context.Context) ([]*SessionItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionItemMutation)
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
func (_c *SessionItemCreateBulk) SaveX(ctx context.Context) []*SessionItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
