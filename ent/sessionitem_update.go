// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/mizutani/kotoba/ent/predicate"
	"github.com/mizutani/kotoba/ent/sessionitem"
)

// SessionItemUpdate is the builder for updating SessionItem entities.
type SessionItemUpdate struct {
	config
	hooks    []Hook
	mutation *SessionItemMutation
}

// Where appends a list predicates to the SessionItemUpdate builder.
func (_u *SessionItemUpdate) Where(ps ...predicate.SessionItem) *SessionItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionItemUpdate) SetSessionID(v string) *SessionItemUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionItemUpdate) SetNillableSessionID(v *string) *SessionItemUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *SessionItemUpdate) SetSubjectID(v int64) *SessionItemUpdate {
	_u.mutation.ResetSubjectID()
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *SessionItemUpdate) SetNillableSubjectID(v *int64) *SessionItemUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// AddSubjectID adds value to the "subject_id" field.
func (_u *SessionItemUpdate) AddSubjectID(v int64) *SessionItemUpdate {
	_u.mutation.AddSubjectID(v)
	return _u
}

// SetState sets the "state" field.
func (_u *SessionItemUpdate) SetState(v string) *SessionItemUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *SessionItemUpdate) SetNillableState(v *string) *SessionItemUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *SessionItemUpdate) SetStage(v int) *SessionItemUpdate {
	_u.mutation.ResetStage()
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *SessionItemUpdate) SetNillableStage(v *int) *SessionItemUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// AddStage adds value to the "stage" field.
func (_u *SessionItemUpdate) AddStage(v int) *SessionItemUpdate {
	_u.mutation.AddStage(v)
	return _u
}

// SetRequired sets the "required" field.
func (_u *SessionItemUpdate) SetRequired(v []bool) *SessionItemUpdate {
	_u.mutation.SetRequired(v)
	return _u
}

// AppendRequired appends value to the "required" field.
func (_u *SessionItemUpdate) AppendRequired(v []bool) *SessionItemUpdate {
	_u.mutation.AppendRequired(v)
	return _u
}

// SetDone sets the "done" field.
func (_u *SessionItemUpdate) SetDone(v []bool) *SessionItemUpdate {
	_u.mutation.SetDone(v)
	return _u
}

// AppendDone appends value to the "done" field.
func (_u *SessionItemUpdate) AppendDone(v []bool) *SessionItemUpdate {
	_u.mutation.AppendDone(v)
	return _u
}

// SetIncorrect sets the "incorrect" field.
func (_u *SessionItemUpdate) SetIncorrect(v []int) *SessionItemUpdate {
	_u.mutation.SetIncorrect(v)
	return _u
}

// AppendIncorrect appends value to the "incorrect" field.
func (_u *SessionItemUpdate) AppendIncorrect(v []int) *SessionItemUpdate {
	_u.mutation.AppendIncorrect(v)
	return _u
}

// SetNumAnswers sets the "num_answers" field.
func (_u *SessionItemUpdate) SetNumAnswers(v int) *SessionItemUpdate {
	_u.mutation.ResetNumAnswers()
	_u.mutation.SetNumAnswers(v)
	return _u
}

// SetNillableNumAnswers sets the "num_answers" field if the given value is not nil.
func (_u *SessionItemUpdate) SetNillableNumAnswers(v *int) *SessionItemUpdate {
	if v != nil {
		_u.SetNumAnswers(*v)
	}
	return _u
}

// AddNumAnswers adds value to the "num_answers" field.
func (_u *SessionItemUpdate) AddNumAnswers(v int) *SessionItemUpdate {
	_u.mutation.AddNumAnswers(v)
	return _u
}

// SetLastAnswer sets the "last_answer" field.
func (_u *SessionItemUpdate) SetLastAnswer(v time.Time) *SessionItemUpdate {
	_u.mutation.SetLastAnswer(v)
	return _u
}

// SetNillableLastAnswer sets the "last_answer" field if the given value is not nil.
func (_u *SessionItemUpdate) SetNillableLastAnswer(v *time.Time) *SessionItemUpdate {
	if v != nil {
		_u.SetLastAnswer(*v)
	}
	return _u
}

// ClearLastAnswer clears the value of the "last_answer" field.
func (_u *SessionItemUpdate) ClearLastAnswer() *SessionItemUpdate {
	_u.mutation.ClearLastAnswer()
	return _u
}

// Mutation returns the SessionItemMutation object of the builder.
func (_u *SessionItemUpdate) Mutation() *SessionItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionItemUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionitem.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionItem.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionitem.Table, sessionitem.Columns, sqlgraph.NewFieldSpec(sessionitem.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionitem.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(sessionitem.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSubjectID(); ok {
		_spec.AddField(sessionitem.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(sessionitem.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(sessionitem.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStage(); ok {
		_spec.AddField(sessionitem.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Required(); ok {
		_spec.SetField(sessionitem.FieldRequired, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequired(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionitem.FieldRequired, value)
		})
	}
	if value, ok := _u.mutation.Done(); ok {
		_spec.SetField(sessionitem.FieldDone, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDone(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionitem.FieldDone, value)
		})
	}
	if value, ok := _u.mutation.Incorrect(); ok {
		_spec.SetField(sessionitem.FieldIncorrect, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIncorrect(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionitem.FieldIncorrect, value)
		})
	}
	if value, ok := _u.mutation.NumAnswers(); ok {
		_spec.SetField(sessionitem.FieldNumAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumAnswers(); ok {
		_spec.AddField(sessionitem.FieldNumAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAnswer(); ok {
		_spec.SetField(sessionitem.FieldLastAnswer, field.TypeTime, value)
	}
	if _u.mutation.LastAnswerCleared() {
		_spec.ClearField(sessionitem.FieldLastAnswer, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionItemUpdateOne is the builder for updating a single SessionItem entity.
type SessionItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionItemMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionItemUpdateOne) SetSessionID(v string) *SessionItemUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionItemUpdateOne) SetNillableSessionID(v *string) *SessionItemUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *SessionItemUpdateOne) SetSubjectID(v int64) *SessionItemUpdateOne {
	_u.mutation.ResetSubjectID()
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *SessionItemUpdateOne) SetNillableSubjectID(v *int64) *SessionItemUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// AddSubjectID adds value to the "subject_id" field.
func (_u *SessionItemUpdateOne) AddSubjectID(v int64) *SessionItemUpdateOne {
	_u.mutation.AddSubjectID(v)
	return _u
}

// SetState sets the "state" field.
func (_u *SessionItemUpdateOne) SetState(v string) *SessionItemUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *SessionItemUpdateOne) SetNillableState(v *string) *SessionItemUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *SessionItemUpdateOne) SetStage(v int) *SessionItemUpdateOne {
	_u.mutation.ResetStage()
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *SessionItemUpdateOne) SetNillableStage(v *int) *SessionItemUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// AddStage adds value to the "stage" field.
func (_u *SessionItemUpdateOne) AddStage(v int) *SessionItemUpdateOne {
	_u.mutation.AddStage(v)
	return _u
}

// SetRequired sets the "required" field.
func (_u *SessionItemUpdateOne) SetRequired(v []bool) *SessionItemUpdateOne {
	_u.mutation.SetRequired(v)
	return _u
}

// AppendRequired appends value to the "required" field.
func (_u *SessionItemUpdateOne) AppendRequired(v []bool) *SessionItemUpdateOne {
	_u.mutation.AppendRequired(v)
	return _u
}

// SetDone sets the "done" field.
func (_u *SessionItemUpdateOne) SetDone(v []bool) *SessionItemUpdateOne {
	_u.mutation.SetDone(v)
	return _u
}

// AppendDone appends value to the "done" field.
func (_u *SessionItemUpdateOne) AppendDone(v []bool) *SessionItemUpdateOne {
	_u.mutation.AppendDone(v)
	return _u
}

// SetIncorrect sets the "incorrect" field.
func (_u *SessionItemUpdateOne) SetIncorrect(v []int) *SessionItemUpdateOne {
	_u.mutation.SetIncorrect(v)
	return _u
}

// AppendIncorrect appends value to the "incorrect" field.
func (_u *SessionItemUpdateOne) AppendIncorrect(v []int) *SessionItemUpdateOne {
	_u.mutation.AppendIncorrect(v)
	return _u
}

// SetNumAnswers sets the "num_answers" field.
func (_u *SessionItemUpdateOne) SetNumAnswers(v int) *SessionItemUpdateOne {
	_u.mutation.ResetNumAnswers()
	_u.mutation.SetNumAnswers(v)
	return _u
}

// SetNillableNumAnswers sets the "num_answers" field if the given value is not nil.
func (_u *SessionItemUpdateOne) SetNillableNumAnswers(v *int) *SessionItemUpdateOne {
	if v != nil {
		_u.SetNumAnswers(*v)
	}
	return _u
}

// AddNumAnswers adds value to the "num_answers" field.
func (_u *SessionItemUpdateOne) AddNumAnswers(v int) *SessionItemUpdateOne {
	_u.mutation.AddNumAnswers(v)
	return _u
}

// SetLastAnswer sets the "last_answer" field.
func (_u *SessionItemUpdateOne) SetLastAnswer(v time.Time) *SessionItemUpdateOne {
	_u.mutation.SetLastAnswer(v)
	return _u
}

// SetNillableLastAnswer sets the "last_answer" field if the given value is not nil.
func (_u *SessionItemUpdateOne) SetNillableLastAnswer(v *time.Time) *SessionItemUpdateOne {
	if v != nil {
		_u.SetLastAnswer(*v)
	}
	return _u
}

// ClearLastAnswer clears the value of the "last_answer" field.
func (_u *SessionItemUpdateOne) ClearLastAnswer() *SessionItemUpdateOne {
	_u.mutation.ClearLastAnswer()
	return _u
}

// Mutation returns the SessionItemMutation object of the builder.
func (_u *SessionItemUpdateOne) Mutation() *SessionItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionItemUpdate builder.
func (_u *SessionItemUpdateOne) Where(ps ...predicate.SessionItem) *SessionItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionItemUpdateOne) Select(field string, fields ...string) *SessionItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionItem entity.
func (_u *SessionItemUpdateOne) Save(ctx context.Context) (*SessionItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionItemUpdateOne) SaveX(ctx context.Context) *SessionItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionItemUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionitem.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionItem.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionItemUpdateOne) sqlSave(ctx context.Context) (_node *SessionItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionitem.Table, sessionitem.Columns, sqlgraph.NewFieldSpec(sessionitem.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionitem.FieldID)
		for _, f := range fields {
			if !sessionitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionitem.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionitem.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(sessionitem.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSubjectID(); ok {
		_spec.AddField(sessionitem.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(sessionitem.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(sessionitem.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStage(); ok {
		_spec.AddField(sessionitem.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Required(); ok {
		_spec.SetField(sessionitem.FieldRequired, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRequired(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionitem.FieldRequired, value)
		})
	}
	if value, ok := _u.mutation.Done(); ok {
		_spec.SetField(sessionitem.FieldDone, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDone(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionitem.FieldDone, value)
		})
	}
	if value, ok := _u.mutation.Incorrect(); ok {
		_spec.SetField(sessionitem.FieldIncorrect, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIncorrect(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionitem.FieldIncorrect, value)
		})
	}
	if value, ok := _u.mutation.NumAnswers(); ok {
		_spec.SetField(sessionitem.FieldNumAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumAnswers(); ok {
		_spec.AddField(sessionitem.FieldNumAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastAnswer(); ok {
		_spec.SetField(sessionitem.FieldLastAnswer, field.TypeTime, value)
	}
	if _u.mutation.LastAnswerCleared() {
		_spec.ClearField(sessionitem.FieldLastAnswer, field.TypeTime)
	}
	_node = &SessionItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
