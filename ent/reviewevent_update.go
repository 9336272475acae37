// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mizutani/kotoba/ent/predicate"
	"github.com/mizutani/kotoba/ent/reviewevent"
)

// ReviewEventUpdate is the builder for updating ReviewEvent entities.
type ReviewEventUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEventMutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdate) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ReviewEventUpdate) SetSessionID(v string) *ReviewEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableSessionID(v *string) *ReviewEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *ReviewEventUpdate) SetSubjectID(v int64) *ReviewEventUpdate {
	_u.mutation.ResetSubjectID()
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableSubjectID(v *int64) *ReviewEventUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// AddSubjectID adds value to the "subject_id" field.
func (_u *ReviewEventUpdate) AddSubjectID(v int64) *ReviewEventUpdate {
	_u.mutation.AddSubjectID(v)
	return _u
}

// SetIncorrectMeaning sets the "incorrect_meaning" field.
func (_u *ReviewEventUpdate) SetIncorrectMeaning(v int) *ReviewEventUpdate {
	_u.mutation.ResetIncorrectMeaning()
	_u.mutation.SetIncorrectMeaning(v)
	return _u
}

// SetNillableIncorrectMeaning sets the "incorrect_meaning" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableIncorrectMeaning(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetIncorrectMeaning(*v)
	}
	return _u
}

// AddIncorrectMeaning adds value to the "incorrect_meaning" field.
func (_u *ReviewEventUpdate) AddIncorrectMeaning(v int) *ReviewEventUpdate {
	_u.mutation.AddIncorrectMeaning(v)
	return _u
}

// SetIncorrectReading sets the "incorrect_reading" field.
func (_u *ReviewEventUpdate) SetIncorrectReading(v int) *ReviewEventUpdate {
	_u.mutation.ResetIncorrectReading()
	_u.mutation.SetIncorrectReading(v)
	return _u
}

// SetNillableIncorrectReading sets the "incorrect_reading" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableIncorrectReading(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetIncorrectReading(*v)
	}
	return _u
}

// AddIncorrectReading adds value to the "incorrect_reading" field.
func (_u *ReviewEventUpdate) AddIncorrectReading(v int) *ReviewEventUpdate {
	_u.mutation.AddIncorrectReading(v)
	return _u
}

// SetStageBefore sets the "stage_before" field.
func (_u *ReviewEventUpdate) SetStageBefore(v int) *ReviewEventUpdate {
	_u.mutation.ResetStageBefore()
	_u.mutation.SetStageBefore(v)
	return _u
}

// SetNillableStageBefore sets the "stage_before" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableStageBefore(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetStageBefore(*v)
	}
	return _u
}

// AddStageBefore adds value to the "stage_before" field.
func (_u *ReviewEventUpdate) AddStageBefore(v int) *ReviewEventUpdate {
	_u.mutation.AddStageBefore(v)
	return _u
}

// SetStageAfter sets the "stage_after" field.
func (_u *ReviewEventUpdate) SetStageAfter(v int) *ReviewEventUpdate {
	_u.mutation.ResetStageAfter()
	_u.mutation.SetStageAfter(v)
	return _u
}

// SetNillableStageAfter sets the "stage_after" field if the given value is not nil.
func (_u *ReviewEventUpdate) SetNillableStageAfter(v *int) *ReviewEventUpdate {
	if v != nil {
		_u.SetStageAfter(*v)
	}
	return _u
}

// AddStageAfter adds value to the "stage_after" field.
func (_u *ReviewEventUpdate) AddStageAfter(v int) *ReviewEventUpdate {
	_u.mutation.AddStageAfter(v)
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdate) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := reviewevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(reviewevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(reviewevent.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSubjectID(); ok {
		_spec.AddField(reviewevent.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.IncorrectMeaning(); ok {
		_spec.SetField(reviewevent.FieldIncorrectMeaning, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectMeaning(); ok {
		_spec.AddField(reviewevent.FieldIncorrectMeaning, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectReading(); ok {
		_spec.SetField(reviewevent.FieldIncorrectReading, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectReading(); ok {
		_spec.AddField(reviewevent.FieldIncorrectReading, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StageBefore(); ok {
		_spec.SetField(reviewevent.FieldStageBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageBefore(); ok {
		_spec.AddField(reviewevent.FieldStageBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StageAfter(); ok {
		_spec.SetField(reviewevent.FieldStageAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageAfter(); ok {
		_spec.AddField(reviewevent.FieldStageAfter, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEventUpdateOne is the builder for updating a single ReviewEvent entity.
type ReviewEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ReviewEventUpdateOne) SetSessionID(v string) *ReviewEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableSessionID(v *string) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *ReviewEventUpdateOne) SetSubjectID(v int64) *ReviewEventUpdateOne {
	_u.mutation.ResetSubjectID()
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableSubjectID(v *int64) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// AddSubjectID adds value to the "subject_id" field.
func (_u *ReviewEventUpdateOne) AddSubjectID(v int64) *ReviewEventUpdateOne {
	_u.mutation.AddSubjectID(v)
	return _u
}

// SetIncorrectMeaning sets the "incorrect_meaning" field.
func (_u *ReviewEventUpdateOne) SetIncorrectMeaning(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetIncorrectMeaning()
	_u.mutation.SetIncorrectMeaning(v)
	return _u
}

// SetNillableIncorrectMeaning sets the "incorrect_meaning" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableIncorrectMeaning(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetIncorrectMeaning(*v)
	}
	return _u
}

// AddIncorrectMeaning adds value to the "incorrect_meaning" field.
func (_u *ReviewEventUpdateOne) AddIncorrectMeaning(v int) *ReviewEventUpdateOne {
	_u.mutation.AddIncorrectMeaning(v)
	return _u
}

// SetIncorrectReading sets the "incorrect_reading" field.
func (_u *ReviewEventUpdateOne) SetIncorrectReading(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetIncorrectReading()
	_u.mutation.SetIncorrectReading(v)
	return _u
}

// SetNillableIncorrectReading sets the "incorrect_reading" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableIncorrectReading(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetIncorrectReading(*v)
	}
	return _u
}

// AddIncorrectReading adds value to the "incorrect_reading" field.
func (_u *ReviewEventUpdateOne) AddIncorrectReading(v int) *ReviewEventUpdateOne {
	_u.mutation.AddIncorrectReading(v)
	return _u
}

// SetStageBefore sets the "stage_before" field.
func (_u *ReviewEventUpdateOne) SetStageBefore(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetStageBefore()
	_u.mutation.SetStageBefore(v)
	return _u
}

// SetNillableStageBefore sets the "stage_before" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableStageBefore(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetStageBefore(*v)
	}
	return _u
}

// AddStageBefore adds value to the "stage_before" field.
func (_u *ReviewEventUpdateOne) AddStageBefore(v int) *ReviewEventUpdateOne {
	_u.mutation.AddStageBefore(v)
	return _u
}

// SetStageAfter sets the "stage_after" field.
func (_u *ReviewEventUpdateOne) SetStageAfter(v int) *ReviewEventUpdateOne {
	_u.mutation.ResetStageAfter()
	_u.mutation.SetStageAfter(v)
	return _u
}

// SetNillableStageAfter sets the "stage_after" field if the given value is not nil.
func (_u *ReviewEventUpdateOne) SetNillableStageAfter(v *int) *ReviewEventUpdateOne {
	if v != nil {
		_u.SetStageAfter(*v)
	}
	return _u
}

// AddStageAfter adds value to the "stage_after" field.
func (_u *ReviewEventUpdateOne) AddStageAfter(v int) *ReviewEventUpdateOne {
	_u.mutation.AddStageAfter(v)
	return _u
}

// Mutation returns the ReviewEventMutation object of the builder.
func (_u *ReviewEventUpdateOne) Mutation() *ReviewEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewEventUpdate builder.
func (_u *ReviewEventUpdateOne) Where(ps ...predicate.ReviewEvent) *ReviewEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEventUpdateOne) Select(field string, fields ...string) *ReviewEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEvent entity.
func (_u *ReviewEventUpdateOne) Save(ctx context.Context) (*ReviewEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) SaveX(ctx context.Context) *ReviewEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := reviewevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEventUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewevent.Table, reviewevent.Columns, sqlgraph.NewFieldSpec(reviewevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewevent.FieldID)
		for _, f := range fields {
			if !reviewevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewevent.FieldID {
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
		_spec.SetField(reviewevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(reviewevent.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSubjectID(); ok {
		_spec.AddField(reviewevent.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.IncorrectMeaning(); ok {
		_spec.SetField(reviewevent.FieldIncorrectMeaning, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectMeaning(); ok {
		_spec.AddField(reviewevent.FieldIncorrectMeaning, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncorrectReading(); ok {
		_spec.SetField(reviewevent.FieldIncorrectReading, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrectReading(); ok {
		_spec.AddField(reviewevent.FieldIncorrectReading, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StageBefore(); ok {
		_spec.SetField(reviewevent.FieldStageBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageBefore(); ok {
		_spec.AddField(reviewevent.FieldStageBefore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StageAfter(); ok {
		_spec.SetField(reviewevent.FieldStageAfter, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageAfter(); ok {
		_spec.AddField(reviewevent.FieldStageAfter, field.TypeInt, value)
	}
	_node = &ReviewEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
