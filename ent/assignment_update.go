// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mizutani/kotoba/ent/assignment"
	"github.com/mizutani/kotoba/ent/predicate"
)

// AssignmentUpdate is the builder for updating Assignment entities.
type AssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssignmentMutation
}

// Where appends a list predicates to the AssignmentUpdate builder.
func (_u *AssignmentUpdate) Where(ps ...predicate.Assignment) *AssignmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubjectID sets the "subject_id" field.
func (_u *AssignmentUpdate) SetSubjectID(v int64) *AssignmentUpdate {
	_u.mutation.ResetSubjectID()
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableSubjectID(v *int64) *AssignmentUpdate {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// AddSubjectID adds value to the "subject_id" field.
func (_u *AssignmentUpdate) AddSubjectID(v int64) *AssignmentUpdate {
	_u.mutation.AddSubjectID(v)
	return _u
}

// SetStage sets the "stage" field.
func (_u *AssignmentUpdate) SetStage(v int) *AssignmentUpdate {
	_u.mutation.ResetStage()
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableStage(v *int) *AssignmentUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// AddStage adds value to the "stage" field.
func (_u *AssignmentUpdate) AddStage(v int) *AssignmentUpdate {
	_u.mutation.AddStage(v)
	return _u
}

// SetAvailableAt sets the "available_at" field.
func (_u *AssignmentUpdate) SetAvailableAt(v time.Time) *AssignmentUpdate {
	_u.mutation.SetAvailableAt(v)
	return _u
}

// SetNillableAvailableAt sets the "available_at" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableAvailableAt(v *time.Time) *AssignmentUpdate {
	if v != nil {
		_u.SetAvailableAt(*v)
	}
	return _u
}

// ClearAvailableAt clears the value of the "available_at" field.
func (_u *AssignmentUpdate) ClearAvailableAt() *AssignmentUpdate {
	_u.mutation.ClearAvailableAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AssignmentUpdate) SetStartedAt(v time.Time) *AssignmentUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableStartedAt(v *time.Time) *AssignmentUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AssignmentUpdate) ClearStartedAt() *AssignmentUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetBurnedAt sets the "burned_at" field.
func (_u *AssignmentUpdate) SetBurnedAt(v time.Time) *AssignmentUpdate {
	_u.mutation.SetBurnedAt(v)
	return _u
}

// SetNillableBurnedAt sets the "burned_at" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableBurnedAt(v *time.Time) *AssignmentUpdate {
	if v != nil {
		_u.SetBurnedAt(*v)
	}
	return _u
}

// ClearBurnedAt clears the value of the "burned_at" field.
func (_u *AssignmentUpdate) ClearBurnedAt() *AssignmentUpdate {
	_u.mutation.ClearBurnedAt()
	return _u
}

// Mutation returns the AssignmentMutation object of the builder.
func (_u *AssignmentUpdate) Mutation() *AssignmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssignmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssignmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AssignmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(assignment.Table, assignment.Columns, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(assignment.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSubjectID(); ok {
		_spec.AddField(assignment.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(assignment.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStage(); ok {
		_spec.AddField(assignment.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvailableAt(); ok {
		_spec.SetField(assignment.FieldAvailableAt, field.TypeTime, value)
	}
	if _u.mutation.AvailableAtCleared() {
		_spec.ClearField(assignment.FieldAvailableAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(assignment.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(assignment.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.BurnedAt(); ok {
		_spec.SetField(assignment.FieldBurnedAt, field.TypeTime, value)
	}
	if _u.mutation.BurnedAtCleared() {
		_spec.ClearField(assignment.FieldBurnedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssignmentUpdateOne is the builder for updating a single Assignment entity.
type AssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssignmentMutation
}

// SetSubjectID sets the "subject_id" field.
func (_u *AssignmentUpdateOne) SetSubjectID(v int64) *AssignmentUpdateOne {
	_u.mutation.ResetSubjectID()
	_u.mutation.SetSubjectID(v)
	return _u
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableSubjectID(v *int64) *AssignmentUpdateOne {
	if v != nil {
		_u.SetSubjectID(*v)
	}
	return _u
}

// AddSubjectID adds value to the "subject_id" field.
func (_u *AssignmentUpdateOne) AddSubjectID(v int64) *AssignmentUpdateOne {
	_u.mutation.AddSubjectID(v)
	return _u
}

// SetStage sets the "stage" field.
func (_u *AssignmentUpdateOne) SetStage(v int) *AssignmentUpdateOne {
	_u.mutation.ResetStage()
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableStage(v *int) *AssignmentUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// AddStage adds value to the "stage" field.
func (_u *AssignmentUpdateOne) AddStage(v int) *AssignmentUpdateOne {
	_u.mutation.AddStage(v)
	return _u
}

// SetAvailableAt sets the "available_at" field.
func (_u *AssignmentUpdateOne) SetAvailableAt(v time.Time) *AssignmentUpdateOne {
	_u.mutation.SetAvailableAt(v)
	return _u
}

// SetNillableAvailableAt sets the "available_at" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableAvailableAt(v *time.Time) *AssignmentUpdateOne {
	if v != nil {
		_u.SetAvailableAt(*v)
	}
	return _u
}

// ClearAvailableAt clears the value of the "available_at" field.
func (_u *AssignmentUpdateOne) ClearAvailableAt() *AssignmentUpdateOne {
	_u.mutation.ClearAvailableAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AssignmentUpdateOne) SetStartedAt(v time.Time) *AssignmentUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableStartedAt(v *time.Time) *AssignmentUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AssignmentUpdateOne) ClearStartedAt() *AssignmentUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetBurnedAt sets the "burned_at" field.
func (_u *AssignmentUpdateOne) SetBurnedAt(v time.Time) *AssignmentUpdateOne {
	_u.mutation.SetBurnedAt(v)
	return _u
}

// SetNillableBurnedAt sets the "burned_at" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableBurnedAt(v *time.Time) *AssignmentUpdateOne {
	if v != nil {
		_u.SetBurnedAt(*v)
	}
	return _u
}

// ClearBurnedAt clears the value of the "burned_at" field.
func (_u *AssignmentUpdateOne) ClearBurnedAt() *AssignmentUpdateOne {
	_u.mutation.ClearBurnedAt()
	return _u
}

// Mutation returns the AssignmentMutation object of the builder.
func (_u *AssignmentUpdateOne) Mutation() *AssignmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssignmentUpdate builder.
func (_u *AssignmentUpdateOne) Where(ps ...predicate.Assignment) *AssignmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssignmentUpdateOne) Select(field string, fields ...string) *AssignmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assignment entity.
func (_u *AssignmentUpdateOne) Save(ctx context.Context) (*Assignment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentUpdateOne) SaveX(ctx context.Context) *Assignment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AssignmentUpdateOne) sqlSave(ctx context.Context) (_node *Assignment, err error) {
	_spec := sqlgraph.NewUpdateSpec(assignment.Table, assignment.Columns, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Assignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assignment.FieldID)
		for _, f := range fields {
			if !assignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assignment.FieldID {
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
	if value, ok := _u.mutation.SubjectID(); ok {
		_spec.SetField(assignment.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSubjectID(); ok {
		_spec.AddField(assignment.FieldSubjectID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(assignment.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStage(); ok {
		_spec.AddField(assignment.FieldStage, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvailableAt(); ok {
		_spec.SetField(assignment.FieldAvailableAt, field.TypeTime, value)
	}
	if _u.mutation.AvailableAtCleared() {
		_spec.ClearField(assignment.FieldAvailableAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(assignment.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(assignment.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.BurnedAt(); ok {
		_spec.SetField(assignment.FieldBurnedAt, field.TypeTime, value)
	}
	if _u.mutation.BurnedAtCleared() {
		_spec.ClearField(assignment.FieldBurnedAt, field.TypeTime)
	}
	_node = &Assignment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
