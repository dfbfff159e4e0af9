// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mentorlabs/mentor/ent/answerevent"
	"github.com/mentorlabs/mentor/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *AnswerEventUpdate) SetLevel(v int) *AnswerEventUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableLevel(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *AnswerEventUpdate) AddLevel(v int) *AnswerEventUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *AnswerEventUpdate) SetPrompt(v string) *AnswerEventUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillablePrompt(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetExpectedAnswer sets the "expected_answer" field.
func (_u *AnswerEventUpdate) SetExpectedAnswer(v string) *AnswerEventUpdate {
	_u.mutation.SetExpectedAnswer(v)
	return _u
}

// SetNillableExpectedAnswer sets the "expected_answer" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableExpectedAnswer(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetExpectedAnswer(*v)
	}
	return _u
}

// SetGivenAnswer sets the "given_answer" field.
func (_u *AnswerEventUpdate) SetGivenAnswer(v string) *AnswerEventUpdate {
	_u.mutation.SetGivenAnswer(v)
	return _u
}

// SetNillableGivenAnswer sets the "given_answer" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableGivenAnswer(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetGivenAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdate) SetCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimedOut sets the "timed_out" field.
func (_u *AnswerEventUpdate) SetTimedOut(v bool) *AnswerEventUpdate {
	_u.mutation.SetTimedOut(v)
	return _u
}

// SetNillableTimedOut sets the "timed_out" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTimedOut(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetTimedOut(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdate) SetTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTimeMs(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdate) AddTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *AnswerEventUpdate) SetStreak(v int) *AnswerEventUpdate {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableStreak(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *AnswerEventUpdate) AddStreak(v int) *AnswerEventUpdate {
	_u.mutation.AddStreak(v)
	return _u
}

// SetExperience sets the "experience" field.
func (_u *AnswerEventUpdate) SetExperience(v int) *AnswerEventUpdate {
	_u.mutation.ResetExperience()
	_u.mutation.SetExperience(v)
	return _u
}

// SetNillableExperience sets the "experience" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableExperience(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetExperience(*v)
	}
	return _u
}

// AddExperience adds value to the "experience" field.
func (_u *AnswerEventUpdate) AddExperience(v int) *AnswerEventUpdate {
	_u.mutation.AddExperience(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := answerevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpectedAnswer(); ok {
		if err := answerevent.ExpectedAnswerValidator(v); err != nil {
			return &ValidationError{Name: "expected_answer", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.expected_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(answerevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(answerevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(answerevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpectedAnswer(); ok {
		_spec.SetField(answerevent.FieldExpectedAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.GivenAnswer(); ok {
		_spec.SetField(answerevent.FieldGivenAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimedOut(); ok {
		_spec.SetField(answerevent.FieldTimedOut, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(answerevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(answerevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Experience(); ok {
		_spec.SetField(answerevent.FieldExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperience(); ok {
		_spec.AddField(answerevent.FieldExperience, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *AnswerEventUpdateOne) SetLevel(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableLevel(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *AnswerEventUpdateOne) AddLevel(v int) *AnswerEventUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *AnswerEventUpdateOne) SetPrompt(v string) *AnswerEventUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillablePrompt(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetExpectedAnswer sets the "expected_answer" field.
func (_u *AnswerEventUpdateOne) SetExpectedAnswer(v string) *AnswerEventUpdateOne {
	_u.mutation.SetExpectedAnswer(v)
	return _u
}

// SetNillableExpectedAnswer sets the "expected_answer" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableExpectedAnswer(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetExpectedAnswer(*v)
	}
	return _u
}

// SetGivenAnswer sets the "given_answer" field.
func (_u *AnswerEventUpdateOne) SetGivenAnswer(v string) *AnswerEventUpdateOne {
	_u.mutation.SetGivenAnswer(v)
	return _u
}

// SetNillableGivenAnswer sets the "given_answer" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableGivenAnswer(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetGivenAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AnswerEventUpdateOne) SetCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTimedOut sets the "timed_out" field.
func (_u *AnswerEventUpdateOne) SetTimedOut(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetTimedOut(v)
	return _u
}

// SetNillableTimedOut sets the "timed_out" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTimedOut(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTimedOut(*v)
	}
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdateOne) SetTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTimeMs(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdateOne) AddTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// SetStreak sets the "streak" field.
func (_u *AnswerEventUpdateOne) SetStreak(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetStreak()
	_u.mutation.SetStreak(v)
	return _u
}

// SetNillableStreak sets the "streak" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableStreak(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetStreak(*v)
	}
	return _u
}

// AddStreak adds value to the "streak" field.
func (_u *AnswerEventUpdateOne) AddStreak(v int) *AnswerEventUpdateOne {
	_u.mutation.AddStreak(v)
	return _u
}

// SetExperience sets the "experience" field.
func (_u *AnswerEventUpdateOne) SetExperience(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetExperience()
	_u.mutation.SetExperience(v)
	return _u
}

// SetNillableExperience sets the "experience" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableExperience(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetExperience(*v)
	}
	return _u
}

// AddExperience adds value to the "experience" field.
func (_u *AnswerEventUpdateOne) AddExperience(v int) *AnswerEventUpdateOne {
	_u.mutation.AddExperience(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := answerevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpectedAnswer(); ok {
		if err := answerevent.ExpectedAnswerValidator(v); err != nil {
			return &ValidationError{Name: "expected_answer", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.expected_answer": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(answerevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(answerevent.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(answerevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpectedAnswer(); ok {
		_spec.SetField(answerevent.FieldExpectedAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.GivenAnswer(); ok {
		_spec.SetField(answerevent.FieldGivenAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimedOut(); ok {
		_spec.SetField(answerevent.FieldTimedOut, field.TypeBool, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streak(); ok {
		_spec.SetField(answerevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreak(); ok {
		_spec.AddField(answerevent.FieldStreak, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Experience(); ok {
		_spec.SetField(answerevent.FieldExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperience(); ok {
		_spec.AddField(answerevent.FieldExperience, field.TypeInt, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
