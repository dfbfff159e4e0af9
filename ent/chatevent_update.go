// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mentorlabs/mentor/ent/chatevent"
	"github.com/mentorlabs/mentor/ent/predicate"
)

// ChatEventUpdate is the builder for updating ChatEvent entities.
type ChatEventUpdate struct {
	config
	hooks    []Hook
	mutation *ChatEventMutation
}

// Where appends a list predicates to the ChatEventUpdate builder.
func (_u *ChatEventUpdate) Where(ps ...predicate.ChatEvent) *ChatEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ChatEventUpdate) SetSessionID(v string) *ChatEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableSessionID(v *string) *ChatEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *ChatEventUpdate) SetRole(v string) *ChatEventUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableRole(v *string) *ChatEventUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ChatEventUpdate) SetContent(v string) *ChatEventUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableContent(v *string) *ChatEventUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetOffline sets the "offline" field.
func (_u *ChatEventUpdate) SetOffline(v bool) *ChatEventUpdate {
	_u.mutation.SetOffline(v)
	return _u
}

// SetNillableOffline sets the "offline" field if the given value is not nil.
func (_u *ChatEventUpdate) SetNillableOffline(v *bool) *ChatEventUpdate {
	if v != nil {
		_u.SetOffline(*v)
	}
	return _u
}

// Mutation returns the ChatEventMutation object of the builder.
func (_u *ChatEventUpdate) Mutation() *ChatEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := chatevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := chatevent.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.role": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatevent.Table, chatevent.Columns, sqlgraph.NewFieldSpec(chatevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(chatevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(chatevent.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(chatevent.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Offline(); ok {
		_spec.SetField(chatevent.FieldOffline, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatEventUpdateOne is the builder for updating a single ChatEvent entity.
type ChatEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ChatEventUpdateOne) SetSessionID(v string) *ChatEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableSessionID(v *string) *ChatEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *ChatEventUpdateOne) SetRole(v string) *ChatEventUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableRole(v *string) *ChatEventUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *ChatEventUpdateOne) SetContent(v string) *ChatEventUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableContent(v *string) *ChatEventUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetOffline sets the "offline" field.
func (_u *ChatEventUpdateOne) SetOffline(v bool) *ChatEventUpdateOne {
	_u.mutation.SetOffline(v)
	return _u
}

// SetNillableOffline sets the "offline" field if the given value is not nil.
func (_u *ChatEventUpdateOne) SetNillableOffline(v *bool) *ChatEventUpdateOne {
	if v != nil {
		_u.SetOffline(*v)
	}
	return _u
}

// Mutation returns the ChatEventMutation object of the builder.
func (_u *ChatEventUpdateOne) Mutation() *ChatEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChatEventUpdate builder.
func (_u *ChatEventUpdateOne) Where(ps ...predicate.ChatEvent) *ChatEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatEventUpdateOne) Select(field string, fields ...string) *ChatEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChatEvent entity.
func (_u *ChatEventUpdateOne) Save(ctx context.Context) (*ChatEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatEventUpdateOne) SaveX(ctx context.Context) *ChatEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := chatevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := chatevent.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "ChatEvent.role": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatEventUpdateOne) sqlSave(ctx context.Context) (_node *ChatEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatevent.Table, chatevent.Columns, sqlgraph.NewFieldSpec(chatevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChatEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatevent.FieldID)
		for _, f := range fields {
			if !chatevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatevent.FieldID {
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
		_spec.SetField(chatevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(chatevent.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(chatevent.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Offline(); ok {
		_spec.SetField(chatevent.FieldOffline, field.TypeBool, value)
	}
	_node = &ChatEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
