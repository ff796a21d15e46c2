// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/youngtekkie/tekkie/ent/predicate"
	"github.com/youngtekkie/tekkie/ent/tickevent"
)

// TickEventUpdate is the builder for updating TickEvent entities.
type TickEventUpdate struct {
	config
	hooks    []Hook
	mutation *TickEventMutation
}

// Where appends a list predicates to the TickEventUpdate builder.
func (_u *TickEventUpdate) Where(ps ...predicate.TickEvent) *TickEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *TickEventUpdate) SetProfileID(v string) *TickEventUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *TickEventUpdate) SetNillableProfileID(v *string) *TickEventUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetOrdinal sets the "ordinal" field.
func (_u *TickEventUpdate) SetOrdinal(v int) *TickEventUpdate {
	_u.mutation.ResetOrdinal()
	_u.mutation.SetOrdinal(v)
	return _u
}

// SetNillableOrdinal sets the "ordinal" field if the given value is not nil.
func (_u *TickEventUpdate) SetNillableOrdinal(v *int) *TickEventUpdate {
	if v != nil {
		_u.SetOrdinal(*v)
	}
	return _u
}

// AddOrdinal adds value to the "ordinal" field.
func (_u *TickEventUpdate) AddOrdinal(v int) *TickEventUpdate {
	_u.mutation.AddOrdinal(v)
	return _u
}

// SetFlag sets the "flag" field.
func (_u *TickEventUpdate) SetFlag(v string) *TickEventUpdate {
	_u.mutation.SetFlag(v)
	return _u
}

// SetNillableFlag sets the "flag" field if the given value is not nil.
func (_u *TickEventUpdate) SetNillableFlag(v *string) *TickEventUpdate {
	if v != nil {
		_u.SetFlag(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *TickEventUpdate) SetValue(v bool) *TickEventUpdate {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *TickEventUpdate) SetNillableValue(v *bool) *TickEventUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// Mutation returns the TickEventMutation object of the builder.
func (_u *TickEventUpdate) Mutation() *TickEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TickEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TickEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TickEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TickEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TickEventUpdate) check() error {
	if v, ok := _u.mutation.ProfileID(); ok {
		if err := tickevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "TickEvent.profile_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ordinal(); ok {
		if err := tickevent.OrdinalValidator(v); err != nil {
			return &ValidationError{Name: "ordinal", err: fmt.Errorf(`ent: validator failed for field "TickEvent.ordinal": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Flag(); ok {
		if err := tickevent.FlagValidator(v); err != nil {
			return &ValidationError{Name: "flag", err: fmt.Errorf(`ent: validator failed for field "TickEvent.flag": %w`, err)}
		}
	}
	return nil
}

func (_u *TickEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tickevent.Table, tickevent.Columns, sqlgraph.NewFieldSpec(tickevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(tickevent.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ordinal(); ok {
		_spec.SetField(tickevent.FieldOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrdinal(); ok {
		_spec.AddField(tickevent.FieldOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Flag(); ok {
		_spec.SetField(tickevent.FieldFlag, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(tickevent.FieldValue, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tickevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TickEventUpdateOne is the builder for updating a single TickEvent entity.
type TickEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TickEventMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *TickEventUpdateOne) SetProfileID(v string) *TickEventUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *TickEventUpdateOne) SetNillableProfileID(v *string) *TickEventUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetOrdinal sets the "ordinal" field.
func (_u *TickEventUpdateOne) SetOrdinal(v int) *TickEventUpdateOne {
	_u.mutation.ResetOrdinal()
	_u.mutation.SetOrdinal(v)
	return _u
}

// SetNillableOrdinal sets the "ordinal" field if the given value is not nil.
func (_u *TickEventUpdateOne) SetNillableOrdinal(v *int) *TickEventUpdateOne {
	if v != nil {
		_u.SetOrdinal(*v)
	}
	return _u
}

// AddOrdinal adds value to the "ordinal" field.
func (_u *TickEventUpdateOne) AddOrdinal(v int) *TickEventUpdateOne {
	_u.mutation.AddOrdinal(v)
	return _u
}

// SetFlag sets the "flag" field.
func (_u *TickEventUpdateOne) SetFlag(v string) *TickEventUpdateOne {
	_u.mutation.SetFlag(v)
	return _u
}

// SetNillableFlag sets the "flag" field if the given value is not nil.
func (_u *TickEventUpdateOne) SetNillableFlag(v *string) *TickEventUpdateOne {
	if v != nil {
		_u.SetFlag(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *TickEventUpdateOne) SetValue(v bool) *TickEventUpdateOne {
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *TickEventUpdateOne) SetNillableValue(v *bool) *TickEventUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// Mutation returns the TickEventMutation object of the builder.
func (_u *TickEventUpdateOne) Mutation() *TickEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TickEventUpdate builder.
func (_u *TickEventUpdateOne) Where(ps ...predicate.TickEvent) *TickEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TickEventUpdateOne) Select(field string, fields ...string) *TickEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TickEvent entity.
func (_u *TickEventUpdateOne) Save(ctx context.Context) (*TickEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TickEventUpdateOne) SaveX(ctx context.Context) *TickEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TickEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TickEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TickEventUpdateOne) check() error {
	if v, ok := _u.mutation.ProfileID(); ok {
		if err := tickevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "TickEvent.profile_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ordinal(); ok {
		if err := tickevent.OrdinalValidator(v); err != nil {
			return &ValidationError{Name: "ordinal", err: fmt.Errorf(`ent: validator failed for field "TickEvent.ordinal": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Flag(); ok {
		if err := tickevent.FlagValidator(v); err != nil {
			return &ValidationError{Name: "flag", err: fmt.Errorf(`ent: validator failed for field "TickEvent.flag": %w`, err)}
		}
	}
	return nil
}

func (_u *TickEventUpdateOne) sqlSave(ctx context.Context) (_node *TickEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tickevent.Table, tickevent.Columns, sqlgraph.NewFieldSpec(tickevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TickEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tickevent.FieldID)
		for _, f := range fields {
			if !tickevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tickevent.FieldID {
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
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(tickevent.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ordinal(); ok {
		_spec.SetField(tickevent.FieldOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrdinal(); ok {
		_spec.AddField(tickevent.FieldOrdinal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Flag(); ok {
		_spec.SetField(tickevent.FieldFlag, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(tickevent.FieldValue, field.TypeBool, value)
	}
	_node = &TickEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tickevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
