// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/youngtekkie/tekkie/ent/tickevent"
)

// TickEventCreate is the builder for creating a TickEvent entity.
type TickEventCreate struct {
	config
	mutation *TickEventMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *TickEventCreate) SetProfileID(v string) *TickEventCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetOrdinal sets the "ordinal" field.
func (_c *TickEventCreate) SetOrdinal(v int) *TickEventCreate {
	_c.mutation.SetOrdinal(v)
	return _c
}

// SetFlag sets the "flag" field.
func (_c *TickEventCreate) SetFlag(v string) *TickEventCreate {
	_c.mutation.SetFlag(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *TickEventCreate) SetValue(v bool) *TickEventCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *TickEventCreate) SetOccurredAt(v time.Time) *TickEventCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_c *TickEventCreate) SetNillableOccurredAt(v *time.Time) *TickEventCreate {
	if v != nil {
		_c.SetOccurredAt(*v)
	}
	return _c
}

// Mutation returns the TickEventMutation object of the builder.
func (_c *TickEventCreate) Mutation() *TickEventMutation {
	return _c.mutation
}

// Save creates the TickEvent in the database.
func (_c *TickEventCreate) Save(ctx context.Context) (*TickEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TickEventCreate) SaveX(ctx context.Context) *TickEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TickEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TickEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TickEventCreate) defaults() {
	if _, ok := _c.mutation.OccurredAt(); !ok {
		v := tickevent.DefaultOccurredAt()
		_c.mutation.SetOccurredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TickEventCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "TickEvent.profile_id"`)}
	}
	if v, ok := _c.mutation.ProfileID(); ok {
		if err := tickevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "TickEvent.profile_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Ordinal(); !ok {
		return &ValidationError{Name: "ordinal", err: errors.New(`ent: missing required field "TickEvent.ordinal"`)}
	}
	if v, ok := _c.mutation.Ordinal(); ok {
		if err := tickevent.OrdinalValidator(v); err != nil {
			return &ValidationError{Name: "ordinal", err: fmt.Errorf(`ent: validator failed for field "TickEvent.ordinal": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Flag(); !ok {
		return &ValidationError{Name: "flag", err: errors.New(`ent: missing required field "TickEvent.flag"`)}
	}
	if v, ok := _c.mutation.Flag(); ok {
		if err := tickevent.FlagValidator(v); err != nil {
			return &ValidationError{Name: "flag", err: fmt.Errorf(`ent: validator failed for field "TickEvent.flag": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "TickEvent.value"`)}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "TickEvent.occurred_at"`)}
	}
	return nil
}

func (_c *TickEventCreate) sqlSave(ctx context.Context) (*TickEvent, error) {
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

func (_c *TickEventCreate) createSpec() (*TickEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TickEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tickevent.Table, sqlgraph.NewFieldSpec(tickevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ProfileID(); ok {
		_spec.SetField(tickevent.FieldProfileID, field.TypeString, value)
		_node.ProfileID = value
	}
	if value, ok := _c.mutation.Ordinal(); ok {
		_spec.SetField(tickevent.FieldOrdinal, field.TypeInt, value)
		_node.Ordinal = value
	}
	if value, ok := _c.mutation.Flag(); ok {
		_spec.SetField(tickevent.FieldFlag, field.TypeString, value)
		_node.Flag = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(tickevent.FieldValue, field.TypeBool, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(tickevent.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	return _node, _spec
}

// TickEventCreateBulk is the builder for creating many TickEvent entities in bulk.
type TickEventCreateBulk struct {
	config
	err      error
	builders []*TickEventCreate
}

// Save creates the TickEvent entities in the database.
func (_c *TickEventCreateBulk) Save(ctx context.Context) ([]*TickEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TickEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TickEventMutation)
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
func (_c *TickEventCreateBulk) SaveX(ctx context.Context) []*TickEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TickEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TickEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
