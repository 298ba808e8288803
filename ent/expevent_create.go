// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathquest/ent/expevent"
)

// ExpEventCreate is the builder for creating a ExpEvent entity.
type ExpEventCreate struct {
	config
	mutation *ExpEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ExpEventCreate) SetSequence(v int64) *ExpEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ExpEventCreate) SetTimestamp(v time.Time) *ExpEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ExpEventCreate) SetNillableTimestamp(v *time.Time) *ExpEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ExpEventCreate) SetSessionID(v string) *ExpEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetBase sets the "base" field.
func (_c *ExpEventCreate) SetBase(v int) *ExpEventCreate {
	_c.mutation.SetBase(v)
	return _c
}

// SetCompletionBonus sets the "completion_bonus" field.
func (_c *ExpEventCreate) SetCompletionBonus(v int) *ExpEventCreate {
	_c.mutation.SetCompletionBonus(v)
	return _c
}

// SetNillableCompletionBonus sets the "completion_bonus" field if the given value is not nil.
func (_c *ExpEventCreate) SetNillableCompletionBonus(v *int) *ExpEventCreate {
	if v != nil {
		_c.SetCompletionBonus(*v)
	}
	return _c
}

// SetFirstDailyBonus sets the "first_daily_bonus" field.
func (_c *ExpEventCreate) SetFirstDailyBonus(v int) *ExpEventCreate {
	_c.mutation.SetFirstDailyBonus(v)
	return _c
}

// SetNillableFirstDailyBonus sets the "first_daily_bonus" field if the given value is not nil.
func (_c *ExpEventCreate) SetNillableFirstDailyBonus(v *int) *ExpEventCreate {
	if v != nil {
		_c.SetFirstDailyBonus(*v)
	}
	return _c
}

// SetStreakBonus sets the "streak_bonus" field.
func (_c *ExpEventCreate) SetStreakBonus(v int) *ExpEventCreate {
	_c.mutation.SetStreakBonus(v)
	return _c
}

// SetNillableStreakBonus sets the "streak_bonus" field if the given value is not nil.
func (_c *ExpEventCreate) SetNillableStreakBonus(v *int) *ExpEventCreate {
	if v != nil {
		_c.SetStreakBonus(*v)
	}
	return _c
}

// SetRepeatPenalty sets the "repeat_penalty" field.
func (_c *ExpEventCreate) SetRepeatPenalty(v bool) *ExpEventCreate {
	_c.mutation.SetRepeatPenalty(v)
	return _c
}

// SetNillableRepeatPenalty sets the "repeat_penalty" field if the given value is not nil.
func (_c *ExpEventCreate) SetNillableRepeatPenalty(v *bool) *ExpEventCreate {
	if v != nil {
		_c.SetRepeatPenalty(*v)
	}
	return _c
}

// SetBoost sets the "boost" field.
func (_c *ExpEventCreate) SetBoost(v float64) *ExpEventCreate {
	_c.mutation.SetBoost(v)
	return _c
}

// SetNillableBoost sets the "boost" field if the given value is not nil.
func (_c *ExpEventCreate) SetNillableBoost(v *float64) *ExpEventCreate {
	if v != nil {
		_c.SetBoost(*v)
	}
	return _c
}

// SetAwarded sets the "awarded" field.
func (_c *ExpEventCreate) SetAwarded(v int) *ExpEventCreate {
	_c.mutation.SetAwarded(v)
	return _c
}

// Mutation returns the ExpEventMutation object of the builder.
func (_c *ExpEventCreate) Mutation() *ExpEventMutation {
	return _c.mutation
}

// Save creates the ExpEvent in the database.
func (_c *ExpEventCreate) Save(ctx context.Context) (*ExpEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExpEventCreate) SaveX(ctx context.Context) *ExpEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExpEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExpEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExpEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := expevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.CompletionBonus(); !ok {
		v := expevent.DefaultCompletionBonus
		_c.mutation.SetCompletionBonus(v)
	}
	if _, ok := _c.mutation.FirstDailyBonus(); !ok {
		v := expevent.DefaultFirstDailyBonus
		_c.mutation.SetFirstDailyBonus(v)
	}
	if _, ok := _c.mutation.StreakBonus(); !ok {
		v := expevent.DefaultStreakBonus
		_c.mutation.SetStreakBonus(v)
	}
	if _, ok := _c.mutation.RepeatPenalty(); !ok {
		v := expevent.DefaultRepeatPenalty
		_c.mutation.SetRepeatPenalty(v)
	}
	if _, ok := _c.mutation.Boost(); !ok {
		v := expevent.DefaultBoost
		_c.mutation.SetBoost(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExpEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ExpEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ExpEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ExpEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := expevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExpEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Base(); !ok {
		return &ValidationError{Name: "base", err: errors.New(`ent: missing required field "ExpEvent.base"`)}
	}
	if _, ok := _c.mutation.CompletionBonus(); !ok {
		return &ValidationError{Name: "completion_bonus", err: errors.New(`ent: missing required field "ExpEvent.completion_bonus"`)}
	}
	if _, ok := _c.mutation.FirstDailyBonus(); !ok {
		return &ValidationError{Name: "first_daily_bonus", err: errors.New(`ent: missing required field "ExpEvent.first_daily_bonus"`)}
	}
	if _, ok := _c.mutation.StreakBonus(); !ok {
		return &ValidationError{Name: "streak_bonus", err: errors.New(`ent: missing required field "ExpEvent.streak_bonus"`)}
	}
	if _, ok := _c.mutation.RepeatPenalty(); !ok {
		return &ValidationError{Name: "repeat_penalty", err: errors.New(`ent: missing required field "ExpEvent.repeat_penalty"`)}
	}
	if _, ok := _c.mutation.Boost(); !ok {
		return &ValidationError{Name: "boost", err: errors.New(`ent: missing required field "ExpEvent.boost"`)}
	}
	if _, ok := _c.mutation.Awarded(); !ok {
		return &ValidationError{Name: "awarded", err: errors.New(`ent: missing required field "ExpEvent.awarded"`)}
	}
	return nil
}

func (_c *ExpEventCreate) sqlSave(ctx context.Context) (*ExpEvent, error) {
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

func (_c *ExpEventCreate) createSpec() (*ExpEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ExpEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(expevent.Table, sqlgraph.NewFieldSpec(expevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(expevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(expevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(expevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Base(); ok {
		_spec.SetField(expevent.FieldBase, field.TypeInt, value)
		_node.Base = value
	}
	if value, ok := _c.mutation.CompletionBonus(); ok {
		_spec.SetField(expevent.FieldCompletionBonus, field.TypeInt, value)
		_node.CompletionBonus = value
	}
	if value, ok := _c.mutation.FirstDailyBonus(); ok {
		_spec.SetField(expevent.FieldFirstDailyBonus, field.TypeInt, value)
		_node.FirstDailyBonus = value
	}
	if value, ok := _c.mutation.StreakBonus(); ok {
		_spec.SetField(expevent.FieldStreakBonus, field.TypeInt, value)
		_node.StreakBonus = value
	}
	if value, ok := _c.mutation.RepeatPenalty(); ok {
		_spec.SetField(expevent.FieldRepeatPenalty, field.TypeBool, value)
		_node.RepeatPenalty = value
	}
	if value, ok := _c.mutation.Boost(); ok {
		_spec.SetField(expevent.FieldBoost, field.TypeFloat64, value)
		_node.Boost = value
	}
	if value, ok := _c.mutation.Awarded(); ok {
		_spec.SetField(expevent.FieldAwarded, field.TypeInt, value)
		_node.Awarded = value
	}
	return _node, _spec
}

// ExpEventCreateBulk is the builder for creating many ExpEvent entities in bulk.
type ExpEventCreateBulk struct {
	config
	err      error
	builders []*ExpEventCreate
}

// Save creates the ExpEvent entities in the database.
func (_c *ExpEventCreateBulk) Save(ctx context.Context) ([]*ExpEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExpEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExpEventMutation)
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
func (_c *ExpEventCreateBulk) SaveX(ctx context.Context) []*ExpEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExpEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExpEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
