// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathquest/ent/expevent"
	"github.com/abhisek/mathquest/ent/predicate"
)

// ExpEventUpdate is the builder for updating ExpEvent entities.
type ExpEventUpdate struct {
	config
	hooks    []Hook
	mutation *ExpEventMutation
}

// Where appends a list predicates to the ExpEventUpdate builder.
func (_u *ExpEventUpdate) Where(ps ...predicate.ExpEvent) *ExpEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ExpEventUpdate) SetSessionID(v string) *ExpEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExpEventUpdate) SetNillableSessionID(v *string) *ExpEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetBase sets the "base" field.
func (_u *ExpEventUpdate) SetBase(v int) *ExpEventUpdate {
	_u.mutation.ResetBase()
	_u.mutation.SetBase(v)
	return _u
}

// SetNillableBase sets the "base" field if the given value is not nil.
func (_u *ExpEventUpdate) SetNillableBase(v *int) *ExpEventUpdate {
	if v != nil {
		_u.SetBase(*v)
	}
	return _u
}

// AddBase adds value to the "base" field.
func (_u *ExpEventUpdate) AddBase(v int) *ExpEventUpdate {
	_u.mutation.AddBase(v)
	return _u
}

// SetCompletionBonus sets the "completion_bonus" field.
func (_u *ExpEventUpdate) SetCompletionBonus(v int) *ExpEventUpdate {
	_u.mutation.ResetCompletionBonus()
	_u.mutation.SetCompletionBonus(v)
	return _u
}

// SetNillableCompletionBonus sets the "completion_bonus" field if the given value is not nil.
func (_u *ExpEventUpdate) SetNillableCompletionBonus(v *int) *ExpEventUpdate {
	if v != nil {
		_u.SetCompletionBonus(*v)
	}
	return _u
}

// AddCompletionBonus adds value to the "completion_bonus" field.
func (_u *ExpEventUpdate) AddCompletionBonus(v int) *ExpEventUpdate {
	_u.mutation.AddCompletionBonus(v)
	return _u
}

// SetFirstDailyBonus sets the "first_daily_bonus" field.
func (_u *ExpEventUpdate) SetFirstDailyBonus(v int) *ExpEventUpdate {
	_u.mutation.ResetFirstDailyBonus()
	_u.mutation.SetFirstDailyBonus(v)
	return _u
}

// SetNillableFirstDailyBonus sets the "first_daily_bonus" field if the given value is not nil.
func (_u *ExpEventUpdate) SetNillableFirstDailyBonus(v *int) *ExpEventUpdate {
	if v != nil {
		_u.SetFirstDailyBonus(*v)
	}
	return _u
}

// AddFirstDailyBonus adds value to the "first_daily_bonus" field.
func (_u *ExpEventUpdate) AddFirstDailyBonus(v int) *ExpEventUpdate {
	_u.mutation.AddFirstDailyBonus(v)
	return _u
}

// SetStreakBonus sets the "streak_bonus" field.
func (_u *ExpEventUpdate) SetStreakBonus(v int) *ExpEventUpdate {
	_u.mutation.ResetStreakBonus()
	_u.mutation.SetStreakBonus(v)
	return _u
}

// SetNillableStreakBonus sets the "streak_bonus" field if the given value is not nil.
func (_u *ExpEventUpdate) SetNillableStreakBonus(v *int) *ExpEventUpdate {
	if v != nil {
		_u.SetStreakBonus(*v)
	}
	return _u
}

// AddStreakBonus adds value to the "streak_bonus" field.
func (_u *ExpEventUpdate) AddStreakBonus(v int) *ExpEventUpdate {
	_u.mutation.AddStreakBonus(v)
	return _u
}

// SetRepeatPenalty sets the "repeat_penalty" field.
func (_u *ExpEventUpdate) SetRepeatPenalty(v bool) *ExpEventUpdate {
	_u.mutation.SetRepeatPenalty(v)
	return _u
}

// SetNillableRepeatPenalty sets the "repeat_penalty" field if the given value is not nil.
func (_u *ExpEventUpdate) SetNillableRepeatPenalty(v *bool) *ExpEventUpdate {
	if v != nil {
		_u.SetRepeatPenalty(*v)
	}
	return _u
}

// SetBoost sets the "boost" field.
func (_u *ExpEventUpdate) SetBoost(v float64) *ExpEventUpdate {
	_u.mutation.ResetBoost()
	_u.mutation.SetBoost(v)
	return _u
}

// SetNillableBoost sets the "boost" field if the given value is not nil.
func (_u *ExpEventUpdate) SetNillableBoost(v *float64) *ExpEventUpdate {
	if v != nil {
		_u.SetBoost(*v)
	}
	return _u
}

// AddBoost adds value to the "boost" field.
func (_u *ExpEventUpdate) AddBoost(v float64) *ExpEventUpdate {
	_u.mutation.AddBoost(v)
	return _u
}

// SetAwarded sets the "awarded" field.
func (_u *ExpEventUpdate) SetAwarded(v int) *ExpEventUpdate {
	_u.mutation.ResetAwarded()
	_u.mutation.SetAwarded(v)
	return _u
}

// SetNillableAwarded sets the "awarded" field if the given value is not nil.
func (_u *ExpEventUpdate) SetNillableAwarded(v *int) *ExpEventUpdate {
	if v != nil {
		_u.SetAwarded(*v)
	}
	return _u
}

// AddAwarded adds value to the "awarded" field.
func (_u *ExpEventUpdate) AddAwarded(v int) *ExpEventUpdate {
	_u.mutation.AddAwarded(v)
	return _u
}

// Mutation returns the ExpEventMutation object of the builder.
func (_u *ExpEventUpdate) Mutation() *ExpEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExpEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExpEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExpEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExpEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExpEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := expevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExpEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ExpEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(expevent.Table, expevent.Columns, sqlgraph.NewFieldSpec(expevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(expevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Base(); ok {
		_spec.SetField(expevent.FieldBase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBase(); ok {
		_spec.AddField(expevent.FieldBase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionBonus(); ok {
		_spec.SetField(expevent.FieldCompletionBonus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionBonus(); ok {
		_spec.AddField(expevent.FieldCompletionBonus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FirstDailyBonus(); ok {
		_spec.SetField(expevent.FieldFirstDailyBonus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFirstDailyBonus(); ok {
		_spec.AddField(expevent.FieldFirstDailyBonus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakBonus(); ok {
		_spec.SetField(expevent.FieldStreakBonus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakBonus(); ok {
		_spec.AddField(expevent.FieldStreakBonus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RepeatPenalty(); ok {
		_spec.SetField(expevent.FieldRepeatPenalty, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Boost(); ok {
		_spec.SetField(expevent.FieldBoost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBoost(); ok {
		_spec.AddField(expevent.FieldBoost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Awarded(); ok {
		_spec.SetField(expevent.FieldAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAwarded(); ok {
		_spec.AddField(expevent.FieldAwarded, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{expevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExpEventUpdateOne is the builder for updating a single ExpEvent entity.
type ExpEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExpEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ExpEventUpdateOne) SetSessionID(v string) *ExpEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExpEventUpdateOne) SetNillableSessionID(v *string) *ExpEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetBase sets the "base" field.
func (_u *ExpEventUpdateOne) SetBase(v int) *ExpEventUpdateOne {
	_u.mutation.ResetBase()
	_u.mutation.SetBase(v)
	return _u
}

// SetNillableBase sets the "base" field if the given value is not nil.
func (_u *ExpEventUpdateOne) SetNillableBase(v *int) *ExpEventUpdateOne {
	if v != nil {
		_u.SetBase(*v)
	}
	return _u
}

// AddBase adds value to the "base" field.
func (_u *ExpEventUpdateOne) AddBase(v int) *ExpEventUpdateOne {
	_u.mutation.AddBase(v)
	return _u
}

// SetCompletionBonus sets the "completion_bonus" field.
func (_u *ExpEventUpdateOne) SetCompletionBonus(v int) *ExpEventUpdateOne {
	_u.mutation.ResetCompletionBonus()
	_u.mutation.SetCompletionBonus(v)
	return _u
}

// SetNillableCompletionBonus sets the "completion_bonus" field if the given value is not nil.
func (_u *ExpEventUpdateOne) SetNillableCompletionBonus(v *int) *ExpEventUpdateOne {
	if v != nil {
		_u.SetCompletionBonus(*v)
	}
	return _u
}

// AddCompletionBonus adds value to the "completion_bonus" field.
func (_u *ExpEventUpdateOne) AddCompletionBonus(v int) *ExpEventUpdateOne {
	_u.mutation.AddCompletionBonus(v)
	return _u
}

// SetFirstDailyBonus sets the "first_daily_bonus" field.
func (_u *ExpEventUpdateOne) SetFirstDailyBonus(v int) *ExpEventUpdateOne {
	_u.mutation.ResetFirstDailyBonus()
	_u.mutation.SetFirstDailyBonus(v)
	return _u
}

// SetNillableFirstDailyBonus sets the "first_daily_bonus" field if the given value is not nil.
func (_u *ExpEventUpdateOne) SetNillableFirstDailyBonus(v *int) *ExpEventUpdateOne {
	if v != nil {
		_u.SetFirstDailyBonus(*v)
	}
	return _u
}

// AddFirstDailyBonus adds value to the "first_daily_bonus" field.
func (_u *ExpEventUpdateOne) AddFirstDailyBonus(v int) *ExpEventUpdateOne {
	_u.mutation.AddFirstDailyBonus(v)
	return _u
}

// SetStreakBonus sets the "streak_bonus" field.
func (_u *ExpEventUpdateOne) SetStreakBonus(v int) *ExpEventUpdateOne {
	_u.mutation.ResetStreakBonus()
	_u.mutation.SetStreakBonus(v)
	return _u
}

// SetNillableStreakBonus sets the "streak_bonus" field if the given value is not nil.
func (_u *ExpEventUpdateOne) SetNillableStreakBonus(v *int) *ExpEventUpdateOne {
	if v != nil {
		_u.SetStreakBonus(*v)
	}
	return _u
}

// AddStreakBonus adds value to the "streak_bonus" field.
func (_u *ExpEventUpdateOne) AddStreakBonus(v int) *ExpEventUpdateOne {
	_u.mutation.AddStreakBonus(v)
	return _u
}

// SetRepeatPenalty sets the "repeat_penalty" field.
func (_u *ExpEventUpdateOne) SetRepeatPenalty(v bool) *ExpEventUpdateOne {
	_u.mutation.SetRepeatPenalty(v)
	return _u
}

// SetNillableRepeatPenalty sets the "repeat_penalty" field if the given value is not nil.
func (_u *ExpEventUpdateOne) SetNillableRepeatPenalty(v *bool) *ExpEventUpdateOne {
	if v != nil {
		_u.SetRepeatPenalty(*v)
	}
	return _u
}

// SetBoost sets the "boost" field.
func (_u *ExpEventUpdateOne) SetBoost(v float64) *ExpEventUpdateOne {
	_u.mutation.ResetBoost()
	_u.mutation.SetBoost(v)
	return _u
}

// SetNillableBoost sets the "boost" field if the given value is not nil.
func (_u *ExpEventUpdateOne) SetNillableBoost(v *float64) *ExpEventUpdateOne {
	if v != nil {
		_u.SetBoost(*v)
	}
	return _u
}

// AddBoost adds value to the "boost" field.
func (_u *ExpEventUpdateOne) AddBoost(v float64) *ExpEventUpdateOne {
	_u.mutation.AddBoost(v)
	return _u
}

// SetAwarded sets the "awarded" field.
func (_u *ExpEventUpdateOne) SetAwarded(v int) *ExpEventUpdateOne {
	_u.mutation.ResetAwarded()
	_u.mutation.SetAwarded(v)
	return _u
}

// SetNillableAwarded sets the "awarded" field if the given value is not nil.
func (_u *ExpEventUpdateOne) SetNillableAwarded(v *int) *ExpEventUpdateOne {
	if v != nil {
		_u.SetAwarded(*v)
	}
	return _u
}

// AddAwarded adds value to the "awarded" field.
func (_u *ExpEventUpdateOne) AddAwarded(v int) *ExpEventUpdateOne {
	_u.mutation.AddAwarded(v)
	return _u
}

// Mutation returns the ExpEventMutation object of the builder.
func (_u *ExpEventUpdateOne) Mutation() *ExpEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExpEventUpdate builder.
func (_u *ExpEventUpdateOne) Where(ps ...predicate.ExpEvent) *ExpEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExpEventUpdateOne) Select(field string, fields ...string) *ExpEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExpEvent entity.
func (_u *ExpEventUpdateOne) Save(ctx context.Context) (*ExpEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExpEventUpdateOne) SaveX(ctx context.Context) *ExpEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExpEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExpEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExpEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := expevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExpEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ExpEventUpdateOne) sqlSave(ctx context.Context) (_node *ExpEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(expevent.Table, expevent.Columns, sqlgraph.NewFieldSpec(expevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExpEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, expevent.FieldID)
		for _, f := range fields {
			if !expevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != expevent.FieldID {
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
		_spec.SetField(expevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Base(); ok {
		_spec.SetField(expevent.FieldBase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBase(); ok {
		_spec.AddField(expevent.FieldBase, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletionBonus(); ok {
		_spec.SetField(expevent.FieldCompletionBonus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletionBonus(); ok {
		_spec.AddField(expevent.FieldCompletionBonus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FirstDailyBonus(); ok {
		_spec.SetField(expevent.FieldFirstDailyBonus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFirstDailyBonus(); ok {
		_spec.AddField(expevent.FieldFirstDailyBonus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakBonus(); ok {
		_spec.SetField(expevent.FieldStreakBonus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakBonus(); ok {
		_spec.AddField(expevent.FieldStreakBonus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RepeatPenalty(); ok {
		_spec.SetField(expevent.FieldRepeatPenalty, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Boost(); ok {
		_spec.SetField(expevent.FieldBoost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBoost(); ok {
		_spec.AddField(expevent.FieldBoost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Awarded(); ok {
		_spec.SetField(expevent.FieldAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAwarded(); ok {
		_spec.AddField(expevent.FieldAwarded, field.TypeInt, value)
	}
	_node = &ExpEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{expevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
