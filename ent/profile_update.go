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
	"github.com/abhisek/mathquest/ent/predicate"
	"github.com/abhisek/mathquest/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGrade sets the "grade" field.
func (_u *ProfileUpdate) SetGrade(v string) *ProfileUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableGrade(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ProfileUpdate) SetLevel(v int) *ProfileUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLevel(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *ProfileUpdate) AddLevel(v int) *ProfileUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetExperience sets the "experience" field.
func (_u *ProfileUpdate) SetExperience(v int) *ProfileUpdate {
	_u.mutation.ResetExperience()
	_u.mutation.SetExperience(v)
	return _u
}

// SetNillableExperience sets the "experience" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableExperience(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetExperience(*v)
	}
	return _u
}

// AddExperience adds value to the "experience" field.
func (_u *ProfileUpdate) AddExperience(v int) *ProfileUpdate {
	_u.mutation.AddExperience(v)
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *ProfileUpdate) SetTotalScore(v int) *ProfileUpdate {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableTotalScore(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *ProfileUpdate) AddTotalScore(v int) *ProfileUpdate {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetStreakDays sets the "streak_days" field.
func (_u *ProfileUpdate) SetStreakDays(v int) *ProfileUpdate {
	_u.mutation.ResetStreakDays()
	_u.mutation.SetStreakDays(v)
	return _u
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableStreakDays(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetStreakDays(*v)
	}
	return _u
}

// AddStreakDays adds value to the "streak_days" field.
func (_u *ProfileUpdate) AddStreakDays(v int) *ProfileUpdate {
	_u.mutation.AddStreakDays(v)
	return _u
}

// SetLastPlayedAt sets the "last_played_at" field.
func (_u *ProfileUpdate) SetLastPlayedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetLastPlayedAt(v)
	return _u
}

// SetNillableLastPlayedAt sets the "last_played_at" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLastPlayedAt(v *time.Time) *ProfileUpdate {
	if v != nil {
		_u.SetLastPlayedAt(*v)
	}
	return _u
}

// ClearLastPlayedAt clears the value of the "last_played_at" field.
func (_u *ProfileUpdate) ClearLastPlayedAt() *ProfileUpdate {
	_u.mutation.ClearLastPlayedAt()
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdate) check() error {
	if v, ok := _u.mutation.Grade(); ok {
		if err := profile.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Profile.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := profile.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Profile.level": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(profile.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(profile.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(profile.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Experience(); ok {
		_spec.SetField(profile.FieldExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperience(); ok {
		_spec.AddField(profile.FieldExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(profile.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(profile.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakDays(); ok {
		_spec.SetField(profile.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakDays(); ok {
		_spec.AddField(profile.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPlayedAt(); ok {
		_spec.SetField(profile.FieldLastPlayedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPlayedAtCleared() {
		_spec.ClearField(profile.FieldLastPlayedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetGrade sets the "grade" field.
func (_u *ProfileUpdateOne) SetGrade(v string) *ProfileUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableGrade(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ProfileUpdateOne) SetLevel(v int) *ProfileUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLevel(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *ProfileUpdateOne) AddLevel(v int) *ProfileUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetExperience sets the "experience" field.
func (_u *ProfileUpdateOne) SetExperience(v int) *ProfileUpdateOne {
	_u.mutation.ResetExperience()
	_u.mutation.SetExperience(v)
	return _u
}

// SetNillableExperience sets the "experience" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableExperience(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetExperience(*v)
	}
	return _u
}

// AddExperience adds value to the "experience" field.
func (_u *ProfileUpdateOne) AddExperience(v int) *ProfileUpdateOne {
	_u.mutation.AddExperience(v)
	return _u
}

// SetTotalScore sets the "total_score" field.
func (_u *ProfileUpdateOne) SetTotalScore(v int) *ProfileUpdateOne {
	_u.mutation.ResetTotalScore()
	_u.mutation.SetTotalScore(v)
	return _u
}

// SetNillableTotalScore sets the "total_score" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableTotalScore(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetTotalScore(*v)
	}
	return _u
}

// AddTotalScore adds value to the "total_score" field.
func (_u *ProfileUpdateOne) AddTotalScore(v int) *ProfileUpdateOne {
	_u.mutation.AddTotalScore(v)
	return _u
}

// SetStreakDays sets the "streak_days" field.
func (_u *ProfileUpdateOne) SetStreakDays(v int) *ProfileUpdateOne {
	_u.mutation.ResetStreakDays()
	_u.mutation.SetStreakDays(v)
	return _u
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableStreakDays(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetStreakDays(*v)
	}
	return _u
}

// AddStreakDays adds value to the "streak_days" field.
func (_u *ProfileUpdateOne) AddStreakDays(v int) *ProfileUpdateOne {
	_u.mutation.AddStreakDays(v)
	return _u
}

// SetLastPlayedAt sets the "last_played_at" field.
func (_u *ProfileUpdateOne) SetLastPlayedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetLastPlayedAt(v)
	return _u
}

// SetNillableLastPlayedAt sets the "last_played_at" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLastPlayedAt(v *time.Time) *ProfileUpdateOne {
	if v != nil {
		_u.SetLastPlayedAt(*v)
	}
	return _u
}

// ClearLastPlayedAt clears the value of the "last_played_at" field.
func (_u *ProfileUpdateOne) ClearLastPlayedAt() *ProfileUpdateOne {
	_u.mutation.ClearLastPlayedAt()
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Grade(); ok {
		if err := profile.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "Profile.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := profile.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Profile.level": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
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
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(profile.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(profile.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(profile.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Experience(); ok {
		_spec.SetField(profile.FieldExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperience(); ok {
		_spec.AddField(profile.FieldExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalScore(); ok {
		_spec.SetField(profile.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalScore(); ok {
		_spec.AddField(profile.FieldTotalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakDays(); ok {
		_spec.SetField(profile.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakDays(); ok {
		_spec.AddField(profile.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPlayedAt(); ok {
		_spec.SetField(profile.FieldLastPlayedAt, field.TypeTime, value)
	}
	if _u.mutation.LastPlayedAtCleared() {
		_spec.ClearField(profile.FieldLastPlayedAt, field.TypeTime)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
