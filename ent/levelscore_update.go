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
	"github.com/abhisek/mathquest/ent/levelscore"
	"github.com/abhisek/mathquest/ent/predicate"
)

// LevelScoreUpdate is the builder for updating LevelScore entities.
type LevelScoreUpdate struct {
	config
	hooks    []Hook
	mutation *LevelScoreMutation
}

// Where appends a list predicates to the LevelScoreUpdate builder.
func (_u *LevelScoreUpdate) Where(ps ...predicate.LevelScore) *LevelScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGrade sets the "grade" field.
func (_u *LevelScoreUpdate) SetGrade(v string) *LevelScoreUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *LevelScoreUpdate) SetNillableGrade(v *string) *LevelScoreUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *LevelScoreUpdate) SetLevel(v int) *LevelScoreUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LevelScoreUpdate) SetNillableLevel(v *int) *LevelScoreUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *LevelScoreUpdate) AddLevel(v int) *LevelScoreUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetHighScore sets the "high_score" field.
func (_u *LevelScoreUpdate) SetHighScore(v int) *LevelScoreUpdate {
	_u.mutation.ResetHighScore()
	_u.mutation.SetHighScore(v)
	return _u
}

// SetNillableHighScore sets the "high_score" field if the given value is not nil.
func (_u *LevelScoreUpdate) SetNillableHighScore(v *int) *LevelScoreUpdate {
	if v != nil {
		_u.SetHighScore(*v)
	}
	return _u
}

// AddHighScore adds value to the "high_score" field.
func (_u *LevelScoreUpdate) AddHighScore(v int) *LevelScoreUpdate {
	_u.mutation.AddHighScore(v)
	return _u
}

// SetPlayCount sets the "play_count" field.
func (_u *LevelScoreUpdate) SetPlayCount(v int) *LevelScoreUpdate {
	_u.mutation.ResetPlayCount()
	_u.mutation.SetPlayCount(v)
	return _u
}

// SetNillablePlayCount sets the "play_count" field if the given value is not nil.
func (_u *LevelScoreUpdate) SetNillablePlayCount(v *int) *LevelScoreUpdate {
	if v != nil {
		_u.SetPlayCount(*v)
	}
	return _u
}

// AddPlayCount adds value to the "play_count" field.
func (_u *LevelScoreUpdate) AddPlayCount(v int) *LevelScoreUpdate {
	_u.mutation.AddPlayCount(v)
	return _u
}

// SetLastPlayedAt sets the "last_played_at" field.
func (_u *LevelScoreUpdate) SetLastPlayedAt(v time.Time) *LevelScoreUpdate {
	_u.mutation.SetLastPlayedAt(v)
	return _u
}

// SetNillableLastPlayedAt sets the "last_played_at" field if the given value is not nil.
func (_u *LevelScoreUpdate) SetNillableLastPlayedAt(v *time.Time) *LevelScoreUpdate {
	if v != nil {
		_u.SetLastPlayedAt(*v)
	}
	return _u
}

// Mutation returns the LevelScoreMutation object of the builder.
func (_u *LevelScoreUpdate) Mutation() *LevelScoreMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LevelScoreUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LevelScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LevelScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LevelScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LevelScoreUpdate) check() error {
	if v, ok := _u.mutation.Grade(); ok {
		if err := levelscore.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "LevelScore.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := levelscore.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "LevelScore.level": %w`, err)}
		}
	}
	return nil
}

func (_u *LevelScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(levelscore.Table, levelscore.Columns, sqlgraph.NewFieldSpec(levelscore.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(levelscore.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(levelscore.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(levelscore.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HighScore(); ok {
		_spec.SetField(levelscore.FieldHighScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHighScore(); ok {
		_spec.AddField(levelscore.FieldHighScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlayCount(); ok {
		_spec.SetField(levelscore.FieldPlayCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlayCount(); ok {
		_spec.AddField(levelscore.FieldPlayCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPlayedAt(); ok {
		_spec.SetField(levelscore.FieldLastPlayedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{levelscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LevelScoreUpdateOne is the builder for updating a single LevelScore entity.
type LevelScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LevelScoreMutation
}

// SetGrade sets the "grade" field.
func (_u *LevelScoreUpdateOne) SetGrade(v string) *LevelScoreUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *LevelScoreUpdateOne) SetNillableGrade(v *string) *LevelScoreUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *LevelScoreUpdateOne) SetLevel(v int) *LevelScoreUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *LevelScoreUpdateOne) SetNillableLevel(v *int) *LevelScoreUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *LevelScoreUpdateOne) AddLevel(v int) *LevelScoreUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetHighScore sets the "high_score" field.
func (_u *LevelScoreUpdateOne) SetHighScore(v int) *LevelScoreUpdateOne {
	_u.mutation.ResetHighScore()
	_u.mutation.SetHighScore(v)
	return _u
}

// SetNillableHighScore sets the "high_score" field if the given value is not nil.
func (_u *LevelScoreUpdateOne) SetNillableHighScore(v *int) *LevelScoreUpdateOne {
	if v != nil {
		_u.SetHighScore(*v)
	}
	return _u
}

// AddHighScore adds value to the "high_score" field.
func (_u *LevelScoreUpdateOne) AddHighScore(v int) *LevelScoreUpdateOne {
	_u.mutation.AddHighScore(v)
	return _u
}

// SetPlayCount sets the "play_count" field.
func (_u *LevelScoreUpdateOne) SetPlayCount(v int) *LevelScoreUpdateOne {
	_u.mutation.ResetPlayCount()
	_u.mutation.SetPlayCount(v)
	return _u
}

// SetNillablePlayCount sets the "play_count" field if the given value is not nil.
func (_u *LevelScoreUpdateOne) SetNillablePlayCount(v *int) *LevelScoreUpdateOne {
	if v != nil {
		_u.SetPlayCount(*v)
	}
	return _u
}

// AddPlayCount adds value to the "play_count" field.
func (_u *LevelScoreUpdateOne) AddPlayCount(v int) *LevelScoreUpdateOne {
	_u.mutation.AddPlayCount(v)
	return _u
}

// SetLastPlayedAt sets the "last_played_at" field.
func (_u *LevelScoreUpdateOne) SetLastPlayedAt(v time.Time) *LevelScoreUpdateOne {
	_u.mutation.SetLastPlayedAt(v)
	return _u
}

// SetNillableLastPlayedAt sets the "last_played_at" field if the given value is not nil.
func (_u *LevelScoreUpdateOne) SetNillableLastPlayedAt(v *time.Time) *LevelScoreUpdateOne {
	if v != nil {
		_u.SetLastPlayedAt(*v)
	}
	return _u
}

// Mutation returns the LevelScoreMutation object of the builder.
func (_u *LevelScoreUpdateOne) Mutation() *LevelScoreMutation {
	return _u.mutation
}

// Where appends a list predicates to the LevelScoreUpdate builder.
func (_u *LevelScoreUpdateOne) Where(ps ...predicate.LevelScore) *LevelScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LevelScoreUpdateOne) Select(field string, fields ...string) *LevelScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LevelScore entity.
func (_u *LevelScoreUpdateOne) Save(ctx context.Context) (*LevelScore, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LevelScoreUpdateOne) SaveX(ctx context.Context) *LevelScore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LevelScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LevelScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LevelScoreUpdateOne) check() error {
	if v, ok := _u.mutation.Grade(); ok {
		if err := levelscore.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "LevelScore.grade": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := levelscore.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "LevelScore.level": %w`, err)}
		}
	}
	return nil
}

func (_u *LevelScoreUpdateOne) sqlSave(ctx context.Context) (_node *LevelScore, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(levelscore.Table, levelscore.Columns, sqlgraph.NewFieldSpec(levelscore.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LevelScore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, levelscore.FieldID)
		for _, f := range fields {
			if !levelscore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != levelscore.FieldID {
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
		_spec.SetField(levelscore.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(levelscore.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(levelscore.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.HighScore(); ok {
		_spec.SetField(levelscore.FieldHighScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHighScore(); ok {
		_spec.AddField(levelscore.FieldHighScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlayCount(); ok {
		_spec.SetField(levelscore.FieldPlayCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPlayCount(); ok {
		_spec.AddField(levelscore.FieldPlayCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPlayedAt(); ok {
		_spec.SetField(levelscore.FieldLastPlayedAt, field.TypeTime, value)
	}
	_node = &LevelScore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{levelscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
