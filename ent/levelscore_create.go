// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mathquest/ent/levelscore"
)

// LevelScoreCreate is the builder for creating a LevelScore entity.
type LevelScoreCreate struct {
	config
	mutation *LevelScoreMutation
	hooks    []Hook
}

// SetGrade sets the "grade" field.
func (_c *LevelScoreCreate) SetGrade(v string) *LevelScoreCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *LevelScoreCreate) SetLevel(v int) *LevelScoreCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetHighScore sets the "high_score" field.
func (_c *LevelScoreCreate) SetHighScore(v int) *LevelScoreCreate {
	_c.mutation.SetHighScore(v)
	return _c
}

// SetNillableHighScore sets the "high_score" field if the given value is not nil.
func (_c *LevelScoreCreate) SetNillableHighScore(v *int) *LevelScoreCreate {
	if v != nil {
		_c.SetHighScore(*v)
	}
	return _c
}

// SetPlayCount sets the "play_count" field.
func (_c *LevelScoreCreate) SetPlayCount(v int) *LevelScoreCreate {
	_c.mutation.SetPlayCount(v)
	return _c
}

// SetNillablePlayCount sets the "play_count" field if the given value is not nil.
func (_c *LevelScoreCreate) SetNillablePlayCount(v *int) *LevelScoreCreate {
	if v != nil {
		_c.SetPlayCount(*v)
	}
	return _c
}

// SetLastPlayedAt sets the "last_played_at" field.
func (_c *LevelScoreCreate) SetLastPlayedAt(v time.Time) *LevelScoreCreate {
	_c.mutation.SetLastPlayedAt(v)
	return _c
}

// Mutation returns the LevelScoreMutation object of the builder.
func (_c *LevelScoreCreate) Mutation() *LevelScoreMutation {
	return _c.mutation
}

// Save creates the LevelScore in the database.
func (_c *LevelScoreCreate) Save(ctx context.Context) (*LevelScore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LevelScoreCreate) SaveX(ctx context.Context) *LevelScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LevelScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LevelScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LevelScoreCreate) defaults() {
	if _, ok := _c.mutation.HighScore(); !ok {
		v := levelscore.DefaultHighScore
		_c.mutation.SetHighScore(v)
	}
	if _, ok := _c.mutation.PlayCount(); !ok {
		v := levelscore.DefaultPlayCount
		_c.mutation.SetPlayCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LevelScoreCreate) check() error {
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "LevelScore.grade"`)}
	}
	if v, ok := _c.mutation.Grade(); ok {
		if err := levelscore.GradeValidator(v); err != nil {
			return &ValidationError{Name: "grade", err: fmt.Errorf(`ent: validator failed for field "LevelScore.grade": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "LevelScore.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := levelscore.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "LevelScore.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HighScore(); !ok {
		return &ValidationError{Name: "high_score", err: errors.New(`ent: missing required field "LevelScore.high_score"`)}
	}
	if _, ok := _c.mutation.PlayCount(); !ok {
		return &ValidationError{Name: "play_count", err: errors.New(`ent: missing required field "LevelScore.play_count"`)}
	}
	if _, ok := _c.mutation.LastPlayedAt(); !ok {
		return &ValidationError{Name: "last_played_at", err: errors.New(`ent: missing required field "LevelScore.last_played_at"`)}
	}
	return nil
}

func (_c *LevelScoreCreate) sqlSave(ctx context.Context) (*LevelScore, error) {
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

func (_c *LevelScoreCreate) createSpec() (*LevelScore, *sqlgraph.CreateSpec) {
	var (
		_node = &LevelScore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(levelscore.Table, sqlgraph.NewFieldSpec(levelscore.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(levelscore.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(levelscore.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.HighScore(); ok {
		_spec.SetField(levelscore.FieldHighScore, field.TypeInt, value)
		_node.HighScore = value
	}
	if value, ok := _c.mutation.PlayCount(); ok {
		_spec.SetField(levelscore.FieldPlayCount, field.TypeInt, value)
		_node.PlayCount = value
	}
	if value, ok := _c.mutation.LastPlayedAt(); ok {
		_spec.SetField(levelscore.FieldLastPlayedAt, field.TypeTime, value)
		_node.LastPlayedAt = value
	}
	return _node, _spec
}

// LevelScoreCreateBulk is the builder for creating many LevelScore entities in bulk.
type LevelScoreCreateBulk struct {
	config
	err      error
	builders []*LevelScoreCreate
}

// Save creates the LevelScore entities in the database.
func (_c *LevelScoreCreateBulk) Save(ctx context.Context) ([]*LevelScore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LevelScore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LevelScoreMutation)
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
func (_c *LevelScoreCreateBulk) SaveX(ctx context.Context) []*LevelScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LevelScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LevelScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
