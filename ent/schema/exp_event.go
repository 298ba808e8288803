package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExpEvent records one EXP award with its full breakdown, so the reward
// history can be audited without recomputing old sessions.
type ExpEvent struct {
	ent.Schema
}

func (ExpEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ExpEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.Int("base"),
		field.Int("completion_bonus").
			Default(0),
		field.Int("first_daily_bonus").
			Default(0),
		field.Int("streak_bonus").
			Default(0),
		field.Bool("repeat_penalty").
			Default(false),
		field.Float("boost").
			Default(1),
		field.Int("awarded").
			Comment("Final EXP credited after the boost multiplier"),
	}
}

func (ExpEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
