package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LevelScore is the score ledger: one row per (grade, level) the player
// has attempted, tracking the best run and how often the level was played.
type LevelScore struct {
	ent.Schema
}

func (LevelScore) Fields() []ent.Field {
	return []ent.Field{
		field.String("grade").
			NotEmpty(),
		field.Int("level").
			Min(1).
			Max(100),
		field.Int("high_score").
			Default(0),
		field.Int("play_count").
			Default(0),
		field.Time("last_played_at"),
	}
}

func (LevelScore) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("grade", "level").
			Unique(),
	}
}
