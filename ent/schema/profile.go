package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Profile is the single player record: current position on the grade
// ladder plus lifetime totals. Exactly one row exists per database.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("grade").
			NotEmpty().
			Comment("Current grade tag, e.g. k1 or p3"),
		field.Int("level").
			Default(1).
			Min(1).
			Max(100).
			Comment("Current level within the grade"),
		field.Int("experience").
			Default(0).
			Comment("Lifetime EXP earned"),
		field.Int("total_score").
			Default(0).
			Comment("Lifetime score, fed only by high-score improvements"),
		field.Int("streak_days").
			Default(0).
			Comment("Consecutive days with at least one session"),
		field.Time("last_played_at").
			Optional().
			Nillable().
			Comment("Wall-clock time of the most recent finished session"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
