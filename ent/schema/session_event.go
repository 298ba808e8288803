package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records one finished drill session for the audit log.
// Abandoned sessions never produce an event.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the session"),
		field.String("grade").
			NotEmpty(),
		field.Int("level").
			Comment("Level actually played"),
		field.Int("score"),
		field.Int("total_questions"),
		field.Int("percentage"),
		field.String("direction").
			Comment("increase, maintain or decrease"),
		field.Bool("applied_progression").
			Default(false).
			Comment("Whether the result moved the profile level"),
		field.Int("duration_secs").
			Default(0),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("grade", "level"),
	}
}
