package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end).
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
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.String("session_type").
			NotEmpty().
			Comment("lesson, review, or self-study"),
		field.Int("items_total").
			Default(0).
			Comment("Items dealt (on start only)"),
		field.Int("items_completed").
			Default(0).
			Comment("Items finished (on end only)"),
		field.Int("items_abandoned").
			Default(0).
			Comment("Items abandoned by quitting early (on end only)"),
		field.Int("incorrect_total").
			Default(0).
			Comment("Incorrect answers across all items (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Wall-clock session length (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
