package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records the final result of one item in a session: the
// stage movement applied when the item was reported.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.Int64("subject_id").
			Comment("Subject the item tracked"),
		field.Int("incorrect_meaning").
			Default(0).
			Comment("Incorrect meaning answers before completion"),
		field.Int("incorrect_reading").
			Default(0).
			Comment("Incorrect reading answers before completion, all kinds"),
		field.Int("stage_before").
			Comment("Stage going into the review"),
		field.Int("stage_after").
			Comment("Stage after applying the result"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("subject_id"),
	}
}
