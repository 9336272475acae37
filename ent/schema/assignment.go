package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Assignment tracks one subject's progress through the review ladder.
// There is at most one assignment per subject; a subject without one has
// not been unlocked yet.
type Assignment struct {
	ent.Schema
}

func (Assignment) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("subject_id").
			Unique().
			Comment("The subject this assignment tracks"),
		field.Int("stage").
			Default(0).
			Comment("Current review stage; 0 means in lessons, not yet started"),
		field.Time("available_at").
			Optional().
			Nillable().
			Comment("When the next review unlocks; unset while in lessons or after burning"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When the first lesson was completed"),
		field.Time("burned_at").
			Optional().
			Nillable().
			Comment("When the subject reached the terminal stage"),
	}
}

func (Assignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stage"),
		index.Fields("available_at"),
	}
}
