package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionItem holds the in-flight progress of one item within a session.
// Rows are written after every recorded answer so an interrupted session
// can be resumed instead of losing its answers.
type SessionItem struct {
	ent.Schema
}

func (SessionItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the owning session"),
		field.Int64("subject_id").
			Comment("Subject the item tracks"),
		field.String("state").
			Default("active").
			Comment("active, pending, reported, or abandoned"),
		field.Int("stage").
			Comment("Stage going into the session"),
		field.JSON("required", []bool{}).
			Comment("Which question slots the item asks"),
		field.JSON("done", []bool{}).
			Comment("Which question slots have been answered correctly"),
		field.JSON("incorrect", []int{}).
			Comment("Incorrect answer count per slot"),
		field.Int("num_answers").
			Default(0).
			Comment("Total recorded answers, net of undo"),
		field.Time("last_answer").
			Optional().
			Nillable().
			Comment("When the most recent correct answer was recorded"),
	}
}

func (SessionItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "subject_id").Unique(),
		index.Fields("state"),
	}
}
