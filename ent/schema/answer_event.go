package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one graded answer within a session, including
// answers later taken back by undo.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.Int64("subject_id").
			Comment("Subject the question was about"),
		field.String("question_type").
			NotEmpty().
			Comment("MEANING, READING, READING-ON, or READING-KUN"),
		field.String("given_answer").
			Comment("What the learner entered"),
		field.String("verdict").
			NotEmpty().
			Comment("ok, ok-with-typo, or wrong"),
		field.Bool("undone").
			Default(false).
			Comment("Set when a later undo retracted this answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("subject_id"),
		index.Fields("verdict"),
	}
}
