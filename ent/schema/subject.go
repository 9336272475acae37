package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subject is one study entry: a radical, a kanji, or a vocabulary word.
type Subject struct {
	ent.Schema
}

// SubjectMeaning is the serialized form of one meaning.
type SubjectMeaning struct {
	Text     string `json:"text"`
	Primary  bool   `json:"primary"`
	Accepted bool   `json:"accepted"`
}

// SubjectReading is the serialized form of one reading.
type SubjectReading struct {
	Text     string `json:"text"`
	Kind     string `json:"kind"`
	Primary  bool   `json:"primary"`
	Accepted bool   `json:"accepted"`
}

func (Subject) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").
			NotEmpty().
			Comment("radical, kanji, or vocabulary"),
		field.String("characters").
			NotEmpty().
			Comment("The written form"),
		field.Int("level").
			Default(1).
			Comment("Curriculum level the subject unlocks at"),
		field.JSON("meanings", []SubjectMeaning{}).
			Comment("Accepted and rejected English meanings"),
		field.JSON("readings", []SubjectReading{}).
			Optional().
			Comment("Kana readings; empty for radicals"),
		field.JSON("parts_of_speech", []string{}).
			Optional().
			Comment("Part-of-speech labels, vocabulary only"),
		field.Text("meaning_mnemonic").
			Optional().
			Comment("Generated or imported meaning mnemonic"),
		field.Text("reading_mnemonic").
			Optional().
			Comment("Generated or imported reading mnemonic"),
	}
}

func (Subject) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "characters").Unique(),
		index.Fields("level"),
	}
}
