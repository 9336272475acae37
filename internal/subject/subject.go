package subject

import "strings"

// Kind identifies what a subject represents.
type Kind string

const (
	KindRadical    Kind = "radical"
	KindKanji      Kind = "kanji"
	KindVocabulary Kind = "vocabulary"
)

// ReadingKind distinguishes kanji on'yomi and kun'yomi from vocabulary readings.
type ReadingKind string

const (
	ReadingOn    ReadingKind = "onyomi"
	ReadingKun   ReadingKind = "kunyomi"
	ReadingVocab ReadingKind = "vocabulary"
)

// Meaning is one accepted or rejected English meaning of a subject.
type Meaning struct {
	Text     string `json:"text"`
	Primary  bool   `json:"primary"`
	Accepted bool   `json:"accepted"`
}

// Reading is one kana reading of a subject.
type Reading struct {
	Text     string      `json:"text"`
	Kind     ReadingKind `json:"kind"`
	Primary  bool        `json:"primary"`
	Accepted bool        `json:"accepted"`
}

// Subject is one study entry: a radical, a kanji, or a vocabulary word.
// All durable state about review progress lives on the assignment, not here.
type Subject struct {
	ID            int64
	Kind          Kind
	Characters    string
	Level         int
	Meanings      []Meaning
	Readings      []Reading
	PartsOfSpeech []string

	MeaningMnemonic string
	ReadingMnemonic string
}

// PrimaryMeaning returns the primary meaning text, or the first accepted
// meaning if none is marked primary.
func (s *Subject) PrimaryMeaning() string {
	for _, m := range s.Meanings {
		if m.Primary {
			return m.Text
		}
	}
	for _, m := range s.Meanings {
		if m.Accepted {
			return m.Text
		}
	}
	return ""
}

// PrimaryReading returns the primary reading text, or the first accepted
// reading if none is marked primary.
func (s *Subject) PrimaryReading() string {
	for _, r := range s.Readings {
		if r.Primary {
			return r.Text
		}
	}
	for _, r := range s.Readings {
		if r.Accepted {
			return r.Text
		}
	}
	return ""
}

// AcceptedMeanings returns the texts of all accepted meanings.
func (s *Subject) AcceptedMeanings() []string {
	var out []string
	for _, m := range s.Meanings {
		if m.Accepted {
			out = append(out, m.Text)
		}
	}
	return out
}

// AcceptedReadings returns all accepted readings, optionally filtered by kind.
// Passing an empty kind returns every accepted reading.
func (s *Subject) AcceptedReadings(kind ReadingKind) []Reading {
	var out []Reading
	for _, r := range s.Readings {
		if !r.Accepted {
			continue
		}
		if kind != "" && r.Kind != kind {
			continue
		}
		out = append(out, r)
	}
	return out
}

// HasReadings reports whether the subject carries any reading at all.
// Radicals and some kana-only entries do not.
func (s *Subject) HasReadings() bool {
	return len(s.Readings) > 0
}

// IsSingleKanjiVocab reports whether this is a vocabulary entry whose
// written form is exactly one kanji character. Such entries are prone to
// kanji-reading confusion during grading.
func (s *Subject) IsSingleKanjiVocab() bool {
	if s.Kind != KindVocabulary {
		return false
	}
	runes := []rune(s.Characters)
	return len(runes) == 1 && isKanji(runes[0])
}

func isKanji(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || (r >= 0x3400 && r <= 0x4DBF)
}

// MeaningDisplay joins the accepted meanings for display, primary first.
func (s *Subject) MeaningDisplay() string {
	primary := s.PrimaryMeaning()
	parts := []string{}
	if primary != "" {
		parts = append(parts, primary)
	}
	for _, m := range s.Meanings {
		if m.Accepted && m.Text != primary {
			parts = append(parts, m.Text)
		}
	}
	return strings.Join(parts, ", ")
}
