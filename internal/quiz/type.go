// Package quiz implements the per-question answer lifecycle: grading
// dispatch, correct/incorrect bookkeeping on the owning session item, the
// undo protocol, and the per-question inflection choice.
package quiz

import (
	"strings"

	"github.com/mizutani/kotoba/internal/grader"
	"github.com/mizutani/kotoba/internal/subject"
)

// Type is the kind of question being asked. Each type addresses a fixed
// counter slot on the owning item; the slot never changes for the life of
// a question.
type Type int

const (
	TypeMeaning Type = iota
	TypeReading
	TypeReadingOn
	TypeReadingKun
)

func (t Type) String() string {
	switch t {
	case TypeMeaning:
		return "MEANING"
	case TypeReading:
		return "READING"
	case TypeReadingOn:
		return "READING-ON"
	case TypeReadingKun:
		return "READING-KUN"
	}
	return "UNKNOWN"
}

// Slot returns the item counter slot this question type addresses.
// TypeReading and TypeReadingOn share a slot: an item asks one or the
// other, never both.
func (t Type) Slot() int {
	switch t {
	case TypeMeaning:
		return 0
	case TypeReading, TypeReadingOn:
		return 1
	case TypeReadingKun:
		return 2
	}
	return 3
}

// IsReading reports whether the type expects a kana answer.
func (t Type) IsReading() bool {
	return t != TypeMeaning
}

// readingKind maps the question type to the reading filter used when
// grading. TypeReading accepts any reading kind.
func (t Type) readingKind() subject.ReadingKind {
	switch t {
	case TypeReadingOn:
		return subject.ReadingOn
	case TypeReadingKun:
		return subject.ReadingKun
	}
	return ""
}

// Title renders the prompt title shown above the answer field.
// indicateReadingType controls whether kanji reading questions name the
// expected reading kind.
func (t Type) Title(indicateReadingType bool, subj *subject.Subject) string {
	kind := titleKind(subj)

	switch t {
	case TypeMeaning:
		return kind + " Meaning"
	case TypeReadingOn:
		if indicateReadingType {
			return kind + " Reading (on'yomi)"
		}
		return kind + " Reading"
	case TypeReadingKun:
		if indicateReadingType {
			return kind + " Reading (kun'yomi)"
		}
		return kind + " Reading"
	default:
		return kind + " Reading"
	}
}

func titleKind(subj *subject.Subject) string {
	switch subj.Kind {
	case subject.KindRadical:
		return "Radical"
	case subject.KindKanji:
		return "Kanji"
	default:
		return "Vocabulary"
	}
}

// Hint renders the answer field placeholder. Landscape layouts fold the
// question type into the hint to keep the view compact; portrait uses the
// Japanese word for "answer" on reading questions.
func (t Type) Hint(landscape bool) string {
	if landscape {
		return "Your response (" + strings.ToLower(t.String()) + ")"
	}
	if t.IsReading() {
		return "答え"
	}
	return "Your response"
}

// CheckAnswer grades an answer of this question type against the subject.
func (t Type) CheckAnswer(subj, matchingKanji *subject.Subject, answer string, lenience grader.Lenience) grader.Verdict {
	if t == TypeMeaning {
		return grader.MatchMeaning(subj, answer, lenience)
	}
	return grader.MatchReading(subj, t.readingKind(), matchingKanji, answer)
}

// AnswerText renders the accepted answers of this question type for
// display, primary first.
func (t Type) AnswerText(subj *subject.Subject) string {
	if t == TypeMeaning {
		return subj.MeaningDisplay()
	}

	var parts []string
	for _, r := range subj.AcceptedReadings(t.readingKind()) {
		parts = append(parts, r.Text)
	}
	return strings.Join(parts, ", ")
}
