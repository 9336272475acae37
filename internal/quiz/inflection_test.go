package quiz

import (
	"strings"
	"testing"

	"github.com/mizutani/kotoba/internal/inflect"
	"github.com/mizutani/kotoba/internal/session"
	"github.com/mizutani/kotoba/internal/srs"
	"github.com/mizutani/kotoba/internal/subject"
)

func inflectableItem(characters string, partsOfSpeech ...string) *session.Item {
	subj := &subject.Subject{
		ID:         2,
		Kind:       subject.KindVocabulary,
		Characters: characters,
		Meanings: []subject.Meaning{
			{Text: "placeholder", Primary: true, Accepted: true},
		},
		Readings: []subject.Reading{
			{Text: "よみ", Kind: subject.ReadingVocab, Primary: true, Accepted: true},
		},
		PartsOfSpeech: partsOfSpeech,
	}
	return session.NewItem(2, subj, srs.StageApprentice1, session.RequiredSlots(subj, false), &recordSink{})
}

func TestInflectionCategoryRespectsSetting(t *testing.T) {
	it := inflectableItem("食べる", "ichidan verb")

	on := New(it, TypeMeaning, session.TypeSelfStudy, stubSettings{randomize: true})
	if got := on.InflectionCategory(); got != inflect.CategoryIchidanVerb {
		t.Errorf("InflectionCategory() = %v, want ichidan verb", got)
	}

	off := New(it, TypeMeaning, session.TypeSelfStudy, stubSettings{randomize: false})
	if got := off.InflectionCategory(); got != inflect.CategoryNone {
		t.Errorf("InflectionCategory() with randomization off = %v, want none", got)
	}
	if got := off.Inflection(); got != "" {
		t.Errorf("Inflection() with randomization off = %q, want empty", got)
	}
	if got := off.Characters(); got != "食べる" {
		t.Errorf("Characters() with randomization off = %q, want dictionary form", got)
	}
}

func TestInflectionCategoryNonInflectable(t *testing.T) {
	it := inflectableItem("本", "noun")
	q := New(it, TypeMeaning, session.TypeSelfStudy, stubSettings{randomize: true})

	if got := q.InflectionCategory(); got != inflect.CategoryNone {
		t.Errorf("InflectionCategory() = %v, want none", got)
	}
	if got := q.Characters(); got != "本" {
		t.Errorf("Characters() = %q, want unmodified", got)
	}
}

func TestInflectionMemoized(t *testing.T) {
	it := inflectableItem("書く", "godan verb")
	q := New(it, TypeReading, session.TypeSelfStudy, stubSettings{randomize: true})

	first := q.Inflection()
	if first == "" {
		t.Fatal("Inflection() returned no form for an inflectable subject")
	}
	chars := q.Characters()
	for i := 0; i < 50; i++ {
		if got := q.Inflection(); got != first {
			t.Fatalf("Inflection() changed from %q to %q on call %d", first, got, i)
		}
		if got := q.Characters(); got != chars {
			t.Fatalf("Characters() changed from %q to %q on call %d", chars, got, i)
		}
	}
}

func TestInflectionIndependentPerQuestion(t *testing.T) {
	it := inflectableItem("書く", "godan verb")

	// With ten verb forms, 40 independent draws all landing on the same
	// form is vanishingly unlikely.
	first := New(it, TypeMeaning, session.TypeSelfStudy, stubSettings{randomize: true}).Inflection()
	for i := 0; i < 40; i++ {
		q := New(it, TypeMeaning, session.TypeSelfStudy, stubSettings{randomize: true})
		if q.Inflection() != first {
			return
		}
	}
	t.Error("every question drew the same inflection; draws do not look independent")
}

func TestInflectedCharactersMatchForm(t *testing.T) {
	it := inflectableItem("食べる", "ichidan verb")
	q := New(it, TypeMeaning, session.TypeSelfStudy, stubSettings{randomize: true})

	form := q.Inflection()
	want := inflect.ConjugateVerb("食べる", inflect.CategoryIchidanVerb, form)
	if got := q.Characters(); got != want {
		t.Errorf("Characters() = %q, want %q for form %q", got, want, form)
	}
}

func TestRevealedAnswerTextAnnotatesForm(t *testing.T) {
	it := inflectableItem("高い", "い adjective")

	plain := New(it, TypeMeaning, session.TypeSelfStudy, stubSettings{randomize: false})
	if got := plain.RevealedAnswerText(); got != "placeholder" {
		t.Errorf("RevealedAnswerText() = %q, want bare answer", got)
	}

	inflected := New(it, TypeMeaning, session.TypeSelfStudy, stubSettings{randomize: true})
	form := inflected.Inflection()
	got := inflected.RevealedAnswerText()
	if !strings.HasPrefix(got, "placeholder") || !strings.Contains(got, string(form)) {
		t.Errorf("RevealedAnswerText() = %q, want answer annotated with %q", got, form)
	}
}
