package quiz

import (
	"github.com/mizutani/kotoba/internal/inflect"
)

// InflectionCategory returns the inflectable class this question's
// subject falls in, or CategoryNone when inflection randomization is off
// for the session or the subject carries no inflectable part of speech.
func (q *Question) InflectionCategory() inflect.Category {
	if !q.settings.RandomizeInflections(q.sessionType) {
		return inflect.CategoryNone
	}
	return inflect.Classify(q.item.Subject().PartsOfSpeech)
}

// Inflection returns the form this question shows its subject in, drawing
// one at random on first use. The draw is memoized for the life of the
// question so repeated renders, retries, and the revealed answer all
// agree on the form.
func (q *Question) Inflection() inflect.Form {
	if q.inflection != "" {
		return q.inflection
	}

	category := q.InflectionCategory()
	if category == inflect.CategoryNone {
		return ""
	}

	if category.IsVerb() {
		q.inflection = inflect.RandomVerbConjugation()
	} else {
		q.inflection = inflect.RandomAdjectiveDeclension()
	}
	return q.inflection
}

// Characters returns the written form to display for this question: the
// subject's characters, inflected when a form applies.
func (q *Question) Characters() string {
	characters := q.item.Subject().Characters
	if characters == "" {
		return ""
	}

	category := q.InflectionCategory()
	if category == inflect.CategoryNone {
		return characters
	}

	form := q.Inflection()
	if category.IsVerb() {
		return inflect.ConjugateVerb(characters, category, form)
	}
	return inflect.DeclineAdjective(characters, category, form)
}

// RevealedAnswerText renders the accepted answers for display after the
// question resolves, annotated with the inflected form when one applies
// so the learner can connect the surface form back to the dictionary
// entry.
func (q *Question) RevealedAnswerText() string {
	text := q.typ.AnswerText(q.item.Subject())
	if form := q.Inflection(); form != "" {
		return text + " (" + string(form) + ")"
	}
	return text
}
