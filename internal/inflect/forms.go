package inflect

import "math/rand/v2"

// Form is the display label of a conjugation or declension, e.g. "past"
// or "て form". The label doubles as the lookup key for the renderers.
type Form string

// Verb conjugation forms, in the order they are taught.
var verbForms = []Form{
	"negative",
	"past",
	"past negative",
	"polite",
	"て form",
	"potential",
	"passive",
	"causative",
	"volitional",
	"conditional",
}

// Adjective declension forms.
var adjectiveForms = []Form{
	"negative",
	"past",
	"past negative",
	"て form",
	"adverbial",
	"conditional",
}

// RandomVerbConjugation draws one verb conjugation form at random.
func RandomVerbConjugation() Form {
	return verbForms[rand.IntN(len(verbForms))]
}

// RandomAdjectiveDeclension draws one adjective declension form at random.
func RandomAdjectiveDeclension() Form {
	return adjectiveForms[rand.IntN(len(adjectiveForms))]
}

// VerbForms returns all verb conjugation forms.
func VerbForms() []Form {
	out := make([]Form, len(verbForms))
	copy(out, verbForms)
	return out
}

// AdjectiveForms returns all adjective declension forms.
func AdjectiveForms() []Form {
	out := make([]Form, len(adjectiveForms))
	copy(out, adjectiveForms)
	return out
}
