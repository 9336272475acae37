// Package inflect classifies inflectable Japanese words and produces
// conjugated verb and declined adjective surface forms.
package inflect

// Category is a recognized inflectable part-of-speech class.
type Category int

const (
	CategoryNone Category = iota
	CategoryGodanVerb
	CategoryIchidanVerb
	CategorySuruVerb
	CategoryIAdjective
	CategoryNaAdjective
)

// categoryLabels maps each category to the part-of-speech label subjects
// carry. These are the exact strings found in subject data.
var categoryLabels = map[Category]string{
	CategoryGodanVerb:   "godan verb",
	CategoryIchidanVerb: "ichidan verb",
	CategorySuruVerb:    "する verb",
	CategoryIAdjective:  "い adjective",
	CategoryNaAdjective: "な adjective",
}

// classifyPriority is the order in which categories are checked: verb
// classes before adjective classes.
var classifyPriority = []Category{
	CategoryGodanVerb,
	CategoryIchidanVerb,
	CategorySuruVerb,
	CategoryIAdjective,
	CategoryNaAdjective,
}

// Classify returns the first recognized inflectable category among the
// given parts of speech, or CategoryNone. Categories are checked in a
// fixed priority order, so a word listed as both a verb and an adjective
// class always classifies as the verb.
func Classify(partsOfSpeech []string) Category {
	for _, c := range classifyPriority {
		label := categoryLabels[c]
		for _, pos := range partsOfSpeech {
			if pos == label {
				return c
			}
		}
	}
	return CategoryNone
}

// IsVerb reports whether the category is one of the verb conjugation classes.
func (c Category) IsVerb() bool {
	switch c {
	case CategoryGodanVerb, CategoryIchidanVerb, CategorySuruVerb:
		return true
	}
	return false
}

// Label returns the part-of-speech label for the category, or "" for
// CategoryNone.
func (c Category) Label() string {
	return categoryLabels[c]
}

func (c Category) String() string {
	if c == CategoryNone {
		return "none"
	}
	return categoryLabels[c]
}
