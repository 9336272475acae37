package inflect

import "strings"

// DeclineAdjective renders the declined surface form of an adjective. The
// characters are the plain form (dictionary form for い adjectives, the
// bare stem for な adjectives). Unknown forms and non-adjective categories
// return the characters unchanged.
func DeclineAdjective(characters string, category Category, form Form) string {
	switch category {
	case CategoryIAdjective:
		return declineI(characters, form)
	case CategoryNaAdjective:
		return declineNa(characters, form)
	}
	return characters
}

func declineI(word string, form Form) string {
	stem, ok := strings.CutSuffix(word, "い")
	if !ok {
		return word
	}

	switch form {
	case "negative":
		return stem + "くない"
	case "past":
		return stem + "かった"
	case "past negative":
		return stem + "くなかった"
	case "て form":
		return stem + "くて"
	case "adverbial":
		return stem + "く"
	case "conditional":
		return stem + "ければ"
	}
	return word
}

func declineNa(word string, form Form) string {
	switch form {
	case "negative":
		return word + "じゃない"
	case "past":
		return word + "だった"
	case "past negative":
		return word + "じゃなかった"
	case "て form":
		return word + "で"
	case "adverbial":
		return word + "に"
	case "conditional":
		return word + "なら"
	}
	return word
}
