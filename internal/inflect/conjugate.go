package inflect

import "strings"

// godanRow maps a dictionary-form ending to its a/i/e/o row kana, used to
// build every godan conjugation.
type godanRow struct {
	a, i, e, o string
}

var godanRows = map[string]godanRow{
	"う": {"わ", "い", "え", "お"},
	"く": {"か", "き", "け", "こ"},
	"ぐ": {"が", "ぎ", "げ", "ご"},
	"す": {"さ", "し", "せ", "そ"},
	"つ": {"た", "ち", "て", "と"},
	"ぬ": {"な", "に", "ね", "の"},
	"ぶ": {"ば", "び", "べ", "ぼ"},
	"む": {"ま", "み", "め", "も"},
	"る": {"ら", "り", "れ", "ろ"},
}

// godanPast maps a dictionary-form ending to its euphonic past ending.
// The て form follows the same sound changes with て/で.
var godanPast = map[string]string{
	"う": "った",
	"つ": "った",
	"る": "った",
	"く": "いた",
	"ぐ": "いだ",
	"す": "した",
	"ぬ": "んだ",
	"ぶ": "んだ",
	"む": "んだ",
}

// ConjugateVerb renders the conjugated surface form of a verb. The
// characters are the dictionary form; the category selects the conjugation
// class. Unknown forms and non-verb categories return the characters
// unchanged so a bad label never corrupts the prompt.
func ConjugateVerb(characters string, category Category, form Form) string {
	switch category {
	case CategoryGodanVerb:
		return conjugateGodan(characters, form)
	case CategoryIchidanVerb:
		return conjugateIchidan(characters, form)
	case CategorySuruVerb:
		return conjugateSuru(characters, form)
	}
	return characters
}

func conjugateGodan(word string, form Form) string {
	runes := []rune(word)
	if len(runes) < 2 {
		return word
	}
	ending := string(runes[len(runes)-1])
	stem := string(runes[:len(runes)-1])
	row, ok := godanRows[ending]
	if !ok {
		return word
	}

	past := godanPast[ending]
	// 行く is the lone euphonic exception: 行った, not 行いた.
	if strings.HasSuffix(word, "行く") || word == "いく" {
		past = "った"
	}

	switch form {
	case "negative":
		return stem + row.a + "ない"
	case "past":
		return stem + past
	case "past negative":
		return stem + row.a + "なかった"
	case "polite":
		return stem + row.i + "ます"
	case "て form":
		te := strings.TrimSuffix(past, "た")
		if strings.HasSuffix(past, "だ") {
			return stem + strings.TrimSuffix(past, "だ") + "で"
		}
		return stem + te + "て"
	case "potential":
		return stem + row.e + "る"
	case "passive":
		return stem + row.a + "れる"
	case "causative":
		return stem + row.a + "せる"
	case "volitional":
		return stem + row.o + "う"
	case "conditional":
		return stem + row.e + "ば"
	}
	return word
}

func conjugateIchidan(word string, form Form) string {
	stem, ok := strings.CutSuffix(word, "る")
	if !ok {
		return word
	}

	switch form {
	case "negative":
		return stem + "ない"
	case "past":
		return stem + "た"
	case "past negative":
		return stem + "なかった"
	case "polite":
		return stem + "ます"
	case "て form":
		return stem + "て"
	case "potential":
		return stem + "られる"
	case "passive":
		return stem + "られる"
	case "causative":
		return stem + "させる"
	case "volitional":
		return stem + "よう"
	case "conditional":
		return stem + "れば"
	}
	return word
}

func conjugateSuru(word string, form Form) string {
	prefix, ok := strings.CutSuffix(word, "する")
	if !ok {
		return word
	}

	switch form {
	case "negative":
		return prefix + "しない"
	case "past":
		return prefix + "した"
	case "past negative":
		return prefix + "しなかった"
	case "polite":
		return prefix + "します"
	case "て form":
		return prefix + "して"
	case "potential":
		return prefix + "できる"
	case "passive":
		return prefix + "される"
	case "causative":
		return prefix + "させる"
	case "volitional":
		return prefix + "しよう"
	case "conditional":
		return prefix + "すれば"
	}
	return word
}
