// Package ingest turns Japanese articles into vocabulary subjects: it
// fetches a page, extracts the readable text, tokenizes it, and derives
// study entries from the dictionary forms found.
package ingest

import (
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/mizutani/kotoba/internal/grader"
)

// Token is one analyzed unit of text.
type Token struct {
	Surface  string // the text as it appears, e.g. 行っ
	BaseForm string // the dictionary form, e.g. 行く
	Reading  string // hiragana reading of the base form
	POS      string // kotoba part-of-speech label, e.g. "godan verb"
}

// Analyzer wraps the morphological tokenizer.
type Analyzer struct {
	t *tokenizer.Tokenizer
}

// NewAnalyzer builds a tokenizer over the bundled IPA dictionary.
func NewAnalyzer() (*Analyzer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Analyzer{t: t}, nil
}

// Analyze breaks text into tokens with readings and dictionary forms.
func (a *Analyzer) Analyze(text string) []Token {
	var out []Token
	for _, tok := range a.t.Tokenize(text) {
		if tok.Class == tokenizer.DUMMY || strings.TrimSpace(tok.Surface) == "" {
			continue
		}

		// IPA dictionary features:
		// 0 part of speech, 1-3 sub-classes, 4 conjugation type,
		// 5 conjugation form, 6 base form, 7 reading (katakana).
		features := tok.Features()

		base := tok.Surface
		if len(features) > 6 && features[6] != "*" {
			base = features[6]
		}
		reading := ""
		if len(features) > 7 && features[7] != "*" {
			// Readings come back in katakana; store hiragana.
			reading = grader.FoldKana(features[7])
		}

		out = append(out, Token{
			Surface:  tok.Surface,
			BaseForm: base,
			Reading:  reading,
			POS:      mapPartOfSpeech(features),
		})
	}
	return out
}

// mapPartOfSpeech translates IPA dictionary features into the
// part-of-speech labels subjects carry. Unrecognized or uninteresting
// classes map to the empty string.
func mapPartOfSpeech(features []string) string {
	if len(features) == 0 {
		return ""
	}

	switch features[0] {
	case "動詞":
		if len(features) > 4 {
			conj := features[4]
			switch {
			case strings.HasPrefix(conj, "五段"):
				return "godan verb"
			case strings.HasPrefix(conj, "一段"):
				return "ichidan verb"
			case strings.HasPrefix(conj, "サ変"):
				return "する verb"
			}
		}
		return ""
	case "形容詞":
		return "い adjective"
	case "名詞":
		if len(features) > 1 && features[1] == "形容動詞語幹" {
			return "な adjective"
		}
		if len(features) > 1 && (features[1] == "一般" || features[1] == "サ変接続" || features[1] == "固有名詞") {
			return "noun"
		}
		return ""
	}
	return ""
}
