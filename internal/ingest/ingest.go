package ingest

import (
	"context"
	"fmt"
	"unicode"

	"go.uber.org/zap"

	"github.com/mizutani/kotoba/internal/store"
	"github.com/mizutani/kotoba/internal/subject"
)

// Candidate is one vocabulary entry derived from a text, with how often
// it appeared.
type Candidate struct {
	Subject *subject.Subject
	Count   int
}

// ExtractCandidates tokenizes text and derives unique vocabulary
// candidates from the dictionary forms, most frequent first within
// insertion order. Tokens without a useful part of speech, without any
// Japanese script, or shorter than two characters (single kana carry no
// study value) are skipped.
func (a *Analyzer) ExtractCandidates(text string, level int) []Candidate {
	seen := make(map[string]*Candidate)
	var order []string

	for _, tok := range a.Analyze(text) {
		if tok.POS == "" || !keepCandidate(tok) {
			continue
		}
		if c, ok := seen[tok.BaseForm]; ok {
			c.Count++
			continue
		}

		sub := &subject.Subject{
			Kind:       subject.KindVocabulary,
			Characters: tok.BaseForm,
			Level:      level,
			Meanings: []subject.Meaning{
				// Meanings are filled in by hand or by the mnemonic
				// workflow after import; the placeholder keeps the entry
				// visibly incomplete.
				{Text: "", Primary: true, Accepted: false},
			},
			PartsOfSpeech: []string{tok.POS},
		}
		if tok.Reading != "" {
			sub.Readings = []subject.Reading{
				{Text: tok.Reading, Kind: subject.ReadingVocab, Primary: true, Accepted: true},
			}
		}
		seen[tok.BaseForm] = &Candidate{Subject: sub, Count: 1}
		order = append(order, tok.BaseForm)
	}

	out := make([]Candidate, 0, len(order))
	for _, key := range order {
		out = append(out, *seen[key])
	}
	return out
}

func keepCandidate(tok Token) bool {
	runes := []rune(tok.BaseForm)
	if len(runes) < 2 {
		return false
	}
	for _, r := range runes {
		if unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana) {
			return true
		}
	}
	return false
}

// Importer stores extracted candidates as subjects.
type Importer struct {
	subjects store.SubjectRepo
	log      *zap.Logger
}

// NewImporter builds an importer over the subject repository.
func NewImporter(subjects store.SubjectRepo, log *zap.Logger) *Importer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Importer{subjects: subjects, log: log}
}

// Import saves candidates that are not yet in the catalog and returns
// how many were added.
func (i *Importer) Import(ctx context.Context, candidates []Candidate) (int, error) {
	added := 0
	for _, c := range candidates {
		existing, err := i.subjects.Find(ctx, c.Subject.Kind, c.Subject.Characters)
		if err != nil {
			return added, err
		}
		if existing != nil {
			continue
		}
		if _, err := i.subjects.Save(ctx, c.Subject); err != nil {
			return added, fmt.Errorf("import %s: %w", c.Subject.Characters, err)
		}
		i.log.Debug("imported subject",
			zap.String("characters", c.Subject.Characters),
			zap.Int("occurrences", c.Count),
		)
		added++
	}
	return added, nil
}
