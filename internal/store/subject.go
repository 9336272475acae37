package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/mizutani/kotoba/ent"
	entschema "github.com/mizutani/kotoba/ent/schema"
	entsubject "github.com/mizutani/kotoba/ent/subject"

	"github.com/mizutani/kotoba/internal/subject"
)

// subjectRepo implements SubjectRepo using the ent client.
type subjectRepo struct {
	client *ent.Client
}

func (r *subjectRepo) Save(ctx context.Context, sub *subject.Subject) (int64, error) {
	existing, err := r.client.Subject.Query().
		Where(
			entsubject.Kind(string(sub.Kind)),
			entsubject.Characters(sub.Characters),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return 0, fmt.Errorf("query subject: %w", err)
	}

	meanings := meaningsToSchema(sub.Meanings)
	readings := readingsToSchema(sub.Readings)

	if existing != nil {
		_, err = existing.Update().
			SetLevel(sub.Level).
			SetMeanings(meanings).
			SetReadings(readings).
			SetPartsOfSpeech(sub.PartsOfSpeech).
			Save(ctx)
		if err != nil {
			return 0, fmt.Errorf("update subject: %w", err)
		}
		return int64(existing.ID), nil
	}

	created, err := r.client.Subject.Create().
		SetKind(string(sub.Kind)).
		SetCharacters(sub.Characters).
		SetLevel(sub.Level).
		SetMeanings(meanings).
		SetReadings(readings).
		SetPartsOfSpeech(sub.PartsOfSpeech).
		SetMeaningMnemonic(sub.MeaningMnemonic).
		SetReadingMnemonic(sub.ReadingMnemonic).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("create subject: %w", err)
	}
	return int64(created.ID), nil
}

func (r *subjectRepo) Get(ctx context.Context, id int64) (*subject.Subject, error) {
	row, err := r.client.Subject.Get(ctx, int(id))
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subject: %w", err)
	}
	return rowToSubject(row), nil
}

func (r *subjectRepo) Find(ctx context.Context, kind subject.Kind, characters string) (*subject.Subject, error) {
	row, err := r.client.Subject.Query().
		Where(
			entsubject.Kind(string(kind)),
			entsubject.Characters(characters),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find subject: %w", err)
	}
	return rowToSubject(row), nil
}

func (r *subjectRepo) ByLevel(ctx context.Context, level int) ([]*subject.Subject, error) {
	rows, err := r.client.Subject.Query().
		Where(entsubject.Level(level)).
		Order(ent.Asc(entsubject.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query level %d: %w", level, err)
	}
	return rowsToSubjects(rows), nil
}

func (r *subjectRepo) Sample(ctx context.Context, limit int) ([]*subject.Subject, error) {
	rows, err := r.client.Subject.Query().
		Order(func(s *entsql.Selector) {
			s.OrderExpr(entsql.Expr("RANDOM()"))
		}).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("sample subjects: %w", err)
	}
	return rowsToSubjects(rows), nil
}

func (r *subjectRepo) SetMnemonics(ctx context.Context, id int64, meaning, reading string) error {
	builder := r.client.Subject.UpdateOneID(int(id))
	if meaning != "" {
		builder = builder.SetMeaningMnemonic(meaning)
	}
	if reading != "" {
		builder = builder.SetReadingMnemonic(reading)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("set mnemonics: %w", err)
	}
	return nil
}

func (r *subjectRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Subject.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count subjects: %w", err)
	}
	return n, nil
}

func meaningsToSchema(in []subject.Meaning) []entschema.SubjectMeaning {
	out := make([]entschema.SubjectMeaning, 0, len(in))
	for _, m := range in {
		out = append(out, entschema.SubjectMeaning{
			Text:     m.Text,
			Primary:  m.Primary,
			Accepted: m.Accepted,
		})
	}
	return out
}

func readingsToSchema(in []subject.Reading) []entschema.SubjectReading {
	out := make([]entschema.SubjectReading, 0, len(in))
	for _, r := range in {
		out = append(out, entschema.SubjectReading{
			Text:     r.Text,
			Kind:     string(r.Kind),
			Primary:  r.Primary,
			Accepted: r.Accepted,
		})
	}
	return out
}

func rowToSubject(row *ent.Subject) *subject.Subject {
	sub := &subject.Subject{
		ID:              int64(row.ID),
		Kind:            subject.Kind(row.Kind),
		Characters:      row.Characters,
		Level:           row.Level,
		PartsOfSpeech:   row.PartsOfSpeech,
		MeaningMnemonic: row.MeaningMnemonic,
		ReadingMnemonic: row.ReadingMnemonic,
	}
	for _, m := range row.Meanings {
		sub.Meanings = append(sub.Meanings, subject.Meaning{
			Text:     m.Text,
			Primary:  m.Primary,
			Accepted: m.Accepted,
		})
	}
	for _, r := range row.Readings {
		sub.Readings = append(sub.Readings, subject.Reading{
			Text:     r.Text,
			Kind:     subject.ReadingKind(r.Kind),
			Primary:  r.Primary,
			Accepted: r.Accepted,
		})
	}
	return sub
}

func rowsToSubjects(rows []*ent.Subject) []*subject.Subject {
	out := make([]*subject.Subject, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToSubject(row))
	}
	return out
}
