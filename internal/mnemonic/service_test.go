package mnemonic

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mizutani/kotoba/internal/llm"
	"github.com/mizutani/kotoba/internal/subject"
)

func testKanji() *subject.Subject {
	return &subject.Subject{
		ID:         1,
		Kind:       subject.KindKanji,
		Characters: "山",
		Meanings: []subject.Meaning{
			{Text: "mountain", Primary: true, Accepted: true},
		},
		Readings: []subject.Reading{
			{Text: "さん", Kind: subject.ReadingOn, Primary: true, Accepted: true},
			{Text: "やま", Kind: subject.ReadingKun, Accepted: true},
		},
	}
}

func TestGenerateParsesResponse(t *testing.T) {
	canned, _ := json.Marshal(map[string]string{
		"meaning_mnemonic": "A wide base with a peak in the middle.",
		"reading_mnemonic": "You climb it while eating a sandwich, SAN-dwich.",
	})
	provider := llm.NewMockProvider(llm.MockResponse{Content: canned})
	svc := NewService(provider, DefaultConfig())

	got, err := svc.Generate(context.Background(), testKanji())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(got.Meaning, "peak") {
		t.Errorf("Meaning = %q, want canned meaning mnemonic", got.Meaning)
	}
	if !strings.Contains(got.Reading, "SAN") {
		t.Errorf("Reading = %q, want canned reading mnemonic", got.Reading)
	}

	if provider.CallCount() != 1 {
		t.Fatalf("got %d provider calls, want 1", provider.CallCount())
	}
	req := provider.Calls[0]
	if req.Schema != MnemonicSchema {
		t.Error("request missing the mnemonic schema")
	}
	if !strings.Contains(req.Messages[0].Content, "山") {
		t.Error("prompt does not include the written form")
	}
	if !strings.Contains(req.Messages[0].Content, "さん (onyomi)") {
		t.Error("prompt does not list readings with kinds")
	}
}

func TestGenerateRadicalDropsReadingMnemonic(t *testing.T) {
	radical := &subject.Subject{
		ID:         2,
		Kind:       subject.KindRadical,
		Characters: "一",
		Meanings: []subject.Meaning{
			{Text: "ground", Primary: true, Accepted: true},
		},
	}

	canned, _ := json.Marshal(map[string]string{
		"meaning_mnemonic": "A flat line is the ground.",
		"reading_mnemonic": "should be discarded",
	})
	provider := llm.NewMockProvider(llm.MockResponse{Content: canned})
	svc := NewService(provider, DefaultConfig())

	got, err := svc.Generate(context.Background(), radical)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got.Reading != "" {
		t.Errorf("Reading = %q, want empty for a radical", got.Reading)
	}
}

func TestGenerateProviderError(t *testing.T) {
	provider := llm.NewMockProvider() // empty queue -> unavailable
	svc := NewService(provider, DefaultConfig())

	if _, err := svc.Generate(context.Background(), testKanji()); err == nil {
		t.Fatal("Generate should surface provider errors")
	}
}
