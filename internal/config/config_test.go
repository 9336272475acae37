package config

import (
	"testing"

	"github.com/mizutani/kotoba/internal/grader"
	"github.com/mizutani/kotoba/internal/session"
)

func TestLenienceNames(t *testing.T) {
	tests := []struct {
		name    string
		want    grader.Lenience
		wantErr bool
	}{
		{"accept", grader.LenienceAccept, false},
		{"notice", grader.LenienceAcceptNotice, false},
		{"", grader.LenienceAcceptNotice, false},
		{"retry", grader.LenienceRetry, false},
		{"reject", grader.LenienceReject, false},
		{"strictest", 0, true},
	}
	for _, tt := range tests {
		cfg := &Config{Quiz: Quiz{Lenience: tt.name}}
		got, err := cfg.Lenience()
		if tt.wantErr {
			if err == nil {
				t.Errorf("Lenience(%q): want error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("Lenience(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Lenience(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRandomizeInflectionsPerSessionType(t *testing.T) {
	cfg := &Config{Quiz: Quiz{
		RandomizeInflections: InflectionToggles{SelfStudy: true},
	}}

	if cfg.RandomizeInflections(session.TypeLesson) {
		t.Error("lessons should not randomize by default")
	}
	if cfg.RandomizeInflections(session.TypeReview) {
		t.Error("reviews should not randomize by default")
	}
	if !cfg.RandomizeInflections(session.TypeSelfStudy) {
		t.Error("self-study should randomize when toggled on")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Quiz.BatchSize != 10 {
		t.Errorf("BatchSize = %d, want 10", cfg.Quiz.BatchSize)
	}
	if !cfg.Quiz.IndicateKanjiReadingType {
		t.Error("IndicateKanjiReadingType should default on")
	}
	if lenience, _ := cfg.Lenience(); lenience != grader.LenienceAcceptNotice {
		t.Errorf("default lenience = %v, want notice", lenience)
	}
}
