// Package mnemonic generates memory aids for study items through the LLM
// provider layer.
package mnemonic

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mizutani/kotoba/internal/llm"
	"github.com/mizutani/kotoba/internal/subject"
)

// Config tunes mnemonic generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the default generation parameters.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.9,
	}
}

// Mnemonics is one generated pair of memory aids.
type Mnemonics struct {
	Meaning string
	Reading string
}

// Service generates mnemonics for subjects.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a mnemonic generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type mnemonicOutput struct {
	MeaningMnemonic string `json:"meaning_mnemonic"`
	ReadingMnemonic string `json:"reading_mnemonic"`
}

// Generate produces mnemonics for the subject.
func (s *Service) Generate(ctx context.Context, sub *subject.Subject) (*Mnemonics, error) {
	ctx = llm.WithPurpose(ctx, "mnemonic")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(sub)},
		},
		Schema:      MnemonicSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("mnemonic generation: %w", err)
	}

	var out mnemonicOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse mnemonic response: %w", err)
	}

	if !sub.HasReadings() {
		out.ReadingMnemonic = ""
	}
	return &Mnemonics{
		Meaning: out.MeaningMnemonic,
		Reading: out.ReadingMnemonic,
	}, nil
}
