// Package config loads kotoba's configuration from an optional YAML file
// under the XDG config directory, overridden by KOTOBA_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mizutani/kotoba/internal/grader"
	"github.com/mizutani/kotoba/internal/session"
)

// Config holds the application configuration.
type Config struct {
	// DatabaseURL is either a file path (SQLite) or a postgres:// DSN.
	// Empty means the default SQLite file under the XDG data directory.
	DatabaseURL string `mapstructure:"-"`

	Quiz Quiz `mapstructure:"quiz"`
	LLM  LLM  `mapstructure:"llm"`
}

// Quiz groups the settings that shape question behavior.
type Quiz struct {
	// Lenience names the near-miss policy for meaning answers: "accept",
	// "notice", "retry" or "reject".
	Lenience string `mapstructure:"lenience"`
	// DelayedReport holds finished review results until the session ends,
	// keeping undo available for the whole session.
	DelayedReport bool `mapstructure:"delayed_report"`
	// SeparateKanjiReadings asks on'yomi and kun'yomi as distinct questions.
	SeparateKanjiReadings bool `mapstructure:"separate_kanji_readings"`
	// IndicateKanjiReadingType names the expected reading kind in titles.
	IndicateKanjiReadingType bool `mapstructure:"indicate_kanji_reading_type"`
	// RandomizeInflections enables inflected vocabulary prompts per
	// session type.
	RandomizeInflections InflectionToggles `mapstructure:"randomize_inflections"`
	// BatchSize caps how many items one session pulls.
	BatchSize int `mapstructure:"batch_size"`
}

// InflectionToggles switches inflected prompts per session type.
type InflectionToggles struct {
	Lessons   bool `mapstructure:"lessons"`
	Reviews   bool `mapstructure:"reviews"`
	SelfStudy bool `mapstructure:"self_study"`
}

// LLM selects the mnemonic generation backend.
type LLM struct {
	Provider string `mapstructure:"provider"`
	Model    string `mapstructure:"model"`
}

// Load reads the config file if present and applies environment overrides.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "kotoba"))
	}
	v.AddConfigPath(".")

	v.SetDefault("quiz.lenience", "notice")
	v.SetDefault("quiz.delayed_report", false)
	v.SetDefault("quiz.separate_kanji_readings", false)
	v.SetDefault("quiz.indicate_kanji_reading_type", true)
	v.SetDefault("quiz.randomize_inflections.lessons", false)
	v.SetDefault("quiz.randomize_inflections.reviews", false)
	v.SetDefault("quiz.randomize_inflections.self_study", true)
	v.SetDefault("quiz.batch_size", 10)
	v.SetDefault("llm.provider", "mock")
	v.SetDefault("llm.model", "")

	v.SetEnvPrefix("KOTOBA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("database_url", "KOTOBA_DB")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.DatabaseURL = v.GetString("database_url")

	if _, err := cfg.Lenience(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Lenience resolves the configured lenience name.
func (c *Config) Lenience() (grader.Lenience, error) {
	switch c.Quiz.Lenience {
	case "accept":
		return grader.LenienceAccept, nil
	case "notice", "":
		return grader.LenienceAcceptNotice, nil
	case "retry":
		return grader.LenienceRetry, nil
	case "reject":
		return grader.LenienceReject, nil
	}
	return 0, fmt.Errorf("unknown lenience %q", c.Quiz.Lenience)
}

// RandomizeInflections reports whether the given session type shows
// inflected vocabulary prompts.
func (c *Config) RandomizeInflections(t session.Type) bool {
	switch t {
	case session.TypeLesson:
		return c.Quiz.RandomizeInflections.Lessons
	case session.TypeReview:
		return c.Quiz.RandomizeInflections.Reviews
	case session.TypeSelfStudy:
		return c.Quiz.RandomizeInflections.SelfStudy
	}
	return false
}

// IndicateKanjiReadingType reports whether kanji reading titles name the
// expected reading kind.
func (c *Config) IndicateKanjiReadingType() bool {
	return c.Quiz.IndicateKanjiReadingType
}
