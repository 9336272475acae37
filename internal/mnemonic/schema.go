package mnemonic

import "github.com/mizutani/kotoba/internal/llm"

// MnemonicSchema defines the JSON schema for mnemonic generation.
var MnemonicSchema = &llm.Schema{
	Name:        "mnemonic",
	Description: "Memory aids for a Japanese study item",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"meaning_mnemonic": map[string]any{
				"type":        "string",
				"description": "A vivid 2-4 sentence story linking the written form to its meaning",
			},
			"reading_mnemonic": map[string]any{
				"type":        "string",
				"description": "A 2-4 sentence story linking the written form to its reading, using English words that sound like the kana. Empty string when the item has no reading",
			},
		},
		"required":             []any{"meaning_mnemonic", "reading_mnemonic"},
		"additionalProperties": false,
	},
}
