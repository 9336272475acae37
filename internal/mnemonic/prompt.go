package mnemonic

import (
	"fmt"
	"strings"

	"github.com/mizutani/kotoba/internal/subject"
)

const systemPrompt = `You are a Japanese teacher who writes short, vivid mnemonics that help learners remember kanji and vocabulary. Your stories are concrete, a little absurd, and easy to picture.`

func buildUserMessage(sub *subject.Subject) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Item type: %s\n", sub.Kind))
	b.WriteString(fmt.Sprintf("Written form: %s\n", sub.Characters))
	b.WriteString(fmt.Sprintf("Meaning: %s\n", sub.MeaningDisplay()))

	if sub.HasReadings() {
		var readings []string
		for _, r := range sub.AcceptedReadings("") {
			readings = append(readings, fmt.Sprintf("%s (%s)", r.Text, r.Kind))
		}
		b.WriteString(fmt.Sprintf("Readings: %s\n", strings.Join(readings, ", ")))
	} else {
		b.WriteString("Readings: none\n")
	}

	if len(sub.PartsOfSpeech) > 0 {
		b.WriteString(fmt.Sprintf("Part of speech: %s\n", strings.Join(sub.PartsOfSpeech, ", ")))
	}

	b.WriteString(`
Instructions:
Write a meaning mnemonic (2-4 sentences) that links the written form to the meaning.
If the item has readings, write a reading mnemonic (2-4 sentences) that links the written form to the primary reading, using English words whose sounds resemble the kana. If the item has no reading, return an empty string for the reading mnemonic.
Do not use romaji in the meaning mnemonic. Keep both stories self-contained.`)

	return b.String()
}
