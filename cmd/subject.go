package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mizutani/kotoba/internal/subject"
)

var subjectCmd = &cobra.Command{
	Use:   "subject",
	Short: "Inspect subjects in the catalog",
}

var subjectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subjects at a level, or a random sample",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetInt("level")
		limit, _ := cmd.Flags().GetInt("limit")

		st, _, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		var subjects []*subject.Subject
		if level > 0 {
			subjects, err = st.Subjects().ByLevel(ctx, level)
		} else {
			subjects, err = st.Subjects().Sample(ctx, limit)
		}
		if err != nil {
			return err
		}
		if len(subjects) == 0 {
			fmt.Println("No subjects found.")
			return nil
		}

		for _, sub := range subjects {
			fmt.Println(subjectLine(sub))
		}
		return nil
	},
}

var subjectShowCmd = &cobra.Command{
	Use:   "show <characters>",
	Short: "Show one subject in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		var sub *subject.Subject
		for _, kind := range []subject.Kind{subject.KindVocabulary, subject.KindKanji, subject.KindRadical} {
			sub, err = st.Subjects().Find(ctx, kind, args[0])
			if err != nil {
				return err
			}
			if sub != nil {
				break
			}
		}
		if sub == nil {
			return fmt.Errorf("no subject with characters %q", args[0])
		}

		fmt.Printf("%s  (%s, level %d)\n", sub.Characters, sub.Kind, sub.Level)
		if m := sub.MeaningDisplay(); m != "" {
			fmt.Printf("Meaning:  %s\n", m)
		}
		for _, r := range sub.Readings {
			marker := " "
			if r.Primary {
				marker = "*"
			}
			fmt.Printf("Reading:  %s %s (%s)\n", marker, r.Text, r.Kind)
		}
		if len(sub.PartsOfSpeech) > 0 {
			fmt.Printf("POS:      %s\n", strings.Join(sub.PartsOfSpeech, ", "))
		}
		if sub.MeaningMnemonic != "" {
			fmt.Printf("\nMeaning mnemonic:\n%s\n", sub.MeaningMnemonic)
		}
		if sub.ReadingMnemonic != "" {
			fmt.Printf("\nReading mnemonic:\n%s\n", sub.ReadingMnemonic)
		}
		return nil
	},
}

func subjectLine(sub *subject.Subject) string {
	parts := []string{fmt.Sprintf("L%02d", sub.Level), string(sub.Kind), sub.Characters}
	if m := sub.PrimaryMeaning(); m != "" {
		parts = append(parts, m)
	}
	if r := sub.PrimaryReading(); r != "" {
		parts = append(parts, r)
	}
	return strings.Join(parts, "  ")
}

func init() {
	subjectListCmd.Flags().Int("level", 0, "list subjects at this level")
	subjectListCmd.Flags().Int("limit", 20, "sample size when no level is given")
	subjectCmd.AddCommand(subjectListCmd, subjectShowCmd)
}
