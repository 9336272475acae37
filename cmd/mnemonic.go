package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mizutani/kotoba/internal/config"
	"github.com/mizutani/kotoba/internal/llm"
	"github.com/mizutani/kotoba/internal/mnemonic"
	"github.com/mizutani/kotoba/internal/subject"
)

var mnemonicCmd = &cobra.Command{
	Use:   "mnemonic <characters>",
	Short: "Generate mnemonics for a subject",
	Long: `Mnemonic asks the configured LLM provider for meaning and reading
memory aids and stores them on the subject. With --dry-run the result is
printed without saving.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		st, cfg, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

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

		llmCfg := resolveLLMConfig(cfg)
		if err := llmCfg.Validate(); err != nil {
			return err
		}
		provider, err := llm.NewProvider(ctx, llmCfg, st.Events())
		if err != nil {
			return fmt.Errorf("init llm provider: %w", err)
		}

		svc := mnemonic.NewService(provider, mnemonic.DefaultConfig())
		fmt.Printf("Generating mnemonics for %s via %s ...\n", sub.Characters, llmCfg.Provider)
		result, err := svc.Generate(ctx, sub)
		if err != nil {
			return err
		}

		fmt.Printf("\nMeaning mnemonic:\n%s\n", result.Meaning)
		if result.Reading != "" {
			fmt.Printf("\nReading mnemonic:\n%s\n", result.Reading)
		}

		if dryRun {
			return nil
		}
		if err := st.Subjects().SetMnemonics(ctx, sub.ID, result.Meaning, result.Reading); err != nil {
			return err
		}
		fmt.Println("\nSaved.")
		return nil
	},
}

// resolveLLMConfig layers the config file's provider and model choice over
// the environment-derived provider settings.
func resolveLLMConfig(cfg *config.Config) llm.Config {
	out := llm.ConfigFromEnv()
	if cfg.LLM.Provider != "" {
		out.Provider = cfg.LLM.Provider
	}
	if cfg.LLM.Model != "" {
		switch out.Provider {
		case "anthropic":
			out.Anthropic.Model = cfg.LLM.Model
		case "openai":
			out.OpenAI.Model = cfg.LLM.Model
		case "gemini":
			out.Gemini.Model = cfg.LLM.Model
		case "openrouter":
			out.OpenRouter.Model = cfg.LLM.Model
		}
	}
	return out
}

func init() {
	mnemonicCmd.Flags().Bool("dry-run", false, "print the mnemonics without saving")
}
