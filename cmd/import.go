package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mizutani/kotoba/internal/ingest"
	"github.com/mizutani/kotoba/internal/logger"
)

var importCmd = &cobra.Command{
	Use:   "import <url>",
	Short: "Import vocabulary from a Japanese article",
	Long: `Import fetches a web page, extracts its readable Japanese text,
tokenizes it, and adds the dictionary forms as new vocabulary subjects.
Imported subjects start without meanings; fill those in by hand or with
'kotoba mnemonic'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetInt("level")
		debug, _ := cmd.Flags().GetBool("debug")

		st, _, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		log, err := logger.New(debug)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		fmt.Printf("Fetching %s ...\n", args[0])
		article, err := ingest.Fetch(ctx, args[0])
		if err != nil {
			return err
		}

		analyzer, err := ingest.NewAnalyzer()
		if err != nil {
			return fmt.Errorf("init analyzer: %w", err)
		}
		candidates := analyzer.ExtractCandidates(article.Text, level)
		if len(candidates) == 0 {
			fmt.Println("No vocabulary candidates found in the article.")
			return nil
		}

		importer := ingest.NewImporter(st.Subjects(), log)
		added, err := importer.Import(ctx, candidates)
		if err != nil {
			return err
		}

		fmt.Printf("%q: %d candidates, %d new subjects added at level %d.\n",
			article.Title, len(candidates), added, level)
		return nil
	},
}

func init() {
	importCmd.Flags().Int("level", 1, "level assigned to imported subjects")
}
