package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mizutani/kotoba/internal/srs"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()

		subjects, err := st.Subjects().Count(ctx)
		if err != nil {
			return err
		}
		due, err := st.Assignments().CountDue(ctx, time.Now())
		if err != nil {
			return err
		}
		lessons, err := st.Assignments().Lessons(ctx, 0)
		if err != nil {
			return err
		}
		counts, err := st.Assignments().StageCounts(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Subjects:     %d\n", subjects)
		fmt.Printf("Reviews due:  %d\n", due)
		fmt.Printf("Lessons:      %d\n", len(lessons))
		fmt.Println()

		fmt.Println("Stage breakdown")
		fmt.Println(strings.Repeat("─", 32))
		for stage := srs.StageApprentice1; stage <= srs.StageBurned; stage++ {
			if counts[stage] == 0 {
				continue
			}
			fmt.Printf("%-16s  %6d\n", stage, counts[stage])
		}

		return nil
	},
}
