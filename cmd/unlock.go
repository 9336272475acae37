package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var unlockCmd = &cobra.Command{
	Use:   "unlock <level>",
	Short: "Unlock a level's subjects as lessons",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := strconv.Atoi(args[0])
		if err != nil || level < 1 {
			return fmt.Errorf("level must be a positive number, got %q", args[0])
		}

		st, _, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		unlocked, err := st.UnlockLevel(context.Background(), level)
		if err != nil {
			return err
		}
		if unlocked == 0 {
			fmt.Printf("Level %d has no locked subjects.\n", level)
			return nil
		}
		fmt.Printf("Unlocked %d subjects at level %d. They are waiting in your lessons.\n", unlocked, level)
		return nil
	},
}
