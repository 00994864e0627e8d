package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizplayer/internal/session"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved progress, mistakes and history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("reset deletes all saved state; pass --yes to confirm")
		}
		return withSession(cmd, func(sess *session.Session) error {
			if err := sess.Reset(cmd.Context()); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All saved quiz state deleted.")
			return nil
		})
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deleting all saved state")
}
