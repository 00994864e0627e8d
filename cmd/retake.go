package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizplayer/internal/session"
)

var retakeCmd = &cobra.Command{
	Use:   "retake <tutorial>",
	Short: "Clear a tutorial's mistakes so it can be taken again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(sess *session.Session) error {
			tut, err := sess.Bank().Lookup(args[0])
			if err != nil {
				return err
			}
			cleared, err := sess.Retake(cmd.Context(), tut.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d mistakes from %s.\n", cleared, tut.Title)
			return nil
		})
	},
}
