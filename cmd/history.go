package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizplayer/internal/session"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent grading attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		tutorial, _ := cmd.Flags().GetString("tutorial")
		limit, _ := cmd.Flags().GetInt("limit")

		return withSession(cmd, func(sess *session.Session) error {
			if tutorial != "" {
				if _, err := sess.Bank().Lookup(tutorial); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			attempts := sess.History(tutorial, limit)
			if len(attempts) == 0 {
				fmt.Fprintln(out, "No attempts yet.")
				return nil
			}

			fmt.Fprintf(out, "%-19s  %-20s  %7s  %9s  %8s  %s\n",
				"Time", "Tutorial", "Score", "Completed", "Mistakes", "ID")
			fmt.Fprintln(out, strings.Repeat("─", 86))

			for _, a := range attempts {
				completed := "no"
				if a.Completed {
					completed = "yes"
				}
				id := a.ID
				if len(id) > 8 {
					id = id[:8]
				}
				fmt.Fprintf(out, "%-19s  %-20s  %7s  %9s  %8d  %s\n",
					a.GradedAt.Local().Format("2006-01-02 15:04:05"),
					a.TutorialID,
					fmt.Sprintf("%d/%d", a.Score, a.Total),
					completed, a.MistakeCount, id)
			}

			fmt.Fprintf(out, "\n%d attempts\n", len(attempts))
			return nil
		})
	},
}

func init() {
	historyCmd.Flags().String("tutorial", "", "Only show attempts of this tutorial")
	historyCmd.Flags().Int("limit", 20, "Maximum number of attempts to show (0 for all)")
}
