package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizplayer/internal/session"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress for every tutorial",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(sess *session.Session) error {
			out := cmd.OutOrStdout()
			rows := sess.Overview()

			fmt.Fprintf(out, "%s\n\n", sess.Bank().CourseTitle())
			fmt.Fprintf(out, "%-20s  %-30s  %7s  %9s  %8s\n",
				"ID", "Title", "Score", "Completed", "Mistakes")
			fmt.Fprintln(out, strings.Repeat("─", 82))

			done := 0
			for _, r := range rows {
				title := r.Tutorial.Title
				if len(title) > 30 {
					title = title[:27] + "..."
				}
				completed := "no"
				if r.Progress.Completed {
					completed = "yes"
					done++
				}
				fmt.Fprintf(out, "%-20s  %-30s  %7s  %9s  %8d\n",
					r.Tutorial.ID, title,
					fmt.Sprintf("%d/%d", r.Progress.Correct, r.Progress.Total),
					completed, r.Mistakes)
			}

			fmt.Fprintf(out, "\n%d of %d tutorials completed\n", done, len(rows))
			return nil
		})
	},
}
