package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizplayer/internal/review"
	"github.com/abhisek/quizplayer/internal/session"
)

var reviewCmd = &cobra.Command{
	Use:   "review <tutorial>",
	Short: "List the questions you currently have wrong",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(sess *session.Session) error {
			rv, err := sess.Review(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Review: %s\n\n", rv.Title)
			if rv.Empty() {
				fmt.Fprintln(out, review.EmptyMessage)
				return nil
			}

			for _, item := range rv.Items {
				q := item.Question
				fmt.Fprintf(out, "── Question %d ──\n", item.QuestionIndex+1)
				fmt.Fprintln(out, q.Text)
				for j, opt := range q.Options {
					mark := " "
					switch {
					case j == q.Correct:
						mark = "✓"
					case item.Answered() && j == int(item.PriorAnswer):
						mark = "✗"
					}
					fmt.Fprintf(out, "  %s %d) %s\n", mark, j+1, opt)
				}
				if !item.Answered() {
					fmt.Fprintln(out, "  (not answered)")
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%d to review\n", rv.Len())
			return nil
		})
	},
}
