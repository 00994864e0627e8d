package cmd

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizplayer/internal/bank"
	"github.com/abhisek/quizplayer/internal/grading"
	"github.com/abhisek/quizplayer/internal/session"
)

var quizCmd = &cobra.Command{
	Use:   "quiz <tutorial>",
	Short: "Take a tutorial quiz in plain line mode",
	Long: "Prints each question and reads the option number from stdin. " +
		"An empty line leaves the question unanswered. The whole tutorial is graded at the end.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(sess *session.Session) error {
			return runLineQuiz(cmd, sess, args[0])
		})
	},
}

func runLineQuiz(cmd *cobra.Command, sess *session.Session, tutorialID string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	tut, err := sess.Bank().Lookup(tutorialID)
	if err != nil {
		return err
	}
	if _, err := sess.Open(ctx, tut.ID); err != nil {
		return err
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	answers := make(grading.Answers)

	fmt.Fprintf(out, "Tutorial: %s (%d questions)\n\n", tut.Title, tut.Len())

	for i, q := range tut.Questions {
		fmt.Fprintf(out, "── Question %d/%d ──\n", i+1, tut.Len())
		fmt.Fprintln(out, q.Text)
		for j, opt := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", j+1, opt)
		}

		sel, ok := readChoice(cmd, scanner, len(q.Options))
		if !ok {
			fmt.Fprintln(out, "\n(input closed, not graded)")
			return nil
		}
		if sel.IsSet() {
			answers[i] = sel
		}
		fmt.Fprintln(out)
	}

	res, err := sess.Grade(ctx, tut.ID, answers)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "── Result: %d/%d correct ──\n", res.Score, res.Total)
	if res.Completed {
		fmt.Fprintln(out, "Excellent work! All answers are correct!")
		fmt.Fprintln(out, "Congratulations, you completed this tutorial!")
	} else {
		wrong := fmt.Sprintf("You have %d wrong answers.", res.MistakeCount)
		if res.MistakeCount == 1 {
			wrong = "You have 1 wrong answer."
		}
		fmt.Fprintf(out, "%s Run `quizplayer review %s` to see them.\n", wrong, tut.ID)
	}
	return nil
}

// readChoice prompts until it gets a valid option number or an empty line.
// ok is false when input ends.
func readChoice(cmd *cobra.Command, scanner *bufio.Scanner, options int) (bank.Selection, bool) {
	out := cmd.OutOrStdout()
	for {
		fmt.Fprint(out, "\nYour answer: ")
		if !scanner.Scan() {
			return bank.NoSelection, false
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			fmt.Fprintln(out, "(skipped)")
			return bank.NoSelection, true
		}
		n, err := strconv.Atoi(text)
		if err != nil || n < 1 || n > options {
			fmt.Fprintf(out, "Enter a number from 1 to %d.\n", options)
			continue
		}
		return bank.Selection(n - 1), true
	}
}
