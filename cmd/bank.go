package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizplayer/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect question banks",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tutorials of the active question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		b, err := loadBank(cfg)
		if err != nil {
			return err
		}
		printBank(cmd, b)
		return nil
	},
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a question bank file for problems",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bank.LoadFile(args[0])
		if err != nil {
			return err
		}
		questions := 0
		for _, t := range b.Tutorials() {
			questions += t.Len()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%d tutorials, %d questions)\n",
			args[0], b.Len(), questions)
		return nil
	},
}

var bankShowCmd = &cobra.Command{
	Use:   "show <tutorial>",
	Short: "Print every question of a tutorial with its answer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		b, err := loadBank(cfg)
		if err != nil {
			return err
		}
		tut, err := b.Lookup(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n\n", tut.Title, tut.ID)
		for i, q := range tut.Questions {
			fmt.Fprintf(out, "%d. %s\n", i+1, q.Text)
			for j, opt := range q.Options {
				mark := " "
				if j == q.Correct {
					mark = "✓"
				}
				fmt.Fprintf(out, "  %s %d) %s\n", mark, j+1, opt)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func printBank(cmd *cobra.Command, b *bank.Bank) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n\n", b.CourseTitle())
	fmt.Fprintf(out, "%-20s  %-40s  %9s\n", "ID", "Title", "Questions")
	fmt.Fprintln(out, strings.Repeat("─", 73))
	for _, t := range b.Tutorials() {
		title := t.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Fprintf(out, "%-20s  %-40s  %9d\n", t.ID, title, t.Len())
	}
	fmt.Fprintf(out, "\n%d tutorials\n", b.Len())
}

func init() {
	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankValidateCmd)
	bankCmd.AddCommand(bankShowCmd)
}
