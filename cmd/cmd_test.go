package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizplayer/internal/bank"
)

// resetFlags restores every flag of the command tree to its default so
// runs don't leak into each other.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, db, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Setenv("QUIZPLAYER_BANK", "")
	t.Setenv("QUIZPLAYER_HISTORY_LIMIT", "")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--db", db}, args...))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestQuizReviewRetakeFlow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "state.db")

	// Last answer picks option 3; the correct one is 4.
	out, err := run(t, db, "1\n2\n3\n3\n", "quiz", "tutorial-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Result: 3/4 correct")
	assert.Contains(t, out, "You have 1 wrong answer.")

	out, err = run(t, db, "", "review", "tutorial-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Question 4")
	assert.Contains(t, out, "✗ 3) complex64")
	assert.Contains(t, out, "✓ 4) float64")
	assert.Contains(t, out, "1 to review")

	out, err = run(t, db, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "3/4")
	assert.Contains(t, out, "0 of 4 tutorials completed")

	out, err = run(t, db, "", "history", "--tutorial", "tutorial-1")
	require.NoError(t, err)
	assert.Contains(t, out, "1 attempts")

	out, err = run(t, db, "", "retake", "tutorial-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared 1 mistakes")

	out, err = run(t, db, "", "review", "tutorial-1")
	require.NoError(t, err)
	assert.Contains(t, out, "No incorrect answers to review. Great work!")
}

func TestQuizRepromptsAndSkips(t *testing.T) {
	db := filepath.Join(t.TempDir(), "state.db")

	out, err := run(t, db, "9\nx\n1\n\n3\n4\n", "quiz", "tutorial-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter a number from 1 to 4.")
	assert.Contains(t, out, "(skipped)")
	assert.Contains(t, out, "Result: 3/4 correct")
}

func TestQuizCompleted(t *testing.T) {
	db := filepath.Join(t.TempDir(), "state.db")

	out, err := run(t, db, "1\n2\n3\n4\n", "quiz", "tutorial-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Congratulations, you completed this tutorial!")

	out, err = run(t, db, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "1 of 4 tutorials completed")
}

func TestQuizNotGradedWhenInputCloses(t *testing.T) {
	db := filepath.Join(t.TempDir(), "state.db")

	_, err := run(t, db, "1\n2\n3\n4\n", "quiz", "tutorial-1")
	require.NoError(t, err)

	for _, stdin := range []string{"", "1\n2\n"} {
		out, err := run(t, db, stdin, "quiz", "tutorial-1")
		require.NoError(t, err)
		assert.Contains(t, out, "(input closed, not graded)")
		assert.NotContains(t, out, "Result:")
	}

	out, err := run(t, db, "", "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "4/4")
	assert.Contains(t, out, "1 of 4 tutorials completed")

	out, err = run(t, db, "", "history", "--tutorial", "tutorial-1")
	require.NoError(t, err)
	assert.Contains(t, out, "1 attempts")
}

func TestRetakeReportsClearedCount(t *testing.T) {
	db := filepath.Join(t.TempDir(), "state.db")

	_, err := run(t, db, "2\n1\n3\n4\n", "quiz", "tutorial-1")
	require.NoError(t, err)

	out, err := run(t, db, "", "retake", "tutorial-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared 2 mistakes")

	out, err = run(t, db, "", "retake", "tutorial-1")
	require.NoError(t, err)
	assert.Contains(t, out, "Cleared 0 mistakes")
}

func TestUnknownTutorial(t *testing.T) {
	db := filepath.Join(t.TempDir(), "state.db")

	for _, args := range [][]string{
		{"quiz", "nope"},
		{"review", "nope"},
		{"retake", "nope"},
		{"bank", "show", "nope"},
	} {
		_, err := run(t, db, "", args...)
		var unknown *bank.UnknownTutorialError
		assert.ErrorAs(t, err, &unknown, "args %v", args)
	}
}

func TestResetRequiresConfirmation(t *testing.T) {
	db := filepath.Join(t.TempDir(), "state.db")

	_, err := run(t, db, "1\n1\n1\n1\n", "quiz", "tutorial-1")
	require.NoError(t, err)

	_, err = run(t, db, "", "reset")
	assert.ErrorContains(t, err, "--yes")

	out, err := run(t, db, "", "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted")

	out, err = run(t, db, "", "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No attempts yet.")
}

func TestBankCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "state.db")

	out, err := run(t, db, "", "bank", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Go Fundamentals")
	assert.Contains(t, out, "tutorial-1")
	assert.Contains(t, out, "4 tutorials")

	out, err = run(t, db, "", "bank", "show", "tutorial-1")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ 1) var")

	good := filepath.Join(t.TempDir(), "good.json")
	require.NoError(t, os.WriteFile(good, []byte(`{
		"only": {"title": "Only", "data": [
			{"q": "Pick A", "type": "mcq", "options": ["A", "B"], "correct": 0}
		]}
	}`), 0o644))
	out, err = run(t, db, "", "bank", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "OK (1 tutorials, 1 questions)")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{
		"only": {"title": "Only", "data": [
			{"q": "Pick A", "type": "mcq", "options": ["A", "B"], "correct": 5}
		]}
	}`), 0o644))
	_, err = run(t, db, "", "bank", "validate", bad)
	assert.Error(t, err)

	out, err = run(t, db, "", "--bank", good, "bank", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "only")
	assert.NotContains(t, out, "tutorial-1")
}

func TestVersion(t *testing.T) {
	out, err := run(t, filepath.Join(t.TempDir(), "state.db"), "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "quizplayer "))
}
