package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizplayer/internal/ui/theme"
)

// ProgressBar shows a tutorial score as a bar followed by "correct/total",
// or a "Completed" badge once every answer is right.
type ProgressBar struct {
	Correct   int
	Total     int
	Completed bool
	Width     int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(correct, total int, completed bool, width int) ProgressBar {
	return ProgressBar{
		Correct:   correct,
		Total:     total,
		Completed: completed,
		Width:     width,
	}
}

// Percent returns the filled fraction in [0, 1].
func (p ProgressBar) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Correct) / float64(p.Total)
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	if p.Completed {
		return lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render("✓ Completed")
	}

	count := fmt.Sprintf("  %d/%d", p.Correct, p.Total)
	barWidth := p.Width - len(count)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent())
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	return filledStr + emptyStr + lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)
}
