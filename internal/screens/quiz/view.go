package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizplayer/internal/ui/theme"
)

// Messages shown after grading.
const (
	AllCorrectMessage = "Excellent work! All answers are correct!"
	CompletedBanner   = "Congratulations, you completed this tutorial!"
)

func (s *QuizScreen) View(width, height int) string {
	if len(s.choices) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nThis tutorial has no questions.")
	}

	var b strings.Builder

	b.WriteString(s.renderProgressLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	mc := s.choices[s.current]
	b.WriteString(theme.Card.Width(max(width-4, 20)).Render(mc.View() + s.renderFeedback()))
	b.WriteString("\n\n")

	if s.grading {
		b.WriteString(theme.Hint.Render("  Grading..."))
		b.WriteString("\n")
	}
	if s.result != nil {
		b.WriteString(s.renderResult(width))
	}
	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + s.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

// renderProgressLine shows the question position and one dot per question:
// filled when answered, colored once revealed.
func (s *QuizScreen) renderProgressLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", s.current+1, len(s.choices)))

	dots := make([]string, len(s.choices))
	for i, c := range s.choices {
		dot := "○"
		if c.Answered() {
			dot = "●"
		}
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		switch {
		case c.Revealed && c.IsCorrect():
			style = lipgloss.NewStyle().Foreground(theme.Success)
		case c.Revealed:
			style = lipgloss.NewStyle().Foreground(theme.Error)
		case i == s.current:
			style = lipgloss.NewStyle().Foreground(theme.Primary)
		}
		dots[i] = style.Render(dot)
	}
	right := strings.Join(dots, " ")

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		return left + "\n  " + right
	}
	return left + strings.Repeat(" ", pad) + right
}

func (s *QuizScreen) renderFeedback() string {
	mc := s.choices[s.current]
	if !mc.Revealed {
		return ""
	}
	if mc.IsCorrect() {
		return "\n" + theme.Correct.Render("✓ Correct")
	}
	correct := ""
	if mc.CorrectIndex >= 0 && mc.CorrectIndex < len(mc.Options) {
		correct = mc.Options[mc.CorrectIndex]
	}
	return "\n" + theme.Incorrect.Render("✗ The correct answer is: "+correct)
}

func (s *QuizScreen) renderResult(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	res := s.result

	var b strings.Builder
	b.WriteString(center.Inherit(theme.Body).Bold(true).
		Render(fmt.Sprintf("You scored %d out of %d.", res.Score, res.Total)))
	b.WriteString("\n")

	if res.Completed {
		b.WriteString(center.Inherit(theme.Correct).Render(AllCorrectMessage))
		b.WriteString("\n\n")
		b.WriteString(center.Render(lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(theme.Success).
			Foreground(theme.Success).
			Bold(true).
			Padding(0, 2).
			Render("★ " + CompletedBanner + " ★")))
		b.WriteString("\n")
		return b.String()
	}

	wrong := fmt.Sprintf("You have %d wrong answers.", res.MistakeCount)
	if res.MistakeCount == 1 {
		wrong = "You have 1 wrong answer."
	}
	b.WriteString(center.Inherit(theme.Incorrect).Render(wrong))
	b.WriteString("\n")
	b.WriteString(center.Inherit(theme.Hint).Render("Press r to review your mistakes or t to retake."))
	b.WriteString("\n")
	return b.String()
}
