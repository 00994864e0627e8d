package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizplayer/internal/ui/keys"
	"github.com/abhisek/quizplayer/internal/ui/theme"
)

// NoChoice is the ChosenIndex of an unanswered MultiChoice.
const NoChoice = -1

// MultiChoice renders the options of one question. The learner moves a
// cursor over the options and picks one; once Revealed, the correct option
// and a wrong pick are highlighted and input is ignored.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Selected     int
	ChosenIndex  int
	Revealed     bool
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  NoChoice,
	}
}

// NewRevealed creates a read-only component showing chosen against the
// correct option.
func NewRevealed(question string, options []string, correctIndex, chosen int) MultiChoice {
	m := NewMultiChoice(question, options, correctIndex)
	m.ChosenIndex = chosen
	m.Revealed = true
	return m
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and picking.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, keys.Up):
		if m.Selected > 0 {
			m.Selected--
		}
	case key.Matches(kmsg, keys.Down):
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case key.Matches(kmsg, keys.Choose):
		m.ChosenIndex = m.Selected
	}

	return m, nil
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Revealed {
			prefix = "▸ "
		}
		mark := "( )"
		if i == m.ChosenIndex {
			mark = "(•)"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, optionLabel(i), opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.Revealed && i == m.CorrectIndex:
			style = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
		case m.Revealed && i == m.ChosenIndex:
			style = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
		case m.Revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

// Answered reports whether an option was picked.
func (m MultiChoice) Answered() bool {
	return m.ChosenIndex != NoChoice
}

// IsCorrect returns true if the picked option is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.ChosenIndex == m.CorrectIndex
}

// optionLabel returns A, B, ... Z, then AA, AB and so on.
func optionLabel(i int) string {
	label := ""
	for i >= 0 {
		label = string(rune('A'+i%26)) + label
		i = i/26 - 1
	}
	return label
}
