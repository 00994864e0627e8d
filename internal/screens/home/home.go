// Package home is the start screen: one entry per tutorial with its
// progress.
package home

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizplayer/internal/bank"
	"github.com/abhisek/quizplayer/internal/router"
	"github.com/abhisek/quizplayer/internal/screen"
	"github.com/abhisek/quizplayer/internal/screens/quiz"
	"github.com/abhisek/quizplayer/internal/session"
	"github.com/abhisek/quizplayer/internal/ui/components"
	"github.com/abhisek/quizplayer/internal/ui/keys"
	"github.com/abhisek/quizplayer/internal/ui/layout"
	"github.com/abhisek/quizplayer/internal/ui/theme"
)

// openFailedMsg reports a tutorial that could not be opened.
type openFailedMsg struct{ err error }

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	sess   *session.Session
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen with the cursor on the tutorial opened last.
func New(sess *session.Session) *HomeScreen {
	tuts := sess.Bank().Tutorials()
	items := make([]components.MenuItem, len(tuts))
	for i, t := range tuts {
		t := t
		items[i] = components.MenuItem{
			Label:  t.Title,
			Action: func() tea.Cmd { return openTutorial(sess, t) },
		}
	}

	menu := components.NewMenu(items)
	current := sess.Current().ID
	for i, t := range tuts {
		if t.ID == current {
			menu.Selected = i
		}
	}

	return &HomeScreen{sess: sess, menu: menu}
}

func openTutorial(sess *session.Session, t bank.Tutorial) tea.Cmd {
	return func() tea.Msg {
		if _, err := sess.Open(context.Background(), t.ID); err != nil {
			return openFailedMsg{err: err}
		}
		return router.PushScreenMsg{Screen: quiz.New(sess, t)}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Tutorials"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Up, keys.Open, keys.Theme, keys.Quit)
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case openFailedMsg:
		h.errMsg = msg.err.Error()
		return h, nil
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return h, tea.Quit
		case key.Matches(msg, keys.Theme):
			dark := !h.sess.DarkMode()
			h.sess.SetDarkMode(context.Background(), dark)
			theme.Use(dark)
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(h.sess.Bank().CourseTitle()))
	b.WriteString("\n")

	overview := h.sess.Overview()
	done := 0
	for _, row := range overview {
		if row.Progress.Completed {
			done++
		}
	}
	b.WriteString(theme.Subtitle.Width(width).
		Render(fmt.Sprintf("%d of %d tutorials completed", done, len(overview))))
	b.WriteString("\n\n")

	barWidth := min(40, max(width-12, 10))
	for i := range h.menu.Items {
		row := overview[i]
		bar := components.NewProgressBar(row.Progress.Correct, row.Progress.Total, row.Progress.Completed, barWidth)
		detail := bar.View()
		if row.Mistakes > 0 {
			detail += lipgloss.NewStyle().Foreground(theme.Error).
				Render(fmt.Sprintf("  %d to review", row.Mistakes))
		}
		h.menu.Items[i].Detail = detail
	}
	b.WriteString(h.menu.View())

	if h.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + h.errMsg))
	}

	return b.String()
}
