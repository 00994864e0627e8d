package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizplayer/internal/router"
	"github.com/abhisek/quizplayer/internal/screen"
	"github.com/abhisek/quizplayer/internal/screens/home"
	"github.com/abhisek/quizplayer/internal/screens/quiz"
	"github.com/abhisek/quizplayer/internal/session"
	"github.com/abhisek/quizplayer/internal/ui/layout"
	"github.com/abhisek/quizplayer/internal/ui/theme"
)

// Options configures the TUI.
type Options struct {
	Session *session.Session

	// StartTutorial, when set, opens that tutorial's quiz on launch.
	StartTutorial string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	sess   *session.Session
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(sess *session.Session) AppModel {
	return AppModel{
		sess:   sess,
		router: router.New(home.New(sess)),
	}
}

// startQuiz opens tutorialID above the home screen.
func (m AppModel) startQuiz(ctx context.Context, tutorialID string) error {
	if _, err := m.sess.Open(ctx, tutorialID); err != nil {
		return err
	}
	tut, err := m.sess.Bank().Lookup(tutorialID)
	if err != nil {
		return err
	}
	m.router.Push(quiz.New(m.sess, tut))
	return nil
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the whole frame, or nothing before the first resize.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	header := layout.RenderHeader(m.sess.Bank().CourseTitle(), m.router.Trail(), m.status(active), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "esc", Description: "Back"},
			{Key: "ctrl+c", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// status is the right-hand header text: the active screen's own status,
// or how many tutorials are completed.
func (m AppModel) status(active screen.Screen) string {
	if sp, ok := active.(screen.StatusProvider); ok {
		return sp.Status()
	}
	done := 0
	rows := m.sess.Overview()
	for _, row := range rows {
		if row.Progress.Completed {
			done++
		}
	}
	return fmt.Sprintf("✓ %d/%d", done, len(rows))
}

// Run starts the Bubble Tea program.
func Run(ctx context.Context, opts Options) error {
	theme.Use(opts.Session.DarkMode())
	m := newAppModel(opts.Session)
	if opts.StartTutorial != "" {
		if err := m.startQuiz(ctx, opts.StartTutorial); err != nil {
			return err
		}
	}

	p := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
