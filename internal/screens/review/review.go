// Package review is the read-only screen listing a tutorial's missed
// questions with the correct answers shown.
package review

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	rev "github.com/abhisek/quizplayer/internal/review"
	"github.com/abhisek/quizplayer/internal/router"
	"github.com/abhisek/quizplayer/internal/screen"
	"github.com/abhisek/quizplayer/internal/session"
	"github.com/abhisek/quizplayer/internal/ui/components"
	"github.com/abhisek/quizplayer/internal/ui/keys"
	"github.com/abhisek/quizplayer/internal/ui/layout"
	"github.com/abhisek/quizplayer/internal/ui/theme"
)

// retakenMsg reports that the tutorial's mistakes were cleared.
type retakenMsg struct{ err error }

// ReviewScreen lists the current mistakes of one tutorial.
type ReviewScreen struct {
	sess       *session.Session
	tutorialID string
	review     rev.Session
	freshQuiz  func() screen.Screen
	viewport   viewport.Model
	errMsg     string
}

var _ screen.Screen = (*ReviewScreen)(nil)

// New creates a review screen. freshQuiz builds the quiz screen shown after
// a retake.
func New(sess *session.Session, tutorialID string, freshQuiz func() screen.Screen) *ReviewScreen {
	s := &ReviewScreen{
		sess:       sess,
		tutorialID: tutorialID,
		freshQuiz:  freshQuiz,
		viewport:   viewport.New(),
	}
	s.load()
	return s
}

func (s *ReviewScreen) load() {
	rv, err := s.sess.Review(s.tutorialID)
	if err != nil {
		s.errMsg = err.Error()
		return
	}
	s.review = rv
}

// Session returns the review being shown.
func (s *ReviewScreen) Session() rev.Session { return s.review }

func (s *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (s *ReviewScreen) Title() string {
	if s.review.Title != "" {
		return "Review: " + s.review.Title
	}
	return "Review"
}

func (s *ReviewScreen) Status() string {
	return fmt.Sprintf("%d to review", s.review.Len())
}

func (s *ReviewScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Up, keys.Retake, keys.Back)
}

func (s *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case retakenMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		// Drop this screen and swap the quiz below it for a fresh one.
		fresh := s.freshQuiz()
		return s, tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return router.ReplaceScreenMsg{Screen: fresh} },
		)

	case tea.KeyPressMsg:
		if key.Matches(msg, keys.Retake) {
			id := s.tutorialID
			return s, func() tea.Msg {
				_, err := s.sess.Retake(context.Background(), id)
			return retakenMsg{err: err}
			}
		}
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

func (s *ReviewScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n" + s.errMsg)
	}
	if s.review.Empty() {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("\n\n" + rev.EmptyMessage)
	}

	s.viewport.SetWidth(width)
	s.viewport.SetHeight(height)
	s.viewport.SetContent(s.renderItems(width))
	return s.viewport.View()
}

func (s *ReviewScreen) renderItems(width int) string {
	var b strings.Builder
	for _, item := range s.review.Items {
		q := item.Question
		mc := components.NewRevealed(
			fmt.Sprintf("Question %d. %s", item.QuestionIndex+1, q.Text),
			q.Options, q.Correct, int(item.PriorAnswer),
		)

		answer := "Not answered"
		if item.Answered() && int(item.PriorAnswer) < len(q.Options) {
			answer = q.Options[item.PriorAnswer]
		}

		card := mc.View() + "\n" +
			theme.Incorrect.Render("Your answer: "+answer) + "\n" +
			theme.Correct.Render("Correct answer: "+q.CorrectOption())

		b.WriteString(theme.Card.Width(width - 2).Render(card))
		b.WriteString("\n")
	}
	return b.String()
}
