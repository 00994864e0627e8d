// Package quiz is the screen where a tutorial's questions are answered
// and graded.
package quiz

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizplayer/internal/bank"
	"github.com/abhisek/quizplayer/internal/grading"
	"github.com/abhisek/quizplayer/internal/router"
	"github.com/abhisek/quizplayer/internal/screen"
	"github.com/abhisek/quizplayer/internal/screens/review"
	"github.com/abhisek/quizplayer/internal/session"
	"github.com/abhisek/quizplayer/internal/ui/components"
	"github.com/abhisek/quizplayer/internal/ui/keys"
	"github.com/abhisek/quizplayer/internal/ui/layout"
)

// gradedMsg carries the outcome of a grading pass.
type gradedMsg struct {
	result grading.Result
	err    error
}

// retakenMsg reports that the tutorial's mistakes were cleared.
type retakenMsg struct{ err error }

// QuizScreen shows one tutorial, one question at a time.
type QuizScreen struct {
	sess     *session.Session
	tutorial bank.Tutorial
	choices  []components.MultiChoice
	current  int
	grading  bool
	result   *grading.Result
	errMsg   string
}

var _ screen.Screen = (*QuizScreen)(nil)

// New creates a quiz screen with every question unanswered.
func New(sess *session.Session, tutorial bank.Tutorial) *QuizScreen {
	choices := make([]components.MultiChoice, tutorial.Len())
	for i, q := range tutorial.Questions {
		choices[i] = components.NewMultiChoice(q.Text, q.Options, q.Correct)
	}
	return &QuizScreen{
		sess:     sess,
		tutorial: tutorial,
		choices:  choices,
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return s.tutorial.Title
}

func (s *QuizScreen) Status() string {
	if s.result != nil {
		return fmt.Sprintf("Score %d/%d", s.result.Score, s.result.Total)
	}
	return fmt.Sprintf("%d/%d answered", s.answeredCount(), len(s.choices))
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.result != nil {
		reviewKey := keys.Review
		reviewKey.SetEnabled(s.result.MistakeCount > 0)
		return keys.Hints(keys.Prev, reviewKey, keys.Retake, keys.Back)
	}
	return keys.Hints(keys.Prev, keys.Up, keys.Choose, keys.Check, keys.Grade, keys.Back)
}

// Answers returns the current picks keyed by question index.
func (s *QuizScreen) Answers() grading.Answers {
	answers := make(grading.Answers)
	for i, c := range s.choices {
		if c.Answered() {
			answers[i] = bank.Selection(c.ChosenIndex)
		}
	}
	return answers
}

// Result returns the last grading result, or nil before grading.
func (s *QuizScreen) Result() *grading.Result { return s.result }

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case gradedMsg:
		s.grading = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.result = &msg.result
		for i := range s.choices {
			s.choices[i].Revealed = true
		}
		return s, nil

	case retakenMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: New(s.sess, s.tutorial)}
		}

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Prev):
		if s.current > 0 {
			s.current--
		}
		return s, nil
	case key.Matches(msg, keys.Next):
		if s.current < len(s.choices)-1 {
			s.current++
		}
		return s, nil
	}

	if s.result != nil {
		return s.handleGradedKey(msg)
	}
	if len(s.choices) == 0 {
		return s, nil
	}

	switch {
	case key.Matches(msg, keys.Check):
		s.choices[s.current].Revealed = true
		return s, nil
	case key.Matches(msg, keys.Grade):
		if s.grading {
			return s, nil
		}
		s.grading = true
		answers := s.Answers()
		id := s.tutorial.ID
		return s, func() tea.Msg {
			res, err := s.sess.Grade(context.Background(), id, answers)
			return gradedMsg{result: res, err: err}
		}
	}

	var cmd tea.Cmd
	s.choices[s.current], cmd = s.choices[s.current].Update(msg)
	return s, cmd
}

func (s *QuizScreen) handleGradedKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Review):
		if s.result.MistakeCount == 0 {
			return s, nil
		}
		tut := s.tutorial
		sess := s.sess
		rv := review.New(sess, tut.ID, func() screen.Screen { return New(sess, tut) })
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: rv} }
	case key.Matches(msg, keys.Retake):
		id := s.tutorial.ID
		return s, func() tea.Msg {
			_, err := s.sess.Retake(context.Background(), id)
			return retakenMsg{err: err}
		}
	}
	return s, nil
}

func (s *QuizScreen) answeredCount() int {
	n := 0
	for _, c := range s.choices {
		if c.Answered() {
			n++
		}
	}
	return n
}
