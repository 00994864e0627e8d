// Package review builds the read-only view of a tutorial's current
// mistakes.
package review

import (
	"github.com/abhisek/quizplayer/internal/bank"
	"github.com/abhisek/quizplayer/internal/ledger"
)

// EmptyMessage is shown instead of a review when a tutorial has no mistakes.
const EmptyMessage = "No incorrect answers to review. Great work!"

// Item is one previously missed question.
type Item struct {
	QuestionIndex int
	Question      bank.Question
	PriorAnswer   bank.Selection
}

// Answered reports whether the learner picked anything last time.
func (i Item) Answered() bool { return i.PriorAnswer.IsSet() }

// Session is the review of one tutorial. Items are copies; changing them
// does not affect the ledger.
type Session struct {
	TutorialID string
	Title      string
	Items      []Item
}

// Empty reports whether there is nothing to review.
func (s Session) Empty() bool { return len(s.Items) == 0 }

// Len returns the number of items.
func (s Session) Len() int { return len(s.Items) }

// Build returns the mistakes of tutorialID in ascending question order.
// It does not modify the ledger.
func Build(b *bank.Bank, l *ledger.Ledger, tutorialID string) (Session, error) {
	tut, err := b.Lookup(tutorialID)
	if err != nil {
		return Session{}, err
	}

	records := l.ListForTutorial(tutorialID)
	s := Session{
		TutorialID: tut.ID,
		Title:      tut.Title,
		Items:      make([]Item, 0, len(records)),
	}
	for _, r := range records {
		s.Items = append(s.Items, Item{
			QuestionIndex: r.QuestionIndex,
			Question:      r.Question.Clone(),
			PriorAnswer:   r.UserAnswer,
		})
	}
	return s, nil
}
