// Package session owns the quiz state for one run of the program and
// exposes every operation the UI and CLI drive.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/abhisek/quizplayer/internal/bank"
	"github.com/abhisek/quizplayer/internal/grading"
	"github.com/abhisek/quizplayer/internal/history"
	"github.com/abhisek/quizplayer/internal/ledger"
	"github.com/abhisek/quizplayer/internal/persist"
	"github.com/abhisek/quizplayer/internal/progress"
	"github.com/abhisek/quizplayer/internal/review"
	"github.com/abhisek/quizplayer/internal/store"
)

// Options configure a Session.
type Options struct {
	Bank *bank.Bank
	KV   store.KV

	// Warnings receives non-fatal problems: discarded saved slots and
	// failed saves. Nil discards them.
	Warnings io.Writer

	// HistoryLimit caps the attempt log. Zero means history.DefaultLimit.
	HistoryLimit int

	// Now and NewID override the clock and attempt ID source in tests.
	Now   func() time.Time
	NewID func() string
}

// Session is the single owner of the ledger, progress store, attempt
// history and saved-state gateway.
type Session struct {
	bank     *bank.Bank
	ledger   *ledger.Ledger
	progress *progress.Store
	history  *history.Log
	cursor   *persist.Cursor
	prefs    *persist.Preferences
	gateway  *persist.Gateway
	engine   *grading.Engine
	warn     io.Writer
	report   persist.RestoreReport
}

// TutorialSummary is one row of the course overview.
type TutorialSummary struct {
	Tutorial bank.Tutorial
	Progress progress.Record
	Mistakes int
}

// New creates a session and restores saved state from opts.KV.
func New(ctx context.Context, opts Options) (*Session, error) {
	if opts.Bank == nil {
		return nil, errors.New("session: question bank is required")
	}
	if opts.KV == nil {
		return nil, errors.New("session: store is required")
	}
	first, ok := opts.Bank.First()
	if !ok {
		return nil, errors.New("session: question bank has no tutorials")
	}

	warn := opts.Warnings
	if warn == nil {
		warn = io.Discard
	}

	s := &Session{
		bank:     opts.Bank,
		ledger:   ledger.New(),
		progress: progress.NewStore(),
		history:  history.NewLog(opts.HistoryLimit),
		cursor:   persist.NewCursor(first.ID),
		prefs:    &persist.Preferences{},
		warn:     warn,
	}
	s.gateway = persist.New(opts.KV, persist.State{
		Ledger:      s.ledger,
		Progress:    s.progress,
		History:     s.history,
		Cursor:      s.cursor,
		Preferences: s.prefs,
	})
	s.engine = grading.New(grading.Deps{
		Bank:        s.bank,
		Ledger:      s.ledger,
		Progress:    s.progress,
		History:     s.history,
		Cursor:      s.cursor,
		Snapshotter: s.gateway,
		Warnings:    warn,
		Now:         opts.Now,
		NewID:       opts.NewID,
	})

	s.report = s.gateway.Restore(ctx)
	for _, m := range s.report.Malformed {
		fmt.Fprintf(warn, "warning: discarded saved state: %v\n", m)
	}
	if _, ok := s.bank.Tutorial(s.cursor.Tutorial()); !ok {
		s.cursor.Reset()
	}
	return s, nil
}

// RestoreReport returns what happened when saved state was loaded.
func (s *Session) RestoreReport() persist.RestoreReport { return s.report }

// Bank returns the question bank.
func (s *Session) Bank() *bank.Bank { return s.bank }

// Current returns the tutorial that was open last.
func (s *Session) Current() bank.Tutorial {
	if t, ok := s.bank.Tutorial(s.cursor.Tutorial()); ok {
		return t
	}
	t, _ := s.bank.First()
	return t
}

// Open makes tutorialID current and returns its progress.
func (s *Session) Open(ctx context.Context, tutorialID string) (progress.Record, error) {
	return s.engine.Open(ctx, tutorialID)
}

// Grade grades a full submission of tutorialID.
func (s *Session) Grade(ctx context.Context, tutorialID string, answers grading.Answers) (grading.Result, error) {
	return s.engine.Grade(ctx, tutorialID, answers)
}

// Retake clears the mistakes of tutorialID and returns how many there were.
func (s *Session) Retake(ctx context.Context, tutorialID string) (int, error) {
	return s.engine.Retake(ctx, tutorialID)
}

// Review returns the current mistakes of tutorialID.
func (s *Session) Review(tutorialID string) (review.Session, error) {
	return review.Build(s.bank, s.ledger, tutorialID)
}

// Progress returns the progress of tutorialID. A tutorial that was never
// opened reports zero out of its question count.
func (s *Session) Progress(tutorialID string) (progress.Record, error) {
	tut, err := s.bank.Lookup(tutorialID)
	if err != nil {
		return progress.Record{}, err
	}
	if r, ok := s.progress.Get(tutorialID); ok {
		return r, nil
	}
	return progress.Record{TutorialID: tut.ID, Total: tut.Len()}, nil
}

// Mistakes returns the ledger entries of tutorialID in question order.
func (s *Session) Mistakes(tutorialID string) []ledger.MistakeRecord {
	return s.ledger.ListForTutorial(tutorialID)
}

// History returns up to limit recent attempts, newest first. An empty
// tutorialID matches every tutorial.
func (s *Session) History(tutorialID string, limit int) []history.Attempt {
	return s.history.Recent(tutorialID, limit)
}

// Overview returns one summary per tutorial in bank order.
func (s *Session) Overview() []TutorialSummary {
	tuts := s.bank.Tutorials()
	out := make([]TutorialSummary, 0, len(tuts))
	for _, t := range tuts {
		rec, ok := s.progress.Get(t.ID)
		if !ok {
			rec = progress.Record{TutorialID: t.ID, Total: t.Len()}
		}
		out = append(out, TutorialSummary{
			Tutorial: t,
			Progress: rec,
			Mistakes: len(s.ledger.ListForTutorial(t.ID)),
		})
	}
	return out
}

// DarkMode reports the saved palette preference.
func (s *Session) DarkMode() bool { return s.prefs.DarkMode() }

// SetDarkMode changes and saves the palette preference.
func (s *Session) SetDarkMode(ctx context.Context, on bool) {
	s.engine.Do(ctx, func() { s.prefs.SetDarkMode(on) })
}

// Reset deletes all saved state and empties the session.
func (s *Session) Reset(ctx context.Context) error {
	return s.engine.Exclusive(func() error {
		return s.gateway.Clear(ctx)
	})
}
