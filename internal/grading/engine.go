// Package grading grades tutorial submissions and owns every mutation of
// the mistake ledger and progress store.
package grading

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizplayer/internal/bank"
	"github.com/abhisek/quizplayer/internal/history"
	"github.com/abhisek/quizplayer/internal/ledger"
	"github.com/abhisek/quizplayer/internal/persist"
	"github.com/abhisek/quizplayer/internal/progress"
)

// ErrGradingInProgress is returned when a tutorial is submitted while an
// earlier submission of the same tutorial is still being graded.
var ErrGradingInProgress = errors.New("grading already in progress for this tutorial")

// Answers maps question index to the picked option. A missing index means
// the question was left unanswered.
type Answers map[int]bank.Selection

// Result summarises one grading pass.
type Result struct {
	TutorialID   string
	AttemptID    string
	Score        int
	Total        int
	Completed    bool
	MistakeCount int
}

// Snapshotter persists the current state after a mutation.
type Snapshotter interface {
	Snapshot(ctx context.Context) error
}

// Deps are the objects an Engine operates on.
type Deps struct {
	Bank        *bank.Bank
	Ledger      *ledger.Ledger
	Progress    *progress.Store
	History     *history.Log
	Cursor      *persist.Cursor
	Snapshotter Snapshotter

	// Warnings receives non-fatal failures such as a failed save.
	// Nil discards them.
	Warnings io.Writer
	// Now defaults to time.Now.
	Now func() time.Time
	// NewID defaults to uuid.NewString.
	NewID func() string
}

// Engine applies grading, retake and open operations. Each operation and
// the snapshot that follows it run under one lock, so saved state always
// reflects a finished operation.
type Engine struct {
	bank     *bank.Bank
	ledger   *ledger.Ledger
	progress *progress.Store
	history  *history.Log
	cursor   *persist.Cursor
	snap     Snapshotter
	warn     io.Writer
	now      func() time.Time
	newID    func() string

	mu sync.Mutex

	busyMu sync.Mutex
	busy   map[string]bool
}

// New creates an engine over d.
func New(d Deps) *Engine {
	e := &Engine{
		bank:     d.Bank,
		ledger:   d.Ledger,
		progress: d.Progress,
		history:  d.History,
		cursor:   d.Cursor,
		snap:     d.Snapshotter,
		warn:     d.Warnings,
		now:      d.Now,
		newID:    d.NewID,
		busy:     make(map[string]bool),
	}
	if e.warn == nil {
		e.warn = io.Discard
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.newID == nil {
		e.newID = uuid.NewString
	}
	return e
}

// Grade evaluates answers against every question of tutorialID in order.
// The tutorial's mistakes are replaced by the ones found in this pass and
// its progress record is overwritten with the new score.
func (e *Engine) Grade(ctx context.Context, tutorialID string, answers Answers) (Result, error) {
	tut, err := e.bank.Lookup(tutorialID)
	if err != nil {
		return Result{}, err
	}

	if !e.claim(tutorialID) {
		return Result{}, ErrGradingInProgress
	}
	defer e.release(tutorialID)

	e.mu.Lock()
	defer e.mu.Unlock()

	score := 0
	var staged []ledger.MistakeRecord
	for i, q := range tut.Questions {
		sel, ok := answers[i]
		if !ok {
			sel = bank.NoSelection
		}
		if q.IsCorrect(sel) {
			score++
			continue
		}
		staged = append(staged, ledger.MistakeRecord{
			TutorialID:    tutorialID,
			QuestionIndex: i,
			Question:      q,
			UserAnswer:    sel,
		})
	}

	e.ledger.UpsertMany(tutorialID, staged)
	rec := progress.NewRecord(tutorialID, score, tut.Len())
	e.progress.Set(tutorialID, rec)

	res := Result{
		TutorialID:   tutorialID,
		AttemptID:    e.newID(),
		Score:        score,
		Total:        rec.Total,
		Completed:    rec.Completed,
		MistakeCount: len(staged),
	}
	e.history.Append(history.Attempt{
		ID:           res.AttemptID,
		TutorialID:   tutorialID,
		Score:        res.Score,
		Total:        res.Total,
		Completed:    res.Completed,
		MistakeCount: res.MistakeCount,
		GradedAt:     e.now().UTC(),
	})

	e.snapshot(ctx)
	return res, nil
}

// Retake clears every recorded mistake of tutorialID and returns how many
// were cleared. Progress is kept until the next grading pass.
func (e *Engine) Retake(ctx context.Context, tutorialID string) (int, error) {
	if _, err := e.bank.Lookup(tutorialID); err != nil {
		return 0, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	n := e.ledger.RemoveAllForTutorial(tutorialID)
	e.snapshot(ctx)
	return n, nil
}

// Open makes tutorialID the current tutorial and creates its progress
// record on first use.
func (e *Engine) Open(ctx context.Context, tutorialID string) (progress.Record, error) {
	tut, err := e.bank.Lookup(tutorialID)
	if err != nil {
		return progress.Record{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.cursor.SetTutorial(tutorialID)
	rec := e.progress.Ensure(tutorialID, tut.Len())
	e.snapshot(ctx)
	return rec, nil
}

// Do runs fn under the engine lock and saves afterwards. It is for
// mutations outside grading, such as preference changes.
func (e *Engine) Do(ctx context.Context, fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn()
	e.snapshot(ctx)
}

// Exclusive runs fn under the engine lock without saving afterwards.
func (e *Engine) Exclusive(fn func() error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn()
}

// snapshot saves state. A failure leaves memory authoritative and is
// reported as a warning.
func (e *Engine) snapshot(ctx context.Context) {
	if e.snap == nil {
		return
	}
	if err := e.snap.Snapshot(ctx); err != nil {
		fmt.Fprintf(e.warn, "warning: save quiz state: %v\n", err)
	}
}

func (e *Engine) claim(tutorialID string) bool {
	e.busyMu.Lock()
	defer e.busyMu.Unlock()
	if e.busy[tutorialID] {
		return false
	}
	e.busy[tutorialID] = true
	return true
}

func (e *Engine) release(tutorialID string) {
	e.busyMu.Lock()
	defer e.busyMu.Unlock()
	delete(e.busy, tutorialID)
}
