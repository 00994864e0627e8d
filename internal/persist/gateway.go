// Package persist saves and restores quiz state to named slots of a byte
// store. Nothing else reads or writes the store.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/abhisek/quizplayer/internal/bank"
	"github.com/abhisek/quizplayer/internal/history"
	"github.com/abhisek/quizplayer/internal/ledger"
	"github.com/abhisek/quizplayer/internal/progress"
	"github.com/abhisek/quizplayer/internal/store"
	"github.com/abhisek/quizplayer/internal/validate"
)

// Slot names. The first three match the layout older saves used.
const (
	SlotIncorrectAnswers = "incorrectAnswers"
	SlotCurrentQuiz      = "currentQuiz"
	SlotUserProgress     = "userProgress"
	SlotAttemptHistory   = "attemptHistory"
	SlotDarkMode         = "darkMode"
)

// Slots lists every slot in the order they are written and read.
var Slots = []string{
	SlotIncorrectAnswers,
	SlotCurrentQuiz,
	SlotUserProgress,
	SlotAttemptHistory,
	SlotDarkMode,
}

// State is the set of objects the gateway saves and restores.
type State struct {
	Ledger      *ledger.Ledger
	Progress    *progress.Store
	History     *history.Log
	Cursor      *Cursor
	Preferences *Preferences
}

// RestoreReport describes the outcome of a Restore.
type RestoreReport struct {
	// Loaded lists the slots that were present and valid.
	Loaded []string
	// Malformed holds one error per slot that fell back to its default.
	Malformed []*MalformedSlotError
}

// OK reports whether no slot was malformed.
func (r RestoreReport) OK() bool { return len(r.Malformed) == 0 }

// Err joins the malformed slot errors, or returns nil.
func (r RestoreReport) Err() error {
	errs := make([]error, len(r.Malformed))
	for i, e := range r.Malformed {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Gateway maps State onto store slots. Snapshot, Restore and Clear never
// overlap.
type Gateway struct {
	mu    sync.Mutex
	kv    store.KV
	state State
}

// New creates a gateway over kv. Every field of state must be non-nil.
func New(kv store.KV, state State) *Gateway {
	return &Gateway{kv: kv, state: state}
}

// Snapshot writes every slot. It keeps going after a failed write and
// returns all failures joined.
func (g *Gateway) Snapshot(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	var errs []error
	for _, slot := range Slots {
		data, err := g.encode(slot)
		if err != nil {
			errs = append(errs, fmt.Errorf("encode %s: %w", slot, err))
			continue
		}
		if err := g.kv.Set(ctx, slot, data); err != nil {
			errs = append(errs, fmt.Errorf("write %s: %w", slot, err))
		}
	}
	return errors.Join(errs...)
}

// Restore loads every slot into State. An absent slot resets its state to
// the default. A malformed slot does the same and is listed in the report;
// it never affects the other slots.
func (g *Gateway) Restore(ctx context.Context) RestoreReport {
	g.mu.Lock()
	defer g.mu.Unlock()

	var report RestoreReport
	for _, slot := range Slots {
		data, ok, err := g.kv.Get(ctx, slot)
		if err == nil && ok {
			err = g.decode(slot, data)
			if err == nil {
				report.Loaded = append(report.Loaded, slot)
				continue
			}
		}
		g.resetSlot(slot)
		if err != nil {
			report.Malformed = append(report.Malformed, &MalformedSlotError{Slot: slot, Err: err})
		}
	}
	return report
}

// Clear removes every slot from the store and resets State.
func (g *Gateway) Clear(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	var errs []error
	for _, slot := range Slots {
		g.resetSlot(slot)
		if err := g.kv.Remove(ctx, slot); err != nil {
			errs = append(errs, fmt.Errorf("remove %s: %w", slot, err))
		}
	}
	return errors.Join(errs...)
}

func (g *Gateway) resetSlot(slot string) {
	switch slot {
	case SlotIncorrectAnswers:
		g.state.Ledger.Load(nil)
	case SlotCurrentQuiz:
		g.state.Cursor.Reset()
	case SlotUserProgress:
		g.state.Progress.Load(nil)
	case SlotAttemptHistory:
		g.state.History.Load(nil)
	case SlotDarkMode:
		g.state.Preferences.SetDarkMode(false)
	}
}

func (g *Gateway) encode(slot string) ([]byte, error) {
	switch slot {
	case SlotIncorrectAnswers:
		records := g.state.Ledger.All()
		pairs := make([][2]any, len(records))
		for i, r := range records {
			pairs[i] = [2]any{r.Key().String(), r}
		}
		return json.Marshal(pairs)
	case SlotCurrentQuiz:
		return json.Marshal(g.state.Cursor.Quiz())
	case SlotUserProgress:
		records := g.state.Progress.All()
		pairs := make([][2]any, len(records))
		for i, r := range records {
			pairs[i] = [2]any{r.TutorialID, r}
		}
		return json.Marshal(pairs)
	case SlotAttemptHistory:
		attempts := g.state.History.All()
		if attempts == nil {
			attempts = []history.Attempt{}
		}
		return json.Marshal(attempts)
	case SlotDarkMode:
		return json.Marshal(g.state.Preferences.DarkMode())
	}
	return nil, fmt.Errorf("unknown slot %q", slot)
}

func (g *Gateway) decode(slot string, data []byte) error {
	switch slot {
	case SlotIncorrectAnswers:
		records, err := decodeMistakes(data)
		if err != nil {
			return err
		}
		g.state.Ledger.Load(records)
	case SlotCurrentQuiz:
		if _, err := validate.Document(currentQuizSchema, data); err != nil {
			return err
		}
		var q CurrentQuiz
		if err := json.Unmarshal(data, &q); err != nil {
			return err
		}
		g.state.Cursor.Load(q)
	case SlotUserProgress:
		records, err := decodeProgress(data)
		if err != nil {
			return err
		}
		g.state.Progress.Load(records)
	case SlotAttemptHistory:
		if _, err := validate.Document(historySchema, data); err != nil {
			return err
		}
		var attempts []history.Attempt
		if err := json.Unmarshal(data, &attempts); err != nil {
			return err
		}
		g.state.History.Load(attempts)
	case SlotDarkMode:
		if _, err := validate.Document(darkModeSchema, data); err != nil {
			return err
		}
		var on bool
		if err := json.Unmarshal(data, &on); err != nil {
			return err
		}
		g.state.Preferences.SetDarkMode(on)
	default:
		return fmt.Errorf("unknown slot %q", slot)
	}
	return nil
}

// decodeMistakes reads [key, record] pairs. The key is only a label; the
// record's own tutorial and index fields are what the ledger is keyed on.
func decodeMistakes(data []byte) ([]ledger.MistakeRecord, error) {
	if _, err := validate.Document(mistakesSchema, data); err != nil {
		return nil, err
	}
	var pairs [][2]json.RawMessage
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, err
	}

	records := make([]ledger.MistakeRecord, 0, len(pairs))
	for i, p := range pairs {
		var r ledger.MistakeRecord
		// Absent userAnswer means nothing was picked.
		r.UserAnswer = bank.NoSelection
		if err := json.Unmarshal(p[1], &r); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if r.Question.Correct >= len(r.Question.Options) {
			return nil, fmt.Errorf("entry %d: correct index %d out of range for %d options",
				i, r.Question.Correct, len(r.Question.Options))
		}
		records = append(records, r)
	}
	return records, nil
}

func decodeProgress(data []byte) ([]progress.Record, error) {
	if _, err := validate.Document(progressSchema, data); err != nil {
		return nil, err
	}
	var pairs [][2]json.RawMessage
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, err
	}

	records := make([]progress.Record, 0, len(pairs))
	for i, p := range pairs {
		var id string
		if err := json.Unmarshal(p[0], &id); err != nil {
			return nil, fmt.Errorf("entry %d key: %w", i, err)
		}
		var r progress.Record
		if err := json.Unmarshal(p[1], &r); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if r.Correct > r.Total {
			return nil, fmt.Errorf("entry %d: %d correct out of %d", i, r.Correct, r.Total)
		}
		records = append(records, progress.NewRecord(id, r.Correct, r.Total))
	}
	return records, nil
}
