// Package ledger tracks the answers that are currently incorrect, one
// record per (tutorial, question index).
package ledger

import (
	"fmt"
	"sort"
	"sync"

	"github.com/abhisek/quizplayer/internal/bank"
)

// Key identifies one question within one tutorial.
type Key struct {
	TutorialID    string
	QuestionIndex int
}

// String returns the "<tutorial>-<index>" form used in saved state.
func (k Key) String() string {
	return fmt.Sprintf("%s-%d", k.TutorialID, k.QuestionIndex)
}

// MistakeRecord is a wrong or missing answer. Question is a snapshot taken
// at grading time, so review shows exactly what was asked.
type MistakeRecord struct {
	TutorialID    string         `json:"tutorialKey"`
	QuestionIndex int            `json:"questionIndex"`
	Question      bank.Question  `json:"question"`
	UserAnswer    bank.Selection `json:"userAnswer"`
}

// Key returns the record's composite key.
func (r MistakeRecord) Key() Key {
	return Key{TutorialID: r.TutorialID, QuestionIndex: r.QuestionIndex}
}

// Ledger is the set of current mistakes across all tutorials.
// It is safe for concurrent use.
type Ledger struct {
	mu      sync.RWMutex
	records map[Key]MistakeRecord
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{records: make(map[Key]MistakeRecord)}
}

// UpsertMany replaces every record of tutorialID with records. Records are
// re-keyed to tutorialID; a later record for the same index wins.
func (l *Ledger) UpsertMany(tutorialID string, records []MistakeRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.removeLocked(tutorialID)
	for _, r := range records {
		r.TutorialID = tutorialID
		r.Question = r.Question.Clone()
		l.records[r.Key()] = r
	}
}

// RemoveAllForTutorial deletes every record of tutorialID and returns how
// many were removed.
func (l *Ledger) RemoveAllForTutorial(tutorialID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.removeLocked(tutorialID)
}

func (l *Ledger) removeLocked(tutorialID string) int {
	removed := 0
	for k := range l.records {
		if k.TutorialID == tutorialID {
			delete(l.records, k)
			removed++
		}
	}
	return removed
}

// ListForTutorial returns the records of tutorialID sorted by question index.
func (l *Ledger) ListForTutorial(tutorialID string) []MistakeRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []MistakeRecord
	for k, r := range l.records {
		if k.TutorialID == tutorialID {
			out = append(out, copyRecord(r))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].QuestionIndex < out[j].QuestionIndex
	})
	return out
}

// Find returns the record for one question, if any.
func (l *Ledger) Find(tutorialID string, questionIndex int) (MistakeRecord, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	r, ok := l.records[Key{TutorialID: tutorialID, QuestionIndex: questionIndex}]
	if !ok {
		return MistakeRecord{}, false
	}
	return copyRecord(r), true
}

// All returns every record ordered by tutorial ID, then question index.
func (l *Ledger) All() []MistakeRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]MistakeRecord, 0, len(l.records))
	for _, r := range l.records {
		out = append(out, copyRecord(r))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TutorialID != out[j].TutorialID {
			return out[i].TutorialID < out[j].TutorialID
		}
		return out[i].QuestionIndex < out[j].QuestionIndex
	})
	return out
}

// Len returns the total number of records.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}

// Load replaces the whole ledger with records, as read from saved state.
func (l *Ledger) Load(records []MistakeRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = make(map[Key]MistakeRecord, len(records))
	for _, r := range records {
		l.records[r.Key()] = copyRecord(r)
	}
}

func copyRecord(r MistakeRecord) MistakeRecord {
	r.Question = r.Question.Clone()
	return r
}
