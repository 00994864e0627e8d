// Package history keeps a bounded log of grading passes.
package history

import (
	"sync"
	"time"
)

// DefaultLimit is the number of attempts kept when no limit is configured.
const DefaultLimit = 50

// Attempt is one grading pass of one tutorial.
type Attempt struct {
	ID           string    `json:"id"`
	TutorialID   string    `json:"tutorial"`
	Score        int       `json:"score"`
	Total        int       `json:"total"`
	Completed    bool      `json:"completed"`
	MistakeCount int       `json:"mistakes"`
	GradedAt     time.Time `json:"gradedAt"`
}

// Log holds the newest attempts, oldest first. It is safe for concurrent use.
type Log struct {
	mu       sync.RWMutex
	limit    int
	attempts []Attempt
}

// NewLog creates a log keeping at most limit attempts.
// A non-positive limit means DefaultLimit.
func NewLog(limit int) *Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Log{limit: limit}
}

// Append records an attempt, dropping the oldest ones past the limit.
func (l *Log) Append(a Attempt) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.attempts = append(l.attempts, a)
	l.pruneLocked()
}

func (l *Log) pruneLocked() {
	if over := len(l.attempts) - l.limit; over > 0 {
		l.attempts = append([]Attempt(nil), l.attempts[over:]...)
	}
}

// All returns every attempt, oldest first.
func (l *Log) All() []Attempt {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Attempt(nil), l.attempts...)
}

// Recent returns up to limit attempts, newest first, optionally filtered
// by tutorial. An empty tutorialID matches all; limit <= 0 means no limit.
func (l *Log) Recent(tutorialID string, limit int) []Attempt {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []Attempt
	for i := len(l.attempts) - 1; i >= 0; i-- {
		a := l.attempts[i]
		if tutorialID != "" && a.TutorialID != tutorialID {
			continue
		}
		out = append(out, a)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// Len returns the number of attempts kept.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.attempts)
}

// Load replaces the log with attempts (oldest first), applying the limit.
func (l *Log) Load(attempts []Attempt) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.attempts = append([]Attempt(nil), attempts...)
	l.pruneLocked()
}
