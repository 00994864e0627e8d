package persist

import (
	"encoding/json"
	"sync"
)

// CurrentQuiz is the saved "which tutorial is open" record. IncorrectAnswers
// is a legacy field kept verbatim so older saves round-trip unchanged.
type CurrentQuiz struct {
	Tutorial         string            `json:"tutorial"`
	IncorrectAnswers []json.RawMessage `json:"incorrectAnswers"`
}

// Cursor holds the current tutorial pointer. It is safe for concurrent use.
type Cursor struct {
	mu       sync.RWMutex
	fallback string
	quiz     CurrentQuiz
}

// NewCursor creates a cursor pointing at fallback, which is also used when
// saved state has no tutorial.
func NewCursor(fallback string) *Cursor {
	c := &Cursor{fallback: fallback}
	c.quiz = c.defaultQuiz()
	return c
}

func (c *Cursor) defaultQuiz() CurrentQuiz {
	return CurrentQuiz{Tutorial: c.fallback, IncorrectAnswers: []json.RawMessage{}}
}

// Tutorial returns the ID of the open tutorial.
func (c *Cursor) Tutorial() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.quiz.Tutorial
}

// SetTutorial points the cursor at id.
func (c *Cursor) SetTutorial(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quiz.Tutorial = id
}

// Quiz returns a copy of the saved record.
func (c *Cursor) Quiz() CurrentQuiz {
	c.mu.RLock()
	defer c.mu.RUnlock()
	q := c.quiz
	q.IncorrectAnswers = append([]json.RawMessage{}, c.quiz.IncorrectAnswers...)
	return q
}

// Load replaces the record. An empty tutorial becomes the fallback.
func (c *Cursor) Load(q CurrentQuiz) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if q.Tutorial == "" {
		q.Tutorial = c.fallback
	}
	if q.IncorrectAnswers == nil {
		q.IncorrectAnswers = []json.RawMessage{}
	}
	c.quiz = q
}

// Reset points the cursor back at the fallback tutorial.
func (c *Cursor) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quiz = c.defaultQuiz()
}

// Preferences holds display settings that survive restarts.
type Preferences struct {
	mu   sync.RWMutex
	dark bool
}

// DarkMode reports whether the dark palette is selected.
func (p *Preferences) DarkMode() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.dark
}

// SetDarkMode selects the dark or light palette.
func (p *Preferences) SetDarkMode(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dark = on
}
