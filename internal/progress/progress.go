// Package progress stores the latest score and completion flag per tutorial.
package progress

import "sync"

// Record is the latest grading summary for one tutorial.
type Record struct {
	TutorialID string `json:"-"`
	Correct    int    `json:"correct"`
	Total      int    `json:"total"`
	Completed  bool   `json:"completed"`
}

// Percent returns Correct/Total in [0, 1]. An empty tutorial counts as 0.
func (r Record) Percent() float64 {
	if r.Total <= 0 {
		return 0
	}
	p := float64(r.Correct) / float64(r.Total)
	if p > 1 {
		return 1
	}
	return p
}

// NewRecord returns a record with completed derived from the score.
func NewRecord(tutorialID string, correct, total int) Record {
	return Record{
		TutorialID: tutorialID,
		Correct:    correct,
		Total:      total,
		Completed:  correct == total,
	}
}

// Store holds one Record per tutorial, remembering the order in which
// tutorials were first seen. It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	records map[string]Record
	order   []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{records: make(map[string]Record)}
}

// Get returns the record for tutorialID, if any.
func (s *Store) Get(tutorialID string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[tutorialID]
	return r, ok
}

// Ensure returns the existing record for tutorialID unchanged, or creates
// one with zero correct answers out of totalQuestions.
func (s *Store) Ensure(tutorialID string, totalQuestions int) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.records[tutorialID]; ok {
		return r
	}
	r := Record{TutorialID: tutorialID, Total: totalQuestions}
	s.setLocked(tutorialID, r)
	return r
}

// Set stores r as the record of tutorialID.
func (s *Store) Set(tutorialID string, r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setLocked(tutorialID, r)
}

func (s *Store) setLocked(tutorialID string, r Record) {
	r.TutorialID = tutorialID
	if _, ok := s.records[tutorialID]; !ok {
		s.order = append(s.order, tutorialID)
	}
	s.records[tutorialID] = r
}

// All returns every record in first-seen order.
func (s *Store) All() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out
}

// Len returns the number of tutorials with a record.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Load replaces the store contents with records, in order.
func (s *Store) Load(records []Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make(map[string]Record, len(records))
	s.order = nil
	for _, r := range records {
		s.setLocked(r.TutorialID, r)
	}
}
