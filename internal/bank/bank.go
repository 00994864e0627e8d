// Package bank holds the static question bank: an ordered list of
// tutorials, each an ordered list of multiple-choice questions.
package bank

import (
	"fmt"
	"strings"
)

// Bank is the immutable, ordered collection of tutorials.
type Bank struct {
	courseTitle string
	tutorials   []Tutorial
	index       map[string]int
}

// New builds a Bank from tutorials in display order.
// It returns a *ValidationError describing every problem found.
func New(courseTitle string, tutorials []Tutorial) (*Bank, error) {
	if err := validateTutorials(tutorials); err != nil {
		return nil, err
	}

	b := &Bank{
		courseTitle: courseTitle,
		tutorials:   make([]Tutorial, len(tutorials)),
		index:       make(map[string]int, len(tutorials)),
	}
	for i, t := range tutorials {
		if t.Title == "" {
			t.Title = fallbackTitle(t.ID)
		}
		qs := make([]Question, len(t.Questions))
		for j, q := range t.Questions {
			qs[j] = q.Clone()
		}
		t.Questions = qs
		b.tutorials[i] = t
		b.index[t.ID] = i
	}
	return b, nil
}

// CourseTitle returns the course title shown in the header.
func (b *Bank) CourseTitle() string {
	return b.courseTitle
}

// Tutorials returns all tutorials in display order.
func (b *Bank) Tutorials() []Tutorial {
	out := make([]Tutorial, len(b.tutorials))
	copy(out, b.tutorials)
	return out
}

// Len returns the number of tutorials.
func (b *Bank) Len() int {
	return len(b.tutorials)
}

// Tutorial returns the tutorial with the given ID.
func (b *Bank) Tutorial(id string) (Tutorial, bool) {
	i, ok := b.index[id]
	if !ok {
		return Tutorial{}, false
	}
	return b.tutorials[i], true
}

// Lookup is like Tutorial but returns *UnknownTutorialError when the ID is
// not in the bank.
func (b *Bank) Lookup(id string) (Tutorial, error) {
	t, ok := b.Tutorial(id)
	if !ok {
		return Tutorial{}, &UnknownTutorialError{ID: id}
	}
	return t, nil
}

// First returns the first tutorial, used as the default current tutorial.
func (b *Bank) First() (Tutorial, bool) {
	if len(b.tutorials) == 0 {
		return Tutorial{}, false
	}
	return b.tutorials[0], true
}

// fallbackTitle turns "tutorial-1" into "TUTORIAL 1".
func fallbackTitle(id string) string {
	return strings.ToUpper(strings.ReplaceAll(id, "-", " "))
}

// validateTutorials checks the invariants the grading engine relies on.
func validateTutorials(tutorials []Tutorial) error {
	var problems []string
	seen := make(map[string]bool, len(tutorials))

	for _, t := range tutorials {
		if t.ID == "" {
			problems = append(problems, "tutorial with empty ID")
			continue
		}
		if seen[t.ID] {
			problems = append(problems, fmt.Sprintf("duplicate tutorial ID: %q", t.ID))
		}
		seen[t.ID] = true

		for i, q := range t.Questions {
			if q.Kind != KindMultipleChoice {
				problems = append(problems, fmt.Sprintf("%s question %d: unsupported type %q", t.ID, i, q.Kind))
			}
			if len(q.Options) == 0 {
				problems = append(problems, fmt.Sprintf("%s question %d: no options", t.ID, i))
				continue
			}
			if q.Correct < 0 || q.Correct >= len(q.Options) {
				problems = append(problems, fmt.Sprintf("%s question %d: correct index %d out of range [0, %d)", t.ID, i, q.Correct, len(q.Options)))
			}
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
