package bank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind identifies how a question is answered.
type Kind string

// KindMultipleChoice is the only supported kind: pick one of Options.
const KindMultipleChoice Kind = "mcq"

// Selection is the option index a learner picked, or NoSelection.
type Selection int

// NoSelection marks a question that was left unanswered.
const NoSelection Selection = -1

// IsSet reports whether an option was picked.
func (s Selection) IsSet() bool { return s >= 0 }

// MarshalJSON writes the selection as a number, or null when unset.
func (s Selection) MarshalJSON() ([]byte, error) {
	if !s.IsSet() {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(int(s))), nil
}

// UnmarshalJSON accepts null, a number, or a numeric string. Older saves
// stored the radio button value, which is a string.
func (s *Selection) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = NoSelection
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		var str string
		if strErr := json.Unmarshal(data, &str); strErr != nil {
			return fmt.Errorf("selection: %s is neither a number nor a string", data)
		}
		if str == "" {
			*s = NoSelection
			return nil
		}
		n, err = strconv.Atoi(str)
		if err != nil {
			return fmt.Errorf("selection: %w", err)
		}
	}

	if n < int(NoSelection) {
		return fmt.Errorf("selection: invalid option index %d", n)
	}
	*s = Selection(n)
	return nil
}

// Question is one immutable multiple-choice question.
type Question struct {
	Text    string   `json:"q"`
	Kind    Kind     `json:"type"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

// IsCorrect reports whether sel picks the correct option.
func (q Question) IsCorrect(sel Selection) bool {
	return sel.IsSet() && int(sel) == q.Correct
}

// CorrectOption returns the text of the correct option.
func (q Question) CorrectOption() string {
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return ""
	}
	return q.Options[q.Correct]
}

// Clone returns a deep copy that shares no memory with q.
func (q Question) Clone() Question {
	c := q
	c.Options = append([]string(nil), q.Options...)
	return c
}

// Tutorial is a named, ordered set of questions forming one quiz unit.
type Tutorial struct {
	ID        string
	Title     string
	Questions []Question
}

// Len returns the number of questions in the tutorial.
func (t Tutorial) Len() int { return len(t.Questions) }
