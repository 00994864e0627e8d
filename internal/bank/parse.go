package bank

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/abhisek/quizplayer/internal/validate"
)

const courseTitleKey = "courseTitle"

// DefaultCourseTitle is used when a bank file has no courseTitle.
const DefaultCourseTitle = "Learning Platform"

//go:embed course.json
var defaultCourse []byte

var (
	defaultOnce sync.Once
	defaultBank *Bank
)

// Default returns the course embedded in the binary.
func Default() *Bank {
	defaultOnce.Do(func() {
		b, err := Parse(defaultCourse)
		if err != nil {
			panic(fmt.Sprintf("embedded course is invalid: %v", err))
		}
		defaultBank = b
	})
	return defaultBank
}

// LoadFile reads and parses a question bank file.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

type tutorialDoc struct {
	Title string     `json:"title"`
	Data  []Question `json:"data"`
}

// Parse decodes a question bank document of the form
//
//	{"courseTitle": "...", "tutorial-1": {"title": "...", "data": [...]}, ...}
//
// Tutorials keep the order in which their keys appear in the document.
func Parse(data []byte) (*Bank, error) {
	if _, err := validate.Document(documentSchema, data); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil { // opening brace
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	courseTitle := DefaultCourseTitle
	var tutorials []Tutorial
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode question bank: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("decode question bank: unexpected token %v", tok)
		}

		if key == courseTitleKey {
			if err := dec.Decode(&courseTitle); err != nil {
				return nil, fmt.Errorf("decode %s: %w", courseTitleKey, err)
			}
			continue
		}

		var doc tutorialDoc
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode tutorial %q: %w", key, err)
		}
		tutorials = append(tutorials, Tutorial{
			ID:        key,
			Title:     doc.Title,
			Questions: doc.Data,
		})
	}

	return New(courseTitle, tutorials)
}
