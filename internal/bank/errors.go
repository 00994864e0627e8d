package bank

import (
	"fmt"
	"strings"
)

// UnknownTutorialError indicates a caller asked for a tutorial that is not
// in the bank. This is a navigation bug in the caller, not a data condition.
type UnknownTutorialError struct {
	ID string
}

func (e *UnknownTutorialError) Error() string {
	return fmt.Sprintf("unknown tutorial %q", e.ID)
}

// ValidationError lists every structural problem found in a question bank.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid question bank: %s", strings.Join(e.Problems, "; "))
}
