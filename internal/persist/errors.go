package persist

import "fmt"

// MalformedSlotError reports a saved slot that could not be read, parsed or
// validated. The slot falls back to its default value.
type MalformedSlotError struct {
	Slot string
	Err  error
}

func (e *MalformedSlotError) Error() string {
	return fmt.Sprintf("malformed slot %q: %v", e.Slot, e.Err)
}

func (e *MalformedSlotError) Unwrap() error { return e.Err }
