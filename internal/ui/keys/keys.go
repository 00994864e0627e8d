// Package keys defines the key bindings shared by every screen.
package keys

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/quizplayer/internal/ui/layout"
)

var (
	Up     = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Option"))
	Down   = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↑↓", "Option"))
	Prev   = key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←→", "Question"))
	Next   = key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←→", "Question"))
	Choose = key.NewBinding(key.WithKeys("space", "enter"), key.WithHelp("Space", "Select"))
	Open   = key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Open"))
	Check  = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "Check"))
	Grade  = key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "Grade"))
	Review = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Review"))
	Retake = key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "Retake"))
	Theme  = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "Dark mode"))
	Back   = key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Back"))
	Quit   = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "Quit"))
)

// Hints turns bindings into footer hints, skipping disabled ones and
// repeated help labels.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	seen := make(map[string]bool)
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if seen[h.Key+h.Desc] {
			continue
		}
		seen[h.Key+h.Desc] = true
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
