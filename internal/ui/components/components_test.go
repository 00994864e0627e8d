package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMultiChoiceNavigateAndChoose(t *testing.T) {
	m := NewMultiChoice("Pick", []string{"a", "b", "c"}, 1)

	m, _ = m.Update(press(tea.KeyDown))
	m, _ = m.Update(press(tea.KeyDown))
	m, _ = m.Update(press(tea.KeyDown))
	if m.Selected != 2 {
		t.Fatalf("Selected = %d, want 2 (clamped)", m.Selected)
	}
	if m.Answered() {
		t.Fatal("moving the cursor must not pick")
	}

	m, _ = m.Update(press(tea.KeyUp))
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if m.ChosenIndex != 1 || !m.IsCorrect() {
		t.Errorf("ChosenIndex = %d, want 1", m.ChosenIndex)
	}
}

func TestMultiChoiceRevealedIgnoresInput(t *testing.T) {
	m := NewRevealed("Pick", []string{"a", "b"}, 0, 1)
	m, _ = m.Update(press(tea.KeyEnter))
	if m.ChosenIndex != 1 {
		t.Errorf("ChosenIndex = %d, want 1", m.ChosenIndex)
	}
	if strings.Contains(m.View(), "▸") {
		t.Error("revealed view must not show a cursor")
	}
}

func TestOptionLabels(t *testing.T) {
	tests := map[int]string{0: "A", 3: "D", 25: "Z", 26: "AA", 27: "AB"}
	for i, want := range tests {
		if got := optionLabel(i); got != want {
			t.Errorf("optionLabel(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	p := NewProgressBar(1, 4, false, 30)
	if p.Percent() != 0.25 {
		t.Errorf("Percent = %v, want 0.25", p.Percent())
	}
	if !strings.Contains(p.View(), "1/4") {
		t.Error("view missing count")
	}

	done := NewProgressBar(4, 4, true, 30)
	if !strings.Contains(done.View(), "Completed") {
		t.Error("completed bar missing badge")
	}

	if NewProgressBar(0, 0, false, 10).Percent() != 0 {
		t.Error("empty tutorial should be 0%")
	}
}

func TestMenuSkipsDisabled(t *testing.T) {
	opened := ""
	item := func(label string, disabled bool) MenuItem {
		return MenuItem{Label: label, Disabled: disabled, Action: func() tea.Cmd {
			opened = label
			return nil
		}}
	}
	m := NewMenu([]MenuItem{item("a", true), item("b", false), item("c", true), item("d", false)})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want first enabled item", m.Selected)
	}

	m, _ = m.Update(press(tea.KeyDown))
	if m.Selected != 3 {
		t.Fatalf("Selected = %d, want 3", m.Selected)
	}
	m.Update(press(tea.KeyEnter))
	if opened != "d" {
		t.Errorf("opened %q, want d", opened)
	}
}
