package app

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizplayer/internal/bank"
	"github.com/abhisek/quizplayer/internal/router"
	"github.com/abhisek/quizplayer/internal/session"
	"github.com/abhisek/quizplayer/internal/store"
)

func testModel(t *testing.T) AppModel {
	t.Helper()
	sess, err := session.New(context.Background(), session.Options{Bank: bank.Default(), KV: store.NewMemory()})
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	return newAppModel(sess)
}

func resize(m AppModel, w, h int) AppModel {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(AppModel)
}

func TestViewBeforeResize(t *testing.T) {
	m := testModel(t)
	if m.render() != "" {
		t.Error("expected empty view before the first resize")
	}
}

func TestViewTooSmall(t *testing.T) {
	m := resize(testModel(t), 40, 10)
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected size warning")
	}
}

func TestViewShowsHome(t *testing.T) {
	m := resize(testModel(t), 100, 30)
	content := m.render()
	if !strings.Contains(content, bank.Default().CourseTitle()) {
		t.Error("expected course title in frame")
	}
	if !strings.Contains(content, "Tutorials") {
		t.Error("expected home title in header")
	}
}

func TestEscPopsOnlyAboveHome(t *testing.T) {
	m := resize(testModel(t), 100, 30)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("esc on home must do nothing")
	}

	// Open the first tutorial.
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m.Update(cmd())
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestStartQuiz(t *testing.T) {
	m := testModel(t)
	first, _ := bank.Default().First()

	if err := m.startQuiz(context.Background(), first.ID); err != nil {
		t.Fatalf("startQuiz: %v", err)
	}
	if m.router.Depth() != 2 || m.router.Active().Title() != first.Title {
		t.Errorf("expected %q quiz on top", first.Title)
	}

	if err := m.startQuiz(context.Background(), "missing"); err == nil {
		t.Error("expected error for unknown tutorial")
	}
}

func TestHeaderShowsTrail(t *testing.T) {
	m := resize(testModel(t), 100, 30)
	first, _ := bank.Default().First()
	if err := m.startQuiz(context.Background(), first.ID); err != nil {
		t.Fatalf("startQuiz: %v", err)
	}
	if want := "Tutorials › " + first.Title; !strings.Contains(m.render(), want) {
		t.Errorf("expected %q in header", want)
	}
}
