package session

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizplayer/internal/bank"
	"github.com/abhisek/quizplayer/internal/grading"
	"github.com/abhisek/quizplayer/internal/persist"
	"github.com/abhisek/quizplayer/internal/store"
)

func testBank(t *testing.T) *bank.Bank {
	t.Helper()
	q := func(text string, correct int) bank.Question {
		return bank.Question{Text: text, Kind: bank.KindMultipleChoice, Options: []string{"a", "b", "c"}, Correct: correct}
	}
	b, err := bank.New("Course", []bank.Tutorial{
		{ID: "t1", Title: "One", Questions: []bank.Question{q("q0", 0), q("q1", 1), q("q2", 2)}},
		{ID: "t2", Title: "Two", Questions: []bank.Question{q("q0", 1), q("q1", 1)}},
	})
	require.NoError(t, err)
	return b
}

func newSession(t *testing.T, kv store.KV) (*Session, *bytes.Buffer) {
	t.Helper()
	var warnings bytes.Buffer
	s, err := New(context.Background(), Options{Bank: testBank(t), KV: kv, Warnings: &warnings})
	require.NoError(t, err)
	return s, &warnings
}

func TestNewRequiresBankAndStore(t *testing.T) {
	ctx := context.Background()
	_, err := New(ctx, Options{KV: store.NewMemory()})
	assert.Error(t, err)
	_, err = New(ctx, Options{Bank: testBank(t)})
	assert.Error(t, err)
}

func TestFreshSession(t *testing.T) {
	s, warnings := newSession(t, store.NewMemory())

	assert.True(t, s.RestoreReport().OK())
	assert.Empty(t, warnings.String())
	assert.Equal(t, "t1", s.Current().ID)

	rec, err := s.Progress("t2")
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Total)
	assert.False(t, rec.Completed)
}

func TestGradeReviewRetakeFlow(t *testing.T) {
	ctx := context.Background()
	s, _ := newSession(t, store.NewMemory())

	_, err := s.Open(ctx, "t1")
	require.NoError(t, err)

	res, err := s.Grade(ctx, "t1", grading.Answers{0: 0, 1: 2, 2: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Score)

	rv, err := s.Review("t1")
	require.NoError(t, err)
	require.Equal(t, 1, rv.Len())
	assert.Equal(t, 1, rv.Items[0].QuestionIndex)
	assert.Equal(t, bank.Selection(2), rv.Items[0].PriorAnswer)

	cleared, err := s.Retake(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, 1, cleared)
	rv, err = s.Review("t1")
	require.NoError(t, err)
	assert.True(t, rv.Empty())

	rec, err := s.Progress("t1")
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Correct, "retake keeps progress")
}

func TestStateSurvivesReload(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "quiz.db")

	db, err := store.Open(path)
	require.NoError(t, err)
	s, _ := newSession(t, db)
	_, err = s.Open(ctx, "t2")
	require.NoError(t, err)
	_, err = s.Grade(ctx, "t2", grading.Answers{0: 1})
	require.NoError(t, err)
	s.SetDarkMode(ctx, true)
	wantMistakes := s.Mistakes("t2")
	require.NoError(t, db.Close())

	db, err = store.Open(path)
	require.NoError(t, err)
	defer db.Close()
	reloaded, warnings := newSession(t, db)

	assert.Empty(t, warnings.String())
	assert.Equal(t, "t2", reloaded.Current().ID)
	assert.Equal(t, wantMistakes, reloaded.Mistakes("t2"))
	assert.True(t, reloaded.DarkMode())
	assert.Len(t, reloaded.History("", 0), 1)

	rec, err := reloaded.Progress("t2")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Correct)
	assert.Equal(t, 2, rec.Total)
}

func TestMalformedSlotIsWarned(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, persist.SlotUserProgress, []byte(`oops`)))

	s, warnings := newSession(t, kv)
	assert.False(t, s.RestoreReport().OK())
	assert.Contains(t, warnings.String(), "warning: discarded saved state")
	assert.Contains(t, warnings.String(), persist.SlotUserProgress)
}

func TestStaleCursorFallsBackToFirstTutorial(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Set(ctx, persist.SlotCurrentQuiz, []byte(`{"tutorial": "removed", "incorrectAnswers": []}`)))

	s, _ := newSession(t, kv)
	assert.Equal(t, "t1", s.Current().ID)
}

func TestOverview(t *testing.T) {
	ctx := context.Background()
	s, _ := newSession(t, store.NewMemory())
	_, err := s.Grade(ctx, "t2", grading.Answers{0: 1, 1: 1})
	require.NoError(t, err)
	_, err = s.Grade(ctx, "t1", grading.Answers{})
	require.NoError(t, err)

	rows := s.Overview()
	require.Len(t, rows, 2)
	assert.Equal(t, "t1", rows[0].Tutorial.ID)
	assert.Equal(t, 3, rows[0].Mistakes)
	assert.Equal(t, "t2", rows[1].Tutorial.ID)
	assert.True(t, rows[1].Progress.Completed)
	assert.Zero(t, rows[1].Mistakes)
}

func TestHistoryFilter(t *testing.T) {
	ctx := context.Background()
	s, _ := newSession(t, store.NewMemory())
	for i := 0; i < 3; i++ {
		_, err := s.Grade(ctx, "t1", grading.Answers{0: 0})
		require.NoError(t, err)
	}
	_, err := s.Grade(ctx, "t2", grading.Answers{})
	require.NoError(t, err)

	assert.Len(t, s.History("t1", 0), 3)
	assert.Len(t, s.History("t1", 2), 2)
	all := s.History("", 0)
	require.Len(t, all, 4)
	assert.Equal(t, "t2", all[0].TutorialID, "newest first")
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	s, _ := newSession(t, kv)
	_, err := s.Open(ctx, "t2")
	require.NoError(t, err)
	_, err = s.Grade(ctx, "t2", grading.Answers{})
	require.NoError(t, err)

	require.NoError(t, s.Reset(ctx))
	assert.Empty(t, s.Mistakes("t2"))
	assert.Empty(t, s.History("", 0))
	assert.Equal(t, "t1", s.Current().ID)

	for _, slot := range persist.Slots {
		_, ok, err := kv.Get(ctx, slot)
		require.NoError(t, err)
		assert.False(t, ok, slot)
	}
}

func TestUnknownTutorialErrors(t *testing.T) {
	ctx := context.Background()
	s, _ := newSession(t, store.NewMemory())
	var unknown *bank.UnknownTutorialError

	_, err := s.Open(ctx, "x")
	assert.ErrorAs(t, err, &unknown)
	_, err = s.Progress("x")
	assert.ErrorAs(t, err, &unknown)
	_, err = s.Review("x")
	assert.ErrorAs(t, err, &unknown)
}
