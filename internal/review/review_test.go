package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizplayer/internal/bank"
	"github.com/abhisek/quizplayer/internal/ledger"
)

func testBank(t *testing.T) *bank.Bank {
	t.Helper()
	q := func(text string, correct int) bank.Question {
		return bank.Question{Text: text, Kind: bank.KindMultipleChoice, Options: []string{"a", "b", "c"}, Correct: correct}
	}
	b, err := bank.New("", []bank.Tutorial{
		{ID: "t1", Title: "One", Questions: []bank.Question{q("q0", 0), q("q1", 1), q("q2", 2)}},
	})
	require.NoError(t, err)
	return b
}

func TestBuildAfterGrading(t *testing.T) {
	b := testBank(t)
	tut, _ := b.Tutorial("t1")
	l := ledger.New()
	l.UpsertMany("t1", []ledger.MistakeRecord{
		{QuestionIndex: 1, Question: tut.Questions[1], UserAnswer: 2},
	})

	s, err := Build(b, l, "t1")
	require.NoError(t, err)
	assert.False(t, s.Empty())
	assert.Equal(t, "One", s.Title)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, Item{QuestionIndex: 1, Question: tut.Questions[1], PriorAnswer: 2}, s.Items[0])
	assert.True(t, s.Items[0].Answered())
}

func TestBuildOrdersByIndex(t *testing.T) {
	b := testBank(t)
	tut, _ := b.Tutorial("t1")
	l := ledger.New()
	l.UpsertMany("t1", []ledger.MistakeRecord{
		{QuestionIndex: 2, Question: tut.Questions[2], UserAnswer: 0},
		{QuestionIndex: 0, Question: tut.Questions[0], UserAnswer: bank.NoSelection},
	})

	s, err := Build(b, l, "t1")
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())
	assert.Equal(t, 0, s.Items[0].QuestionIndex)
	assert.Equal(t, 2, s.Items[1].QuestionIndex)
	assert.False(t, s.Items[0].Answered())
}

func TestBuildEmpty(t *testing.T) {
	s, err := Build(testBank(t), ledger.New(), "t1")
	require.NoError(t, err)
	assert.True(t, s.Empty())
}

func TestBuildDoesNotShareLedgerMemory(t *testing.T) {
	b := testBank(t)
	tut, _ := b.Tutorial("t1")
	l := ledger.New()
	l.UpsertMany("t1", []ledger.MistakeRecord{{QuestionIndex: 1, Question: tut.Questions[1], UserAnswer: 0}})

	s, err := Build(b, l, "t1")
	require.NoError(t, err)
	s.Items[0].Question.Options[0] = "changed"
	s.Items[0].PriorAnswer = 1

	r, ok := l.Find("t1", 1)
	require.True(t, ok)
	assert.Equal(t, "a", r.Question.Options[0])
	assert.Equal(t, bank.Selection(0), r.UserAnswer)
}

func TestBuildUnknownTutorial(t *testing.T) {
	_, err := Build(testBank(t), ledger.New(), "missing")
	var unknown *bank.UnknownTutorialError
	assert.ErrorAs(t, err, &unknown)
}
