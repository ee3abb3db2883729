package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuwanhe/smartsl/internal/domain"
	"github.com/nuwanhe/smartsl/internal/testutil"
)

func testSetup() Setup {
	return Setup{Grade: "Grade 10", Subject: "Science", Unit: "Cells", Language: domain.LangEnglish}
}

func testQuestions(n int) []domain.QuizQuestion {
	questions := make([]domain.QuizQuestion, n)
	for i := range questions {
		answer := i % 4
		questions[i] = testutil.NewTestQuestion(func(q *domain.QuizQuestion) {
			q.CorrectAnswer = answer
		})
	}
	return questions
}

// startedMachine returns a machine in the in-progress phase with n questions.
func startedMachine(t *testing.T, n int) *Machine {
	t.Helper()
	m := NewMachine()
	require.NoError(t, m.Start(testSetup()))
	require.NoError(t, m.Loaded(testQuestions(n)))
	return m
}

func TestNewMachine_StartsBuilding(t *testing.T) {
	m := NewMachine()
	assert.Equal(t, PhaseBuilding, m.Phase())
}

func TestStart_RequiresUnit(t *testing.T) {
	m := NewMachine()
	setup := testSetup()
	setup.Unit = ""

	err := m.Start(setup)
	require.Error(t, err)
	assert.Equal(t, PhaseBuilding, m.Phase())
}

func TestStart_MovesToGenerating(t *testing.T) {
	m := NewMachine()
	require.NoError(t, m.Start(testSetup()))
	assert.Equal(t, PhaseGenerating, m.Phase())
	assert.Equal(t, "Cells", m.Setup().Unit)
}

func TestStart_OnlyFromBuilding(t *testing.T) {
	m := startedMachine(t, 3)
	assert.Error(t, m.Start(testSetup()))
}

func TestLoaded_OnlyFromGenerating(t *testing.T) {
	m := NewMachine()
	assert.Error(t, m.Loaded(testQuestions(3)))
}

func TestLoaded_RejectsEmpty(t *testing.T) {
	m := NewMachine()
	require.NoError(t, m.Start(testSetup()))
	assert.Error(t, m.Loaded(nil))
	assert.Equal(t, PhaseGenerating, m.Phase())
}

func TestFail_ReturnsToBuilding(t *testing.T) {
	m := NewMachine()
	require.NoError(t, m.Start(testSetup()))
	m.Fail()
	assert.Equal(t, PhaseBuilding, m.Phase())
}

func TestFail_NoOpOutsideGenerating(t *testing.T) {
	m := startedMachine(t, 3)
	m.Fail()
	assert.Equal(t, PhaseInProgress, m.Phase())
}

func TestAnswer_RecordsAndHoldsCursor(t *testing.T) {
	m := startedMachine(t, 3)

	require.NoError(t, m.Answer(2))
	got, ok := m.AnswerFor(0)
	require.True(t, ok)
	assert.Equal(t, 2, got)

	// Cursor does not move until Advance.
	idx, _ := m.Current()
	assert.Equal(t, 0, idx)
	assert.Equal(t, PhaseInProgress, m.Phase())
}

func TestAnswer_RejectsDoubleAnswer(t *testing.T) {
	m := startedMachine(t, 3)
	require.NoError(t, m.Answer(1))
	assert.Error(t, m.Answer(2))

	got, _ := m.AnswerFor(0)
	assert.Equal(t, 1, got)
}

func TestAnswer_RejectsOutOfRange(t *testing.T) {
	m := startedMachine(t, 3)
	assert.Error(t, m.Answer(4))
	assert.Error(t, m.Answer(-1))
}

func TestAnswer_LastQuestionFinishes(t *testing.T) {
	m := startedMachine(t, 2)

	require.NoError(t, m.Answer(0))
	require.NoError(t, m.Advance())
	require.NoError(t, m.Answer(1))
	assert.Equal(t, PhaseFinished, m.Phase())
}

func TestAdvance_RequiresAnswer(t *testing.T) {
	m := startedMachine(t, 3)
	assert.Error(t, m.Advance())
}

func TestAdvance_MovesCursor(t *testing.T) {
	m := startedMachine(t, 3)
	require.NoError(t, m.Answer(0))
	require.NoError(t, m.Advance())

	idx, _ := m.Current()
	assert.Equal(t, 1, idx)
}

func TestScore_CountsCorrectAnswers(t *testing.T) {
	m := startedMachine(t, 3)
	questions := testQuestions(3)

	// First two correct, last one wrong.
	require.NoError(t, m.Answer(questions[0].CorrectAnswer))
	require.NoError(t, m.Advance())
	require.NoError(t, m.Answer(questions[1].CorrectAnswer))
	require.NoError(t, m.Advance())
	wrong := (questions[2].CorrectAnswer + 1) % 4
	require.NoError(t, m.Answer(wrong))

	assert.Equal(t, PhaseFinished, m.Phase())
	assert.Equal(t, 2, m.Score())
}

func TestStars(t *testing.T) {
	cases := []struct {
		score, total, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{2, 10, 1},
		{3, 10, 2},
		{7, 10, 4},
		{10, 10, 5},
		{2, 3, 4},
		{3, 3, 5},
	}
	for _, tc := range cases {
		m := &Machine{
			questions: testQuestions(tc.total),
			answers:   map[int]int{},
		}
		for i := 0; i < tc.score; i++ {
			m.answers[i] = m.questions[i].CorrectAnswer
		}
		for i := tc.score; i < tc.total; i++ {
			m.answers[i] = (m.questions[i].CorrectAnswer + 1) % 4
		}
		assert.Equal(t, tc.want, m.Stars(), "score %d of %d", tc.score, tc.total)
	}
}

func TestStars_EmptyQuiz(t *testing.T) {
	m := NewMachine()
	assert.Zero(t, m.Stars())
}

func TestReset_ReturnsToBuilding(t *testing.T) {
	m := startedMachine(t, 2)
	require.NoError(t, m.Answer(0))
	require.NoError(t, m.Advance())
	require.NoError(t, m.Answer(0))
	require.Equal(t, PhaseFinished, m.Phase())

	m.Reset()
	assert.Equal(t, PhaseBuilding, m.Phase())
	assert.Zero(t, m.Total())
	assert.Zero(t, m.Score())
	_, ok := m.AnswerFor(0)
	assert.False(t, ok)
}
