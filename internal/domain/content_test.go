package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validQuestion() QuizQuestion {
	return QuizQuestion{
		Question:      "What is the boiling point of water?",
		Options:       []string{"90°C", "100°C", "110°C", "120°C"},
		CorrectAnswer: 1,
	}
}

func TestQuizQuestion_Validate(t *testing.T) {
	q := validQuestion()
	assert.NoError(t, q.Validate())
}

func TestQuizQuestion_Validate_EmptyQuestion(t *testing.T) {
	q := validQuestion()
	q.Question = ""
	assert.Error(t, q.Validate())
}

func TestQuizQuestion_Validate_WrongOptionCount(t *testing.T) {
	q := validQuestion()
	q.Options = q.Options[:3]
	assert.Error(t, q.Validate())

	q = validQuestion()
	q.Options = append(q.Options, "130°C")
	assert.Error(t, q.Validate())
}

func TestQuizQuestion_Validate_AnswerOutOfRange(t *testing.T) {
	q := validQuestion()
	q.CorrectAnswer = 4
	assert.Error(t, q.Validate())

	q = validQuestion()
	q.CorrectAnswer = -1
	assert.Error(t, q.Validate())
}

func TestStudyNote_Validate(t *testing.T) {
	n := StudyNote{Title: "Photosynthesis", Content: "Plants make food.", Summary: []string{"a"}}
	assert.NoError(t, n.Validate())
}

func TestStudyNote_Validate_Incomplete(t *testing.T) {
	cases := []StudyNote{
		{Content: "body", Summary: []string{"a"}},
		{Title: "t", Summary: []string{"a"}},
		{Title: "t", Content: "body"},
	}
	for i, n := range cases {
		assert.Error(t, n.Validate(), "case %d", i)
	}
}
