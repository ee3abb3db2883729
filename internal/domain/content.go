package domain

import "fmt"

// OptionsPerQuestion is the fixed option count for a quiz question.
const OptionsPerQuestion = 4

// QuestionsPerQuiz is the number of questions requested per quiz.
const QuestionsPerQuiz = 10

// SummaryPoints is the number of key takeaways requested per study note.
const SummaryPoints = 5

// StudyNote is a generated set of study notes. Notes are transient: each
// generation replaces the previous note wholesale and nothing is persisted.
type StudyNote struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Summary []string `json:"summary"`
}

// Validate checks the generated note against the requested shape.
func (n *StudyNote) Validate() error {
	if n.Title == "" {
		return fmt.Errorf("note has no title")
	}
	if n.Content == "" {
		return fmt.Errorf("note has no content")
	}
	if len(n.Summary) == 0 {
		return fmt.Errorf("note has no summary points")
	}
	return nil
}

// QuizQuestion is a single multiple-choice question.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// Validate checks the fixed 4-option shape and the answer index range.
func (q *QuizQuestion) Validate() error {
	if q.Question == "" {
		return fmt.Errorf("question text is empty")
	}
	if len(q.Options) != OptionsPerQuestion {
		return fmt.Errorf("question has %d options, want %d", len(q.Options), OptionsPerQuestion)
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= OptionsPerQuestion {
		return fmt.Errorf("correct answer index %d out of range [0,%d]", q.CorrectAnswer, OptionsPerQuestion-1)
	}
	return nil
}
