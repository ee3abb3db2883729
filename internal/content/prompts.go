package content

import (
	"encoding/json"
	"fmt"

	"github.com/nuwanhe/smartsl/internal/domain"
)

// noteSchema constrains note generation to the StudyNote shape.
var noteSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"title": {"type": "STRING"},
		"content": {"type": "STRING"},
		"summary": {"type": "ARRAY", "items": {"type": "STRING"}}
	},
	"required": ["title", "content", "summary"]
}`)

// quizSchema constrains quiz generation to an array of QuizQuestion.
var quizSchema = json.RawMessage(`{
	"type": "ARRAY",
	"items": {
		"type": "OBJECT",
		"properties": {
			"question": {"type": "STRING"},
			"options": {"type": "ARRAY", "items": {"type": "STRING"}},
			"correctAnswer": {"type": "INTEGER"}
		},
		"required": ["question", "options", "correctAnswer"]
	}
}`)

// notesPrompt builds the study-note generation instruction.
func notesPrompt(grade domain.Grade, subject domain.Subject, unit string, lang domain.Language) string {
	return fmt.Sprintf(
		"Generate comprehensive, syllabus-aligned short notes for Sri Lankan %s %s, Unit: %s.\n"+
			"Provide the output in %s.\n"+
			"Include a title, the main content (formatted with clear sections), and a list of %d key summary points.",
		grade, subject, unit, lang.Name(), domain.SummaryPoints,
	)
}

// quizPrompt builds the quiz generation instruction.
func quizPrompt(grade domain.Grade, subject domain.Subject, unit string, lang domain.Language) string {
	return fmt.Sprintf(
		"Generate %d multiple-choice questions for Sri Lankan %s %s, Unit: %s.\n"+
			"The questions and options must be in %s.\n"+
			"Each question must have exactly %d options and one correct answer index (0-%d).",
		domain.QuestionsPerQuiz, grade, subject, unit, lang.Name(),
		domain.OptionsPerQuestion, domain.OptionsPerQuestion-1,
	)
}
