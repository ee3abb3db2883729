package testutil

import (
	"github.com/google/uuid"

	"github.com/nuwanhe/smartsl/internal/domain"
)

// TaskOption customizes a fixture task.
type TaskOption func(*domain.StudyTask)

func WithSubject(s domain.Subject) TaskOption {
	return func(t *domain.StudyTask) { t.Subject = s }
}

func WithTime(hhmm string) TaskOption {
	return func(t *domain.StudyTask) { t.Time = domain.TimeOfDay(hhmm) }
}

func Completed() TaskOption {
	return func(t *domain.StudyTask) { t.Completed = true }
}

// NewTestTask creates a valid study task with sensible defaults.
func NewTestTask(opts ...TaskOption) domain.StudyTask {
	task := domain.StudyTask{
		ID:      uuid.New().String(),
		Subject: domain.Subject("Mathematics"),
		Time:    domain.TimeOfDay("09:00"),
	}
	for _, opt := range opts {
		opt(&task)
	}
	return task
}

// NewTestQuestion creates a valid quiz question.
func NewTestQuestion(opts ...func(*domain.QuizQuestion)) domain.QuizQuestion {
	q := domain.QuizQuestion{
		Question:      "What is 2 + 2?",
		Options:       []string{"3", "4", "5", "6"},
		CorrectAnswer: 1,
	}
	for _, opt := range opts {
		opt(&q)
	}
	return q
}
