// Package content turns user study requests into generated notes and
// quizzes. It owns the prompt contract with the generative service and the
// shape validation of what comes back; transport lives in internal/genai.
package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/nuwanhe/smartsl/internal/domain"
	"github.com/nuwanhe/smartsl/internal/genai"
)

// ErrGeneration indicates a content generation request failed: the network
// call errored, the service rejected the request, or the returned payload
// did not match the expected shape. It is never retried automatically.
var ErrGeneration = errors.New("content generation failed")

// Service generates study content. Implementations make one blocking
// request per call with no caching.
type Service interface {
	// GenerateStudyNotes produces notes for the given grade/subject/unit
	// in the requested language.
	GenerateStudyNotes(ctx context.Context, grade domain.Grade, subject domain.Subject, unit string, lang domain.Language) (*domain.StudyNote, error)

	// GenerateQuiz produces a multiple-choice quiz for the given
	// grade/subject/unit in the requested language.
	GenerateQuiz(ctx context.Context, grade domain.Grade, subject domain.Subject, unit string, lang domain.Language) ([]domain.QuizQuestion, error)
}

type service struct {
	client genai.Client
}

// NewService creates a Service backed by a generative client.
func NewService(client genai.Client) Service {
	return &service{client: client}
}

func (s *service) GenerateStudyNotes(ctx context.Context, grade domain.Grade, subject domain.Subject, unit string, lang domain.Language) (*domain.StudyNote, error) {
	if err := validateRequest(grade, subject, unit, lang); err != nil {
		return nil, err
	}

	resp, err := s.client.GenerateContent(ctx, genai.GenerateRequest{
		Task:           genai.TaskNotes,
		Prompt:         notesPrompt(grade, subject, unit, lang),
		ResponseSchema: noteSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	note, err := genai.ExtractJSON[domain.StudyNote](resp.Text, func(n domain.StudyNote) error {
		return n.Validate()
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	return &note, nil
}

func (s *service) GenerateQuiz(ctx context.Context, grade domain.Grade, subject domain.Subject, unit string, lang domain.Language) ([]domain.QuizQuestion, error) {
	if err := validateRequest(grade, subject, unit, lang); err != nil {
		return nil, err
	}

	resp, err := s.client.GenerateContent(ctx, genai.GenerateRequest{
		Task:           genai.TaskQuiz,
		Prompt:         quizPrompt(grade, subject, unit, lang),
		ResponseSchema: quizSchema,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	questions, err := genai.ExtractJSON[[]domain.QuizQuestion](resp.Text, validateQuiz)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	// The model is asked for exactly QuestionsPerQuiz items but is not
	// trusted to count; anything beyond the requested length is dropped.
	if len(questions) > domain.QuestionsPerQuiz {
		questions = questions[:domain.QuestionsPerQuiz]
	}
	return questions, nil
}

// validateQuiz rejects an empty quiz or any malformed question. A single
// bad question invalidates the whole quiz rather than silently shrinking it.
func validateQuiz(questions []domain.QuizQuestion) error {
	if len(questions) == 0 {
		return fmt.Errorf("quiz has no questions")
	}
	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return fmt.Errorf("question %d: %v", i+1, err)
		}
	}
	return nil
}

func validateRequest(grade domain.Grade, subject domain.Subject, unit string, lang domain.Language) error {
	if !grade.IsValid() {
		return fmt.Errorf("%w: unknown grade %q", ErrGeneration, grade)
	}
	if !subject.IsValid() {
		return fmt.Errorf("%w: unknown subject %q", ErrGeneration, subject)
	}
	if unit == "" {
		return fmt.Errorf("%w: unit is required", ErrGeneration)
	}
	if !lang.IsValid() {
		return fmt.Errorf("%w: unknown language %q", ErrGeneration, lang)
	}
	return nil
}
