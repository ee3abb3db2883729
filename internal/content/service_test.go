package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuwanhe/smartsl/internal/domain"
	"github.com/nuwanhe/smartsl/internal/genai"
)

// fakeClient returns canned text and records the last request.
type fakeClient struct {
	text    string
	err     error
	lastReq genai.GenerateRequest
}

func (f *fakeClient) GenerateContent(ctx context.Context, req genai.GenerateRequest) (*genai.GenerateResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateResponse{Text: f.text}, nil
}

func (f *fakeClient) GenerateSpeech(ctx context.Context, req genai.SpeechRequest) (*genai.SpeechResponse, error) {
	return &genai.SpeechResponse{}, nil
}

func quizJSON(t *testing.T, n int) string {
	t.Helper()
	questions := make([]domain.QuizQuestion, n)
	for i := range questions {
		questions[i] = domain.QuizQuestion{
			Question:      "Q?",
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: i % 4,
		}
	}
	b, err := json.Marshal(questions)
	require.NoError(t, err)
	return string(b)
}

func TestGenerateStudyNotes_Success(t *testing.T) {
	client := &fakeClient{text: `{"title":"Photosynthesis","content":"Plants make food from light.","summary":["light","chlorophyll"]}`}
	svc := NewService(client)

	note, err := svc.GenerateStudyNotes(context.Background(), "Grade 10", "Science", "Photosynthesis", domain.LangEnglish)
	require.NoError(t, err)
	assert.Equal(t, "Photosynthesis", note.Title)
	assert.Len(t, note.Summary, 2)

	assert.Equal(t, genai.TaskNotes, client.lastReq.Task)
	assert.Contains(t, client.lastReq.Prompt, "Grade 10")
	assert.Contains(t, client.lastReq.Prompt, "Science")
	assert.Contains(t, client.lastReq.Prompt, "Photosynthesis")
	assert.NotNil(t, client.lastReq.ResponseSchema)
}

func TestGenerateStudyNotes_ClientError(t *testing.T) {
	svc := NewService(&fakeClient{err: errors.New("network down")})

	_, err := svc.GenerateStudyNotes(context.Background(), "Grade 10", "Science", "Cells", domain.LangEnglish)
	require.ErrorIs(t, err, ErrGeneration)
	assert.Contains(t, err.Error(), "network down")
}

func TestGenerateStudyNotes_MalformedJSON(t *testing.T) {
	svc := NewService(&fakeClient{text: "I'm sorry, I cannot do that."})

	_, err := svc.GenerateStudyNotes(context.Background(), "Grade 10", "Science", "Cells", domain.LangEnglish)
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestGenerateStudyNotes_MissingFields(t *testing.T) {
	svc := NewService(&fakeClient{text: `{"title":"Cells"}`})

	_, err := svc.GenerateStudyNotes(context.Background(), "Grade 10", "Science", "Cells", domain.LangEnglish)
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestGenerateStudyNotes_UnitRequired(t *testing.T) {
	client := &fakeClient{}
	svc := NewService(client)

	_, err := svc.GenerateStudyNotes(context.Background(), "Grade 10", "Science", "", domain.LangEnglish)
	require.ErrorIs(t, err, ErrGeneration)
	assert.Contains(t, err.Error(), "unit")
	assert.Empty(t, client.lastReq.Prompt, "no request should be sent")
}

func TestGenerateStudyNotes_LanguageInPrompt(t *testing.T) {
	client := &fakeClient{text: `{"title":"t","content":"c","summary":["s"]}`}
	svc := NewService(client)

	_, err := svc.GenerateStudyNotes(context.Background(), "Grade 8", "History", "Kandyan Kingdom", domain.LangSinhala)
	require.NoError(t, err)
	assert.Contains(t, client.lastReq.Prompt, "Sinhala")
}

func TestGenerateQuiz_Success(t *testing.T) {
	client := &fakeClient{text: quizJSON(t, 10)}
	svc := NewService(client)

	questions, err := svc.GenerateQuiz(context.Background(), "Grade 11", "Mathematics", "Algebra", domain.LangEnglish)
	require.NoError(t, err)
	assert.Len(t, questions, 10)
	assert.Equal(t, genai.TaskQuiz, client.lastReq.Task)
}

func TestGenerateQuiz_TruncatesExtras(t *testing.T) {
	svc := NewService(&fakeClient{text: quizJSON(t, 14)})

	questions, err := svc.GenerateQuiz(context.Background(), "Grade 11", "Mathematics", "Algebra", domain.LangEnglish)
	require.NoError(t, err)
	assert.Len(t, questions, domain.QuestionsPerQuiz)
}

func TestGenerateQuiz_AcceptsShortQuiz(t *testing.T) {
	svc := NewService(&fakeClient{text: quizJSON(t, 6)})

	questions, err := svc.GenerateQuiz(context.Background(), "Grade 11", "Mathematics", "Algebra", domain.LangEnglish)
	require.NoError(t, err)
	assert.Len(t, questions, 6)
}

func TestGenerateQuiz_EmptyQuizRejected(t *testing.T) {
	svc := NewService(&fakeClient{text: `[]`})

	_, err := svc.GenerateQuiz(context.Background(), "Grade 11", "Mathematics", "Algebra", domain.LangEnglish)
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestGenerateQuiz_BadOptionCountRejectsWholeQuiz(t *testing.T) {
	raw := `[
		{"question":"ok","options":["a","b","c","d"],"correctAnswer":0},
		{"question":"short","options":["a","b"],"correctAnswer":0}
	]`
	svc := NewService(&fakeClient{text: raw})

	_, err := svc.GenerateQuiz(context.Background(), "Grade 11", "Mathematics", "Algebra", domain.LangEnglish)
	require.ErrorIs(t, err, ErrGeneration)
	assert.Contains(t, err.Error(), "question 2")
}

func TestGenerateQuiz_AnswerIndexOutOfRange(t *testing.T) {
	raw := `[{"question":"q","options":["a","b","c","d"],"correctAnswer":7}]`
	svc := NewService(&fakeClient{text: raw})

	_, err := svc.GenerateQuiz(context.Background(), "Grade 11", "Mathematics", "Algebra", domain.LangEnglish)
	assert.ErrorIs(t, err, ErrGeneration)
}

func TestGenerateQuiz_UnknownGrade(t *testing.T) {
	svc := NewService(&fakeClient{})

	_, err := svc.GenerateQuiz(context.Background(), "Grade 99", "Mathematics", "Algebra", domain.LangEnglish)
	assert.ErrorIs(t, err, ErrGeneration)
}
