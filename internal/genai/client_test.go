package genai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.Endpoint = endpoint
	return cfg
}

func textResponse(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + mustJSON(text) + `}]}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGenerateContent_Success(t *testing.T) {
	var gotPath, gotKey string
	var gotBody geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(textResponse("hello")))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), nil)
	resp, err := client.GenerateContent(context.Background(), GenerateRequest{
		Task:   TaskNotes,
		Prompt: "say hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.Text)

	assert.Equal(t, "/v1beta/models/gemini-3-flash-preview:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	assert.Equal(t, "say hello", gotBody.Contents[0].Parts[0].Text)
}

func TestGenerateContent_SchemaSetsJSONMimeType(t *testing.T) {
	var gotBody geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(textResponse(`{"ok":true}`)))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), nil)
	_, err := client.GenerateContent(context.Background(), GenerateRequest{
		Task:           TaskQuiz,
		Prompt:         "quiz me",
		ResponseSchema: json.RawMessage(`{"type":"ARRAY"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "application/json", gotBody.GenerationConfig.ResponseMimeType)
	assert.JSONEq(t, `{"type":"ARRAY"}`, string(gotBody.GenerationConfig.ResponseSchema))
}

func TestGenerateContent_MissingAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	client := NewGeminiClient(cfg, nil)

	_, err := client.GenerateContent(context.Background(), GenerateRequest{Task: TaskNotes, Prompt: "x"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGenerateContent_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), nil)
	_, err := client.GenerateContent(context.Background(), GenerateRequest{Task: TaskNotes, Prompt: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestGenerateContent_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(textResponse("late")))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Tasks[TaskNotes] = TaskConfig{TimeoutMs: 50}
	client := NewGeminiClient(cfg, nil)

	_, err := client.GenerateContent(context.Background(), GenerateRequest{Task: TaskNotes, Prompt: "x"})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestGenerateContent_Blocked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"promptFeedback":{"blockReason":"SAFETY"}}`))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), nil)
	_, err := client.GenerateContent(context.Background(), GenerateRequest{Task: TaskNotes, Prompt: "x"})
	require.ErrorIs(t, err, ErrBlocked)
	assert.Contains(t, err.Error(), "SAFETY")
}

func TestGenerateContent_NoTextPart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[]}}]}`))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), nil)
	_, err := client.GenerateContent(context.Background(), GenerateRequest{Task: TaskNotes, Prompt: "x"})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestGenerateSpeech_DecodesAudio(t *testing.T) {
	pcm := []byte{0x00, 0x40, 0x00, 0xC0}
	var gotBody geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		resp := `{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"audio/pcm","data":"` +
			base64.StdEncoding.EncodeToString(pcm) + `"}}]}}]}`
		w.Write([]byte(resp))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), nil)
	resp, err := client.GenerateSpeech(context.Background(), SpeechRequest{Text: "read me"})
	require.NoError(t, err)
	assert.Equal(t, pcm, resp.Audio)

	require.NotNil(t, gotBody.GenerationConfig.SpeechConfig)
	assert.Equal(t, []string{"AUDIO"}, gotBody.GenerationConfig.ResponseModalities)
	assert.Equal(t, "Kore", gotBody.GenerationConfig.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName)
}

func TestGenerateSpeech_NoAudioIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[{"content":{"parts":[]}}]}`))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), nil)
	resp, err := client.GenerateSpeech(context.Background(), SpeechRequest{Text: "read me"})
	require.NoError(t, err)
	assert.Nil(t, resp.Audio)
}

func TestGenerateSpeech_VoiceOverride(t *testing.T) {
	var gotBody geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	client := NewGeminiClient(testConfig(srv.URL), nil)
	_, err := client.GenerateSpeech(context.Background(), SpeechRequest{Text: "x", Voice: "Puck"})
	require.NoError(t, err)
	assert.Equal(t, "Puck", gotBody.GenerationConfig.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName)
}

type recordingObserver struct {
	events []CallEvent
}

func (r *recordingObserver) OnCallComplete(e CallEvent) { r.events = append(r.events, e) }

func TestObserver_ReceivesFailureCode(t *testing.T) {
	obs := &recordingObserver{}
	client := NewGeminiClient(DefaultConfig(), obs)

	_, err := client.GenerateContent(context.Background(), GenerateRequest{Task: TaskNotes, Prompt: "x"})
	require.Error(t, err)

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.Equal(t, "NO_API_KEY", obs.events[0].ErrorCode)
	assert.Equal(t, TaskNotes, obs.events[0].Task)
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "", errorCode(nil))
	assert.Equal(t, "TIMEOUT", errorCode(ErrTimeout))
	assert.Equal(t, "BLOCKED", errorCode(ErrBlocked))
	assert.Equal(t, "UNKNOWN", errorCode(errors.New("boom")))
}
