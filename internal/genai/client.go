package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// GenerateRequest holds the parameters for a structured generation call.
type GenerateRequest struct {
	Task   TaskType
	Prompt string

	// ResponseSchema constrains the model to a JSON shape. When set, the
	// request asks for an application/json response matching the schema.
	ResponseSchema json.RawMessage

	Temperature *float64 // nil uses task default
	MaxTokens   *int     // nil uses task default
}

// GenerateResponse holds the result of a structured generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// SpeechRequest holds the parameters for a speech synthesis call.
type SpeechRequest struct {
	Text  string
	Voice string // empty uses the configured voice
}

// SpeechResponse holds decoded audio from a speech synthesis call.
// Audio is raw 16-bit little-endian PCM at 24 kHz mono. A response with
// no audio payload has a nil Audio and is not an error.
type SpeechResponse struct {
	Audio     []byte
	LatencyMs int64
}

// Client provides access to the hosted generative service. It is an opaque
// boundary: one call, one response, no caching and no automatic retries.
type Client interface {
	// GenerateContent sends a prompt and returns the raw text response.
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// GenerateSpeech synthesizes speech for the given text.
	GenerateSpeech(ctx context.Context, req SpeechRequest) (*SpeechResponse, error)
}

// geminiClient implements Client using the Gemini REST API.
type geminiClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewGeminiClient creates a Client that talks to the Gemini API.
func NewGeminiClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &geminiClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 10 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// Wire types for POST /v1beta/models/{model}:generateContent.

type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

type generationConfig struct {
	Temperature        float64         `json:"temperature,omitempty"`
	MaxOutputTokens    int             `json:"maxOutputTokens,omitempty"`
	ResponseMimeType   string          `json:"responseMimeType,omitempty"`
	ResponseSchema     json.RawMessage `json:"responseSchema,omitempty"`
	ResponseModalities []string        `json:"responseModalities,omitempty"`
	SpeechConfig       *speechConfig   `json:"speechConfig,omitempty"`
}

type speechConfig struct {
	VoiceConfig voiceConfig `json:"voiceConfig"`
}

type voiceConfig struct {
	PrebuiltVoiceConfig prebuiltVoiceConfig `json:"prebuiltVoiceConfig"`
}

type prebuiltVoiceConfig struct {
	VoiceName string `json:"voiceName"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

func (c *geminiClient) GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := c.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	body := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: req.Prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     temp,
			MaxOutputTokens: maxTok,
		},
	}
	if req.ResponseSchema != nil {
		body.GenerationConfig.ResponseMimeType = "application/json"
		body.GenerationConfig.ResponseSchema = req.ResponseSchema
	}

	resp, err := c.call(ctx, req.Task, c.cfg.Model, body)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		c.observe(req.Task, c.cfg.Model, latency, err)
		return nil, err
	}

	text := firstText(resp)
	if text == "" {
		err := fmt.Errorf("%w: response has no text part", ErrInvalidOutput)
		c.observe(req.Task, c.cfg.Model, latency, err)
		return nil, err
	}

	c.observe(req.Task, c.cfg.Model, latency, nil)
	return &GenerateResponse{Text: text, Model: c.cfg.Model, LatencyMs: latency}, nil
}

func (c *geminiClient) GenerateSpeech(ctx context.Context, req SpeechRequest) (*SpeechResponse, error) {
	start := time.Now()

	voice := req.Voice
	if voice == "" {
		voice = c.cfg.Voice
	}

	body := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: req.Text}}}},
		GenerationConfig: generationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &speechConfig{
				VoiceConfig: voiceConfig{
					PrebuiltVoiceConfig: prebuiltVoiceConfig{VoiceName: voice},
				},
			},
		},
	}

	resp, err := c.call(ctx, TaskSpeech, c.cfg.SpeechModel, body)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		c.observe(TaskSpeech, c.cfg.SpeechModel, latency, err)
		return nil, err
	}

	c.observe(TaskSpeech, c.cfg.SpeechModel, latency, nil)

	data := firstInlineData(resp)
	if data == "" {
		// No audio payload is a silent no-op for callers.
		return &SpeechResponse{LatencyMs: latency}, nil
	}
	audio, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding audio payload: %v", ErrInvalidOutput, err)
	}
	return &SpeechResponse{Audio: audio, LatencyMs: latency}, nil
}

func (c *geminiClient) call(ctx context.Context, task TaskType, model string, body geminiRequest) (*geminiResponse, error) {
	if c.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	timeoutMs := c.cfg.TaskTimeout(task)
	ctx, cancel := context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.cfg.Endpoint, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.cfg.APIKey)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		if isConnectionError(err) {
			return nil, ErrUnavailable
		}
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("service returned status %d: %s", httpResp.StatusCode, truncate(string(respBody), 200))
	}

	var resp geminiResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrInvalidOutput, err)
	}

	if resp.PromptFeedback.BlockReason != "" {
		return nil, fmt.Errorf("%w: %s", ErrBlocked, resp.PromptFeedback.BlockReason)
	}

	return &resp, nil
}

func (c *geminiClient) observe(task TaskType, model string, latencyMs int64, err error) {
	c.observer.OnCallComplete(CallEvent{
		Task:      task,
		Model:     model,
		LatencyMs: latencyMs,
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
}

// firstText returns the text of the first candidate part, if any.
func firstText(resp *geminiResponse) string {
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}
	return ""
}

// firstInlineData returns the base64 payload of the first inline-data part.
func firstInlineData(resp *geminiResponse) string {
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				return part.InlineData.Data
			}
		}
	}
	return ""
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrBlocked):
		return "BLOCKED"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	case errors.Is(err, ErrMissingAPIKey):
		return "NO_API_KEY"
	default:
		return "UNKNOWN"
	}
}
