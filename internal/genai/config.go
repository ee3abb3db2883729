package genai

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	TaskNotes  TaskType = "notes"
	TaskQuiz   TaskType = "quiz"
	TaskSpeech TaskType = "speech"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the generative subsystem.
type Config struct {
	APIKey      string
	LogCalls    bool
	Endpoint    string
	Model       string // text generation model
	SpeechModel string // TTS model
	Voice       string // prebuilt TTS voice name
	TimeoutMs   int
	Tasks       map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. The API key is
// intentionally empty; it must come from the environment.
func DefaultConfig() Config {
	return Config{
		LogCalls:    false,
		Endpoint:    "https://generativelanguage.googleapis.com",
		Model:       "gemini-3-flash-preview",
		SpeechModel: "gemini-2.5-flash-preview-tts",
		Voice:       "Kore",
		TimeoutMs:   60000,
		Tasks: map[TaskType]TaskConfig{
			TaskNotes:  {Temperature: 0.4, MaxTokens: 4096, TimeoutMs: 60000},
			TaskQuiz:   {Temperature: 0.4, MaxTokens: 4096, TimeoutMs: 60000},
			TaskSpeech: {TimeoutMs: 90000},
		},
	}
}

// LoadConfig reads generation configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("API_KEY")
	}

	if v := os.Getenv("SMARTSL_GENAI_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("SMARTSL_GENAI_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("SMARTSL_GENAI_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("SMARTSL_GENAI_SPEECH_MODEL"); v != "" {
		cfg.SpeechModel = v
	}
	if v := os.Getenv("SMARTSL_GENAI_VOICE"); v != "" {
		cfg.Voice = v
	}
	if v := os.Getenv("SMARTSL_GENAI_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskNotes, "SMARTSL_GENAI_NOTES_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskQuiz, "SMARTSL_GENAI_QUIZ_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskSpeech, "SMARTSL_GENAI_SPEECH_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
