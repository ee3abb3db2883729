// Package config handles configuration loading for smartsl. Defaults come
// from an optional ~/.smartsl/config.yaml; environment variables win over
// the file everywhere.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nuwanhe/smartsl/internal/domain"
)

// Config holds the application configuration.
type Config struct {
	// Defaults pre-fill the study and quiz forms.
	Defaults Defaults `yaml:"defaults"`

	// GenAI overrides for the generative client. Only non-zero fields
	// are applied on top of the environment-derived configuration.
	GenAI GenAI `yaml:"genai"`

	// LogLevel is one of: debug, info, warn, error. Default warn.
	LogLevel string `yaml:"log_level"`

	// DBPath overrides the schedule database location.
	DBPath string `yaml:"db_path"`
}

// Defaults pre-fill selection forms with the student's usual choices.
type Defaults struct {
	Grade    domain.Grade    `yaml:"grade"`
	Subject  domain.Subject  `yaml:"subject"`
	Language domain.Language `yaml:"language"`
}

// GenAI holds generative-client overrides from the config file.
type GenAI struct {
	Endpoint    string `yaml:"endpoint"`
	Model       string `yaml:"model"`
	SpeechModel string `yaml:"speech_model"`
	Voice       string `yaml:"voice"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Defaults: Defaults{
			Grade:    domain.Grades[0],
			Subject:  domain.Subjects[0],
			Language: domain.LangEnglish,
		},
		LogLevel: "warn",
	}
}

// DefaultPath returns the default config file location,
// ~/.smartsl/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".smartsl", "config.yaml"), nil
}

// Load reads the config file at path, layered over Default(). A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg.normalized(), nil
}

// normalized fills back any defaults the file blanked out and validates
// enum fields, falling back to defaults on unknown values.
func (c Config) normalized() Config {
	def := Default()
	if !c.Defaults.Grade.IsValid() {
		c.Defaults.Grade = def.Defaults.Grade
	}
	if !c.Defaults.Subject.IsValid() {
		c.Defaults.Subject = def.Defaults.Subject
	}
	if !c.Defaults.Language.IsValid() {
		c.Defaults.Language = def.Defaults.Language
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	return c
}
