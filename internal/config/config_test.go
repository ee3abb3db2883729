package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuwanhe/smartsl/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ReadsValues(t *testing.T) {
	path := writeConfig(t, `
defaults:
  grade: Grade 11
  subject: History
  language: si
genai:
  model: my-model
  voice: Puck
log_level: debug
db_path: /tmp/tasks.db
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.Grade("Grade 11"), cfg.Defaults.Grade)
	assert.Equal(t, domain.Subject("History"), cfg.Defaults.Subject)
	assert.Equal(t, domain.LangSinhala, cfg.Defaults.Language)
	assert.Equal(t, "my-model", cfg.GenAI.Model)
	assert.Equal(t, "Puck", cfg.GenAI.Voice)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/tasks.db", cfg.DBPath)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, "defaults: [not a map")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_UnknownEnumFallsBack(t *testing.T) {
	path := writeConfig(t, `
defaults:
  grade: Grade 99
  subject: Alchemy
  language: fr
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	def := Default()
	assert.Equal(t, def.Defaults.Grade, cfg.Defaults.Grade)
	assert.Equal(t, def.Defaults.Subject, cfg.Defaults.Subject)
	assert.Equal(t, def.Defaults.Language, cfg.Defaults.Language)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "db_path: /data/smartsl.db\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/smartsl.db", cfg.DBPath)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, Default().Defaults, cfg.Defaults)
}
