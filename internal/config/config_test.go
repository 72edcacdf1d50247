package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0644))
	return dir
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := writeConfig(t, `
server:
  mode: debug
database:
  driver: sqlite
  dsn: "file::memory:"
storage:
  type: minio
genexam:
  languages:
    en:
      base_url: https://en.example
`)
	t.Setenv("GENEXAM_AR_URL", "https://ar.example")
	t.Setenv("GENEXAM_AR_API_KEY", "ar-secret")
	t.Setenv("REDIS_ENABLED", "true")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.Redis.LinkTTL)
	assert.Equal(t, 120*time.Second, cfg.GenExam.Timeout)
	assert.Equal(t, "exam-pdfs", cfg.Storage.Bucket)

	ar, ok := cfg.GenExam.Endpoint("AR")
	require.True(t, ok)
	assert.Equal(t, "https://ar.example", ar.BaseURL)
	assert.Equal(t, "ar-secret", ar.APIKey)
}

func TestEndpointFallsBackToEnglish(t *testing.T) {
	g := GenExamConfig{Languages: map[string]GenExamLanguageConfig{
		LanguageEnglish: {BaseURL: "https://en.example"},
	}}

	ep, ok := g.Endpoint("fr")
	require.True(t, ok)
	assert.Equal(t, "https://en.example", ep.BaseURL)

	_, ok = GenExamConfig{}.Endpoint("en")
	assert.False(t, ok)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	dir := writeConfig(t, `
server:
  mode: debug
database:
  driver: oracle
storage:
  type: minio
`)
	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestReleaseModeNeedsWorkflowKey(t *testing.T) {
	dir := writeConfig(t, `
database:
  driver: sqlite
storage:
  type: minio
`)
	_, err := LoadConfig(dir)
	assert.Error(t, err)

	t.Setenv("WORKFLOW_KEY", "k")
	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "release", cfg.Server.Mode)
}
