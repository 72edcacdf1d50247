package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"exam_backend/internal/config"
	"exam_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageProvider(t *testing.T) {
	cfg := &config.StorageConfig{Type: util.StorageLocal, LocalPath: t.TempDir(), PublicBaseURL: "http://localhost:8080/"}
	svc := NewStorageService(cfg)
	ctx := context.Background()

	exists, err := svc.Exists(ctx, "quiz_1.docx")
	require.NoError(t, err)
	assert.False(t, exists)

	url, err := svc.Upload(ctx, "quiz_1.docx", strings.NewReader("v1"), 2, "application/octet-stream")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/quiz_1.docx", url)

	exists, err = svc.Exists(ctx, "quiz_1.docx")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, url, svc.GetURL("quiz_1.docx"))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestLocalStorageFailedUploadLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	svc := NewStorageService(&config.StorageConfig{Type: util.StorageLocal, LocalPath: dir})
	ctx := context.Background()

	_, err := svc.Upload(ctx, "quiz_2.docx", failingReader{}, 10, "application/octet-stream")
	require.Error(t, err)

	exists, err := svc.Exists(ctx, "quiz_2.docx")
	require.NoError(t, err)
	assert.False(t, exists)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStorageOverwrite(t *testing.T) {
	dir := t.TempDir()
	svc := NewStorageService(&config.StorageConfig{Type: util.StorageLocal, LocalPath: dir})
	ctx := context.Background()

	_, err := svc.Upload(ctx, "quiz_3.docx", strings.NewReader("first"), 5, "application/octet-stream")
	require.NoError(t, err)
	_, err = svc.Upload(ctx, "quiz_3.docx", strings.NewReader("second"), 6, "application/octet-stream")
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "quiz_3.docx"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestNewStorageServiceFallsBackToLocal(t *testing.T) {
	svc := NewStorageService(&config.StorageConfig{Type: util.StorageMinio, LocalPath: t.TempDir()})
	_, ok := svc.Provider.(*LocalStorageProvider)
	assert.True(t, ok)
}
