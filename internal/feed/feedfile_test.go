package feed

import (
	"context"
	"io"
	"log/slog"
	"newsfeed/internal/config"
	"newsfeed/internal/domain"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "news_feed.txt")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewFileStore(config.AppConfig{FeedFile: path}, logger)
}

func TestFileStore_Add_CreatesFile(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)

	err := store.Add(context.Background(), domain.NewNewsAt("Hello", "Paris", now))

	require.NoError(t, err)
	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "News -------------------------\nHello\nParis, 2024-05-10 14:30\n\n", string(data))
}

func TestFileStore_Add_AppendsInOrder(t *testing.T) {
	store := newTestStore(t)
	now := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	first := domain.NewNewsAt("First", "Paris", now)
	second := domain.NewWeatherReportAt("Oslo", "-4", now)

	require.NoError(t, store.Add(context.Background(), first))
	require.NoError(t, store.Add(context.Background(), second))

	content, err := store.Content(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.Format()+"\n"+second.Format()+"\n", content)
}

func TestFileStore_Content_MissingFile(t *testing.T) {
	store := newTestStore(t)

	content, err := store.Content(context.Background())

	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestFileStore_Add_ContextCancelled(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.Add(ctx, domain.NewNews("Hello", "Paris"))

	assert.Error(t, err)
	_, statErr := os.Stat(store.Path())
	assert.True(t, os.IsNotExist(statErr))
}
