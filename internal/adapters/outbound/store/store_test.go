package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/credence/internal/adapters/outbound/store"
	"github.com/abdidvp/credence/internal/domain"
)

func item(hash, title string) domain.StoredContent {
	return domain.StoredContent{
		Hash:      hash,
		Content:   "body of " + title,
		Title:     title,
		SourceURL: "https://apnews.com/" + title,
		Timestamp: "2026-03-01T12:00:00Z",
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	s := store.New(t.TempDir())

	require.NoError(t, s.Save(item("0x01", "alpha")))

	got, err := s.Get("0x01")
	require.NoError(t, err)
	assert.Equal(t, "alpha", got.Title)
	assert.Equal(t, "https://apnews.com/alpha", got.SourceURL)
}

func TestStore_GetUnknown(t *testing.T) {
	s := store.New(t.TempDir())

	_, err := s.Get("0xdead")
	assert.ErrorIs(t, err, domain.ErrContentNotFound)
}

func TestStore_SaveReplacesSameHash(t *testing.T) {
	s := store.New(t.TempDir())

	require.NoError(t, s.Save(item("0x01", "alpha")))
	require.NoError(t, s.Save(item("0x01", "alpha-v2")))
	require.NoError(t, s.Save(item("0x02", "beta")))

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalItems)

	got, err := s.Get("0x01")
	require.NoError(t, err)
	assert.Equal(t, "alpha-v2", got.Title)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, store.New(dir).Save(item("0x03", "gamma")))

	got, err := store.New(dir).Get("0x03")
	require.NoError(t, err)
	assert.Equal(t, "gamma", got.Title)
}

func TestStore_StatsEmpty(t *testing.T) {
	dir := t.TempDir()
	stats, err := store.New(dir).Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalItems)
	assert.Empty(t, stats.LastModified)
	assert.Equal(t, filepath.Join(dir, "content", "content.json"), stats.StoragePath)
}

func TestStore_SaveCreatesDirectory(t *testing.T) {
	dir := t.TempDir()
	contentDir := filepath.Join(dir, "content")
	_, err := os.Stat(contentDir)
	require.True(t, os.IsNotExist(err), "content directory should not exist before save")

	s := store.New(dir)
	require.NoError(t, s.Save(item("0x04", "delta")))

	info, err := os.Stat(contentDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.NotEmpty(t, stats.LastModified)
}

func TestStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "content"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "content", "content.json"), []byte("not json"), 0644))

	_, err := store.New(dir).Get("0x01")
	assert.Error(t, err)
}
