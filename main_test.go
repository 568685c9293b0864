package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadiamel/huroof/apps/go-server/internal/dictionary"
	"github.com/nadiamel/huroof/apps/go-server/internal/store"
)

func TestLoadDictionaryFallbackChain(t *testing.T) {
	ctx := context.Background()

	t.Run("embedded defaults when nothing else exists", func(t *testing.T) {
		t.Setenv("WORDS_FILE", "")
		dict, src, err := loadDictionary(ctx, store.NewMemory())
		require.NoError(t, err)
		assert.Equal(t, "embedded", src)
		assert.Greater(t, dict.Len(), 0)
		assert.True(t, dict.Contains("كتب"))
	})

	t.Run("words file wins over embedded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "words.txt")
		require.NoError(t, os.WriteFile(path, []byte("ابج\nبجد\n\n"), 0o644))
		t.Setenv("WORDS_FILE", path)

		dict, src, err := loadDictionary(ctx, store.NewMemory())
		require.NoError(t, err)
		assert.Equal(t, "file", src)
		assert.Equal(t, []string{"ابج", "بجد"}, dict.Words())
	})

	t.Run("unreadable words file falls back to embedded", func(t *testing.T) {
		t.Setenv("WORDS_FILE", filepath.Join(t.TempDir(), "missing.txt"))

		dict, src, err := loadDictionary(ctx, store.NewMemory())
		require.NoError(t, err)
		assert.Equal(t, "embedded", src)
		assert.Greater(t, dict.Len(), 0)
	})

	t.Run("persisted blob wins over everything", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "words.txt")
		require.NoError(t, os.WriteFile(path, []byte("ابج"), 0o644))
		t.Setenv("WORDS_FILE", path)

		blob := store.NewMemory()
		persisted := dictionary.New([]string{"قلم", "باب"})
		require.NoError(t, persisted.SaveTo(ctx, blob))

		dict, src, err := loadDictionary(ctx, blob)
		require.NoError(t, err)
		assert.Equal(t, "persisted", src)
		assert.Equal(t, []string{"قلم", "باب"}, dict.Words())
	})
}
