package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadiamel/huroof/apps/go-server/internal/dictionary"
	"github.com/nadiamel/huroof/apps/go-server/internal/store"
)

// failingBlob simulates an unavailable blob store.
type failingBlob struct{}

func (failingBlob) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errors.New("store down")
}
func (failingBlob) Set(ctx context.Context, key, value string) error {
	return errors.New("store down")
}

func TestAddWord(t *testing.T) {
	ctx := context.Background()
	dict := dictionary.New([]string{"كتب"})
	blob := store.NewMemory()
	tc := NewTeacher(dict, blob)

	word, err := tc.AddWord(ctx, " درس ")
	require.NoError(t, err)
	assert.Equal(t, "درس", word)
	assert.True(t, dict.Contains("درس"))

	// The add is persisted immediately.
	loaded := dictionary.New(nil)
	ok, err := loaded.LoadFrom(ctx, blob)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"كتب", "درس"}, loaded.Words())
}

func TestAddWordErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "empty", input: "", want: ErrEmptyInput},
		{name: "whitespace only", input: "   ", want: ErrEmptyInput},
		{name: "too long", input: "كتاب", want: ErrInvalidFormat},
		{name: "latin letters", input: "abc", want: ErrInvalidFormat},
		{name: "duplicate", input: "كتب", want: dictionary.ErrAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dict := dictionary.New([]string{"كتب"})
			tc := NewTeacher(dict, store.NewMemory())
			_, err := tc.AddWord(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 1, dict.Len())
		})
	}
}

func TestExport(t *testing.T) {
	tc := NewTeacher(dictionary.New([]string{"كتب", "درس"}), nil)

	name, data := tc.Export()
	assert.Equal(t, "words_updated.txt", name)
	assert.Equal(t, "كتب\nدرس", string(data))
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	dict := dictionary.New([]string{"قلم"})
	blob := store.NewMemory()
	tc := NewTeacher(dict, blob)

	count := tc.Import(ctx, "ابج\nبجد\n\n")
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"ابج", "بجد"}, dict.Words())

	// The replacement is persisted.
	loaded := dictionary.New(nil)
	ok, err := loaded.LoadFrom(ctx, blob)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"ابج", "بجد"}, loaded.Words())
}

func TestPersistFailureIsNonFatal(t *testing.T) {
	ctx := context.Background()
	dict := dictionary.New(nil)
	tc := NewTeacher(dict, failingBlob{})

	// The in-memory mutation stands even though the save fails.
	word, err := tc.AddWord(ctx, "كتب")
	require.NoError(t, err)
	assert.Equal(t, "كتب", word)
	assert.True(t, dict.Contains("كتب"))

	count := tc.Import(ctx, "ابج\nبجد")
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"ابج", "بجد"}, dict.Words())
}
