// internal/session/teacher.go
//
// Teacher session: dictionary maintenance (add/export/import).
//
// Responsibilities:
//   - Validate and append new words (format is always enforced here,
//     unlike the check flow).
//   - Export the dictionary as downloadable plain text.
//   - Replace the dictionary wholesale from an imported word list.
//   - Persist after every successful mutation, best effort: a failed save
//     is logged and the in-memory change stands.

package session

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/nadiamel/huroof/apps/go-server/internal/dictionary"
	"github.com/nadiamel/huroof/apps/go-server/internal/store"
	"github.com/nadiamel/huroof/apps/go-server/internal/wordcheck"
)

// ExportFilename is the fixed name for dictionary downloads.
const ExportFilename = "words_updated.txt"

var (
	// ErrEmptyInput is returned when an add is blank after trimming.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidFormat is returned when an add fails format validation.
	ErrInvalidFormat = errors.New("invalid word format")
)

// Teacher maintains the shared dictionary.
type Teacher struct {
	dict *dictionary.Dictionary
	blob store.Blob
}

// NewTeacher constructs a Teacher over the shared dictionary.
// blob may be nil, in which case mutations are memory-only.
func NewTeacher(dict *dictionary.Dictionary, blob store.Blob) *Teacher {
	return &Teacher{dict: dict, blob: blob}
}

// AddWord trims, validates, and appends a word, then persists.
// Errors: ErrEmptyInput, ErrInvalidFormat, dictionary.ErrAlreadyExists.
// Returns the trimmed word that was stored.
func (t *Teacher) AddWord(ctx context.Context, raw string) (string, error) {
	word := strings.TrimSpace(raw)
	if word == "" {
		return "", ErrEmptyInput
	}
	if !wordcheck.IsValidFormat(word) {
		return "", ErrInvalidFormat
	}
	if err := t.dict.Add(word); err != nil {
		return "", err
	}
	t.persist(ctx)
	return word, nil
}

// Count returns the current dictionary size.
func (t *Teacher) Count() int { return t.dict.Len() }

// Export returns the download filename and the dictionary's text
// serialization, one word per line.
func (t *Teacher) Export() (string, []byte) {
	return ExportFilename, []byte(t.dict.ToText())
}

// Import parses contents (one word per line, blank lines dropped), replaces
// the entire dictionary, persists, and reports how many words were imported.
// Imported words are stored verbatim; format is not validated on import.
func (t *Teacher) Import(ctx context.Context, contents string) int {
	words := dictionary.ParseText(contents)
	t.dict.ReplaceAll(words)
	t.persist(ctx)
	return t.dict.Len()
}

// persist saves the dictionary, best effort. A failure must not roll back
// the in-memory mutation that triggered it; gameplay continues unpersisted.
func (t *Teacher) persist(ctx context.Context) {
	if t.blob == nil {
		return
	}
	if err := t.dict.SaveTo(ctx, t.blob); err != nil {
		log.Warn().Err(err).Msg("persist dictionary")
	}
}
