// internal/dictionary/dictionary.go
//
// The dictionary: the ordered list of words the quiz accepts as correct.
//
// Responsibilities:
//   - Exact-match membership tests (case-sensitive, no normalization).
//   - Append-style additions with duplicate rejection.
//   - Bulk replacement from imported text.
//   - Serialization: newline-joined text for export/import, JSON string
//     array for the persisted blob (same layout the browser build keeps
//     in localStorage under "arabicDictionary").
//
// Constraints:
//   - Order is insertion/load order and is preserved through every
//     serialization round-trip.
//   - Format validation is the caller's job (see wordcheck); loaded and
//     imported words are stored verbatim apart from whitespace trimming.
//   - Membership, export, and persistence all read the same in-memory
//     sequence, so a mutation is visible everywhere before the next call.
//   - One Dictionary is shared by every HTTP handler, so access is guarded
//     by an RWMutex (concurrent reads allowed, writes exclusive).

package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/nadiamel/huroof/apps/go-server/internal/store"
)

// StorageKey is the blob-store key the dictionary persists under.
// Kept identical to the browser build's localStorage key.
const StorageKey = "arabicDictionary"

// ErrAlreadyExists is returned by Add when the word is already present.
var ErrAlreadyExists = errors.New("word already exists")

// Dictionary holds the ordered word list for one server instance.
type Dictionary struct {
	mu    sync.RWMutex // guards words
	words []string
}

// New constructs a Dictionary seeded with the given words, stored verbatim.
func New(words []string) *Dictionary {
	return &Dictionary{words: append([]string{}, words...)}
}

// Contains reports whether word is present, by exact string match.
func (d *Dictionary) Contains(word string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.contains(word)
}

// contains is the lock-free membership scan; callers hold d.mu.
func (d *Dictionary) contains(word string) bool {
	for _, w := range d.words {
		if w == word {
			return true
		}
	}
	return false
}

// Add appends word to the list.
// Returns ErrAlreadyExists (and leaves the list unchanged) on duplicates.
// Format is not checked here; callers run wordcheck first where required.
func (d *Dictionary) Add(word string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.contains(word) {
		return ErrAlreadyExists
	}
	d.words = append(d.words, word)
	return nil
}

// ReplaceAll discards the current contents and stores the given sequence,
// trimming surrounding whitespace from each entry and dropping empties.
func (d *Dictionary) ReplaceAll(words []string) {
	next := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		next = append(next, w)
	}
	d.mu.Lock()
	d.words = next
	d.mu.Unlock()
}

// Words returns a copy of the current word list in order.
func (d *Dictionary) Words() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]string{}, d.words...)
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}

// ToText serializes the list as newline-joined plain text, no trailing
// newline. This is the export format (one word per line).
func (d *Dictionary) ToText() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return strings.Join(d.words, "\n")
}

// ParseText splits text on newlines, trims each line, and drops empties.
// Inverse of ToText, except trailing blank lines in the source are lost.
func ParseText(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		w := strings.TrimSpace(line)
		if w == "" {
			continue
		}
		out = append(out, w)
	}
	return out
}

// SaveTo writes the list to the blob store as a JSON string array.
// The snapshot is taken under the read lock; the store write is not.
func (d *Dictionary) SaveTo(ctx context.Context, blob store.Blob) error {
	data, err := json.Marshal(d.Words())
	if err != nil {
		return fmt.Errorf("encode dictionary: %w", err)
	}
	if err := blob.Set(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("persist dictionary: %w", err)
	}
	return nil
}

// LoadFrom reads a persisted JSON string array and replaces the contents.
// Returns (false, nil) when no blob has been written yet.
func (d *Dictionary) LoadFrom(ctx context.Context, blob store.Blob) (bool, error) {
	raw, ok, err := blob.Get(ctx, StorageKey)
	if err != nil {
		return false, fmt.Errorf("read dictionary blob: %w", err)
	}
	if !ok {
		return false, nil
	}
	var words []string
	if err := json.Unmarshal([]byte(raw), &words); err != nil {
		return false, fmt.Errorf("decode dictionary blob: %w", err)
	}
	d.ReplaceAll(words)
	return true, nil
}
