// internal/session/game.go
//
// Game session for the vocabulary quiz.
// Responsibilities:
//   - Create sessions with their own score tracker and a compact hex ID.
//   - Validate and check typed words against the shared dictionary.
//   - Produce a plain-data Result (outcome + message + score) for the
//     HTTP adapter to render; the core never touches the transport.
//
// Notes:
//   - Format enforcement on the check flow is a per-session option
//     (EnforceFormat). The two shipped clients disagreed on this, so the
//     behavior is explicit configuration rather than a baked-in default.
//   - Encouragement phrases are picked uniformly at random; reproducibility
//     is not a property the quiz needs.

package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/nadiamel/huroof/apps/go-server/internal/dictionary"
	"github.com/nadiamel/huroof/apps/go-server/internal/score"
	"github.com/nadiamel/huroof/apps/go-server/internal/wordcheck"
)

// Outcome classifies the result of a single word check.
// Possible values:
//   - "empty":          input was empty after trimming.
//   - "invalid_format": input failed format validation (enforcing sessions only).
//   - "correct":        word found in the dictionary; score incremented.
//   - "incorrect":      word not found; score unchanged.
type Outcome string

const (
	OutcomeEmpty         Outcome = "empty"
	OutcomeInvalidFormat Outcome = "invalid_format"
	OutcomeCorrect       Outcome = "correct"
	OutcomeIncorrect     Outcome = "incorrect"
)

// Result is what a word check hands back to the adapter layer.
type Result struct {
	Outcome Outcome `json:"outcome"`
	Message string  `json:"message"`
	Score   int     `json:"score"`
}

// encouragements is the fixed ordered list a correct answer's phrase is
// drawn from. Matches the browser build's list.
var encouragements = []string{
	"أحسنت!",
	"ممتاز!",
	"رائع!",
	"عمل جيد!",
	"واصل التقدم!",
}

// Game holds the state of one player session.
// Checks on the same session may arrive concurrently (double-submitted
// requests), so the score tracker is guarded by a mutex.
type Game struct {
	ID            string
	EnforceFormat bool

	mu      sync.Mutex // guards tracker
	dict    *dictionary.Dictionary
	tracker *score.Tracker
}

// NewGame constructs a session over the shared dictionary with a fresh score.
func NewGame(dict *dictionary.Dictionary, enforceFormat bool) *Game {
	return &Game{
		ID:            randomID(),
		EnforceFormat: enforceFormat,
		dict:          dict,
		tracker:       score.New(),
	}
}

// Score returns the session's running score.
func (g *Game) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tracker.Current()
}

// CheckWord validates and checks one typed word, updating the score.
//
// Flow:
//   - Trim; empty input short-circuits with OutcomeEmpty.
//   - If EnforceFormat, reject words failing wordcheck.IsValidFormat.
//   - Membership hit → OutcomeCorrect, score +1, random encouragement.
//   - Miss → OutcomeIncorrect, score unchanged.
func (g *Game) CheckWord(raw string) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	word := strings.TrimSpace(raw)
	if word == "" {
		return Result{
			Outcome: OutcomeEmpty,
			Message: "الرجاء إدخال كلمة",
			Score:   g.tracker.Current(),
		}
	}
	if g.EnforceFormat && !wordcheck.IsValidFormat(word) {
		return Result{
			Outcome: OutcomeInvalidFormat,
			Message: "يجب إدخال كلمة من ثلاثة أحرف عربية",
			Score:   g.tracker.Current(),
		}
	}
	if g.dict.Contains(word) {
		g.tracker.Add(1)
		return Result{
			Outcome: OutcomeCorrect,
			Message: fmt.Sprintf("%s الكلمة %q صحيحة", randomEncouragement(), word),
			Score:   g.tracker.Current(),
		}
	}
	return Result{
		Outcome: OutcomeIncorrect,
		Message: fmt.Sprintf("الكلمة %q غير موجودة في القاموس", word),
		Score:   g.tracker.Current(),
	}
}

// randomEncouragement returns a uniform pick from the encouragements list.
func randomEncouragement() string {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(encouragements))))
	return encouragements[nBig.Int64()]
}

// randomID returns a compact 16-hex-char session identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
