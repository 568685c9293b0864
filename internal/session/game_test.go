package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nadiamel/huroof/apps/go-server/internal/dictionary"
)

func newTestGame(enforce bool) *Game {
	return NewGame(dictionary.New([]string{"كتب", "درس"}), enforce)
}

func TestCheckWordEmpty(t *testing.T) {
	g := newTestGame(false)

	for _, input := range []string{"", "   ", "\t\n"} {
		res := g.CheckWord(input)
		assert.Equal(t, OutcomeEmpty, res.Outcome)
		assert.Equal(t, 0, res.Score)
	}
	assert.Equal(t, 0, g.Score())
}

func TestCheckWordCorrect(t *testing.T) {
	g := newTestGame(false)

	res := g.CheckWord("كتب")
	assert.Equal(t, OutcomeCorrect, res.Outcome)
	assert.Equal(t, 1, res.Score)
	assert.Contains(t, res.Message, "كتب")
	assert.Equal(t, 1, g.Score())

	// Input is trimmed before the membership test.
	res = g.CheckWord("  درس ")
	assert.Equal(t, OutcomeCorrect, res.Outcome)
	assert.Equal(t, 2, res.Score)
}

func TestCheckWordIncorrect(t *testing.T) {
	g := newTestGame(false)

	res := g.CheckWord("xyz")
	assert.Equal(t, OutcomeIncorrect, res.Outcome)
	assert.Equal(t, 0, res.Score)
	assert.Contains(t, res.Message, "xyz")
	assert.Equal(t, 0, g.Score())
}

func TestCheckWordFormatGate(t *testing.T) {
	// The lenient variant checks any dictionary entry, even ill-formed input.
	lenient := newTestGame(false)
	res := lenient.CheckWord("abcd")
	assert.Equal(t, OutcomeIncorrect, res.Outcome)

	// The strict variant rejects ill-formed input before the membership test.
	strict := newTestGame(true)
	res = strict.CheckWord("abcd")
	assert.Equal(t, OutcomeInvalidFormat, res.Outcome)
	assert.Equal(t, 0, strict.Score())

	// Well-formed words still pass through in strict mode.
	res = strict.CheckWord("كتب")
	assert.Equal(t, OutcomeCorrect, res.Outcome)
	assert.Equal(t, 1, strict.Score())
}

func TestConcurrentChecksOnOneSession(t *testing.T) {
	// Double-submitted requests can hit the same session concurrently;
	// every correct check must land on the score exactly once.
	g := newTestGame(false)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.CheckWord("كتب")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, g.Score())
}

func TestScoresAreSessionLocal(t *testing.T) {
	dict := dictionary.New([]string{"كتب"})
	a := NewGame(dict, false)
	b := NewGame(dict, false)

	a.CheckWord("كتب")
	assert.Equal(t, 1, a.Score())
	assert.Equal(t, 0, b.Score())
	assert.NotEqual(t, a.ID, b.ID)
}
