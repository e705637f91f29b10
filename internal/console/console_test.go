package console_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keziahdorothy14/flashsprint/internal/console"
	"github.com/keziahdorothy14/flashsprint/internal/deck"
	"github.com/keziahdorothy14/flashsprint/internal/deckfile"
)

// run feeds a scripted session to the console and returns everything
// it printed. Colors are off so output is byte-stable.
func run(t *testing.T, d *deck.Deck, deckPath string, lines ...string) (string, *console.Console) {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	c := console.New(d, nil, deckPath, in, &out, false)
	require.NoError(t, c.Run(context.Background()))
	return out.String(), c
}

func TestAddListSearchDelete(t *testing.T) {
	out, _ := run(t, deck.New(), "cards.deck",
		"5", // list while empty
		"2", "What is Go?", "A language", "go, LANG",
		"5",
		"4", "GO",
		"3", "1",
		"5",
		"9",
	)

	assert.Contains(t, out, "No cards.")
	assert.Contains(t, out, "Added card ID 1")
	assert.Contains(t, out, "ID 1: Q: What is Go? | tags: go lang | interval=1 due_in=0")
	assert.Contains(t, out, "Cards with tag 'go':")
	assert.Contains(t, out, "Deleted card #1")
	assert.Contains(t, out, "Goodbye.")
}

func TestAddEmptyQuestionCancelled(t *testing.T) {
	d := deck.New()
	out, _ := run(t, d, "cards.deck",
		"2", "   ",
		"9",
	)

	assert.Contains(t, out, "Empty question - cancelled.")
	assert.Equal(t, 0, d.Len())
}

func TestDeleteUnknownCard(t *testing.T) {
	out, _ := run(t, deck.New(), "cards.deck",
		"3", "42",
		"9",
	)

	assert.Contains(t, out, "No card with ID 42")
}

func TestSearchNoMatches(t *testing.T) {
	out, _ := run(t, deck.New(), "cards.deck",
		"4", "Missing ",
		"9",
	)

	assert.Contains(t, out, "No cards found for tag 'missing'")
}

func TestPracticeGradeAndStop(t *testing.T) {
	d := deck.New()
	card, err := d.Add("What is Go?", "A language", []string{"go"})
	require.NoError(t, err)

	out, _ := run(t, d, "cards.deck",
		"1",
		"",  // reveal answer
		"y", // correct
		"q", // stop at the next presentation
		"9",
	)

	assert.Contains(t, out, "Card #1")
	assert.Contains(t, out, "Q: What is Go?")
	assert.Contains(t, out, "A: A language")
	assert.Contains(t, out, "Nice! Interval now 2 rotations.")
	assert.Contains(t, out, "Exiting practice.")
	assert.Equal(t, 2, card.Interval)
	assert.Equal(t, 1, d.Queue().Len(), "stopped card goes back to the queue")
}

func TestPracticeIncorrectResets(t *testing.T) {
	d := deck.New()
	card, err := d.Add("q", "a", nil)
	require.NoError(t, err)
	card.Interval = 8

	out, _ := run(t, d, "cards.deck",
		"1",
		"", "n",
		"q",
		"9",
	)

	assert.Contains(t, out, "Keep practicing - interval reset to 1.")
	assert.Equal(t, 1, card.Interval)
	assert.Equal(t, 1, card.DueIn)
}

func TestPracticeEmptyQueue(t *testing.T) {
	out, _ := run(t, deck.New(), "cards.deck",
		"1",
		"9",
	)

	assert.Contains(t, out, "No cards in the queue. Add some first.")
}

func TestSaveAndLoadSwapsDeck(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cards.deck")

	src := deck.New()
	_, err := src.Add("saved card", "yes", []string{"keep"})
	require.NoError(t, err)
	require.NoError(t, deckfile.Save(path, src.List()))

	d := deck.New()
	_, err = d.Add("about to be replaced", "", nil)
	require.NoError(t, err)

	out, c := run(t, d, path,
		"7", "", // load from default path
		"5",
		"9",
	)

	assert.Contains(t, out, "Loaded "+path)
	assert.Contains(t, out, "saved card")
	assert.NotContains(t, out, "about to be replaced")
	assert.Equal(t, 1, c.Deck().Len())
}

func TestLoadBadPathKeepsCurrentDeck(t *testing.T) {
	d := deck.New()
	_, err := d.Add("survivor", "", nil)
	require.NoError(t, err)

	out, c := run(t, d, filepath.Join(t.TempDir(), "missing.deck"),
		"7", "",
		"9",
	)

	assert.Contains(t, out, "Load failed")
	assert.Same(t, d, c.Deck())
	assert.Equal(t, 1, c.Deck().Len())
}

func TestStatsDisabledWithoutHistory(t *testing.T) {
	out, _ := run(t, deck.New(), "cards.deck",
		"8",
		"9",
	)

	assert.Contains(t, out, "Review history is disabled.")
}

func TestUnknownOption(t *testing.T) {
	out, _ := run(t, deck.New(), "cards.deck",
		"banana",
		"9",
	)

	assert.Contains(t, out, "Unknown option.")
}
