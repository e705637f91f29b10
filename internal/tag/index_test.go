package tag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keziahdorothy14/flashsprint/internal/models"
	"github.com/keziahdorothy14/flashsprint/internal/tag"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "already normalized", input: "queue", expected: "queue"},
		{name: "mixed case", input: "Queue", expected: "queue"},
		{name: "surrounding whitespace", input: "  QUEUE \t", expected: "queue"},
		{name: "only whitespace", input: "   ", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tag.Normalize(tt.input))
		})
	}
}

func TestRegisterAndLookup(t *testing.T) {
	ix := tag.NewIndex()
	a := &models.Card{ID: 1, Question: "a"}
	b := &models.Card{ID: 2, Question: "b"}

	ix.Register("queue", a)
	ix.Register("Queue", b)

	cards := ix.Lookup(" QUEUE ")
	require.Len(t, cards, 2, "lookup should be case and whitespace insensitive")
	assert.Equal(t, 1, cards[0].ID)
	assert.Equal(t, 2, cards[1].ID)
}

func TestRegisterDuplicateCollapses(t *testing.T) {
	ix := tag.NewIndex()
	a := &models.Card{ID: 1}

	ix.Register("ds", a)
	ix.Register("ds", a)

	assert.Len(t, ix.Lookup("ds"), 1, "double registration must not duplicate membership")
}

func TestRegisterEmptyTagIgnored(t *testing.T) {
	ix := tag.NewIndex()
	ix.Register("   ", &models.Card{ID: 1})
	assert.Equal(t, 0, ix.Len())
}

func TestUnregisterRemovesEmptyBucket(t *testing.T) {
	ix := tag.NewIndex()
	a := &models.Card{ID: 1}
	b := &models.Card{ID: 2}
	ix.Register("queue", a)
	ix.Register("queue", b)

	ix.Unregister("queue", a)
	require.Len(t, ix.Lookup("queue"), 1)
	assert.Equal(t, []string{"queue"}, ix.Tags())

	ix.Unregister("queue", b)
	assert.Empty(t, ix.Lookup("queue"))
	assert.Empty(t, ix.Tags(), "empty bucket must not persist")
}

func TestUnregisterUnknownTagIsNoop(t *testing.T) {
	ix := tag.NewIndex()
	ix.Unregister("missing", &models.Card{ID: 1})
	assert.Equal(t, 0, ix.Len())
}

func TestTagsSorted(t *testing.T) {
	ix := tag.NewIndex()
	c := &models.Card{ID: 1}
	ix.Register("srs", c)
	ix.Register("ds", c)
	ix.Register("queue", c)

	assert.Equal(t, []string{"ds", "queue", "srs"}, ix.Tags())
}
