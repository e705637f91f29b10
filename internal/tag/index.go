// Package tag maintains the tag index: a mapping from normalized tag
// strings to the set of cards bearing them. The index holds references
// only; cards are owned by the store.
package tag

import (
	"sort"
	"strings"

	"github.com/keziahdorothy14/flashsprint/internal/models"
)

// Normalize trims surrounding whitespace and lower-cases a tag. Lookups
// and registrations both go through it, so queries are case and
// whitespace insensitive.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Index maps a normalized tag to the cards that carry it.
type Index struct {
	buckets map[string]map[int]*models.Card
}

// NewIndex creates an empty tag index.
func NewIndex() *Index {
	return &Index{buckets: make(map[string]map[int]*models.Card)}
}

// Register adds card to the bucket for tag, creating the bucket if
// absent. Tags that normalize to empty are ignored; the caller is
// expected to have filtered them already.
func (ix *Index) Register(tag string, card *models.Card) {
	t := Normalize(tag)
	if t == "" {
		return
	}
	bucket, ok := ix.buckets[t]
	if !ok {
		bucket = make(map[int]*models.Card)
		ix.buckets[t] = bucket
	}
	bucket[card.ID] = card
}

// Unregister removes card from the bucket for tag. A bucket left empty
// is deleted so no dangling entries survive.
func (ix *Index) Unregister(tag string, card *models.Card) {
	t := Normalize(tag)
	bucket, ok := ix.buckets[t]
	if !ok {
		return
	}
	delete(bucket, card.ID)
	if len(bucket) == 0 {
		delete(ix.buckets, t)
	}
}

// Lookup returns the cards carrying tag, sorted by id. The result is a
// fresh slice; it may be empty but never nil.
func (ix *Index) Lookup(tag string) []*models.Card {
	cards := []*models.Card{}
	for _, c := range ix.buckets[Normalize(tag)] {
		cards = append(cards, c)
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })
	return cards
}

// Tags returns all tags that currently have at least one card, sorted.
func (ix *Index) Tags() []string {
	tags := make([]string, 0, len(ix.buckets))
	for t := range ix.buckets {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Len returns the number of distinct tags in the index.
func (ix *Index) Len() int {
	return len(ix.buckets)
}
