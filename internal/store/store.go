// Package store implements the card store: the authoritative owner of
// all cards. It assigns identity and keeps the tag index in sync with
// every create and delete.
package store

import (
	"strings"

	"github.com/keziahdorothy14/flashsprint/internal/errors"
	"github.com/keziahdorothy14/flashsprint/internal/models"
	"github.com/keziahdorothy14/flashsprint/internal/tag"
)

// Store owns the card set. Ids are sequential, start at 1, and are
// never reused, even after deletion.
type Store struct {
	cards  []*models.Card
	byID   map[int]*models.Card
	tags   *tag.Index
	nextID int
}

// New creates an empty store with a fresh tag index.
func New() *Store {
	return &Store{
		byID:   make(map[int]*models.Card),
		tags:   tag.NewIndex(),
		nextID: 1,
	}
}

// Create validates and stores a new card. The question must be
// non-empty after trimming; the answer may be empty. Tags are
// normalized, with empty ones silently dropped. The new card starts
// with interval 1, due immediately. Create does not enqueue: the
// caller decides when the card enters the review queue, so bulk loads
// can defer ordering.
func (s *Store) Create(question, answer string, tags []string) (*models.Card, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, errors.NewInvalidInputError("question", "cannot be empty")
	}

	card := &models.Card{
		ID:       s.nextID,
		Question: question,
		Answer:   answer,
		Tags:     normalizeTags(tags),
		Interval: 1,
		DueIn:    0,
	}
	s.nextID++
	s.commit(card)
	return card, nil
}

// Restore commits a card with caller-supplied id and scheduling state.
// It is the persistence loader's entry point: saved ids survive a
// round trip, and the id counter is advanced past every restored id so
// later creates stay unique. Interval and due_in are clamped to their
// invariant floors.
func (s *Store) Restore(id int, question, answer string, tags []string, interval, dueIn int) (*models.Card, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, errors.NewInvalidInputError("question", "cannot be empty")
	}
	if id <= 0 {
		return nil, errors.NewInvalidInputError("id", "must be positive")
	}
	if _, exists := s.byID[id]; exists {
		return nil, errors.NewInvalidInputError("id", "already in use")
	}
	if interval < 1 {
		interval = 1
	}
	if dueIn < 0 {
		dueIn = 0
	}

	card := &models.Card{
		ID:       id,
		Question: question,
		Answer:   answer,
		Tags:     normalizeTags(tags),
		Interval: interval,
		DueIn:    dueIn,
	}
	if id >= s.nextID {
		s.nextID = id + 1
	}
	s.commit(card)
	return card, nil
}

func (s *Store) commit(card *models.Card) {
	s.cards = append(s.cards, card)
	s.byID[card.ID] = card
	for _, t := range card.Tags {
		s.tags.Register(t, card)
	}
}

// Delete removes the card with the given id from the store and from
// the tag index, and returns it so the caller can excise it from the
// review queue as well.
func (s *Store) Delete(id int) (*models.Card, error) {
	card, ok := s.byID[id]
	if !ok {
		return nil, errors.NewNotFoundError("card", id)
	}
	for _, t := range card.Tags {
		s.tags.Unregister(t, card)
	}
	delete(s.byID, id)
	for i, c := range s.cards {
		if c == card {
			s.cards = append(s.cards[:i], s.cards[i+1:]...)
			break
		}
	}
	return card, nil
}

// FindByID returns the card with the given id, or false.
func (s *Store) FindByID(id int) (*models.Card, bool) {
	card, ok := s.byID[id]
	return card, ok
}

// Cards returns a snapshot of all cards, most recently created first.
func (s *Store) Cards() []*models.Card {
	out := make([]*models.Card, len(s.cards))
	for i, c := range s.cards {
		out[len(s.cards)-1-i] = c
	}
	return out
}

// Lookup returns the cards carrying the given tag (normalized before
// the lookup), sorted by id.
func (s *Store) Lookup(t string) []*models.Card {
	return s.tags.Lookup(t)
}

// Tags returns every tag that currently has at least one card.
func (s *Store) Tags() []string {
	return s.tags.Tags()
}

// Len returns the number of cards in the store.
func (s *Store) Len() int {
	return len(s.cards)
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if n := tag.Normalize(t); n != "" {
			out = append(out, n)
		}
	}
	return out
}
