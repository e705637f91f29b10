// Package deck ties the card store and the review queue together into
// one owned context object. Every mutation that must hold across both
// structures goes through it, so the store and the queue always hold
// exactly the same cards.
package deck

import (
	"github.com/keziahdorothy14/flashsprint/internal/models"
	"github.com/keziahdorothy14/flashsprint/internal/queue"
	"github.com/keziahdorothy14/flashsprint/internal/store"
)

// Deck composes the card store (which owns the tag index) and the
// review queue. No process-wide state: independent decks are fully
// isolated.
type Deck struct {
	store *store.Store
	queue *queue.ReviewQueue
}

// New creates an empty deck.
func New() *Deck {
	return &Deck{store: store.New(), queue: queue.New()}
}

// Add creates a card and enqueues it due immediately.
func (d *Deck) Add(question, answer string, tags []string) (*models.Card, error) {
	card, err := d.store.Create(question, answer, tags)
	if err != nil {
		return nil, err
	}
	d.queue.PushBack(card)
	return card, nil
}

// Restore commits a loaded card with its saved id and scheduling state
// and appends it to the queue in load order.
func (d *Deck) Restore(id int, question, answer string, tags []string, interval, dueIn int) (*models.Card, error) {
	card, err := d.store.Restore(id, question, answer, tags, interval, dueIn)
	if err != nil {
		return nil, err
	}
	d.queue.PushBack(card)
	return card, nil
}

// Remove deletes the card with the given id from the store, the tag
// index, and the review queue.
func (d *Deck) Remove(id int) error {
	card, err := d.store.Delete(id)
	if err != nil {
		return err
	}
	d.queue.Remove(card)
	return nil
}

// FindByID returns the card with the given id, or false.
func (d *Deck) FindByID(id int) (*models.Card, bool) {
	return d.store.FindByID(id)
}

// List returns a snapshot of all cards, most recently created first.
func (d *Deck) List() []*models.Card {
	return d.store.Cards()
}

// SearchTag returns the cards carrying the given tag.
func (d *Deck) SearchTag(tag string) []*models.Card {
	return d.store.Lookup(tag)
}

// Tags returns every tag with at least one card.
func (d *Deck) Tags() []string {
	return d.store.Tags()
}

// Len returns the number of cards in the deck.
func (d *Deck) Len() int {
	return d.store.Len()
}

// Queue exposes the review queue for the scheduler.
func (d *Deck) Queue() *queue.ReviewQueue {
	return d.queue
}
