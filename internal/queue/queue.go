// Package queue implements the review queue: a FIFO rotation structure
// holding every card exactly once. Order encodes rotation priority.
package queue

import "github.com/keziahdorothy14/flashsprint/internal/models"

// ReviewQueue is a slice-backed FIFO of card references. The zero value
// is not usable; call New.
type ReviewQueue struct {
	cards []*models.Card
	head  int
}

// New creates an empty review queue.
func New() *ReviewQueue {
	return &ReviewQueue{}
}

// PushBack appends a card at the tail of the queue.
func (q *ReviewQueue) PushBack(card *models.Card) {
	q.cards = append(q.cards, card)
}

// PopFront removes and returns the head card. The second result is
// false when the queue is empty.
func (q *ReviewQueue) PopFront() (*models.Card, bool) {
	if q.head >= len(q.cards) {
		return nil, false
	}
	card := q.cards[q.head]
	q.cards[q.head] = nil
	q.head++
	// Reclaim the consumed prefix once it dominates the backing slice.
	if q.head > len(q.cards)/2 && q.head > 32 {
		q.cards = append(q.cards[:0], q.cards[q.head:]...)
		q.head = 0
	}
	return card, true
}

// Remove excises the first occurrence of card, preserving the relative
// order of the rest. It reports whether the card was present. O(n).
func (q *ReviewQueue) Remove(card *models.Card) bool {
	for i := q.head; i < len(q.cards); i++ {
		if q.cards[i] == card {
			q.cards = append(q.cards[:i], q.cards[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of cards currently queued.
func (q *ReviewQueue) Len() int {
	return len(q.cards) - q.head
}

// Drain empties the queue and returns the cards in queue order.
func (q *ReviewQueue) Drain() []*models.Card {
	cards := make([]*models.Card, 0, q.Len())
	for {
		c, ok := q.PopFront()
		if !ok {
			return cards
		}
		cards = append(cards, c)
	}
}
