// Package scheduler drives one review session over the review queue.
package scheduler

import (
	"context"
	"time"

	"github.com/keziahdorothy14/flashsprint/internal/logger"
	"github.com/keziahdorothy14/flashsprint/internal/models"
	"github.com/keziahdorothy14/flashsprint/internal/queue"
	"github.com/keziahdorothy14/flashsprint/internal/srs"
)

// Phase is the state of a review session.
type Phase int

const (
	// Scanning: looking for the next due card. Call Next.
	Scanning Phase = iota
	// Presenting: a due card is held out for review. Call Grade or Stop.
	Presenting
	// Empty: the queue has no cards. Terminal.
	Empty
	// Stopped: the user ended the session. Terminal.
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Scanning:
		return "scanning"
	case Presenting:
		return "presenting"
	case Empty:
		return "empty"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Recorder persists graded reviews. Recording failures never abort a
// session.
type Recorder interface {
	Record(ctx context.Context, rec models.ReviewRecord) error
}

// Session is the per-review-session state machine. It owns no cards:
// it only rotates the shared queue and rewrites the scheduling fields
// of the card it presents. Not safe for concurrent use.
type Session struct {
	queue    *queue.ReviewQueue
	recorder Recorder
	phase    Phase
	current  *models.Card
}

// NewSession starts a session over q. recorder may be nil.
func NewSession(q *queue.ReviewQueue, recorder Recorder) *Session {
	s := &Session{queue: q, recorder: recorder, phase: Scanning}
	if q.Len() == 0 {
		s.phase = Empty
	}
	return s
}

// Phase returns the session's current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Card returns the card held out for review. Only valid while
// Presenting.
func (s *Session) Card() *models.Card {
	return s.current
}

// Next runs one scan pass: it pops at most as many cards as the queue
// held when the pass started. Cards not yet due have due_in
// decremented and go to the back; the first due card moves the session
// to Presenting. If a full pass finds nothing due the session stays in
// Scanning and the caller retries, so a degenerate queue of deferred
// cards cannot spin without yielding control. An empty queue ends the
// session.
func (s *Session) Next() Phase {
	if s.phase != Scanning {
		return s.phase
	}
	limit := s.queue.Len()
	if limit == 0 {
		s.phase = Empty
		return s.phase
	}
	for scanned := 0; scanned < limit; scanned++ {
		card, ok := s.queue.PopFront()
		if !ok {
			s.phase = Empty
			return s.phase
		}
		if card.DueIn > 0 {
			card.DueIn--
			s.queue.PushBack(card)
			continue
		}
		s.current = card
		s.phase = Presenting
		return s.phase
	}
	// Nothing due this rotation; still Scanning.
	return s.phase
}

// Grade applies the verdict to the presented card, requeues it, and
// returns the session to Scanning (or ends it on Cancel). Correct and
// Incorrect verdicts are appended to the review history when a
// recorder is configured.
func (s *Session) Grade(ctx context.Context, verdict srs.Verdict) Phase {
	if s.phase != Presenting {
		return s.phase
	}
	card := s.current

	updated := srs.ApplyVerdict(*card, verdict)
	card.Interval = updated.Interval
	card.DueIn = updated.DueIn

	s.queue.PushBack(card)
	s.current = nil

	if verdict == srs.Cancel {
		s.phase = Stopped
		return s.phase
	}

	if s.recorder != nil {
		rec := models.ReviewRecord{
			CardID:     card.ID,
			Verdict:    verdict.String(),
			Interval:   card.Interval,
			DueIn:      card.DueIn,
			ReviewedAt: time.Now(),
		}
		if err := s.recorder.Record(ctx, rec); err != nil {
			logger.FromContext(ctx).Warn("failed to record review: %v", err)
		}
	}

	s.phase = Scanning
	return s.phase
}

// Stop ends the session. A card held out for presentation goes back to
// the queue unchanged.
func (s *Session) Stop() Phase {
	if s.phase == Presenting {
		s.queue.PushBack(s.current)
		s.current = nil
	}
	if s.phase == Scanning || s.phase == Presenting {
		s.phase = Stopped
	}
	return s.phase
}
