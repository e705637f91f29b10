package srs

import "github.com/keziahdorothy14/flashsprint/internal/models"

// Verdict is the user's judgement of their own answer.
type Verdict int

const (
	Correct Verdict = iota
	Incorrect
	Cancel
)

func (v Verdict) String() string {
	switch v {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// ApplyVerdict updates card scheduling using the rotation-backoff rule:
// a correct answer doubles the interval and defers the card that many
// rotations; an incorrect answer collapses the interval to 1 and shows
// the card again on the next rotation; a cancel leaves the card
// untouched.
func ApplyVerdict(card models.Card, verdict Verdict) models.Card {
	switch verdict {
	case Correct:
		card.Interval *= 2
		if card.Interval < 1 {
			card.Interval = 1
		}
		card.DueIn = card.Interval
	case Incorrect:
		card.Interval = 1
		card.DueIn = 1
	case Cancel:
		// No scheduling change.
	}
	return card
}
