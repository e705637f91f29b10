package srs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/keziahdorothy14/flashsprint/internal/models"
	"github.com/keziahdorothy14/flashsprint/internal/srs"
)

func TestApplyVerdict(t *testing.T) {
	tests := []struct {
		name         string
		interval     int
		dueIn        int
		verdict      srs.Verdict
		wantInterval int
		wantDueIn    int
	}{
		{name: "correct doubles interval", interval: 1, dueIn: 0, verdict: srs.Correct, wantInterval: 2, wantDueIn: 2},
		{name: "correct doubles again", interval: 4, dueIn: 0, verdict: srs.Correct, wantInterval: 8, wantDueIn: 8},
		{name: "incorrect resets", interval: 16, dueIn: 0, verdict: srs.Incorrect, wantInterval: 1, wantDueIn: 1},
		{name: "cancel leaves card untouched", interval: 4, dueIn: 2, verdict: srs.Cancel, wantInterval: 4, wantDueIn: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := models.Card{ID: 1, Interval: tt.interval, DueIn: tt.dueIn}
			updated := srs.ApplyVerdict(card, tt.verdict)
			assert.Equal(t, tt.wantInterval, updated.Interval)
			assert.Equal(t, tt.wantDueIn, updated.DueIn)
		})
	}
}

func TestApplyVerdictGrowthIsExponential(t *testing.T) {
	card := models.Card{ID: 1, Interval: 1}
	for i := 1; i <= 6; i++ {
		card = srs.ApplyVerdict(card, srs.Correct)
		assert.Equal(t, 1<<i, card.Interval)
		assert.Equal(t, card.Interval, card.DueIn)
	}

	card = srs.ApplyVerdict(card, srs.Incorrect)
	assert.Equal(t, 1, card.Interval)
	assert.Equal(t, 1, card.DueIn)
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "correct", srs.Correct.String())
	assert.Equal(t, "incorrect", srs.Incorrect.String())
	assert.Equal(t, "cancel", srs.Cancel.String())
}
