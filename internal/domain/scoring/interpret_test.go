package scoring_test

import (
	"testing"

	"github.com/abdidvp/credence/internal/domain"
	"github.com/abdidvp/credence/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func TestDetermineVerdict_Boundaries(t *testing.T) {
	assert.Equal(t, domain.AnalysisLikelyReal, scoring.DetermineVerdict(70))
	assert.Equal(t, domain.AnalysisUncertain, scoring.DetermineVerdict(69))
	assert.Equal(t, domain.AnalysisUncertain, scoring.DetermineVerdict(41))
	assert.Equal(t, domain.AnalysisLikelyFake, scoring.DetermineVerdict(40))
	assert.Equal(t, domain.AnalysisLikelyFake, scoring.DetermineVerdict(0))
}

func TestInterpretScore_Bands(t *testing.T) {
	tests := []struct {
		score int
		label string
		color string
	}{
		{100, "Highly Credible", "green"},
		{85, "Highly Credible", "green"},
		{84, "Likely Credible", "lightgreen"},
		{70, "Likely Credible", "lightgreen"},
		{55, "Uncertain", "yellow"},
		{40, "Questionable", "orange"},
		{39, "Not Credible", "red"},
	}
	for _, tt := range tests {
		got := scoring.InterpretScore(tt.score)
		assert.Equal(t, tt.label, got.Label, "score %d", tt.score)
		assert.Equal(t, tt.color, got.Color, "score %d", tt.score)
		assert.NotEmpty(t, got.Description)
	}
}

func TestConfidenceLevel(t *testing.T) {
	assert.Equal(t, 100, scoring.ConfidenceLevel(80, 5, true))
	assert.Equal(t, 35, scoring.ConfidenceLevel(0, 0, false))
	assert.Equal(t, 80, scoring.ConfidenceLevel(60, 3, true))
	assert.Equal(t, 0, scoring.ConfidenceLevel(10, 1, false))
	assert.Equal(t, 85, scoring.ConfidenceLevel(70, 2, true))
}
