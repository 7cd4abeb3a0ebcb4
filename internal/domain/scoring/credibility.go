package scoring

import (
	"math"

	"github.com/abdidvp/credence/internal/domain"
)

// Maximum points contributed by each factor. They sum to 100.
const (
	confidencePoints    = 40
	reputationPoints    = 25
	qualityPoints       = 20
	corroborationPoints = 15
)

// defaultAIConfidence stands in for a missing (zero) model confidence.
const defaultAIConfidence = 70

// Score computes the 0-100 credibility of an article from the model's
// assessment, related coverage, the article text and where it was
// published.
//
// The red-flag penalty is subtracted and floored at 0 before the
// supporting bonus is added and capped at 100.
func Score(a domain.AIAssessment, related []domain.SourceRecord, content, sourceURL string) int {
	var score float64

	score += float64(effectiveConfidence(a.Confidence)) / 100 * confidencePoints
	score += float64(GetDomainReputation(sourceURL).Score) / 100 * reputationPoints
	score += ContentQuality(content) * qualityPoints
	score += Corroboration(related) * corroborationPoints

	score = max(0, score-float64(RedFlagPenalty(a.RedFlags)))
	score = min(100, score+float64(SupportingBonus(a.SupportingFactors)))

	return int(math.Round(score))
}

func effectiveConfidence(c int) int {
	if c == 0 {
		c = defaultAIConfidence
	}
	return max(0, min(100, c))
}

// EffectiveConfidence is the model confidence as reported on an analysis:
// missing confidence reads as 70.
func EffectiveConfidence(c int) int {
	return effectiveConfidence(c)
}
