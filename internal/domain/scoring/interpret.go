package scoring

import (
	"math"

	"github.com/abdidvp/credence/internal/domain"
)

// Analysis verdict thresholds. These are calibrated independently of the
// consensus thresholds.
const (
	likelyRealThreshold = 70
	likelyFakeThreshold = 40
)

// DetermineVerdict maps a credibility score to a coarse analysis verdict.
func DetermineVerdict(score int) domain.AnalysisVerdict {
	switch {
	case score >= likelyRealThreshold:
		return domain.AnalysisLikelyReal
	case score <= likelyFakeThreshold:
		return domain.AnalysisLikelyFake
	default:
		return domain.AnalysisUncertain
	}
}

// InterpretScore returns the human-readable band for a score.
func InterpretScore(score int) domain.Interpretation {
	switch {
	case score >= 85:
		return domain.Interpretation{
			Label:       "Highly Credible",
			Description: "Strong evidence supports the credibility of this content",
			Color:       "green",
		}
	case score >= 70:
		return domain.Interpretation{
			Label:       "Likely Credible",
			Description: "Good indicators of credibility with minor concerns",
			Color:       "lightgreen",
		}
	case score >= 55:
		return domain.Interpretation{
			Label:       "Uncertain",
			Description: "Mixed signals - verify independently before sharing",
			Color:       "yellow",
		}
	case score >= 40:
		return domain.Interpretation{
			Label:       "Questionable",
			Description: "Multiple red flags present - treat with skepticism",
			Color:       "orange",
		}
	default:
		return domain.Interpretation{
			Label:       "Not Credible",
			Description: "Strong indicators of misinformation or unreliable content",
			Color:       "red",
		}
	}
}

// ConfidenceLevel estimates how much to trust a score, starting from the
// model's own confidence (50 when missing) and adjusting for corroborating
// sources and whether the article has a verifiable source URL.
func ConfidenceLevel(aiConfidence, sourceCount int, hasSourceURL bool) int {
	c := float64(aiConfidence)
	if aiConfidence == 0 {
		c = 50
	}

	switch {
	case sourceCount >= 5:
		c += 15
	case sourceCount >= 3:
		c += 10
	case sourceCount >= 1:
		c += 5
	}

	if hasSourceURL {
		c += 10
	} else {
		c -= 15
	}

	return int(math.Min(100, math.Max(0, math.Round(c))))
}
