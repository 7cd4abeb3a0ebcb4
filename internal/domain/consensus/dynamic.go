package consensus

import (
	"math"

	"github.com/abdidvp/credence/internal/domain"
)

// The AI weight loses 1/votesPerFullShift per vote and never drops
// below minAIWeight.
const (
	minAIWeight       = 0.2
	maxVoteShare      = 0.8
	votesPerFullShift = 50
)

// Vote counts at which the live score's confidence label steps up.
const (
	highConfidenceVotes   = 10
	mediumConfidenceVotes = 3
)

// Dynamic computes the live display score. With no votes it passes the AI
// score through unchanged.
func Dynamic(aiScore int, v domain.VoteCounts) domain.DynamicScoreResult {
	if v.Total == 0 {
		return domain.DynamicScoreResult{
			AIScore:      aiScore,
			DynamicScore: aiScore,
			Confidence:   domain.ConfidenceLow,
			VoteWeight:   0,
			AIWeight:     1,
		}
	}

	community := CommunityScore(v)
	ai := AIWeight(v.Total)
	votes := 1 - ai

	return domain.DynamicScoreResult{
		AIScore:        aiScore,
		DynamicScore:   int(math.Round(float64(aiScore)*ai + community*votes)),
		CommunityScore: int(math.Round(community)),
		Confidence:     confidenceLabel(v.Total),
		VoteWeight:     votes,
		AIWeight:       ai,
	}
}

// AIWeight is the share of the live score taken from the AI for a given
// number of votes: 1.0 with no votes, falling to 0.2 at 40 votes and beyond.
func AIWeight(total int) float64 {
	return math.Max(minAIWeight, 1-math.Min(float64(total)/votesPerFullShift, maxVoteShare))
}

func confidenceLabel(total int) domain.ConfidenceLabel {
	switch {
	case total >= highConfidenceVotes:
		return domain.ConfidenceHigh
	case total >= mediumConfidenceVotes:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}
