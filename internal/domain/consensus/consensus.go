package consensus

import (
	"math"

	"github.com/abdidvp/credence/internal/domain"
)

// Fixed blend weights for the settled verdict.
const (
	aiWeight        = 0.4
	communityWeight = 0.6
)

// Verdict thresholds on the final score.
const (
	realThreshold = 65
	fakeThreshold = 35
)

// MinVotesForFinality is the number of votes required before a verdict
// with an AI score is considered settled.
const MinVotesForFinality = 5

// Confidence components, in points.
const (
	volumePoints     = 40
	volumeSaturation = 20
	clarityPoints    = 30
	agreementPoints  = 30
	partialPoints    = 15
	agreementSpread  = 20
)

// Calculate derives the consensus verdict for an AI score and vote tally.
func Calculate(aiScore int, v domain.VoteCounts) domain.ConsensusResult {
	if aiScore == 0 && v.Total == 0 {
		return domain.ConsensusResult{Verdict: domain.VerdictPending}
	}

	community := CommunityScore(v)
	final := int(math.Round(float64(aiScore)*aiWeight + community*communityWeight))

	return domain.ConsensusResult{
		Verdict:     verdictFor(final),
		FinalScore:  final,
		Confidence:  confidence(aiScore, community, final, v.Total),
		IsFinalized: v.Total >= MinVotesForFinality && aiScore > 0,
	}
}

func verdictFor(final int) domain.Verdict {
	switch {
	case final >= realThreshold:
		return domain.VerdictReal
	case final <= fakeThreshold:
		return domain.VerdictFake
	default:
		return domain.VerdictUncertain
	}
}

// confidence sums vote volume, distance of the final score from the
// midpoint, and agreement between the AI and the community.
func confidence(aiScore int, community float64, final, total int) int {
	c := float64(min(total, volumeSaturation)) / volumeSaturation * volumePoints

	c += math.Abs(float64(final-50)) * clarityPoints / 50

	hasAI, hasVotes := aiScore > 0, total > 0
	switch {
	case hasAI && hasVotes:
		if math.Abs(float64(aiScore)-community) <= agreementSpread {
			c += agreementPoints
		}
	case hasAI || hasVotes:
		c += partialPoints
	}

	return int(math.Round(math.Min(c, 100)))
}
