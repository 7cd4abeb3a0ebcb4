// Package consensus blends an AI credibility score with community votes.
//
// Two blends coexist on purpose. Calculate produces the settled verdict
// with fixed weights. Dynamic produces the live display score, whose AI
// weight decays as votes accumulate. They share only CommunityScore.
package consensus

import "github.com/abdidvp/credence/internal/domain"

// CommunityScore maps votes onto 0-100: real counts 100, uncertain 50 and
// fake 0. It is 0 when nobody has voted.
func CommunityScore(v domain.VoteCounts) float64 {
	if v.Total <= 0 {
		return 0
	}
	return float64(v.Real*100+v.Uncertain*50) / float64(v.Total)
}
