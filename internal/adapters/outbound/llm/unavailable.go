package llm

import (
	"context"

	"github.com/abdidvp/credence/internal/domain"
)

// Unavailable stands in when no model is configured. Every call fails with
// domain.ErrProviderUnavailable, so callers fall back to their neutral
// results.
type Unavailable struct{}

var (
	_ domain.AssessmentProvider = Unavailable{}
	_ domain.ClaimAnalyzer      = Unavailable{}
	_ domain.QuickChecker       = Unavailable{}
	_ domain.PatternDetector    = Unavailable{}
)

func (Unavailable) Assess(context.Context, domain.AssessmentRequest) (*domain.AIAssessment, error) {
	return nil, domain.ErrProviderUnavailable
}

func (Unavailable) Claims(context.Context, string) ([]domain.Claim, error) {
	return nil, domain.ErrProviderUnavailable
}

func (Unavailable) QuickCheck(context.Context, string) (int, error) {
	return 0, domain.ErrProviderUnavailable
}

func (Unavailable) Patterns(context.Context, string) (*domain.PatternReport, error) {
	return nil, domain.ErrProviderUnavailable
}
