package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/abdidvp/credence/internal/domain"
)

// neutralQuickScore is reported when the quick check cannot run.
const neutralQuickScore = 50

// InsightService runs the lighter LLM helpers. Like the main analysis,
// they degrade to neutral defaults instead of failing.
type InsightService struct {
	claims   domain.ClaimAnalyzer
	quick    domain.QuickChecker
	patterns domain.PatternDetector
	log      logrus.FieldLogger
}

func NewInsightService(claims domain.ClaimAnalyzer, quick domain.QuickChecker, patterns domain.PatternDetector, log logrus.FieldLogger) *InsightService {
	return &InsightService{claims: claims, quick: quick, patterns: patterns, log: log}
}

// Claims extracts factual claims, or none when extraction fails.
func (s *InsightService) Claims(ctx context.Context, content string) []domain.Claim {
	claims, err := s.claims.Claims(ctx, domain.SanitizeInput(content))
	if err != nil {
		s.log.WithError(err).Error("claim analysis failed")
		return []domain.Claim{}
	}
	if claims == nil {
		return []domain.Claim{}
	}
	return claims
}

// QuickCheck returns a 0-100 estimate, or 50 when the check fails.
func (s *InsightService) QuickCheck(ctx context.Context, content string) int {
	score, err := s.quick.QuickCheck(ctx, domain.SanitizeInput(content))
	if err != nil {
		s.log.WithError(err).Error("quick check failed")
		return neutralQuickScore
	}
	return max(0, min(100, score))
}

// Patterns detects misinformation patterns, or reports none on failure.
func (s *InsightService) Patterns(ctx context.Context, content string) *domain.PatternReport {
	report, err := s.patterns.Patterns(ctx, domain.SanitizeInput(content))
	if err != nil || report == nil {
		if err != nil {
			s.log.WithError(err).Error("pattern detection failed")
		}
		return &domain.PatternReport{}
	}
	return report
}
