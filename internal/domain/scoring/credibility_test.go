package scoring_test

import (
	"strings"
	"testing"

	"github.com/abdidvp/credence/internal/domain"
	"github.com/abdidvp/credence/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func trustedSources(n int) []domain.SourceRecord {
	urls := []string{
		"https://www.reuters.com/a", "https://apnews.com/b", "https://www.bbc.com/c",
		"https://www.npr.org/d", "https://www.theguardian.com/e", "https://www.nature.com/f",
	}
	var out []domain.SourceRecord
	for i := 0; i < n; i++ {
		out = append(out, domain.SourceRecord{Name: "src", URL: urls[i%len(urls)], Relevant: true})
	}
	return out
}

func wellFormedArticle() string {
	para := strings.TrimSpace(strings.Repeat("officials confirmed the figures ", 20))
	return para + "\n\n" +
		para + ` and the minister said "the data is final" at the briefing.` + "\n\n" +
		para + " Full report: https://www.gov.uk/report"
}

func TestScore_EmptyInputs(t *testing.T) {
	// 70% confidence (28) + questionable domain (7.5) + short text (0.4*20=8)
	// + no corroboration (4.5) = 48
	got := scoring.Score(domain.AIAssessment{}, nil, "", "")
	assert.Equal(t, 48, got)
}

func TestScore_StrongArticleCapsAt100(t *testing.T) {
	a := domain.AIAssessment{
		Confidence:        100,
		SupportingFactors: []string{"verified_data", "expert_quotes", "primary_sources", "fact_check_available"},
	}
	got := scoring.Score(a, trustedSources(5), wellFormedArticle(), "https://www.reuters.com/world/x")
	assert.Equal(t, 100, got)
}

func TestScore_PenaltyFlooredBeforeBonus(t *testing.T) {
	// Base sum is 0 + 7.5 + 8 + 4.5 = 20. The 30 point penalty floors it at 0,
	// then the 15 point bonus yields 15 rather than 20-30+15=5.
	a := domain.AIAssessment{
		Confidence:        -10,
		RedFlags:          []string{"contradicts_known_facts", "conspiracy_theory"},
		SupportingFactors: []string{"verified_data", "multiple_sources_cited", "fact_check_available"},
	}
	assert.Equal(t, 15, scoring.Score(a, nil, "", "not a url"))
}

func TestScore_MissingConfidenceDefaultsTo70(t *testing.T) {
	withDefault := scoring.Score(domain.AIAssessment{Confidence: 70}, nil, "", "")
	missing := scoring.Score(domain.AIAssessment{}, nil, "", "")
	assert.Equal(t, withDefault, missing)
}

func TestScore_RedFlagsLowerScore(t *testing.T) {
	clean := scoring.Score(domain.AIAssessment{Confidence: 80}, nil, wellFormedArticle(), "https://example.com/a")
	flagged := scoring.Score(domain.AIAssessment{Confidence: 80, RedFlags: []string{"Sensationalism"}}, nil, wellFormedArticle(), "https://example.com/a")
	assert.Equal(t, clean-10, flagged)
}

func TestScore_Deterministic(t *testing.T) {
	a := domain.AIAssessment{Confidence: 63, RedFlags: []string{"extreme bias"}, SupportingFactors: []string{"expert quotes"}}
	first := scoring.Score(a, trustedSources(3), wellFormedArticle(), "https://www.bbc.co.uk/news/1")
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, scoring.Score(a, trustedSources(3), wellFormedArticle(), "https://www.bbc.co.uk/news/1"))
	}
}

func TestScore_BoundedForAdversarialInput(t *testing.T) {
	manyFlags := make([]string, 500)
	manyFactors := make([]string, 500)
	for i := range manyFlags {
		manyFlags[i] = "contradicts known facts"
		manyFactors[i] = "verified data"
	}
	shouting := strings.Repeat("LIES!!! ", 6000)

	confidences := []int{-1000, -1, 0, 1, 50, 100, 1000}
	contents := []string{"", shouting, wellFormedArticle()}
	urls := []string{"", "::::", "https://www.who.int/x", "http://random.blog"}

	for _, c := range confidences {
		for _, content := range contents {
			for _, u := range urls {
				for _, a := range []domain.AIAssessment{
					{Confidence: c},
					{Confidence: c, RedFlags: manyFlags},
					{Confidence: c, SupportingFactors: manyFactors},
					{Confidence: c, RedFlags: manyFlags, SupportingFactors: manyFactors},
				} {
					got := scoring.Score(a, trustedSources(6), content, u)
					assert.GreaterOrEqual(t, got, 0)
					assert.LessOrEqual(t, got, 100)
				}
			}
		}
	}
}

func TestEffectiveConfidence(t *testing.T) {
	assert.Equal(t, 70, scoring.EffectiveConfidence(0))
	assert.Equal(t, 100, scoring.EffectiveConfidence(150))
	assert.Equal(t, 0, scoring.EffectiveConfidence(-3))
	assert.Equal(t, 42, scoring.EffectiveConfidence(42))
}
