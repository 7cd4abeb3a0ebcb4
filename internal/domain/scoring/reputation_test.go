package scoring_test

import (
	"testing"

	"github.com/abdidvp/credence/internal/domain"
	"github.com/abdidvp/credence/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
)

func TestGetDomainReputation_Tiers(t *testing.T) {
	tests := []struct {
		url   string
		score int
		tier  domain.Tier
	}{
		{"https://www.reuters.com/world/x", 95, domain.TierHighlyTrusted},
		{"https://WWW.NATURE.COM/articles/1", 95, domain.TierHighlyTrusted},
		{"https://edition.bbc.com/news", 95, domain.TierHighlyTrusted},
		{"https://www.nytimes.com/2024/story", 85, domain.TierTrusted},
		{"https://www.bbc.co.uk/news/1", 75, domain.TierTrusted},
		{"https://www.npr.org/x", 75, domain.TierTrusted},
		{"https://ec.europa.eu/commission", 75, domain.TierTrusted},
		{"https://example.com/post", 50, domain.TierUnknown},
		{"not a url", 30, domain.TierQuestionable},
		{"", 30, domain.TierQuestionable},
		{"https://", 30, domain.TierQuestionable},
	}
	for _, tt := range tests {
		rep := scoring.GetDomainReputation(tt.url)
		assert.Equal(t, tt.score, rep.Score, tt.url)
		assert.Equal(t, tt.tier, rep.Tier, tt.url)
		assert.NotEmpty(t, rep.Notes, tt.url)
	}
}

func TestGetDomainReputation_SubstringMatch(t *testing.T) {
	rep := scoring.GetDomainReputation("https://uk.reuters.com.mirror.example/x")
	assert.Equal(t, 95, rep.Score)
}

func TestIsTrustedSource(t *testing.T) {
	assert.True(t, scoring.IsTrustedSource("https://apnews.com/article/1"))
	assert.True(t, scoring.IsTrustedSource("https://www.gov.uk/guidance"))
	assert.False(t, scoring.IsTrustedSource("https://example.com"))
	assert.False(t, scoring.IsTrustedSource("::bad"))
	assert.False(t, scoring.IsTrustedSource(""))
}

func TestTrustedSources_ReturnsCopy(t *testing.T) {
	list := scoring.TrustedSources()
	assert.Len(t, list, 18)
	list[0] = "mutated.example"
	assert.Equal(t, "reuters.com", scoring.TrustedSources()[0])
}
