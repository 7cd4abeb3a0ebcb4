package scoring

import (
	"net/url"
	"strings"

	"github.com/abdidvp/credence/internal/domain"
)

// trustedSources is the allow-list of reputable news, government and
// scientific domains. Matching is by substring on the hostname, so
// subdomains of a listed domain match too.
var trustedSources = []string{
	"reuters.com",
	"apnews.com",
	"bbc.com",
	"bbc.co.uk",
	"npr.org",
	"theguardian.com",
	"nytimes.com",
	"washingtonpost.com",
	"wsj.com",
	"bloomberg.com",
	"ft.com",
	"economist.com",
	"nature.com",
	"sciencemag.org",
	"who.int",
	"cdc.gov",
	"gov.uk",
	"europa.eu",
}

var (
	tier1Sources = []string{"reuters.com", "apnews.com", "bbc.com", "who.int", "cdc.gov", "nature.com"}
	tier2Sources = []string{"nytimes.com", "washingtonpost.com", "theguardian.com", "wsj.com", "bloomberg.com"}
	tier3Sources = without(trustedSources, tier1Sources, tier2Sources)
)

var (
	tier1Reputation        = domain.DomainReputation{Score: 95, Tier: domain.TierHighlyTrusted, Notes: "Major news agency or authoritative source"}
	tier2Reputation        = domain.DomainReputation{Score: 85, Tier: domain.TierTrusted, Notes: "Established mainstream media outlet"}
	tier3Reputation        = domain.DomainReputation{Score: 75, Tier: domain.TierTrusted, Notes: "Recognized news source"}
	unknownReputation      = domain.DomainReputation{Score: 50, Tier: domain.TierUnknown, Notes: "Unknown or unverified source - verify independently"}
	questionableReputation = domain.DomainReputation{Score: 30, Tier: domain.TierQuestionable, Notes: "Invalid URL or problematic domain"}
)

// TrustedSources returns a copy of the trusted domain allow-list.
func TrustedSources() []string {
	out := make([]string, len(trustedSources))
	copy(out, trustedSources)
	return out
}

// GetDomainReputation rates the domain a URL is published on. It never
// fails: a URL that cannot be parsed is rated questionable.
func GetDomainReputation(rawURL string) domain.DomainReputation {
	host, ok := normalizedHost(rawURL)
	if !ok {
		return questionableReputation
	}
	switch {
	case matchesAny(host, tier1Sources):
		return tier1Reputation
	case matchesAny(host, tier2Sources):
		return tier2Reputation
	case matchesAny(host, tier3Sources):
		return tier3Reputation
	default:
		return unknownReputation
	}
}

// IsTrustedSource reports whether a URL is hosted on an allow-listed domain.
func IsTrustedSource(rawURL string) bool {
	host, ok := normalizedHost(rawURL)
	if !ok {
		return false
	}
	return matchesAny(host, trustedSources)
}

// normalizedHost lowercases the hostname and drops the first "www.".
func normalizedHost(rawURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Scheme == "" || u.Hostname() == "" {
		return "", false
	}
	host := strings.ToLower(u.Hostname())
	return strings.Replace(host, "www.", "", 1), true
}

func matchesAny(host string, domains []string) bool {
	for _, d := range domains {
		if strings.Contains(host, d) {
			return true
		}
	}
	return false
}

func without(all []string, exclude ...[]string) []string {
	skip := make(map[string]bool)
	for _, list := range exclude {
		for _, d := range list {
			skip[d] = true
		}
	}
	var out []string
	for _, d := range all {
		if !skip[d] {
			out = append(out, d)
		}
	}
	return out
}
