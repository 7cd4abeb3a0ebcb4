package scoring

import (
	"sort"
	"strings"

	"github.com/fatih/camelcase"
)

// maxRedFlagPenalty caps the total deduction for red flags.
const maxRedFlagPenalty = 30

// defaultRedFlagPenalty applies to red flags missing from redFlagSeverity.
const defaultRedFlagPenalty = 5

// maxSupportingBonus caps the total credit for supporting factors.
const maxSupportingBonus = 15

// defaultSupportingBonus applies to factors missing from supportingValue.
const defaultSupportingBonus = 2

var redFlagSeverity = map[string]int{
	"no_source_attribution":   15,
	"extreme_bias":            12,
	"sensationalism":          10,
	"clickbait_headline":      8,
	"emotional_manipulation":  10,
	"lack_of_evidence":        12,
	"conspiracy_theory":       15,
	"misleading_statistics":   12,
	"out_of_context":          10,
	"anonymous_source_only":   8,
	"contradicts_known_facts": 20,
	"satire_misrepresented":   15,
}

var supportingValue = map[string]int{
	"multiple_sources_cited":  5,
	"expert_quotes":           4,
	"verified_data":           5,
	"transparent_methodology": 3,
	"recent_publication":      2,
	"author_credentials":      3,
	"fact_check_available":    5,
	"primary_sources":         4,
	"balanced_perspective":    3,
	"context_provided":        3,
}

// RedFlagPenalty sums the severity of each flag, capped at 30 points.
func RedFlagPenalty(flags []string) int {
	return weigh(flags, redFlagSeverity, defaultRedFlagPenalty, maxRedFlagPenalty)
}

// SupportingBonus sums the value of each factor, capped at 15 points.
func SupportingBonus(factors []string) int {
	return weigh(factors, supportingValue, defaultSupportingBonus, maxSupportingBonus)
}

func weigh(tags []string, table map[string]int, fallback, limit int) int {
	total := 0
	for _, tag := range tags {
		if v, ok := table[NormalizeTag(tag)]; ok {
			total += v
		} else {
			total += fallback
		}
	}
	return min(limit, total)
}

// RedFlagTags lists the red flags with a known severity, sorted.
func RedFlagTags() []string { return sortedKeys(redFlagSeverity) }

// SupportingTags lists the supporting factors with a known value, sorted.
func SupportingTags() []string { return sortedKeys(supportingValue) }

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NormalizeTag maps a tag onto the snake_case vocabulary of the tables.
// Single-word camelCase tags ("lackOfEvidence") are split into words and
// hyphens act as spaces. Whitespace runs become underscores.
func NormalizeTag(tag string) string {
	if tag != "" && !strings.ContainsAny(tag, " \t\n\r_-") {
		tag = strings.Join(camelcase.Split(tag), " ")
	}
	tag = strings.ReplaceAll(tag, "-", " ")
	return whitespaceRe.ReplaceAllString(strings.ToLower(tag), "_")
}
