package domain

import (
	"fmt"
	"strings"
	"time"
)

// AIAssessment is the raw record returned by an assessment provider for one
// article. Only Confidence, RedFlags and SupportingFactors feed the score;
// the remaining fields are carried through for display.
type AIAssessment struct {
	Explanation       string   `json:"explanation,omitempty"`
	Reasoning         []string `json:"reasoning,omitempty"`
	RedFlags          []string `json:"red_flags,omitempty"`
	Confidence        int      `json:"confidence,omitempty"`
	SupportingFactors []string `json:"supporting_factors,omitempty"`
	ConcerningFactors []string `json:"concerning_factors,omitempty"`
	SourceReliability string   `json:"source_reliability,omitempty"`
	FactCheckNotes    string   `json:"fact_check_notes,omitempty"`
}

// SourceRecord is a related article found while corroborating a claim.
type SourceRecord struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Snippet     string `json:"snippet,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
	Relevant    bool   `json:"relevant"`
}

// Tier classifies how much a publishing domain is trusted.
type Tier string

const (
	TierHighlyTrusted Tier = "highly_trusted"
	TierTrusted       Tier = "trusted"
	TierUnknown       Tier = "unknown"
	TierQuestionable  Tier = "questionable"
)

// DomainReputation is derived from a source URL alone.
type DomainReputation struct {
	Score int    `json:"score"`
	Tier  Tier   `json:"tier"`
	Notes string `json:"notes"`
}

// VoteCounts are the community tallies for one news item.
type VoteCounts struct {
	Real      int `json:"real"`
	Fake      int `json:"fake"`
	Uncertain int `json:"uncertain"`
	Total     int `json:"total"`
}

// NewVoteCounts builds tallies with Total filled in.
func NewVoteCounts(real, fake, uncertain int) VoteCounts {
	return VoteCounts{Real: real, Fake: fake, Uncertain: uncertain, Total: real + fake + uncertain}
}

// Validate checks that counts are non-negative and add up to Total.
func (v VoteCounts) Validate() error {
	if v.Real < 0 || v.Fake < 0 || v.Uncertain < 0 {
		return fmt.Errorf("vote counts must be non-negative (real=%d fake=%d uncertain=%d)", v.Real, v.Fake, v.Uncertain)
	}
	if v.Total != v.Real+v.Fake+v.Uncertain {
		return fmt.Errorf("vote total %d does not match real+fake+uncertain=%d", v.Total, v.Real+v.Fake+v.Uncertain)
	}
	return nil
}

// Verdict is the consensus outcome. The numeric values match the on-chain enum.
type Verdict int

const (
	VerdictPending Verdict = iota
	VerdictReal
	VerdictFake
	VerdictUncertain
)

var verdictNames = map[Verdict]string{
	VerdictPending:   "pending",
	VerdictReal:      "real",
	VerdictFake:      "fake",
	VerdictUncertain: "uncertain",
}

func (v Verdict) String() string {
	if name, ok := verdictNames[v]; ok {
		return name
	}
	return fmt.Sprintf("verdict(%d)", int(v))
}

func (v Verdict) MarshalText() ([]byte, error) {
	if _, ok := verdictNames[v]; !ok {
		return nil, fmt.Errorf("unknown verdict %d", int(v))
	}
	return []byte(v.String()), nil
}

func (v *Verdict) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	for k, n := range verdictNames {
		if n == name {
			*v = k
			return nil
		}
	}
	return fmt.Errorf("unknown verdict %q", string(text))
}

// ConsensusResult is the settled blend of AI score and community votes.
type ConsensusResult struct {
	Verdict     Verdict `json:"verdict"`
	FinalScore  int     `json:"final_score"`
	Confidence  int     `json:"confidence"`
	IsFinalized bool    `json:"is_finalized"`
}

// ConfidenceLabel grades how much community data backs a dynamic score.
type ConfidenceLabel string

const (
	ConfidenceLow    ConfidenceLabel = "low"
	ConfidenceMedium ConfidenceLabel = "medium"
	ConfidenceHigh   ConfidenceLabel = "high"
)

// Label returns the human-readable form shown next to a live score.
func (c ConfidenceLabel) Label() string {
	switch c {
	case ConfidenceHigh:
		return "High Confidence"
	case ConfidenceMedium:
		return "Medium Confidence"
	case ConfidenceLow:
		return "Low Confidence"
	default:
		return "Unknown"
	}
}

// DynamicScoreResult is the live display blend used before finalization.
type DynamicScoreResult struct {
	AIScore        int             `json:"ai_score"`
	DynamicScore   int             `json:"dynamic_score"`
	CommunityScore int             `json:"community_score"`
	Confidence     ConfidenceLabel `json:"confidence"`
	VoteWeight     float64         `json:"vote_weight"`
	AIWeight       float64         `json:"ai_weight"`
}

// AnalysisVerdict is the coarse verdict attached to a single analysis.
type AnalysisVerdict string

const (
	AnalysisLikelyReal AnalysisVerdict = "likely_real"
	AnalysisLikelyFake AnalysisVerdict = "likely_fake"
	AnalysisUncertain  AnalysisVerdict = "uncertain"
)

// Interpretation is the human-readable band a score falls into.
type Interpretation struct {
	Label       string `json:"label"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// Analysis is the full result of analyzing one article.
type Analysis struct {
	Score           int             `json:"score"`
	Verdict         AnalysisVerdict `json:"verdict"`
	Explanation     string          `json:"explanation"`
	Reasoning       []string        `json:"reasoning"`
	Confidence      int             `json:"confidence"`
	ConfidenceLevel int             `json:"confidence_level"`
	Flags           []string        `json:"flags"`
	Sources         []SourceRecord  `json:"sources"`
	Interpretation  Interpretation  `json:"interpretation"`
	ContentHash     string          `json:"content_hash,omitempty"`
	Timestamp       time.Time       `json:"timestamp"`
}

// AnalysisErrorFlag marks an analysis that fell back to the neutral result.
const AnalysisErrorFlag = "analysis_error"

// NeutralAnalysis is substituted whenever the assessment provider fails.
func NeutralAnalysis(now time.Time) *Analysis {
	return &Analysis{
		Score:       50,
		Verdict:     AnalysisUncertain,
		Explanation: "Unable to complete analysis due to an error. Please try again.",
		Reasoning:   []string{"Analysis service temporarily unavailable"},
		Confidence:  0,
		Flags:       []string{AnalysisErrorFlag},
		Sources:     []SourceRecord{},
		Timestamp:   now,
	}
}

// IsFallback reports whether the analysis is the neutral fallback.
func (a Analysis) IsFallback() bool {
	for _, f := range a.Flags {
		if f == AnalysisErrorFlag {
			return true
		}
	}
	return false
}

// BadgeColor maps a credibility score to a shields.io color.
func BadgeColor(score int) string {
	switch {
	case score >= 85:
		return "brightgreen"
	case score >= 70:
		return "green"
	case score >= 55:
		return "yellow"
	case score >= 40:
		return "orange"
	default:
		return "red"
	}
}

// Claim is one factual statement extracted from an article.
type Claim struct {
	Claim       string `json:"claim"`
	Verdict     string `json:"verdict"`
	Explanation string `json:"explanation"`
	Importance  string `json:"importance"`
}

// PatternReport lists the misinformation patterns detected in a text.
type PatternReport struct {
	Sensationalism      bool     `json:"sensationalism"`
	EmotionalLanguage   bool     `json:"emotionalLanguage"`
	LackOfSources       bool     `json:"lackOfSources"`
	Clickbait           bool     `json:"clickbait"`
	BiasedLanguage      bool     `json:"biasedLanguage"`
	LogicalFallacies    []string `json:"logicalFallacies,omitempty"`
	ManipulativeTactics []string `json:"manipulativeTactics,omitempty"`
	Notes               string   `json:"notes,omitempty"`
}

// NewsRecord is a news item as registered on-chain.
type NewsRecord struct {
	ID          uint64    `json:"id"`
	ContentHash string    `json:"content_hash"`
	AIScore     int       `json:"ai_score"`
	Submitter   string    `json:"submitter"`
	Title       string    `json:"title"`
	SourceURL   string    `json:"source_url"`
	Timestamp   time.Time `json:"timestamp"`
	Exists      bool      `json:"exists"`
}

// AnalysisEntry is one row of the local analysis history.
type AnalysisEntry struct {
	Timestamp   string          `json:"timestamp"`
	Revision    string          `json:"revision,omitempty"`
	ContentHash string          `json:"content_hash"`
	Title       string          `json:"title"`
	Score       int             `json:"score"`
	Verdict     AnalysisVerdict `json:"verdict"`
}
