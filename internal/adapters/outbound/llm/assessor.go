package llm

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/abdidvp/credence/internal/domain"
)

// How much of the article the cheaper helpers see.
const (
	quickCheckChars = 500
	patternsChars   = 1000
)

// quickCheckDefault is reported when the reply carries no number.
const quickCheckDefault = 50

// Assessor implements domain.AssessmentProvider, domain.ClaimAnalyzer,
// domain.QuickChecker and domain.PatternDetector on top of a chat model.
type Assessor struct {
	client *Client
}

func NewAssessor(c *Client) *Assessor {
	return &Assessor{client: c}
}

var (
	_ domain.AssessmentProvider = (*Assessor)(nil)
	_ domain.ClaimAnalyzer      = (*Assessor)(nil)
	_ domain.QuickChecker       = (*Assessor)(nil)
	_ domain.PatternDetector    = (*Assessor)(nil)
)

// rawAssessment tolerates a fractional confidence in the reply.
type rawAssessment struct {
	Explanation       string   `json:"explanation"`
	Reasoning         []string `json:"reasoning"`
	RedFlags          []string `json:"red_flags"`
	Confidence        float64  `json:"confidence"`
	SupportingFactors []string `json:"supporting_factors"`
	ConcerningFactors []string `json:"concerning_factors"`
	SourceReliability string   `json:"source_reliability"`
	FactCheckNotes    string   `json:"fact_check_notes"`
}

func (a *Assessor) Assess(ctx context.Context, req domain.AssessmentRequest) (*domain.AIAssessment, error) {
	var raw rawAssessment
	if err := a.client.GenerateJSON(ctx, assessmentSystemPrompt(), assessmentPrompt(req), &raw); err != nil {
		return nil, err
	}

	return &domain.AIAssessment{
		Explanation:       raw.Explanation,
		Reasoning:         raw.Reasoning,
		RedFlags:          raw.RedFlags,
		Confidence:        int(math.Round(raw.Confidence)),
		SupportingFactors: raw.SupportingFactors,
		ConcerningFactors: raw.ConcerningFactors,
		SourceReliability: raw.SourceReliability,
		FactCheckNotes:    raw.FactCheckNotes,
	}, nil
}

func (a *Assessor) Claims(ctx context.Context, content string) ([]domain.Claim, error) {
	var resp struct {
		Claims []domain.Claim `json:"claims"`
	}
	if err := a.client.GenerateJSON(ctx, jsonOnlySystemPrompt, claimsPrompt(content), &resp); err != nil {
		return nil, err
	}
	return resp.Claims, nil
}

var numberRe = regexp.MustCompile(`\d+`)

// QuickCheck returns the first number in the reply capped at 100, or 50
// when there is none.
func (a *Assessor) QuickCheck(ctx context.Context, content string) (int, error) {
	text, err := a.client.Generate(ctx, quickCheckSystemPrompt, quickCheckPrompt(content))
	if err != nil {
		return 0, err
	}
	return parseScore(text), nil
}

func (a *Assessor) Patterns(ctx context.Context, content string) (*domain.PatternReport, error) {
	var report domain.PatternReport
	if err := a.client.GenerateJSON(ctx, jsonOnlySystemPrompt, patternsPrompt(content), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func parseScore(text string) int {
	m := numberRe.FindString(text)
	if m == "" {
		return quickCheckDefault
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		// only a digit run too long for int fails here
		return 100
	}
	return min(100, n)
}

func head(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
