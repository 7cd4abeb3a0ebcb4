package llm

import (
	"fmt"
	"strings"

	"github.com/abdidvp/credence/internal/domain"
	"github.com/abdidvp/credence/internal/domain/scoring"
)

const assessmentSchema = `{
  "explanation": "A clear, 2-3 sentence summary of your overall assessment",
  "reasoning": [
    "Key point 1 supporting your assessment",
    "Key point 2 supporting your assessment",
    "Key point 3 supporting your assessment"
  ],
  "red_flags": ["tag"],
  "confidence": 75,
  "supporting_factors": ["tag"],
  "concerning_factors": ["What raises doubts about credibility"],
  "source_reliability": "Assessment of the source domain/publication",
  "fact_check_notes": "Notes about verifiable facts or claims"
}`

func assessmentSystemPrompt() string {
	return fmt.Sprintf(`You are an expert fact-checker and news analyst. Your job is to analyze news content for credibility, identify misinformation patterns, and provide evidence-based assessments. Be thorough, objective, and cite specific concerns.

You must respond with ONLY valid JSON in this exact format:
%s

Prefer these red_flags tags: %s.
Prefer these supporting_factors tags: %s.
confidence is an integer from 0 to 100.`,
		assessmentSchema,
		strings.Join(scoring.RedFlagTags(), ", "),
		strings.Join(scoring.SupportingTags(), ", "))
}

func assessmentPrompt(req domain.AssessmentRequest) string {
	title := req.Title
	if title == "" {
		title = "No title provided"
	}

	var b strings.Builder
	b.WriteString("Analyze the following news article for credibility and potential misinformation:\n\n")
	fmt.Fprintf(&b, "TITLE: %s\nSOURCE: %s\n\nCONTENT:\n%s\n", title, req.SourceURL, req.Content)

	if len(req.Related) > 0 {
		b.WriteString("\nRelated news from trusted sources:\n")
		for i, s := range req.Related {
			snippet := s.Snippet
			if snippet == "" {
				snippet = "No snippet available"
			}
			fmt.Fprintf(&b, "%d. %s: %s (%s)\n", i+1, s.Name, snippet, s.URL)
		}
	}

	b.WriteString(`
Consider the following in your analysis:
1. Source credibility: Is the source known and reputable?
2. Evidence: Are claims supported by evidence or sources?
3. Language: Is the language sensational, emotional, or clickbait-y?
4. Verifiability: Can the main claims be verified?
5. Context: Does the article provide proper context?
6. Bias: Is there obvious political or ideological bias?
7. Corroboration: Do other reputable sources report similar information?
8. Author: Is there author attribution and credentials?

Be objective and evidence-based in your assessment.`)

	return b.String()
}

const jsonOnlySystemPrompt = "You are a fact-checker. Respond with ONLY valid JSON."

func claimsPrompt(content string) string {
	return fmt.Sprintf(`Extract specific factual claims from the following news content. For each claim, assess its verifiability.

CONTENT:
%s

Provide your response in the following JSON format:
{"claims": [{"claim": "Specific factual claim", "verdict": "true|false|unverifiable", "explanation": "Brief explanation of the verdict", "importance": "high|medium|low"}]}

Focus on statistical claims, attributions, causal claims and factual assertions. Ignore opinions, predictions, or subjective statements.`, content)
}

const quickCheckSystemPrompt = "You are a fact-checker. Rate the credibility of the given news content from 0-100. Respond with just the number."

func quickCheckPrompt(content string) string {
	return "Rate the credibility (0-100): " + head(content, quickCheckChars)
}

func patternsPrompt(content string) string {
	return fmt.Sprintf(`Analyze the text for common misinformation patterns. Return only valid JSON with boolean values. Detect patterns in: %s

Respond with JSON: {"sensationalism": bool, "emotionalLanguage": bool, "lackOfSources": bool, "clickbait": bool, "biasedLanguage": bool, "logicalFallacies": [], "manipulativeTactics": [], "notes": "..."}`,
		head(content, patternsChars))
}
