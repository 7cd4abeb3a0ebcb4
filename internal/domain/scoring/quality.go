package scoring

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe  = regexp.MustCompile(`\s+`)
	urlRe         = regexp.MustCompile(`https?://[^\s]+`)
	quoteRe       = regexp.MustCompile(`["'].*?["']`)
	capsWordRe    = regexp.MustCompile(`\b[A-Z]{3,}\b`)
	punctuationRe = regexp.MustCompile(`[!?]{2,}`)
)

// ContentQuality scores structural signals of careful writing in [0,1].
// It starts neutral at 0.5 and moves up for reasonable length, paragraph
// structure, citations and quotations, and down for shouting and
// repeated punctuation.
func ContentQuality(content string) float64 {
	score := 0.5

	words := len(whitespaceRe.Split(content, -1))
	switch {
	case words >= 200 && words <= 2000:
		score += 0.1
	case words < 50 || words > 5000:
		score -= 0.1
	}

	if countParagraphs(content) >= 3 {
		score += 0.1
	}

	if urls := len(urlRe.FindAllString(content, -1)); urls > 0 && urls <= 10 {
		score += 0.15
	}

	if quoteRe.MatchString(content) {
		score += 0.1
	}

	if len(capsWordRe.FindAllString(content, -1)) > 5 {
		score -= 0.15
	}

	if len(punctuationRe.FindAllString(content, -1)) > 3 {
		score -= 0.1
	}

	return clamp(score, 0, 1)
}

func countParagraphs(content string) int {
	n := 0
	for _, p := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return n
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
