package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinContentLength = 50
	MaxContentLength = 50000
	MaxTitleLength   = 200
	MaxSourceURLLen  = 500

	// MaxBatchSize bounds how many articles one batch request may carry.
	MaxBatchSize = 10
)

// AnalyzeRequest is one article submitted for analysis.
type AnalyzeRequest struct {
	Content   string `json:"content"   yaml:"content"`
	Title     string `json:"title"     yaml:"title"`
	SourceURL string `json:"sourceUrl" yaml:"source_url"`
}

// Validate checks the request bounds and returns a descriptive error.
func (r AnalyzeRequest) Validate() error {
	// 1. content length
	n := utf8.RuneCountInString(r.Content)
	if n < MinContentLength {
		return fmt.Errorf("content: must be at least %d characters (got %d)", MinContentLength, n)
	}
	if n > MaxContentLength {
		return fmt.Errorf("content: must be at most %d characters (got %d)", MaxContentLength, n)
	}

	// 2. title length
	t := utf8.RuneCountInString(r.Title)
	if t < 1 {
		return fmt.Errorf("title: must not be empty")
	}
	if t > MaxTitleLength {
		return fmt.Errorf("title: must be at most %d characters (got %d)", MaxTitleLength, t)
	}

	// 3. source URL
	if len(r.SourceURL) > MaxSourceURLLen {
		return fmt.Errorf("sourceUrl: must be at most %d characters", MaxSourceURLLen)
	}
	if !IsValidURL(r.SourceURL) {
		return fmt.Errorf("sourceUrl: invalid url %q", r.SourceURL)
	}

	return nil
}

// Sanitized returns a copy with script and iframe elements stripped.
func (r AnalyzeRequest) Sanitized() AnalyzeRequest {
	return AnalyzeRequest{
		Content:   SanitizeInput(r.Content),
		Title:     SanitizeInput(r.Title),
		SourceURL: strings.TrimSpace(r.SourceURL),
	}
}

// IsValidURL reports whether raw is an absolute URL with a host.
func IsValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

var (
	scriptRe = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	iframeRe = regexp.MustCompile(`(?is)<iframe\b[^>]*>.*?</iframe\s*>`)
)

// SanitizeInput removes embedded script and iframe elements.
func SanitizeInput(s string) string {
	s = scriptRe.ReplaceAllString(s, "")
	s = iframeRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// RelatedQuery is the search query used to look up corroborating coverage:
// the title when present, otherwise the head of the content.
func (r AnalyzeRequest) RelatedQuery() string {
	if strings.TrimSpace(r.Title) != "" {
		return r.Title
	}
	return truncateRunes(r.Content, 100)
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
