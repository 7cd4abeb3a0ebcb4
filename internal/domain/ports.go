package domain

import "context"

// AssessmentRequest is what an assessment provider needs to judge an article.
type AssessmentRequest struct {
	Content   string
	SourceURL string
	Title     string
	Related   []SourceRecord
}

// AssessmentProvider produces an AI assessment for an article.
type AssessmentProvider interface {
	Assess(ctx context.Context, req AssessmentRequest) (*AIAssessment, error)
}

// SourceFinder looks up coverage related to a query. An empty result is
// a valid answer, not an error.
type SourceFinder interface {
	FindRelated(ctx context.Context, query string) ([]SourceRecord, error)
}

// VoteLedger reads the current community tallies for a news item.
type VoteLedger interface {
	VoteCounts(ctx context.Context, newsID uint64) (VoteCounts, error)
}

// NewsReader reads registered news items.
type NewsReader interface {
	AIScore(ctx context.Context, newsID uint64) (int, error)
	News(ctx context.Context, newsID uint64) (*NewsRecord, error)
	TotalNews(ctx context.Context) (uint64, error)
}

// ContentStore persists analyzed articles keyed by content hash.
type ContentStore interface {
	Save(item StoredContent) error
	// Get returns ErrContentNotFound when the hash is unknown.
	Get(hash string) (*StoredContent, error)
	Stats() (StorageStats, error)
}

// AnalysisHistory records past analyses.
type AnalysisHistory interface {
	Save(entry AnalysisEntry) error
	Load() ([]AnalysisEntry, error)
}

// Article is readable text extracted from a web page.
type Article struct {
	Title   string
	Content string
	URL     string
}

// ArticleFetcher downloads a page and extracts its readable text.
type ArticleFetcher interface {
	Fetch(ctx context.Context, url string) (*Article, error)
}

// ClaimAnalyzer extracts factual claims from an article.
type ClaimAnalyzer interface {
	Claims(ctx context.Context, content string) ([]Claim, error)
}

// QuickChecker gives a cheap single-number credibility estimate.
type QuickChecker interface {
	QuickCheck(ctx context.Context, content string) (int, error)
}

// PatternDetector flags common misinformation patterns.
type PatternDetector interface {
	Patterns(ctx context.Context, content string) (*PatternReport, error)
}

// RevisionSource identifies the revision of a working directory.
type RevisionSource interface {
	Revision(dir string) (string, error)
}

// ConfigLoader reads configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (Config, error)
}
