package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/abdidvp/credence/internal/domain"
	"github.com/abdidvp/credence/internal/domain/scoring"
)

// defaultBatchLimit is used when no fan-out limit is configured.
const defaultBatchLimit = 4

// AnalysisService orchestrates the analysis pipeline:
// validate → related sources → AI assessment → score → hash → store → history.
type AnalysisService struct {
	assessor   domain.AssessmentProvider
	finder     domain.SourceFinder
	store      domain.ContentStore
	history    domain.AnalysisHistory
	log        logrus.FieldLogger
	revision   string
	batchLimit int
	now        func() time.Time
}

// NewAnalysisService wires the pipeline. finder, store and history may be
// nil; the corresponding step is then skipped.
func NewAnalysisService(
	assessor domain.AssessmentProvider,
	finder domain.SourceFinder,
	store domain.ContentStore,
	history domain.AnalysisHistory,
	log logrus.FieldLogger,
) *AnalysisService {
	return &AnalysisService{
		assessor:   assessor,
		finder:     finder,
		store:      store,
		history:    history,
		log:        log,
		batchLimit: defaultBatchLimit,
		now:        time.Now,
	}
}

// WithRevision stamps history entries with the given revision.
func (s *AnalysisService) WithRevision(rev string) *AnalysisService {
	s.revision = rev
	return s
}

// WithBatchLimit bounds how many batch items are analyzed at once.
func (s *AnalysisService) WithBatchLimit(n int) *AnalysisService {
	if n > 0 {
		s.batchLimit = n
	}
	return s
}

// WithClock replaces the time source.
func (s *AnalysisService) WithClock(now func() time.Time) *AnalysisService {
	s.now = now
	return s
}

// Analyze scores one article. Assessment failures never surface as errors:
// they produce the neutral fallback analysis. Only invalid requests and
// cancellation are returned as errors.
func (s *AnalysisService) Analyze(ctx context.Context, req domain.AnalyzeRequest) (*domain.Analysis, error) {
	// 0. Validate and sanitize input
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	req = req.Sanitized()

	log := s.log.WithFields(logrus.Fields{"title": req.Title, "source_url": req.SourceURL})
	log.WithField("content_length", len(req.Content)).Info("starting analysis")

	// 1. Related coverage; failures degrade to no corroboration
	related := s.findRelated(ctx, req.RelatedQuery())

	// 2. AI assessment
	assessment, err := s.assessor.Assess(ctx, domain.AssessmentRequest{
		Content:   req.Content,
		SourceURL: req.SourceURL,
		Title:     req.Title,
		Related:   related,
	})
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	// 3. Score, or fall back to the neutral result
	var analysis *domain.Analysis
	switch {
	case err != nil:
		log.WithError(err).Error("assessment failed, using neutral result")
		analysis = domain.NeutralAnalysis(s.now())
	case assessment == nil:
		log.Error("assessment provider returned no result, using neutral result")
		analysis = domain.NeutralAnalysis(s.now())
	default:
		analysis = s.buildAnalysis(*assessment, related, req)
	}

	analysis.Interpretation = scoring.InterpretScore(analysis.Score)
	analysis.ConfidenceLevel = scoring.ConfidenceLevel(analysis.Confidence, len(analysis.Sources), req.SourceURL != "")

	// 4. Content hash, matching the on-chain registry
	analysis.ContentHash = domain.ContentHash(req.Title, req.Content, req.SourceURL)

	// 5. Persist content and history (best-effort)
	s.persist(log, req, analysis)

	log.WithFields(logrus.Fields{
		"score":      analysis.Score,
		"verdict":    analysis.Verdict,
		"confidence": analysis.Confidence,
	}).Info("analysis completed")

	return analysis, nil
}

func (s *AnalysisService) buildAnalysis(a domain.AIAssessment, related []domain.SourceRecord, req domain.AnalyzeRequest) *domain.Analysis {
	score := scoring.Score(a, related, req.Content, req.SourceURL)

	explanation := a.Explanation
	if explanation == "" {
		explanation = "Analysis completed."
	}

	return &domain.Analysis{
		Score:       score,
		Verdict:     scoring.DetermineVerdict(score),
		Explanation: explanation,
		Reasoning:   nonNil(a.Reasoning),
		Confidence:  scoring.EffectiveConfidence(a.Confidence),
		Flags:       nonNil(a.RedFlags),
		Sources:     related,
		Timestamp:   s.now(),
	}
}

func (s *AnalysisService) findRelated(ctx context.Context, query string) []domain.SourceRecord {
	if s.finder == nil {
		return []domain.SourceRecord{}
	}
	related, err := s.finder.FindRelated(ctx, query)
	if err != nil {
		s.log.WithError(err).Warn("related source lookup failed")
		return []domain.SourceRecord{}
	}
	if related == nil {
		return []domain.SourceRecord{}
	}
	return related
}

func (s *AnalysisService) persist(log logrus.FieldLogger, req domain.AnalyzeRequest, a *domain.Analysis) {
	ts := a.Timestamp.UTC().Format(time.RFC3339)

	if s.store != nil {
		err := s.store.Save(domain.StoredContent{
			Hash:      a.ContentHash,
			Content:   req.Content,
			Title:     req.Title,
			SourceURL: req.SourceURL,
			Timestamp: ts,
		})
		if err != nil {
			log.WithError(err).Warn("storing content failed")
		}
	}

	if s.history != nil {
		err := s.history.Save(domain.AnalysisEntry{
			Timestamp:   ts,
			Revision:    s.revision,
			ContentHash: a.ContentHash,
			Title:       req.Title,
			Score:       a.Score,
			Verdict:     a.Verdict,
		})
		if err != nil {
			log.WithError(err).Warn("saving history failed")
		}
	}
}

// BatchItem is the settled outcome of one article in a batch.
type BatchItem struct {
	Index    int              `json:"index"`
	Success  bool             `json:"success"`
	Analysis *domain.Analysis `json:"analysis,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// AnalyzeBatch analyzes up to MaxBatchSize articles concurrently. Each item
// settles independently; one invalid item does not fail the others.
func (s *AnalysisService) AnalyzeBatch(ctx context.Context, reqs []domain.AnalyzeRequest) ([]BatchItem, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("batch is empty")
	}
	if len(reqs) > domain.MaxBatchSize {
		return nil, fmt.Errorf("batch has %d items (maximum %d)", len(reqs), domain.MaxBatchSize)
	}

	s.log.WithField("count", len(reqs)).Info("processing batch analysis")

	items := make([]BatchItem, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchLimit)

	for i, req := range reqs {
		g.Go(func() error {
			items[i] = BatchItem{Index: i}
			a, err := s.Analyze(gctx, req)
			if err != nil {
				items[i].Error = err.Error()
				return nil
			}
			items[i].Success = true
			items[i].Analysis = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// Content returns previously analyzed content by hash.
func (s *AnalysisService) Content(hash string) (*domain.StoredContent, error) {
	if s.store == nil {
		return nil, domain.ErrContentNotFound
	}
	return s.store.Get(hash)
}

// StorageStats describes the content store.
func (s *AnalysisService) StorageStats() (domain.StorageStats, error) {
	if s.store == nil {
		return domain.StorageStats{}, nil
	}
	return s.store.Stats()
}

// History returns past analyses, oldest first.
func (s *AnalysisService) History() ([]domain.AnalysisEntry, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.Load()
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
