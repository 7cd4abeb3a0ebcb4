package application_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/credence/internal/application"
	"github.com/abdidvp/credence/internal/domain"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func sampleRequest() domain.AnalyzeRequest {
	return domain.AnalyzeRequest{
		Content:   strings.Repeat("The central bank held rates steady on Thursday. ", 4),
		Title:     "Central bank holds rates",
		SourceURL: "https://www.reuters.com/markets/rates",
	}
}

func newAnalysisService(a domain.AssessmentProvider, f domain.SourceFinder, s domain.ContentStore, h domain.AnalysisHistory) (*application.AnalysisService, *logtest.Hook) {
	logger, hook := logtest.NewNullLogger()
	svc := application.NewAnalysisService(a, f, s, h, logger).
		WithClock(func() time.Time { return fixedNow }).
		WithRevision("abc123")
	return svc, hook
}

func TestAnalyze_ScoresAssessment(t *testing.T) {
	assessor := &fakeAssessor{result: &domain.AIAssessment{
		Explanation:       "Consistent with wire reports.",
		Reasoning:         []string{"Named sources"},
		Confidence:        90,
		SupportingFactors: []string{"verified_data"},
	}}
	finder := &fakeFinder{sources: []domain.SourceRecord{
		{Name: "AP", URL: "https://apnews.com/a", Relevant: true},
		{Name: "BBC", URL: "https://www.bbc.com/b", Relevant: true},
		{Name: "Reuters", URL: "https://www.reuters.com/c", Relevant: true},
	}}
	store := newMemoryStore()
	hist := &memoryHistory{}
	svc, _ := newAnalysisService(assessor, finder, store, hist)

	got, err := svc.Analyze(context.Background(), sampleRequest())
	require.NoError(t, err)

	// 36 + 23.75 + 0.4*20 + 0.9*15 + 5 = 86.25
	assert.Equal(t, 86, got.Score)
	assert.Equal(t, domain.AnalysisLikelyReal, got.Verdict)
	assert.Equal(t, "Consistent with wire reports.", got.Explanation)
	assert.Equal(t, 90, got.Confidence)
	assert.Equal(t, []string{}, got.Flags)
	assert.Len(t, got.Sources, 3)
	assert.Equal(t, "Highly Credible", got.Interpretation.Label)
	assert.Equal(t, 100, got.ConfidenceLevel)
	assert.Equal(t, fixedNow, got.Timestamp)
	assert.True(t, domain.IsValidContentHash(got.ContentHash))

	require.Len(t, assessor.requests, 1)
	assert.Len(t, assessor.requests[0].Related, 3)
	assert.Equal(t, "Central bank holds rates", finder.query)
}

func TestAnalyze_StoresContentAndHistory(t *testing.T) {
	assessor := &fakeAssessor{result: &domain.AIAssessment{Confidence: 70}}
	store := newMemoryStore()
	hist := &memoryHistory{}
	svc, _ := newAnalysisService(assessor, &fakeFinder{}, store, hist)

	got, err := svc.Analyze(context.Background(), sampleRequest())
	require.NoError(t, err)

	stored, err := svc.Content(got.ContentHash)
	require.NoError(t, err)
	assert.Equal(t, "Central bank holds rates", stored.Title)
	assert.Equal(t, "2026-03-01T12:00:00Z", stored.Timestamp)

	entries, err := svc.History()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, got.Score, entries[0].Score)
	assert.Equal(t, "abc123", entries[0].Revision)
	assert.Equal(t, got.ContentHash, entries[0].ContentHash)
}

func TestAnalyze_ContentHashMatchesRegistryFormula(t *testing.T) {
	svc, _ := newAnalysisService(&fakeAssessor{result: &domain.AIAssessment{}}, nil, nil, nil)
	req := sampleRequest()

	got, err := svc.Analyze(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.ContentHash(req.Title, strings.TrimSpace(req.Content), req.SourceURL), got.ContentHash)
}

func TestAnalyze_AssessorFailureYieldsNeutralResult(t *testing.T) {
	svc, hook := newAnalysisService(&fakeAssessor{err: errUpstream}, &fakeFinder{}, newMemoryStore(), &memoryHistory{})

	got, err := svc.Analyze(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, 50, got.Score)
	assert.Equal(t, domain.AnalysisUncertain, got.Verdict)
	assert.Equal(t, 0, got.Confidence)
	assert.Equal(t, []string{"analysis_error"}, got.Flags)
	assert.Empty(t, got.Sources)
	assert.True(t, got.IsFallback())
	assert.NotEmpty(t, got.ContentHash)

	var sawError bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel {
			sawError = true
		}
	}
	assert.True(t, sawError, "fallback should be logged at error level")
}

func TestAnalyze_NilAssessmentYieldsNeutralResult(t *testing.T) {
	svc, _ := newAnalysisService(&fakeAssessor{}, nil, nil, nil)

	got, err := svc.Analyze(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.True(t, got.IsFallback())
}

func TestAnalyze_SearchFailureMeansNoCorroboration(t *testing.T) {
	assessor := &fakeAssessor{result: &domain.AIAssessment{Confidence: 80}}
	svc, hook := newAnalysisService(assessor, &fakeFinder{err: errUpstream}, nil, nil)

	got, err := svc.Analyze(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.False(t, got.IsFallback())
	assert.Empty(t, got.Sources)
	assert.NotNil(t, got.Sources)
	require.Len(t, assessor.requests, 1)
	assert.Empty(t, assessor.requests[0].Related)
	assert.NotEmpty(t, hook.AllEntries())
}

func TestAnalyze_InvalidRequest(t *testing.T) {
	assessor := &fakeAssessor{result: &domain.AIAssessment{}}
	svc, _ := newAnalysisService(assessor, nil, nil, nil)

	_, err := svc.Analyze(context.Background(), domain.AnalyzeRequest{Content: "short", Title: "t", SourceURL: "https://x.io"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid request")
	assert.Empty(t, assessor.requests)
}

func TestAnalyze_CanceledContext(t *testing.T) {
	svc, _ := newAnalysisService(&fakeAssessor{err: context.Canceled}, nil, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Analyze(ctx, sampleRequest())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_SanitizesContent(t *testing.T) {
	assessor := &fakeAssessor{result: &domain.AIAssessment{}}
	svc, _ := newAnalysisService(assessor, nil, nil, nil)
	req := sampleRequest()
	req.Content += `<script>alert("x")</script>`

	_, err := svc.Analyze(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, assessor.requests, 1)
	assert.NotContains(t, assessor.requests[0].Content, "<script>")
}

func TestAnalyzeBatch_SettlesEachItem(t *testing.T) {
	svc, _ := newAnalysisService(&fakeAssessor{result: &domain.AIAssessment{Confidence: 75}}, nil, newMemoryStore(), nil)
	bad := domain.AnalyzeRequest{Content: "tiny", Title: "x", SourceURL: "https://a.io"}

	items, err := svc.AnalyzeBatch(context.Background(), []domain.AnalyzeRequest{sampleRequest(), bad, sampleRequest()})
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.True(t, items[0].Success)
	assert.NotNil(t, items[0].Analysis)
	assert.False(t, items[1].Success)
	assert.Contains(t, items[1].Error, "content")
	assert.True(t, items[2].Success)
	assert.Equal(t, 1, items[1].Index)
}

func TestAnalyzeBatch_RejectsEmptyAndOversized(t *testing.T) {
	svc, _ := newAnalysisService(&fakeAssessor{}, nil, nil, nil)

	_, err := svc.AnalyzeBatch(context.Background(), nil)
	assert.Error(t, err)

	reqs := make([]domain.AnalyzeRequest, domain.MaxBatchSize+1)
	_, err = svc.AnalyzeBatch(context.Background(), reqs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum 10")
}

func TestContent_WithoutStore(t *testing.T) {
	svc, _ := newAnalysisService(&fakeAssessor{}, nil, nil, nil)
	_, err := svc.Content("0xabc")
	assert.ErrorIs(t, err, domain.ErrContentNotFound)
}

func TestStorageStats(t *testing.T) {
	store := newMemoryStore()
	svc, _ := newAnalysisService(&fakeAssessor{result: &domain.AIAssessment{}}, nil, store, nil)
	_, err := svc.Analyze(context.Background(), sampleRequest())
	require.NoError(t, err)

	stats, err := svc.StorageStats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalItems)
}
