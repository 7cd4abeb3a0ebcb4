package application_test

import (
	"context"
	"errors"
	"sync"

	"github.com/abdidvp/credence/internal/domain"
)

type fakeAssessor struct {
	mu       sync.Mutex
	result   *domain.AIAssessment
	err      error
	requests []domain.AssessmentRequest
}

func (f *fakeAssessor) Assess(_ context.Context, req domain.AssessmentRequest) (*domain.AIAssessment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	return f.result, f.err
}

type fakeFinder struct {
	sources []domain.SourceRecord
	err     error
	query   string
}

func (f *fakeFinder) FindRelated(_ context.Context, query string) ([]domain.SourceRecord, error) {
	f.query = query
	return f.sources, f.err
}

type memoryStore struct {
	mu    sync.Mutex
	items map[string]domain.StoredContent
	err   error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{items: map[string]domain.StoredContent{}}
}

func (m *memoryStore) Save(item domain.StoredContent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.items[item.Hash] = item
	return nil
}

func (m *memoryStore) Get(hash string) (*domain.StoredContent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.items[hash]
	if !ok {
		return nil, domain.ErrContentNotFound
	}
	return &item, nil
}

func (m *memoryStore) Stats() (domain.StorageStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return domain.StorageStats{TotalItems: len(m.items), StoragePath: "memory"}, nil
}

type memoryHistory struct {
	mu      sync.Mutex
	entries []domain.AnalysisEntry
}

func (m *memoryHistory) Save(e domain.AnalysisEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

func (m *memoryHistory) Load() ([]domain.AnalysisEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.AnalysisEntry(nil), m.entries...), nil
}

type fakeLedger struct {
	votes map[uint64]domain.VoteCounts
	err   error
}

func (f *fakeLedger) VoteCounts(_ context.Context, id uint64) (domain.VoteCounts, error) {
	if f.err != nil {
		return domain.VoteCounts{}, f.err
	}
	return f.votes[id], nil
}

type fakeNews struct {
	scores map[uint64]int
	titles map[uint64]string
	total  uint64
}

func (f *fakeNews) AIScore(_ context.Context, id uint64) (int, error) {
	score, ok := f.scores[id]
	if !ok {
		return 0, domain.ErrNewsNotFound
	}
	return score, nil
}

func (f *fakeNews) News(_ context.Context, id uint64) (*domain.NewsRecord, error) {
	score, ok := f.scores[id]
	return &domain.NewsRecord{ID: id, AIScore: score, Title: f.titles[id], Exists: ok}, nil
}

func (f *fakeNews) TotalNews(context.Context) (uint64, error) {
	return f.total, nil
}

var errUpstream = errors.New("upstream unavailable")
