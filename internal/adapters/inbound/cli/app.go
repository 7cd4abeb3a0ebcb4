package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abdidvp/credence/internal/adapters/outbound/article"
	"github.com/abdidvp/credence/internal/adapters/outbound/chain"
	"github.com/abdidvp/credence/internal/adapters/outbound/config"
	"github.com/abdidvp/credence/internal/adapters/outbound/gitinfo"
	"github.com/abdidvp/credence/internal/adapters/outbound/history"
	"github.com/abdidvp/credence/internal/adapters/outbound/llm"
	"github.com/abdidvp/credence/internal/adapters/outbound/logger"
	"github.com/abdidvp/credence/internal/adapters/outbound/search"
	"github.com/abdidvp/credence/internal/adapters/outbound/store"
	"github.com/abdidvp/credence/internal/adapters/outbound/votecache"
	"github.com/abdidvp/credence/internal/application"
	"github.com/abdidvp/credence/internal/domain"
)

var errChainDisabled = errors.New("chain not configured: set chain.rpc_url, chain.news_registry and chain.vote_manager in .credence.yaml")

// app holds the services a command needs, built from .credence.yaml in dir.
type app struct {
	dir      string
	cfg      domain.Config
	log      *logrus.Logger
	analysis *application.AnalysisService
	insights *application.InsightService
	fetcher  domain.ArticleFetcher

	mu        sync.Mutex
	consensus *application.ConsensusService
	closers   []func()
}

func newApp(cmd *cobra.Command) (*app, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = "."
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	var loader domain.ConfigLoader = config.New()
	cfg, err := loader.Load(absDir)
	if err != nil {
		return nil, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	a := &app{dir: absDir, cfg: cfg, log: log, fetcher: article.New()}

	// 1. Model-backed providers, or the neutral stand-in
	var (
		assessor domain.AssessmentProvider = llm.Unavailable{}
		claims   domain.ClaimAnalyzer      = llm.Unavailable{}
		quick    domain.QuickChecker       = llm.Unavailable{}
		patterns domain.PatternDetector    = llm.Unavailable{}
	)
	if cfg.LLMEnabled() {
		cm, err := llm.NewChatModel(cmd.Context(), cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("creating chat model: %w", err)
		}
		client := llm.NewClient(cm, llm.NewLimiter(cfg.Concurrency.RPM, cfg.Concurrency.Burst), log).
			WithRetries(cfg.LLM.MaxRetries)
		p := llm.NewAssessor(client)
		assessor, claims, quick, patterns = p, p, p, p
	} else {
		log.Debug("no llm api key configured, analyses use the neutral result")
	}

	a.insights = application.NewInsightService(claims, quick, patterns, log)
	a.analysis = a.newAnalysis(assessor)
	return a, nil
}

func (a *app) newAnalysis(assessor domain.AssessmentProvider) *application.AnalysisService {
	// 2. Related sources are optional
	var finder domain.SourceFinder
	searcher, err := search.NewSearcher(a.cfg.Search)
	switch {
	case err != nil:
		a.log.WithError(err).Warn("search provider disabled")
	case searcher != nil:
		finder = search.NewFinder(searcher, a.cfg.Search.MaxResults)
	}

	// 3. Local persistence under the data directory
	dataDir := a.cfg.DataDir
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(a.dir, dataDir)
	}

	svc := application.NewAnalysisService(assessor, finder, store.New(dataDir), history.New(dataDir), a.log).
		WithBatchLimit(a.cfg.Concurrency.BatchLimit)

	var revisions domain.RevisionSource = gitinfo.New()
	if rev, err := revisions.Revision(a.dir); err == nil {
		svc.WithRevision(rev)
	}
	return svc
}

// consensusService dials the chain on first use.
func (a *app) consensusService(ctx context.Context) (*application.ConsensusService, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.consensus != nil {
		return a.consensus, nil
	}
	if !a.cfg.ChainEnabled() {
		return nil, errChainDisabled
	}

	ledger, err := chain.Dial(ctx, a.cfg.Chain)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, ledger.Close)

	rdb := votecache.Connect(ctx, a.cfg.Cache.RedisURL, a.log)
	if rdb != nil {
		a.closers = append(a.closers, func() { _ = rdb.Close() })
	}
	votes := votecache.New(ledger, rdb, a.cfg.Cache.TTL(), a.log)

	a.consensus = application.NewConsensusService(votes, ledger, a.log)
	return a.consensus, nil
}

func (a *app) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
