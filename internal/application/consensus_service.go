package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/abdidvp/credence/internal/domain"
	"github.com/abdidvp/credence/internal/domain/consensus"
)

// ConsensusReport combines both blends for one news item.
type ConsensusReport struct {
	NewsID    uint64                    `json:"news_id,omitempty"`
	AIScore   int                       `json:"ai_score"`
	Votes     domain.VoteCounts         `json:"votes"`
	Consensus domain.ConsensusResult    `json:"consensus"`
	Dynamic   domain.DynamicScoreResult `json:"dynamic"`
}

// Evaluate runs both blends over inputs the caller already has.
func Evaluate(aiScore int, votes domain.VoteCounts) (*ConsensusReport, error) {
	if aiScore < 0 || aiScore > 100 {
		return nil, fmt.Errorf("ai score %d out of range 0-100", aiScore)
	}
	if err := votes.Validate(); err != nil {
		return nil, err
	}
	return &ConsensusReport{
		AIScore:   aiScore,
		Votes:     votes,
		Consensus: consensus.Calculate(aiScore, votes),
		Dynamic:   consensus.Dynamic(aiScore, votes),
	}, nil
}

// ConsensusService reads scores and tallies from the ledger and evaluates
// them. It holds no state between calls.
type ConsensusService struct {
	ledger domain.VoteLedger
	news   domain.NewsReader
	log    logrus.FieldLogger
}

func NewConsensusService(ledger domain.VoteLedger, news domain.NewsReader, log logrus.FieldLogger) *ConsensusService {
	return &ConsensusService{ledger: ledger, news: news, log: log}
}

// Report evaluates one registered news item.
func (s *ConsensusService) Report(ctx context.Context, newsID uint64) (*ConsensusReport, error) {
	aiScore, err := s.news.AIScore(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("reading ai score for news %d: %w", newsID, err)
	}

	votes, err := s.ledger.VoteCounts(ctx, newsID)
	if err != nil {
		return nil, fmt.Errorf("reading votes for news %d: %w", newsID, err)
	}

	report, err := Evaluate(aiScore, votes)
	if err != nil {
		return nil, fmt.Errorf("news %d: %w", newsID, err)
	}
	report.NewsID = newsID

	s.log.WithFields(logrus.Fields{
		"news_id":     newsID,
		"final_score": report.Consensus.FinalScore,
		"verdict":     report.Consensus.Verdict,
	}).Debug("consensus evaluated")

	return report, nil
}

// NewsItem pairs a registered news record with its consensus report.
type NewsItem struct {
	News   *domain.NewsRecord `json:"news"`
	Report *ConsensusReport   `json:"report"`
}

// News reads a registered news item together with its consensus report.
func (s *ConsensusService) News(ctx context.Context, newsID uint64) (*NewsItem, error) {
	rec, err := s.news.News(ctx, newsID)
	if err != nil {
		return nil, err
	}
	if !rec.Exists {
		return nil, fmt.Errorf("news %d: %w", newsID, domain.ErrNewsNotFound)
	}
	report, err := s.Report(ctx, newsID)
	if err != nil {
		return nil, err
	}
	return &NewsItem{News: rec, Report: report}, nil
}

// Latest returns up to limit of the most recently registered items,
// newest first. News IDs start at 1.
func (s *ConsensusService) Latest(ctx context.Context, limit int) ([]NewsItem, error) {
	total, err := s.news.TotalNews(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading total news: %w", err)
	}

	var items []NewsItem
	for id := total; id >= 1 && len(items) < limit; id-- {
		item, err := s.News(ctx, id)
		if err != nil {
			s.log.WithError(err).WithField("news_id", id).Warn("skipping news item")
			continue
		}
		items = append(items, *item)
	}
	return items, nil
}
