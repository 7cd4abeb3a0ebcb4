// Package chain reads news items and community votes from the registry
// and vote manager contracts.
package chain

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/abdidvp/credence/internal/domain"
)

// Ledger implements domain.VoteLedger and domain.NewsReader with eth_call.
type Ledger struct {
	caller      ethereum.ContractCaller
	client      *ethclient.Client
	registry    common.Address
	voteManager common.Address
	registryABI abi.ABI
	votesABI    abi.ABI
}

var (
	_ domain.VoteLedger = (*Ledger)(nil)
	_ domain.NewsReader = (*Ledger)(nil)
)

// Dial connects to the RPC endpoint in cfg.
func Dial(ctx context.Context, cfg domain.ChainConfig) (*Ledger, error) {
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dialing %s: %w", cfg.RPCURL, err)
	}
	l, err := New(client, common.HexToAddress(cfg.NewsRegistry), common.HexToAddress(cfg.VoteManager))
	if err != nil {
		client.Close()
		return nil, err
	}
	l.client = client
	return l, nil
}

// New builds a ledger over any contract caller.
func New(caller ethereum.ContractCaller, registry, voteManager common.Address) (*Ledger, error) {
	registryABI, err := abi.JSON(strings.NewReader(newsRegistryABI))
	if err != nil {
		return nil, fmt.Errorf("parsing news registry abi: %w", err)
	}
	votesABI, err := abi.JSON(strings.NewReader(voteManagerABI))
	if err != nil {
		return nil, fmt.Errorf("parsing vote manager abi: %w", err)
	}
	return &Ledger{
		caller:      caller,
		registry:    registry,
		voteManager: voteManager,
		registryABI: registryABI,
		votesABI:    votesABI,
	}, nil
}

// Close releases the RPC connection, if the ledger owns one.
func (l *Ledger) Close() {
	if l.client != nil {
		l.client.Close()
	}
}

func (l *Ledger) VoteCounts(ctx context.Context, newsID uint64) (domain.VoteCounts, error) {
	out, err := l.call(ctx, l.votesABI, l.voteManager, "getVoteCounts", new(big.Int).SetUint64(newsID))
	if err != nil {
		return domain.VoteCounts{}, err
	}

	var counts [4]int
	for i := range counts {
		if counts[i], err = toInt(out[i]); err != nil {
			return domain.VoteCounts{}, fmt.Errorf("getVoteCounts: %w", err)
		}
	}

	return domain.VoteCounts{Real: counts[0], Fake: counts[1], Uncertain: counts[2], Total: counts[3]}, nil
}

func (l *Ledger) AIScore(ctx context.Context, newsID uint64) (int, error) {
	out, err := l.call(ctx, l.registryABI, l.registry, "getAIScore", new(big.Int).SetUint64(newsID))
	if err != nil {
		return 0, err
	}
	score, err := toInt(out[0])
	if err != nil {
		return 0, fmt.Errorf("getAIScore: %w", err)
	}
	return score, nil
}

func (l *Ledger) TotalNews(ctx context.Context) (uint64, error) {
	out, err := l.call(ctx, l.registryABI, l.registry, "getTotalNews")
	if err != nil {
		return 0, err
	}
	total := abi.ConvertType(out[0], new(big.Int)).(*big.Int)
	if !total.IsUint64() {
		return 0, fmt.Errorf("getTotalNews: %s overflows uint64", total)
	}
	return total.Uint64(), nil
}

// newsTuple mirrors the NewsRegistry.News struct returned by getNews.
// Field names follow the abi package's camel-casing of the component names.
type newsTuple struct {
	Id              *big.Int
	ContentHash     [32]byte
	AiScore         *big.Int
	Submitter       common.Address
	SubmitterZkHash [32]byte
	Timestamp       *big.Int
	Title           string
	SourceUrl       string
	Exists          bool
}

func (l *Ledger) News(ctx context.Context, newsID uint64) (*domain.NewsRecord, error) {
	out, err := l.call(ctx, l.registryABI, l.registry, "getNews", new(big.Int).SetUint64(newsID))
	if err != nil {
		return nil, err
	}

	news := *abi.ConvertType(out[0], new(newsTuple)).(*newsTuple)
	if news.Id == nil || news.AiScore == nil || news.Timestamp == nil {
		return nil, fmt.Errorf("getNews: incomplete record for news %d", newsID)
	}
	if !news.Id.IsUint64() {
		return nil, fmt.Errorf("getNews: id %s overflows uint64", news.Id)
	}
	aiScore, err := toInt(news.AiScore)
	if err != nil {
		return nil, fmt.Errorf("getNews: %w", err)
	}

	rec := &domain.NewsRecord{
		ID:          news.Id.Uint64(),
		ContentHash: common.Hash(news.ContentHash).Hex(),
		AIScore:     aiScore,
		Submitter:   news.Submitter.Hex(),
		Title:       news.Title,
		SourceURL:   news.SourceUrl,
		Exists:      news.Exists,
	}
	ts := news.Timestamp
	if ts.Sign() > 0 && ts.IsInt64() {
		rec.Timestamp = time.Unix(ts.Int64(), 0).UTC()
	}
	return rec, nil
}

// call packs method, runs eth_call against the latest block and unpacks
// the outputs.
func (l *Ledger) call(ctx context.Context, contract abi.ABI, to common.Address, method string, args ...any) ([]any, error) {
	data, err := contract.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("packing %s: %w", method, err)
	}

	raw, err := l.caller.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", method, err)
	}

	out, err := contract.Unpack(method, raw)
	if err != nil {
		return nil, fmt.Errorf("unpacking %s: %w", method, err)
	}
	if len(out) != len(contract.Methods[method].Outputs) {
		return nil, fmt.Errorf("%s returned %d values", method, len(out))
	}
	return out, nil
}

func toInt(v any) (int, error) {
	n := abi.ConvertType(v, new(big.Int)).(*big.Int)
	if !n.IsInt64() || n.Int64() > math.MaxInt {
		return 0, fmt.Errorf("value %s overflows int", n)
	}
	return int(n.Int64()), nil
}
