package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/credence/internal/application"
	"github.com/abdidvp/credence/internal/domain"
	"github.com/abdidvp/credence/internal/domain/scoring"
)

// registerTools registers all Credence MCP tools on the given server.
func registerTools(s *server.MCPServer, svc Services) {
	// 1. credence_analyze
	s.AddTool(
		mcplib.NewTool("credence_analyze",
			mcplib.WithDescription("Analyze a news article and return its credibility score, verdict, flags and related sources as JSON"),
			mcplib.WithString("content",
				mcplib.Required(),
				mcplib.Description("Article text (50 to 50000 characters)"),
			),
			mcplib.WithString("title",
				mcplib.Required(),
				mcplib.Description("Article title"),
			),
			mcplib.WithString("source_url",
				mcplib.Required(),
				mcplib.Description("URL the article was published at"),
			),
		),
		handleAnalyze(svc),
	)

	// 2. credence_score
	s.AddTool(
		mcplib.NewTool("credence_score",
			mcplib.WithDescription("Score an existing AI assessment against source reputation and corroboration without calling a model"),
			mcplib.WithString("assessment",
				mcplib.Required(),
				mcplib.Description(`Assessment JSON: {"confidence": 0-100, "red_flags": [...], "supporting_factors": [...]}`),
			),
			mcplib.WithString("content",
				mcplib.Description("Article text, used for the content-length signal"),
			),
			mcplib.WithString("source_url",
				mcplib.Description("URL the article was published at"),
			),
			mcplib.WithString("sources",
				mcplib.Description(`JSON array of related sources: [{"name", "url", "relevant"}]`),
			),
		),
		handleScore(),
	)

	// 3. credence_domain_reputation
	s.AddTool(
		mcplib.NewTool("credence_domain_reputation",
			mcplib.WithDescription("Returns the reputation score, tier and notes for the domain of a source URL"),
			mcplib.WithString("url",
				mcplib.Required(),
				mcplib.Description("Source URL to classify"),
			),
		),
		handleDomainReputation(),
	)

	// 4. credence_consensus
	s.AddTool(
		mcplib.NewTool("credence_consensus",
			append([]mcplib.ToolOption{
				mcplib.WithDescription("Blend an AI score with community votes into a consensus verdict. Pass news_id to read both from the ledger"),
			}, voteOptions()...)...,
		),
		handleConsensus(svc, false),
	)

	// 5. credence_dynamic_score
	s.AddTool(
		mcplib.NewTool("credence_dynamic_score",
			append([]mcplib.ToolOption{
				mcplib.WithDescription("Returns the live display score that shifts weight from the AI to the community as votes arrive"),
			}, voteOptions()...)...,
		),
		handleConsensus(svc, true),
	)

	// 6. credence_get_content
	s.AddTool(
		mcplib.NewTool("credence_get_content",
			mcplib.WithDescription("Returns previously analyzed content by its 0x-prefixed content hash"),
			mcplib.WithString("hash",
				mcplib.Required(),
				mcplib.Description("Content hash returned by credence_analyze"),
			),
		),
		handleGetContent(svc),
	)
}

func voteOptions() []mcplib.ToolOption {
	return []mcplib.ToolOption{
		mcplib.WithNumber("news_id", mcplib.Description("On-chain news id; overrides the other arguments")),
		mcplib.WithNumber("ai_score", mcplib.Description("AI credibility score (0-100)")),
		mcplib.WithNumber("real", mcplib.Description("Votes for real")),
		mcplib.WithNumber("fake", mcplib.Description("Votes for fake")),
		mcplib.WithNumber("uncertain", mcplib.Description("Votes for uncertain")),
	}
}

func handleAnalyze(svc Services) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		if svc.Analysis == nil {
			return errorResult("analysis service not configured"), nil
		}
		content, err := request.RequireString("content")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		title, err := request.RequireString("title")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		sourceURL, err := request.RequireString("source_url")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		analysis, err := svc.Analysis.Analyze(ctx, domain.AnalyzeRequest{
			Content:   content,
			Title:     title,
			SourceURL: sourceURL,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(analysis)
	}
}

func handleScore() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, err := request.RequireString("assessment")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		var assessment domain.AIAssessment
		if err := json.Unmarshal([]byte(raw), &assessment); err != nil {
			return errorResult(fmt.Sprintf("invalid assessment: %v", err)), nil
		}

		related := []domain.SourceRecord{}
		if rawSources := request.GetString("sources", ""); rawSources != "" {
			if err := json.Unmarshal([]byte(rawSources), &related); err != nil {
				return errorResult(fmt.Sprintf("invalid sources: %v", err)), nil
			}
		}

		content := request.GetString("content", "")
		sourceURL := request.GetString("source_url", "")

		score := scoring.Score(assessment, related, content, sourceURL)
		return jsonResult(map[string]any{
			"score":          score,
			"verdict":        scoring.DetermineVerdict(score),
			"interpretation": scoring.InterpretScore(score),
			"reputation":     scoring.GetDomainReputation(sourceURL),
		})
	}
}

func handleDomainReputation() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(scoring.GetDomainReputation(url))
	}
}

func handleConsensus(svc Services, dynamicOnly bool) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		var (
			report *application.ConsensusReport
			err    error
		)

		if newsID := request.GetFloat("news_id", 0); newsID > 0 {
			if svc.Consensus == nil {
				return errorResult("chain not configured"), nil
			}
			cs, err := svc.Consensus(ctx)
			if err != nil {
				return errorResult(err.Error()), nil
			}
			report, err = cs.Report(ctx, uint64(newsID))
			if err != nil {
				return errorResult(fmt.Sprintf("reading news %d: %v", uint64(newsID), err)), nil
			}
		} else {
			votes := domain.NewVoteCounts(
				int(request.GetFloat("real", 0)),
				int(request.GetFloat("fake", 0)),
				int(request.GetFloat("uncertain", 0)),
			)
			report, err = application.Evaluate(int(request.GetFloat("ai_score", 0)), votes)
			if err != nil {
				return errorResult(err.Error()), nil
			}
		}

		if dynamicOnly {
			return jsonResult(report.Dynamic)
		}
		return jsonResult(report)
	}
}

func handleGetContent(svc Services) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		hash, err := request.RequireString("hash")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if !domain.IsValidContentHash(hash) {
			return errorResult(fmt.Sprintf("invalid content hash %q", hash)), nil
		}
		if svc.Analysis == nil {
			return errorResult("analysis service not configured"), nil
		}

		item, err := svc.Analysis.Content(hash)
		if errors.Is(err, domain.ErrContentNotFound) {
			return errorResult(fmt.Sprintf("content %s not found", hash)), nil
		}
		if err != nil {
			return errorResult(fmt.Sprintf("reading content: %v", err)), nil
		}
		return jsonResult(item)
	}
}

// jsonResult marshals v to indented JSON and wraps it in a CallToolResult.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
