package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/credence/internal/domain"
	"github.com/abdidvp/credence/internal/domain/scoring"
)

const (
	trustedSourcesURI = "credence://trusted-sources"
	historyURI        = "credence://history"
)

// registerResources registers all Credence MCP resources on the given server.
func registerResources(s *server.MCPServer, svc Services) {
	s.AddResource(
		mcplib.NewResource(
			trustedSourcesURI,
			"Trusted Sources",
			mcplib.WithResourceDescription("Domains treated as trusted when scoring and corroborating articles"),
			mcplib.WithMIMEType("application/json"),
		),
		handleTrustedSources(),
	)

	s.AddResource(
		mcplib.NewResource(
			historyURI,
			"Analysis History",
			mcplib.WithResourceDescription("Past analyses with their scores and verdicts, oldest first"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistory(svc),
	)
}

func handleTrustedSources() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonResource(trustedSourcesURI, scoring.TrustedSources())
	}
}

func handleHistory(svc Services) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries := []domain.AnalysisEntry{}
		if svc.Analysis != nil {
			loaded, err := svc.Analysis.History()
			if err != nil {
				return nil, fmt.Errorf("loading history: %w", err)
			}
			if loaded != nil {
				entries = loaded
			}
		}
		return jsonResource(historyURI, entries)
	}
}

func jsonResource(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
