package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/credence/internal/application"
)

// Services are the application services the MCP tools call into.
type Services struct {
	Analysis *application.AnalysisService
	// Consensus returns the ledger-backed service, or an error when no
	// chain is configured. It may be nil.
	Consensus func(ctx context.Context) (*application.ConsensusService, error)
}

// NewCredenceMCPServer creates a new MCP server with all Credence tools and
// resources registered.
func NewCredenceMCPServer(version string, svc Services) *server.MCPServer {
	s := server.NewMCPServer(
		"credence",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc)
	registerResources(s, svc)

	return s
}
