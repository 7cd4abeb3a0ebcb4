package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/abdidvp/credence/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the Credence MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start Credence MCP server (stdio)",
		Long:  "Start the Credence MCP server using stdio transport. This lets AI assistants analyze articles, score assessments and read community consensus.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			s := mcpadapter.NewCredenceMCPServer(version, mcpadapter.Services{
				Analysis:  a.analysis,
				Consensus: a.consensusService,
			})
			return server.ServeStdio(s)
		},
	}
	return cmd
}
