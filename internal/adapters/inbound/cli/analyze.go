package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abdidvp/credence/internal/adapters/outbound/tui"
	"github.com/abdidvp/credence/internal/domain"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		title      string
		sourceURL  string
		file       string
		fetchURL   string
		jsonOutput bool
		badge      bool
		ciMode     bool
		minScore   int
	)

	cmd := &cobra.Command{
		Use:   "analyze [content]",
		Short: "Analyze an article and score its credibility",
		Long: "Analyze one article: look up related coverage, ask the model for an assessment and combine it " +
			"with source reputation into a 0-100 credibility score. Content comes from the argument, --file " +
			"(- for stdin) or --fetch, which downloads the page and extracts its readable text.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			req := domain.AnalyzeRequest{Title: title, SourceURL: sourceURL}

			switch {
			case fetchURL != "":
				art, err := a.fetcher.Fetch(cmd.Context(), fetchURL)
				if err != nil {
					return err
				}
				req.Content = art.Content
				if req.Title == "" {
					req.Title = art.Title
				}
				if req.SourceURL == "" {
					req.SourceURL = art.URL
				}
			case file != "":
				content, err := readInput(cmd, file)
				if err != nil {
					return err
				}
				req.Content = content
			case len(args) > 0:
				req.Content = args[0]
			default:
				return fmt.Errorf("no content: pass it as an argument, with --file or with --fetch")
			}

			analysis, err := a.analysis.Analyze(cmd.Context(), req)
			if err != nil {
				return err
			}

			switch {
			case jsonOutput:
				if err := renderJSON(cmd, analysis); err != nil {
					return err
				}
			case badge:
				renderBadge(cmd, analysis.Score)
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderAnalysis(analysis))
			}

			if ciMode && analysis.Score < minScore {
				return fmt.Errorf("score %d is below minimum %d", analysis.Score, minScore)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Article title")
	cmd.Flags().StringVar(&sourceURL, "url", "", "Source URL of the article")
	cmd.Flags().StringVar(&file, "file", "", "Read content from a file (- for stdin)")
	cmd.Flags().StringVar(&fetchURL, "fetch", "", "Download the article at this URL")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output analysis as JSON")
	cmd.Flags().BoolVar(&badge, "badge", false, "Output shields.io badge URL")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum score for CI mode")
	cmd.MarkFlagsMutuallyExclusive("file", "fetch")

	return cmd
}

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Analyze up to 10 articles from a JSON file",
		Long: "Analyze a JSON array of {\"content\", \"title\", \"sourceUrl\"} objects concurrently. " +
			"Each article settles on its own; the output is a JSON array of results.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			var reqs []domain.AnalyzeRequest
			if err := json.Unmarshal([]byte(data), &reqs); err != nil {
				return fmt.Errorf("parsing batch file: %w", err)
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			items, err := a.analysis.AnalyzeBatch(cmd.Context(), reqs)
			if err != nil {
				return err
			}
			return renderJSON(cmd, items)
		},
	}
	return cmd
}

func readInput(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return strings.TrimSpace(string(data)), nil
}
