package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/credence/internal/domain"
	"github.com/abdidvp/credence/internal/domain/scoring"
)

// scoreResult is the offline scoring output.
type scoreResult struct {
	Score           int                     `json:"score"`
	Verdict         domain.AnalysisVerdict  `json:"verdict"`
	ConfidenceLevel int                     `json:"confidence_level"`
	Interpretation  domain.Interpretation   `json:"interpretation"`
	Reputation      domain.DomainReputation `json:"reputation"`
}

func newScoreCmd() *cobra.Command {
	var (
		assessmentFile string
		sourcesFile    string
		contentFile    string
		sourceURL      string
		jsonOutput     bool
		badge          bool
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a saved AI assessment without calling a model",
		Long: "Compute the credibility score from an assessment JSON file (confidence, red_flags, supporting_factors), " +
			"an optional JSON array of related sources and the article content. Nothing leaves the machine.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, assessmentFile)
			if err != nil {
				return err
			}
			var assessment domain.AIAssessment
			if err := json.Unmarshal([]byte(raw), &assessment); err != nil {
				return fmt.Errorf("parsing assessment: %w", err)
			}

			related := []domain.SourceRecord{}
			if sourcesFile != "" {
				raw, err := readInput(cmd, sourcesFile)
				if err != nil {
					return err
				}
				if err := json.Unmarshal([]byte(raw), &related); err != nil {
					return fmt.Errorf("parsing sources: %w", err)
				}
			}

			var content string
			if contentFile != "" {
				if content, err = readInput(cmd, contentFile); err != nil {
					return err
				}
			}

			score := scoring.Score(assessment, related, content, sourceURL)
			result := scoreResult{
				Score:   score,
				Verdict: scoring.DetermineVerdict(score),
				ConfidenceLevel: scoring.ConfidenceLevel(
					scoring.EffectiveConfidence(assessment.Confidence), len(related), sourceURL != ""),
				Interpretation: scoring.InterpretScore(score),
				Reputation:     scoring.GetDomainReputation(sourceURL),
			}

			switch {
			case jsonOutput:
				return renderJSON(cmd, result)
			case badge:
				renderBadge(cmd, result.Score)
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%d/100  %s  (%s)\n", result.Score, result.Interpretation.Label, result.Verdict)
				fmt.Fprintln(cmd.OutOrStdout(), result.Interpretation.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&assessmentFile, "assessment", "", "Assessment JSON file (- for stdin)")
	cmd.Flags().StringVar(&sourcesFile, "sources", "", "JSON array of related sources")
	cmd.Flags().StringVar(&contentFile, "content", "", "Article content file")
	cmd.Flags().StringVar(&sourceURL, "url", "", "Source URL of the article")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output score as JSON")
	cmd.Flags().BoolVar(&badge, "badge", false, "Output shields.io badge URL")
	_ = cmd.MarkFlagRequired("assessment")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderBadge(cmd *cobra.Command, score int) {
	color := domain.BadgeColor(score)
	url := fmt.Sprintf("https://img.shields.io/badge/credibility-%d%%2F100-%s", score, color)
	fmt.Fprintln(cmd.OutOrStdout(), url)
}
