package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/credence/internal/adapters/outbound/tui"
)

// insightCmd builds a command that runs one model helper over article text.
func insightCmd(use, short string, run func(cmd *cobra.Command, a *app, content string, jsonOutput bool) error) *cobra.Command {
	var (
		file       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   use + " [content]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var content string
			switch {
			case file != "":
				c, err := readInput(cmd, file)
				if err != nil {
					return err
				}
				content = c
			case len(args) > 0:
				content = args[0]
			default:
				return fmt.Errorf("no content: pass it as an argument or with --file")
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			return run(cmd, a, content, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Read content from a file (- for stdin)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newClaimsCmd() *cobra.Command {
	return insightCmd("claims", "Extract the factual claims in an article",
		func(cmd *cobra.Command, a *app, content string, jsonOutput bool) error {
			claims := a.insights.Claims(cmd.Context(), content)
			if jsonOutput {
				return renderJSON(cmd, claims)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderClaims(claims))
			return nil
		})
}

func newQuickCmd() *cobra.Command {
	return insightCmd("quick", "Get a fast single-number credibility estimate",
		func(cmd *cobra.Command, a *app, content string, jsonOutput bool) error {
			score := a.insights.QuickCheck(cmd.Context(), content)
			if jsonOutput {
				return renderJSON(cmd, map[string]int{"score": score})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d/100\n", score)
			return nil
		})
}

func newPatternsCmd() *cobra.Command {
	return insightCmd("patterns", "Detect common misinformation patterns",
		func(cmd *cobra.Command, a *app, content string, jsonOutput bool) error {
			report := a.insights.Patterns(cmd.Context(), content)
			if jsonOutput {
				return renderJSON(cmd, report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderPatterns(report))
			return nil
		})
}
