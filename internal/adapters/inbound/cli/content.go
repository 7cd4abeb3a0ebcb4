package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/credence/internal/adapters/outbound/tui"
	"github.com/abdidvp/credence/internal/domain"
)

func newContentCmd() *cobra.Command {
	var stats bool

	cmd := &cobra.Command{
		Use:   "content [hash]",
		Short: "Show previously analyzed content by hash",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if stats {
				s, err := a.analysis.StorageStats()
				if err != nil {
					return fmt.Errorf("reading storage stats: %w", err)
				}
				return renderJSON(cmd, s)
			}

			if len(args) == 0 {
				return fmt.Errorf("a content hash is required (or pass --stats)")
			}
			if !domain.IsValidContentHash(args[0]) {
				return fmt.Errorf("invalid content hash %q: want 0x followed by 64 hex digits", args[0])
			}

			item, err := a.analysis.Content(args[0])
			if errors.Is(err, domain.ErrContentNotFound) {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if err != nil {
				return fmt.Errorf("reading content: %w", err)
			}
			return renderJSON(cmd, item)
		},
	}

	cmd.Flags().BoolVar(&stats, "stats", false, "Show content store statistics")

	return cmd
}

func newHistoryCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past analyses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			entries, err := a.analysis.History()
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}
			if jsonOutput {
				if entries == nil {
					entries = []domain.AnalysisEntry{}
				}
				return renderJSON(cmd, entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output history as JSON")

	return cmd
}
