package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abdidvp/credence/internal/adapters/outbound/tui"
	"github.com/abdidvp/credence/internal/application"
)

func newNewsCmd() *cobra.Command {
	var (
		latest     int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "news [id]",
		Short: "Show a registered news item and its consensus",
		Long:  "Read a news item from the on-chain registry with its current consensus, or the most recent items with --latest.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && latest <= 0 {
				return fmt.Errorf("a news id is required (or pass --latest)")
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			svc, err := a.consensusService(cmd.Context())
			if err != nil {
				return err
			}

			var items []application.NewsItem
			if len(args) > 0 {
				id, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid news id %q: %w", args[0], err)
				}
				item, err := svc.News(cmd.Context(), id)
				if err != nil {
					return err
				}
				items = append(items, *item)
			} else {
				if items, err = svc.Latest(cmd.Context(), latest); err != nil {
					return err
				}
			}

			if jsonOutput {
				return renderJSON(cmd, items)
			}
			for _, item := range items {
				r := item.Report
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderNews(item.News))
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderConsensus(r.AIScore, r.Votes, r.Consensus, r.Dynamic))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&latest, "latest", 0, "Show the N most recent items")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
