package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/credence/internal/adapters/outbound/tui"
	"github.com/abdidvp/credence/internal/domain/scoring"
)

func newReputationCmd() *cobra.Command {
	var (
		jsonOutput bool
		list       bool
	)

	cmd := &cobra.Command{
		Use:   "reputation [url]",
		Short: "Show the reputation tier of a source domain",
		Long:  "Classify the domain of a source URL as highly trusted, trusted, unknown or questionable. Use --list to print the trusted domains.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				if jsonOutput {
					return renderJSON(cmd, scoring.TrustedSources())
				}
				for _, d := range scoring.TrustedSources() {
					fmt.Fprintln(cmd.OutOrStdout(), d)
				}
				return nil
			}
			if len(args) == 0 {
				return fmt.Errorf("a url is required (or pass --list)")
			}

			rep := scoring.GetDomainReputation(args[0])
			if jsonOutput {
				return renderJSON(cmd, rep)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReputation(args[0], rep))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output reputation as JSON")
	cmd.Flags().BoolVar(&list, "list", false, "List trusted source domains")

	return cmd
}
