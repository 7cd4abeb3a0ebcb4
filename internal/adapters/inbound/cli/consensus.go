package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/credence/internal/adapters/outbound/tui"
	"github.com/abdidvp/credence/internal/application"
	"github.com/abdidvp/credence/internal/domain"
)

// voteFlags are shared by consensus and dynamic. Either newsID is set and the
// inputs are read on-chain, or the AI score and tallies are given directly.
type voteFlags struct {
	newsID    uint64
	aiScore   int
	real      int
	fake      int
	uncertain int
}

func (f *voteFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&f.newsID, "news", 0, "Read the AI score and votes of this on-chain news id")
	cmd.Flags().IntVar(&f.aiScore, "ai", 0, "AI credibility score (0-100)")
	cmd.Flags().IntVar(&f.real, "real", 0, "Votes for real")
	cmd.Flags().IntVar(&f.fake, "fake", 0, "Votes for fake")
	cmd.Flags().IntVar(&f.uncertain, "uncertain", 0, "Votes for uncertain")
	cmd.MarkFlagsMutuallyExclusive("news", "ai")
	cmd.MarkFlagsMutuallyExclusive("news", "real")
	cmd.MarkFlagsMutuallyExclusive("news", "fake")
	cmd.MarkFlagsMutuallyExclusive("news", "uncertain")
}

func (f *voteFlags) report(cmd *cobra.Command) (*application.ConsensusReport, error) {
	if f.newsID == 0 {
		return application.Evaluate(f.aiScore, domain.NewVoteCounts(f.real, f.fake, f.uncertain))
	}

	a, err := newApp(cmd)
	if err != nil {
		return nil, err
	}
	defer a.Close()

	svc, err := a.consensusService(cmd.Context())
	if err != nil {
		return nil, err
	}
	return svc.Report(cmd.Context(), f.newsID)
}

func newConsensusCmd() *cobra.Command {
	var (
		flags      voteFlags
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "consensus",
		Short: "Blend an AI score with community votes",
		Long: "Compute the consensus verdict, final score and confidence for a news item, together with the live " +
			"dynamic score. Pass --ai/--real/--fake/--uncertain, or --news to read them from the ledger.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := flags.report(cmd)
			if err != nil {
				return err
			}
			if jsonOutput {
				return renderJSON(cmd, report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderConsensus(report.AIScore, report.Votes, report.Consensus, report.Dynamic))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")

	return cmd
}

func newDynamicCmd() *cobra.Command {
	var (
		flags      voteFlags
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "dynamic",
		Short: "Show the live score shown before consensus is reached",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := flags.report(cmd)
			if err != nil {
				return err
			}
			d := report.Dynamic
			if jsonOutput {
				return renderJSON(cmd, d)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d/100  %s  (ai %.0f%%, votes %.0f%%, %d votes)\n",
				d.DynamicScore, d.Confidence.Label(), d.AIWeight*100, d.VoteWeight*100, report.Votes.Total)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output dynamic score as JSON")

	return cmd
}
