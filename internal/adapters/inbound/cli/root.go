package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credence",
		Short: "Score how credible a news article is",
		Long: "Credence blends an AI assessment, source reputation and corroborating coverage into a 0-100 credibility score, " +
			"and settles it against community votes recorded on-chain.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("dir", ".", "Directory holding .credence.yaml and the data directory")
	cmd.PersistentFlags().String("log-level", "", "Override log.level from .credence.yaml")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAnalyzeCmd())
	cmd.AddCommand(newBatchCmd())
	cmd.AddCommand(newScoreCmd())
	cmd.AddCommand(newReputationCmd())
	cmd.AddCommand(newConsensusCmd())
	cmd.AddCommand(newDynamicCmd())
	cmd.AddCommand(newNewsCmd())
	cmd.AddCommand(newContentCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newClaimsCmd())
	cmd.AddCommand(newQuickCmd())
	cmd.AddCommand(newPatternsCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
