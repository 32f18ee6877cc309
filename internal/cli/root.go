package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mdcorpranks.dev/review-wizard/internal/cli/common"
	"mdcorpranks.dev/review-wizard/internal/config"
)

// NewRootCmd creates the root cobra command. Without a subcommand it runs the review wizard.
func NewRootCmd(version, commit, date string) *cobra.Command {
	f := &runFlags{}

	rootCmd := &cobra.Command{
		Use:   "review-wizard",
		Short: "Rate the MD Corp Ranks review questions from your terminal",
		Long: `review-wizard walks through the review questionnaire one question at a time.
Each question is rated from 1 to 5 stars and sent as soon as it is submitted;
after the last one the completed review is recorded.

Configuration is read from ~/.review-wizard/config.yaml, then from
REVIEW_WIZARD_* environment variables, then from the flags below.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeRun(cmd, f)
		},
	}
	addRunFlags(rootCmd, f)

	pf := rootCmd.PersistentFlags()
	pf.String(common.FlagConfig, "", "Path to the config file (default ~/.review-wizard/config.yaml)")
	pf.String(common.FlagBaseURL, "", fmt.Sprintf("Backend base URL (default %s)", config.DefaultBaseURL))
	pf.String(common.FlagUserID, "", "Session user id, sent as a cookie")
	pf.String(common.FlagToken, "", "Bearer token for the backend")
	pf.String(common.FlagSubmitPolicy, "", "What to do when a rating cannot be sent: ignore, fail-fast or retry")
	pf.Duration(common.FlagTimeout, 0, "Per-request timeout, 0 for none")
	pf.Bool(common.FlagDebug, false, "Show debug output")

	_ = rootCmd.RegisterFlagCompletionFunc(common.FlagSubmitPolicy, func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(config.Policies))
		for _, p := range config.Policies {
			names = append(names, p.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newQuestionsCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}
