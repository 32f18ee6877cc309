package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mdcorpranks.dev/review-wizard/internal/cli/common"
	"mdcorpranks.dev/review-wizard/internal/runtime"
)

// newScoreCmd creates the score command
func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "score",
		Short:        "Show the weighted total score of the submitted review",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				score, err := ctx.Client.Score(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to fetch score: %w", err)
				}
				ctx.Splog.Info("Total score: %d", score.TotalScore)
				return nil
			})
		},
	}

	return cmd
}
