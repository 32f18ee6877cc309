package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mdcorpranks.dev/review-wizard/internal/cli/common"
	"mdcorpranks.dev/review-wizard/internal/runtime"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "status",
		Short:        "Show whether the current user has already submitted a review",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				status, err := ctx.Client.CheckStatus(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to check review status: %w", err)
				}

				if status.ReviewAlreadyGiven {
					ctx.Splog.Info("Review already given.")
				} else {
					ctx.Splog.Info("Review not given yet.")
				}
				return nil
			})
		},
	}

	return cmd
}
