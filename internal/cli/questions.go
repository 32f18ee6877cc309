package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mdcorpranks.dev/review-wizard/internal/cli/common"
	"mdcorpranks.dev/review-wizard/internal/errors"
	"mdcorpranks.dev/review-wizard/internal/runtime"
)

// newQuestionsCmd creates the questions command
func newQuestionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "questions",
		Short:        "List the review questions",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return common.Run(cmd, func(ctx *runtime.Context) error {
				questions, err := ctx.Client.FetchQuestions(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to fetch questions: %w", err)
				}
				if len(questions) == 0 {
					return errors.ErrNoQuestions
				}

				for i, q := range questions {
					ctx.Splog.Info("%d/%d  [#%d] %s", i+1, len(questions), q.ID, q.Title)
					if q.Subtitle != "" {
						ctx.Splog.Info("       %s", q.Subtitle)
					}
				}
				return nil
			})
		},
	}

	return cmd
}
