package cli

import (
	"context"

	"github.com/spf13/cobra"

	"mdcorpranks.dev/review-wizard/internal/cli/common"
	"mdcorpranks.dev/review-wizard/internal/errors"
	"mdcorpranks.dev/review-wizard/internal/guard"
	"mdcorpranks.dev/review-wizard/internal/runtime"
	"mdcorpranks.dev/review-wizard/internal/tui"
	"mdcorpranks.dev/review-wizard/internal/wizard"
)

type runFlags struct {
	noTUI bool
}

func addRunFlags(cmd *cobra.Command, f *runFlags) {
	cmd.Flags().BoolVar(&f.noTUI, "no-tui", false, "Ask for ratings with plain prompts instead of the full-screen wizard")
}

// newRunCmd creates the run command
func newRunCmd() *cobra.Command {
	f := &runFlags{}

	cmd := &cobra.Command{
		Use:          "run",
		Short:        "Start the review wizard (default command)",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeRun(cmd, f)
		},
	}
	addRunFlags(cmd, f)

	return cmd
}

// ratingPrompt is the line-mode prompt; replaced in tests
var ratingPrompt tui.RatingPrompt = tui.SurveyRatingPrompt

func executeRun(cmd *cobra.Command, f *runFlags) error {
	return common.Run(cmd, func(rctx *runtime.Context) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		leave := guard.NewSignal(func(msg string) { rctx.Splog.Warn("%s", msg) }, cancel)
		controller := wizard.New(
			wizard.BackendDeps(rctx.Client, leave),
			wizard.WithLogger(rctx.Splog),
			wizard.WithSubmitConfig(rctx.Config.Submit),
		)
		defer controller.Close()

		var err error
		if !f.noTUI && tui.IsTTY() {
			_, err = tui.RunWizardTUI(ctx, controller, leave, rctx.Splog)
		} else {
			_, err = tui.RunWizardLine(ctx, controller, ratingPrompt, leave, rctx.Splog)
		}
		if err != nil {
			return err
		}

		return finish(rctx, controller)
	})
}

// finish reports how the session ended and turns unfinished sessions into errors
func finish(rctx *runtime.Context, controller *wizard.Controller) error {
	if dest := controller.Destination(); dest.Terminal() {
		rctx.Splog.Debug("Navigated to %s", dest.Route())
		rctx.Splog.Info("%s", dest.Message())
		return nil
	}

	switch controller.State() {
	case wizard.StateStranded:
		return errors.ErrTrackingFailed
	case wizard.StateEmpty, wizard.StateLoading:
		return errors.ErrNoQuestions
	}

	rctx.Splog.Warn("Review interrupted, %d of %d questions rated.", controller.Index(), len(controller.Questions()))
	return nil
}
