package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"mdcorpranks.dev/review-wizard/internal/guard"
	"mdcorpranks.dev/review-wizard/internal/review"
	"mdcorpranks.dev/review-wizard/internal/tui/components/stars"
	"mdcorpranks.dev/review-wizard/internal/wizard"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via REVIEW_WIZARD_TEST_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (REVIEW_WIZARD_TEST_NO_INTERACTIVE is set)")

// checkInteractiveAllowed returns an error if interactive mode is disabled for testing
func checkInteractiveAllowed() error {
	if os.Getenv("REVIEW_WIZARD_TEST_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// RatingPrompt asks for the rating of one question; n is 1-based
type RatingPrompt func(q review.Question, n, total int) (int, error)

// SurveyRatingPrompt asks for a rating with a survey select list
func SurveyRatingPrompt(q review.Question, n, total int) (int, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return 0, err
	}

	options := make([]string, 0, review.MaxRating)
	for r := review.MinRating; r <= review.MaxRating; r++ {
		options = append(options, fmt.Sprintf("%s  %d", stars.Plain(r), r))
	}

	var idx int
	prompt := &survey.Select{
		Message: fmt.Sprintf("[%d/%d] %s", n, total, q.Title),
		Help:    q.Subtitle,
		Options: options,
	}
	if err := survey.AskOne(prompt, &idx); err != nil {
		return 0, err
	}
	return idx + review.MinRating, nil
}

// RunWizardLine runs the wizard with line-oriented prompts, for terminals
// where the full-screen program cannot run. The controller must not be
// initialized yet. An interrupted prompt asks leave first: the first
// interrupt warns and prompts again, a confirmed one ends the session
// without error. leave may be nil.
func RunWizardLine(ctx context.Context, controller *wizard.Controller, prompt RatingPrompt, leave LeaveConfirmer, splog *Splog) (review.Destination, error) {
	if err := controller.Initialize(ctx); err != nil {
		return review.DestinationNone, err
	}

	splog.Info(Heading)
	for {
		snap := controller.Snapshot()
		if snap.Destination.Terminal() {
			return snap.Destination, nil
		}
		if snap.State != wizard.StateActive {
			return review.DestinationNone, fmt.Errorf("wizard stopped in state %s", snap.State)
		}

		rating, err := prompt(snap.Question, snap.Number, snap.Total)
		if errors.Is(err, terminal.InterruptErr) {
			if leave == nil || leave.Confirm() {
				return review.DestinationNone, nil
			}
			splog.Warn("%s", guard.LeaveWarning)
			continue
		}
		if err != nil {
			return review.DestinationNone, err
		}
		if err := controller.SetRating(rating); err != nil {
			return review.DestinationNone, err
		}

		outcome, err := controller.Submit(ctx)
		switch outcome {
		case wizard.OutcomeAdvanced, wizard.OutcomeCompleted:
			splog.Info("  ✓ %s %s", snap.Question.Title, stars.Plain(rating))
		case wizard.OutcomeStranded:
			return review.DestinationNone, err
		default:
			if err != nil {
				splog.Warn(RetryNote)
			}
		}
	}
}
