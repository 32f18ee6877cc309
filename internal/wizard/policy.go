package wizard

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/cenkalti/backoff/v5"

	"mdcorpranks.dev/review-wizard/internal/config"
	"mdcorpranks.dev/review-wizard/internal/errors"
)

// sendRating submits one rating under the configured submit policy.
// Under PolicyIgnore it never fails.
func (c *Controller) sendRating(ctx context.Context, questionID, rating int) error {
	switch c.submit.Policy {
	case config.PolicyRetry:
		attempts, err := c.sendWithRetry(ctx, questionID, rating)
		if err != nil {
			c.log.Error("Rating for question %d not saved: %v", questionID, err)
			return errors.NewSubmitError(questionID, attempts, err)
		}
		return nil

	case config.PolicyFailFast:
		if err := c.deps.Ratings.SubmitRating(ctx, questionID, rating); err != nil {
			c.log.Error("Rating for question %d not saved: %v", questionID, err)
			return errors.NewSubmitError(questionID, 1, err)
		}
		return nil

	default:
		if err := c.deps.Ratings.SubmitRating(ctx, questionID, rating); err != nil {
			c.log.Warn("Rating for question %d may not have been saved: %v", questionID, err)
			c.mu.Lock()
			c.ignored++
			c.mu.Unlock()
		}
		return nil
	}
}

func (c *Controller) sendWithRetry(ctx context.Context, questionID, rating int) (int, error) {
	b := backoff.NewExponentialBackOff()
	if c.submit.InitialInterval > 0 {
		b.InitialInterval = c.submit.InitialInterval
	}

	maxTries := c.submit.MaxAttempts
	if maxTries < 1 {
		maxTries = 1
	}

	attempts := 0
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempts++
		err := c.deps.Ratings.SubmitRating(ctx, questionID, rating)
		if err != nil && !retryable(ctx, err) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(maxTries)),
		backoff.WithNotify(func(err error, next time.Duration) {
			c.log.Debug("Retrying rating for question %d in %s: %v", questionID, next.Round(time.Millisecond), err)
		}),
	)
	return attempts, err
}

// retryable reports whether repeating a failed submission may succeed.
// Client errors and a finished session context are final.
func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var apiErr *errors.APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.Temporary()
	}
	return true
}
