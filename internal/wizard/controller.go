package wizard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mdcorpranks.dev/review-wizard/internal/config"
	"mdcorpranks.dev/review-wizard/internal/errors"
	"mdcorpranks.dev/review-wizard/internal/review"
)

// Logger is the subset of tui.Splog the controller writes to
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Deps are the collaborators a Controller sequences
type Deps struct {
	Eligibility review.EligibilityChecker
	Questions   review.QuestionSource
	Ratings     review.RatingSubmitter
	Tracker     review.CompletionTracker
	Guard       review.UnloadGuard
}

// BackendDeps wires every HTTP-backed collaborator to one backend
func BackendDeps(b review.Backend, g review.UnloadGuard) Deps {
	return Deps{
		Eligibility: b,
		Questions:   b,
		Ratings:     b,
		Tracker:     b,
		Guard:       g,
	}
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the controller logger
func WithLogger(l Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// WithSubmitConfig sets the submit policy and its retry parameters
func WithSubmitConfig(sc config.SubmitConfig) Option {
	return func(c *Controller) {
		c.submit = sc
	}
}

// Controller owns the session state of one review wizard.
// All methods are safe to call from multiple goroutines; network calls are
// made without holding the state lock.
type Controller struct {
	deps   Deps
	submit config.SubmitConfig
	log    Logger

	mu          sync.Mutex
	state       State
	loading     bool
	initialized bool
	questions   []review.Question
	index       int
	rating      int
	destination review.Destination
	release     func()
	// ignored counts rating failures swallowed by PolicyIgnore
	ignored int
}

// New creates a controller. It starts in StateLoading with loading set, like
// a freshly mounted wizard waiting for its first fetch.
func New(deps Deps, opts ...Option) *Controller {
	c := &Controller{
		deps: deps,
		submit: config.SubmitConfig{
			Policy:          config.PolicyIgnore,
			MaxAttempts:     1,
			InitialInterval: 500 * time.Millisecond,
		},
		log:     nopLogger{},
		state:   StateLoading,
		loading: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize installs the unload guard, checks eligibility and loads the questions.
// A failure is logged and also returned; the controller is then in StateEmpty.
func (c *Controller) Initialize(ctx context.Context) error {
	c.mu.Lock()
	if c.initialized {
		c.mu.Unlock()
		return fmt.Errorf("wizard already initialized")
	}
	c.initialized = true
	c.loading = true
	if c.deps.Guard != nil {
		c.release = c.deps.Guard.Install()
	}
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	status, err := c.deps.Eligibility.CheckStatus(ctx)
	if err != nil {
		return c.failLoad(err)
	}
	if status.ReviewAlreadyGiven {
		c.log.Info("Review already given, nothing to do.")
		c.mu.Lock()
		c.state = StateAlreadyReviewed
		c.navigateLocked(review.DestinationAlreadyReviewed)
		c.mu.Unlock()
		return nil
	}

	questions, err := c.deps.Questions.FetchQuestions(ctx)
	if err != nil {
		return c.failLoad(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.questions = questions
	c.index = 0
	c.rating = 0
	if len(questions) == 0 {
		c.state = StateEmpty
		c.log.Warn("The backend returned no questions.")
		return errors.ErrNoQuestions
	}
	c.state = StateActive
	c.log.Debug("Loaded %d questions", len(questions))
	return nil
}

func (c *Controller) failLoad(err error) error {
	c.log.Error("Error during data fetching: %v", err)
	c.mu.Lock()
	c.state = StateEmpty
	c.questions = nil
	c.mu.Unlock()
	return err
}

// Close releases the unload guard. It is safe to call on every exit path.
func (c *Controller) Close() {
	c.mu.Lock()
	release := c.release
	c.release = nil
	c.mu.Unlock()

	if release != nil {
		release()
	}
}

// navigateLocked moves to a terminal destination; reaching one tears the session down
func (c *Controller) navigateLocked(dest review.Destination) {
	c.destination = dest
	if c.release != nil {
		c.release()
		c.release = nil
	}
}

// SetRating stores the chosen rating. Only values 1-5 are accepted and only
// while a question is active.
func (c *Controller) SetRating(v int) error {
	if !review.ValidRating(v) {
		return errors.NewRatingError(v)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateActive {
		return fmt.Errorf("cannot rate while %s", c.state)
	}
	c.rating = v
	return nil
}

// CanSubmit reports whether the submit action is enabled
func (c *Controller) CanSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canSubmitLocked()
}

func (c *Controller) canSubmitLocked() bool {
	return c.state == StateActive && c.rating != 0 && len(c.questions) > 0
}

// Submit sends the current rating, then advances to the next question or,
// after the last one, records the completed review.
func (c *Controller) Submit(ctx context.Context) (Outcome, error) {
	c.mu.Lock()
	if !c.canSubmitLocked() {
		c.mu.Unlock()
		return OutcomeNone, errors.ErrSubmitDisabled
	}
	question := c.questions[c.index]
	rating := c.rating
	last := c.index == len(c.questions)-1
	c.state = StateSubmitting
	c.mu.Unlock()

	if err := c.sendRating(ctx, question.ID, rating); err != nil {
		c.mu.Lock()
		c.state = StateActive
		c.mu.Unlock()
		return OutcomeNone, err
	}

	if !last {
		c.mu.Lock()
		c.index++
		c.rating = 0
		c.state = StateActive
		c.mu.Unlock()
		return OutcomeAdvanced, nil
	}

	result, err := c.deps.Tracker.TrackCompletion(ctx)
	if err != nil || !result.Success {
		if err != nil {
			c.log.Error("Failed to track review submission: %v", err)
		} else {
			c.log.Error("Failed to track review submission.")
		}
		c.mu.Lock()
		c.state = StateStranded
		c.mu.Unlock()
		if err != nil {
			return OutcomeStranded, fmt.Errorf("%w: %w", errors.ErrTrackingFailed, err)
		}
		return OutcomeStranded, errors.ErrTrackingFailed
	}

	if result.Message != "" {
		c.log.Debug("Tracking: %s", result.Message)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ignored > 0 {
		c.log.Warn("%d of %d ratings may not have been saved.", c.ignored, len(c.questions))
	}
	c.index = len(c.questions)
	c.state = StateCompleted
	c.navigateLocked(review.DestinationThankYou)
	return OutcomeCompleted, nil
}

// IgnoredFailures returns how many rating submissions failed under PolicyIgnore
func (c *Controller) IgnoredFailures() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ignored
}

// State returns the current controller state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Loading reports whether the initial fetch sequence is running
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Questions returns a copy of the loaded questions
func (c *Controller) Questions() []review.Question {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]review.Question(nil), c.questions...)
}

// Index returns the current question index, len(Questions()) once completed
func (c *Controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Rating returns the current rating, 0 when unset
func (c *Controller) Rating() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rating
}

// Destination returns where the wizard navigated, if anywhere
func (c *Controller) Destination() review.Destination {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.destination
}

// Current returns the displayed question
func (c *Controller) Current() (review.Question, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentLocked()
}

func (c *Controller) currentLocked() (review.Question, bool) {
	if len(c.questions) == 0 {
		return review.Question{}, false
	}
	i := c.index
	if i >= len(c.questions) {
		i = len(c.questions) - 1
	}
	return c.questions[i], true
}

// Progress returns the 1-based number of the displayed question and the total
func (c *Controller) Progress() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progressLocked()
}

func (c *Controller) progressLocked() (int, int) {
	total := len(c.questions)
	n := c.index + 1
	if n > total {
		n = total
	}
	return n, total
}

// Snapshot returns a consistent copy of everything the presentation needs
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	q, ok := c.currentLocked()
	n, total := c.progressLocked()
	return Snapshot{
		State:       c.state,
		Loading:     c.loading,
		Question:    q,
		HasQuestion: ok,
		Number:      n,
		Total:       total,
		Rating:      c.rating,
		CanSubmit:   c.canSubmitLocked(),
		Destination: c.destination,
	}
}
