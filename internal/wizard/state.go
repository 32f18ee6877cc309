package wizard

import "mdcorpranks.dev/review-wizard/internal/review"

// State is a wizard controller state
type State int

const (
	// StateLoading is the state before Initialize has finished
	StateLoading State = iota
	// StateAlreadyReviewed means eligibility rejected the user; terminal
	StateAlreadyReviewed
	// StateEmpty means loading failed or produced no questions
	StateEmpty
	// StateActive means a question is displayed and accepts a rating
	StateActive
	// StateSubmitting means a rating (or the completion) is in flight
	StateSubmitting
	// StateCompleted means the review was tracked; terminal
	StateCompleted
	// StateStranded means tracking failed after the last rating; nothing more can be done
	StateStranded
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAlreadyReviewed:
		return "already-reviewed"
	case StateEmpty:
		return "empty"
	case StateActive:
		return "active"
	case StateSubmitting:
		return "submitting"
	case StateCompleted:
		return "completed"
	case StateStranded:
		return "stranded"
	default:
		return "unknown"
	}
}

// Outcome is the result of a Submit call
type Outcome int

const (
	// OutcomeNone means nothing changed
	OutcomeNone Outcome = iota
	// OutcomeAdvanced means the next question is now current
	OutcomeAdvanced
	// OutcomeCompleted means the review was tracked and the thank-you destination reached
	OutcomeCompleted
	// OutcomeStranded means the last rating was sent but tracking failed
	OutcomeStranded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeCompleted:
		return "completed"
	case OutcomeStranded:
		return "stranded"
	default:
		return "none"
	}
}

// Snapshot is a consistent copy of the controller state for rendering
type Snapshot struct {
	State       State
	Loading     bool
	Question    review.Question
	HasQuestion bool
	Number      int
	Total       int
	Rating      int
	CanSubmit   bool
	Destination review.Destination
}

// ShowLoader reports whether the loading indicator replaces the question
func (s Snapshot) ShowLoader() bool {
	return s.Loading || s.Total == 0
}
