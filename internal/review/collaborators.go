package review

import "context"

// EligibilityChecker answers whether the current user already completed the review
type EligibilityChecker interface {
	CheckStatus(ctx context.Context) (Status, error)
}

// QuestionSource supplies the ordered list of questions for a session
type QuestionSource interface {
	FetchQuestions(ctx context.Context) ([]Question, error)
}

// RatingSubmitter persists a single question's rating
type RatingSubmitter interface {
	SubmitRating(ctx context.Context, questionID, rating int) error
}

// CompletionTracker records that the full review flow was completed.
// A backend refusal is reported through TrackResult.Success, not as an error.
type CompletionTracker interface {
	TrackCompletion(ctx context.Context) (TrackResult, error)
}

// ScoreReader reads the user's weighted review score
type ScoreReader interface {
	Score(ctx context.Context) (Score, error)
}

// UnloadGuard warns the user before leaving mid-session.
// Install returns a release func which must be safe to call more than once.
type UnloadGuard interface {
	Install() (release func())
}

// Backend groups every HTTP-backed collaborator
type Backend interface {
	EligibilityChecker
	QuestionSource
	RatingSubmitter
	CompletionTracker
	ScoreReader
}
