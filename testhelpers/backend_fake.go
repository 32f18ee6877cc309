package testhelpers

import (
	"context"
	"sync"

	"mdcorpranks.dev/review-wizard/internal/review"
)

// SubmittedRating is a rating received by FakeBackend
type SubmittedRating struct {
	QuestionID int
	Rating     int
}

// FakeBackend implements review.Backend in memory and records every call
type FakeBackend struct {
	Status      review.Status
	StatusErr   error
	Questions   []review.Question
	QuestionErr error
	// SubmitErrs is consumed one error per SubmitRating call; nil entries succeed
	SubmitErrs  []error
	TrackResult review.TrackResult
	TrackErr    error
	ScoreValue  review.Score
	ScoreErr    error

	mu            sync.Mutex
	Submitted     []SubmittedRating
	SubmitCalls   int
	StatusCalls   int
	QuestionCalls int
	TrackCalls    int
}

// NewFakeBackend creates a FakeBackend serving the given questions whose tracking succeeds
func NewFakeBackend(questions ...review.Question) *FakeBackend {
	return &FakeBackend{
		Questions:   questions,
		TrackResult: review.TrackResult{Success: true, Message: "Review submission tracked successfully."},
	}
}

// CheckStatus implements review.EligibilityChecker
func (f *FakeBackend) CheckStatus(_ context.Context) (review.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.StatusCalls++
	return f.Status, f.StatusErr
}

// FetchQuestions implements review.QuestionSource
func (f *FakeBackend) FetchQuestions(_ context.Context) ([]review.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.QuestionCalls++
	if f.QuestionErr != nil {
		return nil, f.QuestionErr
	}
	return append([]review.Question(nil), f.Questions...), nil
}

// SubmitRating implements review.RatingSubmitter
func (f *FakeBackend) SubmitRating(_ context.Context, questionID, rating int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SubmitCalls++
	if len(f.SubmitErrs) > 0 {
		err := f.SubmitErrs[0]
		f.SubmitErrs = f.SubmitErrs[1:]
		if err != nil {
			return err
		}
	}
	f.Submitted = append(f.Submitted, SubmittedRating{QuestionID: questionID, Rating: rating})
	return nil
}

// TrackCompletion implements review.CompletionTracker
func (f *FakeBackend) TrackCompletion(_ context.Context) (review.TrackResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.TrackCalls++
	return f.TrackResult, f.TrackErr
}

// Score implements review.ScoreReader
func (f *FakeBackend) Score(_ context.Context) (review.Score, error) {
	return f.ScoreValue, f.ScoreErr
}

// FakeGuard implements review.UnloadGuard and counts installs and releases
type FakeGuard struct {
	mu       sync.Mutex
	Installs int
	Releases int
}

// Install implements review.UnloadGuard
func (g *FakeGuard) Install() func() {
	g.mu.Lock()
	g.Installs++
	g.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			g.Releases++
			g.mu.Unlock()
		})
	}
}

// Held reports whether an installed guard has not been released yet
func (g *FakeGuard) Held() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.Installs > g.Releases
}
