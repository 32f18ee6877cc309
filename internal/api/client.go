// Package api provides a client for the review backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/oauth2"

	"mdcorpranks.dev/review-wizard/internal/config"
	"mdcorpranks.dev/review-wizard/internal/errors"
	"mdcorpranks.dev/review-wizard/internal/review"
)

// Logger is the subset of tui.Splog the client writes to
type Logger interface {
	Debug(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}

// Client implements review.Backend over HTTP
type Client struct {
	baseURL *url.URL
	http    *http.Client
	timeout time.Duration
	log     Logger
}

var _ review.Backend = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithLogger sets where request traces are written
func WithLogger(l Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a Client for the configured backend.
// Requests carry the session cookie from cfg.Session and, when a token is
// configured, an OAuth2 bearer token. The base transport is taken from ctx
// via oauth2.HTTPClient when present.
func NewClient(ctx context.Context, cfg *config.Config, opts ...Option) (*Client, error) {
	baseURL, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", cfg.BaseURL, err)
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	if cfg.Session.UserID != "" {
		jar.SetCookies(baseURL, []*http.Cookie{{
			Name:  cfg.Session.CookieName,
			Value: cfg.Session.UserID,
			Path:  "/",
		}})
	}

	var httpClient *http.Client
	if cfg.Session.Token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: cfg.Session.Token},
		)
		httpClient = oauth2.NewClient(ctx, ts)
	} else if base, ok := ctx.Value(oauth2.HTTPClient).(*http.Client); ok && base != nil {
		clone := *base
		httpClient = &clone
	} else {
		httpClient = &http.Client{}
	}
	httpClient.Jar = jar

	c := &Client{
		baseURL: baseURL,
		http:    httpClient,
		timeout: cfg.Timeout,
		log:     nopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// apiMessage is the body shape the backend uses for acknowledgements and errors
type apiMessage struct {
	Message string `json:"message"`
}

// CheckStatus implements review.EligibilityChecker
func (c *Client) CheckStatus(ctx context.Context) (review.Status, error) {
	var status review.Status
	if err := c.getJSON(ctx, "/api/users/status", &status); err != nil {
		return review.Status{}, fmt.Errorf("failed to check user status: %w", err)
	}
	return status, nil
}

// FetchQuestions implements review.QuestionSource
func (c *Client) FetchQuestions(ctx context.Context) ([]review.Question, error) {
	var body struct {
		Questions []review.Question `json:"questions"`
	}
	if err := c.getJSON(ctx, "/api/questions", &body); err != nil {
		return nil, fmt.Errorf("failed to fetch questions: %w", err)
	}
	return body.Questions, nil
}

// SubmitRating implements review.RatingSubmitter.
// Non-2xx answers are returned as *errors.APIError; the caller decides whether they matter.
func (c *Client) SubmitRating(ctx context.Context, questionID, rating int) error {
	path := "/api/questions/" + strconv.Itoa(questionID) + "/ratings"
	resp, err := c.send(ctx, http.MethodPost, path, map[string]int{"rating": rating})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !ok(resp.StatusCode) {
		return errors.NewAPIError(http.MethodPost, path, resp.StatusCode, readMessage(resp.Body))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// TrackCompletion implements review.CompletionTracker.
// Only transport failures are errors; a refusal comes back as Success=false.
func (c *Client) TrackCompletion(ctx context.Context) (review.TrackResult, error) {
	resp, err := c.send(ctx, http.MethodPost, "/api/reviews", nil)
	if err != nil {
		return review.TrackResult{}, fmt.Errorf("failed to track review submission: %w", err)
	}
	defer resp.Body.Close()

	return review.TrackResult{
		Success: ok(resp.StatusCode),
		Message: readMessage(resp.Body),
	}, nil
}

// Score implements review.ScoreReader
func (c *Client) Score(ctx context.Context) (review.Score, error) {
	var score review.Score
	if err := c.getJSON(ctx, "/api/reviews", &score); err != nil {
		return review.Score{}, fmt.Errorf("failed to get review score: %w", err)
	}
	return score, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	resp, err := c.send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !ok(resp.StatusCode) {
		return errors.NewAPIError(http.MethodGet, path, resp.StatusCode, readMessage(resp.Body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// send performs one request. The response body is still open when err is nil.
func (c *Client) send(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		resp, err := c.roundTrip(ctx, method, path, reader)
		if err != nil {
			cancel()
			return nil, err
		}
		resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
		return resp, nil
	}
	return c.roundTrip(ctx, method, path, reader)
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("%s %s failed after %s (request %s): %v", method, path, time.Since(start).Round(time.Millisecond), requestID, err)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	c.log.Debug("%s %s -> %d in %s (request %s)", method, path, resp.StatusCode, time.Since(start).Round(time.Millisecond), requestID)
	return resp, nil
}

// cancelOnClose releases a per-request timeout once the body has been consumed
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelOnClose) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}

func ok(status int) bool {
	return status >= 200 && status < 300
}

// readMessage extracts the backend's "message" field, if any
func readMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil || len(data) == 0 {
		return ""
	}
	var msg apiMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return ""
	}
	return msg.Message
}
