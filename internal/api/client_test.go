package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mdcorpranks.dev/review-wizard/internal/config"
	wizerrors "mdcorpranks.dev/review-wizard/internal/errors"
	"mdcorpranks.dev/review-wizard/internal/review"
	"mdcorpranks.dev/review-wizard/testhelpers"
)

func newTestClient(t *testing.T, backend *testhelpers.MockBackendConfig, mutate func(*config.Config)) *Client {
	t.Helper()
	server := testhelpers.NewMockBackendServer(t, backend)

	cfg := config.Default()
	cfg.BaseURL = server.URL + "/"
	cfg.Session.UserID = "8a6e0804-2bd0-4672-b79d-d97027f9071a"
	if mutate != nil {
		mutate(cfg)
	}

	client, err := NewClient(context.Background(), cfg)
	require.NoError(t, err)
	return client
}

func TestClient_CheckStatus(t *testing.T) {
	backend := testhelpers.NewMockBackendConfig()
	backend.Status = review.Status{ReviewAlreadyGiven: true}
	client := newTestClient(t, backend, nil)

	status, err := client.CheckStatus(context.Background())
	require.NoError(t, err)
	require.True(t, status.ReviewAlreadyGiven)
}

func TestClient_FetchQuestions(t *testing.T) {
	backend := testhelpers.NewMockBackendConfig()
	client := newTestClient(t, backend, nil)

	questions, err := client.FetchQuestions(context.Background())
	require.NoError(t, err)
	require.Equal(t, backend.Questions, questions)
}

func TestClient_FetchQuestions_ServerError(t *testing.T) {
	backend := testhelpers.NewMockBackendConfig()
	backend.ErrorResponses["GET /api/questions"] = http.StatusInternalServerError
	client := newTestClient(t, backend, nil)

	_, err := client.FetchQuestions(context.Background())
	require.Error(t, err)

	var apiErr *wizerrors.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	require.True(t, apiErr.Temporary())
}

func TestClient_SubmitRating(t *testing.T) {
	t.Run("posts rating with session credentials", func(t *testing.T) {
		backend := testhelpers.NewMockBackendConfig()
		backend.CookieName = "userId"
		client := newTestClient(t, backend, nil)

		require.NoError(t, client.SubmitRating(context.Background(), 2, 4))

		calls := backend.RatingCalls()
		require.Len(t, calls, 1)
		require.Equal(t, 2, calls[0].QuestionID)
		require.Equal(t, 4, calls[0].Rating)
		require.Equal(t, "8a6e0804-2bd0-4672-b79d-d97027f9071a", calls[0].Cookie)
		require.NotEmpty(t, calls[0].RequestID)
	})

	t.Run("sends bearer token when configured", func(t *testing.T) {
		backend := testhelpers.NewMockBackendConfig()
		client := newTestClient(t, backend, func(c *config.Config) { c.Session.Token = "tkn" })

		require.NoError(t, client.SubmitRating(context.Background(), 1, 5))
		require.Equal(t, "Bearer tkn", backend.RatingCalls()[0].AuthHeader)
	})

	t.Run("missing cookie is an api error", func(t *testing.T) {
		backend := testhelpers.NewMockBackendConfig()
		backend.CookieName = "userId"
		client := newTestClient(t, backend, func(c *config.Config) { c.Session.UserID = "" })

		err := client.SubmitRating(context.Background(), 1, 3)
		var apiErr *wizerrors.APIError
		require.True(t, errors.As(err, &apiErr))
		require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
		require.Contains(t, apiErr.Message, "No valid user ID")
		require.False(t, apiErr.Temporary())
	})
}

func TestClient_TrackCompletion(t *testing.T) {
	t.Run("2xx is success with message", func(t *testing.T) {
		backend := testhelpers.NewMockBackendConfig()
		client := newTestClient(t, backend, nil)

		result, err := client.TrackCompletion(context.Background())
		require.NoError(t, err)
		require.True(t, result.Success)
		require.Equal(t, "Review submission tracked successfully.", result.Message)
	})

	t.Run("non-2xx is a failed result, not an error", func(t *testing.T) {
		backend := testhelpers.NewMockBackendConfig()
		backend.ErrorResponses["POST /api/reviews"] = http.StatusBadRequest
		client := newTestClient(t, backend, nil)

		result, err := client.TrackCompletion(context.Background())
		require.NoError(t, err)
		require.False(t, result.Success)
	})
}

func TestClient_Score(t *testing.T) {
	backend := testhelpers.NewMockBackendConfig()
	backend.TotalScore = 87
	client := newTestClient(t, backend, nil)

	score, err := client.Score(context.Background())
	require.NoError(t, err)
	require.Equal(t, 87, score.TotalScore)
}

func TestClient_TransportError(t *testing.T) {
	cfg := config.Default()
	cfg.BaseURL = "http://127.0.0.1:1"
	cfg.Timeout = 2 * time.Second
	client, err := NewClient(context.Background(), cfg)
	require.NoError(t, err)

	_, err = client.CheckStatus(context.Background())
	require.Error(t, err)

	var apiErr *wizerrors.APIError
	require.False(t, errors.As(err, &apiErr))
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	cfg := config.Default()
	cfg.BaseURL = server.URL
	cfg.Timeout = 50 * time.Millisecond
	client, err := NewClient(context.Background(), cfg)
	require.NoError(t, err)

	start := time.Now()
	_, err = client.FetchQuestions(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, time.Since(start), time.Second)
}
