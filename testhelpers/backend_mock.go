// Package testhelpers provides fakes and an HTTP mock of the review backend for tests.
package testhelpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"mdcorpranks.dev/review-wizard/internal/review"
)

// RatingCall records one POST /api/questions/{id}/ratings received by the mock backend
type RatingCall struct {
	QuestionID int
	Rating     int
	Cookie     string
	AuthHeader string
	RequestID  string
}

// MockBackendConfig configures the behavior of a mock review backend
type MockBackendConfig struct {
	// Status is returned by GET /api/users/status
	Status review.Status
	// Questions is returned by GET /api/questions
	Questions []review.Question
	// TotalScore is returned by GET /api/reviews
	TotalScore int
	// ErrorResponses maps "METHOD path" to a status code to answer with
	ErrorResponses map[string]int
	// RatingFailures is the number of rating POSTs answered with 503 before succeeding
	RatingFailures int
	// CookieName is the session cookie every request must carry; empty disables the check
	CookieName string

	mu            sync.Mutex
	Ratings       []RatingCall
	TrackCalls    int
	QuestionCalls int
	StatusCalls   int
}

// NewMockBackendConfig creates a new mock backend config with two questions
func NewMockBackendConfig() *MockBackendConfig {
	return &MockBackendConfig{
		Questions: []review.Question{
			{ID: 1, Title: "Qualità del servizio", Subtitle: "Come valuti il servizio ricevuto?"},
			{ID: 2, Title: "Comunicazione", Subtitle: "Quanto è stata chiara la comunicazione?"},
		},
		ErrorResponses: make(map[string]int),
	}
}

// RatingCalls returns a copy of the rating submissions received so far
func (c *MockBackendConfig) RatingCalls() []RatingCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]RatingCall(nil), c.Ratings...)
}

// Counts returns how many status, question and tracking calls were received
func (c *MockBackendConfig) Counts() (status, questions, track int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.StatusCalls, c.QuestionCalls, c.TrackCalls
}

// NewMockBackendServer creates an httptest server that mocks the review backend endpoints
func NewMockBackendServer(t *testing.T, config *MockBackendConfig) *httptest.Server {
	t.Helper()
	if config == nil {
		config = NewMockBackendConfig()
	}

	mux := http.NewServeMux()

	guarded := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if code, ok := config.ErrorResponses[r.Method+" "+r.URL.Path]; ok {
				writeJSON(w, code, map[string]string{"message": http.StatusText(code)})
				return
			}
			if config.CookieName != "" {
				if _, err := r.Cookie(config.CookieName); err != nil {
					writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Authentication failed. No valid user ID found in cookies."})
					return
				}
			}
			next(w, r)
		}
	}

	mux.HandleFunc("GET /api/users/status", guarded(func(w http.ResponseWriter, _ *http.Request) {
		config.mu.Lock()
		config.StatusCalls++
		status := config.Status
		config.mu.Unlock()
		writeJSON(w, http.StatusOK, status)
	}))

	mux.HandleFunc("GET /api/questions", guarded(func(w http.ResponseWriter, _ *http.Request) {
		config.mu.Lock()
		config.QuestionCalls++
		questions := config.Questions
		config.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
	}))

	mux.HandleFunc("POST /api/questions/{id}/ratings", guarded(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(r.PathValue("id"))
		if err != nil {
			http.Error(w, "invalid question id", http.StatusBadRequest)
			return
		}
		var body struct {
			Rating int `json:"rating"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid body", http.StatusBadRequest)
			return
		}

		config.mu.Lock()
		if config.RatingFailures > 0 {
			config.RatingFailures--
			config.mu.Unlock()
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"message": "try again"})
			return
		}
		call := RatingCall{
			QuestionID: id,
			Rating:     body.Rating,
			AuthHeader: r.Header.Get("Authorization"),
			RequestID:  r.Header.Get("X-Request-Id"),
		}
		if config.CookieName != "" {
			if c, err := r.Cookie(config.CookieName); err == nil {
				call.Cookie = c.Value
			}
		}
		config.Ratings = append(config.Ratings, call)
		config.mu.Unlock()

		writeJSON(w, http.StatusCreated, map[string]string{"message": "Rating saved."})
	}))

	mux.HandleFunc("/api/reviews", guarded(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			config.mu.Lock()
			config.TrackCalls++
			already := config.TrackCalls > 1
			config.mu.Unlock()
			msg := "Review submission tracked successfully."
			if already {
				msg = "Review already submitted"
			}
			writeJSON(w, http.StatusOK, map[string]string{"message": msg})
		case http.MethodGet:
			writeJSON(w, http.StatusOK, map[string]int{"totalScore": config.TotalScore})
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// RatingsSummary renders rating calls as "id:rating" pairs for compact assertions
func RatingsSummary(calls []RatingCall) string {
	parts := make([]string, 0, len(calls))
	for _, c := range calls {
		parts = append(parts, strconv.Itoa(c.QuestionID)+":"+strconv.Itoa(c.Rating))
	}
	return strings.Join(parts, ",")
}
