package wizard

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"mdcorpranks.dev/review-wizard/internal/api"
	"mdcorpranks.dev/review-wizard/internal/config"
)

func newHTTPBackend(t *testing.T, baseURL string) *api.Client {
	t.Helper()
	cfg := config.Default()
	cfg.BaseURL = baseURL
	client, err := api.NewClient(context.Background(), cfg)
	require.NoError(t, err)
	return client
}

// recordingLogger keeps formatted warnings for assertions
type recordingLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *recordingLogger) Debug(string, ...interface{}) {}
func (l *recordingLogger) Info(string, ...interface{})  {}
func (l *recordingLogger) Error(string, ...interface{}) {}

func (l *recordingLogger) Warn(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.warns...)
}
