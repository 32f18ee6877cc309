package runtime

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mdcorpranks.dev/review-wizard/internal/config"
	"mdcorpranks.dev/review-wizard/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("flags win over file", func(t *testing.T) {
		path := writeConfig(t, "base_url: http://reviews.internal:9000\nsubmit:\n  policy: retry\n  max_attempts: 2\n")
		timeout := 3 * time.Second

		cfg, resolved, err := LoadConfig(Overrides{
			ConfigPath:   path,
			BaseURL:      "https://ranks.example.com",
			UserID:       "42",
			SubmitPolicy: "fail-fast",
			Timeout:      &timeout,
			Debug:        true,
		})
		require.NoError(t, err)
		require.Equal(t, path, resolved)
		require.Equal(t, "https://ranks.example.com", cfg.BaseURL)
		require.Equal(t, "42", cfg.Session.UserID)
		require.Equal(t, config.PolicyFailFast, cfg.Submit.Policy)
		require.Equal(t, 2, cfg.Submit.MaxAttempts)
		require.Equal(t, timeout, cfg.Timeout)
		require.True(t, cfg.Debug)
	})

	t.Run("empty overrides keep the file", func(t *testing.T) {
		path := writeConfig(t, "base_url: http://reviews.internal:9000\n")

		cfg, _, err := LoadConfig(Overrides{ConfigPath: path})
		require.NoError(t, err)
		require.Equal(t, "http://reviews.internal:9000", cfg.BaseURL)
		require.Equal(t, config.PolicyIgnore, cfg.Submit.Policy)
		require.Zero(t, cfg.Timeout)
	})

	t.Run("unknown policy is rejected", func(t *testing.T) {
		_, _, err := LoadConfig(Overrides{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"), SubmitPolicy: "maybe"})
		require.ErrorIs(t, err, errors.ErrInvalidPolicy)
	})

	t.Run("invalid base url is rejected", func(t *testing.T) {
		_, _, err := LoadConfig(Overrides{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"), BaseURL: "ftp://nope"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid configuration")
	})
}

func TestGetContext(t *testing.T) {
	t.Setenv("REVIEW_WIZARD_LOG_FILE", filepath.Join(t.TempDir(), "logs", "wizard.log"))
	var out bytes.Buffer

	rctx, err := GetContext(context.Background(), &out, Overrides{
		ConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
	})
	require.NoError(t, err)
	defer func() { require.NoError(t, rctx.Close()) }()

	require.NotNil(t, rctx.Client)
	require.Equal(t, config.DefaultBaseURL, rctx.Config.BaseURL)

	rctx.Splog.Info("hello %s", "world")
	require.Equal(t, "hello world\n", out.String())
}
