package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mdcorpranks.dev/review-wizard/internal/errors"
)

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
		require.NoError(t, cfg.Validate())
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `base_url: https://ranks.example.com
timeout: 5s
session:
  cookie_name: sid
  user_id: 3f0c
submit:
  policy: retry
  max_attempts: 4
  initial_interval: 100ms
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "https://ranks.example.com", cfg.BaseURL)
		require.Equal(t, 5*time.Second, cfg.Timeout)
		require.Equal(t, "sid", cfg.Session.CookieName)
		require.Equal(t, "3f0c", cfg.Session.UserID)
		require.Equal(t, PolicyRetry, cfg.Submit.Policy)
		require.Equal(t, 4, cfg.Submit.MaxAttempts)
		require.Equal(t, 100*time.Millisecond, cfg.Submit.InitialInterval)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("base_url: https://file.example.com\n"), 0600))

		t.Setenv("REVIEW_WIZARD_BASE_URL", "https://env.example.com")
		t.Setenv("REVIEW_WIZARD_SUBMIT_POLICY", "fail-fast")
		t.Setenv("REVIEW_WIZARD_SESSION_TOKEN", "secret")

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "https://env.example.com", cfg.BaseURL)
		require.Equal(t, PolicyFailFast, cfg.Submit.Policy)
		require.Equal(t, "secret", cfg.Session.Token)
		require.Equal(t, "userId", cfg.Session.CookieName)
	})

	t.Run("unknown policy in file is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("submit:\n  policy: sometimes\n"), 0600))

		_, err := Load(path)
		require.ErrorIs(t, err, errors.ErrInvalidPolicy)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"relative url", func(c *Config) { c.BaseURL = "/api" }, "scheme must be http or https"},
		{"missing host", func(c *Config) { c.BaseURL = "http://" }, "missing host"},
		{"zero attempts", func(c *Config) { c.Submit.MaxAttempts = 0 }, "max_attempts"},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, "timeout"},
		{"empty policy", func(c *Config) { c.Submit.Policy = "" }, "invalid submit policy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.BaseURL = "https://ranks.example.com"
	cfg.Submit.Policy = PolicyFailFast
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestParseSubmitPolicy(t *testing.T) {
	for _, p := range Policies {
		parsed, err := ParseSubmitPolicy(p.String())
		require.NoError(t, err)
		require.Equal(t, p, parsed)
	}

	_, err := ParseSubmitPolicy("IGNORE")
	require.ErrorIs(t, err, errors.ErrInvalidPolicy)
}
