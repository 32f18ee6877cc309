package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "REVIEW_WIZARD_"

// DefaultBaseURL is the backend the wizard talks to when nothing is configured
const DefaultBaseURL = "http://localhost:8080"

// Config is the resolved review-wizard configuration
type Config struct {
	BaseURL string        `yaml:"base_url" env:"BASE_URL"`
	Timeout time.Duration `yaml:"timeout,omitempty" env:"TIMEOUT"`
	Debug   bool          `yaml:"debug,omitempty" env:"DEBUG"`
	Session SessionConfig `yaml:"session" envPrefix:"SESSION_"`
	Submit  SubmitConfig  `yaml:"submit" envPrefix:"SUBMIT_"`
}

// SessionConfig holds the credentials sent with every backend request
type SessionConfig struct {
	CookieName string `yaml:"cookie_name" env:"COOKIE_NAME"`
	UserID     string `yaml:"user_id,omitempty" env:"USER_ID"`
	Token      string `yaml:"token,omitempty" env:"TOKEN"`
}

// SubmitConfig controls how rating submissions are sent
type SubmitConfig struct {
	Policy          SubmitPolicy  `yaml:"policy" env:"POLICY"`
	MaxAttempts     int           `yaml:"max_attempts" env:"MAX_ATTEMPTS"`
	InitialInterval time.Duration `yaml:"initial_interval" env:"INITIAL_INTERVAL"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		Session: SessionConfig{
			CookieName: "userId",
		},
		Submit: SubmitConfig{
			Policy:          PolicyIgnore,
			MaxAttempts:     3,
			InitialInterval: 500 * time.Millisecond,
		},
	}
}

// DefaultPath returns the path of the configuration file.
// If REVIEW_WIZARD_CONFIG is set, uses that path.
// Otherwise, uses ~/.review-wizard/config.yaml
func DefaultPath() string {
	if customPath := os.Getenv(EnvPrefix + "CONFIG"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "review-wizard.yaml"
	}
	return filepath.Join(homeDir, ".review-wizard", "config.yaml")
}

// Load resolves the configuration: defaults, then the YAML file at path
// (a missing file is not an error), then REVIEW_WIZARD_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration can drive a session
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base_url %q: scheme must be http or https", c.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid base_url %q: missing host", c.BaseURL)
	}
	if _, err := ParseSubmitPolicy(string(c.Submit.Policy)); err != nil {
		return err
	}
	if c.Submit.MaxAttempts < 1 {
		return fmt.Errorf("submit.max_attempts must be at least 1, got %d", c.Submit.MaxAttempts)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}

// Save writes the configuration as YAML to path, creating parent directories
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
