package runtime

import (
	"context"
	"fmt"
	"io"
	"time"

	"mdcorpranks.dev/review-wizard/internal/api"
	"mdcorpranks.dev/review-wizard/internal/config"
	"mdcorpranks.dev/review-wizard/internal/tui"
)

// Overrides are command-line values that take precedence over the config
// file and environment. Zero values leave the resolved setting alone.
type Overrides struct {
	ConfigPath   string
	BaseURL      string
	UserID       string
	Token        string
	SubmitPolicy string
	Timeout      *time.Duration
	Debug        bool
}

// Context provides access to configuration, output and the backend for commands
type Context struct {
	Config     *config.Config
	ConfigPath string
	Splog      *tui.Splog
	Client     *api.Client
}

// NewContext creates a context from an already resolved configuration
func NewContext(ctx context.Context, cfg *config.Config, out io.Writer) (*Context, error) {
	splog, err := tui.NewSplogWithOptions(tui.SplogOptions{
		Writer:      out,
		LogFilePath: tui.GetLogFilePath(),
		Debug:       cfg.Debug,
	})
	if err != nil {
		return nil, err
	}

	client, err := api.NewClient(ctx, cfg, api.WithLogger(splog))
	if err != nil {
		_ = splog.Close()
		return nil, err
	}

	return &Context{
		Config: cfg,
		Splog:  splog,
		Client: client,
	}, nil
}

// LoadConfig resolves the configuration and applies the overrides
func LoadConfig(o Overrides) (*config.Config, string, error) {
	path := o.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, err
	}

	if err := o.apply(cfg); err != nil {
		return nil, path, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, path, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, path, nil
}

func (o Overrides) apply(cfg *config.Config) error {
	if o.BaseURL != "" {
		cfg.BaseURL = o.BaseURL
	}
	if o.UserID != "" {
		cfg.Session.UserID = o.UserID
	}
	if o.Token != "" {
		cfg.Session.Token = o.Token
	}
	if o.SubmitPolicy != "" {
		policy, err := config.ParseSubmitPolicy(o.SubmitPolicy)
		if err != nil {
			return err
		}
		cfg.Submit.Policy = policy
	}
	if o.Timeout != nil {
		cfg.Timeout = *o.Timeout
	}
	if o.Debug {
		cfg.Debug = true
	}
	return nil
}

// GetContext resolves the configuration with the given overrides and builds the context
func GetContext(ctx context.Context, out io.Writer, o Overrides) (*Context, error) {
	cfg, path, err := LoadConfig(o)
	if err != nil {
		return nil, err
	}

	rctx, err := NewContext(ctx, cfg, out)
	if err != nil {
		return nil, err
	}
	rctx.ConfigPath = path
	return rctx, nil
}

// Close flushes and closes the log file
func (c *Context) Close() error {
	return c.Splog.Close()
}
