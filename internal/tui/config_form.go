package tui

import (
	"fmt"
	"net/url"
	"time"

	"github.com/charmbracelet/huh"

	"mdcorpranks.dev/review-wizard/internal/config"
)

// RunConfigForm edits cfg interactively. cfg is only modified when the form completes.
func RunConfigForm(cfg *config.Config) error {
	if err := checkInteractiveAllowed(); err != nil {
		return err
	}

	baseURL := cfg.BaseURL
	userID := cfg.Session.UserID
	timeout := cfg.Timeout.String()
	policy := string(cfg.Submit.Policy)

	policyOptions := make([]huh.Option[string], 0, len(config.Policies))
	for _, p := range config.Policies {
		policyOptions = append(policyOptions, huh.NewOption(policyLabel(p), string(p)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Backend URL").
				Placeholder(config.DefaultBaseURL).
				Validate(validateBaseURL).
				Value(&baseURL),
			huh.NewInput().
				Title("User ID").
				Description("Sent as the " + cfg.Session.CookieName + " session cookie").
				Value(&userID),
			huh.NewInput().
				Title("Request timeout").
				Description("0s disables the timeout").
				Validate(validateTimeout).
				Value(&timeout),
			huh.NewSelect[string]().
				Title("When a rating cannot be sent").
				Options(policyOptions...).
				Value(&policy),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("prompt failed: %w", err)
	}

	parsedTimeout, err := time.ParseDuration(timeout)
	if err != nil {
		return err
	}
	parsedPolicy, err := config.ParseSubmitPolicy(policy)
	if err != nil {
		return err
	}

	cfg.BaseURL = baseURL
	cfg.Session.UserID = userID
	cfg.Timeout = parsedTimeout
	cfg.Submit.Policy = parsedPolicy
	return nil
}

func policyLabel(p config.SubmitPolicy) string {
	switch p {
	case config.PolicyIgnore:
		return "ignore: log it and move on"
	case config.PolicyFailFast:
		return "fail-fast: stay on the question"
	case config.PolicyRetry:
		return "retry: back off and try again"
	}
	return string(p)
}

func validateBaseURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

func validateTimeout(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	if d < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}
