package config

import (
	"fmt"

	"mdcorpranks.dev/review-wizard/internal/errors"
)

// SubmitPolicy decides what happens when a rating submission fails
type SubmitPolicy string

const (
	// PolicyIgnore logs the failure and advances as if the rating was saved
	PolicyIgnore SubmitPolicy = "ignore"
	// PolicyFailFast stops on the current question and reports the failure
	PolicyFailFast SubmitPolicy = "fail-fast"
	// PolicyRetry retries with exponential backoff, then behaves like PolicyFailFast
	PolicyRetry SubmitPolicy = "retry"
)

// Policies lists every known submit policy
var Policies = []SubmitPolicy{PolicyIgnore, PolicyFailFast, PolicyRetry}

// ParseSubmitPolicy parses a policy name
func ParseSubmitPolicy(s string) (SubmitPolicy, error) {
	for _, p := range Policies {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of ignore, fail-fast, retry)", errors.ErrInvalidPolicy, s)
}

// UnmarshalText implements encoding.TextUnmarshaler for YAML and env decoding
func (p *SubmitPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseSubmitPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (p SubmitPolicy) MarshalText() ([]byte, error) {
	return []byte(p), nil
}

func (p SubmitPolicy) String() string {
	return string(p)
}
