// Package config manages review-wizard configuration.
//
// It handles:
//   - Built-in defaults
//   - The YAML configuration file (~/.review-wizard/config.yaml)
//   - REVIEW_WIZARD_* environment overrides
//   - The submit policy applied to failed rating submissions
package config
