// Package common provides shared helper functions for CLI commands.
package common

import (
	"github.com/spf13/cobra"

	"mdcorpranks.dev/review-wizard/internal/runtime"
)

// Persistent flag names shared by every command
const (
	FlagConfig       = "config"
	FlagBaseURL      = "base-url"
	FlagUserID       = "user-id"
	FlagToken        = "token"
	FlagSubmitPolicy = "submit-policy"
	FlagTimeout      = "timeout"
	FlagDebug        = "debug"
)

// Overrides collects the persistent flags the user actually set
func Overrides(cmd *cobra.Command) runtime.Overrides {
	flags := cmd.Flags()
	var o runtime.Overrides
	o.ConfigPath, _ = flags.GetString(FlagConfig)
	o.BaseURL, _ = flags.GetString(FlagBaseURL)
	o.UserID, _ = flags.GetString(FlagUserID)
	o.Token, _ = flags.GetString(FlagToken)
	o.SubmitPolicy, _ = flags.GetString(FlagSubmitPolicy)
	o.Debug, _ = flags.GetBool(FlagDebug)
	if flags.Changed(FlagTimeout) {
		if timeout, err := flags.GetDuration(FlagTimeout); err == nil {
			o.Timeout = &timeout
		}
	}
	return o
}

// Run is a helper that provides a runtime context to a command's execution function
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	ctx, err := runtime.GetContext(cmd.Context(), cmd.OutOrStdout(), Overrides(cmd))
	if err != nil {
		return err
	}
	defer func() { _ = ctx.Close() }()
	return fn(ctx)
}
