package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mdcorpranks.dev/review-wizard/internal/cli/common"
	"mdcorpranks.dev/review-wizard/internal/runtime"
	"mdcorpranks.dev/review-wizard/internal/tui"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration",
		Long: `Show or create the review-wizard configuration.

Examples:
  review-wizard config show
  review-wizard config show --base-url https://ranks.example.com
  review-wizard config init`,
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

// newConfigShowCmd creates the config show command
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "show",
		Short:        "Print the resolved configuration as YAML",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, path, err := runtime.LoadConfig(common.Overrides(cmd))
			if err != nil {
				return err
			}

			shown := *cfg
			if shown.Session.Token != "" {
				shown.Session.Token = "********"
			}

			data, err := yaml.Marshal(&shown)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# %s\n", path)
			_, err = out.Write(data)
			return err
		},
	}
}

// newConfigInitCmd creates the config init command
func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "init",
		Short:        "Create or update the config file interactively",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, path, err := runtime.LoadConfig(common.Overrides(cmd))
			if err != nil {
				return err
			}

			if err := tui.RunConfigForm(cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			if err := cfg.Save(path); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			splog := tui.NewSplog()
			splog.Info("Saved configuration to %s", path)
			return nil
		},
	}
}
