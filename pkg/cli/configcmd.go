package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"go.seanlatimer.dev/tripdeck/internal/config"
)

func newConfigCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change tripdeck settings",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file path",
			RunE: func(cmd *cobra.Command, args []string) error {
				path := opts.ConfigPath
				if path == "" {
					var err error
					path, err = config.GetConfigPath()
					if err != nil {
						return err
					}
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print a setting (" + strings.Join(config.Keys, ", ") + ")",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := opts.loadConfig()
				if err != nil {
					return err
				}
				value, err := cfg.Get(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Change a setting in the default config file",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if opts.ConfigPath != "" {
					return fmt.Errorf("config set writes the default config file; drop --config")
				}
				cfg, err := config.LoadConfig()
				if err != nil {
					return err
				}
				if err := cfg.Set(args[0], args[1]); err != nil {
					return err
				}
				if err := config.SaveConfig(cfg); err != nil {
					return err
				}
				if !opts.Quiet {
					fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
				}
				return nil
			},
		},
	)
	return cmd
}
