package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go.seanlatimer.dev/tripdeck/internal/config"
	"go.seanlatimer.dev/tripdeck/internal/logging"
	"go.seanlatimer.dev/tripdeck/internal/tui"
)

func newBrowseCommand(opts *Options) *cobra.Command {
	var inline bool

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive package browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			src, err := opts.source(cfg)
			if err != nil {
				return err
			}

			// The browser owns the terminal, so it logs to a file.
			logPath, err := config.GetLogPath(cfg)
			if err != nil {
				return err
			}
			logger, closeLog, err := logging.New(logging.Options{
				Verbose: opts.Verbose,
				Quiet:   opts.Quiet,
				File:    logPath,
			})
			if err != nil {
				return err
			}
			defer closeLog()

			logger.Info("starting browser", zap.Stringer("source", src))
			return tui.ShowBrowser(cmd.Context(), tui.Options{
				Source:       src,
				Logger:       logger,
				UseAltScreen: !inline,
			})
		},
	}

	cmd.Flags().BoolVar(&inline, "inline", false, "Render inline instead of using the alternate screen")
	return cmd
}
