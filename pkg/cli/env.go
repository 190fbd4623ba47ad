package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go.seanlatimer.dev/tripdeck/internal/catalog"
	"go.seanlatimer.dev/tripdeck/internal/config"
	"go.seanlatimer.dev/tripdeck/internal/logging"
	"go.seanlatimer.dev/tripdeck/internal/render"
)

func (o *Options) loadConfig() (config.Config, error) {
	if o.ConfigPath != "" {
		return config.LoadConfigFrom(o.ConfigPath)
	}
	return config.LoadConfig()
}

// source resolves the catalog location from the flag and config file.
func (o *Options) source(cfg config.Config) (catalog.Source, error) {
	return catalog.NewSource(config.ResolveDataSource(o.Source, cfg))
}

// commandLogger logs to the command's stderr.
func (o *Options) commandLogger(cmd *cobra.Command) (*zap.Logger, func() error, error) {
	return logging.New(logging.Options{
		Verbose: o.Verbose,
		Quiet:   o.Quiet,
		Writer:  cmd.ErrOrStderr(),
	})
}

// loadCatalog reads the config, resolves the source and loads the catalog
// for a one-shot command. A failed load also prints the degraded-mode notice.
func (o *Options) loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	src, err := o.source(cfg)
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := o.commandLogger(cmd)
	if err != nil {
		return nil, err
	}
	defer closeLog()

	logger.Debug("loading catalog", zap.Stringer("source", src))
	c, err := catalog.Load(cmd.Context(), src)
	if err != nil {
		logger.Warn("catalog load failed", zap.Error(err))
		fmt.Fprintln(cmd.ErrOrStderr(), render.LoadFailedText)
		return nil, err
	}
	logger.Debug("catalog loaded", zap.Int("records", c.Len()))
	return c, nil
}
