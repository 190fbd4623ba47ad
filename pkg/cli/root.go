package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type Options struct {
	ConfigPath string
	Source     string
	Verbose    bool
	Quiet      bool
}

var Version = "dev"

func Execute() error {
	opts := &Options{}
	root := NewRootCommand(opts)
	return root.Execute()
}

func NewRootCommand(opts *Options) *cobra.Command {
	root := &cobra.Command{
		Use:           "tripdeck",
		Short:         "Browse and book travel packages from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Config file path")
	root.PersistentFlags().StringVar(&opts.Source, "source", "", "Catalog location (file path, http(s) URL or git+<repo>#<path>)")
	root.PersistentFlags().BoolVar(&opts.Verbose, "verbose", false, "Enable verbose output")
	root.PersistentFlags().BoolVar(&opts.Quiet, "quiet", false, "Suppress non-error output")

	root.AddCommand(
		newBrowseCommand(opts),
		newListCommand(opts),
		newSearchCommand(opts),
		newShowCommand(opts),
		newBookCommand(opts),
		newRegionsCommand(opts),
		newConfigCommand(opts),
	)

	root.Version = Version
	root.SetVersionTemplate(fmt.Sprintf("tripdeck %s\n", Version))

	return root
}

func ExitWithError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
