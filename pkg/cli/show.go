package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"go.seanlatimer.dev/tripdeck/internal/catalog"
	"go.seanlatimer.dev/tripdeck/internal/render"
)

func newShowCommand(opts *Options) *cobra.Command {
	var (
		output string
		width  int
	)

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show the details of a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := validateFormat(output)
			if err != nil {
				return err
			}

			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid package id %q", args[0])
			}

			c, err := opts.loadCatalog(cmd)
			if err != nil {
				return err
			}

			record, err := c.FindByID(id)
			if errors.Is(err, catalog.ErrNotFound) {
				return fmt.Errorf("package %d: %w", id, err)
			}
			if err != nil {
				return err
			}

			view := render.Detail(record)
			return writeOutput(cmd.OutOrStdout(), format, view, func(w io.Writer) error {
				return render.WriteDetail(w, view, width)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", formatText, "Output format: text, json or yaml")
	cmd.Flags().IntVar(&width, "width", 0, "Wrap the description at this many columns")
	return cmd
}
