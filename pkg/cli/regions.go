package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type facets struct {
	Regions []string `json:"regions" yaml:"regions"`
	Budgets []string `json:"budgets" yaml:"budgets"`
}

func newRegionsCommand(opts *Options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List the region and budget filter values in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := validateFormat(output)
			if err != nil {
				return err
			}

			c, err := opts.loadCatalog(cmd)
			if err != nil {
				return err
			}

			values := facets{Regions: c.Regions(), Budgets: c.Budgets()}
			return writeOutput(cmd.OutOrStdout(), format, values, func(w io.Writer) error {
				fmt.Fprintln(w, "Regions:")
				for _, r := range values.Regions {
					fmt.Fprintf(w, "  %s\n", r)
				}
				fmt.Fprintln(w, "Budgets:")
				for _, b := range values.Budgets {
					fmt.Fprintf(w, "  %s\n", b)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", formatText, "Output format: text, json or yaml")
	return cmd
}
