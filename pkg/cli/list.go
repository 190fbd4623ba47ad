package cli

import (
	"io"

	"github.com/spf13/cobra"

	"go.seanlatimer.dev/tripdeck/internal/render"
	"go.seanlatimer.dev/tripdeck/internal/search"
)

func newListCommand(opts *Options) *cobra.Command {
	var (
		query  string
		region string
		budget string
		output string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List packages matching the search and facet filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := validateFormat(output)
			if err != nil {
				return err
			}

			c, err := opts.loadCatalog(cmd)
			if err != nil {
				return err
			}

			results := search.Apply(c.Records(), search.FilterState{
				Query:  query,
				Region: region,
				Budget: budget,
			})
			view := render.List(results)

			cards := view.Cards
			if cards == nil {
				cards = []render.Card{}
			}
			return writeOutput(cmd.OutOrStdout(), format, cards, func(w io.Writer) error {
				return render.WriteList(w, view)
			})
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Case-insensitive text matched against title and region")
	cmd.Flags().StringVar(&region, "region", search.All, "Region filter (all for no constraint)")
	cmd.Flags().StringVar(&budget, "budget", search.All, "Budget filter (all for no constraint)")
	cmd.Flags().StringVarP(&output, "output", "o", formatText, "Output format: text, json or yaml")
	return cmd
}
