package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"go.seanlatimer.dev/tripdeck/internal/catalog"
	"go.seanlatimer.dev/tripdeck/internal/render"
	"go.seanlatimer.dev/tripdeck/internal/search"
)

func newSearchCommand(opts *Options) *cobra.Command {
	var (
		fuzzyMatch bool
		output     string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Show autosuggest matches for a query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := validateFormat(output)
			if err != nil {
				return err
			}

			c, err := opts.loadCatalog(cmd)
			if err != nil {
				return err
			}

			query := strings.Join(args, " ")
			var matches []catalog.PackageRecord
			if fuzzyMatch {
				matches = search.FuzzyTitles(c.Records(), query, search.MaxSuggestions)
			} else {
				matches = search.Suggest(c.Records(), query)
			}

			cards := make([]render.Card, 0, len(matches))
			for _, r := range matches {
				cards = append(cards, render.NewCard(r))
			}

			return writeOutput(cmd.OutOrStdout(), format, cards, func(w io.Writer) error {
				view := render.Suggestions(matches, query)
				if view.NoMatch {
					_, err := fmt.Fprintln(w, render.NoMatchText)
					return err
				}
				for _, card := range cards {
					if _, err := fmt.Fprintln(w, render.CardLine(card)); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&fuzzyMatch, "fuzzy", false, "Rank titles by fuzzy match instead of substring")
	cmd.Flags().StringVarP(&output, "output", "o", formatText, "Output format: text, json or yaml")
	return cmd
}
