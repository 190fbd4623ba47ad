package search

import (
	"github.com/sahilm/fuzzy"
	"go.seanlatimer.dev/tripdeck/internal/catalog"
)

// MaxSuggestions caps the autosuggest list.
const MaxSuggestions = 5

// Suggest returns up to MaxSuggestions records whose title or region contains
// the query, in catalog order. Records sharing a title are all returned.
func Suggest(records []catalog.PackageRecord, query string) []catalog.PackageRecord {
	q := normalizeQuery(query)
	if q == "" {
		return nil
	}

	suggestions := make([]catalog.PackageRecord, 0, MaxSuggestions)
	for _, r := range records {
		if !matchesQuery(q, r) {
			continue
		}
		suggestions = append(suggestions, r)
		if len(suggestions) == MaxSuggestions {
			break
		}
	}
	return suggestions
}

// Titles collapses records to their display titles.
func Titles(records []catalog.PackageRecord) []string {
	titles := make([]string, 0, len(records))
	for _, r := range records {
		titles = append(titles, r.Title)
	}
	return titles
}

// FuzzyTitles ranks records by fuzzy title match, best first. A limit of zero
// or less returns every match.
func FuzzyTitles(records []catalog.PackageRecord, query string, limit int) []catalog.PackageRecord {
	if normalizeQuery(query) == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, titleSource(records))
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	ranked := make([]catalog.PackageRecord, 0, len(matches))
	for _, match := range matches {
		ranked = append(ranked, records[match.Index])
	}
	return ranked
}

type titleSource []catalog.PackageRecord

func (s titleSource) Len() int {
	return len(s)
}

func (s titleSource) String(i int) string {
	return s[i].Title
}
