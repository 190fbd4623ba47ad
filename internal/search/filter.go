// Package search filters the catalog by facets and produces autosuggest matches.
package search

import (
	"strings"

	"go.seanlatimer.dev/tripdeck/internal/catalog"
)

// All is the facet value that imposes no constraint.
const All = "all"

// FilterState is the current value of the three facets.
type FilterState struct {
	Query  string
	Region string
	Budget string
}

func DefaultFilter() FilterState {
	return FilterState{Region: All, Budget: All}
}

// Apply returns the records matching every facet, in catalog order.
func Apply(records []catalog.PackageRecord, state FilterState) []catalog.PackageRecord {
	query := normalizeQuery(state.Query)
	filtered := make([]catalog.PackageRecord, 0, len(records))
	for _, r := range records {
		if !matchesFacet(state.Region, r.Region) {
			continue
		}
		if !matchesFacet(state.Budget, r.Budget) {
			continue
		}
		if !matchesQuery(query, r) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

// matchesFacet treats an empty facet like the sentinel.
func matchesFacet(facet, value string) bool {
	return facet == "" || facet == All || facet == value
}

// matchesQuery expects a normalized query.
func matchesQuery(query string, r catalog.PackageRecord) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Title), query) ||
		strings.Contains(strings.ToLower(r.Region), query)
}

func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
