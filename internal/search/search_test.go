package search

import (
	"fmt"
	"testing"

	"go.seanlatimer.dev/tripdeck/internal/catalog"
)

func scenarioCatalog() []catalog.PackageRecord {
	return []catalog.PackageRecord{
		{ID: 1, Title: "Bali Escape", Region: "Asia", Budget: "low"},
		{ID: 2, Title: "Paris Romance", Region: "Europe", Budget: "high"},
	}
}

func sampleCatalog() []catalog.PackageRecord {
	return []catalog.PackageRecord{
		{ID: 1, Title: "Bali Escape", Region: "Asia", Budget: "low"},
		{ID: 2, Title: "Paris Romance", Region: "Europe", Budget: "high"},
		{ID: 3, Title: "Kyoto Temples", Region: "Asia", Budget: "mid"},
		{ID: 4, Title: "Swiss Alps Adventure", Region: "Europe", Budget: "high"},
		{ID: 5, Title: "Marrakech Souks", Region: "Africa", Budget: "low"},
		{ID: 6, Title: "Cape Town Coastline", Region: "Africa", Budget: "mid"},
		{ID: 7, Title: "Patagonia Trek", Region: "South America", Budget: "high"},
		{ID: 8, Title: "Lisbon Weekend", Region: "Europe", Budget: "low"},
	}
}

func ids(records []catalog.PackageRecord) []int {
	out := make([]int, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApplyScenarios(t *testing.T) {
	records := scenarioCatalog()

	tests := []struct {
		name  string
		state FilterState
		want  []int
	}{
		{name: "region asia", state: FilterState{Query: "", Region: "Asia", Budget: All}, want: []int{1}},
		{name: "query a matches both", state: FilterState{Query: "a", Region: All, Budget: All}, want: []int{1, 2}},
		{name: "defaults match all", state: DefaultFilter(), want: []int{1, 2}},
		{name: "budget high", state: FilterState{Region: All, Budget: "high"}, want: []int{2}},
		{name: "query case insensitive", state: FilterState{Query: "PARIS", Region: All, Budget: All}, want: []int{2}},
		{name: "query matches region", state: FilterState{Query: "europe", Region: All, Budget: All}, want: []int{2}},
		{name: "query trimmed", state: FilterState{Query: "  bali  ", Region: All, Budget: All}, want: []int{1}},
		{name: "blank query", state: FilterState{Query: "   ", Region: All, Budget: All}, want: []int{1, 2}},
		{name: "conjunction excludes", state: FilterState{Query: "bali", Region: "Europe", Budget: All}, want: []int{}},
		{name: "region exact not substring", state: FilterState{Region: "Asi", Budget: All}, want: []int{}},
		{name: "no match", state: FilterState{Query: "zanzibar", Region: All, Budget: All}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Apply(records, tt.state))
			if !equalIDs(got, tt.want) {
				t.Errorf("Apply(%+v) = %v, want %v", tt.state, got, tt.want)
			}
		})
	}
}

func TestApplyEmptyCatalog(t *testing.T) {
	got := Apply(nil, DefaultFilter())
	if len(got) != 0 {
		t.Errorf("Apply(nil) = %v, want empty", got)
	}
}

func TestApplySubsetAndMonotonic(t *testing.T) {
	records := sampleCatalog()
	catalogIDs := map[int]bool{}
	for _, r := range records {
		catalogIDs[r.ID] = true
	}

	regions := []string{All, "Asia", "Europe", "Africa", "South America", "Nowhere"}
	budgets := []string{All, "low", "mid", "high"}
	queries := []string{"", "a", "e", "bali", "zzz"}

	for _, q := range queries {
		for _, region := range regions {
			for _, budget := range budgets {
				state := FilterState{Query: q, Region: region, Budget: budget}
				got := Apply(records, state)

				for _, r := range got {
					if !catalogIDs[r.ID] {
						t.Fatalf("Apply(%+v) returned id %d not in catalog", state, r.ID)
					}
				}

				if region != All {
					wider := Apply(records, FilterState{Query: q, Region: All, Budget: budget})
					if len(got) > len(wider) {
						t.Errorf("narrowing region to %q grew results: %d > %d", region, len(got), len(wider))
					}
				}
				if budget != All {
					wider := Apply(records, FilterState{Query: q, Region: region, Budget: All})
					if len(got) > len(wider) {
						t.Errorf("narrowing budget to %q grew results: %d > %d", budget, len(got), len(wider))
					}
				}
			}
		}
	}
}

func TestApplyIdempotentAndStable(t *testing.T) {
	records := sampleCatalog()
	state := FilterState{Query: "e", Region: "Europe", Budget: All}

	first := ids(Apply(records, state))
	second := ids(Apply(records, state))
	if !equalIDs(first, second) {
		t.Fatalf("Apply not idempotent: %v vs %v", first, second)
	}
	for i := 1; i < len(first); i++ {
		if first[i] < first[i-1] {
			t.Errorf("Apply changed catalog order: %v", first)
		}
	}
}

func TestSuggest(t *testing.T) {
	records := sampleCatalog()

	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{name: "empty query", query: "", want: nil},
		{name: "blank query", query: "   ", want: nil},
		{name: "title match", query: "kyoto", want: []int{3}},
		{name: "region match", query: "africa", want: []int{5, 6}},
		{name: "capped at five in catalog order", query: "a", want: []int{1, 2, 3, 4, 5}},
		{name: "no match", query: "zanzibar", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Suggest(records, tt.query)
			if tt.want == nil {
				if got != nil {
					t.Errorf("Suggest(%q) = %v, want nil", tt.query, ids(got))
				}
				return
			}
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("Suggest(%q) = %v, want %v", tt.query, ids(got), tt.want)
			}
		})
	}
}

func TestSuggestCountInvariant(t *testing.T) {
	var records []catalog.PackageRecord
	for i := 0; i < 20; i++ {
		records = append(records, catalog.PackageRecord{ID: i, Title: fmt.Sprintf("Trip %d", i), Region: "Asia"})
	}

	for _, q := range []string{"t", "trip", "asia", "1", "x"} {
		if got := Suggest(records, q); len(got) > MaxSuggestions {
			t.Errorf("Suggest(%q) returned %d entries, want <= %d", q, len(got), MaxSuggestions)
		}
	}
}

func TestSuggestKeepsDuplicateTitles(t *testing.T) {
	records := []catalog.PackageRecord{
		{ID: 1, Title: "Bali Escape", Region: "Asia"},
		{ID: 2, Title: "Bali Escape", Region: "Asia"},
	}
	got := Titles(Suggest(records, "bali"))
	if len(got) != 2 || got[0] != "Bali Escape" || got[1] != "Bali Escape" {
		t.Errorf("Titles(Suggest()) = %v, want both duplicates", got)
	}
}

func TestFuzzyTitles(t *testing.T) {
	records := sampleCatalog()

	got := FuzzyTitles(records, "ali", 0)
	if len(got) == 0 || got[0].ID != 1 {
		t.Fatalf("FuzzyTitles(\"ali\") = %v, want Bali Escape first", ids(got))
	}

	if got := FuzzyTitles(records, "e", 2); len(got) > 2 {
		t.Errorf("FuzzyTitles limit 2 returned %d", len(got))
	}
	if got := FuzzyTitles(records, " ", 0); got != nil {
		t.Errorf("FuzzyTitles(blank) = %v, want nil", ids(got))
	}
}
