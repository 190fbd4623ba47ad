// Package render turns catalog records into display models for the card list,
// the suggestion list and the detail view. Nothing here mutates state.
package render

import (
	"net/url"
	"strings"

	"go.seanlatimer.dev/tripdeck/internal/catalog"
	"go.seanlatimer.dev/tripdeck/internal/search"
)

// FallbackImage replaces image URLs that are blank or cannot be parsed.
const FallbackImage = "https://via.placeholder.com/400x250?text=Image+Missing"

const (
	NoResultsText  = "No packages found"
	LoadingText    = "Loading deals..."
	LoadFailedText = "Deals could not be loaded. Please use the Custom Trip form."
	NoMatchText    = "No trips found..."
)

type PlaceholderKind int

const (
	PlaceholderNone PlaceholderKind = iota
	PlaceholderNoResults
	PlaceholderLoading
	PlaceholderLoadFailed
)

type Placeholder struct {
	Kind PlaceholderKind
	Text string
}

// Card is one entry of the card list, keyed by the record id.
type Card struct {
	ID    int    `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Image string `json:"image" yaml:"image"`
	Badge string `json:"badge" yaml:"badge"`
	Price string `json:"price" yaml:"price"`
}

// ListView is either a set of cards or a single placeholder, never both.
type ListView struct {
	Cards       []Card
	Placeholder Placeholder
}

func (v ListView) Empty() bool {
	return len(v.Cards) == 0
}

func List(records []catalog.PackageRecord) ListView {
	if len(records) == 0 {
		return ListView{Placeholder: Placeholder{Kind: PlaceholderNoResults, Text: NoResultsText}}
	}
	cards := make([]Card, 0, len(records))
	for _, r := range records {
		cards = append(cards, NewCard(r))
	}
	return ListView{Cards: cards}
}

func Loading() ListView {
	return ListView{Placeholder: Placeholder{Kind: PlaceholderLoading, Text: LoadingText}}
}

func Failed() ListView {
	return ListView{Placeholder: Placeholder{Kind: PlaceholderLoadFailed, Text: LoadFailedText}}
}

func NewCard(r catalog.PackageRecord) Card {
	return Card{
		ID:    r.ID,
		Title: r.Title,
		Image: ImageURL(r.Image),
		Badge: r.Days.String(),
		Price: r.PriceLabel(),
	}
}

func ImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return FallbackImage
	}
	if _, err := url.Parse(raw); err != nil {
		return FallbackImage
	}
	return raw
}

// DetailView holds the fields of the detail modal.
type DetailView struct {
	ID          int      `json:"id" yaml:"id"`
	Image       string   `json:"image" yaml:"image"`
	Title       string   `json:"title" yaml:"title"`
	Price       string   `json:"price" yaml:"price"`
	Days        string   `json:"days" yaml:"days"`
	Region      string   `json:"region" yaml:"region"`
	Tags        []string `json:"tags" yaml:"tags"`
	Description string   `json:"description" yaml:"description"`
}

func Detail(r catalog.PackageRecord) DetailView {
	tags := make([]string, len(r.Tags))
	copy(tags, r.Tags)
	return DetailView{
		ID:          r.ID,
		Image:       ImageURL(r.Image),
		Title:       r.Title,
		Price:       r.PriceLabel(),
		Days:        r.Days.String(),
		Region:      r.Region,
		Tags:        tags,
		Description: Description(r.Title),
	}
}

func Description(title string) string {
	return "Enjoy a wonderful trip to " + title
}

// SuggestionView is the autosuggest surface. Hidden for a blank query; a
// query with no matches shows a single NoMatchText row.
type SuggestionView struct {
	Visible bool
	Items   []string
	NoMatch bool
}

func Suggestions(matches []catalog.PackageRecord, query string) SuggestionView {
	if strings.TrimSpace(query) == "" {
		return SuggestionView{}
	}
	if len(matches) == 0 {
		return SuggestionView{Visible: true, NoMatch: true}
	}
	return SuggestionView{Visible: true, Items: search.Titles(matches)}
}
