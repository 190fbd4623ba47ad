// Package session holds the browser state and the transitions that user and
// loader events apply to it. Apply is pure: the terminal UI and the CLI feed it
// events and act on the returned Effect.
package session

import (
	"fmt"
	"strconv"
	"strings"

	"go.seanlatimer.dev/tripdeck/internal/catalog"
	"go.seanlatimer.dev/tripdeck/internal/render"
	"go.seanlatimer.dev/tripdeck/internal/search"
)

type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "loading"
	}
}

type Screen int

const (
	ScreenBrowse Screen = iota
	ScreenDetail
	ScreenBooking
)

// Effect is work the caller must perform after a transition.
type Effect int

const (
	EffectNone Effect = iota
	// EffectScheduleReset asks for ResetElapsed to be delivered after ResetDelay.
	EffectScheduleReset
	// EffectReload asks for the catalog to be fetched again.
	EffectReload
)

type State struct {
	Status  Status
	Catalog *catalog.Catalog
	LoadErr error

	Filter          search.FilterState
	Results         []catalog.PackageRecord
	Suggestions     []catalog.PackageRecord
	SuggestionsOpen bool

	// Selected is last-write-wins and survives closing the detail view.
	Selected *catalog.PackageRecord
	Screen   Screen
	Booking  BookingForm

	ResetPending bool
}

// New returns the state of a freshly opened browser with the load outstanding.
func New() State {
	return State{
		Status:  StatusLoading,
		Filter:  search.DefaultFilter(),
		Booking: BookingForm{Destination: catalog.CustomDestination},
	}
}

type Event interface {
	isEvent()
}

type (
	Loaded struct {
		Catalog *catalog.Catalog
	}
	LoadFailed struct {
		Err error
	}
	QueryChanged struct {
		Query string
	}
	// SuggestionChosen picks an entry of the visible suggestion list by index.
	SuggestionChosen struct {
		Index int
	}
	SuggestionsDismissed struct{}
	RegionSelected       struct {
		Region string
	}
	BudgetSelected struct {
		Budget string
	}
	CardOpened struct {
		ID int
	}
	DetailClosed struct{}
	// BookRequested is the detail view's single action.
	BookRequested     struct{}
	BookingOpened     struct{}
	BookingClosed     struct{}
	DestinationChosen struct {
		Value string
	}
	BookingSubmitted struct {
		Name      string
		Email     string
		Reference string
	}
	ResetElapsed struct{}
)

func (Loaded) isEvent()               {}
func (LoadFailed) isEvent()           {}
func (QueryChanged) isEvent()         {}
func (SuggestionChosen) isEvent()     {}
func (SuggestionsDismissed) isEvent() {}
func (RegionSelected) isEvent()       {}
func (BudgetSelected) isEvent()       {}
func (CardOpened) isEvent()           {}
func (DetailClosed) isEvent()         {}
func (BookRequested) isEvent()        {}
func (BookingOpened) isEvent()        {}
func (BookingClosed) isEvent()        {}
func (DestinationChosen) isEvent()    {}
func (BookingSubmitted) isEvent()     {}
func (ResetElapsed) isEvent()         {}

// Apply returns the state after e and the effect the caller must run.
func Apply(s State, e Event) (State, Effect) {
	switch e := e.(type) {
	case Loaded:
		s.Status = StatusReady
		s.Catalog = e.Catalog
		s.LoadErr = nil
		s.refresh()
	case LoadFailed:
		s.Status = StatusFailed
		s.Catalog = nil
		s.LoadErr = e.Err
		s.Booking.Destination = catalog.CustomDestination
		s.refresh()
	case QueryChanged:
		s.Filter.Query = e.Query
		s.SuggestionsOpen = strings.TrimSpace(e.Query) != ""
		s.refresh()
	case SuggestionChosen:
		if !s.SuggestionsOpen || e.Index < 0 || e.Index >= len(s.Suggestions) {
			return s, EffectNone
		}
		s.Filter.Query = s.Suggestions[e.Index].Title
		s.SuggestionsOpen = false
		s.refresh()
	case SuggestionsDismissed:
		s.SuggestionsOpen = false
		s.Suggestions = nil
	case RegionSelected:
		s.Filter.Region = facetValue(e.Region)
		s.refresh()
	case BudgetSelected:
		s.Filter.Budget = facetValue(e.Budget)
		s.refresh()
	case CardOpened:
		if s.Status != StatusReady {
			return s, EffectNone
		}
		record, err := s.Catalog.FindByID(e.ID)
		if err != nil {
			return s, EffectNone
		}
		s.Selected = &record
		s.SuggestionsOpen = false
		s.Screen = ScreenDetail
	case DetailClosed:
		if s.Screen == ScreenDetail {
			s.Screen = ScreenBrowse
		}
	case BookRequested, BookingOpened:
		s.Screen = ScreenBooking
		s.SuggestionsOpen = false
		s.Booking.Destination = catalog.CustomDestination
		if s.Selected != nil {
			s.Booking.Destination = strconv.Itoa(s.Selected.ID)
		}
	case BookingClosed:
		if s.Screen == ScreenBooking {
			s.Screen = ScreenBrowse
		}
	case DestinationChosen:
		s.Booking.Destination = e.Value
		if record, ok := s.Catalog.ResolveDestination(e.Value); ok {
			s.Selected = &record
		} else {
			s.Selected = nil
		}
	case BookingSubmitted:
		return s.submitBooking(e)
	case ResetElapsed:
		if !s.ResetPending {
			return s, EffectNone
		}
		return New(), EffectReload
	}
	return s, EffectNone
}

func (s State) submitBooking(e BookingSubmitted) (State, Effect) {
	if err := ValidateBooking(e.Name, e.Email); err != nil {
		s.Booking.Name = e.Name
		s.Booking.Email = e.Email
		s.Booking.Error = missingFieldsMessage
		s.Booking.Confirmation = ""
		return s, EffectNone
	}

	s.Booking.Name = ""
	s.Booking.Email = ""
	s.Booking.Error = ""
	s.Booking.Reference = e.Reference
	s.Booking.Confirmation = ConfirmationMessage(e.Name, e.Reference)

	if s.ResetPending {
		return s, EffectNone
	}
	s.ResetPending = true
	return s, EffectScheduleReset
}

// refresh recomputes the derived lists. Nothing is filtered until the
// catalog has finished loading.
func (s *State) refresh() {
	if s.Status != StatusReady {
		s.Results = nil
		s.Suggestions = nil
		return
	}
	records := s.Catalog.Records()
	s.Results = search.Apply(records, s.Filter)
	if s.SuggestionsOpen {
		s.Suggestions = search.Suggest(records, s.Filter.Query)
	} else {
		s.Suggestions = nil
	}
}

func facetValue(v string) string {
	if strings.TrimSpace(v) == "" {
		return search.All
	}
	return v
}

// ListView is what the card area shows for the current status and results.
func (s State) ListView() render.ListView {
	switch s.Status {
	case StatusLoading:
		return render.Loading()
	case StatusFailed:
		return render.Failed()
	default:
		return render.List(s.Results)
	}
}

func (s State) SuggestionView() render.SuggestionView {
	if s.Status != StatusReady || !s.SuggestionsOpen {
		return render.SuggestionView{}
	}
	return render.Suggestions(s.Suggestions, s.Filter.Query)
}

// DetailView renders the selected record, if any.
func (s State) DetailView() (render.DetailView, bool) {
	if s.Selected == nil {
		return render.DetailView{}, false
	}
	return render.Detail(*s.Selected), true
}

func (s State) Destinations() []catalog.Destination {
	return s.Catalog.Destinations()
}

func (s State) RegionOptions() []string {
	return append([]string{search.All}, s.Catalog.Regions()...)
}

func (s State) BudgetOptions() []string {
	return append([]string{search.All}, s.Catalog.Budgets()...)
}

// Heading is the title above the card list.
func (s State) Heading() string {
	if q := strings.TrimSpace(s.Filter.Query); q != "" {
		return fmt.Sprintf("Search Results for %q", q)
	}
	return "Featured Getaways"
}
