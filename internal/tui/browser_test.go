package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap/zaptest"

	"go.seanlatimer.dev/tripdeck/internal/catalog"
	"go.seanlatimer.dev/tripdeck/internal/render"
	"go.seanlatimer.dev/tripdeck/internal/session"
	"go.seanlatimer.dev/tripdeck/testutil"
)

func newTestModel(t *testing.T) browserModel {
	t.Helper()
	path := testutil.WriteCatalogFile(t, t.TempDir(), testutil.SamplePackagesJSON)
	return resize(t, newBrowserModel(context.Background(), Options{
		Source: catalog.FileSource{Path: path},
		Logger: zaptest.NewLogger(t),
	}))
}

// resize gives the model a terminal wide enough that no line wraps.
func resize(t *testing.T, m browserModel) browserModel {
	t.Helper()
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

// screen returns the rendered content without styling.
func screen(m browserModel) string {
	return ansi.Strip(m.Content())
}

// setQuery replaces the search text as if it had been typed.
func (m browserModel) setQuery(query string) browserModel {
	m.search.SetValue(query)
	m.suggestionCursor = -1
	next, _ := m.apply(session.QueryChanged{Query: query})
	return next
}

func update(t *testing.T, m browserModel, msg any) browserModel {
	t.Helper()
	next, _ := m.Update(msg)
	bm, ok := next.(browserModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return bm
}

func press(t *testing.T, m browserModel, keys ...string) browserModel {
	t.Helper()
	for _, key := range keys {
		var handled bool
		m, _, handled = m.handleKey(key)
		if !handled {
			t.Fatalf("key %q was not handled", key)
		}
	}
	return m
}

func loadedModel(t *testing.T) browserModel {
	t.Helper()
	m := newTestModel(t)
	msg := m.loadCmd()()
	loaded, ok := msg.(catalogLoadedMsg)
	if !ok {
		t.Fatalf("loadCmd() = %T, want catalogLoadedMsg", msg)
	}
	return update(t, m, loaded)
}

func TestLoadingPlaceholder(t *testing.T) {
	m := newTestModel(t)
	if content := screen(m); !strings.Contains(content, render.LoadingText) {
		t.Errorf("Content() before load missing %q:\n%s", render.LoadingText, content)
	}
}

func TestLoadedShowsCards(t *testing.T) {
	m := loadedModel(t)
	content := screen(m)
	for _, title := range []string{"Bali Escape", "Paris Romance", "Kyoto Temples", "Lisbon Weekend"} {
		if !strings.Contains(content, title) {
			t.Errorf("Content() missing %q", title)
		}
	}
	if !strings.Contains(content, "Featured Getaways") {
		t.Error("Content() missing default heading")
	}
}

func TestLoadFailure(t *testing.T) {
	m := resize(t, newBrowserModel(context.Background(), Options{
		Source: catalog.FileSource{Path: filepath.Join(t.TempDir(), "missing.json")},
	}))
	msg := m.loadCmd()()
	failed, ok := msg.(catalogFailedMsg)
	if !ok {
		t.Fatalf("loadCmd() = %T, want catalogFailedMsg", msg)
	}
	var loadErr *catalog.LoadError
	if !errors.As(failed.err, &loadErr) {
		t.Errorf("load error = %v, want *catalog.LoadError", failed.err)
	}

	m = update(t, m, failed)
	if content := screen(m); !strings.Contains(content, render.LoadFailedText) {
		t.Errorf("Content() missing failure placeholder:\n%s", content)
	}
	if n := len(m.destinations.Items()); n != 1 {
		t.Errorf("destination items = %d, want custom only", n)
	}
}

func TestSearchAndSuggestions(t *testing.T) {
	m := loadedModel(t)
	m = press(t, m, "/")
	if !m.search.Focused() {
		t.Fatal("search not focused after /")
	}

	m = m.setQuery("zanzibar")
	content := screen(m)
	if !strings.Contains(content, render.NoMatchText) || !strings.Contains(content, render.NoResultsText) {
		t.Errorf("Content() for unmatched query:\n%s", content)
	}

	m = m.setQuery("e")
	m = press(t, m, "down", "down", "enter")
	if m.state.Filter.Query != "Paris Romance" {
		t.Errorf("query after choosing suggestion = %q, want Paris Romance", m.state.Filter.Query)
	}
	if m.search.Value() != "Paris Romance" {
		t.Errorf("search input = %q", m.search.Value())
	}
	if len(m.state.Results) != 1 || m.state.Results[0].ID != 2 {
		t.Errorf("results = %+v, want Paris only", m.state.Results)
	}

	// Layered escape: unfocus, then clear.
	m = press(t, m, "esc")
	if m.search.Focused() {
		t.Error("search still focused after esc")
	}
	m = press(t, m, "esc")
	if m.state.Filter.Query != "" || len(m.state.Results) != 4 {
		t.Errorf("after clearing: query = %q, results = %d", m.state.Filter.Query, len(m.state.Results))
	}
}

func TestFacetCycling(t *testing.T) {
	m := loadedModel(t)

	m = press(t, m, "r")
	if m.state.Filter.Region != "Asia" {
		t.Errorf("region = %q, want Asia", m.state.Filter.Region)
	}
	m = press(t, m, "b")
	if m.state.Filter.Budget != "low" {
		t.Errorf("budget = %q, want low", m.state.Filter.Budget)
	}
	if len(m.state.Results) != 1 || m.state.Results[0].ID != 1 {
		t.Errorf("results = %+v, want Bali only", m.state.Results)
	}

	m = press(t, m, "r", "r")
	if m.state.Filter.Region != "all" {
		t.Errorf("region after full cycle = %q, want all", m.state.Filter.Region)
	}
}

func TestOpenDetailAndBook(t *testing.T) {
	m := loadedModel(t)

	m = press(t, m, "down", "enter")
	if m.state.Screen != session.ScreenDetail {
		t.Fatalf("screen = %v, want detail", m.state.Screen)
	}
	if content := screen(m); !strings.Contains(content, "Enjoy a wonderful trip to Paris Romance") {
		t.Errorf("detail content:\n%s", content)
	}

	// Keys outside the modal actions are swallowed.
	m = press(t, m, "r")
	if m.state.Filter.Region != "all" {
		t.Error("detail view let a browse key through")
	}

	m = press(t, m, "enter")
	if m.state.Screen != session.ScreenBooking {
		t.Fatalf("screen = %v, want booking", m.state.Screen)
	}
	if got := m.selectedDestination(); got != "2" {
		t.Errorf("selected destination = %q, want 2", got)
	}
	if !m.nameInput.Focused() {
		t.Error("name input not focused after booking from detail")
	}
}

func TestDestinationSelector(t *testing.T) {
	m := loadedModel(t)
	m = press(t, m, "tab")
	if m.state.Screen != session.ScreenBooking || m.bookingField != fieldDestination {
		t.Fatalf("screen = %v, field = %v", m.state.Screen, m.bookingField)
	}
	if m.selectedDestination() != catalog.CustomDestination {
		t.Errorf("initial destination = %q, want custom", m.selectedDestination())
	}

	m = press(t, m, "down")
	if m.state.Selected == nil || m.state.Selected.ID != 1 {
		t.Errorf("selected = %+v, want Bali", m.state.Selected)
	}
	m = press(t, m, "up")
	if m.state.Selected != nil {
		t.Errorf("selected = %+v, want none for custom trip", m.state.Selected)
	}

	m = press(t, m, "esc")
	if m.state.Screen != session.ScreenBrowse {
		t.Errorf("screen = %v, want browse", m.state.Screen)
	}
}

func TestBookingFlow(t *testing.T) {
	m := loadedModel(t)
	m = press(t, m, "tab", "tab")
	if m.bookingField != fieldName {
		t.Fatalf("field = %v, want name", m.bookingField)
	}

	m = press(t, m, "enter")
	if m.state.Booking.Error == "" {
		t.Error("empty booking accepted")
	}

	m.nameInput.SetValue("Jo")
	m.emailInput.SetValue("jo@example.com")
	m, cmd, _ := m.handleKey("enter")
	if cmd == nil {
		t.Fatal("successful booking returned no reset command")
	}
	if !strings.Contains(m.state.Booking.Confirmation, "Jo") {
		t.Errorf("confirmation = %q", m.state.Booking.Confirmation)
	}
	if m.nameInput.Value() != "" || m.emailInput.Value() != "" {
		t.Error("booking inputs not cleared")
	}

	next, reload := m.Update(resetMsg{})
	m = next.(browserModel)
	if reload == nil {
		t.Fatal("reset returned no reload command")
	}
	if m.state.Status != session.StatusLoading || m.state.Screen != session.ScreenBrowse {
		t.Errorf("after reset: status = %v, screen = %v", m.state.Status, m.state.Screen)
	}

	if _, ok := reload().(catalogLoadedMsg); !ok {
		t.Error("reload command did not load the catalog")
	}
}

func TestNextOption(t *testing.T) {
	options := []string{"all", "Asia", "Europe"}
	tests := []struct {
		current string
		want    string
	}{
		{current: "all", want: "Asia"},
		{current: "Europe", want: "all"},
		{current: "Mars", want: "all"},
	}
	for _, tt := range tests {
		if got := nextOption(options, tt.current); got != tt.want {
			t.Errorf("nextOption(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}
}

func TestClampCursor(t *testing.T) {
	tests := []struct {
		cursor, length, want int
	}{
		{cursor: 0, length: 0, want: 0},
		{cursor: 5, length: 3, want: 2},
		{cursor: -1, length: 3, want: 0},
		{cursor: 1, length: 3, want: 1},
	}
	for _, tt := range tests {
		if got := clampCursor(tt.cursor, tt.length); got != tt.want {
			t.Errorf("clampCursor(%d, %d) = %d, want %d", tt.cursor, tt.length, got, tt.want)
		}
	}
}
