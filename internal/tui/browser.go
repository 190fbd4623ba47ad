// Package tui provides the interactive terminal browser for the package catalog.
package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/list"
	"charm.land/bubbles/v2/textinput"
	"go.uber.org/zap"

	"go.seanlatimer.dev/tripdeck/internal/catalog"
	"go.seanlatimer.dev/tripdeck/internal/search"
	"go.seanlatimer.dev/tripdeck/internal/session"
)

type Options struct {
	Source       catalog.Source
	Logger       *zap.Logger
	UseAltScreen bool
}

type bookingField int

const (
	fieldDestination bookingField = iota
	fieldName
	fieldEmail
)

type catalogLoadedMsg struct {
	catalog *catalog.Catalog
}

type catalogFailedMsg struct {
	err error
}

type resetMsg struct{}

type browserModel struct {
	ctx    context.Context
	source catalog.Source
	logger *zap.Logger

	state session.State

	search           textinput.Model
	suggestionCursor int
	cursor           int

	destinations list.Model
	destCatalog  *catalog.Catalog
	nameInput    textinput.Model
	emailInput   textinput.Model
	bookingField bookingField

	width        int
	height       int
	useAltScreen bool
}

// ShowBrowser runs the browser until the user quits.
func ShowBrowser(ctx context.Context, opts Options) error {
	program := tea.NewProgram(newBrowserModel(ctx, opts))
	_, err := program.Run()
	return err
}

func newBrowserModel(ctx context.Context, opts Options) browserModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	searchInput := textinput.New()
	searchInput.Prompt = ""
	searchInput.Placeholder = "Where do you want to go?"
	searchInput.SetWidth(40)
	searchInput.Blur() // Start unfocused so hotkeys work immediately

	nameInput := textinput.New()
	nameInput.Prompt = ""
	nameInput.Placeholder = "Your name"
	nameInput.SetWidth(40)

	emailInput := textinput.New()
	emailInput.Prompt = ""
	emailInput.Placeholder = "you@example.com"
	emailInput.SetWidth(40)

	l := list.New(destinationItems(catalog.BuildDestinations(nil)), destinationDelegate{}, 50, destinationListHeight)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(false)

	return browserModel{
		ctx:              ctx,
		source:           opts.Source,
		logger:           logger,
		state:            session.New(),
		search:           searchInput,
		suggestionCursor: -1,
		destinations:     l,
		nameInput:        nameInput,
		emailInput:       emailInput,
		useAltScreen:     opts.UseAltScreen,
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(tea.RequestBackgroundColor, m.loadCmd())
}

func (m browserModel) loadCmd() tea.Cmd {
	ctx, src, logger := m.ctx, m.source, m.logger
	return func() tea.Msg {
		logger.Debug("loading catalog", zap.Stringer("source", src))
		c, err := catalog.Load(ctx, src)
		if err != nil {
			return catalogFailedMsg{err: err}
		}
		return catalogLoadedMsg{catalog: c}
	}
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.BackgroundColorMsg:
		// Rebuild styles for the reported background
		appStyles = newStyles()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentWidth := m.contentWidth()
		m.search.SetWidth(contentWidth - 4)
		m.nameInput.SetWidth(contentWidth - 10)
		m.emailInput.SetWidth(contentWidth - 10)
		m.destinations.SetSize(contentWidth, destinationListHeight)
		return m, nil
	case catalogLoadedMsg:
		m.logger.Info("catalog loaded", zap.Int("records", msg.catalog.Len()))
		return m.apply(session.Loaded{Catalog: msg.catalog})
	case catalogFailedMsg:
		m.logger.Warn("catalog load failed", zap.Error(msg.err))
		return m.apply(session.LoadFailed{Err: msg.err})
	case resetMsg:
		m.logger.Debug("resetting session")
		m.search.SetValue("")
		m.search.Blur()
		m.nameInput.SetValue("")
		m.emailInput.SetValue("")
		m.nameInput.Blur()
		m.emailInput.Blur()
		m.bookingField = fieldDestination
		m.cursor = 0
		m.suggestionCursor = -1
		return m.apply(session.ResetElapsed{})
	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg.String()); handled {
			return next, cmd
		}
		return m.updateInputs(msg)
	}
	return m, nil
}

// apply runs e through the session and turns its effect into a command.
func (m browserModel) apply(e session.Event) (browserModel, tea.Cmd) {
	var effect session.Effect
	m.state, effect = session.Apply(m.state, e)
	m.syncDestinations()
	m.cursor = clampCursor(m.cursor, len(m.state.Results))
	if len(m.state.SuggestionView().Items) == 0 {
		m.suggestionCursor = -1
	}

	switch effect {
	case session.EffectScheduleReset:
		return m, tea.Tick(session.ResetDelay, func(time.Time) tea.Msg { return resetMsg{} })
	case session.EffectReload:
		return m, m.loadCmd()
	}
	return m, nil
}

// handleKey processes navigation keys. Keys it does not handle go to the
// focused text input.
func (m browserModel) handleKey(key string) (browserModel, tea.Cmd, bool) {
	if key == "ctrl+c" {
		return m, tea.Quit, true
	}
	switch m.state.Screen {
	case session.ScreenDetail:
		return m.handleDetailKey(key)
	case session.ScreenBooking:
		return m.handleBookingKey(key)
	default:
		return m.handleBrowseKey(key)
	}
}

func (m browserModel) handleBrowseKey(key string) (browserModel, tea.Cmd, bool) {
	if m.search.Focused() {
		suggestions := m.state.SuggestionView()
		switch key {
		case "esc":
			// Layered escape: close suggestions -> unfocus
			if suggestions.Visible {
				next, cmd := m.apply(session.SuggestionsDismissed{})
				return next, cmd, true
			}
			m.search.Blur()
			return m, nil, true
		case "down":
			if m.suggestionCursor < len(suggestions.Items)-1 {
				m.suggestionCursor++
			}
			return m, nil, true
		case "up":
			if m.suggestionCursor >= 0 {
				m.suggestionCursor--
			}
			return m, nil, true
		case "enter":
			if m.suggestionCursor >= 0 && m.suggestionCursor < len(suggestions.Items) {
				next, cmd := m.apply(session.SuggestionChosen{Index: m.suggestionCursor})
				next.search.SetValue(next.state.Filter.Query)
				next.search.CursorEnd()
				next.suggestionCursor = -1
				return next, cmd, true
			}
			next, cmd := m.apply(session.SuggestionsDismissed{})
			next.search.Blur()
			return next, cmd, true
		case "tab":
			m.search.Blur()
			return m, nil, true
		}
		return m, nil, false
	}

	switch key {
	case "q":
		return m, tea.Quit, true
	case "/":
		m.search.Focus()
		return m, nil, true
	case "esc":
		// Layered escape: clear query -> nothing
		if m.search.Value() != "" {
			m.search.SetValue("")
			next, cmd := m.apply(session.QueryChanged{Query: ""})
			return next, cmd, true
		}
		return m, nil, true
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil, true
	case "down", "j":
		if m.cursor < len(m.state.Results)-1 {
			m.cursor++
		}
		return m, nil, true
	case "enter":
		if m.cursor < 0 || m.cursor >= len(m.state.Results) {
			return m, nil, true
		}
		next, cmd := m.apply(session.CardOpened{ID: m.state.Results[m.cursor].ID})
		return next, cmd, true
	case "r":
		region := nextOption(m.state.RegionOptions(), m.state.Filter.Region)
		next, cmd := m.apply(session.RegionSelected{Region: region})
		return next, cmd, true
	case "b":
		budget := nextOption(m.state.BudgetOptions(), m.state.Filter.Budget)
		next, cmd := m.apply(session.BudgetSelected{Budget: budget})
		return next, cmd, true
	case "tab":
		next, cmd := m.apply(session.BookingOpened{})
		return next.focusBookingField(fieldDestination), cmd, true
	}
	return m, nil, true
}

func (m browserModel) handleDetailKey(key string) (browserModel, tea.Cmd, bool) {
	switch key {
	case "esc", "q":
		next, cmd := m.apply(session.DetailClosed{})
		return next, cmd, true
	case "enter", "b":
		next, cmd := m.apply(session.BookRequested{})
		return next.focusBookingField(fieldName), cmd, true
	}
	// The detail view is modal
	return m, nil, true
}

func (m browserModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.state.Screen == session.ScreenBrowse && m.search.Focused():
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != m.state.Filter.Query {
			m.suggestionCursor = -1
			next, applyCmd := m.apply(session.QueryChanged{Query: m.search.Value()})
			return next, tea.Batch(cmd, applyCmd)
		}
	case m.state.Screen == session.ScreenBooking && m.bookingField == fieldName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case m.state.Screen == session.ScreenBooking && m.bookingField == fieldEmail:
		m.emailInput, cmd = m.emailInput.Update(msg)
	}
	return m, cmd
}

func nextOption(options []string, current string) string {
	if len(options) == 0 {
		return search.All
	}
	for i, opt := range options {
		if opt == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func clampCursor(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}
