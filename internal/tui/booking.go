package tui

import (
	"fmt"
	"io"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/list"
	"go.uber.org/zap"

	"go.seanlatimer.dev/tripdeck/internal/catalog"
	"go.seanlatimer.dev/tripdeck/internal/session"
)

const destinationListHeight = 6

type destinationItem struct {
	destination catalog.Destination
}

func (i destinationItem) FilterValue() string { return i.destination.Label }

func destinationItems(destinations []catalog.Destination) []list.Item {
	items := make([]list.Item, 0, len(destinations))
	for _, d := range destinations {
		items = append(items, destinationItem{destination: d})
	}
	return items
}

type destinationDelegate struct{}

func (d destinationDelegate) Height() int                               { return 1 }
func (d destinationDelegate) Spacing() int                              { return 0 }
func (d destinationDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d destinationDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(destinationItem)
	if !ok {
		return
	}
	cursor := " "
	if index == m.Index() {
		cursor = ">"
	}
	line := fmt.Sprintf("%s %s", cursor, item.destination.Label)
	if index == m.Index() {
		line = getStyles().SelectedStyle.Render(line)
	}
	fmt.Fprint(w, line)
}

// syncDestinations rebuilds the selector when the catalog changes and keeps
// its cursor on the session's destination.
func (m *browserModel) syncDestinations() {
	if m.destCatalog != m.state.Catalog || len(m.destinations.Items()) == 0 {
		m.destinations.SetItems(destinationItems(m.state.Destinations()))
		m.destCatalog = m.state.Catalog
	}
	for i, item := range m.destinations.Items() {
		if d, ok := item.(destinationItem); ok && d.destination.Value == m.state.Booking.Destination {
			m.destinations.Select(i)
			return
		}
	}
	m.destinations.Select(0)
}

func (m browserModel) selectedDestination() string {
	if item, ok := m.destinations.SelectedItem().(destinationItem); ok {
		return item.destination.Value
	}
	return catalog.CustomDestination
}

func (m browserModel) focusBookingField(field bookingField) browserModel {
	m.bookingField = field
	m.search.Blur()
	m.nameInput.Blur()
	m.emailInput.Blur()
	switch field {
	case fieldName:
		m.nameInput.Focus()
	case fieldEmail:
		m.emailInput.Focus()
	}
	return m
}

func (m browserModel) handleBookingKey(key string) (browserModel, tea.Cmd, bool) {
	switch key {
	case "esc":
		next, cmd := m.apply(session.BookingClosed{})
		next = next.focusBookingField(fieldDestination)
		return next, cmd, true
	case "tab", "shift+tab":
		step := 1
		if key == "shift+tab" {
			step = 2
		}
		return m.focusBookingField((m.bookingField + bookingField(step)) % 3), nil, true
	}

	if m.bookingField == fieldDestination {
		switch key {
		case "up", "k":
			m.destinations.CursorUp()
		case "down", "j":
			m.destinations.CursorDown()
		case "enter":
			return m.focusBookingField(fieldName), nil, true
		default:
			return m, nil, true
		}
		next, cmd := m.apply(session.DestinationChosen{Value: m.selectedDestination()})
		return next, cmd, true
	}

	if key == "enter" {
		next, cmd := m.submitBooking()
		return next, cmd, true
	}
	return m, nil, false
}

func (m browserModel) submitBooking() (browserModel, tea.Cmd) {
	reference := session.NewReference()
	next, cmd := m.apply(session.BookingSubmitted{
		Name:      m.nameInput.Value(),
		Email:     m.emailInput.Value(),
		Reference: reference,
	})
	if next.state.Booking.Error != "" {
		m.logger.Debug("booking rejected", zap.String("reason", next.state.Booking.Error))
		return next, cmd
	}

	m.logger.Info("booking submitted",
		zap.String("reference", reference),
		zap.String("destination", next.state.Booking.Destination))
	next.nameInput.SetValue("")
	next.emailInput.SetValue("")
	return next.focusBookingField(fieldDestination), cmd
}
