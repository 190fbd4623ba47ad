package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"go.seanlatimer.dev/tripdeck/internal/render"
	"go.seanlatimer.dev/tripdeck/internal/session"
)

const defaultListHeight = 10

func (m browserModel) View() tea.View {
	content := m.Content()
	if m.width > 0 && m.height > 0 {
		content = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, content)
	}

	v := tea.NewView("")
	v.SetContent(content)
	v.AltScreen = m.useAltScreen
	v.WindowTitle = "tripdeck"
	return v
}

func (m browserModel) contentWidth() int {
	contentWidth := m.width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}
	if contentWidth > 80 {
		contentWidth = 80
	}
	return contentWidth
}

func (m browserModel) listHeight() int {
	if m.height <= 0 {
		return defaultListHeight
	}
	h := m.height - 16
	if h < 3 {
		h = 3
	}
	return h
}

// Content renders the current screen without the outer placement.
func (m browserModel) Content() string {
	switch m.state.Screen {
	case session.ScreenDetail:
		return m.detailContent()
	case session.ScreenBooking:
		return m.bookingContent()
	default:
		return m.browseContent()
	}
}

func (m browserModel) browseContent() string {
	width := m.contentWidth()
	fixedWidth := lipgloss.NewStyle().Width(width)
	var lines []string

	lines = append(lines, fixedWidth.Render(getStyles().SelectedStyle.Render("Tripdeck · Travel Deals")))
	lines = append(lines, "")

	// Search input
	var searchLine string
	if m.search.Focused() {
		searchLine = getStyles().SelectedStyle.Render("/ ") + getStyles().SearchInputStyle.Render(m.search.View())
	} else if m.search.Value() != "" {
		searchLine = getStyles().SubtleStyle.Render("/ ") + getStyles().SearchInputStyle.Render(m.search.Value())
	} else {
		searchLine = getStyles().SubtleStyle.Render("/ Press / to search")
	}
	lines = append(lines, fixedWidth.Render(searchLine))
	lines = append(lines, m.suggestionLines(width)...)

	facets := fmt.Sprintf("Region: %s (r) • Budget: %s (b)", m.state.Filter.Region, m.state.Filter.Budget)
	lines = append(lines, fixedWidth.Render(getStyles().SubtleStyle.Render(facets)))
	lines = append(lines, "")

	lines = append(lines, getStyles().HeadingStyle.Render(m.state.Heading()))
	lines = append(lines, m.cardLines(width)...)
	lines = append(lines, "")

	if m.state.Selected != nil {
		lines = append(lines, truncateToWidth("Selected: "+m.state.Selected.Title, width))
	}

	var footer string
	if m.search.Focused() {
		footer = "Type to search • ↑↓ suggestions • Enter pick • Esc done"
	} else {
		footer = "↑↓ navigate • Enter details • / search • R region • B budget • Tab book • Q quit"
	}
	lines = append(lines, fixedWidth.Render(getStyles().FooterStyle.Render(footer)))

	return boxed(lines, width)
}

func (m browserModel) suggestionLines(width int) []string {
	view := m.state.SuggestionView()
	if !view.Visible {
		return nil
	}
	if view.NoMatch {
		return []string{"  " + getStyles().PlaceholderStyle.Render(render.NoMatchText)}
	}
	lines := make([]string, 0, len(view.Items))
	for i, title := range view.Items {
		line := "  " + title
		if i == m.suggestionCursor {
			line = getStyles().SelectedStyle.Render("> " + title)
		}
		lines = append(lines, truncateToWidth(line, width))
	}
	return lines
}

func (m browserModel) cardLines(width int) []string {
	view := m.state.ListView()
	if view.Empty() {
		return []string{getStyles().PlaceholderStyle.Render(view.Placeholder.Text)}
	}

	height := m.listHeight()
	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := start + height
	if end > len(view.Cards) {
		end = len(view.Cards)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		card := view.Cards[i]
		cursorMark := " "
		if i == m.cursor {
			cursorMark = ">"
		}
		line := fmt.Sprintf("%s %s %s %s", cursorMark, card.Title,
			getStyles().BadgeStyle.Render(" "+card.Badge+" "),
			getStyles().PriceStyle.Render(card.Price))
		if i == m.cursor {
			line = getStyles().SelectedStyle.Render(line)
		}
		lines = append(lines, truncateToWidth(line, width))
	}
	if len(view.Cards) > height {
		lines = append(lines, getStyles().SubtleStyle.Render(fmt.Sprintf("%d of %d", m.cursor+1, len(view.Cards))))
	}
	return lines
}

func (m browserModel) detailContent() string {
	width := m.contentWidth()
	fixedWidth := lipgloss.NewStyle().Width(width)

	detail, ok := m.state.DetailView()
	if !ok {
		return boxed([]string{getStyles().PlaceholderStyle.Render(render.NoResultsText)}, width)
	}

	var lines []string
	lines = append(lines, fixedWidth.Render(getStyles().SelectedStyle.Render(detail.Title)))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Price:    %s", getStyles().PriceStyle.Render(detail.Price)))
	lines = append(lines, fmt.Sprintf("Duration: %s", detail.Days))
	lines = append(lines, fmt.Sprintf("Region:   %s", detail.Region))
	if len(detail.Tags) > 0 {
		tags := make([]string, 0, len(detail.Tags))
		for _, tag := range detail.Tags {
			tags = append(tags, getStyles().BadgeStyle.Render(" "+tag+" "))
		}
		lines = append(lines, "Tags:     "+strings.Join(tags, " "))
	}
	lines = append(lines, truncateToWidth("Image:    "+detail.Image, width))
	lines = append(lines, "")
	lines = append(lines, render.Wrap(detail.Description, width))
	lines = append(lines, "")
	lines = append(lines, fixedWidth.Render(getStyles().FooterStyle.Render("Enter book this trip • Esc close")))

	return boxed(lines, width)
}

func (m browserModel) bookingContent() string {
	width := m.contentWidth()
	fixedWidth := lipgloss.NewStyle().Width(width)
	var lines []string

	lines = append(lines, fixedWidth.Render(getStyles().SelectedStyle.Render("Book a Trip")))
	lines = append(lines, "")

	lines = append(lines, m.fieldLabel(fieldDestination, "Destination"))
	lines = append(lines, m.destinations.View())
	lines = append(lines, "")
	lines = append(lines, m.fieldLabel(fieldName, "Name")+"  "+m.nameInput.View())
	lines = append(lines, m.fieldLabel(fieldEmail, "Email")+" "+m.emailInput.View())
	lines = append(lines, "")

	booking := m.state.Booking
	if booking.Error != "" {
		lines = append(lines, fixedWidth.Render(getStyles().ErrorStyle.Render(booking.Error)))
	}
	if booking.Confirmation != "" {
		lines = append(lines, fixedWidth.Render(getStyles().SuccessStyle.Render(booking.Confirmation)))
		if m.state.ResetPending {
			note := fmt.Sprintf("Refreshing in %d seconds...", int(session.ResetDelay.Seconds()))
			lines = append(lines, fixedWidth.Render(getStyles().SubtleStyle.Render(note)))
		}
	}

	footer := "Tab next field • ↑↓ destination • Enter submit • Esc back"
	lines = append(lines, fixedWidth.Render(getStyles().FooterStyle.Render(footer)))

	return boxed(lines, width)
}

func (m browserModel) fieldLabel(field bookingField, label string) string {
	if m.bookingField == field {
		return getStyles().SelectedStyle.Render("> " + label + ":")
	}
	return getStyles().SubtleStyle.Render("  " + label + ":")
}

func boxed(lines []string, width int) string {
	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(getStyles().Subtle).
		Width(width + 4).
		Padding(0, 1)
	return containerStyle.Render(strings.Join(lines, "\n"))
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
