package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

const defaultWrapWidth = 72

// WriteList prints one line per card, or the placeholder text.
func WriteList(w io.Writer, view ListView) error {
	if view.Empty() {
		_, err := fmt.Fprintln(w, view.Placeholder.Text)
		return err
	}
	for _, card := range view.Cards {
		if _, err := fmt.Fprintln(w, CardLine(card)); err != nil {
			return err
		}
	}
	return nil
}

// CardLine is the single-line form of a card shared by the CLI and the TUI.
func CardLine(card Card) string {
	return fmt.Sprintf("[%d] %s • %s • %s", card.ID, card.Title, card.Badge, card.Price)
}

// WriteDetail prints the detail view wrapped at width columns (0 for the default).
func WriteDetail(w io.Writer, view DetailView, width int) error {
	_, err := io.WriteString(w, DetailText(view, width))
	return err
}

func DetailText(view DetailView, width int) string {
	if width <= 0 {
		width = defaultWrapWidth
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", view.Title)
	fmt.Fprintf(&b, "Price:    %s\n", view.Price)
	fmt.Fprintf(&b, "Duration: %s\n", view.Days)
	fmt.Fprintf(&b, "Region:   %s\n", view.Region)
	fmt.Fprintf(&b, "Tags:     %s\n", strings.Join(view.Tags, ", "))
	fmt.Fprintf(&b, "Image:    %s\n", view.Image)
	b.WriteString("\n")
	b.WriteString(wordwrap.String(view.Description, width))
	b.WriteString("\n")
	return b.String()
}

// Wrap word-wraps text for fixed-width surfaces.
func Wrap(text string, width int) string {
	if width <= 0 {
		width = defaultWrapWidth
	}
	return wordwrap.String(text, width)
}
