// Package render formats resolved records and outcomes for display.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"travel/internal/domain"
)

const (
	msgNotLoaded = "Data not loaded yet. Restart to reload the recommendations."
	msgEmpty     = "Please enter a valid search query."
	msgNoMatch   = "No recommendations found for your search."
	msgHint      = `Try "beach", "temple", or "country" (case-insensitive).`
)

// Message returns the user-facing text for a non-result outcome.
func Message(kind domain.OutcomeKind) string {
	switch kind {
	case domain.OutcomeDataNotLoaded:
		return msgNotLoaded
	case domain.OutcomeEmpty:
		return msgEmpty
	case domain.OutcomeNoMatch:
		return msgNoMatch + " " + msgHint
	default:
		return ""
	}
}

// CountLabel formats a result count.
func CountLabel(n int) string {
	return fmt.Sprintf("%d results", n)
}

// HTMLCard renders one record as an HTML card. All fields are escaped.
func HTMLCard(r domain.ResultRecord) string {
	name := html.EscapeString(r.Name)
	desc := html.EscapeString(r.Description)
	img := html.EscapeString(r.ImageURL)

	var b strings.Builder
	b.WriteString(`<div class="card">` + "\n")
	fmt.Fprintf(&b, `  <img src="%s" alt="%s" onerror="this.style.display='none';" />`+"\n", img, name)
	b.WriteString(`  <div class="card-content">` + "\n")
	fmt.Fprintf(&b, "    <h3>%s</h3>\n", name)
	fmt.Fprintf(&b, "    <p>%s</p>\n", desc)
	b.WriteString(`    <div class="card-actions">` + "\n")
	b.WriteString(`      <button class="visit" type="button">Visit</button>` + "\n")
	b.WriteString("      <span></span>\n")
	b.WriteString("    </div>\n  </div>\n</div>\n")
	return b.String()
}

// HTMLCards renders every record and joins the cards.
func HTMLCards(rs []domain.ResultRecord) string {
	var b strings.Builder
	for _, r := range rs {
		b.WriteString(HTMLCard(r))
	}
	return b.String()
}

var (
	cardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	imageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// TextCard renders one record as a bordered terminal card. width <= 0 leaves it unwrapped.
func TextCard(r domain.ResultRecord, width int) string {
	body := titleStyle.Render(r.Name)
	if r.Description != "" {
		body += "\n" + r.Description
	}
	if r.ImageURL != "" {
		body += "\n" + imageStyle.Render(r.ImageURL)
	}
	style := cardStyle
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(body)
}

// TextCards renders every record as a text card, one per block.
func TextCards(rs []domain.ResultRecord, width int) string {
	cards := make([]string, len(rs))
	for i, r := range rs {
		cards[i] = TextCard(r, width)
	}
	return strings.Join(cards, "\n")
}
