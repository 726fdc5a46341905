package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"travel/internal/domain"
)

func TestMessage(t *testing.T) {
	assert.Equal(t, "Please enter a valid search query.", Message(domain.OutcomeEmpty))
	assert.Contains(t, Message(domain.OutcomeNoMatch), "No recommendations found")
	assert.Contains(t, Message(domain.OutcomeNoMatch), `"beach", "temple", or "country"`)
	assert.Contains(t, Message(domain.OutcomeDataNotLoaded), "Data not loaded")
	assert.Empty(t, Message(domain.OutcomeResults))
}

func TestCountLabel(t *testing.T) {
	assert.Equal(t, "0 results", CountLabel(0))
	assert.Equal(t, "2 results", CountLabel(2))
}

func TestHTMLCard_Escapes(t *testing.T) {
	card := HTMLCard(domain.ResultRecord{
		Name:        `Tom & Jerry's <Beach>`,
		ImageURL:    `x.jpg" onload="alert(1)`,
		Description: "<script>",
	})

	assert.Contains(t, card, "<h3>Tom &amp; Jerry&#39;s &lt;Beach&gt;</h3>")
	assert.Contains(t, card, `src="x.jpg&#34; onload=&#34;alert(1)"`)
	assert.Contains(t, card, "<p>&lt;script&gt;</p>")
	assert.NotContains(t, card, "<script>")
	assert.Contains(t, card, `<button class="visit" type="button">Visit</button>`)
}

func TestHTMLCards(t *testing.T) {
	out := HTMLCards([]domain.ResultRecord{{Name: "A"}, {Name: "B"}})

	assert.Equal(t, 2, strings.Count(out, `<div class="card">`))
	assert.Less(t, strings.Index(out, "<h3>A</h3>"), strings.Index(out, "<h3>B</h3>"))
	assert.Empty(t, HTMLCards(nil))
}

func TestTextCards(t *testing.T) {
	out := TextCards([]domain.ResultRecord{
		{Name: "Tokyo", Description: "Capital", ImageURL: "tokyo.jpg"},
		{Name: "Osaka"},
	}, 40)

	assert.Contains(t, out, "Tokyo")
	assert.Contains(t, out, "Capital")
	assert.Contains(t, out, "tokyo.jpg")
	assert.Contains(t, out, "Osaka")
	assert.Less(t, strings.Index(out, "Tokyo"), strings.Index(out, "Osaka"))
}
