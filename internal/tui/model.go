package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"travel/internal/domain"
	"travel/internal/render"
)

// RecommenderPort is the TUI-facing subset of the recommender service.
type RecommenderPort interface {
	Query(raw string) domain.Outcome
}

// Model is the Bubble Tea model for the TUI application.
type Model struct {
	service   RecommenderPort
	input     textinput.Model
	viewport  viewport.Model
	results   []domain.ResultRecord
	header    string
	status    string
	cardWidth int
	ready     bool
}

// New creates a new TUI model instance. loadErr, when set, is shown once in the status line.
func New(service RecommenderPort, header string, loadErr error, cardWidth int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = `Try "beach", "temple", "country" or a country name`
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	status := "Loaded. Type to search."
	if loadErr != nil {
		status = "Could not load recommendations: " + loadErr.Error()
	}
	return Model{service: service, input: ti, viewport: vp, header: header, status: status, cardWidth: cardWidth}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header + count, status, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderResults())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			m.search(m.input.Value())
			return m, nil
		case "esc", "ctrl+l":
			m.clear()
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) search(raw string) {
	out := m.service.Query(raw)
	m.results = nil
	if out.Kind == domain.OutcomeResults {
		m.results = out.Records
		m.status = fmt.Sprintf("Results for %q", strings.TrimSpace(raw))
	} else {
		m.status = render.Message(out.Kind)
	}
	m.viewport.SetContent(m.renderResults())
	m.viewport.GotoTop()
}

func (m *Model) clear() {
	m.input.SetValue("")
	m.results = nil
	m.status = "Cleared."
	m.viewport.SetContent(m.renderResults())
	m.viewport.GotoTop()
}

// View renders the TUI layout and current results.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Travel Recommendations")
	if m.header != "" {
		header += "  " + lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.header)
	}
	count := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(render.CountLabel(len(m.results)))
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	results := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + count + "\n" + results + "\n" + input + "\n" + status
}

func (m Model) renderResults() string {
	if len(m.results) == 0 {
		return "No results yet."
	}
	return render.TextCards(m.results, m.cardWidth)
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)
