package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Replay browser layout constants
const (
	maxReplays = 100 // Max replays to load
	allGames   = "all"
)

// ReplaysKeyMap defines the key bindings for the replay browser.
type ReplaysKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Watch    key.Binding
	Delete   key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplaysKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Watch, k.Delete, k.NextGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ReplaysKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Watch, k.Delete},
		{k.NextGame, k.PrevGame, k.Back, k.Quit},
	}
}

// DefaultReplaysKeyMap returns default key bindings.
func DefaultReplaysKeyMap() ReplaysKeyMap {
	return ReplaysKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Watch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "watch"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next variant"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev variant"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReplaysModel is the Bubble Tea model for browsing stored replays.
type ReplaysModel struct {
	filters  []registry.GameInfo // "all" first, then every variant
	cursor   int                 // Selected filter
	store    *storage.Store
	tickRate int
	entries  []storage.ReplayEntry
	err      error
	table    table.Model
	help     help.Model
	keys     ReplaysKeyMap
	width    int
	height   int
	quitting bool
	back     bool
	selected int64 // Replay ID to watch, 0 if none
}

// NewReplaysModel creates a replay browser. tickRate converts step counts
// to durations.
func NewReplaysModel(store *storage.Store, tickRate, width, height int) ReplaysModel {
	filters := append([]registry.GameInfo{{ID: allGames, Title: "All variants"}}, registry.List()...)

	m := ReplaysModel{
		filters:  filters,
		store:    store,
		tickRate: max(tickRate, 1),
		help:     help.New(),
		keys:     DefaultReplaysKeyMap(),
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized to the window.
func (m *ReplaysModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Variant", Width: 18},
		{Title: "Steps", Width: 8},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load fetches replays for the current filter.
func (m *ReplaysModel) load() {
	m.entries, m.err = nil, nil
	if m.store != nil {
		gameID := m.filters[m.cursor].ID
		if gameID == allGames {
			gameID = ""
		}
		m.entries, m.err = m.store.ListReplays(gameID, maxReplays)
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded replays.
func (m *ReplaysModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		d := time.Duration(e.Steps) * time.Second / time.Duration(m.tickRate) //#nosec G115 -- step counts fit
		rows[i] = table.Row{
			fmt.Sprintf("%d", e.ID),
			e.GameID,
			fmt.Sprintf("%d", e.Steps),
			d.Truncate(time.Second).String(),
			e.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the replay browser.
func (m ReplaysModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the replay browser.
func (m ReplaysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Watch):
			if e, ok := m.current(); ok {
				m.selected = e.ID
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if e, ok := m.current(); ok && m.store != nil {
				if err := m.store.DeleteReplay(e.ID); err != nil {
					m.err = err
					return m, nil
				}
				m.load()
			}
			return m, nil

		case key.Matches(msg, m.keys.NextGame):
			m.cursor = (m.cursor + 1) % len(m.filters)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			m.cursor = (m.cursor - 1 + len(m.filters)) % len(m.filters)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ReplaysModel) current() (storage.ReplayEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return storage.ReplayEntry{}, false
	}
	return m.entries[i], true
}

// View renders the replay browser.
func (m ReplaysModel) View() string {
	if m.quitting || m.back || m.selected != 0 {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	title := fmt.Sprintf("REPLAYS - %s", m.filters[m.cursor].Title)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table, an error, or an empty message.
func (m ReplaysModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.err != nil:
		return emptyStyle.Render("Cannot read replays:\n" + m.err.Error())
	case len(m.entries) == 0:
		return emptyStyle.Render("No replays recorded yet.\nPlay a game and quit to save one!")
	}
	return m.table.View()
}

// ReplaysResult holds the outcome of the replay browser.
type ReplaysResult struct {
	ReplayID int64 // Replay to watch, 0 if none
	Back     bool
	Quit     bool
}

// Result reports what the user picked.
func (m ReplaysModel) Result() ReplaysResult {
	return ReplaysResult{ReplayID: m.selected, Back: m.back, Quit: m.quitting}
}

// RunReplays runs the replay browser screen.
func RunReplays(store *storage.Store, tickRate, width, height int) (ReplaysResult, error) {
	model := NewReplaysModel(store, tickRate, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return ReplaysResult{}, err
	}

	m, ok := finalModel.(ReplaysModel)
	if !ok {
		return ReplaysResult{Quit: true}, nil
	}
	return m.Result(), nil
}
