package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilt-arcade/internal/registry"
	"github.com/vovakirdan/tilt-arcade/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show game list sidebar
	sidebarWidth       = 22  // Width of game list sidebar
	maxScores          = 100 // Max runs to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Recent   key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Recent, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Recent, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev game")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next game")),
		NextGame: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next game")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("S-tab", "prev game")),
		Recent:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "best/recent")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	games       []registry.GameInfo
	gameCursor  int
	store       *storage.Store
	scores      []storage.ScoreEntry
	recent      bool // Show latest runs instead of best runs
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		games:       registry.List(),
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.reload()

	return m
}

// createTable creates a new table sized for the current layout.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Time", Width: 7},
		{Title: "End", Width: 10},
		{Title: "Date", Width: 12},
	}

	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}

	// Give spare width to the end reason column
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if extra := tableWidth - used; extra > 0 {
		columns[3].Width += min(extra, 8)
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		BorderBottom(true).
		Bold(true)
	st.Selected = st.Selected.Foreground(accentColor).Background(selectBg).Bold(false)
	t.SetStyles(st)

	return t
}

// reload fetches runs for the selected game.
func (m *ScoreboardModel) reload() {
	m.scores = nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.gameCursor].ID
		var (
			scores []storage.ScoreEntry
			err    error
		)
		if m.recent {
			scores, err = m.store.RecentRuns(id, maxScores)
		} else {
			scores, err = m.store.TopScores(id, maxScores)
		}
		if err == nil {
			m.scores = scores
		}
	}
	m.table.SetRows(scoreRows(m.scores))
	m.table.GotoTop()
}

// scoreRows formats stored runs as table rows.
func scoreRows(scores []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			formatDuration(s.Duration),
			endReasonLabel(s.EndReason),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// formatDuration renders seconds as m:ss.
func formatDuration(seconds float64) string {
	if seconds <= 0 {
		return "-"
	}
	total := int(seconds + 0.5)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func endReasonLabel(reason string) string {
	switch reason {
	case "lives_exhausted":
		return "no lives"
	case "energy_drained":
		return "drained"
	case "fell_out":
		return "fell"
	case "":
		return "-"
	default:
		return reason
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame), key.Matches(msg, m.keys.Right):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame), key.Matches(msg, m.keys.Left):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.Recent):
			m.recent = !m.recent
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.table.SetRows(scoreRows(m.scores))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard: game picker (sidebar or tabs), runs table and help.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	heading := "HIGH SCORES"
	if m.recent {
		heading = "RECENT RUNS"
	}
	if len(m.games) > 0 {
		heading += " - " + m.games[m.gameCursor].Title
	}

	runs := panelStyle.Render(m.renderTableContent())
	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", runs)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), "", runs)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(centerText(heading, m.width)),
		"",
		body,
		dimStyle.Render(m.help.View(m.keys)),
	)
}

// renderSidebar lists games in a bordered column.
func (m ScoreboardModel) renderSidebar() string {
	lines := []string{"Games", strings.Repeat("-", sidebarWidth-4)}
	for i, g := range m.games {
		name := truncate(g.Title, sidebarWidth-6)
		if i == m.gameCursor {
			lines = append(lines, selectedStyle.Render("> "+name))
		} else {
			lines = append(lines, "  "+name)
		}
	}
	return panelStyle.Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

// renderTabs shows games as a tab row, or just the current one when the
// row would not fit.
func (m ScoreboardModel) renderTabs() string {
	if len(m.games) == 0 {
		return ""
	}

	tabs := make([]string, len(m.games))
	plain := 0
	for i, g := range m.games {
		name := truncate(g.Title, 12)
		plain += len(name) + 3
		if i == m.gameCursor {
			tabs[i] = activeTab.Render(name)
		} else {
			tabs[i] = dimStyle.Render(" " + name + " ")
		}
	}

	if plain > m.width-4 {
		return centerText(fmt.Sprintf("< %s >", m.games[m.gameCursor].Title), m.width)
	}
	return centerText(strings.Join(tabs, " "), m.width)
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		return emptyStyle.Render("No runs recorded yet.\nTap to play and set a high score!")
	}
	return m.table.View()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
