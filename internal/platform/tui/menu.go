package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tilt-arcade/internal/core"
	"github.com/vovakirdan/tilt-arcade/internal/registry"
	"github.com/vovakirdan/tilt-arcade/internal/storage"
)

// MenuItem is one registered game with its stored best score.
type MenuItem struct {
	GameID string
	Title  string
	Best   int
}

// MenuModel is the game picker. It ends its program once the player picks a
// game, opens the scoreboard or quits; the caller reads the outcome.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model

	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists every registered game. A nil store shows no best scores.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, len(games))
	for i, g := range games {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title}
		if store == nil {
			continue
		}
		if best, err := store.HighScore(g.ID); err == nil {
			items[i].Best = best
		}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		items:     items,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, len(m.items)-1)
	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		m.selected = &item
		return m, tea.Quit
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu centered in the terminal.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	rows := make([]string, 0, len(m.items))
	for i, item := range m.items {
		best := dimStyle.Render("no runs yet")
		if item.Best > 0 {
			best = fmt.Sprintf("best %d", item.Best)
		}
		line := fmt.Sprintf("%-18s %s", item.Title, best)
		if i == m.cursor {
			rows = append(rows, selectedStyle.Render("▸ "+line))
		} else {
			rows = append(rows, "  "+line)
		}
	}
	if len(rows) == 0 {
		rows = append(rows, dimStyle.Render("no games registered"))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("T I L T   A R C A D E"),
		"",
		panelStyle.Render(strings.Join(rows, "\n")),
		"",
		m.help.View(m.keyMapper.Menu),
	)
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText left-pads text to center it within width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
	}
	return result, nil
}
