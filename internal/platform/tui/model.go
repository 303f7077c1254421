package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilt-arcade/internal/core"
	"github.com/vovakirdan/tilt-arcade/internal/registry"
	"github.com/vovakirdan/tilt-arcade/internal/storage"
)

// Model is the Bubble Tea model for running a single arcade game.
// It feeds one input frame per fixed tick into the game and records
// each finished run in the score store.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	logger     *log.Logger
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	loop       uint64 // tick chain owned by this model
	standalone bool   // Back quits instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards output.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if lg, ok := game.(registry.Loggable); ok {
		lg.SetLogger(logger)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		loop:       newLoopID(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.refreshBestScore()

	return tickCmd(m.loop, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Leaving mid-run is only allowed while paused
	if m.inputFrame.Has(core.ActionBack) && (!m.running() || m.gameState.Paused) {
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	}

	return m, nil
}

func (m Model) running() bool {
	return m.gameState.Phase == "playing"
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Only the title screen is rebuilt; a run in progress keeps its state
	if !m.running() && !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.refreshBestScore()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !m.scoreSaved:
		m.recordRun()
		m.scoreSaved = true
	case !m.gameState.GameOver:
		m.scoreSaved = false
	}

	m.inputFrame.Clear()

	return m, tickCmd(m.loop, m.config.TickRate)
}

// recordRun stores the finished run. Failures are logged and play continues.
func (m *Model) recordRun() {
	st := m.gameState
	m.logger.Info("run finished",
		"game", m.game.ID(),
		"score", st.Score,
		"duration", fmt.Sprintf("%.1fs", st.RunTime),
		"reason", st.EndReason,
	)
	if m.store == nil || st.Score <= 0 {
		return
	}

	_, err := m.store.SaveRun(storage.RunRecord{
		GameID:    m.game.ID(),
		Score:     st.Score,
		Duration:  st.RunTime,
		EndReason: st.EndReason,
	})
	if err != nil {
		m.logger.Warn("could not save run", "game", m.game.ID(), "error", err)
		return
	}
	m.refreshBestScore()
}

// refreshBestScore hands the stored best score to games that display it.
func (m *Model) refreshBestScore() {
	sa, ok := m.game.(registry.ScoreAware)
	if !ok || m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read high score", "game", m.game.ID(), "error", err)
		return
	}
	sa.SetBestScore(best)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for one game. Back and quit both exit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
