package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cyclist-collector/internal/core"
	"github.com/vovakirdan/cyclist-collector/internal/storage"
)

// Game is the interface the TUI drives.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Summary() core.RunSummary
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game        Game
	screen      *core.Screen
	store       *storage.Store
	history     *HistoryView
	keys        *KeyMapper
	help        help.Model
	logger      *log.Logger
	config      core.RuntimeConfig
	inputFrame  core.InputFrame
	gameState   core.GameState
	quitting    bool
	showHistory bool
	runRecorded bool // Whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:      store,
		history:    NewHistoryView(store, cfg.ScreenW, cfg.ScreenH),
		keys:       NewKeyMapper(),
		help:       h,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// gameHeight leaves one row for the help footer.
func gameHeight(screenH int) int {
	return max(1, screenH-1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()

	if !m.gameState.AcceptText {
		switch {
		case key.Matches(msg, keys.Screenshot):
			m.saveScreenshot()
			return m, nil
		case m.gameState.GameOver && key.Matches(msg, keys.History):
			m.showHistory = !m.showHistory
			return m, nil
		case m.showHistory && !key.Matches(msg, keys.Quit) && !key.Matches(msg, keys.Restart):
			return m, m.history.Update(msg)
		}
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame, m.gameState.AcceptText) {
		m.quitting = true
		m.logger.Info("session ended")
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The game scales its world
// to the screen, so no reset is needed.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.history.SetSize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.recordRun()
	} else {
		m.runRecorded = false
		m.showHistory = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished run once per game over.
func (m *Model) recordRun() {
	if m.runRecorded {
		return
	}
	m.runRecorded = true

	if m.store == nil {
		return
	}
	rec, err := m.store.RecordRun(m.game.Summary())
	if err != nil {
		m.logger.Error("failed to record run", "error", err)
		return
	}
	m.logger.Debug("run recorded", "id", rec.ID, "score", rec.Score)

	if err := m.history.Refresh(); err != nil {
		m.logger.Error("failed to load history", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".cyclist", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showHistory {
		return m.history.View() + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
