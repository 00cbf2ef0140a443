package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tower-time/internal/core"
	"github.com/vovakirdan/tower-time/internal/games/tower"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running the tower game.
type Model struct {
	game          *tower.Game
	screen        *core.Screen
	config        core.RuntimeConfig
	clock         clock
	keys          KeyMap
	help          help.Model
	logger        *log.Logger
	screenshotDir string
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *tower.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	keys := DefaultKeyMap()
	keys.SetMode(game.Mode())

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH-1), // Last row holds the help bar
		config:        cfg,
		keys:          keys,
		help:          h,
		logger:        logger,
		screenshotDir: defaultScreenshotDir(),
	}
}

// defaultScreenshotDir returns ~/.tower/screenshots, or a relative path if home is unknown.
func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".tower", "screenshots")
}

// Init sets the window title. The clock only starts with a session.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.game.Title())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.handleResize(msg)

	case timer.TickMsg:
		cmd = m.handleTick(msg)

	case timer.StartStopMsg:
		m.clock.sync(msg)
	}

	m.keys.SetMode(m.game.Mode())
	m.logStorageErr()
	return m, cmd
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Debug("quit", "mode", m.game.Mode())
		return tea.Batch(m.clock.stop(), tea.Quit)

	case core.ActionConfirm, core.ActionRestart:
		return m.startSession()

	default:
		// Keys outside the bindings are ignored; movement outside a session is filtered by the game
		m.game.HandleAction(action)
		return nil
	}
}

// startSession begins a new game and its clock.
func (m *Model) startSession() tea.Cmd {
	if m.game.Mode() == tower.ModePlaying {
		return nil
	}

	m.game.StartGame()
	m.logger.Info("session started",
		"record", m.game.HighScore()+1,
		"seconds", m.game.Config().Timer.GameTime,
	)
	return m.clock.start(m.game.Config().Timer.GameTime)
}

// handleTick advances the countdown by one second.
func (m *Model) handleTick(msg timer.TickMsg) tea.Cmd {
	if !m.clock.owns(msg.ID) {
		return nil // Stale tick from a stopped clock
	}

	next := m.clock.advance(msg)
	m.game.Tick()

	if m.game.Mode() != tower.ModePlaying {
		snap := m.game.Snapshot()
		m.logger.Info("session ended",
			"floor", snap.Floor+1,
			"coins", snap.Coins,
			"new_record", snap.NewRecord,
		)
		return m.clock.stop()
	}
	return next
}

// handleResize processes window resize events.
// A running session keeps its state; only the screen buffer changes.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
}

// logStorageErr reports record load/save failures. The game keeps running.
func (m *Model) logStorageErr() {
	if err := m.game.Err(); err != nil {
		m.logger.Warn("record storage failed", "error", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "dir", m.screenshotDir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game returns the game driven by this model.
func (m Model) Game() *tower.Game {
	return m.game
}

// Run starts the Bubble Tea program for the game.
func Run(game *tower.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
