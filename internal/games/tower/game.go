// Package tower implements Tower of Time: climb as high as possible before the
// clock runs out, earning more coins the higher the floor.
package tower

import (
	"fmt"

	"github.com/vovakirdan/tower-time/internal/config"
	"github.com/vovakirdan/tower-time/internal/core"
)

// Mode is the lifecycle state of the game.
type Mode int

const (
	ModeStart   Mode = iota // Waiting for the first start
	ModePlaying             // Clock running, input accepted
	ModeEnded               // Time ran out, waiting for restart
)

// String returns a lowercase name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModePlaying:
		return "playing"
	case ModeEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Game implements the tower climbing logic.
// All methods are total: no input can put it into an invalid state.
type Game struct {
	cfg   config.TowerConfig
	slots SlotStore

	mode     Mode
	floor    int // 0 = ground floor
	timeLeft int // Seconds
	coins    int
	x        int // Horizontal position in percent

	highScore     int
	recordAtStart int // High score when the current session began

	err error // Last storage error, cleared by Err
}

// New creates a game and loads the high score from slots.
// A nil slots disables persistence. An invalid cfg is replaced by the defaults.
func New(cfg config.TowerConfig, slots SlotStore) *Game {
	g := &Game{
		cfg:   cfg,
		slots: slots,
		mode:  ModeStart,
	}

	if err := cfg.Validate(); err != nil {
		g.cfg = config.DefaultTowerConfig()
		g.err = err
	}

	g.timeLeft = g.cfg.Timer.GameTime
	g.x = g.cfg.Player.StartX
	g.highScore = g.loadRecord()
	g.recordAtStart = g.highScore
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "tower"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Tower of Time"
}

// loadRecord reads the persisted high score. Failures read as 0.
func (g *Game) loadRecord() int {
	if g.slots == nil {
		return 0
	}
	value, ok, err := g.slots.GetSlot(g.cfg.Storage.RecordKey)
	if err != nil {
		g.err = fmt.Errorf("tower: cannot load record: %w", err)
		return 0
	}
	if !ok {
		return 0
	}
	return ParseRecord(value)
}

// StartGame begins a new session, discarding whatever the previous one held.
func (g *Game) StartGame() {
	g.mode = ModePlaying
	g.floor = 0
	g.timeLeft = g.cfg.Timer.GameTime
	g.coins = 0
	g.x = g.cfg.Player.StartX
	g.recordAtStart = g.highScore
}

// Tick advances the countdown by one second.
// The tick that takes the clock to zero ends the game.
func (g *Game) Tick() {
	if g.mode != ModePlaying {
		return
	}
	if g.timeLeft <= 1 {
		g.timeLeft = 0
		g.EndGame()
		return
	}
	g.timeLeft--
}

// HandleAction applies a movement action. Ignored unless playing.
func (g *Game) HandleAction(a core.Action) {
	if g.mode != ModePlaying || !a.IsMovement() {
		return
	}

	switch a {
	case core.ActionLeft:
		g.x = core.Max(g.cfg.Player.MinX, g.x-g.cfg.Player.Step)
	case core.ActionRight:
		g.x = core.Min(g.cfg.Player.MaxX, g.x+g.cfg.Player.Step)
	case core.ActionUp, core.ActionJump:
		if g.floor < g.cfg.Tower.Height-1 {
			g.floor++
			g.coins += g.floor * g.cfg.Rewards.CoinsPerFloor
		}
	case core.ActionDown:
		if g.floor > 0 {
			g.floor--
		}
	}
}

// EndGame finishes the session and raises the high score if it was beaten.
// Only a playing session can end.
func (g *Game) EndGame() {
	if g.mode != ModePlaying {
		return
	}
	g.mode = ModeEnded

	if g.floor > g.highScore {
		g.highScore = g.floor
		if g.slots != nil {
			if err := g.slots.SetSlot(g.cfg.Storage.RecordKey, FormatRecord(g.floor)); err != nil {
				g.err = fmt.Errorf("tower: cannot save record: %w", err)
			}
		}
	}
}

// Mode returns the current lifecycle state.
func (g *Game) Mode() Mode {
	return g.mode
}

// Floor returns the zero-based current floor.
func (g *Game) Floor() int {
	return g.floor
}

// HighScore returns the best floor ever reached (zero-based).
func (g *Game) HighScore() int {
	return g.highScore
}

// NewRecord reports whether the session matched or beat the record it started with.
func (g *Game) NewRecord() bool {
	return g.floor >= g.recordAtStart
}

// Config returns the settings the game runs with.
func (g *Game) Config() config.TowerConfig {
	return g.cfg
}

// Err returns the last storage error and clears it.
func (g *Game) Err() error {
	err := g.err
	g.err = nil
	return err
}
