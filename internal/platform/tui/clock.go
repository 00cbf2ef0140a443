// Package tui provides the Bubble Tea integration for the tower game.
// It handles the terminal UI loop, input mapping, and the countdown clock.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// clockInterval is the length of one game tick.
const clockInterval = time.Second

// clock owns the countdown timer of a single playing session.
// A fresh timer (with a fresh ID) is created per session, so ticks still in
// flight from an earlier session never match the current one.
type clock struct {
	timer   timer.Model
	running bool
}

// start replaces the clock with a new timer of the given length in seconds
// and returns the command that delivers its first tick.
func (c *clock) start(seconds int) tea.Cmd {
	c.timer = timer.NewWithInterval(time.Duration(seconds)*clockInterval, clockInterval)
	c.running = true
	return c.timer.Init()
}

// stop cancels the clock. Further ticks from it are dropped.
func (c *clock) stop() tea.Cmd {
	if !c.running {
		return nil
	}
	c.running = false
	return c.timer.Stop()
}

// owns reports whether a timer message belongs to the running clock.
func (c *clock) owns(id int) bool {
	return c.running && id == c.timer.ID()
}

// advance feeds a tick to the timer and returns the command for the next one.
func (c *clock) advance(msg timer.TickMsg) tea.Cmd {
	var cmd tea.Cmd
	c.timer, cmd = c.timer.Update(msg)
	return cmd
}

// sync applies a start/stop message to the timer's own running flag.
// The tick it would schedule is dropped; ticks only come from advance.
func (c *clock) sync(msg timer.StartStopMsg) {
	if msg.ID != c.timer.ID() {
		return
	}
	c.timer, _ = c.timer.Update(msg)
}
