// Package tui provides the Bubble Tea front end for the runner: the fixed-rate
// tick loop, key bindings, the quiz dialog, menus, the scoreboard and the Wish
// SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Gen identifies the game that
// scheduled it; a game ignores ticks from any other.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

// tickGens hands out a tick generation per game model. SSH sessions create
// models from many goroutines.
var tickGens atomic.Uint64

func nextTickGen() uint64 {
	return tickGens.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 50
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
