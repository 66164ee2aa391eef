// Package tui provides the Bubble Tea front-end for snakefield. The engine
// runs on its own timer; the program polls it once per animation frame.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to advance animation by one frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(frameRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(frameRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
