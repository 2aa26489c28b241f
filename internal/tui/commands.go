package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tablero/internal/effects"
)

// edgeScrollInterval paces viewport auto-scroll while a drag rests near the
// board edge.
const edgeScrollInterval = 180 * time.Millisecond

type confettiTickMsg time.Time

type edgeScrollMsg time.Time

type gradientTickMsg time.Time

type holdTickMsg time.Time

func confettiTick() tea.Cmd {
	return tea.Tick(effects.ConfettiFrame, func(t time.Time) tea.Msg {
		return confettiTickMsg(t)
	})
}

func edgeScrollTick() tea.Cmd {
	return tea.Tick(edgeScrollInterval, func(t time.Time) tea.Msg {
		return edgeScrollMsg(t)
	})
}

// holdTick fires once the touch hold delay has passed.
func holdTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return holdTickMsg(t)
	})
}

// gradientTick re-checks the time of day once a minute.
func gradientTick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return gradientTickMsg(t)
	})
}

// celebrate starts the confetti burst. A tick chain is only started when none
// is running.
func (m Model) celebrate() tea.Cmd {
	running := m.confetti.Active()
	m.confetti.Resize(m.UiState.Width(), m.UiState.Height())
	m.confetti.Celebrate()
	if running {
		return nil
	}
	return confettiTick()
}
