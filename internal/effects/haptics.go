// Package effects turns drag feedback into terminal side effects: a bell for
// haptic pulses and a particle burst when a task is completed.
package effects

import (
	"io"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/tablero/internal/dnd"
)

// Haptics approximates vibration with the terminal bell. Terminals have no
// notion of duration, so any pattern rings once.
type Haptics struct {
	mu      sync.Mutex
	w       io.Writer
	enabled bool
	logger  *slog.Logger
}

// NewHaptics writes bells to w when enabled.
func NewHaptics(w io.Writer, enabled bool, logger *slog.Logger) *Haptics {
	if logger == nil {
		logger = slog.Default()
	}
	return &Haptics{w: w, enabled: enabled && w != nil, logger: logger}
}

// Pulse rings the bell. Failures are ignored.
func (h *Haptics) Pulse(p dnd.Pattern) {
	if !h.enabled || len(p) == 0 {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := io.WriteString(h.w, "\a"); err != nil {
		h.logger.Debug("haptic pulse failed", "error", err)
	}
}

// Celebrate only records the event; the burst itself is animated by the
// presentation layer from the drag result.
func (h *Haptics) Celebrate() {
	h.logger.Info("task completed")
}

var _ dnd.Feedback = (*Haptics)(nil)
