package dnd

import "time"

// Pattern is a vibration pattern: alternating on/off durations.
type Pattern []time.Duration

var (
	// PulseGrab is emitted when a drag activates.
	PulseGrab = Pattern{10 * time.Millisecond}
	// PulseDrop is emitted on release.
	PulseDrop = Pattern{10 * time.Millisecond, 30 * time.Millisecond, 10 * time.Millisecond}
)

// Feedback receives the tactile and celebratory side effects of a gesture.
// Implementations are best-effort and must not block.
type Feedback interface {
	Pulse(p Pattern)
	Celebrate()
}

// NopFeedback discards every effect.
type NopFeedback struct{}

func (NopFeedback) Pulse(Pattern) {}
func (NopFeedback) Celebrate()    {}
