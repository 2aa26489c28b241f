package dnd

import "time"

// PointerType selects the activation rule for a press.
type PointerType int

const (
	// PointerMouse activates after the pointer travels a minimum distance.
	PointerMouse PointerType = iota
	// PointerTouch activates after a hold delay, provided the pointer stays
	// within a tolerance; moving further first is a scroll, not a drag.
	PointerTouch
)

// ActivationConfig holds the gesture thresholds.
type ActivationConfig struct {
	MouseDistance  int
	TouchDelay     time.Duration
	TouchTolerance int
}

// DefaultActivationConfig returns the thresholds, in terminal cells, used
// when the config sets none.
func DefaultActivationConfig() ActivationConfig {
	return ActivationConfig{
		MouseDistance:  2,
		TouchDelay:     250 * time.Millisecond,
		TouchTolerance: 5,
	}
}

// Activator tracks a pressed pointer until it either becomes a drag, turns
// out to be a click (released early), or is abandoned as a scroll.
type Activator struct {
	cfg ActivationConfig

	pressed  bool
	pointer  PointerType
	origin   Point
	pressAt  time.Time
	entity   Entity
	canceled bool
}

// NewActivator returns an Activator with the given thresholds.
func NewActivator(cfg ActivationConfig) *Activator {
	return &Activator{cfg: cfg}
}

// Press records a pointer going down on entity e.
func (a *Activator) Press(p Point, e Entity, pointer PointerType, now time.Time) {
	*a = Activator{
		cfg:     a.cfg,
		pressed: true,
		pointer: pointer,
		origin:  p,
		pressAt: now,
		entity:  e,
	}
}

// Pending reports whether a press is being tracked.
func (a *Activator) Pending() bool {
	return a.pressed && !a.canceled
}

// Origin returns where the tracked press started.
func (a *Activator) Origin() Point {
	return a.origin
}

// Move feeds a pointer motion. It returns the entity to drag once the
// gesture activates.
func (a *Activator) Move(p Point, now time.Time) (Entity, bool) {
	if !a.Pending() {
		return Entity{}, false
	}
	dist := Chebyshev(a.origin, p)

	switch a.pointer {
	case PointerTouch:
		if dist > a.cfg.TouchTolerance {
			a.canceled = true
			return Entity{}, false
		}
		return a.Tick(now)
	default:
		if dist >= a.cfg.MouseDistance {
			return a.activate()
		}
	}
	return Entity{}, false
}

// Tick checks the hold delay for touch presses.
func (a *Activator) Tick(now time.Time) (Entity, bool) {
	if !a.Pending() || a.pointer != PointerTouch {
		return Entity{}, false
	}
	if now.Sub(a.pressAt) >= a.cfg.TouchDelay {
		return a.activate()
	}
	return Entity{}, false
}

// Release ends tracking. It reports true when the press never activated and
// was not abandoned, i.e. it was a click.
func (a *Activator) Release() bool {
	click := a.Pending()
	*a = Activator{cfg: a.cfg}
	return click
}

func (a *Activator) activate() (Entity, bool) {
	e := a.entity
	*a = Activator{cfg: a.cfg}
	return e, true
}
