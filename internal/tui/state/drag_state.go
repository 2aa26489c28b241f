package state

import (
	"github.com/thenoetrevino/tablero/internal/dnd"
)

// DragState tracks the pointer side of a drag: where it is, where it grabbed
// the dragged element, and which drop zone it is over. The board side of the
// gesture lives in the drag controller.
type DragState struct {
	Activator *dnd.Activator

	// Pointer is the last reported pointer position.
	Pointer dnd.Point
	// Grab is the pointer's offset inside the grabbed element, so the ghost
	// stays under the pointer where it was picked up.
	Grab dnd.Point

	// Over is the drop zone under the pointer; HasOver is false outside
	// every zone.
	Over    dnd.Target
	HasOver bool

	// EdgeScrolling is set while an auto-scroll tick is pending.
	EdgeScrolling bool
}

// NewDragState creates a DragState with the given activation thresholds.
func NewDragState(cfg dnd.ActivationConfig) *DragState {
	return &DragState{Activator: dnd.NewActivator(cfg)}
}

// SetOver records the resolved target under the pointer.
func (d *DragState) SetOver(t dnd.Target, ok bool) {
	d.Over, d.HasOver = t, ok
}

// Reset clears everything but the activator thresholds.
func (d *DragState) Reset() {
	d.Activator.Release()
	d.Grab = dnd.Point{}
	d.Over, d.HasOver = dnd.Target{}, false
	d.EdgeScrolling = false
}
