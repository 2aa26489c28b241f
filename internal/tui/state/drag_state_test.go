package state

import (
	"testing"
	"time"

	"charm.land/bubbles/v2/textinput"
	"github.com/thenoetrevino/tablero/internal/dnd"
	"github.com/thenoetrevino/tablero/internal/models"
)

func TestDragStateReset(t *testing.T) {
	d := NewDragState(dnd.ActivationConfig{MouseDistance: 2})
	d.Activator.Press(dnd.Point{X: 1, Y: 1}, dnd.TaskEntity(models.Task{ID: "1"}), dnd.PointerMouse, time.Now())
	d.Grab = dnd.Point{X: 3, Y: 2}
	d.SetOver(dnd.ColumnTarget("todo"), true)
	d.EdgeScrolling = true

	d.Reset()

	if d.Activator.Pending() {
		t.Error("activator still pending after Reset()")
	}
	if d.HasOver || d.EdgeScrolling || d.Grab != (dnd.Point{}) {
		t.Errorf("drag state not cleared: %+v", d)
	}
}

func TestSearchStateQueryTrims(t *testing.T) {
	s := NewSearchState(textinput.New())
	s.Input.SetValue("  docs ")

	if got := s.Query(); got != "docs" {
		t.Errorf("Query() = %q, want %q", got, "docs")
	}
	s.Clear()
	if s.Active() {
		t.Error("Active() after Clear() = true, want false")
	}
}
