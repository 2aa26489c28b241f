package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Two columns side by side, each with two cards, plus a dock row at the
// bottom overlapping the columns.
func testResolver() *Resolver {
	r := NewResolver()
	r.Add(Zone{Target: ColumnTarget("todo"), Rect: Rect{X: 0, Y: 0, W: 20, H: 30}})
	r.Add(Zone{Target: TaskTarget("a", "todo"), Rect: Rect{X: 1, Y: 2, W: 18, H: 4}})
	r.Add(Zone{Target: TaskTarget("b", "todo"), Rect: Rect{X: 1, Y: 6, W: 18, H: 4}})
	r.Add(Zone{Target: ColumnTarget("done"), Rect: Rect{X: 20, Y: 0, W: 20, H: 30}})
	r.Add(Zone{Target: TaskTarget("c", "done"), Rect: Rect{X: 21, Y: 2, W: 18, H: 4}})
	r.Add(Zone{Target: DockTarget("todo"), Rect: Rect{X: 0, Y: 27, W: 20, H: 3}})
	r.Add(Zone{Target: DockTarget("done"), Rect: Rect{X: 20, Y: 27, W: 20, H: 3}})
	return r
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		p        Point
		dragging Kind
		want     Target
		ok       bool
	}{
		{"task beats column", Point{5, 3}, KindTask, TaskTarget("a", "todo"), true},
		{"lower half sets after", Point{5, 5}, KindTask, Target{Kind: TargetTask, TaskID: "a", ColumnID: "todo", After: true}, true},
		{"column body", Point{5, 20}, KindTask, ColumnTarget("todo"), true},
		{"other column card", Point{25, 2}, KindTask, TaskTarget("c", "done"), true},
		{"dock while dragging task", Point{25, 28}, KindTask, DockTarget("done"), true},
		{"dock ignored when idle", Point{25, 28}, KindNone, ColumnTarget("done"), true},
		{"dock ignored for column drag", Point{25, 28}, KindColumn, ColumnTarget("done"), true},
		{"card maps to column for column drag", Point{5, 3}, KindColumn, ColumnTarget("todo"), true},
		{"outside every zone", Point{50, 50}, KindTask, Target{}, false},
	}

	r := testResolver()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Resolve(tt.p, tt.dragging)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A miss is not bridged by the previous hit.
func TestResolver_NoMemoryAcrossGaps(t *testing.T) {
	r := testResolver()

	_, ok := r.Resolve(Point{5, 3}, KindTask)
	assert.True(t, ok)
	_, ok = r.Resolve(Point{45, 3}, KindTask)
	assert.False(t, ok)
}

func TestResolver_Reset(t *testing.T) {
	r := testResolver()
	r.Reset()

	assert.Empty(t, r.Zones())
	_, ok := r.Resolve(Point{5, 3}, KindTask)
	assert.False(t, ok)
}

func TestRect(t *testing.T) {
	r := Rect{X: 2, Y: 2, W: 3, H: 4}

	assert.True(t, r.Contains(Point{2, 2}))
	assert.True(t, r.Contains(Point{4, 5}))
	assert.False(t, r.Contains(Point{5, 2}), "right edge is exclusive")
	assert.False(t, Rect{X: 0, Y: 0}.Contains(Point{0, 0}))

	assert.False(t, r.LowerHalf(Point{3, 3}))
	assert.True(t, r.LowerHalf(Point{3, 4}))
	assert.Equal(t, 3, Chebyshev(Point{0, 0}, Point{-3, 2}))
}
