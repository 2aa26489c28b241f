package dnd

// Zone is a registered drop candidate.
type Zone struct {
	Target Target
	Rect   Rect
}

// Resolver finds the drop target under the pointer. The presentation layer
// rebuilds the zone list every frame; Resolve keeps no memory between calls,
// so a pointer outside every zone simply resolves to nothing.
type Resolver struct {
	zones []Zone
}

// NewResolver returns an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Reset drops every registered zone.
func (r *Resolver) Reset() {
	r.zones = r.zones[:0]
}

// Add registers a candidate zone.
func (r *Resolver) Add(z Zone) {
	r.zones = append(r.zones, z)
}

// Zones returns the registered zones in registration order.
func (r *Resolver) Zones() []Zone {
	return r.zones
}

// Resolve returns the most specific zone containing p for a drag of the
// given kind. Pass KindNone for plain hit testing outside a drag.
//
// Docks are fixed overlays and beat anything beneath them, but only while a
// task is being dragged. Task cards beat their column. For column drags the
// only meaningful targets are columns, so a task card resolves to the column
// it sits in.
func (r *Resolver) Resolve(p Point, dragging Kind) (Target, bool) {
	var (
		best     Target
		bestRank int
	)
	for _, z := range r.zones {
		if !z.Rect.Contains(p) {
			continue
		}
		t := z.Target
		rank := rankOf(t.Kind, dragging)
		if rank == 0 {
			continue
		}
		if t.Kind == TargetTask && dragging == KindColumn {
			t = ColumnTarget(t.ColumnID)
		}
		if t.Kind == TargetTask {
			t.After = z.Rect.LowerHalf(p)
		}
		if rank > bestRank {
			best, bestRank = t, rank
		}
	}
	return best, bestRank > 0
}

// rankOf orders zone kinds by specificity; zero means ineligible.
func rankOf(kind TargetKind, dragging Kind) int {
	switch kind {
	case TargetDock:
		if dragging == KindTask {
			return 3
		}
		return 0
	case TargetTask:
		return 2
	case TargetColumn:
		return 1
	default:
		return 0
	}
}
