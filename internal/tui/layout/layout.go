// Package layout computes where every board element sits on screen. The same
// geometry drives both rendering and pointer hit testing, so what the user
// sees is exactly what the drop resolver tests against.
package layout

import (
	"github.com/thenoetrevino/tablero/internal/dnd"
	"github.com/thenoetrevino/tablero/internal/models"
)

const (
	HeaderHeight       = 2 // title/stats line + search line
	FooterHeight       = 1
	SidebarWidth       = 26
	ColumnWidth        = 32
	ColumnGap          = 1
	ColumnHeaderHeight = 3 // top border + title + divider
	CardHeight         = 5
	DockHeight         = 3
	IndicatorWidth     = 2 // scroll arrow gutters on each side
	CompactWidth       = 72
	minBoardHeight     = 10
	minDockItemWidth   = 6
	maxDockItemWidth   = 20
)

// Params is everything the geometry depends on.
type Params struct {
	Width, Height int
	SidebarOpen   bool
	Projects      []models.Project
	Columns       []models.Column
	Tasks         map[string][]models.Task
	// ViewportOffset is the index of the leftmost visible column.
	ViewportOffset int
	// TaskOffsets is the index of the first visible card per column.
	TaskOffsets map[string]int
	// DraggingTask shows the dock as a drop target.
	DraggingTask bool
}

// Card is one visible task card.
type Card struct {
	TaskID   string
	ColumnID string
	Index    int // position within the column
	Rect     dnd.Rect
}

// ColumnBox is one visible column.
type ColumnBox struct {
	ColumnID string
	Index    int
	Rect     dnd.Rect
	Header   dnd.Rect
	Cards    []Card
	// Above and Below count the cards scrolled out of view.
	Above, Below int
}

// DockItem is one column chip in the dock.
type DockItem struct {
	ColumnID string
	Index    int
	Rect     dnd.Rect
}

// SidebarItem is one project row in the sidebar.
type SidebarItem struct {
	ProjectID string
	Rect      dnd.Rect
}

// Layout is the computed geometry of one frame.
type Layout struct {
	Width, Height int
	Compact       bool

	Header  dnd.Rect
	Footer  dnd.Rect
	Board   dnd.Rect
	Sidebar dnd.Rect

	SidebarItems []SidebarItem
	NewProject   dnd.Rect

	ViewportOffset int
	ViewportSize   int
	Columns        []ColumnBox
	ScrollLeft     bool
	ScrollRight    bool

	DockVisible bool
	Dock        dnd.Rect
	DockItems   []DockItem
}

// ViewportSize returns how many columns fit in a board of the given width.
func ViewportSize(boardWidth int, compact bool) int {
	if compact {
		return 1
	}
	return max(1, (boardWidth-2*IndicatorWidth+ColumnGap)/(ColumnWidth+ColumnGap))
}

// ClampOffset keeps a viewport offset inside [0, columns-size].
func ClampOffset(offset, size, columns int) int {
	return max(0, min(offset, columns-size))
}

// VisibleCards returns how many cards fit in a column of height h.
func VisibleCards(h int) int {
	// header, top indicator, bottom indicator, bottom border
	return max(1, (h-ColumnHeaderHeight-3)/CardHeight)
}

// Compute lays out one frame.
func Compute(p Params) Layout {
	l := Layout{
		Width:   p.Width,
		Height:  p.Height,
		Compact: p.Width < CompactWidth,
	}
	l.Header = dnd.Rect{X: 0, Y: 0, W: p.Width, H: HeaderHeight}
	l.Footer = dnd.Rect{X: 0, Y: max(p.Height-FooterHeight, 0), W: p.Width, H: FooterHeight}

	boardY := HeaderHeight
	boardH := max(p.Height-HeaderHeight-FooterHeight, minBoardHeight)
	boardX := 0

	if p.SidebarOpen && !l.Compact {
		l.Sidebar = dnd.Rect{X: 0, Y: boardY, W: SidebarWidth, H: boardH}
		boardX = SidebarWidth
		l.layoutSidebar(p.Projects)
	}

	// The dock always shows in compact mode, where it doubles as navigation.
	// Otherwise it appears while a task is dragged, overlaying the board.
	l.DockVisible = l.Compact || p.DraggingTask
	if l.Compact {
		boardH = max(boardH-DockHeight, CardHeight+ColumnHeaderHeight+3)
	}
	l.Board = dnd.Rect{X: boardX, Y: boardY, W: max(p.Width-boardX, 0), H: boardH}

	l.layoutColumns(p)
	if l.DockVisible {
		l.layoutDock(p.Columns)
	}
	return l
}

func (l *Layout) layoutSidebar(projects []models.Project) {
	// border + "Projects" title + divider
	y := l.Sidebar.Y + 3
	w := l.Sidebar.W - 2
	last := l.Sidebar.Y + l.Sidebar.H - 2
	for _, p := range projects {
		if y >= last {
			break
		}
		l.SidebarItems = append(l.SidebarItems, SidebarItem{
			ProjectID: p.ID,
			Rect:      dnd.Rect{X: l.Sidebar.X + 1, Y: y, W: w, H: 1},
		})
		y++
	}
	if y+1 <= last {
		l.NewProject = dnd.Rect{X: l.Sidebar.X + 1, Y: y + 1, W: w, H: 1}
	}
}

func (l *Layout) layoutColumns(p Params) {
	colW := ColumnWidth
	if l.Compact {
		colW = max(l.Board.W-2*IndicatorWidth, 12)
	}
	l.ViewportSize = ViewportSize(l.Board.W, l.Compact)
	l.ViewportOffset = ClampOffset(p.ViewportOffset, l.ViewportSize, len(p.Columns))

	end := min(l.ViewportOffset+l.ViewportSize, len(p.Columns))
	x := l.Board.X + IndicatorWidth
	for i := l.ViewportOffset; i < end; i++ {
		col := p.Columns[i]
		box := ColumnBox{
			ColumnID: col.ID,
			Index:    i,
			Rect:     dnd.Rect{X: x, Y: l.Board.Y, W: colW, H: l.Board.H},
			Header:   dnd.Rect{X: x, Y: l.Board.Y, W: colW, H: ColumnHeaderHeight},
		}
		box.layoutCards(p.Tasks[col.ID], p.TaskOffsets[col.ID])
		l.Columns = append(l.Columns, box)
		x += colW + ColumnGap
	}

	l.ScrollLeft = l.ViewportOffset > 0
	l.ScrollRight = end < len(p.Columns)
}

func (b *ColumnBox) layoutCards(tasks []models.Task, offset int) {
	visible := VisibleCards(b.Rect.H)
	offset = max(0, min(offset, len(tasks)-visible))
	end := min(offset+visible, len(tasks))

	// one line for the "more above" indicator
	y := b.Rect.Y + ColumnHeaderHeight + 1
	for i := offset; i < end; i++ {
		b.Cards = append(b.Cards, Card{
			TaskID:   tasks[i].ID,
			ColumnID: b.ColumnID,
			Index:    i,
			Rect:     dnd.Rect{X: b.Rect.X + 1, Y: y, W: b.Rect.W - 2, H: CardHeight},
		})
		y += CardHeight
	}
	b.Above = offset
	b.Below = len(tasks) - end
}

func (l *Layout) layoutDock(columns []models.Column) {
	l.Dock = dnd.Rect{
		X: l.Board.X,
		Y: l.Board.Y + l.Board.H,
		W: l.Board.W,
		H: DockHeight,
	}
	if !l.Compact {
		// Overlay the bottom of the board.
		l.Dock.Y = l.Board.Y + l.Board.H - DockHeight
	}
	if len(columns) == 0 {
		return
	}

	itemW := (l.Dock.W - 2) / len(columns)
	itemW = max(min(itemW, maxDockItemWidth), minDockItemWidth)
	x := l.Dock.X + 1
	for i, col := range columns {
		if x+itemW > l.Dock.X+l.Dock.W {
			break
		}
		l.DockItems = append(l.DockItems, DockItem{
			ColumnID: col.ID,
			Index:    i,
			Rect:     dnd.Rect{X: x, Y: l.Dock.Y, W: itemW, H: DockHeight},
		})
		x += itemW
	}
}

// ============================================================================
// HIT TESTING
// ============================================================================

// Zones returns the drop zones for this frame. Dock zones are included only
// while the dock is shown as a drop target.
func (l Layout) Zones(dragging dnd.Kind) []dnd.Zone {
	var zones []dnd.Zone
	for _, col := range l.Columns {
		zones = append(zones, dnd.Zone{Target: dnd.ColumnTarget(col.ColumnID), Rect: col.Rect})
		for _, card := range col.Cards {
			zones = append(zones, dnd.Zone{Target: dnd.TaskTarget(card.TaskID, card.ColumnID), Rect: card.Rect})
		}
	}
	if dragging == dnd.KindTask && l.DockVisible {
		for _, item := range l.DockItems {
			zones = append(zones, dnd.Zone{Target: dnd.DockTarget(item.ColumnID), Rect: item.Rect})
		}
	}
	return zones
}

// CardAt returns the card under p.
func (l Layout) CardAt(p dnd.Point) (Card, bool) {
	for _, col := range l.Columns {
		for _, card := range col.Cards {
			if card.Rect.Contains(p) {
				return card, true
			}
		}
	}
	return Card{}, false
}

// HeaderAt returns the column whose header is under p.
func (l Layout) HeaderAt(p dnd.Point) (ColumnBox, bool) {
	for _, col := range l.Columns {
		if col.Header.Contains(p) {
			return col, true
		}
	}
	return ColumnBox{}, false
}

// ColumnAt returns the column under p.
func (l Layout) ColumnAt(p dnd.Point) (ColumnBox, bool) {
	for _, col := range l.Columns {
		if col.Rect.Contains(p) {
			return col, true
		}
	}
	return ColumnBox{}, false
}

// DockItemAt returns the dock chip under p.
func (l Layout) DockItemAt(p dnd.Point) (DockItem, bool) {
	if !l.DockVisible {
		return DockItem{}, false
	}
	for _, item := range l.DockItems {
		if item.Rect.Contains(p) {
			return item, true
		}
	}
	return DockItem{}, false
}

// ProjectAt returns the sidebar project under p.
func (l Layout) ProjectAt(p dnd.Point) (SidebarItem, bool) {
	for _, item := range l.SidebarItems {
		if item.Rect.Contains(p) {
			return item, true
		}
	}
	return SidebarItem{}, false
}

// EdgeDirection reports whether p is within margin cells of the board's
// left (-1) or right (+1) edge. Zero means neither.
func (l Layout) EdgeDirection(p dnd.Point, margin int) int {
	if margin <= 0 || p.Y < l.Board.Y || p.Y >= l.Board.Y+l.Board.H {
		return 0
	}
	switch {
	case p.X >= l.Board.X && p.X < l.Board.X+margin:
		return -1
	case p.X >= l.Board.X+l.Board.W-margin && p.X < l.Board.X+l.Board.W:
		return 1
	}
	return 0
}
