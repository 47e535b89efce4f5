// pkg/gridmap/grid.go
package gridmap

import "go-grid-battle/internal/types"

// Grid - прямоугольная сетка занятости. Каждая клетка хранит id занявшей её сущности
// (types.None для свободной клетки).
type Grid struct {
	Width  int
	Height int
	cells  []types.EntityID
}

// NewGrid creates an empty grid of the given size.
func NewGrid(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]types.EntityID, width*height),
	}
}

// InBounds reports whether the cell lies on the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < g.Width && c.Row < g.Height
}

func (g *Grid) index(c Cell) int {
	return c.Row*g.Width + c.Col
}

// OccupantAt returns the id occupying the cell. Out-of-bounds cells report types.None
// and false.
func (g *Grid) OccupantAt(c Cell) (types.EntityID, bool) {
	if !g.InBounds(c) {
		return types.None, false
	}
	return g.cells[g.index(c)], true
}

// IsOccupied reports whether the cell is taken. Out-of-bounds cells count as taken:
// they are never occupiable.
func (g *Grid) IsOccupied(c Cell) bool {
	id, ok := g.OccupantAt(c)
	return !ok || id != types.None
}

// CanOccupy checks that every cell is in bounds and either free or held by self.
func (g *Grid) CanOccupy(cells []Cell, self types.EntityID) bool {
	for _, c := range cells {
		id, ok := g.OccupantAt(c)
		if !ok {
			return false
		}
		if id != types.None && id != self {
			return false
		}
	}
	return true
}

// Place marks the cells as held by id. The whole footprint is validated first;
// on failure nothing is written.
func (g *Grid) Place(id types.EntityID, cells []Cell) bool {
	if id == types.None || !g.CanOccupy(cells, id) {
		return false
	}
	for _, c := range cells {
		g.cells[g.index(c)] = id
	}
	return true
}

// Clear frees the cells that are held by id. Cells held by someone else are left alone.
func (g *Grid) Clear(id types.EntityID, cells []Cell) {
	for _, c := range cells {
		if occupant, ok := g.OccupantAt(c); ok && occupant == id {
			g.cells[g.index(c)] = types.None
		}
	}
}

// Move relocates id from one footprint to another. If the destination cannot be
// occupied the grid is left untouched.
func (g *Grid) Move(id types.EntityID, from, to []Cell) bool {
	g.Clear(id, from)
	if g.Place(id, to) {
		return true
	}
	// вернуть старые клетки на место
	g.Place(id, from)
	return false
}

// Reset frees every cell.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = types.None
	}
}

// OccupiedCount returns how many cells are taken.
func (g *Grid) OccupiedCount() int {
	n := 0
	for _, id := range g.cells {
		if id != types.None {
			n++
		}
	}
	return n
}
