// pkg/gridmap/pathfinding.go
package gridmap

import "go-grid-battle/internal/types"

// NeighborDirections - порядок обхода соседей: вверх, вправо, вниз, влево.
// Порядок фиксирован: от него зависит, какой из равных по длине путей будет найден.
var NeighborDirections = [4]Cell{
	{Col: 0, Row: -1},
	{Col: 1, Row: 0},
	{Col: 0, Row: 1},
	{Col: -1, Row: 0},
}

// Mover describes the unit being routed: its footprint size, expansion and id.
// Cells held by Self never block the search.
type Mover struct {
	Width     int
	Height    int
	Expansion Expansion
	Self      types.EntityID
}

// FindPath runs a breadth-first search from start to target (both anchor cells).
// A cell is visitable when the mover's whole footprint placed there is in bounds and
// free. The target itself only needs to be in bounds, so a unit can route toward a
// cell its enemy stands on. The returned path starts with start and ends with target;
// nil means there is no route.
func FindPath(g *Grid, start, target Cell, m Mover) []Cell {
	if !g.InBounds(start) || !g.footprintInBounds(target, m) {
		return nil
	}
	if start == target {
		return []Cell{start}
	}

	size := g.Width * g.Height
	parent := make([]int, size)
	for i := range parent {
		parent[i] = -1
	}
	startIdx := g.index(start)
	parent[startIdx] = startIdx

	queue := make([]Cell, 0, 64)
	queue = append(queue, start)
	for head := 0; head < len(queue); head++ {
		current := queue[head]
		for _, d := range NeighborDirections {
			next := current.Add(d.Col, d.Row)
			if !g.InBounds(next) {
				continue
			}
			idx := g.index(next)
			if parent[idx] != -1 {
				continue
			}
			if next == target {
				parent[idx] = g.index(current)
				return g.reconstructPath(parent, startIdx, idx)
			}
			if !g.CanOccupy(FootprintCells(next, m.Width, m.Height, m.Expansion), m.Self) {
				continue
			}
			parent[idx] = g.index(current)
			queue = append(queue, next)
		}
	}
	return nil // Нет пути
}

// NextStep returns only the first hop of FindPath as a (dx, dy) delta.
func NextStep(g *Grid, start, target Cell, m Mover) (dx, dy int, ok bool) {
	path := FindPath(g, start, target, m)
	if len(path) < 2 {
		return 0, 0, false
	}
	dx, dy = path[0].Delta(path[1])
	return dx, dy, true
}

func (g *Grid) footprintInBounds(anchor Cell, m Mover) bool {
	for _, c := range FootprintCells(anchor, m.Width, m.Height, m.Expansion) {
		if !g.InBounds(c) {
			return false
		}
	}
	return true
}

func (g *Grid) cellAt(idx int) Cell {
	return Cell{Col: idx % g.Width, Row: idx / g.Width}
}

func (g *Grid) reconstructPath(parent []int, startIdx, goalIdx int) []Cell {
	path := []Cell{}
	for idx := goalIdx; ; idx = parent[idx] {
		path = append([]Cell{g.cellAt(idx)}, path...)
		if idx == startIdx {
			break
		}
	}
	return path
}
