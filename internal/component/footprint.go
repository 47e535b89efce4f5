// internal/component/footprint.go
package component

import "go-grid-battle/pkg/gridmap"

// Footprint - клетки, занимаемые юнитом: якорь (Col, Row), размер W×H и направление роста.
type Footprint struct {
	Col, Row  int
	Width     int
	Height    int
	Expansion gridmap.Expansion
}

// Anchor returns the anchor cell.
func (f *Footprint) Anchor() gridmap.Cell {
	return gridmap.Cell{Col: f.Col, Row: f.Row}
}

// SetAnchor moves the anchor; the occupied cells follow from Expansion.
func (f *Footprint) SetAnchor(c gridmap.Cell) {
	f.Col, f.Row = c.Col, c.Row
}

// Cells lists the occupied cells row-major.
func (f *Footprint) Cells() []gridmap.Cell {
	return gridmap.FootprintCells(f.Anchor(), f.Width, f.Height, f.Expansion)
}

// CellsAt lists the cells the unit would occupy with its anchor at c.
func (f *Footprint) CellsAt(c gridmap.Cell) []gridmap.Cell {
	return gridmap.FootprintCells(c, f.Width, f.Height, f.Expansion)
}
