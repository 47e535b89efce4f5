// pkg/gridmap/footprint.go
package gridmap

import (
	"fmt"

	"go-grid-battle/pkg/utils"
)

// Expansion defines in which direction a W×H footprint grows from its anchor cell.
type Expansion int

const (
	BottomRight Expansion = iota // anchor is the top-left cell
	BottomLeft                   // anchor is the top-right cell
	TopRight                     // anchor is the bottom-left cell
	TopLeft                      // anchor is the bottom-right cell
)

var expansionNames = map[Expansion]string{
	BottomRight: "bottomRight",
	BottomLeft:  "bottomLeft",
	TopRight:    "topRight",
	TopLeft:     "topLeft",
}

func (e Expansion) String() string {
	if name, ok := expansionNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Expansion(%d)", int(e))
}

// ParseExpansion converts a config name into an Expansion. Empty string means BottomRight.
func ParseExpansion(name string) (Expansion, error) {
	if name == "" {
		return BottomRight, nil
	}
	for e, n := range expansionNames {
		if n == name {
			return e, nil
		}
	}
	return BottomRight, fmt.Errorf("unknown expansion direction %q", name)
}

// UnmarshalText lets the direction be written by name in YAML files.
func (e *Expansion) UnmarshalText(text []byte) error {
	parsed, err := ParseExpansion(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalText writes the direction by name.
func (e Expansion) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Origin returns the top-left cell of the footprint bounding box.
func Origin(anchor Cell, width, height int, dir Expansion) Cell {
	origin := anchor
	switch dir {
	case BottomLeft:
		origin.Col -= width - 1
	case TopRight:
		origin.Row -= height - 1
	case TopLeft:
		origin.Col -= width - 1
		origin.Row -= height - 1
	}
	return origin
}

// FootprintCells lists the cells a W×H unit anchored at anchor occupies, row-major.
func FootprintCells(anchor Cell, width, height int, dir Expansion) []Cell {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	origin := Origin(anchor, width, height, dir)
	cells := make([]Cell, 0, width*height)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			cells = append(cells, Cell{Col: origin.Col + c, Row: origin.Row + r})
		}
	}
	return cells
}

// Separation is the closest pair between two footprints.
type Separation struct {
	Chebyshev int
	Manhattan int
	// DCol, DRow point from the first footprint's cell to the second's.
	DCol, DRow int
}

// Orthogonal reports a purely horizontal or vertical offset.
func (s Separation) Orthogonal() bool {
	return (s.DCol == 0) != (s.DRow == 0)
}

// Diagonal reports an offset along a 45° line.
func (s Separation) Diagonal() bool {
	return s.DCol != 0 && utils.Abs(s.DCol) == utils.Abs(s.DRow)
}

// Separate compares every cell of a with every cell of b and keeps the pair with the
// smallest Chebyshev distance, then the smallest Manhattan distance. The first such pair
// in row-major order wins.
func Separate(a, b []Cell) Separation {
	best := Separation{Chebyshev: -1}
	for _, ca := range a {
		for _, cb := range b {
			cheb := ca.Chebyshev(cb)
			man := ca.Manhattan(cb)
			if best.Chebyshev < 0 || cheb < best.Chebyshev || (cheb == best.Chebyshev && man < best.Manhattan) {
				dx, dy := ca.Delta(cb)
				best = Separation{Chebyshev: cheb, Manhattan: man, DCol: dx, DRow: dy}
			}
		}
	}
	return best
}
