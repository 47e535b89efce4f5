// pkg/gridmap/cell.go
package gridmap

import (
	"fmt"

	"go-grid-battle/pkg/utils"
)

// Cell - клетка сетки в координатах (столбец, строка).
type Cell struct {
	Col, Row int
}

// Add returns the cell shifted by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{Col: c.Col + dx, Row: c.Row + dy}
}

// Delta returns the (dx, dy) from c to other.
func (c Cell) Delta(other Cell) (dx, dy int) {
	return other.Col - c.Col, other.Row - c.Row
}

// Chebyshev returns max(|dCol|, |dRow|).
func (c Cell) Chebyshev(other Cell) int {
	dx, dy := c.Delta(other)
	return max(utils.Abs(dx), utils.Abs(dy))
}

// Manhattan returns |dCol| + |dRow|.
func (c Cell) Manhattan(other Cell) int {
	dx, dy := c.Delta(other)
	return utils.Abs(dx) + utils.Abs(dy)
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Less orders cells row-major: by row, then by column.
func (c Cell) Less(other Cell) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}

// Sign clamps v to -1, 0 or 1.
func Sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
