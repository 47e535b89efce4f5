package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-grid-battle/internal/component"
	"go-grid-battle/pkg/gridmap"
)

func TestAreaCellsAdjacent(t *testing.T) {
	g := gridmap.NewGrid(10, 10)
	area := &component.AreaAttack{Pattern: component.PatternAdjacent, Spread: 1}
	target := gridmap.Cell{Col: 5, Row: 5}

	cells := AreaCells(area, target, component.Direction{DX: 1}, g)
	assert.Len(t, cells, 8)
	assert.NotContains(t, cells, target)
	assert.Equal(t, gridmap.Cell{Col: 4, Row: 4}, cells[0], "row-major order")
	assert.Equal(t, gridmap.Cell{Col: 6, Row: 6}, cells[7])

	// в углу сетки остаются три клетки
	assert.Len(t, AreaCells(area, gridmap.Cell{Col: 0, Row: 0}, component.Direction{}, g), 3)
}

func TestAreaCellsDirectional(t *testing.T) {
	g := gridmap.NewGrid(10, 10)
	target := gridmap.Cell{Col: 5, Row: 5}
	right := component.Direction{DX: 1}

	line := AreaCells(&component.AreaAttack{Pattern: component.PatternLine, Depth: 2}, target, right, g)
	assert.Equal(t, []gridmap.Cell{{Col: 6, Row: 5}, {Col: 7, Row: 5}}, line)

	triangle := AreaCells(&component.AreaAttack{Pattern: component.PatternTriangle, Depth: 2}, target, right, g)
	assert.Len(t, triangle, 8)
	assert.Contains(t, triangle, gridmap.Cell{Col: 7, Row: 3})
	assert.NotContains(t, triangle, gridmap.Cell{Col: 4, Row: 5})

	narrow := AreaCells(&component.AreaAttack{Pattern: component.PatternTriangle, Depth: 2, Spread: 1}, target, right, g)
	assert.Len(t, narrow, 6)

	diagonal := AreaCells(&component.AreaAttack{Pattern: component.PatternTriangle, Depth: 1}, target, component.Direction{DX: 1, DY: 1}, g)
	assert.Equal(t, []gridmap.Cell{{Col: 6, Row: 5}, {Col: 5, Row: 6}, {Col: 6, Row: 6}}, diagonal)

	assert.Empty(t, AreaCells(&component.AreaAttack{Pattern: component.PatternLine, Depth: 3}, target, component.Direction{}, g),
		"no look direction, no line")
}

func TestAreaCellsCustom(t *testing.T) {
	g := gridmap.NewGrid(10, 10)
	area := &component.AreaAttack{
		Pattern: component.PatternCustom,
		Offsets: []gridmap.Cell{{Col: 0, Row: 0}, {Col: 2, Row: 0}, {Col: 2, Row: 0}, {Col: -9, Row: 0}},
	}
	cells := AreaCells(area, gridmap.Cell{Col: 5, Row: 5}, component.Direction{}, g)
	assert.Equal(t, []gridmap.Cell{{Col: 7, Row: 5}}, cells)
	assert.Nil(t, AreaCells(nil, gridmap.Cell{}, component.Direction{}, g))
}

func TestTargetingTieBreaks(t *testing.T) {
	b := newBattlefield(t, 10, 10)
	seeker := b.addUnit("A", 0, 0)
	low := b.addUnit("B", 2, 0)
	below := b.addUnit("B", 0, 2)

	c, ok := b.world().FindNearestEnemy(seeker)
	assert.True(t, ok)
	assert.Equal(t, low, c.ID, "equal distances fall back to the lower id")

	b.addUnit("B", 2, 1)
	b.world().Kill(low, 0)
	c, _ = b.world().FindNearestEnemy(seeker)
	assert.Equal(t, below, c.ID, "same Chebyshev distance, smaller Manhattan distance")
	assert.Equal(t, 2, c.Sep.Manhattan)
}

func TestRangedPrefersStraightLines(t *testing.T) {
	b := newBattlefield(t, 10, 10)
	archer := b.addUnit("A", 0, 0)
	combat := &component.Combat{IsRanged: true, MinRange: 1, MaxRange: 5}
	diagonal := b.addUnit("B", 3, 3)
	straight := b.addUnit("B", 4, 0)
	b.addUnit("B", 3, 1)

	c, ok := b.world().FindRangedTarget(archer, combat)
	assert.True(t, ok)
	assert.Equal(t, straight, c.ID)

	b.world().Kill(straight, 0)
	c, _ = b.world().FindRangedTarget(archer, combat)
	assert.Equal(t, diagonal, c.ID, "a diagonal beats an off-axis shot at the same range")
}
