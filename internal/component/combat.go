// internal/component/combat.go
package component

import (
	"time"

	"go-grid-battle/internal/types"
	"go-grid-battle/pkg/gridmap"
)

// Direction - направление взгляда, каждая ось в {-1, 0, 1}.
type Direction struct {
	DX, DY int
}

// Toward returns the sign of the offset (dx, dy).
func Toward(dx, dy int) Direction {
	return Direction{DX: gridmap.Sign(dx), DY: gridmap.Sign(dy)}
}

// IsZero reports a unit facing nowhere in particular.
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// Diagonal reports whether both axes are set.
func (d Direction) Diagonal() bool {
	return d.DX != 0 && d.DY != 0
}

// AreaPattern selects the shape of an area attack.
type AreaPattern string

const (
	PatternLine     AreaPattern = "line"
	PatternTriangle AreaPattern = "triangle"
	PatternAdjacent AreaPattern = "adjacent"
	PatternCustom   AreaPattern = "custom"
)

// AreaAttack describes the splash applied around the primary target of a melee hit.
type AreaAttack struct {
	Pattern    AreaPattern
	Depth      int            // how far the shape reaches along the look direction
	Spread     int            // perpendicular / ring reach
	Multiplier float64        // доля урона по вторичным целям
	Offsets    []gridmap.Cell // for PatternCustom, relative to the target
}

// Combat - боевые характеристики и состояние атаки юнита.
type Combat struct {
	Damage       int
	AttackSpeed  time.Duration // перезарядка между ударами
	Range        int           // melee reach (Chebyshev)
	IsRanged     bool
	MinRange     int
	MaxRange     int
	AttackFrames int
	Area         *AreaAttack
	Vampirism    float64 // share of dealt melee damage healed back

	Cooldown       time.Duration
	IsAttacking    bool
	Target         types.EntityID
	DamageDealt    bool // latched once per swing
	IsRangedAttack bool
	Look           Direction
}

// ResetSwing drops the transient attack state; stats are kept.
func (c *Combat) ResetSwing() {
	c.IsAttacking = false
	c.Target = types.None
	c.DamageDealt = false
	c.IsRangedAttack = false
}

// Ammo - боезапас стрелка. Отсутствие компонента означает бесконечные выстрелы.
type Ammo struct {
	Remaining int
	Max       int
}
