// internal/component/projectile.go
package component

import (
	"go-grid-battle/internal/types"
	"go-grid-battle/pkg/gridmap"
)

// Projectile представляет летящий снаряд стрелка. Урон применяется при попадании.
type Projectile struct {
	Attacker   types.EntityID
	Target     types.EntityID
	Damage     int
	From, To   gridmap.Cell
	Frames     int    // полное время полёта в анимационных тиках
	FramesLeft int    // анимационных тиков до попадания
	SpawnTick  uint64 // не летит в тот же тик, в котором выпущен
}
