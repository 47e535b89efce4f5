// internal/component/aura.go
package component

import "time"

// Aura - периодическая поддержка союзников в радиусе (лечение / восстановление боезапаса).
type Aura struct {
	Range       float64
	HealAmount  int
	AmmoRestore int
	IncludeSelf bool
	Cooldown    time.Duration
	Remaining   time.Duration
}

// Ready reports whether the pulse is off cooldown.
func (a *Aura) Ready() bool {
	return a.Remaining <= 0
}
