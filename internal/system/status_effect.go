// internal/system/status_effect.go
package system

import (
	"time"

	"go-grid-battle/internal/entity"
)

// CooldownSystem отсчитывает таймеры перезарядки атак и аур. Работает на каждом
// фиксированном шаге, в том числе на паузе.
type CooldownSystem struct {
	ecs *entity.ECS
}

func NewCooldownSystem(ecs *entity.ECS) *CooldownSystem {
	return &CooldownSystem{ecs: ecs}
}

// Update обрабатывает все активные таймеры.
func (s *CooldownSystem) Update(dt time.Duration) {
	for _, id := range s.ecs.LivingUnits() {
		if combat, ok := s.ecs.Combats[id]; ok && combat.Cooldown > 0 {
			combat.Cooldown = max(0, combat.Cooldown-dt)
		}
		if aura, ok := s.ecs.Auras[id]; ok && aura.Remaining > 0 {
			aura.Remaining = max(0, aura.Remaining-dt)
		}
	}
}
