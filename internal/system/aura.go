// internal/system/aura.go
package system

import (
	"go-grid-battle/internal/component"
	"go-grid-battle/internal/event"
	"go-grid-battle/internal/types"
)

// AuraAction обрабатывает ауры поддержки: лечение и пополнение боезапаса союзников.
type AuraAction struct {
	w *World
}

func NewAuraAction(w *World) *AuraAction {
	return &AuraAction{w: w}
}

func (a *AuraAction) Kind() component.ActionKind { return component.ActionAura }

// CanExecute holds only when the pulse is ready and somebody in range needs it, so a
// full-health team never burns the cooldown.
func (a *AuraAction) CanExecute(id types.EntityID) bool {
	if !a.w.ECS.IsAlive(id) {
		return false
	}
	aura, ok := a.w.ECS.Auras[id]
	if !ok || !aura.Ready() {
		return false
	}
	if tp, ok := a.w.ECS.Teleports[id]; ok && tp.Active() {
		return false
	}
	return len(a.supportTargets(id, aura)) > 0
}

func (a *AuraAction) Execute(id types.EntityID) {
	aura, ok := a.w.ECS.Auras[id]
	if !ok {
		return
	}
	targets := a.supportTargets(id, aura)
	if len(targets) == 0 {
		return
	}

	for _, target := range targets {
		if aura.HealAmount > 0 {
			a.w.Heal(target, aura.HealAmount)
		}
		if aura.AmmoRestore > 0 {
			if ammo, ok := a.w.ECS.Ammos[target]; ok {
				ammo.Remaining = min(ammo.Max, ammo.Remaining+aura.AmmoRestore)
			}
		}
	}
	aura.Remaining = aura.Cooldown
	a.w.emit(event.AuraPulsed, event.AuraData{Source: id, Supported: targets})
}

// supportTargets lists allies in range that would gain something from a pulse,
// ascending by id. Range is Euclidean between anchor cells.
func (a *AuraAction) supportTargets(id types.EntityID, aura *component.Aura) []types.EntityID {
	ecs := a.w.ECS
	center := ecs.Footprints[id].Anchor()
	r2 := aura.Range * aura.Range

	var out []types.EntityID
	for _, other := range ecs.LivingUnits() {
		if other == id {
			if !aura.IncludeSelf {
				continue
			}
		} else if !ecs.Allied(id, other) {
			continue
		}
		dx, dy := center.Delta(ecs.Footprints[other].Anchor())
		if float64(dx*dx+dy*dy) > r2 {
			continue
		}
		if a.needsSupport(other, aura) {
			out = append(out, other)
		}
	}
	return out
}

func (a *AuraAction) needsSupport(id types.EntityID, aura *component.Aura) bool {
	if aura.HealAmount > 0 {
		if health := a.w.ECS.Healths[id]; health.Value < health.Max {
			return true
		}
	}
	if aura.AmmoRestore > 0 {
		combat, ranged := a.w.ECS.Combats[id]
		ammo, hasAmmo := a.w.ECS.Ammos[id]
		if ranged && combat.IsRanged && hasAmmo && ammo.Remaining < ammo.Max {
			return true
		}
	}
	return false
}
