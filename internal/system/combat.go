package system

import (
	"go-grid-battle/internal/component"
	"go-grid-battle/internal/config"
	"go-grid-battle/internal/event"
	"go-grid-battle/internal/types"
)

// AttackAction управляет атакой юнита: поиск цели, замах, удар на последнем кадре
// анимации, перезарядка.
type AttackAction struct {
	w *World
}

func NewAttackAction(w *World) *AttackAction {
	return &AttackAction{w: w}
}

func (a *AttackAction) Kind() component.ActionKind { return component.ActionAttack }

// CanExecute holds while a swing is winding up, or when a melee or ranged target is
// in range. Out of range it points the unit's move target at the nearest enemy and
// declines, leaving the tick to the move action.
func (a *AttackAction) CanExecute(id types.EntityID) bool {
	ecs := a.w.ECS
	if !ecs.IsAlive(id) {
		return false
	}
	combat, ok := ecs.Combats[id]
	if !ok {
		return false
	}
	if tp, ok := ecs.Teleports[id]; ok && tp.Active() {
		return false
	}
	if combat.IsAttacking {
		return true
	}
	return a.acquire(id, combat)
}

func (a *AttackAction) acquire(id types.EntityID, combat *component.Combat) bool {
	movement := a.w.ECS.Movements[id]

	enemy, found := a.w.FindNearestEnemy(id)
	if !found {
		combat.Target = types.None
		if movement != nil {
			movement.Target = nil
		}
		return false
	}

	if enemy.Sep.Chebyshev <= combat.Range {
		combat.Target = enemy.ID
		combat.IsRangedAttack = false
		if movement != nil {
			movement.Target = nil
		}
		return true
	}

	if combat.IsRanged && a.w.HasAmmo(id) {
		if target, ok := a.w.FindRangedTarget(id, combat); ok {
			combat.Target = target.ID
			combat.IsRangedAttack = true
			if movement != nil {
				movement.Target = nil
			}
			return true
		}
	}

	// врагов в радиусе нет, идём к ближайшему
	combat.Target = types.None
	if movement != nil {
		anchor := a.w.ECS.Footprints[enemy.ID].Anchor()
		movement.Target = &anchor
	}
	return false
}

func (a *AttackAction) Execute(id types.EntityID) {
	combat := a.w.ECS.Combats[id]
	if combat == nil {
		return
	}
	if combat.IsAttacking {
		a.advanceSwing(id, combat)
		return
	}

	if movement, ok := a.w.ECS.Movements[id]; ok {
		movement.Stop()
	}
	a.face(id, combat)
	if combat.Cooldown > 0 {
		return // держим позицию до конца перезарядки
	}

	combat.IsAttacking = true
	combat.DamageDealt = false
	anim := a.w.ECS.Animators[id]
	if anim != nil {
		frames := combat.AttackFrames
		if frames <= 0 {
			frames = config.DefaultAttackFrames
		}
		anim.Play(component.ClipAttack, frames)
	}
	a.w.emit(event.SwingStarted, event.SwingData{Attacker: id, Target: combat.Target, Ranged: combat.IsRangedAttack})

	if anim == nil || anim.Final() {
		a.resolveSwing(id, combat)
	}
}

func (a *AttackAction) advanceSwing(id types.EntityID, combat *component.Combat) {
	if !a.w.ECS.IsAlive(combat.Target) {
		a.abortSwing(id, combat)
		return
	}
	anim := a.w.ECS.Animators[id]
	if anim == nil || anim.Advance() {
		a.resolveSwing(id, combat)
	}
}

// resolveSwing fires once per swing, latched by DamageDealt.
func (a *AttackAction) resolveSwing(id types.EntityID, combat *component.Combat) {
	if combat.DamageDealt {
		return
	}
	target := combat.Target
	if !a.w.ECS.IsAlive(target) {
		a.abortSwing(id, combat)
		return
	}
	a.face(id, combat)
	combat.DamageDealt = true

	if combat.IsRangedAttack {
		a.w.SpawnProjectile(id, target, combat.Damage)
		if ammo, ok := a.w.ECS.Ammos[id]; ok && ammo.Remaining > 0 {
			ammo.Remaining--
		}
	} else {
		a.w.ApplyDamage(id, target, combat.Damage, false)
		if combat.Vampirism > 0 {
			a.w.Heal(id, scale(combat.Damage, combat.Vampirism))
		}
		if combat.Area != nil {
			a.w.applySplash(id, target, combat)
		}
	}
	a.finishSwing(id, combat)
}

// abortSwing: цель погибла или исчезла во время замаха. Урона нет, перезарядка
// всё равно начинается.
func (a *AttackAction) abortSwing(id types.EntityID, combat *component.Combat) {
	a.w.emit(event.SwingAborted, event.SwingData{Attacker: id, Target: combat.Target, Ranged: combat.IsRangedAttack})
	combat.Target = types.None
	a.finishSwing(id, combat)
}

func (a *AttackAction) finishSwing(id types.EntityID, combat *component.Combat) {
	combat.IsAttacking = false
	combat.Cooldown = combat.AttackSpeed
	playIdle(a.w.ECS, id)
}

func (a *AttackAction) face(id types.EntityID, combat *component.Combat) {
	if sep, ok := a.w.Separation(id, combat.Target); ok {
		combat.Look = component.Toward(sep.DCol, sep.DRow)
	}
}

// InterruptSwing stops a wind-up from outside (group order, teleport). The cooldown
// still applies so the unit cannot re-aim for free.
func (a *AttackAction) InterruptSwing(id types.EntityID) {
	combat, ok := a.w.ECS.Combats[id]
	if !ok || !combat.IsAttacking {
		return
	}
	a.abortSwing(id, combat)
}
