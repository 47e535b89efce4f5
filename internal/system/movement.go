// internal/system/movement.go
package system

import (
	"time"

	"go-grid-battle/internal/component"
	"go-grid-battle/internal/event"
	"go-grid-battle/internal/types"
	"go-grid-battle/pkg/gridmap"
)

// MoveAction шагает юнита на одну клетку по кратчайшему пути к цели.
type MoveAction struct {
	w *World
}

func NewMoveAction(w *World) *MoveAction {
	return &MoveAction{w: w}
}

func (a *MoveAction) Kind() component.ActionKind { return component.ActionMove }

// CanExecute finds the next step toward the destination and caches it. A step that is
// still in progress, an active teleport, a reached target or a blocked route all
// decline.
func (a *MoveAction) CanExecute(id types.EntityID) bool {
	ecs := a.w.ECS
	if !ecs.IsAlive(id) {
		return false
	}
	movement, ok := ecs.Movements[id]
	if !ok || movement.IsMoving {
		return false
	}
	if tp, ok := ecs.Teleports[id]; ok && tp.Active() {
		return false
	}
	fp := ecs.Footprints[id]
	anchor := fp.Anchor()

	dest, ok := movement.Destination()
	if !ok {
		return false
	}
	if movement.GroupTarget == nil && dest == anchor {
		movement.Target = nil
		movement.Walking = false
		return false
	}
	if dest == anchor {
		return false // групповая цель достигнута, её снимает планировщик
	}

	mover := gridmap.Mover{Width: fp.Width, Height: fp.Height, Expansion: fp.Expansion, Self: id}
	dx, dy, ok := gridmap.NextStep(a.w.Grid, anchor, dest, mover)
	if !ok {
		movement.NextStep = nil
		return false
	}
	if !a.w.Grid.CanOccupy(fp.CellsAt(anchor.Add(dx, dy)), id) {
		movement.NextStep = nil
		return false
	}
	movement.NextStep = &component.Step{DX: dx, DY: dy}
	return true
}

func (a *MoveAction) Execute(id types.EntityID) {
	ecs := a.w.ECS
	movement, ok := ecs.Movements[id]
	if !ok || movement.NextStep == nil {
		return
	}
	step := *movement.NextStep
	movement.NextStep = nil

	fp := ecs.Footprints[id]
	from := fp.Anchor()
	to := from.Add(step.DX, step.DY)
	if !a.w.Grid.Move(id, fp.Cells(), fp.CellsAt(to)) {
		// клетку заняли между проверкой и шагом
		movement.Walking = false
		return
	}
	fp.SetAnchor(to)
	a.w.SyncPosition(id)

	movement.IsMoving = true
	movement.Walking = true
	movement.StepElapsed = 0

	if combat, ok := ecs.Combats[id]; ok {
		combat.Look = component.Toward(step.DX, step.DY)
	}
	if anim, ok := ecs.Animators[id]; ok && anim.Clip != component.ClipWalk {
		anim.Play(component.ClipWalk, 1)
	}
	if movement.Target != nil && *movement.Target == to {
		movement.Target = nil
	}
}

// AdvanceMotion runs every fixed step: it finishes steps whose duration has elapsed.
func (a *MoveAction) AdvanceMotion(id types.EntityID, dt time.Duration) {
	movement, ok := a.w.ECS.Movements[id]
	if !ok || !movement.IsMoving {
		return
	}
	movement.StepElapsed += dt
	if movement.StepElapsed >= movement.StepDuration {
		movement.IsMoving = false
		movement.StepElapsed = 0
	}
}

// CheckGroupArrival completes a group order once the anchor reaches its cell. The
// default priorities come back and every movement intent is dropped.
func (a *MoveAction) CheckGroupArrival(id types.EntityID) bool {
	ecs := a.w.ECS
	movement, ok := ecs.Movements[id]
	if !ok || movement.GroupTarget == nil {
		return false
	}
	cell := *movement.GroupTarget
	if ecs.Footprints[id].Anchor() != cell {
		return false
	}
	groupID := movement.GroupID
	movement.Stop()
	movement.ClearTargets()
	if behavior, ok := ecs.Behaviors[id]; ok {
		behavior.Restore()
	}
	if tp, ok := ecs.Teleports[id]; ok {
		tp.Requested = nil
	}
	playIdle(ecs, id)
	a.w.emit(event.GroupMoveCompleted, event.GroupMoveData{Unit: id, GroupID: groupID, Cell: cell})
	return true
}
