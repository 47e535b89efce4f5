package system

import (
	"go-grid-battle/internal/component"
	"go-grid-battle/internal/config"
	"go-grid-battle/internal/event"
	"go-grid-battle/internal/types"
	"go-grid-battle/pkg/gridmap"
	mathutil "go-grid-battle/pkg/utils"
)

// TeleportAction проводит юнита через протокол телепортации:
// start_animation -> teleporting -> end_animation -> idle.
type TeleportAction struct {
	w      *World
	attack *AttackAction
}

func NewTeleportAction(w *World, attack *AttackAction) *TeleportAction {
	return &TeleportAction{w: w, attack: attack}
}

func (a *TeleportAction) Kind() component.ActionKind { return component.ActionTeleport }

// CanExecute continues a teleport in progress, or resolves a pending request into a
// free anchor cell. A request with nowhere to land is dropped.
func (a *TeleportAction) CanExecute(id types.EntityID) bool {
	if !a.w.ECS.IsAlive(id) {
		return false
	}
	tp, ok := a.w.ECS.Teleports[id]
	if !ok {
		return false
	}
	if tp.Active() {
		return true
	}
	if tp.Requested == nil {
		return false
	}
	cell, found := a.w.ResolveLanding(id, *tp.Requested)
	if !found {
		a.w.Logger.Debug("teleport request dropped", "tick", a.w.Tick, "unit", id, "cell", tp.Requested.String())
		tp.Requested = nil
		return false
	}
	tp.Requested = &cell
	return true
}

func (a *TeleportAction) Execute(id types.EntityID) {
	tp := a.w.ECS.Teleports[id]
	if tp == nil {
		return
	}
	anim := a.w.ECS.Animators[id]

	switch tp.State() {
	case component.TeleportIdle:
		if tp.Requested == nil {
			return
		}
		if err := tp.Transition(component.TeleportBegin, *tp.Requested); err != nil {
			a.w.Logger.Warn("teleport begin rejected", "unit", id, "error", err)
			return
		}
		tp.Requested = nil
		if movement, ok := a.w.ECS.Movements[id]; ok {
			movement.Stop()
		}
		a.attack.InterruptSwing(id)
		if anim != nil {
			anim.Play(component.ClipTeleportStart, framesOr(tp.StartFrames, config.DefaultTeleportStartFrames))
		}
		if anim == nil || anim.Final() {
			a.depart(id, tp)
		}

	case component.TeleportStartAnimation:
		if anim == nil || anim.Advance() {
			a.depart(id, tp)
		}

	case component.TeleportEndAnimation:
		if anim == nil || anim.Advance() {
			a.arrive(id, tp)
		}

	case component.Teleporting:
		// relocation finishes inside depart; a unit left here was interrupted mid-way
		a.relocate(id, tp)
	}
}

func (a *TeleportAction) depart(id types.EntityID, tp *component.Teleport) {
	if err := tp.Transition(component.TeleportDepartFinished, gridmap.Cell{}); err != nil {
		a.w.Logger.Warn("teleport depart rejected", "unit", id, "error", err)
		return
	}
	a.relocate(id, tp)
}

// relocate moves the footprint to the target. The cell is checked again since other
// units may have moved during the start animation; if nothing nearby is free the
// teleport is cancelled and the unit stays put.
func (a *TeleportAction) relocate(id types.EntityID, tp *component.Teleport) {
	target, _ := tp.Target()
	cell, found := a.w.ResolveLanding(id, target)
	if !found {
		_ = tp.Transition(component.TeleportCancel, gridmap.Cell{})
		playIdle(a.w.ECS, id)
		a.w.Logger.Debug("teleport cancelled", "tick", a.w.Tick, "unit", id, "cell", target.String())
		return
	}

	fp := a.w.ECS.Footprints[id]
	from := fp.Anchor()
	if !a.w.Grid.Move(id, fp.Cells(), fp.CellsAt(cell)) {
		_ = tp.Transition(component.TeleportCancel, gridmap.Cell{})
		playIdle(a.w.ECS, id)
		return
	}
	fp.SetAnchor(cell)
	a.w.SyncPosition(id)

	if err := tp.Transition(component.TeleportRelocated, cell); err != nil {
		a.w.Logger.Warn("teleport relocation rejected", "unit", id, "error", err)
		return
	}
	a.w.Logger.Debug("unit teleported", "tick", a.w.Tick, "unit", id, "from", from.String(), "to", cell.String())
	if anim, ok := a.w.ECS.Animators[id]; ok {
		anim.Play(component.ClipTeleportEnd, framesOr(tp.EndFrames, config.DefaultTeleportEndFrames))
	}
}

func (a *TeleportAction) arrive(id types.EntityID, tp *component.Teleport) {
	target, _ := tp.Target()
	if err := tp.Transition(component.TeleportArrived, gridmap.Cell{}); err != nil {
		a.w.Logger.Warn("teleport arrival rejected", "unit", id, "error", err)
		return
	}
	if combat, ok := a.w.ECS.Combats[id]; ok {
		combat.Look = component.Direction{}
	}
	playIdle(a.w.ECS, id)
	a.w.emit(event.TeleportCompleted, event.TeleportData{Unit: id, To: target})
}

// ResolveLanding returns want if the unit's footprint fits there, otherwise the nearest
// free anchor on the rings around it.
func (w *World) ResolveLanding(id types.EntityID, want gridmap.Cell) (gridmap.Cell, bool) {
	fp, ok := w.ECS.Footprints[id]
	if !ok {
		return gridmap.Cell{}, false
	}
	if w.Grid.CanOccupy(fp.CellsAt(want), id) {
		return want, true
	}
	return w.RingSearch(id, want, config.TeleportSearchRadius)
}

// RingSearch walks square rings of radius 1..maxRadius around center. Only the ring's
// perimeter is checked at each radius; inside a ring the candidate with the smallest
// squared distance wins, ties broken row-major.
func (w *World) RingSearch(id types.EntityID, center gridmap.Cell, maxRadius int) (gridmap.Cell, bool) {
	fp, ok := w.ECS.Footprints[id]
	if !ok {
		return gridmap.Cell{}, false
	}
	for r := 1; r <= maxRadius; r++ {
		var best gridmap.Cell
		bestDist := -1
		// row-major scan of the ring, so the first of equal distances is kept
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(mathutil.Abs(dx), mathutil.Abs(dy)) != r {
					continue
				}
				c := center.Add(dx, dy)
				if !w.Grid.CanOccupy(fp.CellsAt(c), id) {
					continue
				}
				d := dx*dx + dy*dy
				if bestDist < 0 || d < bestDist {
					best, bestDist = c, d
				}
			}
		}
		if bestDist >= 0 {
			return best, true
		}
	}
	return gridmap.Cell{}, false
}

func framesOr(frames, fallback int) int {
	if frames > 0 {
		return frames
	}
	return fallback
}
