package system

import (
	"log/slog"
	"math"

	"go-grid-battle/internal/component"
	"go-grid-battle/internal/config"
	"go-grid-battle/internal/entity"
	"go-grid-battle/internal/event"
	"go-grid-battle/internal/types"
	"go-grid-battle/pkg/gridmap"
)

// World bundles what every action reads and writes: the unit arena, the occupancy
// grid and the event dispatcher. Only the scheduler's goroutine touches it.
type World struct {
	ECS    *entity.ECS
	Grid   *gridmap.Grid
	Events *event.Dispatcher
	Logger *slog.Logger
	Tick   uint64
}

func NewWorld(ecs *entity.ECS, grid *gridmap.Grid, events *event.Dispatcher, logger *slog.Logger) *World {
	if logger == nil {
		logger = slog.Default()
	}
	return &World{ECS: ecs, Grid: grid, Events: events, Logger: logger}
}

func (w *World) emit(eventType event.EventType, data interface{}) {
	w.Events.Dispatch(event.Event{Type: eventType, Tick: w.Tick, Data: data})
}

// SyncPosition recomputes the world position from the grid footprint.
func (w *World) SyncPosition(id types.EntityID) {
	fp, ok := w.ECS.Footprints[id]
	if !ok {
		return
	}
	pos, ok := w.ECS.Positions[id]
	if !ok {
		pos = &component.Position{}
		w.ECS.Positions[id] = pos
	}
	pos.X, pos.Y = CellToPixel(fp)
}

// CellToPixel returns the center of the footprint's bounding box in screen pixels.
func CellToPixel(fp *component.Footprint) (x, y float64) {
	origin := gridmap.Origin(fp.Anchor(), fp.Width, fp.Height, fp.Expansion)
	x = config.GridOffsetX + (float64(origin.Col)+float64(fp.Width)/2)*config.CellSize
	y = config.GridOffsetY + (float64(origin.Row)+float64(fp.Height)/2)*config.CellSize
	return x, y
}

// Separation returns the closest cell pair between the footprints of a and b.
func (w *World) Separation(a, b types.EntityID) (gridmap.Separation, bool) {
	fa, okA := w.ECS.Footprints[a]
	fb, okB := w.ECS.Footprints[b]
	if !okA || !okB {
		return gridmap.Separation{}, false
	}
	return gridmap.Separate(fa.Cells(), fb.Cells()), true
}

// ApplyDamage наносит урон юниту. Здоровье не опускается ниже нуля; при первом
// падении до нуля юнит погибает.
func (w *World) ApplyDamage(source, target types.EntityID, amount int, splash bool) bool {
	if amount <= 0 || !w.ECS.IsAlive(target) {
		return false
	}
	health := w.ECS.Healths[target]
	health.Value -= amount
	if health.Value < 0 {
		health.Value = 0
	}
	w.emit(event.UnitDamaged, event.DamageData{
		Source: source,
		Target: target,
		Amount: amount,
		Health: health.Value,
		Splash: splash,
	})
	if health.Value <= 0 {
		w.Kill(target, source)
	}
	return true
}

// Heal restores health up to the maximum and returns how much was added.
func (w *World) Heal(id types.EntityID, amount int) int {
	if amount <= 0 || !w.ECS.IsAlive(id) {
		return 0
	}
	health := w.ECS.Healths[id]
	before := health.Value
	health.Value = min(health.Max, health.Value+amount)
	return health.Value - before
}

// Kill moves a unit into its terminal state. Everything transient is cleared and
// its cells are freed; only the death flag remains.
func (w *World) Kill(id, killer types.EntityID) {
	health, ok := w.ECS.Healths[id]
	if !ok || health.IsDead {
		return
	}
	health.IsDead = true

	if fp, ok := w.ECS.Footprints[id]; ok {
		w.Grid.Clear(id, fp.Cells())
	}
	if combat, ok := w.ECS.Combats[id]; ok {
		combat.ResetSwing()
		combat.Cooldown = 0
		combat.Look = component.Direction{}
	}
	if movement, ok := w.ECS.Movements[id]; ok {
		movement.Stop()
		movement.ClearTargets()
	}
	if tp, ok := w.ECS.Teleports[id]; ok {
		_ = tp.Transition(component.TeleportCancel, gridmap.Cell{})
		tp.Requested = nil
	}
	if aura, ok := w.ECS.Auras[id]; ok {
		aura.Remaining = 0
	}
	if behavior, ok := w.ECS.Behaviors[id]; ok {
		behavior.Acted = false
	}
	if anim, ok := w.ECS.Animators[id]; ok {
		anim.Play(component.ClipDeath, config.DeathFrames)
	}

	w.Logger.Debug("unit died", "tick", w.Tick, "unit", id, "killer", killer)
	w.emit(event.UnitDied, event.DeathData{Unit: id, Killer: killer})
}

// scale multiplies and rounds half away from zero. One multiplication, one rounding:
// the result is the same on every platform.
func scale(amount int, factor float64) int {
	return int(math.Round(float64(amount) * factor))
}

func playIdle(ecs *entity.ECS, id types.EntityID) {
	if anim, ok := ecs.Animators[id]; ok {
		anim.Play(component.ClipIdle, 1)
	}
}
