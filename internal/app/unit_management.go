// internal/app/unit_management.go
package app

import (
	"fmt"
	"time"

	"go-grid-battle/internal/component"
	"go-grid-battle/internal/config"
	"go-grid-battle/internal/defs"
	"go-grid-battle/internal/event"
	"go-grid-battle/internal/types"
	"go-grid-battle/pkg/gridmap"
)

// PlaceUnit creates a unit of definition defID for team with its anchor at (col, row).
// Nothing changes when the footprint leaves the grid or overlaps another unit.
func (g *Game) PlaceUnit(defID, team string, col, row int) (types.EntityID, error) {
	def, ok := g.Library[defID]
	if !ok {
		return types.None, fmt.Errorf("place %q: %w", defID, ErrUnknownUnit)
	}
	anchor := gridmap.Cell{Col: col, Row: row}
	cells := gridmap.FootprintCells(anchor, def.Footprint.Width, def.Footprint.Height, def.Footprint.Expansion)
	for _, c := range cells {
		if !g.Grid.InBounds(c) {
			return types.None, fmt.Errorf("place %q at %s: cell %s: %w", defID, anchor, c, ErrOutOfBounds)
		}
	}
	if !g.Grid.CanOccupy(cells, types.None) {
		return types.None, fmt.Errorf("place %q at %s: %w", defID, anchor, ErrCellsOccupied)
	}

	id := g.createUnitEntity(def, team, anchor)
	if !g.Grid.Place(id, cells) {
		// CanOccupy above makes this unreachable; keep the arena consistent anyway
		g.ECS.RemoveEntity(id)
		return types.None, fmt.Errorf("place %q at %s: %w", defID, anchor, ErrCellsOccupied)
	}
	g.Scheduler.World().SyncPosition(id)
	g.Logger.Debug("unit placed", "unit", id, "def", defID, "team", team, "anchor", anchor.String())
	return id, nil
}

// createUnitEntity copies the definition into fresh components.
func (g *Game) createUnitEntity(def defs.UnitDefinition, team string, anchor gridmap.Cell) types.EntityID {
	ecs := g.ECS
	id := ecs.NewEntity()

	ecs.Footprints[id] = &component.Footprint{
		Col:       anchor.Col,
		Row:       anchor.Row,
		Width:     def.Footprint.Width,
		Height:    def.Footprint.Height,
		Expansion: def.Footprint.Expansion,
	}
	ecs.Positions[id] = &component.Position{}
	ecs.Healths[id] = &component.Health{Value: def.Health, Max: def.Health}
	ecs.Teams[id] = &component.Team{Name: team}
	ecs.DefIDs[id] = def.ID
	ecs.Animators[id] = &component.Animator{Clip: component.ClipIdle, Frames: 1}

	speed := def.MoveSpeed
	if speed <= 0 {
		speed = config.DefaultMoveSpeed
	}
	ecs.Movements[id] = &component.Movement{StepDuration: stepDuration(speed)}

	if c := def.Combat; c != nil {
		combat := &component.Combat{
			Damage:       c.Damage,
			AttackSpeed:  c.AttackSpeed,
			Range:        c.Range,
			AttackFrames: c.AttackFrames,
			Area:         c.Area.AreaAttack(),
			Vampirism:    c.Vampirism,
		}
		if r := c.Ranged; r != nil {
			combat.IsRanged = true
			combat.MinRange = r.MinRange
			combat.MaxRange = r.MaxRange
			if r.Ammo > 0 {
				ecs.Ammos[id] = &component.Ammo{Remaining: r.Ammo, Max: r.Ammo}
			}
		}
		ecs.Combats[id] = combat
	}
	if a := def.Aura; a != nil {
		ecs.Auras[id] = &component.Aura{
			Range:       a.Range,
			HealAmount:  a.HealAmount,
			AmmoRestore: a.AmmoRestore,
			IncludeSelf: a.IncludeSelf,
			Cooldown:    a.Cooldown,
		}
	}
	if t := def.Teleport; t != nil {
		ecs.Teleports[id] = &component.Teleport{StartFrames: t.StartFrames, EndFrames: t.EndFrames}
	}

	priorities := def.Priorities
	if len(priorities) == 0 {
		priorities = component.DefaultPriorities
	}
	behavior := &component.Behavior{Default: append([]component.ActionKind(nil), priorities...)}
	behavior.Restore()
	ecs.Behaviors[id] = behavior

	return id
}

// stepDuration converts cells per second into the time one cell takes, rounded to the
// millisecond so every platform agrees.
func stepDuration(cellsPerSecond float64) time.Duration {
	ms := int64(1000/cellsPerSecond + 0.5)
	return time.Duration(max(ms, 1)) * time.Millisecond
}

// KillUnit removes a unit from play through the normal death path. Used by external
// collaborators (round end, debug).
func (g *Game) KillUnit(id types.EntityID) error {
	if !g.ECS.IsAlive(id) {
		return fmt.Errorf("kill unit %d: %w", id, ErrUnitDead)
	}
	g.Scheduler.World().Kill(id, types.None)
	return nil
}

// OnAoe subscribes fn to computed area patterns. The returned subscription detaches it.
func (g *Game) OnAoe(fn func(event.AoeData)) event.Subscription {
	return g.EventDispatcher.Subscribe(event.AoePatternComputed, event.ListenerFunc(func(e event.Event) {
		if data, ok := e.Data.(event.AoeData); ok {
			fn(data)
		}
	}))
}
