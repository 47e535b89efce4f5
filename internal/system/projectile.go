// internal/system/projectile.go
package system

import (
	"go-grid-battle/internal/component"
	"go-grid-battle/internal/config"
	"go-grid-battle/internal/event"
	"go-grid-battle/internal/types"
	"go-grid-battle/internal/utils"
	"go-grid-battle/pkg/gridmap"
)

// ProjectileSystem ведёт снаряды стрелков. Снаряд принадлежит симуляции: урон
// применяется, когда истекает время полёта, а не когда долетает спрайт.
type ProjectileSystem struct {
	w *World
}

func NewProjectileSystem(w *World) *ProjectileSystem {
	return &ProjectileSystem{w: w}
}

// FlightFrames returns how many animation ticks a shot over cheb cells stays in the air.
func FlightFrames(cheb int) int {
	frames := (cheb + config.ProjectileCellsPerFrame - 1) / config.ProjectileCellsPerFrame
	return max(frames, 1)
}

// SpawnProjectile launches a shot from attacker at target carrying damage.
func (w *World) SpawnProjectile(attacker, target types.EntityID, damage int) types.EntityID {
	from := w.ECS.Footprints[attacker].Anchor()
	to := w.ECS.Footprints[target].Anchor()
	frames := 1
	if sep, ok := w.Separation(attacker, target); ok {
		frames = FlightFrames(sep.Chebyshev)
	}

	id := w.ECS.NewEntity()
	w.ECS.Projectiles[id] = &component.Projectile{
		Attacker:   attacker,
		Target:     target,
		Damage:     damage,
		From:       from,
		To:         to,
		Frames:     frames,
		FramesLeft: frames,
		SpawnTick:  w.Tick,
	}
	x, y := cellCenter(from)
	w.ECS.Positions[id] = &component.Position{X: x, Y: y}

	w.emit(event.ProjectileSpawned, event.ProjectileData{
		Projectile: id,
		Attacker:   attacker,
		Target:     target,
		From:       from,
		To:         to,
	})
	return id
}

// Update advances every projectile one frame, ascending by id. Shots fired during the
// current tick wait for the next animation tick.
func (s *ProjectileSystem) Update() {
	ecs := s.w.ECS
	for _, id := range ecs.ProjectileIDs() {
		proj := ecs.Projectiles[id]
		if proj.SpawnTick == s.w.Tick {
			continue
		}
		proj.FramesLeft--
		if proj.FramesLeft > 0 {
			s.interpolate(id, proj)
			continue
		}
		s.land(id, proj)
	}
}

func (s *ProjectileSystem) land(id types.EntityID, proj *component.Projectile) {
	s.w.ECS.RemoveEntity(id)
	data := event.ProjectileData{
		Projectile: id,
		Attacker:   proj.Attacker,
		Target:     proj.Target,
		From:       proj.From,
		To:         proj.To,
	}
	if !s.w.ECS.IsAlive(proj.Target) {
		// цель погибла, пока снаряд летел
		s.w.emit(event.ProjectileFizzled, data)
		return
	}
	s.w.emit(event.ProjectileLanded, data)
	s.w.ApplyDamage(proj.Attacker, proj.Target, proj.Damage, false)
}

func (s *ProjectileSystem) interpolate(id types.EntityID, proj *component.Projectile) {
	pos, ok := s.w.ECS.Positions[id]
	if !ok || proj.Frames <= 0 {
		return
	}
	t := float64(proj.Frames-proj.FramesLeft) / float64(proj.Frames)
	fx, fy := cellCenter(proj.From)
	tx, ty := cellCenter(proj.To)
	pos.X = utils.Lerp(fx, tx, t)
	pos.Y = utils.Lerp(fy, ty, t)
}

func cellCenter(c gridmap.Cell) (x, y float64) {
	x = config.GridOffsetX + (float64(c.Col)+0.5)*config.CellSize
	y = config.GridOffsetY + (float64(c.Row)+0.5)*config.CellSize
	return x, y
}
