// internal/entity/ecs.go
package entity

import (
	"slices"

	"go-grid-battle/internal/component"
	"go-grid-battle/internal/types"
)

// ECS - арена сущностей: по карте на каждый компонент, ключ: id сущности.
// Ссылки между юнитами хранятся только как id и проверяются при каждом обращении.
type ECS struct {
	NextID      types.EntityID
	Footprints  map[types.EntityID]*component.Footprint
	Positions   map[types.EntityID]*component.Position
	Healths     map[types.EntityID]*component.Health
	Teams       map[types.EntityID]*component.Team
	Combats     map[types.EntityID]*component.Combat
	Movements   map[types.EntityID]*component.Movement
	Teleports   map[types.EntityID]*component.Teleport
	Auras       map[types.EntityID]*component.Aura
	Ammos       map[types.EntityID]*component.Ammo
	Animators   map[types.EntityID]*component.Animator
	Behaviors   map[types.EntityID]*component.Behavior
	Projectiles map[types.EntityID]*component.Projectile
	DefIDs      map[types.EntityID]string
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Footprints:  make(map[types.EntityID]*component.Footprint),
		Positions:   make(map[types.EntityID]*component.Position),
		Healths:     make(map[types.EntityID]*component.Health),
		Teams:       make(map[types.EntityID]*component.Team),
		Combats:     make(map[types.EntityID]*component.Combat),
		Movements:   make(map[types.EntityID]*component.Movement),
		Teleports:   make(map[types.EntityID]*component.Teleport),
		Auras:       make(map[types.EntityID]*component.Aura),
		Ammos:       make(map[types.EntityID]*component.Ammo),
		Animators:   make(map[types.EntityID]*component.Animator),
		Behaviors:   make(map[types.EntityID]*component.Behavior),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		DefIDs:      make(map[types.EntityID]string),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity drops every component of id.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Footprints, id)
	delete(ecs.Positions, id)
	delete(ecs.Healths, id)
	delete(ecs.Teams, id)
	delete(ecs.Combats, id)
	delete(ecs.Movements, id)
	delete(ecs.Teleports, id)
	delete(ecs.Auras, id)
	delete(ecs.Ammos, id)
	delete(ecs.Animators, id)
	delete(ecs.Behaviors, id)
	delete(ecs.Projectiles, id)
	delete(ecs.DefIDs, id)
}

// IsUnit reports whether id carries the components every unit has.
func (ecs *ECS) IsUnit(id types.EntityID) bool {
	_, hasHealth := ecs.Healths[id]
	_, hasFootprint := ecs.Footprints[id]
	return hasHealth && hasFootprint
}

// IsAlive reports whether id is a unit that has not died.
func (ecs *ECS) IsAlive(id types.EntityID) bool {
	if id == types.None || !ecs.IsUnit(id) {
		return false
	}
	return !ecs.Healths[id].IsDead
}

// LivingUnits returns every living unit id in ascending order. Map iteration order is
// random in Go, so anything that must be reproducible goes through this.
func (ecs *ECS) LivingUnits() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Healths))
	for id, health := range ecs.Healths {
		if health.IsDead {
			continue
		}
		if _, ok := ecs.Footprints[id]; !ok {
			continue
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// ProjectileIDs returns every projectile id in ascending order.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Projectiles))
	for id := range ecs.Projectiles {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// TeamOf returns the team name of id, or "" if it has none.
func (ecs *ECS) TeamOf(id types.EntityID) string {
	if team, ok := ecs.Teams[id]; ok {
		return team.Name
	}
	return ""
}

// Hostile reports whether a and b are on different, non-empty teams.
func (ecs *ECS) Hostile(a, b types.EntityID) bool {
	ta, tb := ecs.TeamOf(a), ecs.TeamOf(b)
	return ta != "" && tb != "" && ta != tb
}

// Allied reports whether a and b share a non-empty team.
func (ecs *ECS) Allied(a, b types.EntityID) bool {
	ta := ecs.TeamOf(a)
	return ta != "" && ta == ecs.TeamOf(b)
}
