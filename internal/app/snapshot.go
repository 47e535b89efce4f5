// internal/app/snapshot.go
package app

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"go-grid-battle/internal/component"
	"go-grid-battle/internal/types"
)

// UnitState is the externally visible state of one living unit.
type UnitState struct {
	ID          types.EntityID `json:"id"`
	Def         string         `json:"def"`
	Team        string         `json:"team"`
	Col         int            `json:"col"`
	Row         int            `json:"row"`
	Health      int            `json:"health"`
	MaxHealth   int            `json:"max_health"`
	CooldownMS  int64          `json:"cooldown_ms"`
	IsAttacking bool           `json:"is_attacking"`
	Target      types.EntityID `json:"target"`
	LookX       int            `json:"look_x"`
	LookY       int            `json:"look_y"`
	Teleport    string         `json:"teleport"`
	Ammo        int            `json:"ammo"` // -1 means unlimited
}

// ProjectileState is a shot still in the air.
type ProjectileState struct {
	ID         types.EntityID `json:"id"`
	Attacker   types.EntityID `json:"attacker"`
	Target     types.EntityID `json:"target"`
	Damage     int            `json:"damage"`
	FramesLeft int            `json:"frames_left"`
}

// Snapshot is the checkpoint a persistence or network collaborator reads.
type Snapshot struct {
	BattleID    string            `json:"battle_id"`
	Tick        uint64            `json:"tick"`
	Units       []UnitState       `json:"units"`
	Projectiles []ProjectileState `json:"projectiles"`
}

// Snapshot lists the living units and flying projectiles, ascending by id.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		BattleID: g.ID.String(),
		Tick:     g.Tick(),
		Units:    []UnitState{},
	}
	for _, id := range g.ECS.LivingUnits() {
		snap.Units = append(snap.Units, g.unitState(id))
	}
	for _, id := range g.ECS.ProjectileIDs() {
		p := g.ECS.Projectiles[id]
		snap.Projectiles = append(snap.Projectiles, ProjectileState{
			ID:         id,
			Attacker:   p.Attacker,
			Target:     p.Target,
			Damage:     p.Damage,
			FramesLeft: p.FramesLeft,
		})
	}
	return snap
}

func (g *Game) unitState(id types.EntityID) UnitState {
	ecs := g.ECS
	fp := ecs.Footprints[id]
	health := ecs.Healths[id]
	st := UnitState{
		ID:        id,
		Def:       ecs.DefIDs[id],
		Team:      ecs.TeamOf(id),
		Col:       fp.Col,
		Row:       fp.Row,
		Health:    health.Value,
		MaxHealth: health.Max,
		Teleport:  component.TeleportIdle.String(),
		Ammo:      -1,
	}
	if c, ok := ecs.Combats[id]; ok {
		st.CooldownMS = c.Cooldown.Milliseconds()
		st.IsAttacking = c.IsAttacking
		st.Target = c.Target
		st.LookX, st.LookY = c.Look.DX, c.Look.DY
	}
	if tp, ok := ecs.Teleports[id]; ok {
		st.Teleport = tp.State().String()
	}
	if ammo, ok := ecs.Ammos[id]; ok {
		st.Ammo = ammo.Remaining
	}
	return st
}

// Digest hashes the snapshot with BLAKE2b-256. The battle id is left out, so two
// clients running the same battle get the same digest exactly when their states agree.
func (s Snapshot) Digest() string {
	buf := make([]byte, 0, 64+len(s.Units)*64)
	buf = binary.BigEndian.AppendUint64(buf, s.Tick)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(s.Units)))
	for _, u := range s.Units {
		buf = binary.BigEndian.AppendUint64(buf, uint64(u.ID))
		buf = appendString(buf, u.Def)
		buf = appendString(buf, u.Team)
		for _, v := range []int64{
			int64(u.Col), int64(u.Row), int64(u.Health), int64(u.MaxHealth),
			u.CooldownMS, int64(u.Target), int64(u.LookX), int64(u.LookY), int64(u.Ammo),
		} {
			buf = binary.BigEndian.AppendUint64(buf, uint64(v))
		}
		buf = appendBool(buf, u.IsAttacking)
		buf = appendString(buf, u.Teleport)
	}
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(s.Projectiles)))
	for _, p := range s.Projectiles {
		for _, v := range []uint64{uint64(p.ID), uint64(p.Attacker), uint64(p.Target), uint64(int64(p.Damage)), uint64(int64(p.FramesLeft))} {
			buf = binary.BigEndian.AppendUint64(buf, v)
		}
	}
	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:])
}

// Digest is a shortcut for g.Snapshot().Digest().
func (g *Game) Digest() string {
	return g.Snapshot().Digest()
}

func appendString(buf []byte, s string) []byte {
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}

func appendBool(buf []byte, b bool) []byte {
	if b {
		return append(buf, 1)
	}
	return append(buf, 0)
}
