// internal/defs/units.go
package defs

import (
	"time"

	"go-grid-battle/internal/component"
	"go-grid-battle/pkg/gridmap"
)

// UnitDefinition holds all the static data for one kind of unit. Definitions are
// templates: placing a unit copies them into components and never writes back.
type UnitDefinition struct {
	ID         string                 `yaml:"id"`
	Name       string                 `yaml:"name"`
	Health     int                    `yaml:"health"`
	Footprint  FootprintDef           `yaml:"footprint"`
	MoveSpeed  float64                `yaml:"move_speed"` // клеток в секунду
	Combat     *CombatDef             `yaml:"combat,omitempty"`
	Aura       *AuraDef               `yaml:"aura,omitempty"`
	Teleport   *TeleportDef           `yaml:"teleport,omitempty"`
	Priorities []component.ActionKind `yaml:"priorities,omitempty"`
	Visuals    Visuals                `yaml:"visuals"`
}

// FootprintDef is the W×H size and the direction the footprint grows from its anchor.
type FootprintDef struct {
	Width     int               `yaml:"width"`
	Height    int               `yaml:"height"`
	Expansion gridmap.Expansion `yaml:"expansion"`
}

// CombatDef contains parameters related to a unit's attack.
type CombatDef struct {
	Damage       int           `yaml:"damage"`
	AttackSpeed  time.Duration `yaml:"attack_speed"` // cooldown between swings, e.g. "800ms"
	Range        int           `yaml:"range"`
	AttackFrames int           `yaml:"attack_frames,omitempty"`
	Vampirism    float64       `yaml:"vampirism,omitempty"`
	Ranged       *RangedDef    `yaml:"ranged,omitempty"`
	Area         *AreaDef      `yaml:"area,omitempty"`
}

// RangedDef makes a unit a shooter. Ammo 0 means unlimited shots.
type RangedDef struct {
	MinRange int `yaml:"min_range"`
	MaxRange int `yaml:"max_range"`
	Ammo     int `yaml:"ammo,omitempty"`
}

// AreaDef describes the splash of a melee hit.
type AreaDef struct {
	Pattern    component.AreaPattern `yaml:"pattern"`
	Depth      int                   `yaml:"depth,omitempty"`
	Spread     int                   `yaml:"spread,omitempty"`
	Multiplier float64               `yaml:"multiplier"`
	Offsets    [][2]int              `yaml:"offsets,omitempty"` // [col, row] relative to the target
}

// AuraDef defines the support pulse of a unit.
type AuraDef struct {
	Range       float64       `yaml:"range"`
	HealAmount  int           `yaml:"heal"`
	AmmoRestore int           `yaml:"ammo_restore,omitempty"`
	IncludeSelf bool          `yaml:"include_self,omitempty"`
	Cooldown    time.Duration `yaml:"cooldown"`
}

// TeleportDef enables the teleport action. Zero frames fall back to the defaults.
type TeleportDef struct {
	StartFrames int `yaml:"start_frames,omitempty"`
	EndFrames   int `yaml:"end_frames,omitempty"`
}

// Visuals are read by the viewer only.
type Visuals struct {
	Color string `yaml:"color,omitempty"` // hex, e.g. "#c04040"
}

// AreaAttack converts the definition into the component form.
func (a *AreaDef) AreaAttack() *component.AreaAttack {
	if a == nil {
		return nil
	}
	area := &component.AreaAttack{
		Pattern:    a.Pattern,
		Depth:      a.Depth,
		Spread:     a.Spread,
		Multiplier: a.Multiplier,
	}
	for _, off := range a.Offsets {
		area.Offsets = append(area.Offsets, gridmap.Cell{Col: off[0], Row: off[1]})
	}
	return area
}
