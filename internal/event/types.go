// internal/event/types.go
package event

import (
	"go-grid-battle/internal/types"
	"go-grid-battle/pkg/gridmap"
)

const (
	UnitDamaged        EventType = "UnitDamaged"
	UnitDied           EventType = "UnitDied"
	SwingStarted       EventType = "SwingStarted"
	SwingAborted       EventType = "SwingAborted"       // цель пропала во время замаха
	AoePatternComputed EventType = "AoePatternComputed" // наблюдатель для отладочного оверлея
	ProjectileSpawned  EventType = "ProjectileSpawned"
	ProjectileLanded   EventType = "ProjectileLanded"
	ProjectileFizzled  EventType = "ProjectileFizzled"
	AuraPulsed         EventType = "AuraPulsed"
	TeleportCompleted  EventType = "TeleportCompleted"
	GroupMoveCompleted EventType = "GroupMoveCompleted"
)

// DamageData is carried by UnitDamaged.
type DamageData struct {
	Source types.EntityID
	Target types.EntityID
	Amount int
	Health int
	Splash bool
}

// DeathData is carried by UnitDied.
type DeathData struct {
	Unit   types.EntityID
	Killer types.EntityID
}

// SwingData is carried by SwingStarted and SwingAborted.
type SwingData struct {
	Attacker types.EntityID
	Target   types.EntityID
	Ranged   bool
}

// AoeData is carried by AoePatternComputed.
type AoeData struct {
	Attacker types.EntityID
	Target   types.EntityID
	Cells    []gridmap.Cell
	Hit      []types.EntityID
}

// ProjectileData is carried by the projectile events.
type ProjectileData struct {
	Projectile types.EntityID
	Attacker   types.EntityID
	Target     types.EntityID
	From, To   gridmap.Cell
}

// AuraData is carried by AuraPulsed.
type AuraData struct {
	Source    types.EntityID
	Supported []types.EntityID
}

// TeleportData is carried by TeleportCompleted.
type TeleportData struct {
	Unit types.EntityID
	To   gridmap.Cell
}

// GroupMoveData is carried by GroupMoveCompleted.
type GroupMoveData struct {
	Unit    types.EntityID
	GroupID int
	Cell    gridmap.Cell
}
