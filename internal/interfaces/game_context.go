// internal/interfaces/game_context.go
package interfaces

import "go-grid-battle/internal/types"

// UnitController is what UI widgets may do to a unit. The scheduler implements it;
// widgets never touch components directly.
type UnitController interface {
	CancelMovement(id types.EntityID)
	CancelTeleport(id types.EntityID)
}
