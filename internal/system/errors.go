package system

import "errors"

var (
	ErrOutOfBounds = errors.New("cell out of bounds")
	ErrUnitDead    = errors.New("unit is dead or unknown")
	ErrNoMovement  = errors.New("unit cannot move")
	ErrNoTeleport  = errors.New("unit cannot teleport")
)
