package app

import (
	"errors"

	"go-grid-battle/internal/system"
)

// Ошибки границы: размещение и внешние приказы. Внутри тика ошибок нет.
var (
	ErrOutOfBounds   = system.ErrOutOfBounds
	ErrUnitDead      = system.ErrUnitDead
	ErrCellsOccupied = errors.New("cells occupied")
	ErrUnknownUnit   = errors.New("unknown unit definition")
)
