// component/movement.go
package component

import (
	"time"

	"go-grid-battle/pkg/gridmap"
)

// Position - мировые координаты (пиксели) центра юнита. Только для отрисовки.
type Position struct {
	X, Y float64
}

// Step is a single-cell move delta.
type Step struct {
	DX, DY int
}

// Movement holds the transient movement state of a unit.
type Movement struct {
	Target      *gridmap.Cell // собственная цель движения
	GroupTarget *gridmap.Cell // групповой приказ, важнее Target
	GroupID     int

	IsMoving     bool
	Walking      bool          // last executed action was a move; continues between animation ticks
	StepDuration time.Duration // время на одну клетку
	StepElapsed  time.Duration
	NextStep     *Step // cached by the move precondition, consumed by the step
}

// Destination resolves where the unit wants to go: group order first.
func (m *Movement) Destination() (gridmap.Cell, bool) {
	if m.GroupTarget != nil {
		return *m.GroupTarget, true
	}
	if m.Target != nil {
		return *m.Target, true
	}
	return gridmap.Cell{}, false
}

// Stop cancels any motion in progress and drops the cached step.
func (m *Movement) Stop() {
	m.IsMoving = false
	m.Walking = false
	m.StepElapsed = 0
	m.NextStep = nil
}

// ClearTargets drops every movement target, the group order included.
func (m *Movement) ClearTargets() {
	m.Target = nil
	m.GroupTarget = nil
	m.GroupID = 0
}
