// internal/component/teleport.go
package component

import (
	"errors"
	"fmt"

	"go-grid-battle/pkg/gridmap"
)

// TeleportState - состояние протокола телепортации.
type TeleportState int

const (
	TeleportIdle TeleportState = iota
	TeleportStartAnimation
	Teleporting
	TeleportEndAnimation
)

func (s TeleportState) String() string {
	switch s {
	case TeleportIdle:
		return "idle"
	case TeleportStartAnimation:
		return "start_animation"
	case Teleporting:
		return "teleporting"
	case TeleportEndAnimation:
		return "end_animation"
	}
	return fmt.Sprintf("TeleportState(%d)", int(s))
}

// TeleportEvent drives the teleport state machine.
type TeleportEvent int

const (
	TeleportBegin          TeleportEvent = iota // idle -> start_animation, sets the target
	TeleportDepartFinished                      // start_animation -> teleporting
	TeleportRelocated                           // teleporting -> end_animation, records the final cell
	TeleportArrived                             // end_animation -> idle
	TeleportCancel                              // any -> idle
)

// ErrIllegalTeleportTransition is returned when an event does not apply to the current state.
var ErrIllegalTeleportTransition = errors.New("illegal teleport transition")

// Teleport keeps its state and target unexported: the only way to change them is
// Transition, so a target can never exist while idle.
type Teleport struct {
	state  TeleportState
	target gridmap.Cell

	// Requested is the externally ordered destination, resolved by the teleport action.
	Requested *gridmap.Cell

	StartFrames int
	EndFrames   int
}

// State returns the current state.
func (t *Teleport) State() TeleportState {
	return t.state
}

// Active reports any state other than idle.
func (t *Teleport) Active() bool {
	return t.state != TeleportIdle
}

// Target returns the destination; ok is false exactly when the state is idle.
func (t *Teleport) Target() (gridmap.Cell, bool) {
	if t.state == TeleportIdle {
		return gridmap.Cell{}, false
	}
	return t.target, true
}

// Transition applies ev. cell is only read by TeleportBegin and TeleportRelocated.
func (t *Teleport) Transition(ev TeleportEvent, cell gridmap.Cell) error {
	next := t.state
	switch {
	case ev == TeleportCancel:
		next = TeleportIdle
	case ev == TeleportBegin && t.state == TeleportIdle:
		next = TeleportStartAnimation
	case ev == TeleportDepartFinished && t.state == TeleportStartAnimation:
		next = Teleporting
	case ev == TeleportRelocated && t.state == Teleporting:
		next = TeleportEndAnimation
	case ev == TeleportArrived && t.state == TeleportEndAnimation:
		next = TeleportIdle
	default:
		return fmt.Errorf("%w: event %d in state %s", ErrIllegalTeleportTransition, ev, t.state)
	}

	switch next {
	case TeleportIdle:
		t.target = gridmap.Cell{}
	case TeleportStartAnimation, TeleportEndAnimation:
		if ev == TeleportBegin || ev == TeleportRelocated {
			t.target = cell
		}
	}
	t.state = next
	return nil
}
