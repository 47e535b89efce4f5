package system

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-grid-battle/internal/component"
	"go-grid-battle/internal/config"
	"go-grid-battle/internal/entity"
	"go-grid-battle/internal/event"
	"go-grid-battle/internal/types"
	"go-grid-battle/pkg/gridmap"
)

// battlefield is a scheduler over a fresh grid that records every event it emits.
type battlefield struct {
	t      *testing.T
	ecs    *entity.ECS
	grid   *gridmap.Grid
	events *event.Dispatcher
	sched  *Scheduler
	log    []event.Event
}

func newBattlefield(t *testing.T, width, height int) *battlefield {
	t.Helper()
	b := &battlefield{
		t:      t,
		ecs:    entity.NewECS(),
		grid:   gridmap.NewGrid(width, height),
		events: event.NewDispatcher(),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	b.sched = NewScheduler(b.ecs, b.grid, b.events, logger)

	record := event.ListenerFunc(func(e event.Event) { b.log = append(b.log, e) })
	for _, et := range []event.EventType{
		event.UnitDamaged, event.UnitDied, event.SwingStarted, event.SwingAborted,
		event.AoePatternComputed, event.ProjectileSpawned, event.ProjectileLanded,
		event.ProjectileFizzled, event.AuraPulsed, event.TeleportCompleted, event.GroupMoveCompleted,
	} {
		b.events.Subscribe(et, record)
	}
	return b
}

func (b *battlefield) world() *World { return b.sched.World() }

// addUnit places a 1x1 unit with 100 health and no combat.
func (b *battlefield) addUnit(team string, col, row int) types.EntityID {
	b.t.Helper()
	id := b.ecs.NewEntity()
	b.ecs.Footprints[id] = &component.Footprint{Col: col, Row: row, Width: 1, Height: 1}
	b.ecs.Positions[id] = &component.Position{}
	b.ecs.Healths[id] = &component.Health{Value: 100, Max: 100}
	b.ecs.Teams[id] = &component.Team{Name: team}
	b.ecs.Movements[id] = &component.Movement{StepDuration: config.StepDuration}
	b.ecs.Animators[id] = &component.Animator{Clip: component.ClipIdle, Frames: 1}
	behavior := &component.Behavior{Default: append([]component.ActionKind(nil), component.DefaultPriorities...)}
	behavior.Restore()
	b.ecs.Behaviors[id] = behavior
	require.True(b.t, b.grid.Place(id, b.ecs.Footprints[id].Cells()))
	return id
}

func (b *battlefield) addMelee(team string, col, row, damage int) types.EntityID {
	id := b.addUnit(team, col, row)
	b.ecs.Combats[id] = &component.Combat{
		Damage:       damage,
		AttackSpeed:  500 * time.Millisecond,
		Range:        1,
		AttackFrames: 1,
	}
	return id
}

func (b *battlefield) step(n int) {
	for i := 0; i < n; i++ {
		b.sched.Update(config.StepDuration)
	}
}

func (b *battlefield) anchor(id types.EntityID) gridmap.Cell {
	return b.ecs.Footprints[id].Anchor()
}

func (b *battlefield) eventsOf(et event.EventType) []event.Event {
	var out []event.Event
	for _, e := range b.log {
		if e.Type == et {
			out = append(out, e)
		}
	}
	return out
}
