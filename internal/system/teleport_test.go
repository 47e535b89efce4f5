package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-grid-battle/internal/component"
	"go-grid-battle/internal/event"
	"go-grid-battle/pkg/gridmap"
)

func TestTeleportRoundTrip(t *testing.T) {
	b := newBattlefield(t, 10, 10)
	id := b.addUnit("A", 2, 2)
	b.ecs.Teleports[id] = &component.Teleport{StartFrames: 1, EndFrames: 1}
	b.ecs.Combats[id] = &component.Combat{Damage: 5, Range: 1, Look: component.Direction{DX: 1}}

	far := gridmap.Cell{Col: 8, Row: 8}
	require.NoError(t, b.sched.RequestTeleport(id, far))

	b.step(3)
	assert.Equal(t, far, b.anchor(id))
	assert.Equal(t, component.TeleportEndAnimation, b.ecs.Teleports[id].State())
	occupant, _ := b.grid.OccupantAt(far)
	assert.Equal(t, id, occupant)
	assert.False(t, b.grid.IsOccupied(gridmap.Cell{Col: 2, Row: 2}))

	b.step(3)
	assert.Equal(t, component.TeleportIdle, b.ecs.Teleports[id].State())
	assert.True(t, b.ecs.Combats[id].Look.IsZero(), "arrival resets the look direction")
	done := b.eventsOf(event.TeleportCompleted)
	require.Len(t, done, 1)
	assert.Equal(t, event.TeleportData{Unit: id, To: far}, done[0].Data)

	home := gridmap.Cell{Col: 2, Row: 2}
	require.NoError(t, b.sched.RequestTeleport(id, home))
	b.step(6)
	assert.Equal(t, home, b.anchor(id))
	assert.Len(t, b.eventsOf(event.TeleportCompleted), 2)
	assert.Equal(t, 1, b.grid.OccupiedCount())
}

func TestTeleportLandsNextToOccupiedCell(t *testing.T) {
	b := newBattlefield(t, 10, 10)
	id := b.addUnit("A", 0, 0)
	b.ecs.Teleports[id] = &component.Teleport{StartFrames: 1, EndFrames: 1}
	b.addUnit("A", 8, 8)

	require.NoError(t, b.sched.RequestTeleport(id, gridmap.Cell{Col: 8, Row: 8}))
	b.step(6)

	// кольцо радиуса 1: ближайшая свободная клетка, первая в построчном обходе
	assert.Equal(t, gridmap.Cell{Col: 8, Row: 7}, b.anchor(id))
	done := b.eventsOf(event.TeleportCompleted)
	require.Len(t, done, 1)
	assert.Equal(t, gridmap.Cell{Col: 8, Row: 7}, done[0].Data.(event.TeleportData).To)
}

func TestRingSearch(t *testing.T) {
	b := newBattlefield(t, 10, 10)
	id := b.addUnit("A", 0, 0)
	w := b.world()

	b.addUnit("A", 8, 8)
	b.addUnit("A", 8, 7)
	cell, ok := w.RingSearch(id, gridmap.Cell{Col: 8, Row: 8}, 5)
	require.True(t, ok)
	assert.Equal(t, gridmap.Cell{Col: 7, Row: 8}, cell)

	center := gridmap.Cell{Col: 5, Row: 5}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			b.addUnit("A", center.Col+dx, center.Row+dy)
		}
	}
	_, ok = w.RingSearch(id, center, 1)
	assert.False(t, ok, "only the perimeter of each ring is searched")

	cell, ok = w.RingSearch(id, center, 2)
	require.True(t, ok)
	assert.Equal(t, gridmap.Cell{Col: 5, Row: 3}, cell)
}

func TestTeleportRequestDroppedWhenNothingFree(t *testing.T) {
	// собственная клетка дальше радиуса поиска
	b := newBattlefield(t, 7, 1)
	id := b.addUnit("A", 0, 0)
	b.ecs.Teleports[id] = &component.Teleport{}
	for col := 1; col < 7; col++ {
		b.addUnit("A", col, 0)
	}

	require.NoError(t, b.sched.RequestTeleport(id, gridmap.Cell{Col: 6, Row: 0}))
	b.step(3)
	assert.Nil(t, b.ecs.Teleports[id].Requested)
	assert.False(t, b.ecs.Teleports[id].Active())
	assert.Equal(t, gridmap.Cell{Col: 0, Row: 0}, b.anchor(id))
}

func TestCancelTeleportDuringStartAnimation(t *testing.T) {
	b := newBattlefield(t, 10, 10)
	id := b.addUnit("A", 1, 1)
	b.ecs.Teleports[id] = &component.Teleport{StartFrames: 3, EndFrames: 3}

	require.NoError(t, b.sched.RequestTeleport(id, gridmap.Cell{Col: 7, Row: 7}))
	b.step(3)
	require.Equal(t, component.TeleportStartAnimation, b.ecs.Teleports[id].State())

	b.sched.CancelTeleport(id)
	b.step(9)
	assert.Equal(t, component.TeleportIdle, b.ecs.Teleports[id].State())
	assert.Equal(t, gridmap.Cell{Col: 1, Row: 1}, b.anchor(id))
	assert.Empty(t, b.eventsOf(event.TeleportCompleted))
}

func TestRequestTeleportErrors(t *testing.T) {
	b := newBattlefield(t, 4, 4)
	walker := b.addUnit("A", 0, 0)
	assert.ErrorIs(t, b.sched.RequestTeleport(walker, gridmap.Cell{Col: 2, Row: 2}), ErrNoTeleport)

	b.ecs.Teleports[walker] = &component.Teleport{}
	assert.ErrorIs(t, b.sched.RequestTeleport(walker, gridmap.Cell{Col: 9, Row: 2}), ErrOutOfBounds)

	b.world().Kill(walker, 0)
	assert.ErrorIs(t, b.sched.RequestTeleport(walker, gridmap.Cell{Col: 2, Row: 2}), ErrUnitDead)
}
