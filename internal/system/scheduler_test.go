package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-grid-battle/internal/component"
	"go-grid-battle/pkg/gridmap"
)

func TestIsAnimationTick(t *testing.T) {
	assert.False(t, IsAnimationTick(1))
	assert.False(t, IsAnimationTick(2))
	assert.True(t, IsAnimationTick(3))
	assert.True(t, IsAnimationTick(6))
}

func TestPauseFreezesActionsButNotCooldowns(t *testing.T) {
	b := newBattlefield(t, 6, 6)
	id := b.addMelee("A", 0, 0, 10)
	b.ecs.Combats[id].Cooldown = 100 * time.Millisecond
	b.addUnit("B", 4, 0)

	b.sched.SetPaused(true)
	b.step(3)
	assert.Equal(t, uint64(3), b.sched.Tick())
	assert.Equal(t, 16*time.Millisecond, b.ecs.Combats[id].Cooldown)
	assert.Equal(t, gridmap.Cell{Col: 0, Row: 0}, b.anchor(id))
	assert.False(t, b.ecs.Behaviors[id].Acted)

	b.sched.SetPaused(false)
	b.step(3)
	assert.Zero(t, b.ecs.Combats[id].Cooldown)
	assert.NotEqual(t, gridmap.Cell{Col: 0, Row: 0}, b.anchor(id))
	assert.Equal(t, component.ActionMove, b.ecs.Behaviors[id].Last)
}

func TestPriorityOrderPicksFirstAvailable(t *testing.T) {
	b := newBattlefield(t, 6, 6)
	cleric := b.addMelee("A", 0, 0, 5)
	b.ecs.Auras[cleric] = &component.Aura{Range: 3, HealAmount: 10, Cooldown: time.Second}
	wounded := b.addUnit("A", 0, 1)
	b.ecs.Healths[wounded].Value = 40
	b.addUnit("B", 1, 0)

	// атака стоит раньше ауры
	b.step(3)
	assert.Equal(t, component.ActionAttack, b.ecs.Behaviors[cleric].Last)
	assert.Equal(t, 40, b.ecs.Healths[wounded].Value)

	b.ecs.Behaviors[cleric].Current = []component.ActionKind{component.ActionAura, component.ActionAttack}
	b.step(3)
	assert.Equal(t, component.ActionAura, b.ecs.Behaviors[cleric].Last)
	assert.Equal(t, 50, b.ecs.Healths[wounded].Value)
}

func TestResyncGridFollowsFootprints(t *testing.T) {
	b := newBattlefield(t, 6, 6)
	id := b.addUnit("A", 0, 0)
	b.ecs.Footprints[id].SetAnchor(gridmap.Cell{Col: 3, Row: 3})

	b.sched.ResyncGrid()
	assert.False(t, b.grid.IsOccupied(gridmap.Cell{Col: 0, Row: 0}))
	occupant, _ := b.grid.OccupantAt(gridmap.Cell{Col: 3, Row: 3})
	assert.Equal(t, id, occupant)
}
