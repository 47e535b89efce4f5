package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-grid-battle/internal/component"
	"go-grid-battle/internal/event"
	"go-grid-battle/internal/types"
	"go-grid-battle/pkg/gridmap"
)

func TestLowerIDStrikesFirst(t *testing.T) {
	b := newBattlefield(t, 10, 10)
	first := b.addMelee("A", 0, 0, 10)
	second := b.addMelee("B", 1, 0, 10)

	b.step(2)
	assert.Empty(t, b.eventsOf(event.UnitDamaged), "no action before the first animation tick")

	b.step(1)
	hits := b.eventsOf(event.UnitDamaged)
	require.Len(t, hits, 2)
	assert.Equal(t, event.DamageData{Source: first, Target: second, Amount: 10, Health: 90}, hits[0].Data)
	assert.Equal(t, event.DamageData{Source: second, Target: first, Amount: 10, Health: 90}, hits[1].Data)
	assert.Equal(t, uint64(3), hits[0].Tick)
}

func TestLethalHitClearsVictimSameTick(t *testing.T) {
	b := newBattlefield(t, 10, 10)
	killer := b.addMelee("A", 0, 0, 10)
	victim := b.addMelee("B", 1, 0, 10)
	b.ecs.Healths[victim].Value = 10

	moveTo := gridmap.Cell{Col: 6, Row: 6}
	b.ecs.Movements[victim].Target = &moveTo
	tpTo := gridmap.Cell{Col: 5, Row: 5}
	b.ecs.Teleports[victim] = &component.Teleport{Requested: &tpTo}

	b.step(3)

	health := b.ecs.Healths[victim]
	assert.True(t, health.IsDead)
	assert.Zero(t, health.Value)
	assert.Equal(t, types.None, b.ecs.Combats[victim].Target)
	assert.Nil(t, b.ecs.Movements[victim].Target)
	assert.Nil(t, b.ecs.Teleports[victim].Requested)
	assert.False(t, b.ecs.Teleports[victim].Active())
	assert.False(t, b.ecs.Behaviors[victim].Acted, "a dead unit takes no action on the tick it dies")
	assert.False(t, b.grid.IsOccupied(gridmap.Cell{Col: 1, Row: 0}))

	assert.Equal(t, 100, b.ecs.Healths[killer].Value)
	deaths := b.eventsOf(event.UnitDied)
	require.Len(t, deaths, 1)
	assert.Equal(t, event.DeathData{Unit: victim, Killer: killer}, deaths[0].Data)
}

func TestHealthClampsAtZero(t *testing.T) {
	b := newBattlefield(t, 4, 4)
	victim := b.addUnit("B", 0, 0)
	w := b.world()

	assert.True(t, w.ApplyDamage(types.None, victim, 250, false))
	assert.Zero(t, b.ecs.Healths[victim].Value)
	assert.False(t, w.ApplyDamage(types.None, victim, 10, false), "dead units take no damage")
	assert.Len(t, b.eventsOf(event.UnitDied), 1)
}

func TestCooldownHoldsBetweenSwings(t *testing.T) {
	b := newBattlefield(t, 10, 10)
	a := b.addMelee("A", 0, 0, 10)
	c := b.addMelee("B", 1, 0, 10)

	// 500ms перезарядки = 18 шагов по 28ms после удара на тике 3
	b.step(20)
	assert.Len(t, b.eventsOf(event.UnitDamaged), 2)
	assert.Equal(t, b.anchor(a), gridmap.Cell{Col: 0, Row: 0}, "a unit on cooldown holds its ground")

	b.step(1)
	assert.Len(t, b.eventsOf(event.UnitDamaged), 4)
	assert.Equal(t, 80, b.ecs.Healths[a].Value)
	assert.Equal(t, 80, b.ecs.Healths[c].Value)
}

func TestVampirismHealsOnMeleeHit(t *testing.T) {
	b := newBattlefield(t, 6, 6)
	vamp := b.addMelee("A", 0, 0, 10)
	b.ecs.Combats[vamp].Vampirism = 0.25
	b.ecs.Healths[vamp].Value = 50
	b.addUnit("B", 1, 0)

	b.step(3)
	// 10 * 0.25 = 2.5, округляется от нуля
	assert.Equal(t, 53, b.ecs.Healths[vamp].Value)
}

func TestSplashHitsEnemiesOnly(t *testing.T) {
	b := newBattlefield(t, 10, 10)
	attacker := b.addMelee("A", 4, 5, 10)
	b.ecs.Combats[attacker].Area = &component.AreaAttack{Pattern: component.PatternAdjacent, Spread: 1, Multiplier: 0.5}
	primary := b.addUnit("B", 5, 5)
	above := b.addUnit("B", 5, 4)
	corner := b.addUnit("B", 6, 6)
	ally := b.addUnit("A", 6, 5)

	b.step(3)

	assert.Equal(t, 90, b.ecs.Healths[primary].Value)
	assert.Equal(t, 95, b.ecs.Healths[above].Value)
	assert.Equal(t, 95, b.ecs.Healths[corner].Value)
	assert.Equal(t, 100, b.ecs.Healths[ally].Value)

	aoe := b.eventsOf(event.AoePatternComputed)
	require.Len(t, aoe, 1)
	data := aoe[0].Data.(event.AoeData)
	assert.Equal(t, primary, data.Target)
	assert.Len(t, data.Cells, 8)
	assert.NotContains(t, data.Cells, gridmap.Cell{Col: 5, Row: 5})
	assert.Equal(t, []types.EntityID{above, corner}, data.Hit)
}

func TestRangedRefusesWhenEnemyTooClose(t *testing.T) {
	b := newBattlefield(t, 10, 10)
	archer := b.addUnit("A", 0, 0)
	combat := &component.Combat{Damage: 10, IsRanged: true, MinRange: 2, MaxRange: 5, AttackFrames: 1}
	b.ecs.Combats[archer] = combat
	near := b.addUnit("B", 1, 0)
	b.addUnit("B", 4, 0)

	_, ok := b.world().FindRangedTarget(archer, combat)
	assert.False(t, ok)

	attack := NewAttackAction(b.world())
	assert.False(t, attack.CanExecute(archer))
	assert.Equal(t, types.None, combat.Target)
	require.NotNil(t, b.ecs.Movements[archer].Target)
	assert.Equal(t, b.anchor(near), *b.ecs.Movements[archer].Target, "advances toward the nearer enemy")
}

func TestRangedPicksTargetInWindow(t *testing.T) {
	b := newBattlefield(t, 10, 10)
	archer := b.addUnit("A", 0, 0)
	combat := &component.Combat{Damage: 10, IsRanged: true, MinRange: 2, MaxRange: 5, AttackFrames: 1}
	b.ecs.Combats[archer] = combat
	far := b.addUnit("B", 4, 0)

	attack := NewAttackAction(b.world())
	require.True(t, attack.CanExecute(archer))
	assert.Equal(t, far, combat.Target)
	assert.True(t, combat.IsRangedAttack)
	assert.Nil(t, b.ecs.Movements[archer].Target)

	b.ecs.Ammos[archer] = &component.Ammo{Remaining: 0, Max: 4}
	assert.False(t, attack.CanExecute(archer), "no ammo, no shot")
}

func TestSwingAbortedWhenTargetDies(t *testing.T) {
	b := newBattlefield(t, 6, 6)
	a := b.addMelee("A", 0, 0, 10)
	b.ecs.Combats[a].AttackFrames = 3
	target := b.addUnit("B", 1, 0)

	b.step(3)
	require.True(t, b.ecs.Combats[a].IsAttacking)
	b.world().Kill(target, types.None)

	b.step(3)
	assert.False(t, b.ecs.Combats[a].IsAttacking)
	assert.Len(t, b.eventsOf(event.SwingAborted), 1)
	assert.Empty(t, b.eventsOf(event.UnitDamaged))
	assert.Positive(t, b.ecs.Combats[a].Cooldown)
}
