package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-grid-battle/internal/component"
	"go-grid-battle/internal/event"
	"go-grid-battle/internal/types"
)

func TestAuraSkipsWhenNobodyNeedsIt(t *testing.T) {
	b := newBattlefield(t, 10, 10)
	cleric := b.addUnit("A", 0, 0)
	aura := &component.Aura{Range: 2, HealAmount: 10, Cooldown: time.Second}
	b.ecs.Auras[cleric] = aura
	near := b.addUnit("A", 1, 0)
	far := b.addUnit("A", 3, 0)
	b.ecs.Healths[far].Value = 50

	action := NewAuraAction(b.world())
	assert.False(t, action.CanExecute(cleric), "the only wounded ally is out of range")
	assert.True(t, aura.Ready())

	b.ecs.Healths[near].Value = 95
	require.True(t, action.CanExecute(cleric))
	action.Execute(cleric)

	assert.Equal(t, 100, b.ecs.Healths[near].Value)
	assert.Equal(t, 50, b.ecs.Healths[far].Value)
	assert.Equal(t, time.Second, aura.Remaining)
	assert.False(t, action.CanExecute(cleric))

	pulses := b.eventsOf(event.AuraPulsed)
	require.Len(t, pulses, 1)
	assert.Equal(t, event.AuraData{Source: cleric, Supported: []types.EntityID{near}}, pulses[0].Data)
}

func TestAuraRestoresAmmoUpToMax(t *testing.T) {
	b := newBattlefield(t, 10, 10)
	cleric := b.addUnit("A", 0, 0)
	aura := &component.Aura{Range: 3, AmmoRestore: 2, Cooldown: time.Second}
	b.ecs.Auras[cleric] = aura
	archer := b.addUnit("A", 2, 0)
	b.ecs.Combats[archer] = &component.Combat{IsRanged: true, MinRange: 2, MaxRange: 5}
	b.ecs.Ammos[archer] = &component.Ammo{Remaining: 1, Max: 4}

	action := NewAuraAction(b.world())
	require.True(t, action.CanExecute(cleric))
	action.Execute(cleric)
	assert.Equal(t, 3, b.ecs.Ammos[archer].Remaining)

	aura.Remaining = 0
	require.True(t, action.CanExecute(cleric))
	action.Execute(cleric)
	assert.Equal(t, 4, b.ecs.Ammos[archer].Remaining)

	aura.Remaining = 0
	assert.False(t, action.CanExecute(cleric), "full ammo needs nothing")
}

func TestAuraRangeIsEuclidean(t *testing.T) {
	b := newBattlefield(t, 10, 10)
	cleric := b.addUnit("A", 0, 0)
	b.ecs.Auras[cleric] = &component.Aura{Range: 1.5, HealAmount: 5, IncludeSelf: true}
	diagonal := b.addUnit("A", 1, 1)
	straight := b.addUnit("A", 2, 0)
	enemy := b.addUnit("B", 0, 1)
	for _, id := range []types.EntityID{cleric, diagonal, straight, enemy} {
		b.ecs.Healths[id].Value = 50
	}

	action := NewAuraAction(b.world())
	require.True(t, action.CanExecute(cleric))
	action.Execute(cleric)

	assert.Equal(t, 55, b.ecs.Healths[cleric].Value)
	assert.Equal(t, 55, b.ecs.Healths[diagonal].Value)
	assert.Equal(t, 50, b.ecs.Healths[straight].Value)
	assert.Equal(t, 50, b.ecs.Healths[enemy].Value)
}
