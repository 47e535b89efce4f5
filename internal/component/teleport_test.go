package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-grid-battle/internal/component"
	"go-grid-battle/pkg/gridmap"
)

func TestTeleportFullCycle(t *testing.T) {
	tp := &component.Teleport{}
	_, ok := tp.Target()
	assert.False(t, ok, "idle teleport has no target")

	want := gridmap.Cell{Col: 8, Row: 8}
	require.NoError(t, tp.Transition(component.TeleportBegin, want))
	assert.Equal(t, component.TeleportStartAnimation, tp.State())
	target, ok := tp.Target()
	require.True(t, ok)
	assert.Equal(t, want, target)

	require.NoError(t, tp.Transition(component.TeleportDepartFinished, gridmap.Cell{}))
	assert.Equal(t, component.Teleporting, tp.State())

	landed := gridmap.Cell{Col: 8, Row: 7}
	require.NoError(t, tp.Transition(component.TeleportRelocated, landed))
	assert.Equal(t, component.TeleportEndAnimation, tp.State())
	target, _ = tp.Target()
	assert.Equal(t, landed, target, "relocation records the final cell")

	require.NoError(t, tp.Transition(component.TeleportArrived, gridmap.Cell{}))
	assert.False(t, tp.Active())
	_, ok = tp.Target()
	assert.False(t, ok)
}

func TestTeleportIllegalTransitions(t *testing.T) {
	tests := []struct {
		name  string
		setup []component.TeleportEvent
		event component.TeleportEvent
	}{
		{"depart while idle", nil, component.TeleportDepartFinished},
		{"arrive while idle", nil, component.TeleportArrived},
		{"begin twice", []component.TeleportEvent{component.TeleportBegin}, component.TeleportBegin},
		{"relocate before depart", []component.TeleportEvent{component.TeleportBegin}, component.TeleportRelocated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp := &component.Teleport{}
			for _, ev := range tt.setup {
				require.NoError(t, tp.Transition(ev, gridmap.Cell{Col: 1, Row: 1}))
			}
			before := tp.State()
			err := tp.Transition(tt.event, gridmap.Cell{Col: 2, Row: 2})
			assert.ErrorIs(t, err, component.ErrIllegalTeleportTransition)
			assert.Equal(t, before, tp.State())
		})
	}
}

func TestTeleportCancelFromAnyState(t *testing.T) {
	steps := []component.TeleportEvent{
		component.TeleportBegin,
		component.TeleportDepartFinished,
		component.TeleportRelocated,
	}
	for n := 0; n <= len(steps); n++ {
		tp := &component.Teleport{}
		for _, ev := range steps[:n] {
			require.NoError(t, tp.Transition(ev, gridmap.Cell{Col: 3, Row: 3}))
		}
		require.NoError(t, tp.Transition(component.TeleportCancel, gridmap.Cell{}))
		assert.Equal(t, component.TeleportIdle, tp.State())
		_, ok := tp.Target()
		assert.False(t, ok)
	}
}

func TestAnimatorStopsOnLastFrame(t *testing.T) {
	anim := &component.Animator{}
	anim.Play(component.ClipAttack, 3)
	assert.False(t, anim.Final())
	assert.False(t, anim.Advance())
	assert.True(t, anim.Advance())
	assert.True(t, anim.Advance())
	assert.Equal(t, 2, anim.Frame)

	anim.Play(component.ClipIdle, 0)
	assert.True(t, anim.Final(), "zero frames is clamped to one")
}

func TestActionKindText(t *testing.T) {
	var k component.ActionKind
	require.NoError(t, k.UnmarshalText([]byte("aura")))
	assert.Equal(t, component.ActionAura, k)
	assert.Error(t, k.UnmarshalText([]byte("dance")))

	b := &component.Behavior{Default: []component.ActionKind{component.ActionAttack, component.ActionMove}}
	b.Current = []component.ActionKind{component.ActionMove}
	b.Restore()
	assert.Equal(t, b.Default, b.Current)
}
