// internal/state/menu_state.go
package state

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-grid-battle/internal/config"
)

// MenuState - экран конца раунда: победитель и счёт, Space начинает заново.
type MenuState struct {
	sm     *StateMachine
	battle *GameState
	winner string
}

func NewMenuState(sm *StateMachine, battle *GameState, winner string) *MenuState {
	return &MenuState{sm: sm, battle: battle, winner: winner}
}

func (m *MenuState) Enter() {
	stats := m.battle.Game().Stats
	m.battle.Game().Logger.Info("round over", "winner", m.winner, "tick", m.battle.Game().Tick(),
		"kills", stats.Kills, "losses", stats.Losses)
}

func (m *MenuState) Update(deltaTime time.Duration) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if err := m.battle.Restart(); err != nil {
			m.battle.Game().Logger.Error("restart failed", "error", err)
			return
		}
		m.sm.SetState(m.battle)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.battle.Draw(screen)
	stats := m.battle.Game().Stats
	msg := fmt.Sprintf("team %s wins (kills %d)  [space] restart", m.winner, stats.Kills[m.winner])
	m.battle.renderer.DrawBanner(screen, msg, config.TextLightColor)
}

func (m *MenuState) Exit() {}
