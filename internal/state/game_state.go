// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font/basicfont"

	"go-grid-battle/internal/app"
	"go-grid-battle/internal/config"
	"go-grid-battle/internal/defs"
	"go-grid-battle/internal/event"
	"go-grid-battle/internal/system"
	"go-grid-battle/internal/types"
	"go-grid-battle/internal/ui"
	"go-grid-battle/pkg/gridmap"
	"go-grid-battle/pkg/render"
)

// ControlledTeam is the team whose units the mouse can teleport.
const ControlledTeam = "A"

// GameState - состояние боя
type GameState struct {
	sm           *StateMachine
	game         *app.Game
	scenario     *defs.Scenario
	renderer     *render.GridRenderer
	renderSystem *system.RenderSystem
	infoPanel    *ui.InfoPanel

	aoeCells  []gridmap.Cell
	aoeFrames int
	lastError string
}

func NewGameState(sm *StateMachine, gameLogic *app.Game, scenario *defs.Scenario) *GameState {
	mapColors := &render.MapColors{
		BackgroundColor: config.BackgroundColor,
		CellColor:       config.CellColor,
		CellStrokeColor: config.CellStrokeColor,
		AoeCellColor:    config.AoeCellColor,
		TextColor:       config.TextLightColor,
		PausedColor:     config.PausedColor,
		StrokeWidth:     config.StrokeWidth,
	}
	renderer := render.NewGridRenderer(gameLogic.Grid.Width, gameLogic.Grid.Height,
		config.CellSize, config.GridOffsetX, config.GridOffsetY,
		config.ScreenWidth, config.ScreenHeight, mapColors)

	gs := &GameState{
		sm:           sm,
		game:         gameLogic,
		scenario:     scenario,
		renderer:     renderer,
		renderSystem: system.NewRenderSystem(gameLogic.ECS, defColors(gameLogic.Library)),
		infoPanel:    ui.NewInfoPanel(basicfont.Face7x13, gameLogic.Scheduler),
	}

	// подсветка AoE через наблюдателя, без доступа к внутренностям симуляции
	gameLogic.OnAoe(func(data event.AoeData) {
		gs.aoeCells = data.Cells
		gs.aoeFrames = config.AoeFlashFrames
	})
	return gs
}

func (g *GameState) Enter() {
	g.game.SetPaused(false)
}

func (g *GameState) Update(deltaTime time.Duration) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.game.Advance(deltaTime)
	if g.aoeFrames > 0 {
		g.aoeFrames--
	}

	g.infoPanel.Update(g.game.ECS)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		// клики по панели обрабатывает сама панель
		if !g.infoPanel.Contains(x, y) {
			g.handleGameClick(x, y)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.handleInspectClick(ebiten.CursorPosition())
	}

	if winner, ok := g.game.Winner(); ok {
		g.sm.SetState(NewMenuState(g.sm, g, winner))
	}
}

// handleGameClick sends the first unit of the controlled team that can teleport to the
// clicked cell.
func (g *GameState) handleGameClick(x, y int) {
	cell, ok := g.renderer.ScreenToCell(x, y)
	if !ok {
		return // Клик вне сетки
	}
	id, ok := g.teleporter()
	if !ok {
		g.lastError = "no unit of team " + ControlledTeam + " can teleport"
		return
	}
	if err := g.game.Scheduler.RequestTeleport(id, cell); err != nil {
		g.lastError = err.Error()
		g.game.Logger.Warn("teleport request rejected", "unit", id, "error", err)
		return
	}
	g.lastError = ""
}

// handleInspectClick opens the info panel on the unit under the cursor.
func (g *GameState) handleInspectClick(x, y int) {
	cell, ok := g.renderer.ScreenToCell(x, y)
	if !ok {
		g.infoPanel.Hide()
		return
	}
	id, ok := g.game.Grid.OccupantAt(cell)
	if !ok || id == types.None {
		g.infoPanel.Hide()
		return
	}
	g.infoPanel.SetTarget(id)
}

func (g *GameState) teleporter() (types.EntityID, bool) {
	for _, id := range g.game.TeamUnits(ControlledTeam) {
		if _, ok := g.game.ECS.Teleports[id]; ok {
			return id, true
		}
	}
	return types.None, false
}

// Restart resets the battle to its scenario.
func (g *GameState) Restart() error {
	g.aoeCells, g.aoeFrames, g.lastError = nil, 0, ""
	g.infoPanel.Hide()
	_, err := g.game.Reset(g.scenario)
	return err
}

func (g *GameState) Draw(screen *ebiten.Image) {
	var highlight []gridmap.Cell
	if g.aoeFrames > 0 {
		highlight = g.aoeCells
	}
	g.renderer.Draw(screen, g.renderSystem, highlight)

	lines := []string{
		fmt.Sprintf("tick %d  battle %s", g.game.Tick(), g.game.ID.String()[:8]),
		fmt.Sprintf("A: %d  B: %d   [P] pause  [LMB] teleport  [RMB] inspect", len(g.game.TeamUnits("A")), len(g.game.TeamUnits("B"))),
	}
	if g.lastError != "" {
		lines = append(lines, g.lastError)
	}
	g.renderer.DrawHUD(screen, config.HUDTextX, config.HUDTextY-10, lines)
	g.infoPanel.Draw(screen, g.game.ECS)
}

func (g *GameState) Exit() {}

// Game exposes the battle to the other states.
func (g *GameState) Game() *app.Game {
	return g.game
}

func defColors(lib defs.Library) map[string]color.RGBA {
	colors := make(map[string]color.RGBA, len(lib))
	for id, def := range lib {
		if def.Visuals.Color == "" {
			continue
		}
		if c, err := render.ParseHexColor(def.Visuals.Color); err == nil {
			colors[id] = c
		}
	}
	return colors
}
