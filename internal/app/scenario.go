// internal/app/scenario.go
package app

import (
	"fmt"

	"go-grid-battle/internal/defs"
	"go-grid-battle/internal/entity"
	"go-grid-battle/internal/types"
	"go-grid-battle/pkg/gridmap"
)

// LoadScenario places every unit of sc in order. The grid must match the scenario size.
// On error the units placed so far stay; callers reset before retrying.
func (g *Game) LoadScenario(sc *defs.Scenario) ([]types.EntityID, error) {
	if sc.Width != 0 && sc.Height != 0 && (sc.Width != g.Grid.Width || sc.Height != g.Grid.Height) {
		return nil, fmt.Errorf("scenario %q is %dx%d, grid is %dx%d: %w",
			sc.Name, sc.Width, sc.Height, g.Grid.Width, g.Grid.Height, ErrOutOfBounds)
	}
	ids := make([]types.EntityID, 0, len(sc.Placements))
	for i, p := range sc.Placements {
		id, err := g.PlaceUnit(p.Unit, p.Team, p.Col, p.Row)
		if err != nil {
			return ids, fmt.Errorf("scenario %q placement %d: %w", sc.Name, i, err)
		}
		ids = append(ids, id)
	}
	g.Logger.Info("scenario loaded", "scenario", sc.Name, "units", len(ids))
	return ids, nil
}

// Reset wipes every unit and projectile, rewinds the tick counter and loads sc. Ids
// start again from 1, so two games reset with the same scenario stay in step.
func (g *Game) Reset(sc *defs.Scenario) ([]types.EntityID, error) {
	*g.ECS = *entity.NewECS()
	g.Grid.Reset()
	g.Scheduler.SetTick(0)
	g.Scheduler.SetPaused(false)
	g.accumulator = 0
	g.Stats.reset()
	if sc == nil {
		return nil, nil
	}
	return g.LoadScenario(sc)
}

// RandomScenario builds a mirrored two-team battle from the spawn table: team A on the
// left columns, team B on the right. The same seed always gives the same scenario.
func (g *Game) RandomScenario(name string) (*defs.Scenario, error) {
	if len(g.Spawn.Entries) == 0 {
		return nil, fmt.Errorf("random scenario: empty spawn table: %w", ErrUnknownUnit)
	}
	perTeam := g.Spawn.UnitsPerTeam
	if perTeam <= 0 {
		perTeam = 4
	}
	sc := &defs.Scenario{Name: name, Width: g.Grid.Width, Height: g.Grid.Height}

	// сетка-черновик: проверяем, что юниты сценария не перекрываются
	draft := gridmap.NewGrid(g.Grid.Width, g.Grid.Height)
	bandWidth := max(g.Grid.Width/4, 1)

	for _, team := range []string{"A", "B"} {
		placed := 0
		for _, row := range g.Rng.Perm(g.Grid.Height) {
			if placed == perTeam {
				break
			}
			unitID := g.Rng.ChooseWeighted(g.Spawn.Entries)
			def, ok := g.Library[unitID]
			if !ok {
				return nil, fmt.Errorf("random scenario: %q: %w", unitID, ErrUnknownUnit)
			}
			col := g.Rng.Intn(bandWidth)
			if team == "B" {
				col = g.Grid.Width - 1 - col
			}
			cells := gridmap.FootprintCells(gridmap.Cell{Col: col, Row: row}, def.Footprint.Width, def.Footprint.Height, def.Footprint.Expansion)
			// id only marks the draft cells as taken
			if !draft.Place(types.EntityID(len(sc.Placements)+1), cells) {
				continue
			}
			sc.Placements = append(sc.Placements, defs.Placement{Unit: unitID, Team: team, Col: col, Row: row})
			placed++
		}
	}
	return sc, nil
}
