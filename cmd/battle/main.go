// cmd/battle/main.go
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-grid-battle/internal/app"
	"go-grid-battle/internal/config"
	"go-grid-battle/internal/defs"
	"go-grid-battle/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime)
	if deltaTime > config.MaxFrameDelta {
		deltaTime = config.MaxFrameDelta
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	var defsPath, scenarioPath string
	var seed int64
	var verbose bool
	flag.StringVar(&defsPath, "defs", "assets/data/units.yaml", "unit definitions file")
	flag.StringVar(&scenarioPath, "scenario", "assets/data/scenarios/skirmish.yaml", "scenario file (empty: generate from -seed)")
	flag.Int64Var(&seed, "seed", 0, "seed for a generated scenario, 0 = time")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	lib, spawn, err := defs.LoadUnitDefinitions(defsPath)
	if err != nil {
		log.Fatal(err)
	}

	width, height := config.DefaultGridWidth, config.DefaultGridHeight
	var scenario *defs.Scenario
	if scenarioPath != "" {
		if scenario, err = defs.LoadScenario(scenarioPath, lib); err != nil {
			log.Fatal(err)
		}
		if scenario.Width > 0 && scenario.Height > 0 {
			width, height = scenario.Width, scenario.Height
		}
	}

	game := app.NewGame(app.Options{Width: width, Height: height, Library: lib, Spawn: spawn, Seed: seed, Logger: logger})
	if scenario == nil {
		if scenario, err = game.RandomScenario("random"); err != nil {
			log.Fatal(err)
		}
	}
	if _, err := game.LoadScenario(scenario); err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, game, scenario))
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Grid Battle")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
