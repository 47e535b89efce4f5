package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"go-grid-battle/internal/app"
	"go-grid-battle/internal/defs"
)

// clientRun is what one simulated client reports back.
type clientRun struct {
	Digests  []string
	Final    app.Snapshot
	Stats    *app.BattleStats
	Winner   string
	EndedAt  uint64
	Finished bool
}

type result struct {
	Scenario   string           `json:"scenario"`
	Ticks      uint64           `json:"ticks"`
	Winner     string           `json:"winner,omitempty"`
	Checkpoint int              `json:"checkpoint"`
	Digest     string           `json:"digest"`
	Diverged   bool             `json:"diverged"`
	DivergedAt int              `json:"diverged_at,omitempty"`
	Stats      *app.BattleStats `json:"stats"`
	Final      app.Snapshot     `json:"final"`
}

func main() {
	var defsPath, scenarioPath, out string
	var seed int64
	var ticks, checkpoint int
	var verbose bool
	flag.StringVar(&defsPath, "defs", "assets/data/units.yaml", "unit definitions file")
	flag.StringVar(&scenarioPath, "scenario", "", "scenario file (empty: generate from -seed)")
	flag.Int64Var(&seed, "seed", 12345, "seed for a generated scenario")
	flag.IntVar(&ticks, "ticks", 3000, "maximum fixed steps to run")
	flag.IntVar(&checkpoint, "checkpoint", 36, "steps between digest comparisons")
	flag.StringVar(&out, "out", "out.json", "output file")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	lib, spawn, err := defs.LoadUnitDefinitions(defsPath)
	if err != nil {
		logger.Error("load definitions", "error", err)
		os.Exit(1)
	}

	var sc *defs.Scenario
	if scenarioPath != "" {
		sc, err = defs.LoadScenario(scenarioPath, lib)
	} else {
		gen := app.NewGame(app.Options{Library: lib, Spawn: spawn, Seed: seed, Logger: logger})
		sc, err = gen.RandomScenario(fmt.Sprintf("seed-%d", seed))
	}
	if err != nil {
		logger.Error("prepare scenario", "error", err)
		os.Exit(1)
	}
	if checkpoint <= 0 {
		checkpoint = 1
	}

	runs := make([]clientRun, 2)
	eg, ctx := errgroup.WithContext(context.Background())
	for i := range runs {
		eg.Go(func() error {
			run, err := simulate(ctx, sc, lib, logger.With("client", i), ticks, checkpoint)
			if err != nil {
				return fmt.Errorf("client %d: %w", i, err)
			}
			runs[i] = run
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}

	res := result{
		Scenario:   sc.Name,
		Ticks:      runs[0].EndedAt,
		Winner:     runs[0].Winner,
		Checkpoint: checkpoint,
		Digest:     runs[0].Final.Digest(),
		Stats:      runs[0].Stats,
		Final:      runs[0].Final,
	}
	if at, ok := firstMismatch(runs[0].Digests, runs[1].Digests); ok {
		res.Diverged = true
		res.DivergedAt = at
		logger.Warn("digest mismatch", "checkpoint", at, "tick", at*checkpoint)
	}

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		logger.Error("write result", "error", err)
		os.Exit(1)
	}
	fmt.Printf("simsvc finished. ticks=%d winner=%q digest=%s diverged=%v -> %s\n",
		res.Ticks, res.Winner, res.Digest[:16], res.Diverged, out)
	if res.Diverged {
		os.Exit(1)
	}
}

// simulate runs one client until a team wins or the tick limit is hit, recording a
// digest every checkpoint steps.
func simulate(ctx context.Context, sc *defs.Scenario, lib defs.Library, logger *slog.Logger, ticks, checkpoint int) (clientRun, error) {
	game := app.NewGame(app.Options{Width: sc.Width, Height: sc.Height, Library: lib, Logger: logger})
	if _, err := game.LoadScenario(sc); err != nil {
		return clientRun{}, err
	}

	var run clientRun
	for step := 1; step <= ticks; step++ {
		if step%checkpoint == 0 {
			if err := ctx.Err(); err != nil {
				return clientRun{}, err
			}
		}
		game.Step()
		if step%checkpoint == 0 {
			run.Digests = append(run.Digests, game.Digest())
		}
		if winner, ok := game.Winner(); ok {
			run.Winner = winner
			run.Finished = true
			break
		}
	}
	run.Digests = append(run.Digests, game.Digest())
	run.Final = game.Snapshot()
	run.Stats = game.Stats
	run.EndedAt = game.Tick()
	return run, nil
}

func firstMismatch(a, b []string) (int, bool) {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i, true
		}
	}
	if len(a) != len(b) {
		return n, true
	}
	return 0, false
}
