// internal/app/game.go
package app

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"go-grid-battle/internal/config"
	"go-grid-battle/internal/defs"
	"go-grid-battle/internal/entity"
	"go-grid-battle/internal/event"
	"go-grid-battle/internal/system"
	"go-grid-battle/internal/types"
	"go-grid-battle/internal/utils"
	"go-grid-battle/pkg/gridmap"
)

// Options configure a new battle. Zero sizes fall back to the config defaults.
type Options struct {
	Width   int
	Height  int
	Library defs.Library
	Spawn   defs.SpawnTable
	Seed    int64
	Logger  *slog.Logger
}

// Game holds one battle: the grid, the units and the scheduler stepping them.
// It is not safe for concurrent use; run one Game per goroutine.
type Game struct {
	ID              uuid.UUID
	Grid            *gridmap.Grid
	ECS             *entity.ECS
	Scheduler       *system.Scheduler
	EventDispatcher *event.Dispatcher
	Library         defs.Library
	Spawn           defs.SpawnTable
	Rng             *utils.PRNGService
	Logger          *slog.Logger
	Stats           *BattleStats

	accumulator time.Duration
}

// NewGame initializes a new battle instance.
func NewGame(opts Options) *Game {
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = config.DefaultGridWidth
	}
	if height <= 0 {
		height = config.DefaultGridHeight
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	library := opts.Library
	if library == nil {
		library = defs.Library{}
	}

	id := uuid.New()
	logger = logger.With("battle", id.String())

	ecs := entity.NewECS()
	grid := gridmap.NewGrid(width, height)
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ID:              id,
		Grid:            grid,
		ECS:             ecs,
		Scheduler:       system.NewScheduler(ecs, grid, eventDispatcher, logger),
		EventDispatcher: eventDispatcher,
		Library:         library,
		Spawn:           opts.Spawn,
		Rng:             utils.NewPRNGService(opts.Seed),
		Logger:          logger,
		Stats:           NewBattleStats(),
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.UnitDied, listener)
	eventDispatcher.Subscribe(event.UnitDamaged, listener)
	eventDispatcher.Subscribe(event.ProjectileFizzled, listener)

	return g
}

// Advance feeds wall-clock time into the fixed-step loop and returns how many steps
// ran. A single frame never contributes more than MaxFrameDelta.
func (g *Game) Advance(elapsed time.Duration) int {
	if elapsed > config.MaxFrameDelta {
		elapsed = config.MaxFrameDelta
	}
	if elapsed > 0 {
		g.accumulator += elapsed
	}
	steps := 0
	for g.accumulator >= config.StepDuration {
		g.accumulator -= config.StepDuration
		g.Step()
		steps++
	}
	return steps
}

// Step runs exactly one fixed simulation step.
func (g *Game) Step() {
	g.Scheduler.Update(config.StepDuration)
}

// Tick returns the number of fixed steps run so far.
func (g *Game) Tick() uint64 {
	return g.Scheduler.Tick()
}

func (g *Game) SetPaused(paused bool) { g.Scheduler.SetPaused(paused) }

func (g *Game) Paused() bool { return g.Scheduler.Paused() }

// Winner returns the only team that still has living units. ok is false while two or
// more teams are alive, and also when nobody is left.
func (g *Game) Winner() (team string, ok bool) {
	for _, id := range g.ECS.LivingUnits() {
		t := g.ECS.TeamOf(id)
		if t == "" {
			continue
		}
		if team == "" {
			team = t
			continue
		}
		if t != team {
			return "", false
		}
	}
	return team, team != ""
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.UnitDied:
		if data, ok := e.Data.(event.DeathData); ok {
			l.game.Stats.recordDeath(l.game.ECS.TeamOf(data.Unit), l.game.ECS.TeamOf(data.Killer))
			l.game.Logger.Info("unit died", "tick", e.Tick, "unit", data.Unit, "killer", data.Killer)
		}
	case event.UnitDamaged:
		if data, ok := e.Data.(event.DamageData); ok {
			l.game.Stats.recordDamage(l.game.ECS.TeamOf(data.Source), data.Amount)
		}
	case event.ProjectileFizzled:
		if data, ok := e.Data.(event.ProjectileData); ok {
			l.game.Logger.Debug("projectile fizzled", "tick", e.Tick, "attacker", data.Attacker, "target", data.Target)
		}
	}
}

// BattleStats aggregates per-team results from the event stream.
type BattleStats struct {
	Kills  map[string]int `json:"kills"`
	Losses map[string]int `json:"losses"`
	Damage map[string]int `json:"damage"`
}

func NewBattleStats() *BattleStats {
	return &BattleStats{
		Kills:  make(map[string]int),
		Losses: make(map[string]int),
		Damage: make(map[string]int),
	}
}

func (s *BattleStats) recordDeath(victimTeam, killerTeam string) {
	s.Losses[victimTeam]++
	if killerTeam != "" && killerTeam != victimTeam {
		s.Kills[killerTeam]++
	}
}

func (s *BattleStats) recordDamage(team string, amount int) {
	s.Damage[team] += amount
}

func (s *BattleStats) reset() {
	clear(s.Kills)
	clear(s.Losses)
	clear(s.Damage)
}

// TeamUnits returns the living unit ids of team, ascending.
func (g *Game) TeamUnits(team string) []types.EntityID {
	var ids []types.EntityID
	for _, id := range g.ECS.LivingUnits() {
		if g.ECS.TeamOf(id) == team {
			ids = append(ids, id)
		}
	}
	return ids
}
