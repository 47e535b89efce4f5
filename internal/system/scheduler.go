package system

import (
	"fmt"
	"log/slog"
	"time"

	"go-grid-battle/internal/component"
	"go-grid-battle/internal/config"
	"go-grid-battle/internal/entity"
	"go-grid-battle/internal/event"
	"go-grid-battle/internal/types"
	"go-grid-battle/pkg/gridmap"
)

// Action is one of the four things a unit can do on an animation tick. CanExecute may
// cache what Execute needs (a path step, a resolved landing cell); the scheduler always
// calls Execute right after a true CanExecute.
type Action interface {
	Kind() component.ActionKind
	CanExecute(id types.EntityID) bool
	Execute(id types.EntityID)
}

// Scheduler владеет четырьмя действиями и вызывает их в детерминированном порядке:
// юниты по возрастанию id, у каждого первое действие из списка приоритетов, чьё
// условие выполнено.
type Scheduler struct {
	world *World

	move     *MoveAction
	attack   *AttackAction
	teleport *TeleportAction
	aura     *AuraAction
	actions  map[component.ActionKind]Action

	cooldowns   *CooldownSystem
	projectiles *ProjectileSystem

	paused bool
}

func NewScheduler(ecs *entity.ECS, grid *gridmap.Grid, events *event.Dispatcher, logger *slog.Logger) *Scheduler {
	w := NewWorld(ecs, grid, events, logger)
	s := &Scheduler{
		world:       w,
		move:        NewMoveAction(w),
		attack:      NewAttackAction(w),
		aura:        NewAuraAction(w),
		cooldowns:   NewCooldownSystem(ecs),
		projectiles: NewProjectileSystem(w),
	}
	s.teleport = NewTeleportAction(w, s.attack)
	s.actions = map[component.ActionKind]Action{
		component.ActionTeleport: s.teleport,
		component.ActionAttack:   s.attack,
		component.ActionMove:     s.move,
		component.ActionAura:     s.aura,
	}
	return s
}

// World exposes the shared state, mostly for tests and the game wrapper.
func (s *Scheduler) World() *World { return s.world }

// Tick returns how many fixed steps have run.
func (s *Scheduler) Tick() uint64 { return s.world.Tick }

// SetTick is used by a bulk reset between rounds.
func (s *Scheduler) SetTick(tick uint64) { s.world.Tick = tick }

func (s *Scheduler) SetPaused(paused bool) { s.paused = paused }

func (s *Scheduler) Paused() bool { return s.paused }

// IsAnimationTick reports whether tick resolves actions.
func IsAnimationTick(tick uint64) bool {
	return tick%config.AnimationInterval == 0
}

// Update runs one fixed step of dt.
func (s *Scheduler) Update(dt time.Duration) {
	s.world.Tick++
	tick := s.world.Tick

	s.ResyncGrid()
	s.cooldowns.Update(dt)
	if s.paused {
		return
	}

	units := s.world.ECS.LivingUnits()
	for _, id := range units {
		s.move.AdvanceMotion(id, dt)
	}

	if IsAnimationTick(tick) {
		for _, id := range units {
			// юнит мог погибнуть от действия соседа с меньшим id
			if !s.world.ECS.IsAlive(id) {
				continue
			}
			s.runUnit(id)
		}
		s.projectiles.Update()
		return
	}

	for _, id := range units {
		if !s.world.ECS.IsAlive(id) {
			continue
		}
		s.continueWalking(id)
	}
}

// ResyncGrid rebuilds occupancy from the living units. Any overlap (only possible
// after a bad external reset) keeps the lower id in place.
func (s *Scheduler) ResyncGrid() {
	grid := s.world.Grid
	grid.Reset()
	for _, id := range s.world.ECS.LivingUnits() {
		fp := s.world.ECS.Footprints[id]
		if !grid.Place(id, fp.Cells()) {
			s.world.Logger.Warn("unit overlaps after resync", "tick", s.world.Tick, "unit", id, "anchor", fp.Anchor().String())
		}
	}
}

func (s *Scheduler) runUnit(id types.EntityID) {
	s.move.CheckGroupArrival(id)

	behavior, ok := s.world.ECS.Behaviors[id]
	if !ok {
		return
	}

	// начатая телепортация доигрывается независимо от приоритетов
	if tp, ok := s.world.ECS.Teleports[id]; ok && tp.Active() {
		s.execute(id, behavior, s.teleport)
		return
	}

	for _, kind := range behavior.Current {
		action, ok := s.actions[kind]
		if !ok {
			continue
		}
		if action.CanExecute(id) {
			s.execute(id, behavior, action)
			return
		}
	}
	movement, ok := s.world.ECS.Movements[id]
	if ok && movement.IsMoving {
		// шаг ещё идёт: следующий сделает continueWalking, когда истечёт StepDuration
		return
	}
	if ok {
		movement.Walking = false
	}
	if anim, ok := s.world.ECS.Animators[id]; ok && anim.Clip == component.ClipWalk {
		playIdle(s.world.ECS, id)
	}
}

func (s *Scheduler) execute(id types.EntityID, behavior *component.Behavior, action Action) {
	kind := action.Kind()
	s.world.Logger.Debug("action", "tick", s.world.Tick, "unit", id, "kind", kind.String())
	action.Execute(id)
	behavior.Last = kind
	behavior.Acted = true
	if kind != component.ActionMove {
		if movement, ok := s.world.ECS.Movements[id]; ok {
			movement.Walking = false
		}
	}
	if kind != component.ActionTeleport {
		s.advanceAnimator(id)
	}
}

// advanceAnimator steps idle and walk clips; attack and teleport clips are advanced by
// their own actions.
func (s *Scheduler) advanceAnimator(id types.EntityID) {
	anim, ok := s.world.ECS.Animators[id]
	if !ok {
		return
	}
	if anim.Clip == component.ClipIdle || anim.Clip == component.ClipWalk {
		anim.Advance()
	}
}

// continueWalking lets a walking unit take its next step between animation ticks once
// the previous one finished.
func (s *Scheduler) continueWalking(id types.EntityID) {
	movement, ok := s.world.ECS.Movements[id]
	if !ok || !movement.Walking || movement.IsMoving {
		return
	}
	if s.move.CanExecute(id) {
		s.move.Execute(id)
		return
	}
	movement.Walking = false
}

// SetMoveTarget sets the unit's own movement target; nil clears it.
func (s *Scheduler) SetMoveTarget(id types.EntityID, cell *gridmap.Cell) error {
	movement, err := s.unitMovement(id)
	if err != nil {
		return err
	}
	if cell != nil && !s.world.Grid.InBounds(*cell) {
		return fmt.Errorf("move target %s: %w", cell, ErrOutOfBounds)
	}
	if cell == nil {
		movement.Target = nil
		return nil
	}
	c := *cell
	movement.Target = &c
	return nil
}

// IssueGroupMove sends several units toward one cell. Their priorities are replaced
// until they arrive; a nil list means teleport then move.
func (s *Scheduler) IssueGroupMove(ids []types.EntityID, cell gridmap.Cell, groupID int, priorities []component.ActionKind) error {
	if !s.world.Grid.InBounds(cell) {
		return fmt.Errorf("group target %s: %w", cell, ErrOutOfBounds)
	}
	if priorities == nil {
		priorities = []component.ActionKind{component.ActionTeleport, component.ActionMove}
	}
	// сначала проверяем всех, чтобы ошибка не оставила приказ выполненным наполовину
	movements := make([]*component.Movement, len(ids))
	for i, id := range ids {
		movement, err := s.unitMovement(id)
		if err != nil {
			return err
		}
		movements[i] = movement
	}
	for i, id := range ids {
		movement := movements[i]
		c := cell
		movement.GroupTarget = &c
		movement.GroupID = groupID
		movement.NextStep = nil
		if behavior, ok := s.world.ECS.Behaviors[id]; ok {
			behavior.Current = append([]component.ActionKind(nil), priorities...)
		}
		s.attack.InterruptSwing(id)
	}
	return nil
}

// RequestTeleport queues a teleport; it starts on the next animation tick the
// teleport action wins.
func (s *Scheduler) RequestTeleport(id types.EntityID, cell gridmap.Cell) error {
	if !s.world.ECS.IsAlive(id) {
		return fmt.Errorf("teleport unit %d: %w", id, ErrUnitDead)
	}
	tp, ok := s.world.ECS.Teleports[id]
	if !ok {
		return fmt.Errorf("teleport unit %d: %w", id, ErrNoTeleport)
	}
	if !s.world.Grid.InBounds(cell) {
		return fmt.Errorf("teleport target %s: %w", cell, ErrOutOfBounds)
	}
	c := cell
	tp.Requested = &c
	return nil
}

// CancelMovement drops every movement intent and any cached step synchronously.
func (s *Scheduler) CancelMovement(id types.EntityID) {
	if movement, ok := s.world.ECS.Movements[id]; ok {
		movement.Stop()
		movement.ClearTargets()
	}
	if behavior, ok := s.world.ECS.Behaviors[id]; ok {
		behavior.Restore()
	}
}

// CancelTeleport aborts a pending or running teleport. A unit already relocated stays
// on its new cell.
func (s *Scheduler) CancelTeleport(id types.EntityID) {
	tp, ok := s.world.ECS.Teleports[id]
	if !ok {
		return
	}
	tp.Requested = nil
	if tp.Active() {
		_ = tp.Transition(component.TeleportCancel, gridmap.Cell{})
		playIdle(s.world.ECS, id)
	}
}

func (s *Scheduler) unitMovement(id types.EntityID) (*component.Movement, error) {
	if !s.world.ECS.IsAlive(id) {
		return nil, fmt.Errorf("unit %d: %w", id, ErrUnitDead)
	}
	movement, ok := s.world.ECS.Movements[id]
	if !ok {
		return nil, fmt.Errorf("unit %d: %w", id, ErrNoMovement)
	}
	return movement, nil
}
