// internal/system/render.go
package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-grid-battle/internal/component"
	"go-grid-battle/internal/config"
	"go-grid-battle/internal/entity"
	"go-grid-battle/internal/types"
	"go-grid-battle/pkg/gridmap"
)

// RenderSystem рисует юнитов и снаряды. Только читает состояние симуляции.
type RenderSystem struct {
	ecs        *entity.ECS
	teamColors map[string]color.RGBA
	defColors  map[string]color.RGBA
}

func NewRenderSystem(ecs *entity.ECS, defColors map[string]color.RGBA) *RenderSystem {
	if defColors == nil {
		defColors = make(map[string]color.RGBA)
	}
	return &RenderSystem{
		ecs:        ecs,
		teamColors: make(map[string]color.RGBA),
		defColors:  defColors,
	}
}

// TeamColor hands out config.TeamColors in the order teams are first drawn.
func (s *RenderSystem) TeamColor(team string) color.RGBA {
	if c, ok := s.teamColors[team]; ok {
		return c
	}
	c := config.TeamColors[len(s.teamColors)%len(config.TeamColors)]
	s.teamColors[team] = c
	return c
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.ecs.LivingUnits() {
		s.drawUnit(screen, id)
	}

	// Отрисовка снарядов
	for _, id := range s.ecs.ProjectileIDs() {
		if pos, ok := s.ecs.Positions[id]; ok {
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), 4, config.ProjectileColor, true)
		}
	}
}

func (s *RenderSystem) drawUnit(screen *ebiten.Image, id types.EntityID) {
	fp := s.ecs.Footprints[id]
	origin := gridmap.Origin(fp.Anchor(), fp.Width, fp.Height, fp.Expansion)
	x := float32(config.GridOffsetX + float64(origin.Col)*config.CellSize)
	y := float32(config.GridOffsetY + float64(origin.Row)*config.CellSize)
	w := float32(float64(fp.Width) * config.CellSize)
	h := float32(float64(fp.Height) * config.CellSize)

	team := s.TeamColor(s.ecs.TeamOf(id))
	fill, ok := s.defColors[s.ecs.DefIDs[id]]
	if !ok {
		fill = team
	}

	if anim, ok := s.ecs.Animators[id]; ok {
		switch anim.Clip {
		case component.ClipTeleportStart, component.ClipTeleportEnd:
			fill.A = 90
		case component.ClipAttack:
			if anim.Final() {
				fill = color.RGBA{255, 255, 255, 255}
			}
		}
	}

	const inset = 4
	vector.DrawFilledRect(screen, x+inset, y+inset, w-2*inset, h-2*inset, fill, false)
	vector.StrokeRect(screen, x+inset, y+inset, w-2*inset, h-2*inset, 3, team, false)

	// Полоска здоровья
	if health, ok := s.ecs.Healths[id]; ok && health.Max > 0 {
		ratio := float32(health.Value) / float32(health.Max)
		vector.DrawFilledRect(screen, x+inset, y, w-2*inset, config.HealthBarH, config.HealthBackColor, false)
		vector.DrawFilledRect(screen, x+inset, y, (w-2*inset)*ratio, config.HealthBarH, config.HealthBarColor, false)
	}

	// Направление взгляда
	if combat, ok := s.ecs.Combats[id]; ok && !combat.Look.IsZero() {
		if pos, ok := s.ecs.Positions[id]; ok {
			cx, cy := float32(pos.X), float32(pos.Y)
			reach := float32(config.CellSize) * 0.4
			vector.StrokeLine(screen, cx, cy, cx+float32(combat.Look.DX)*reach, cy+float32(combat.Look.DY)*reach, 2, config.TextLightColor, true)
		}
	}
}
