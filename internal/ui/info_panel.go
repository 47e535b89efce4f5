// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-grid-battle/internal/config"
	"go-grid-battle/internal/entity"
	"go-grid-battle/internal/interfaces"
	"go-grid-battle/internal/types"
)

const (
	panelHeight    = 110
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 16
	columnSpacing  = 230
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect image.Rectangle
	Text string
}

// InfoPanel displays information about a selected unit.
type InfoPanel struct {
	IsVisible    bool
	TargetEntity types.EntityID
	fontFace     font.Face
	currentY     float64
	targetY      float64
	StopButton   Button
	controller   interfaces.UnitController
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(face font.Face, controller interfaces.UnitController) *InfoPanel {
	return &InfoPanel{
		fontFace:   face,
		currentY:   config.ScreenHeight,
		targetY:    config.ScreenHeight,
		controller: controller,
	}
}

func (p *InfoPanel) SetTarget(entityID types.EntityID) {
	p.TargetEntity = entityID
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Contains reports whether a screen point falls on the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && float64(y) >= p.currentY
}

func (p *InfoPanel) Update(ecs *entity.ECS) {
	// Анимация панели
	if p.currentY != p.targetY {
		diff := p.targetY - p.currentY
		if math.Abs(diff) < animationSpeed {
			p.currentY = p.targetY
		} else if diff > 0 {
			p.currentY += animationSpeed
		} else {
			p.currentY -= animationSpeed
		}

		if p.currentY >= config.ScreenHeight {
			p.IsVisible = false
			p.TargetEntity = types.None
		}
	}

	// юнит погиб: панель уезжает
	if p.IsVisible && !ecs.IsAlive(p.TargetEntity) {
		p.Hide()
	}

	if p.IsVisible && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cursorX, cursorY := ebiten.CursorPosition()
		if (image.Point{X: cursorX, Y: cursorY}).In(p.StopButton.Rect) {
			p.handleStopClick()
		}
	}
}

// handleStopClick drops every movement and teleport order of the unit.
func (p *InfoPanel) handleStopClick() {
	if p.TargetEntity == types.None || p.controller == nil {
		return
	}
	p.controller.CancelMovement(p.TargetEntity)
	p.controller.CancelTeleport(p.TargetEntity)
}

func (p *InfoPanel) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	if p.TargetEntity == types.None {
		return
	}

	p.drawUnitInfo(screen, ecs, panelRect.Min.X+15, panelRect.Min.Y+15)
	p.drawStopButton(screen, panelRect)
}

func (p *InfoPanel) drawStopButton(screen *ebiten.Image, panelRect image.Rectangle) {
	btnWidth := 110
	btnHeight := 30
	p.StopButton.Rect = image.Rect(
		panelRect.Max.X-btnWidth-15,
		panelRect.Max.Y-btnHeight-15,
		panelRect.Max.X-15,
		panelRect.Max.Y-15,
	)
	p.StopButton.Text = "Stop"

	btnColor := color.RGBA{R: 100, G: 60, B: 60, A: 255}
	vector.DrawFilledRect(screen, float32(p.StopButton.Rect.Min.X), float32(p.StopButton.Rect.Min.Y), float32(btnWidth), float32(btnHeight), btnColor, true)

	textBounds := text.BoundString(p.fontFace, p.StopButton.Text)
	textX := p.StopButton.Rect.Min.X + (btnWidth-textBounds.Dx())/2
	textY := p.StopButton.Rect.Min.Y + (btnHeight-textBounds.Dy())/2 - textBounds.Min.Y
	text.Draw(screen, p.StopButton.Text, p.fontFace, textX, textY, color.White)
}

func (p *InfoPanel) drawUnitInfo(screen *ebiten.Image, ecs *entity.ECS, startX, startY int) {
	id := p.TargetEntity
	col1X := startX
	col2X := startX + columnSpacing
	y := startY

	title := fmt.Sprintf("#%d %s (team %s)", id, ecs.DefIDs[id], ecs.TeamOf(id))
	text.Draw(screen, title, p.fontFace, col1X, y, config.TextLightColor)
	y += lineHeight

	if health, ok := ecs.Healths[id]; ok {
		text.Draw(screen, fmt.Sprintf("Health: %d / %d", health.Value, health.Max), p.fontFace, col1X, y, config.TextLightColor)
	}
	if fp, ok := ecs.Footprints[id]; ok {
		text.Draw(screen, fmt.Sprintf("Anchor: %s  %dx%d", fp.Anchor(), fp.Width, fp.Height), p.fontFace, col2X, y, config.TextLightColor)
	}
	y += lineHeight

	if combat, ok := ecs.Combats[id]; ok {
		text.Draw(screen, fmt.Sprintf("Damage: %d  Range: %d", combat.Damage, combat.Range), p.fontFace, col1X, y, config.TextLightColor)
		text.Draw(screen, fmt.Sprintf("Cooldown: %v  Target: %d", combat.Cooldown, combat.Target), p.fontFace, col2X, y, config.TextLightColor)
		y += lineHeight
	}

	status := ""
	if tp, ok := ecs.Teleports[id]; ok {
		status = "Teleport: " + tp.State().String()
	}
	if ammo, ok := ecs.Ammos[id]; ok {
		status += fmt.Sprintf("  Ammo: %d / %d", ammo.Remaining, ammo.Max)
	}
	if behavior, ok := ecs.Behaviors[id]; ok && behavior.Acted {
		status += "  Last: " + behavior.Last.String()
	}
	if status != "" {
		text.Draw(screen, status, p.fontFace, col1X, y, config.TextLightColor)
	}
}
