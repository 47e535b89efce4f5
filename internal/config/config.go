// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	// Симуляция
	StepDuration      = 28 * time.Millisecond  // один шаг движения
	AnimationInterval = 3                      // каждый 3-й шаг: анимационный тик (~84ms)
	MaxFrameDelta     = 250 * time.Millisecond // защита от "spiral of death" после подвисания

	DefaultGridWidth  = 16
	DefaultGridHeight = 12

	TeleportSearchRadius = 5

	// Frame counts used when a unit definition leaves them at zero.
	DefaultAttackFrames        = 4
	DefaultTeleportStartFrames = 3
	DefaultTeleportEndFrames   = 3
	DeathFrames                = 4

	ProjectileCellsPerFrame = 2

	DefaultMoveSpeed = 4.0 // cells per second

	// Отрисовка
	CellSize       = 40.0
	GridOffsetX    = 20.0
	GridOffsetY    = 60.0
	ScreenWidth    = 720
	ScreenHeight   = 580
	HealthBarH     = 4.0
	AoeFlashFrames = 20 // кадров ebiten, пока подсвечены клетки AoE
	HUDTextX       = 20
	HUDTextY       = 24
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	CellColor       = color.RGBA{70, 100, 120, 220}
	CellStrokeColor = color.RGBA{110, 140, 160, 255}
	AoeCellColor    = color.RGBA{255, 200, 0, 120}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	HealthBarColor  = color.RGBA{50, 205, 50, 255}
	HealthBackColor = color.RGBA{90, 20, 20, 255}
	ProjectileColor = color.RGBA{255, 255, 255, 255}
	PausedColor     = color.RGBA{220, 60, 60, 220}
	TeamColors      = []color.RGBA{
		{255, 50, 50, 255},  // Red
		{50, 100, 255, 255}, // Blue
		{50, 255, 50, 255},  // Green
		{180, 50, 230, 255}, // Purple
	}
	StrokeWidth float32 = 1.0
)
