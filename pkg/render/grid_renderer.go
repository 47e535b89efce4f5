package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-grid-battle/internal/system"
	"go-grid-battle/pkg/gridmap"
)

const hudLineHeight = 16

type GridRenderer struct {
	width, height    int
	cellSize         float64
	offsetX, offsetY float64
	colors           *MapColors
	mapImage         *ebiten.Image // Поле для предрендеренной сетки
}

func NewGridRenderer(width, height int, cellSize, offsetX, offsetY float64, screenWidth, screenHeight int, colors *MapColors) *GridRenderer {
	renderer := &GridRenderer{
		width:    width,
		height:   height,
		cellSize: cellSize,
		offsetX:  offsetX,
		offsetY:  offsetY,
		colors:   colors,
		mapImage: ebiten.NewImage(screenWidth, screenHeight),
	}

	// Отрисовываем сетку один раз при инициализации
	renderer.RenderMapImage()
	return renderer
}

// RenderMapImage создаёт предрендеренное изображение задника
func (r *GridRenderer) RenderMapImage() {
	r.mapImage.Clear()
	r.mapImage.Fill(r.colors.BackgroundColor)
	for row := 0; row < r.height; row++ {
		for col := 0; col < r.width; col++ {
			x, y := r.cellOrigin(gridmap.Cell{Col: col, Row: row})
			size := float32(r.cellSize)
			vector.DrawFilledRect(r.mapImage, x, y, size, size, r.colors.CellColor, false)
			vector.StrokeRect(r.mapImage, x, y, size, size, r.colors.StrokeWidth, r.colors.CellStrokeColor, false)
		}
	}
}

// Draw рисует сетку, подсвеченные клетки и сущности.
func (r *GridRenderer) Draw(screen *ebiten.Image, renderSystem *system.RenderSystem, highlight []gridmap.Cell) {
	screen.DrawImage(r.mapImage, nil)

	size := float32(r.cellSize)
	for _, c := range highlight {
		x, y := r.cellOrigin(c)
		vector.DrawFilledRect(screen, x, y, size, size, r.colors.AoeCellColor, false)
	}

	renderSystem.Draw(screen)
}

// DrawHUD prints lines top-left with the fixed bitmap face.
func (r *GridRenderer) DrawHUD(screen *ebiten.Image, x, y int, lines []string) {
	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, x, y+i*hudLineHeight, r.colors.TextColor)
	}
}

// DrawBanner dims the whole screen and prints a centered message.
func (r *GridRenderer) DrawBanner(screen *ebiten.Image, msg string, clr color.Color) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 128}, false)
	advance := basicfont.Face7x13.Advance * len(msg)
	text.Draw(screen, msg, basicfont.Face7x13, (w-advance)/2, h/2, clr)
}

// ScreenToCell переводит координаты экрана в клетку сетки.
func (r *GridRenderer) ScreenToCell(x, y int) (gridmap.Cell, bool) {
	fx := (float64(x) - r.offsetX) / r.cellSize
	fy := (float64(y) - r.offsetY) / r.cellSize
	if fx < 0 || fy < 0 {
		return gridmap.Cell{}, false
	}
	c := gridmap.Cell{Col: int(fx), Row: int(fy)}
	if c.Col >= r.width || c.Row >= r.height {
		return gridmap.Cell{}, false
	}
	return c, true
}

func (r *GridRenderer) cellOrigin(c gridmap.Cell) (float32, float32) {
	return float32(r.offsetX + float64(c.Col)*r.cellSize), float32(r.offsetY + float64(c.Row)*r.cellSize)
}
