// pkg/render/grid_renderer.go
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-circuit-pulse/internal/diagram"
	"go-circuit-pulse/internal/motion"
	"go-circuit-pulse/internal/system"
)

// GridRenderer рисует статичную часть сцены: контуры клеток и
// необязательные направляющие путей. Оба слоя запекаются заранее.
type GridRenderer struct {
	screenWidth  int
	screenHeight int
	colors       GridColors
	gridImage    *ebiten.Image
	pathImage    *ebiten.Image
}

func NewGridRenderer(screenWidth, screenHeight int, colors GridColors) *GridRenderer {
	return &GridRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		colors:       colors,
		gridImage:    ebiten.NewImage(screenWidth, screenHeight),
		pathImage:    ebiten.NewImage(screenWidth, screenHeight),
	}
}

// RenderGridImage перерисовывает задник, нужно вызывать после смены диаграммы
func (r *GridRenderer) RenderGridImage(d *diagram.Diagram, layout system.Layout) {
	r.gridImage.Clear()
	r.pathImage.Clear()

	for row := 0; row < layout.Rows; row++ {
		for col := 0; col < layout.Cols; col++ {
			dir := d.Directive(col, row)
			if dir == diagram.Blank {
				continue
			}
			x, y, w, h := layout.CellRect(col, row, r.screenWidth, r.screenHeight)
			vector.StrokeRect(r.gridImage, x, y, w, h, r.colors.StrokeWidth, r.colors.GridColor, false)

			if dir.Class() == diagram.ClassCenter {
				continue
			}
			from, to := motion.Endpoints(dir, layout.Anchor(col, row), layout.Half())
			fx, fy := layout.Project(from, r.screenWidth, r.screenHeight)
			tx, ty := layout.Project(to, r.screenWidth, r.screenHeight)
			vector.StrokeLine(r.pathImage, fx, fy, tx, ty, r.colors.StrokeWidth, r.colors.PathColor, true)
		}
	}
}

// Draw заливает фон и выводит запечённые слои
func (r *GridRenderer) Draw(screen *ebiten.Image, showPaths bool) {
	screen.Fill(r.colors.BackgroundColor)
	screen.DrawImage(r.gridImage, nil)
	if showPaths {
		screen.DrawImage(r.pathImage, nil)
	}
}
