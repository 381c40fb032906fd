// pkg/render/marker_renderer.go
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-circuit-pulse/internal/entity"
	"go-circuit-pulse/internal/motion"
	"go-circuit-pulse/internal/system"
)

// MarkerRenderer рисует маркеры по их текущим позициям
type MarkerRenderer struct {
	ecs          *entity.ECS
	screenWidth  int
	screenHeight int
}

func NewMarkerRenderer(ecs *entity.ECS, screenWidth, screenHeight int) *MarkerRenderer {
	return &MarkerRenderer{ecs: ecs, screenWidth: screenWidth, screenHeight: screenHeight}
}

// Draw рисует маркеры в порядке создания, чтобы наложение на общих краях
// клеток не менялось от кадра к кадру. Пустые клетки сущностей не имеют.
// dim затемняет все маркеры.
func (r *MarkerRenderer) Draw(screen *ebiten.Image, layout system.Layout, dim bool) {
	for _, id := range r.ecs.MarkerIDs() {
		rend, hasRend := r.ecs.Renderables[id]
		pos, hasPos := r.ecs.Positions[id]
		if !hasRend || !hasPos {
			continue
		}
		x, y := layout.Project(motion.Vec{X: pos.X, Y: pos.Y}, r.screenWidth, r.screenHeight)
		clr := rend.Color
		if dim {
			clr = DarkenColor(clr)
		}
		vector.DrawFilledCircle(screen, x, y, rend.Radius, clr, true)
	}
}
