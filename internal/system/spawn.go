// internal/system/spawn.go
package system

import (
	"image/color"

	"go-circuit-pulse/internal/component"
	"go-circuit-pulse/internal/config"
	"go-circuit-pulse/internal/diagram"
	"go-circuit-pulse/internal/entity"
	"go-circuit-pulse/internal/event"
	"go-circuit-pulse/internal/utils"
)

// SpawnSystem создаёт по одному маркеру на каждую непустую клетку
type SpawnSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService
	radius          float32
}

func NewSpawnSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService, radius float64) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		radius:          float32(radius),
	}
}

// Spawn заменяет все маркеры новыми для d. Пустые клетки сущностей
// не получают. Возвращает число созданных маркеров.
func (s *SpawnSystem) Spawn(d *diagram.Diagram, layout Layout) int {
	s.ecs.Clear()

	count := 0
	for row := 0; row < layout.Rows; row++ {
		for col := 0; col < layout.Cols; col++ {
			dir := d.Directive(col, row)
			if dir == diagram.Blank {
				continue
			}
			anchor := layout.Anchor(col, row)

			id := s.ecs.NewEntity()
			s.ecs.Markers[id] = &component.Marker{
				Col:       col,
				Row:       row,
				AnchorX:   anchor.X,
				AnchorY:   anchor.Y,
				Directive: dir,
			}
			s.ecs.Positions[id] = &component.Position{X: anchor.X, Y: anchor.Y}
			s.ecs.Renderables[id] = &component.Renderable{
				Color:  s.colorFor(dir),
				Radius: s.radius,
			}
			count++
		}
	}

	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: event.MarkersSpawned, Markers: count})
	}
	return count
}

func (s *SpawnSystem) colorFor(d diagram.Directive) color.RGBA {
	base := config.MarkerColor
	if d == diagram.Center {
		base = config.CenterColor
	}
	if s.rng == nil {
		return base
	}
	// лёгкий разброс яркости, чтобы соседние импульсы различались
	shift := s.rng.Jitter(0, config.MarkerColorNoise)
	return color.RGBA{
		R: clampChannel(float64(base.R) + shift),
		G: clampChannel(float64(base.G) + shift),
		B: clampChannel(float64(base.B) + shift),
		A: base.A,
	}
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
