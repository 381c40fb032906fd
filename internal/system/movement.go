// internal/system/movement.go
package system

import (
	"go-circuit-pulse/internal/entity"
	"go-circuit-pulse/internal/motion"
)

// MovementSystem обновляет позиции маркеров по общей фазе цикла
type MovementSystem struct {
	ecs  *entity.ECS
	half motion.Vec
}

func NewMovementSystem(ecs *entity.ECS, layout Layout) *MovementSystem {
	return &MovementSystem{ecs: ecs, half: layout.Half()}
}

// Update ставит каждый маркер в положение для phase. Маркеры
// друг от друга не зависят.
func (s *MovementSystem) Update(phase float64) {
	for id, m := range s.ecs.Markers {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		p := motion.Position(m.Directive, motion.Vec{X: m.AnchorX, Y: m.AnchorY}, s.half, phase)
		pos.X, pos.Y = p.X, p.Y
	}
}
