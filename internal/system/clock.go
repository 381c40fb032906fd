// internal/system/clock.go
package system

import (
	"math"

	"go-circuit-pulse/internal/entity"
	"go-circuit-pulse/internal/event"
	"go-circuit-pulse/internal/motion"
)

// ClockSystem ведёт общее время демо и публикует CycleCompleted при обороте фазы
type ClockSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	cycle           float64
	maxDelta        float64
	speed           float64
	frozen          bool
}

func NewClockSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, cycle, maxDelta float64) *ClockSystem {
	cs := &ClockSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		cycle:           cycle,
		maxDelta:        maxDelta,
		speed:           1,
	}
	eventDispatcher.Subscribe(cs, event.Paused, event.Resumed)
	return cs
}

func (s *ClockSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.Paused:
		s.frozen = true
	case event.Resumed:
		s.frozen = false
	}
}

// Advance сдвигает часы на deltaTime секунд. Отрицательный шаг
// игнорируется, большой обрезается до maxDelta ещё до множителя скорости.
func (s *ClockSystem) Advance(deltaTime float64) {
	if s.frozen || deltaTime <= 0 {
		return
	}
	if s.maxDelta > 0 && deltaTime > s.maxDelta {
		deltaTime = s.maxDelta
	}
	deltaTime *= s.speed

	before := s.Cycles()
	s.ecs.GameTime += deltaTime
	if after := s.Cycles(); after > before {
		s.eventDispatcher.Dispatch(event.Event{Type: event.CycleCompleted, Cycle: after})
	}
}

// Phase — общая фаза цикла в [0, 1)
func (s *ClockSystem) Phase() float64 {
	return motion.Phase(s.ecs.GameTime, s.cycle)
}

// Cycles — число завершённых циклов
func (s *ClockSystem) Cycles() int {
	return int(math.Floor(s.ecs.GameTime / s.cycle))
}

func (s *ClockSystem) Frozen() bool { return s.frozen }

// SetSpeed задаёт множитель скорости времени, неположительные значения игнорируются
func (s *ClockSystem) SetSpeed(multiplier float64) {
	if multiplier > 0 {
		s.speed = multiplier
	}
}

func (s *ClockSystem) Speed() float64 { return s.speed }
