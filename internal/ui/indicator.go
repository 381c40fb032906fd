// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-circuit-pulse/internal/event"
)

// PhaseIndicator показывает общую фазу точкой на кольце и вспыхивает
// на каждом завершённом цикле
type PhaseIndicator struct {
	X, Y          float32
	Radius        float32
	LastPulseTime time.Time
	border        color.RGBA
}

func NewPhaseIndicator(x, y, radius float32, border color.RGBA) *PhaseIndicator {
	return &PhaseIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
		border: border,
	}
}

// OnEvent реализует интерфейс event.Listener.
func (i *PhaseIndicator) OnEvent(e event.Event) {
	if e.Type == event.CycleCompleted {
		i.LastPulseTime = time.Now()
	}
}

// Draw отрисовывает индикатор
func (i *PhaseIndicator) Draw(screen *ebiten.Image, phase float64, stateColor color.RGBA) {
	elapsed := time.Since(i.LastPulseTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 2, i.border, true)

	// фаза 0 — сверху, по часовой стрелке
	angle := phase*2*math.Pi - math.Pi/2
	dx := float32(math.Cos(angle)) * currentRadius
	dy := float32(math.Sin(angle)) * currentRadius
	vector.DrawFilledCircle(screen, i.X+dx, i.Y+dy, currentRadius/4, i.border, true)
}
