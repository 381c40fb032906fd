// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-circuit-pulse/internal/config"
	"go-circuit-pulse/pkg/render"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

type PauseState struct {
	stateMachine  *StateMachine
	previousState *DemoState
	overlay       *render.Overlay
}

func NewPauseState(sm *StateMachine, prevState *DemoState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		overlay:       render.NewOverlay(0, 0, config.OverlayLineH, config.TextLightColor),
	}
}

// Enter останавливает общие часы, маркеры замирают на текущей фазе
func (s *PauseState) Enter() {
	s.previousState.Demo().SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)
	s.overlay.DrawBanner(screen, "PAUSED", config.PauseShade)
}

func (s *PauseState) Exit() {
	s.previousState.Demo().SetPaused(false)
}
