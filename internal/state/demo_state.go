// internal/state/demo_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"go-circuit-pulse/internal/app"
	"go-circuit-pulse/internal/config"
	"go-circuit-pulse/internal/diagram"
	"go-circuit-pulse/internal/event"
	"go-circuit-pulse/internal/ui"
	"go-circuit-pulse/pkg/render"
)

// DemoState — основное состояние: анимация импульсов
type DemoState struct {
	sm      *StateMachine
	demo    *app.Demo
	grid    *render.GridRenderer
	markers *render.MarkerRenderer
	overlay *render.Overlay
	speed   *ui.SpeedButton
	phase   *ui.PhaseIndicator
	logger  zerolog.Logger
}

func NewDemoState(sm *StateMachine, demo *app.Demo) *DemoState {
	w, h := demo.Config.Screen.Width, demo.Config.Screen.Height

	grid := render.NewGridRenderer(w, h, render.GridColors{
		BackgroundColor: config.BackgroundColor,
		GridColor:       config.GridColor,
		PathColor:       config.PathColor,
		StrokeWidth:     config.GridStrokeWidth,
	})
	grid.RenderGridImage(demo.Diagram, demo.Layout) // задник рисуется один раз

	indicatorX := float32(w - config.IndicatorOffsetX)
	indicatorY := float32(config.IndicatorOffsetX)
	phase := ui.NewPhaseIndicator(indicatorX, indicatorY, config.IndicatorRadius, config.UIBorderColor)
	demo.EventDispatcher.Subscribe(phase, event.CycleCompleted)

	return &DemoState{
		sm:      sm,
		demo:    demo,
		grid:    grid,
		markers: render.NewMarkerRenderer(demo.ECS, w, h),
		overlay: render.NewOverlay(config.OverlayOffsetX, config.OverlayOffsetY, config.OverlayLineH, config.TextLightColor),
		speed:   ui.NewSpeedButton(indicatorX-config.SpeedButtonOffsetX, indicatorY, config.SpeedButtonSize, config.SpeedButtonColors, config.UIBorderColor),
		phase:   phase,
		logger:  demo.Logger.With().Str("state", "demo").Logger(),
	}
}

func (s *DemoState) Enter() {
	// Ничего не делаем при входе
}

func (s *DemoState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		s.demo.ToggleOverlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		s.demo.TogglePaths()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.handleSpeedClick()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if x, y := ebiten.CursorPosition(); s.speed.IsClicked(x, y) {
			s.handleSpeedClick()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.reloadDiagram()
	}

	s.demo.Update(deltaTime)
	return nil
}

func (s *DemoState) handleSpeedClick() {
	s.demo.HandleSpeedClick()
	s.speed.HandleClick()
}

// reloadDiagram перечитывает файл диаграммы; при ошибке остаётся старая
func (s *DemoState) reloadDiagram() {
	path := s.demo.Config.DiagramPath
	if path == "" {
		s.logger.Info().Msg("no diagram file configured, nothing to reload")
		return
	}
	d, err := diagram.Load(path)
	if err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("diagram reload failed")
		return
	}
	if err := s.demo.Reload(d); err != nil {
		s.logger.Error().Err(err).Msg("diagram reload failed")
		return
	}
	s.grid.RenderGridImage(s.demo.Diagram, s.demo.Layout)
	s.logger.Info().Str("path", path).Int("markers", s.demo.MarkerCount()).Msg("diagram reloaded")
}

func (s *DemoState) Draw(screen *ebiten.Image) {
	s.grid.Draw(screen, s.demo.ShowPaths)
	s.markers.Draw(screen, s.demo.Layout, s.demo.IsPaused())

	stateColor := config.RunningColor
	if s.demo.IsPaused() {
		stateColor = config.PausedColor
	}
	s.phase.Draw(screen, s.demo.Phase(), stateColor)
	s.speed.Draw(screen, s.demo.SpeedIndex(), s.demo.Speed())

	if s.demo.ShowOverlay {
		s.overlay.Draw(screen, render.OverlayStats{
			Phase:   s.demo.Phase(),
			Cycles:  s.demo.Cycles(),
			Markers: s.demo.MarkerCount(),
			Cols:    s.demo.Layout.Cols,
			Rows:    s.demo.Layout.Rows,
			Speed:   s.demo.Speed(),
			TPS:     ebiten.ActualTPS(),
			Paused:  s.demo.IsPaused(),
		})
	}
}

func (s *DemoState) Exit() {
	// Ничего не делаем при выходе
}

// Demo возвращает демку, которой управляет состояние
func (s *DemoState) Demo() *app.Demo {
	return s.demo
}
