// internal/app/demo.go
package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"go-circuit-pulse/internal/config"
	"go-circuit-pulse/internal/diagram"
	"go-circuit-pulse/internal/entity"
	"go-circuit-pulse/internal/event"
	"go-circuit-pulse/internal/logging"
	"go-circuit-pulse/internal/system"
	"go-circuit-pulse/internal/utils"
)

// SpeedMultipliers — доступные скорости анимации, переключаются по кругу
var SpeedMultipliers = []float64{1, 2, 4}

// Demo хранит состояние демки и связывает системы. Движок не трогает,
// пакет state вызывает его раз в кадр.
type Demo struct {
	Config          config.Config
	Diagram         *diagram.Diagram
	Layout          system.Layout
	ECS             *entity.ECS
	ClockSystem     *system.ClockSystem
	SpawnSystem     *system.SpawnSystem
	MovementSystem  *system.MovementSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Logger          zerolog.Logger

	ShowOverlay bool
	ShowPaths   bool

	speedIndex int
	paused     bool
}

// NewDemo проверяет геометрию, создаёт по маркеру на непустую клетку
// и ставит все маркеры в фазу 0
func NewDemo(cfg config.Config, d *diagram.Diagram, logger zerolog.Logger) (*Demo, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	layout, err := system.NewLayout(d, cfg.CellSize.Width, cfg.CellSize.Height)
	if err != nil {
		return nil, err
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(cfg.ColorSeed)
	g := &Demo{
		Config:          cfg,
		Diagram:         d,
		Layout:          layout,
		ECS:             ecs,
		ClockSystem:     system.NewClockSystem(ecs, eventDispatcher, cfg.CycleSeconds, cfg.MaxDeltaTime),
		SpawnSystem:     system.NewSpawnSystem(ecs, eventDispatcher, rng, cfg.MarkerRadius),
		MovementSystem:  system.NewMovementSystem(ecs, layout),
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		Logger:          logger.With().Str("component", "demo").Logger(),
		ShowOverlay:     cfg.ShowOverlay,
		ShowPaths:       cfg.ShowPaths,
	}

	listener := &DemoEventListener{
		logger:  g.Logger,
		sampled: logging.Sampled(g.Logger, 60),
	}
	eventDispatcher.Subscribe(listener, event.MarkersSpawned, event.CycleCompleted, event.Paused, event.Resumed)

	g.SpawnSystem.Spawn(d, layout)
	g.MovementSystem.Update(g.Phase())
	return g, nil
}

// Update продвигает общие часы и двигает все маркеры
func (g *Demo) Update(deltaTime float64) {
	g.ClockSystem.Advance(deltaTime)
	g.MovementSystem.Update(g.Phase())
}

// Reload подменяет схему. Часы не сбрасываются, новые маркеры
// сразу идут в такт
func (g *Demo) Reload(d *diagram.Diagram) error {
	layout, err := system.NewLayout(d, g.Config.CellSize.Width, g.Config.CellSize.Height)
	if err != nil {
		return fmt.Errorf("reload diagram: %w", err)
	}
	g.Diagram = d
	g.Layout = layout
	g.MovementSystem = system.NewMovementSystem(g.ECS, layout)
	g.SpawnSystem.Spawn(d, layout)
	g.MovementSystem.Update(g.Phase())
	return nil
}

func (g *Demo) Phase() float64 { return g.ClockSystem.Phase() }
func (g *Demo) Cycles() int { return g.ClockSystem.Cycles() }
func (g *Demo) MarkerCount() int { return len(g.ECS.Markers) }
func (g *Demo) IsPaused() bool { return g.paused }
func (g *Demo) Speed() float64 { return SpeedMultipliers[g.speedIndex] }
func (g *Demo) SpeedIndex() int { return g.speedIndex }
func (g *Demo) GameTime() float64 { return g.ECS.GameTime }

// SetPaused останавливает или возобновляет часы через диспетчер событий
func (g *Demo) SetPaused(paused bool) {
	if g.paused == paused {
		return
	}
	g.paused = paused
	if paused {
		g.EventDispatcher.Dispatch(event.Event{Type: event.Paused})
	} else {
		g.EventDispatcher.Dispatch(event.Event{Type: event.Resumed})
	}
}

// HandleSpeedClick переключает x1 → x2 → x4 → x1
func (g *Demo) HandleSpeedClick() {
	g.speedIndex = (g.speedIndex + 1) % len(SpeedMultipliers)
	g.ClockSystem.SetSpeed(SpeedMultipliers[g.speedIndex])
	g.Logger.Debug().Float64("speed", g.Speed()).Msg("speed changed")
}

func (g *Demo) ToggleOverlay() { g.ShowOverlay = !g.ShowOverlay }
func (g *Demo) TogglePaths() { g.ShowPaths = !g.ShowPaths }

// DemoEventListener пишет в лог события демо
type DemoEventListener struct {
	logger  zerolog.Logger
	sampled zerolog.Logger
}

// OnEvent реализует интерфейс event.Listener.
func (l *DemoEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.MarkersSpawned:
		l.logger.Info().Int("markers", e.Markers).Msg("markers spawned")
	case event.CycleCompleted:
		l.sampled.Debug().Int("cycle", e.Cycle).Msg("cycle completed")
	case event.Paused, event.Resumed:
		l.logger.Info().Str("event", string(e.Type)).Msg("clock state changed")
	}
}
