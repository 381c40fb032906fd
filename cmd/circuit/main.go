// cmd/circuit/main.go
package main

import (
	"errors"
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"go-circuit-pulse/internal/app"
	"go-circuit-pulse/internal/config"
	"go-circuit-pulse/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	screenWidth    int
	screenHeight   int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	// ограничение больших шагов делает ClockSystem
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenWidth, a.screenHeight
}

func main() {
	configPath := flag.String("config", "", "path to JSON config file")
	diagramPath := flag.String("diagram", "", "path to diagram text file (overrides config)")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	demo, logger, err := app.Bootstrap(app.Options{
		ConfigPath:  *configPath,
		DiagramPath: *diagramPath,
	}, os.Stderr)
	if err != nil {
		fatal(logger, err)
	}

	if *pprofAddr != "" {
		go func() {
			logger.Warn().Err(http.ListenAndServe(*pprofAddr, nil)).Msg("pprof server stopped")
		}()
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewDemoState(sm, demo))

	cfg := demo.Config
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		screenWidth:    cfg.Screen.Width,
		screenHeight:   cfg.Screen.Height,
	}
	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(logger, err)
	}
}

func fatal(logger zerolog.Logger, err error) {
	if logger.GetLevel() == zerolog.Disabled {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	logger.Fatal().Err(err).Msg("startup failed")
}
