// internal/app/bootstrap.go
package app

import (
	"io"

	"github.com/rs/zerolog"

	"go-circuit-pulse/internal/config"
	"go-circuit-pulse/internal/diagram"
	"go-circuit-pulse/internal/logging"
)

// Options — параметры командной строки
type Options struct {
	ConfigPath  string
	DiagramPath string // перекрывает diagramPath из конфига
}

// Bootstrap загружает конфиг и схему и собирает Demo. Любая ошибка здесь
// фатальна: неверный символ или вырожденная геометрия останавливают
// программу до появления первого маркера.
func Bootstrap(opts Options, logOut io.Writer) (*Demo, zerolog.Logger, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	if opts.DiagramPath != "" {
		cfg.DiagramPath = opts.DiagramPath
	}
	logger := logging.New(cfg.LogLevel, logOut)

	var d *diagram.Diagram
	if cfg.DiagramPath == "" {
		d, err = diagram.Parse(diagram.Default)
	} else {
		d, err = diagram.Load(cfg.DiagramPath)
	}
	if err != nil {
		return nil, logger, err
	}
	logger.Info().
		Str("diagram", cfg.DiagramPath).
		Int("cols", d.Width()).
		Int("rows", d.Height()).
		Float64("cycle", cfg.CycleSeconds).
		Msg("diagram loaded")

	demo, err := NewDemo(cfg, d, logger)
	if err != nil {
		return nil, logger, err
	}
	return demo, logger, nil
}
