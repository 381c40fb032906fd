// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrDegenerateGeometry — настройки, при которых клетки вырождаются
// или фаза не определена
var ErrDegenerateGeometry = errors.New("degenerate geometry")

// CellSize — размер клетки в мировых единицах
type CellSize struct {
	Width  float64 `json:"width" mapstructure:"width"`
	Height float64 `json:"height" mapstructure:"height"`
}

// Screen — размер окна в пикселях
type Screen struct {
	Width  int `json:"width" mapstructure:"width"`
	Height int `json:"height" mapstructure:"height"`
}

// Config — всё, что приложение передаёт демке
type Config struct {
	CellSize     CellSize `json:"cellSize" mapstructure:"cellSize"`
	MarkerRadius float64  `json:"markerRadius" mapstructure:"markerRadius"`
	CycleSeconds float64  `json:"cycleSeconds" mapstructure:"cycleSeconds"`
	MaxDeltaTime float64  `json:"maxDeltaTime" mapstructure:"maxDeltaTime"`
	DiagramPath  string   `json:"diagramPath" mapstructure:"diagramPath"`
	ColorSeed    int64    `json:"colorSeed" mapstructure:"colorSeed"`
	LogLevel     string   `json:"logLevel" mapstructure:"logLevel"`
	Screen       Screen   `json:"screen" mapstructure:"screen"`
	ShowOverlay  bool     `json:"showOverlay" mapstructure:"showOverlay"`
	ShowPaths    bool     `json:"showPaths" mapstructure:"showPaths"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("cellSize.width", DefaultCellSize)
	v.SetDefault("cellSize.height", DefaultCellSize)
	v.SetDefault("markerRadius", DefaultMarkerRadius)
	v.SetDefault("cycleSeconds", DefaultCycleSeconds)
	v.SetDefault("maxDeltaTime", DefaultMaxDeltaTime)
	v.SetDefault("diagramPath", "")
	v.SetDefault("colorSeed", 1)
	v.SetDefault("logLevel", "info")
	v.SetDefault("screen.width", DefaultScreenWidth)
	v.SetDefault("screen.height", DefaultScreenHeight)
	v.SetDefault("showOverlay", true)
	v.SetDefault("showPaths", false)
}

// Default возвращает встроенные настройки с учётом переменных CIRCUIT_*.
// Паникует, если переменная окружения не приводится к типу поля.
func Default() Config {
	cfg, err := decode(newViper())
	if err != nil {
		panic(err)
	}
	return cfg
}

// newViper: вложенные ключи читаются из окружения через подчёркивание,
// cellSize.width → CIRCUIT_CELLSIZE_WIDTH
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("CIRCUIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load читает JSON-конфиг поверх значений по умолчанию. Пустой путь —
// только умолчания. Результат проходит Validate.
func Load(path string) (Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	return cfg, nil
}

// Validate отклоняет настройки, с которыми интерполятор не работает
func (c Config) Validate() error {
	switch {
	case c.CellSize.Width <= 0 || c.CellSize.Height <= 0:
		return fmt.Errorf("%w: cell size %gx%g", ErrDegenerateGeometry, c.CellSize.Width, c.CellSize.Height)
	case c.MarkerRadius <= 0:
		return fmt.Errorf("%w: marker radius %g", ErrDegenerateGeometry, c.MarkerRadius)
	case c.CycleSeconds <= 0:
		return fmt.Errorf("%w: cycle length %gs", ErrDegenerateGeometry, c.CycleSeconds)
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("invalid screen size %dx%d", c.Screen.Width, c.Screen.Height)
	}
	return nil
}
