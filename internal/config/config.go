// internal/config/config.go
package config

import "image/color"

const (
	WindowTitle = "Circuit Pulses"

	DefaultScreenWidth  = 800
	DefaultScreenHeight = 700
	DefaultCellSize     = 50.0
	DefaultMarkerRadius = 10.0
	DefaultCycleSeconds = 1.0
	DefaultMaxDeltaTime = 0.06

	OverlayOffsetX   = 10
	OverlayOffsetY   = 10
	OverlayLineH     = 16
	GridStrokeWidth  = 1.0
	MarkerColorNoise = 18.0 // разброс яркости маркеров, 0..255

	IndicatorOffsetX   = 30
	IndicatorRadius    = 12.0
	SpeedButtonOffsetX = 70 // Отступ слева от индикатора
	SpeedButtonSize    = 16.0
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	GridColor       = color.RGBA{40, 40, 55, 255}
	PathColor       = color.RGBA{255, 255, 0, 96}
	MarkerColor     = color.RGBA{240, 240, 240, 255}
	CenterColor     = color.RGBA{70, 130, 180, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	PauseShade      = color.RGBA{0, 0, 0, 128}
	RunningColor    = color.RGBA{70, 130, 180, 220}
	PausedColor     = color.RGBA{220, 60, 60, 220}
	UIBorderColor   = color.RGBA{240, 240, 240, 255}

	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{220, 60, 60, 220},   // x2
		{194, 178, 128, 255}, // x4, песочно-жёлтый
	}
)
