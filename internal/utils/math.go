// internal/utils/math.go
package utils

import "math"

// Remap переносит input из диапазона [inMin, inMax] в [outMin, outMax] без ограничения.
func Remap(input, inMin, inMax, outMin, outMax float64) float64 {
	return (input-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}

// Wrap возвращает x по модулю period в диапазоне [0, period)
func Wrap(x, period float64) float64 {
	m := math.Mod(x, period)
	if m < 0 {
		m += period
	}
	// math.Mod(-ε, p)+p может округлиться до p
	if m >= period {
		m = 0
	}
	return m
}
