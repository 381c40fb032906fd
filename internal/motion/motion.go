// internal/motion/motion.go
package motion

import (
	"go-circuit-pulse/internal/diagram"
	"go-circuit-pulse/internal/utils"
)

// Vec — точка в мировых единицах, y вверх
type Vec struct {
	X, Y float64
}

// Phase — доля текущего цикла, пройденная к моменту elapsed, в [0, 1).
// cycle > 0, это гарантирует проверка конфига.
func Phase(elapsed, cycle float64) float64 {
	return utils.Wrap(elapsed, cycle) / cycle
}

// sweep — одна ось: от from до to за полный цикл
func sweep(t, from, to float64) float64 {
	return utils.Remap(t, 0, 1, from, to)
}

// Endpoints возвращает начало (t=0) и цель (t→1) маркера с директивой d.
// У углов ось входа идёт от края к центру, ось выхода от центра к краю,
// поэтому путь срезает угол по прямой.
func Endpoints(d diagram.Directive, anchor, half Vec) (from, to Vec) {
	x, y := anchor.X, anchor.Y
	hw, hh := half.X, half.Y

	switch d {
	case diagram.Left:
		return Vec{x + hw, y}, Vec{x - hw, y}
	case diagram.Right:
		return Vec{x - hw, y}, Vec{x + hw, y}
	case diagram.Up:
		return Vec{x, y - hh}, Vec{x, y + hh}
	case diagram.Down:
		return Vec{x, y + hh}, Vec{x, y - hh}

	case diagram.BottomToLeft:
		return Vec{x, y - hh}, Vec{x - hw, y}
	case diagram.TopToLeft:
		return Vec{x, y + hh}, Vec{x - hw, y}
	case diagram.BottomToRight:
		return Vec{x, y - hh}, Vec{x + hw, y}
	case diagram.TopToRight:
		return Vec{x, y + hh}, Vec{x + hw, y}
	case diagram.LeftToTop:
		return Vec{x - hw, y}, Vec{x, y + hh}
	case diagram.RightToTop:
		return Vec{x + hw, y}, Vec{x, y + hh}
	case diagram.LeftToBottom:
		return Vec{x - hw, y}, Vec{x, y - hh}
	case diagram.RightToBottom:
		return Vec{x + hw, y}, Vec{x, y - hh}
	}

	// Blank и Center стоят на месте
	return anchor, anchor
}

// Position — положение маркера с директивой d в фазе t.
// Определена для всех директив.
func Position(d diagram.Directive, anchor, half Vec, t float64) Vec {
	from, to := Endpoints(d, anchor, half)
	return Vec{
		X: sweep(t, from.X, to.X),
		Y: sweep(t, from.Y, to.Y),
	}
}
