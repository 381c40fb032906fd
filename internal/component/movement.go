// internal/component/movement.go
package component

// Position — компонент позиции, мировые координаты (y вверх)
type Position struct {
	X, Y float64
}
