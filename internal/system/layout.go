// internal/system/layout.go
package system

import (
	"fmt"

	"go-circuit-pulse/internal/config"
	"go-circuit-pulse/internal/diagram"
	"go-circuit-pulse/internal/motion"
)

// Layout переводит клетки сетки в мировые координаты. Сетка по центру
// начала координат, y растёт вверх, строка 0 — верхняя.
type Layout struct {
	Cols, Rows int
	CellW      float64
	CellH      float64
}

// NewLayout проверяет геометрию: пустая диаграмма или клетка нулевой площади — ошибка
func NewLayout(d *diagram.Diagram, cellW, cellH float64) (Layout, error) {
	if d == nil || d.Width() == 0 || d.Height() == 0 {
		return Layout{}, fmt.Errorf("%w: empty diagram", config.ErrDegenerateGeometry)
	}
	if cellW <= 0 || cellH <= 0 {
		return Layout{}, fmt.Errorf("%w: cell size %gx%g", config.ErrDegenerateGeometry, cellW, cellH)
	}
	return Layout{Cols: d.Width(), Rows: d.Height(), CellW: cellW, CellH: cellH}, nil
}

// Anchor возвращает геометрический центр клетки (col, row)
func (l Layout) Anchor(col, row int) motion.Vec {
	return motion.Vec{
		X: (float64(col)+0.5)*l.CellW - float64(l.Cols)*l.CellW/2,
		Y: float64(l.Rows)*l.CellH/2 - (float64(row)+0.5)*l.CellH,
	}
}

// Half — половинные размеры клетки
func (l Layout) Half() motion.Vec {
	return motion.Vec{X: l.CellW / 2, Y: l.CellH / 2}
}

// Size — размер всей сетки в мировых единицах
func (l Layout) Size() (w, h float64) {
	return float64(l.Cols) * l.CellW, float64(l.Rows) * l.CellH
}

// Project переводит мировую точку в пиксели экрана заданного размера:
// начало координат в центре экрана, y перевёрнут.
func (l Layout) Project(v motion.Vec, screenW, screenH int) (float32, float32) {
	return float32(float64(screenW)/2 + v.X), float32(float64(screenH)/2 - v.Y)
}

// CellRect — экранный прямоугольник клетки: левый верхний угол и размер
func (l Layout) CellRect(col, row, screenW, screenH int) (x, y, w, h float32) {
	a := l.Anchor(col, row)
	cx, cy := l.Project(a, screenW, screenH)
	return cx - float32(l.CellW/2), cy - float32(l.CellH/2), float32(l.CellW), float32(l.CellH)
}
