// internal/component/marker.go
package component

import "go-circuit-pulse/internal/diagram"

// Marker — импульс, привязанный к клетке схемы. Якорь — центр клетки,
// после создания не меняется, двигается только Position
type Marker struct {
	Col, Row  int
	AnchorX   float64
	AnchorY   float64
	Directive diagram.Directive
}
