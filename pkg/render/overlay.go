// pkg/render/overlay.go
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// OverlayStats — то, что выводит отладочная панель
type OverlayStats struct {
	Phase   float64
	Cycles  int
	Markers int
	Cols    int
	Rows    int
	Speed   float64
	TPS     float64
	Paused  bool
}

// Overlay рисует текстовую панель в левом верхнем углу
type Overlay struct {
	face  *text.GoXFace
	x, y  float64
	lineH float64
	color color.RGBA
}

func NewOverlay(x, y, lineH float64, clr color.RGBA) *Overlay {
	return &Overlay{
		face:  text.NewGoXFace(basicfont.Face7x13),
		x:     x,
		y:     y,
		lineH: lineH,
		color: clr,
	}
}

func (o *Overlay) lines(s OverlayStats) []string {
	out := []string{
		fmt.Sprintf("phase   %.3f", s.Phase),
		fmt.Sprintf("cycles  %d", s.Cycles),
		fmt.Sprintf("markers %d", s.Markers),
		fmt.Sprintf("grid    %dx%d", s.Cols, s.Rows),
		fmt.Sprintf("speed   x%g", s.Speed),
		fmt.Sprintf("tps     %.0f", s.TPS),
	}
	if s.Paused {
		out = append(out, "PAUSED")
	}
	return out
}

func (o *Overlay) Draw(screen *ebiten.Image, s OverlayStats) {
	for i, line := range o.lines(s) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(o.x, o.y+float64(i)*o.lineH)
		op.ColorScale.ScaleWithColor(o.color)
		text.Draw(screen, line, o.face, op)
	}
}

// DrawBanner затемняет экран и пишет msg по центру
func (o *Overlay) DrawBanner(screen *ebiten.Image, msg string, shade color.RGBA) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), shade, false)

	w, h := text.Measure(msg, o.face, o.lineH)
	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(b.Dx())-w)/2, (float64(b.Dy())-h)/2)
	op.ColorScale.ScaleWithColor(o.color)
	text.Draw(screen, msg, o.face, op)
}
