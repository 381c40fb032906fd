// internal/ui/speed_button.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// SpeedButton — круглая кнопка переключения скорости анимации
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	colors        []color.RGBA
	border        color.RGBA
	face          *text.GoXFace
}

func NewSpeedButton(x, y, size float32, colors []color.RGBA, border color.RGBA) *SpeedButton {
	return &SpeedButton{
		X:      x,
		Y:      y,
		Size:   size,
		colors: colors,
		border: border,
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// Draw рисует кнопку; state — индекс текущей скорости, multiplier — подпись
func (b *SpeedButton) Draw(screen *ebiten.Image, state int, multiplier float64) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := b.Size * float32(scale)

	vector.DrawFilledCircle(screen, b.X, b.Y, r, b.colors[state%len(b.colors)], true)
	vector.StrokeCircle(screen, b.X, b.Y, r, 2, b.border, true)

	label := fmt.Sprintf("x%g", multiplier)
	w, h := text.Measure(label, b.face, 13)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(b.X)-w/2, float64(b.Y)-h/2)
	op.ColorScale.ScaleWithColor(b.border)
	text.Draw(screen, label, b.face, op)
}

// IsClicked проверяет, был ли клик внутри кнопки
func (b *SpeedButton) IsClicked(mx, my int) bool {
	dx := float32(mx) - b.X
	dy := float32(my) - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size
}

// HandleClick запускает анимацию нажатия
func (b *SpeedButton) HandleClick() {
	b.LastClickTime = time.Now()
}
