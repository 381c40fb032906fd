// internal/diagram/directive.go
package diagram

// Directive — тип движения маркера внутри одной клетки
type Directive int

const (
	Blank Directive = iota
	Center
	Left
	BottomToLeft
	TopToLeft
	Right
	BottomToRight
	TopToRight
	Up
	LeftToTop
	RightToTop
	Down
	LeftToBottom
	RightToBottom
)

// Class — семейство директив с точки зрения интерполятора
type Class int

const (
	ClassBlank Class = iota
	ClassCenter
	ClassStraight
	ClassCorner
)

// Тонкие линии — по часовой стрелке, жирные — против.
var glyphs = map[rune]Directive{
	' ': Blank,
	'0': Center,
	'←': Left,
	'┓': BottomToLeft,
	'┘': TopToLeft,
	'→': Right,
	'┌': BottomToRight,
	'┗': TopToRight,
	'↑': Up,
	'┛': LeftToTop,
	'└': RightToTop,
	'↓': Down,
	'┐': LeftToBottom,
	'┏': RightToBottom,
}

var directiveNames = [...]string{
	Blank:         "Blank",
	Center:        "Center",
	Left:          "Left",
	BottomToLeft:  "BottomToLeft",
	TopToLeft:     "TopToLeft",
	Right:         "Right",
	BottomToRight: "BottomToRight",
	TopToRight:    "TopToRight",
	Up:            "Up",
	LeftToTop:     "LeftToTop",
	RightToTop:    "RightToTop",
	Down:          "Down",
	LeftToBottom:  "LeftToBottom",
	RightToBottom: "RightToBottom",
}

// DirectiveFor ищет директиву для одного символа схемы
func DirectiveFor(r rune) (Directive, bool) {
	d, ok := glyphs[r]
	return d, ok
}

// Glyph возвращает символ схемы для d
func (d Directive) Glyph() rune {
	for r, dd := range glyphs {
		if dd == d {
			return r
		}
	}
	return ' '
}

func (d Directive) String() string {
	if d < 0 || int(d) >= len(directiveNames) {
		return "Directive(?)"
	}
	return directiveNames[d]
}

// Class сообщает, к какому семейству относится d
func (d Directive) Class() Class {
	switch d {
	case Blank:
		return ClassBlank
	case Center:
		return ClassCenter
	case Left, Right, Up, Down:
		return ClassStraight
	default:
		return ClassCorner
	}
}

// All возвращает все директивы в порядке объявления
func All() []Directive {
	out := make([]Directive, 0, len(directiveNames))
	for d := Blank; d <= RightToBottom; d++ {
		out = append(out, d)
	}
	return out
}
