// internal/diagram/diagram.go
package diagram

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

var (
	// ErrUnknownGlyph оборачивается каждой GlyphError
	ErrUnknownGlyph = errors.New("unknown diagram glyph")
	// ErrEmptyDiagram — в тексте нет ни одной клетки
	ErrEmptyDiagram = errors.New("empty diagram")
)

// Default — схема по умолчанию, если файл схемы не задан
//
//go:embed default.txt
var Default string

// GlyphError указывает на первый символ без директивы
type GlyphError struct {
	Row, Col int
	Glyph    rune
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("invalid cell %q at row %d, col %d", e.Glyph, e.Row, e.Col)
}

func (e *GlyphError) Unwrap() error { return ErrUnknownGlyph }

// Diagram — неизменяемая сетка символов схемы. Строки могут быть короче
// ширины, недостающие клетки читаются как пустые.
type Diagram struct {
	rows   [][]rune
	width  int
	height int
}

// Parse строит Diagram из многострочного текста. Каждая строка обрезается
// до подсчёта ширины. Сетка проверяется целиком заранее: при ошибке
// ничего не построено.
func Parse(text string) (*Diagram, error) {
	text = strings.TrimSuffix(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return nil, ErrEmptyDiagram
	}
	lines := strings.Split(text, "\n")

	d := &Diagram{rows: make([][]rune, 0, len(lines)), height: len(lines)}
	for y, line := range lines {
		line = strings.TrimSpace(line)
		if n := utf8.RuneCountInString(line); n > d.width {
			d.width = n
		}
		row := []rune(line)
		for x, r := range row {
			if _, ok := glyphs[r]; !ok {
				return nil, &GlyphError{Row: y, Col: x, Glyph: r}
			}
		}
		d.rows = append(d.rows, row)
	}
	if d.width == 0 {
		return nil, ErrEmptyDiagram
	}
	return d, nil
}

// MustParse — Parse для схем, известных на этапе компиляции
func MustParse(text string) *Diagram {
	d, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return d
}

// Load читает и разбирает файл схемы
func Load(path string) (*Diagram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read diagram file: %w", err)
	}
	d, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse diagram %s: %w", path, err)
	}
	return d, nil
}

func (d *Diagram) Width() int { return d.width }
func (d *Diagram) Height() int { return d.height }

// At возвращает символ в столбце x, строке y (строка 0 — первая)
func (d *Diagram) At(x, y int) rune {
	if y < 0 || y >= d.height || x < 0 {
		return ' '
	}
	row := d.rows[y]
	if x >= len(row) {
		return ' '
	}
	return row[x]
}

// Directive возвращает директиву клетки. Вне сетки — Blank
func (d *Diagram) Directive(x, y int) Directive {
	// Parse уже проверил все символы
	return glyphs[d.At(x, y)]
}

// Cells — количество непустых клеток
func (d *Diagram) Cells() int {
	n := 0
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			if d.Directive(x, y) != Blank {
				n++
			}
		}
	}
	return n
}

// String выводит сетку, дополняя каждую строку до полной ширины
func (d *Diagram) String() string {
	var b strings.Builder
	for y := 0; y < d.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < d.width; x++ {
			b.WriteRune(d.At(x, y))
		}
	}
	return b.String()
}
