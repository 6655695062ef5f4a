package text

import (
	"unicode/utf8"

	"github.com/gogpu/canvas"
)

// Fill fills s with the context's fill style, baseline at y.
func Fill(c *canvas.Context, f *Face, x, y, size float64, s string) error {
	p := canvas.NewPath()
	if _, err := f.AppendString(p, x, y, size, s); err != nil {
		return err
	}
	canvas.Logger().Debug("text: fill", "runes", utf8.RuneCountInString(s), "elements", p.Len())
	return c.FillPath(p)
}

// Stroke strokes the outlines of s with the context's stroke style.
func Stroke(c *canvas.Context, f *Face, x, y, size float64, s string) error {
	p := canvas.NewPath()
	if _, err := f.AppendString(p, x, y, size, s); err != nil {
		return err
	}
	return c.StrokePath(p)
}
