// Package text turns strings into glyph outlines on a canvas.Path.
//
// Glyphs are looked up rune by rune in an OpenType or TrueType face after
// NFC normalization, with pair kerning when the face carries it. There is
// no shaping, bidi or line layout: a string becomes one run of glyphs on a
// single baseline.
//
// # Example usage
//
//	face, err := text.DefaultFace()
//	if err != nil {
//	    return err
//	}
//	p := canvas.NewPath()
//	if _, err := face.AppendString(p, 10, 40, 24, "Hello"); err != nil {
//	    return err
//	}
//	return ctx.FillPath(p)
package text
