package text

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/canvas/internal/cache"
)

// glyphCacheSize bounds the number of glyph outlines kept per face.
const glyphCacheSize = 1024

// glyphKey identifies a glyph outline at one size.
type glyphKey struct {
	index sfnt.GlyphIndex
	ppem  fixed.Int26_6
}

// Face is a parsed font. It is safe for concurrent use.
type Face struct {
	font *opentype.Font

	mu  sync.Mutex
	buf sfnt.Buffer

	glyphs *cache.Cache[glyphKey, sfnt.Segments]
}

// Metrics are vertical font metrics at a given size, in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the em box.
	Ascent float64
	// Descent is the distance from the baseline to the bottom, positive
	// downward.
	Descent float64
	// Height is the recommended baseline-to-baseline distance.
	Height float64
}

// NewFace parses OpenType or TrueType font data.
func NewFace(data []byte) (*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &Face{
		font:   f,
		glyphs: cache.New[glyphKey, sfnt.Segments](glyphCacheSize),
	}, nil
}

var defaultFace = sync.OnceValues(func() (*Face, error) {
	return NewFace(goregular.TTF)
})

// DefaultFace returns the bundled Go Regular face.
func DefaultFace() (*Face, error) {
	return defaultFace()
}

// Name returns the font family name, or "" if the face has none.
func (f *Face) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, err := f.font.Name(&f.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// Metrics returns the face's vertical metrics at size pixels per em.
func (f *Face) Metrics(size float64) (Metrics, error) {
	ppem, err := toPPEM(size)
	if err != nil {
		return Metrics{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.font.Metrics(&f.buf, ppem, font.HintingNone)
	if err != nil {
		return Metrics{}, fmt.Errorf("text: failed to read metrics: %w", err)
	}
	return Metrics{
		Ascent:  fixedToFloat64(m.Ascent),
		Descent: fixedToFloat64(m.Descent),
		Height:  fixedToFloat64(m.Height),
	}, nil
}

// Measure returns the advance width of s at size pixels per em.
func (f *Face) Measure(size float64, s string) (float64, error) {
	return f.run(size, s, nil)
}

// glyphFunc receives each glyph's index and pen position.
type glyphFunc func(gi sfnt.GlyphIndex, penX fixed.Int26_6, ppem fixed.Int26_6) error

// run walks the glyphs of s, applying kerning, and returns the total
// advance. f.mu must not be held; run takes it.
func (f *Face) run(size float64, s string, fn glyphFunc) (float64, error) {
	ppem, err := toPPEM(size)
	if err != nil {
		return 0, err
	}
	s = norm.NFC.String(s)

	f.mu.Lock()
	defer f.mu.Unlock()

	var pen fixed.Int26_6
	var prev sfnt.GlyphIndex
	for i, r := range s {
		gi, err := f.font.GlyphIndex(&f.buf, r)
		if err != nil {
			return 0, fmt.Errorf("text: glyph lookup for %q: %w", r, err)
		}
		if i > 0 {
			// Faces without a kern table report ErrNotFound.
			if k, err := f.font.Kern(&f.buf, prev, gi, ppem, font.HintingNone); err == nil {
				pen += k
			}
		}
		if fn != nil {
			if err := fn(gi, pen, ppem); err != nil {
				return 0, err
			}
		}
		adv, err := f.font.GlyphAdvance(&f.buf, gi, ppem, font.HintingNone)
		if err != nil {
			return 0, fmt.Errorf("text: advance for %q: %w", r, err)
		}
		pen += adv
		prev = gi
	}
	return fixedToFloat64(pen), nil
}

func toPPEM(size float64) (fixed.Int26_6, error) {
	if !(size > 0) || math.IsInf(size, 0) || size > 1<<20 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	return fixed.Int26_6(math.Round(size * 64)), nil
}

func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
