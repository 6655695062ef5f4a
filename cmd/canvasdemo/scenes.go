package main

import (
	"math"
	"slices"
	"strings"

	"github.com/gogpu/canvas"
	"github.com/gogpu/canvas/text"
)

type sceneFunc func(c *canvas.Context, w, h float64) error

var scenes = map[string]sceneFunc{
	"all":       drawAll,
	"shapes":    drawShapes,
	"gradients": drawGradients,
	"strokes":   drawStrokes,
	"text":      drawText,
}

func sceneNames() string {
	names := make([]string, 0, len(scenes))
	for n := range scenes {
		names = append(names, n)
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

func drawAll(c *canvas.Context, w, h float64) error {
	if err := drawBackground(c, w, h); err != nil {
		return err
	}
	// Four quadrants, each scaled from a 400x300 layout.
	parts := []sceneFunc{drawShapes, drawGradients, drawStrokes, drawText}
	for i, part := range parts {
		if err := c.Save(); err != nil {
			return err
		}
		c.Translate(float64(i%2)*w/2, float64(i/2)*h/2)
		c.Scale(w/800, h/600)
		if err := c.ClipToRect(0, 0, 400, 300); err != nil {
			return err
		}
		if err := part(c, 400, 300); err != nil {
			return err
		}
		if err := c.Restore(); err != nil {
			return err
		}
	}
	return nil
}

func drawBackground(c *canvas.Context, w, h float64) error {
	g := canvas.NewLinearGradient(0, 0, 0, h)
	_ = g.AddStop(0, canvas.RGB(0.1, 0.2, 0.4))
	_ = g.AddStop(1, canvas.RGB(0.5, 0.5, 0.6))
	if err := c.SetFillStyle(canvas.GradientStyle(g)); err != nil {
		return err
	}
	return c.FillAll()
}

func drawShapes(c *canvas.Context, w, h float64) error {
	cx, cy := w*0.35, h*0.45
	for i, col := range []canvas.RGBA{
		canvas.RGBAf(1, 0.3, 0.3, 0.8),
		canvas.RGBAf(0.3, 1, 0.3, 0.8),
		canvas.RGBAf(0.3, 0.3, 1, 0.8),
	} {
		a := float64(i) * 2 * math.Pi / 3
		if err := c.SetFillColor(col); err != nil {
			return err
		}
		if err := c.FillCircle(cx+30*math.Cos(a), cy+30*math.Sin(a), 50); err != nil {
			return err
		}
	}

	if err := c.SetFillColor(canvas.Hex("#ffcc00")); err != nil {
		return err
	}
	if err := c.FillRoundRect(w*0.62, h*0.2, 110, 70, 14); err != nil {
		return err
	}
	if err := c.SetCompOp(canvas.CompMultiply); err != nil {
		return err
	}
	if err := c.SetFillColor(canvas.Hex("#c0f")); err != nil {
		return err
	}
	if err := c.FillPie(w*0.75, h*0.72, 55, -math.Pi/4, 1.5*math.Pi); err != nil {
		return err
	}
	return c.SetCompOp(canvas.CompSrcOver)
}

func drawGradients(c *canvas.Context, w, h float64) error {
	r := canvas.NewRadialGradient(w*0.3, h*0.5, w*0.25, h*0.4, 80)
	_ = r.AddStop(0, canvas.White)
	_ = r.AddStop(0.6, canvas.Hex("#3080ff"))
	_ = r.AddStop(1, canvas.RGBAf(0, 0, 0.3, 0))
	if err := c.SetFillStyle(canvas.GradientStyle(r)); err != nil {
		return err
	}
	if err := c.FillCircle(w*0.3, h*0.5, 80); err != nil {
		return err
	}

	k := canvas.NewConicGradient(w*0.72, h*0.5, 0)
	for i, hex := range []string{"#f00", "#ff0", "#0f0", "#0ff", "#00f", "#f0f", "#f00"} {
		_ = k.AddStop(float64(i)/6, canvas.Hex(hex))
	}
	if err := c.SetFillStyle(canvas.GradientStyle(k)); err != nil {
		return err
	}
	if err := c.FillEllipse(w*0.72, h*0.5, 70, 90); err != nil {
		return err
	}

	stripes := canvas.NewLinearGradient(0, 0, 16, 8)
	_ = stripes.AddStop(0, canvas.RGBAf(1, 1, 1, 0.7))
	_ = stripes.AddStop(1, canvas.RGBAf(0, 0, 0, 0.7))
	_ = stripes.SetExtend(canvas.ExtendReflect)
	if err := c.SetFillStyle(canvas.GradientStyle(stripes)); err != nil {
		return err
	}
	return c.FillRect(w*0.1, h*0.85, w*0.8, 20)
}

func drawStrokes(c *canvas.Context, w, h float64) error {
	tile, err := checkerTile()
	if err != nil {
		return err
	}
	p, err := canvas.NewPattern(tile, canvas.ExtendRepeat)
	if err != nil {
		return err
	}
	p.SetTransform(canvas.Scale(3, 3))
	if err := c.SetStrokeStyle(canvas.PatternStyle(p)); err != nil {
		return err
	}
	if err := c.SetStrokeParams(canvas.DefaultStrokeParams().WithWidth(14).WithJoin(canvas.JoinRound)); err != nil {
		return err
	}
	if err := c.StrokeRect(w*0.08, h*0.1, w*0.35, h*0.35); err != nil {
		return err
	}

	if err := c.SetStrokeColor(canvas.White); err != nil {
		return err
	}
	caps := []canvas.LineCap{
		canvas.CapButt, canvas.CapSquare, canvas.CapRound,
		canvas.CapRoundRev, canvas.CapTriangle, canvas.CapTriangleRev,
	}
	for i, lc := range caps {
		if err := c.SetStrokeParams(canvas.DefaultStrokeParams().WithWidth(10).WithCaps(lc)); err != nil {
			return err
		}
		y := h*0.1 + float64(i)*h*0.07
		if err := c.StrokeLine(w*0.6, y, w*0.9, y); err != nil {
			return err
		}
	}

	path := canvas.NewPath()
	path.MoveTo(w*0.08, h*0.8)
	path.QuadTo(w*0.2, h*0.55, w*0.32, h*0.8)
	for i := 2; i <= 7; i++ {
		path.SmoothQuadTo(w*0.08+float64(i)*w*0.12, h*0.8)
	}
	path.EllipticArcTo(30, 20, 0, false, true, w*0.92, h*0.95)
	if err := c.SetStrokeColor(canvas.Hex("#ff8040")); err != nil {
		return err
	}
	if err := c.SetStrokeParams(canvas.DefaultStrokeParams().WithWidth(4).WithJoin(canvas.JoinMiterBevel)); err != nil {
		return err
	}
	return c.StrokePath(path)
}

func drawText(c *canvas.Context, w, h float64) error {
	face, err := text.DefaultFace()
	if err != nil {
		return err
	}
	if err := c.SetFillColor(canvas.White); err != nil {
		return err
	}
	if err := text.Fill(c, face, w*0.08, h*0.35, 48, "canvas"); err != nil {
		return err
	}

	if err := c.SetStrokeColor(canvas.Hex("#ffd040")); err != nil {
		return err
	}
	if err := c.SetStrokeWidth(1.5); err != nil {
		return err
	}
	if err := c.Save(); err != nil {
		return err
	}
	c.RotateAbout(-0.15, w*0.5, h*0.7)
	if err := text.Stroke(c, face, w*0.1, h*0.75, 36, "café"); err != nil {
		return err
	}
	return c.Restore()
}

// checkerTile returns a 2x2 two-tone tile for pattern strokes.
func checkerTile() (*canvas.Surface, error) {
	s, err := canvas.NewSurface(2, 2)
	if err != nil {
		return nil, err
	}
	err = canvas.Draw(s, func(c *canvas.Context) error {
		if err := c.SetFillColor(canvas.Hex("#204060")); err != nil {
			return err
		}
		if err := c.FillAll(); err != nil {
			return err
		}
		if err := c.SetFillColor(canvas.Hex("#80c0ff")); err != nil {
			return err
		}
		if err := c.FillRect(0, 0, 1, 1); err != nil {
			return err
		}
		return c.FillRect(1, 1, 1, 1)
	})
	return s, err
}
