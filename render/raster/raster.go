// Package raster paints layout pages into images, for thumbnails and
// snapshot tests of the print layout.
package raster

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/tsawler/mcqsheet/geometry"
	"github.com/tsawler/mcqsheet/internal/textwrap"
	"github.com/tsawler/mcqsheet/layout"
	"github.com/tsawler/mcqsheet/render"
)

// ErrInvalidScale is returned for a scale that is not a positive number.
var ErrInvalidScale = errors.New("scale must be a positive number")

// Config controls rasterization.
type Config struct {
	// Scale is the number of device pixels per logical pixel.
	Scale      float64
	Background render.Color
}

// DefaultConfig returns one device pixel per logical pixel on white.
func DefaultConfig() Config {
	return Config{Scale: 1, Background: render.White}
}

// Rasterizer draws display lists with gg. It caches font faces and is not
// safe for concurrent use.
type Rasterizer struct {
	config Config
	fonts  *textwrap.Fonts
	faces  map[faceKey]font.Face
}

type faceKey struct {
	style textwrap.Style
	size  float64
}

// NewRasterizer creates a rasterizer with default configuration
func NewRasterizer() (*Rasterizer, error) {
	return NewRasterizerWithConfig(DefaultConfig())
}

// NewRasterizerWithConfig creates a rasterizer with custom configuration
func NewRasterizerWithConfig(config Config) (*Rasterizer, error) {
	if !(config.Scale > 0) || math.IsInf(config.Scale, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScale, config.Scale)
	}
	fonts, err := textwrap.Default()
	if err != nil {
		return nil, fmt.Errorf("loading fonts: %w", err)
	}
	return &Rasterizer{config: config, fonts: fonts, faces: make(map[faceKey]font.Face)}, nil
}

// RenderPage paints page i (zero-based) of the plan at the given scale.
func RenderPage(plan *layout.Plan, i int, ctx *render.Context, scale float64) (image.Image, error) {
	cfg := DefaultConfig()
	cfg.Scale = scale
	r, err := NewRasterizerWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	return r.Page(plan, i, ctx)
}

// Page paints page i (zero-based) of the plan.
func (r *Rasterizer) Page(plan *layout.Plan, i int, ctx *render.Context) (image.Image, error) {
	dc, err := r.draw(plan, i, ctx)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// WritePNG paints page i (zero-based) of the plan and encodes it as PNG.
func (r *Rasterizer) WritePNG(w io.Writer, plan *layout.Plan, i int, ctx *render.Context) error {
	dc, err := r.draw(plan, i, ctx)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding page %d: %w", i+1, err)
	}
	return nil
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return gg.NewContextForImage(img).EncodePNG(w)
}

func (r *Rasterizer) draw(plan *layout.Plan, i int, ctx *render.Context) (*gg.Context, error) {
	canvas, err := render.PaintPage(plan, i, ctx)
	if err != nil {
		return nil, err
	}
	s := r.config.Scale
	dc := gg.NewContext(int(math.Round(geometry.A4WidthPx*s)), int(math.Round(geometry.A4HeightPx*s)))
	dc.SetColor(r.config.Background.NRGBA())
	dc.Clear()

	for _, op := range canvas.Ops {
		switch o := op.(type) {
		case render.Rect:
			r.rect(dc, o)
		case render.Text:
			r.text(dc, o)
		case render.Line:
			dc.SetColor(o.Color.NRGBA())
			dc.SetLineWidth(o.Width * s)
			dc.DrawLine(o.From.X*s, o.From.Y*s, o.To.X*s, o.To.Y*s)
			dc.Stroke()
		case render.Check:
			r.check(dc, o)
		}
	}
	return dc, nil
}

// face returns a face for text of the given logical size, scaled to device
// pixels. Glyphs are rasterized at device size rather than through the
// context matrix so they stay sharp.
func (r *Rasterizer) face(style textwrap.Style, size float64) font.Face {
	k := faceKey{style, size * r.config.Scale}
	f, ok := r.faces[k]
	if !ok {
		f = r.fonts.Face(style, k.size)
		r.faces[k] = f
	}
	return f
}

func (r *Rasterizer) rect(dc *gg.Context, o render.Rect) {
	s := r.config.Scale
	b := o.Box
	dc.DrawRectangle(b.X*s, b.Y*s, b.Width*s, b.Height*s)
	switch {
	case o.Fill != nil && o.Stroke != nil:
		dc.SetColor(o.Fill.NRGBA())
		dc.FillPreserve()
		dc.SetColor(o.Stroke.NRGBA())
		dc.SetLineWidth(o.LineWidth * s)
		dc.Stroke()
	case o.Fill != nil:
		dc.SetColor(o.Fill.NRGBA())
		dc.Fill()
	case o.Stroke != nil:
		dc.SetColor(o.Stroke.NRGBA())
		dc.SetLineWidth(o.LineWidth * s)
		dc.Stroke()
	default:
		dc.ClearPath()
	}
}

func (r *Rasterizer) text(dc *gg.Context, o render.Text) {
	s := r.config.Scale
	dc.SetFontFace(r.face(o.Style, o.Size))
	dc.SetColor(o.Color.NRGBA())
	dc.DrawString(o.Text, o.X*s, o.Baseline*s)
}

// check strokes a tick inside the size x size box sitting on the baseline.
func (r *Rasterizer) check(dc *gg.Context, o render.Check) {
	s := r.config.Scale
	x, y, n := o.X*s, o.Baseline*s, o.Size*s
	dc.SetColor(o.Color.NRGBA())
	dc.SetLineWidth(math.Max(n*0.15, 1))
	dc.SetLineCapRound()
	dc.MoveTo(x+0.1*n, y-0.45*n)
	dc.LineTo(x+0.4*n, y-0.1*n)
	dc.LineTo(x+0.9*n, y-0.85*n)
	dc.Stroke()
}
