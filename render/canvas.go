package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/tsawler/mcqsheet/geometry"
	"github.com/tsawler/mcqsheet/internal/textwrap"
)

// Color is an RGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// NRGBA converts c to an opaque image color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 0xff}
}

// Hex returns c as a CSS hex color.
func (c Color) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Palette shared by every renderer.
var (
	White            = Color{1, 1, 1}
	HeaderFill       = Color{0.12, 0.28, 0.68}
	StemColor        = Color{0.05, 0.05, 0.15}
	ChoiceColor      = Color{0.1, 0.1, 0.18}
	LabelColor       = Color{0.27, 0.27, 0.27}
	CorrectColor     = Color{0.1, 0.48, 0.23}
	FlagColor        = Color{0.8, 0.07, 0.07}
	PlaceholderColor = Color{0.73, 0.73, 0.73}
	ExplanationFill  = Color{0.94, 0.96, 1}
	ExplanationLine  = Color{0.72, 0.83, 0.94}
	ExplanationText  = Color{0.27, 0.27, 0.33}
	KeyTitleColor    = Color{0.27, 0.27, 0.33}
	KeyStripe        = Color{0.97, 0.97, 0.99}
	KeyNumberColor   = Color{0.4, 0.4, 0.4}
	CheckColor       = Color{0.1, 0.65, 0.3}
	PageNumberColor  = Color{0.6, 0.6, 0.6}
)

// Op is one drawing operation. Coordinates are logical pixels with the
// origin at the top-left corner of the page.
type Op interface {
	isOp()
}

// Rect fills and/or strokes a rectangle.
type Rect struct {
	Box       geometry.BBox
	Fill      *Color
	Stroke    *Color
	LineWidth float64
}

// Text draws a single line of text starting at X on the given baseline.
type Text struct {
	X, Baseline float64
	Size        float64
	Style       textwrap.Style
	Color       Color
	Text        string
}

// Line draws a straight stroke.
type Line struct {
	From, To geometry.Point
	Width    float64
	Color    Color
}

// Check draws a check mark whose glyph box starts at X on the baseline.
type Check struct {
	X, Baseline float64
	Size        float64
	Color       Color
}

func (Rect) isOp()  {}
func (Text) isOp()  {}
func (Line) isOp()  {}
func (Check) isOp() {}

// Canvas is the display list of one page.
type Canvas struct {
	Width, Height float64
	Ops           []Op
}

func (c *Canvas) add(op Op) {
	c.Ops = append(c.Ops, op)
}

// Texts returns the text runs of the canvas in painting order.
func (c *Canvas) Texts() []string {
	var out []string
	for _, op := range c.Ops {
		if t, ok := op.(Text); ok {
			out = append(out, t.Text)
		}
	}
	return out
}

func colorPtr(c Color) *Color {
	return &c
}
