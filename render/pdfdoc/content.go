package pdfdoc

import (
	"fmt"
	"strings"

	"golang.org/x/image/font"

	"github.com/tsawler/mcqsheet/geometry"
	"github.com/tsawler/mcqsheet/internal/textwrap"
	"github.com/tsawler/mcqsheet/render"
)

// Resource names of the standard fonts used by every page.
const (
	fontRegular = "F1"
	fontBold    = "F2"
	fontItalic  = "F3"
	fontSymbol  = "F4"
)

// checkGlyph is the ZapfDingbats code of a heavy check mark.
const checkGlyph = "4"

var baseFonts = []struct {
	resource string
	base     string
	winAnsi  bool
}{
	{fontRegular, "Helvetica", true},
	{fontBold, "Helvetica-Bold", true},
	{fontItalic, "Helvetica-Oblique", true},
	{fontSymbol, "ZapfDingbats", false},
}

func fontFor(s textwrap.Style) string {
	switch s {
	case textwrap.Bold:
		return fontBold
	case textwrap.Italic:
		return fontItalic
	default:
		return fontRegular
	}
}

// content translates a display list into a page content stream. Logical
// pixels are scaled to points and the y axis is flipped. Text runs are
// stretched to the width the layout measured with fonts, so underlines and
// wrapped lines agree with the standard PDF fonts.
type content struct {
	sb     strings.Builder
	sx, sy float64
	height float64

	fonts *textwrap.Fonts
	faces map[faceKey]font.Face
}

type faceKey struct {
	style textwrap.Style
	size  float64
}

func newContent(fonts *textwrap.Fonts) *content {
	w, h := geometry.A4SizePt()
	return &content{
		sx:     w / geometry.A4WidthPx,
		sy:     h / geometry.A4HeightPx,
		height: h,
		fonts:  fonts,
		faces:  make(map[faceKey]font.Face),
	}
}

// measured returns the width of t in logical pixels as laid out.
func (c *content) measured(t render.Text) float64 {
	if c.fonts == nil {
		return 0
	}
	k := faceKey{t.Style, t.Size}
	f, ok := c.faces[k]
	if !ok {
		f = c.fonts.Face(t.Style, t.Size)
		c.faces[k] = f
	}
	return textwrap.Measure(f, t.Text)
}

func (c *content) x(px float64) string    { return formatReal(px * c.sx) }
func (c *content) y(px float64) string    { return formatReal(c.height - px*c.sy) }
func (c *content) dist(px float64) string { return formatReal(px * c.sy) }

func rgb(col render.Color) string {
	return fmt.Sprintf("%s %s %s", formatReal(col.R), formatReal(col.G), formatReal(col.B))
}

func (c *content) op(format string, args ...any) {
	fmt.Fprintf(&c.sb, format, args...)
	c.sb.WriteByte('\n')
}

func (c *content) paint(canvas render.Canvas) []byte {
	for _, op := range canvas.Ops {
		switch o := op.(type) {
		case render.Rect:
			c.rect(o)
		case render.Text:
			c.text(o)
		case render.Line:
			c.line(o)
		case render.Check:
			c.check(o)
		}
	}
	return []byte(c.sb.String())
}

func (c *content) rect(r render.Rect) {
	if r.Fill == nil && r.Stroke == nil {
		return
	}
	c.op("q")
	paintOp := "f"
	if r.Fill != nil {
		c.op("%s rg", rgb(*r.Fill))
	}
	if r.Stroke != nil {
		c.op("%s RG", rgb(*r.Stroke))
		c.op("%s w", c.dist(max(r.LineWidth, 0.5)))
		paintOp = "S"
		if r.Fill != nil {
			paintOp = "B"
		}
	}
	b := r.Box
	c.op("%s %s %s %s re %s", c.x(b.X), c.y(b.Y+b.Height), c.dist(b.Width), c.dist(b.Height), paintOp)
	c.op("Q")
}

func (c *content) text(t render.Text) {
	if t.Text == "" {
		return
	}
	c.op("BT")
	res := fontFor(t.Style)
	c.op("/%s %s Tf", res, c.dist(t.Size))
	c.op("%s Tz", formatReal(horizontalScale(metricsByResource[res], t.Text, t.Size, c.measured(t))))
	c.op("%s rg", rgb(t.Color))
	c.op("%s %s Td", c.x(t.X), c.y(t.Baseline))
	c.op("%s Tj", TextString(t.Text).String())
	c.op("ET")
}

func (c *content) line(l render.Line) {
	c.op("q")
	c.op("%s RG", rgb(l.Color))
	c.op("%s w", c.dist(l.Width))
	c.op("%s %s m %s %s l S", c.x(l.From.X), c.y(l.From.Y), c.x(l.To.X), c.y(l.To.Y))
	c.op("Q")
}

func (c *content) check(k render.Check) {
	c.op("BT")
	c.op("/%s %s Tf", fontSymbol, c.dist(k.Size))
	c.op("%s rg", rgb(k.Color))
	c.op("%s %s Td", c.x(k.X), c.y(k.Baseline))
	c.op("(%s) Tj", checkGlyph)
	c.op("ET")
}
