package render

import (
	"fmt"
	"strconv"

	"golang.org/x/image/font"

	"github.com/tsawler/mcqsheet/geometry"
	"github.com/tsawler/mcqsheet/internal/textwrap"
	"github.com/tsawler/mcqsheet/layout"
	"github.com/tsawler/mcqsheet/model"
)

// Offsets inside a column, in logical pixels.
const (
	textInset        = 2
	choiceIndent     = 20
	headerTextInset  = 10
	explanationInset = 6
	keyNumberWidth   = 30
	keyTitleHeight   = 16
	keyFontSize      = 8
	keyTitleFontSize = 9
	checkSize        = 9
	pageNumberSize   = 8
	underlineOffset  = 1.5
	underlineWidth   = 1.5
)

// Paint builds the display list of every page of the plan.
func Paint(plan *layout.Plan, ctx *Context) ([]Canvas, error) {
	p, err := newPainter(plan, ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Canvas, 0, plan.PageCount())
	for i := range plan.Pages {
		out = append(out, p.page(i))
	}
	return out, nil
}

// PaintPage builds the display list of page i (zero-based).
func PaintPage(plan *layout.Plan, i int, ctx *Context) (Canvas, error) {
	if i < 0 || i >= plan.PageCount() {
		return Canvas{}, fmt.Errorf("page %d out of range [1, %d]", i+1, plan.PageCount())
	}
	p, err := newPainter(plan, ctx)
	if err != nil {
		return Canvas{}, err
	}
	return p.page(i), nil
}

type faceKey struct {
	style textwrap.Style
	size  float64
}

type painter struct {
	plan   *layout.Plan
	ctx    *Context
	bounds geometry.PageBounds
	fonts  *textwrap.Fonts
	faces  map[faceKey]font.Face
	canvas *Canvas
}

func newPainter(plan *layout.Plan, ctx *Context) (*painter, error) {
	fonts, err := textwrap.Default()
	if err != nil {
		return nil, fmt.Errorf("loading fonts: %w", err)
	}
	return &painter{
		plan:   plan,
		ctx:    ctx,
		bounds: plan.Bounds,
		fonts:  fonts,
		faces:  make(map[faceKey]font.Face),
	}, nil
}

func (p *painter) face(style textwrap.Style, size float64) font.Face {
	k := faceKey{style, size}
	f, ok := p.faces[k]
	if !ok {
		f = p.fonts.Face(style, size)
		p.faces[k] = f
	}
	return f
}

func (p *painter) lineHeight(size float64) float64 {
	return size * 1.4 * p.ctx.Settings.Density
}

// baseline places text of the given size inside a line box starting at top.
func baseline(top, lineHeight, size float64) float64 {
	return top + (lineHeight-size)/2 + size*0.8
}

func (p *painter) page(i int) Canvas {
	c := Canvas{Width: geometry.A4WidthPx, Height: geometry.A4HeightPx}
	p.canvas = &c

	p.pageNumber(i + 1)
	page := p.plan.Pages[i]
	for ci := range page.Columns {
		for _, b := range page.Columns[ci].Blocks {
			switch b.Kind {
			case layout.KindLessonHeader:
				p.header(b)
			case layout.KindQuestion:
				p.question(ci, b)
			case layout.KindAnswerKey:
				p.answerKey(ci, b)
			}
		}
	}
	p.canvas = nil
	return c
}

func (p *painter) text(x, base, size float64, style textwrap.Style, col Color, s string) {
	p.canvas.add(Text{X: x, Baseline: base, Size: size, Style: style, Color: col, Text: s})
}

func (p *painter) underline(x, base, width float64) {
	y := base + underlineOffset
	p.canvas.add(Line{
		From:  geometry.Point{X: x, Y: y},
		To:    geometry.Point{X: x + width, Y: y},
		Width: underlineWidth,
		Color: FlagColor,
	})
}

func (p *painter) pageNumber(n int) {
	s := strconv.Itoa(n)
	w := textwrap.Measure(p.face(textwrap.Regular, pageNumberSize), s)
	x := geometry.A4WidthPx - p.bounds.MarginRight - w
	y := geometry.A4HeightPx - p.bounds.MarginBottom/2
	p.text(x, y, pageNumberSize, textwrap.Regular, PageNumberColor, s)
}

func (p *painter) header(b layout.Block) {
	lesson, ok := p.ctx.Lesson(b)
	if !ok {
		return
	}
	box := p.bounds.SpanBox(b.Y, b.Height)
	if box.Height > 4 {
		box = geometry.NewBBox(box.X, box.Y+2, box.Width, box.Height-4)
	}
	p.canvas.add(Rect{Box: box, Fill: colorPtr(HeaderFill)})

	size := HeaderFontSize(p.ctx.Settings)
	face := p.face(textwrap.Bold, size)
	label := textwrap.Truncate(face, HeaderLabel(b, lesson.Title), box.Width-2*headerTextInset)
	p.text(box.X+headerTextInset, box.Y+box.Height/2+size*0.35, size, textwrap.Bold, White, label)
}

func (p *painter) question(ci int, b layout.Block) {
	q, ok := p.ctx.Question(b)
	if !ok {
		return
	}
	s := p.ctx.Settings
	d := s.Density
	x := p.bounds.ColumnX(ci)
	w := p.bounds.ColumnWidth
	y := p.bounds.MarginTop + b.Y

	// stem
	mfs := s.MCQFontSize
	lh := p.lineHeight(mfs)
	bold := p.face(textwrap.Bold, mfs)
	prefix := StemPrefix(b.QuestionIndex)
	if q.Stem == "" {
		base := baseline(y, lh, mfs)
		p.text(x+textInset, base, mfs, textwrap.Bold, StemColor, prefix)
		px := x + textInset + textwrap.Measure(bold, prefix)
		p.text(px, base, mfs, textwrap.Italic, PlaceholderColor, EmptyQuestion)
		y += lh
	} else {
		flagged := p.ctx.QuestionFlagged(q.ID)
		for _, line := range textwrap.Wrap(bold, prefix+q.Stem, w-2*textInset) {
			base := baseline(y, lh, mfs)
			p.text(x+textInset, base, mfs, textwrap.Bold, StemColor, line)
			if flagged {
				p.underline(x+textInset, base, min(textwrap.Measure(bold, line), w-2*textInset))
			}
			y += lh
		}
	}
	y += 4 * d

	// choices
	pfs := s.PropFontSize
	lh = p.lineHeight(pfs)
	regular := p.face(textwrap.Regular, pfs)
	for _, label := range q.EnabledLabels() {
		labelStyle, labelColor := textwrap.Regular, LabelColor
		if q.IsCorrect(label) {
			labelStyle, labelColor = textwrap.Bold, CorrectColor
		}
		p.text(x+textInset, baseline(y, lh, pfs), pfs, labelStyle, labelColor, ChoicePrefix(label))

		text := q.Choice(label)
		if text == "" {
			p.text(x+choiceIndent, baseline(y, lh, pfs), pfs, textwrap.Regular, PlaceholderColor, EmptyChoice)
			y += lh + 2*d
			continue
		}
		flagged := p.ctx.ChoiceFlagged(q.ID, label)
		for _, line := range textwrap.Wrap(regular, text, w-choiceIndent) {
			base := baseline(y, lh, pfs)
			p.text(x+choiceIndent, base, pfs, textwrap.Regular, ChoiceColor, line)
			if flagged {
				p.underline(x+choiceIndent, base, min(textwrap.Measure(regular, line), w-choiceIndent))
			}
			y += lh
		}
		y += 2 * d
	}

	// explanation
	if q.ExplanationVisible(s.EnableExplanations) {
		efs := max(pfs-1, 1)
		lh = p.lineHeight(efs)
		italic := p.face(textwrap.Italic, efs)
		lines := textwrap.Wrap(italic, "Exp: "+q.Explanation, w-2*explanationInset-2*textInset)
		y += 2 * d
		boxH := float64(len(lines))*lh + 4
		p.canvas.add(Rect{
			Box:       geometry.NewBBox(x+textInset, y, w-2*textInset, boxH),
			Fill:      colorPtr(ExplanationFill),
			Stroke:    colorPtr(ExplanationLine),
			LineWidth: 0.75,
		})
		y += 2
		for _, line := range lines {
			p.text(x+explanationInset, baseline(y, lh, efs), efs, textwrap.Italic, ExplanationText, line)
			y += lh
		}
	}
}

func (p *painter) answerKey(ci int, b layout.Block) {
	lesson, ok := p.ctx.Lesson(b)
	if !ok {
		return
	}
	x := p.bounds.ColumnX(ci)
	w := p.bounds.ColumnWidth
	y := p.bounds.MarginTop + b.Y
	rowH := 18 * p.ctx.Settings.Density

	p.text(x+textInset, y+12, keyTitleFontSize, textwrap.Bold, KeyTitleColor, "Answer Key")
	y += keyTitleHeight

	bold := p.face(textwrap.Bold, keyFontSize)
	cellW := (w - keyNumberWidth) / 5
	center := func(i int) float64 {
		return x + keyNumberWidth + float64(i)*cellW + cellW/2
	}
	rowBase := func(top float64) float64 {
		return top + rowH/2 + keyFontSize*0.35
	}

	p.text(x+textInset, rowBase(y), keyFontSize, textwrap.Bold, KeyNumberColor, "#")
	for i, l := range model.Labels() {
		s := string(l)
		p.text(center(i)-textwrap.Measure(bold, s)/2, rowBase(y), keyFontSize, textwrap.Bold, KeyTitleColor, s)
	}
	y += rowH

	for qi, q := range lesson.Questions {
		if qi%2 == 0 {
			p.canvas.add(Rect{Box: geometry.NewBBox(x, y, w, rowH), Fill: colorPtr(KeyStripe)})
		}
		p.text(x+textInset, rowBase(y), keyFontSize, textwrap.Regular, KeyNumberColor, strconv.Itoa(qi+1))
		for i, l := range model.Labels() {
			if q.IsCorrect(l) {
				p.canvas.add(Check{X: center(i) - checkSize/2, Baseline: rowBase(y), Size: checkSize, Color: CheckColor})
			}
		}
		y += rowH
	}
}
