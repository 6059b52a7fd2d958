package geometry

// Margins holds the four page margins in millimetres.
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// PageBounds describes the two-column content area of an A4 page in logical
// pixels.
type PageBounds struct {
	MarginTop    float64
	MarginBottom float64
	MarginLeft   float64
	MarginRight  float64
	ColumnGap    float64

	// ColumnWidth is the width of one of the two columns.
	ColumnWidth float64

	// ContentHeight is the usable height of a column (page height minus
	// top and bottom margins).
	ContentHeight float64

	// Col0X and Col1X are the left edges of the two columns.
	Col0X float64
	Col1X float64
}

// NewPageBounds computes the page bounds for the given margins and column gap,
// both in millimetres.
//
// The column width is (pageWidth - left - right - gap) / 2, evaluated in that
// order so results are reproducible bit for bit.
func NewPageBounds(m Margins, columnGapMM float64) PageBounds {
	top := MMToPx(m.Top)
	bottom := MMToPx(m.Bottom)
	left := MMToPx(m.Left)
	right := MMToPx(m.Right)
	gap := MMToPx(columnGapMM)

	usableWidth := A4WidthPx - left - right
	colWidth := (usableWidth - gap) / 2

	return PageBounds{
		MarginTop:     top,
		MarginBottom:  bottom,
		MarginLeft:    left,
		MarginRight:   right,
		ColumnGap:     gap,
		ColumnWidth:   colWidth,
		ContentHeight: A4HeightPx - top - bottom,
		Col0X:         left,
		Col1X:         left + colWidth + gap,
	}
}

// ContentWidth returns the width spanned by both columns and the gap.
func (b PageBounds) ContentWidth() float64 {
	return b.ColumnWidth*2 + b.ColumnGap
}

// ColumnX returns the left edge of column i (0 or 1).
func (b PageBounds) ColumnX(i int) float64 {
	if i == 1 {
		return b.Col1X
	}
	return b.Col0X
}

// ColumnBox returns the page-space box of column i's content area.
func (b PageBounds) ColumnBox(i int) BBox {
	return NewBBox(b.ColumnX(i), b.MarginTop, b.ColumnWidth, b.ContentHeight)
}

// BlockBox returns the page-space box of a block painted at offset y inside
// column i.
func (b PageBounds) BlockBox(i int, y, height float64) BBox {
	return NewBBox(b.ColumnX(i), b.MarginTop+y, b.ColumnWidth, height)
}

// SpanBox returns the page-space box of a block that spans both columns at
// offset y.
func (b PageBounds) SpanBox(y, height float64) BBox {
	return NewBBox(b.Col0X, b.MarginTop+y, b.ContentWidth(), height)
}
