package pdfdoc

import "unicode/utf8"

// Advance widths of the printable ASCII range (32-126) in 1000ths of an
// em, from the Adobe metrics of the standard fonts. The oblique face shares
// the upright widths.
var (
	helveticaASCII = [95]float64{
		278, 278, 355, 556, 556, 889, 667, 191, 333, 333, 389, 584, 278, 333, 278, 278, // space - /
		556, 556, 556, 556, 556, 556, 556, 556, 556, 556, // 0 - 9
		278, 278, 584, 584, 584, 556, 1015, // : - @
		667, 667, 722, 722, 667, 611, 778, 722, 278, 500, 667, 556, 833, // A - M
		722, 778, 667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611, // N - Z
		278, 278, 278, 469, 556, 333, // [ - `
		556, 556, 500, 556, 556, 278, 556, 556, 222, 222, 500, 222, 833, // a - m
		556, 556, 556, 556, 333, 500, 278, 556, 500, 722, 500, 500, 500, // n - z
		334, 260, 334, 584, // { - ~
	}
	helveticaBoldASCII = [95]float64{
		278, 333, 474, 556, 556, 889, 722, 238, 333, 333, 389, 584, 278, 333, 278, 278,
		556, 556, 556, 556, 556, 556, 556, 556, 556, 556,
		333, 333, 584, 584, 584, 611, 975,
		722, 722, 722, 722, 667, 611, 778, 722, 278, 556, 722, 611, 833,
		722, 778, 667, 778, 722, 667, 611, 722, 667, 944, 667, 667, 611,
		333, 278, 333, 584, 556, 333,
		556, 611, 556, 611, 556, 333, 611, 611, 278, 278, 556, 278, 889,
		611, 611, 611, 611, 389, 556, 333, 611, 556, 778, 556, 556, 500,
		389, 280, 389, 584,
	}
)

// defaultWidth is used for runes outside the table, mostly accented
// letters whose widths are close to the lowercase average.
const defaultWidth = 556.0

// standardFont holds the metrics of one standard PDF font.
type standardFont struct {
	base   string
	widths *[95]float64
}

var metricsByResource = map[string]standardFont{
	fontRegular: {"Helvetica", &helveticaASCII},
	fontBold:    {"Helvetica-Bold", &helveticaBoldASCII},
	fontItalic:  {"Helvetica-Oblique", &helveticaASCII},
}

// width returns the advance of r in 1000ths of an em.
func (f standardFont) width(r rune) float64 {
	if r >= 32 && r <= 126 {
		return f.widths[r-32]
	}
	if r == '\t' || r == '\n' || r == '\r' {
		return f.widths[0]
	}
	return defaultWidth
}

// stringWidth returns the width of s at the given size, in the units of
// size.
func (f standardFont) stringWidth(s string, size float64) float64 {
	total := 0.0
	for _, r := range s {
		total += f.width(r)
	}
	return total * size / 1000
}

// Horizontal scaling is clamped so that a badly measured run never turns
// unreadable.
const (
	minScale = 70.0
	maxScale = 130.0
)

// horizontalScale returns the Tz percentage that stretches s, set in the
// standard font, to the target width measured at layout time.
func horizontalScale(f standardFont, s string, size, target float64) float64 {
	if utf8.RuneCountInString(s) < 2 || target <= 0 {
		return 100
	}
	natural := f.stringWidth(s, size)
	if natural <= 0 {
		return 100
	}
	return min(max(target/natural*100, minScale), maxScale)
}
