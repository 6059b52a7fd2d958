// Package textwrap measures and wraps text with the Go fonts.
//
// The layout engine only estimates heights; renderers use this package to
// break the text of a block into lines that fit the column. Faces are
// sized in the renderer's unit (points for PDF, pixels for PNG) at 72 DPI,
// so one font unit maps to one output unit.
package textwrap

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Style selects a font of the family.
type Style int

const (
	Regular Style = iota
	Bold
	Italic
)

// String returns the string representation of the style.
func (s Style) String() string {
	switch s {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	default:
		return "regular"
	}
}

// Fonts holds the parsed font family.
type Fonts struct {
	regular *truetype.Font
	bold    *truetype.Font
	italic  *truetype.Font
}

var (
	defaultOnce  sync.Once
	defaultFonts *Fonts
	defaultErr   error
)

// Default returns the embedded Go font family, parsed once.
func Default() (*Fonts, error) {
	defaultOnce.Do(func() {
		defaultFonts, defaultErr = Parse(goregular.TTF, gobold.TTF, goitalic.TTF)
	})
	return defaultFonts, defaultErr
}

// Parse builds a family from TrueType data.
func Parse(regular, bold, italic []byte) (*Fonts, error) {
	r, err := truetype.Parse(regular)
	if err != nil {
		return nil, fmt.Errorf("parsing regular font: %w", err)
	}
	b, err := truetype.Parse(bold)
	if err != nil {
		return nil, fmt.Errorf("parsing bold font: %w", err)
	}
	i, err := truetype.Parse(italic)
	if err != nil {
		return nil, fmt.Errorf("parsing italic font: %w", err)
	}
	return &Fonts{regular: r, bold: b, italic: i}, nil
}

// Face returns a new face of the given style and size. Faces cache glyphs
// and must not be shared between goroutines.
func (f *Fonts) Face(style Style, size float64) font.Face {
	ttf := f.regular
	switch style {
	case Bold:
		ttf = f.bold
	case Italic:
		ttf = f.italic
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

// Measure returns the advance width of s.
func Measure(face font.Face, s string) float64 {
	return toFloat(font.MeasureString(face, s))
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Wrap breaks text into lines no wider than maxWidth. Explicit newlines
// start new lines; words wider than a line are split between characters.
// Empty text yields no lines.
func Wrap(face font.Face, text string, maxWidth float64) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(face, para, maxWidth)...)
	}
	return lines
}

func wrapParagraph(face font.Face, para string, maxWidth float64) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}
	space := Measure(face, " ")

	var lines []string
	var cur strings.Builder
	curWidth := 0.0
	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curWidth = 0
	}

	for _, w := range words {
		ww := Measure(face, w)
		if cur.Len() > 0 && curWidth+space+ww <= maxWidth {
			cur.WriteByte(' ')
			cur.WriteString(w)
			curWidth += space + ww
			continue
		}
		if cur.Len() > 0 {
			flush()
		}
		if ww <= maxWidth {
			cur.WriteString(w)
			curWidth = ww
			continue
		}
		pieces := splitWord(face, w, maxWidth)
		lines = append(lines, pieces[:len(pieces)-1]...)
		last := pieces[len(pieces)-1]
		cur.WriteString(last)
		curWidth = Measure(face, last)
	}
	if cur.Len() > 0 {
		flush()
	}
	return lines
}

// splitWord cuts w into pieces that fit maxWidth, each holding at least one
// character.
func splitWord(face font.Face, w string, maxWidth float64) []string {
	var pieces []string
	start := 0
	width := 0.0
	for i, r := range w {
		rw := Measure(face, string(r))
		if i > start && width+rw > maxWidth {
			pieces = append(pieces, w[start:i])
			start = i
			width = 0
		}
		width += rw
	}
	return append(pieces, w[start:])
}

// Ellipsis is appended to truncated text.
const Ellipsis = "..."

// Truncate shortens s to fit maxWidth on one line, ending it with Ellipsis
// when anything was cut.
func Truncate(face font.Face, s string, maxWidth float64) string {
	if Measure(face, s) <= maxWidth {
		return s
	}
	budget := maxWidth - Measure(face, Ellipsis)
	cut, width := 0, 0.0
	for cut < len(s) {
		r, size := utf8.DecodeRuneInString(s[cut:])
		rw := Measure(face, string(r))
		if width+rw > budget {
			break
		}
		width += rw
		cut += size
	}
	return strings.TrimRight(s[:cut], " ") + Ellipsis
}

// LineHeight returns the distance between baselines of face.
func LineHeight(face font.Face) float64 {
	return toFloat(face.Metrics().Height)
}
