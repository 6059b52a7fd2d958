package layout

import (
	"math"
	"unicode/utf8"

	"github.com/tsawler/mcqsheet/model"
)

// EstimatorConfig holds the empirical constants of height estimation.
// Sizes are in logical pixels; the paddings and row height are multiplied by
// the document density.
type EstimatorConfig struct {
	// LineHeightFactor times font size times density is the height of a line
	// Default: 1.4
	LineHeightFactor float64

	// CharWidthFactor times font size approximates the average glyph advance
	// Default: 0.55
	CharWidthFactor float64

	// MinCharsPerLine bounds the wrap width from below
	// Default: 10
	MinCharsPerLine int

	// ChoiceIndent is removed from the column width for choice text
	// Default: 20
	ChoiceIndent float64

	// Density-scaled gaps below the stem, each choice and the explanation,
	// and at the end of a question block
	StemPadding        float64
	ChoicePadding      float64
	ExplanationPadding float64
	BottomPadding      float64

	// Lesson header: HeaderBase*density + HeaderExtra
	HeaderBase  float64
	HeaderExtra float64

	// Answer key: KeyHeader + KeyRowHeight*density*min(rows, KeyMaxRows) + KeyPadding
	KeyHeader    float64
	KeyRowHeight float64
	KeyMaxRows   int
	KeyPadding   float64
}

// DefaultEstimatorConfig returns the constants shared by the preview and the
// exported document.
func DefaultEstimatorConfig() EstimatorConfig {
	return EstimatorConfig{
		LineHeightFactor:   1.4,
		CharWidthFactor:    0.55,
		MinCharsPerLine:    10,
		ChoiceIndent:       20,
		StemPadding:        4,
		ChoicePadding:      2,
		ExplanationPadding: 8,
		BottomPadding:      12,
		HeaderBase:         28,
		HeaderExtra:        8,
		KeyHeader:          24,
		KeyRowHeight:       18,
		KeyMaxRows:         20,
		KeyPadding:         16,
	}
}

// Estimator predicts block heights from text length. It holds no state
// besides its configuration and is safe for concurrent use.
type Estimator struct {
	config EstimatorConfig
}

// NewEstimator creates an estimator with default configuration
func NewEstimator() *Estimator {
	return &Estimator{config: DefaultEstimatorConfig()}
}

// NewEstimatorWithConfig creates an estimator with custom configuration
func NewEstimatorWithConfig(config EstimatorConfig) *Estimator {
	return &Estimator{config: config}
}

// Config returns the estimator configuration.
func (e *Estimator) Config() EstimatorConfig {
	return e.config
}

// CharsPerLine returns how many characters of the given font size are
// assumed to fit on a line of the given width. Never less than
// MinCharsPerLine.
func (e *Estimator) CharsPerLine(widthPx, fontSize float64) int {
	minChars := e.config.MinCharsPerLine
	if minChars < 1 {
		minChars = 1
	}
	charWidth := fontSize * e.config.CharWidthFactor
	if !(charWidth > 0) || !(widthPx > 0) || math.IsInf(widthPx, 0) {
		return minChars
	}
	n := math.Floor(widthPx / charWidth)
	if n > float64(math.MaxInt32) {
		return math.MaxInt32
	}
	if int(n) < minChars {
		return minChars
	}
	return int(n)
}

// LineCount returns the number of wrapped lines text occupies, at least 1.
func (e *Estimator) LineCount(text string, widthPx, fontSize float64) int {
	perLine := e.CharsPerLine(widthPx, fontSize)
	n := utf8.RuneCountInString(text)
	lines := (n + perLine - 1) / perLine
	if lines < 1 {
		return 1
	}
	return lines
}

func (e *Estimator) lineHeight(fontSize, density float64) float64 {
	return fontSize * e.config.LineHeightFactor * density
}

// QuestionHeight estimates the height of a question block in a column of the
// given width.
func (e *Estimator) QuestionHeight(q model.Question, s model.Settings, colWidthPx float64) float64 {
	d := s.Density

	stemLines := e.LineCount(q.Stem, colWidthPx, s.MCQFontSize)
	h := float64(stemLines)*e.lineHeight(s.MCQFontSize, d) + e.config.StemPadding*d

	choiceWidth := colWidthPx - e.config.ChoiceIndent
	for _, label := range q.EnabledLabels() {
		lines := e.LineCount(q.Choice(label), choiceWidth, s.PropFontSize)
		h += float64(lines)*e.lineHeight(s.PropFontSize, d) + e.config.ChoicePadding*d
	}

	if q.ExplanationVisible(s.EnableExplanations) {
		lines := e.LineCount(q.Explanation, colWidthPx, s.PropFontSize)
		h += float64(lines)*e.lineHeight(s.PropFontSize, d) + e.config.ExplanationPadding*d
	}

	h += e.config.BottomPadding * d
	return nonNegative(h)
}

// LessonHeaderHeight returns the constant height of a lesson header. Titles
// are truncated when painted, never wrapped.
func (e *Estimator) LessonHeaderHeight(s model.Settings) float64 {
	return nonNegative(e.config.HeaderBase*s.Density + e.config.HeaderExtra)
}

// AnswerKeyHeight estimates the height of a lesson's answer key. Rows beyond
// KeyMaxRows are not accounted for.
func (e *Estimator) AnswerKeyHeight(l model.Lesson, s model.Settings) float64 {
	rows := len(l.Questions)
	if e.config.KeyMaxRows >= 0 && rows > e.config.KeyMaxRows {
		rows = e.config.KeyMaxRows
	}
	rowHeight := e.config.KeyRowHeight * s.Density
	return nonNegative(e.config.KeyHeader + float64(rows)*rowHeight + e.config.KeyPadding)
}

func nonNegative(h float64) float64 {
	if math.IsNaN(h) || h < 0 {
		return 0
	}
	return h
}
