package mcqsheet

import "github.com/tsawler/mcqsheet/model"

// SheetOptions holds the overrides applied on top of a document's settings.
// A nil field keeps the document's value.
type SheetOptions struct {
	threshold    *float64
	density      *float64
	explanations *bool
	highlighting *bool

	margins   *[4]float64 // top, bottom, left, right in mm
	columnGap *float64
	fontSizes *[2]float64 // question, choice

	projectName *string
}

// defaultOptions returns options that override nothing.
func defaultOptions() SheetOptions {
	return SheetOptions{}
}

// clone creates a deep copy of SheetOptions.
func (o SheetOptions) clone() SheetOptions {
	return SheetOptions{
		threshold:    clonePtr(o.threshold),
		density:      clonePtr(o.density),
		explanations: clonePtr(o.explanations),
		highlighting: clonePtr(o.highlighting),
		margins:      clonePtr(o.margins),
		columnGap:    clonePtr(o.columnGap),
		fontSizes:    clonePtr(o.fontSizes),
		projectName:  clonePtr(o.projectName),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// apply returns s with every override set.
func (o SheetOptions) apply(s model.Settings) model.Settings {
	if o.threshold != nil {
		s.FuzzyThreshold = *o.threshold
	}
	if o.density != nil {
		s.Density = *o.density
	}
	if o.explanations != nil {
		s.EnableExplanations = *o.explanations
	}
	if o.highlighting != nil {
		s.ShowDuplicateHighlighting = *o.highlighting
	}
	if o.margins != nil {
		s.MarginTop, s.MarginBottom, s.MarginLeft, s.MarginRight = o.margins[0], o.margins[1], o.margins[2], o.margins[3]
	}
	if o.columnGap != nil {
		s.ColumnGap = *o.columnGap
	}
	if o.fontSizes != nil {
		s.MCQFontSize, s.PropFontSize = o.fontSizes[0], o.fontSizes[1]
	}
	if o.projectName != nil {
		s.ProjectName = *o.projectName
	}
	return s
}
