package model

import (
	"errors"
	"fmt"

	"github.com/tsawler/mcqsheet/geometry"
)

// Settings is the single document-wide configuration.
type Settings struct {
	ProjectName string `json:"projectName" yaml:"projectName"`

	// Font sizes in logical pixels.
	MCQFontSize  float64 `json:"mcqFontSize" yaml:"mcqFontSize"`
	PropFontSize float64 `json:"propFontSize" yaml:"propFontSize"`

	// Density multiplies every vertical measurement.
	Density float64 `json:"density" yaml:"density"`

	// Margins and gap in millimetres.
	MarginTop    float64 `json:"marginTop" yaml:"marginTop"`
	MarginBottom float64 `json:"marginBottom" yaml:"marginBottom"`
	MarginLeft   float64 `json:"marginLeft" yaml:"marginLeft"`
	MarginRight  float64 `json:"marginRight" yaml:"marginRight"`
	ColumnGap    float64 `json:"columnGap" yaml:"columnGap"`

	EnableExplanations        bool `json:"enableExplanations" yaml:"enableExplanations"`
	ShowDuplicateHighlighting bool `json:"showDuplicateHighlighting" yaml:"showDuplicateHighlighting"`

	// FuzzyThreshold is the token similarity (0-1) at which two questions
	// are reported as fuzzy duplicates.
	FuzzyThreshold float64 `json:"fuzzyThreshold" yaml:"fuzzyThreshold"`
}

// DefaultSettings returns the settings of a fresh project.
func DefaultSettings() Settings {
	return Settings{
		ProjectName:               "Untitled Project",
		MCQFontSize:               11,
		PropFontSize:              10,
		Density:                   1.0,
		MarginTop:                 15,
		MarginBottom:              15,
		MarginLeft:                15,
		MarginRight:               15,
		ColumnGap:                 8,
		EnableExplanations:        false,
		ShowDuplicateHighlighting: true,
		FuzzyThreshold:            0.85,
	}
}

// Margins returns the page margins for geometry calculations.
func (s Settings) Margins() geometry.Margins {
	return geometry.Margins{
		Top:    s.MarginTop,
		Bottom: s.MarginBottom,
		Left:   s.MarginLeft,
		Right:  s.MarginRight,
	}
}

// Bounds returns the page bounds implied by the margins and column gap.
func (s Settings) Bounds() geometry.PageBounds {
	return geometry.NewPageBounds(s.Margins(), s.ColumnGap)
}

// Validate checks the settings invariants: positive density and font sizes,
// non-negative margins and gap, a threshold within [0, 1], and a page that
// still has room for two columns.
func (s Settings) Validate() error {
	var errs []error
	if !(s.Density > 0) {
		errs = append(errs, fmt.Errorf("density must be positive, got %v", s.Density))
	}
	if !(s.MCQFontSize > 0) {
		errs = append(errs, fmt.Errorf("mcqFontSize must be positive, got %v", s.MCQFontSize))
	}
	if !(s.PropFontSize > 0) {
		errs = append(errs, fmt.Errorf("propFontSize must be positive, got %v", s.PropFontSize))
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"marginTop", s.MarginTop},
		{"marginBottom", s.MarginBottom},
		{"marginLeft", s.MarginLeft},
		{"marginRight", s.MarginRight},
		{"columnGap", s.ColumnGap},
	} {
		if f.v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", f.name, f.v))
		}
	}
	if !(s.FuzzyThreshold >= 0 && s.FuzzyThreshold <= 1) {
		errs = append(errs, fmt.Errorf("fuzzyThreshold must be within [0, 1], got %v", s.FuzzyThreshold))
	}
	if len(errs) == 0 {
		b := s.Bounds()
		if b.ColumnWidth <= 0 || b.ContentHeight <= 0 {
			errs = append(errs, errors.New("margins and column gap leave no room for content"))
		}
	}
	return errors.Join(errs...)
}
