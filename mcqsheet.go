// Package mcqsheet provides a fluent API for laying out and rendering
// multiple-choice exam sheets.
//
// Basic usage:
//
//	err := mcqsheet.Open("biology.json").PDF(out)
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	pages, err := mcqsheet.Open("biology.yaml").
//	    Density(0.9).
//	    Explanations(true).
//	    Threshold(0.8).
//	    PageCount()
//
// The layout, duplicates, render and workspace packages are available for
// lower-level use.
package mcqsheet

import (
	"github.com/tsawler/mcqsheet/model"
	"github.com/tsawler/mcqsheet/project"
)

// Open reads a project file (JSON or YAML) and returns a Sheet for fluent
// configuration. The file is read by the terminal operation.
//
// Example:
//
//	n, err := mcqsheet.Open("biology.json").PageCount()
func Open(filename string) *Sheet {
	return &Sheet{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates a Sheet from an already-decoded project document.
// The document is not modified.
//
// Example:
//
//	doc, err := project.Load("biology.json")
//	if err != nil {
//	    // handle error
//	}
//	plan, err := mcqsheet.FromDocument(doc).Layout()
func FromDocument(doc *project.Document) *Sheet {
	return &Sheet{
		doc:     doc,
		options: defaultOptions(),
	}
}

// FromLessons creates a Sheet from lessons and settings held in memory.
func FromLessons(settings model.Settings, lessons []model.Lesson) *Sheet {
	return FromDocument(project.New(settings, lessons))
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := mcqsheet.Must(mcqsheet.Open("biology.json").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
