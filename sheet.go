package mcqsheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/tsawler/mcqsheet/duplicates"
	"github.com/tsawler/mcqsheet/layout"
	"github.com/tsawler/mcqsheet/model"
	"github.com/tsawler/mcqsheet/project"
	"github.com/tsawler/mcqsheet/render"
	"github.com/tsawler/mcqsheet/render/htmlview"
	"github.com/tsawler/mcqsheet/render/pdfdoc"
	"github.com/tsawler/mcqsheet/render/raster"
	"github.com/tsawler/mcqsheet/workspace"
)

// Sheet provides a fluent interface for laying out and rendering a project.
// Each configuration method returns a new Sheet instance, making it safe for
// concurrent use and allowing method chaining.
type Sheet struct {
	// Source
	filename string
	doc      *project.Document

	// Configuration
	options SheetOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Sheet with a deep copy of options.
func (s *Sheet) clone() *Sheet {
	return &Sheet{
		filename: s.filename,
		doc:      s.doc,
		options:  s.options.clone(),
		err:      s.err,
	}
}

// fail records the first error; later errors are dropped.
func (s *Sheet) fail(err error) *Sheet {
	if s.err == nil {
		s.err = err
	}
	return s
}

// ============================================================================
// Configuration Methods (return new Sheet instance)
// ============================================================================

// Threshold sets the token similarity (0-1) at which two questions are
// reported as fuzzy duplicates.
//
// Example:
//
//	pairs, err := mcqsheet.Open("bank.json").Threshold(0.7).Duplicates()
func (s *Sheet) Threshold(t float64) *Sheet {
	n := s.clone()
	if t < 0 || t > 1 {
		return n.fail(fmt.Errorf("threshold must be within [0, 1], got %v", t))
	}
	n.options.threshold = &t
	return n
}

// Density scales every vertical measurement. Values below 1 pack more
// questions per column.
func (s *Sheet) Density(d float64) *Sheet {
	n := s.clone()
	if !(d > 0) {
		return n.fail(fmt.Errorf("density must be positive, got %v", d))
	}
	n.options.density = &d
	return n
}

// Explanations turns explanation blocks on or off for the whole sheet.
func (s *Sheet) Explanations(on bool) *Sheet {
	n := s.clone()
	n.options.explanations = &on
	return n
}

// Highlighting turns duplicate highlighting on or off.
func (s *Sheet) Highlighting(on bool) *Sheet {
	n := s.clone()
	n.options.highlighting = &on
	return n
}

// Margins sets the page margins in millimetres.
//
// Example:
//
//	err := mcqsheet.Open("bank.json").Margins(10, 10, 12, 12).PDF(out)
func (s *Sheet) Margins(top, bottom, left, right float64) *Sheet {
	n := s.clone()
	n.options.margins = &[4]float64{top, bottom, left, right}
	return n
}

// ColumnGap sets the gap between the two columns in millimetres.
func (s *Sheet) ColumnGap(mm float64) *Sheet {
	n := s.clone()
	n.options.columnGap = &mm
	return n
}

// FontSizes sets the question and choice font sizes in pixels.
func (s *Sheet) FontSizes(question, choice float64) *Sheet {
	n := s.clone()
	if !(question > 0) || !(choice > 0) {
		return n.fail(fmt.Errorf("font sizes must be positive, got %v and %v", question, choice))
	}
	n.options.fontSizes = &[2]float64{question, choice}
	return n
}

// Title overrides the project name used for the document title.
func (s *Sheet) Title(name string) *Sheet {
	n := s.clone()
	n.options.projectName = &name
	return n
}

// ============================================================================
// Terminal Operations
// ============================================================================

// resolved is everything a terminal operation needs, computed once.
type resolved struct {
	settings model.Settings
	lessons  []model.Lesson
	pairs    []duplicates.Pair
	choices  []duplicates.ChoiceDuplicate
	plan     *layout.Plan
}

func (r *resolved) context() *render.Context {
	return render.NewContext(r.lessons, r.settings, r.pairs, r.choices)
}

func (s *Sheet) load() (*project.Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.doc != nil {
		return s.doc, nil
	}
	if s.filename == "" {
		return nil, errors.New("no filename specified")
	}
	doc, err := project.Load(s.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	return doc, nil
}

func (s *Sheet) resolve() (*resolved, error) {
	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	settings := s.options.apply(doc.Settings)
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	det := duplicates.NewDetectorWithConfig(duplicates.ConfigForSettings(settings))
	return &resolved{
		settings: settings,
		lessons:  doc.Lessons,
		pairs:    det.Pairs(doc.Lessons),
		choices:  det.Choices(doc.Lessons),
		plan:     layout.Compute(doc.Lessons, settings),
	}, nil
}

// Document returns the project with the configured overrides applied to its
// settings.
func (s *Sheet) Document() (*project.Document, error) {
	r, err := s.resolve()
	if err != nil {
		return nil, err
	}
	return project.New(r.settings, model.CloneLessons(r.lessons)), nil
}

// Layout returns the pagination plan.
//
// Example:
//
//	plan, err := mcqsheet.Open("bank.json").Layout()
//	if err != nil {
//	    // handle error
//	}
//	for i, p := range plan.Pages {
//	    fmt.Printf("page %d: %d blocks\n", i+1, p.BlockCount())
//	}
func (s *Sheet) Layout() (*layout.Plan, error) {
	r, err := s.resolve()
	if err != nil {
		return nil, err
	}
	return r.plan, nil
}

// PageCount returns the number of pages the sheet occupies.
func (s *Sheet) PageCount() (int, error) {
	plan, err := s.Layout()
	if err != nil {
		return 0, err
	}
	return plan.PageCount(), nil
}

// Duplicates returns every duplicate question pair, all unresolved.
func (s *Sheet) Duplicates() ([]duplicates.Pair, error) {
	r, err := s.resolve()
	if err != nil {
		return nil, err
	}
	return r.pairs, nil
}

// ChoiceDuplicates returns the questions with near-identical choices.
func (s *Sheet) ChoiceDuplicates() ([]duplicates.ChoiceDuplicate, error) {
	r, err := s.resolve()
	if err != nil {
		return nil, err
	}
	return r.choices, nil
}

// PDF writes the sheet as a PDF document.
func (s *Sheet) PDF(w io.Writer) error {
	r, err := s.resolve()
	if err != nil {
		return err
	}
	return pdfdoc.Export(w, r.plan, r.context())
}

// HTML writes the sheet as a standalone HTML preview.
func (s *Sheet) HTML(w io.Writer) error {
	r, err := s.resolve()
	if err != nil {
		return err
	}
	return htmlview.Render(w, r.plan, r.context())
}

// PNG writes one page (1-indexed) as a PNG image. Scale is the number of
// device pixels per layout pixel; 1 gives a 794x1123 image.
//
// Example:
//
//	f, _ := os.Create("page1.png")
//	defer f.Close()
//	err := mcqsheet.Open("bank.json").PNG(f, 1, 2)
func (s *Sheet) PNG(w io.Writer, page int, scale float64) error {
	r, err := s.resolve()
	if err != nil {
		return err
	}
	if page < 1 || page > r.plan.PageCount() {
		return fmt.Errorf("page %d out of range [1, %d]", page, r.plan.PageCount())
	}
	cfg := raster.DefaultConfig()
	cfg.Scale = scale
	rz, err := raster.NewRasterizerWithConfig(cfg)
	if err != nil {
		return err
	}
	return rz.WritePNG(w, r.plan, page-1, r.context())
}

// Workspace opens an editable workspace on the project with the configured
// overrides applied.
func (s *Sheet) Workspace(opts ...workspace.Option) (*workspace.Workspace, error) {
	doc, err := s.Document()
	if err != nil {
		return nil, err
	}
	return workspace.FromDocument(doc, opts...)
}
