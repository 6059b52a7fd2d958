package layout

import (
	"github.com/tsawler/mcqsheet/geometry"
	"github.com/tsawler/mcqsheet/model"
)

// Plan is the paginated placement of a document. Both renderers paint the
// same Plan.
type Plan struct {
	Pages  []Page
	Bounds geometry.PageBounds
}

// PageCount returns the number of pages in the plan.
func (p *Plan) PageCount() int {
	if p == nil {
		return 0
	}
	return len(p.Pages)
}

// Blocks returns every block in page, then column, then position order.
func (p *Plan) Blocks() []Block {
	if p == nil {
		return nil
	}
	var out []Block
	for i := range p.Pages {
		out = append(out, p.Pages[i].Blocks()...)
	}
	return out
}

// Equal reports whether two plans have the same pages, columns and blocks.
func (p *Plan) Equal(other *Plan) bool {
	if p == nil || other == nil {
		return p == other
	}
	if p.Bounds != other.Bounds || len(p.Pages) != len(other.Pages) {
		return false
	}
	for i := range p.Pages {
		for c := 0; c < 2; c++ {
			a, b := p.Pages[i].Columns[c], other.Pages[i].Columns[c]
			if a.UsedHeight != b.UsedHeight || len(a.Blocks) != len(b.Blocks) {
				return false
			}
			for k := range a.Blocks {
				if a.Blocks[k] != b.Blocks[k] {
					return false
				}
			}
		}
	}
	return true
}

// Engine packs lessons into pages of two columns.
type Engine struct {
	estimator *Estimator
}

// NewEngine creates an engine with the default estimator
func NewEngine() *Engine {
	return &Engine{estimator: NewEstimator()}
}

// NewEngineWithConfig creates an engine with a custom estimator configuration
func NewEngineWithConfig(config EstimatorConfig) *Engine {
	return &Engine{estimator: NewEstimatorWithConfig(config)}
}

// Estimator returns the estimator used by the engine.
func (e *Engine) Estimator() *Estimator {
	return e.estimator
}

// Compute paginates lessons with the default engine.
func Compute(lessons []model.Lesson, settings model.Settings) *Plan {
	return NewEngine().Compute(lessons, settings)
}

// Compute places every lesson header, question and answer key in order.
// It never fails: a block that does not fit an empty column is placed
// anyway and overflows.
func (e *Engine) Compute(lessons []model.Lesson, settings model.Settings) *Plan {
	bounds := settings.Bounds()
	c := &cursor{limit: bounds.ContentHeight}
	c.newPage()

	for li, lesson := range lessons {
		if li > 0 && (!c.page().Columns[0].IsEmpty() || c.col > 0) {
			c.newPage()
		}

		c.placeSpanning(Block{
			Kind:        KindLessonHeader,
			LessonID:    lesson.ID,
			LessonIndex: li,
			Height:      e.estimator.LessonHeaderHeight(settings),
		})

		for qi, q := range lesson.Questions {
			c.place(Block{
				Kind:          KindQuestion,
				LessonID:      lesson.ID,
				LessonIndex:   li,
				QuestionID:    q.ID,
				QuestionIndex: qi + 1,
				Height:        e.estimator.QuestionHeight(q, settings, bounds.ColumnWidth),
			})
		}

		c.place(Block{
			Kind:        KindAnswerKey,
			LessonID:    lesson.ID,
			LessonIndex: li,
			Height:      e.estimator.AnswerKeyHeight(lesson, settings),
		})
	}

	return &Plan{Pages: c.pages, Bounds: bounds}
}

// cursor tracks the current page and column during a single pass.
type cursor struct {
	pages []Page
	col   int
	limit float64
}

func (c *cursor) page() *Page {
	return &c.pages[len(c.pages)-1]
}

func (c *cursor) newPage() {
	c.pages = append(c.pages, Page{})
	c.col = 0
}

func (c *cursor) advance() {
	if c.col == 0 {
		c.col = 1
		return
	}
	c.newPage()
}

// placeSpanning records b once, in column 0, and moves every column's
// cursor below it. Spanning blocks are never size-checked.
func (c *cursor) placeSpanning(b Block) {
	p := c.page()
	y := 0.0
	for i := range p.Columns {
		if p.Columns[i].UsedHeight > y {
			y = p.Columns[i].UsedHeight
		}
	}
	b.Y = y
	p.Columns[0].Blocks = append(p.Columns[0].Blocks, b)
	for i := range p.Columns {
		p.Columns[i].UsedHeight = y + b.Height
	}
}

// place appends b to the current column, first advancing when b would
// strictly overflow a column that already holds something.
func (c *cursor) place(b Block) {
	col := &c.page().Columns[c.col]
	if col.UsedHeight+b.Height > c.limit && col.UsedHeight > 0 {
		c.advance()
		col = &c.page().Columns[c.col]
	}
	b.Y = col.UsedHeight
	col.Blocks = append(col.Blocks, b)
	col.UsedHeight += b.Height
}
