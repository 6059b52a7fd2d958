package layout

// BlockKind tags the three kinds of renderable unit.
type BlockKind int

const (
	// KindLessonHeader is a lesson title bar spanning both columns.
	KindLessonHeader BlockKind = iota
	// KindQuestion is a single question in one column.
	KindQuestion
	// KindAnswerKey is the answer table trailing a lesson's questions.
	KindAnswerKey
)

// String returns the string representation of the kind.
func (k BlockKind) String() string {
	switch k {
	case KindLessonHeader:
		return "lesson-header"
	case KindQuestion:
		return "mcq"
	case KindAnswerKey:
		return "answer-key"
	default:
		return "unknown"
	}
}

// Spans reports whether blocks of this kind occupy both columns.
func (k BlockKind) Spans() bool {
	return k == KindLessonHeader
}

// Block is one placed, renderable unit. Blocks refer to content by identifier
// only; resolve them through a model.Index built from the same snapshot.
type Block struct {
	Kind BlockKind

	LessonID string
	// LessonIndex is the zero-based position of the lesson in the document.
	LessonIndex int

	// QuestionID and QuestionIndex (1-based within the lesson) are set for
	// question blocks only.
	QuestionID    string
	QuestionIndex int

	// Height is the estimated rendered height in logical pixels.
	Height float64

	// Y is the offset from the top of the column content area at which the
	// block is painted. A spanning block has the same offset in every column.
	Y float64
}

// Bottom returns the offset just below the block.
func (b Block) Bottom() float64 {
	return b.Y + b.Height
}

// Column is an ordered run of blocks with a running height cursor.
type Column struct {
	Blocks     []Block
	UsedHeight float64
}

// IsEmpty reports whether nothing, not even a spanning block, occupies the
// column.
func (c *Column) IsEmpty() bool {
	return c.UsedHeight <= 0
}

// Page holds exactly two columns.
type Page struct {
	Columns [2]Column
}

// Blocks returns the blocks of the page in column-then-position order.
func (p *Page) Blocks() []Block {
	out := make([]Block, 0, len(p.Columns[0].Blocks)+len(p.Columns[1].Blocks))
	out = append(out, p.Columns[0].Blocks...)
	out = append(out, p.Columns[1].Blocks...)
	return out
}

// BlockCount returns the number of blocks recorded on the page.
func (p *Page) BlockCount() int {
	return len(p.Columns[0].Blocks) + len(p.Columns[1].Blocks)
}
