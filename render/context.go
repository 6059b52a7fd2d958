package render

import (
	"fmt"

	"github.com/tsawler/mcqsheet/duplicates"
	"github.com/tsawler/mcqsheet/layout"
	"github.com/tsawler/mcqsheet/model"
)

// Placeholders painted for empty content.
const (
	EmptyQuestion = "Empty question"
	EmptyChoice   = "..."
)

// Context is everything a renderer needs besides the plan.
type Context struct {
	Index    *model.Index
	Settings model.Settings

	// Flagged holds the IDs of questions to underline.
	Flagged map[string]bool

	// ChoiceDuplicates maps question IDs to their near-identical choices.
	ChoiceDuplicates map[string][]model.ChoiceLabel
}

// NewContext builds a context over one snapshot of lessons. The duplicate
// annotations may be nil.
func NewContext(lessons []model.Lesson, settings model.Settings, pairs []duplicates.Pair, choices []duplicates.ChoiceDuplicate) *Context {
	return &Context{
		Index:            model.NewIndex(lessons),
		Settings:         settings,
		Flagged:          duplicates.Flagged(pairs),
		ChoiceDuplicates: duplicates.ChoiceMap(choices),
	}
}

// Highlight reports whether duplicate decorations are painted at all.
func (c *Context) Highlight() bool {
	return c.Settings.ShowDuplicateHighlighting
}

// QuestionFlagged reports whether the question's stem is underlined.
func (c *Context) QuestionFlagged(id string) bool {
	return c.Highlight() && c.Flagged[id]
}

// ChoiceFlagged reports whether the choice's text is underlined.
func (c *Context) ChoiceFlagged(id string, label model.ChoiceLabel) bool {
	if !c.Highlight() {
		return false
	}
	for _, l := range c.ChoiceDuplicates[id] {
		if l == label {
			return true
		}
	}
	return false
}

// Lesson resolves the lesson of a block.
func (c *Context) Lesson(b layout.Block) (*model.Lesson, bool) {
	return c.Index.Lesson(b.LessonID)
}

// Question resolves the question of a question block.
func (c *Context) Question(b layout.Block) (*model.Question, bool) {
	if b.QuestionID == "" {
		return nil, false
	}
	return c.Index.Question(b.QuestionID)
}

// HeaderLabel is the text of a lesson header: "<n>. <title>".
func HeaderLabel(b layout.Block, title string) string {
	return fmt.Sprintf("%d. %s", b.LessonIndex+1, title)
}

// HeaderFontSize is the size of lesson header text.
func HeaderFontSize(s model.Settings) float64 {
	return float64(int(s.MCQFontSize*1.2 + 0.5))
}

// StemPrefix is the ordinal printed before a stem.
func StemPrefix(ordinal int) string {
	return fmt.Sprintf("%d. ", ordinal)
}

// ChoicePrefix is the label printed before a choice.
func ChoicePrefix(l model.ChoiceLabel) string {
	return string(l) + ")"
}
