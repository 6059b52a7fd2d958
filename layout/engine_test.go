package layout

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/tsawler/mcqsheet/model"
)

func testLesson(id string, n int, stem string) model.Lesson {
	l := model.Lesson{ID: id, Title: "Lesson " + id}
	for i := 0; i < n; i++ {
		q := testQuestion(stem, true)
		q.ID = fmt.Sprintf("%s-q%d", id, i+1)
		l.Questions = append(l.Questions, q)
	}
	return l
}

func TestComputeSingleLesson(t *testing.T) {
	plan := Compute([]model.Lesson{testLesson("a", 3, "What is 2+2?")}, model.DefaultSettings())

	if plan.PageCount() != 1 {
		t.Fatalf("PageCount() = %d, want 1", plan.PageCount())
	}
	col0 := plan.Pages[0].Columns[0]
	kinds := []BlockKind{KindLessonHeader, KindQuestion, KindQuestion, KindQuestion, KindAnswerKey}
	if len(col0.Blocks) != len(kinds) {
		t.Fatalf("column 0 has %d blocks, want %d", len(col0.Blocks), len(kinds))
	}
	for i, k := range kinds {
		if col0.Blocks[i].Kind != k {
			t.Errorf("block %d kind = %v, want %v", i, col0.Blocks[i].Kind, k)
		}
	}
	if len(plan.Pages[0].Columns[1].Blocks) != 0 {
		t.Errorf("column 1 should hold no blocks")
	}

	header := col0.Blocks[0]
	if plan.Pages[0].Columns[1].UsedHeight != header.Height {
		t.Errorf("column 1 used height = %v, want header height %v",
			plan.Pages[0].Columns[1].UsedHeight, header.Height)
	}

	// blocks are stacked without gaps
	y := 0.0
	for i, b := range col0.Blocks {
		if b.Y != y {
			t.Errorf("block %d Y = %v, want %v", i, b.Y, y)
		}
		y = b.Bottom()
	}
	if col0.UsedHeight != y {
		t.Errorf("column 0 used height = %v, want %v", col0.UsedHeight, y)
	}

	for i, b := range col0.Blocks[1:4] {
		if b.QuestionIndex != i+1 {
			t.Errorf("question ordinal = %d, want %d", b.QuestionIndex, i+1)
		}
	}
}

func TestComputeTwentyFiveQuestions(t *testing.T) {
	s := model.DefaultSettings()
	lesson := testLesson("a", 25, "What is 2+2?")
	plan := Compute([]model.Lesson{lesson}, s)

	// header 36, question 111.4, content height ~1009.6: 8 + 8 on page one,
	// 9 on page two followed by the answer key in the second column
	if plan.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", plan.PageCount())
	}
	counts := func(c Column) int {
		n := 0
		for _, b := range c.Blocks {
			if b.Kind == KindQuestion {
				n++
			}
		}
		return n
	}
	got := []int{
		counts(plan.Pages[0].Columns[0]),
		counts(plan.Pages[0].Columns[1]),
		counts(plan.Pages[1].Columns[0]),
		counts(plan.Pages[1].Columns[1]),
	}
	want := []int{8, 8, 9, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("questions per column = %v, want %v", got, want)
		}
	}

	first := plan.Pages[0].Columns[1].Blocks[0]
	if first.Y != plan.Pages[0].Columns[0].Blocks[0].Height {
		t.Errorf("first block of column 1 at Y = %v, want below the header", first.Y)
	}

	key := plan.Pages[1].Columns[1].Blocks
	if len(key) != 1 || key[0].Kind != KindAnswerKey || key[0].Y != 0 {
		t.Errorf("answer key not placed at top of page 2 column 1: %+v", key)
	}

	for _, p := range plan.Pages {
		for c, col := range p.Columns {
			for _, b := range col.Blocks {
				if b.Y+b.Height > plan.Bounds.ContentHeight+1e-9 {
					t.Errorf("column %d block %v overflows: bottom %v > %v", c, b.Kind, b.Bottom(), plan.Bounds.ContentHeight)
				}
			}
		}
	}
}

func TestComputeOrdering(t *testing.T) {
	lessons := []model.Lesson{
		testLesson("a", 30, strings.Repeat("long stem ", 20)),
		testLesson("b", 0, ""),
		testLesson("c", 7, "short"),
	}
	plan := Compute(lessons, model.DefaultSettings())

	var want []string
	for _, l := range lessons {
		want = append(want, "H:"+l.ID)
		for _, q := range l.Questions {
			want = append(want, "Q:"+q.ID)
		}
		want = append(want, "K:"+l.ID)
	}

	var got []string
	for _, b := range plan.Blocks() {
		switch b.Kind {
		case KindLessonHeader:
			got = append(got, "H:"+b.LessonID)
		case KindQuestion:
			got = append(got, "Q:"+b.QuestionID)
		case KindAnswerKey:
			got = append(got, "K:"+b.LessonID)
		}
	}

	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("block order mismatch\n got: %v\nwant: %v", got, want)
	}
}

func TestComputeLessonIsolation(t *testing.T) {
	lessons := []model.Lesson{
		testLesson("a", 2, "one"),
		testLesson("b", 12, strings.Repeat("stem ", 30)),
		testLesson("c", 1, "three"),
	}
	plan := Compute(lessons, model.DefaultSettings())

	seen := map[int]bool{}
	for pi, p := range plan.Pages {
		lesson := -1
		for c, col := range p.Columns {
			for _, b := range col.Blocks {
				if lesson == -1 {
					lesson = b.LessonIndex
				}
				if b.LessonIndex != lesson {
					t.Fatalf("page %d column %d mixes lessons %d and %d", pi, c, lesson, b.LessonIndex)
				}
			}
		}
		if first := p.Columns[0].Blocks; len(first) > 0 && first[0].Kind == KindLessonHeader {
			if seen[first[0].LessonIndex] {
				t.Errorf("lesson %d has two headers", first[0].LessonIndex)
			}
			seen[first[0].LessonIndex] = true
		}
	}
	if len(seen) != len(lessons) {
		t.Errorf("headers found at page tops for %d lessons, want %d", len(seen), len(lessons))
	}
}

func TestComputeEmptyLesson(t *testing.T) {
	lessons := []model.Lesson{{ID: "a", Title: "Empty"}}
	plan := Compute(lessons, model.DefaultSettings())

	blocks := plan.Blocks()
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want header and answer key", len(blocks))
	}
	if blocks[0].Kind != KindLessonHeader || blocks[1].Kind != KindAnswerKey {
		t.Errorf("kinds = %v, %v", blocks[0].Kind, blocks[1].Kind)
	}
	if blocks[1].Height != 40 {
		t.Errorf("empty answer key height = %v, want 40", blocks[1].Height)
	}
}

func TestComputeNoLessons(t *testing.T) {
	plan := Compute(nil, model.DefaultSettings())
	if plan.PageCount() != 1 || len(plan.Blocks()) != 0 {
		t.Errorf("Compute(nil) = %d pages, %d blocks; want one empty page", plan.PageCount(), len(plan.Blocks()))
	}
}

func TestComputeOversizedBlock(t *testing.T) {
	s := model.DefaultSettings()
	huge := testLesson("a", 2, strings.Repeat("x", 20000))
	plan := Compute([]model.Lesson{huge}, s)

	// each question is taller than a column. The first cannot follow the
	// header and moves to column 1, the second starts page 2 alone and
	// overflows, and the answer key takes the remaining column.
	if plan.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", plan.PageCount())
	}
	p1, p2 := plan.Pages[0], plan.Pages[1]
	if len(p1.Columns[0].Blocks) != 1 || p1.Columns[0].Blocks[0].Kind != KindLessonHeader {
		t.Errorf("page 1 column 0 should hold only the header")
	}
	if len(p1.Columns[1].Blocks) != 1 || p1.Columns[1].Blocks[0].QuestionIndex != 1 {
		t.Errorf("page 1 column 1 should hold question 1")
	}
	if len(p2.Columns[0].Blocks) != 1 || p2.Columns[0].Blocks[0].QuestionIndex != 2 {
		t.Errorf("page 2 column 0 should hold question 2")
	}
	if p2.Columns[0].UsedHeight <= plan.Bounds.ContentHeight {
		t.Errorf("oversized block should overflow its column")
	}
	if len(p2.Columns[1].Blocks) != 1 || p2.Columns[1].Blocks[0].Kind != KindAnswerKey {
		t.Errorf("page 2 column 1 should hold the answer key")
	}
}

func TestCursorTieBreak(t *testing.T) {
	c := &cursor{limit: 100}
	c.newPage()

	c.place(Block{Kind: KindQuestion, QuestionID: "1", Height: 60})
	c.place(Block{Kind: KindQuestion, QuestionID: "2", Height: 40})
	if c.col != 0 || len(c.page().Columns[0].Blocks) != 2 {
		t.Fatalf("exact fit should not advance: col=%d blocks=%d", c.col, len(c.page().Columns[0].Blocks))
	}

	c.place(Block{Kind: KindQuestion, QuestionID: "3", Height: 1})
	if c.col != 1 {
		t.Fatalf("strict overflow should advance to column 1, at %d", c.col)
	}

	c.place(Block{Kind: KindQuestion, QuestionID: "4", Height: 99})
	c.place(Block{Kind: KindQuestion, QuestionID: "5", Height: 10})
	if len(c.pages) != 2 || c.col != 0 {
		t.Fatalf("overflowing column 1 should start a page: pages=%d col=%d", len(c.pages), c.col)
	}
}

func TestCursorSpanning(t *testing.T) {
	c := &cursor{limit: 100}
	c.newPage()
	c.place(Block{Kind: KindQuestion, Height: 30})
	c.advance()
	c.place(Block{Kind: KindQuestion, Height: 50})

	c.placeSpanning(Block{Kind: KindLessonHeader, Height: 10})
	p := c.page()
	if p.Columns[0].UsedHeight != 60 || p.Columns[1].UsedHeight != 60 {
		t.Errorf("used heights = %v, %v; want 60, 60", p.Columns[0].UsedHeight, p.Columns[1].UsedHeight)
	}
	if got := p.Columns[0].Blocks[1].Y; got != 50 {
		t.Errorf("spanning block Y = %v, want 50", got)
	}
	if len(p.Columns[1].Blocks) != 1 {
		t.Errorf("spanning block must be recorded once")
	}
}

func TestComputeIdempotent(t *testing.T) {
	lessons := []model.Lesson{testLesson("a", 14, "same stem"), testLesson("b", 3, "other")}
	s := model.DefaultSettings()
	s.EnableExplanations = true

	a := Compute(lessons, s)
	b := Compute(lessons, s)
	if !a.Equal(b) {
		t.Error("Compute() is not idempotent")
	}

	s.Density = 1.3
	if a.Equal(Compute(lessons, s)) {
		t.Error("plans for different densities should differ")
	}
}

func TestComputeBounds(t *testing.T) {
	s := model.DefaultSettings()
	plan := Compute(nil, s)

	want := (794 - 15*(96/25.4) - 15*(96/25.4) - 8*(96/25.4)) / 2
	if math.Abs(plan.Bounds.ColumnWidth-want) > 1e-9 {
		t.Errorf("ColumnWidth = %v, want %v", plan.Bounds.ColumnWidth, want)
	}
}

func TestBlockKindString(t *testing.T) {
	tests := map[BlockKind]string{
		KindLessonHeader: "lesson-header",
		KindQuestion:     "mcq",
		KindAnswerKey:    "answer-key",
		BlockKind(42):    "unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
	if !KindLessonHeader.Spans() || KindQuestion.Spans() || KindAnswerKey.Spans() {
		t.Error("only lesson headers span columns")
	}
}
