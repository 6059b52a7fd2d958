package htmlview

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/mcqsheet/geometry"
	"github.com/tsawler/mcqsheet/layout"
	"github.com/tsawler/mcqsheet/model"
	"github.com/tsawler/mcqsheet/render"
)

// CheckMark marks correct answers in the answer key.
const CheckMark = "✓"

const stylesheet = `body{margin:0;padding:16px 0;background:#e5e7eb;font-family:Helvetica,Arial,sans-serif}
.page{position:relative;overflow:hidden;margin:0 auto 16px;background:#fff;box-shadow:0 1px 4px rgba(0,0,0,.2)}
.page>div{position:absolute;box-sizing:border-box}
.lesson-header{display:flex;align-items:center;padding:0 10px;border-radius:4px;color:#fff;font-weight:bold;white-space:nowrap;overflow:hidden;text-overflow:ellipsis}
.stem{font-weight:bold;line-height:1.4}
.choice{display:flex;line-height:1.4}
.choice .label{flex:0 0 20px}
.correct{font-weight:bold}
.placeholder{font-style:italic}
.explanation{font-style:italic;line-height:1.4;border-radius:3px;padding:2px 4px}
.answer-key table{width:100%;border-collapse:collapse;font-size:8px;text-align:center}
.answer-key th:first-child,.answer-key td:first-child{width:30px;text-align:left}
@media print{body{background:none;padding:0}.page{margin:0;box-shadow:none;page-break-after:always}}`

// Render writes the plan as a standalone HTML document, one absolutely
// positioned A4 page per plan page.
func Render(w io.Writer, plan *layout.Plan, ctx *render.Context) error {
	if err := html.Render(w, Document(plan, ctx)); err != nil {
		return fmt.Errorf("rendering HTML: %w", err)
	}
	return nil
}

// Document builds the DOM of the preview.
func Document(plan *layout.Plan, ctx *render.Context) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	head := appendAll(el("head"),
		el("meta", "charset", "utf-8"),
		appendAll(el("title"), text(ctx.Settings.ProjectName)),
		appendAll(el("style"), text(stylesheet)),
	)
	body := el("body")
	v := &view{plan: plan, ctx: ctx, bounds: plan.Bounds}
	for i := range plan.Pages {
		body.AppendChild(v.page(i))
	}
	doc.AppendChild(appendAll(el("html", "lang", "en"), head, body))
	return doc
}

type view struct {
	plan   *layout.Plan
	ctx    *render.Context
	bounds geometry.PageBounds
}

func px(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		s = "0"
	}
	return s + "px"
}

// style joins property/value pairs into a declaration list.
func style(kv ...string) string {
	var sb strings.Builder
	for i := 0; i+1 < len(kv); i += 2 {
		sb.WriteString(kv[i])
		sb.WriteByte(':')
		sb.WriteString(kv[i+1])
		sb.WriteByte(';')
	}
	return sb.String()
}

func underline() string {
	return "underline wavy " + render.FlagColor.Hex()
}

func (v *view) page(i int) *html.Node {
	page := el("div",
		"class", "page",
		"data-page", strconv.Itoa(i+1),
		"style", style("width", px(geometry.A4WidthPx), "height", px(geometry.A4HeightPx)),
	)
	for ci, col := range v.plan.Pages[i].Columns {
		for _, b := range col.Blocks {
			var n *html.Node
			switch b.Kind {
			case layout.KindLessonHeader:
				n = v.header(b)
			case layout.KindQuestion:
				n = v.question(ci, b)
			case layout.KindAnswerKey:
				n = v.answerKey(ci, b)
			}
			if n != nil {
				page.AppendChild(n)
			}
		}
	}
	page.AppendChild(appendAll(el("div",
		"class", "page-number",
		"style", style(
			"right", px(v.bounds.MarginRight),
			"bottom", px(v.bounds.MarginBottom/2),
			"font-size", "8px",
			"color", render.PageNumberColor.Hex(),
		),
	), text(strconv.Itoa(i+1))))
	return page
}

func (v *view) header(b layout.Block) *html.Node {
	lesson, ok := v.ctx.Lesson(b)
	if !ok {
		return nil
	}
	box := v.bounds.SpanBox(b.Y, b.Height)
	return appendAll(el("div",
		"class", "lesson-header",
		"data-lesson", lesson.ID,
		"style", style(
			"left", px(box.X),
			"top", px(box.Y+2),
			"width", px(box.Width),
			"height", px(max(box.Height-4, 0)),
			"background", render.HeaderFill.Hex(),
			"font-size", px(render.HeaderFontSize(v.ctx.Settings)),
		),
	), text(render.HeaderLabel(b, lesson.Title)))
}

func (v *view) question(ci int, b layout.Block) *html.Node {
	q, ok := v.ctx.Question(b)
	if !ok {
		return nil
	}
	s := v.ctx.Settings
	d := s.Density
	box := v.bounds.BlockBox(ci, b.Y, b.Height)
	n := el("div",
		"class", "mcq",
		"data-id", q.ID,
		"style", style("left", px(box.X), "top", px(box.Y), "width", px(box.Width)),
	)

	stemClass, stemStyle := "stem", style("font-size", px(s.MCQFontSize), "margin-bottom", px(4*d), "color", render.StemColor.Hex())
	if v.ctx.QuestionFlagged(q.ID) {
		stemClass += " dup"
		stemStyle += style("text-decoration", underline())
	}
	stem := el("div", "class", stemClass, "style", stemStyle)
	stem.AppendChild(text(render.StemPrefix(b.QuestionIndex)))
	if q.Stem == "" {
		stem.AppendChild(appendAll(el("span",
			"class", "placeholder",
			"style", style("color", render.PlaceholderColor.Hex()),
		), text(render.EmptyQuestion)))
	} else {
		stem.AppendChild(text(q.Stem))
	}
	n.AppendChild(stem)

	for _, l := range q.EnabledLabels() {
		n.AppendChild(v.choice(q, l))
	}

	if q.ExplanationVisible(s.EnableExplanations) {
		n.AppendChild(appendAll(el("div",
			"class", "explanation",
			"style", style(
				"font-size", px(max(s.PropFontSize-1, 1)),
				"margin-top", px(2*d),
				"background", render.ExplanationFill.Hex(),
				"border", "1px solid "+render.ExplanationLine.Hex(),
				"color", render.ExplanationText.Hex(),
			),
		), appendAll(el("strong"), text("Exp: ")), text(q.Explanation)))
	}
	return n
}

func (v *view) choice(q *model.Question, l model.ChoiceLabel) *html.Node {
	s := v.ctx.Settings
	row := el("div",
		"class", "choice",
		"data-label", string(l),
		"style", style("font-size", px(s.PropFontSize), "margin-bottom", px(2*s.Density)),
	)

	labelClass, labelColor := "label", render.LabelColor
	if q.IsCorrect(l) {
		labelClass, labelColor = "label correct", render.CorrectColor
	}
	row.AppendChild(appendAll(el("span", "class", labelClass, "style", style("color", labelColor.Hex())),
		text(render.ChoicePrefix(l))))

	body := q.Choice(l)
	switch {
	case body == "":
		row.AppendChild(appendAll(el("span",
			"class", "choice-text placeholder",
			"style", style("color", render.PlaceholderColor.Hex()),
		), text(render.EmptyChoice)))
	case v.ctx.ChoiceFlagged(q.ID, l):
		row.AppendChild(appendAll(el("span",
			"class", "choice-text dup",
			"style", style("color", render.ChoiceColor.Hex(), "text-decoration", underline()),
		), text(body)))
	default:
		row.AppendChild(appendAll(el("span",
			"class", "choice-text",
			"style", style("color", render.ChoiceColor.Hex()),
		), text(body)))
	}
	return row
}

func (v *view) answerKey(ci int, b layout.Block) *html.Node {
	lesson, ok := v.ctx.Lesson(b)
	if !ok {
		return nil
	}
	box := v.bounds.BlockBox(ci, b.Y, b.Height)
	rowH := px(18 * v.ctx.Settings.Density)

	head := appendAll(el("tr", "style", style("height", rowH)), appendAll(el("th"), text("#")))
	for _, l := range model.Labels() {
		head.AppendChild(appendAll(el("th"), text(string(l))))
	}

	rows := el("tbody")
	for qi, q := range lesson.Questions {
		class, trStyle := "", style("height", rowH)
		if qi%2 == 0 {
			class, trStyle = "stripe", trStyle+style("background", render.KeyStripe.Hex())
		}
		tr := el("tr", "class", class, "style", trStyle)
		tr.AppendChild(appendAll(el("td", "style", style("color", render.KeyNumberColor.Hex())),
			text(strconv.Itoa(qi+1))))
		for _, l := range model.Labels() {
			td := el("td", "style", style("color", render.CheckColor.Hex()))
			if q.IsCorrect(l) {
				td.AppendChild(text(CheckMark))
			}
			tr.AppendChild(td)
		}
		rows.AppendChild(tr)
	}

	return appendAll(el("div",
		"class", "answer-key",
		"data-lesson", lesson.ID,
		"style", style("left", px(box.X), "top", px(box.Y), "width", px(box.Width)),
	),
		appendAll(el("div",
			"class", "key-title",
			"style", style("font-size", "9px", "font-weight", "bold", "height", "16px", "color", render.KeyTitleColor.Hex()),
		), text("Answer Key")),
		appendAll(el("table"), appendAll(el("thead"), head), rows),
	)
}
