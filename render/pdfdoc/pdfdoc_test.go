package pdfdoc

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/tsawler/mcqsheet/internal/filters"
	"github.com/tsawler/mcqsheet/internal/textwrap"
	"github.com/tsawler/mcqsheet/layout"
	"github.com/tsawler/mcqsheet/model"
	"github.com/tsawler/mcqsheet/render"
)

func TestEncodeWinAnsi(t *testing.T) {
	tests := []struct {
		in   string
		want []byte
	}{
		{"abc", []byte("abc")},
		{"café", []byte{'c', 'a', 'f', 0xE9}},
		{"cafe\u0301", []byte{'c', 'a', 'f', 0xE9}},
		{"€5", []byte{0x80, '5'}},
		{"日本", []byte("??")},
		{"a\tb\nc", []byte("a b c")},
	}
	for _, tt := range tests {
		if got := EncodeWinAnsi(tt.in); !bytes.Equal(got, tt.want) {
			t.Errorf("EncodeWinAnsi(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStringEscaping(t *testing.T) {
	tests := []struct {
		in   String
		want string
	}{
		{String("plain"), "(plain)"},
		{String(`a(b)\c`), `(a\(b\)\\c)`},
		{String{0xE9, 0x07}, `(\351\007)`},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String(%v) = %s, want %s", []byte(tt.in), got, tt.want)
		}
	}
}

func TestObjects(t *testing.T) {
	tests := []struct {
		obj  Object
		want string
	}{
		{Int(42), "42"},
		{Real(1.5), "1.5"},
		{Real(2), "2"},
		{Real(0.004), "0"},
		{Real(-0.001), "0"},
		{Name("Font"), "/Font"},
		{Array{Int(1), Name("A")}, "[1 /A]"},
		{Dict{"B": Int(2), "A": Int(1)}, "<< /A 1 /B 2 >>"},
		{Ref(7), "7 0 R"},
		{&Stream{Dict: Dict{}, Data: []byte("xy")}, "<< /Length 2 >>\nstream\nxy\nendstream"},
	}
	for _, tt := range tests {
		if got := tt.obj.String(); got != tt.want {
			t.Errorf("%s: String() = %q, want %q", tt.obj.Type(), got, tt.want)
		}
	}
}

func sampleLessons(n int) []model.Lesson {
	var qs []model.Question
	for i := 0; i < n; i++ {
		q := model.NewQuestion()
		q.Stem = fmt.Sprintf("Question (%d) about café", i+1)
		q.Choices[model.LabelA] = "Yes"
		q.Choices[model.LabelB] = "No"
		q.CorrectAnswers = []model.ChoiceLabel{model.LabelA}
		qs = append(qs, q)
	}
	return []model.Lesson{{ID: "l1", Title: "Basics", Questions: qs}}
}

func export(t *testing.T, lessons []model.Lesson, cfg Config) ([]byte, *layout.Plan) {
	t.Helper()
	s := model.DefaultSettings()
	s.ProjectName = "Biology (Unit 1)"
	plan := layout.Compute(lessons, s)
	ctx := render.NewContext(lessons, s, nil, nil)

	var buf bytes.Buffer
	if err := NewExporterWithConfig(cfg).Export(&buf, plan, ctx); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	return buf.Bytes(), plan
}

func TestExportStructure(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Compress = false
	cfg.CreationDate = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	out, plan := export(t, sampleLessons(3), cfg)
	s := string(out)

	if !strings.HasPrefix(s, "%PDF-1.4\n") {
		t.Errorf("missing header: %q", s[:20])
	}
	if !strings.HasSuffix(s, "%%EOF\n") {
		t.Error("missing EOF marker")
	}
	for _, want := range []string{
		"/Type /Catalog",
		fmt.Sprintf("/Count %d", plan.PageCount()),
		"/BaseFont /Helvetica-Bold",
		"/BaseFont /ZapfDingbats",
		`/Title (Biology \(Unit 1\))`,
		"/CreationDate (D:20240301120000Z)",
		`(1. Question \(1\) about caf\351) Tj`,
		"(4) Tj",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("output lacks %q", want)
		}
	}
}

func TestExportXref(t *testing.T) {
	out, _ := export(t, sampleLessons(30), DefaultConfig())

	m := regexp.MustCompile(`startxref\n(\d+)\n%%EOF\n$`).FindSubmatch(out)
	if m == nil {
		t.Fatal("no startxref")
	}
	pos, _ := strconv.Atoi(string(m[1]))
	if !bytes.HasPrefix(out[pos:], []byte("xref\n")) {
		t.Fatalf("startxref %d does not point at the xref table", pos)
	}

	entries := regexp.MustCompile(`(\d{10}) 00000 n `).FindAllSubmatch(out[pos:], -1)
	if len(entries) == 0 {
		t.Fatal("empty xref table")
	}
	for i, e := range entries {
		off, _ := strconv.Atoi(string(e[1]))
		want := fmt.Sprintf("%d 0 obj\n", i+1)
		if !bytes.HasPrefix(out[off:], []byte(want)) {
			t.Errorf("xref entry %d points at %q", i+1, out[off:off+10])
		}
	}
}

func TestExportCompressedStreams(t *testing.T) {
	out, plan := export(t, sampleLessons(30), DefaultConfig())
	if plan.PageCount() < 2 {
		t.Fatalf("want a multi-page plan, got %d pages", plan.PageCount())
	}

	re := regexp.MustCompile(`(?s)<< /Filter /FlateDecode /Length (\d+) >>\nstream\n`)
	locs := re.FindAllSubmatchIndex(out, -1)
	if len(locs) != plan.PageCount() {
		t.Fatalf("got %d content streams, want %d", len(locs), plan.PageCount())
	}
	for i, loc := range locs {
		n, _ := strconv.Atoi(string(out[loc[2]:loc[3]]))
		data, err := filters.FlateDecode(out[loc[1] : loc[1]+n])
		if err != nil {
			t.Fatalf("page %d: %v", i+1, err)
		}
		if !bytes.Contains(data, []byte(fmt.Sprintf("(%d) Tj", i+1))) {
			t.Errorf("page %d stream lacks its page number", i+1)
		}
	}
}

func TestStandardFontWidths(t *testing.T) {
	regular := metricsByResource[fontRegular]
	bold := metricsByResource[fontBold]

	if regular.base != "Helvetica" || bold.base != "Helvetica-Bold" {
		t.Fatalf("base fonts = %q, %q", regular.base, bold.base)
	}
	// H e l l o = 722 + 556 + 222 + 222 + 556
	if got := regular.stringWidth("Hello", 1000); got != 2278 {
		t.Errorf("Helvetica width of Hello = %v, want 2278", got)
	}
	// 722 + 556 + 278 + 278 + 611 at 10/1000
	if got := bold.stringWidth("Hello", 10); got < 24.449 || got > 24.451 {
		t.Errorf("Helvetica-Bold width of Hello at 10 = %v, want 24.45", got)
	}
	if got := regular.width('é'); got != defaultWidth {
		t.Errorf("width of é = %v, want default", got)
	}
}

func TestHorizontalScale(t *testing.T) {
	f := metricsByResource[fontRegular]
	natural := f.stringWidth("Hello", 10)

	tests := []struct {
		name   string
		text   string
		target float64
		want   float64
	}{
		{"exact", "Hello", natural, 100},
		{"wider", "Hello", natural * 1.1, 110},
		{"clamped low", "Hello", natural * 0.1, minScale},
		{"clamped high", "Hello", natural * 3, maxScale},
		{"single rune", "H", 50, 100},
		{"unmeasured", "Hello", 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := horizontalScale(f, tt.text, 10, tt.target)
			if got < tt.want-0.001 || got > tt.want+0.001 {
				t.Errorf("horizontalScale() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTextRunsAreScaled(t *testing.T) {
	fonts, err := textwrap.Default()
	if err != nil {
		t.Fatal(err)
	}
	c := newContent(fonts)
	data := string(c.paint(render.Canvas{Ops: []render.Op{
		render.Text{X: 10, Baseline: 20, Size: 12, Text: "Mitochondrion"},
	}}))
	if !strings.Contains(data, " Tz\n") {
		t.Fatalf("content has no Tz operator:\n%s", data)
	}
	if strings.Index(data, "Tz") > strings.Index(data, "Tj") {
		t.Error("Tz must precede the text it scales")
	}
}
