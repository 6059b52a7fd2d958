package textwrap

import (
	"strings"
	"testing"
)

// kerning makes a measured line differ slightly from the sum of its words
const tolerance = 1.0

func testFonts(t *testing.T) *Fonts {
	t.Helper()
	f, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	return f
}

func TestDefaultParsesOnce(t *testing.T) {
	a, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	b, _ := Default()
	if a != b {
		t.Error("Default() should return the same family")
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("nope"), nil, nil); err == nil {
		t.Error("Parse() of garbage should fail")
	}
}

func TestMeasure(t *testing.T) {
	fonts := testFonts(t)
	small := fonts.Face(Regular, 10)
	large := fonts.Face(Regular, 20)

	if Measure(small, "") != 0 {
		t.Error("empty string should have zero width")
	}
	a, b := Measure(small, "Hello"), Measure(large, "Hello")
	if a <= 0 || b <= a {
		t.Errorf("Measure() = %v at 10, %v at 20", a, b)
	}
	if Measure(small, "Hello world") <= a {
		t.Error("longer text should be wider")
	}
	if Measure(fonts.Face(Bold, 10), "Hello") < a {
		t.Error("bold text should not be narrower")
	}
	if LineHeight(small) <= 0 {
		t.Error("LineHeight() should be positive")
	}
}

func TestWrap(t *testing.T) {
	fonts := testFonts(t)
	face := fonts.Face(Regular, 10)

	text := "The quick brown fox jumps over the lazy dog and keeps running far away"
	width := Measure(face, "The quick brown fox")
	lines := Wrap(face, text, width)

	if len(lines) < 3 {
		t.Fatalf("Wrap() = %q, want several lines", lines)
	}
	for _, l := range lines {
		if Measure(face, l) > width+tolerance {
			t.Errorf("line %q is wider than %v", l, width)
		}
	}
	if strings.Join(lines, " ") != text {
		t.Errorf("wrapped lines lost words: %q", lines)
	}
}

func TestWrapEdgeCases(t *testing.T) {
	fonts := testFonts(t)
	face := fonts.Face(Regular, 10)

	if got := Wrap(face, "   ", 100); got != nil {
		t.Errorf("Wrap(blank) = %q, want nil", got)
	}

	got := Wrap(face, "first\n\nthird", 1000)
	if len(got) != 3 || got[0] != "first" || got[1] != "" || got[2] != "third" {
		t.Errorf("Wrap() with newlines = %q", got)
	}

	long := strings.Repeat("x", 200)
	pieces := Wrap(face, long, 50)
	if len(pieces) < 2 || strings.Join(pieces, "") != long {
		t.Errorf("long word split into %d pieces", len(pieces))
	}
	for _, p := range pieces {
		if p == "" {
			t.Error("empty piece from a long word")
		}
	}

	if got := Wrap(face, "abc", 0.1); strings.Join(got, "") != "abc" {
		t.Errorf("tiny width must still make progress: %q", got)
	}
}

func TestTruncate(t *testing.T) {
	fonts := testFonts(t)
	face := fonts.Face(Bold, 13)

	short := "Lesson 1"
	if got := Truncate(face, short, 1000); got != short {
		t.Errorf("Truncate() of fitting text = %q", got)
	}

	title := strings.Repeat("Photosynthesis and respiration ", 10)
	width := 200.0
	got := Truncate(face, title, width)
	if !strings.HasSuffix(got, Ellipsis) {
		t.Errorf("Truncate() = %q, want ellipsis", got)
	}
	if Measure(face, got) > width+tolerance {
		t.Errorf("truncated text is %v wide, limit %v", Measure(face, got), width)
	}

	if got := Truncate(face, "héllo wörld ünïcode", Measure(face, "héllo")); !strings.HasSuffix(got, Ellipsis) {
		t.Errorf("Truncate() of unicode = %q", got)
	}
}

func TestStyleString(t *testing.T) {
	if Regular.String() != "regular" || Bold.String() != "bold" || Italic.String() != "italic" {
		t.Error("Style.String() mismatch")
	}
}
