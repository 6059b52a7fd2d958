package ocr

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeRecognizer struct {
	got  []byte
	text string
	err  error
}

func (f *fakeRecognizer) RecognizeImage(data []byte) (string, error) {
	f.got = data
	return f.text, f.err
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims", "  hello  \n", "hello"},
		{"crlf", "a\r\nb\rc", "a\nb\nc"},
		{"trailing spaces", "a  \nb\t\n", "a\nb"},
		{"hyphen break", "photo-\nsynthesis", "photosynthesis"},
		{"keeps dash list", "A) -\n5", "A) -\n5"},
		{"blank runs", "a\n\n\n\nb", "a\n\nb"},
		{"form feed", "page1\fpage2", "page1\n\npage2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRecognizeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.png")
	if err := os.WriteFile(path, []byte("img"), 0o644); err != nil {
		t.Fatal(err)
	}

	f := &fakeRecognizer{text: "1. What is  \r\nDNA?"}
	got, err := RecognizeFile(f, path)
	if err != nil {
		t.Fatalf("RecognizeFile() error = %v", err)
	}
	if string(f.got) != "img" {
		t.Errorf("recognizer got %q", f.got)
	}
	if got != "1. What is\nDNA?" {
		t.Errorf("RecognizeFile() = %q", got)
	}

	f.err = ErrOCRNotEnabled
	if _, err := RecognizeFile(f, path); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("err = %v, want ErrOCRNotEnabled", err)
	}

	if _, err := RecognizeFile(f, filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Language != "eng" || c.PageSegMode != PSM_AUTO || c.DPI != 300 {
		t.Errorf("DefaultConfig() = %+v", c)
	}
}

func TestParseLanguages(t *testing.T) {
	tests := []struct {
		in      string
		want    []string
		wantErr bool
	}{
		{in: "eng", want: []string{"eng"}},
		{in: "eng+fra", want: []string{"eng", "fra"}},
		{in: " eng + fra +eng+", want: []string{"eng", "fra"}},
		{in: "chi_sim+script/Latin", want: []string{"chi_sim", "script/Latin"}},
		{in: "", wantErr: true},
		{in: " + ", wantErr: true},
		{in: "eng fra", wantErr: true},
		{in: "../eng", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLanguages(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidLanguage) {
					t.Errorf("ParseLanguages(%q) error = %v, want ErrInvalidLanguage", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLanguages(%q) error = %v", tt.in, err)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("ParseLanguages(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
