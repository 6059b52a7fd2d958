package format

import (
	"bytes"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{JSON, "JSON"},
		{YAML, "YAML"},
		{PDF, "PDF"},
		{HTML, "HTML"},
		{PNG, "PNG"},
		{JPEG, "JPEG"},
		{TIFF, "TIFF"},
		{Text, "Text"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{JSON, ".json"},
		{YAML, ".yaml"},
		{PDF, ".pdf"},
		{HTML, ".html"},
		{PNG, ".png"},
		{JPEG, ".jpg"},
		{TIFF, ".tiff"},
		{Text, ".txt"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Kinds(t *testing.T) {
	for _, f := range []Format{PNG, JPEG, TIFF} {
		if !f.IsImage() {
			t.Errorf("%v.IsImage() = false", f)
		}
	}
	for _, f := range []Format{JSON, YAML, PDF, HTML, Text, Unknown} {
		if f.IsImage() {
			t.Errorf("%v.IsImage() = true", f)
		}
	}
	if !JSON.IsProject() || !YAML.IsProject() || PDF.IsProject() {
		t.Error("IsProject() mismatch")
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"project.json", JSON},
		{"project.JSON", JSON},
		{"project.yaml", YAML},
		{"project.yml", YAML},
		{"sheet.pdf", PDF},
		{"sheet.Pdf", PDF},
		{"preview.html", HTML},
		{"preview.htm", HTML},
		{"page.png", PNG},
		{"scan.jpg", JPEG},
		{"scan.JPEG", JPEG},
		{"scan.tif", TIFF},
		{"scan.tiff", TIFF},
		{"pasted.txt", Text},
		{"notes.md", Text},
		{"archive.zip", Unknown},
		{"document", Unknown},
		{"", Unknown},
		{"/path/to/project.json", JSON},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"PDF", []byte("%PDF-1.4\n"), PDF},
		{"PNG", []byte("\x89PNG\r\n\x1a\n\x00\x00"), PNG},
		{"JPEG", []byte{0xFF, 0xD8, 0xFF, 0xE0}, JPEG},
		{"TIFF little endian", []byte("II*\x00\x08\x00"), TIFF},
		{"TIFF big endian", []byte("MM\x00*\x00\x08"), TIFF},
		{"HTML doctype", []byte("<!DOCTYPE html><html>"), HTML},
		{"HTML lowercase", []byte("  <html><body>"), HTML},
		{"XHTML", []byte(`<?xml version="1.0"?><html>`), HTML},
		{"JSON object", []byte(`  {"version": 1}`), JSON},
		{"JSON with BOM", []byte("\xEF\xBB\xBF{\"version\": 1}"), JSON},
		{"JSON array", []byte(`[1, 2]`), JSON},
		{"YAML marker", []byte("---\nversion: 1\n"), YAML},
		{"YAML version key", []byte("version: 1\nprojectName: x\n"), YAML},
		{"text", []byte("1. What is 2+2?\nA) 3\nB) 4\n"), Text},
		{"unicode text", []byte("Qu'est-ce que c'est ? Réponse"), Text},
		{"binary", []byte{0x00, 0x01, 0x02, 0x03}, Unknown},
		{"short", []byte("%P"), Unknown},
		{"whitespace", []byte("     "), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromReader(t *testing.T) {
	got, err := DetectFromReader(bytes.NewReader([]byte("%PDF-1.7")))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if got != PDF {
		t.Errorf("DetectFromReader() = %v, want PDF", got)
	}
}

func TestDetectFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     string
		want     Format
	}{
		{"content wins", "mislabelled.txt", `{"version":1}`, JSON},
		{"extension refines text", "project.yaml", "projectName: x\nversion: 1\n", YAML},
		{"plain text", "questions.txt", "What is 2+2?", Text},
		{"unknown content", "page.png", "\x00\x00", PNG},
		{"text without extension", "pasted", "What is 2+2?", Text},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFile(tt.filename, bytes.NewReader([]byte(tt.data)))
			if err != nil {
				t.Fatalf("DetectFile() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFile() = %v, want %v", got, tt.want)
			}
		})
	}
}
