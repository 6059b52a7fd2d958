// Package ocr reads the text of scanned or photographed question sheets so
// they can be fed to the importer.
//
// Recognition wraps the Tesseract engine via gosseract and is only compiled
// with the "ocr" build tag, because it links against the Tesseract C
// library:
//
//	go build -tags ocr ./...
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Without the tag, [New] returns [ErrOCRNotEnabled]. The text helpers in
// this file are always available.
package ocr

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// ErrInvalidLanguage is returned for a language list Tesseract cannot load.
var ErrInvalidLanguage = errors.New("invalid OCR language")

// PageSegMode represents page segmentation modes for OCR.
// These control how Tesseract analyzes the page layout.
type PageSegMode int

// Page segmentation modes useful for question sheets.
const (
	PSM_AUTO          PageSegMode = 3  // Fully automatic (default)
	PSM_SINGLE_COLUMN PageSegMode = 4  // Single column of variable sizes
	PSM_SINGLE_BLOCK  PageSegMode = 6  // Single uniform block of text
	PSM_SPARSE_TEXT   PageSegMode = 11 // Find as much text as possible
)

// Config controls recognition.
type Config struct {
	// Language is one or more Tesseract language codes joined by "+",
	// e.g. "eng+fra".
	Language    string
	PageSegMode PageSegMode

	// DPI is passed to Tesseract for images without resolution metadata,
	// which is common for phone photos. Zero leaves Tesseract's guess.
	// Default: 300
	DPI int
}

// DefaultConfig returns English with automatic page segmentation at 300 DPI.
func DefaultConfig() Config {
	return Config{Language: "eng", PageSegMode: PSM_AUTO, DPI: 300}
}

var languageCode = regexp.MustCompile(`^[A-Za-z0-9_]+(/[A-Za-z0-9_]+)?$`)

// ParseLanguages splits a "+" separated language list such as
// "eng + fra" into Tesseract codes. Blank entries and repeats are dropped.
// Codes are letters, digits and underscores, optionally prefixed with a
// directory as in "script/Latin".
func ParseLanguages(lang string) ([]string, error) {
	var codes []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(lang, "+") {
		code := strings.TrimSpace(part)
		if code == "" || seen[code] {
			continue
		}
		if !languageCode.MatchString(code) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLanguage, code)
		}
		seen[code] = true
		codes = append(codes, code)
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: empty list %q", ErrInvalidLanguage, lang)
	}
	return codes, nil
}

// Recognizer turns image bytes into text. *Client implements it.
type Recognizer interface {
	RecognizeImage(imageData []byte) (string, error)
}

// RecognizeFile reads an image file and recognizes it with r.
func RecognizeFile(r Recognizer, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	text, err := r.RecognizeImage(data)
	if err != nil {
		return "", err
	}
	return CleanText(text), nil
}

var (
	// A word broken across lines with a hyphen.
	hyphenBreak = regexp.MustCompile(`(\p{L})-\n(\p{L})`)
	blankRuns   = regexp.MustCompile(`\n{3,}`)
)

// CleanText tidies raw OCR output: line endings are normalised, trailing
// spaces removed, hyphenated line breaks joined and runs of blank lines
// collapsed to one.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\f", "\n\n")

	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	s = strings.Join(lines, "\n")

	s = hyphenBreak.ReplaceAllString(s, "$1$2")
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
