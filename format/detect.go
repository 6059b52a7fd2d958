// Package format detects the kinds of file mcqsheet reads and writes.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Format represents a supported file format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// JSON indicates a JSON project document.
	JSON
	// YAML indicates a YAML project document.
	YAML
	// PDF indicates an exported PDF sheet.
	PDF
	// HTML indicates an HTML preview.
	HTML
	// PNG indicates a PNG image.
	PNG
	// JPEG indicates a JPEG image.
	JPEG
	// TIFF indicates a TIFF image, typical of scanners.
	TIFF
	// Text indicates plain UTF-8 text such as pasted questions.
	Text
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case JSON:
		return "JSON"
	case YAML:
		return "YAML"
	case PDF:
		return "PDF"
	case HTML:
		return "HTML"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case TIFF:
		return "TIFF"
	case Text:
		return "Text"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case JSON:
		return ".json"
	case YAML:
		return ".yaml"
	case PDF:
		return ".pdf"
	case HTML:
		return ".html"
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	case TIFF:
		return ".tiff"
	case Text:
		return ".txt"
	default:
		return ""
	}
}

// IsImage reports whether the format is a raster image that OCR can read.
func (f Format) IsImage() bool {
	return f == PNG || f == JPEG || f == TIFF
}

// IsProject reports whether the format can hold a project document.
func (f Format) IsProject() bool {
	return f == JSON || f == YAML
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	case ".pdf":
		return PDF
	case ".html", ".htm":
		return HTML
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	case ".tif", ".tiff":
		return TIFF
	case ".txt", ".text", ".md":
		return Text
	default:
		return Unknown
	}
}

var (
	magicPDF    = []byte("%PDF")
	magicPNG    = []byte("\x89PNG\r\n\x1a\n")
	magicJPEG   = []byte{0xFF, 0xD8, 0xFF}
	magicTIFFLE = []byte("II*\x00")
	magicTIFFBE = []byte("MM\x00*")
)

// DetectFromMagic checks leading bytes to determine format.
// Binary formats are recognised by signature; textual ones by their first
// significant characters. Returns Unknown if the data is too short or not
// recognisable.
func DetectFromMagic(data []byte) Format {
	if len(data) < 3 {
		return Unknown
	}

	switch {
	case bytes.HasPrefix(data, magicPDF):
		return PDF
	case bytes.HasPrefix(data, magicPNG):
		return PNG
	case bytes.HasPrefix(data, magicJPEG):
		return JPEG
	case bytes.HasPrefix(data, magicTIFFLE), bytes.HasPrefix(data, magicTIFFBE):
		return TIFF
	}

	if detectHTMLMagic(data) {
		return HTML
	}

	trimmed := bytes.TrimLeft(bytes.TrimPrefix(data, []byte("\xEF\xBB\xBF")), " \t\r\n")
	if len(trimmed) == 0 {
		return Unknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return JSON
	}
	if bytes.HasPrefix(trimmed, []byte("---")) || bytes.HasPrefix(trimmed, []byte("%YAML")) ||
		bytes.HasPrefix(trimmed, []byte("version:")) {
		return YAML
	}

	if isText(data) {
		return Text
	}
	return Unknown
}

// isText reports whether data looks like UTF-8 text. A multi-byte sequence
// cut off at the end of the sample is tolerated.
func isText(data []byte) bool {
	if bytes.IndexByte(data, 0) >= 0 {
		return false
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return len(data)-i < utf8.UTFMax && !utf8.FullRune(data[i:])
		}
		i += size
	}
	return true
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	// Trim leading whitespace
	start := 0
	for start < len(data) && (data[start] == ' ' || data[start] == '\t' || data[start] == '\n' || data[start] == '\r') {
		start++
	}
	if start >= len(data) {
		return false
	}
	data = data[start:]

	upper := strings.ToUpper(string(data[:min(len(data), 512)]))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML") {
		return true
	}

	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// DetectFromReader inspects the first 512 bytes of r to determine format.
func DetectFromReader(r io.ReaderAt) (Format, error) {
	magic := make([]byte, 512)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}

// DetectFile combines content sniffing with the filename extension. The
// content wins when it is recognised; plain text defers to a more specific
// extension, so a YAML file without a leading marker is still YAML.
func DetectFile(filename string, r io.ReaderAt) (Format, error) {
	byExt := Detect(filename)
	byContent, err := DetectFromReader(r)
	if err != nil {
		return Unknown, err
	}
	switch {
	case byContent == Unknown:
		return byExt, nil
	case byContent == Text && byExt != Unknown:
		return byExt, nil
	default:
		return byContent, nil
	}
}
