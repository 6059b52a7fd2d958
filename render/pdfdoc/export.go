package pdfdoc

import (
	"fmt"
	"io"
	"time"

	"github.com/tsawler/mcqsheet/geometry"
	"github.com/tsawler/mcqsheet/internal/filters"
	"github.com/tsawler/mcqsheet/internal/textwrap"
	"github.com/tsawler/mcqsheet/layout"
	"github.com/tsawler/mcqsheet/render"
)

// Producer is written to the document information dictionary.
const Producer = "mcqsheet"

// Config controls PDF export.
type Config struct {
	// Title defaults to the project name.
	Title   string
	Author  string
	Subject string

	// Compress enables FlateDecode content streams.
	Compress         bool
	CompressionLevel int

	// CreationDate defaults to the time of export.
	CreationDate time.Time
}

// DefaultConfig returns compressed output with no extra metadata.
func DefaultConfig() Config {
	return Config{
		Compress:         true,
		CompressionLevel: filters.DefaultCompression,
	}
}

// Exporter writes plans as A4 PDF documents.
type Exporter struct {
	config Config
}

// NewExporter creates an exporter with default configuration
func NewExporter() *Exporter {
	return &Exporter{config: DefaultConfig()}
}

// NewExporterWithConfig creates an exporter with custom configuration
func NewExporterWithConfig(config Config) *Exporter {
	return &Exporter{config: config}
}

// Export writes the plan with default configuration.
func Export(w io.Writer, plan *layout.Plan, ctx *render.Context) error {
	return NewExporter().Export(w, plan, ctx)
}

// Export paints every page of the plan and writes one PDF page per plan
// page.
func (e *Exporter) Export(w io.Writer, plan *layout.Plan, ctx *render.Context) error {
	pages, err := render.Paint(plan, ctx)
	if err != nil {
		return err
	}
	cfg := e.config
	if cfg.Title == "" {
		cfg.Title = ctx.Settings.ProjectName
	}
	fonts, err := textwrap.Default()
	if err != nil {
		return fmt.Errorf("loading fonts: %w", err)
	}
	return writePages(w, pages, fonts, cfg)
}

func writePages(w io.Writer, pages []render.Canvas, fonts *textwrap.Fonts, cfg Config) error {
	doc := newWriter()

	fontRes := Dict{}
	for _, f := range baseFonts {
		font := Dict{
			"Type":     Name("Font"),
			"Subtype":  Name("Type1"),
			"BaseFont": Name(f.base),
		}
		if f.winAnsi {
			font["Encoding"] = Name("WinAnsiEncoding")
		}
		fontRes[f.resource] = doc.add(font)
	}
	resources := Dict{"Font": fontRes}

	width, height := geometry.A4SizePt()
	kids := make(Array, 0, len(pages))
	for i, canvas := range pages {
		stream, err := contentStream(canvas, fonts, cfg)
		if err != nil {
			return fmt.Errorf("page %d: %w", i+1, err)
		}
		contents := doc.add(stream)
		kids = append(kids, doc.add(Dict{
			"Type":      Name("Page"),
			"Parent":    Ref(2),
			"MediaBox":  Rect(0, 0, width, height),
			"Contents":  contents,
			"Resources": resources,
		}))
	}

	doc.set(1, Dict{"Type": Name("Catalog"), "Pages": Ref(2)})
	doc.set(2, Dict{"Type": Name("Pages"), "Kids": kids, "Count": Int(len(kids))})

	return doc.writeTo(w, doc.add(infoDict(cfg)))
}

func contentStream(canvas render.Canvas, fonts *textwrap.Fonts, cfg Config) (*Stream, error) {
	data := newContent(fonts).paint(canvas)
	if !cfg.Compress {
		return &Stream{Dict: Dict{}, Data: data}, nil
	}
	packed, err := filters.FlateEncode(data, cfg.CompressionLevel)
	if err != nil {
		return nil, err
	}
	return &Stream{Dict: Dict{"Filter": Name(filters.FilterName)}, Data: packed}, nil
}

func infoDict(cfg Config) Dict {
	d := Dict{"Producer": TextString(Producer)}
	if cfg.Title != "" {
		d["Title"] = TextString(cfg.Title)
	}
	if cfg.Author != "" {
		d["Author"] = TextString(cfg.Author)
	}
	if cfg.Subject != "" {
		d["Subject"] = TextString(cfg.Subject)
	}
	created := cfg.CreationDate
	if created.IsZero() {
		created = time.Now()
	}
	d["CreationDate"] = TextString(created.UTC().Format("D:20060102150405Z"))
	return d
}
