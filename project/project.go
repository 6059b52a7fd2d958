package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/mcqsheet/format"
	"github.com/tsawler/mcqsheet/model"
)

// SchemaVersion is the only envelope version this package reads and writes.
const SchemaVersion = 1

// StorageKey is the name under which the working project is persisted.
const StorageKey = "mcq-builder-v1"

var (
	// ErrVersionMismatch is returned for documents of another schema version.
	ErrVersionMismatch = errors.New("incompatible file version")

	// ErrInvalidDocument is returned for documents that cannot be decoded or
	// whose content breaks an invariant.
	ErrInvalidDocument = errors.New("invalid project document")
)

// Document is the versioned project envelope.
type Document struct {
	Version     int            `json:"version" yaml:"version"`
	ProjectName string         `json:"projectName" yaml:"projectName"`
	Settings    model.Settings `json:"settings" yaml:"settings"`
	Lessons     []model.Lesson `json:"lessons" yaml:"lessons"`
}

// New wraps settings and lessons in an envelope of the current version. The
// project name is taken from the settings.
func New(settings model.Settings, lessons []model.Lesson) *Document {
	if lessons == nil {
		lessons = []model.Lesson{}
	}
	return &Document{
		Version:     SchemaVersion,
		ProjectName: settings.ProjectName,
		Settings:    settings,
		Lessons:     lessons,
	}
}

// Decode reads a JSON document from r and validates it.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: parsing JSON: %v", ErrInvalidDocument, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	doc.fill()
	return &doc, nil
}

// DecodeYAML reads a YAML document from r and validates it.
func DecodeYAML(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: parsing YAML: %v", ErrInvalidDocument, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	doc.fill()
	return &doc, nil
}

// Parse decodes data as JSON or YAML, chosen by sniffing the content.
func Parse(data []byte) (*Document, error) {
	if format.DetectFromMagic(data) == format.JSON {
		return Decode(bytes.NewReader(data))
	}
	return DecodeYAML(bytes.NewReader(data))
}

// Load reads a project file, choosing JSON or YAML by content and extension.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open project: %w", err)
	}
	defer f.Close()

	kind, err := format.DetectFile(path, f)
	if err != nil {
		return nil, fmt.Errorf("failed to detect project format: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind project: %w", err)
	}

	switch kind {
	case format.JSON:
		return Decode(f)
	case format.YAML:
		return DecodeYAML(f)
	default:
		return nil, fmt.Errorf("%w: unsupported format %s", ErrInvalidDocument, kind)
	}
}

// Encode writes doc to w as indented JSON.
func Encode(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	return nil
}

// EncodeYAML writes doc to w as YAML.
func EncodeYAML(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	return nil
}

// Save writes doc to path, as YAML for .yaml/.yml paths and JSON otherwise.
func Save(path string, doc *Document) error {
	var buf bytes.Buffer
	var err error
	if format.Detect(path) == format.YAML {
		err = EncodeYAML(&buf, doc)
	} else {
		err = Encode(&buf, doc)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write project: %w", err)
	}
	return nil
}

var whitespace = regexp.MustCompile(`\s+`)

// FileName returns the export file name for a project: whitespace runs
// replaced by underscores, with a .json extension.
func FileName(projectName string) string {
	return whitespace.ReplaceAllString(projectName, "_") + format.JSON.Extension()
}

// Validate checks the envelope version and the document invariants.
func (d *Document) Validate() error {
	if d.Version != SchemaVersion {
		return fmt.Errorf("%w: got version %d, want %d", ErrVersionMismatch, d.Version, SchemaVersion)
	}
	var errs []error
	if err := d.Settings.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("settings: %w", err))
	}

	lessonIDs := make(map[string]bool)
	questionIDs := make(map[string]bool)
	for li, l := range d.Lessons {
		where := fmt.Sprintf("lesson %d", li+1)
		switch {
		case strings.TrimSpace(l.ID) == "":
			errs = append(errs, fmt.Errorf("%s: missing id", where))
		case lessonIDs[l.ID]:
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", where, l.ID))
		}
		lessonIDs[l.ID] = true

		for qi, q := range l.Questions {
			qwhere := fmt.Sprintf("%s question %d", where, qi+1)
			switch {
			case strings.TrimSpace(q.ID) == "":
				errs = append(errs, fmt.Errorf("%s: missing id", qwhere))
			case questionIDs[q.ID]:
				errs = append(errs, fmt.Errorf("%s: duplicate id %q", qwhere, q.ID))
			}
			questionIDs[q.ID] = true
			if err := q.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", qwhere, err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, errors.Join(errs...))
	}
	return nil
}

// fill gives every question all five choice slots and non-nil slices, so
// documents written by older tools render like fresh ones.
func (d *Document) fill() {
	if d.Lessons == nil {
		d.Lessons = []model.Lesson{}
	}
	for li := range d.Lessons {
		for qi := range d.Lessons[li].Questions {
			q := &d.Lessons[li].Questions[qi]
			if q.Choices == nil {
				q.Choices = make(map[model.ChoiceLabel]string, 5)
			}
			for _, l := range model.Labels() {
				if _, ok := q.Choices[l]; !ok {
					q.Choices[l] = ""
				}
			}
			if q.CorrectAnswers == nil {
				q.CorrectAnswers = []model.ChoiceLabel{}
			}
		}
	}
}
