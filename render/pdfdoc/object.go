package pdfdoc

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Object is a PDF object that knows its serialized form.
type Object interface {
	Type() ObjectType
	String() string
}

// ObjectType represents the type of PDF object
type ObjectType int

const (
	ObjInt ObjectType = iota
	ObjReal
	ObjString
	ObjName
	ObjArray
	ObjDict
	ObjStream
	ObjRef
)

// String returns the string representation of the object type
func (t ObjectType) String() string {
	switch t {
	case ObjInt:
		return "Int"
	case ObjReal:
		return "Real"
	case ObjString:
		return "String"
	case ObjName:
		return "Name"
	case ObjArray:
		return "Array"
	case ObjDict:
		return "Dict"
	case ObjStream:
		return "Stream"
	case ObjRef:
		return "Ref"
	default:
		return "Unknown"
	}
}

// Int represents a PDF integer
type Int int64

func (i Int) Type() ObjectType { return ObjInt }
func (i Int) String() string   { return strconv.FormatInt(int64(i), 10) }

// Real represents a PDF real number. It is written with at most two
// decimals, which is finer than any device resolution at 1/72 inch.
type Real float64

func (r Real) Type() ObjectType { return ObjReal }
func (r Real) String() string   { return formatReal(float64(r)) }

func formatReal(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

// String is a literal string holding WinAnsi bytes.
type String []byte

func (s String) Type() ObjectType { return ObjString }
func (s String) String() string   { return "(" + escape(s) + ")" }

// TextString encodes s for use as a literal string.
func TextString(s string) String {
	return String(EncodeWinAnsi(s))
}

// Name represents a PDF name object
type Name string

func (n Name) Type() ObjectType { return ObjName }
func (n Name) String() string   { return "/" + string(n) }

// Array represents a PDF array
type Array []Object

func (a Array) Type() ObjectType { return ObjArray }
func (a Array) String() string {
	parts := make([]string, 0, len(a))
	for _, obj := range a {
		parts = append(parts, obj.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Rect returns the array [x0 y0 x1 y1].
func Rect(x0, y0, x1, y1 float64) Array {
	return Array{Real(x0), Real(y0), Real(x1), Real(y1)}
}

// Dict represents a PDF dictionary. Keys are written in sorted order so the
// output is reproducible.
type Dict map[string]Object

func (d Dict) Type() ObjectType { return ObjDict }
func (d Dict) String() string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("<<")
	for _, k := range keys {
		fmt.Fprintf(&sb, " /%s %s", k, d[k].String())
	}
	sb.WriteString(" >>")
	return sb.String()
}

// Stream represents a PDF stream object. /Length is filled in when written.
type Stream struct {
	Dict Dict
	Data []byte
}

func (s *Stream) Type() ObjectType { return ObjStream }
func (s *Stream) String() string {
	d := Dict{}
	for k, v := range s.Dict {
		d[k] = v
	}
	d["Length"] = Int(len(s.Data))

	var b bytes.Buffer
	b.WriteString(d.String())
	b.WriteString("\nstream\n")
	b.Write(s.Data)
	b.WriteString("\nendstream")
	return b.String()
}

// Ref represents an indirect object reference
type Ref int

func (r Ref) Type() ObjectType { return ObjRef }
func (r Ref) String() string   { return fmt.Sprintf("%d 0 R", int(r)) }
