package pdfdoc

import (
	"bufio"
	"fmt"
	"io"
)

// Version is the PDF version written in the file header.
const Version = "1.4"

// writer assembles numbered objects and serializes them with a cross
// reference table. Object 1 is always the catalog and object 2 the page
// tree.
type writer struct {
	objects []Object
}

func newWriter() *writer {
	// Reserve the catalog and page tree slots.
	return &writer{objects: make([]Object, 2)}
}

// add appends an object and returns its reference.
func (w *writer) add(obj Object) Ref {
	w.objects = append(w.objects, obj)
	return Ref(len(w.objects))
}

// set replaces the object behind a previously returned reference.
func (w *writer) set(r Ref, obj Object) {
	w.objects[int(r)-1] = obj
}

// countingWriter tracks byte offsets for the xref table.
type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) printf(format string, args ...any) {
	if c.err != nil {
		return
	}
	n, err := fmt.Fprintf(c.w, format, args...)
	c.n += int64(n)
	c.err = err
}

func (w *writer) writeTo(out io.Writer, info Ref) error {
	cw := &countingWriter{w: bufio.NewWriter(out)}

	cw.printf("%%PDF-%s\n", Version)
	cw.printf("%%\xE2\xE3\xCF\xD3\n")

	offsets := make([]int64, len(w.objects))
	for i, obj := range w.objects {
		if obj == nil {
			return fmt.Errorf("object %d was reserved but never set", i+1)
		}
		offsets[i] = cw.n
		cw.printf("%d 0 obj\n%s\nendobj\n", i+1, obj.String())
	}

	xrefPos := cw.n
	cw.printf("xref\n")
	cw.printf("0 %d\n", len(w.objects)+1)
	cw.printf("0000000000 65535 f \n")
	for _, off := range offsets {
		cw.printf("%010d 00000 n \n", off)
	}

	cw.printf("trailer\n")
	cw.printf("%s\n", Dict{
		"Size": Int(len(w.objects) + 1),
		"Root": Ref(1),
		"Info": info,
	}.String())
	cw.printf("startxref\n%d\n%%%%EOF\n", xrefPos)

	if cw.err != nil {
		return fmt.Errorf("writing PDF: %w", cw.err)
	}
	if err := cw.w.Flush(); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}
