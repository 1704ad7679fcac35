package sstars

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnsupportedSchema = errors.New("unsupported schema version")
	ErrFieldCount        = errors.New("wrong field count")
	ErrMalformedField    = errors.New("malformed field")
)

// Format represents an output table format.
type Format string

const (
	ASCII Format = "ascii"
	HTML  Format = "html"
	Wiki  Format = "wiki"
)

var formats = []Format{ASCII, HTML, Wiki}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string as given on the command line.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Entry is one successfully transformed input row: the measurements as read
// plus the quantities derived from them.
type Entry struct {
	Record  Record
	Derived Derived
}

// Renderer emits one table. Header is written once before any row and Footer
// once after the last row, even when no rows were written.
type Renderer interface {
	Header(w io.Writer) error
	Row(w io.Writer, e Entry) error
	Footer(w io.Writer) error
}

// NewRenderer returns the renderer for format f laid out for schema s.
func NewRenderer(f Format, s Schema) (Renderer, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSchema, int(s))
	}
	switch f {
	case ASCII:
		return asciiRenderer{cols: columnsFor(s)}, nil
	case HTML:
		return htmlRenderer{cols: columnsFor(s)}, nil
	case Wiki:
		return wikiRenderer{cols: columnsFor(s)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Write renders a complete table holding entries to w.
func Write(w io.Writer, f Format, s Schema, entries ...Entry) error {
	r, err := NewRenderer(f, s)
	if err != nil {
		return err
	}
	if err := r.Header(w); err != nil {
		return err
	}
	for _, e := range entries {
		if err := r.Row(w, e); err != nil {
			return err
		}
	}
	return r.Footer(w)
}

// Marshal renders a complete table and returns the bytes.
func Marshal(f Format, s Schema, entries ...Entry) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, s, entries...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
