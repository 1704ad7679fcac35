package sstars

import (
	"fmt"
	"io"
	"strings"
)

// asciiRenderer writes a fixed-width plain text table with no footer.
type asciiRenderer struct {
	cols []column
}

func (r asciiRenderer) Header(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString(padID("id"))
	for _, c := range r.cols {
		sb.WriteString(c.sep)
		fmt.Fprintf(&sb, "%*s", c.width, c.ascii)
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

func (r asciiRenderer) Row(w io.Writer, e Entry) error {
	var sb strings.Builder
	sb.WriteString(padID(e.Record.ID))
	for _, c := range r.cols {
		sb.WriteString(c.sep)
		sb.WriteString(c.format(e))
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

func (asciiRenderer) Footer(io.Writer) error { return nil }
