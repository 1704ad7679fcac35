package sstars

import (
	"fmt"
	"io"
	"strings"
)

// htmlRenderer writes a bare <table> with one <tr> per row. Header labels use
// entity escapes for the Greek letters; identifiers are written as given.
type htmlRenderer struct {
	cols []column
}

func (r htmlRenderer) Header(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("<table>\n\t<tr>\n\t\t<th>id</th>")
	for i, c := range r.cols {
		// The first label shares a line with id.
		if i > 0 {
			sb.WriteString("\t\t")
		}
		fmt.Fprintf(&sb, "<th>%s</th>\n", c.html)
	}
	sb.WriteString("\t</tr>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func (r htmlRenderer) Row(w io.Writer, e Entry) error {
	var sb strings.Builder
	sb.WriteString("\t<tr>\n")
	fmt.Fprintf(&sb, "\t\t<td>%s</td>\n", e.Record.ID)
	for _, c := range r.cols {
		fmt.Fprintf(&sb, "\t\t<td>%s</td>\n", c.format(e))
	}
	sb.WriteString("\t</tr>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

func (htmlRenderer) Footer(w io.Writer) error {
	_, err := io.WriteString(w, "</table>\n")
	return err
}
