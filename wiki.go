package sstars

import (
	"fmt"
	"io"
	"strings"
)

const wikiTableOpen = `{|class="wikitable sortable"  style="text-align:right"`

// wikiRenderer writes a MediaWiki sortable table.
type wikiRenderer struct {
	cols []column
}

func (r wikiRenderer) Header(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString(wikiTableOpen)
	sb.WriteString("\n! id\n")
	for _, c := range r.cols {
		fmt.Fprintf(&sb, "! %s\n", c.wikiLabel())
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (r wikiRenderer) Row(w io.Writer, e Entry) error {
	var sb strings.Builder
	sb.WriteString("|-\n")
	fmt.Fprintf(&sb, "| %s\n", e.Record.ID)
	for _, c := range r.cols {
		fmt.Fprintf(&sb, "| %s\n", c.format(e))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (wikiRenderer) Footer(w io.Writer) error {
	_, err := io.WriteString(w, "|}\n")
	return err
}
