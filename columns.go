package sstars

import (
	"fmt"
	"math"
	"strings"
)

// column describes one numeric table column. Widths and precisions are shared
// by every format; sep is the run of spaces preceding the column in ascii
// output.
type column struct {
	ascii string
	html  string
	wiki  string
	sep   string
	width int
	prec  int
	value func(Entry) float64
}

const idWidth = 4

var baseColumns = []column{
	{ascii: "a", html: `a (")`, wiki: "a", sep: "  ", width: 6, prec: 4, value: func(e Entry) float64 { return e.Record.A }},
	{ascii: "da", html: "&Delta;a", sep: " ", width: 6, prec: 4, value: func(e Entry) float64 { return e.Record.DA }},
	{ascii: "e", html: "e", sep: "  ", width: 6, prec: 4, value: func(e Entry) float64 { return e.Record.E }},
	{ascii: "de", html: "&Delta;e", sep: " ", width: 6, prec: 4, value: func(e Entry) float64 { return e.Record.DE }},
	{ascii: "i", html: "i (°)", sep: "  ", width: 6, prec: 2, value: func(e Entry) float64 { return e.Record.I }},
	{ascii: "di", html: "&Delta;i", sep: " ", width: 4, prec: 2, value: func(e Entry) float64 { return e.Record.DI }},
	{ascii: "Om", html: "&Omega; (°)", sep: "  ", width: 6, prec: 2, value: func(e Entry) float64 { return e.Record.Om }},
	{ascii: "dOm", html: "&Delta;&Omega;", sep: " ", width: 5, prec: 2, value: func(e Entry) float64 { return e.Record.DOm }},
	{ascii: "w", html: "&omega; (°)", sep: "  ", width: 6, prec: 2, value: func(e Entry) float64 { return e.Record.W }},
	{ascii: "dw", html: "&Delta;&omega;", sep: " ", width: 5, prec: 2, value: func(e Entry) float64 { return e.Record.DW }},
	{ascii: "Tp", html: "Tp (yr)", sep: "  ", width: 8, prec: 3, value: func(e Entry) float64 { return e.Record.Tp }},
	{ascii: "dTp", html: "&Delta;Tp", sep: " ", width: 7, prec: 3, value: func(e Entry) float64 { return e.Record.DTp }},
	{ascii: "P", html: "P (yr)", sep: "  ", width: 7, prec: 1, value: func(e Entry) float64 { return e.Record.P }},
	{ascii: "dP", html: "&Delta;P", sep: " ", width: 6, prec: 1, value: func(e Entry) float64 { return e.Record.DP }},
	{ascii: "Kmag", html: "Kmag", sep: "  ", width: 5, prec: 2, value: func(e Entry) float64 { return e.Record.Kmag }},
	{ascii: "q", html: "q (AU)", sep: "   ", width: 8, prec: 1, value: func(e Entry) float64 { return e.Derived.Q }},
	{ascii: "dq", html: "&Delta;q", sep: " ", width: 8, prec: 1, value: func(e Entry) float64 { return e.Derived.DQ }},
	{ascii: "v", html: "v (%c)", sep: " ", width: 6, prec: 2, value: func(e Entry) float64 { return e.Derived.V * 100 }},
	{ascii: "dv", html: "&Delta;v", sep: " ", width: 6, prec: 2, value: func(e Entry) float64 { return e.Derived.DV * 100 }},
}

var meanSpeedColumn = column{
	ascii: "v_avg", html: "&lt;v&gt; (%c)", sep: " ", width: 6, prec: 2,
	value: func(e Entry) float64 { return e.Derived.VAvg * 100 },
}

func columnsFor(s Schema) []column {
	cols := make([]column, len(baseColumns), len(baseColumns)+1)
	copy(cols, baseColumns)
	if s.HasMeanSpeed() {
		cols = append(cols, meanSpeedColumn)
	}
	return cols
}

// wikiLabel falls back to the html label; the two only differ for a.
func (c column) wikiLabel() string {
	if c.wiki != "" {
		return c.wiki
	}
	return c.html
}

func (c column) format(e Entry) string {
	return formatFloat(c.value(e), c.width, c.prec)
}

// formatFloat renders v like printf's %*.*f. Non-finite values are spelled
// nan, -nan, inf and -inf, right-aligned in width.
func formatFloat(v float64, width, prec int) string {
	switch {
	case math.IsNaN(v):
		if math.Signbit(v) {
			return fmt.Sprintf("%*s", width, "-nan")
		}
		return fmt.Sprintf("%*s", width, "nan")
	case math.IsInf(v, 1):
		return fmt.Sprintf("%*s", width, "inf")
	case math.IsInf(v, -1):
		return fmt.Sprintf("%*s", width, "-inf")
	default:
		return fmt.Sprintf("%*.*f", width, prec, v)
	}
}

// padID left-aligns an identifier to idWidth bytes.
func padID(id string) string {
	if n := idWidth - len(id); n > 0 {
		return id + strings.Repeat(" ", n)
	}
	return id
}
