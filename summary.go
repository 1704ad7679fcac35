package sstars

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// SummaryFormat selects how run statistics are reported.
type SummaryFormat string

const (
	SummaryTable SummaryFormat = "table"
	SummaryYAML  SummaryFormat = "yaml"
	SummaryJSON  SummaryFormat = "json"
)

var summaryFormats = []SummaryFormat{SummaryTable, SummaryYAML, SummaryJSON}

// ParseSummaryFormat parses a summary format name.
func ParseSummaryFormat(s string) (SummaryFormat, error) {
	for _, f := range summaryFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: summary %q", ErrUnsupportedFormat, s)
}

// WriteSummary reports st to w in format f.
func WriteSummary(w io.Writer, f SummaryFormat, st Stats) error {
	switch f {
	case SummaryTable:
		return writeSummaryTable(w, st)
	case SummaryYAML:
		return writeSummaryYAML(w, st)
	case SummaryJSON:
		return writeSummaryJSON(w, st)
	default:
		return fmt.Errorf("%w: summary %q", ErrUnsupportedFormat, f)
	}
}

func writeSummaryTable(w io.Writer, st Stats) error {
	tw := table.NewWriter()
	style := table.StyleRounded
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)
	tw.AppendHeader(table.Row{"Lines", "Comments", "Rows", "Failed"})
	tw.AppendRow(table.Row{
		strconv.Itoa(st.Lines),
		strconv.Itoa(st.Comments),
		strconv.Itoa(st.Rows),
		strconv.Itoa(st.Failed),
	})
	configs := make([]table.ColumnConfig, 4)
	for i := range configs {
		configs[i] = table.ColumnConfig{Number: i + 1, Align: text.AlignRight, AlignHeader: text.AlignLeft}
	}
	tw.SetColumnConfigs(configs)
	_, err := fmt.Fprintln(w, tw.Render())
	return err
}

func writeSummaryYAML(w io.Writer, st Stats) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(st); err != nil {
		return err
	}
	return enc.Close()
}

func writeSummaryJSON(w io.Writer, st Stats) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(st)
}
