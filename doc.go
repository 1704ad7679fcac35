// Package sstars converts tables of orbital element fits, one body per line,
// into rendered tables with derived periapsis distances and speeds.
//
// # Input
//
// Each data line holds whitespace-separated columns in a fixed order given by
// a [Schema]:
//
//	id a da e de i di Om dOm w dw Tp dTp P dP Kmag R dR ref dq_ang           (SchemaV1)
//	id a da e de i di Om dOm w dw Tp dTp P dP Kmag R dR ref q_ang dq_ang     (SchemaV2)
//
// a and q_ang are in arcsec, angles in degrees, times in years. Lines that are
// empty or start with '#' are skipped. A line with the wrong number of columns,
// or a column that is not a number, is rejected with a [RowError] and the run
// carries on. In SchemaV2 a negative q_ang means "derive it as a(1-e)";
// SchemaV1 always derives it.
//
// # Derived quantities
//
// [Derive] turns a [Record] into a [Derived] using one [Distance] for every
// row (the per-row R and dR columns are read but ignored):
//
//	q  = R q_ang                       periapsis distance
//	v  = 2π a R / P sqrt(2a/q_ang - 1)  speed at periapsis
//
// with first-order uncertainties that ignore input correlations. SchemaV2 adds
// the mean orbital speed from Ramanujan's perimeter approximation. Distances
// are reported in AU and speeds as a fraction of c (rendered in percent).
//
// # Output
//
// Three formats share fixed column widths and precisions:
//
//   - [ASCII]: fixed-width plain text, no footer
//   - [HTML]: a bare <table> with entity-escaped Greek headers
//   - [Wiki]: a MediaWiki sortable table
//
// Use [Write] or [Marshal] for a slice of entries, [WriteIter] or [WriteChan]
// for a stream, and [Converter] (or [Convert]) to go from an input stream to a
// table in one pass:
//
//	stats, err := sstars.Convert(ctx, os.Stdin, os.Stdout, sstars.Options{
//		Format:      sstars.HTML,
//		Diagnostics: os.Stderr,
//	})
//
// [WriteSummary] reports the resulting [Stats] as a table, YAML or JSON.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat]: unknown format string
//   - [ErrUnsupportedSchema]: unknown schema version
//   - [ErrFieldCount]: data line with the wrong number of columns
//   - [ErrMalformedField]: column that does not parse as a number
package sstars
