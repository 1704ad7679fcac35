// Package logging builds the structured slog logger used by reformat.
//
// Records go to a single writer (stderr in the CLI) as text or JSON and carry
// a run_id so that lines from one conversion can be grouped when several runs
// share a log sink.
package logging
