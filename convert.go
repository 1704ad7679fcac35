package sstars

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"
)

// excerptLen is how much of a rejected line a diagnostic quotes.
const excerptLen = 15

// rowsPerWorker sizes a batch when rows are transformed in parallel.
const rowsPerWorker = 64

// Options configures a Converter. Zero values select the defaults: ascii
// output, SchemaV1, DefaultDistance, one worker, no logging and no
// diagnostics.
type Options struct {
	Format   Format
	Schema   Schema
	Distance Distance
	// Workers > 1 derives rows of a batch concurrently. Output order always
	// equals input order.
	Workers int
	Logger  *slog.Logger
	// Diagnostics receives one line per rejected data line.
	Diagnostics io.Writer
}

// Stats counts what a run did with its input.
type Stats struct {
	Lines    int `json:"lines" yaml:"lines"`
	Comments int `json:"comments" yaml:"comments"`
	Rows     int `json:"rows" yaml:"rows"`
	Failed   int `json:"failed" yaml:"failed"`
}

// RowError describes a data line that could not be parsed. Line is 1-based
// and counts every line read, comments and blanks included.
type RowError struct {
	Line    int
	Excerpt string
	Err     error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Diagnostic returns the message written to the diagnostics stream.
func (e *RowError) Diagnostic() string {
	return fmt.Sprintf("Error parsing line %d starting with: %s", e.Line, e.Excerpt)
}

// Converter turns a stream of orbital element rows into a rendered table.
type Converter struct {
	opts   Options
	logger *slog.Logger
}

// NewConverter validates opts and fills in defaults.
func NewConverter(opts Options) (*Converter, error) {
	if opts.Format == "" {
		opts.Format = ASCII
	}
	if opts.Schema == 0 {
		opts.Schema = SchemaV1
	}
	if opts.Distance == (Distance{}) {
		opts.Distance = DefaultDistance
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Diagnostics == nil {
		opts.Diagnostics = io.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if _, err := NewRenderer(opts.Format, opts.Schema); err != nil {
		return nil, err
	}
	return &Converter{opts: opts, logger: logger}, nil
}

// Run reads r to the end and writes the table to w. Rejected lines are
// reported to the diagnostics stream and skipped; they never stop the run.
// Header and footer are written even when no row survives. The returned error
// is non-nil only for read or write failures and context cancellation.
func (c *Converter) Run(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	src := &rowSource{conv: c, ctx: ctx, r: bufio.NewReader(r)}
	bw := bufio.NewWriter(w)
	writeErr := WriteIter(bw, c.opts.Format, c.opts.Schema, src.entries)
	if src.err != nil {
		return src.stats, src.err
	}
	if writeErr != nil {
		return src.stats, fmt.Errorf("write table: %w", writeErr)
	}
	if err := bw.Flush(); err != nil {
		return src.stats, fmt.Errorf("flush output: %w", err)
	}
	c.logger.Info("conversion finished",
		slog.Int("lines", src.stats.Lines),
		slog.Int("rows", src.stats.Rows),
		slog.Int("failed", src.stats.Failed),
	)
	return src.stats, nil
}

// rowSource yields derived entries read from one input stream. Reading stops
// at the first read failure or cancellation, recorded in err.
type rowSource struct {
	conv  *Converter
	ctx   context.Context
	r     *bufio.Reader
	batch []Entry
	stats Stats
	err   error
}

func (s *rowSource) entries(yield func(Entry) bool) {
	s.batch = make([]Entry, 0, s.conv.batchSize())
	for {
		if err := s.ctx.Err(); err != nil {
			s.err = err
			return
		}
		line, readErr := s.r.ReadString('\n')
		if line != "" && !s.add(line, yield) {
			return
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			s.err = fmt.Errorf("read input: %w", readErr)
			return
		}
	}
	s.flush(yield)
}

// add parses one line and reports whether the caller should keep reading.
func (s *rowSource) add(line string, yield func(Entry) bool) bool {
	s.stats.Lines++
	rec, ok, err := ParseLine(s.conv.opts.Schema, line)
	switch {
	case !ok:
		s.stats.Comments++
	case err != nil:
		s.stats.Failed++
		s.conv.reject(&RowError{Line: s.stats.Lines, Excerpt: excerpt(line), Err: err})
	default:
		s.batch = append(s.batch, Entry{Record: rec})
		if len(s.batch) == cap(s.batch) {
			return s.flush(yield)
		}
	}
	return true
}

// flush derives the pending batch and hands it on in input order.
func (s *rowSource) flush(yield func(Entry) bool) bool {
	if len(s.batch) == 0 {
		return true
	}
	if err := s.conv.derive(s.ctx, s.batch); err != nil {
		s.err = err
		return false
	}
	for _, e := range s.batch {
		if !yield(e) {
			return false
		}
		s.stats.Rows++
		s.conv.logger.Debug("row rendered", slog.String("id", e.Record.ID), slog.Float64("q_au", e.Derived.Q))
	}
	s.batch = s.batch[:0]
	return true
}

func (c *Converter) batchSize() int {
	if c.opts.Workers <= 1 {
		return 1
	}
	return c.opts.Workers * rowsPerWorker
}

// derive fills in Derived for every entry, splitting the batch across workers.
// Each worker owns a disjoint slice range so order is kept by position.
func (c *Converter) derive(ctx context.Context, batch []Entry) error {
	d, s := c.opts.Distance, c.opts.Schema
	if c.opts.Workers <= 1 || len(batch) < 2 {
		for i := range batch {
			batch[i].Derived = Derive(batch[i].Record, d, s)
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Workers)
	chunk := (len(batch) + c.opts.Workers - 1) / c.opts.Workers
	for start := 0; start < len(batch); start += chunk {
		part := batch[start:min(start+chunk, len(batch))]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := range part {
				part[i].Derived = Derive(part[i].Record, d, s)
			}
			return nil
		})
	}
	return g.Wait()
}

func (c *Converter) reject(rerr *RowError) {
	c.logger.Debug("row rejected", slog.Int("line", rerr.Line), slog.Any("error", rerr.Err))
	fmt.Fprintln(c.opts.Diagnostics, rerr.Diagnostic())
}

func excerpt(line string) string {
	line = strings.TrimRight(line, "\r\n")
	if len(line) > excerptLen {
		return line[:excerptLen]
	}
	return line
}

// Convert is a convenience wrapper building a Converter and running it once.
func Convert(ctx context.Context, r io.Reader, w io.Writer, opts Options) (Stats, error) {
	c, err := NewConverter(opts)
	if err != nil {
		return Stats{}, err
	}
	return c.Run(ctx, r, w)
}
