package sstars

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Schema is the column layout an input file follows. It is fixed for a whole
// run and never guessed from the data.
type Schema int

const (
	// SchemaV1 has 20 columns and always derives the periapsis angle from a
	// and e. Its last column is the periapsis angle uncertainty.
	SchemaV1 Schema = 1
	// SchemaV2 has 21 columns: an explicit periapsis angle (negative means
	// derive it) and its uncertainty. Tables gain a mean speed column.
	SchemaV2 Schema = 2
)

// Schemas returns all supported schema versions.
func Schemas() []Schema { return []Schema{SchemaV1, SchemaV2} }

// ParseSchema converts a version number into a Schema.
func ParseSchema(v int) (Schema, error) {
	s := Schema(v)
	if !s.valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedSchema, v)
	}
	return s, nil
}

func (s Schema) valid() bool { return s == SchemaV1 || s == SchemaV2 }

// Fields returns the exact number of whitespace-separated tokens a data line
// must hold.
func (s Schema) Fields() int {
	if s == SchemaV2 {
		return 21
	}
	return 20
}

// HasMeanSpeed reports whether derived records and tables carry v_avg.
func (s Schema) HasMeanSpeed() bool { return s == SchemaV2 }

func (s Schema) String() string { return "v" + strconv.Itoa(int(s)) }

// Record holds the measurements of one body as read from a data line.
// Angular sizes are in arcsec, angles in degrees, times in years.
type Record struct {
	ID       string
	A, DA    float64 // semi-major axis
	E, DE    float64 // eccentricity
	I, DI    float64 // inclination
	Om, DOm  float64 // longitude of ascending node
	W, DW    float64 // argument of periapsis
	Tp, DTp  float64 // time of periapsis
	P, DP    float64 // period
	Kmag     float64
	R, DR    float64 // per-row distance; read but not used by Derive
	Ref      int
	QAng     float64 // periapsis angular separation
	DQAng    float64
	DeriveQ  bool // compute QAng as A*(1-E)
}

// PeriapsisAngle returns the periapsis angular separation, deriving it from
// the semi-major axis and eccentricity when the record asks for that.
func (r Record) PeriapsisAngle() float64 {
	if r.DeriveQ {
		return r.A * (1 - r.E)
	}
	return r.QAng
}

// ParseLine turns one input line into a Record. Empty lines, lines holding
// only whitespace, and lines starting with '#' are skipped: ok is false and
// err is nil.
func ParseLine(s Schema, line string) (rec Record, ok bool, err error) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" || line[0] == '#' {
		return Record{}, false, nil
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Record{}, false, nil
	}
	if !s.valid() {
		return Record{}, true, fmt.Errorf("%w: %d", ErrUnsupportedSchema, int(s))
	}
	if len(fields) != s.Fields() {
		return Record{}, true, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), s.Fields())
	}

	sc := fieldScanner{fields: fields[1:]}
	rec.ID = fields[0]
	sc.float("a", &rec.A)
	sc.float("da", &rec.DA)
	sc.float("e", &rec.E)
	sc.float("de", &rec.DE)
	sc.float("i", &rec.I)
	sc.float("di", &rec.DI)
	sc.float("Om", &rec.Om)
	sc.float("dOm", &rec.DOm)
	sc.float("w", &rec.W)
	sc.float("dw", &rec.DW)
	sc.float("Tp", &rec.Tp)
	sc.float("dTp", &rec.DTp)
	sc.float("P", &rec.P)
	sc.float("dP", &rec.DP)
	sc.float("Kmag", &rec.Kmag)
	sc.float("R", &rec.R)
	sc.float("dR", &rec.DR)
	sc.integer("ref", &rec.Ref)
	switch s {
	case SchemaV1:
		rec.DeriveQ = true
	case SchemaV2:
		sc.float("q_ang", &rec.QAng)
		rec.DeriveQ = rec.QAng < 0
	}
	sc.float("dq_ang", &rec.DQAng)
	if sc.err != nil {
		return Record{}, true, sc.err
	}
	return rec, true, nil
}

// fieldScanner consumes tokens in order and keeps the first error.
type fieldScanner struct {
	fields []string
	pos    int
	err    error
}

func (sc *fieldScanner) next() string {
	tok := sc.fields[sc.pos]
	sc.pos++
	return tok
}

func (sc *fieldScanner) float(name string, dst *float64) {
	if sc.err != nil {
		return
	}
	tok := sc.next()
	v, err := strconv.ParseFloat(tok, 64)
	// Out-of-range values come back as ±Inf or 0, as with strtod.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		sc.err = fmt.Errorf("%w: %s=%q", ErrMalformedField, name, tok)
		return
	}
	*dst = v
}

func (sc *fieldScanner) integer(name string, dst *int) {
	if sc.err != nil {
		return
	}
	tok := sc.next()
	v, err := strconv.Atoi(tok)
	if err != nil {
		sc.err = fmt.Errorf("%w: %s=%q", ErrMalformedField, name, tok)
		return
	}
	*dst = v
}
