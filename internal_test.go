package sstars

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errInternalWrite = errors.New("write failed")

func TestFormatFloat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		v           float64
		width, prec int
		want        string
	}{
		"plain":        {v: 1, width: 6, prec: 4, want: "1.0000"},
		"padded":       {v: 0, width: 6, prec: 2, want: "  0.00"},
		"overflow":     {v: 123456.5, width: 6, prec: 2, want: "123456.50"},
		"negative":     {v: -1.25, width: 6, prec: 2, want: " -1.25"},
		"nan":          {v: math.NaN(), width: 6, prec: 2, want: "   nan"},
		"negative nan": {v: math.Copysign(math.NaN(), -1), width: 6, prec: 2, want: "  -nan"},
		"inf":          {v: math.Inf(1), width: 8, prec: 1, want: "     inf"},
		"negative inf": {v: math.Inf(-1), width: 8, prec: 1, want: "    -inf"},
		"narrow nan":   {v: math.NaN(), width: 2, prec: 1, want: "nan"},
		"rounds half":  {v: 0.125, width: 4, prec: 2, want: "0.12"},
		"rounds up":    {v: 2.3067, width: 6, prec: 2, want: "  2.31"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatFloat(tt.v, tt.width, tt.prec))
		})
	}
}

func TestPadID(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "id  ", padID("id"))
	assert.Equal(t, "S2  ", padID("S2"))
	assert.Equal(t, "S175", padID("S175"))
	assert.Equal(t, "S0-102", padID("S0-102"))
	assert.Equal(t, "    ", padID(""))
	// Multi-byte identifiers pad by bytes.
	assert.Equal(t, "é  ", padID("é"))
}

func TestConversionFactors(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 1.0, auPerParsecArcsec, 1e-12)
	assert.InEpsilon(t, 1.5812845529803115e-05, betaPerParsecArcsecYear, 1e-12)
}

func TestColumnsFor(t *testing.T) {
	t.Parallel()
	v1 := columnsFor(SchemaV1)
	v2 := columnsFor(SchemaV2)
	assert.Len(t, v1, 19)
	assert.Len(t, v2, 20)
	assert.Equal(t, "v_avg", v2[len(v2)-1].ascii)
	// Appending for v2 must not leak into the shared base slice.
	assert.Len(t, baseColumns, 19)
	assert.Equal(t, "a", v1[0].wikiLabel())
	assert.Equal(t, "&Delta;a", v1[1].wikiLabel())
}

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) { return 0, errInternalWrite }

func TestRenderersPropagateWriteErrors(t *testing.T) {
	t.Parallel()
	e := Entry{Record: Record{ID: "S2"}}
	for _, f := range Formats() {
		t.Run(string(f), func(t *testing.T) {
			t.Parallel()
			r, err := NewRenderer(f, SchemaV2)
			assert.NoError(t, err)
			assert.ErrorIs(t, r.Header(errWriter{}), errInternalWrite)
			assert.ErrorIs(t, r.Row(errWriter{}, e), errInternalWrite)
			if f != ASCII {
				assert.ErrorIs(t, r.Footer(errWriter{}), errInternalWrite)
			}
		})
	}
}
