package sstars_test

import (
	"bytes"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sstars "github.com/amaurea/s-stars"
)

func TestWriteIter(t *testing.T) {
	t.Parallel()
	entries := []sstars.Entry{entry(t, sstars.SchemaV1, lineX), entry(t, sstars.SchemaV1, lineS2)}
	var buf bytes.Buffer
	require.NoError(t, sstars.WriteIter(&buf, sstars.ASCII, sstars.SchemaV1, slices.Values(entries)))
	assert.Equal(t, asciiHeaderV1+"\n"+asciiRowX+"\n"+asciiRowS2+"\n", buf.String())
}

func TestWriteIterEmpty(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format sstars.Format
		want   string
	}{
		"ascii": {format: sstars.ASCII, want: asciiHeaderV1 + "\n"},
		"html":  {format: sstars.HTML, want: htmlHeaderV1 + "</table>\n"},
		"wiki":  {format: sstars.Wiki, want: wikiHeaderV1 + "|}\n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			err := sstars.WriteIter(&buf, tt.format, sstars.SchemaV1, slices.Values([]sstars.Entry(nil)))
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteIterStopsOnError(t *testing.T) {
	t.Parallel()
	pulled := 0
	seq := func(yield func(sstars.Entry) bool) {
		for range 5 {
			pulled++
			if !yield(entry(t, sstars.SchemaV1, lineX)) {
				return
			}
		}
	}
	err := sstars.WriteIter(&failAfterN{n: 2}, sstars.HTML, sstars.SchemaV1, seq)
	require.ErrorIs(t, err, errWriteFailed)
	assert.Equal(t, 2, pulled)
}

func TestWriteIterUnsupported(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := sstars.WriteIter(&buf, sstars.Format("xml"), sstars.SchemaV1, slices.Values([]sstars.Entry(nil)))
	require.ErrorIs(t, err, sstars.ErrUnsupportedFormat)
	assert.Zero(t, buf.Len())
}

func TestWriteChan(t *testing.T) {
	t.Parallel()
	ch := make(chan sstars.Entry, 2)
	ch <- entry(t, sstars.SchemaV1, lineX)
	ch <- entry(t, sstars.SchemaV1, lineS2)
	close(ch)

	var buf bytes.Buffer
	require.NoError(t, sstars.WriteChan(&buf, sstars.Wiki, sstars.SchemaV1, ch))
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("|-\n")))
	assert.Contains(t, buf.String(), wikiRowX)
}

func TestWriteChanEmpty(t *testing.T) {
	t.Parallel()
	ch := make(chan sstars.Entry)
	close(ch)
	var buf bytes.Buffer
	require.NoError(t, sstars.WriteChan(&buf, sstars.HTML, sstars.SchemaV1, ch))
	assert.Equal(t, htmlHeaderV1+"</table>\n", buf.String())
}
