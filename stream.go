package sstars

import (
	"io"
	"iter"
)

// WriteIter renders a table whose rows arrive from an iterator. The header is
// written before the first item is pulled and each row as soon as it arrives,
// so nothing is buffered. The footer is written even when seq is empty.
func WriteIter(w io.Writer, f Format, s Schema, seq iter.Seq[Entry]) error {
	r, err := NewRenderer(f, s)
	if err != nil {
		return err
	}
	if err := r.Header(w); err != nil {
		return err
	}
	var rowErr error
	seq(func(e Entry) bool {
		if err := r.Row(w, e); err != nil {
			rowErr = err
			return false
		}
		return true
	})
	if rowErr != nil {
		return rowErr
	}
	return r.Footer(w)
}

// WriteChan renders a table whose rows arrive on a channel.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, f Format, s Schema, ch <-chan Entry) error {
	return WriteIter(w, f, s, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
