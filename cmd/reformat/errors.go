package main

import (
	"errors"
	"fmt"
)

const usageLine = "Usage: reformat [-f format] [params.txt] [ofile], where format can be ascii, html or wiki"

var errHelpRequested = errors.New("help requested")

// usageError marks bad flags or arguments. Its text is not shown; the usage
// line is printed instead.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	if e.err == nil {
		return "invalid usage"
	}
	return e.err.Error()
}

func (e *usageError) Unwrap() error { return e.err }

// openError reports a path that could not be opened in the given mode.
type openError struct {
	path string
	mode string
	err  error
}

func (e *openError) Error() string {
	return fmt.Sprintf("Error opening '%s' for %s!", e.path, e.mode)
}

func (e *openError) Unwrap() error { return e.err }
