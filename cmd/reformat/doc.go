// Package main hosts the reformat CLI.
//
// reformat reads a table of orbital element fits (a file or stdin) and writes
// it as an ascii, html or wiki table with periapsis distances and speeds
// added (a file or stdout):
//
//	reformat [-f format] [params.txt] [ofile]
//
// Bad flags or arguments print the usage line and exit 1, as does a path
// that cannot be opened. Data lines that fail to parse are reported on stderr
// and skipped; the exit status stays 0.
package main
