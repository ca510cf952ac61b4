// SPDX-License-Identifier: MIT

// Package parse reads and writes toggle instances in the line format
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
// Each line holds:
//
//   - [...] target pattern: '.' is 0, '#' is 1. Required; lines without it
//     are skipped.
//   - (...) one operation per group: comma-separated bit positions. "()" is a
//     valid no-op operation.
//   - {...} optional auxiliary vector of integers, carried verbatim.
//
// Blank lines and markdown fence lines (starting with ```) are ignored.
// Malformed numbers produce ErrSyntax annotated with the 1-based line number.
package parse
