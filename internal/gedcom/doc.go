// Package gedcom turns GEDCOM 5.5/5.5.1 text into individual and family
// records ready for import.
//
// Parsing is a single forward pass over the input. Each line is tokenized as
// LEVEL [@POINTER@] TAG [VALUE]; lines that do not fit that shape are dropped
// without comment. A small state machine tracks the open level-0 record and
// the level-1 tag that scopes level-2 lines (DATE, PLAC, TYPE), and commits a
// record only when the next level-0 line arrives or the input ends.
//
// The parser never fails on malformed input. Problems surface as data on the
// returned ParseResult: Errors block an import (no individuals found) while
// Warnings are advisory (an individual without a name). Dates that cannot be
// normalized to YYYY-MM-DD are left empty.
//
// Nothing here performs I/O or logs; callers read the file and decide how to
// react to the result.
package gedcom
