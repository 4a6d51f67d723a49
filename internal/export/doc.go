// Package export writes parse results for use outside the tree store: a JSON
// or YAML document, or a CSV bundle with one file per record kind plus an
// issues file listing parse errors and warnings.
package export
