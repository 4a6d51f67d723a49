// Package logs reads the import log for the CLI.
//
// Last returns the final lines of the log with bounded memory, optionally
// restricted to lines mentioning one import batch. Follow polls from a byte
// offset and hands new lines to a callback until the context ends, which is
// how `gardenctl logs --follow` streams an import running in another shell.
package logs
