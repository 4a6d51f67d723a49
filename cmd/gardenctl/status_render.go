package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"familygarden/internal/gedcom"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	statusLabelWidth = 18
	statusIndent     = "  "
)

var statusStyles = map[statusKind]struct {
	label  string
	colors text.Colors
}{
	statusInfo:  {"INFO", text.Colors{text.FgBlue}},
	statusOK:    {"OK", text.Colors{text.FgGreen}},
	statusWarn:  {"WARN", text.Colors{text.FgYellow}},
	statusError: {"ERROR", text.Colors{text.FgRed}},
}

// reporter writes the aligned "Label: [KIND] message" lines of one command.
type reporter struct {
	out      io.Writer
	colorize bool
}

func newReporter(out io.Writer) *reporter {
	return &reporter{out: out, colorize: shouldColorize(out)}
}

func (r *reporter) status(kind statusKind, label, format string, args ...any) {
	fmt.Fprintln(r.out, formatStatus(kind, label, fmt.Sprintf(format, args...), r.colorize))
}

// detail writes an indented continuation under the previous status line.
func (r *reporter) detail(format string, args ...any) {
	fmt.Fprintf(r.out, statusIndent+format+"\n", args...)
}

func (r *reporter) section(title string) {
	heading := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", text.RuneWidthWithoutEscSequences(heading))
	if r.colorize {
		heading = text.Colors{text.FgBlue, text.Bold}.Sprint(heading)
	}
	fmt.Fprintln(r.out, heading)
	fmt.Fprintln(r.out, rule)
}

// parseStatus summarizes a parse: any error outranks any warning.
func (r *reporter) parseStatus(result *gedcom.ParseResult) {
	stats := result.Stats()
	kind := statusOK
	switch {
	case stats.Errors > 0:
		kind = statusError
	case stats.Warnings > 0:
		kind = statusWarn
	}
	r.status(kind, "Parsed", "%d individuals, %d families, %d errors, %d warnings",
		stats.Individuals, stats.Families, stats.Errors, stats.Warnings)
}

func (r *reporter) parseIssues(result *gedcom.ParseResult) {
	for _, msg := range result.Errors {
		r.status(statusError, "Error", "%s", msg)
	}
	for _, msg := range result.Warnings {
		r.status(statusWarn, "Warning", "%s", msg)
	}
}

// confidenceCell renders a match confidence, highlighting near-certain
// matches so they stand out in the duplicates table.
func (r *reporter) confidenceCell(confidence int) string {
	cell := fmt.Sprintf("%d%%", confidence)
	if !r.colorize {
		return cell
	}
	if confidence >= 90 {
		return text.Colors{text.FgRed, text.Bold}.Sprint(cell)
	}
	return text.Colors{text.FgYellow}.Sprint(cell)
}

func formatStatus(kind statusKind, label, message string, colorize bool) string {
	style := statusStyles[kind]
	marker := "[" + style.label + "]"
	if message != "" {
		marker += " " + message
	}
	line := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, label+":", marker)
	if colorize {
		return style.colors.Sprint(line)
	}
	return line
}

func shouldColorize(writer io.Writer) bool {
	return isTerminal(writer)
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	file, ok := v.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
