package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// column describes one listing column. Counts are right aligned; free text
// such as names, places and match reasons wraps at wrap runes when set.
type column struct {
	title string
	count bool
	wrap  int
}

var (
	individualColumns = []column{
		{title: "ID"}, {title: "Name", wrap: 32}, {title: "Gender"},
		{title: "Birth"}, {title: "Birth Place", wrap: 24}, {title: "Death"},
	}
	familyColumns = []column{
		{title: "ID"}, {title: "Husband"}, {title: "Wife"},
		{title: "Children", count: true}, {title: "Marriage"},
	}
	personColumns = []column{
		{title: "ID"}, {title: "Name", wrap: 32}, {title: "Gender"},
		{title: "Birth"}, {title: "Birth Place", wrap: 24}, {title: "Death"}, {title: "Batch"},
	}
	batchColumns = []column{
		{title: "ID"}, {title: "Label", wrap: 32}, {title: "Imported"},
		{title: "Individuals", count: true}, {title: "Families", count: true},
		{title: "Duplicates", count: true}, {title: "Skipped", count: true},
	}
	matchColumns = []column{
		{title: "ID"}, {title: "Imported", wrap: 28}, {title: "Existing", wrap: 28},
		{title: "Confidence", count: true}, {title: "Reasons", wrap: 40},
	}
)

// writeTable renders rows under cols. A footer, when given, closes the table
// with a totals line.
func writeTable(out io.Writer, cols []column, rows [][]string, footer ...string) {
	if len(cols) == 0 {
		return
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault

	configs := make([]table.ColumnConfig, len(cols))
	header := make(table.Row, len(cols))
	for i, col := range cols {
		header[i] = col.title
		configs[i] = table.ColumnConfig{Number: i + 1, AlignHeader: text.AlignLeft}
		if col.count {
			configs[i].Align = text.AlignRight
			configs[i].AlignFooter = text.AlignRight
		}
		if col.wrap > 0 {
			configs[i].WidthMax = col.wrap
			configs[i].WidthMaxEnforcer = text.WrapSoft
		}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range rows {
		tw.AppendRow(padRow(row, len(cols)))
	}
	if len(footer) > 0 {
		tw.AppendFooter(padRow(footer, len(cols)))
	}
	fmt.Fprintln(out, tw.Render())
}

func padRow(values []string, width int) table.Row {
	row := make(table.Row, width)
	for i := range row {
		row[i] = ""
		if i < len(values) {
			row[i] = values[i]
		}
	}
	return row
}
