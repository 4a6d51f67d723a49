package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"familygarden/internal/config"
	"familygarden/internal/store"
)

func newBatchesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "batches",
		Short: "List committed imports, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, st *store.Store) error {
				batches, err := st.ListBatches(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, batches)
				}
				out := cmd.OutOrStdout()
				if len(batches) == 0 {
					fmt.Fprintln(out, "No imports yet")
					return nil
				}
				writeTable(out, batchColumns, buildBatchRows(batches), batchTotals(batches)...)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output batches as JSON")
	return cmd
}

func buildBatchRows(batches []store.Batch) [][]string {
	rows := make([][]string, 0, len(batches))
	for _, b := range batches {
		rows = append(rows, []string{
			shortID(b.ID),
			b.Label,
			b.CreatedAt.Local().Format("2006-01-02 15:04"),
			strconv.Itoa(b.Individuals),
			strconv.Itoa(b.Families),
			strconv.Itoa(b.Duplicates),
			strconv.Itoa(b.Skipped),
		})
	}
	return rows
}

// batchTotals sums the per-batch counts for the listing footer.
func batchTotals(batches []store.Batch) []string {
	var individuals, families, dups, skipped int
	for _, b := range batches {
		individuals += b.Individuals
		families += b.Families
		dups += b.Duplicates
		skipped += b.Skipped
	}
	return []string{
		fmt.Sprintf("%d imports", len(batches)), "", "",
		strconv.Itoa(individuals),
		strconv.Itoa(families),
		strconv.Itoa(dups),
		strconv.Itoa(skipped),
	}
}
