package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"familygarden/internal/config"
	"familygarden/internal/store"
)

func newPersonsCommand(ctx *commandContext) *cobra.Command {
	var batchFlag string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "persons",
		Short: "List persons stored in the family tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(_ *config.Config, st *store.Store) error {
				batchID, err := resolveBatchID(cmd.Context(), st, batchFlag)
				if err != nil {
					return err
				}
				persons, err := st.ListPersons(cmd.Context(), batchID)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, persons)
				}
				out := cmd.OutOrStdout()
				if len(persons) == 0 {
					fmt.Fprintln(out, "No persons stored")
					return nil
				}
				writeTable(out, personColumns, buildPersonRows(persons), fmt.Sprintf("%d persons", len(persons)))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&batchFlag, "batch", "", "Only list persons from this import batch (id or unique prefix)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output persons as JSON")
	return cmd
}

func buildPersonRows(persons []store.Person) [][]string {
	rows := make([][]string, 0, len(persons))
	for _, p := range persons {
		rows = append(rows, []string{
			shortID(p.ID),
			valueOrDash(p.DisplayName()),
			string(p.Gender),
			valueOrDash(p.BirthDate),
			valueOrDash(p.BirthPlace),
			valueOrDash(p.DeathDate),
			shortID(p.BatchID),
		})
	}
	return rows
}

// resolveBatchID expands a batch id prefix. An empty value selects all batches.
func resolveBatchID(ctx context.Context, st *store.Store, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	batches, err := st.ListBatches(ctx)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, b := range batches {
		if b.ID == value {
			return b.ID, nil
		}
		if strings.HasPrefix(b.ID, value) {
			matches = append(matches, b.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no import batch matches %q", value)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("batch prefix %q is ambiguous (%d matches)", value, len(matches))
	}
}
