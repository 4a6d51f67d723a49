package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"familygarden/internal/gedcom"
	"familygarden/internal/importer"
)

func newParseCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a GEDCOM file and show its individuals and families",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			result, err := importer.ParseFile(cfg, args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, result)
			}
			out := cmd.OutOrStdout()
			report := newReporter(out)
			report.parseStatus(result)
			if n := len(result.Individuals); n > 0 {
				report.section(fmt.Sprintf("Individuals (%d)", n))
				writeTable(out, individualColumns, buildIndividualRows(result.Individuals))
			}
			if n := len(result.Families); n > 0 {
				report.section(fmt.Sprintf("Families (%d)", n))
				writeTable(out, familyColumns, buildFamilyRows(result.Families))
			}
			report.parseIssues(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the parse result as JSON")
	return cmd
}

func buildIndividualRows(individuals []gedcom.ParsedIndividual) [][]string {
	rows := make([][]string, 0, len(individuals))
	for _, ind := range individuals {
		rows = append(rows, []string{
			ind.ID,
			valueOrDash(ind.DisplayName()),
			string(ind.Gender),
			valueOrDash(ind.BirthDate),
			valueOrDash(ind.BirthPlace),
			valueOrDash(ind.DeathDate),
		})
	}
	return rows
}

func buildFamilyRows(families []gedcom.ParsedFamily) [][]string {
	rows := make([][]string, 0, len(families))
	for _, fam := range families {
		rows = append(rows, []string{
			fam.ID,
			valueOrDash(fam.HusbandID),
			valueOrDash(fam.WifeID),
			fmt.Sprintf("%d", len(fam.ChildrenIDs)),
			valueOrDash(fam.MarriageDate),
		})
	}
	return rows
}
