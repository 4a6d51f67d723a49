package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"familygarden/internal/config"
	"familygarden/internal/duplicates"
	"familygarden/internal/gedcom"
	"familygarden/internal/importer"
	"familygarden/internal/store"
)

type importOutput struct {
	Preview *importer.Preview `json:"preview"`
	Plan    *importer.Plan    `json:"plan"`
	Summary *importer.Summary `json:"summary,omitempty"`
}

func newImportCommand(ctx *commandContext) *cobra.Command {
	var decisionFlags []string
	var skipAll bool
	var dryRun bool
	var interactive bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a GEDCOM file into the family tree",
		Long: "Import a GEDCOM file into the family tree.\n\n" +
			"Individuals that look like persons already in the tree are reported as\n" +
			"probable duplicates. Each one is created unless a decision says to skip it,\n" +
			"given with --decision ID=skip, --skip-all-duplicates or interactively when\n" +
			"stdin is a terminal.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if skipAll && len(decisionFlags) > 0 {
				return errors.New("--decision and --skip-all-duplicates are mutually exclusive")
			}
			decisions, err := parseDecisionFlags(decisionFlags)
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				imp, err := importer.New(st, cfg, logger)
				if err != nil {
					return err
				}
				preview, err := imp.Preview(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				report := newReporter(out)
				if !jsonOutput {
					printPreview(report, preview)
				}

				switch {
				case skipAll:
					decisions = preview.SkipAll()
				case len(decisions) == 0 && len(preview.Detection.Duplicates) > 0 && !jsonOutput &&
					(interactive || isTerminal(cmd.InOrStdin())):
					decisions = promptDecisions(cmd.InOrStdin(), out, preview.Detection.Duplicates)
				}

				plan, err := preview.Resolve(decisions)
				if err != nil {
					return err
				}
				if dryRun {
					if jsonOutput {
						return writeJSON(cmd, importOutput{Preview: preview, Plan: plan})
					}
					report.status(statusInfo, "Dry run", "would create %d, skip %d (%d probable duplicates created)",
						len(plan.Create), len(plan.Skip), plan.DuplicatesCreated)
					return nil
				}

				summary, err := imp.Commit(cmd.Context(), preview, decisions)
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, importOutput{Preview: preview, Plan: plan, Summary: summary})
				}
				printSummary(report, summary)
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVar(&decisionFlags, "decision", nil, "Decision for a probable duplicate as ID=create|skip (repeatable)")
	cmd.Flags().BoolVar(&skipAll, "skip-all-duplicates", false, "Skip every probable duplicate")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be imported without writing")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for each probable duplicate even when stdin is not a terminal")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output preview, plan and summary as JSON")
	return cmd
}

// parseDecisionFlags turns ID=decision pairs into a decision map. The
// individual id may be given with or without the surrounding @.
func parseDecisionFlags(values []string) (map[string]duplicates.Decision, error) {
	decisions := make(map[string]duplicates.Decision, len(values))
	for _, raw := range values {
		id, value, ok := strings.Cut(raw, "=")
		id = gedcom.StripPointer(strings.TrimSpace(id))
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid --decision %q: expected ID=create|skip", raw)
		}
		decision, err := duplicates.ParseDecision(value)
		if err != nil {
			return nil, fmt.Errorf("invalid --decision %q: %w", raw, err)
		}
		decisions[id] = decision
	}
	return decisions, nil
}

func printPreview(report *reporter, preview *importer.Preview) {
	report.parseStatus(preview.Parse)
	report.parseIssues(preview.Parse)
	if prev := preview.PreviousImport; prev != nil {
		report.status(statusWarn, "Already imported", "identical file committed as %s on %s",
			shortID(prev.ID), prev.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	matches := preview.Detection.Duplicates
	if len(matches) == 0 {
		report.status(statusOK, "Duplicates", "none among %d existing persons", preview.ExistingCount)
		return
	}
	report.status(statusWarn, "Duplicates", "%d probable (threshold %d)", len(matches), preview.Threshold)
	rows := make([][]string, 0, len(matches))
	for _, match := range matches {
		existing := match.ExistingPerson
		rows = append(rows, []string{
			match.ImportedPerson.ID,
			valueOrDash(match.ImportedPerson.DisplayName()),
			valueOrDash(strings.TrimSpace(existing.FirstNames + " " + existing.LastName)),
			report.confidenceCell(match.Confidence),
			strings.Join(match.MatchReasons, ", "),
		})
	}
	writeTable(report.out, matchColumns, rows, fmt.Sprintf("%d unique", len(preview.Detection.UniquePersons)))
}

func printSummary(report *reporter, summary *importer.Summary) {
	report.status(statusOK, "Imported", "%s as %q", summary.BatchID, summary.Label)
	report.detail("created %d, skipped %d, duplicates created %d, families %d",
		summary.Created, summary.Skipped, summary.DuplicatesCreated, summary.Families)
}
