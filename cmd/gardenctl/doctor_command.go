package main

import (
	"errors"

	"github.com/spf13/cobra"

	"familygarden/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check data directories, the tree store and the import lock",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			results := preflight.RunAll(cmd.Context(), cfg)
			if jsonOutput {
				if err := writeJSON(cmd, results); err != nil {
					return err
				}
			} else {
				report := newReporter(cmd.OutOrStdout())
				report.section("Doctor")
				report.status(statusInfo, "Config", "%s", ctx.configPath)
				for _, r := range results {
					kind := statusOK
					if !r.Passed {
						kind = statusError
					}
					report.status(kind, r.Name, "%s", r.Detail)
				}
			}
			if preflight.Failed(results) {
				return errors.New("one or more checks failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output check results as JSON")
	return cmd
}
