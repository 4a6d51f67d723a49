package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"familygarden/internal/gedcom"
	"familygarden/internal/importer"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Check that a file looks like GEDCOM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			content, err := importer.ReadFile(cfg, args[0])
			if err != nil {
				return err
			}
			report := newReporter(cmd.OutOrStdout())
			name := filepath.Base(args[0])
			if !gedcom.IsValidGedcomFile(content) {
				report.status(statusError, name, "no HEAD, INDI or FAM record near the top")
				return fmt.Errorf("%w: %s", importer.ErrInvalidFile, name)
			}
			report.status(statusOK, name, "GEDCOM header found")
			return nil
		},
	}
}
