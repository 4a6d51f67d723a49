package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"familygarden/internal/config"
	"familygarden/internal/export"
	"familygarden/internal/importer"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string
	var outFlag string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Parse a GEDCOM file and write the result as JSON, YAML or CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			target := strings.TrimSpace(outFlag)
			if target == "" {
				target = export.DefaultPath(args[0], format)
			}
			target, err = config.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			result, err := importer.ParseFile(cfg, args[0])
			if err != nil {
				return err
			}
			if err := export.Write(result, format, target); err != nil {
				return err
			}
			stats := result.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d individuals and %d families as %s to %s\n",
				stats.Individuals, stats.Families, format, target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", string(export.FormatJSON), "Output format: json, yaml or csv")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Output file, or directory for csv (default derived from the input name)")
	return cmd
}
