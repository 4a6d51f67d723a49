package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"familygarden/internal/config"
	"familygarden/internal/logging"
	"familygarden/internal/logs"
	"familygarden/internal/store"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var follow bool
	var batchFlag string

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the import log",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			var filter logs.Filter
			if batchFlag != "" {
				err := ctx.withStore(func(_ *config.Config, st *store.Store) error {
					batchID, err := resolveBatchID(cmd.Context(), st, batchFlag)
					if err != nil {
						return err
					}
					// Console lines carry the short id, JSON lines the full one.
					filter.Contains = shortID(batchID)
					return nil
				})
				if err != nil {
					return err
				}
			}

			path := logging.FilePath(cfg)
			out := cmd.OutOrStdout()
			tail, offset, err := logs.Last(path, lines, filter)
			if err != nil {
				return err
			}
			for _, line := range tail {
				fmt.Fprintln(out, line)
			}
			if !follow {
				if len(tail) == 0 {
					fmt.Fprintf(cmd.ErrOrStderr(), "No log lines in %s\n", path)
				}
				return nil
			}
			return logs.Follow(cmd.Context(), path, offset, filter, 0, func(line string) error {
				_, err := fmt.Fprintln(out, line)
				return err
			})
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of trailing lines to show")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing new lines until interrupted")
	cmd.Flags().StringVar(&batchFlag, "batch", "", "Only show lines for this import batch (id or unique prefix)")
	return cmd
}
