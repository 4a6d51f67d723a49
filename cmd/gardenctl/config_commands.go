package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"familygarden/internal/config"
	"familygarden/internal/store"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool
	opts := config.DefaultSampleOptions()

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration for a family tree",
		Long: "Write a configuration file pointing at a tree data directory with the\n" +
			"given duplicate threshold, then report on the tree stored there.",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := initTarget(targetPath)
			if err != nil {
				return err
			}
			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("check config path: %w", err)
				}
			}
			if err := config.CreateSample(target, opts); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			cfg, _, _, err := config.Load(target)
			if err != nil {
				return fmt.Errorf("reload written config: %w", err)
			}
			report := newReporter(cmd.OutOrStdout())
			report.status(statusOK, "Config", "wrote %s", target)
			return describeTree(cmd.Context(), report, cfg)
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	cmd.Flags().StringVar(&opts.DataDir, "data-dir", opts.DataDir, "Directory holding the tree database and import lock")
	cmd.Flags().IntVar(&opts.Threshold, "threshold", opts.Threshold, "Duplicate threshold (0-100, inclusive)")
	return cmd
}

func initTarget(flagValue string) (string, error) {
	if target := strings.TrimSpace(flagValue); target != "" {
		expanded, err := config.ExpandPath(target)
		if err != nil {
			return "", fmt.Errorf("resolve config path: %w", err)
		}
		return expanded, nil
	}
	target, err := config.DefaultConfigPath()
	if err != nil {
		return "", fmt.Errorf("determine default config path: %w", err)
	}
	return target, nil
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "validate",
		Short:       "Validate the configuration and the tree it points at",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, exists, err := config.Load(ctx.configFlagValue())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			report := newReporter(cmd.OutOrStdout())
			if exists {
				report.status(statusOK, "Config", "%s", path)
			} else {
				report.status(statusWarn, "Config", "%s not found; defaults were used", path)
			}
			if err := describeTree(cmd.Context(), report, cfg); err != nil {
				return err
			}
			report.detail("Configuration valid")
			return nil
		},
	}
}

// describeTree reports the data directory, threshold and stored tree a
// config points at. A missing database is reported, not created.
func describeTree(ctx context.Context, report *reporter, cfg *config.Config) error {
	report.status(statusInfo, "Data directory", "%s", cfg.Paths.DataDir)
	report.status(statusInfo, "Threshold", "%d", cfg.Import.DuplicateThreshold)

	dbPath := cfg.DatabasePath()
	if _, err := os.Stat(dbPath); errors.Is(err, fs.ErrNotExist) {
		report.status(statusInfo, "Tree database", "none yet; created by the first import")
		return nil
	} else if err != nil {
		return fmt.Errorf("check tree database: %w", err)
	}

	st, err := store.Open(cfg)
	if err != nil {
		report.status(statusError, "Tree database", "%v", err)
		return fmt.Errorf("open tree database: %w", err)
	}
	defer st.Close()
	persons, err := st.CountPersons(ctx)
	if err != nil {
		return fmt.Errorf("count persons: %w", err)
	}
	batches, err := st.ListBatches(ctx)
	if err != nil {
		return fmt.Errorf("list imports: %w", err)
	}
	report.status(statusOK, "Tree database", "%d persons from %d imports", persons, len(batches))
	return nil
}
