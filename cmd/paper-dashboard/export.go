// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/paper-dashboard/internal/export"
	"github.com/pdiddy/paper-dashboard/pkg/types"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the sorted sample of the filtered records",
	Long: `Export sorts the filtered records by the chosen column, keeps the first
--limit rows, and writes them as CSV, JSON, YAML, or a SQLite database.
The file is named cord19_filtered_<from>_<to>.<ext> inside --dir unless
--out names a path. Use --out - to write CSV, JSON, or YAML to stdout.`,
	RunE: runExport,
}

func init() {
	addFilterFlags(exportCmd)
	addSampleFlags(exportCmd)
	exportCmd.Flags().String("format", "", "csv, json, yaml, or sqlite (default from config)")
	exportCmd.Flags().String("dir", "", "output directory (default from config)")
	exportCmd.Flags().String("out", "", "output path, or - for stdout")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	p, err := loadPreset(cmd.Flags())
	if err != nil {
		return err
	}
	svc := newService(cmd, p)
	crit := criteriaFromFlags(cmd.Flags(), cfg, p)

	opts, err := sampleFromFlags(cmd.Flags(), svc.DefaultSample(), p)
	if err != nil {
		return err
	}

	ecfg := cfg.Export
	if f, _ := cmd.Flags().GetString("format"); f != "" {
		ecfg.Format = types.ExportFormat(f)
	}
	if d, _ := cmd.Flags().GetString("dir"); d != "" {
		ecfg.Dir = d
	}
	ecfg.SortBy, ecfg.Ascending, ecfg.Limit = opts.SortBy, opts.Ascending, opts.Limit

	ctx := context.Background()
	out, _ := cmd.Flags().GetString("out")

	switch out {
	case "":
		_, v, err := svc.View(ctx, crit)
		if err != nil {
			return err
		}
		path, err := export.NewExporter(ecfg, logger).Export(ctx, v, crit.Years)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote %d rows to %s\n", min(v.Len(), opts.Limit), path)
		return nil

	case "-":
		if ecfg.Format == types.FormatSQLite {
			return fmt.Errorf("sqlite export cannot be written to stdout")
		}
		rows, err := svc.Sample(ctx, crit, opts)
		if err != nil {
			return err
		}
		return export.Write(os.Stdout, rows, ecfg.Format)

	default:
		rows, err := svc.Sample(ctx, crit, opts)
		if err != nil {
			return err
		}
		if err := export.WriteFile(ctx, out, rows, ecfg.Format); err != nil {
			return err
		}
		logger.Info("exported sample", zap.String("path", out), zap.Int("rows", len(rows)))
		fmt.Fprintf(os.Stdout, "Wrote %d rows to %s\n", len(rows), out)
		return nil
	}
}
