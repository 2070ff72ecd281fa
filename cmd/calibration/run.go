// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/calibration/internal/extract"
	"github.com/pdiddy/calibration/internal/input"
	"github.com/pdiddy/calibration/internal/report"
	"github.com/pdiddy/calibration/pkg/types"
)

func runCalibration(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg := types.CalibrationConfig{
		Input:      args[0],
		Mode:       types.Mode(viper.GetString("mode")),
		ReportPath: viper.GetString("report"),
	}

	progress := io.Discard
	if verbose {
		progress = cmd.ErrOrStderr()
	}
	return calibrate(cfg, jsonOutput, cmd.OutOrStdout(), progress)
}

// calibrate runs one calibration: load, sum, then report. Nothing is
// written to out unless every line produced a value.
func calibrate(cfg types.CalibrationConfig, jsonOutput bool, out, progress io.Writer) error {
	ex, err := extract.ForMode(cfg.Mode)
	if err != nil {
		return err
	}

	lines, err := input.ReadLines(cfg.Input)
	if err != nil {
		return err
	}

	summary, err := extract.SumLines(ex, lines, progress)
	if err != nil {
		return err
	}

	if cfg.ReportPath != "" {
		if err := report.Write(cfg.ReportPath, summary); err != nil {
			return err
		}
		fmt.Fprintf(progress, "wrote report to %s\n", cfg.ReportPath)
	}

	if jsonOutput {
		return report.Encode(out, report.FormatJSON, summary)
	}
	_, err = fmt.Fprintln(out, summary.Total)
	return err
}
