// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/calibration/internal/extract"
	"github.com/pdiddy/calibration/internal/report"
	"github.com/pdiddy/calibration/pkg/types"
)

const wordsDocument = `two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
`

const digitsDocument = `1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
`

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCalibrate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		mode    types.Mode
		want    string
	}{
		{name: "words document", content: wordsDocument, mode: types.ModeWords, want: "281\n"},
		{name: "digits document", content: digitsDocument, mode: types.ModeDigits, want: "142\n"},
		{name: "blank lines", content: "\n1abc2\n\n\ntreb7uchet\n\n", mode: types.ModeDigits, want: "89\n"},
		{name: "empty file", content: "", mode: types.ModeWords, want: "0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := types.CalibrationConfig{Input: writeInput(t, tt.content), Mode: tt.mode}
			var out bytes.Buffer
			require.NoError(t, calibrate(cfg, false, &out, io.Discard))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestCalibrateNoDigitLine(t *testing.T) {
	cfg := types.CalibrationConfig{
		Input: writeInput(t, "1abc2\nnothing here\n"),
		Mode:  types.ModeDigits,
	}
	var out bytes.Buffer

	err := calibrate(cfg, false, &out, io.Discard)
	require.Error(t, err)

	var lineErr *extract.LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 2, lineErr.Line)
	assert.Empty(t, out.String(), "no partial result should be printed")
}

func TestCalibrateMissingInput(t *testing.T) {
	cfg := types.CalibrationConfig{
		Input: filepath.Join(t.TempDir(), "missing.txt"),
		Mode:  types.ModeWords,
	}
	err := calibrate(cfg, false, io.Discard, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading input file")
}

func TestCalibrateInvalidMode(t *testing.T) {
	cfg := types.CalibrationConfig{Input: writeInput(t, "1\n"), Mode: "hex"}
	err := calibrate(cfg, false, io.Discard, io.Discard)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported mode "hex"`)
}

func TestCalibrateReportAndJSON(t *testing.T) {
	reportPath := filepath.Join(t.TempDir(), "report.yaml")
	cfg := types.CalibrationConfig{
		Input:      writeInput(t, wordsDocument),
		Mode:       types.ModeWords,
		ReportPath: reportPath,
	}
	var out, progress bytes.Buffer

	require.NoError(t, calibrate(cfg, true, &out, &progress))

	var summary extract.Summary
	require.NoError(t, json.Unmarshal(out.Bytes(), &summary))
	assert.Equal(t, 281, summary.Total)
	assert.Len(t, summary.Lines, 7)

	saved, err := report.Read(reportPath)
	require.NoError(t, err)
	assert.Equal(t, summary, saved)

	assert.True(t, strings.HasPrefix(progress.String(), "line 1: 29\n"))
	assert.Contains(t, progress.String(), "wrote report to "+reportPath)
}

func TestRootCommand(t *testing.T) {
	path := writeInput(t, digitsDocument)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{path, "--mode", "digits"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "142\n", out.String())
}

func TestRootCommandRequiresOneArgument(t *testing.T) {
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	assert.Error(t, rootCmd.Execute())
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "calibration dev\n", out.String())
}
