// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes the per-line breakdown of a calibration run.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/calibration/internal/extract"
)

// Format selects the report encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath picks the format from the file extension of path.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported report extension %q: use .yaml, .yml, or .json", filepath.Ext(path))
	}
}

// Marshal encodes s in the given format.
func Marshal(format Format, s extract.Summary) ([]byte, error) {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(&s)
		if err != nil {
			return nil, fmt.Errorf("marshaling YAML: %w", err)
		}
		return data, nil
	case FormatJSON:
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
}

// Encode writes s to w in the given format.
func Encode(w io.Writer, format Format, s extract.Summary) error {
	data, err := Marshal(format, s)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Write saves s to path, choosing the format from the extension.
func Write(path string, s extract.Summary) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}
	data, err := Marshal(format, s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}

// Read loads a report previously written by Write.
func Read(path string) (extract.Summary, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return extract.Summary{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return extract.Summary{}, fmt.Errorf("reading report: %w", err)
	}
	var s extract.Summary
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &s)
	case FormatJSON:
		err = json.Unmarshal(data, &s)
	}
	if err != nil {
		return extract.Summary{}, fmt.Errorf("parsing report: %w", err)
	}
	return s, nil
}
