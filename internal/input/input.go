// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package input loads calibration documents from disk.
package input

import (
	"fmt"
	"os"
	"strings"
)

// ReadLines reads the file at path and returns its lines in order.
// Lines are split on "\n" with a trailing "\r" removed, so CRLF files read
// the same as LF files. A final newline does not produce an extra line.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file %s: %w", path, err)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits text into lines the same way ReadLines does.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
