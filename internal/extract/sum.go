// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"io"

	"github.com/pdiddy/calibration/pkg/types"
)

// LineError reports a non-empty line that holds no digit. It wraps
// ErrNoDigit so callers can test with errors.Is.
type LineError struct {
	Line int // 1-based
	Text string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v in %q", e.Line, ErrNoDigit, e.Text)
}

func (e *LineError) Unwrap() error {
	return ErrNoDigit
}

// LineValue is the calibration value recovered from one line.
type LineValue struct {
	Line  int    `json:"line" yaml:"line"`
	Text  string `json:"text" yaml:"text"`
	First int    `json:"first" yaml:"first"`
	Last  int    `json:"last" yaml:"last"`
	Value int    `json:"value" yaml:"value"`
}

// Summary holds the per-line values and total for a document.
type Summary struct {
	Mode    types.Mode  `json:"mode" yaml:"mode"`
	Lines   []LineValue `json:"lines" yaml:"lines"`
	Skipped int         `json:"skipped" yaml:"skipped"`
	Total   int         `json:"total" yaml:"total"`
}

// SumLines extracts a value from every non-empty line and adds them up.
// Empty lines are skipped. Processing stops at the first line without a
// digit; the returned *LineError names it and no partial total is returned.
// Each value is reported to w as it is computed.
func SumLines(ex Extractor, lines []string, w io.Writer) (Summary, error) {
	summary := Summary{Mode: ex.Mode()}

	for i, line := range lines {
		if line == "" {
			summary.Skipped++
			continue
		}

		first, last, ok := ex.FirstLast(line)
		if !ok {
			return Summary{}, &LineError{Line: i + 1, Text: line}
		}

		lv := LineValue{
			Line:  i + 1,
			Text:  line,
			First: first,
			Last:  last,
			Value: 10*first + last,
		}
		fmt.Fprintf(w, "line %d: %d\n", lv.Line, lv.Value)

		summary.Lines = append(summary.Lines, lv)
		summary.Total += lv.Value
	}

	return summary, nil
}

// Sum returns the total calibration value of lines.
func Sum(ex Extractor, lines []string) (int, error) {
	s, err := SumLines(ex, lines, io.Discard)
	if err != nil {
		return 0, err
	}
	return s.Total, nil
}
