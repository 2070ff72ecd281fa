// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract recovers calibration values from lines of text.
// Each line yields a two-digit number built from its first and last digit;
// a document's value is the sum over its non-empty lines.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/calibration/pkg/types"
)

// ErrNoDigit is returned when a line holds no recognizable digit.
var ErrNoDigit = errors.New("no digit found")

// Extractor finds the first and last digit of a line. Digits and Words
// implement this interface, one per recognition mode.
type Extractor interface {
	Mode() types.Mode
	FirstLast(line string) (first, last int, ok bool)
}

// ForMode returns the extractor for mode.
func ForMode(mode types.Mode) (Extractor, error) {
	switch mode {
	case types.ModeDigits:
		return Digits{}, nil
	case types.ModeWords:
		return Words{}, nil
	default:
		valid := make([]string, len(types.Modes))
		for i, m := range types.Modes {
			valid[i] = string(m)
		}
		return nil, fmt.Errorf("unsupported mode %q: use %s", mode, strings.Join(valid, " or "))
	}
}

// ExtractLineValue returns 10*first + last for line.
func ExtractLineValue(ex Extractor, line string) (int, error) {
	first, last, ok := ex.FirstLast(line)
	if !ok {
		return 0, ErrNoDigit
	}
	return 10*first + last, nil
}

// Digits recognizes literal decimal digits only, including '0'.
type Digits struct{}

// Mode implements Extractor.
func (Digits) Mode() types.Mode { return types.ModeDigits }

// FirstLast implements Extractor.
func (Digits) FirstLast(line string) (first, last int, ok bool) {
	for i := 0; i < len(line); i++ {
		if c := line[i]; c >= '0' && c <= '9' {
			if !ok {
				first = int(c - '0')
				ok = true
			}
			last = int(c - '0')
		}
	}
	return first, last, ok
}

// digitWords maps spelled-out digits to their values. No word is a prefix
// of another, so at most one entry matches at any offset.
var digitWords = []struct {
	word  string
	value int
}{
	{"one", 1},
	{"two", 2},
	{"three", 3},
	{"four", 4},
	{"five", 5},
	{"six", 6},
	{"seven", 7},
	{"eight", 8},
	{"nine", 9},
}

// Words recognizes the digits '1'..'9' and the words "one" through "nine".
// Words may overlap: "eightwo" holds both 8 and 2.
type Words struct{}

// Mode implements Extractor.
func (Words) Mode() types.Mode { return types.ModeWords }

// FirstLast implements Extractor. The two ends are found by independent
// scans so overlapping words resolve correctly at either end.
func (Words) FirstLast(line string) (first, last int, ok bool) {
	for i := 0; i < len(line); i++ {
		if v, found := digitAt(line, i); found {
			first, ok = v, true
			break
		}
	}
	if !ok {
		return 0, 0, false
	}
	for i := len(line) - 1; i >= 0; i-- {
		if v, found := digitAt(line, i); found {
			last = v
			break
		}
	}
	return first, last, true
}

// digitAt reports the digit starting at byte offset i of line, if any.
func digitAt(line string, i int) (int, bool) {
	if c := line[i]; c >= '1' && c <= '9' {
		return int(c - '0'), true
	}
	rest := line[i:]
	for _, dw := range digitWords {
		if strings.HasPrefix(rest, dw.word) {
			return dw.value, true
		}
	}
	return 0, false
}
