package types

// Mode selects how digits are recognized on a line.
type Mode string

const (
	// ModeDigits recognizes only literal decimal digits '0'..'9'.
	ModeDigits Mode = "digits"

	// ModeWords recognizes literal digits '1'..'9' and the words "one".."nine".
	ModeWords Mode = "words"
)

// Modes lists the supported extraction modes.
var Modes = []Mode{ModeDigits, ModeWords}

// CalibrationConfig holds settings for a single calibration run.
type CalibrationConfig struct {
	// Input is the path to the calibration document.
	Input string `json:"input" yaml:"input"`

	// Mode selects the extraction strategy (default words).
	Mode Mode `json:"mode" yaml:"mode"`

	// ReportPath, when set, receives a per-line breakdown. The extension
	// (.yaml, .yml, .json) picks the format.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
}
