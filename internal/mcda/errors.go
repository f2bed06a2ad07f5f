package mcda

import "fmt"

// All construction errors are terminal: the caller must fix the input and
// resubmit. Nothing here is retriable.

// WeightSumError reports a criterion weight vector whose sum falls outside
// the accepted [0.95, 1.05] tolerance band.
type WeightSumError struct {
	Sum float64
}

func (e *WeightSumError) Error() string {
	return fmt.Sprintf("criterion weights sum to %.4f, must sum to 1.0 (±0.05)", e.Sum)
}

// DuplicateNameError reports a repeated criterion or option name.
// Comparison is case-insensitive.
type DuplicateNameError struct {
	Kind string // "criterion" or "option"
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate %s name: %q", e.Kind, e.Name)
}

// IncompleteScoresError reports an option whose score map does not line up
// exactly with the criterion set: a criterion is unscored, or a score refers
// to a criterion that does not exist.
type IncompleteScoresError struct {
	Option    string
	Criterion string
	Unknown   bool // true when the score names an unknown criterion
}

func (e *IncompleteScoresError) Error() string {
	if e.Unknown {
		return fmt.Sprintf("option %q scores unknown criterion %q", e.Option, e.Criterion)
	}
	return fmt.Sprintf("option %q is missing a score for criterion %q", e.Option, e.Criterion)
}

// RangeError reports a score or weight outside its allowed range.
type RangeError struct {
	Field    string // e.g. "weight" or "score"
	Name     string // criterion or option/criterion pair the value belongs to
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %s: value %.4f outside [%.1f, %.1f]", e.Field, e.Name, e.Value, e.Min, e.Max)
}

// InsufficientInputError reports fewer than two criteria or two options.
type InsufficientInputError struct {
	Criteria int
	Options  int
}

func (e *InsufficientInputError) Error() string {
	return fmt.Sprintf("need at least 2 criteria and 2 options, got %d criteria and %d options", e.Criteria, e.Options)
}

// UnsupportedMethodError reports an unrecognized analysis method selector.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("unsupported analysis method: %q", e.Method)
}
