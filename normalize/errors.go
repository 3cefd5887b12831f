package normalize

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyControlGroup indicates that no sample row matched the control
	// condition tuple, leaving nothing to rescale against.
	ErrEmptyControlGroup = errors.New("normalize: no sample rows match the control condition values")

	// ErrMissingGeneSpec indicates that gene columns were neither configured
	// nor supplied by index.
	ErrMissingGeneSpec = errors.New("normalize: no gene columns specified")
)

// ConfigError reports column names that were configured for a role but are
// absent from the table header, or a role with no configured names at all.
type ConfigError struct {
	Role    string
	Missing []string
}

func (e *ConfigError) Error() string {
	if len(e.Missing) == 0 {
		return fmt.Sprintf("normalize: no column name(s) for %s specified", e.Role)
	}
	return fmt.Sprintf("normalize: no column for %s(s) %s present", e.Role, strings.Join(e.Missing, ","))
}

// InvalidValueError reports the first cell that could not be coerced to a
// number in a column that must be numeric.
type InvalidValueError struct {
	Row    int
	Column string
	Value  string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("normalize: row %d: invalid numeric value %q in column %q", e.Row, e.Value, e.Column)
}

// UnknownConditionError reports a lookup of a condition tuple that was never
// observed during load. Groups are only looked up through the table's own
// tuple catalogue, so this signals an internal-consistency fault.
type UnknownConditionError struct {
	Label string
}

func (e *UnknownConditionError) Error() string {
	return fmt.Sprintf("normalize: no such condition %s", e.Label)
}
