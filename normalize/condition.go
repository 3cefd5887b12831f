package normalize

import (
	"strconv"
	"strings"
)

// ConditionValue is one experimental-condition value, either numeric or
// textual. Values only compare equal when they carry the same kind: the
// number 20 and the label "20" are distinct conditions.
type ConditionValue struct {
	num     float64
	text    string
	numeric bool
}

// NumericValue returns a numeric condition value.
func NumericValue(v float64) ConditionValue {
	return ConditionValue{num: v, numeric: true}
}

// TextValue returns a categorical condition value.
func TextValue(v string) ConditionValue {
	return ConditionValue{text: v}
}

// ParseConditionValue interprets s as a number where possible and as a
// categorical label otherwise.
func ParseConditionValue(s string) ConditionValue {
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return NumericValue(v)
	}
	return TextValue(strings.TrimSpace(s))
}

// Numeric reports whether the value is numeric, and the number when it is.
func (v ConditionValue) Numeric() (float64, bool) {
	return v.num, v.numeric
}

// Equal compares two condition values. Kinds must match.
func (v ConditionValue) Equal(o ConditionValue) bool {
	if v.numeric != o.numeric {
		return false
	}
	if v.numeric {
		return v.num == o.num
	}
	return v.text == o.text
}

// Label returns a canonical text form. Numeric values render through
// FormatFloat so that inputs spelled "1" and "1.0" share one label.
func (v ConditionValue) Label() string {
	if v.numeric {
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	}
	return v.text
}

// ConditionTuple is one combination of condition values, ordered by the
// configured condition columns.
type ConditionTuple []ConditionValue

// Equal compares tuples elementwise.
func (t ConditionTuple) Equal(o ConditionTuple) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if !t[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Label returns the canonical text form used to key condition groups.
func (t ConditionTuple) Label() string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = v.Label()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
