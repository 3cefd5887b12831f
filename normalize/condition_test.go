package normalize

import "testing"

func TestParseConditionValue(t *testing.T) {
	for _, v := range []struct {
		In      string
		Numeric bool
		Label   string
	}{
		{"20", true, "20"},
		{"20.0", true, "20"},
		{" 1.5 ", true, "1.5"},
		{"control", false, "control"},
		{"1e2", true, "100"},
		{"left", false, "left"},
	} {
		got := ParseConditionValue(v.In)
		if _, numeric := got.Numeric(); numeric != v.Numeric {
			t.Errorf("ParseConditionValue(%q) numeric = %v, expected %v", v.In, numeric, v.Numeric)
		}
		if got.Label() != v.Label {
			t.Errorf("ParseConditionValue(%q).Label() = %q, expected %q", v.In, got.Label(), v.Label)
		}
	}
}

// Differently-spelled numerals must collapse to one canonical label, so "1"
// and "1.0" in the condition column land in the same group.
func TestConditionValueCanonicalLabel(t *testing.T) {
	a := ParseConditionValue("1")
	b := ParseConditionValue("1.0")
	if a.Label() != b.Label() {
		t.Errorf("labels differ: %q vs %q", a.Label(), b.Label())
	}
	if !a.Equal(b) {
		t.Error("1 and 1.0 should compare equal")
	}
}

func TestConditionValueEqualSameKindOnly(t *testing.T) {
	num := NumericValue(20)
	text := TextValue("20")
	if num.Equal(text) || text.Equal(num) {
		t.Error("numeric 20 must not equal the label \"20\"")
	}
	if !text.Equal(TextValue("20")) {
		t.Error("identical text values should be equal")
	}
}

func TestConditionTuple(t *testing.T) {
	a := ConditionTuple{NumericValue(0), TextValue("left")}
	b := ConditionTuple{NumericValue(0), TextValue("left")}
	c := ConditionTuple{NumericValue(0), TextValue("right")}
	short := ConditionTuple{NumericValue(0)}

	if !a.Equal(b) {
		t.Error("identical tuples should be equal")
	}
	if a.Equal(c) {
		t.Error("tuples with different values should not be equal")
	}
	if a.Equal(short) {
		t.Error("tuples of different lengths should not be equal")
	}
	if got, want := a.Label(), "[0, left]"; got != want {
		t.Errorf("Label() = %q, expected %q", got, want)
	}
}
