package normalize

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/graynorm/graynorm/refstats"
)

func TestCombinations(t *testing.T) {
	got := Combinations([]string{"a", "b", "c"})
	want := [][]string{
		{"a"}, {"b"}, {"c"},
		{"a", "b"}, {"a", "c"}, {"b", "c"},
		{"a", "b", "c"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Combinations = %v, expected %v", got, want)
	}

	for k := 1; k <= 6; k++ {
		items := make([]string, k)
		for i := range items {
			items[i] = string(rune('a' + i))
		}
		if got, want := len(Combinations(items)), 1<<k-1; got != want {
			t.Errorf("k=%d: %d subsets, expected %d", k, got, want)
		}
	}
}

func TestRankAll(t *testing.T) {
	tab := newTestTable(t)

	results, err := tab.RankAll([]string{"geneA", "geneB"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := len(results), 3; got != want {
		t.Fatalf("%d results, expected %d", got, want)
	}

	// Every subset in this dataset sees the same 4x shift in group 2, so all
	// CVs tie and the enumeration order must survive the sort.
	for i, want := range []string{"geneA", "geneB", "geneA + geneB"} {
		if got := results[i].Label(); got != want {
			t.Errorf("result %d = %q, expected %q", i, got, want)
		}
	}

	// Group means are [1, 0.25]: stddev 0.53033..., mean 0.625.
	wantCV := 0.8485281374238570
	for i, r := range results {
		if math.Abs(r.Overall.CVInter-wantCV) > 1e-12 {
			t.Errorf("result %d CV inter = %.15f, expected %.15f", i, r.Overall.CVInter, wantCV)
		}
		if r.Conds[0].Stats.Mean != 1.0 {
			t.Errorf("result %d control-group mean = %v, expected exactly 1.0", i, r.Conds[0].Stats.Mean)
		}
		if math.Abs(r.Conds[1].Stats.Mean-0.25) > 1e-12 {
			t.Errorf("result %d group-2 mean = %f, expected 0.25", i, r.Conds[1].Stats.Mean)
		}
		if math.Abs(r.Overall.Cumulative-0.75) > 1e-12 {
			t.Errorf("result %d cumulative = %f, expected 0.75", i, r.Overall.Cumulative)
		}
	}
}

func TestRankAllSortedAndDeterministic(t *testing.T) {
	tab, err := NewTable(testHeaders, testConfig())
	if err != nil {
		t.Fatal(err)
	}
	// Gene B drifts more across conditions than gene A, so subsets differ in
	// stability.
	for _, row := range [][]string{
		{"s1", "0", "2.0", "4.0"},
		{"s2", "0", "2.1", "4.2"},
		{"s3", "1", "2.0", "9.0"},
		{"s4", "1", "2.2", "8.5"},
		{"s5", "2", "1.9", "12.0"},
		{"s6", "2", "2.1", "13.0"},
	} {
		if err := tab.AddRow(row); err != nil {
			t.Fatal(err)
		}
	}

	results, err := tab.RankAll([]string{"geneA", "geneB"})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Overall.CVInter > results[i].Overall.CVInter {
			t.Errorf("results out of order at %d: %f > %f", i, results[i-1].Overall.CVInter, results[i].Overall.CVInter)
		}
	}
	if results[0].Label() != "geneA" {
		t.Errorf("most stable combination = %q, expected geneA", results[0].Label())
	}

	again, err := tab.RankAll([]string{"geneA", "geneB"})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(results, again) {
		t.Error("RankAll is not deterministic")
	}
}

func TestRankAllConcurrentMatchesSerial(t *testing.T) {
	tab := newTestTable(t)

	serial, err := tab.RankAll([]string{"geneA", "geneB"})
	if err != nil {
		t.Fatal(err)
	}
	for _, workers := range []int{0, 1, 4} {
		concurrent, err := tab.RankAllConcurrent([]string{"geneA", "geneB"}, workers)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(serial, concurrent) {
			t.Errorf("workers=%d: concurrent ranking differs from serial", workers)
		}
	}
}

// A condition group with a single sample cannot produce a sample standard
// deviation and must fail loudly.
func TestRankAllDegenerateGroup(t *testing.T) {
	tab, err := NewTable(testHeaders, testConfig())
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range [][]string{
		{"s1", "0", "2", "4"},
		{"s2", "0", "2", "4"},
		{"s3", "1", "8", "16"},
	} {
		if err := tab.AddRow(row); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := tab.RankAll([]string{"geneA"}); !errors.Is(err, refstats.ErrDegenerateSample) {
		t.Errorf("expected ErrDegenerateSample, got %v", err)
	}
}
