package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/graynorm/graynorm/refstats"
)

// ConditionStats summarizes the control-normalized 1/NF values of one
// condition group for one gene subset.
type ConditionStats struct {
	Cond    ConditionTuple
	Stats   refstats.Summary
	CVIntra float64
}

// OverallStats aggregates the per-group means for one gene subset. CVInter is
// the ranking key: the lower it is, the less the subset's normalization
// factor moves across conditions.
type OverallStats struct {
	Mean       float64
	StdDev     float64
	Cumulative float64 // Σ |1 − group mean|
	CVInter    float64
}

// Combination holds the full scoring of one gene subset.
type Combination struct {
	Genes   []string
	Conds   []ConditionStats
	Overall OverallStats
}

// Label renders the gene subset for reporting.
func (c Combination) Label() string {
	return strings.Join(c.Genes, " + ")
}

// Score computes per-condition-group and overall statistics of the
// control-normalized 1/NF values for one gene subset. Condition groups appear
// in first-seen order.
func (t *Table) Score(genes []string) (Combination, error) {
	invNFs, err := t.InverseNFsVsControl(genes)
	if err != nil {
		return Combination{}, err
	}

	conds := make([]ConditionStats, 0, len(t.groups))
	groupMeans := make([]float64, 0, len(t.groups))
	for _, g := range t.groups {
		vals := make([]float64, len(g.members))
		for i, idx := range g.members {
			vals[i] = invNFs[idx]
		}
		summary, err := refstats.Summarize(vals)
		if err != nil {
			return Combination{}, fmt.Errorf("condition group %s: %w", g.tuple.Label(), err)
		}
		conds = append(conds, ConditionStats{
			Cond:    g.tuple,
			Stats:   summary,
			CVIntra: summary.CV(),
		})
		groupMeans = append(groupMeans, summary.Mean)
	}

	overall, err := refstats.Summarize(groupMeans)
	if err != nil {
		return Combination{}, fmt.Errorf("group means: %w", err)
	}
	var cumulative float64
	for _, m := range groupMeans {
		cumulative += math.Abs(1.0 - m)
	}

	return Combination{
		Genes: genes,
		Conds: conds,
		Overall: OverallStats{
			Mean:       overall.Mean,
			StdDev:     overall.StdDev,
			Cumulative: cumulative,
			CVInter:    overall.CV(),
		},
	}, nil
}

// HeaderRow returns the result-table header for a dataset with nrConditions
// distinct condition groups: gene combination, inter-group CV, one intra-group
// CV per condition, an {avg, stddev, stderr} triple per condition, then the
// overall aggregates.
func HeaderRow(nrConditions int) []string {
	row := []string{"gene combination", "CV inter"}
	for i := 1; i <= nrConditions; i++ {
		row = append(row, fmt.Sprintf("CV intra cond %d", i))
	}
	for i := 1; i <= nrConditions; i++ {
		for _, q := range []string{"avg", "stddev", "stderr"} {
			row = append(row, fmt.Sprintf("%s cond %d", q, i))
		}
	}
	// "cummulative" is kept misspelled for output compatibility with the
	// published GrayNorm result files.
	row = append(row, "avg 1/NF", "stddev 1/NF", "cummulative 1/NF")
	return row
}

// OutputRow projects the combination onto the HeaderRow column layout.
func (c Combination) OutputRow() []string {
	row := make([]string, 0, 2+4*len(c.Conds)+3)
	row = append(row, c.Label(), formatFloat(c.Overall.CVInter))
	for _, cond := range c.Conds {
		row = append(row, formatFloat(cond.CVIntra))
	}
	for _, cond := range c.Conds {
		row = append(row, formatFloat(cond.Stats.Mean), formatFloat(cond.Stats.StdDev), formatFloat(cond.Stats.StdErr))
	}
	row = append(row, formatFloat(c.Overall.Mean), formatFloat(c.Overall.StdDev), formatFloat(c.Overall.Cumulative))
	return row
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
