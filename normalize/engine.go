package normalize

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// geneColumns maps gene names to header indices, verifying each names a
// numeric data column.
func (t *Table) geneColumns(genes []string) ([]int, error) {
	cols := make([]int, 0, len(genes))
	var missing []string
	for _, g := range genes {
		idx, ok := t.headerIdx[g]
		if !ok || !t.isData[idx] {
			missing = append(missing, g)
			continue
		}
		cols = append(cols, idx)
	}
	if len(missing) > 0 {
		return nil, &ConfigError{Role: "genes", Missing: missing}
	}
	return cols, nil
}

// NFs computes the normalization factor of every sample for the given gene
// subset: the geometric mean of the sample's values across those gene
// columns. Results are in table row order.
func (t *Table) NFs(genes []string) ([]float64, error) {
	cols, err := t.geneColumns(genes)
	if err != nil {
		return nil, err
	}

	nfs := make([]float64, len(t.rows))
	vals := make([]float64, len(cols))
	for i, r := range t.rows {
		for j, col := range cols {
			vals[j] = r.values[col]
		}
		nf, err := stats.GeometricMean(vals)
		if err != nil {
			return nil, err
		}
		nfs[i] = nf
	}

	return nfs, nil
}

// InverseNFs computes 1/NF per sample, the overall expression magnitude for
// the gene subset.
func (t *Table) InverseNFs(genes []string) ([]float64, error) {
	nfs, err := t.NFs(genes)
	if err != nil {
		return nil, err
	}
	for i, nf := range nfs {
		nfs[i] = 1.0 / nf
	}
	return nfs, nil
}

// InverseNFsVsControl rescales every sample's 1/NF by the mean 1/NF of the
// control group, so that the control-group mean is 1 by construction.
func (t *Table) InverseNFsVsControl(genes []string) ([]float64, error) {
	invNFs, err := t.InverseNFs(genes)
	if err != nil {
		return nil, err
	}

	if len(t.controlRows) == 0 {
		return nil, ErrEmptyControlGroup
	}
	ctrl := make([]float64, len(t.controlRows))
	for i, idx := range t.controlRows {
		ctrl[i] = invNFs[idx]
	}
	ctrlMean := stat.Mean(ctrl, nil)

	for i, v := range invNFs {
		invNFs[i] = v / ctrlMean
	}
	return invNFs, nil
}
