// Package refstats provides the small-sample summary statistics used to score
// normalization-factor stability: mean, sample standard deviation (n-1
// divisor), standard error of the mean, and coefficient of variation.
package refstats

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateSample indicates a statistics input with fewer than 2 values.
// The sample standard deviation divides by n-1, so it is undefined for n < 2.
var ErrDegenerateSample = errors.New("refstats: need at least 2 values for sample statistics")

// Summary holds the summary statistics for one sequence of measurements.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	StdErr float64
}

// CV returns the coefficient of variation, stddev/mean.
func (s Summary) CV() float64 {
	return s.StdDev / s.Mean
}

// Summarize computes mean, sample standard deviation, and standard error for
// values. The standard deviation is computed from the raw sums,
// sqrt((Σv² − (Σv)²/n)/(n−1)), to stay numerically bit-compatible with the
// published GrayNorm results.
func Summarize(values []float64) (Summary, error) {
	n := len(values)
	if n < 2 {
		return Summary{}, fmt.Errorf("%w (got %d)", ErrDegenerateSample, n)
	}

	var sum, sumSq float64
	for _, v := range values {
		sum += v
		sumSq += v * v
	}

	nf := float64(n)
	stddev := math.Sqrt((sumSq - sum*sum/nf) / (nf - 1.0))

	return Summary{
		N:      n,
		Mean:   sum / nf,
		StdDev: stddev,
		StdErr: stddev / math.Sqrt(nf),
	}, nil
}
