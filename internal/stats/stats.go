// Package stats reduces per-iteration samples into means and symmetric
// 95% confidence margins. Missing samples never contribute to either.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/edgesim/simreport/internal/logtable"
)

// Valid extracts the values of the non-missing samples, in order. An
// empty result means the cell's mean is undefined, not zero.
func Valid(samples []logtable.Cell) []float64 {
	var values []float64
	for _, s := range samples {
		if s.Valid {
			values = append(values, s.Value)
		}
	}
	return values
}

// Mean averages the values. With a single value it returns that value
// directly, so single-iteration runs pass through unreduced.
func Mean(values []float64) float64 {
	if len(values) == 1 {
		return values[0]
	}
	return stat.Mean(values, nil)
}

// Margin returns the half-width of the two-sided 95% confidence
// interval around the sample mean, using the Student-t critical value
// with n-1 degrees of freedom. Fewer than two samples give no interval.
func Margin(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	sd := stat.StdDev(values, nil) // Bessel-corrected
	se := sd / math.Sqrt(float64(n))
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	return t.Quantile(0.975) * se
}

// PercentageOfTotal converts a raw count into a percentage of the
// success+failure totals read from the same log. A zero total yields 0,
// never a division error.
func PercentageOfTotal(value, succeeded, failed float64) float64 {
	total := succeeded + failed
	if total == 0 {
		return 0
	}
	return 100 * value / total
}

// Scale divides every value by a constant, for unit conversion such as
// microseconds to milliseconds.
func Scale(values []float64, divisor float64) {
	for i := range values {
		values[i] /= divisor
	}
}
