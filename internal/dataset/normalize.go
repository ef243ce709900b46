package dataset

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// ErrZeroStdDev reports a feature column with no variance after
// balancing. Normalizing it would produce a silent all-zero column, so
// it is surfaced as a configuration/data error instead.
var ErrZeroStdDev = errors.New("zero standard deviation")

// Normalize replaces every value of the selected feature columns with
// its z-score, computed over the whole post-balancing dataset. The
// Result column and the ServiceTime regression target are left in
// original units.
func Normalize(records []Record, columns []string) error {
	for _, col := range columns {
		if col == resultColumn || col == serviceTimeColumn {
			continue
		}
		values := make([]float64, len(records))
		for i, r := range records {
			values[i] = r.Fields[col]
		}
		mean := stat.Mean(values, nil)
		sd := stat.StdDev(values, nil)
		if sd == 0 {
			return fmt.Errorf("%w: column %q", ErrZeroStdDev, col)
		}
		for _, r := range records {
			r.Fields[col] = (r.Fields[col] - mean) / sd
		}
	}
	return nil
}
