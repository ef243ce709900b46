package dataset

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/stat"
)

// ColumnStats summarizes one numeric column of the dataset, in original
// units. The Java model loader needs these to reproduce the
// normalization at inference time.
type ColumnStats struct {
	Name  string
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
}

// Describe computes per-column summary statistics for the numeric
// columns in the attribute list. The categorical Result column is
// skipped.
func Describe(records []Record, columns []string) []ColumnStats {
	var out []ColumnStats
	for _, col := range columns {
		if col == resultColumn {
			continue
		}
		cs := ColumnStats{Name: col, Count: len(records), Min: math.Inf(1), Max: math.Inf(-1)}
		values := make([]float64, len(records))
		for i, r := range records {
			v := r.Fields[col]
			values[i] = v
			cs.Min = math.Min(cs.Min, v)
			cs.Max = math.Max(cs.Max, v)
		}
		if len(values) > 0 {
			cs.Mean = stat.Mean(values, nil)
			cs.Std = stat.StdDev(values, nil)
		} else {
			cs.Min, cs.Max = 0, 0
		}
		out = append(out, cs)
	}
	return out
}

// WriteDescribe renders the summary as an aligned table.
func WriteDescribe(w io.Writer, stats []ColumnStats) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "COLUMN\tCOUNT\tMEAN\tSTD\tMIN\tMAX")
	fmt.Fprintln(tw, strings.Repeat("-", 56))
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.6f\t%.6f\t%.6f\n", s.Name, s.Count, s.Mean, s.Std, s.Min, s.Max)
	}
	return tw.Flush()
}
