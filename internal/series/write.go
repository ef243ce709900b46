package series

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Write renders the aggregated series in the requested format. This is
// the artifact the plotting sink consumes.
func Write(s *Series, format string, w io.Writer) error {
	switch format {
	case "json":
		return writeJSON(s, w)
	case "csv":
		return writeCSV(s, w)
	default:
		return writeTable(s, w)
	}
}

func writeTable(s *Series, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tDEVICES\tMEAN\tMARGIN\tN")
	fmt.Fprintln(tw, strings.Repeat("-", 48))
	for _, sc := range s.Scenarios {
		for _, p := range sc.Points {
			if p.Missing {
				fmt.Fprintf(tw, "%s\t%d\t-\t-\t0\n", sc.Legend, p.Devices)
				continue
			}
			fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%d\n", sc.Legend, p.Devices, p.Mean, p.Margin, p.N)
		}
	}
	return tw.Flush()
}

func writeJSON(s *Series, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func writeCSV(s *Series, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"scenario", "devices", "mean", "margin", "n"}); err != nil {
		return err
	}
	for _, sc := range s.Scenarios {
		for _, p := range sc.Points {
			mean, margin := "", ""
			if !p.Missing {
				mean = strconv.FormatFloat(p.Mean, 'f', -1, 64)
				margin = strconv.FormatFloat(p.Margin, 'f', -1, 64)
			}
			row := []string{sc.Scenario, strconv.Itoa(p.Devices), mean, margin, strconv.Itoa(p.N)}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
