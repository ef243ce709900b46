// Package arff serializes a dataset into the attribute-relation text
// format consumed by Weka: a relation name, a typed attribute list, and
// a data block of comma-separated rows in declared attribute order.
package arff

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/edgesim/simreport/internal/dataset"
)

// Write emits the relation. The Result column is declared as the
// two-valued nominal class attribute {fail,success}; every other column
// is a real-valued numeric attribute. Data rows carry no index and no
// repeated header.
func Write(w io.Writer, relation string, columns []string, records []dataset.Record) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "@relation %s\n\n", relation)
	for _, col := range columns {
		if col == "Result" {
			fmt.Fprintln(bw, "@attribute class {fail,success}")
			continue
		}
		fmt.Fprintf(bw, "@attribute %s REAL\n", col)
	}
	fmt.Fprintln(bw, "\n@data")
	for _, r := range records {
		for i, col := range columns {
			if i > 0 {
				bw.WriteByte(',')
			}
			if col == "Result" {
				bw.WriteString(r.Result)
				continue
			}
			bw.WriteString(strconv.FormatFloat(r.Fields[col], 'g', -1, 64))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
