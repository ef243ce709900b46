package series

import (
	"fmt"
	"log"

	"github.com/edgesim/simreport/internal/config"
	"github.com/edgesim/simreport/internal/logtable"
	"github.com/edgesim/simreport/internal/stats"
)

// DelayPoint breaks one device count's service time into its processing
// and network components, averaged across iterations.
type DelayPoint struct {
	Devices    int     `json:"devices"`
	Processing float64 `json:"processing"`
	Network    float64 `json:"network"`
	Missing    bool    `json:"missing,omitempty"`
}

// block coordinates of the delay components inside the leading summary
// block of a SIMRESULT log (1 skipped row, 5 rows read, 0-based).
const (
	delayBlockSkip = 1
	delayBlockRows = 5
)

// DelayBreakdown aggregates processing time and network delay for one
// scenario across iterations, for the edge or cloud tier. Both values
// of a cell come from the same file read.
func DelayBreakdown(cfg *config.Config, src logtable.Source, scenario string, edge bool) ([]DelayPoint, error) {
	found := false
	for _, s := range cfg.Scenarios {
		if s.Name == scenario {
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("scenario %q not in configuration", scenario)
	}

	var points []DelayPoint
	for _, n := range cfg.Devices.Counts() {
		var processing, network []float64
		for ite := 1; ite <= cfg.Iterations; ite++ {
			block, err := src.ReadBlock(ite, scenario, n, delayBlockSkip, delayBlockRows)
			if err != nil {
				log.Printf("warning: %v", err)
				continue
			}
			p, w, err := delayComponents(block, edge)
			if err != nil {
				log.Printf("warning: iteration %d, %d devices: %v", ite, n, err)
				continue
			}
			processing = append(processing, p)
			network = append(network, w)
		}
		point := DelayPoint{Devices: n}
		if len(processing) == 0 {
			point.Missing = true
		} else {
			point.Processing = stats.Mean(processing)
			point.Network = stats.Mean(network)
		}
		points = append(points, point)
	}
	return points, nil
}

func delayComponents(block [][]float64, edge bool) (processing, network float64, err error) {
	// edge tasks report processing time on row 2 and WLAN delay on row
	// 5; cloud tasks report row 3 and the WAN column of row 5.
	procRow, procCol, netRow, netCol := 2, 5, 4, 2
	if edge {
		procRow, procCol, netRow, netCol = 1, 5, 4, 0
	}
	if len(block) <= netRow || len(block[procRow]) <= procCol || len(block[netRow]) <= netCol {
		return 0, 0, fmt.Errorf("%w: summary block too small", logtable.ErrMalformedRow)
	}
	return block[procRow][procCol], block[netRow][netCol], nil
}
