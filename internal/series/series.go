// Package series runs the aggregation pipeline: it loads a metric table
// from per-run logs, reduces the iteration axis with missing-data-aware
// means, and attaches symmetric 95% confidence margins.
package series

import (
	"log"

	"github.com/edgesim/simreport/internal/config"
	"github.com/edgesim/simreport/internal/logtable"
	"github.com/edgesim/simreport/internal/stats"
)

// Point is the aggregate for one (scenario, device count) cell. Missing
// is true when every iteration sample was absent; Mean is then
// undefined and Margin is zero.
type Point struct {
	Devices int     `json:"devices"`
	Mean    float64 `json:"mean"`
	Margin  float64 `json:"margin"`
	N       int     `json:"n"`
	Missing bool    `json:"missing,omitempty"`
}

type ScenarioSeries struct {
	Scenario string  `json:"scenario"`
	Legend   string  `json:"legend"`
	Points   []Point `json:"points"`
}

type Series struct {
	Metric    string           `json:"metric"`
	Label     string           `json:"label,omitempty"`
	Scenarios []ScenarioSeries `json:"scenarios"`
}

// totals for the percentage-of-all transform live in the second row of
// every SIMRESULT log: completed tasks then failed tasks.
var (
	completedLoc = logtable.Locator{RowOffset: 1, Col: 1}
	failedLoc    = logtable.Locator{RowOffset: 1, Col: 2}
)

// Build runs the fixed (iteration × scenario × device count) read loop
// and aggregates the result. A missing or malformed file degrades only
// its own cell; the loop always runs to completion.
func Build(cfg *config.Config, metric *config.Metric, src logtable.Source) *Series {
	scenarios := make([]string, len(cfg.Scenarios))
	for i, s := range cfg.Scenarios {
		scenarios[i] = s.Name
	}
	devices := cfg.Devices.Counts()
	loc := logtable.Locator{RowOffset: metric.Row, Col: metric.Col}

	table := logtable.NewTable(cfg.Iterations, scenarios, devices)
	for ite := 1; ite <= cfg.Iterations; ite++ {
		for si, scenario := range scenarios {
			for di, n := range devices {
				value, err := readCell(src, ite, scenario, n, loc, metric.PercentageOfAll)
				if err != nil {
					log.Printf("warning: %v", err)
					table.SetMissing(ite, si, di)
					continue
				}
				table.Set(ite, si, di, value)
			}
		}
	}

	return aggregate(cfg, metric, table)
}

// readCell reads one scalar and, when requested, converts it to a
// percentage of the run's success+failure totals. The conversion
// happens per cell, before the iteration-axis average.
func readCell(src logtable.Source, ite int, scenario string, devices int, loc logtable.Locator, percentage bool) (float64, error) {
	value, err := src.ReadCell(ite, scenario, devices, loc)
	if err != nil {
		return 0, err
	}
	if !percentage {
		return value, nil
	}
	completed, err := src.ReadCell(ite, scenario, devices, completedLoc)
	if err != nil {
		return 0, err
	}
	failed, err := src.ReadCell(ite, scenario, devices, failedLoc)
	if err != nil {
		return 0, err
	}
	return stats.PercentageOfTotal(value, completed, failed), nil
}

func aggregate(cfg *config.Config, metric *config.Metric, table *logtable.Table) *Series {
	out := &Series{Metric: metric.Name, Label: metric.Label}
	for si, sc := range cfg.Scenarios {
		ss := ScenarioSeries{Scenario: sc.Name, Legend: sc.Legend}
		for di, n := range table.Devices {
			values := stats.Valid(table.Samples(si, di))
			stats.Scale(values, metric.Divisor)
			p := Point{Devices: n, N: len(values)}
			if len(values) == 0 {
				p.Missing = true
			} else {
				p.Mean = stats.Mean(values)
				if table.Iterations() > 1 {
					p.Margin = stats.Margin(values)
				}
			}
			ss.Points = append(ss.Points, p)
		}
		out.Scenarios = append(out.Scenarios, ss)
	}
	return out
}
