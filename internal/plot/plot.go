// Package plot renders an aggregated series as a PNG line chart. It is
// a pure sink: it consumes the series artifact and has no other
// coupling to the pipeline.
package plot

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/edgesim/simreport/internal/config"
	"github.com/edgesim/simreport/internal/series"
)

// Render draws one line per scenario over the device-count axis, with
// dashed upper/lower confidence bound lines wherever margins are
// present. Missing points are skipped, not drawn as zero.
func Render(s *series.Series, cfg config.Plot, w io.Writer) error {
	var chartSeries []chart.Series
	for i, sc := range s.Scenarios {
		xs, ys, uppers, lowers := seriesValues(sc.Points)
		// go-chart cannot draw a single point as a line
		if len(xs) < 2 {
			continue
		}
		color := chart.GetDefaultColor(i)
		chartSeries = append(chartSeries, chart.ContinuousSeries{
			Name:    sc.Legend,
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeColor: color, DotColor: color, DotWidth: 3},
		})
		if hasMargin(sc.Points) {
			bound := chart.Style{StrokeColor: color, StrokeWidth: 1, StrokeDashArray: []float64{3, 3}}
			chartSeries = append(chartSeries,
				chart.ContinuousSeries{XValues: xs, YValues: uppers, Style: bound},
				chart.ContinuousSeries{XValues: xs, YValues: lowers, Style: bound},
			)
		}
	}
	if len(chartSeries) == 0 {
		return fmt.Errorf("metric %s: no scenario has enough points to plot", s.Metric)
	}

	graph := chart.Chart{
		Title:  s.Label,
		Width:  cfg.Width,
		Height: cfg.Height,
		XAxis:  chart.XAxis{Name: cfg.XAxisLabel},
		Series: chartSeries,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, w)
}

func seriesValues(points []series.Point) (xs, ys, uppers, lowers []float64) {
	for _, p := range points {
		if p.Missing {
			continue
		}
		xs = append(xs, float64(p.Devices))
		ys = append(ys, p.Mean)
		uppers = append(uppers, p.Mean+p.Margin)
		lowers = append(lowers, p.Mean-p.Margin)
	}
	return xs, ys, uppers, lowers
}

func hasMargin(points []series.Point) bool {
	for _, p := range points {
		if p.Margin > 0 {
			return true
		}
	}
	return false
}
