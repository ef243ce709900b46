package plot_test

import (
	"bytes"
	"testing"

	"github.com/edgesim/simreport/internal/config"
	"github.com/edgesim/simreport/internal/plot"
	"github.com/edgesim/simreport/internal/series"
)

var plotCfg = config.Plot{Width: 400, Height: 300, XAxisLabel: "Number of Devices"}

func TestRenderPNG(t *testing.T) {
	s := &series.Series{
		Metric: "avg_service_time",
		Label:  "Service Time (sec)",
		Scenarios: []series.ScenarioSeries{
			{
				Scenario: "RANDOM_FIT",
				Legend:   "RND",
				Points: []series.Point{
					{Devices: 100, Mean: 1.5, Margin: 0.2, N: 5},
					{Devices: 200, Mean: 2.1, Margin: 0.3, N: 5},
					{Devices: 300, Missing: true},
					{Devices: 400, Mean: 3.4, Margin: 0.4, N: 5},
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := plot.Render(s, plotCfg, &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	png := buf.Bytes()
	if len(png) < 8 || png[1] != 'P' || png[2] != 'N' || png[3] != 'G' {
		t.Errorf("output is not a PNG (%d bytes)", len(png))
	}
}

func TestRenderNothingToDraw(t *testing.T) {
	s := &series.Series{
		Metric: "m",
		Scenarios: []series.ScenarioSeries{
			{Scenario: "A", Legend: "A", Points: []series.Point{
				{Devices: 100, Mean: 1, N: 1},
				{Devices: 200, Missing: true},
			}},
		},
	}
	var buf bytes.Buffer
	if err := plot.Render(s, plotCfg, &buf); err == nil {
		t.Error("expected error when no scenario has two drawable points")
	}
}
