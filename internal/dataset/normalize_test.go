package dataset_test

import (
	"errors"
	"math"
	"testing"

	"github.com/edgesim/simreport/internal/dataset"
)

func TestNormalize(t *testing.T) {
	records := make([]dataset.Record, 6)
	for i := range records {
		records[i] = dataset.Record{
			Fields: map[string]float64{
				"TaskLength":  float64(i * 100),
				"ServiceTime": float64(i) + 0.5,
			},
			Result: dataset.ResultSuccess,
		}
	}
	columns := []string{"TaskLength", "ServiceTime", "Result"}
	if err := dataset.Normalize(records, columns); err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	// normalized column has mean 0 and sample std dev 1
	var sum float64
	for _, r := range records {
		sum += r.Fields["TaskLength"]
	}
	mean := sum / float64(len(records))
	if math.Abs(mean) > 1e-9 {
		t.Errorf("normalized mean: got %g, want 0", mean)
	}
	var sumSq float64
	for _, r := range records {
		d := r.Fields["TaskLength"] - mean
		sumSq += d * d
	}
	sd := math.Sqrt(sumSq / float64(len(records)-1))
	if math.Abs(sd-1) > 1e-9 {
		t.Errorf("normalized std: got %g, want 1", sd)
	}

	// the regression target keeps its original units
	if records[0].Fields["ServiceTime"] != 0.5 {
		t.Errorf("ServiceTime must not be normalized, got %g", records[0].Fields["ServiceTime"])
	}
}

func TestNormalizeZeroStdDev(t *testing.T) {
	records := []dataset.Record{
		{Fields: map[string]float64{"TaskLength": 3}},
		{Fields: map[string]float64{"TaskLength": 3}},
	}
	err := dataset.Normalize(records, []string{"TaskLength"})
	if !errors.Is(err, dataset.ErrZeroStdDev) {
		t.Errorf("expected ErrZeroStdDev, got %v", err)
	}
}

func TestDescribe(t *testing.T) {
	records := []dataset.Record{
		{Fields: map[string]float64{"TaskLength": 10}, Result: dataset.ResultFail},
		{Fields: map[string]float64{"TaskLength": 20}, Result: dataset.ResultSuccess},
		{Fields: map[string]float64{"TaskLength": 30}, Result: dataset.ResultSuccess},
	}
	stats := dataset.Describe(records, []string{"TaskLength", "Result"})
	if len(stats) != 1 {
		t.Fatalf("expected 1 column (Result skipped), got %d", len(stats))
	}
	s := stats[0]
	if s.Count != 3 || s.Mean != 20 || s.Min != 10 || s.Max != 30 {
		t.Errorf("unexpected stats: %+v", s)
	}
	if math.Abs(s.Std-10) > 1e-9 {
		t.Errorf("std: got %g, want 10", s.Std)
	}
}
