package dataset_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/edgesim/simreport/internal/dataset"
)

// makeRecords builds n records in one stratum with the given result,
// each carrying a unique TaskLength so sampled outputs can be compared.
func makeRecords(n, vehicles int, result string) []dataset.Record {
	records := make([]dataset.Record, n)
	for i := range records {
		records[i] = dataset.Record{
			Fields:       map[string]float64{"TaskLength": float64(i)},
			Decision:     "EDGE",
			Result:       result,
			VehicleCount: vehicles,
		}
	}
	return records
}

func strataSizes(records []dataset.Record, result string) map[int]int {
	sizes := map[int]int{}
	for _, r := range records {
		if r.Result == result {
			sizes[r.VehicleCount]++
		}
	}
	return sizes
}

func TestBalanceClasses(t *testing.T) {
	var records []dataset.Record
	records = append(records, makeRecords(10, 200, dataset.ResultFail)...) // reference: size = 10/2 = 5
	records = append(records, makeRecords(20, 100, dataset.ResultFail)...)
	records = append(records, makeRecords(3, 100, dataset.ResultSuccess)...) // below cap
	records = append(records, makeRecords(40, 200, dataset.ResultSuccess)...)

	out, err := dataset.BalanceClasses(records, 200, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("BalanceClasses: %v", err)
	}

	fail := strataSizes(out, dataset.ResultFail)
	success := strataSizes(out, dataset.ResultSuccess)
	if fail[100] != 5 || fail[200] != 5 {
		t.Errorf("fail strata: got %v, want 5 each", fail)
	}
	if success[200] != 5 {
		t.Errorf("success stratum 200: got %d, want 5", success[200])
	}
	if success[100] != 3 {
		t.Errorf("below-cap stratum must pass through: got %d, want 3", success[100])
	}
}

func TestBalanceIdentityBelowCap(t *testing.T) {
	var records []dataset.Record
	records = append(records, makeRecords(10, 200, dataset.ResultFail)...)
	small := makeRecords(4, 100, dataset.ResultSuccess)
	records = append(records, small...)

	out, err := dataset.BalanceClasses(records, 200, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("BalanceClasses: %v", err)
	}

	var got []dataset.Record
	for _, r := range out {
		if r.Result == dataset.ResultSuccess {
			got = append(got, r)
		}
	}
	if len(got) != len(small) {
		t.Fatalf("expected identity, got %d records want %d", len(got), len(small))
	}
	for i := range got {
		if got[i].Fields["TaskLength"] != small[i].Fields["TaskLength"] {
			t.Errorf("record %d reordered or replaced: %v", i, got[i].Fields)
		}
	}
}

func TestBalanceNeverGrowsStrata(t *testing.T) {
	var records []dataset.Record
	for _, n := range []int{100, 200, 300} {
		records = append(records, makeRecords(7+n/100, n, dataset.ResultFail)...)
		records = append(records, makeRecords(30, n, dataset.ResultSuccess)...)
	}
	before := strataSizes(records, dataset.ResultSuccess)

	out, err := dataset.BalanceClasses(records, 300, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("BalanceClasses: %v", err)
	}
	after := strataSizes(out, dataset.ResultSuccess)
	for vehicles, n := range after {
		if n > before[vehicles] {
			t.Errorf("stratum %d grew: %d -> %d", vehicles, before[vehicles], n)
		}
	}
}

func TestBalanceReproducible(t *testing.T) {
	var records []dataset.Record
	records = append(records, makeRecords(10, 200, dataset.ResultFail)...)
	records = append(records, makeRecords(50, 100, dataset.ResultSuccess)...)

	a, err := dataset.BalanceClasses(records, 200, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := dataset.BalanceClasses(records, 200, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}
	if fmt.Sprint(a) != fmt.Sprint(b) {
		t.Error("same seed must produce the same sample")
	}
}

func TestBalanceEmptyReferenceStratum(t *testing.T) {
	records := makeRecords(50, 100, dataset.ResultSuccess) // no failures at all
	_, err := dataset.BalanceClasses(records, 200, rand.New(rand.NewSource(1)))
	if !errors.Is(err, dataset.ErrEmptyStratum) {
		t.Errorf("expected ErrEmptyStratum, got %v", err)
	}
}

func TestBalanceSuccessOnly(t *testing.T) {
	var records []dataset.Record
	records = append(records, makeRecords(30, 200, dataset.ResultSuccess)...) // reference: 30/3 = 10
	records = append(records, makeRecords(25, 100, dataset.ResultSuccess)...)
	records = append(records, makeRecords(8, 100, dataset.ResultFail)...)

	out, err := dataset.BalanceSuccessOnly(records, 200, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("BalanceSuccessOnly: %v", err)
	}
	for _, r := range out {
		if r.Result != dataset.ResultSuccess {
			t.Fatal("failure records must be discarded")
		}
	}
	sizes := strataSizes(out, dataset.ResultSuccess)
	if sizes[200] != 10 || sizes[100] != 10 {
		t.Errorf("got strata %v, want 10 each", sizes)
	}
}
