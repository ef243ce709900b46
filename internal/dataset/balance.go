package dataset

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// ErrEmptyStratum reports that the reference stratum used to derive the
// per-stratum cap is empty. That indicates a misconfigured target or
// method, not a legitimately sparse dataset, so balancing stops instead
// of silently emptying every stratum.
var ErrEmptyStratum = errors.New("empty reference stratum")

// BalanceClasses bounds the class imbalance of a classification
// dataset. Records are partitioned by Result; the per-stratum cap is
// half the failure count of the reference (largest vehicle count)
// stratum. In both groups, every stratum larger than the cap is reduced
// to exactly cap records drawn uniformly without replacement; smaller
// strata pass through unchanged.
func BalanceClasses(records []Record, refVehicles int, rng *rand.Rand) ([]Record, error) {
	var fail, success []Record
	for _, r := range records {
		if r.Result == ResultFail {
			fail = append(fail, r)
		} else {
			success = append(success, r)
		}
	}

	ref := 0
	for _, r := range fail {
		if r.VehicleCount == refVehicles {
			ref++
		}
	}
	size := ref / 2
	if size == 0 {
		return nil, fmt.Errorf("%w: no failed records at %d vehicles", ErrEmptyStratum, refVehicles)
	}

	balanced := capStrata(fail, size, rng)
	balanced = append(balanced, capStrata(success, size, rng)...)
	return balanced, nil
}

// BalanceSuccessOnly prepares a regression dataset: failed tasks are
// discarded entirely, and the surviving strata are capped at a third of
// the reference stratum's surviving count.
func BalanceSuccessOnly(records []Record, refVehicles int, rng *rand.Rand) ([]Record, error) {
	var success []Record
	for _, r := range records {
		if r.Result == ResultSuccess {
			success = append(success, r)
		}
	}

	ref := 0
	for _, r := range success {
		if r.VehicleCount == refVehicles {
			ref++
		}
	}
	size := ref / 3
	if size == 0 {
		return nil, fmt.Errorf("%w: no successful records at %d vehicles", ErrEmptyStratum, refVehicles)
	}

	return capStrata(success, size, rng), nil
}

// capStrata applies the cap-or-keep-all rule per stratum. Output strata
// are emitted in ascending key order; a sampled stratum keeps its
// records in original relative order, so an under-cap stratum is
// returned exactly as it came in.
func capStrata(records []Record, size int, rng *rand.Rand) []Record {
	strata := make(map[int][]Record)
	for _, r := range records {
		strata[r.VehicleCount] = append(strata[r.VehicleCount], r)
	}
	keys := make([]int, 0, len(strata))
	for k := range strata {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var out []Record
	for _, k := range keys {
		group := strata[k]
		if len(group) < size {
			out = append(out, group...)
			continue
		}
		indexes := rng.Perm(len(group))[:size]
		sort.Ints(indexes)
		for _, i := range indexes {
			out = append(out, group[i])
		}
	}
	return out
}
