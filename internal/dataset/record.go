// Package dataset builds a balanced, normalized training dataset from
// raw per-task simulation records: filter by offload decision, cap the
// per-stratum class sizes by uniform subsampling, then z-score the
// feature columns.
package dataset

import "fmt"

// Record is one simulated task. Fields holds the numeric columns of the
// learner output file; Decision and Result are the two categorical
// columns; VehicleCount is the stratum key (device count at capture).
type Record struct {
	Fields       map[string]float64
	Decision     string
	Result       string
	VehicleCount int
}

const (
	ResultFail    = "fail"
	ResultSuccess = "success"

	// ServiceTime is the regression target and must stay in original
	// units through normalization.
	serviceTimeColumn = "ServiceTime"
	resultColumn      = "Result"
)

// Target selects which execution tier's decisions the dataset is built
// for.
type Target string

const (
	TargetEdge     Target = "edge"
	TargetCloudRSU Target = "cloud_rsu"
	TargetCloudGSM Target = "cloud_gsm"
)

// Method selects the column set: categorical outcome for classifiers,
// service time for regressors.
type Method string

const (
	MethodClassifier Method = "classifier"
	MethodRegression Method = "regression"
)

// Split selects the iteration range a dataset is built from.
type Split string

const (
	SplitTrain Split = "train"
	SplitTest  Split = "test"
)

func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case TargetEdge, TargetCloudRSU, TargetCloudGSM:
		return Target(s), nil
	}
	return "", fmt.Errorf("unknown target %q (want edge, cloud_rsu or cloud_gsm)", s)
}

func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodClassifier, MethodRegression:
		return Method(s), nil
	}
	return "", fmt.Errorf("unknown method %q (want classifier or regression)", s)
}

func ParseSplit(s string) (Split, error) {
	switch Split(s) {
	case SplitTrain, SplitTest:
		return Split(s), nil
	}
	return "", fmt.Errorf("unknown split %q (want train or test)", s)
}

// DecisionLabel is the value of the decision column for tasks routed to
// the target's tier.
func (t Target) DecisionLabel() string {
	switch t {
	case TargetEdge:
		return "EDGE"
	case TargetCloudRSU:
		return "CLOUD_VIA_RSU"
	case TargetCloudGSM:
		return "CLOUD_VIA_GSM"
	}
	return ""
}

// Columns returns the ordered attribute list for a (target, method)
// combination.
func Columns(t Target, m Method) []string {
	if m == MethodClassifier {
		switch t {
		case TargetEdge:
			return []string{"NumOffloadedTask", "TaskLength", "WLANUploadDelay", "WLANDownloadDelay", "AvgEdgeUtilization", "Result"}
		case TargetCloudRSU:
			return []string{"NumOffloadedTask", "WANUploadDelay", "WANDownloadDelay", "Result"}
		case TargetCloudGSM:
			return []string{"NumOffloadedTask", "GSMUploadDelay", "GSMDownloadDelay", "Result"}
		}
	}
	switch t {
	case TargetEdge:
		return []string{"TaskLength", "AvgEdgeUtilization", "ServiceTime"}
	case TargetCloudRSU:
		return []string{"TaskLength", "WANUploadDelay", "WANDownloadDelay", "ServiceTime"}
	case TargetCloudGSM:
		return []string{"TaskLength", "GSMUploadDelay", "GSMDownloadDelay", "ServiceTime"}
	}
	return nil
}
