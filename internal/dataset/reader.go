package dataset

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/edgesim/simreport/internal/config"
)

// ReadSplit loads every learner output file belonging to the split and
// returns the records routed to the target's tier. The train/test
// boundary is trainRatio percent of the iterations: iteration indexes
// below it are training data, the rest test data. A missing or
// malformed file degrades only its own records.
func ReadSplit(cfg *config.Config, target Target, split Split) ([]Record, error) {
	testStart := float64(cfg.Dataset.TrainRatio) * float64(cfg.Iterations) / 100

	var records []Record
	for ite := 0; ite < cfg.Iterations; ite++ {
		if split == SplitTrain && float64(ite) >= testStart {
			continue
		}
		if split == SplitTest && float64(ite) < testStart {
			continue
		}
		for _, vehicles := range cfg.Devices.Counts() {
			path := filepath.Join(cfg.ResultsDir, fmt.Sprintf("ite%d", ite+1),
				fmt.Sprintf("%d_learnerOutputFile.cvs", vehicles))
			rs, err := readFile(path, vehicles)
			if err != nil {
				log.Printf("warning: %v", err)
				continue
			}
			records = append(records, rs...)
		}
	}

	label := target.DecisionLabel()
	var filtered []Record
	for _, r := range records {
		if r.Decision == label {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func readFile(path string, vehicles int) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("record file not found: %s", path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("no header in %s", path)
	}
	header := rows[0]

	var records []Record
	for i, row := range rows[1:] {
		if len(row) != len(header) {
			log.Printf("warning: %s: row %d has %d fields, want %d", path, i+2, len(row), len(header))
			continue
		}
		rec, err := parseRecord(header, row, vehicles)
		if err != nil {
			log.Printf("warning: %s: row %d: %v", path, i+2, err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRecord(header, row []string, vehicles int) (Record, error) {
	rec := Record{Fields: make(map[string]float64, len(header)), VehicleCount: vehicles}
	for i, name := range header {
		switch name {
		case "Decision":
			rec.Decision = row[i]
		case resultColumn:
			rec.Result = row[i]
		default:
			v, err := strconv.ParseFloat(row[i], 64)
			if err != nil {
				return Record{}, fmt.Errorf("column %s: %q is not a number", name, row[i])
			}
			rec.Fields[name] = v
		}
	}
	return rec, nil
}
