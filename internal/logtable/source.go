package logtable

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrMissingSource reports an absent log file. ErrMalformedRow reports a
// row that does not have the expected shape. Both are recoverable: the
// caller marks the cell missing and continues.
var (
	ErrMissingSource = errors.New("log file not found")
	ErrMalformedRow  = errors.New("malformed log row")
)

// Locator addresses one scalar inside a log file: RowOffset rows are
// skipped, then Col (1-based) is read from the next row.
type Locator struct {
	RowOffset int
	Col       int
}

// Source reads cells of the metric table. Implementations must be safe
// to call repeatedly for the same position; a read never mutates state.
type Source interface {
	// ReadCell returns the scalar at loc for the given iteration,
	// scenario and device count.
	ReadCell(iteration int, scenario string, devices int, loc Locator) (float64, error)
	// ReadBlock returns numRows consecutive rows after skipping
	// skipRows, split into float64 columns. Used when several metrics
	// share one file.
	ReadBlock(iteration int, scenario string, devices int, skipRows, numRows int) ([][]float64, error)
}

// FileSource reads SIMRESULT logs laid out as
// <dir>/ite<N>/SIMRESULT_<SCENARIO>_<DEVICES>DEVICES_<APP_TYPE>_GENERIC.log
// with semicolon-delimited rows and no quoting.
type FileSource struct {
	Dir     string
	AppType string
}

func (f *FileSource) path(iteration int, scenario string, devices int) string {
	name := fmt.Sprintf("SIMRESULT_%s_%dDEVICES_%s_GENERIC.log", scenario, devices, f.AppType)
	return filepath.Join(f.Dir, fmt.Sprintf("ite%d", iteration), name)
}

func (f *FileSource) ReadCell(iteration int, scenario string, devices int, loc Locator) (float64, error) {
	rows, err := readRows(f.path(iteration, scenario, devices), loc.RowOffset, 1)
	if err != nil {
		return 0, err
	}
	row := rows[0]
	if loc.Col > len(row) {
		return 0, fmt.Errorf("%w: %s: row %d has %d columns, want %d",
			ErrMalformedRow, f.path(iteration, scenario, devices), loc.RowOffset+1, len(row), loc.Col)
	}
	return parseField(row[loc.Col-1], f.path(iteration, scenario, devices))
}

func (f *FileSource) ReadBlock(iteration int, scenario string, devices int, skipRows, numRows int) ([][]float64, error) {
	path := f.path(iteration, scenario, devices)
	rows, err := readRows(path, skipRows, numRows)
	if err != nil {
		return nil, err
	}
	block := make([][]float64, len(rows))
	for i, row := range rows {
		block[i] = make([]float64, len(row))
		for j, field := range row {
			v, err := parseField(field, path)
			if err != nil {
				return nil, err
			}
			block[i][j] = v
		}
	}
	return block, nil
}

func readRows(path string, skip, count int) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingSource, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	var rows [][]string
	scanner := bufio.NewScanner(file)
	for line := 0; scanner.Scan(); line++ {
		if line < skip {
			continue
		}
		rows = append(rows, strings.Split(scanner.Text(), ";"))
		if len(rows) == count {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) < count {
		return nil, fmt.Errorf("%w: %s: want %d rows after skipping %d, got %d",
			ErrMalformedRow, path, count, skip, len(rows))
	}
	return rows, nil
}

func parseField(field, path string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not a number", ErrMalformedRow, path, field)
	}
	return v, nil
}
