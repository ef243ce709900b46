// Package logtable loads scalar metric values from per-run simulation
// logs into a fixed three-axis table (iteration × scenario × device
// count). A cell is either a valid scalar or explicitly missing; missing
// never collapses to zero.
package logtable

// Cell is one table entry. Valid is false when the source file was
// absent or the row could not be parsed.
type Cell struct {
	Value float64
	Valid bool
}

// Table holds per-iteration samples for every (scenario, device count)
// position. Axes are fixed at construction and never resized.
type Table struct {
	Scenarios []string
	Devices   []int
	cells     [][][]Cell // [iteration][scenario][device]
}

func NewTable(iterations int, scenarios []string, devices []int) *Table {
	cells := make([][][]Cell, iterations)
	for i := range cells {
		cells[i] = make([][]Cell, len(scenarios))
		for s := range cells[i] {
			cells[i][s] = make([]Cell, len(devices))
		}
	}
	return &Table{
		Scenarios: scenarios,
		Devices:   devices,
		cells:     cells,
	}
}

func (t *Table) Iterations() int { return len(t.cells) }

// Set records a valid sample. Iteration is 1-based, matching the ite<N>
// result folders.
func (t *Table) Set(iteration, scenario, device int, value float64) {
	t.cells[iteration-1][scenario][device] = Cell{Value: value, Valid: true}
}

// SetMissing marks a cell as explicitly missing.
func (t *Table) SetMissing(iteration, scenario, device int) {
	t.cells[iteration-1][scenario][device] = Cell{}
}

// Samples returns the per-iteration cells at one (scenario, device
// count) position.
func (t *Table) Samples(scenario, device int) []Cell {
	samples := make([]Cell, len(t.cells))
	for i := range t.cells {
		samples[i] = t.cells[i][scenario][device]
	}
	return samples
}
