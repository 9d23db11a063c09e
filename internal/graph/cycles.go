package graph

import "strings"

type visitState uint8

const (
	unvisited visitState = iota
	onStack
	resolved
)

// Cycle is a closed path of class names; the last element repeats the first
type Cycle []string

func (c Cycle) String() string {
	return strings.Join(c, " -> ")
}

// Start returns the class at which the cycle was closed
func (c Cycle) Start() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// CycleDetector finds cycles in a relationship matrix. Any non-NONE entry is an edge.
//
// Each class is explored as a root at most once. Reaching a class that is already on
// the current path reports one cycle and returns without descending; the remaining
// edges of earlier classes are still explored. A fully explored class is resolved and
// never entered again.
type CycleDetector struct {
	matrix *Matrix
	state  []visitState
	path   []int
	cycles []Cycle
}

func NewCycleDetector(matrix *Matrix) *CycleDetector {
	return &CycleDetector{matrix: matrix}
}

// Detect returns every reported cycle in discovery order, starting roots in the
// order the classes were given to the matrix
func (d *CycleDetector) Detect() []Cycle {
	size := d.matrix.Size()
	d.state = make([]visitState, size)
	d.path = d.path[:0]
	d.cycles = nil

	for root := 0; root < size; root++ {
		if d.state[root] == unvisited {
			d.visit(root)
		}
	}

	return d.cycles
}

func (d *CycleDetector) visit(current int) {
	switch d.state[current] {
	case onStack:
		d.report(current)
		return
	case resolved:
		return
	}

	d.state[current] = onStack
	d.path = append(d.path, current)

	for next := 0; next < d.matrix.Size(); next++ {
		if d.matrix.At(current, next) != NONE {
			d.visit(next)
		}
	}

	d.path = d.path[:len(d.path)-1]
	d.state[current] = resolved
}

func (d *CycleDetector) report(repeated int) {
	start := 0
	for i, idx := range d.path {
		if idx == repeated {
			start = i
			break
		}
	}

	cycle := make(Cycle, 0, len(d.path)-start+1)
	for _, idx := range d.path[start:] {
		cycle = append(cycle, d.matrix.Name(idx))
	}
	cycle = append(cycle, d.matrix.Name(repeated))

	d.cycles = append(d.cycles, cycle)
}

// DetectCycles is a convenience wrapper around CycleDetector
func DetectCycles(matrix *Matrix) []Cycle {
	return NewCycleDetector(matrix).Detect()
}
