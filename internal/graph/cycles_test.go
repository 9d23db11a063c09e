package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mabhi256/jlint/internal/model"
)

func TestDetectCyclesThreeNodeRing(t *testing.T) {
	classes := []*model.ClassModel{
		class("A", field("b", "B")),
		class("B", method("c", "C")),
		class("C", extends("A")),
	}

	cycles := DetectCycles(Classify(classes))

	require.Len(t, cycles, 1)
	assert.Equal(t, Cycle{"A", "B", "C", "A"}, cycles[0])
	assert.Equal(t, "A -> B -> C -> A", cycles[0].String())
	assert.Equal(t, "A", cycles[0].Start())
}

func TestDetectCyclesAcyclic(t *testing.T) {
	classes := []*model.ClassModel{
		class("A", field("b", "B"), field("c", "C")),
		class("B", field("c", "C")),
		class("C"),
	}

	assert.Empty(t, DetectCycles(Classify(classes)))
}

func TestDetectCyclesDisconnectedComponents(t *testing.T) {
	classes := []*model.ClassModel{
		class("A", field("b", "B")),
		class("B", field("c", "C")),
		class("C", field("a", "A")),
		class("D", field("e", "E")),
		class("E", field("d", "D")),
	}

	cycles := DetectCycles(Classify(classes))

	require.Len(t, cycles, 2)
	assert.Equal(t, Cycle{"A", "B", "C", "A"}, cycles[0])
	assert.Equal(t, Cycle{"D", "E", "D"}, cycles[1])
}

func TestDetectCyclesSharedNodes(t *testing.T) {
	// A -> B -> A and A -> C -> A share A; each back edge is reported once
	classes := []*model.ClassModel{
		class("A", field("b", "B"), field("c", "C")),
		class("B", field("a", "A")),
		class("C", field("a", "A")),
	}

	cycles := DetectCycles(Classify(classes))

	require.Len(t, cycles, 2)
	assert.Equal(t, Cycle{"A", "B", "A"}, cycles[0])
	assert.Equal(t, Cycle{"A", "C", "A"}, cycles[1])
}

func TestDetectCyclesResolvedSubgraphIsNotRevisited(t *testing.T) {
	// B <-> C is found from A; starting again from B must not report it twice
	classes := []*model.ClassModel{
		class("A", field("b", "B")),
		class("B", field("c", "C")),
		class("C", field("b", "B")),
		class("D", field("b", "B")),
	}

	cycles := DetectCycles(Classify(classes))

	require.Len(t, cycles, 1)
	assert.Equal(t, Cycle{"B", "C", "B"}, cycles[0])
}

func TestDetectCyclesIsRepeatable(t *testing.T) {
	classes := []*model.ClassModel{
		class("A", field("b", "B")),
		class("B", field("a", "A")),
	}
	detector := NewCycleDetector(Classify(classes))

	first := detector.Detect()
	second := detector.Detect()

	assert.Equal(t, first, second)
}
