package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/travelroute/dfs"
)

// TestDetectCycles_NilGraph verifies DetectCycles handles nil input without error.
func TestDetectCycles_NilGraph(t *testing.T) {
	has, cycles, err := dfs.DetectCycles(nil)
	assert.NoError(t, err)
	assert.False(t, has)
	assert.Nil(t, cycles)
}

// TestDetectCycles_NoCycle ensures no cycles in a DAG with a shared suffix.
func TestDetectCycles_NoCycle(t *testing.T) {
	g := mustEdges(t,
		[2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"B", "D"},
		[2]string{"C", "G"}, [2]string{"D", "G"},
	)

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.False(t, has)
	assert.Empty(t, cycles)
}

// TestDetectCycles_TwoNodeCycle covers two-node cycle normalization.
func TestDetectCycles_TwoNodeCycle(t *testing.T) {
	g := mustEdges(t, [2]string{"B", "A"}, [2]string{"A", "B"})

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "B", "A"}}, cycles)
}

// TestDetectCycles_Rotation verifies cycles are reported from their minimal vertex.
func TestDetectCycles_Rotation(t *testing.T) {
	g := mustEdges(t, [2]string{"C", "A"}, [2]string{"A", "B"}, [2]string{"B", "C"})

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "B", "C", "A"}}, cycles)
}

// TestDetectCycles_SelfLoop covers a single-vertex cycle.
func TestDetectCycles_SelfLoop(t *testing.T) {
	g := mustEdges(t, [2]string{"W11", "W11"})

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"W11", "W11"}}, cycles)
}

// TestDetectCycles_Multiple verifies deterministic ordering of several cycles.
func TestDetectCycles_Multiple(t *testing.T) {
	g := mustEdges(t,
		[2]string{"X", "Y"}, [2]string{"Y", "X"},
		[2]string{"A", "B"}, [2]string{"B", "A"},
	)

	has, cycles, err := dfs.DetectCycles(g)
	assert.NoError(t, err)
	assert.True(t, has)
	assert.Equal(t, [][]string{{"A", "B", "A"}, {"X", "Y", "X"}}, cycles)
}

func TestMinimalRotation(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, dfs.MinimalRotation([]string{"B", "C", "A"}))
	assert.Equal(t, []string{"A", "A", "B"}, dfs.MinimalRotation([]string{"A", "B", "A"}))
	assert.Empty(t, dfs.MinimalRotation(nil))

	in := []string{"C", "A"}
	_ = dfs.MinimalRotation(in)
	assert.Equal(t, []string{"C", "A"}, in, "input must not be modified")
}
