package unionfind_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclebasis/unionfind"
)

func TestNew_Singletons(t *testing.T) {
	d := unionfind.New([]string{"A", "B", "C"})

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 3, d.Components())

	// Every element is its own representative.
	for _, e := range []string{"A", "B", "C"} {
		root, ok := d.Find(e)
		require.True(t, ok)
		assert.Equal(t, e, root)
	}

	// An element is connected to itself but to nothing else yet.
	assert.True(t, d.Connected("A", "A"))
	assert.False(t, d.Connected("A", "B"))
}

func TestNew_CollapsesDuplicates(t *testing.T) {
	d := unionfind.New([]string{"A", "A", "B"})
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, 2, d.Components())
}

func TestUnion_Transitivity(t *testing.T) {
	d := unionfind.New([]string{"A", "B", "C", "D"})

	assert.True(t, d.Union("A", "B"))
	assert.True(t, d.Union("C", "D"))
	assert.False(t, d.Connected("A", "C"))
	assert.Equal(t, 2, d.Components())

	// Joining the two pairs connects all four transitively.
	assert.True(t, d.Union("B", "C"))
	assert.True(t, d.Connected("A", "D"))
	assert.Equal(t, 1, d.Components())

	// Re-union of connected elements is a no-op.
	assert.False(t, d.Union("A", "D"))
	assert.Equal(t, 1, d.Components())
}

func TestFind_IdempotentBetweenUnions(t *testing.T) {
	d := unionfind.New([]string{"A", "B", "C"})
	require.True(t, d.Union("A", "B"))

	// Repeated Find calls (with compression running underneath) must keep
	// resolving to the same representative.
	root1, ok := d.Find("A")
	require.True(t, ok)
	root2, ok := d.Find("A")
	require.True(t, ok)
	root3, ok := d.Find("B")
	require.True(t, ok)
	assert.Equal(t, root1, root2)
	assert.Equal(t, root1, root3)
}

func TestUnknownElements(t *testing.T) {
	d := unionfind.New([]string{"A"})

	_, ok := d.Find("X")
	assert.False(t, ok)
	assert.False(t, d.Union("A", "X"))
	assert.False(t, d.Union("X", "Y"))
	assert.False(t, d.Connected("A", "X"))
	assert.False(t, d.Connected("X", "X"))
	assert.Equal(t, 1, d.Components())
}

// TestPartition_MatchesNaiveModel cross-checks a random union sequence
// against a brute-force component labeling.
func TestPartition_MatchesNaiveModel(t *testing.T) {
	const n = 64
	elements := make([]string, n)
	for i := range elements {
		elements[i] = fmt.Sprintf("V%d", i)
	}
	d := unionfind.New(elements)

	// Naive model: label[i] is the component ID; unions relabel.
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}

	r := rand.New(rand.NewSource(7))
	for k := 0; k < 100; k++ {
		i, j := r.Intn(n), r.Intn(n)
		d.Union(elements[i], elements[j])
		if label[i] != label[j] {
			old, next := label[j], label[i]
			for m := range label {
				if label[m] == old {
					label[m] = next
				}
			}
		}
	}

	distinct := make(map[int]struct{})
	for _, l := range label {
		distinct[l] = struct{}{}
	}
	assert.Equal(t, len(distinct), d.Components())

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			assert.Equal(t, label[i] == label[j],
				d.Connected(elements[i], elements[j]),
				"elements %d and %d", i, j)
		}
	}
}

// TestDeepChain verifies that long parent chains resolve without issue;
// the iterative find bounds stack usage regardless of chain length.
func TestDeepChain(t *testing.T) {
	const n = 10000
	elements := make([]string, n)
	for i := range elements {
		elements[i] = fmt.Sprintf("V%d", i)
	}
	d := unionfind.New(elements)
	for i := 1; i < n; i++ {
		d.Union(elements[i-1], elements[i])
	}

	assert.Equal(t, 1, d.Components())
	assert.True(t, d.Connected(elements[0], elements[n-1]))
}
