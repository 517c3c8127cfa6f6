package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolate/lattice"
	"github.com/katalvlaran/percolate/percolation"
	"github.com/katalvlaran/percolate/render"
)

// snapshotOf opens sites on a fresh n×n model and snapshots it.
func snapshotOf(t *testing.T, n int, sites ...[2]int) percolation.Snapshot {
	t.Helper()
	m, err := percolation.New(n)
	require.NoError(t, err)
	for _, s := range sites {
		require.NoError(t, m.Open(s[0], s[1]))
	}

	return m.Snapshot()
}

// TestGrid_Plain draws every state without styling.
func TestGrid_Plain(t *testing.T) {
	s := snapshotOf(t, 3, [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 0})
	want := "■ ● ■\n" +
		"■ ● ■\n" +
		"□ ■ ■"
	assert.Equal(t, want, render.Grid(s, render.PlainStyles(), nil))

	// An unstyled cursor changes nothing.
	assert.Equal(t, want, render.Grid(s, render.PlainStyles(), &lattice.Site{Row: 1, Col: 1}))
}

// TestStatus covers pluralisation and both verdicts.
func TestStatus(t *testing.T) {
	assert.Equal(t, "0 open sites, does not percolate", render.Status(snapshotOf(t, 2)))
	assert.Equal(t, "1 open site, percolates", render.Status(snapshotOf(t, 1, [2]int{0, 0})))
	assert.Equal(t, "2 open sites, percolates", render.Status(snapshotOf(t, 2, [2]int{0, 1}, [2]int{1, 1})))
}

// TestFrame stacks grid, blank line and status.
func TestFrame(t *testing.T) {
	s := snapshotOf(t, 2, [2]int{0, 0})
	want := "● ■\n" +
		"■ ■\n" +
		"\n" +
		"1 open site, does not percolate"
	assert.Equal(t, want, render.Frame(s, render.PlainStyles(), nil))
}
