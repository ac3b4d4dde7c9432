package gusher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGraph(t *testing.T) {
	t.Run("connections are bidirectional", func(t *testing.T) {
		g := New("test")
		g.Connect("a", "b")

		require.True(t, g.Adjacent("a", "b"))
		require.True(t, g.Adjacent("b", "a"))
		require.False(t, g.Adjacent("a", "c"), "unconnected gushers should not be adjacent")
		require.False(t, g.Adjacent("a", "a"), "a gusher should not be adjacent to itself")
	})

	t.Run("vertices are sorted", func(t *testing.T) {
		g := New("test")
		g.Connect("c", "a")
		g.Connect("b", "a")

		require.Equal(t, []string{"a", "b", "c"}, g.Vertices())
		require.Equal(t, 3, g.Len())
	})

	t.Run("penalties default to 1", func(t *testing.T) {
		g := New("test")
		g.AddGusher("a", 2.5)
		g.Connect("a", "b")

		require.Equal(t, 2.5, g.Penalty("a"))
		require.Equal(t, DefaultPenalty, g.Penalty("b"))
		require.Equal(t, DefaultPenalty, g.Penalty("missing"))
	})

	t.Run("distances are symmetric and default to 1", func(t *testing.T) {
		g := New("test")
		g.Connect("a", "b")
		g.SetDistance("a", "b", 3)

		require.Equal(t, 3.0, g.Distance("a", "b"))
		require.Equal(t, 3.0, g.Distance("b", "a"))
		require.Equal(t, DefaultDistance, g.Distance("a", "c"))
	})

	t.Run("degree is counted within the subset", func(t *testing.T) {
		g := New("test")
		g.Connect("a", "b")
		g.Connect("a", "c")
		g.Connect("a", "d")

		require.Equal(t, 3, g.DegreeWithin("a", []string{"a", "b", "c", "d"}))
		require.Equal(t, 1, g.DegreeWithin("a", []string{"b", "x"}))
		require.Equal(t, 0, g.DegreeWithin("b", []string{"c", "d"}))
	})
}

func TestParse(t *testing.T) {
	layout := `
$ Spawning Grounds
$ ab:2 .:1.5
a b c
b c
c d
`

	t.Run("reads name, penalties and adjacency", func(t *testing.T) {
		g, err := Parse(strings.NewReader(layout))

		require.NoError(t, err)
		require.Equal(t, "Spawning Grounds", g.Name())
		require.Equal(t, []string{"a", "b", "c", "d"}, g.Vertices())
		require.True(t, g.Adjacent("a", "b"))
		require.True(t, g.Adjacent("c", "b"))
		require.True(t, g.Adjacent("d", "c"))
		require.False(t, g.Adjacent("a", "d"))
		require.Equal(t, 2.0, g.Penalty("a"), "a is in the ab penalty group")
		require.Equal(t, 2.0, g.Penalty("b"), "b is in the ab penalty group")
		require.Equal(t, 1.5, g.Penalty("c"), "c should get the default penalty")
		require.Equal(t, 1.5, g.Penalty("d"), "d should get the default penalty")
	})

	t.Run("rejects empty layouts", func(t *testing.T) {
		_, err := Parse(strings.NewReader("$ name only\n"))
		require.ErrorIs(t, err, ErrLayout)
	})

	t.Run("rejects malformed penalty entries", func(t *testing.T) {
		_, err := Parse(strings.NewReader("$ name\n$ nocolon\na b\n"))
		require.ErrorIs(t, err, ErrLayout)

		_, err = Parse(strings.NewReader("$ name\n$ a:notanumber\na b\n"))
		require.ErrorIs(t, err, ErrLayout)
	})
}

func TestSplit(t *testing.T) {
	g := New("test")
	g.Connect("a", "b")
	g.Connect("a", "c")
	g.Connect("c", "d")

	t.Run("partitions around the pivot", func(t *testing.T) {
		adj, nonAdj := Split(g, g.Vertices(), "a")

		require.Equal(t, []string{"b", "c"}, adj, "neighbors of the pivot")
		require.Equal(t, []string{"d"}, nonAdj, "non-neighbors, excluding the pivot")
	})

	t.Run("respects the subset", func(t *testing.T) {
		adj, nonAdj := Split(g, []string{"b", "d"}, "a")

		require.Equal(t, []string{"b"}, adj)
		require.Equal(t, []string{"d"}, nonAdj)
	})

	t.Run("isolated pivot puts everything in nonAdj", func(t *testing.T) {
		adj, nonAdj := Split(g, []string{"a", "b"}, "d")

		require.Empty(t, adj)
		require.Equal(t, []string{"a", "b"}, nonAdj)
	})
}
