package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// chain builds a(b(c,),) with explicit distances 2 and 3.
func chain() *Node {
	c := NewNode("c", nil, true)
	b := NewNode("b", nil, true)
	b.AddChildren(c, nil, 3, 1)
	a := NewNode("a", nil, true)
	a.AddChildren(b, nil, 2, 1)
	return a
}

func TestUpdateCosts(t *testing.T) {
	t.Run("without a layout, recorded distances stand", func(t *testing.T) {
		root := chain()
		root.UpdateCosts(nil, BasketLabel)

		require.Equal(t, 0.0, root.Latency, "root latency is 0 without a layout")
		require.Equal(t, 2.0, root.High.Latency)
		require.Equal(t, 5.0, root.High.High.Latency)
		require.Equal(t, 0.0, root.Risk)
		require.Equal(t, 2.0, root.High.Risk, "one predecessor of weight 1 over distance 2")
		require.Equal(t, 8.0, root.High.High.Risk, "2 + two predecessors over distance 3")
	})

	t.Run("layout distances override recorded ones", func(t *testing.T) {
		layout := mockLayout{distances: map[[2]string]float64{
			{BasketLabel, "a"}: 4,
			{"a", "b"}:         2,
			{"b", "c"}:         3,
		}}
		root := chain()
		root.UpdateCosts(layout, BasketLabel)

		require.Equal(t, 4.0, root.Latency, "root latency is the lead-in from the basket")
		require.Equal(t, 6.0, root.High.Latency)
		require.Equal(t, 9.0, root.High.High.Latency)
	})

	t.Run("weights scale risk", func(t *testing.T) {
		layout := mockLayout{penalties: map[string]float64{"a": 2}}
		b := NewNode("b", layout, true)
		a := NewNode("a", layout, true)
		a.AddChildren(b, nil, 3, 1)
		a.UpdateCosts(nil, BasketLabel)

		require.Equal(t, 6.0, b.Risk, "predecessor weight 2 over distance 3")
	})
}

func TestScoreTree(t *testing.T) {
	t.Run("totals are sums over findable nodes", func(t *testing.T) {
		root := chain()
		root.ScoreTree(nil, BasketLabel)

		require.Equal(t, 7.0, root.TotalLatency, "0 + 2 + 5")
		require.Equal(t, 10.0, root.TotalRisk, "0 + 2 + 8")
	})

	t.Run("non-findable nodes do not contribute to totals", func(t *testing.T) {
		g := NewNode("g", nil, false)
		g.AddChildren(NewNode("a", nil, true), NewNode("b", nil, true), 1, 1)
		g.ScoreTree(nil, BasketLabel)

		require.Equal(t, 2.0, g.TotalLatency, "latency of a and b only")
		require.Equal(t, 2, g.Size)
	})

	t.Run("scoring twice yields identical results", func(t *testing.T) {
		layout := mockLayout{distances: map[[2]string]float64{
			{BasketLabel, "a"}: 4,
			{"a", "b"}:         2,
			{"b", "c"}:         3,
		}}
		root := chain()

		root.ScoreTree(layout, BasketLabel)
		firstLatency, firstRisk := root.TotalLatency, root.TotalRisk
		firstNodeLatencies := map[string]float64{}
		for _, n := range root.Nodes() {
			firstNodeLatencies[n.Name] = n.Latency
		}

		root.ScoreTree(layout, BasketLabel)

		require.Equal(t, firstLatency, root.TotalLatency)
		require.Equal(t, firstRisk, root.TotalRisk)
		for _, n := range root.Nodes() {
			require.Equal(t, firstNodeLatencies[n.Name], n.Latency)
		}
	})
}
