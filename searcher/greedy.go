// Package searcher builds decision trees over a gusher graph: a fast greedy
// pass and a memoized search for the optimal narrow strategy.
package searcher

import (
	"math"

	"github.com/samber/lo"

	"goldie/gusher"
	"goldie/strategy"
)

// Greedy builds a decision tree in a single pass: at every level it opens the
// gusher with the lowest penalty, breaking ties toward the one whose degree
// best balances the two branches. Deterministic and fast, but not guaranteed
// optimal. The returned tree has its costs scored against g.
func Greedy(g *gusher.Graph) *strategy.Node {
	root := greedy(g, g.Vertices())
	if root != nil {
		root.ScoreTree(g, strategy.BasketLabel)
	}
	return root
}

func greedy(g *gusher.Graph, subset []string) *strategy.Node {
	n := len(subset)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return strategy.NewNode(subset[0], g, true)
	}

	pivot := greedyPivot(g, subset)
	adj, nonAdj := gusher.Split(g, subset, pivot)
	high := greedy(g, adj)
	low := greedy(g, nonAdj)

	root := strategy.NewNode(pivot, g, true)
	root.AddChildren(high, low, 1, 1)
	root.Obj = float64(n-1)*g.Penalty(pivot) + objective(high) + objective(low)
	return root
}

// greedyPivot picks the lowest-penalty gusher in subset, preferring the one
// whose degree within the subset is closest to half the subset's size.
func greedyPivot(g *gusher.Graph, subset []string) string {
	minPenalty := math.Inf(1)
	for _, v := range subset {
		minPenalty = math.Min(minPenalty, g.Penalty(v))
	}
	candidates := lo.Filter(subset, func(v string, _ int) bool {
		return g.Penalty(v) == minPenalty
	})

	half := float64(len(subset)) / 2
	return lo.MinBy(candidates, func(a, b string) bool {
		balanceA := math.Abs(float64(g.DegreeWithin(a, subset)) - half)
		balanceB := math.Abs(float64(g.DegreeWithin(b, subset)) - half)
		return balanceA < balanceB
	})
}

func objective(n *strategy.Node) float64 {
	if n == nil {
		return 0
	}
	return n.Obj
}

// Objective computes the objective score of an existing tree under g: each
// node is charged its penalty for every findable gusher in its subtree that it
// does not immediately resolve.
func Objective(g *gusher.Graph, root *strategy.Node) float64 {
	if root == nil {
		return 0
	}
	return float64(root.Size-1)*g.Penalty(root.Name) +
		Objective(g, root.High) + Objective(g, root.Low)
}
