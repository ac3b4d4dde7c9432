package gusher

import "github.com/samber/lo"

// Split partitions subset around a pivot: adj holds the members adjacent to the
// pivot, nonAdj the members neither adjacent to it nor the pivot itself. The
// two halves are the candidate high and low branches of a decision tree rooted
// at the pivot. Order within subset is preserved.
func Split(g *Graph, subset []string, pivot string) (adj, nonAdj []string) {
	adj = lo.Filter(subset, func(v string, _ int) bool {
		return g.Adjacent(pivot, v)
	})
	nonAdj = lo.Filter(subset, func(v string, _ int) bool {
		return v != pivot && !g.Adjacent(pivot, v)
	})
	return adj, nonAdj
}
