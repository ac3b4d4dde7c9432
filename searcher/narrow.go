package searcher

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"goldie/gusher"
	"goldie/strategy"
)

// Option adjusts a Narrow build.
type Option func(b *builder)

// WithStart sets the location the lead-in travel distance is measured from.
// Defaults to the basket.
func WithStart(label string) Option {
	return func(b *builder) {
		if label != "" {
			b.start = label
		}
	}
}

// Narrow builds the optimal narrow decision tree for g: the strategy with the
// lowest objective score among those that only ever open gushers that could
// still hold the Goldie. Subsets already solved are memoized by their vertex
// set, so pivot candidates arriving at the same subset along different paths
// reuse the solved subtree. Candidate pivots are tried in lexicographic order
// and ties keep the first minimum, so results are deterministic. The returned
// tree has its costs scored against g.
//
// Wide strategies, which may open a gusher that cannot hold the Goldie purely
// for information, are outside this search space; Narrow is optimal only among
// narrow strategies.
func Narrow(g *gusher.Graph, opts ...Option) *strategy.Node {
	b := &builder{
		graph:  g,
		start:  strategy.BasketLabel,
		solved: make(map[string]solution),
	}
	for _, opt := range opts {
		opt(b)
	}

	root := b.solve(g.Vertices())
	if root != nil {
		root.ScoreTree(g, b.start)
	}
	return root
}

type builder struct {
	graph  *gusher.Graph
	start  string
	solved map[string]solution
}

// solution stores a solved subtree in serialized form rather than as a live
// node, so every memo hit yields an independently owned copy and no two
// branches of the final tree share node identity.
type solution struct {
	tree string
	obj  float64
}

// solve returns an optimal tree covering subset, which must be sorted.
func (b *builder) solve(subset []string) *strategy.Node {
	if len(subset) == 0 {
		return nil
	}
	key := strings.Join(subset, " ")
	if s, ok := b.solved[key]; ok {
		return b.reopen(s)
	}
	if len(subset) == 1 {
		return strategy.NewNode(subset[0], b.graph, true)
	}
	log.Debug().Str("subset", key).Int("solved", len(b.solved)).Msg("solving subgraph")

	n := len(subset)
	var bestHigh, bestLow *strategy.Node
	bestPivot := ""
	bestObj := 0.0
	for _, pivot := range subset {
		adj, nonAdj := gusher.Split(b.graph, subset, pivot)
		high := b.solve(adj)
		low := b.solve(nonAdj)
		obj := float64(n-1)*b.graph.Penalty(pivot) + objective(high) + objective(low)
		if bestPivot == "" || obj < bestObj {
			bestPivot, bestObj = pivot, obj
			bestHigh, bestLow = high, low
		}
	}

	root := strategy.NewNode(bestPivot, b.graph, true)
	root.AddChildren(bestHigh, bestLow, 1, 1)
	root.Obj = bestObj
	log.Debug().Str("pivot", bestPivot).Float64("objective", bestObj).Msg("solved subgraph")

	b.solved[key] = solution{tree: strategy.Write(root), obj: bestObj}
	return root
}

// reopen re-instantiates a memoized subtree as a fresh, parentless copy.
func (b *builder) reopen(s solution) *strategy.Node {
	root, err := strategy.Parse(s.tree, b.graph)
	if err != nil {
		panic(fmt.Sprintf("memoized tree %q does not parse: %v", s.tree, err))
	}
	root.Obj = s.obj
	return root
}
