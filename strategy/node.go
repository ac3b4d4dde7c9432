// Package strategy implements binary decision trees for Goldie seeking: each
// node names a gusher to open, the high/low reading there picks the next node.
// It covers the tree structure itself, cost propagation, validation, the
// compact text notation, and human-readable reports.
package strategy

import (
	"fmt"

	"github.com/samber/lo"
)

// NeverFindMark flags a gusher that is opened solely for information; the
// Goldie is never found there. It is appended to the node name in the text
// notation and is reserved (not a valid name character).
const NeverFindMark = "*"

// BasketLabel is the distinguished start location travel is measured from.
const BasketLabel = "@"

// GraphModel is the layout contract the tree core consumes. Distances are
// symmetric and non-negative; implementations may include the basket label in
// distance queries. *gusher.Graph satisfies it.
type GraphModel interface {
	Vertices() []string
	Adjacent(u, v string) bool
	Penalty(v string) float64
	Distance(u, v string) float64
}

// Node is one gusher in a decision tree. High and Low are owned by the node
// and write-once; Parent is a back-reference maintained by AddChildren.
type Node struct {
	Name     string
	Findable bool
	High     *Node
	Low      *Node
	Parent   *Node

	// Distance is the travel cost from Parent (1 until a graph resolves it).
	Distance float64
	// Weight is the risk multiplier of this gusher.
	Weight float64
	// Size counts findable nodes in this subtree, including self if findable.
	Size int
	// Latency is the travel cost from the basket to this node along the tree.
	Latency float64
	// TotalLatency sums Latency over findable nodes in this subtree.
	TotalLatency float64
	// Risk is the weighted penalty exposure accrued reaching this node.
	Risk float64
	// TotalRisk sums Risk over findable nodes in this subtree.
	TotalRisk float64
	// Obj is the objective score recorded by the builders.
	Obj float64
}

// NewNode creates a bare node with no children and default costs. The weight
// comes from g when supplied.
func NewNode(name string, g GraphModel, findable bool) *Node {
	n := &Node{
		Name:     name,
		Findable: findable,
		Distance: 1,
		Weight:   1,
	}
	if findable {
		n.Size = 1
	}
	if g != nil {
		n.Weight = g.Penalty(name)
	}
	return n
}

// String renders the node name with the never-find mark when applicable.
func (n *Node) String() string {
	if !n.Findable {
		return n.Name + NeverFindMark
	}
	return n.Name
}

// AddChildren attaches pre-built, parentless subtrees as the high and low
// branches with the given travel distances, then recomputes this node's
// aggregates bottom-up. Either subtree may be nil. Attaching over an occupied
// slot, or attaching a subtree that already has a parent, is a caller error
// and panics.
func (n *Node) AddChildren(high, low *Node, distHigh, distLow float64) {
	if high != nil {
		if n.High != nil {
			panic(fmt.Sprintf("gusher %s already has high child %s", n, n.High))
		}
		if high.Parent != nil {
			panic(fmt.Sprintf("gusher %s already has parent %s", high, high.Parent))
		}
		n.High = high
		high.Parent = n
		high.Distance = distHigh
	}
	if low != nil {
		if n.Low != nil {
			panic(fmt.Sprintf("gusher %s already has low child %s", n, n.Low))
		}
		if low.Parent != nil {
			panic(fmt.Sprintf("gusher %s already has parent %s", low, low.Parent))
		}
		n.Low = low
		low.Parent = n
		low.Distance = distLow
	}
	n.aggregate()
}

// Nodes returns the subtree in preorder (self, high branch, low branch).
func (n *Node) Nodes() []*Node {
	nodes := []*Node{n}
	if n.High != nil {
		nodes = append(nodes, n.High.Nodes()...)
	}
	if n.Low != nil {
		nodes = append(nodes, n.Low.Nodes()...)
	}
	return nodes
}

// FindableNodes returns the preorder subtree restricted to findable nodes.
func (n *Node) FindableNodes() []*Node {
	return lo.Filter(n.Nodes(), func(m *Node, _ int) bool {
		return m.Findable
	})
}

// Equal reports whether two nodes open the same gusher with the same weight
// and findability. A nil other is never equal.
func (n *Node) Equal(other *Node) bool {
	if other == nil {
		return false
	}
	return n.Name == other.Name && n.Weight == other.Weight && n.Findable == other.Findable
}

// SameTree reports whether two subtrees have the same shape with Equal nodes
// throughout.
func (n *Node) SameTree(other *Node) bool {
	if !n.Equal(other) {
		return false
	}
	sameHigh := other.High == nil
	if n.High != nil {
		sameHigh = n.High.SameTree(other.High)
	}
	sameLow := other.Low == nil
	if n.Low != nil {
		sameLow = n.Low.SameTree(other.Low)
	}
	return sameHigh && sameLow
}

// Clone deep-copies the subtree into an independently owned tree. Cost fields
// are preserved on the root only; run ScoreTree on the copy before reading
// costs of inner nodes.
func (n *Node) Clone() *Node {
	clone := n.cloneStructure()
	clone.Size = n.Size
	clone.Distance = n.Distance
	clone.Latency = n.Latency
	clone.TotalLatency = n.TotalLatency
	clone.Weight = n.Weight
	clone.Risk = n.Risk
	clone.TotalRisk = n.TotalRisk
	clone.Obj = n.Obj
	return clone
}

func (n *Node) cloneStructure() *Node {
	clone := NewNode(n.Name, nil, n.Findable)
	if n.High != nil {
		clone.High = n.High.cloneStructure()
		clone.High.Parent = clone
	}
	if n.Low != nil {
		clone.Low = n.Low.cloneStructure()
		clone.Low.Parent = clone
	}
	return clone
}
