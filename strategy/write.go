package strategy

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Write renders the subtree in the compact notation read by Parse: "V(H, L)"
// with both branches, "V(H,)" or "V(,L)" with one, a bare name for a leaf.
// Non-findable gushers carry the NeverFindMark suffix.
func Write(root *Node) string {
	switch {
	case root.High != nil && root.Low != nil:
		return fmt.Sprintf("%s(%s, %s)", root, Write(root.High), Write(root.Low))
	case root.High != nil:
		return fmt.Sprintf("%s(%s,)", root, Write(root.High))
	case root.Low != nil:
		return fmt.Sprintf("%s(,%s)", root, Write(root.Low))
	default:
		return root.String()
	}
}

// Instructions renders the strategy as indented human-readable steps. Branching
// subtrees emit an "open" line with high/low continuations; a trivial subtree
// (at most two findable gushers, single branch) collapses to one comma-joined
// line.
func Instructions(root *Node) string {
	return strings.Trim(instructions(root, 0), "\n ")
}

func instructions(n *Node, depth int) string {
	if n.Size <= 2 && (n.High == nil || n.Low == nil) {
		names := lo.Map(n.Nodes(), func(m *Node, _ int) string {
			return m.String()
		})
		return strings.Join(names, ", ") + "\n"
	}

	indent := strings.Repeat("   ", depth)
	var b strings.Builder
	fmt.Fprintf(&b, "open %s\n", n)
	if n.High != nil {
		fmt.Fprintf(&b, "%s%s high --> %s", indent, n, instructions(n.High, depth+1))
	}
	if n.Low != nil {
		fmt.Fprintf(&b, "%s%s low --> %s", indent, n, instructions(n.Low, depth+1))
	}
	return b.String()
}
