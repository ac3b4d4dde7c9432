package strategy

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Validation failures. Builders produce valid trees by construction; Validate
// exists to check hand-written or hand-edited strategies.
var (
	// ErrRepeatedName indicates the same gusher is opened twice on one path.
	ErrRepeatedName = errors.New("strategy: gusher repeated along path")

	// ErrBadParentLink indicates a child whose parent back-reference does not
	// point at its actual parent.
	ErrBadParentLink = errors.New("strategy: inconsistent parent link")

	// ErrBarrenLeaf indicates a leaf where the Goldie can never be found, so a
	// search reaching it cannot terminate successfully.
	ErrBarrenLeaf = errors.New("strategy: non-findable leaf")
)

// Validate checks that the subtree is a well-formed strategy: no gusher is
// opened twice on any root-to-leaf path, parent back-references are consistent,
// and every leaf is findable. It returns nil for a valid tree.
func (n *Node) Validate() error {
	return n.validate(nil)
}

func (n *Node) validate(ancestors []string) error {
	if slices.Contains(ancestors, n.String()) {
		return fmt.Errorf("%w: %s already opened on path %s",
			ErrRepeatedName, n, strings.Join(ancestors, " -> "))
	}

	if n.High == nil && n.Low == nil {
		if !n.Findable {
			return fmt.Errorf("%w: %s after path %s",
				ErrBarrenLeaf, n, strings.Join(ancestors, " -> "))
		}
		return nil
	}

	ancestors = append(ancestors, n.String())
	if n.High != nil {
		if n.High.Parent != n {
			return fmt.Errorf("%w: high child %s of %s records parent %s",
				ErrBadParentLink, n.High, n, n.High.Parent)
		}
		if err := n.High.validate(ancestors); err != nil {
			return err
		}
	}
	if n.Low != nil {
		if n.Low.Parent != n {
			return fmt.Errorf("%w: low child %s of %s records parent %s",
				ErrBadParentLink, n.Low, n, n.Low.Parent)
		}
		if err := n.Low.validate(ancestors); err != nil {
			return err
		}
	}
	return nil
}
