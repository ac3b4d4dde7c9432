package strategy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParse indicates input that does not match the tree notation.
var ErrParse = errors.New("strategy: malformed tree notation")

// Parse reads the compact notation of Write and builds the corresponding tree.
// "V(H, L)" is the tree rooted at V with high subtree H and low subtree L;
// either subtree may be empty, and a leaf omits the parentheses. A trailing
// NeverFindMark on a name marks the gusher as opened solely for information.
// Weights and inter-node distances are resolved through g when supplied. The
// returned tree has all costs refreshed and scored, ready for querying.
func Parse(input string, g GraphModel) (*Node, error) {
	p := &parser{input: input}
	root, err := p.tree(g)
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("%w: trailing input %q", ErrParse, p.input[p.pos:])
	}
	root.ScoreTree(g, BasketLabel)
	return root, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) tree(g GraphModel) (*Node, error) {
	name, findable, err := p.name()
	if err != nil {
		return nil, err
	}
	root := NewNode(name, g, findable)

	p.skipSpace()
	if p.peek() != '(' {
		return root, nil
	}
	p.pos++

	var high, low *Node
	p.skipSpace()
	if p.peek() != ',' {
		if high, err = p.tree(g); err != nil {
			return nil, err
		}
	}
	if err := p.expect(','); err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.peek() != ')' {
		if low, err = p.tree(g); err != nil {
			return nil, err
		}
	}
	if err := p.expect(')'); err != nil {
		return nil, err
	}

	if high == nil && low == nil {
		return root, nil
	}
	distHigh, distLow := 1.0, 1.0
	if g != nil {
		if high != nil {
			distHigh = g.Distance(name, high.Name)
		}
		if low != nil {
			distLow = g.Distance(name, low.Name)
		}
	}
	root.AddChildren(high, low, distHigh, distLow)
	return root, nil
}

// name consumes a run of word characters plus an optional NeverFindMark.
func (p *parser) name() (string, bool, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) && isWordChar(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", false, fmt.Errorf("%w: expected gusher name at %q", ErrParse, p.input[start:])
	}
	name := p.input[start:p.pos]
	findable := true
	if p.pos < len(p.input) && strings.HasPrefix(p.input[p.pos:], NeverFindMark) {
		findable = false
		p.pos++
	}
	return name, findable, nil
}

func (p *parser) expect(c byte) error {
	p.skipSpace()
	if p.peek() != c {
		return fmt.Errorf("%w: expected %q at %q", ErrParse, string(c), p.input[p.pos:])
	}
	p.pos++
	return nil
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}
