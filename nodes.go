package calc

import (
	"strings"
)

// node is a node in the syntax tree of an expression.
type node struct {
	kind nodeKind

	// text and num are the literal and its value for nodeNum.
	text string
	num  float64

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // literal num

	nodeNeg // evaluate left, then negate
	nodeNop // evaluate left
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodeRem // evaluate left, remainder by right
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

// fmt writes n with every subexpression bracketed, alternating round and
// square brackets by depth.
func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b, !square)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b, !square)
		}
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(n.text)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	case nodeNop:
		b.WriteByte('+')
		n.left.fmt(b, !square)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeRem:
		n.left.fmt(b, !square)
		b.WriteString(binopstrs[n.kind])
		n.right.fmt(b, !square)
	default:
		panic("calc: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

var binopstrs = [...]string{
	nodeAdd: " + ",
	nodeSub: " - ",
	nodeMul: " * ",
	nodeDiv: " / ",
	nodeRem: " % ",
}
