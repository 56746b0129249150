package calc

import (
	"io"
	"math"
	"strings"
)

// Eval evaluates the expression. Evaluation cannot fail; division by zero and
// similar operations produce infinities and NaN following IEEE 754.
func (e *Expr) Eval() float64 {
	return e.n.eval()
}

// eval computes the node's value.
func (n *node) eval() float64 {
	switch n.kind {
	case nodeNum:
		return n.num
	case nodeNeg:
		return -n.left.eval()
	case nodeNop:
		return n.left.eval()
	case nodeAdd:
		return n.left.eval() + n.right.eval()
	case nodeSub:
		return n.left.eval() - n.right.eval()
	case nodeMul:
		return n.left.eval() * n.right.eval()
	case nodeDiv:
		return n.left.eval() / n.right.eval()
	case nodeRem:
		// The result has the sign of the dividend; x%0 and inf%y are NaN.
		return math.Mod(n.left.eval(), n.right.eval())
	default:
		panic("calc: invalid AST node " + n.kind.String())
	}
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return a.Eval(), nil
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}
