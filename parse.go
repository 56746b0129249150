package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Expr = Term { ('+' | '-') Term }
// Term = Factor { ('*' | '/' | '%') Factor }
// Factor = '+' Factor | '-' Factor | '(' Expr [ ')' ] | num
// num = ( '0'..'9' | '.' ) { '0'..'9' | '.' }

// Expr is a parsed expression.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// parser holds the state of a single parse. Nothing in it outlives the call
// to Parse, so concurrent parses never share state.
type parser struct {
	*scanner
}

// Parse parses an expression so it can be evaluated. The whole of src must be
// one expression, optionally surrounded by whitespace.
func Parse(src io.RuneScanner) (*Expr, error) {
	p := parser{scan(src)}
	p.advance()
	n, err := p.parseexpr()
	if p.err != nil {
		// A failed read looks like the end of input, so the syntax error is
		// not meaningful.
		return nil, p.err
	}
	if err != nil {
		return nil, err
	}
	if p.r != EOF {
		return nil, p.unexpected(true)
	}
	return &Expr{n: n}, nil
}

// ParseString is a shortcut to parse a string expression.
func ParseString(src string) (*Expr, error) {
	return Parse(strings.NewReader(src))
}

// parseexpr parses a sum of terms.
func (p *parser) parseexpr() (*node, error) {
	n, err := p.parseterm()
	if err != nil {
		return nil, err
	}
	for {
		var kind nodeKind
		switch {
		case p.eat('+'):
			kind = nodeAdd
		case p.eat('-'):
			kind = nodeSub
		default:
			return n, nil
		}
		rhs, err := p.parseterm()
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

// parseterm parses a product of factors.
func (p *parser) parseterm() (*node, error) {
	n, err := p.parsefactor()
	if err != nil {
		return nil, err
	}
	for {
		var kind nodeKind
		switch {
		case p.eat('*'):
			kind = nodeMul
		case p.eat('/'):
			kind = nodeDiv
		case p.eat('%'):
			kind = nodeRem
		default:
			return n, nil
		}
		rhs, err := p.parsefactor()
		if err != nil {
			return nil, err
		}
		n = &node{kind: kind, left: n, right: rhs}
	}
}

// parsefactor parses a unary operation, a parenthesized expression, or a
// number.
func (p *parser) parsefactor() (*node, error) {
	switch {
	case p.eat('+'):
		rhs, err := p.parsefactor()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNop, left: rhs}, nil
	case p.eat('-'):
		rhs, err := p.parsefactor()
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNeg, left: rhs}, nil
	case p.eat('('):
		n, err := p.parseexpr()
		if err != nil {
			return nil, err
		}
		// A missing close parenthesis is allowed.
		p.eat(')')
		return n, nil
	case p.isnum():
		return p.parsenum()
	default:
		return nil, p.unexpected(false)
	}
}

// parsenum scans a number literal and converts it. Literals too large or
// too small for a float64 become infinities or zeros rather than errors.
func (p *parser) parsenum() (*node, error) {
	col := p.col
	text := p.scanNum()
	x, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, &MalformedNumberError{Col: col, Text: text, Err: err}
	}
	return &node{kind: nodeNum, text: text, num: x}, nil
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	return e.n.String()
}
