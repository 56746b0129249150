package calc

import (
	"errors"
	"io"
	"strings"
	"unicode"
)

// EOF is the rune the scanner reports past the end of its input.
const EOF rune = -1

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/%"

// scanner is a cursor over an expression with one rune of lookahead.
type scanner struct {
	src io.RuneScanner
	buf strings.Builder
	// r is the current rune, or EOF.
	r rune
	// col is the 1-based position of r in runes. Before the first advance it
	// is 0; at the end of the input it is one past the last rune.
	col int
	// err is the first read error other than io.EOF.
	err error
}

func scan(src io.RuneScanner) *scanner {
	return &scanner{src: src}
}

// advance moves the cursor to the next rune. Once the input is exhausted or
// reading fails, the current rune stays EOF.
func (s *scanner) advance() {
	if s.r == EOF {
		return
	}
	s.col++
	r, _, err := s.src.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			s.err = err
		}
		s.r = EOF
		return
	}
	s.r = r
}

// eat skips whitespace, then consumes the current rune if it is want.
// Reports whether it consumed anything other than whitespace.
func (s *scanner) eat(want rune) bool {
	for s.r != EOF && unicode.IsSpace(s.r) {
		s.advance()
	}
	if s.r != want || want == EOF {
		return false
	}
	s.advance()
	return true
}

// isnum reports whether the current rune can be part of a number literal.
func (s *scanner) isnum() bool {
	return '0' <= s.r && s.r <= '9' || s.r == '.'
}

// scanNum consumes a run of digits and decimal points and returns it. The
// run is not validated here; "1.2.3" is scanned whole.
func (s *scanner) scanNum() string {
	defer s.buf.Reset()
	for s.isnum() {
		s.buf.WriteRune(s.r)
		s.advance()
	}
	return s.buf.String()
}

func (s *scanner) unexpected(trailing bool) error {
	return &UnexpectedCharacterError{
		Col:      s.col,
		Char:     s.r,
		Trailing: trailing,
	}
}
