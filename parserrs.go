package calc

import "strconv"

// UnexpectedCharacterError is an error indicating a rune that cannot start or
// continue the expression at its position. It implements InputError.
type UnexpectedCharacterError struct {
	// Col is the position of the rune. For EOF it is one past the last rune.
	Col int
	// Char is the rune that was not understood, or EOF if the input ended
	// where a number, unary operator, or open parenthesis was required.
	Char rune
	// Trailing is whether a complete expression had already been parsed, i.e.
	// Char begins leftover input.
	Trailing bool
}

func (err *UnexpectedCharacterError) Error() string {
	if err.Char == EOF {
		return errpos(err.Col, "unexpected end of input")
	}
	msg := "unexpected character " + strconv.QuoteRune(err.Char)
	if err.Trailing {
		msg += " after expression"
	}
	return errpos(err.Col, msg)
}

func (err *UnexpectedCharacterError) Pos() int {
	return err.Col
}

// MalformedNumberError is an error indicating a run of digits and decimal
// points that is not a number, e.g. "1.2.3" or ".". It implements InputError
// and unwraps to the error from strconv.
type MalformedNumberError struct {
	// Col is the position of the first rune of the number.
	Col int
	// Text is the scanned literal.
	Text string
	// Err is the conversion error.
	Err error
}

func (err *MalformedNumberError) Error() string {
	return errpos(err.Col, "malformed number "+strconv.Quote(err.Text))
}

func (err *MalformedNumberError) Pos() int {
	return err.Col
}

func (err *MalformedNumberError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the rune that caused the error.
	Pos() int
}

var (
	_ InputError = (*UnexpectedCharacterError)(nil)
	_ InputError = (*MalformedNumberError)(nil)
)
