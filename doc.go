// Package calc implements a calculator for plain arithmetic expressions.
//
// The syntax is what you would type on a pocket calculator: decimal numbers,
// the binary operators + - * / and %, unary + and -, and parentheses.
// Multiplication, division, and remainder bind tighter than addition and
// subtraction, and operators of equal precedence group left to right, so
// "8-3-2" is 3 and "2+3*4" is 14.
//
// Results are float64 and follow IEEE 754 arithmetic: "5/0" is +Inf and
// "5%0" is NaN, neither of which is an error. Errors are reserved for input
// that cannot be parsed, and every such error implements InputError.
//
// The parser is forgiving in two ways that calculators traditionally are. A
// missing close parenthesis at the end of a group is accepted, so "(1+2" is
// 3. Whitespace may appear around operators and parentheses but never inside
// a number, so "1 + 2" is 3 while "1 2" is an error.
//
package calc
