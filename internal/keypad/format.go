package keypad

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatDisplay formats a result for the calculator display. Values with
// magnitude in [1e-3, 1e7) are written in decimal with at least one digit
// after the point, e.g. "3.0" or "0.125". Other finite values use scientific
// notation with an upper-case E and no plus sign, e.g. "1.0E7" or "1.5E-4".
// Infinities and NaN are written "Infinity", "-Infinity", and "NaN".
// Digits are always the shortest that round-trip.
func FormatDisplay(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		if math.Signbit(x) {
			return "-0.0"
		}
		return "0.0"
	}
	if a := math.Abs(x); 1e-3 <= a && a < 1e7 {
		s := strconv.FormatFloat(x, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	// strconv gives e.g. "1.5e-04"; the display wants "1.5E-4".
	s := strconv.FormatFloat(x, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	sign := ""
	switch exp[0] {
	case '-':
		sign = "-"
		exp = exp[1:]
	case '+':
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	return mant + "E" + sign + exp
}

// Printf returns a formatter that formats results with a fmt verb, e.g. "%g"
// or "%.2f".
func Printf(verb string) func(float64) string {
	return func(x float64) string {
		return fmt.Sprintf(verb, x)
	}
}
