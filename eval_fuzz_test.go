package calc_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zephyrtronium/calc"
)

func FuzzEval(f *testing.F) {
	f.Add("3+4*(2-1)%5")
	f.Add("--5")
	f.Add("(1+2")
	f.Add("1.2.3")
	f.Add("1 2")
	f.Add("5%0")
	f.Fuzz(func(t *testing.T, s string) {
		r1, err1 := calc.EvalString(s)
		r2, err2 := calc.EvalString(s)
		if (err1 == nil) != (err2 == nil) {
			t.Fatalf("%q: errors differ between runs: %v, %v", s, err1, err2)
		}
		if err1 != nil {
			var ie calc.InputError
			if !errors.As(err1, &ie) {
				t.Fatalf("%q: %#v is not an InputError", s, err1)
			}
			if ie.Pos() < 1 {
				t.Fatalf("%q: error at position %d", s, ie.Pos())
			}
			return
		}
		if r1 != r2 && !(math.IsNaN(r1) && math.IsNaN(r2)) {
			t.Fatalf("%q: results differ between runs: %g, %g", s, r1, r2)
		}
	})
}
