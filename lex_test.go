package calc

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestScanAdvance(t *testing.T) {
	cases := []struct {
		src  string
		want []rune
	}{
		{"", nil},
		{"1", []rune{'1'}},
		{"1+2", []rune{'1', '+', '2'}},
		{" \t", []rune{' ', '\t'}},
		{"π÷", []rune{'π', '÷'}},
	}
	for _, c := range cases {
		s := scan(strings.NewReader(c.src))
		for i, want := range c.want {
			s.advance()
			if s.r != want {
				t.Errorf("scanning %q: rune %d should be %q, got %q", c.src, i, want, s.r)
			}
			if s.col != i+1 {
				t.Errorf("scanning %q: rune %d at column %d", c.src, i, s.col)
			}
		}
		// Advancing past the end sticks at EOF.
		for i := 0; i < 3; i++ {
			s.advance()
			if s.r != EOF {
				t.Errorf("scanning %q: expected EOF, got %q", c.src, s.r)
			}
			if s.col != len(c.want)+1 {
				t.Errorf("scanning %q: EOF at column %d, want %d", c.src, s.col, len(c.want)+1)
			}
		}
		if s.err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, s.err)
		}
	}
}

func TestScanEat(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want rune
		ok   bool
		// after is the current rune after eat.
		after rune
	}{
		{"match", "+1", '+', true, '1'},
		{"space-match", "  +1", '+', true, '1'},
		{"tab-match", "\t\n+", '+', true, EOF},
		{"mismatch", "-1", '+', false, '-'},
		{"space-mismatch", " -1", '+', false, '-'},
		{"empty", "", '+', false, EOF},
		{"spaces", "   ", '+', false, EOF},
		{"eof", "", EOF, false, EOF},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := scan(strings.NewReader(c.src))
			s.advance()
			if ok := s.eat(c.want); ok != c.ok {
				t.Errorf("eat(%q) on %q: want %t, got %t", c.want, c.src, c.ok, ok)
			}
			if s.r != c.after {
				t.Errorf("eat(%q) on %q left %q, want %q", c.want, c.src, s.r, c.after)
			}
		})
	}
}

func TestScanNum(t *testing.T) {
	cases := []struct {
		src  string
		num  string
		rest rune
	}{
		{"0", "0", EOF},
		{"9876543210", "9876543210", EOF},
		{"1.5+2", "1.5", '+'},
		{".5)", ".5", ')'},
		{"1.2.3", "1.2.3", EOF},
		{"...", "...", EOF},
		{"1 2", "1", ' '},
		{"12e3", "12", 'e'},
		{"a", "", 'a'},
	}
	for _, c := range cases {
		s := scan(strings.NewReader(c.src))
		s.advance()
		if got := s.scanNum(); got != c.num {
			t.Errorf("scanning %q: want number %q, got %q", c.src, c.num, got)
		}
		if s.r != c.rest {
			t.Errorf("scanning %q: number should end at %q, got %q", c.src, c.rest, s.r)
		}
	}
}

type errReader struct {
	r   io.RuneScanner
	err error
}

func (e *errReader) ReadRune() (rune, int, error) {
	r, sz, err := e.r.ReadRune()
	if errors.Is(err, io.EOF) {
		return 0, 0, e.err
	}
	return r, sz, err
}

func (e *errReader) UnreadRune() error {
	return e.r.UnreadRune()
}

func TestScanReadError(t *testing.T) {
	bad := errors.New("bad read")
	s := scan(&errReader{r: strings.NewReader("1"), err: bad})
	s.advance()
	if s.r != '1' || s.err != nil {
		t.Fatalf("first rune should be '1' with no error, got %q and %v", s.r, s.err)
	}
	s.advance()
	if s.r != EOF {
		t.Errorf("read error should look like EOF, got %q", s.r)
	}
	if s.err != bad {
		t.Errorf("read error should be kept, got %v", s.err)
	}
}
