// Package keypad models a calculator's keystroke buffer and display without
// any particular user interface. Front ends feed it key presses and show its
// text.
package keypad

import (
	"log/slog"
	"unicode/utf8"

	"github.com/zephyrtronium/calc"
)

// Keys with special meaning. Every other key is typed into the display as-is.
const (
	// KeyClear and KeyDelete both clear the display.
	KeyClear  = "C"
	KeyDelete = "Delete"
	// KeyBack removes the last character of the display.
	KeyBack = "<-"
	// KeyEquals evaluates the display and replaces it with the result.
	KeyEquals = "="
)

// Layout is the button grid, row by row.
var Layout = [5][4]string{
	{KeyClear, KeyBack, KeyDelete, "/"},
	{"7", "8", "9", "*"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"%", "0", ".", KeyEquals},
}

// DefaultErrorText is shown in place of a result when evaluation fails.
const DefaultErrorText = "Error"

// Keypad is a calculator display driven by key presses. It is not safe to
// use a Keypad concurrently.
type Keypad struct {
	text    string
	err     error
	errText string
	format  func(float64) string
	log     *slog.Logger
}

// Option is an option used when creating a keypad.
type Option interface {
	keypadOption(*Keypad)
}

type (
	erropt string
	fmtopt func(float64) string
	logopt struct{ l *slog.Logger }
)

func (o erropt) keypadOption(k *Keypad) { k.errText = string(o) }
func (o fmtopt) keypadOption(k *Keypad) { k.format = o }
func (o logopt) keypadOption(k *Keypad) { k.log = o.l }

// ErrorText sets the text shown when evaluation fails.
func ErrorText(s string) Option {
	return erropt(s)
}

// Formatter sets the function used to show results. The default is
// FormatDisplay.
func Formatter(f func(float64) string) Option {
	return fmtopt(f)
}

// Logger sets the logger that records evaluations at debug level.
func Logger(l *slog.Logger) Option {
	return logopt{l}
}

// New creates an empty keypad.
func New(opts ...Option) *Keypad {
	k := Keypad{
		errText: DefaultErrorText,
		format:  FormatDisplay,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.keypadOption(&k)
	}
	return &k
}

// Press handles a key. See the Key constants for keys with special meaning.
func (k *Keypad) Press(key string) {
	k.err = nil
	switch key {
	case KeyEquals:
		k.evaluate()
	case KeyClear, KeyDelete:
		k.text = ""
	case KeyBack:
		_, sz := utf8.DecodeLastRuneInString(k.text)
		k.text = k.text[:len(k.text)-sz]
	default:
		k.text += key
	}
}

// evaluate replaces the display with the value of its expression. Infinities
// and NaN are results like any other; only input errors show the error text.
func (k *Keypad) evaluate() {
	src := k.text
	r, err := calc.EvalString(src)
	if err != nil {
		k.log.Debug("evaluation failed", slog.String("expr", src), slog.Any("err", err))
		k.err = err
		k.text = k.errText
		return
	}
	k.text = k.format(r)
	k.log.Debug("evaluated", slog.String("expr", src), slog.Float64("result", r), slog.String("text", k.text))
}

// Text returns the current display text.
func (k *Keypad) Text() string {
	return k.text
}

// SetText replaces the display text.
func (k *Keypad) SetText(s string) {
	k.text = s
	k.err = nil
}

// Err returns the error from the last key press if it was an evaluation that
// failed, or nil otherwise.
func (k *Keypad) Err() error {
	return k.err
}
