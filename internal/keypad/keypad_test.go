package keypad_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/internal/keypad"
)

func press(k *keypad.Keypad, keys ...string) {
	for _, key := range keys {
		k.Press(key)
	}
}

func TestPressTyping(t *testing.T) {
	k := keypad.New()
	assert.Equal(t, "", k.Text())
	press(k, "1", "2", "+", "3", ".", "5")
	assert.Equal(t, "12+3.5", k.Text())
	assert.NoError(t, k.Err())
}

func TestPressEquals(t *testing.T) {
	cases := []struct {
		name string
		keys []string
		want string
	}{
		{"precedence", []string{"2", "+", "3", "*", "4", "="}, "14.0"},
		{"decimal", []string{"1", ".", "5", "*", "3", "="}, "4.5"},
		{"remainder", []string{"1", "7", "%", "5", "="}, "2.0"},
		{"div-zero", []string{"5", "/", "0", "="}, "Infinity"},
		{"rem-zero", []string{"5", "%", "0", "="}, "NaN"},
		{"neg", []string{"-", "-", "5", "="}, "5.0"},
		{"large", []string{"9", "9", "9", "9", "9", "*", "9", "9", "9", "9", "9", "="}, "9.999800001E9"},
		{"chain", []string{"1", "+", "2", "=", "*", "2", "="}, "6.0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			k := keypad.New()
			press(k, c.keys...)
			assert.Equal(t, c.want, k.Text())
			assert.NoError(t, k.Err())
		})
	}
}

func TestPressEqualsError(t *testing.T) {
	cases := []struct {
		name string
		keys []string
	}{
		{"empty", []string{"="}},
		{"dangling", []string{"1", "+", "="}},
		{"dots", []string{"1", ".", "2", ".", "3", "="}},
		{"after-error", []string{"1", "+", "=", "1", "="}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			k := keypad.New()
			press(k, c.keys...)
			assert.Equal(t, keypad.DefaultErrorText, k.Text())
			var ie calc.InputError
			require.Error(t, k.Err())
			assert.True(t, errors.As(k.Err(), &ie), "%#v is not an InputError", k.Err())
		})
	}
}

func TestPressEditing(t *testing.T) {
	k := keypad.New()
	press(k, "1", "2", "3", keypad.KeyBack)
	assert.Equal(t, "12", k.Text())
	press(k, keypad.KeyBack, keypad.KeyBack, keypad.KeyBack)
	assert.Equal(t, "", k.Text(), "backspace on an empty display")
	press(k, "4", "5", keypad.KeyClear)
	assert.Equal(t, "", k.Text())
	press(k, "6", keypad.KeyDelete)
	assert.Equal(t, "", k.Text())

	k.SetText("2×π")
	k.Press(keypad.KeyBack)
	assert.Equal(t, "2×", k.Text(), "backspace removes a whole rune")
}

func TestErrClearedByNextKey(t *testing.T) {
	k := keypad.New()
	press(k, "+", "=")
	require.Error(t, k.Err())
	k.Press(keypad.KeyClear)
	assert.NoError(t, k.Err())
	assert.Equal(t, "", k.Text())
}

func TestOptions(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	k := keypad.New(
		keypad.ErrorText("E"),
		keypad.Formatter(keypad.Printf("%g")),
		keypad.Logger(log),
		nil,
	)
	press(k, "1", "/", "4", "=")
	assert.Equal(t, "0.25", k.Text())
	assert.Contains(t, buf.String(), "evaluated")
	assert.Contains(t, buf.String(), "expr=1/4")

	k.Press(keypad.KeyClear)
	press(k, "*", "=")
	assert.Equal(t, "E", k.Text())
	assert.Contains(t, buf.String(), "evaluation failed")
}

func TestLayout(t *testing.T) {
	seen := make(map[string]bool)
	for _, row := range keypad.Layout {
		for _, key := range row {
			assert.False(t, seen[key], "duplicate key %q", key)
			seen[key] = true
		}
	}
	for _, key := range []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".", "+", "-", "*", "/", "%",
		keypad.KeyClear, keypad.KeyBack, keypad.KeyDelete, keypad.KeyEquals} {
		assert.True(t, seen[key], "layout lacks %q", key)
	}
}
