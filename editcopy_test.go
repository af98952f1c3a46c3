package strz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimCopy(t *testing.T) {
	for _, c := range []struct {
		name string
		src  string
		cap  int
		mode TrimMode
		exp  string
	}{
		{name: "both", src: "  hi  ", cap: 16, mode: TrimBoth, exp: "hi"},
		{name: "left", src: "  hi  ", cap: 16, mode: TrimLeft, exp: "hi  "},
		{name: "right", src: "  hi  ", cap: 16, mode: TrimRight, exp: "  hi"},
		{name: "copy truncates first", src: "  hi  ", cap: 5, mode: TrimBoth, exp: "hi"},
		{name: "terminator only", src: "  hi  ", cap: 1, exp: ""},
	} {
		t.Run(c.name, func(t *testing.T) {
			dst := make([]byte, c.cap)
			TrimCopy(dst, c.src, c.mode)
			requireStored(t, dst, c.exp)
		})
	}
}

// The source buffer must never be modified by a copy-and-edit variant.
func TestTrimCopy_srcUntouched(t *testing.T) {
	src := []byte("  hi  \x00")
	dst := make([]byte, 16)
	TrimCopy(dst, src, TrimBoth)
	assert.Equal(t, []byte("  hi  \x00"), src)
	requireStored(t, dst, "hi")
}

func TestReplaceCharCopy(t *testing.T) {
	for _, c := range []struct {
		name     string
		src      string
		old, new byte
		skipEnds bool
		exp      string
	}{
		{name: "replace", src: "a b c", old: ' ', new: '_', exp: "a_b_c"},
		{name: "skip ends", src: " a b ", old: ' ', new: '_', skipEnds: true, exp: " a_b "},
		{name: "same byte is a plain copy", src: "a b c", old: ' ', new: ' ', exp: "a b c"},
	} {
		t.Run(c.name, func(t *testing.T) {
			dst := make([]byte, 16)
			ReplaceCharCopy(dst, c.src, c.old, c.new, c.skipEnds)
			requireStored(t, dst, c.exp)
		})
	}
}

func TestToLowerCopy(t *testing.T) {
	for _, c := range []struct {
		src string
		cap int
		exp string
	}{
		{src: "Hello, World!", cap: 16, exp: "hello, world!"},
		{src: "ABC", cap: 3, exp: "ab"},
		{src: "ABC", cap: 1, exp: ""},
		{src: "", cap: 4, exp: ""},
	} {
		dst := make([]byte, c.cap)
		ToLowerCopy(dst, c.src)
		requireStored(t, dst, c.exp)
	}
	ToLowerCopy(nil, "x")
}

func TestSubstringCopy(t *testing.T) {
	for _, c := range []struct {
		name   string
		src    string
		cap    int
		pos, n int
		exp    string
	}{
		{name: "middle", src: "0123456789", cap: 16, pos: 3, n: 4, exp: "3456"},
		{name: "capacity limits", src: "0123456789", cap: 5, pos: 3, n: 4, exp: "3456"},
		{name: "capacity shorter than n", src: "0123456789", cap: 4, pos: 3, n: 6, exp: "345"},
		{name: "length clamped to source end", src: "0123456789", cap: 16, pos: 8, n: 5, exp: "89"},
		{name: "pos at end", src: "abc", cap: 8, pos: 3, n: 2, exp: ""},
		{name: "pos past end", src: "abc", cap: 8, pos: 9, n: 2, exp: ""},
		{name: "negative pos", src: "abc", cap: 8, pos: -1, n: 2, exp: ""},
		{name: "negative n", src: "abc", cap: 8, pos: 0, n: -2, exp: ""},
		{name: "zero n", src: "abc", cap: 8, pos: 1, n: 0, exp: ""},
		{name: "whole string", src: "abc", cap: 8, pos: 0, n: 99, exp: "abc"},
		{name: "stops at src NUL", src: "ab\x00cd", cap: 8, pos: 1, n: 9, exp: "b"},
	} {
		t.Run(c.name, func(t *testing.T) {
			dst := make([]byte, c.cap)
			SubstringCopy(dst, c.src, c.pos, c.n)
			requireStored(t, dst, c.exp)
		})
	}
	SubstringCopy(nil, "abc", 0, 1)
}
