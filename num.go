package strz

import "math"

// FormatFixed renders n right-justified in exactly width bytes of dst,
// space-padded on the left and followed by the terminator, so dst must hold
// at least width+1 bytes; when it doesn't (or width is negative) nothing is
// written. Zero renders as width-1 spaces then '0'. A number wider than
// width fills all width bytes with '*', the documented overflow sentinel.
func FormatFixed(dst []byte, n uint32, width int) {
	if width < 0 || len(dst) < width+1 {
		return
	}
	p := width
	dst[p] = 0
	for {
		if p == 0 { // digits left over: overflow sentinel
			for i := 0; i < width; i++ {
				dst[i] = '*'
			}
			return
		}
		p--
		dst[p] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	for p > 0 {
		p--
		dst[p] = ' '
	}
}

// ParseDec parses s as a signed decimal int64: one optional leading sign
// followed by digits only, no whitespace, consuming the whole input. It
// reports false when s is longer than 20 bytes (the widest int64 including
// sign), contains anything but the sign and digits, is a lone sign, or the
// value does not fit in an int64.
//
// Note: the empty input parses as (0, true). This quirk is load-bearing for
// callers migrated from the C routine this replaces and is locked by tests.
func ParseDec[S ~string | ~[]byte](s S) (int64, bool) {
	if len(s) > 20 {
		return 0, false
	}
	i := 0
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		i++
		if i == len(s) { // a sign with no digits carries no value
			return 0, false
		}
	}
	limit := uint64(math.MaxInt64)
	if neg {
		limit++ // |MinInt64|
	}
	var u uint64
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		d := uint64(c - '0')
		if u > (limit-d)/10 {
			return 0, false
		}
		u = u*10 + d
	}
	if neg {
		return -int64(u), true
	}
	return int64(u), true
}

// HexStatus is the result code of ParseHex.
type HexStatus int

const (
	// HexOK means only hexadecimal digits were seen.
	HexOK HexStatus = 0
	// HexErr means a byte other than a hex digit, sign or space was seen.
	HexErr HexStatus = 1
	// HexLoose means the parse succeeded but at least one sign or space
	// appeared. It is informational, not an error.
	HexLoose HexStatus = 4
)

// OK reports whether the parse succeeded.
func (s HexStatus) OK() bool { return s != HexErr }

// ParseHex parses s as hexadecimal, preserving the permissive behavior of
// the classic routine it replaces: signs and spaces may appear anywhere, not
// only in leading position; when several signs appear the last one wins; and
// the accumulator shifts without overflow checking, so inputs beyond 16 hex
// digits silently discard their top bits. The empty input parses as
// (0, HexOK). No "0x" prefix is recognised; an 'x' fails the parse.
//
// On HexErr the returned value is 0.
func ParseHex[S ~string | ~[]byte](s S) (int64, HexStatus) {
	var v int64
	var st HexStatus
	neg := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			v = v<<4 | int64(c-'0')
		case c >= 'A' && c <= 'F':
			v = v<<4 | int64(c-'A'+10)
		case c >= 'a' && c <= 'f':
			v = v<<4 | int64(c-'a'+10)
		case c == ' ':
			st |= HexLoose
		case c == '-':
			neg = true
			st |= HexLoose
		case c == '+':
			neg = false
			st |= HexLoose
		default:
			return 0, HexErr
		}
	}
	if neg {
		v = -v
	}
	return v, st
}
