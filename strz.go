// Package strz implements bounded primitives over NUL-terminated strings
// stored in caller-owned byte buffers. It is named strz because the classic
// C routines it replaces spell the terminator "z" (strzcpy, strzcat), and
// that avoids clashing with the standard library's "strings".
//
// Every writing primitive treats len(dst) as the total capacity of the
// destination, terminator included. The universal contract is: if
// len(dst) == 0 the buffer is untouched; otherwise a zero byte is stored no
// further than dst[len(dst)-1], and no index at or beyond len(dst) is ever
// written. Truncation is silent: a caller that must detect it compares the
// input length against len(dst)-1 up front.
//
// Read-only inputs may be string or []byte. Their logical value ends at the
// first zero byte, if any, so buffers holding C-style strings can be passed
// directly. The parsers (ParseDec, ParseHex) are the exception: they consume
// their whole explicit-length input and need no terminator.
//
// No primitive allocates, panics, or reports through any channel other than
// its return values and the destination buffer.
package strz

// clen returns the length of the logical value of s: the index of its first
// zero byte, or len(s) when it has none.
func clen[S ~string | ~[]byte](s S) int {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return i
		}
	}
	return len(s)
}

// Copy stores in dst at most len(dst)-1 bytes of the value of src, followed
// by the terminator. When len(dst) == 0 the buffer is untouched. Overlapping
// dst and src is not supported.
func Copy[S ~string | ~[]byte](dst []byte, src S) {
	if len(dst) == 0 {
		return
	}
	n := clen(src)
	if n > len(dst)-1 {
		n = len(dst) - 1
	}
	for i := 0; i < n; i++ {
		dst[i] = src[i]
	}
	dst[n] = 0
}

// Concat appends the value of src to the string already stored in dst,
// keeping the stored length plus its terminator within len(dst). dst must
// already hold a terminated string; if it holds none, or len(dst) <= 1,
// Concat writes nothing at all (the terminator is not rewritten).
func Concat[S ~string | ~[]byte](dst []byte, src S) {
	if len(dst) <= 1 {
		return
	}
	l := clen(dst)
	if l == len(dst) { // no terminator: appending has nowhere safe to start
		return
	}
	n := clen(src)
	if room := len(dst) - 1 - l; n > room {
		n = room
	}
	for i := 0; i < n; i++ {
		dst[l+i] = src[i]
	}
	dst[l+n] = 0
}

// ConcatUint renders n as unpadded decimal ("0" for zero, no sign) and
// appends it to dst under the same bounding rules as Concat.
func ConcatUint(dst []byte, n uint32) {
	var b [10]byte // 4294967295 is the widest uint32
	i := len(b)
	for {
		i--
		b[i] = byte('0' + n%10)
		n /= 10
		if n == 0 {
			break
		}
	}
	Concat(dst, b[i:])
}
