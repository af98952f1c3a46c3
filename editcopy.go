package strz

import "github.com/safetext/strz/internal/ascii"

// The copy-and-edit variants below are bounded copies of src into dst
// followed by the corresponding in-place edit on dst, so a caller can work
// on a transformed copy without mutating the source. They obey the same
// capacity contract as Copy: len(dst) == 0 leaves dst untouched and
// len(dst) == 1 stores only the terminator.

// TrimCopy stores in dst a bounded copy of the value of src with ASCII
// whitespace trimmed from the ends selected by mode.
func TrimCopy[S ~string | ~[]byte](dst []byte, src S, mode TrimMode) {
	Copy(dst, src)
	Trim(dst, mode)
}

// ReplaceCharCopy stores in dst a bounded copy of the value of src with
// every old byte replaced by new, honoring skipEnds as ReplaceChar does.
func ReplaceCharCopy[S ~string | ~[]byte](dst []byte, src S, old, new byte, skipEnds bool) {
	Copy(dst, src)
	ReplaceChar(dst, old, new, skipEnds)
}

// ToLowerCopy stores in dst a bounded copy of the value of src with every
// ASCII uppercase byte folded to lower case. Folding happens during the
// copy, so src is never modified.
func ToLowerCopy[S ~string | ~[]byte](dst []byte, src S) {
	if len(dst) == 0 {
		return
	}
	n := clen(src)
	if n > len(dst)-1 {
		n = len(dst) - 1
	}
	for i := 0; i < n; i++ {
		dst[i] = ascii.Lower(src[i])
	}
	dst[n] = 0
}

// SubstringCopy stores in dst a bounded copy of at most n bytes of the value
// of src starting at byte offset pos. With L the length of the value of src:
// when pos >= L (or pos or n is negative) dst receives the empty string;
// otherwise min(n, L-pos, len(dst)-1) bytes are copied and terminated. Bytes
// past L are never consulted.
func SubstringCopy[S ~string | ~[]byte](dst []byte, src S, pos, n int) {
	if len(dst) == 0 {
		return
	}
	l := clen(src)
	if pos < 0 || n < 0 || pos >= l {
		dst[0] = 0
		return
	}
	m := l - pos
	if n < m {
		m = n
	}
	if m > len(dst)-1 {
		m = len(dst) - 1
	}
	for i := 0; i < m; i++ {
		dst[i] = src[pos+i]
	}
	dst[m] = 0
}
