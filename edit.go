package strz

import "github.com/safetext/strz/internal/ascii"

// TrimMode selects which end of the string Trim and TrimCopy clean.
type TrimMode byte

const (
	// TrimLeft removes leading ASCII whitespace by shifting the remainder
	// of the string, terminator included, toward index 0.
	TrimLeft TrimMode = 1 << iota
	// TrimRight removes trailing ASCII whitespace by overwriting it with
	// the terminator.
	TrimRight
	// TrimBoth performs TrimLeft then TrimRight.
	TrimBoth = TrimLeft | TrimRight
)

// Trim removes ASCII whitespace from the selected ends of the string stored
// in buf, in place. A nil or empty buffer is a no-op.
func Trim(buf []byte, mode TrimMode) {
	l := clen(buf)
	if l == 0 {
		return
	}
	if mode&TrimLeft != 0 {
		start := 0
		for start < l && ascii.IsSpace(buf[start]) {
			start++
		}
		if start > 0 {
			copy(buf, buf[start:l])
			l -= start
			buf[l] = 0
		}
	}
	if mode&TrimRight != 0 {
		for l > 0 && ascii.IsSpace(buf[l-1]) {
			l--
		}
		if l < len(buf) {
			buf[l] = 0
		}
	}
}

// RemoveChar deletes every byte equal to c from the string stored in buf by
// left-compaction and re-terminates it. Length never grows.
func RemoveChar(buf []byte, c byte) {
	l := clen(buf)
	if l == 0 {
		return
	}
	j := 0
	for i := 0; i < l; i++ {
		if buf[i] != c {
			buf[j] = buf[i]
			j++
		}
	}
	if j < len(buf) {
		buf[j] = 0
	}
}

// ReplaceChar replaces every byte equal to old in the string stored in buf
// with new, in place. When skipEnds is true the first and last bytes of the
// string are left unchanged. Length is unchanged.
func ReplaceChar(buf []byte, old, new byte, skipEnds bool) {
	l := clen(buf)
	if l == 0 {
		return
	}
	for i := 0; i < l; i++ {
		if buf[i] != old {
			continue
		}
		if skipEnds && (i == 0 || i == l-1) {
			continue
		}
		buf[i] = new
	}
}

// ToUpper folds every ASCII lowercase byte of the string stored in buf to
// upper case, in place.
func ToUpper(buf []byte) {
	l := clen(buf)
	for i := 0; i < l; i++ {
		buf[i] = ascii.Upper(buf[i])
	}
}
