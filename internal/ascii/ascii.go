// Package ascii implements byte-level ASCII classification and case folding.
//
// The primitives in this module are specified for ASCII only, so these
// helpers deliberately ignore Unicode: a byte outside 'A'..'Z' or 'a'..'z' is
// returned unchanged, and only the six classic whitespace bytes are
// whitespace.
package ascii

// Lower returns the ASCII lowercase version of b.
func Lower(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// Upper returns the ASCII uppercase version of b.
func Upper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// IsSpace reports whether b is ASCII whitespace: space, horizontal tab,
// newline, vertical tab, form feed or carriage return.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
