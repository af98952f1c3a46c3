package strz

import "github.com/safetext/strz/internal/ascii"

// CompareFold compares the values of a and b byte-by-byte after ASCII lower
// folding and returns a three-way sign: negative when a sorts before b, zero
// when they are equal, positive otherwise. Comparison stops at the first
// folded difference or when both values end together; the shorter value
// sorts first.
func CompareFold[S ~string | ~[]byte](a, b S) int {
	na, nb := clen(a), clen(b)
	i := 0
	for i < na && i < nb {
		ca, cb := ascii.Lower(a[i]), ascii.Lower(b[i])
		if ca != cb {
			return int(ca) - int(cb)
		}
		i++
	}
	// The exhausted side compares as its terminator, which sorts below
	// every non-zero byte.
	switch {
	case i < na:
		return int(ascii.Lower(a[i]))
	case i < nb:
		return -int(ascii.Lower(b[i]))
	}
	return 0
}

// HasPrefix reports whether the value of s begins with the value of prefix,
// byte-exact. The empty prefix matches everything.
func HasPrefix[S ~string | ~[]byte](s, prefix S) bool {
	n := clen(prefix)
	if n > clen(s) {
		return false
	}
	for i := 0; i < n; i++ {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}

// IndexFold returns the index in haystack of the first ASCII
// case-insensitive occurrence of needle, or -1 when there is none. The empty
// needle matches at index 0.
func IndexFold[S ~string | ~[]byte](haystack, needle S) int {
	n := clen(needle)
	if n == 0 {
		return 0
	}
	h := clen(haystack)
	for i := 0; i+n <= h; i++ {
		j := 0
		for j < n && ascii.Lower(haystack[i+j]) == ascii.Lower(needle[j]) {
			j++
		}
		if j == n {
			return i
		}
	}
	return -1
}

// LastIndex returns the index in haystack of the last (case-sensitive)
// occurrence of needle, or -1 when there is none. The empty needle matches
// at the end-of-string position, so LastIndex(h, "") is the length of the
// value of h.
func LastIndex[S ~string | ~[]byte](haystack, needle S) int {
	n := clen(needle)
	h := clen(haystack)
	if n == 0 {
		return h
	}
	last := -1
	for i := 0; i+n <= h; i++ {
		j := 0
		for j < n && haystack[i+j] == needle[j] {
			j++
		}
		if j == n {
			last = i
		}
	}
	return last
}

// LastN returns the suffix of length n of the value of s, or the whole value
// when it is shorter than n (or n is negative).
func LastN[S ~string | ~[]byte](s S, n int) S {
	l := clen(s)
	if n < 0 || l < n {
		return s[:l]
	}
	return s[l-n : l]
}
