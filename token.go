package strz

// TokenState holds the saved position of Tokenize between calls. It is
// owned entirely by the caller, which is what makes Tokenize reentrant:
// nested or concurrent scans each carry their own state. The zero value is
// ready for a first call.
type TokenState struct {
	rest []byte
}

// Tokenize returns the next token of a buffer, splitting on the bytes of
// delims. The first call of a scan passes the buffer as s; every later call
// passes a nil s to resume from state. Runs of delimiter bytes count as a
// single separator and leading delimiters are skipped, so no empty tokens
// are produced. Tokenize returns nil when no token remains.
//
// The buffer is edited in place: the delimiter byte after each returned
// token is overwritten with the terminator, making every token a
// NUL-terminated substring of the original buffer. The buffer must
// therefore be writable; delims may change between calls.
func Tokenize(s []byte, delims string, state *TokenState) []byte {
	if state == nil {
		return nil
	}
	if s != nil {
		s = s[:clen(s)]
	} else {
		s = state.rest
	}
	i := 0
	for i < len(s) && isDelim(s[i], delims) {
		i++
	}
	if i == len(s) {
		state.rest = nil
		return nil
	}
	start := i
	for i < len(s) && !isDelim(s[i], delims) {
		i++
	}
	tok := s[start:i]
	if i < len(s) {
		s[i] = 0
		state.rest = s[i+1:]
	} else {
		state.rest = nil
	}
	return tok
}

func isDelim(c byte, delims string) bool {
	for j := 0; j < len(delims); j++ {
		if c == delims[j] {
			return true
		}
	}
	return false
}
