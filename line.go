package strz

import (
	"errors"
	"fmt"
	"io"
)

// ReadLine reads one line from r into dst and returns it as dst[:n] with
// dst[n] set to the terminator. A line ends at CR, LF, or CR-LF; all three
// are stripped identically. When the data area (len(dst)-1 bytes) fills
// before a line ending is seen, the rest of the physical line is consumed
// and discarded, until LF or end of stream, so the next call starts on a
// fresh line.
//
// End of stream before any byte returns (nil, io.EOF); a final line without
// a line ending is returned normally and the next call reports io.EOF.
// Stream errors and invalid arguments (empty dst, nil r) return a nil slice
// and a non-nil error.
//
// r needs one byte of pushback to classify a CR not followed by LF;
// bufio.Reader satisfies io.ByteScanner. ReadLine blocks exactly as the
// underlying reads do and has no timeout of its own.
func ReadLine(dst []byte, r io.ByteScanner) ([]byte, error) {
	if len(dst) == 0 || r == nil {
		return nil, errors.New("readline requires a non-empty buffer and a stream")
	}
	n := 0
	sawEOL := false
	for n < len(dst)-1 {
		c, err := r.ReadByte()
		if err == io.EOF {
			if n == 0 {
				return nil, io.EOF
			}
			sawEOL = true // unterminated final line
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read failed: %w", err)
		}
		if c == '\n' {
			sawEOL = true
			break
		}
		if c == '\r' {
			sawEOL = true
			// CR-LF counts as one line ending; a bare CR does not own
			// the byte that follows it.
			if c2, err2 := r.ReadByte(); err2 == nil && c2 != '\n' {
				_ = r.UnreadByte()
			}
			break
		}
		dst[n] = c
		n++
	}
	if !sawEOL {
		// Data area is full with no line ending in sight: drain the rest
		// of the physical line. An error here surfaces on the next call.
		drained := false
		for {
			c, err := r.ReadByte()
			if err == io.EOF {
				if n == 0 && !drained { // only possible when len(dst) == 1
					return nil, io.EOF
				}
				break
			}
			if err != nil {
				break
			}
			drained = true
			if c == '\n' {
				break
			}
		}
	}
	dst[n] = 0
	return dst[:n], nil
}
