package fxt

import (
	"encoding/binary"
	"io"
	"unicode/utf8"
)

// zeroPad is reused by writePaddedString so padding never allocates.
var zeroPad [7]byte

// extractBits returns bits [lo, hi] (inclusive) of v, shifted down to
// start at bit 0.
func extractBits(v uint64, lo, hi uint) uint64 {
	n := hi - lo + 1
	mask := uint64(1)<<n - 1
	return (v >> lo) & mask
}

// maskToWidth zeroes all bits of v above bit w-1.
func maskToWidth(v uint64, w uint8) uint64 {
	if w >= 64 {
		return v
	}
	return v & (uint64(1)<<w - 1)
}

// wrapIOErr turns a raw I/O failure encountered mid-record into the
// typed IOError. A clean io.EOF that shows up where it isn't allowed
// (mid-record) is reported as a truncated read, not end-of-stream.
func wrapIOErr(err error) error {
	if err == nil {
		return nil
	}
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return &IOError{Err: err}
}

// readWord consumes exactly 8 bytes from r and interprets them as a
// little-endian u64. Unlike the other read helpers, readWord does not
// wrap io.EOF: callers at a record boundary need to see the raw
// io.EOF/io.ErrUnexpectedEOF pair to tell a clean end of archive from
// a truncated record.
func readWord(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// writeWord writes v to w as a little-endian u64.
func writeWord(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return wrapIOErr(err)
}

// readPaddedString consumes ceil(length/8)*8 bytes from r and returns
// the first length of them as a string, failing InvalidUTF8Error if
// those bytes aren't valid UTF-8. Padding bytes may be any value; only
// their count, not their content, is checked.
func readPaddedString(r io.Reader, length int) (string, error) {
	padded := (length + 7) / 8 * 8
	buf := make([]byte, padded)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", wrapIOErr(err)
	}
	s := buf[:length]
	if !utf8.Valid(s) {
		return "", &InvalidUTF8Error{Err: errInvalidUTF8}
	}
	return string(s), nil
}

// writePaddedString writes s followed by zero bytes out to the next
// multiple of 8.
func writePaddedString(w io.Writer, s string) error {
	if len(s) > 0 {
		if _, err := io.WriteString(w, s); err != nil {
			return wrapIOErr(err)
		}
	}
	if pad := (8 - len(s)%8) % 8; pad > 0 {
		if _, err := w.Write(zeroPad[:pad]); err != nil {
			return wrapIOErr(err)
		}
	}
	return nil
}

// paddedWords returns the number of 8-byte words n bytes pads out to.
func paddedWords(n int) uint16 {
	return uint16((n + 7) / 8)
}
