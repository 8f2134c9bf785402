package fxt

import "io"

const (
	stringRefInlineBit uint16 = 0x8000
	stringRefMask      uint16 = 0x7FFF
	maxStringRefLen    int    = 0x7FFF
)

// StringRef is the reference-or-inline encoding used for event
// categories and names, argument names, and string argument values: an
// inline UTF-8 string of length 0..=32767, or a reference 0..=32767
// into a provider-scoped string table (0 denotes the empty string).
type StringRef struct {
	inline bool
	value  string
	index  uint16
}

// NewInlineStringRef builds a StringRef that carries s directly in the
// record payload. It fails with OutOfRangeError if s is longer than
// 32767 bytes.
func NewInlineStringRef(s string) (StringRef, error) {
	if len(s) > maxStringRefLen {
		return StringRef{}, &OutOfRangeError{Message: "inline string longer than 32767 bytes"}
	}
	return StringRef{inline: true, value: s}, nil
}

// NewStringRefIndex builds a StringRef referencing a string table
// entry. Index 0 denotes the empty string.
func NewStringRefIndex(index uint16) (StringRef, error) {
	if index > uint16(maxStringRefLen) {
		return StringRef{}, &OutOfRangeError{Message: "string ref index exceeds 32767"}
	}
	return StringRef{inline: false, index: index}, nil
}

// IsInline reports whether this is an inline string rather than a
// table reference.
func (s StringRef) IsInline() bool { return s.inline }

// Value returns the inline string. It is only meaningful when
// IsInline is true.
func (s StringRef) Value() string { return s.value }

// Index returns the string table index. It is only meaningful when
// IsInline is false.
func (s StringRef) Index() uint16 { return s.index }

// field encodes this StringRef into the packed 16-bit field used
// everywhere it appears in the wire format.
func (s StringRef) field() uint16 {
	if s.inline {
		return stringRefInlineBit | (uint16(len(s.value)) & stringRefMask)
	}
	return s.index & stringRefMask
}

// payloadWords returns how many 8-byte words this StringRef
// contributes to its enclosing record's payload.
func (s StringRef) payloadWords() uint16 {
	if s.inline {
		return paddedWords(len(s.value))
	}
	return 0
}

// readStringRef decodes a StringRef given its 16-bit field, reading
// the inline payload from r if the field marks it inline.
func readStringRef(r io.Reader, fieldVal uint16) (StringRef, error) {
	if fieldVal&stringRefInlineBit != 0 {
		length := int(fieldVal & stringRefMask)
		s, err := readPaddedString(r, length)
		if err != nil {
			return StringRef{}, err
		}
		return StringRef{inline: true, value: s}, nil
	}
	return StringRef{inline: false, index: fieldVal & stringRefMask}, nil
}

// writeStringRefPayload writes the inline payload for s, if any. The
// field itself is packed into the enclosing record's header.
func writeStringRefPayload(w io.Writer, s StringRef) error {
	if !s.inline {
		return nil
	}
	return writePaddedString(w, s.value)
}
