package fxt

import "io"

// ThreadRef is the reference-or-inline encoding used for an event's
// thread field: an inline (process-koid, thread-koid) pair, or a
// reference 1..=255 into a provider-scoped thread table.
type ThreadRef struct {
	inline      bool
	processKOID uint64
	threadKOID  uint64
	index       uint8
}

// NewInlineThreadRef builds a ThreadRef carrying the process and
// thread KOIDs directly in the record payload.
func NewInlineThreadRef(processKOID, threadKOID uint64) ThreadRef {
	return ThreadRef{inline: true, processKOID: processKOID, threadKOID: threadKOID}
}

// NewThreadRefIndex builds a ThreadRef referencing a thread table
// entry. index must be in 1..=255; 0 is reserved to mean "inline
// follows" and is rejected here.
func NewThreadRefIndex(index uint8) (ThreadRef, error) {
	if index == 0 {
		return ThreadRef{}, &OutOfRangeError{Message: "thread ref index 0 is reserved for inline"}
	}
	return ThreadRef{inline: false, index: index}, nil
}

// IsInline reports whether this is an inline (process, thread) pair
// rather than a table reference.
func (t ThreadRef) IsInline() bool { return t.inline }

// ProcessKOID returns the inline process KOID. Only meaningful when
// IsInline is true.
func (t ThreadRef) ProcessKOID() uint64 { return t.processKOID }

// ThreadKOID returns the inline thread KOID. Only meaningful when
// IsInline is true.
func (t ThreadRef) ThreadKOID() uint64 { return t.threadKOID }

// Index returns the thread table index. Only meaningful when IsInline
// is false.
func (t ThreadRef) Index() uint8 { return t.index }

// field encodes this ThreadRef into the packed 8-bit field used in an
// event's header.
func (t ThreadRef) field() uint8 {
	if t.inline {
		return 0
	}
	return t.index
}

// payloadWords returns how many 8-byte words this ThreadRef
// contributes to its enclosing record's payload.
func (t ThreadRef) payloadWords() uint16 {
	if t.inline {
		return 2
	}
	return 0
}

// readThreadRef decodes a ThreadRef given its 8-bit field, reading the
// inline KOID pair from r if the field marks it inline.
func readThreadRef(r io.Reader, fieldVal uint8) (ThreadRef, error) {
	if fieldVal == 0 {
		process, err := readWord(r)
		if err != nil {
			return ThreadRef{}, wrapIOErr(err)
		}
		thread, err := readWord(r)
		if err != nil {
			return ThreadRef{}, wrapIOErr(err)
		}
		return ThreadRef{inline: true, processKOID: process, threadKOID: thread}, nil
	}
	return ThreadRef{inline: false, index: fieldVal}, nil
}

// writeThreadRefPayload writes the inline KOID pair for t, if any.
func writeThreadRefPayload(w io.Writer, t ThreadRef) error {
	if !t.inline {
		return nil
	}
	if err := writeWord(w, t.processKOID); err != nil {
		return err
	}
	return writeWord(w, t.threadKOID)
}
