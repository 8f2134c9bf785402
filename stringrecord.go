package fxt

import "io"

// StringRecord interns a string at a provider-scoped index, 1..=32767,
// so later records can reference it by index instead of carrying it
// inline.
type StringRecord struct {
	Index uint16
	Value string
}

// NewStringRecord builds a String record. Index must be in 1..=32767
// (0 is reserved to mean the empty string and is never itself stored);
// Value must be no longer than 32767 bytes.
func NewStringRecord(index uint16, value string) (StringRecord, error) {
	if index == 0 || index > uint16(maxStringRefLen) {
		return StringRecord{}, &OutOfRangeError{Message: "string record index must be in 1..=32767"}
	}
	if len(value) > maxStringRefLen {
		return StringRecord{}, &OutOfRangeError{Message: "string record value longer than 32767 bytes"}
	}
	return StringRecord{Index: index, Value: value}, nil
}

func (r StringRecord) RecordType() RecordType { return RecordTypeString }
func (r StringRecord) SizeWords() uint16      { return 1 + paddedWords(len(r.Value)) }

func (r StringRecord) Write(w io.Writer) error {
	h, err := buildHeader(uint8(RecordTypeString), r.SizeWords(),
		field(15, uint64(r.Index)),
		field(1, 0), // reserved
		field(15, uint64(len(r.Value))),
	)
	if err != nil {
		return err
	}
	if err := writeWord(w, uint64(h)); err != nil {
		return err
	}
	return writePaddedString(w, r.Value)
}

func readStringRecord(r io.Reader, h recordHeader) (Record, error) {
	index := uint16(h.field(16, 30))
	length := int(h.field(32, 46))
	value, err := readPaddedString(r, length)
	if err != nil {
		return nil, err
	}
	return StringRecord{Index: index, Value: value}, nil
}
