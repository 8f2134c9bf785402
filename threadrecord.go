package fxt

import "io"

// ThreadRecord interns a (process, thread) KOID pair at a
// provider-scoped index, 1..=255.
type ThreadRecord struct {
	Index       uint8
	ProcessKOID uint64
	ThreadKOID  uint64
}

// NewThreadRecord builds a Thread record. Index must be in 1..=255 (0
// is reserved to mean "inline thread follows" in an event's thread
// field, and is never itself stored here).
func NewThreadRecord(index uint8, processKOID, threadKOID uint64) (ThreadRecord, error) {
	if index == 0 {
		return ThreadRecord{}, &OutOfRangeError{Message: "thread record index 0 is reserved"}
	}
	return ThreadRecord{Index: index, ProcessKOID: processKOID, ThreadKOID: threadKOID}, nil
}

func (r ThreadRecord) RecordType() RecordType { return RecordTypeThread }
func (r ThreadRecord) SizeWords() uint16      { return 3 }

func (r ThreadRecord) Write(w io.Writer) error {
	h, err := buildHeader(uint8(RecordTypeThread), 3,
		field(8, uint64(r.Index)),
	)
	if err != nil {
		return err
	}
	if err := writeWord(w, uint64(h)); err != nil {
		return err
	}
	if err := writeWord(w, r.ProcessKOID); err != nil {
		return err
	}
	return writeWord(w, r.ThreadKOID)
}

func readThreadRecord(r io.Reader, h recordHeader) (Record, error) {
	index := uint8(h.field(16, 23))
	process, err := readWord(r)
	if err != nil {
		return nil, wrapIOErr(err)
	}
	thread, err := readWord(r)
	if err != nil {
		return nil, wrapIOErr(err)
	}
	return ThreadRecord{Index: index, ProcessKOID: process, ThreadKOID: thread}, nil
}
