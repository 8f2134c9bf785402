package fxt

import "io"

// InitializationRecord establishes the number of ticks per second the
// timestamps in this archive are measured in.
type InitializationRecord struct {
	TicksPerSecond uint64
}

// NewInitializationRecord builds an Initialization record.
func NewInitializationRecord(ticksPerSecond uint64) InitializationRecord {
	return InitializationRecord{TicksPerSecond: ticksPerSecond}
}

func (r InitializationRecord) RecordType() RecordType { return RecordTypeInitialization }
func (r InitializationRecord) SizeWords() uint16      { return 2 }

func (r InitializationRecord) Write(w io.Writer) error {
	h, err := buildHeader(uint8(RecordTypeInitialization), 2)
	if err != nil {
		return err
	}
	if err := writeWord(w, uint64(h)); err != nil {
		return err
	}
	return writeWord(w, r.TicksPerSecond)
}

func readInitializationRecord(r io.Reader, h recordHeader) (Record, error) {
	ticks, err := readWord(r)
	if err != nil {
		return nil, wrapIOErr(err)
	}
	return InitializationRecord{TicksPerSecond: ticks}, nil
}
