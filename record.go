package fxt

import (
	"fmt"
	"io"
)

// RecordType is the 4-bit tag in bits 0-3 of every record header.
type RecordType uint8

const (
	RecordTypeMetadata       RecordType = 0
	RecordTypeInitialization RecordType = 1
	RecordTypeString         RecordType = 2
	RecordTypeThread         RecordType = 3
	RecordTypeEvent          RecordType = 4
	RecordTypeBlob           RecordType = 5
	RecordTypeUserspace      RecordType = 6
	RecordTypeKernel         RecordType = 7
	RecordTypeScheduling     RecordType = 8
	RecordTypeLog            RecordType = 9
	RecordTypeLargeBlob      RecordType = 15
)

func (t RecordType) String() string {
	switch t {
	case RecordTypeMetadata:
		return "Metadata"
	case RecordTypeInitialization:
		return "Initialization"
	case RecordTypeString:
		return "String"
	case RecordTypeThread:
		return "Thread"
	case RecordTypeEvent:
		return "Event"
	case RecordTypeBlob:
		return "Blob"
	case RecordTypeUserspace:
		return "Userspace"
	case RecordTypeKernel:
		return "Kernel"
	case RecordTypeScheduling:
		return "Scheduling"
	case RecordTypeLog:
		return "Log"
	case RecordTypeLargeBlob:
		return "LargeBlob"
	default:
		return fmt.Sprintf("RecordType(%d)", uint8(t))
	}
}

func parseRecordType(raw uint8) (RecordType, error) {
	switch RecordType(raw) {
	case RecordTypeMetadata, RecordTypeInitialization, RecordTypeString, RecordTypeThread,
		RecordTypeEvent, RecordTypeBlob, RecordTypeUserspace, RecordTypeKernel,
		RecordTypeScheduling, RecordTypeLog, RecordTypeLargeBlob:
		return RecordType(raw), nil
	default:
		return 0, &InvalidRecordTypeError{Raw: raw}
	}
}

// isUnsupportedRecordType reports whether t is tag-recognized but has
// no decoder: the blob family.
func isUnsupportedRecordType(t RecordType) bool {
	switch t {
	case RecordTypeBlob, RecordTypeUserspace, RecordTypeKernel, RecordTypeScheduling,
		RecordTypeLog, RecordTypeLargeBlob:
		return true
	default:
		return false
	}
}

// Record is any self-delimiting unit that can appear in an archive.
// Concrete implementations are MagicNumberRecord, ProviderInfoRecord,
// ProviderSectionRecord, ProviderEventRecord, TraceInfoRecord,
// InitializationRecord, StringRecord, ThreadRecord, and EventRecord.
type Record interface {
	// RecordType returns the record's top-level type tag.
	RecordType() RecordType

	// SizeWords returns the record's total size in 8-byte words,
	// including its own header word.
	SizeWords() uint16

	// Write serializes the record to w, including its header.
	Write(w io.Writer) error
}

// magicNumberValue is the fixed 64-bit literal that tags the start of
// an archive. Interpreted as a header it decodes as a Metadata record
// with a TraceInfo subtype, but it is recognized by exact value match
// before any such interpretation happens.
const magicNumberValue uint64 = 0x0016547846040010

// MagicNumberRecord is the literal sentinel word a well-formed archive
// begins with.
type MagicNumberRecord struct{}

// NewMagicNumberRecord returns the archive-start sentinel record.
func NewMagicNumberRecord() MagicNumberRecord { return MagicNumberRecord{} }

func (MagicNumberRecord) RecordType() RecordType { return RecordTypeMetadata }
func (MagicNumberRecord) SizeWords() uint16      { return 1 }
func (MagicNumberRecord) Write(w io.Writer) error {
	return writeWord(w, magicNumberValue)
}

// readRecord reads one record from r. It returns io.EOF unwrapped, and
// only unwrapped, when the stream ends cleanly at a record boundary;
// any other error is a typed failure.
func readRecord(r io.Reader) (Record, error) {
	word, err := readWord(r)
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, wrapIOErr(err)
	}

	if word == magicNumberValue {
		return MagicNumberRecord{}, nil
	}

	h := recordHeader(word)
	rt, err := h.RecordType()
	if err != nil {
		return nil, err
	}
	if isUnsupportedRecordType(rt) {
		return nil, &UnsupportedRecordTypeError{Type: rt}
	}

	switch rt {
	case RecordTypeMetadata:
		return readMetadataRecord(r, h)
	case RecordTypeInitialization:
		return readInitializationRecord(r, h)
	case RecordTypeString:
		return readStringRecord(r, h)
	case RecordTypeThread:
		return readThreadRecord(r, h)
	case RecordTypeEvent:
		return readEventRecord(r, h)
	default:
		// Unreachable: every RecordType is either handled above
		// or caught by isUnsupportedRecordType.
		return nil, &UnsupportedRecordTypeError{Type: rt}
	}
}
