package fxt

import (
	"fmt"
	"io"
)

// MetadataType is the 4-bit metadata subtype tag in bits 16-19 of a
// metadata record's header.
type MetadataType uint8

const (
	MetadataTypeProviderInfo    MetadataType = 1
	MetadataTypeProviderSection MetadataType = 2
	MetadataTypeProviderEvent   MetadataType = 3
	MetadataTypeTraceInfo       MetadataType = 4
)

func (t MetadataType) String() string {
	switch t {
	case MetadataTypeProviderInfo:
		return "ProviderInfo"
	case MetadataTypeProviderSection:
		return "ProviderSection"
	case MetadataTypeProviderEvent:
		return "ProviderEvent"
	case MetadataTypeTraceInfo:
		return "TraceInfo"
	default:
		return fmt.Sprintf("MetadataType(%d)", uint8(t))
	}
}

func parseMetadataType(raw uint8) (MetadataType, error) {
	switch MetadataType(raw) {
	case MetadataTypeProviderInfo, MetadataTypeProviderSection, MetadataTypeProviderEvent, MetadataTypeTraceInfo:
		return MetadataType(raw), nil
	default:
		return 0, &InvalidMetadataTypeError{Raw: raw}
	}
}

// ProviderEventID is the 4-bit enum carried by a ProviderEvent
// metadata record; 0 means "buffer filled".
type ProviderEventID uint8

const ProviderEventBufferFilled ProviderEventID = 0

// ProviderInfoRecord names a provider, identified by ProviderID, with
// a human-readable Name.
type ProviderInfoRecord struct {
	ProviderID uint32
	Name       string
}

// NewProviderInfoRecord builds a ProviderInfo metadata record. It
// fails with OutOfRangeError if name is longer than 255 bytes (the
// 8-bit length field) or id doesn't fit 32 bits.
func NewProviderInfoRecord(id uint32, name string) (ProviderInfoRecord, error) {
	if len(name) > 0xFF {
		return ProviderInfoRecord{}, &OutOfRangeError{Message: "provider name longer than 255 bytes"}
	}
	return ProviderInfoRecord{ProviderID: id, Name: name}, nil
}

func (r ProviderInfoRecord) RecordType() RecordType { return RecordTypeMetadata }
func (r ProviderInfoRecord) SizeWords() uint16      { return 1 + paddedWords(len(r.Name)) }

func (r ProviderInfoRecord) Write(w io.Writer) error {
	h, err := buildHeader(uint8(RecordTypeMetadata), r.SizeWords(),
		field(4, uint64(MetadataTypeProviderInfo)),
		field(32, uint64(r.ProviderID)),
		field(8, uint64(len(r.Name))),
	)
	if err != nil {
		return err
	}
	if err := writeWord(w, uint64(h)); err != nil {
		return err
	}
	return writePaddedString(w, r.Name)
}

// ProviderSectionRecord marks the start of a provider's section of the
// archive.
type ProviderSectionRecord struct {
	ProviderID uint32
}

// NewProviderSectionRecord builds a ProviderSection metadata record.
func NewProviderSectionRecord(id uint32) ProviderSectionRecord {
	return ProviderSectionRecord{ProviderID: id}
}

func (r ProviderSectionRecord) RecordType() RecordType { return RecordTypeMetadata }
func (r ProviderSectionRecord) SizeWords() uint16      { return 1 }

func (r ProviderSectionRecord) Write(w io.Writer) error {
	h, err := buildHeader(uint8(RecordTypeMetadata), 1,
		field(4, uint64(MetadataTypeProviderSection)),
		field(32, uint64(r.ProviderID)),
	)
	if err != nil {
		return err
	}
	return writeWord(w, uint64(h))
}

// ProviderEventRecord reports a provider-level event, such as a full
// buffer.
type ProviderEventRecord struct {
	ProviderID uint32
	EventID    ProviderEventID
}

// NewProviderEventRecord builds a ProviderEvent metadata record.
func NewProviderEventRecord(id uint32, eventID ProviderEventID) ProviderEventRecord {
	return ProviderEventRecord{ProviderID: id, EventID: eventID}
}

func (r ProviderEventRecord) RecordType() RecordType { return RecordTypeMetadata }
func (r ProviderEventRecord) SizeWords() uint16      { return 1 }

func (r ProviderEventRecord) Write(w io.Writer) error {
	h, err := buildHeader(uint8(RecordTypeMetadata), 1,
		field(4, uint64(MetadataTypeProviderEvent)),
		field(32, uint64(r.ProviderID)),
		field(4, uint64(r.EventID)),
	)
	if err != nil {
		return err
	}
	return writeWord(w, uint64(h))
}

// TraceInfoRecord carries a 4-bit trace-info-type tag and 40 bits of
// type-specific data, both packed entirely into the header word.
type TraceInfoRecord struct {
	TraceInfoType uint8
	Data          uint64 // significant in the low 40 bits
}

// NewTraceInfoRecord builds a TraceInfo metadata record.
func NewTraceInfoRecord(traceInfoType uint8, data uint64) (TraceInfoRecord, error) {
	if traceInfoType > 0xF {
		return TraceInfoRecord{}, &OutOfRangeError{Message: "trace info type exceeds 4 bits"}
	}
	if data >= 1<<40 {
		return TraceInfoRecord{}, &OutOfRangeError{Message: "trace info data exceeds 40 bits"}
	}
	return TraceInfoRecord{TraceInfoType: traceInfoType, Data: data}, nil
}

func (r TraceInfoRecord) RecordType() RecordType { return RecordTypeMetadata }
func (r TraceInfoRecord) SizeWords() uint16      { return 1 }

func (r TraceInfoRecord) Write(w io.Writer) error {
	h, err := buildHeader(uint8(RecordTypeMetadata), 1,
		field(4, uint64(MetadataTypeTraceInfo)),
		field(4, uint64(r.TraceInfoType)),
		field(40, r.Data),
	)
	if err != nil {
		return err
	}
	return writeWord(w, uint64(h))
}

func readMetadataRecord(r io.Reader, h recordHeader) (Record, error) {
	rawType := uint8(h.field(16, 19))
	mt, err := parseMetadataType(rawType)
	if err != nil {
		return nil, err
	}

	switch mt {
	case MetadataTypeProviderInfo:
		id := uint32(h.field(20, 51))
		nameLen := int(h.field(52, 59))
		name, err := readPaddedString(r, nameLen)
		if err != nil {
			return nil, err
		}
		return ProviderInfoRecord{ProviderID: id, Name: name}, nil
	case MetadataTypeProviderSection:
		id := uint32(h.field(20, 51))
		return ProviderSectionRecord{ProviderID: id}, nil
	case MetadataTypeProviderEvent:
		id := uint32(h.field(20, 51))
		eventID := ProviderEventID(h.field(52, 55))
		return ProviderEventRecord{ProviderID: id, EventID: eventID}, nil
	case MetadataTypeTraceInfo:
		infoType := uint8(h.field(20, 23))
		data := h.field(24, 63)
		return TraceInfoRecord{TraceInfoType: infoType, Data: data}, nil
	default:
		return nil, &InvalidMetadataTypeError{Raw: rawType}
	}
}
