package fxt

// recordHeader is the leading 64-bit word of every top-level record,
// and (with a different tag meaning) of every argument sub-record: a
// 4-bit type tag, a 12-bit size-in-words, and a run of caller-defined
// custom fields packed starting at bit 16.
//
// Both RecordHeader and the argument header share this exact bit
// layout, so both are built and parsed through the same helpers.
type recordHeader uint64

// headerField is one (width, value) pair to be packed into a header,
// starting at bit 16 and advancing left to right in the order given
// to buildHeader.
type headerField struct {
	width uint8
	value uint64
}

func field(width uint8, value uint64) headerField {
	return headerField{width: width, value: maskToWidth(value, width)}
}

// buildHeader packs tag into bits 0-3, sizeWords into bits 4-15, and
// fields into bits 16 upward in order. It fails with
// ErrHeaderFieldOverflow if the fields don't fit in the 48 remaining
// bits.
func buildHeader(tag uint8, sizeWords uint16, fields ...headerField) (recordHeader, error) {
	h := uint64(tag) & 0xF
	h |= (uint64(sizeWords) & 0xFFF) << 4

	offset := uint8(16)
	for _, f := range fields {
		if int(offset)+int(f.width) > 64 {
			return 0, ErrHeaderFieldOverflow
		}
		h |= f.value << offset
		offset += f.width
	}
	return recordHeader(h), nil
}

// Tag returns the raw 4-bit type tag in bits 0-3, unvalidated.
func (h recordHeader) Tag() uint8 { return uint8(extractBits(uint64(h), 0, 3)) }

// SizeWords returns the record's total size in 8-byte words, including
// the header word itself.
func (h recordHeader) SizeWords() uint16 { return uint16(extractBits(uint64(h), 4, 15)) }

// field returns bits [lo, hi] (inclusive, 0-indexed from the LSB) of
// the header word.
func (h recordHeader) field(lo, hi uint) uint64 { return extractBits(uint64(h), lo, hi) }

// RecordType decodes and validates the record-type tag.
func (h recordHeader) RecordType() (RecordType, error) {
	return parseRecordType(h.Tag())
}
