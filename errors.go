package fxt

import (
	"errors"
	"fmt"
)

// errInvalidUTF8 is the underlying cause wrapped by InvalidUTF8Error
// when an inline string's bytes fail utf8.Valid.
var errInvalidUTF8 = errors.New("invalid utf-8 in inline string")

// ErrHeaderFieldOverflow is returned by the header builder when the
// requested custom fields don't fit in the 48 bits available above the
// record-type tag and size, bits 16-63 of a header word.
var ErrHeaderFieldOverflow = errors.New("fxt: header custom fields overflow 64-bit word")

// IOError wraps a failure from the underlying byte source or sink,
// including a short read at a record boundary that should have landed
// on a complete record.
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("fxt: io error: %v", e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// InvalidUTF8Error reports that an inline string's declared bytes are
// not valid UTF-8.
type InvalidUTF8Error struct {
	Err error
}

func (e *InvalidUTF8Error) Error() string { return fmt.Sprintf("fxt: invalid utf-8: %v", e.Err) }
func (e *InvalidUTF8Error) Unwrap() error { return e.Err }

// InvalidRecordTypeError reports a record-type tag outside the
// recognized set {0-9, 15}.
type InvalidRecordTypeError struct {
	Raw uint8
}

func (e *InvalidRecordTypeError) Error() string {
	return fmt.Sprintf("fxt: invalid record type %d", e.Raw)
}

// InvalidEventTypeError reports an event subtype tag outside 0..=10.
type InvalidEventTypeError struct {
	Raw uint8
}

func (e *InvalidEventTypeError) Error() string {
	return fmt.Sprintf("fxt: invalid event type %d", e.Raw)
}

// InvalidMetadataTypeError reports a metadata subtype tag outside
// 1..=4.
type InvalidMetadataTypeError struct {
	Raw uint8
}

func (e *InvalidMetadataTypeError) Error() string {
	return fmt.Sprintf("fxt: invalid metadata type %d", e.Raw)
}

// InvalidArgumentTypeError reports an argument value-type tag outside
// 0..=9.
type InvalidArgumentTypeError struct {
	Raw uint8
}

func (e *InvalidArgumentTypeError) Error() string {
	return fmt.Sprintf("fxt: invalid argument type %d", e.Raw)
}

// UnsupportedRecordTypeError reports a record type that is recognized
// by the wire format but has no decoder in this package: the blob
// family (Blob, Userspace, Kernel, Scheduling, Log, LargeBlob).
type UnsupportedRecordTypeError struct {
	Type RecordType
}

func (e *UnsupportedRecordTypeError) Error() string {
	return fmt.Sprintf("fxt: unsupported record type %v", e.Type)
}

// UnimplementedError reports a recognized variant that this package
// has no codec for: the async/flow event subtype family.
type UnimplementedError struct {
	Message string
}

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("fxt: unimplemented: %s", e.Message)
}

// OutOfRangeError reports a constructor argument, such as a string
// table index or inline string length, outside the range the wire
// format's bit width can carry.
type OutOfRangeError struct {
	Message string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("fxt: out of range: %s", e.Message)
}
