package fxt

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestArchiveEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteArchive(&buf, nil); err != nil {
		t.Fatalf("WriteArchive: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty archive should write 0 bytes, wrote %d", buf.Len())
	}

	records, err := ReadArchive(&buf)
	if err != nil {
		t.Fatalf("ReadArchive: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("ReadArchive on empty stream = %d records, want 0", len(records))
	}
}

func TestArchiveJustMagicNumber(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteArchive(&buf, []Record{NewMagicNumberRecord()}); err != nil {
		t.Fatalf("WriteArchive: %v", err)
	}

	want := []byte{0x10, 0x00, 0x04, 0x46, 0x78, 0x54, 0x16, 0x00}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("bytes = % x, want % x", buf.Bytes(), want)
	}

	records, err := ReadArchive(&buf)
	if err != nil {
		t.Fatalf("ReadArchive: %v", err)
	}
	if err := ValidateMagicNumber(records); err != nil {
		t.Errorf("ValidateMagicNumber: %v", err)
	}
}

func TestArchiveInternThenReference(t *testing.T) {
	strRec, err := NewStringRecord(1, "my.category")
	if err != nil {
		t.Fatalf("NewStringRecord: %v", err)
	}
	threadRec, err := NewThreadRecord(1, 0x100, 0x200)
	if err != nil {
		t.Fatalf("NewThreadRecord: %v", err)
	}

	threadRef, err := NewThreadRefIndex(1)
	if err != nil {
		t.Fatalf("NewThreadRefIndex: %v", err)
	}
	categoryRef, err := NewStringRefIndex(1)
	if err != nil {
		t.Fatalf("NewStringRefIndex: %v", err)
	}
	nameRef := mustName(t, "tick")

	event, err := NewInstantEvent(100, threadRef, categoryRef, nameRef, nil)
	if err != nil {
		t.Fatalf("NewInstantEvent: %v", err)
	}
	if event.SizeWords() != 3 {
		t.Errorf("SizeWords() = %d, want 3 (24 bytes)", event.SizeWords())
	}

	records := []Record{NewMagicNumberRecord(), strRec, threadRec, event}

	var buf bytes.Buffer
	if err := WriteArchive(&buf, records); err != nil {
		t.Fatalf("WriteArchive: %v", err)
	}

	got, err := ReadArchive(&buf)
	if err != nil {
		t.Fatalf("ReadArchive: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("ReadArchive = %d records, want 4", len(got))
	}

	gotEvent, ok := got[3].(EventRecord)
	if !ok {
		t.Fatalf("records[3] = %T, want EventRecord", got[3])
	}
	if gotEvent.Thread.Index() != 1 || gotEvent.Category.Index() != 1 {
		t.Errorf("gotEvent = %+v", gotEvent)
	}
	if !gotEvent.Name.IsInline() || gotEvent.Name.Value() != "tick" {
		t.Errorf("gotEvent.Name = %+v", gotEvent.Name)
	}
}

func TestArchiveArgumentDiversity(t *testing.T) {
	thread := NewInlineThreadRef(1, 1)
	args := []Argument{
		NewNullArgument(mustName(t, "a0")),
		NewInt32Argument(mustName(t, "a1"), -1),
		NewUint32Argument(mustName(t, "a2"), 1),
		NewInt64Argument(mustName(t, "a3"), -1),
		NewUint64Argument(mustName(t, "a4"), 1),
		NewFloat64Argument(mustName(t, "a5"), 1.2345),
		NewFloat64Argument(mustName(t, "a6"), math.NaN()),
		NewStringArgument(mustName(t, "a7"), mustName(t, "v")),
		NewPointerArgument(mustName(t, "a8"), 0xCAFE),
		NewKernelObjectIDArgument(mustName(t, "a9"), 0xBEEF),
		NewBooleanArgument(mustName(t, "a10"), true),
	}
	e, err := NewInstantEvent(1, thread, mustName(t, "c"), mustName(t, "n"), args)
	if err != nil {
		t.Fatalf("NewInstantEvent: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteArchive(&buf, []Record{e}); err != nil {
		t.Fatalf("WriteArchive: %v", err)
	}

	got, err := ReadArchive(&buf)
	if err != nil {
		t.Fatalf("ReadArchive: %v", err)
	}
	gotEvent := got[0].(EventRecord)
	if len(gotEvent.Arguments) != len(args) {
		t.Fatalf("got %d arguments, want %d", len(gotEvent.Arguments), len(args))
	}
	nanArg := gotEvent.Arguments[6]
	if math.Float64bits(nanArg.Float64Value) != math.Float64bits(math.NaN()) {
		t.Errorf("NaN argument did not round-trip bit-exact")
	}
}

func TestArchiveInlineEverywhere(t *testing.T) {
	thread := NewInlineThreadRef(0x1, 0x2)
	category := mustName(t, "cat")
	name := mustName(t, "name")
	arg := NewInt64Argument(mustName(t, "x"), 7)
	e, err := NewDurationBeginEvent(1, thread, category, name, []Argument{arg})
	if err != nil {
		t.Fatalf("NewDurationBeginEvent: %v", err)
	}
	// header(1) + ts(1) + thread(2) + category(1) + name(1) + arg(1+1+1) = 9 words = 72 bytes
	if e.SizeWords() != 9 {
		t.Errorf("SizeWords() = %d, want 9 (72 bytes)", e.SizeWords())
	}

	var buf bytes.Buffer
	if err := WriteArchive(&buf, []Record{e}); err != nil {
		t.Fatalf("WriteArchive: %v", err)
	}
	if buf.Len() != 72 {
		t.Errorf("wrote %d bytes, want 72", buf.Len())
	}
}

func TestArchiveUnsupportedRecordSurfaces(t *testing.T) {
	var buf bytes.Buffer
	h, err := buildHeader(uint8(RecordTypeBlob), 1)
	if err != nil {
		t.Fatalf("buildHeader: %v", err)
	}
	if err := writeWord(&buf, uint64(h)); err != nil {
		t.Fatalf("writeWord: %v", err)
	}

	_, err = ReadArchive(&buf)
	var unsupported *UnsupportedRecordTypeError
	if !errors.As(err, &unsupported) {
		t.Errorf("ReadArchive on Blob record = %T (%v), want *UnsupportedRecordTypeError", err, err)
	}
}

func TestArchiveUnimplementedEventSurfacesOnWrite(t *testing.T) {
	thread := NewInlineThreadRef(1, 1)
	e, err := newEvent(EventTypeAsyncBegin, 0, thread, mustName(t, "c"), mustName(t, "n"), nil)
	if err != nil {
		t.Fatalf("newEvent: %v", err)
	}

	err = WriteArchive(&bytes.Buffer{}, []Record{e})
	var unimpl *UnimplementedError
	if !errors.As(err, &unimpl) {
		t.Errorf("WriteArchive with an AsyncBegin event = %T (%v), want *UnimplementedError", err, err)
	}
}

func TestValidateMagicNumberRejectsMissingOrWrongFirst(t *testing.T) {
	if err := ValidateMagicNumber(nil); err == nil {
		t.Error("expected error for empty archive")
	}
	if err := ValidateMagicNumber([]Record{NewInitializationRecord(1)}); err == nil {
		t.Error("expected error when the first record isn't a magic number")
	}
}
