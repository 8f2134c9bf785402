package fxt

import (
	"fmt"
	"io"
	"math"
)

// ArgumentType is the 4-bit value-type tag in bits 0-3 of an argument
// header.
type ArgumentType uint8

const (
	ArgumentTypeNull           ArgumentType = 0
	ArgumentTypeInt32          ArgumentType = 1
	ArgumentTypeUint32         ArgumentType = 2
	ArgumentTypeInt64          ArgumentType = 3
	ArgumentTypeUint64         ArgumentType = 4
	ArgumentTypeFloat64        ArgumentType = 5
	ArgumentTypeString         ArgumentType = 6
	ArgumentTypePointer        ArgumentType = 7
	ArgumentTypeKernelObjectID ArgumentType = 8
	ArgumentTypeBoolean        ArgumentType = 9
)

func (t ArgumentType) String() string {
	switch t {
	case ArgumentTypeNull:
		return "Null"
	case ArgumentTypeInt32:
		return "Int32"
	case ArgumentTypeUint32:
		return "Uint32"
	case ArgumentTypeInt64:
		return "Int64"
	case ArgumentTypeUint64:
		return "Uint64"
	case ArgumentTypeFloat64:
		return "Float64"
	case ArgumentTypeString:
		return "String"
	case ArgumentTypePointer:
		return "Pointer"
	case ArgumentTypeKernelObjectID:
		return "KernelObjectID"
	case ArgumentTypeBoolean:
		return "Boolean"
	default:
		return fmt.Sprintf("ArgumentType(%d)", uint8(t))
	}
}

func parseArgumentType(raw uint8) (ArgumentType, error) {
	if raw > uint8(ArgumentTypeBoolean) {
		return 0, &InvalidArgumentTypeError{Raw: raw}
	}
	return ArgumentType(raw), nil
}

// Argument is a key/value pair nested inside an event record. Exactly
// one of the typed value fields is meaningful, selected by Type.
type Argument struct {
	Type ArgumentType
	Name StringRef

	Int32Value          int32
	Uint32Value         uint32
	Int64Value          int64
	Uint64Value         uint64
	Float64Value        float64
	StringValue         StringRef
	PointerValue        uint64
	KernelObjectIDValue uint64
	BoolValue           bool
}

// NewNullArgument builds a Null-valued argument.
func NewNullArgument(name StringRef) Argument { return Argument{Type: ArgumentTypeNull, Name: name} }

// NewInt32Argument builds an Int32-valued argument.
func NewInt32Argument(name StringRef, v int32) Argument {
	return Argument{Type: ArgumentTypeInt32, Name: name, Int32Value: v}
}

// NewUint32Argument builds a Uint32-valued argument.
func NewUint32Argument(name StringRef, v uint32) Argument {
	return Argument{Type: ArgumentTypeUint32, Name: name, Uint32Value: v}
}

// NewInt64Argument builds an Int64-valued argument.
func NewInt64Argument(name StringRef, v int64) Argument {
	return Argument{Type: ArgumentTypeInt64, Name: name, Int64Value: v}
}

// NewUint64Argument builds a Uint64-valued argument.
func NewUint64Argument(name StringRef, v uint64) Argument {
	return Argument{Type: ArgumentTypeUint64, Name: name, Uint64Value: v}
}

// NewFloat64Argument builds a Float64-valued argument. NaN and
// infinities round-trip bit-for-bit.
func NewFloat64Argument(name StringRef, v float64) Argument {
	return Argument{Type: ArgumentTypeFloat64, Name: name, Float64Value: v}
}

// NewStringArgument builds a String-valued argument.
func NewStringArgument(name StringRef, value StringRef) Argument {
	return Argument{Type: ArgumentTypeString, Name: name, StringValue: value}
}

// NewPointerArgument builds a Pointer-valued argument.
func NewPointerArgument(name StringRef, v uint64) Argument {
	return Argument{Type: ArgumentTypePointer, Name: name, PointerValue: v}
}

// NewKernelObjectIDArgument builds a KernelObjectId-valued argument.
func NewKernelObjectIDArgument(name StringRef, v uint64) Argument {
	return Argument{Type: ArgumentTypeKernelObjectID, Name: name, KernelObjectIDValue: v}
}

// NewBooleanArgument builds a Boolean-valued argument.
func NewBooleanArgument(name StringRef, v bool) Argument {
	return Argument{Type: ArgumentTypeBoolean, Name: name, BoolValue: v}
}

// words returns the argument's total size in 8-byte words, including
// its own header word: 1 + the name's inline words + the value's
// extra words.
func (a Argument) words() uint16 {
	n := uint16(1) + a.Name.payloadWords()
	switch a.Type {
	case ArgumentTypeNull, ArgumentTypeInt32, ArgumentTypeUint32, ArgumentTypeBoolean:
		// Value lives in the header word itself.
	case ArgumentTypeInt64, ArgumentTypeUint64, ArgumentTypeFloat64, ArgumentTypePointer, ArgumentTypeKernelObjectID:
		n++
	case ArgumentTypeString:
		n += a.StringValue.payloadWords()
	}
	return n
}

// writeArgument serializes a to w.
func writeArgument(w io.Writer, a Argument) error {
	size := a.words()
	var data uint32
	switch a.Type {
	case ArgumentTypeInt32:
		data = uint32(a.Int32Value)
	case ArgumentTypeUint32:
		data = a.Uint32Value
	case ArgumentTypeBoolean:
		if a.BoolValue {
			data = 1
		}
	case ArgumentTypeString:
		data = uint32(a.StringValue.field())
	}

	h, err := buildHeader(uint8(a.Type), size,
		field(16, uint64(a.Name.field())),
		field(32, uint64(data)),
	)
	if err != nil {
		return err
	}
	if err := writeWord(w, uint64(h)); err != nil {
		return err
	}
	if err := writeStringRefPayload(w, a.Name); err != nil {
		return err
	}

	switch a.Type {
	case ArgumentTypeInt64:
		return writeWord(w, uint64(a.Int64Value))
	case ArgumentTypeUint64:
		return writeWord(w, a.Uint64Value)
	case ArgumentTypeFloat64:
		return writeWord(w, math.Float64bits(a.Float64Value))
	case ArgumentTypePointer:
		return writeWord(w, a.PointerValue)
	case ArgumentTypeKernelObjectID:
		return writeWord(w, a.KernelObjectIDValue)
	case ArgumentTypeString:
		return writeStringRefPayload(w, a.StringValue)
	}
	return nil
}

// readArgument decodes one argument from r.
func readArgument(r io.Reader) (Argument, error) {
	word, err := readWord(r)
	if err != nil {
		return Argument{}, wrapIOErr(err)
	}
	h := recordHeader(word)

	argType, err := parseArgumentType(h.Tag())
	if err != nil {
		return Argument{}, err
	}

	nameField := uint16(h.field(16, 31))
	name, err := readStringRef(r, nameField)
	if err != nil {
		return Argument{}, err
	}

	a := Argument{Type: argType, Name: name}
	switch argType {
	case ArgumentTypeNull:
	case ArgumentTypeInt32:
		a.Int32Value = int32(h.field(32, 63))
	case ArgumentTypeUint32:
		a.Uint32Value = uint32(h.field(32, 63))
	case ArgumentTypeBoolean:
		a.BoolValue = h.field(32, 32) != 0
	case ArgumentTypeInt64:
		v, err := readWord(r)
		if err != nil {
			return Argument{}, wrapIOErr(err)
		}
		a.Int64Value = int64(v)
	case ArgumentTypeUint64:
		v, err := readWord(r)
		if err != nil {
			return Argument{}, wrapIOErr(err)
		}
		a.Uint64Value = v
	case ArgumentTypeFloat64:
		v, err := readWord(r)
		if err != nil {
			return Argument{}, wrapIOErr(err)
		}
		a.Float64Value = math.Float64frombits(v)
	case ArgumentTypePointer:
		v, err := readWord(r)
		if err != nil {
			return Argument{}, wrapIOErr(err)
		}
		a.PointerValue = v
	case ArgumentTypeKernelObjectID:
		v, err := readWord(r)
		if err != nil {
			return Argument{}, wrapIOErr(err)
		}
		a.KernelObjectIDValue = v
	case ArgumentTypeString:
		valueField := uint16(h.field(32, 47))
		val, err := readStringRef(r, valueField)
		if err != nil {
			return Argument{}, err
		}
		a.StringValue = val
	}
	return a, nil
}
