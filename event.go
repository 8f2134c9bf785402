package fxt

import (
	"fmt"
	"io"
)

// EventType is the 4-bit event subtype tag in bits 16-19 of an event
// record's header.
type EventType uint8

const (
	EventTypeInstant          EventType = 0
	EventTypeCounter          EventType = 1
	EventTypeDurationBegin    EventType = 2
	EventTypeDurationEnd      EventType = 3
	EventTypeDurationComplete EventType = 4
	EventTypeAsyncBegin       EventType = 5
	EventTypeAsyncInstant     EventType = 6
	EventTypeAsyncEnd         EventType = 7
	EventTypeFlowBegin        EventType = 8
	EventTypeFlowStep         EventType = 9
	EventTypeFlowEnd          EventType = 10
)

func (t EventType) String() string {
	switch t {
	case EventTypeInstant:
		return "Instant"
	case EventTypeCounter:
		return "Counter"
	case EventTypeDurationBegin:
		return "DurationBegin"
	case EventTypeDurationEnd:
		return "DurationEnd"
	case EventTypeDurationComplete:
		return "DurationComplete"
	case EventTypeAsyncBegin:
		return "AsyncBegin"
	case EventTypeAsyncInstant:
		return "AsyncInstant"
	case EventTypeAsyncEnd:
		return "AsyncEnd"
	case EventTypeFlowBegin:
		return "FlowBegin"
	case EventTypeFlowStep:
		return "FlowStep"
	case EventTypeFlowEnd:
		return "FlowEnd"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}

func parseEventType(raw uint8) (EventType, error) {
	if raw > uint8(EventTypeFlowEnd) {
		return 0, &InvalidEventTypeError{Raw: raw}
	}
	return EventType(raw), nil
}

func isUnimplementedEventType(t EventType) bool {
	switch t {
	case EventTypeAsyncBegin, EventTypeAsyncInstant, EventTypeAsyncEnd,
		EventTypeFlowBegin, EventTypeFlowStep, EventTypeFlowEnd:
		return true
	default:
		return false
	}
}

// EventRecord is a trace event: a timestamp, a thread, a category and
// name, an argument list, and a subtype-specific trailer.
//
// CounterID is meaningful only when Type is EventTypeCounter.
// EndTimestamp is meaningful only when Type is EventTypeDurationComplete.
type EventRecord struct {
	Type      EventType
	Timestamp uint64
	Thread    ThreadRef
	Category  StringRef
	Name      StringRef
	Arguments []Argument

	CounterID    uint64
	EndTimestamp uint64
}

func newEvent(t EventType, timestamp uint64, thread ThreadRef, category, name StringRef, args []Argument) (EventRecord, error) {
	if len(args) > 15 {
		return EventRecord{}, &OutOfRangeError{Message: "event cannot carry more than 15 arguments"}
	}
	return EventRecord{Type: t, Timestamp: timestamp, Thread: thread, Category: category, Name: name, Arguments: args}, nil
}

// NewInstantEvent builds an Instant event.
func NewInstantEvent(timestamp uint64, thread ThreadRef, category, name StringRef, args []Argument) (EventRecord, error) {
	return newEvent(EventTypeInstant, timestamp, thread, category, name, args)
}

// NewCounterEvent builds a Counter event with the given counter id.
func NewCounterEvent(timestamp uint64, thread ThreadRef, category, name StringRef, args []Argument, counterID uint64) (EventRecord, error) {
	e, err := newEvent(EventTypeCounter, timestamp, thread, category, name, args)
	if err != nil {
		return EventRecord{}, err
	}
	e.CounterID = counterID
	return e, nil
}

// NewDurationBeginEvent builds a DurationBegin event.
func NewDurationBeginEvent(timestamp uint64, thread ThreadRef, category, name StringRef, args []Argument) (EventRecord, error) {
	return newEvent(EventTypeDurationBegin, timestamp, thread, category, name, args)
}

// NewDurationEndEvent builds a DurationEnd event.
func NewDurationEndEvent(timestamp uint64, thread ThreadRef, category, name StringRef, args []Argument) (EventRecord, error) {
	return newEvent(EventTypeDurationEnd, timestamp, thread, category, name, args)
}

// NewDurationCompleteEvent builds a DurationComplete event with the
// given end timestamp.
func NewDurationCompleteEvent(timestamp uint64, thread ThreadRef, category, name StringRef, args []Argument, endTimestamp uint64) (EventRecord, error) {
	e, err := newEvent(EventTypeDurationComplete, timestamp, thread, category, name, args)
	if err != nil {
		return EventRecord{}, err
	}
	e.EndTimestamp = endTimestamp
	return e, nil
}

func (e EventRecord) RecordType() RecordType { return RecordTypeEvent }

// SizeWords computes the record's total size: header + timestamp, plus
// thread/category/name inline words, plus each argument's words, plus
// one trailing word for Counter and DurationComplete.
func (e EventRecord) SizeWords() uint16 {
	n := uint16(2)
	n += e.Thread.payloadWords()
	n += e.Category.payloadWords()
	n += e.Name.payloadWords()
	for _, a := range e.Arguments {
		n += a.words()
	}
	switch e.Type {
	case EventTypeCounter, EventTypeDurationComplete:
		n++
	}
	return n
}

func (e EventRecord) Write(w io.Writer) error {
	if isUnimplementedEventType(e.Type) {
		return &UnimplementedError{Message: fmt.Sprintf("writing %v events is not implemented", e.Type)}
	}

	size := e.SizeWords()
	h, err := buildHeader(uint8(RecordTypeEvent), size,
		field(4, uint64(e.Type)),
		field(4, uint64(len(e.Arguments))),
		field(8, uint64(e.Thread.field())),
		field(16, uint64(e.Category.field())),
		field(16, uint64(e.Name.field())),
	)
	if err != nil {
		return err
	}
	if err := writeWord(w, uint64(h)); err != nil {
		return err
	}
	if err := writeWord(w, e.Timestamp); err != nil {
		return err
	}
	if err := writeThreadRefPayload(w, e.Thread); err != nil {
		return err
	}
	if err := writeStringRefPayload(w, e.Category); err != nil {
		return err
	}
	if err := writeStringRefPayload(w, e.Name); err != nil {
		return err
	}
	for _, a := range e.Arguments {
		if err := writeArgument(w, a); err != nil {
			return err
		}
	}

	switch e.Type {
	case EventTypeCounter:
		return writeWord(w, e.CounterID)
	case EventTypeDurationComplete:
		return writeWord(w, e.EndTimestamp)
	}
	return nil
}

func readEventRecord(r io.Reader, h recordHeader) (Record, error) {
	rawType := uint8(h.field(16, 19))
	argCount := int(h.field(20, 23))
	threadField := uint8(h.field(24, 31))
	categoryField := uint16(h.field(32, 47))
	nameField := uint16(h.field(48, 63))

	eventType, err := parseEventType(rawType)
	if err != nil {
		return nil, err
	}

	timestamp, err := readWord(r)
	if err != nil {
		return nil, wrapIOErr(err)
	}

	thread, err := readThreadRef(r, threadField)
	if err != nil {
		return nil, err
	}
	category, err := readStringRef(r, categoryField)
	if err != nil {
		return nil, err
	}
	name, err := readStringRef(r, nameField)
	if err != nil {
		return nil, err
	}

	args := make([]Argument, 0, argCount)
	for i := 0; i < argCount; i++ {
		a, err := readArgument(r)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}

	e := EventRecord{Type: eventType, Timestamp: timestamp, Thread: thread, Category: category, Name: name, Arguments: args}

	switch eventType {
	case EventTypeInstant, EventTypeDurationBegin, EventTypeDurationEnd:
		return e, nil
	case EventTypeCounter:
		v, err := readWord(r)
		if err != nil {
			return nil, wrapIOErr(err)
		}
		e.CounterID = v
		return e, nil
	case EventTypeDurationComplete:
		v, err := readWord(r)
		if err != nil {
			return nil, wrapIOErr(err)
		}
		e.EndTimestamp = v
		return e, nil
	default:
		return nil, &UnimplementedError{Message: fmt.Sprintf("reading %v events is not implemented", eventType)}
	}
}
