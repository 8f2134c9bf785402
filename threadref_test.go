package fxt

import (
	"bytes"
	"testing"
)

func TestThreadRefInlineRoundTrip(t *testing.T) {
	th := NewInlineThreadRef(0x1111, 0x2222)
	if th.payloadWords() != 2 {
		t.Errorf("inline thread ref should contribute 2 payload words, got %d", th.payloadWords())
	}

	var buf bytes.Buffer
	if err := writeThreadRefPayload(&buf, th); err != nil {
		t.Fatalf("writeThreadRefPayload: %v", err)
	}

	got, err := readThreadRef(&buf, th.field())
	if err != nil {
		t.Fatalf("readThreadRef: %v", err)
	}
	if !got.IsInline() || got.ProcessKOID() != 0x1111 || got.ThreadKOID() != 0x2222 {
		t.Errorf("readThreadRef = %+v, want inline {0x1111, 0x2222}", got)
	}
}

func TestThreadRefIndexRoundTrip(t *testing.T) {
	th, err := NewThreadRefIndex(7)
	if err != nil {
		t.Fatalf("NewThreadRefIndex: %v", err)
	}
	if th.payloadWords() != 0 {
		t.Errorf("index ref should contribute 0 payload words, got %d", th.payloadWords())
	}

	var buf bytes.Buffer
	got, err := readThreadRef(&buf, th.field())
	if err != nil {
		t.Fatalf("readThreadRef: %v", err)
	}
	if got.IsInline() || got.Index() != 7 {
		t.Errorf("readThreadRef = %+v, want index ref 7", got)
	}
}

func TestThreadRefIndexZeroRejected(t *testing.T) {
	if _, err := NewThreadRefIndex(0); err == nil {
		t.Error("expected error for thread ref index 0, which is reserved for inline")
	}
}
