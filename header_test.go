package fxt

import "testing"

func TestExtractBits(t *testing.T) {
	cases := []struct {
		v      uint64
		lo, hi uint
		want   uint64
	}{
		{0xF0, 4, 7, 0xF},
		{0x1, 0, 0, 1},
		{0xFFFFFFFFFFFFFFFF, 60, 63, 0xF},
		{0x8000000000000000, 63, 63, 1},
	}
	for _, c := range cases {
		if got := extractBits(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("extractBits(%#x, %d, %d) = %#x, want %#x", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestMaskToWidth(t *testing.T) {
	if got := maskToWidth(0xFF, 4); got != 0xF {
		t.Errorf("maskToWidth(0xFF, 4) = %#x, want 0xF", got)
	}
	if got := maskToWidth(0xFFFFFFFFFFFFFFFF, 64); got != 0xFFFFFFFFFFFFFFFF {
		t.Errorf("maskToWidth with width 64 should not mask")
	}
}

func TestBuildHeaderRoundTrip(t *testing.T) {
	h, err := buildHeader(0x3, 0x2A,
		field(4, 0x5),
		field(8, 0xAB),
		field(16, 0xBEEF),
	)
	if err != nil {
		t.Fatalf("buildHeader: %v", err)
	}
	if got := h.Tag(); got != 0x3 {
		t.Errorf("Tag() = %d, want 3", got)
	}
	if got := h.SizeWords(); got != 0x2A {
		t.Errorf("SizeWords() = %d, want 0x2A", got)
	}
	if got := h.field(16, 19); got != 0x5 {
		t.Errorf("field(16,19) = %#x, want 0x5", got)
	}
	if got := h.field(20, 27); got != 0xAB {
		t.Errorf("field(20,27) = %#x, want 0xAB", got)
	}
	if got := h.field(28, 43); got != 0xBEEF {
		t.Errorf("field(28,43) = %#x, want 0xBEEF", got)
	}
}

func TestBuildHeaderOverflow(t *testing.T) {
	_, err := buildHeader(0, 0, field(32, 1), field(32, 1), field(1, 1))
	if err != ErrHeaderFieldOverflow {
		t.Errorf("expected ErrHeaderFieldOverflow, got %v", err)
	}
}

func TestFieldMasksValue(t *testing.T) {
	f := field(4, 0xFF)
	if f.value != 0xF {
		t.Errorf("field(4, 0xFF).value = %#x, want 0xF", f.value)
	}
}
