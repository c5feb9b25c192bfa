package lzs

import "testing"

func TestBitFieldRoundTrip(t *testing.T) {
	var fields = []struct {
		value int
		width int
	}{
		{0, 1},
		{1, 1},
		{5, 3},
		{0x61, 8},
		{2, 3},
		{0xff, 8},
		{0x1234, 16},
		{1, 16},
		{0x7fff, 15},
		{3, 2},
	}

	var w bitWriter
	for _, f := range fields {
		w.writeBits(f.value, f.width)
	}
	data := w.flush()

	r := newBitReader(data)
	for i, f := range fields {
		got, ok := r.readBits(f.width)
		if !ok {
			t.Fatalf("field %d: stream ran out", i)
		}
		if got != f.value {
			t.Errorf("field %d: got %#x, want %#x", i, got, f.value)
		}
	}
}

func TestBitWriterPadding(t *testing.T) {
	var w bitWriter
	w.writeBits(5, 3)
	if w.bitCount() != 3 {
		t.Errorf("bitCount: got %d, want 3", w.bitCount())
	}
	data := w.flush()
	// Bits 1,0,1 land MSB-first, zero-padded.
	if len(data) != 1 || data[0] != 0xa0 {
		t.Errorf("got % x, want a0", data)
	}
}

func TestBitReaderExhaustion(t *testing.T) {
	r := newBitReader([]byte{0xab})
	if _, ok := r.readBits(8); !ok {
		t.Fatal("first 8 bits should be readable")
	}
	if _, ok := r.readBits(1); ok {
		t.Error("read past the end did not report exhaustion")
	}

	r = newBitReader([]byte{0xab})
	if _, ok := r.readBits(9); ok {
		t.Error("9-bit read from 1 byte did not report exhaustion")
	}
}
