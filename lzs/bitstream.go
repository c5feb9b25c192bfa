package lzs

// Accumulates fixed-width fields into a byte stream, with no alignment
// between fields. Fields are written value-LSB first; within each output
// byte the earliest bit written lands in the most significant position.
type bitWriter struct {
	data  []byte
	cur   byte // bits collected for the byte in progress
	count int
}

func (w *bitWriter) writeBits(value int, width int) {
	for i := 0; i < width; i++ {
		w.cur = w.cur<<1 | byte(value&1)
		value >>= 1
		w.count++
		if w.count == 8 {
			w.data = append(w.data, w.cur)
			w.cur = 0
			w.count = 0
		}
	}
}

// Total bits written so far.
func (w *bitWriter) bitCount() int {
	return len(w.data)*8 + w.count
}

// Zero-pad the byte in progress and return the finished stream.
func (w *bitWriter) flush() []byte {
	if w.count != 0 {
		w.data = append(w.data, w.cur<<(8-w.count))
		w.cur = 0
		w.count = 0
	}
	return w.data
}

// Walks a byte stream one bit at a time, MSB of each byte first.
// This undoes the bitWriter convention exactly.
type bitReader struct {
	data []byte
	pos  int
	cur  byte
	mask byte
}

func newBitReader(data []byte) bitReader {
	return bitReader{data: data}
}

// Extract the next width bits; the first bit read has weight 1.
// ok is false once the stream runs out, and the caller must treat
// that as a truncated stream.
func (r *bitReader) readBits(width int) (value int, ok bool) {
	for i := 0; i < width; i++ {
		if r.mask == 0 {
			if r.pos >= len(r.data) {
				return 0, false
			}
			r.cur = r.data[r.pos]
			r.pos++
			r.mask = 0x80
		}
		if r.cur&r.mask != 0 {
			value |= 1 << i
		}
		r.mask >>= 1
	}
	return value, true
}
