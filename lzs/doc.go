// Package lzs implements an adaptive-dictionary compressor for sequences
// of 16-bit symbols, with a bit-packed wire format.
//
// The stream is a sequence of variable-width dictionary codes with no
// header, version byte or length prefix. Codes 0-2 are reserved:
// 0 = 8-bit literal follows, 1 = 16-bit literal follows, 2 = end of
// stream. Dictionary codes start at 3 and are assigned in increasing
// order as the input is scanned; the code width starts at 2 bits and
// grows by one bit each time the dictionary outgrows the current width.
// The decoder replays the same growth rule, so no dictionary is stored
// in the stream.
//
// Bit packing: each field is written value-LSB first, and output bytes
// are filled from the most significant bit down. The final byte is
// zero-padded. The only delimiter is the in-band end-of-stream code, so
// callers storing several blocks must track each block's byte length
// themselves.
//
// Symbols are independent 16-bit units. Text converted from Go strings
// is compressed as UTF-16 code units, and a surrogate pair is two
// unrelated symbols; this round-trips correctly but dictionary entries
// may split pairs.
package lzs
